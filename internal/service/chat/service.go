package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/tenant"
)

const maxRecipients = 100

type publisher interface {
	Publish(ctx context.Context, event domain.ChatEvent) error
}

// Service publishes chat events to subscribers on any instance.
type Service struct {
	bus publisher
	now func() time.Time
	log *slog.Logger
}

// NewService creates a chat service on top of the given bus. The bus is
// either the local Registry or the Redis chat bus.
func NewService(log *slog.Logger, bus publisher) *Service {
	return &Service{
		bus: bus,
		now: time.Now,
		log: log.With("service", "chat"),
	}
}

// PublishInput describes an event raised on a chat, e.g. by the WhatsApp
// webhook receiver.
type PublishInput struct {
	Type       domain.ChatEventType
	Recipients []uuid.UUID
	Payload    json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i PublishInput) Validate() error {
	var errs []domain.FieldError
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	switch {
	case len(i.Recipients) == 0:
		errs = append(errs, domain.FieldError{Field: "recipients", Message: "required"})
	case len(i.Recipients) > maxRecipients:
		errs = append(errs, domain.FieldError{Field: "recipients", Message: fmt.Sprintf("max %d items", maxRecipients)})
	}
	for idx, id := range i.Recipients {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("recipients[%d]", idx), Message: "required"})
		}
	}
	if len(i.Payload) > 0 && !json.Valid(i.Payload) {
		errs = append(errs, domain.FieldError{Field: "payload", Message: "must be valid JSON"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Publish builds an event for the chat in the caller's business and hands
// it to the bus.
func (s *Service) Publish(ctx context.Context, chatID uuid.UUID, input PublishInput) (domain.ChatEvent, error) {
	scope, err := tenant.Write(ctx)
	if err != nil {
		return domain.ChatEvent{}, err
	}
	if chatID == uuid.Nil {
		return domain.ChatEvent{}, domain.NewValidationError("chat_id", "required")
	}
	if err := input.Validate(); err != nil {
		return domain.ChatEvent{}, err
	}

	event := domain.ChatEvent{
		ID:         uuid.New(),
		BusinessID: scope.BusinessID,
		ChatID:     chatID,
		Type:       input.Type,
		Recipients: dedupe(input.Recipients),
		Payload:    input.Payload,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		return domain.ChatEvent{}, fmt.Errorf("publish chat event: %w", err)
	}

	s.log.DebugContext(ctx, "chat event published",
		slog.String("event_id", event.ID.String()),
		slog.String("chat_id", chatID.String()),
		slog.String("type", string(event.Type)),
		slog.Int("recipients", len(event.Recipients)),
	)
	return event, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
