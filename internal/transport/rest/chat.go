package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/chat"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

type chatRegistry interface {
	Subscribe(userID, businessID uuid.UUID) *chat.Subscription
	Unsubscribe(sub *chat.Subscription)
	Touch(sub *chat.Subscription)
}

type chatPublisher interface {
	Publish(ctx context.Context, chatID uuid.UUID, input chat.PublishInput) (domain.ChatEvent, error)
}

// ChatHandler serves the chat event stream and the publish endpoint used by
// the WhatsApp webhook receiver.
type ChatHandler struct {
	registry  chatRegistry
	svc       chatPublisher
	heartbeat time.Duration
	log       *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(registry chatRegistry, svc chatPublisher, heartbeat time.Duration, logger *slog.Logger) *ChatHandler {
	if heartbeat <= 0 {
		heartbeat = 25 * time.Second
	}
	return &ChatHandler{
		registry:  registry,
		svc:       svc,
		heartbeat: heartbeat,
		log:       logger.With("handler", "chat"),
	}
}

// Stream handles GET /api/chats/stream as server-sent events.
// Every successful write, heartbeats included, keeps the subscription alive.
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	businessID, ok := ctxutil.BusinessIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// The stream outlives the server write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	sub := h.registry.Subscribe(userID, businessID)
	defer h.registry.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "retry: 3000\n: subscribed %s\n\n", sub.ID)
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-sub.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
			h.registry.Touch(sub)
		case event := <-sub.Events():
			data, err := json.Marshal(event)
			if err != nil {
				h.log.WarnContext(r.Context(), "marshal chat event", slog.String("error", err.Error()))
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data); err != nil {
				return
			}
			flusher.Flush()
			h.registry.Touch(sub)
		}
	}
}

type publishRequest struct {
	Type       string          `json:"type"`
	Recipients []uuid.UUID     `json:"recipients"`
	Payload    json.RawMessage `json:"payload"`
}

type publishResponse struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chatId"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publish handles POST /api/chats/{chatID}/events.
func (h *ChatHandler) Publish(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathUUID(w, r, "chatID")
	if !ok {
		return
	}
	var req publishRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.svc.Publish(r.Context(), chatID, chat.PublishInput{
		Type:       domain.ChatEventType(req.Type),
		Recipients: req.Recipients,
		Payload:    req.Payload,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, publishResponse{
		ID:        event.ID,
		ChatID:    event.ChatID,
		Type:      string(event.Type),
		CreatedAt: event.CreatedAt,
	})
}
