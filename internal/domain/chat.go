package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChatEventType names an event delivered to chat subscribers.
type ChatEventType string

const (
	ChatEventMessageCreated ChatEventType = "message.created"
	ChatEventMessageStatus  ChatEventType = "message.status"
	ChatEventSessionStatus  ChatEventType = "session.status"
)

func (t ChatEventType) IsValid() bool {
	switch t {
	case ChatEventMessageCreated, ChatEventMessageStatus, ChatEventSessionStatus:
		return true
	}
	return false
}

// ChatEvent is a best-effort notification for the users listed in
// Recipients. Payload is opaque to the registry.
type ChatEvent struct {
	ID         uuid.UUID       `json:"id"`
	BusinessID uuid.UUID       `json:"businessId"`
	ChatID     uuid.UUID       `json:"chatId"`
	Type       ChatEventType   `json:"type"`
	Recipients []uuid.UUID     `json:"recipients"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
