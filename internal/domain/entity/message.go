package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OfferMessage is one chat line in an offer thread.
type OfferMessage struct {
	ID         uuid.UUID `json:"id"`
	OfferID    uuid.UUID `json:"offer_id"`
	SenderID   string    `json:"sender_id"`
	SenderRole Role      `json:"sender_role"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConversationContext is the caller's relationship to an offer thread,
// computed fresh on every access.
type ConversationContext struct {
	OfferID    uuid.UUID `json:"offer_id"`
	RequestID  uuid.UUID `json:"request_id"`
	ViewerRole Role      `json:"viewer_role"`
}

// InvalidationPaths lists the pages that render this thread.
func (c ConversationContext) InvalidationPaths() []string {
	return []string{
		fmt.Sprintf("/dealer/offers/%s", c.OfferID),
		fmt.Sprintf("/buyer/requests/%s", c.RequestID),
	}
}
