package events

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventOfferCreated   EventType = "offer_created"
	EventOfferDeleted   EventType = "offer_deleted"
)

// Actor encapsulates actor metadata for an event. Registration events carry
// the registering account itself as the actor.
type Actor struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// OfferCreatedPayload payload.
type OfferCreatedPayload struct {
	OfferID int64  `json:"offer_id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

// OfferDeletedPayload payload.
type OfferDeletedPayload struct {
	OfferID       int64  `json:"offer_id"`
	Title         string `json:"title"`
	OwnerUsername string `json:"owner_username"`
	ByOwner       bool   `json:"by_owner"`
}
