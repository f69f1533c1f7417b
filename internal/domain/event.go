package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType kind of entity a change event refers to
type EntityType string

const (
	EntityBooking      EntityType = "booking"
	EntityAvailability EntityType = "availability"
)

// Action kind of mutation
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ChangeEvent is emitted once after a mutation has been committed.
// Entity holds the new state for create/update, delete events carry only EntityID.
type ChangeEvent struct {
	ID            string      `json:"id"`
	EntityType    EntityType  `json:"entityType"`
	Action        Action      `json:"action"`
	EntityID      int64       `json:"entityId"`
	Entity        interface{} `json:"entity,omitempty"`
	ActorID       int64       `json:"actorId"`
	OriginSession string      `json:"-"`
	OccurredAt    time.Time   `json:"occurredAt"`
}

// NewChangeEvent creates an event with a fresh id
func NewChangeEvent(entityType EntityType, action Action, entityID int64, entity interface{}, actor Actor, at time.Time) ChangeEvent {
	return ChangeEvent{
		ID:            uuid.NewString(),
		EntityType:    entityType,
		Action:        action,
		EntityID:      entityID,
		Entity:        entity,
		ActorID:       actor.UserID,
		OriginSession: actor.SessionID,
		OccurredAt:    at.UTC(),
	}
}
