package websocket

import (
	"time"

	"github.com/google/uuid"
)

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError      Event = "error"
	EventSnapshot   Event = "snapshot"
	EventSeatUpdate Event = "seat_update"
	EventPong       Event = "pong"
)

// SnapshotResponse is the first frame sent after a monitor connects,
// carrying the authoritative seat counter at subscription time.
type SnapshotResponse struct {
	Event          Event     `json:"event"`
	OfferingID     uuid.UUID `json:"offering_id"`
	Capacity       int       `json:"capacity"`
	SeatsRemaining int       `json:"seats_remaining"`
	Enrolled       int       `json:"enrolled"`
}

// SeatUpdateResponse is pushed whenever an enroll or withdraw commits
// against the monitored offering.
type SeatUpdateResponse struct {
	Event          Event     `json:"event"`
	OfferingID     uuid.UUID `json:"offering_id"`
	Action         string    `json:"action"`
	SeatsRemaining int       `json:"seats_remaining"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
