package requests

import "time"

// ReloadMessage is the body published to the reload queue.
type ReloadMessage struct {
	ID          string    `json:"id"`
	Trigger     string    `json:"trigger"`
	RequestedAt time.Time `json:"requested_at"`
}

type ReloadIndex struct {
	Async string `json:"async" validate:"omitempty,boolean"`
}
