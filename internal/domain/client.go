package domain

import "time"

type ClientID string

// Client is a person enrolled in a training plan, billed periodically.
// The server owns the record; instances held here are transient copies.
type Client struct {
	ID        ClientID
	Name      string
	Email     string
	StartDate time.Time
	PlanID    PlanID
}
