package model

import "time"

type User struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   uint32 `json:"age"`
}

type UserEvent struct {
	Type       string    `json:"type"`
	User       User      `json:"user"`
	OccurredAt time.Time `json:"occurred_at"`
}
