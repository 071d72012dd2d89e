package domain

import "errors"

const (
	DefaultPageLimit  = 10
	DefaultPageOffset = 0
)

const (
	UserEventCreated = "created"
	UserEventUpdated = "updated"
	UserEventDeleted = "deleted"
)

var ErrUserNotFound = errors.New("user not found")

func IsValidUserEventType(value string) bool {
	switch value {
	case UserEventCreated, UserEventUpdated, UserEventDeleted:
		return true
	default:
		return false
	}
}
