package store

import "github.com/google/uuid"

// NewSessionID returns a fresh, time-ordered session identifier.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
