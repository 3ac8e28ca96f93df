package utils

import "github.com/google/uuid"

// NewTraceID returns an identifier correlating the log lines of one request.
// Ids are time-ordered UUIDv7 values so that log search sorts them by
// arrival; a random UUIDv4 is returned if no v7 can be produced.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
