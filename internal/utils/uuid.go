package utils

import "github.com/google/uuid"

// UUIDGenerator produces the trace id attached to every log entry of one
// qb invocation.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

// NewUUIDGenerator returns a generator of time-ordered UUIDv7 ids.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string, or a random v4 when the clock based
// source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
