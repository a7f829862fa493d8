package utils

import "github.com/google/uuid"

// IDGenerator hands out record identifiers for the SQL and in-memory stores.
// Identifiers are UUIDv7 so that rows sort by creation time.
type IDGenerator struct {
	next func() (uuid.UUID, error)
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: uuid.NewV7}
}

// NewID returns the next identifier. A failing clock source downgrades to a
// random UUIDv4.
func (g *IDGenerator) NewID() string {
	id, err := g.next()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
