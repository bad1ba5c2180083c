package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side identifiers. V7 identifiers are
// time-ordered, which keeps primary-key pages append-mostly in the local
// store; the random fallback covers the (rare) V7 entropy failure.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
