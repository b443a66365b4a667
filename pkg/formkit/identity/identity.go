// Package identity provides element ID generation.
//
// IDs are assigned exactly once at element construction. The generator is
// injected rather than shared process-wide, so uniqueness scope is chosen
// by the caller: UUIDs for global uniqueness, or a container-owned sequence
// for readable per-form IDs.
package identity

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces element IDs. Every call returns a non-empty string
// distinct from all earlier results of the same generator.
type Generator interface {
	NextID() string
}

// UUID returns a Generator producing random UUID strings.
// Safe for concurrent use.
func UUID() Generator {
	return uuidGenerator{}
}

type uuidGenerator struct{}

func (uuidGenerator) NextID() string {
	return uuid.NewString()
}

// SequenceGenerator produces prefix-numbered IDs ("el_1", "el_2", ...).
// Safe for concurrent use.
type SequenceGenerator struct {
	prefix string
	n      atomic.Int64
}

// Sequence returns a SequenceGenerator starting at <prefix>1.
func Sequence(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NextID returns the next ID in the sequence.
func (g *SequenceGenerator) NextID() string {
	return g.prefix + strconv.FormatInt(g.n.Add(1), 10)
}
