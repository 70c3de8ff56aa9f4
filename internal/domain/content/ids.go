package content

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new list entries. Callers generate the
// id before dispatching AddProject or AddEducation.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues monotonically increasing decimal ids with an
// optional prefix. Seed it above the highest existing id to avoid collisions.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator returns a generator whose first id is start.
func NewSequenceGenerator(prefix string, start uint64) *SequenceGenerator {
	g := &SequenceGenerator{Prefix: prefix}
	g.next.Store(start)
	return g
}

// NewID implements IDGenerator.
func (g *SequenceGenerator) NewID() string {
	n := g.next.Add(1) - 1
	return g.Prefix + strconv.FormatUint(n, 10)
}

// SeedFrom returns a SequenceGenerator starting after the largest numeric id
// found in doc, so generated ids never collide with existing entries.
func SeedFrom(doc Document, prefix string) *SequenceGenerator {
	var highest uint64
	consider := func(id string) {
		if len(id) < len(prefix) || id[:len(prefix)] != prefix {
			return
		}
		n, err := strconv.ParseUint(id[len(prefix):], 10, 64)
		if err == nil && n > highest {
			highest = n
		}
	}
	for _, p := range doc.Projects {
		consider(p.ID)
	}
	for _, e := range doc.Education {
		consider(e.ID)
	}
	return NewSequenceGenerator(prefix, highest+1)
}
