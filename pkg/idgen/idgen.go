// Package idgen issues the opaque string tokens used as entity ids.
package idgen

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
)

// Module provides the process-wide id generator.
var Module = fx.Module("idgen",
	fx.Provide(New),
)

// Generator produces lexicographically sortable unique ids.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func New() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewID returns a fresh ULID string. Safe for concurrent use.
func (g *Generator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), g.entropy).String()
}
