package model

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type IDSource interface {
	NewID(at time.Time) string
}

// ULIDSource hands out time-ordered ids. Monotonic entropy keeps ids unique
// when several tasks share the same creation instant.
type ULIDSource struct {
	mu      sync.Mutex
	entropy io.Reader
}

func NewULIDSource() *ULIDSource {
	return &ULIDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (s *ULIDSource) NewID(at time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), s.entropy).String()
}
