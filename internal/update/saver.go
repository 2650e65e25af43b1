package update

import (
	"context"
	"sync"

	"github.com/sandeepkv93/vibetask/internal/model"
)

// saver orders full-collection writes. tea runs commands concurrently, so a
// snapshot taken before a later mutation may reach the store after it; such a
// stale snapshot is dropped.
type saver struct {
	mu      sync.Mutex
	store   TaskStore
	written uint64
}

func newSaver(store TaskStore) *saver {
	return &saver{store: store}
}

func (s *saver) save(ctx context.Context, seq uint64, tasks []model.Task) (bool, error) {
	if s == nil || s.store == nil {
		return true, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.written {
		return true, nil
	}
	if err := s.store.Save(ctx, tasks); err != nil {
		return false, err
	}
	s.written = seq
	return false, nil
}
