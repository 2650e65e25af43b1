package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/vibetask/internal/model"
)

const (
	// TasksKey is where the full task collection lives.
	TasksKey = "vibeTasks"
	// RejectedKey collects stored records that failed to decode or validate.
	RejectedKey = TasksKey + ".rejected"
	// CorruptKey holds the last collection value that was not a JSON array.
	CorruptKey = TasksKey + ".corrupt"
)

var ErrCorrupt = errors.New("storage: task collection is not a JSON array")

// TaskStore persists the whole collection under one key. Load and Save are
// serialized, so a save never interleaves with a load; the last save wins.
type TaskStore struct {
	mu  sync.Mutex
	kv  KV
	key string
	log zerolog.Logger
}

func NewTaskStore(kv KV, log zerolog.Logger) *TaskStore {
	return &TaskStore{kv: kv, key: TasksKey, log: log}
}

// Load decodes the stored collection record by record. Records that cannot be
// decoded or fail Task.Validate are dropped from the result and copied under
// RejectedKey first, so the next Save does not lose them.
func (s *TaskStore) Load(ctx context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.Task{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		if berr := s.kv.Set(ctx, CorruptKey, raw); berr != nil {
			return nil, fmt.Errorf("back up corrupt tasks: %w", berr)
		}
		s.log.Error().Err(err).Str("backup", CorruptKey).Msg("task collection unreadable")
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	tasks := make([]model.Task, 0, len(records))
	var rejected []json.RawMessage
	for i, rec := range records {
		var task model.Task
		err := json.Unmarshal(rec, &task)
		if err == nil {
			err = task.Validate()
		}
		if err != nil {
			s.log.Warn().Err(err).Int("index", i).Msg("task record rejected")
			rejected = append(rejected, rec)
			continue
		}
		tasks = append(tasks, task)
	}
	if len(rejected) > 0 {
		if err := s.keepRejected(ctx, rejected); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

func (s *TaskStore) keepRejected(ctx context.Context, recs []json.RawMessage) error {
	var kept []json.RawMessage
	prev, ok, err := s.kv.Get(ctx, RejectedKey)
	if err != nil {
		return fmt.Errorf("back up rejected tasks: %w", err)
	}
	if ok && strings.TrimSpace(prev) != "" {
		if err := json.Unmarshal([]byte(prev), &kept); err != nil {
			kept = []json.RawMessage{json.RawMessage(mustJSONString(prev))}
		}
	}
	for _, rec := range recs {
		if !containsRecord(kept, rec) {
			kept = append(kept, rec)
		}
	}
	payload, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("encode rejected tasks: %w", err)
	}
	if err := s.kv.Set(ctx, RejectedKey, string(payload)); err != nil {
		return fmt.Errorf("back up rejected tasks: %w", err)
	}
	return nil
}

func containsRecord(list []json.RawMessage, rec json.RawMessage) bool {
	for _, r := range list {
		if bytes.Equal(r, rec) {
			return true
		}
	}
	return false
}

func mustJSONString(s string) []byte {
	out, _ := json.Marshal(s)
	return out
}

func (s *TaskStore) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (s *TaskStore) Close() error {
	return s.kv.Close()
}
