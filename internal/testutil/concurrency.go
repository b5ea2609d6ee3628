package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// MockSleeperModule is a shared, self-contained module for concurrency tests.
// It registers "test.sleeper", which sleeps, then passes its ID through and
// records when it ran.
type MockSleeperModule struct {
	ExecutionTimes map[string]*ExecutionRecord
	mu             sync.Mutex
	sleepDuration  time.Duration
	completionChan chan<- string
}

// NewMockSleeperModule creates a new sleeper module for testing.
func NewMockSleeperModule(completionChan chan<- string, sleep time.Duration) *MockSleeperModule {
	return &MockSleeperModule{
		ExecutionTimes: make(map[string]*ExecutionRecord),
		sleepDuration:  sleep,
		completionChan: completionChan,
	}
}

type sleeperRecord struct {
	ID string `cty:"ID"`
}

// Register registers the "test.sleeper" kind.
func (m *MockSleeperModule) Register(r *registry.Registry) {
	record := schema.New(schema.F("ID", cty.String))
	r.Register(registry.Transform("test.sleeper", "Sleeps, then echoes ID.",
		codec.Gocty[sleeperRecord](record), codec.Gocty[sleeperRecord](record),
		func(ctx context.Context, in sleeperRecord) (sleeperRecord, error) {
			startTime := time.Now()
			select {
			case <-time.After(m.sleepDuration):
			case <-ctx.Done():
				return sleeperRecord{}, ctx.Err()
			}
			endTime := time.Now()

			m.mu.Lock()
			m.ExecutionTimes[in.ID] = &ExecutionRecord{Start: startTime, End: endTime}
			m.mu.Unlock()

			if m.completionChan != nil {
				m.completionChan <- in.ID
			}
			return in, nil
		}))
}

// Record returns the execution record of id, if it ran.
func (m *MockSleeperModule) Record(id string) (ExecutionRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.ExecutionTimes[id]
	if !ok {
		return ExecutionRecord{}, false
	}
	return *rec, true
}
