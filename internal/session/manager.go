// Package session keys cart stores by session identifier so that
// concurrent shoppers never share state. Each session owns exactly one
// cart store; the store itself is only ever touched by that session's
// requests.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"babashop/internal/cart"
	"babashop/internal/infrastructure/metrics"
)

type entry struct {
	store    *cart.Store
	lastSeen time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	logger   *zap.Logger
}

func NewManager(ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		logger:   logger,
	}
}

// GetOrCreate resolves the cart store for id, creating a fresh session
// when id is empty or unknown (expired sessions fall in the unknown
// case). Returns the effective session id.
func (m *Manager) GetOrCreate(id string) (string, *cart.Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	if id != "" {
		if e, ok := m.sessions[id]; ok {
			e.lastSeen = now
			return id, e.store
		}
	}

	id = uuid.New().String()
	store := cart.NewStore()
	m.sessions[id] = &entry{store: store, lastSeen: now}
	metrics.SessionsCreatedTotal.Inc()
	m.logger.Debug("session created", zap.String("sessionId", id))

	return id, store
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		metrics.SessionsEvictedTotal.Add(float64(evicted))
	}

	return evicted
}

// Run sweeps idle sessions on the given interval until ctx is
// cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if evicted := m.Sweep(now); evicted > 0 {
				m.logger.Info("evicted idle sessions", zap.Int("count", evicted))
			}
		}
	}
}
