package session_cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
)

const DefaultTTL = 30 * time.Minute

// FilterStateRepository keeps a session's selections across store evictions.
type FilterStateRepository interface {
	Load(ctx context.Context, sessionID string) (models.FilterState, bool, error)
	Save(ctx context.Context, sessionID string, filters models.FilterState) error
}

// ── Session → screen store registry ──────────────────────────────────────────
// One store per browser session, evicted after ttl without access.

type entry struct {
	store     *services.Store
	touchedAt time.Time
}

type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	repo    FilterStateRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewRegistry creates a registry. repo may be nil.
func NewRegistry(ttl time.Duration, repo FilterStateRepository, logger *zap.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		repo:    repo,
		logger:  logger.Named("session_cache"),
		now:     time.Now,
	}
}

// Get returns the session's store, creating it when missing or expired.
func (r *Registry) Get(sessionID string) *services.Store {
	now := r.now()

	r.mu.Lock()
	if e, ok := r.entries[sessionID]; ok && now.Sub(e.touchedAt) < r.ttl {
		e.touchedAt = now
		r.mu.Unlock()
		return e.store
	}
	r.mu.Unlock()

	store := services.NewStoreWithFilters(r.restore(sessionID))

	r.mu.Lock()
	defer r.mu.Unlock()
	// another request for the same session may have won the race
	if e, ok := r.entries[sessionID]; ok && now.Sub(e.touchedAt) < r.ttl {
		e.touchedAt = now
		return e.store
	}
	r.entries[sessionID] = &entry{store: store, touchedAt: now}
	return store
}

// Persist saves the session's selections when a repository is configured.
func (r *Registry) Persist(sessionID string, filters models.FilterState) {
	if r.repo == nil {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := r.repo.Save(ctx, sessionID, filters); err != nil {
		r.logger.Warn("persist filters failed", zap.String("session", sessionID), zap.Error(err))
	}
}

func (r *Registry) restore(sessionID string) models.FilterState {
	if r.repo == nil {
		return models.NewFilterState()
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	filters, ok, err := r.repo.Load(ctx, sessionID)
	if err != nil {
		r.logger.Warn("restore filters failed", zap.String("session", sessionID), zap.Error(err))
		return models.NewFilterState()
	}
	if !ok {
		return models.NewFilterState()
	}
	return filters
}

// Sweep drops expired stores and returns how many were removed.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if now.Sub(e.touchedAt) >= r.ttl {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// RunSweeper sweeps every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("expired sessions swept", zap.Int("removed", n))
			}
		}
	}
}
