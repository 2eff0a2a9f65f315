// Package chat keeps the in-memory registry of live chat event streams and
// the service that publishes events into it.
package chat

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Subscription is one open stream of a user. Events arrive on Events until
// Done is closed by Unsubscribe or the reaper.
type Subscription struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BusinessID uuid.UUID

	events    chan domain.ChatEvent
	done      chan struct{}
	closeOnce sync.Once
	lastSeen  atomic.Int64
}

// Events returns the receive side of the subscription buffer.
func (s *Subscription) Events() <-chan domain.ChatEvent { return s.events }

// Done is closed when the subscription has been removed from the registry.
func (s *Subscription) Done() <-chan struct{} { return s.done }

func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Registry maps users to their open subscriptions. Delivery is best effort:
// an event is dropped for a subscription whose buffer is full.
type Registry struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[*Subscription]struct{}

	bufferSize   int
	idleTimeout  time.Duration
	reapInterval time.Duration
	now          func() time.Time
	log          *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger, cfg config.ChatConfig) *Registry {
	size := cfg.BufferSize
	if size <= 0 {
		size = 16
	}
	return &Registry{
		subs:         make(map[uuid.UUID]map[*Subscription]struct{}),
		bufferSize:   size,
		idleTimeout:  cfg.IdleTimeout,
		reapInterval: cfg.ReapInterval,
		now:          time.Now,
		log:          logger.With("service", "chat_registry"),
	}
}

// Subscribe opens a new subscription for the user within a business.
func (r *Registry) Subscribe(userID, businessID uuid.UUID) *Subscription {
	sub := &Subscription{
		ID:         uuid.New(),
		UserID:     userID,
		BusinessID: businessID,
		events:     make(chan domain.ChatEvent, r.bufferSize),
		done:       make(chan struct{}),
	}
	sub.lastSeen.Store(r.now().UnixNano())

	r.mu.Lock()
	set, ok := r.subs[userID]
	if !ok {
		set = make(map[*Subscription]struct{})
		r.subs[userID] = set
	}
	set[sub] = struct{}{}
	r.mu.Unlock()

	r.log.Debug("chat subscription opened",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("user_id", userID.String()),
	)
	return sub
}

// Unsubscribe removes the subscription and closes its Done channel.
// Calling it more than once is safe.
func (r *Registry) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	r.mu.Lock()
	r.remove(sub)
	r.mu.Unlock()
	sub.close()
}

// remove must be called with r.mu held.
func (r *Registry) remove(sub *Subscription) {
	set, ok := r.subs[sub.UserID]
	if !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(r.subs, sub.UserID)
	}
}

// Touch marks the subscription as alive.
func (r *Registry) Touch(sub *Subscription) {
	sub.lastSeen.Store(r.now().UnixNano())
}

// Deliver pushes the event to every subscription of every recipient in the
// event's business and returns how many buffers accepted it.
func (r *Registry) Deliver(event domain.ChatEvent) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delivered := 0
	for _, userID := range event.Recipients {
		for sub := range r.subs[userID] {
			if sub.BusinessID != event.BusinessID {
				continue
			}
			select {
			case sub.events <- event:
				delivered++
			default:
				r.log.Warn("chat event dropped, buffer full",
					slog.String("subscription_id", sub.ID.String()),
					slog.String("event_id", event.ID.String()),
				)
			}
		}
	}
	return delivered
}

// Publish delivers in-process. It lets the registry stand in for the
// Redis bus on a single instance.
func (r *Registry) Publish(_ context.Context, event domain.ChatEvent) error {
	r.Deliver(event)
	return nil
}

// Count returns the number of open subscriptions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, set := range r.subs {
		n += len(set)
	}
	return n
}

// Reap closes subscriptions idle for longer than the idle timeout and
// returns how many were closed.
func (r *Registry) Reap() int {
	if r.idleTimeout <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idleTimeout).UnixNano()

	var stale []*Subscription
	r.mu.Lock()
	for _, set := range r.subs {
		for sub := range set {
			if sub.lastSeen.Load() < cutoff {
				stale = append(stale, sub)
			}
		}
	}
	for _, sub := range stale {
		r.remove(sub)
	}
	r.mu.Unlock()

	for _, sub := range stale {
		sub.close()
	}
	if len(stale) > 0 {
		r.log.Info("chat subscriptions reaped", slog.Int("count", len(stale)))
	}
	return len(stale)
}

// Run reaps idle subscriptions every reap interval until ctx is done, then
// closes everything still open.
func (r *Registry) Run(ctx context.Context) error {
	interval := r.reapInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return nil
		case <-ticker.C:
			r.Reap()
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	all := r.subs
	r.subs = make(map[uuid.UUID]map[*Subscription]struct{})
	r.mu.Unlock()

	for _, set := range all {
		for sub := range set {
			sub.close()
		}
	}
}
