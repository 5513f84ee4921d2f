package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dayplan/internal/backend"
	"dayplan/internal/instrumentation"
	"dayplan/internal/logging"
)

// Client maintains the authoritative cached collection of events and
// mediates every create, update and delete against the backend. All view
// derivation reads from this cache; nothing else in the client holds
// event state.
type Client struct {
	api     *backend.Client
	logger  *slog.Logger
	metrics *instrumentation.Metrics

	mu    sync.RWMutex
	cache []Event
	subs  []func()
}

// NewClient creates a new event store client. Logger may be nil, in which
// case slog.Default() is used. Metrics may be nil.
func NewClient(api *backend.Client, logger *slog.Logger, metrics *instrumentation.Metrics) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		api:     api,
		logger:  logging.WithService(logger, "events"),
		metrics: metrics,
	}
}

// Subscribe registers fn to run after every cache mutation. Subscribers
// re-derive their views from List; they receive no payload.
func (c *Client) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// List returns a copy of the current cached collection. It never fetches;
// call Refresh to synchronize with the backend.
func (c *Client) List() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Event, len(c.cache))
	copy(out, c.cache)
	return out
}

// Refresh fetches the full collection from the backend and replaces the
// cache. On failure the prior cache is left intact.
func (c *Client) Refresh(ctx context.Context) ([]Event, error) {
	start := time.Now()

	var resources []eventResource
	if err := c.api.Get(ctx, "/events", &resources); err != nil {
		c.finish(ctx, "refresh", start, err)
		return nil, fmt.Errorf("failed to refresh events: %w", err)
	}

	fresh := make([]Event, 0, len(resources))
	for _, r := range resources {
		fresh = append(fresh, toEvent(r))
	}

	c.mu.Lock()
	c.cache = fresh
	c.mu.Unlock()
	c.notify()

	c.finish(ctx, "refresh", start, nil)
	return c.List(), nil
}

// Create sends a draft to the backend and appends the server-assigned
// event to the cache.
func (c *Client) Create(ctx context.Context, input EventInput) (*Event, error) {
	start := time.Now()

	var created eventResource
	if err := c.api.Post(ctx, "/events", toPayload(input), &created); err != nil {
		c.finish(ctx, "create", start, err)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	event := toEvent(created)

	c.mu.Lock()
	c.cache = append(c.cache, event)
	c.mu.Unlock()
	c.notify()

	c.finish(ctx, "create", start, nil)
	return &event, nil
}

// Update sends the full event shape to the backend and replaces the
// matching cached event with the server's response. A missing id
// server-side surfaces as backend.NotFoundError; callers should Refresh
// to reconcile.
func (c *Client) Update(ctx context.Context, id int64, input EventInput) (*Event, error) {
	start := time.Now()

	var updated eventResource
	if err := c.api.Put(ctx, fmt.Sprintf("/events/%d", id), toPayload(input), &updated); err != nil {
		c.finish(ctx, "update", start, err)
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}

	event := toEvent(updated)

	c.mu.Lock()
	replaced := false
	for i := range c.cache {
		if c.cache[i].ID == event.ID {
			c.cache[i] = event
			replaced = true
			break
		}
	}
	if !replaced {
		// Server knows an event the cache missed; adopt it.
		c.cache = append(c.cache, event)
	}
	c.mu.Unlock()
	c.notify()

	c.finish(ctx, "update", start, nil)
	return &event, nil
}

// Remove deletes an event and drops it from the cache. Removing an id the
// server no longer knows is not an error at this boundary: the desired
// end state already holds.
func (c *Client) Remove(ctx context.Context, id int64) error {
	start := time.Now()

	err := c.api.Delete(ctx, fmt.Sprintf("/events/%d", id))
	if err != nil {
		var nfe *backend.NotFoundError
		if !errors.As(err, &nfe) {
			c.finish(ctx, "remove", start, err)
			return fmt.Errorf("failed to delete event %d: %w", id, err)
		}
		c.logger.Debug("event already absent server-side", logging.EventID(id))
	}

	c.mu.Lock()
	removed := false
	for i := range c.cache {
		if c.cache[i].ID == id {
			c.cache = append(c.cache[:i], c.cache[i+1:]...)
			removed = true
			break
		}
	}
	c.mu.Unlock()
	if removed {
		c.notify()
	}

	c.finish(ctx, "remove", start, nil)
	return nil
}

// notify runs the registered subscribers outside the cache lock.
func (c *Client) notify() {
	c.mu.RLock()
	subs := make([]func(), len(c.subs))
	copy(subs, c.subs)
	c.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

func (c *Client) finish(ctx context.Context, op string, start time.Time, err error) {
	duration := time.Since(start)
	result := instrumentation.ResultSuccess
	if err != nil {
		result = instrumentation.ResultError
	}
	c.metrics.RecordStoreOperation(ctx, op, result, duration)
	c.logger.Debug("store operation",
		logging.Operation(op),
		logging.Status(result),
		slog.Duration(logging.KeyDuration, duration),
		logging.Err(err),
	)
}
