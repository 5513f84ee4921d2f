package emails

import (
	"context"
	"fmt"
	"log/slog"

	"dayplan/internal/backend"
	"dayplan/internal/logging"
)

// Client fetches the classified email collection from the backend. It is
// read-only; triage happens upstream and the filter/sort pipeline here is
// pure derivation over what Fetch returns.
type Client struct {
	api    *backend.Client
	logger *slog.Logger
}

// NewClient creates a new email client. Logger may be nil.
func NewClient(api *backend.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		api:    api,
		logger: logging.WithService(logger, "emails"),
	}
}

// Fetch retrieves the full classified email collection.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	var resources []emailResource
	if err := c.api.Get(ctx, "/emails", &resources); err != nil {
		return nil, fmt.Errorf("failed to fetch emails: %w", err)
	}

	records := make([]Record, 0, len(resources))
	for _, r := range resources {
		records = append(records, toRecord(r))
	}

	c.logger.Debug("fetched emails", slog.Int("count", len(records)))
	return records, nil
}
