package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"

	"dayplan/internal/backend"
	"dayplan/internal/calendar"
	"dayplan/internal/config"
	"dayplan/internal/emails"
	"dayplan/internal/events"
	"dayplan/internal/instrumentation"
	"dayplan/internal/logging"
)

// engine bundles the configured clients every subcommand needs.
type engine struct {
	conf     config.Config
	logger   *slog.Logger
	metrics  *instrumentation.Metrics
	settings calendar.Settings
	store    *events.Client
	mail     *emails.Client
}

// newEngine loads the configuration and wires the backend clients.
// metrics may be nil for one-shot commands.
func newEngine(metrics *instrumentation.Metrics) (*engine, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(conf.LogLevel)

	var tokenSource oauth2.TokenSource
	if conf.Token != "" {
		tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: conf.Token})
	}

	api, err := backend.NewClient(backend.Config{
		BaseURL:     conf.BackendURL,
		TokenSource: tokenSource,
		Logger:      logger,
		Metrics:     metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	return &engine{
		conf:    conf,
		logger:  logger,
		metrics: metrics,
		settings: calendar.Settings{
			Timezone: conf.Timezone,
			Use24h:   conf.Use24h,
		},
		store: events.NewClient(api, logger, metrics),
		mail:  emails.NewClient(api, logger),
	}, nil
}

const dayLayout = "2006-01-02"

// resolveDay parses a YYYY-MM-DD flag value, defaulting to today.
func resolveDay(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, err := time.Parse(dayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q (want YYYY-MM-DD): %w", value, err)
	}
	return day, nil
}
