// Package analytics sends product analytics events to PostHog.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultEndpoint is the PostHog ingestion host used when none is configured.
const DefaultEndpoint = "https://eu.i.posthog.com"

// Tracker records named events for a caller.
type Tracker interface {
	Track(distinctID, event string, properties map[string]any)
	Close() error
}

// NopTracker drops every event. It is used when no API key is configured.
type NopTracker struct{}

func (NopTracker) Track(string, string, map[string]any) {}

func (NopTracker) Close() error { return nil }

// PosthogTracker enqueues events on a posthog.Client, which batches and
// sends them in the background.
type PosthogTracker struct {
	client posthog.Client
	logger *slog.Logger
}

// NewTracker returns a PostHog-backed Tracker, or a NopTracker when apiKey
// is empty or the client cannot be built.
func NewTracker(apiKey, endpoint string, logger *slog.Logger) Tracker {
	if apiKey == "" {
		logger.Warn("PostHog API key is empty, analytics disabled")
		return NopTracker{}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to create PostHog client, analytics disabled", slog.String("error", err.Error()))
		return NopTracker{}
	}
	logger.Info("PostHog analytics enabled", slog.String("endpoint", endpoint))
	return &PosthogTracker{client: client, logger: logger}
}

func (t *PosthogTracker) Track(distinctID, event string, properties map[string]any) {
	err := t.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		t.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (t *PosthogTracker) Close() error {
	return t.client.Close()
}
