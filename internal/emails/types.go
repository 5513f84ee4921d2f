package emails

import (
	"time"

	"dayplan/internal/schedule"
)

// Record is one AI-classified email as produced by the backend pipeline.
// Records are read-only to this client; classification and summarization
// happen upstream.
type Record struct {
	ID          int64
	Subject     string
	Sender      string
	Summary     string
	Category    string
	Priority    string // "high", "medium", "low" or anything else
	Sentiment   string
	ActionItems string
	ReceivedAt  time.Time
}

// emailResource is the wire shape the backend returns for an email.
type emailResource struct {
	ID          int64  `json:"id"`
	Subject     string `json:"subject"`
	Sender      string `json:"sender"`
	Summary     string `json:"summary"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Sentiment   string `json:"sentiment"`
	ActionItems string `json:"action_items"`
	ReceivedAt  string `json:"received_at"`
}

// toRecord converts a backend email resource to our Record type.
// received_at is a real instant, so it goes through the instant parse.
func toRecord(r emailResource) Record {
	record := Record{
		ID:          r.ID,
		Subject:     r.Subject,
		Sender:      r.Sender,
		Summary:     r.Summary,
		Category:    r.Category,
		Priority:    r.Priority,
		Sentiment:   r.Sentiment,
		ActionItems: r.ActionItems,
	}

	if r.ReceivedAt != "" {
		if t, err := schedule.ParseInstant(r.ReceivedAt); err == nil {
			record.ReceivedAt = t
		}
	}

	return record
}
