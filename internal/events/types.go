package events

// Event represents a calendar event as held in the client cache. DateTime
// is the canonical wall-clock string defined by the schedule package.
type Event struct {
	ID          int64
	Title       string
	Description string
	DateTime    string
}

// EventInput represents the input for creating or updating an event.
type EventInput struct {
	Title       string
	Description string
	DateTime    string
}

// eventResource is the wire shape the backend exchanges for an event.
type eventResource struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DateTime    string `json:"datetime"`
}

// eventPayload is the wire shape for create and update requests. The id
// is never sent in the body; updates address it in the path.
type eventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DateTime    string `json:"datetime"`
}

// toEvent converts a backend event resource to our Event type
func toEvent(r eventResource) Event {
	return Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DateTime:    r.DateTime,
	}
}

// toPayload converts an EventInput to the wire shape
func toPayload(in EventInput) eventPayload {
	return eventPayload{
		Title:       in.Title,
		Description: in.Description,
		DateTime:    in.DateTime,
	}
}
