package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"dayplan/internal/backend"
	"dayplan/internal/events"
	"dayplan/internal/logging"
	"dayplan/internal/schedule"
)

// State is the form controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrNotIdle is returned when a new create or edit is started while
	// the form is already open.
	ErrNotIdle = errors.New("form is not idle")

	// ErrNotEditing is returned when submit or cancel is invoked with no
	// open form.
	ErrNotEditing = errors.New("form is not editing")

	// ErrSubmitInFlight is returned when submit is invoked while a prior
	// submit is still outstanding. The new issuance is suppressed; the
	// in-flight one is never cancelled.
	ErrSubmitInFlight = errors.New("a submit is already in flight")
)

// Fields is the editable field state of the form.
type Fields struct {
	Title       string
	Description string
	TimeOfDay   string
	Day         time.Time
}

// Controller is the event form's state machine: Idle until a create or
// edit starts, Editing while fields are gathered, Submitting for the
// single outstanding write. It owns its field state explicitly; nothing
// here is process-wide.
type Controller struct {
	store  *events.Client
	logger *slog.Logger

	mu     sync.Mutex
	state  State
	editID int64 // 0 while in create mode
	fields Fields

	selection   time.Time // month-grid selected day
	dayViewDate *time.Time
}

// NewController creates a form controller bound to an event store.
// Logger may be nil.
func NewController(store *events.Client, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:  store,
		logger: logging.WithService(logger, "form"),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Fields returns the current field values.
func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// EditingID returns the bound event id and true when the form is editing
// an existing event.
func (c *Controller) EditingID() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editID, c.editID != 0
}

// StartCreate opens the form in create mode with cleared fields.
func (c *Controller) StartCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		return ErrNotIdle
	}
	c.state = StateEditing
	c.editID = 0
	c.fields = Fields{}
	return nil
}

// StartEdit opens the form bound to an existing event. Fields are
// populated from the canonical datetime's textual fields so re-saving an
// untouched form never drifts the stored value.
func (c *Controller) StartEdit(ev events.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		return ErrNotIdle
	}

	day, timeOfDay, err := schedule.Extract(ev.DateTime)
	if err != nil {
		return fmt.Errorf("failed to populate form from event %d: %w", ev.ID, err)
	}

	c.state = StateEditing
	c.editID = ev.ID
	c.fields = Fields{
		Title:       ev.Title,
		Description: ev.Description,
		TimeOfDay:   timeOfDay,
		Day:         day,
	}
	return nil
}

// SetTitle sets the title field.
func (c *Controller) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Title = title
}

// SetDescription sets the description field.
func (c *Controller) SetDescription(description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Description = description
}

// SetTimeOfDay sets the HH:MM field. Validation happens at submit.
func (c *Controller) SetTimeOfDay(timeOfDay string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.TimeOfDay = timeOfDay
}

// SetDay sets the form's day field; used to reschedule during an edit.
func (c *Controller) SetDay(day time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Day = day
}

// SetSelection records the month-grid selected day, the fallback target
// for new events.
func (c *Controller) SetSelection(day time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = day
}

// SetDayViewDate records the active day view. While a day view is open,
// new events land on that day regardless of the month-grid selection.
func (c *Controller) SetDayViewDate(day time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := day
	c.dayViewDate = &d
}

// ClearDayViewDate closes the day view for targeting purposes.
func (c *Controller) ClearDayViewDate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dayViewDate = nil
}

// TargetDay resolves the day a submit will schedule on. Edits keep the
// form's own day; creates prefer the open day view over the month grid.
func (c *Controller) TargetDay() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetDayLocked()
}

func (c *Controller) targetDayLocked() time.Time {
	if c.editID != 0 {
		return c.fields.Day
	}
	if c.dayViewDate != nil {
		return *c.dayViewDate
	}
	return c.selection
}

// Submit validates the fields, builds the canonical datetime and routes
// to create or update. On validation or transport failure the form stays
// in Editing with its fields intact so the user can correct or retry; on
// success it returns to Idle cleared. While the write is outstanding the
// state is Submitting and further submits are suppressed.
func (c *Controller) Submit(ctx context.Context) (*events.Event, error) {
	c.mu.Lock()

	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	case StateEditing:
	default:
		c.mu.Unlock()
		return nil, ErrNotEditing
	}

	if strings.TrimSpace(c.fields.Title) == "" {
		c.mu.Unlock()
		return nil, &backend.ValidationError{Detail: "title must not be empty"}
	}

	canonical, err := schedule.Combine(c.targetDayLocked(), c.fields.TimeOfDay)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	input := events.EventInput{
		Title:       c.fields.Title,
		Description: c.fields.Description,
		DateTime:    canonical,
	}
	editID := c.editID
	c.state = StateSubmitting
	c.mu.Unlock()

	var result *events.Event
	if editID != 0 {
		result, err = c.store.Update(ctx, editID, input)
	} else {
		result, err = c.store.Create(ctx, input)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateEditing
		c.logger.Warn("submit failed", logging.Err(err))
		return nil, err
	}

	c.state = StateIdle
	c.editID = 0
	c.fields = Fields{}
	c.logger.Debug("submit succeeded", logging.EventID(result.ID))
	return result, nil
}

// Cancel discards all field state and returns to Idle without touching
// the store.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditing {
		return ErrNotEditing
	}
	c.state = StateIdle
	c.editID = 0
	c.fields = Fields{}
	return nil
}
