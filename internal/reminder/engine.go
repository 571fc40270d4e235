package reminder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/cycle"
	"github.com/julianstephens/eatforce/internal/ledger"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/plan"
	"github.com/julianstephens/eatforce/internal/utils"
)

const (
	hydrationTitle = "💧 HYDRATE"
	hydrationBody  = "500ml now. 3.5L daily goal."
	movementTitle  = "🚶 MOVE IT"
	movementBody   = "Stand up. Get those steps in! 10K today."

	hydrationEveryHours  = 2
	movementEveryMinutes = 90
)

var newID = uuid.NewString

// Sink delivers a notification outside the process.
type Sink interface {
	Deliver(n models.Notification) error
}

// Config wires the engine to the day's plan and state.
type Config struct {
	Catalog  *plan.Catalog
	Ledger   *ledger.Ledger
	Settings models.Settings
	LogSize  int
}

// Engine decides which reminders are due on each clock tick. It keeps only in-memory
// state, so a restart may repeat a reminder within the same minute.
type Engine struct {
	catalog   *plan.Catalog
	ledger    *ledger.Ledger
	settings  models.Settings
	logSize   int
	sink      Sink
	permitted bool

	day           string
	lastHydration string
	lastMovement  string
	fired         map[string]bool

	log []models.Notification
}

// New creates an engine. Delivery through sink is attempted only while permission is
// granted; the initial permission comes from Settings.NotificationsEnabled.
func New(cfg Config, sink Sink) *Engine {
	if cfg.LogSize <= 0 {
		cfg.LogSize = constants.NotificationLogSize
	}
	cfg.Settings.Normalize()

	return &Engine{
		catalog:   cfg.Catalog,
		ledger:    cfg.Ledger,
		settings:  cfg.Settings,
		logSize:   cfg.LogSize,
		sink:      sink,
		permitted: cfg.Settings.NotificationsEnabled,
		fired:     make(map[string]bool),
	}
}

// SetSettings swaps in new settings for subsequent evaluations.
func (e *Engine) SetSettings(s models.Settings) {
	s.Normalize()
	e.settings = s
}

// SetPermission records whether notifications may be delivered through the sink.
func (e *Engine) SetPermission(granted bool) {
	e.permitted = granted
}

// Permitted reports whether delivery is currently allowed.
func (e *Engine) Permitted() bool {
	return e.permitted
}

// Evaluate checks every trigger against now and emits the reminders that are due.
// Each trigger fires at most once for its minute, and each slot at most once per day.
func (e *Engine) Evaluate(now time.Time) []models.Notification {
	date := utils.FormatDate(now)
	if date != e.day {
		e.day = date
		e.fired = make(map[string]bool)
	}

	minute := utils.MinuteOfDay(now)
	marker := date + " " + utils.FormatMinutes(minute)

	var emitted []models.Notification

	if e.settings.HydrationEnabled && now.Minute() == 0 && now.Hour()%hydrationEveryHours == 0 && e.lastHydration != marker {
		e.lastHydration = marker
		emitted = append(emitted, e.emit(now, constants.NotificationHydration, hydrationTitle, hydrationBody))
	}

	if e.settings.MovementEnabled && minute != 0 && minute%movementEveryMinutes == 0 && e.lastMovement != marker {
		e.lastMovement = marker
		emitted = append(emitted, e.emit(now, constants.NotificationMovement, movementTitle, movementBody))
	}

	schedule := cycle.Supplements(cycle.Index(now))
	for i, slot := range e.catalog.Slots() {
		if abs(minute-e.catalog.Minutes(i)) > e.settings.SlotToleranceMin {
			continue
		}
		key := plan.CompletionKey(slot.Time, date)
		if e.fired[key] || e.ledger.IsDone(slot.Time, date) {
			continue
		}
		e.fired[key] = true
		emitted = append(emitted, e.emit(now, constants.NotificationSlot, slot.Title, SlotBody(slot, schedule)))
	}

	return emitted
}

// SlotBody renders a slot's description followed by its supplement stack, if any.
func SlotBody(slot models.Slot, schedule models.SupplementSchedule) string {
	supps := plan.Resolve(slot, schedule)
	if len(supps) == 0 {
		return slot.Description
	}
	return fmt.Sprintf("%s\n\n💊 Stack: %s", slot.Description, strings.Join(supps, constants.SupplementSeparator))
}

func (e *Engine) emit(now time.Time, kind constants.NotificationKind, title, body string) models.Notification {
	n := models.Notification{
		ID:    newID(),
		Kind:  kind,
		Title: title,
		Body:  body,
		At:    now,
	}

	if e.permitted && e.sink != nil {
		if err := e.sink.Deliver(n); err != nil {
			logger.Warn("Failed to deliver notification", "kind", kind, "title", title, "error", err)
		}
	}

	e.log = append(e.log, n)
	if len(e.log) > e.logSize {
		e.log = append([]models.Notification(nil), e.log[len(e.log)-e.logSize:]...)
	}
	logger.Debug("Reminder emitted", "kind", kind, "title", title)
	return n
}

// Log returns the retained notifications, oldest first.
func (e *Engine) Log() []models.Notification {
	out := make([]models.Notification, len(e.log))
	copy(out, e.log)
	return out
}

// Recent returns up to n retained notifications, newest first.
func (e *Engine) Recent(n int) []models.Notification {
	if n > len(e.log) {
		n = len(e.log)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Notification, 0, n)
	for i := len(e.log) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, e.log[i])
	}
	return out
}

// Dismiss removes a notification from the log.
func (e *Engine) Dismiss(id string) bool {
	for i, n := range e.log {
		if n.ID == id {
			e.log = append(e.log[:i], e.log[i+1:]...)
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
