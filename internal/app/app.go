package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/eatforce/internal/clock"
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/cycle"
	"github.com/julianstephens/eatforce/internal/ledger"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/plan"
	"github.com/julianstephens/eatforce/internal/reminder"
	"github.com/julianstephens/eatforce/internal/report"
	"github.com/julianstephens/eatforce/internal/stats"
	"github.com/julianstephens/eatforce/internal/storage"
	"github.com/julianstephens/eatforce/internal/utils"
)

var (
	ErrUnknownSlot      = errors.New("no slot scheduled at that time")
	ErrNoCurrentSlot    = errors.New("no slot within 30 minutes of now")
	ErrPermissionDenied = errors.New("notification permission was not granted")
)

// PermissionRequester asks the desktop for permission to show notifications.
type PermissionRequester interface {
	RequestPermission(ctx context.Context) (bool, error)
}

// Options wires an App. Store must already be loaded. Clock and Catalog default to the
// wall clock and the built-in plan.
type Options struct {
	Store      storage.Provider
	Clock      clock.Clock
	Catalog    *plan.Catalog
	Sink       reminder.Sink
	Permission PermissionRequester
}

// App owns the state shared by every surface for one session.
type App struct {
	store      storage.Provider
	clock      clock.Clock
	catalog    *plan.Catalog
	ledger     *ledger.Ledger
	engine     *reminder.Engine
	settings   models.Settings
	permission PermissionRequester
}

// New loads settings and the ledger from opts.Store and builds the reminder engine.
func New(opts Options) (*App, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("app requires a store")
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Catalog == nil {
		opts.Catalog = plan.Default()
	}

	settings, err := storage.LoadSettings(opts.Store)
	if err != nil {
		return nil, err
	}

	l := ledger.Load(opts.Store, opts.Clock)
	engine := reminder.New(reminder.Config{
		Catalog:  opts.Catalog,
		Ledger:   l,
		Settings: settings,
	}, opts.Sink)

	return &App{
		store:      opts.Store,
		clock:      opts.Clock,
		catalog:    opts.Catalog,
		ledger:     l,
		engine:     engine,
		settings:   settings,
		permission: opts.Permission,
	}, nil
}

// Now reads the app clock.
func (a *App) Now() time.Time {
	return a.clock.Now()
}

// Catalog is the slot plan in use.
func (a *App) Catalog() *plan.Catalog {
	return a.catalog
}

// Ledger exposes completion, workout and weight records.
func (a *App) Ledger() *ledger.Ledger {
	return a.ledger
}

// Close releases the store.
func (a *App) Close() error {
	return a.store.Close()
}

// Tick evaluates reminders for now.
func (a *App) Tick(now time.Time) []models.Notification {
	return a.engine.Evaluate(now)
}

// Run ticks every interval until ctx is cancelled, passing each emitted notification to
// onEmit.
func (a *App) Run(ctx context.Context, interval time.Duration, onEmit func(models.Notification)) error {
	err := clock.Run(ctx, a.clock, interval, func(now time.Time) {
		for _, n := range a.Tick(now) {
			if onEmit != nil {
				onEmit(n)
			}
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// MarkDone completes the slot at timeOfDay on date. The slot must exist in the catalog.
func (a *App) MarkDone(timeOfDay, date string) (models.Slot, error) {
	slot, ok := a.catalog.Find(timeOfDay)
	if !ok {
		return models.Slot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, timeOfDay)
	}
	if err := a.ledger.MarkDone(slot.Time, date); err != nil {
		return slot, err
	}
	logger.Debug("slot done", "time", slot.Time, "date", date)
	return slot, nil
}

// MarkCurrent completes the slot closest to now.
func (a *App) MarkCurrent() (models.Slot, error) {
	now := a.Now()
	i, ok := a.catalog.Nearest(now, constants.CurrentSlotWindow)
	if !ok {
		return models.Slot{}, ErrNoCurrentSlot
	}
	return a.MarkDone(a.catalog.Slots()[i].Time, utils.FormatDate(now))
}

// LogWeight records today's weight. It reports false when the input is invalid or today
// is already logged.
func (a *App) LogWeight(kg float64) (bool, error) {
	return a.ledger.LogWeight(utils.FormatDate(a.Now()), kg)
}

// LogWorkout records today's workout along with the current meal count.
func (a *App) LogWorkout(text string) error {
	return a.ledger.LogWorkout(utils.FormatDate(a.Now()), text)
}

// Stats summarizes today.
func (a *App) Stats() stats.Summary {
	return stats.Summarize(a.ledger, a.catalog, a.Now())
}

// ReportSnapshot gathers today's figures for the PDF report. The meal count captured
// with the workout log wins when it is non-zero; otherwise the live count is used.
func (a *App) ReportSnapshot() report.Snapshot {
	now := a.Now()
	date := utils.FormatDate(now)
	day := cycle.ForDate(now)

	snap := report.Snapshot{
		Date:        now,
		MealsTotal:  a.catalog.Len(),
		Lunch:       day.Lunch,
		Workout:     day.Workout,
		GeneratedAt: now,
	}

	snap.MealsCompleted = a.ledger.CountDoneForDay(date)
	if entry, ok := a.ledger.DailyLog(date); ok {
		snap.ActualWorkout = entry.WorkoutDone
		if entry.MealsCompleted > 0 {
			snap.MealsCompleted = entry.MealsCompleted
		}
	}
	if kg, ok := a.ledger.Weight(date); ok {
		snap.Weight = &kg
	}
	return snap
}

// WriteReport renders today's report into dir and returns the file path.
func (a *App) WriteReport(dir string) (string, error) {
	path, err := report.WriteFile(dir, a.ReportSnapshot())
	if err != nil {
		return "", err
	}
	logger.Info("report written", "path", path)
	return path, nil
}

// Settings returns the active settings.
func (a *App) Settings() models.Settings {
	return a.settings
}

// UpdateSettings persists s and applies it to the reminder engine.
func (a *App) UpdateSettings(s models.Settings) error {
	s.Normalize()
	if err := storage.SaveSettings(a.store, s); err != nil {
		return err
	}
	a.settings = s
	a.engine.SetSettings(s)
	a.engine.SetPermission(s.NotificationsEnabled)
	return nil
}

// EnableNotifications asks for permission and remembers the answer. When no requester
// is configured, or the request fails, the app keeps logging reminders in-process only.
func (a *App) EnableNotifications(ctx context.Context) (bool, error) {
	granted, err := a.RequestPermission(ctx)
	if err != nil {
		return false, err
	}
	if err := a.ApplyPermission(granted); err != nil {
		return false, err
	}
	return true, nil
}

// RequestPermission only talks to the requester and leaves app state untouched, so it
// may run outside the goroutine that owns the App.
func (a *App) RequestPermission(ctx context.Context) (bool, error) {
	if a.permission == nil {
		return false, ErrPermissionDenied
	}
	granted, err := a.permission.RequestPermission(ctx)
	if err != nil {
		logger.Warn("notification permission request failed", "error", err)
		return false, err
	}
	if !granted {
		return false, ErrPermissionDenied
	}
	return true, nil
}

// ApplyPermission records the outcome of RequestPermission.
func (a *App) ApplyPermission(granted bool) error {
	s := a.settings
	s.NotificationsEnabled = granted
	return a.UpdateSettings(s)
}

// DisableNotifications stops delivery; reminders still reach the alert log.
func (a *App) DisableNotifications() error {
	s := a.settings
	s.NotificationsEnabled = false
	return a.UpdateSettings(s)
}

// NotificationsEnabled reports whether reminders are delivered to the sink.
func (a *App) NotificationsEnabled() bool {
	return a.engine.Permitted()
}

// Alerts returns up to n notifications, newest first.
func (a *App) Alerts(n int) []models.Notification {
	return a.engine.Recent(n)
}

// DismissAlert removes the alert with id and reports whether it existed.
func (a *App) DismissAlert(id string) bool {
	return a.engine.Dismiss(id)
}
