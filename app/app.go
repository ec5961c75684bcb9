// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package app

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/ymiyake/manpokei/client"
	"github.com/ymiyake/manpokei/detector"
	"github.com/ymiyake/manpokei/localstate"
	"github.com/ymiyake/manpokei/models"
)

// SyncInterval is how often the periodic push to the server fires.
const SyncInterval = 30 * time.Second

// Validation bounds for the settings-save boundary. Out-of-range values
// are rejected before anything changes, locally or remotely.
const (
	MinGoal        = 100
	MaxGoal        = 100000
	MinStride      = 30
	MaxStride      = 150
	MinWeight      = 20
	MaxWeight      = 200
	MinSensitivity = 1
	MaxSensitivity = 30
)

var (
	ErrGoalOutOfRange        = errors.New("goal out of range")
	ErrStrideOutOfRange      = errors.New("stride out of range")
	ErrWeightOutOfRange      = errors.New("weight out of range")
	ErrSensitivityOutOfRange = errors.New("sensitivity out of range")
	ErrPermissionDenied      = errors.New("motion sensor permission denied")
)

// EventKind names a user or lifecycle action routed through Dispatch.
type EventKind string

const (
	EventMotion           EventKind = "motion"
	EventStart            EventKind = "start"
	EventStop             EventKind = "stop"
	EventSyncTick         EventKind = "sync-tick"
	EventVisibilityHidden EventKind = "visibility-hidden"
	EventUnload           EventKind = "unload"
	EventSaveGoal         EventKind = "save-goal"
	EventSavePersonal     EventKind = "save-personal"
	EventSetSensitivity   EventKind = "set-sensitivity"
	EventReset            EventKind = "reset"
)

// Event carries an EventKind plus whichever payload fields that kind
// reads. Unused fields are ignored.
type Event struct {
	Kind        EventKind
	Sample      detector.Sample
	Goal        int
	Stride      int
	Weight      int
	Sensitivity int
}

// App wires the detector, the local state, its durable mirror, and the
// API client into one event-driven counter. All mutation flows through
// Dispatch so there is exactly one handler per action.
type App struct {
	state  *localstate.State
	mirror *localstate.Mirror
	api    *client.Client
	det    *detector.Detector

	handlers map[EventKind]func(context.Context, Event) error

	// now is swappable for tests.
	now func() time.Time

	// OnChange, when set, is called with a fresh snapshot after any
	// state mutation. Used by the UI layer to repaint.
	OnChange func(localstate.Snapshot)

	// Permission, when set, gates EventStart the way the browser's
	// sensor permission prompt does. nil means always granted.
	Permission func() bool
}

// New builds an App around an existing state, mirror, and API client.
// The detector starts at the state's current sensitivity.
func New(state *localstate.State, mirror *localstate.Mirror, api *client.Client) *App {
	a := &App{
		state:  state,
		mirror: mirror,
		api:    api,
		det:    detector.New(state.Profile().Sensitivity),
		now:    time.Now,
	}
	a.handlers = map[EventKind]func(context.Context, Event) error{
		EventMotion:           a.handleMotion,
		EventStart:            a.handleStart,
		EventStop:             a.handleStop,
		EventSyncTick:         a.handleSync,
		EventVisibilityHidden: a.handleSync,
		EventUnload:           a.handleSync,
		EventSaveGoal:         a.handleSaveGoal,
		EventSavePersonal:     a.handleSavePersonal,
		EventSetSensitivity:   a.handleSetSensitivity,
		EventReset:            a.handleReset,
	}
	return a
}

// Dispatch routes an event to its handler. Unknown kinds are ignored.
func (a *App) Dispatch(ctx context.Context, e Event) error {
	h, ok := a.handlers[e.Kind]
	if !ok {
		slog.Debug("Ignoring unknown event", "kind", e.Kind)
		return nil
	}
	return h(ctx, e)
}

// Start restores the mirror, pulls settings and today's count from the
// server, and resumes an interrupted counting session.
func (a *App) Start(ctx context.Context) {
	a.state.Restore(a.mirror.Load())
	a.det.SetSensitivity(a.state.Profile().Sensitivity)

	a.LoadSettings(ctx)
	a.LoadToday(ctx)

	if a.state.Counting() {
		slog.Info("Resuming interrupted counting session")
	}
	a.persist()
}

// Run drives the periodic sync until ctx is cancelled, then pushes one
// final time so a shutdown behaves like a page unload.
func (a *App) Run(ctx context.Context) {
	ticker := time.NewTicker(SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.Dispatch(ctx, Event{Kind: EventSyncTick})
		case <-ctx.Done():
			a.Dispatch(context.Background(), Event{Kind: EventUnload})
			return
		}
	}
}

// LoadSettings overwrites the local profile with the server's copy.
// On failure the local profile stands.
func (a *App) LoadSettings(ctx context.Context) {
	s := a.api.GetSettings(ctx)
	if s == nil {
		slog.Warn("Settings load failed, keeping local profile")
		return
	}
	a.state.SetProfile(*s)
	a.det.SetSensitivity(s.Sensitivity)
	a.persist()
}

// LoadToday reconciles today's counter with the server: the larger
// value wins, so steps counted offline are never lost.
func (a *App) LoadToday(ctx context.Context) {
	rec := a.api.GetSteps(ctx, a.today())
	if rec == nil {
		slog.Warn("Today load failed, keeping local counter")
		return
	}
	if a.state.AdoptServerSteps(rec.Steps) {
		slog.Info("Adopted larger server count", "steps", rec.Steps)
		a.persist()
	}
}

// SyncToServer pushes the current counter. The push is skipped when
// nothing changed and the counter is zero. The dirty flag is cleared
// after the attempt whether or not it succeeded; a failed push waits
// for the next step to re-dirty the state.
func (a *App) SyncToServer(ctx context.Context) {
	steps, goal, dirty := a.state.SyncView()
	if !dirty && steps == 0 {
		return
	}
	if !a.api.PostSteps(ctx, a.today(), steps, goal) {
		slog.Warn("Step push failed", "steps", steps)
	}
	a.state.ClearDirty()
}

// History fetches the server window and merges in the live counter.
func (a *App) History(ctx context.Context, days int) []models.DailyStepRecord {
	return a.api.GetHistory(ctx, days)
}

// DeviceID returns the identifier all API calls are keyed by.
func (a *App) DeviceID() string {
	return a.api.DeviceID()
}

// Snapshot returns a copy of the current state for display.
func (a *App) Snapshot() localstate.Snapshot {
	return a.state.Snapshot()
}

// Counting reports whether a session is active.
func (a *App) Counting() bool {
	return a.state.Counting()
}

func (a *App) handleMotion(ctx context.Context, e Event) error {
	if !a.state.Counting() {
		return nil
	}
	if a.det.Process(e.Sample) {
		a.state.AddStep()
		a.persist()
	}
	return nil
}

func (a *App) handleStart(ctx context.Context, e Event) error {
	if a.Permission != nil && !a.Permission() {
		return ErrPermissionDenied
	}
	a.state.StartCounting(a.now())
	a.persist()
	return nil
}

func (a *App) handleStop(ctx context.Context, e Event) error {
	a.state.StopCounting()
	a.persist()
	a.SyncToServer(ctx)
	return nil
}

func (a *App) handleSync(ctx context.Context, e Event) error {
	a.SyncToServer(ctx)
	return nil
}

func (a *App) handleSaveGoal(ctx context.Context, e Event) error {
	if e.Goal < MinGoal || e.Goal > MaxGoal {
		return ErrGoalOutOfRange
	}
	a.state.SetGoal(e.Goal)
	a.persist()
	a.pushSettings(ctx)
	return nil
}

func (a *App) handleSavePersonal(ctx context.Context, e Event) error {
	if e.Stride < MinStride || e.Stride > MaxStride {
		return ErrStrideOutOfRange
	}
	if e.Weight < MinWeight || e.Weight > MaxWeight {
		return ErrWeightOutOfRange
	}
	a.state.SetPersonal(e.Stride, e.Weight)
	a.persist()
	a.pushSettings(ctx)
	return nil
}

func (a *App) handleSetSensitivity(ctx context.Context, e Event) error {
	if e.Sensitivity < MinSensitivity || e.Sensitivity > MaxSensitivity {
		return ErrSensitivityOutOfRange
	}
	a.state.SetSensitivity(e.Sensitivity)
	a.det.SetSensitivity(e.Sensitivity)
	a.persist()
	a.pushSettings(ctx)
	return nil
}

func (a *App) handleReset(ctx context.Context, e Event) error {
	if err := a.mirror.Clear(); err != nil {
		slog.Warn("Mirror clear failed during reset", "error", err)
	}
	a.state.Reset()
	a.det.SetSensitivity(models.DefaultSensitivity)
	a.persist()
	a.pushSettings(ctx)
	return nil
}

// pushSettings sends the current profile to the server, best effort.
func (a *App) pushSettings(ctx context.Context) {
	if !a.api.PostSettings(ctx, a.state.Profile()) {
		slog.Warn("Settings push failed")
	}
}

// persist saves the mirror and notifies the UI hook.
func (a *App) persist() {
	snap := a.state.Snapshot()
	if err := a.mirror.Save(snap); err != nil {
		slog.Warn("Mirror save failed", "error", err)
	}
	if a.OnChange != nil {
		a.OnChange(snap)
	}
}

func (a *App) today() string {
	return a.now().Format(models.DateLayout)
}

// Calories estimates kcal burned for the current counter.
func (a *App) Calories() int {
	snap := a.state.Snapshot()
	return int(math.Round(float64(snap.Steps) * 0.03 * float64(snap.Weight) / 60))
}

// DistanceKm converts the counter to kilometers using the stride length.
func (a *App) DistanceKm() float64 {
	snap := a.state.Snapshot()
	return float64(snap.Steps) * float64(snap.Stride) / 100000
}

// WalkMinutes reports how long the current session has been running,
// zero when not counting.
func (a *App) WalkMinutes() int {
	snap := a.state.Snapshot()
	if !snap.Counting || snap.StartTime == 0 {
		return 0
	}
	elapsed := a.now().Sub(time.UnixMilli(snap.StartTime))
	return int(math.Round(elapsed.Minutes()))
}
