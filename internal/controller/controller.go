// Package controller holds the per-page view-state machines consumed by an
// embedding UI. Each controller wraps the domain services behind narrow
// interfaces, tracks one page's lifecycle and keeps a single error slot.
//
// State transitions: Idle -> Loading -> Ready | LoadFailed; Ready ->
// Submitting -> Ready. A mutex guards all state; there is no background
// work, so every transition happens inside a caller's goroutine.
package controller

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// State is the lifecycle phase of one page.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateLoadFailed
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateLoadFailed:
		return "load_failed"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// ErrSubmitInFlight is returned when a submit is refused because another one
// has not finished yet.
var ErrSubmitInFlight = errors.New("controller: submit already in flight")

// ErrStaleLoad is returned by Load when the page was reset or reloaded while
// the fetch was running; the result has been dropped.
var ErrStaleLoad = errors.New("controller: load superseded")

// ErrUnknownEntry is returned when a toggle targets an entry that is not in
// the loaded day plan.
var ErrUnknownEntry = errors.New("controller: entry not loaded")

// SessionGate supplies the identity of the signed-in user. It returns
// uuid.Nil when no session is active; stores reject that downstream.
type SessionGate interface {
	UserID() uuid.UUID
}

// GateFunc adapts a function to a SessionGate.
type GateFunc func() uuid.UUID

func (f GateFunc) UserID() uuid.UUID { return f() }

// page carries the state shared by all controllers. The embedding
// controller's methods must hold mu around every access.
type page struct {
	mu    sync.Mutex
	state State
	epoch uint64
	err   error
}

// beginLoad moves the page to Loading and returns the epoch this load
// belongs to. A later Reset or re-Load bumps the epoch, which invalidates
// the result of this one.
func (p *page) beginLoad() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.epoch++
	p.state = StateLoading
	p.err = nil
	return p.epoch
}

// stale reports whether the given load epoch has been superseded.
// Caller must hold mu.
func (p *page) stale(epoch uint64) bool {
	return p.epoch != epoch
}

// reset returns the page to Idle and invalidates in-flight loads.
// Caller must hold mu.
func (p *page) reset() {
	p.epoch++
	p.state = StateIdle
	p.err = nil
}

// State returns the current lifecycle phase.
func (p *page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err returns the page's error slot: the most recent load or submit failure,
// or nil. The slot is last-write-wins; a later failure replaces an earlier
// one and a successful operation clears it.
func (p *page) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
