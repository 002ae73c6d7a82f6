package client

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEditorClosed is returned when saving or editing without an open draft.
	ErrEditorClosed = errors.New("editor is not open")
	// ErrSubmitInFlight is returned when a save is already running.
	ErrSubmitInFlight = errors.New("a save is already in flight")
)

type EditorState int

const (
	StateClosed EditorState = iota
	StateOpen
	StateSubmitting
)

type EditorMode int

const (
	ModeNew EditorMode = iota
	ModeEdit
)

// validate is shared across all editors.
var validate = validator.New()

// EditorConfig wires one resource type into the editor.
type EditorConfig[R any] struct {
	// Create is called on save when the draft has no identity yet.
	Create func(ctx context.Context, draft R) (R, error)
	// Update is called on save when the draft carries an identity.
	Update func(ctx context.Context, draft R) (R, error)
	// ID extracts the identity, zero means not yet persisted.
	ID func(R) int64
	// Clone deep-copies a draft. Optional, defaults to a value copy, set it
	// when R holds slices or maps.
	Clone func(R) R
}

// Editor drives one admin form: open a blank or existing resource, mutate
// the draft, save. The draft is always a copy, the list item handed to
// OpenEdit is never touched until a save succeeds.
type Editor[R any] struct {
	cfg EditorConfig[R]

	mu    sync.Mutex
	state EditorState
	mode  EditorMode
	draft R
}

func NewEditor[R any](cfg EditorConfig[R]) *Editor[R] {
	if cfg.Clone == nil {
		cfg.Clone = func(r R) R { return r }
	}
	return &Editor[R]{cfg: cfg}
}

// OpenNew starts a draft from the given blank value.
func (e *Editor[R]) OpenNew(blank R) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSubmitting {
		return
	}
	e.state = StateOpen
	e.mode = ModeNew
	e.draft = e.cfg.Clone(blank)
}

// OpenEdit starts a draft from an existing item. The item is cloned, edits
// stay local until Save succeeds.
func (e *Editor[R]) OpenEdit(item R) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSubmitting {
		return
	}
	e.state = StateOpen
	e.mode = ModeEdit
	e.draft = e.cfg.Clone(item)
}

// Close discards the draft. A running save cannot be cancelled.
func (e *Editor[R]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSubmitting {
		return
	}
	e.state = StateClosed
	var zero R
	e.draft = zero
}

func (e *Editor[R]) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor[R]) Mode() EditorMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Draft returns a copy of the current draft.
func (e *Editor[R]) Draft() (R, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	var zero R
	if e.state == StateClosed {
		return zero, ErrEditorClosed
	}
	return e.cfg.Clone(e.draft), nil
}

// Mutate applies fn to the draft in place. Edits stay possible while a save
// is in flight since the submitted payload was cloned beforehand; a
// successful save still closes the editor and discards the draft.
func (e *Editor[R]) Mutate(fn func(draft *R)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateClosed {
		return ErrEditorClosed
	}
	fn(&e.draft)
	return nil
}

// Save validates the draft and submits it. An invalid draft is rejected
// before any API call. Create versus update is decided by the identity of
// the draft alone. On failure the editor reopens with the draft intact so
// the admin can retry, on success it closes.
func (e *Editor[R]) Save(ctx context.Context) (R, error) {
	var zero R

	e.mu.Lock()
	switch e.state {
	case StateClosed:
		e.mu.Unlock()
		return zero, ErrEditorClosed
	case StateSubmitting:
		e.mu.Unlock()
		return zero, ErrSubmitInFlight
	}

	draft := e.cfg.Clone(e.draft)
	if err := validate.Struct(draft); err != nil {
		e.mu.Unlock()
		return zero, err
	}
	e.state = StateSubmitting
	e.mu.Unlock()

	var (
		saved R
		err   error
	)
	if e.cfg.ID(draft) == 0 {
		saved, err = e.cfg.Create(ctx, draft)
	} else {
		saved, err = e.cfg.Update(ctx, draft)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = StateOpen
		return zero, err
	}
	e.state = StateClosed
	e.draft = zero
	return saved, nil
}

// SaveInto saves the draft and folds the server-returned record into the
// collection: creates append, updates replace the matching element.
func SaveInto[R any](ctx context.Context, e *Editor[R], col *Collection[R]) (R, error) {
	saved, err := e.Save(ctx)
	if err != nil {
		return saved, err
	}
	col.Upsert(saved)
	return saved, nil
}
