package editor

import (
	"errors"
	"fmt"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateSubmitting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateSubmitting:
		return "submitting"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Event int

const (
	EventIdentifierAvailable Event = iota
	EventFetchResolved
	EventFetchRejected
	EventSubmitClicked
	EventUpdateResolved
	EventUpdateRejected
)

func (e Event) String() string {
	switch e {
	case EventIdentifierAvailable:
		return "identifier-available"
	case EventFetchResolved:
		return "fetch-resolved"
	case EventFetchRejected:
		return "fetch-rejected"
	case EventSubmitClicked:
		return "submit-clicked"
	case EventUpdateResolved:
		return "update-resolved"
	case EventUpdateRejected:
		return "update-rejected"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

var ErrIllegalTransition = errors.New("illegal transition")

// A new identifier may arrive in any state; it always restarts loading.
var transitions = map[State]map[Event]State{
	StateIdle: {
		EventIdentifierAvailable: StateLoading,
	},
	StateLoading: {
		EventIdentifierAvailable: StateLoading,
		EventFetchResolved:       StateLoaded,
		EventFetchRejected:       StateFailed,
	},
	StateLoaded: {
		EventIdentifierAvailable: StateLoading,
		EventSubmitClicked:       StateSubmitting,
	},
	StateSubmitting: {
		EventIdentifierAvailable: StateLoading,
		EventUpdateResolved:      StateLoaded,
		EventUpdateRejected:      StateLoaded,
	},
	StateFailed: {
		EventIdentifierAvailable: StateLoading,
	},
}

func transition(from State, ev Event) (State, error) {
	if to, ok := transitions[from][ev]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, from, ev)
}
