package logging

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// RunID adds a run ID field.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Puzzle adds the problem kind being solved.
func Puzzle(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("puzzle", kind)
	}
}

// Found adds whether a path was found.
func Found(found bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("found", found)
	}
}

// Cost adds the path cost. Integer and float costs are both rendered as text.
func Cost(c any) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("cost", fmt.Sprint(c))
	}
}

// Steps adds the number of actions on the path.
func Steps(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("steps", n)
	}
}

// Expanded adds search diagnostics: states expanded and successors generated.
func Expanded(expanded, generated int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("expanded", expanded).Int("generated", generated)
	}
}

// Cached adds whether the result came from the solution cache.
func Cached(cached bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("cached", cached)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
