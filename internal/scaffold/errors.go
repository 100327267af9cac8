package scaffold

import (
	"errors"
	"fmt"
)

// Kind classifies a scaffold failure.
type Kind int

const (
	// KindCreationFailure is any filesystem or rendering error raised while
	// the tree is being written.
	KindCreationFailure Kind = iota
	KindInvalidSlug
	KindInvalidSpec
	KindDestinationExists
)

func (k Kind) String() string {
	switch k {
	case KindInvalidSlug:
		return "invalid slug"
	case KindInvalidSpec:
		return "invalid spec"
	case KindDestinationExists:
		return "destination exists"
	default:
		return "creation failure"
	}
}

// Error is returned by Generate. Its message is the user-facing text
// written to the result line.
type Error struct {
	Kind Kind
	Path string // Plugin root as given, for KindDestinationExists
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindDestinationExists {
		return fmt.Sprintf("Directory %s already exists.", e.Path)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err. Errors that did not come from Generate
// are reported as KindCreationFailure.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindCreationFailure
}
