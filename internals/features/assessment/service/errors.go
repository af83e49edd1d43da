package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoIdentity: the request carries no usable candidate name.
	ErrNoIdentity = errors.New("no candidate identity")

	// ErrUnknownPart: the part id is outside A–E.
	ErrUnknownPart = errors.New("unknown part")

	// ErrAttemptLocked: the attempt is finalized and rejects writes.
	ErrAttemptLocked = errors.New("attempt is finalized and locked")
)

// IncompletePartsError rejects a finalize while required parts still
// have no non-empty answer. It names the missing parts so the caller
// can show them.
type IncompletePartsError struct {
	Missing []Part
}

func (e *IncompletePartsError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, p := range e.Missing {
		names = append(names, string(p))
	}
	return fmt.Sprintf("parts not completed yet: %s", strings.Join(names, ", "))
}
