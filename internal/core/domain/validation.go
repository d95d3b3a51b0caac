package domain

import (
	"fmt"
	"strings"
)

// Violations accumulates field validation failures so that all of them can
// be reported at once.
type Violations []string

// Add records a failure for field.
func (v *Violations) Add(field, msg string) {
	*v = append(*v, fmt.Sprintf("[%s: %s]", field, msg))
}

// Blank records a failure when value is empty after trimming.
func (v *Violations) Blank(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "must not be blank")
	}
}

// Err returns nil when nothing was recorded, otherwise an InvalidInput error
// listing every failure.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &Error{Kind: ErrInvalidInput, Msg: strings.Join(v, ", ")}
}
