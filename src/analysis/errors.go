package analysis

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// MissingInputError reports that the input table does not exist. It is the only
// failure the command turns into the "run the generator first" message.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s not found", e.Path)
}

// Hint is the message shown to the user when the table is missing.
func (e *MissingInputError) Hint() string {
	return fmt.Sprintf("Error: %s not found. Please run the Java generator first.", e.Path)
}
