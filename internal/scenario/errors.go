package scenario

import (
	"errors"
	"fmt"
)

// Scenario errors.
var (
	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("scenario: unknown file format")

	// ErrInvalidScenario indicates a structurally invalid scenario.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownCreator indicates a step naming an undeclared creator.
	ErrUnknownCreator = errors.New("scenario: unknown creator")

	// ErrUnknownOp indicates a handler with an unsupported operation.
	ErrUnknownOp = errors.New("scenario: unknown handler op")

	// ErrExpectationFailed indicates a final state differing from expect.
	ErrExpectationFailed = errors.New("scenario: expectation failed")
)

// ParseError represents an error while decoding a scenario file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
