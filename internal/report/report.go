package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the tagged outcome of a run. Path is set only on success.
type Result struct {
	Status  string `json:"status"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// Success builds a success result for the plugin created at path.
func Success(path, message string) Result {
	return Result{Status: StatusSuccess, Path: path, Message: message}
}

// Failure builds an error result carrying err's message.
func Failure(err error) Result {
	return Result{Status: StatusError, Message: err.Error()}
}

// Write encodes r as one JSON line on w.
func Write(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
