package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/roster/internal/dummyjson"
)

// Error is a structured command error with possible causes and commands to
// try. Execute prints it with Format.
type Error struct {
	Title       string   // Short error title
	Message     string   // Detailed message
	Causes      []string // Possible causes
	Suggestions []string // Commands worth trying
	Err         error    // Wrapped error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Title + ": " + e.Err.Error()
	}
	return e.Title
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Format returns the multi-line message printed to stderr.
func (e *Error) Format() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Error: %s\n", e.Title)

	if e.Message != "" {
		fmt.Fprintf(&sb, "\n  %s\n", e.Message)
	}

	if len(e.Causes) > 0 {
		sb.WriteString("\n  Possible causes:\n")
		for _, cause := range e.Causes {
			fmt.Fprintf(&sb, "    • %s\n", cause)
		}
	}

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n  Try:\n")
		for _, sug := range e.Suggestions {
			fmt.Fprintf(&sb, "    $ %s\n", sug)
		}
	}

	return sb.String()
}

// NewError creates a new Error.
func NewError(title string) *Error {
	return &Error{Title: title}
}

// WithMessage adds a detailed message.
func (e *Error) WithMessage(msg string) *Error {
	e.Message = msg
	return e
}

// WithCauses adds possible causes.
func (e *Error) WithCauses(causes ...string) *Error {
	e.Causes = append(e.Causes, causes...)
	return e
}

// WithSuggestions adds commands to try.
func (e *Error) WithSuggestions(sugs ...string) *Error {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// Wrap wraps an underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// fetchError explains a failed users fetch against endpoint.
func fetchError(err error, endpoint string) *Error {
	e := NewError("Could not load users").
		WithMessage(fmt.Sprintf("%s from %s", dummyjson.Describe(err), endpoint)).
		Wrap(err)

	var fe *dummyjson.FetchError
	if errors.As(err, &fe) && fe.StatusCode >= 500 {
		e.WithCauses("The users API is having problems")
	}
	switch dummyjson.Describe(err) {
	case "OFFLINE", "HOST NOT FOUND":
		e.WithCauses("No network connection", "The endpoint host is wrong")
	case "TIMEOUT":
		e.WithCauses("The users API is slow to respond")
	case "BAD RESPONSE":
		e.WithCauses("The endpoint does not serve the users API")
	}
	if fe != nil && fe.RequestID != "" {
		e.WithCauses("Request " + fe.RequestID + " is in the log file")
	}

	return e.WithSuggestions(
		"roster logs --level error  # See the logged failure",
		"roster fixture &           # Serve sample users locally",
		"roster --endpoint http://127.0.0.1:8080/users",
	)
}

// flagError reports an invalid flag value.
func flagError(flag, value string, err error, examples ...string) *Error {
	return NewError(fmt.Sprintf("Invalid --%s %q", flag, value)).
		WithMessage(err.Error()).
		WithSuggestions(examples...).
		Wrap(err)
}
