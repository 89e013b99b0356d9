package dummyjson

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FetchError reports a failed roster request: transport failure, non-2xx
// status, or an undecodable body.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	RequestID  string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch users %s failed", e.URL)
	}
	return fmt.Sprintf("fetch users: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Describe turns a fetch failure into a short label for the status bar.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) && (fe.StatusCode < 200 || fe.StatusCode > 299) && fe.StatusCode != 0 {
		text := http.StatusText(fe.StatusCode)
		if text == "" {
			return fmt.Sprintf("HTTP %d", fe.StatusCode)
		}
		return fmt.Sprintf("HTTP %d %s", fe.StatusCode, strings.ToUpper(text))
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "decode response"):
		return "BAD RESPONSE"
	default:
		return "ERROR"
	}
}
