// Package dummyjson provides an HTTP client for DummyJSON-style user listings.
//
// # Overview
//
// The roster is read from a single endpoint (by default
// https://dummyjson.com/users) that answers GET with a JSON document of the
// form {"users": [...], "total": n, "skip": n, "limit": n}. The package is
// split into:
//
//   - client.go: HTTP client, endpoint normalization, request handling
//   - types.go: Data structures mirroring the users payload
//   - errors.go: FetchError and the status-bar classifier Describe
//   - requestid.go: ULID request identifiers
//
// # Client Usage
//
//	client, err := dummyjson.NewClient(cfg.Endpoint,
//		dummyjson.WithLimit(cfg.Limit),
//		dummyjson.WithTimeout(cfg.RequestTimeout()),
//	)
//	if err != nil {
//		return fmt.Errorf("init users client: %w", err)
//	}
//	users, err := client.FetchUsers(ctx)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: roster/0.1
//   - Carry an X-Request-ID ULID so log lines can be matched to a fetch
//   - Have a per-request timeout (10 seconds unless configured)
//
// # Error Handling
//
// Every failure surfaces as *FetchError, never as a panic:
//
//   - Transport errors (connection refused, DNS, timeout): StatusCode is 0
//   - Non-2xx responses: StatusCode holds the HTTP status
//   - Malformed bodies: wrapped "decode response" error
//
// Callers use errors.As to inspect the status and Describe for a short
// human label.
package dummyjson
