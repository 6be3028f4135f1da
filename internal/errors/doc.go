// Package errors provides structured error handling for the pokedex-api service.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Code to HTTP status mapping for the JSON API surface
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("pokemon not found")
//	err := errors.InvalidArgumentf("invalid id: %q", raw)
//
// Adding metadata:
//
//	err := errors.NotFound("pokemon not found").
//	    WithMeta("pokemon_id", id)
//
// Wrapping errors:
//
//	if err := client.GetDetail(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to fetch detail")
//	}
//
// Changing error semantics:
//
//	if resp.StatusCode == http.StatusNotFound {
//	    return errors.NotFoundf("pokemon %d not found upstream", id)
//	}
//
// # Error Checking
//
// Use the Is* helpers or GetCode to branch on error kinds:
//
//	if errors.IsNotFound(err) { ... }
//	status := errors.GetCode(err).HTTPStatus()
package errors
