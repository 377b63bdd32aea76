// Package errors provides the structured error type used across pokedex-tui.
//
// Every error carries a Code, a short message and optional metadata. Codes
// survive wrapping, so callers at the edge (the CLI and the TUI) can decide
// how to present a failure without string matching.
//
// # Basic Usage
//
//	err := errors.NotFound("pokemon not found")
//	err := errors.InvalidArgumentf("unknown learn method: %s", method)
//
//	if err := client.GetMove(ctx, name); err != nil {
//	    return errors.Wrapf(err, "failed to enrich move %s", name)
//	}
//
// # Domain Errors
//
// The catalog layers use a small taxonomy on top of the codes:
//
//   - InvalidGeneration: CodeInvalidArgument with the "generation" meta key.
//     Raised when a caller selects a generation outside [1,9].
//   - Upstream failures: CodeUnavailable for transport errors and 5xx
//     responses, CodeNotFound for 404s, CodeResourceExhausted for 429s.
//   - Malformed records: CodeDataLoss with "resource", "key" and "field"
//     meta. Raised only at the fetch boundary for fields we cannot default.
//
// A cache miss is not an error. Caches report misses with a boolean.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("BaseURL", cfg.BaseURL, vb)
//	errors.ValidateNonNegative("Cache.Moves", cfg.Cache.Moves, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
