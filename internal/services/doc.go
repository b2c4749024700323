// Package services defines shared utilities consumed by the batch pipeline
// and the external media engine client.
//
// Key responsibilities:
//   - Context helpers that stamp clip names, stage names, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that let the pipeline
//     classify a failure (fatal configuration vs item skip vs item failure)
//     at the item boundary with errors.Is.
//
// Use these helpers when wiring new pipeline logic so error handling and
// observability stay uniform.
package services
