// Package services defines shared utilities consumed by the podclip core
// packages and their transport and persistence collaborators.
//
// Key responsibilities:
//   - The error taxonomy (malformed time codes, bad durations, empty segment
//     lists, missing parameters, unauthenticated callers, missing episode IDs)
//     plus the Wrap helper and Kind classification used by the HTTP layer.
//   - Context helpers that stamp tenant IDs, episode IDs, and correlation
//     identifiers for logging and tracing.
//   - The Clock abstraction that lets updaters read wall-clock time exactly
//     once per call and lets tests pin it.
//
// Use these helpers when wiring new components so error reporting and
// observability stay uniform across the repository.
package services
