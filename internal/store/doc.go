// Package store persists episodes and clip records in SQLite.
//
// Open prepares the database under the configured data directory, applies
// WAL and busy-timeout pragmas, and creates or verifies the embedded schema.
// Episodes are scoped by tenant; clips are keyed by (episode_id, clip_id) and
// written through sparse upserts so a clip update touches only the attributes
// it carries. Writes retry briefly when SQLite reports the database as busy.
package store
