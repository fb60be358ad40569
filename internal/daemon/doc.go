// Package daemon runs the long-lived podclip API process.
//
// It wires configuration, the SQLite store, and the HTTP API into a single
// lifecycle with flock-based locking so only one server owns a data
// directory at a time. Startup runs the preflight checks and logs their
// results; shutdown drains the API server before releasing the lock.
package daemon
