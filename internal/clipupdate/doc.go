// Package clipupdate validates partial clip update requests and turns them
// into sparse update descriptions for the persistence layer.
//
// Build reads the clock exactly once and reuses that instant for the derived
// processing duration, the error timestamp, and updatedAt. Fields the caller
// did not send never appear in the resulting Update, so the store leaves the
// matching columns untouched.
package clipupdate
