// Package episode holds the stored episode shape and formats it for API
// consumers.
//
// Older records carry a scalar status; newer ones carry a status history.
// Both are folded into a single StatusRecord whose Current method applies the
// one resolution rule: the history's current status wins whenever it can be
// derived, and the scalar is consulted only otherwise.
package episode
