// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lifecycle enforces the vote state machine.

# State Machine

Every vote starts pending; confirmed and rejected are terminal:

	pending → confirmed  (Confirm, requires receipt under policy)
	pending → rejected   (Reject)

Deciding an already-decided vote fails with ErrInvalidTransition so
callers can distinguish "already decided" from success; the record and
tallies are untouched and nothing is broadcast twice.

# Operations and Events

	CreateVote    → voteCreated
	AttachReceipt → (no event)
	Confirm       → voteValidated
	Reject        → voteRejected
	ResetAll      → votesReset

Events fire only after the store write succeeds. The Manager never
retries; retry policy belongs to the caller, and only storage failures
(store.ErrStorageUnavailable) are worth retrying.
*/
package lifecycle
