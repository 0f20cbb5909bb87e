// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the durable vote record store.

VoteStore is the single source of truth for vote records. The contract:

	List() / ListByVoter(token) → all records, oldest first
	Get(id)                    → record or ErrNotFound
	Append(vote)               → assigns id + created_at, persists
	Update(id, mutate)         → atomic read-modify-write, or ErrNotFound
	Clear()                    → removes everything (admin reset)

Update serializes read-modify-write cycles under a store-level mutex,
so two concurrent updates to the same record cannot lose a write.
Reads never take the lock.

Persistence failures surface as errors wrapping ErrStorageUnavailable;
they are the only store errors an operator should consider retryable.
*/
package store
