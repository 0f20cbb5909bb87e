// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connectivity and schema creation.

# Drivers

Two drivers are registered:

  - postgres (github.com/lib/pq) for production deployments
  - sqlite (modernc.org/sqlite) for local development and tests

Open selects the driver from the configured database type. SQL
statements elsewhere use $1-style placeholders, in order and never
repeated, which both drivers bind positionally.

# Tables

  - vote: one row per vote record

Key constraints:

  - vote.id (primary key)
  - vote.status CHECK ('pending', 'confirmed', 'rejected')

Indexes exist on status, candidate_id, and voter_token.
*/
package db
