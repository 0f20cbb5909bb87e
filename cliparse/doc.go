// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment.

# Precedence

CLI flags take precedence over environment variables:

	go run main.go -p 3000 -t sqlite -d votecast.db

Environment fallbacks: PORT, DATABASE_URL, DATABASE_TYPE, ADMIN_KEY,
IP_HASH_SALT, CANDIDATES_FILE, RECEIPT_REQUIRED, POLL_INTERVAL.

# Required Settings

  - ADMIN_KEY (--admin-key): pre-shared secret gating admin endpoints
  - IP_HASH_SALT (--ip-salt): secret for IP address hashing

# Optional Settings

  - PORT (-p): server port (default 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - DATABASE_URL (-d): DSN; defaults to votecast.db for sqlite
  - CANDIDATES_FILE (--candidates): catalog JSON path
  - RECEIPT_REQUIRED (--receipt-required): confirm policy (default true)
  - POLL_INTERVAL: reconciliation poll cadence (default 3s)
*/
package cliparse
