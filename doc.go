// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the votecast API server.

Votecast is a live candidate-voting service: anonymous participants
cast a vote, optionally attach a payment receipt image, and an
administrator confirms or rejects each vote. Confirmed tallies are
pushed to connected viewers over server-sent events and re-derived by
polling clients.

# Starting the Server

The server reads environment variables (a .env file is honored) or CLI
flags:

	ADMIN_KEY=... IP_HASH_SALT=... go run main.go

Or with flags:

	go run main.go -p 3000 -t sqlite -d votecast.db --admin-key ... --ip-salt ...

# Configuration

Required settings:

  - ADMIN_KEY (--admin-key): secret gating admin decisions
  - IP_HASH_SALT (--ip-salt): secret for IP hashing

Optional settings:

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN (default: votecast.db for sqlite)
  - CANDIDATES_FILE (--candidates): catalog JSON path
  - RECEIPT_REQUIRED (--receipt-required): confirm policy (default: true)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: durable vote record store, the single source of truth
  - lifecycle: vote state machine (pending → confirmed/rejected)
  - notify: fan-out broadcaster behind the /events SSE endpoint
  - catalog: read-only candidate list
  - handlers: HTTP request handlers (votes, admin, candidates, events)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - auth: token generation and admin key validation
  - db: driver selection and schema creation
  - cliparse: configuration parsing
  - reconcile: client-side polling/reconciliation library

See package documentation for each component.
*/
package main
