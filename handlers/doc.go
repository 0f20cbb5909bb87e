// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the votecast API.

# Handler Types

Each handler is a struct created via a constructor with its
dependencies injected:

  - VoteHandler: vote list, creation, receipt attachment, lookup
  - AdminHandler: confirm/reject decisions and full reset
  - CandidateHandler: candidate catalog and derived tallies
  - EventsHandler: server-sent event stream

# Vote Flow

	GET  /votes              → List
	POST /votes              → Create (pending, broadcasts voteCreated)
	POST /votes/{id}/receipt → AttachReceipt
	GET  /votes/{id}         → Get
	GET  /votes/mine         → Mine (X-Voter-Token)

# Admin Flow

Admin operations require the X-Admin-Key header:

	PUT    /votes/{id}/validate → Validate (broadcasts voteValidated)
	PUT    /votes/{id}/reject   → Reject (broadcasts voteRejected)
	DELETE /votes               → Reset (broadcasts votesReset)

# Live Updates

	GET /events → Stream (text/event-stream)

# Error Mapping

respondError translates the domain error taxonomy: not-found → 404,
validation → 400, invalid transition → 409, storage unavailable → 503.

# Tallies

ComputeTallies in tally.go derives per-candidate confirmed counts and
percentages from a vote list; /stats serves its output.
*/
package handlers
