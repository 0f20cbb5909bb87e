// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateVoteRequest: candidateId, transactionId, receiptPreviewUrl
  - AttachReceiptRequest: receiptPreviewUrl

# Response Types

Types for JSON responses:

  - StatsResponse: totalVotes, totalConfirmed, candidates
  - CandidateTally: candidateId, name, confirmed, percent
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Vote: one participant's choice and its confirmation state
  - Candidate: read-only catalog entry

Votes carry voter token, IP hash, and user agent server-side; those
fields are never serialized.

# Constants

Status values:

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"

Notification event kinds:

	EventVoteCreated   = "voteCreated"
	EventVoteValidated = "voteValidated"
	EventVoteRejected  = "voteRejected"
	EventVotesReset    = "votesReset"
*/
package models
