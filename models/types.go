// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote status constants
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
)

// Notification event kinds
const (
	EventVoteCreated   = "voteCreated"
	EventVoteValidated = "voteValidated"
	EventVoteRejected  = "voteRejected"
	EventVotesReset    = "votesReset"
)

// Request types

type CreateVoteRequest struct {
	CandidateID       int     `json:"candidateId"`
	TransactionID     *string `json:"transactionId,omitempty"`
	ReceiptPreviewURL *string `json:"receiptPreviewUrl,omitempty"`
}

type AttachReceiptRequest struct {
	ReceiptPreviewURL string `json:"receiptPreviewUrl"`
}

// Response types

type StatsResponse struct {
	TotalVotes     int              `json:"totalVotes"`
	TotalConfirmed int              `json:"totalConfirmed"`
	Candidates     []CandidateTally `json:"candidates"`
}

type CandidateTally struct {
	CandidateID int     `json:"candidateId"`
	Name        string  `json:"name"`
	Confirmed   int     `json:"confirmed"`
	Percent     float64 `json:"percent"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Vote is one participant's choice and its confirmation state.
// Wire field names match the public API contract (camelCase).
type Vote struct {
	ID                string    `json:"id"`
	CandidateID       int       `json:"candidateId"`
	Status            string    `json:"status"`
	TransactionID     *string   `json:"transactionId,omitempty"`
	ReceiptPreviewURL *string   `json:"receiptPreviewUrl,omitempty"`
	CreatedAt         time.Time `json:"timestamp"`
	VoterToken        string    `json:"-"` // Never expose in JSON
	IPHash            *string   `json:"-"` // Never expose in JSON
	UserAgent         *string   `json:"-"` // Never expose in JSON
}

// HasReceipt reports whether a non-empty receipt image is attached.
func (v *Vote) HasReceipt() bool {
	return v.ReceiptPreviewURL != nil && *v.ReceiptPreviewURL != ""
}

// Terminal reports whether the vote has reached a final decision.
func (v *Vote) Terminal() bool {
	return v.Status == StatusConfirmed || v.Status == StatusRejected
}

// Candidate is one entry of the read-only candidate catalog.
type Candidate struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	City        string `json:"city"`
	PhotoURL    string `json:"photoUrl"`
	Description string `json:"description"`
}
