// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/votecast/catalog"
	"github.com/danielhkuo/votecast/models"
	"github.com/danielhkuo/votecast/notify"
	"github.com/danielhkuo/votecast/store"
)

var (
	// ErrInvalidTransition signals a state machine violation: deciding
	// an already-decided vote, or confirming without a receipt while
	// the receipt policy is on.
	ErrInvalidTransition = errors.New("invalid vote transition")
)

// ValidationError signals malformed create or attach input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Manager enforces the vote state machine and broadcasts state-change
// events. It is the only writer to the vote store.
//
// States: pending → confirmed | rejected. Both decisions are terminal;
// there is no backward transition.
type Manager struct {
	store    *store.VoteStore
	notifier *notify.Broadcaster
	catalog  *catalog.Catalog

	// ReceiptRequired gates Confirm on a non-empty receipt image. This
	// approximates a manual payment-verification workflow; it is a
	// policy check, not a cryptographic guarantee.
	receiptRequired bool
}

func NewManager(st *store.VoteStore, notifier *notify.Broadcaster, cat *catalog.Catalog, receiptRequired bool) *Manager {
	return &Manager{
		store:           st,
		notifier:        notifier,
		catalog:         cat,
		receiptRequired: receiptRequired,
	}
}

// CreateVote appends a new pending record for the given candidate and
// broadcasts voteCreated. The candidate id must resolve in the catalog.
func (m *Manager) CreateVote(req models.CreateVoteRequest, voterToken string, ipHash, userAgent *string) (models.Vote, error) {
	if req.CandidateID == 0 {
		return models.Vote{}, &ValidationError{Field: "candidateId", Reason: "is required"}
	}
	if _, ok := m.catalog.Lookup(req.CandidateID); !ok {
		return models.Vote{}, &ValidationError{Field: "candidateId", Reason: fmt.Sprintf("unknown candidate %d", req.CandidateID)}
	}
	if req.ReceiptPreviewURL != nil && *req.ReceiptPreviewURL == "" {
		return models.Vote{}, &ValidationError{Field: "receiptPreviewUrl", Reason: "must not be empty when present"}
	}

	vote, err := m.store.Append(models.Vote{
		CandidateID:       req.CandidateID,
		Status:            models.StatusPending,
		TransactionID:     req.TransactionID,
		ReceiptPreviewURL: req.ReceiptPreviewURL,
		VoterToken:        voterToken,
		IPHash:            ipHash,
		UserAgent:         userAgent,
	})
	if err != nil {
		return models.Vote{}, err
	}

	slog.Info("vote created", "vote_id", vote.ID, "candidate_id", vote.CandidateID)
	m.notifier.Publish(notify.Event{Kind: models.EventVoteCreated, Vote: &vote})

	return vote, nil
}

// AttachReceipt sets or overwrites the receipt image on a pending
// vote. The status is unchanged and no event is broadcast.
func (m *Manager) AttachReceipt(id, payload string) (models.Vote, error) {
	if payload == "" {
		return models.Vote{}, &ValidationError{Field: "receiptPreviewUrl", Reason: "is required"}
	}

	vote, err := m.store.Update(id, func(v *models.Vote) error {
		if v.Terminal() {
			return fmt.Errorf("%w: cannot attach receipt to %s vote", ErrInvalidTransition, v.Status)
		}
		v.ReceiptPreviewURL = &payload
		return nil
	})
	if err != nil {
		return models.Vote{}, err
	}

	slog.Info("receipt attached", "vote_id", vote.ID)
	return vote, nil
}

// Confirm moves a pending vote to confirmed and broadcasts
// voteValidated. Under the receipt policy, a vote without a receipt
// cannot be confirmed.
func (m *Manager) Confirm(id string) (models.Vote, error) {
	vote, err := m.store.Update(id, func(v *models.Vote) error {
		if v.Status != models.StatusPending {
			return fmt.Errorf("%w: vote is already %s", ErrInvalidTransition, v.Status)
		}
		if m.receiptRequired && !v.HasReceipt() {
			return fmt.Errorf("%w: vote has no receipt", ErrInvalidTransition)
		}
		v.Status = models.StatusConfirmed
		return nil
	})
	if err != nil {
		return models.Vote{}, err
	}

	slog.Info("vote confirmed", "vote_id", vote.ID, "candidate_id", vote.CandidateID)
	m.notifier.Publish(notify.Event{Kind: models.EventVoteValidated, Vote: &vote})

	return vote, nil
}

// Reject moves a pending vote to rejected and broadcasts voteRejected.
func (m *Manager) Reject(id string) (models.Vote, error) {
	vote, err := m.store.Update(id, func(v *models.Vote) error {
		if v.Status != models.StatusPending {
			return fmt.Errorf("%w: vote is already %s", ErrInvalidTransition, v.Status)
		}
		v.Status = models.StatusRejected
		return nil
	})
	if err != nil {
		return models.Vote{}, err
	}

	slog.Info("vote rejected", "vote_id", vote.ID, "candidate_id", vote.CandidateID)
	m.notifier.Publish(notify.Event{Kind: models.EventVoteRejected, Vote: &vote})

	return vote, nil
}

// ResetAll clears the entire store and broadcasts votesReset. Callers
// must gate this behind the admin capability.
func (m *Manager) ResetAll() error {
	if err := m.store.Clear(); err != nil {
		return err
	}

	slog.Info("all votes reset")
	m.notifier.Publish(notify.Event{Kind: models.EventVotesReset})

	return nil
}
