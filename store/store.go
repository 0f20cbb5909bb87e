// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/votecast/models"
)

var (
	// ErrNotFound signals an unknown vote id.
	ErrNotFound = errors.New("vote not found")

	// ErrStorageUnavailable signals a persistence-layer failure.
	// Callers may treat it as transient and retryable; the store never
	// retries on its own.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// VoteStore is the single source of truth for vote records.
// All mutations go through Append, Update, and Clear.
type VoteStore struct {
	db *sql.DB

	// Serializes read-modify-write cycles so concurrent updates to the
	// same record cannot lose writes. A global writer lock is enough at
	// the expected write volume.
	writeMu sync.Mutex
}

func New(db *sql.DB) *VoteStore {
	return &VoteStore{db: db}
}

const voteColumns = `id, candidate_id, status, transaction_id, receipt_preview_url, voter_token, ip_hash, user_agent, created_at`

// List returns every vote record, oldest first.
func (s *VoteStore) List() ([]models.Vote, error) {
	rows, err := s.db.Query(`
		SELECT ` + voteColumns + ` FROM vote ORDER BY created_at, id
	`)
	if err != nil {
		return nil, storageErr("list votes", err)
	}
	defer rows.Close()

	return scanVotes(rows)
}

// ListByVoter returns the records created with the given voter token,
// oldest first.
func (s *VoteStore) ListByVoter(voterToken string) ([]models.Vote, error) {
	rows, err := s.db.Query(`
		SELECT `+voteColumns+` FROM vote WHERE voter_token = $1 ORDER BY created_at, id
	`, voterToken)
	if err != nil {
		return nil, storageErr("list votes by voter", err)
	}
	defer rows.Close()

	return scanVotes(rows)
}

// Get returns the record with the given id, or ErrNotFound.
func (s *VoteStore) Get(id string) (models.Vote, error) {
	row := s.db.QueryRow(`
		SELECT `+voteColumns+` FROM vote WHERE id = $1
	`, id)

	vote, err := scanVote(row)
	if err == sql.ErrNoRows {
		return models.Vote{}, ErrNotFound
	}
	if err != nil {
		return models.Vote{}, storageErr("get vote", err)
	}
	return vote, nil
}

// Append assigns an id and creation timestamp, persists the record,
// and returns the stored value. Everything else on the record is taken
// as given.
func (s *VoteStore) Append(vote models.Vote) (models.Vote, error) {
	vote.ID = uuid.NewString()
	vote.CreatedAt = time.Now().UTC()
	if vote.Status == "" {
		vote.Status = models.StatusPending
	}

	_, err := s.db.Exec(`
		INSERT INTO vote (id, candidate_id, status, transaction_id, receipt_preview_url, voter_token, ip_hash, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, vote.ID, vote.CandidateID, vote.Status, vote.TransactionID, vote.ReceiptPreviewURL,
		vote.VoterToken, vote.IPHash, vote.UserAgent, vote.CreatedAt)
	if err != nil {
		return models.Vote{}, storageErr("append vote", err)
	}

	return vote, nil
}

// Update applies mutate to the record with the given id inside a
// transaction and persists the result. It is the only mutation path
// for existing records; concurrent updates to the same id are
// serialized. An error from mutate aborts the update and is returned
// unchanged.
func (s *VoteStore) Update(id string, mutate func(*models.Vote) error) (models.Vote, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return models.Vote{}, storageErr("begin update", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		SELECT `+voteColumns+` FROM vote WHERE id = $1
	`, id)

	vote, err := scanVote(row)
	if err == sql.ErrNoRows {
		return models.Vote{}, ErrNotFound
	}
	if err != nil {
		return models.Vote{}, storageErr("read vote for update", err)
	}

	if err := mutate(&vote); err != nil {
		return models.Vote{}, err
	}

	_, err = tx.Exec(`
		UPDATE vote
		SET candidate_id = $1, status = $2, transaction_id = $3, receipt_preview_url = $4,
		    voter_token = $5, ip_hash = $6, user_agent = $7
		WHERE id = $8
	`, vote.CandidateID, vote.Status, vote.TransactionID, vote.ReceiptPreviewURL,
		vote.VoterToken, vote.IPHash, vote.UserAgent, vote.ID)
	if err != nil {
		return models.Vote{}, storageErr("write vote", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Vote{}, storageErr("commit update", err)
	}

	return vote, nil
}

// Clear removes every record. Only the administrative reset path
// calls this.
func (s *VoteStore) Clear() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM vote`); err != nil {
		return storageErr("clear votes", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVote(row scanner) (models.Vote, error) {
	var v models.Vote
	var transactionID, receipt, voterToken, ipHash, userAgent sql.NullString

	err := row.Scan(&v.ID, &v.CandidateID, &v.Status, &transactionID, &receipt,
		&voterToken, &ipHash, &userAgent, &v.CreatedAt)
	if err != nil {
		return models.Vote{}, err
	}

	if transactionID.Valid {
		v.TransactionID = &transactionID.String
	}
	if receipt.Valid {
		v.ReceiptPreviewURL = &receipt.String
	}
	if voterToken.Valid {
		v.VoterToken = voterToken.String
	}
	if ipHash.Valid {
		v.IPHash = &ipHash.String
	}
	if userAgent.Valid {
		v.UserAgent = &userAgent.String
	}

	return v, nil
}

func scanVotes(rows *sql.Rows) ([]models.Vote, error) {
	votes := []models.Vote{}
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, storageErr("scan vote", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate votes", err)
	}
	return votes, nil
}
