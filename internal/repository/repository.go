package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/db"
)

var (
	ErrChallengeNotFound    error = errors.New("challenge not found")
	ErrSessionNotFound      error = errors.New("session not found")
	ErrTransactionNotFound  error = errors.New("transaction not found")
	ErrDuplicateTransaction error = errors.New("transaction already tracked")
)

// TimeNow is swapped in tests.
var TimeNow = time.Now

type StorefrontRepository struct {
	db Storage
}

func NewStorefrontRepository(db Storage) *StorefrontRepository {
	return &StorefrontRepository{
		db: db,
	}
}

func (r *StorefrontRepository) MigrateTables() error {
	err := r.db.MigrateTable(&WalletChallenge{}, &WalletSession{}, &TrackedTransaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *StorefrontRepository) SaveChallenge(ctx context.Context, challenge WalletChallenge) error {
	if err := r.db.Create(ctx, &challenge); err != nil {
		return fmt.Errorf("save challenge: %w", err)
	}

	return nil
}

// ConsumeChallenge loads the challenge and deletes it so a nonce can only be used once.
// Expiry is left to the caller.
func (r *StorefrontRepository) ConsumeChallenge(ctx context.Context, nonce string) (WalletChallenge, error) {
	var challenge WalletChallenge

	err := r.db.GetOneBy(ctx, "nonce", nonce, &challenge)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return WalletChallenge{}, ErrChallengeNotFound
		}
		return WalletChallenge{}, fmt.Errorf("get challenge: %w", err)
	}

	deleted, err := r.db.DeleteBy(ctx, &WalletChallenge{}, "nonce", "=", nonce)
	if err != nil {
		return WalletChallenge{}, fmt.Errorf("delete challenge: %w", err)
	}
	if deleted == 0 {
		// consumed concurrently
		return WalletChallenge{}, ErrChallengeNotFound
	}

	return challenge, nil
}

func (r *StorefrontRepository) SaveSession(ctx context.Context, session WalletSession) error {
	if err := r.db.Create(ctx, &session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *StorefrontRepository) GetSession(ctx context.Context, id string) (WalletSession, error) {
	var session WalletSession

	err := r.db.GetOneBy(ctx, "id", id, &session)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return WalletSession{}, ErrSessionNotFound
		}
		return WalletSession{}, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}

func (r *StorefrontRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.DeleteBy(ctx, &WalletSession{}, "id", "=", id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (r *StorefrontRepository) SaveTransaction(ctx context.Context, tx TrackedTransaction) error {
	if tx.Status == "" {
		tx.Status = StatusPending
	}
	if tx.Value == "" {
		tx.Value = "0"
	}

	if err := r.db.Create(ctx, &tx); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("save transaction: %w", err)
	}

	return nil
}

func (r *StorefrontRepository) GetTransaction(ctx context.Context, hash string) (TrackedTransaction, error) {
	var tx TrackedTransaction

	err := r.db.GetOneBy(ctx, "hash", hash, &tx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return TrackedTransaction{}, ErrTransactionNotFound
		}
		return TrackedTransaction{}, fmt.Errorf("get transaction: %w", err)
	}

	return tx, nil
}

func (r *StorefrontRepository) GetTransactionsByHash(ctx context.Context, hashes []string) ([]TrackedTransaction, error) {
	transactions := []TrackedTransaction{}
	if len(hashes) == 0 {
		return transactions, nil
	}

	err := r.db.GetAllBy(ctx, "hash", hashes, &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transactions by hash: %w", err)
	}

	return transactions, nil
}

// GetTransactionsByAddress returns the address's transactions, newest first.
func (r *StorefrontRepository) GetTransactionsByAddress(ctx context.Context, address string) ([]TrackedTransaction, error) {
	transactions := []TrackedTransaction{}

	err := r.db.FindBy(ctx, map[string]any{"from_address": address}, "created_at desc", &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transactions by address: %w", err)
	}

	return transactions, nil
}

// GetPendingTransactions returns transactions still waiting for a receipt, oldest first.
func (r *StorefrontRepository) GetPendingTransactions(ctx context.Context) ([]TrackedTransaction, error) {
	transactions := []TrackedTransaction{}

	err := r.db.FindBy(ctx, map[string]any{"status": StatusPending}, "created_at asc", &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get pending transactions: %w", err)
	}

	return transactions, nil
}

func (r *StorefrontRepository) UpdateTransaction(ctx context.Context, hash string, update TransactionUpdate) error {
	updates := map[string]any{
		"status":     update.Status,
		"gas_used":   update.GasUsed,
		"updated_at": TimeNow().UTC(),
	}
	if update.BlockNumber > 0 {
		updates["block_number"] = update.BlockNumber
	}
	if update.ItemID != nil {
		updates["item_id"] = *update.ItemID
	}

	err := r.db.UpdateBy(ctx, &TrackedTransaction{}, "hash", hash, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("update transaction: %w", err)
	}

	return nil
}

// PurgeExpired drops challenges and sessions whose expiry has passed.
func (r *StorefrontRepository) PurgeExpired(ctx context.Context) (int64, error) {
	now := TimeNow().UTC()

	challenges, err := r.db.DeleteBy(ctx, &WalletChallenge{}, "expires_at", "<", now)
	if err != nil {
		return 0, fmt.Errorf("purge challenges: %w", err)
	}

	sessions, err := r.db.DeleteBy(ctx, &WalletSession{}, "expires_at", "<", now)
	if err != nil {
		return challenges, fmt.Errorf("purge sessions: %w", err)
	}

	return challenges + sessions, nil
}
