package core

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/ethereum"
	"storefront/internal/repository"

	"go.uber.org/zap"
)

// ReceiptTracker settles pending transactions once their receipts are mined
// and drops expired challenges and sessions.
type ReceiptTracker struct {
	logs     *zap.SugaredLogger
	repo     Repository
	market   Marketplace
	interval time.Duration
}

func NewReceiptTracker(logger *zap.SugaredLogger, repo Repository, market Marketplace, interval time.Duration) *ReceiptTracker {
	return &ReceiptTracker{
		logs:     logger,
		repo:     repo,
		market:   market,
		interval: interval,
	}
}

// Run polls until ctx is cancelled.
func (t *ReceiptTracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logs.Infow("receipt tracker started", "interval", t.interval.String())
	for {
		select {
		case <-ctx.Done():
			t.logs.Infow("receipt tracker stopped")
			return
		case <-ticker.C:
			if err := t.Poll(ctx); err != nil {
				t.logs.Errorw("receipt poll", "error", err)
			}
		}
	}
}

// Poll runs a single tracking round. Receipts that could be fetched are
// settled even when others failed; the fetch errors are returned.
func (t *ReceiptTracker) Poll(ctx context.Context) error {
	purged, err := t.repo.PurgeExpired(ctx)
	if err != nil {
		t.logs.Errorw("purge expired", "error", err)
	} else if purged > 0 {
		t.logs.Infow("expired records purged", "count", purged)
	}

	pending, err := t.repo.GetPendingTransactions(ctx)
	if err != nil {
		return fmt.Errorf("get pending transactions: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	hashes := make([]string, 0, len(pending))
	for _, tx := range pending {
		hashes = append(hashes, tx.Hash)
	}

	receipts, fetchErr := t.market.FetchReceipts(ctx, hashes)
	if fetchErr != nil {
		t.logs.Errorw("fetch receipts", "error", fetchErr, "pending", len(pending), "fetched", len(receipts))
	}

	settled := 0
	for _, receipt := range receipts {
		if receipt.Status == ethereum.ReceiptPending {
			continue
		}
		if err := t.repo.UpdateTransaction(ctx, receipt.TransactionHash, receiptUpdate(receipt)); err != nil {
			t.logs.Errorw("update transaction", "hash", receipt.TransactionHash, "error", err)
			continue
		}
		settled++
	}

	if settled > 0 {
		t.logs.Infow("transactions settled", "count", settled, "pending", len(pending)-settled)
	}

	return fetchErr
}

func receiptUpdate(receipt *ethereum.Receipt) repository.TransactionUpdate {
	status := repository.StatusSuccess
	if receipt.Status == ethereum.ReceiptFailed {
		status = repository.StatusFailed
	}
	return repository.TransactionUpdate{
		Status:      status,
		BlockNumber: receipt.BlockNumber,
		GasUsed:     receipt.GasUsed,
		ItemID:      receipt.ItemID,
	}
}

func applyUpdate(tx *repository.TrackedTransaction, update repository.TransactionUpdate) {
	tx.Status = update.Status
	tx.GasUsed = update.GasUsed
	if update.BlockNumber > 0 {
		block := update.BlockNumber
		tx.BlockNumber = &block
	}
	if update.ItemID != nil {
		tx.ItemID = update.ItemID
	}
	tx.UpdatedAt = TimeNow().UTC()
}
