package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// FetchReceipts looks up the receipts of the given transactions concurrently.
// Transactions that are not mined yet come back as pending. Failed lookups are
// joined into the returned error alongside the receipts that were found.
func (m *Marketplace) FetchReceipts(ctx context.Context, hashes []string) ([]*Receipt, error) {
	resultsChan := make(chan *ReceiptResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			res := m.getReceipt(ctx, common.HexToHash(hashStr))
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching receipt %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Receipt
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Receipt)
	}

	return results, aggrErr
}

func (m *Marketplace) getReceipt(ctx context.Context, hash common.Hash) *ReceiptResult {
	receipt, err := m.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return &ReceiptResult{
				Receipt: &Receipt{
					TransactionHash: hash.Hex(),
					Status:          ReceiptPending,
				},
			}
		}
		return &ReceiptResult{nil, err}
	}

	res := &Receipt{
		TransactionHash: hash.Hex(),
		Status:          ReceiptFailed,
		GasUsed:         receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		res.Status = ReceiptSuccess
		res.ItemID = m.itemIDFromLogs(receipt.Logs)
	}

	return &ReceiptResult{Receipt: res}
}

// itemIDFromLogs returns the item id carried by the first ItemCreated or
// ItemPurchased event the marketplace emitted in the receipt.
func (m *Marketplace) itemIDFromLogs(logs []*types.Log) *uint64 {
	created := m.abi.Events["ItemCreated"].ID
	purchased := m.abi.Events["ItemPurchased"].ID

	for _, l := range logs {
		if l == nil || l.Address != m.address || len(l.Topics) < 2 {
			continue
		}
		if l.Topics[0] != created && l.Topics[0] != purchased {
			continue
		}
		id := l.Topics[1].Big().Uint64()
		return &id
	}
	return nil
}
