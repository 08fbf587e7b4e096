package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"storefront/internal/ethereum"
	"storefront/internal/repository"
	"storefront/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Buy prepares a buyItem call paying exactly the listed price.
func (s *Storefront) Buy(ctx context.Context, session Session, itemID uint64) (TxRequest, error) {
	item, err := s.loadItem(ctx, itemID)
	if err != nil {
		return TxRequest{}, err
	}
	if !item.IsActive {
		return TxRequest{}, ErrItemInactive
	}

	prepared, err := s.market.PrepareBuy(ctx, session.Address, itemID, item.Price)
	if err != nil {
		return TxRequest{}, nodeErr("prepare buy", err)
	}

	s.logs.Infow("buy prepared", "buyer", session.Address.Hex(), "item", itemID, "price", units.FormatEthPrice(item.Price))
	return toTxRequest(KindBuy, &itemID, prepared), nil
}

var methodKinds = map[string]TxKind{
	"buyItem":            KindBuy,
	"registerSeller":     KindRegister,
	"createItem":         KindCreate,
	"updateItem":         KindUpdate,
	"removeItem":         KindRemove,
	"assignItemToSeller": KindAssign,
}

// TrackTransaction records a transaction the wallet broadcast itself. The
// node must know the hash and it must be a marketplace call from the session wallet.
func (s *Storefront) TrackTransaction(ctx context.Context, session Session, hash string, in TrackInput) (TransactionView, error) {
	raw, err := hexutil.Decode(hash)
	if err != nil || len(raw) != common.HashLength {
		return TransactionView{}, fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	if !in.Kind.Valid() {
		return TransactionView{}, fmt.Errorf("%w: %q", ErrInvalidKind, in.Kind)
	}

	sent, err := s.market.LookupTransaction(ctx, common.BytesToHash(raw), session.Address)
	if err != nil {
		return TransactionView{}, rejected("look up transaction", err)
	}

	return s.track(ctx, session, sent, in)
}

// SubmitTransaction relays a wallet-signed transaction and records it.
func (s *Storefront) SubmitTransaction(ctx context.Context, session Session, rawTx string, in TrackInput) (TransactionView, error) {
	if !in.Kind.Valid() {
		return TransactionView{}, fmt.Errorf("%w: %q", ErrInvalidKind, in.Kind)
	}

	sent, err := s.market.SendRawTransaction(ctx, rawTx, session.Address)
	if err != nil {
		return TransactionView{}, rejected("send raw transaction", err)
	}

	s.logs.Infow("transaction relayed", "hash", sent.Hash.Hex(), "from", session.Address.Hex(), "kind", in.Kind)
	return s.track(ctx, session, sent, in)
}

// rejected sorts marketplace errors into client mistakes and node failures.
func rejected(op string, err error) error {
	switch {
	case errors.Is(err, ethereum.ErrUnknownTransaction):
		return fmt.Errorf("%w: %w", ErrTransactionNotFound, err)
	case errors.Is(err, ethereum.ErrMalformedTransaction),
		errors.Is(err, ethereum.ErrWrongDestination),
		errors.Is(err, ethereum.ErrWrongSender),
		errors.Is(err, ethereum.ErrWrongChain),
		errors.Is(err, ethereum.ErrUnknownMethod):
		return fmt.Errorf("%w: %w", ErrRejectedTransaction, err)
	}
	return nodeErr(op, err)
}

func (s *Storefront) track(ctx context.Context, session Session, sent *ethereum.SentTransaction, in TrackInput) (TransactionView, error) {
	kind, ok := methodKinds[sent.Method]
	if !ok || kind != in.Kind {
		return TransactionView{}, fmt.Errorf("%w: %s is not a %s transaction", ErrRejectedTransaction, sent.Method, in.Kind)
	}

	value := "0"
	if sent.Value != nil {
		value = sent.Value.String()
	}

	now := TimeNow().UTC()
	tx := repository.TrackedTransaction{
		Hash:        sent.Hash.Hex(),
		Kind:        string(kind),
		FromAddress: lower(session.Address),
		ItemID:      sent.ItemID,
		Value:       value,
		Status:      repository.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.SaveTransaction(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			return TransactionView{}, fmt.Errorf("%w: %s", ErrAlreadyTracked, tx.Hash)
		}
		return TransactionView{}, fmt.Errorf("save transaction: %w", err)
	}

	s.logs.Infow("transaction tracked", "hash", tx.Hash, "kind", tx.Kind, "from", tx.FromAddress)
	return s.toTransactionView(tx), nil
}

// TransactionStatus returns the stored record, checking the node once more
// while it is still pending.
func (s *Storefront) TransactionStatus(ctx context.Context, hash string) (TransactionView, error) {
	raw, err := hexutil.Decode(hash)
	if err != nil || len(raw) != common.HashLength {
		return TransactionView{}, fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	hash = common.BytesToHash(raw).Hex()

	tx, err := s.repo.GetTransaction(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return TransactionView{}, ErrTransactionNotFound
		}
		return TransactionView{}, fmt.Errorf("get transaction: %w", err)
	}

	if tx.Status == repository.StatusPending {
		receipts, err := s.market.FetchReceipts(ctx, []string{tx.Hash})
		if err != nil {
			s.logs.Errorw("refresh pending transaction", "hash", tx.Hash, "error", err)
		}
		for _, receipt := range receipts {
			if receipt.Status == ethereum.ReceiptPending {
				continue
			}
			update := receiptUpdate(receipt)
			if err := s.repo.UpdateTransaction(ctx, tx.Hash, update); err != nil {
				s.logs.Errorw("update transaction", "hash", tx.Hash, "error", err)
				continue
			}
			applyUpdate(&tx, update)
		}
	}

	return s.toTransactionView(tx), nil
}

// Transactions returns the stored records of the given hashes.
func (s *Storefront) Transactions(ctx context.Context, hashes []string) ([]TransactionView, error) {
	normalized := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		raw, err := hexutil.Decode(strings.TrimSpace(hash))
		if err != nil || len(raw) != common.HashLength {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHash, hash)
		}
		normalized = append(normalized, common.BytesToHash(raw).Hex())
	}

	txs, err := s.repo.GetTransactionsByHash(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("get transactions by hash: %w", err)
	}

	return s.toTransactionViews(txs), nil
}

// MyTransactions lists what the session's wallet has sent through the storefront.
func (s *Storefront) MyTransactions(ctx context.Context, session Session) ([]TransactionView, error) {
	txs, err := s.repo.GetTransactionsByAddress(ctx, lower(session.Address))
	if err != nil {
		return nil, fmt.Errorf("get transactions by address: %w", err)
	}

	return s.toTransactionViews(txs), nil
}

func (s *Storefront) toTransactionViews(txs []repository.TrackedTransaction) []TransactionView {
	views := make([]TransactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, s.toTransactionView(tx))
	}
	return views
}

// PurchaseHistory lists the purchases made by address and what they cost in total.
func (s *Storefront) PurchaseHistory(ctx context.Context, address string) (PurchaseHistory, error) {
	account, err := parseAddress(address)
	if err != nil {
		return PurchaseHistory{}, err
	}

	purchases, err := s.market.Purchases(ctx)
	if err != nil {
		return PurchaseHistory{}, nodeErr("purchases", err)
	}

	history := PurchaseHistory{Purchases: []PurchaseView{}}
	total := new(big.Int)
	for _, p := range purchases {
		if p.Buyer != account {
			continue
		}
		history.Purchases = append(history.Purchases, toPurchaseView(p))
		if p.Price != nil {
			total.Add(total, p.Price)
		}
	}
	history.TotalSpentWei = total.String()
	history.TotalSpent = units.FormatEthPrice(total)

	return history, nil
}
