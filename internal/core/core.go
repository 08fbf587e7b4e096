package core

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"storefront/internal/ethereum"
	"storefront/internal/repository"
	"storefront/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

var (
	ErrInvalidAddress      error = errors.New("invalid wallet address")
	ErrChallengeExpired    error = errors.New("challenge expired or already used")
	ErrInvalidSignature    error = errors.New("signature does not match the wallet address")
	ErrUnauthorized        error = errors.New("wallet not connected")
	ErrItemNotFound        error = errors.New("item not found")
	ErrItemInactive        error = errors.New("item is not active")
	ErrSellerNotFound      error = errors.New("seller not found")
	ErrAlreadySeller       error = errors.New("wallet is already a registered seller")
	ErrNotSeller           error = errors.New("wallet is not a registered seller")
	ErrNotItemOwner        error = errors.New("item belongs to another seller")
	ErrInvalidPrice        error = errors.New("price must be greater than zero")
	ErrInvalidKind         error = errors.New("unknown transaction kind")
	ErrInvalidHash         error = errors.New("invalid transaction hash")
	ErrTransactionNotFound error = errors.New("transaction not found")
	ErrRejectedTransaction error = errors.New("transaction rejected")
	ErrAlreadyTracked      error = errors.New("transaction is already tracked")
	ErrNodeRequest         error = errors.New("ethereum node request failed")
)

// TimeNow is swapped in tests.
var TimeNow = time.Now

// Settings are the network and session parameters the storefront runs with.
type Settings struct {
	ChainID      int64
	NetworkName  string
	ExplorerURL  string
	SessionTTL   time.Duration
	ChallengeTTL time.Duration
}

// Storefront reads marketplace state from the contract, prepares contract
// calls for connected wallets and keeps the local session and transaction records.
type Storefront struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer TokenIssuer
	market    Marketplace
	settings  Settings
}

func NewStorefront(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer, market Marketplace, settings Settings) *Storefront {
	return &Storefront{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		market:    market,
		settings:  settings,
	}
}

func (s *Storefront) Settings() Settings {
	return s.settings
}

func nodeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNodeRequest, err)
}

func parseAddress(address string) (common.Address, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address), nil
}

func lower(address common.Address) string {
	return strings.ToLower(address.Hex())
}

func shortAddress(address common.Address) string {
	hex := address.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func toItemView(item ethereum.Item) ItemView {
	var id uint64
	if item.ItemID != nil {
		id = item.ItemID.Uint64()
	}
	return ItemView{
		ID:          id,
		Name:        item.Name,
		Description: item.Description,
		PriceWei:    bigString(item.Price),
		Price:       units.FormatEthPrice(item.Price),
		ImageURL:    item.ImageURL,
		Seller:      item.Seller.Hex(),
		IsActive:    item.IsActive,
	}
}

func toSellerView(address common.Address, seller ethereum.Seller) SellerView {
	view := SellerView{
		Address:      address.Hex(),
		Name:         seller.Name,
		IsRegistered: seller.IsRegistered,
	}
	if seller.ItemCount != nil {
		view.ItemCount = seller.ItemCount.Uint64()
	}
	if view.Name == "" {
		view.Name = shortAddress(address)
	}
	return view
}

func toPurchaseView(p ethereum.Purchase) PurchaseView {
	var id uint64
	if p.ItemID != nil {
		id = p.ItemID.Uint64()
	}
	return PurchaseView{
		ItemID:   id,
		ItemName: p.ItemName,
		PriceWei: bigString(p.Price),
		Price:    units.FormatEthPrice(p.Price),
		Buyer:    p.Buyer.Hex(),
		Seller:   p.Seller.Hex(),
	}
}

func toTxRequest(kind TxKind, itemID *uint64, tx *ethereum.PreparedTx) TxRequest {
	return TxRequest{
		Kind:    kind,
		ItemID:  itemID,
		From:    tx.From,
		To:      tx.To,
		Data:    tx.Data,
		Value:   (*hexutil.Big)(tx.Value),
		Gas:     hexutil.Uint64(tx.Gas),
		ChainID: (*hexutil.Big)(tx.ChainID),
		Price:   units.FormatEthPrice(tx.Value),
	}
}

func (s *Storefront) toTransactionView(tx repository.TrackedTransaction) TransactionView {
	value, ok := new(big.Int).SetString(tx.Value, 10)
	if !ok {
		value = new(big.Int)
	}
	return TransactionView{
		Hash:        tx.Hash,
		Kind:        tx.Kind,
		From:        tx.FromAddress,
		ItemID:      tx.ItemID,
		ValueWei:    value.String(),
		Value:       units.FormatEthPrice(value),
		Status:      tx.Status,
		BlockNumber: tx.BlockNumber,
		GasUsed:     tx.GasUsed,
		ExplorerURL: s.explorerLink("tx", tx.Hash),
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func (s *Storefront) explorerLink(kind, id string) string {
	if s.settings.ExplorerURL == "" {
		return ""
	}
	return strings.TrimRight(s.settings.ExplorerURL, "/") + "/" + kind + "/" + id
}
