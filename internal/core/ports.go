package core

import (
	"context"
	"math/big"

	"storefront/internal/ethereum"
	"storefront/internal/repository"
	tokenIssuer "storefront/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveChallenge(ctx context.Context, challenge repository.WalletChallenge) error
	ConsumeChallenge(ctx context.Context, nonce string) (repository.WalletChallenge, error)
	SaveSession(ctx context.Context, session repository.WalletSession) error
	GetSession(ctx context.Context, id string) (repository.WalletSession, error)
	DeleteSession(ctx context.Context, id string) error
	SaveTransaction(ctx context.Context, tx repository.TrackedTransaction) error
	GetTransaction(ctx context.Context, hash string) (repository.TrackedTransaction, error)
	GetTransactionsByHash(ctx context.Context, hashes []string) ([]repository.TrackedTransaction, error)
	GetTransactionsByAddress(ctx context.Context, address string) ([]repository.TrackedTransaction, error)
	GetPendingTransactions(ctx context.Context) ([]repository.TrackedTransaction, error)
	UpdateTransaction(ctx context.Context, hash string, update repository.TransactionUpdate) error
	PurgeExpired(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Issue(data tokenIssuer.TokenInfo) (string, error)
	Validate(token string) (tokenIssuer.SessionClaims, error)
}

//counterfeiter:generate -o fake -fake-name Marketplace . Marketplace
type Marketplace interface {
	ActiveItems(ctx context.Context) ([]ethereum.Item, error)
	Item(ctx context.Context, itemID uint64) (ethereum.Item, error)
	ItemsBySeller(ctx context.Context, seller common.Address) ([]ethereum.Item, error)
	Seller(ctx context.Context, seller common.Address) (ethereum.Seller, error)
	SellerForItem(ctx context.Context, itemID uint64) (ethereum.Seller, error)
	IsSeller(ctx context.Context, account common.Address) (bool, error)
	Purchases(ctx context.Context) ([]ethereum.Purchase, error)
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
	PrepareBuy(ctx context.Context, from common.Address, itemID uint64, price *big.Int) (*ethereum.PreparedTx, error)
	PrepareRegisterSeller(ctx context.Context, from common.Address, name string) (*ethereum.PreparedTx, error)
	PrepareCreateItem(ctx context.Context, from common.Address, name, description string, price *big.Int, imageURL string) (*ethereum.PreparedTx, error)
	PrepareUpdateItem(ctx context.Context, from common.Address, itemID uint64, name, description string, price *big.Int, imageURL string) (*ethereum.PreparedTx, error)
	PrepareRemoveItem(ctx context.Context, from common.Address, itemID uint64) (*ethereum.PreparedTx, error)
	PrepareAssignItem(ctx context.Context, from common.Address, itemID uint64, seller common.Address) (*ethereum.PreparedTx, error)
	SendRawTransaction(ctx context.Context, rawHex string, expectedFrom common.Address) (*ethereum.SentTransaction, error)
	LookupTransaction(ctx context.Context, hash common.Hash, expectedFrom common.Address) (*ethereum.SentTransaction, error)
	FetchReceipts(ctx context.Context, hashes []string) ([]*ethereum.Receipt, error)
}
