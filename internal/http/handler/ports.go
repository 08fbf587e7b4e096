package handler

import (
	"context"
	"io"
	"net/http"

	"storefront/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name StorefrontService . StorefrontService
type StorefrontService interface {
	Settings() core.Settings

	RequestChallenge(ctx context.Context, address string) (core.Challenge, error)
	ConnectWallet(ctx context.Context, address, nonce, signature string) (core.Connection, error)
	DisconnectWallet(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (core.Session, error)
	WalletStatus(ctx context.Context, address string) (core.WalletStatus, error)

	ActiveItems(ctx context.Context) ([]core.ItemView, error)
	ItemDetails(ctx context.Context, itemID uint64) (core.ItemDetails, error)
	SellerItems(ctx context.Context, address string) ([]core.ItemView, error)
	SellerProfile(ctx context.Context, address string) (core.SellerView, error)

	Buy(ctx context.Context, session core.Session, itemID uint64) (core.TxRequest, error)
	TrackTransaction(ctx context.Context, session core.Session, hash string, in core.TrackInput) (core.TransactionView, error)
	SubmitTransaction(ctx context.Context, session core.Session, rawTx string, in core.TrackInput) (core.TransactionView, error)
	TransactionStatus(ctx context.Context, hash string) (core.TransactionView, error)
	Transactions(ctx context.Context, hashes []string) ([]core.TransactionView, error)
	MyTransactions(ctx context.Context, session core.Session) ([]core.TransactionView, error)
	PurchaseHistory(ctx context.Context, address string) (core.PurchaseHistory, error)

	RegisterSeller(ctx context.Context, session core.Session, name string) (core.TxRequest, error)
	CreateItem(ctx context.Context, session core.Session, in core.ItemInput) (core.TxRequest, error)
	UpdateItem(ctx context.Context, session core.Session, itemID uint64, in core.ItemInput) (core.TxRequest, error)
	RemoveItem(ctx context.Context, session core.Session, itemID uint64) (core.TxRequest, error)
	AssignItemToSeller(ctx context.Context, session core.Session, itemID uint64, seller string) (core.TxRequest, error)
	SellerDashboard(ctx context.Context, address string) (core.SellerDashboard, error)
}

type PageRenderer interface {
	Render(w io.Writer, page string, data any) error
}
