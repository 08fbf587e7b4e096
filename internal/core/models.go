package core

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type TxKind string

const (
	KindBuy      TxKind = "buy"
	KindRegister TxKind = "register"
	KindCreate   TxKind = "create"
	KindUpdate   TxKind = "update"
	KindRemove   TxKind = "remove"
	KindAssign   TxKind = "assign"
)

func (k TxKind) Valid() bool {
	switch k {
	case KindBuy, KindRegister, KindCreate, KindUpdate, KindRemove, KindAssign:
		return true
	}
	return false
}

// Session is an authenticated wallet connection.
type Session struct {
	ID        string
	Address   common.Address
	ExpiresAt time.Time
}

type Challenge struct {
	Address   string    `json:"address"`
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Connection struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Status    WalletStatus `json:"status"`
}

type WalletStatus struct {
	Address     string `json:"address"`
	IsSeller    bool   `json:"isSeller"`
	BalanceWei  string `json:"balanceWei"`
	Balance     string `json:"balance"`
	ChainID     int64  `json:"chainId"`
	NetworkName string `json:"networkName"`
	AddressURL  string `json:"addressUrl"`
}

type ItemView struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceWei    string `json:"priceWei"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Seller      string `json:"seller"`
	SellerName  string `json:"sellerName,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type SellerView struct {
	Address      string `json:"address"`
	Name         string `json:"name"`
	IsRegistered bool   `json:"isRegistered"`
	ItemCount    uint64 `json:"itemCount"`
}

type ItemDetails struct {
	Item   ItemView   `json:"item"`
	Seller SellerView `json:"seller"`
}

type PurchaseView struct {
	ItemID   uint64 `json:"itemId"`
	ItemName string `json:"itemName"`
	PriceWei string `json:"priceWei"`
	Price    string `json:"price"`
	Buyer    string `json:"buyer"`
	Seller   string `json:"seller"`
}

type PurchaseHistory struct {
	Purchases     []PurchaseView `json:"purchases"`
	TotalSpentWei string         `json:"totalSpentWei"`
	TotalSpent    string         `json:"totalSpent"`
}

type SellerDashboard struct {
	Seller      SellerView     `json:"seller"`
	Items       []ItemView     `json:"items"`
	Sales       []PurchaseView `json:"sales"`
	SalesCount  int            `json:"salesCount"`
	EarningsWei string         `json:"earningsWei"`
	Earnings    string         `json:"earnings"`
}

// ItemInput is a listing as entered by a seller. Price is in ETH.
type ItemInput struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
}

// TrackInput describes a transaction the wallet has sent or signed. Item and
// value are read from the transaction itself.
type TrackInput struct {
	Kind TxKind
}

// TxRequest is an unsigned contract call in the shape wallets expect for eth_sendTransaction.
type TxRequest struct {
	Kind    TxKind         `json:"kind"`
	ItemID  *uint64        `json:"itemId,omitempty"`
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	Data    hexutil.Bytes  `json:"data"`
	Value   *hexutil.Big   `json:"value"`
	Gas     hexutil.Uint64 `json:"gas"`
	ChainID *hexutil.Big   `json:"chainId"`
	Price   string         `json:"price"`
}

type TransactionView struct {
	Hash        string    `json:"hash"`
	Kind        string    `json:"kind"`
	From        string    `json:"from"`
	ItemID      *uint64   `json:"itemId,omitempty"`
	ValueWei    string    `json:"valueWei"`
	Value       string    `json:"value"`
	Status      string    `json:"status"`
	BlockNumber *uint64   `json:"blockNumber,omitempty"`
	GasUsed     uint64    `json:"gasUsed"`
	ExplorerURL string    `json:"explorerUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
