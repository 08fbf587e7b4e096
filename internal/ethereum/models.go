package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Item mirrors the contract's Item struct. Field order follows the ABI tuple.
type Item struct {
	ItemID      *big.Int       `abi:"itemId"`
	Name        string         `abi:"name"`
	Description string         `abi:"description"`
	Price       *big.Int       `abi:"price"`
	ImageURL    string         `abi:"imageUrl"`
	Seller      common.Address `abi:"seller"`
	IsActive    bool           `abi:"isActive"`
}

// Seller mirrors the contract's Seller struct.
type Seller struct {
	SellerAddress common.Address `abi:"sellerAddress"`
	Name          string         `abi:"name"`
	IsRegistered  bool           `abi:"isRegistered"`
	ItemCount     *big.Int       `abi:"itemCount"`
}

// Purchase mirrors the contract's Purchase struct.
type Purchase struct {
	ItemID   *big.Int       `abi:"itemId"`
	ItemName string         `abi:"itemName"`
	Price    *big.Int       `abi:"price"`
	Buyer    common.Address `abi:"buyer"`
	Seller   common.Address `abi:"seller"`
}

// PreparedTx is an unsigned marketplace call ready for a wallet to sign.
type PreparedTx struct {
	From    common.Address
	To      common.Address
	Data    []byte
	Value   *big.Int
	Gas     uint64
	ChainID *big.Int
}

// SentTransaction is a marketplace call as the chain sees it. ItemID is set
// for calls that name an existing item.
type SentTransaction struct {
	Hash   common.Hash
	Method string
	ItemID *uint64
	Value  *big.Int
}

type ReceiptStatus string

const (
	ReceiptPending ReceiptStatus = "pending"
	ReceiptSuccess ReceiptStatus = "success"
	ReceiptFailed  ReceiptStatus = "failed"
)

type Receipt struct {
	TransactionHash string
	Status          ReceiptStatus
	BlockNumber     uint64
	GasUsed         uint64
	ItemID          *uint64
}

type ReceiptResult struct {
	Receipt *Receipt
	Error   error
}
