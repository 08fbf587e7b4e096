package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidContractAddress error = errors.New("invalid contract address")
var ErrEmptyResult error = errors.New("contract call returned no data")

// Marketplace talks to a deployed SimpleMarketplace contract.
type Marketplace struct {
	client  EthClient
	address common.Address
	abi     abi.ABI
}

func NewMarketplace(client EthClient, contractAddress string) (*Marketplace, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContractAddress, contractAddress)
	}
	address := common.HexToAddress(contractAddress)
	if address == (common.Address{}) {
		return nil, fmt.Errorf("%w: zero address", ErrInvalidContractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(MarketplaceABI))
	if err != nil {
		return nil, fmt.Errorf("parse marketplace abi: %w", err)
	}

	return &Marketplace{
		client:  client,
		address: address,
		abi:     parsed,
	}, nil
}

func (m *Marketplace) Address() common.Address {
	return m.address
}

func (m *Marketplace) ActiveItems(ctx context.Context) ([]Item, error) {
	out, err := m.call(ctx, "getActiveItems")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]Item)).(*[]Item), nil
}

func (m *Marketplace) Item(ctx context.Context, itemID uint64) (Item, error) {
	out, err := m.call(ctx, "getItem", new(big.Int).SetUint64(itemID))
	if err != nil {
		return Item{}, err
	}
	return *abi.ConvertType(out[0], new(Item)).(*Item), nil
}

func (m *Marketplace) ItemsBySeller(ctx context.Context, seller common.Address) ([]Item, error) {
	out, err := m.call(ctx, "getItemsBySeller", seller)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]Item)).(*[]Item), nil
}

func (m *Marketplace) Seller(ctx context.Context, seller common.Address) (Seller, error) {
	out, err := m.call(ctx, "getSeller", seller)
	if err != nil {
		return Seller{}, err
	}
	return *abi.ConvertType(out[0], new(Seller)).(*Seller), nil
}

func (m *Marketplace) SellerForItem(ctx context.Context, itemID uint64) (Seller, error) {
	out, err := m.call(ctx, "getSellerForItem", new(big.Int).SetUint64(itemID))
	if err != nil {
		return Seller{}, err
	}
	return *abi.ConvertType(out[0], new(Seller)).(*Seller), nil
}

func (m *Marketplace) IsSeller(ctx context.Context, account common.Address) (bool, error) {
	out, err := m.call(ctx, "isSeller", account)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (m *Marketplace) Purchases(ctx context.Context) ([]Purchase, error) {
	out, err := m.call(ctx, "getPurchases")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]Purchase)).(*[]Purchase), nil
}

func (m *Marketplace) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := m.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", account.Hex(), err)
	}
	return balance, nil
}

func (m *Marketplace) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := m.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	return chainID, nil
}

func (m *Marketplace) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := m.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	result, err := m.client.CallContract(ctx, ethereum.CallMsg{
		To:   &m.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("call %s: %w", method, ErrEmptyResult)
	}

	out, err := m.abi.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("unpack %s: %w", method, ErrEmptyResult)
	}

	return out, nil
}
