package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrWrongDestination error = errors.New("transaction is not addressed to the marketplace")
var ErrWrongSender error = errors.New("transaction is not signed by the connected wallet")
var ErrWrongChain error = errors.New("transaction is signed for another chain")
var ErrMalformedTransaction error = errors.New("malformed raw transaction")
var ErrUnknownMethod error = errors.New("transaction does not call a marketplace method")
var ErrUnknownTransaction error = errors.New("transaction not known to the node")

func (m *Marketplace) PrepareBuy(ctx context.Context, from common.Address, itemID uint64, price *big.Int) (*PreparedTx, error) {
	return m.prepare(ctx, from, price, "buyItem", new(big.Int).SetUint64(itemID))
}

func (m *Marketplace) PrepareRegisterSeller(ctx context.Context, from common.Address, name string) (*PreparedTx, error) {
	return m.prepare(ctx, from, nil, "registerSeller", name)
}

func (m *Marketplace) PrepareCreateItem(ctx context.Context, from common.Address, name, description string, price *big.Int, imageURL string) (*PreparedTx, error) {
	return m.prepare(ctx, from, nil, "createItem", name, description, price, imageURL)
}

func (m *Marketplace) PrepareUpdateItem(ctx context.Context, from common.Address, itemID uint64, name, description string, price *big.Int, imageURL string) (*PreparedTx, error) {
	return m.prepare(ctx, from, nil, "updateItem", new(big.Int).SetUint64(itemID), name, description, price, imageURL)
}

func (m *Marketplace) PrepareRemoveItem(ctx context.Context, from common.Address, itemID uint64) (*PreparedTx, error) {
	return m.prepare(ctx, from, nil, "removeItem", new(big.Int).SetUint64(itemID))
}

func (m *Marketplace) PrepareAssignItem(ctx context.Context, from common.Address, itemID uint64, seller common.Address) (*PreparedTx, error) {
	return m.prepare(ctx, from, nil, "assignItemToSeller", new(big.Int).SetUint64(itemID), seller)
}

// SendRawTransaction relays a wallet-signed marketplace transaction.
func (m *Marketplace) SendRawTransaction(ctx context.Context, rawHex string, expectedFrom common.Address) (*SentTransaction, error) {
	raw, err := hexutil.Decode(ensureHexPrefix(rawHex))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrMalformedTransaction, err)
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %w", ErrMalformedTransaction, err)
	}

	sent, err := m.verify(ctx, tx, expectedFrom)
	if err != nil {
		return nil, err
	}

	if err := m.client.SendTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	return sent, nil
}

// LookupTransaction loads a transaction the wallet broadcast itself and
// applies the same checks as SendRawTransaction.
func (m *Marketplace) LookupTransaction(ctx context.Context, hash common.Hash, expectedFrom common.Address) (*SentTransaction, error) {
	tx, _, err := m.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTransaction, hash.Hex())
		}
		return nil, fmt.Errorf("get transaction by hash: %w", err)
	}

	return m.verify(ctx, tx, expectedFrom)
}

func (m *Marketplace) verify(ctx context.Context, tx *types.Transaction, expectedFrom common.Address) (*SentTransaction, error) {
	if tx.To() == nil || *tx.To() != m.address {
		return nil, ErrWrongDestination
	}

	chainID, err := m.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	// pre EIP-155 transactions are valid on every chain
	if !tx.Protected() {
		return nil, fmt.Errorf("%w: no chain id, want %s", ErrWrongChain, chainID)
	}
	if tx.ChainId().Cmp(chainID) != 0 {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrWrongChain, tx.ChainId(), chainID)
	}

	from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	if err != nil {
		return nil, fmt.Errorf("%w: recover sender: %w", ErrMalformedTransaction, err)
	}
	if from != expectedFrom {
		return nil, fmt.Errorf("%w: signed by %s", ErrWrongSender, from.Hex())
	}

	method, itemID, err := m.decodeCall(tx.Data())
	if err != nil {
		return nil, err
	}

	return &SentTransaction{
		Hash:   tx.Hash(),
		Method: method,
		ItemID: itemID,
		Value:  new(big.Int).Set(tx.Value()),
	}, nil
}

// decodeCall resolves the marketplace method and, when its first argument
// is itemId, the item it targets.
func (m *Marketplace) decodeCall(data []byte) (string, *uint64, error) {
	if len(data) < 4 {
		return "", nil, fmt.Errorf("%w: no method selector", ErrUnknownMethod)
	}

	method, err := m.abi.MethodById(data[:4])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrUnknownMethod, err)
	}

	if len(method.Inputs) == 0 || method.Inputs[0].Name != "itemId" {
		return method.Name, nil, nil
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return "", nil, fmt.Errorf("%w: unpack %s: %w", ErrMalformedTransaction, method.Name, err)
	}
	id, ok := args[0].(*big.Int)
	if !ok || !id.IsUint64() {
		return "", nil, fmt.Errorf("%w: %s item id", ErrMalformedTransaction, method.Name)
	}
	itemID := id.Uint64()

	return method.Name, &itemID, nil
}

func (m *Marketplace) prepare(ctx context.Context, from common.Address, value *big.Int, method string, args ...any) (*PreparedTx, error) {
	data, err := m.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	if value == nil {
		value = new(big.Int)
	}

	gas, err := m.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &m.address,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas for %s: %w", method, err)
	}

	chainID, err := m.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return &PreparedTx{
		From:    from,
		To:      m.address,
		Data:    data,
		Value:   value,
		Gas:     gas,
		ChainID: chainID,
	}, nil
}

func ensureHexPrefix(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}
