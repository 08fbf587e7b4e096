package ethereum_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"

	"storefront/internal/ethereum"
	"storefront/internal/ethereum/fake"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Marketplace transactions", func() {
	var (
		market     *ethereum.Marketplace
		fakeClient *fake.EthClient
		ctx        context.Context
		chainID    *big.Int
		buyer      common.Address
		contract   common.Address
	)

	BeforeEach(func() {
		var err error
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		chainID = big.NewInt(84532)
		contract = common.HexToAddress(contractHex)
		buyer = common.HexToAddress("0x00000000000000000000000000000000000000bb")

		fakeClient.ChainIDReturns(chainID, nil)
		fakeClient.EstimateGasReturns(85_000, nil)

		market, err = ethereum.NewMarketplace(fakeClient, contractHex)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("PrepareBuy", func() {
		It("should send the listed price as value", func() {
			price := big.NewInt(5_000_000_000_000)
			tx, err := market.PrepareBuy(ctx, buyer, 3, price)
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.To).To(Equal(contract))
			Expect(tx.From).To(Equal(buyer))
			Expect(tx.Value.Cmp(price)).To(Equal(0))
			Expect(tx.Gas).To(Equal(uint64(85_000)))
			Expect(tx.ChainID.Cmp(chainID)).To(Equal(0))
			// buyItem(uint256) selector followed by one word
			Expect(tx.Data).To(HaveLen(4 + 32))
			Expect(new(big.Int).SetBytes(tx.Data[4:]).Uint64()).To(Equal(uint64(3)))

			Expect(fakeClient.EstimateGasCallCount()).To(Equal(1))
			_, msg := fakeClient.EstimateGasArgsForCall(0)
			Expect(msg.From).To(Equal(buyer))
			Expect(msg.Value.Cmp(price)).To(Equal(0))
			Expect(msg.Data).To(Equal(tx.Data))
		})

		When("gas estimation reverts", func() {
			BeforeEach(func() {
				fakeClient.EstimateGasReturns(0, errors.New("execution reverted: item not active"))
			})

			It("should return the revert reason", func() {
				_, err := market.PrepareBuy(ctx, buyer, 3, big.NewInt(1))
				Expect(err).To(MatchError(ContainSubstring("estimate gas for buyItem: execution reverted: item not active")))
			})
		})
	})

	Describe("PrepareCreateItem", func() {
		It("should carry no value", func() {
			tx, err := market.PrepareCreateItem(ctx, buyer, "Mug", "Ceramic", big.NewInt(10), "/mug.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Value.Sign()).To(Equal(0))
			Expect(len(tx.Data)).To(BeNumerically(">", 4))
		})
	})

	Describe("SendRawTransaction", func() {
		var (
			key     *ecdsa.PrivateKey
			sender  common.Address
			rawHex  string
			to      common.Address
			signFor *big.Int
			data    []byte
			signed  *types.Transaction
		)

		BeforeEach(func() {
			var err error
			key, err = crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sender = crypto.PubkeyToAddress(key.PublicKey)
			to = contract
			signFor = chainID
			data = buyItemCall(3)
		})

		JustBeforeEach(func() {
			signed = signDynamicFeeTx(key, signFor, to, data)
			raw, err := signed.MarshalBinary()
			Expect(err).NotTo(HaveOccurred())
			rawHex = hexutil.Encode(raw)
		})

		It("should broadcast a transaction signed by the wallet", func() {
			sent, err := market.SendRawTransaction(ctx, rawHex, sender)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
			_, broadcast := fakeClient.SendTransactionArgsForCall(0)
			Expect(broadcast.Hash()).To(Equal(sent.Hash))

			Expect(sent.Method).To(Equal("buyItem"))
			Expect(*sent.ItemID).To(Equal(uint64(3)))
			Expect(sent.Value.Cmp(big.NewInt(5))).To(Equal(0))
		})

		It("should accept input without the 0x prefix", func() {
			_, err := market.SendRawTransaction(ctx, rawHex[2:], sender)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject another signer", func() {
			_, err := market.SendRawTransaction(ctx, rawHex, buyer)
			Expect(err).To(MatchError(ethereum.ErrWrongSender))
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
		})

		When("the transaction targets another contract", func() {
			BeforeEach(func() {
				to = common.HexToAddress("0x00000000000000000000000000000000000000cc")
			})

			It("should reject it", func() {
				_, err := market.SendRawTransaction(ctx, rawHex, sender)
				Expect(err).To(MatchError(ethereum.ErrWrongDestination))
			})
		})

		When("the transaction is signed for another chain", func() {
			BeforeEach(func() {
				signFor = big.NewInt(1)
			})

			It("should reject it", func() {
				_, err := market.SendRawTransaction(ctx, rawHex, sender)
				Expect(err).To(MatchError(ethereum.ErrWrongChain))
			})
		})

		When("the calldata is not a marketplace method", func() {
			BeforeEach(func() {
				data = []byte{0x01}
			})

			It("should reject it", func() {
				_, err := market.SendRawTransaction(ctx, rawHex, sender)
				Expect(err).To(MatchError(ethereum.ErrUnknownMethod))
				Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
			})
		})

		It("should reject legacy transactions without a chain id", func() {
			legacy, err := types.SignTx(types.NewTx(&types.LegacyTx{
				Nonce:    0,
				GasPrice: big.NewInt(1),
				Gas:      85_000,
				To:       &contract,
				Value:    big.NewInt(5),
				Data:     buyItemCall(3),
			}), types.HomesteadSigner{}, key)
			Expect(err).NotTo(HaveOccurred())
			Expect(legacy.Protected()).To(BeFalse())
			raw, err := legacy.MarshalBinary()
			Expect(err).NotTo(HaveOccurred())

			_, err = market.SendRawTransaction(ctx, hexutil.Encode(raw), sender)
			Expect(err).To(MatchError(ethereum.ErrWrongChain))
			Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
		})

		It("should reject garbage", func() {
			_, err := market.SendRawTransaction(ctx, "0xzz", sender)
			Expect(err).To(MatchError(ethereum.ErrMalformedTransaction))
			Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
		})
	})

	Describe("LookupTransaction", func() {
		var (
			key    *ecdsa.PrivateKey
			sender common.Address
			signed *types.Transaction
		)

		BeforeEach(func() {
			var err error
			key, err = crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sender = crypto.PubkeyToAddress(key.PublicKey)
			signed = signDynamicFeeTx(key, chainID, contract, buyItemCall(9))
			fakeClient.TransactionByHashReturns(signed, true, nil)
		})

		It("should read the call from the chain", func() {
			sent, err := market.LookupTransaction(ctx, signed.Hash(), sender)
			Expect(err).NotTo(HaveOccurred())
			Expect(sent.Hash).To(Equal(signed.Hash()))
			Expect(sent.Method).To(Equal("buyItem"))
			Expect(*sent.ItemID).To(Equal(uint64(9)))
			Expect(sent.Value.Cmp(big.NewInt(5))).To(Equal(0))

			_, hash := fakeClient.TransactionByHashArgsForCall(0)
			Expect(hash).To(Equal(signed.Hash()))
			Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
		})

		It("should reject a transaction sent by another wallet", func() {
			_, err := market.LookupTransaction(ctx, signed.Hash(), buyer)
			Expect(err).To(MatchError(ethereum.ErrWrongSender))
		})

		When("the node does not know the hash", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(nil, false, geth.NotFound)
			})

			It("should return ErrUnknownTransaction", func() {
				_, err := market.LookupTransaction(ctx, signed.Hash(), sender)
				Expect(err).To(MatchError(ethereum.ErrUnknownTransaction))
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(nil, false, errors.New("connection refused"))
			})

			It("should wrap the error", func() {
				_, err := market.LookupTransaction(ctx, signed.Hash(), sender)
				Expect(err).To(MatchError(ContainSubstring("get transaction by hash: connection refused")))
				Expect(err).NotTo(MatchError(ethereum.ErrUnknownTransaction))
			})
		})
	})
})

func buyItemCall(itemID int64) []byte {
	return append(crypto.Keccak256([]byte("buyItem(uint256)"))[:4], common.LeftPadBytes(big.NewInt(itemID).Bytes(), 32)...)
}

func signDynamicFeeTx(key *ecdsa.PrivateKey, chainID *big.Int, to common.Address, data []byte) *types.Transaction {
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     0,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       85_000,
		To:        &to,
		Value:     big.NewInt(5),
		Data:      data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	Expect(err).NotTo(HaveOccurred())
	return signed
}
