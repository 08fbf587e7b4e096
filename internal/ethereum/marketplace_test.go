package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"storefront/internal/ethereum"
	"storefront/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const contractHex = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func packOutput(method string, values ...any) []byte {
	parsed, err := abi.JSON(strings.NewReader(ethereum.MarketplaceABI))
	Expect(err).NotTo(HaveOccurred())
	out, err := parsed.Methods[method].Outputs.Pack(values...)
	Expect(err).NotTo(HaveOccurred())
	return out
}

var _ = Describe("Marketplace", func() {
	var (
		market     *ethereum.Marketplace
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
		seller     common.Address
		items      []ethereum.Item
	)

	BeforeEach(func() {
		var err error
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		testErr = errors.New("test error")
		seller = common.HexToAddress("0x00000000000000000000000000000000000000aa")
		market, err = ethereum.NewMarketplace(fakeClient, contractHex)
		Expect(err).NotTo(HaveOccurred())

		items = []ethereum.Item{
			{
				ItemID:      big.NewInt(1),
				Name:        "Headset-Black",
				Description: "Over-ear",
				Price:       big.NewInt(5_000_000_000_000),
				ImageURL:    "/black.png",
				Seller:      seller,
				IsActive:    true,
			},
			{
				ItemID:      big.NewInt(2),
				Name:        "Headset-Red",
				Description: "On-ear",
				Price:       big.NewInt(6_000_000_000_000),
				ImageURL:    "/red.png",
				Seller:      seller,
				IsActive:    true,
			},
		}
	})

	Describe("NewMarketplace", func() {
		It("should reject malformed addresses", func() {
			_, err := ethereum.NewMarketplace(fakeClient, "0x123")
			Expect(err).To(MatchError(ethereum.ErrInvalidContractAddress))
		})

		It("should reject the zero address", func() {
			_, err := ethereum.NewMarketplace(fakeClient, "0x0000000000000000000000000000000000000000")
			Expect(err).To(MatchError(ethereum.ErrInvalidContractAddress))
		})
	})

	Describe("ActiveItems", func() {
		When("the call succeeds", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(packOutput("getActiveItems", items), nil)
			})

			It("should decode every item", func() {
				got, err := market.ActiveItems(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(HaveLen(2))
				Expect(got[0].ItemID.Uint64()).To(Equal(uint64(1)))
				Expect(got[0].Name).To(Equal("Headset-Black"))
				Expect(got[1].Price.Cmp(big.NewInt(6_000_000_000_000))).To(Equal(0))
				Expect(got[1].Seller).To(Equal(seller))
				Expect(got[1].IsActive).To(BeTrue())

				Expect(fakeClient.CallContractCallCount()).To(Equal(1))
				_, msg, block := fakeClient.CallContractArgsForCall(0)
				Expect(*msg.To).To(Equal(common.HexToAddress(contractHex)))
				Expect(block).To(BeNil())
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, testErr)
			})

			It("should wrap the error", func() {
				_, err := market.ActiveItems(ctx)
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring("call getActiveItems"))
			})
		})

		When("the contract returns nothing", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns([]byte{}, nil)
			})

			It("should return ErrEmptyResult", func() {
				_, err := market.ActiveItems(ctx)
				Expect(err).To(MatchError(ethereum.ErrEmptyResult))
			})
		})
	})

	Describe("Item", func() {
		BeforeEach(func() {
			fakeClient.CallContractReturns(packOutput("getItem", items[1]), nil)
		})

		It("should decode a single item", func() {
			got, err := market.Item(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ItemID.Uint64()).To(Equal(uint64(2)))
			Expect(got.ImageURL).To(Equal("/red.png"))
		})
	})

	Describe("Seller", func() {
		BeforeEach(func() {
			fakeClient.CallContractReturns(packOutput("getSeller", ethereum.Seller{
				SellerAddress: seller,
				Name:          "Audio Shop",
				IsRegistered:  true,
				ItemCount:     big.NewInt(2),
			}), nil)
		})

		It("should decode the seller", func() {
			got, err := market.Seller(ctx, seller)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Audio Shop"))
			Expect(got.IsRegistered).To(BeTrue())
			Expect(got.ItemCount.Int64()).To(Equal(int64(2)))
		})
	})

	Describe("IsSeller", func() {
		BeforeEach(func() {
			fakeClient.CallContractReturns(packOutput("isSeller", true), nil)
		})

		It("should decode the flag", func() {
			ok, err := market.IsSeller(ctx, seller)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})
	})

	Describe("Purchases", func() {
		BeforeEach(func() {
			fakeClient.CallContractReturns(packOutput("getPurchases", []ethereum.Purchase{
				{
					ItemID:   big.NewInt(1),
					ItemName: "Headset-Black",
					Price:    big.NewInt(5_000_000_000_000),
					Buyer:    common.HexToAddress("0x00000000000000000000000000000000000000bb"),
					Seller:   seller,
				},
			}), nil)
		})

		It("should decode purchases", func() {
			got, err := market.Purchases(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			Expect(got[0].ItemName).To(Equal("Headset-Black"))
			Expect(got[0].Seller).To(Equal(seller))
		})
	})
})
