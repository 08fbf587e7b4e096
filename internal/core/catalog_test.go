package core_test

import (
	"context"
	"math/big"

	"storefront/internal/core"
	"storefront/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Catalog", func() {
	var (
		f   *storefrontFixture
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
	})

	Describe("ActiveItems", func() {
		var (
			items []core.ItemView
			err   error
		)

		BeforeEach(func() {
			f.market.ActiveItemsReturns([]ethereum.Item{
				item(1, seller, eth(1), true),
				item(2, seller, eth(2), true),
				item(3, other, eth(3), true),
			}, nil)
			f.market.SellerStub = func(ctx context.Context, account common.Address) (ethereum.Seller, error) {
				if account == seller {
					return ethereum.Seller{SellerAddress: seller, Name: "Alice's Shop", IsRegistered: true}, nil
				}
				return ethereum.Seller{}, fakeErr
			}
		})

		JustBeforeEach(func() {
			items, err = f.storefront.ActiveItems(ctx)
		})

		It("should format prices and name sellers once each", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(3))

			Expect(items[0].ID).To(Equal(uint64(1)))
			Expect(items[0].Price).To(Equal("0.001 ETH"))
			Expect(items[0].PriceWei).To(Equal("1000000000000000"))
			Expect(items[0].SellerName).To(Equal("Alice's Shop"))
			Expect(items[1].SellerName).To(Equal("Alice's Shop"))
			Expect(items[2].SellerName).To(Equal("0x3333...3333"))

			Expect(f.market.SellerCallCount()).To(Equal(2))
		})

		When("there are no items", func() {
			BeforeEach(func() {
				f.market.ActiveItemsReturns(nil, nil)
			})

			It("should return an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(items).NotTo(BeNil())
				Expect(items).To(BeEmpty())
				Expect(f.market.SellerCallCount()).To(BeZero())
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				f.market.ActiveItemsReturns(nil, fakeErr)
			})

			It("should return ErrNodeRequest", func() {
				Expect(err).To(MatchError(core.ErrNodeRequest))
			})
		})
	})

	Describe("ItemDetails", func() {
		It("should return the item with its seller", func() {
			f.market.ItemReturns(item(4, seller, eth(250), false), nil)
			f.market.SellerForItemReturns(ethereum.Seller{SellerAddress: seller, Name: "Alice", IsRegistered: true, ItemCount: big.NewInt(2)}, nil)

			details, err := f.storefront.ItemDetails(ctx, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(details.Item.Name).To(Equal("Item"))
			Expect(details.Item.Price).To(Equal("0.25 ETH"))
			Expect(details.Item.IsActive).To(BeFalse())
			Expect(details.Item.SellerName).To(Equal("Alice"))
			Expect(details.Seller.ItemCount).To(Equal(uint64(2)))

			_, id := f.market.ItemArgsForCall(0)
			Expect(id).To(Equal(uint64(4)))
			_, id = f.market.SellerForItemArgsForCall(0)
			Expect(id).To(Equal(uint64(4)))
		})

		It("should treat a zero id in the result as not found", func() {
			f.market.ItemReturns(ethereum.Item{ItemID: new(big.Int)}, nil)
			_, err := f.storefront.ItemDetails(ctx, 99)
			Expect(err).To(MatchError(core.ErrItemNotFound))
		})

		It("should not query for item 0", func() {
			_, err := f.storefront.ItemDetails(ctx, 0)
			Expect(err).To(MatchError(core.ErrItemNotFound))
			Expect(f.market.ItemCallCount()).To(BeZero())
		})
	})

	Describe("SellerItems", func() {
		It("should list every item of the seller", func() {
			f.market.ItemsBySellerReturns([]ethereum.Item{item(1, seller, eth(1), true), item(2, seller, eth(1), false)}, nil)

			items, err := f.storefront.SellerItems(ctx, sellerHex)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(2))
			Expect(items[1].IsActive).To(BeFalse())

			_, account := f.market.ItemsBySellerArgsForCall(0)
			Expect(account).To(Equal(seller))
		})

		It("should reject bad addresses", func() {
			_, err := f.storefront.SellerItems(ctx, "seller")
			Expect(err).To(MatchError(core.ErrInvalidAddress))
		})
	})

	Describe("SellerProfile", func() {
		It("should return registered sellers", func() {
			f.market.SellerReturns(ethereum.Seller{SellerAddress: seller, Name: "Alice", IsRegistered: true, ItemCount: big.NewInt(3)}, nil)

			profile, err := f.storefront.SellerProfile(ctx, sellerHex)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile).To(Equal(core.SellerView{
				Address:      seller.Hex(),
				Name:         "Alice",
				IsRegistered: true,
				ItemCount:    3,
			}))
		})

		It("should return ErrSellerNotFound for unregistered wallets", func() {
			f.market.SellerReturns(ethereum.Seller{}, nil)
			_, err := f.storefront.SellerProfile(ctx, otherHex)
			Expect(err).To(MatchError(core.ErrSellerNotFound))
		})
	})
})
