package core_test

import (
	"context"
	"time"

	"storefront/internal/core"
	"storefront/internal/core/fake"
	"storefront/internal/ethereum"
	"storefront/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ReceiptTracker", func() {
	var (
		fakeRepo   *fake.Repository
		fakeMarket *fake.Marketplace
		tracker    *core.ReceiptTracker
		ctx        context.Context
		err        error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeMarket = new(fake.Marketplace)
		tracker = core.NewReceiptTracker(zap.NewNop().Sugar(), fakeRepo, fakeMarket, 10*time.Millisecond)
		ctx = context.Background()

		fakeRepo.GetPendingTransactionsReturns([]repository.TrackedTransaction{
			{Hash: "0x01", Status: repository.StatusPending},
			{Hash: "0x02", Status: repository.StatusPending},
			{Hash: "0x03", Status: repository.StatusPending},
		}, nil)
	})

	Describe("Poll", func() {
		JustBeforeEach(func() {
			err = tracker.Poll(ctx)
		})

		When("receipts come back", func() {
			BeforeEach(func() {
				itemID := uint64(4)
				fakeMarket.FetchReceiptsReturns([]*ethereum.Receipt{
					{TransactionHash: "0x01", Status: ethereum.ReceiptSuccess, BlockNumber: 10, GasUsed: 21000, ItemID: &itemID},
					{TransactionHash: "0x02", Status: ethereum.ReceiptFailed, BlockNumber: 11, GasUsed: 30000},
					{TransactionHash: "0x03", Status: ethereum.ReceiptPending},
				}, nil)
			})

			It("should settle mined transactions only", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.PurgeExpiredCallCount()).To(Equal(1))

				_, hashes := fakeMarket.FetchReceiptsArgsForCall(0)
				Expect(hashes).To(Equal([]string{"0x01", "0x02", "0x03"}))

				Expect(fakeRepo.UpdateTransactionCallCount()).To(Equal(2))
				_, hash, update := fakeRepo.UpdateTransactionArgsForCall(0)
				Expect(hash).To(Equal("0x01"))
				Expect(update.Status).To(Equal(repository.StatusSuccess))
				Expect(update.BlockNumber).To(Equal(uint64(10)))
				Expect(*update.ItemID).To(Equal(uint64(4)))

				_, hash, update = fakeRepo.UpdateTransactionArgsForCall(1)
				Expect(hash).To(Equal("0x02"))
				Expect(update.Status).To(Equal(repository.StatusFailed))
			})
		})

		When("some lookups fail", func() {
			BeforeEach(func() {
				fakeMarket.FetchReceiptsReturns([]*ethereum.Receipt{
					{TransactionHash: "0x01", Status: ethereum.ReceiptSuccess, BlockNumber: 10},
				}, fakeErr)
			})

			It("should settle what it got and return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.UpdateTransactionCallCount()).To(Equal(1))
			})
		})

		When("nothing is pending", func() {
			BeforeEach(func() {
				fakeRepo.GetPendingTransactionsReturns(nil, nil)
			})

			It("should not call the node", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeMarket.FetchReceiptsCallCount()).To(BeZero())
			})
		})

		When("purging fails", func() {
			BeforeEach(func() {
				fakeRepo.PurgeExpiredReturns(0, fakeErr)
			})

			It("should still poll receipts", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeMarket.FetchReceiptsCallCount()).To(Equal(1))
			})
		})

		When("pending transactions cannot be loaded", func() {
			BeforeEach(func() {
				fakeRepo.GetPendingTransactionsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Run", func() {
		It("should poll until the context is cancelled", func() {
			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan struct{})
			go func() {
				defer close(done)
				tracker.Run(runCtx)
			}()

			Eventually(fakeRepo.GetPendingTransactionsCallCount).Should(BeNumerically(">=", 2))
			cancel()
			Eventually(done).Should(BeClosed())
		})
	})
})
