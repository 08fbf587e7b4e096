package repository_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/db"
	"storefront/internal/repository"
	"storefront/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StorefrontRepository", func() {
	var (
		repo        *repository.StorefrontRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
		now         time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeStorage = new(fake.Storage)
		repo = repository.NewStorefrontRepository(fakeStorage)
		fakeErr = errors.New("fake error")

		now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		repository.TimeNow = func() time.Time { return now }
	})

	AfterEach(func() {
		repository.TimeNow = time.Now
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		It("should migrate all local tables", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(3))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.WalletChallenge{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.WalletSession{}))
			Expect(tables[2]).To(BeAssignableToTypeOf(&repository.TrackedTransaction{}))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("SaveChallenge", func() {
		It("should create the record", func() {
			challenge := repository.WalletChallenge{Nonce: "abc", Address: "0x01"}
			Expect(repo.SaveChallenge(ctx, challenge)).To(Succeed())

			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
			_, record := fakeStorage.CreateArgsForCall(0)
			Expect(record).To(Equal(&challenge))
		})

		It("should wrap storage errors", func() {
			fakeStorage.CreateReturns(fakeErr)
			err := repo.SaveChallenge(ctx, repository.WalletChallenge{})
			Expect(err).To(MatchError(fakeErr))
			Expect(err).To(MatchError(ContainSubstring("save challenge")))
		})
	})

	Describe("ConsumeChallenge", func() {
		var (
			challenge repository.WalletChallenge
			err       error
		)

		BeforeEach(func() {
			fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
				c := dest.(*repository.WalletChallenge)
				*c = repository.WalletChallenge{Nonce: "abc", Address: "0x01", ExpiresAt: now}
				return nil
			}
			fakeStorage.DeleteByReturns(1, nil)
		})

		JustBeforeEach(func() {
			challenge, err = repo.ConsumeChallenge(ctx, "abc")
		})

		It("should return the challenge and delete it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(challenge.Address).To(Equal("0x01"))

			_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("nonce"))
			Expect(val).To(Equal("abc"))

			Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
			_, model, col, op, val := fakeStorage.DeleteByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.WalletChallenge{}))
			Expect(col).To(Equal("nonce"))
			Expect(op).To(Equal("="))
			Expect(val).To(Equal("abc"))
		})

		When("the nonce is unknown", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = nil
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrChallengeNotFound", func() {
				Expect(err).To(MatchError(repository.ErrChallengeNotFound))
				Expect(fakeStorage.DeleteByCallCount()).To(BeZero())
			})
		})

		When("another request consumed it first", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, nil)
			})

			It("should return ErrChallengeNotFound", func() {
				Expect(err).To(MatchError(repository.ErrChallengeNotFound))
			})
		})

		When("delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetSession", func() {
		var (
			id      string
			session repository.WalletSession
			err     error
		)

		BeforeEach(func() {
			id = uuid.NewString()
		})

		JustBeforeEach(func() {
			session, err = repo.GetSession(ctx, id)
		})

		When("session exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					s := dest.(*repository.WalletSession)
					*s = repository.WalletSession{ID: id, Address: "0x01"}
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.ID).To(Equal(id))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(id))
			})
		})

		When("session doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrSessionNotFound", func() {
				Expect(err).To(MatchError(repository.ErrSessionNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SaveSession and DeleteSession", func() {
		It("should create then delete by id", func() {
			session := repository.WalletSession{ID: "sid", Address: "0x01"}
			Expect(repo.SaveSession(ctx, session)).To(Succeed())
			_, record := fakeStorage.CreateArgsForCall(0)
			Expect(record).To(Equal(&session))

			Expect(repo.DeleteSession(ctx, "sid")).To(Succeed())
			_, model, col, op, val := fakeStorage.DeleteByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.WalletSession{}))
			Expect(col).To(Equal("id"))
			Expect(op).To(Equal("="))
			Expect(val).To(Equal("sid"))
		})
	})

	Describe("SaveTransaction", func() {
		It("should default status and value", func() {
			err := repo.SaveTransaction(ctx, repository.TrackedTransaction{Hash: "0x1", Kind: "buy"})
			Expect(err).NotTo(HaveOccurred())

			_, record := fakeStorage.CreateArgsForCall(0)
			tx := record.(*repository.TrackedTransaction)
			Expect(tx.Status).To(Equal(repository.StatusPending))
			Expect(tx.Value).To(Equal("0"))
		})

		It("should return storage errors", func() {
			fakeStorage.CreateReturns(fakeErr)
			Expect(repo.SaveTransaction(ctx, repository.TrackedTransaction{})).To(MatchError(fakeErr))
		})

		It("should report a hash that is already tracked", func() {
			fakeStorage.CreateReturns(fmt.Errorf("insert to table: %w", db.ErrDuplicate))
			err := repo.SaveTransaction(ctx, repository.TrackedTransaction{Hash: "0x1"})
			Expect(err).To(MatchError(repository.ErrDuplicateTransaction))
		})
	})

	Describe("GetTransaction", func() {
		It("should map a missing record", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetTransaction(ctx, "0x1")
			Expect(err).To(MatchError(repository.ErrTransactionNotFound))

			_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("hash"))
			Expect(val).To(Equal("0x1"))
		})
	})

	Describe("GetTransactionsByHash", func() {
		var (
			hashes       []string
			transactions []repository.TrackedTransaction
			err          error
		)

		BeforeEach(func() {
			hashes = []string{"0x1", "0x2"}
		})

		JustBeforeEach(func() {
			transactions, err = repo.GetTransactionsByHash(ctx, hashes)
		})

		When("transactions exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					txs := dest.(*[]repository.TrackedTransaction)
					*txs = []repository.TrackedTransaction{{Hash: "0x1"}, {Hash: "0x2"}}
					return nil
				}
			})

			It("should return them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("hash"))
				Expect(val).To(Equal(hashes))
			})
		})

		When("no hashes are given", func() {
			BeforeEach(func() {
				hashes = nil
			})

			It("should not query", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(BeEmpty())
				Expect(fakeStorage.GetAllByCallCount()).To(BeZero())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransactionsByAddress", func() {
		It("should filter by sender, newest first", func() {
			_, err := repo.GetTransactionsByAddress(ctx, "0x01")
			Expect(err).NotTo(HaveOccurred())

			_, conds, order, dest := fakeStorage.FindByArgsForCall(0)
			Expect(conds).To(Equal(map[string]any{"from_address": "0x01"}))
			Expect(order).To(Equal("created_at desc"))
			Expect(dest).To(BeAssignableToTypeOf(&[]repository.TrackedTransaction{}))
		})
	})

	Describe("GetPendingTransactions", func() {
		It("should filter by pending status", func() {
			fakeStorage.FindByStub = func(ctx context.Context, conds map[string]any, order string, dest any) error {
				txs := dest.(*[]repository.TrackedTransaction)
				*txs = []repository.TrackedTransaction{{Hash: "0x1", Status: repository.StatusPending}}
				return nil
			}

			txs, err := repo.GetPendingTransactions(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(HaveLen(1))

			_, conds, order, _ := fakeStorage.FindByArgsForCall(0)
			Expect(conds).To(Equal(map[string]any{"status": repository.StatusPending}))
			Expect(order).To(Equal("created_at asc"))
		})
	})

	Describe("UpdateTransaction", func() {
		var (
			update repository.TransactionUpdate
			err    error
		)

		BeforeEach(func() {
			itemID := uint64(7)
			update = repository.TransactionUpdate{
				Status:      repository.StatusSuccess,
				BlockNumber: 100,
				GasUsed:     21000,
				ItemID:      &itemID,
			}
		})

		JustBeforeEach(func() {
			err = repo.UpdateTransaction(ctx, "0x1", update)
		})

		It("should update the settled fields", func() {
			Expect(err).NotTo(HaveOccurred())

			_, model, col, val, updates := fakeStorage.UpdateByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.TrackedTransaction{}))
			Expect(col).To(Equal("hash"))
			Expect(val).To(Equal("0x1"))
			Expect(updates).To(Equal(map[string]any{
				"status":       repository.StatusSuccess,
				"gas_used":     uint64(21000),
				"block_number": uint64(100),
				"item_id":      uint64(7),
				"updated_at":   now,
			}))
		})

		When("the record is missing", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(db.ErrNotFound)
			})

			It("should return ErrTransactionNotFound", func() {
				Expect(err).To(MatchError(repository.ErrTransactionNotFound))
			})
		})
	})

	Describe("PurgeExpired", func() {
		var (
			purged int64
			err    error
		)

		BeforeEach(func() {
			fakeStorage.DeleteByReturnsOnCall(0, 2, nil)
			fakeStorage.DeleteByReturnsOnCall(1, 3, nil)
		})

		JustBeforeEach(func() {
			purged, err = repo.PurgeExpired(ctx)
		})

		It("should delete expired challenges and sessions", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(purged).To(Equal(int64(5)))

			Expect(fakeStorage.DeleteByCallCount()).To(Equal(2))
			_, model, col, op, val := fakeStorage.DeleteByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.WalletChallenge{}))
			Expect(col).To(Equal("expires_at"))
			Expect(op).To(Equal("<"))
			Expect(val).To(Equal(now))

			_, model, _, _, _ = fakeStorage.DeleteByArgsForCall(1)
			Expect(model).To(BeAssignableToTypeOf(&repository.WalletSession{}))
		})

		When("the session purge fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturnsOnCall(1, 0, fakeErr)
			})

			It("should return what was purged and the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(purged).To(Equal(int64(2)))
			})
		})
	})
})
