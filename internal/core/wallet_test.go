package core_test

import (
	"context"
	"crypto/ecdsa"
	"strings"
	"time"

	"storefront/internal/core"
	"storefront/internal/repository"
	tokenIssuer "storefront/pkg/jwt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func personalSign(key *ecdsa.PrivateKey, message string) string {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	Expect(err).NotTo(HaveOccurred())
	sig[64] += 27
	return hexutil.Encode(sig)
}

var _ = Describe("Wallet", func() {
	var (
		f   *storefrontFixture
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
	})

	Describe("RequestChallenge", func() {
		It("should store a nonce bound to the address", func() {
			challenge, err := f.storefront.RequestChallenge(ctx, buyerHex)
			Expect(err).NotTo(HaveOccurred())
			Expect(challenge.Nonce).To(HaveLen(32))
			Expect(challenge.Message).To(ContainSubstring(buyer.Hex()))
			Expect(challenge.Message).To(ContainSubstring("Nonce: " + challenge.Nonce))
			Expect(challenge.Message).To(ContainSubstring("Base Sepolia (84532)"))
			Expect(challenge.ExpiresAt).To(Equal(now.Add(5 * time.Minute)))

			Expect(f.repo.SaveChallengeCallCount()).To(Equal(1))
			_, saved := f.repo.SaveChallengeArgsForCall(0)
			Expect(saved.Nonce).To(Equal(challenge.Nonce))
			Expect(saved.Address).To(Equal(buyerHex))
			Expect(saved.Message).To(Equal(challenge.Message))
		})

		It("should reject malformed addresses", func() {
			_, err := f.storefront.RequestChallenge(ctx, "0x1234")
			Expect(err).To(MatchError(core.ErrInvalidAddress))
			Expect(f.repo.SaveChallengeCallCount()).To(BeZero())
		})

		It("should return storage errors", func() {
			f.repo.SaveChallengeReturns(fakeErr)
			_, err := f.storefront.RequestChallenge(ctx, buyerHex)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("ConnectWallet", func() {
		var (
			key        *ecdsa.PrivateKey
			account    common.Address
			challenge  repository.WalletChallenge
			signature  string
			connection core.Connection
			err        error
		)

		BeforeEach(func() {
			key, err = crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			account = crypto.PubkeyToAddress(key.PublicKey)

			challenge = repository.WalletChallenge{
				Nonce:     "abc",
				Address:   strings.ToLower(account.Hex()),
				Message:   "Sign in\nNonce: abc",
				ExpiresAt: now.Add(time.Minute),
			}
			signature = personalSign(key, challenge.Message)

			f.repo.ConsumeChallengeReturns(challenge, nil)
			f.jwt.IssueReturns("signed.token", nil)
			f.market.BalanceReturns(eth(1500), nil)
			f.market.IsSellerReturns(true, nil)
		})

		JustBeforeEach(func() {
			connection, err = f.storefront.ConnectWallet(ctx, account.Hex(), "abc", signature)
		})

		It("should open a session and issue a token", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(connection.Token).To(Equal("signed.token"))
			Expect(connection.ExpiresAt).To(Equal(now.Add(24 * time.Hour)))
			Expect(connection.Status.Address).To(Equal(account.Hex()))
			Expect(connection.Status.Balance).To(Equal("1.5 ETH"))
			Expect(connection.Status.IsSeller).To(BeTrue())
			Expect(connection.Status.AddressURL).To(Equal("https://sepolia.basescan.org/address/" + account.Hex()))

			_, nonce := f.repo.ConsumeChallengeArgsForCall(0)
			Expect(nonce).To(Equal("abc"))

			Expect(f.repo.SaveSessionCallCount()).To(Equal(1))
			_, session := f.repo.SaveSessionArgsForCall(0)
			Expect(session.Address).To(Equal(strings.ToLower(account.Hex())))
			Expect(session.ID).NotTo(BeEmpty())

			info := f.jwt.IssueArgsForCall(0)
			Expect(info).To(Equal(tokenIssuer.TokenInfo{
				Address:   session.Address,
				SessionID: session.ID,
				ChainID:   84532,
				TTL:       24 * time.Hour,
			}))
		})

		When("the challenge is unknown or used", func() {
			BeforeEach(func() {
				f.repo.ConsumeChallengeReturns(repository.WalletChallenge{}, repository.ErrChallengeNotFound)
			})

			It("should return ErrChallengeExpired", func() {
				Expect(err).To(MatchError(core.ErrChallengeExpired))
				Expect(f.repo.SaveSessionCallCount()).To(BeZero())
			})
		})

		When("the challenge has expired", func() {
			BeforeEach(func() {
				challenge.ExpiresAt = now.Add(-time.Second)
				f.repo.ConsumeChallengeReturns(challenge, nil)
			})

			It("should return ErrChallengeExpired", func() {
				Expect(err).To(MatchError(core.ErrChallengeExpired))
			})
		})

		When("another key signed the message", func() {
			BeforeEach(func() {
				otherKey, err := crypto.GenerateKey()
				Expect(err).NotTo(HaveOccurred())
				signature = personalSign(otherKey, challenge.Message)
			})

			It("should return ErrInvalidSignature", func() {
				Expect(err).To(MatchError(core.ErrInvalidSignature))
				Expect(f.jwt.IssueCallCount()).To(BeZero())
			})
		})

		When("the signature is garbage", func() {
			BeforeEach(func() {
				signature = "0x1234"
			})

			It("should return ErrInvalidSignature", func() {
				Expect(err).To(MatchError(core.ErrInvalidSignature))
			})
		})

		When("the challenge was issued to another address", func() {
			BeforeEach(func() {
				challenge.Address = otherHex
				f.repo.ConsumeChallengeReturns(challenge, nil)
			})

			It("should return ErrInvalidSignature", func() {
				Expect(err).To(MatchError(core.ErrInvalidSignature))
			})
		})

		When("the node is unreachable", func() {
			BeforeEach(func() {
				f.market.BalanceReturns(nil, fakeErr)
			})

			It("should still connect with a bare status", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(connection.Token).To(Equal("signed.token"))
				Expect(connection.Status.Balance).To(Equal("0 ETH"))
				Expect(connection.Status.NetworkName).To(Equal("Base Sepolia"))
			})
		})
	})

	Describe("Session", func() {
		var (
			session core.Session
			err     error
			token   string
		)

		BeforeEach(func() {
			token = "signed.token"
			f.jwt.ValidateReturns(tokenIssuer.SessionClaims{Address: buyerHex, SessionID: "sid"}, nil)
			f.repo.GetSessionReturns(repository.WalletSession{
				ID:        "sid",
				Address:   buyerHex,
				ExpiresAt: now.Add(time.Hour),
			}, nil)
		})

		JustBeforeEach(func() {
			session, err = f.storefront.Session(ctx, token)
		})

		It("should resolve the wallet", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(session.ID).To(Equal("sid"))
			Expect(session.Address).To(Equal(buyer))
			Expect(f.jwt.ValidateArgsForCall(0)).To(Equal("signed.token"))
		})

		When("there is no token", func() {
			BeforeEach(func() {
				token = ""
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(f.jwt.ValidateCallCount()).To(BeZero())
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				f.jwt.ValidateReturns(tokenIssuer.SessionClaims{}, tokenIssuer.ErrTokenExpired)
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the session was closed", func() {
			BeforeEach(func() {
				f.repo.GetSessionReturns(repository.WalletSession{}, repository.ErrSessionNotFound)
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("the session has expired", func() {
			BeforeEach(func() {
				f.repo.GetSessionReturns(repository.WalletSession{ID: "sid", Address: buyerHex, ExpiresAt: now.Add(-time.Minute)}, nil)
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("the token belongs to another wallet", func() {
			BeforeEach(func() {
				f.jwt.ValidateReturns(tokenIssuer.SessionClaims{Address: otherHex, SessionID: "sid"}, nil)
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("DisconnectWallet", func() {
		BeforeEach(func() {
			f.jwt.ValidateReturns(tokenIssuer.SessionClaims{Address: buyerHex, SessionID: "sid"}, nil)
			f.repo.GetSessionReturns(repository.WalletSession{ID: "sid", Address: buyerHex, ExpiresAt: now.Add(time.Hour)}, nil)
		})

		It("should delete the session", func() {
			Expect(f.storefront.DisconnectWallet(ctx, "signed.token")).To(Succeed())
			Expect(f.repo.DeleteSessionCallCount()).To(Equal(1))
			_, id := f.repo.DeleteSessionArgsForCall(0)
			Expect(id).To(Equal("sid"))
		})

		It("should require a session", func() {
			Expect(f.storefront.DisconnectWallet(ctx, "")).To(MatchError(core.ErrUnauthorized))
			Expect(f.repo.DeleteSessionCallCount()).To(BeZero())
		})
	})

	Describe("WalletStatus", func() {
		It("should report balance, seller flag and network", func() {
			f.market.BalanceReturns(eth(5), nil)
			f.market.IsSellerReturns(false, nil)

			status, err := f.storefront.WalletStatus(ctx, buyerHex)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.WalletStatus{
				Address:     buyer.Hex(),
				IsSeller:    false,
				BalanceWei:  "5000000000000000",
				Balance:     "0.005 ETH",
				ChainID:     84532,
				NetworkName: "Base Sepolia",
				AddressURL:  "https://sepolia.basescan.org/address/" + buyer.Hex(),
			}))

			_, account := f.market.BalanceArgsForCall(0)
			Expect(account).To(Equal(buyer))
		})

		It("should flag node failures", func() {
			f.market.BalanceReturns(eth(5), nil)
			f.market.IsSellerReturns(false, fakeErr)

			_, err := f.storefront.WalletStatus(ctx, buyerHex)
			Expect(err).To(MatchError(core.ErrNodeRequest))
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
