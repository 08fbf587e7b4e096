package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"storefront/internal/core"
	"storefront/internal/http/handler"
	"storefront/internal/http/handler/fake"
	"storefront/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	walletHex = "0x1111111111111111111111111111111111111111"
	txHash    = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(w *httptest.ResponseRecorder) envelope {
	var resp envelope
	Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
	return resp
}

var _ = Describe("StorefrontHandler", func() {
	var (
		sh            *handler.StorefrontHandler
		fakeService   *fake.StorefrontService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		session       core.Session
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		session = core.Session{
			ID:        "session-1",
			Address:   common.HexToAddress(walletHex),
			ExpiresAt: time.Now().Add(time.Hour),
		}

		fakeService = new(fake.StorefrontService)
		fakeService.SessionReturns(session, nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		sh = handler.NewStorefrontHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, false)
	})

	Describe("HandleHealth", func() {
		It("should answer ok", func() {
			sh.HandleHealth(w, httptest.NewRequest("GET", "/health", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeEnvelope(w).Message).To(Equal("ok"))
		})
	})

	Describe("HandleRequestChallenge", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/wallet/challenge", strings.NewReader(fmt.Sprintf(`{"address":%q}`, walletHex)))
			fakeService.RequestChallengeReturns(core.Challenge{
				Address: walletHex,
				Nonce:   "abc",
				Message: "Sign in",
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleRequestChallenge(w, req)
		})

		It("should return the challenge", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var challenge core.Challenge
			Expect(json.Unmarshal(decodeEnvelope(w).Data, &challenge)).To(Succeed())
			Expect(challenge.Nonce).To(Equal("abc"))

			_, address := fakeService.RequestChallengeArgsForCall(0)
			Expect(address).To(Equal(walletHex))
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/wallet/challenge", strings.NewReader(`{"address":"nope"}`))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeEnvelope(w).Error).To(ContainSubstring("invalid request payload"))
				Expect(fakeService.RequestChallengeCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleConnectWallet", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"address":%q,"nonce":"abc","signature":"0x%s"}`, walletHex, strings.Repeat("ab", 65))
			req = httptest.NewRequest("POST", "/api/wallet/connect", strings.NewReader(body))
			fakeService.ConnectWalletReturns(core.Connection{
				Token:     "signed-token",
				ExpiresAt: time.Now().Add(time.Hour),
				Status:    core.WalletStatus{Address: walletHex},
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleConnectWallet(w, req)
		})

		It("should set the session cookie", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal(handler.SessionCookie))
			Expect(cookies[0].Value).To(Equal("signed-token"))
			Expect(cookies[0].HttpOnly).To(BeTrue())
			Expect(cookies[0].SameSite).To(Equal(http.SameSiteLaxMode))
		})

		When("the signature does not match", func() {
			BeforeEach(func() {
				fakeService.ConnectWalletReturns(core.Connection{}, core.ErrInvalidSignature)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeEnvelope(w).Error).To(Equal(core.ErrInvalidSignature.Error()))
				Expect(w.Result().Cookies()).To(BeEmpty())
			})
		})

		When("decoding fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
				fakeValidator.DecodeJSONPayloadStub = nil
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeEnvelope(w).Error).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.ConnectWalletCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleDisconnectWallet", func() {
		It("should clear the cookie and drop the session", func() {
			req = httptest.NewRequest("POST", "/api/wallet/disconnect", nil)
			req.AddCookie(&http.Cookie{Name: handler.SessionCookie, Value: "cookie-token"})

			sh.HandleDisconnectWallet(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, token := fakeService.DisconnectWalletArgsForCall(0)
			Expect(token).To(Equal("cookie-token"))
			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("HandleWalletStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/wallet/status", nil)
			req.Header.Set(handler.AuthHeader, "header-token")
		})

		It("should prefer the header token", func() {
			req.AddCookie(&http.Cookie{Name: handler.SessionCookie, Value: "cookie-token"})
			fakeService.WalletStatusReturns(core.WalletStatus{Address: walletHex, Balance: "1 ETH"}, nil)

			sh.HandleWalletStatus(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, token := fakeService.SessionArgsForCall(0)
			Expect(token).To(Equal("header-token"))
			_, address := fakeService.WalletStatusArgsForCall(0)
			Expect(address).To(Equal(common.HexToAddress(walletHex).Hex()))
		})

		When("there is no session", func() {
			BeforeEach(func() {
				fakeService.SessionReturns(core.Session{}, core.ErrUnauthorized)
			})

			It("should return status 401", func() {
				sh.HandleWalletStatus(w, req)
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.WalletStatusCallCount()).To(Equal(0))
			})
		})

		When("the node is unreachable", func() {
			BeforeEach(func() {
				fakeService.WalletStatusReturns(core.WalletStatus{}, fmt.Errorf("balance: %w: %w", core.ErrNodeRequest, fakeErr))
			})

			It("should return status 502", func() {
				sh.HandleWalletStatus(w, req)
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Describe("HandleGetItem", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/items/3", nil)
			req.SetPathValue("id", "3")
			fakeService.ItemDetailsReturns(core.ItemDetails{Item: core.ItemView{ID: 3, Name: "Mug"}}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleGetItem(w, req)
		})

		It("should return the item details", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, id := fakeService.ItemDetailsArgsForCall(0)
			Expect(id).To(Equal(uint64(3)))
		})

		When("the item does not exist", func() {
			BeforeEach(func() {
				fakeService.ItemDetailsReturns(core.ItemDetails{}, core.ErrItemNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "mug")
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ItemDetailsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetItems", func() {
		When("the service fails unexpectedly", func() {
			It("should hide the error", func() {
				fakeService.ActiveItemsReturns(nil, fakeErr)
				sh.HandleGetItems(w, httptest.NewRequest("GET", "/api/items", nil))

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(decodeEnvelope(w).Error).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleBuyItem", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/items/3/buy", nil)
			req.SetPathValue("id", "3")
			req.Header.Set(handler.AuthHeader, "token")
			fakeService.BuyReturns(core.TxRequest{
				Kind:  core.KindBuy,
				From:  session.Address,
				Value: (*hexutil.Big)(big.NewInt(5_000_000_000_000)),
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleBuyItem(w, req)
		})

		It("should return the unsigned transaction", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decodeEnvelope(w)
			Expect(string(resp.Data)).To(ContainSubstring(`"value":"0x48c27395000"`))

			_, s, id := fakeService.BuyArgsForCall(0)
			Expect(s).To(Equal(session))
			Expect(id).To(Equal(uint64(3)))
		})

		When("the item is no longer active", func() {
			BeforeEach(func() {
				fakeService.BuyReturns(core.TxRequest{}, core.ErrItemInactive)
			})

			It("should return status 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleTrackTransaction", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"hash":%q,"kind":"buy"}`, txHash)
			req = httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
			fakeService.TrackTransactionReturns(core.TransactionView{Hash: txHash, Kind: "buy", Status: "pending"}, nil)
		})

		It("should record the transaction", func() {
			sh.HandleTrackTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusAccepted))
			_, _, hash, in := fakeService.TrackTransactionArgsForCall(0)
			Expect(hash).To(Equal(txHash))
			Expect(in).To(Equal(core.TrackInput{Kind: core.KindBuy}))
		})

		When("the hash is already tracked", func() {
			BeforeEach(func() {
				fakeService.TrackTransactionReturns(core.TransactionView{}, fmt.Errorf("%w: %s", core.ErrAlreadyTracked, txHash))
			})

			It("should return status 409", func() {
				sh.HandleTrackTransaction(w, req)
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the hash is unknown to the node", func() {
			BeforeEach(func() {
				fakeService.TrackTransactionReturns(core.TransactionView{}, core.ErrTransactionNotFound)
			})

			It("should return status 404", func() {
				sh.HandleTrackTransaction(w, req)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleSubmitRawTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/transactions/raw", strings.NewReader(`{"raw":"0x02f8","kind":"buy"}`))
		})

		When("the transaction is rejected", func() {
			BeforeEach(func() {
				fakeService.SubmitTransactionReturns(core.TransactionView{}, fmt.Errorf("%w: wrong sender", core.ErrRejectedTransaction))
			})

			It("should return status 400", func() {
				sh.HandleSubmitRawTransaction(w, req)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeEnvelope(w).Error).To(ContainSubstring("wrong sender"))
			})
		})
	})

	Describe("HandleGetTransactions", func() {
		When("hashes are given", func() {
			It("should look them up", func() {
				req = httptest.NewRequest("GET", "/api/transactions?hash="+txHash, nil)
				fakeService.TransactionsReturns([]core.TransactionView{{Hash: txHash}}, nil)

				sh.HandleGetTransactions(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				_, hashes := fakeService.TransactionsArgsForCall(0)
				Expect(hashes).To(ConsistOf(txHash))
				Expect(fakeService.SessionCallCount()).To(Equal(0))
			})

			It("should reject malformed hashes", func() {
				req = httptest.NewRequest("GET", "/api/transactions?hash=0x1", nil)

				sh.HandleGetTransactions(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionsCallCount()).To(Equal(0))
			})
		})

		When("no hashes are given", func() {
			It("should list the caller's transactions", func() {
				req = httptest.NewRequest("GET", "/api/transactions", nil)

				sh.HandleGetTransactions(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.MyTransactionsCallCount()).To(Equal(1))
			})
		})
	})

	Describe("HandleGetTransaction", func() {
		It("should return status 404 for unknown hashes", func() {
			req = httptest.NewRequest("GET", "/api/transactions/"+txHash, nil)
			req.SetPathValue("hash", txHash)
			fakeService.TransactionStatusReturns(core.TransactionView{}, core.ErrTransactionNotFound)

			sh.HandleGetTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("seller operations", func() {
		It("should forward a new listing", func() {
			req = httptest.NewRequest("POST", "/api/seller/items", strings.NewReader(`{"name":"Mug","description":"Ceramic","price":"0.0001 ETH"}`))
			fakeService.CreateItemReturns(core.TxRequest{Kind: core.KindCreate}, nil)

			sh.HandleCreateItem(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, _, in := fakeService.CreateItemArgsForCall(0)
			Expect(in.Name).To(Equal("Mug"))
			Expect(in.Price).To(Equal("0.0001 ETH"))
		})

		It("should refuse callers that are not sellers", func() {
			req = httptest.NewRequest("POST", "/api/seller/items", strings.NewReader(`{"name":"Mug","price":"1"}`))
			fakeService.CreateItemReturns(core.TxRequest{}, core.ErrNotSeller)

			sh.HandleCreateItem(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("should refuse changes to items owned by others", func() {
			req = httptest.NewRequest("DELETE", "/api/seller/items/4", nil)
			req.SetPathValue("id", "4")
			fakeService.RemoveItemReturns(core.TxRequest{}, core.ErrNotItemOwner)

			sh.HandleRemoveItem(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			_, _, id := fakeService.RemoveItemArgsForCall(0)
			Expect(id).To(Equal(uint64(4)))
		})

		It("should report a second registration as a conflict", func() {
			req = httptest.NewRequest("POST", "/api/seller/register", strings.NewReader(`{"name":"Shop"}`))
			fakeService.RegisterSellerReturns(core.TxRequest{}, core.ErrAlreadySeller)

			sh.HandleRegisterSeller(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("should reject a bad price", func() {
			req = httptest.NewRequest("PUT", "/api/seller/items/4", strings.NewReader(`{"name":"Mug","price":"0"}`))
			req.SetPathValue("id", "4")
			fakeService.UpdateItemReturns(core.TxRequest{}, core.ErrInvalidPrice)

			sh.HandleUpdateItem(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should assign an item to another seller", func() {
			body := fmt.Sprintf(`{"seller":%q}`, "0x2222222222222222222222222222222222222222")
			req = httptest.NewRequest("POST", "/api/seller/items/4/assign", strings.NewReader(body))
			req.SetPathValue("id", "4")
			fakeService.AssignItemToSellerReturns(core.TxRequest{Kind: core.KindAssign}, nil)

			sh.HandleAssignItem(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, _, id, seller := fakeService.AssignItemToSellerArgsForCall(0)
			Expect(id).To(Equal(uint64(4)))
			Expect(seller).To(Equal("0x2222222222222222222222222222222222222222"))
		})

		It("should return the dashboard", func() {
			req = httptest.NewRequest("GET", "/api/seller/dashboard", nil)
			fakeService.SellerDashboardReturns(core.SellerDashboard{SalesCount: 2, Earnings: "0.0002 ETH"}, nil)

			sh.HandleSellerDashboard(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(string(decodeEnvelope(w).Data)).To(ContainSubstring(`"salesCount":2`))
		})
	})
})
