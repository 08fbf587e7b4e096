package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"storefront/internal/core"
	"storefront/internal/http/handler"
	"storefront/internal/http/handler/fake"
	"storefront/internal/http/web"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("PageHandler", func() {
	var (
		ph          *handler.PageHandler
		fakeService *fake.StorefrontService
		w           *httptest.ResponseRecorder
		req         *http.Request
	)

	BeforeEach(func() {
		templates, err := web.NewTemplates()
		Expect(err).NotTo(HaveOccurred())

		fakeService = new(fake.StorefrontService)
		fakeService.SettingsReturns(core.Settings{ChainID: 84532, NetworkName: "Base Sepolia"})
		fakeService.SessionReturns(core.Session{}, core.ErrUnauthorized)

		w = httptest.NewRecorder()
		ph = handler.NewPageHandler(zap.NewNop().Sugar(), fakeService, templates)
	})

	Describe("HandleStorefront", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/", nil)
		})

		It("should show the empty state", func() {
			ph.HandleStorefront(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/html"))
			Expect(w.Body.String()).To(ContainSubstring("No items to display"))
			Expect(w.Body.String()).To(ContainSubstring("Base Sepolia"))
			Expect(fakeService.SessionCallCount()).To(Equal(0))
		})

		It("should list active items", func() {
			fakeService.ActiveItemsReturns([]core.ItemView{{ID: 1, Name: "Mug", Price: "0.0001 ETH", IsActive: true}}, nil)

			ph.HandleStorefront(w, req)

			Expect(w.Body.String()).To(ContainSubstring("Mug"))
			Expect(w.Body.String()).To(ContainSubstring("0.0001 ETH"))
			Expect(w.Body.String()).NotTo(ContainSubstring("No items to display"))
		})

		When("a wallet is connected", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: handler.SessionCookie, Value: "token"})
				fakeService.SessionReturns(core.Session{Address: common.HexToAddress(walletHex)}, nil)
				fakeService.WalletStatusReturns(core.WalletStatus{
					Address: common.HexToAddress(walletHex).Hex(),
					Balance: "1.5 ETH",
				}, nil)
			})

			It("should render the wallet bar", func() {
				ph.HandleStorefront(w, req)

				Expect(w.Body.String()).To(ContainSubstring("1.5 ETH"))
				Expect(w.Body.String()).To(ContainSubstring(common.HexToAddress(walletHex).Hex()))
			})
		})

		When("items cannot be loaded", func() {
			It("should render the error page", func() {
				fakeService.ActiveItemsReturns(nil, errors.New("boom"))

				ph.HandleStorefront(w, req)

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("Items could not be loaded"))
				Expect(w.Body.String()).NotTo(ContainSubstring("boom"))
			})
		})
	})

	Describe("HandleItem", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/items/7", nil)
			req.SetPathValue("id", "7")
		})

		It("should render the details", func() {
			fakeService.ItemDetailsReturns(core.ItemDetails{
				Item:   core.ItemView{ID: 7, Name: "Lamp", IsActive: true},
				Seller: core.SellerView{Name: "Lights Inc"},
			}, nil)

			ph.HandleItem(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Lights Inc"))
			Expect(w.Body.String()).To(ContainSubstring(`data-item-id="7"`))
		})

		It("should answer 404 for unknown items", func() {
			fakeService.ItemDetailsReturns(core.ItemDetails{}, core.ErrItemNotFound)

			ph.HandleItem(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should answer 404 for malformed ids", func() {
			req.SetPathValue("id", "lamp")

			ph.HandleItem(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(fakeService.ItemDetailsCallCount()).To(Equal(0))
		})
	})

	Describe("HandleSeller", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/seller", nil)
		})

		It("should ask for a wallet", func() {
			ph.HandleSeller(w, req)

			Expect(w.Body.String()).To(ContainSubstring("Connect your wallet"))
			Expect(fakeService.SellerDashboardCallCount()).To(Equal(0))
		})

		When("the wallet is not a seller", func() {
			BeforeEach(func() {
				req.Header.Set(handler.AuthHeader, "token")
				fakeService.SessionReturns(core.Session{Address: common.HexToAddress(walletHex)}, nil)
				fakeService.WalletStatusReturns(core.WalletStatus{Address: common.HexToAddress(walletHex).Hex()}, nil)
			})

			It("should offer registration", func() {
				ph.HandleSeller(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`id="register-seller"`))
				_, address := fakeService.SellerDashboardArgsForCall(0)
				Expect(address).To(Equal(common.HexToAddress(walletHex).Hex()))
			})
		})
	})

	Describe("HandlePurchases", func() {
		When("a wallet is connected", func() {
			It("should load the history", func() {
				req = httptest.NewRequest("GET", "/purchases", nil)
				req.Header.Set(handler.AuthHeader, "token")
				fakeService.SessionReturns(core.Session{Address: common.HexToAddress(walletHex)}, nil)
				fakeService.WalletStatusReturns(core.WalletStatus{}, errors.New("node down"))
				fakeService.PurchaseHistoryReturns(core.PurchaseHistory{TotalSpent: "0.3 ETH"}, nil)

				ph.HandlePurchases(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.PurchaseHistoryCallCount()).To(Equal(1))
				_, address := fakeService.PurchaseHistoryArgsForCall(0)
				Expect(address).To(Equal(common.HexToAddress(walletHex).Hex()))
			})
		})
	})
})
