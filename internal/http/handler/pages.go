package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"storefront/internal/core"
	"storefront/internal/http/handler/middleware"
	"storefront/internal/http/web"

	"go.uber.org/zap"
)

var (
	StorefrontPage = "GET /{$}"
	ItemPage       = "GET /items/{id}"
	SellerPage     = "GET /seller"
	PurchasesPage  = "GET /purchases"
	StaticFiles    = "GET /static/"
)

// PageHandler renders the HTML pages. A missing or stale session renders the
// page without a wallet rather than failing.
type PageHandler struct {
	logs       *zap.SugaredLogger
	storefront StorefrontService
	pages      PageRenderer
}

func NewPageHandler(logger *zap.SugaredLogger, storefront StorefrontService, pages PageRenderer) *PageHandler {
	return &PageHandler{
		logs:       logger,
		storefront: storefront,
		pages:      pages,
	}
}

func (h *PageHandler) HandleStorefront(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	data := h.pageData(r, "Marketplace", StorefrontPage, requestId)

	items, err := h.storefront.ActiveItems(r.Context())
	if err != nil {
		h.renderError(w, data, "Items could not be loaded", err, StorefrontPage, requestId)
		return
	}
	data.Items = items

	h.render(w, web.PageStorefront, data, http.StatusOK, StorefrontPage, requestId)
}

func (h *PageHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	data := h.pageData(r, "Item", ItemPage, requestId)

	itemID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || itemID == 0 {
		data.Title = "Not found"
		data.Message = "This item does not exist."
		h.render(w, web.PageError, data, http.StatusNotFound, ItemPage, requestId)
		return
	}

	details, err := h.storefront.ItemDetails(r.Context(), itemID)
	if err != nil {
		h.renderError(w, data, "The item could not be loaded", err, ItemPage, requestId)
		return
	}
	data.Title = details.Item.Name
	data.Details = &details

	h.render(w, web.PageItem, data, http.StatusOK, ItemPage, requestId)
}

func (h *PageHandler) HandleSeller(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	data := h.pageData(r, "Seller dashboard", SellerPage, requestId)

	if data.Wallet != nil {
		dashboard, err := h.storefront.SellerDashboard(r.Context(), data.Wallet.Address)
		if err != nil {
			h.renderError(w, data, "The dashboard could not be loaded", err, SellerPage, requestId)
			return
		}
		data.Dashboard = &dashboard
	}

	h.render(w, web.PageSeller, data, http.StatusOK, SellerPage, requestId)
}

func (h *PageHandler) HandlePurchases(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	data := h.pageData(r, "My purchases", PurchasesPage, requestId)

	if data.Wallet != nil {
		history, err := h.storefront.PurchaseHistory(r.Context(), data.Wallet.Address)
		if err != nil {
			h.renderError(w, data, "Purchases could not be loaded", err, PurchasesPage, requestId)
			return
		}
		data.History = &history
	}

	h.render(w, web.PagePurchases, data, http.StatusOK, PurchasesPage, requestId)
}

func (h *PageHandler) pageData(r *http.Request, title, route, requestId string) web.PageData {
	settings := h.storefront.Settings()
	data := web.PageData{
		Title:   title,
		Network: settings.NetworkName,
		ChainID: settings.ChainID,
	}

	token := authToken(r)
	if token == "" {
		return data
	}
	session, err := h.storefront.Session(r.Context(), token)
	if err != nil {
		return data
	}

	status, err := h.storefront.WalletStatus(r.Context(), session.Address.Hex())
	if err != nil {
		h.logs.Errorw("failed to load wallet status",
			"error", err,
			"handler", route,
			"request_id", requestId)
		status = core.WalletStatus{
			Address:     session.Address.Hex(),
			ChainID:     settings.ChainID,
			NetworkName: settings.NetworkName,
		}
	}
	data.Wallet = &status
	return data
}

func (h *PageHandler) renderError(w http.ResponseWriter, data web.PageData, message string, err error, route, requestId string) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		data.Message = message + ". Please try again later."
	} else {
		data.Message = message + ": " + err.Error()
	}
	data.Title = http.StatusText(code)

	h.logs.Errorw("failed to load page data",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
	h.render(w, web.PageError, data, code, route, requestId)
}

func (h *PageHandler) render(w http.ResponseWriter, page string, data web.PageData, code int, route, requestId string) {
	var buf bytes.Buffer
	if err := h.pages.Render(&buf, page, data); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", page,
			"handler", route,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}
