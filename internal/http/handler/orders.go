package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"storefront/internal/http/handler/middleware"
	"storefront/internal/http/payload"
)

func (h *StorefrontHandler) HandleBuyItem(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	itemID, ok := h.itemID(w, r, BuyItem, requestId)
	if !ok {
		return
	}
	session, ok := h.session(w, r, BuyItem, requestId)
	if !ok {
		return
	}

	tx, err := h.storefront.Buy(r.Context(), session, itemID)
	if err != nil {
		h.fail(w, "Could not prepare purchase", err, BuyItem, requestId)
		return
	}

	h.logs.Infow("purchase prepared",
		"item_id", itemID,
		"buyer", session.Address.Hex(),
		"handler", BuyItem,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Confirm the purchase in your wallet",
		Data:    tx,
	}, http.StatusOK, requestId)
}

func (h *StorefrontHandler) HandleTrackTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	session, ok := h.session(w, r, TrackTx, requestId)
	if !ok {
		return
	}

	var req payload.TrackRequest
	if !h.decode(w, r, &req, TrackTx, requestId) {
		return
	}

	view, err := h.storefront.TrackTransaction(r.Context(), session, req.Hash, req.ToInput())
	if err != nil {
		h.fail(w, "Could not track transaction", err, TrackTx, requestId)
		return
	}

	h.logs.Infow("transaction tracked",
		"hash", view.Hash,
		"kind", view.Kind,
		"handler", TrackTx,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Transaction submitted",
		Data:    view,
	}, http.StatusAccepted, requestId)
}

func (h *StorefrontHandler) HandleSubmitRawTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	session, ok := h.session(w, r, SubmitRawTx, requestId)
	if !ok {
		return
	}

	var req payload.RawTransactionRequest
	if !h.decode(w, r, &req, SubmitRawTx, requestId) {
		return
	}

	view, err := h.storefront.SubmitTransaction(r.Context(), session, req.Raw, req.ToInput())
	if err != nil {
		h.fail(w, "Could not submit transaction", err, SubmitRawTx, requestId)
		return
	}

	h.logs.Infow("raw transaction relayed",
		"hash", view.Hash,
		"kind", view.Kind,
		"handler", SubmitRawTx,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Transaction submitted",
		Data:    view,
	}, http.StatusAccepted, requestId)
}

func (h *StorefrontHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	view, err := h.storefront.TransactionStatus(r.Context(), r.PathValue("hash"))
	if err != nil {
		h.fail(w, "Could not load transaction", err, GetTransaction, requestId)
		return
	}

	h.respond(w, Response{Data: view}, http.StatusOK, requestId)
}

// HandleGetTransactions looks up the hashes given as ?hash= values, or lists
// the caller's own transactions when none are given.
func (h *StorefrontHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.badRequest(w, "Could not retrieve transactions", fmt.Errorf("parse query parameters: %w", err), GetTransactions, requestId)
		return
	}

	if hashes, ok := values["hash"]; ok {
		txRequest := payload.TransactionsRequest{
			Transactions: hashes,
		}
		if err := txRequest.Validate(); err != nil {
			h.badRequest(w, "Could not retrieve transactions", err, GetTransactions, requestId)
			return
		}

		views, err := h.storefront.Transactions(r.Context(), txRequest.Transactions)
		if err != nil {
			h.fail(w, "Could not retrieve transactions", err, GetTransactions, requestId)
			return
		}
		h.respond(w, Response{Data: views}, http.StatusOK, requestId)
		return
	}

	session, ok := h.session(w, r, GetTransactions, requestId)
	if !ok {
		return
	}

	views, err := h.storefront.MyTransactions(r.Context(), session)
	if err != nil {
		h.fail(w, "Could not retrieve transactions", err, GetTransactions, requestId)
		return
	}

	h.respond(w, Response{Data: views}, http.StatusOK, requestId)
}

func (h *StorefrontHandler) HandleGetPurchases(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	session, ok := h.session(w, r, GetPurchases, requestId)
	if !ok {
		return
	}

	history, err := h.storefront.PurchaseHistory(r.Context(), session.Address.Hex())
	if err != nil {
		h.fail(w, "Could not load purchases", err, GetPurchases, requestId)
		return
	}

	h.respond(w, Response{Data: history}, http.StatusOK, requestId)
}
