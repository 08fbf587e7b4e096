package handler

import (
	"net/http"

	"storefront/internal/http/handler/middleware"
	"storefront/internal/http/payload"
)

func (h *StorefrontHandler) HandleRequestChallenge(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var req payload.ChallengeRequest
	if !h.decode(w, r, &req, RequestChallenge, requestId) {
		return
	}

	challenge, err := h.storefront.RequestChallenge(r.Context(), req.Address)
	if err != nil {
		h.fail(w, "Could not create challenge", err, RequestChallenge, requestId)
		return
	}

	h.logs.Infow("challenge issued",
		"address", challenge.Address,
		"handler", RequestChallenge,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Sign the message with your wallet",
		Data:    challenge,
	}, http.StatusOK, requestId)
}

func (h *StorefrontHandler) HandleConnectWallet(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var req payload.ConnectRequest
	if !h.decode(w, r, &req, ConnectWallet, requestId) {
		return
	}

	conn, err := h.storefront.ConnectWallet(r.Context(), req.Address, req.Nonce, req.Signature)
	if err != nil {
		h.fail(w, "Could not connect wallet", err, ConnectWallet, requestId)
		return
	}

	h.setSessionCookie(w, conn.Token, conn.ExpiresAt)
	h.logs.Infow("wallet connected",
		"address", conn.Status.Address,
		"handler", ConnectWallet,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Wallet connected",
		Data:    conn,
	}, http.StatusOK, requestId)
}

func (h *StorefrontHandler) HandleDisconnectWallet(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	if err := h.storefront.DisconnectWallet(r.Context(), authToken(r)); err != nil {
		h.fail(w, "Could not disconnect wallet", err, DisconnectWallet, requestId)
		return
	}

	h.clearSessionCookie(w)
	h.respond(w, Response{Message: "Wallet disconnected"}, http.StatusOK, requestId)
}

func (h *StorefrontHandler) HandleWalletStatus(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	session, ok := h.session(w, r, GetWalletStatus, requestId)
	if !ok {
		return
	}

	status, err := h.storefront.WalletStatus(r.Context(), session.Address.Hex())
	if err != nil {
		h.fail(w, "Could not load wallet status", err, GetWalletStatus, requestId)
		return
	}

	h.respond(w, Response{Data: status}, http.StatusOK, requestId)
}
