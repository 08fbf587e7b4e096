package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/ethereum"
	"storefront/internal/repository"
	tokenIssuer "storefront/pkg/jwt"
	"storefront/pkg/units"

	"github.com/google/uuid"
)

// RequestChallenge stores a single-use nonce for the address and returns the
// message its wallet has to sign.
func (s *Storefront) RequestChallenge(ctx context.Context, address string) (Challenge, error) {
	account, err := parseAddress(address)
	if err != nil {
		return Challenge{}, err
	}

	now := TimeNow().UTC()
	nonce := strings.ReplaceAll(uuid.NewString(), "-", "")
	challenge := repository.WalletChallenge{
		Nonce:     nonce,
		Address:   lower(account),
		Message:   s.challengeMessage(account.Hex(), nonce, now),
		ExpiresAt: now.Add(s.settings.ChallengeTTL),
	}

	if err := s.repo.SaveChallenge(ctx, challenge); err != nil {
		return Challenge{}, fmt.Errorf("save challenge: %w", err)
	}

	return Challenge{
		Address:   account.Hex(),
		Nonce:     nonce,
		Message:   challenge.Message,
		ExpiresAt: challenge.ExpiresAt,
	}, nil
}

func (s *Storefront) challengeMessage(address, nonce string, issuedAt time.Time) string {
	return fmt.Sprintf(
		"Sign in to the marketplace storefront\n\nAddress: %s\nNetwork: %s (%d)\nNonce: %s\nIssued at: %s",
		address, s.settings.NetworkName, s.settings.ChainID, nonce, issuedAt.Format(time.RFC3339),
	)
}

// ConnectWallet verifies the signed challenge and opens a session for the wallet.
func (s *Storefront) ConnectWallet(ctx context.Context, address, nonce, signature string) (Connection, error) {
	account, err := parseAddress(address)
	if err != nil {
		return Connection{}, err
	}

	challenge, err := s.repo.ConsumeChallenge(ctx, nonce)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return Connection{}, ErrChallengeExpired
		}
		return Connection{}, fmt.Errorf("consume challenge: %w", err)
	}

	now := TimeNow().UTC()
	if now.After(challenge.ExpiresAt) {
		return Connection{}, ErrChallengeExpired
	}
	if challenge.Address != lower(account) {
		return Connection{}, ErrInvalidSignature
	}

	signer, err := ethereum.RecoverSigner(challenge.Message, signature)
	if err != nil {
		return Connection{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if signer != account {
		return Connection{}, ErrInvalidSignature
	}

	session := repository.WalletSession{
		ID:        uuid.NewString(),
		Address:   lower(account),
		CreatedAt: now,
		ExpiresAt: now.Add(s.settings.SessionTTL),
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return Connection{}, fmt.Errorf("save session: %w", err)
	}

	token, err := s.jwtIssuer.Issue(tokenIssuer.TokenInfo{
		Address:   session.Address,
		SessionID: session.ID,
		ChainID:   s.settings.ChainID,
		TTL:       s.settings.SessionTTL,
	})
	if err != nil {
		return Connection{}, fmt.Errorf("issue token: %w", err)
	}

	status, err := s.WalletStatus(ctx, account.Hex())
	if err != nil {
		// the session is valid even if the node is unreachable right now
		s.logs.Errorw("wallet status after connect", "address", account.Hex(), "error", err)
		status = s.baseStatus(account.Hex())
	}

	s.logs.Infow("wallet connected", "address", account.Hex(), "session", session.ID)

	return Connection{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Status:    status,
	}, nil
}

// Session resolves a token to a live wallet session.
func (s *Storefront) Session(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrUnauthorized
	}

	claims, err := s.jwtIssuer.Validate(token)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	session, err := s.repo.GetSession(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return Session{}, ErrUnauthorized
		}
		return Session{}, fmt.Errorf("get session: %w", err)
	}

	if session.Address != strings.ToLower(claims.Address) || TimeNow().After(session.ExpiresAt) {
		return Session{}, ErrUnauthorized
	}

	account, err := parseAddress(session.Address)
	if err != nil {
		return Session{}, ErrUnauthorized
	}

	return Session{
		ID:        session.ID,
		Address:   account,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Storefront) DisconnectWallet(ctx context.Context, token string) error {
	session, err := s.Session(ctx, token)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteSession(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logs.Infow("wallet disconnected", "address", session.Address.Hex(), "session", session.ID)
	return nil
}

// WalletStatus reports what the status bar shows for a connected wallet.
func (s *Storefront) WalletStatus(ctx context.Context, address string) (WalletStatus, error) {
	account, err := parseAddress(address)
	if err != nil {
		return WalletStatus{}, err
	}

	status := s.baseStatus(account.Hex())

	balance, err := s.market.Balance(ctx, account)
	if err != nil {
		return WalletStatus{}, nodeErr("balance", err)
	}
	status.BalanceWei = balance.String()
	status.Balance = units.FormatEthPrice(balance)

	status.IsSeller, err = s.market.IsSeller(ctx, account)
	if err != nil {
		return WalletStatus{}, nodeErr("is seller", err)
	}

	return status, nil
}

func (s *Storefront) baseStatus(address string) WalletStatus {
	return WalletStatus{
		Address:     address,
		BalanceWei:  "0",
		Balance:     units.FormatEthPrice(nil),
		ChainID:     s.settings.ChainID,
		NetworkName: s.settings.NetworkName,
		AddressURL:  s.explorerLink("address", address),
	}
}
