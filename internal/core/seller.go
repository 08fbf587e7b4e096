package core

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"storefront/internal/ethereum"
	"storefront/pkg/units"
)

func (s *Storefront) RegisterSeller(ctx context.Context, session Session, name string) (TxRequest, error) {
	isSeller, err := s.market.IsSeller(ctx, session.Address)
	if err != nil {
		return TxRequest{}, nodeErr("is seller", err)
	}
	if isSeller {
		return TxRequest{}, ErrAlreadySeller
	}

	prepared, err := s.market.PrepareRegisterSeller(ctx, session.Address, strings.TrimSpace(name))
	if err != nil {
		return TxRequest{}, nodeErr("prepare register seller", err)
	}

	return toTxRequest(KindRegister, nil, prepared), nil
}

func (s *Storefront) CreateItem(ctx context.Context, session Session, in ItemInput) (TxRequest, error) {
	if err := s.requireSeller(ctx, session); err != nil {
		return TxRequest{}, err
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return TxRequest{}, err
	}

	prepared, err := s.market.PrepareCreateItem(ctx, session.Address, strings.TrimSpace(in.Name), strings.TrimSpace(in.Description), price, strings.TrimSpace(in.ImageURL))
	if err != nil {
		return TxRequest{}, nodeErr("prepare create item", err)
	}

	s.logs.Infow("create item prepared", "seller", session.Address.Hex(), "name", in.Name, "price", units.FormatEthPrice(price))
	return toTxRequest(KindCreate, nil, prepared), nil
}

func (s *Storefront) UpdateItem(ctx context.Context, session Session, itemID uint64, in ItemInput) (TxRequest, error) {
	if _, err := s.ownedItem(ctx, session, itemID); err != nil {
		return TxRequest{}, err
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return TxRequest{}, err
	}

	prepared, err := s.market.PrepareUpdateItem(ctx, session.Address, itemID, strings.TrimSpace(in.Name), strings.TrimSpace(in.Description), price, strings.TrimSpace(in.ImageURL))
	if err != nil {
		return TxRequest{}, nodeErr("prepare update item", err)
	}

	return toTxRequest(KindUpdate, &itemID, prepared), nil
}

// RemoveItem prepares the call that deactivates a listing.
func (s *Storefront) RemoveItem(ctx context.Context, session Session, itemID uint64) (TxRequest, error) {
	if _, err := s.ownedItem(ctx, session, itemID); err != nil {
		return TxRequest{}, err
	}

	prepared, err := s.market.PrepareRemoveItem(ctx, session.Address, itemID)
	if err != nil {
		return TxRequest{}, nodeErr("prepare remove item", err)
	}

	return toTxRequest(KindRemove, &itemID, prepared), nil
}

// AssignItemToSeller hands a listing over to another registered seller.
func (s *Storefront) AssignItemToSeller(ctx context.Context, session Session, itemID uint64, seller string) (TxRequest, error) {
	target, err := parseAddress(seller)
	if err != nil {
		return TxRequest{}, err
	}

	if _, err := s.ownedItem(ctx, session, itemID); err != nil {
		return TxRequest{}, err
	}

	isSeller, err := s.market.IsSeller(ctx, target)
	if err != nil {
		return TxRequest{}, nodeErr("is seller", err)
	}
	if !isSeller {
		return TxRequest{}, fmt.Errorf("%w: %s", ErrSellerNotFound, target.Hex())
	}

	prepared, err := s.market.PrepareAssignItem(ctx, session.Address, itemID, target)
	if err != nil {
		return TxRequest{}, nodeErr("prepare assign item", err)
	}

	return toTxRequest(KindAssign, &itemID, prepared), nil
}

// SellerDashboard gathers a seller's listings, sales and earnings.
// Unregistered wallets get an empty dashboard.
func (s *Storefront) SellerDashboard(ctx context.Context, address string) (SellerDashboard, error) {
	account, err := parseAddress(address)
	if err != nil {
		return SellerDashboard{}, err
	}

	seller, err := s.market.Seller(ctx, account)
	if err != nil {
		return SellerDashboard{}, nodeErr("seller", err)
	}

	dashboard := SellerDashboard{
		Seller:      toSellerView(account, seller),
		Items:       []ItemView{},
		Sales:       []PurchaseView{},
		EarningsWei: "0",
		Earnings:    units.FormatEthPrice(nil),
	}
	if !seller.IsRegistered {
		return dashboard, nil
	}

	items, err := s.market.ItemsBySeller(ctx, account)
	if err != nil {
		return SellerDashboard{}, nodeErr("items by seller", err)
	}
	for _, item := range items {
		view := toItemView(item)
		view.SellerName = dashboard.Seller.Name
		dashboard.Items = append(dashboard.Items, view)
	}

	purchases, err := s.market.Purchases(ctx)
	if err != nil {
		return SellerDashboard{}, nodeErr("purchases", err)
	}
	earnings := new(big.Int)
	for _, p := range purchases {
		if p.Seller != account {
			continue
		}
		dashboard.Sales = append(dashboard.Sales, toPurchaseView(p))
		if p.Price != nil {
			earnings.Add(earnings, p.Price)
		}
	}
	dashboard.SalesCount = len(dashboard.Sales)
	dashboard.EarningsWei = earnings.String()
	dashboard.Earnings = units.FormatEthPrice(earnings)

	return dashboard, nil
}

func (s *Storefront) requireSeller(ctx context.Context, session Session) error {
	isSeller, err := s.market.IsSeller(ctx, session.Address)
	if err != nil {
		return nodeErr("is seller", err)
	}
	if !isSeller {
		return ErrNotSeller
	}
	return nil
}

func (s *Storefront) ownedItem(ctx context.Context, session Session, itemID uint64) (ethereum.Item, error) {
	if err := s.requireSeller(ctx, session); err != nil {
		return ethereum.Item{}, err
	}

	item, err := s.loadItem(ctx, itemID)
	if err != nil {
		return ethereum.Item{}, err
	}
	if item.Seller != session.Address {
		return ethereum.Item{}, ErrNotItemOwner
	}

	return item, nil
}

func parsePrice(price string) (*big.Int, error) {
	wei, err := units.ParseEther(price)
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	if wei.Sign() == 0 {
		return nil, ErrInvalidPrice
	}
	return wei, nil
}
