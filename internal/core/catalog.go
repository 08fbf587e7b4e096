package core

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
)

// ActiveItems lists the items currently for sale with their seller names.
func (s *Storefront) ActiveItems(ctx context.Context) ([]ItemView, error) {
	items, err := s.market.ActiveItems(ctx)
	if err != nil {
		return nil, nodeErr("active items", err)
	}

	sellers := make([]common.Address, 0, len(items))
	seen := make(map[common.Address]struct{})
	for _, item := range items {
		if _, ok := seen[item.Seller]; ok {
			continue
		}
		seen[item.Seller] = struct{}{}
		sellers = append(sellers, item.Seller)
	}

	names := s.sellerNames(ctx, sellers)

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		view := toItemView(item)
		view.SellerName = names[item.Seller]
		views = append(views, view)
	}

	s.logs.Infow("active items fetched", "count", len(views), "sellers", len(sellers))
	return views, nil
}

// sellerNames looks up every seller once, concurrently. Lookups that fail
// fall back to the shortened address.
func (s *Storefront) sellerNames(ctx context.Context, sellers []common.Address) map[common.Address]string {
	names := make(map[common.Address]string, len(sellers))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, seller := range sellers {
		wg.Add(1)
		go func(seller common.Address) {
			defer wg.Done()
			name := shortAddress(seller)
			info, err := s.market.Seller(ctx, seller)
			if err != nil {
				s.logs.Errorw("seller lookup", "seller", seller.Hex(), "error", err)
			} else if info.Name != "" {
				name = info.Name
			}

			mu.Lock()
			names[seller] = name
			mu.Unlock()
		}(seller)
	}
	wg.Wait()

	return names
}

func (s *Storefront) ItemDetails(ctx context.Context, itemID uint64) (ItemDetails, error) {
	item, err := s.loadItem(ctx, itemID)
	if err != nil {
		return ItemDetails{}, err
	}

	seller, err := s.market.SellerForItem(ctx, itemID)
	if err != nil {
		return ItemDetails{}, nodeErr("seller for item", err)
	}

	view := toItemView(item)
	sellerView := toSellerView(item.Seller, seller)
	view.SellerName = sellerView.Name

	return ItemDetails{
		Item:   view,
		Seller: sellerView,
	}, nil
}

// loadItem fetches an item; the contract returns a zero id for unknown items.
func (s *Storefront) loadItem(ctx context.Context, itemID uint64) (ethereum.Item, error) {
	if itemID == 0 {
		return ethereum.Item{}, ErrItemNotFound
	}

	item, err := s.market.Item(ctx, itemID)
	if err != nil {
		return ethereum.Item{}, nodeErr(fmt.Sprintf("item %d", itemID), err)
	}
	if item.ItemID == nil || item.ItemID.Sign() == 0 {
		return ethereum.Item{}, ErrItemNotFound
	}

	return item, nil
}

func (s *Storefront) SellerItems(ctx context.Context, address string) ([]ItemView, error) {
	account, err := parseAddress(address)
	if err != nil {
		return nil, err
	}

	items, err := s.market.ItemsBySeller(ctx, account)
	if err != nil {
		return nil, nodeErr("items by seller", err)
	}

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, toItemView(item))
	}
	return views, nil
}

func (s *Storefront) SellerProfile(ctx context.Context, address string) (SellerView, error) {
	account, err := parseAddress(address)
	if err != nil {
		return SellerView{}, err
	}

	seller, err := s.market.Seller(ctx, account)
	if err != nil {
		return SellerView{}, nodeErr("seller", err)
	}
	if !seller.IsRegistered {
		return SellerView{}, ErrSellerNotFound
	}

	return toSellerView(account, seller), nil
}
