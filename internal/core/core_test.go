package core_test

import (
	"errors"
	"math/big"
	"time"

	"storefront/internal/core"
	"storefront/internal/core/fake"
	"storefront/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	. "github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"
)

const (
	buyerHex  = "0x1111111111111111111111111111111111111111"
	sellerHex = "0x2222222222222222222222222222222222222222"
	otherHex  = "0x3333333333333333333333333333333333333333"
)

var (
	buyer  = common.HexToAddress(buyerHex)
	seller = common.HexToAddress(sellerHex)
	other  = common.HexToAddress(otherHex)

	now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	fakeErr = errors.New("fake error")
)

// storefrontFixture wires a Storefront to fresh fakes for each spec.
type storefrontFixture struct {
	repo       *fake.Repository
	jwt        *fake.TokenIssuer
	market     *fake.Marketplace
	storefront *core.Storefront
}

func newFixture() *storefrontFixture {
	f := &storefrontFixture{
		repo:   new(fake.Repository),
		jwt:    new(fake.TokenIssuer),
		market: new(fake.Marketplace),
	}
	f.storefront = core.NewStorefront(zap.NewNop().Sugar(), f.repo, f.jwt, f.market, core.Settings{
		ChainID:      84532,
		NetworkName:  "Base Sepolia",
		ExplorerURL:  "https://sepolia.basescan.org",
		SessionTTL:   24 * time.Hour,
		ChallengeTTL: 5 * time.Minute,
	})
	return f
}

var _ = BeforeEach(func() {
	core.TimeNow = func() time.Time { return now }
	DeferCleanup(func() {
		core.TimeNow = time.Now
	})
})

func eth(milli int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(milli), big.NewInt(params.Ether/1000))
}

func item(id int64, owner common.Address, price *big.Int, active bool) ethereum.Item {
	return ethereum.Item{
		ItemID:      big.NewInt(id),
		Name:        "Item",
		Description: "A thing",
		Price:       price,
		ImageURL:    "https://example.com/item.png",
		Seller:      owner,
		IsActive:    active,
	}
}

func prepared(from common.Address, value *big.Int) *ethereum.PreparedTx {
	if value == nil {
		value = new(big.Int)
	}
	return &ethereum.PreparedTx{
		From:    from,
		To:      common.HexToAddress("0x9999999999999999999999999999999999999999"),
		Data:    []byte{0xde, 0xad, 0xbe, 0xef},
		Value:   value,
		Gas:     50000,
		ChainID: big.NewInt(84532),
	}
}
