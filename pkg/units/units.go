// Package units converts between wei and human readable ether amounts.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

const etherDecimals = 18

var (
	ErrEmptyAmount    = errors.New("amount is empty")
	ErrInvalidAmount  = errors.New("amount is not a decimal number")
	ErrNegativeAmount = errors.New("amount is negative")
	ErrTooPrecise     = errors.New("amount has more than 18 decimals")
)

var weiPerEther = big.NewInt(params.Ether)

// FormatEther renders wei as an ether decimal without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	neg := wei.Sign() < 0
	abs := new(big.Int).Abs(wei)

	whole, frac := new(big.Int).QuoRem(abs, weiPerEther, new(big.Int))

	out := whole.String()
	if frac.Sign() != 0 {
		fracStr := fmt.Sprintf("%0*s", etherDecimals, frac.String())
		out += "." + strings.TrimRight(fracStr, "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatEthPrice renders wei as "<amount> ETH".
func FormatEthPrice(wei *big.Int) string {
	return FormatEther(wei) + " ETH"
}

// EnsureEthSuffix appends the ETH unit to a user supplied amount when it is missing.
func EnsureEthSuffix(price string) string {
	trimmed := strings.TrimSpace(price)
	if trimmed == "" {
		return "0 ETH"
	}
	if strings.Contains(strings.ToUpper(trimmed), "ETH") {
		return trimmed
	}
	return trimmed + " ETH"
}

// ParseEther parses an ether amount such as "0.0001" or "0.0001 ETH" into wei.
func ParseEther(amount string) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if len(s) >= 3 && strings.EqualFold(s[len(s)-3:], "eth") {
		s = strings.TrimSpace(s[:len(s)-3])
	}
	if s == "" {
		return nil, ErrEmptyAmount
	}
	if strings.HasPrefix(s, "-") {
		return nil, ErrNegativeAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if len(frac) > etherDecimals {
		return nil, fmt.Errorf("%w: %q", ErrTooPrecise, amount)
	}

	frac += strings.Repeat("0", etherDecimals-len(frac))

	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return wei, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
