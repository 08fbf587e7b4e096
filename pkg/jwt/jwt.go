package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrMissingClaim error = errors.New("token claim missing")

// TokenInfo describes a wallet session carried by a token.
type TokenInfo struct {
	Address   string
	SessionID string
	ChainID   int64
	TTL       time.Duration
}

// SessionClaims are the validated claims of a session token.
type SessionClaims struct {
	Address   string
	SessionID string
	ChainID   int64
	ExpiresAt time.Time
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":   strings.ToLower(data.Address),
		"sid":   data.SessionID,
		"chain": data.ChainID,
		"iat":   now.Unix(),
		"exp":   now.Add(data.TTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Issue generates and signs a token in one step.
func (gen *JWTService) Issue(data TokenInfo) (string, error) {
	return gen.Sign(gen.Generate(data))
}

func (gen *JWTService) Validate(token string) (SessionClaims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	jwtToken, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return SessionClaims{}, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return SessionClaims{}, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, errors.New("jwt claims type assertion failed")
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return SessionClaims{}, fmt.Errorf("%w: exp", ErrMissingClaim)
	}
	expiresAt := time.Unix(int64(expVal), 0)
	if expiresAt.Before(TimeNow()) {
		return SessionClaims{}, fmt.Errorf("token expired at %v: %w", expiresAt, ErrTokenExpired)
	}

	address, _ := claims["sub"].(string)
	if address == "" {
		return SessionClaims{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	sessionID, _ := claims["sid"].(string)
	if sessionID == "" {
		return SessionClaims{}, fmt.Errorf("%w: sid", ErrMissingClaim)
	}
	chainID, _ := claims["chain"].(float64)

	return SessionClaims{
		Address:   address,
		SessionID: sessionID,
		ChainID:   int64(chainID),
		ExpiresAt: expiresAt,
	}, nil
}
