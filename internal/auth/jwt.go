// Package auth проверяет bearer-токены дашборда.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role определяет набор доступных операций.
type Role string

const (
	RoleStaff    Role = "staff"
	RoleMerchant Role = "merchant"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role       Role   `json:"role"`
	MerchantID string `json:"merchant_id,omitempty"`
	jwt.RegisteredClaims
}

// Issuer подписывает и проверяет токены общим HMAC-секретом.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

func (i *Issuer) Issue(subject string, role Role, merchantID string) (string, error) {
	now := i.now()
	claims := Claims{
		Role:       role,
		MerchantID: merchantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	switch claims.Role {
	case RoleStaff:
	case RoleMerchant:
		if claims.MerchantID == "" {
			return nil, fmt.Errorf("%w: merchant token without merchant_id", ErrInvalidToken)
		}
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return claims, nil
}
