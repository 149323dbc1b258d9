package usecase

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/ethereum"
	"github.com/x-xyz/gbm/domain"
)

const defaultTokenTTL = 24 * time.Hour

type impl struct {
	jwtSecret   []byte
	msgTemplate string
	ttl         time.Duration
	now         func() time.Time
}

// New returns an auth usecase. msgTemplate must contain a single %s
// replaced by the lower-cased address.
func New(jwtSecret, msgTemplate string, ttl time.Duration) domain.AuthUsecase {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &impl{
		jwtSecret:   []byte(jwtSecret),
		msgTemplate: msgTemplate,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (im *impl) SigningMessage(address domain.Address) string {
	return fmt.Sprintf(im.msgTemplate, address.ToLowerStr())
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature []byte) (string, error) {
	if address.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}

	hash := accounts.TextHash([]byte(im.SigningMessage(address)))
	if ok, err := ethereum.ValidateHashSignature(hash, signature, string(address)); err != nil {
		ctx.WithField("err", err).Warn("ethereum.ValidateHashSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: im.now().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			return domain.Address(claims.Address).ToLower(), nil
		}
	}

	if err == nil {
		err = domain.ErrInvalidSignature
	}
	return "", err
}
