package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/gbm/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues a token for address once signature proves control
	// of it over the signing message.
	SignToken(ctx ctx.Ctx, address Address, signature []byte) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Address, error)
	SigningMessage(address Address) string
}
