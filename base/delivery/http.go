package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/gbm/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{domain.ErrNotFound, domain.ErrAuctionNotExist, domain.ErrNoSecondaryMarket}},
	{http.StatusForbidden, []error{domain.ErrInvalidSignature, domain.ErrNotAuctionOwner, domain.ErrNotTokenOwner}},
	{http.StatusConflict, []error{
		domain.ErrAuctionExists,
		domain.ErrAuctionEnded,
		domain.ErrAuctionClaimed,
		domain.ErrAuctionNotEnded,
		domain.ErrBiddingNotAllowed,
		domain.ErrAuctionHasBids,
		domain.ErrClaimTooEarly,
		domain.ErrCancellationTooLate,
		domain.ErrContractEnabled,
		domain.ErrUnmatchedHighestBid,
	}},
	{http.StatusBadRequest, []error{
		domain.ErrBadParamInput,
		domain.ErrInvalidAddress,
		domain.ErrUndefinedPreset,
		domain.ErrUnsupportedTokenType,
		domain.ErrInvalidBidAmount,
		domain.ErrInsufficientBidAmount,
		domain.ErrStepMinimum,
		domain.ErrDebtExceedsBid,
		domain.ErrInsufficientTokens,
		domain.ErrInvalidStartTime,
		domain.ErrInvalidEndTime,
		domain.ErrInvalidTokenAmount,
		domain.ErrTokenTypeMismatch,
	}},
	{http.StatusPaymentRequired, []error{domain.ErrInsufficientBalance, domain.ErrInsufficientAllowed}},
}

// StatusFromError maps a domain error to the HTTP status it is reported
// with, fallback otherwise.
func StatusFromError(err error, fallback int) int {
	for _, s := range errStatus {
		for _, e := range s.errs {
			if errors.Is(err, e) {
				return s.status
			}
		}
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusFromError(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
