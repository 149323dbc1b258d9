package delivery

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gbm/domain"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrAuctionNotExist, http.StatusNotFound},
		{domain.ErrInvalidSignature, http.StatusForbidden},
		{domain.ErrClaimTooEarly, http.StatusConflict},
		{domain.ErrStepMinimum, http.StatusBadRequest},
		{xerrors.Errorf("claim 0x1: %w", domain.ErrAuctionClaimed), http.StatusConflict},
		{xerrors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromError(tt.err, http.StatusInternalServerError), tt.err.Error())
	}
}
