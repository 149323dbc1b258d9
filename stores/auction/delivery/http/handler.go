package http

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/delivery"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
	"github.com/x-xyz/gbm/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, uc auction.UseCase, authMw *middleware.AuthMiddleware) {
	h := &handler{
		auction: uc,
	}

	g := e.Group("/auctions")
	g.GET("/:id", h.getAuction)
	g.GET("/:id/incentive", h.getIncentive)
	g.POST("", h.create, authMw.Auth())
	g.PUT("/:id", h.modify, authMw.Auth())
	g.POST("/:id/commitBid", h.commitBid)
	g.POST("/:id/cancel", h.cancel, authMw.Auth())
	g.POST("/:id/claim", h.claim, authMw.Auth())
	g.POST("/claim", h.batchClaim, authMw.Auth())

	e.GET("/presets/:presetId", h.getPreset)
	e.GET("/contracts/:ref", h.getContract)

	admin := e.Group("/admin", authMw.Auth(), authMw.IsAdmin())
	admin.PUT("/presets/:presetId", h.setPreset)
	admin.PUT("/contracts/:ref", h.enableContract)
	admin.PUT("/contracts/:ref/bidding", h.setBiddingAllowed)
	admin.PUT("/auctions/:id/bidding", h.setAuctionBiddingAllowed)
	admin.POST("/auctions/:id/bid", h.bid)
}

func auctionId(c echo.Context) (auction.Id, error) {
	return auction.ParseId(c.Param("id"))
}

func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, domain.ErrBadParamInput
	}
	return v, nil
}

func bindAndValidate(c echo.Context, p interface{}) error {
	if err := c.Bind(p); err != nil {
		return err
	}
	return c.Validate(p)
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	a, err := h.auction.FindOne(ctx, id)
	if err != nil {
		ctx.WithField("err", err).Error("auction.FindOne failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *handler) getIncentive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	newBid, err := parseAmount(c.QueryParam("bid"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.CalculateIncentives(ctx, id, newBid)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res.String())
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		TokenId     string `json:"tokenId" validate:"required,uint256"`
		TokenAmount uint64 `json:"tokenAmount"`
		TokenKind   int    `json:"tokenKind" validate:"oneof=721 1155"`
		StartTime   int64  `json:"startTime"`
		EndTime     int64  `json:"endTime"`
		ContractRef uint64 `json:"contractRef"`
		PresetId    uint64 `json:"presetId"`
	}{}

	if err := bindAndValidate(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id, err := h.auction.Create(ctx, caller, auction.CreateParams{
		Info: auction.Info{
			TokenId:     domain.TokenId(p.TokenId),
			TokenAmount: p.TokenAmount,
			TokenKind:   domain.TokenType(p.TokenKind),
			StartTime:   p.StartTime,
			EndTime:     p.EndTime,
		},
		TokenKind:   domain.TokenType(p.TokenKind),
		ContractRef: auction.ContractRef(p.ContractRef),
		PresetId:    auction.PresetId(p.PresetId),
	})
	if err != nil {
		ctx.WithField("err", err).Error("auction.Create failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, id)
}

func (h *handler) modify(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := struct {
		EndTime     int64  `json:"endTime"`
		TokenAmount uint64 `json:"tokenAmount"`
		TokenKind   int    `json:"tokenKind" validate:"oneof=721 1155"`
	}{}

	if err := bindAndValidate(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.Modify(ctx, caller, id, auction.ModifyParams{
		NewEndTime:     p.EndTime,
		NewTokenAmount: p.TokenAmount,
		TokenKind:      domain.TokenType(p.TokenKind),
	}); err != nil {
		ctx.WithField("err", err).Error("auction.Modify failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, id)
}

type bidParams struct {
	Amount     string `json:"amount" validate:"required,uint256"`
	HighestBid string `json:"highestBid" validate:"required,uint256"`
}

func (p bidParams) amounts() (*big.Int, *big.Int, error) {
	amount, err := parseAmount(p.Amount)
	if err != nil {
		return nil, nil, err
	}
	highest, err := parseAmount(p.HighestBid)
	if err != nil {
		return nil, nil, err
	}
	return amount, highest, nil
}

// bid places a bid without the authority signature. It is an admin route:
// the caller vouches for the bidder named in the body.
func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := struct {
		bidParams
		Bidder domain.Address `json:"bidder" validate:"required,address"`
	}{}
	if err := bindAndValidate(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	amount, highest, err := p.amounts()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.Bid(ctx, p.Bidder.ToLower(), id, amount, highest); err != nil {
		ctx.WithField("err", err).Warn("auction.Bid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, id)
}

// commitBid relays a bid counter-signed by the bid authority, so the
// bidder is taken from the body rather than a token.
func (h *handler) commitBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := struct {
		bidParams
		Bidder    domain.Address `json:"bidder" validate:"required,address"`
		Signature string         `json:"signature" validate:"required"`
	}{}
	if err := bindAndValidate(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	amount, highest, err := p.amounts()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	sig, err := hexutil.Decode(p.Signature)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidSignature)
	}

	if err := h.auction.CommitBid(ctx, p.Bidder.ToLower(), id, amount, highest, sig); err != nil {
		ctx.WithField("err", err).Warn("auction.CommitBid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, id)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.Cancel(ctx, caller, id); err != nil {
		ctx.WithField("err", err).Warn("auction.Cancel failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, id)
}

func (h *handler) claim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Claim(ctx, caller, id)
	if err != nil {
		ctx.WithField("err", err).Warn("auction.Claim failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) batchClaim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		Ids []string `json:"ids" validate:"required,min=1"`
	}{}
	if err := bindAndValidate(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	ids := make([]auction.Id, 0, len(p.Ids))
	for _, s := range p.Ids {
		id, err := auction.ParseId(s)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		ids = append(ids, id)
	}

	res, err := h.auction.BatchClaim(ctx, caller, ids)
	if err != nil {
		ctx.WithField("err", err).Warn("auction.BatchClaim failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func presetId(c echo.Context) (auction.PresetId, error) {
	v, err := strconv.ParseUint(c.Param("presetId"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return auction.PresetId(v), nil
}

func contractRef(c echo.Context) (auction.ContractRef, error) {
	v, err := strconv.ParseUint(c.Param("ref"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return auction.ContractRef(v), nil
}

func (h *handler) getPreset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := presetId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p, err := h.auction.FindPreset(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}

func (h *handler) getContract(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	ref, err := contractRef(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.auction.FindContract(ctx, ref)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) setPreset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := presetId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := auction.Preset{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetPreset(ctx, id, p); err != nil {
		ctx.WithField("err", err).Error("auction.SetPreset failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}

func (h *handler) enableContract(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	ref, err := contractRef(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := struct {
		Address domain.Address `json:"address" validate:"required,address"`
	}{}
	if err := bindAndValidate(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.EnableContract(ctx, ref, p.Address.ToLower()); err != nil {
		ctx.WithField("err", err).Error("auction.EnableContract failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, ref)
}

type allowedParams struct {
	Allowed bool `json:"allowed"`
}

func (h *handler) setBiddingAllowed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	ref, err := contractRef(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := allowedParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetBiddingAllowed(ctx, ref, p.Allowed); err != nil {
		ctx.WithField("err", err).Error("auction.SetBiddingAllowed failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}

func (h *handler) setAuctionBiddingAllowed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := allowedParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetAuctionBiddingAllowed(ctx, id, p.Allowed); err != nil {
		ctx.WithField("err", err).Error("auction.SetAuctionBiddingAllowed failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}
