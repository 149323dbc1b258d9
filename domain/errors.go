package domain

import "errors"

var (
	ErrNotFound       = errors.New("Your requested Item is not found")
	ErrBadParamInput  = errors.New("Given Param is not valid")
	ErrInvalidAddress = errors.New("Invalid address")

	// auction state
	ErrAuctionNotExist      = errors.New("auction does not exist")
	ErrAuctionExists        = errors.New("auction already exists")
	ErrAuctionEnded         = errors.New("auction has ended")
	ErrAuctionClaimed       = errors.New("auction has been claimed")
	ErrAuctionNotEnded      = errors.New("auction has not ended")
	ErrBiddingNotAllowed    = errors.New("bidding is not allowed")
	ErrAuctionHasBids       = errors.New("auction already has bids")
	ErrClaimTooEarly        = errors.New("claim before hammer time elapsed")
	ErrCancellationTooLate  = errors.New("cancellation after hammer time elapsed")
	ErrNoSecondaryMarket    = errors.New("no secondary market for contract")
	ErrContractEnabled      = errors.New("contract already enabled")
	ErrUndefinedPreset      = errors.New("undefined preset")
	ErrUnsupportedTokenType = errors.New("unsupported token type")

	// bid
	ErrInvalidBidAmount      = errors.New("bid amount must be at least 1")
	ErrUnmatchedHighestBid   = errors.New("asserted highest bid does not match")
	ErrInsufficientBidAmount = errors.New("bid amount below highest bid")
	ErrStepMinimum           = errors.New("bid amount below step minimum")
	ErrInvalidSignature      = errors.New("Invalid signature")
	ErrDebtExceedsBid        = errors.New("auction debt would exceed highest bid")

	// creation and modification
	ErrNotAuctionOwner     = errors.New("caller is not the auction owner")
	ErrNotTokenOwner       = errors.New("caller does not own the token")
	ErrInsufficientTokens  = errors.New("insufficient token balance")
	ErrInvalidStartTime    = errors.New("invalid auction start time")
	ErrInvalidEndTime      = errors.New("invalid auction end time")
	ErrInvalidTokenAmount  = errors.New("invalid token amount")
	ErrTokenTypeMismatch   = errors.New("token type does not match auction")
	ErrRejectedByReceiver  = errors.New("token receiver rejected transfer")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientAllowed = errors.New("insufficient allowance")
)
