package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrNoBids           = errors.New("no bids found for auction")
	ErrNoProxyBid       = errors.New("no proxy bid found")
	ErrResultExists     = errors.New("result already recorded for auction")
	ErrResultNotFound   = errors.New("no result recorded for auction")
	ErrPersistence      = errors.New("persistence failure")
)

// business logic errors
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidTooLow       = errors.New("bid amount below minimum required")
	ErrAuctionNotLive  = errors.New("auction is not currently live")
	ErrAuctionNotEnded = errors.New("auction has not ended yet")
	ErrAuctionEnded    = errors.New("auction has ended")
	ErrSelfBidding     = errors.New("seller cannot bid on their own auction")
	ErrConsecutiveBid  = errors.New("cannot place consecutive bids on the same auction")
	ErrProxyMaxTooLow  = errors.New("maximum amount must exceed the current highest bid")
)
