package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAuctionExists   = errors.New("auction already exists")
	ErrStateStore      = errors.New("state store unavailable")
	ErrVersionConflict = errors.New("auction modified concurrently")
)

// business logic errors
var (
	ErrInvalidAuction = errors.New("invalid auction")
)
