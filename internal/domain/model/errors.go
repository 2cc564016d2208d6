package model

import "errors"

var (
	// ErrRateNotFound means no credit matrix row matches the product line
	// and transaction method. Fatal for the containing request: there is
	// no silent default rate.
	ErrRateNotFound = errors.New("no matching rate card for product line")

	// ErrNoOffersAvailable means every candidate duration was filtered out
	// by the limit or DBR gates, including the forward-walk fallback.
	ErrNoOffersAvailable = errors.New("no loan offer available")
)
