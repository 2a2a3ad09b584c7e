package events

import (
	"context"
)

// Time event indicating a change in ledger height (ie height update)
type Time struct {
	Base
	height uint64
}

// NewTime returns a new height update event
func NewTime(ctx context.Context, height uint64) *Time {
	return &Time{
		Base:   newBase(ctx, TimeUpdate),
		height: height,
	}
}

// Height returns the new ledger height
func (t Time) Height() uint64 {
	return t.height
}
