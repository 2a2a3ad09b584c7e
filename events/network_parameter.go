package events

import (
	"context"
)

// NetworkParameter carries a governance parameter update.
type NetworkParameter struct {
	Base
	key   string
	value string
}

func NewNetworkParameterEvent(ctx context.Context, key, value string) *NetworkParameter {
	return &NetworkParameter{
		Base:  newBase(ctx, NetworkParameterEvent),
		key:   key,
		value: value,
	}
}

func (n NetworkParameter) Key() string {
	return n.key
}

func (n NetworkParameter) Value() string {
	return n.value
}
