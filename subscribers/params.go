package subscribers

import (
	"context"

	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/logging"
)

// ParamE is implemented by parameter update events.
type ParamE interface {
	events.Event
	Key() string
	Value() string
}

// ParamStore is the archive parameter updates are written to.
type ParamStore interface {
	SaveParam(key, value string) error
}

// NetParamStoreSub persists the latest value of every governance
// parameter as updates come off the bus.
type NetParamStoreSub struct {
	*Base
	log   *logging.Logger
	store ParamStore
}

func NewNetParamStoreSub(ctx context.Context, log *logging.Logger, store ParamStore, ack bool) *NetParamStoreSub {
	sub := &NetParamStoreSub{
		Base:  NewBase(ctx, 10, ack),
		log:   log,
		store: store,
	}
	if sub.isRunning() {
		go sub.loop(sub.ctx)
	}
	return sub
}

func (n *NetParamStoreSub) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			n.Halt()
			return
		case e := <-n.ch:
			if n.isRunning() {
				n.Push(e...)
			}
		}
	}
}

func (n *NetParamStoreSub) Push(evts ...events.Event) {
	for _, e := range evts {
		if et, ok := e.(ParamE); ok {
			if err := n.store.SaveParam(et.Key(), et.Value()); err != nil {
				n.log.Error("failed to archive parameter update",
					logging.String("key", et.Key()),
					logging.Error(err),
				)
			}
		}
	}
}

func (n *NetParamStoreSub) Types() []events.Type {
	return []events.Type{
		events.NetworkParameterEvent,
	}
}
