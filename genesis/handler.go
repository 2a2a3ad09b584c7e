package genesis

import (
	"context"

	"code.witanprotocol.io/witan/logging"
)

// Handler fans the raw genesis document out to the components registered
// for it.
type Handler struct {
	log *logging.Logger

	onGenesisAppStateLoadedCB []func(context.Context, []byte) error
}

func New(log *logging.Logger) *Handler {
	return &Handler{
		log:                       log,
		onGenesisAppStateLoadedCB: []func(context.Context, []byte) error{},
	}
}

// OnGenesisAppStateLoaded registers callbacks invoked in registration order
// when the genesis state is loaded.
func (h *Handler) OnGenesisAppStateLoaded(fs ...func(context.Context, []byte) error) {
	h.onGenesisAppStateLoadedCB = append(h.onGenesisAppStateLoadedCB, fs...)
}

// LoadState feeds the raw genesis document to every registered callback,
// stopping at the first failure.
func (h *Handler) LoadState(ctx context.Context, rawState []byte) error {
	for _, f := range h.onGenesisAppStateLoadedCB {
		if err := f(ctx, rawState); err != nil {
			return err
		}
	}
	return nil
}
