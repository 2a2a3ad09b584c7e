package netparams

import (
	"encoding/json"
	"errors"
)

// ErrNoNetParamsGenesisState is returned when the genesis app state
// carries no network_parameters section.
var ErrNoNetParamsGenesisState = errors.New("no network parameters genesis state")

// GenesisState maps parameter keys to their genesis values.
type GenesisState map[string]string

// DefaultGenesisState returns the compiled-in parameter defaults, it
// seeds the genesis document written by `witan init`.
func DefaultGenesisState() GenesisState {
	state := GenesisState{}
	for k, v := range defaultNetParams() {
		state[k] = v.String()
	}
	return state
}

// LoadGenesisState extracts the network_parameters section from the
// raw genesis app state.
func LoadGenesisState(raw []byte) (GenesisState, error) {
	state := struct {
		NetParams *GenesisState `json:"network_parameters"`
	}{}
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	if state.NetParams == nil {
		return nil, ErrNoNetParamsGenesisState
	}
	return *state.NetParams, nil
}
