package accounts

import (
	"encoding/json"
	"errors"
)

var (
	ErrNoAccountsGenesisState = errors.New("no accounts genesis state")
)

// GenesisState maps a party to its initial balance, an unsigned integer
// in decimal notation.
type GenesisState map[string]string

func DefaultGenesisState() GenesisState {
	return GenesisState{}
}

func LoadGenesisState(bytes []byte) (GenesisState, error) {
	state := struct {
		Accounts *GenesisState `json:"accounts"`
	}{}
	err := json.Unmarshal(bytes, &state)
	if err != nil {
		return nil, err
	}
	if state.Accounts == nil {
		return nil, ErrNoAccountsGenesisState
	}
	return *state.Accounts, nil
}
