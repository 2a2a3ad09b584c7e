package genesis

import (
	"encoding/json"
	"os"

	"code.witanprotocol.io/witan/accounts"
	"code.witanprotocol.io/witan/netparams"
)

// GenesisState is the full genesis document. Each section is consumed by
// the component of the same name through the handler.
type GenesisState struct {
	NetParams netparams.GenesisState `json:"network_parameters"`
	Accounts  accounts.GenesisState  `json:"accounts"`
}

func DefaultGenesisState() GenesisState {
	return GenesisState{
		NetParams: netparams.DefaultGenesisState(),
		Accounts:  accounts.DefaultGenesisState(),
	}
}

func DumpDefault() (string, error) {
	gstate := DefaultGenesisState()
	return Dump(&gstate)
}

func Dump(s *GenesisState) (string, error) {
	bytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WriteDefault writes the default genesis document at the given path.
func WriteDefault(path string) error {
	gs, err := DumpDefault()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(gs), 0o644)
}
