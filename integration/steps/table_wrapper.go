package steps

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"
)

// StrictParseTable parses the table and panics if the header carries a
// column that is neither required nor optional, or misses a required
// one. A malformed feature file should fail loudly, not silently skip
// columns.
func StrictParseTable(dt *godog.Table, required, optional []string) []RowWrapper {
	if err := verifyHeader(dt, required, optional); err != nil {
		panic(err)
	}
	return parseTable(dt)
}

// ParseTable parses the table without checking the header against any
// column set.
func ParseTable(dt *godog.Table) []RowWrapper {
	return parseTable(dt)
}

func verifyHeader(dt *godog.Table, required, optional []string) error {
	if len(dt.Rows) < 1 {
		return fmt.Errorf("a table requires a header row")
	}

	seen := map[string]struct{}{}
	for _, cell := range dt.Rows[0].Cells {
		seen[cell.Value] = struct{}{}
	}

	for _, name := range required {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
		delete(seen, name)
	}
	for _, name := range optional {
		delete(seen, name)
	}
	for name := range seen {
		return fmt.Errorf("unknown column %q", name)
	}
	return nil
}

func parseTable(dt *godog.Table) []RowWrapper {
	out := make([]RowWrapper, 0, len(dt.Rows)-1)
	for _, row := range dt.Rows[1:] {
		wrapper := RowWrapper{values: map[string]string{}}
		for i := range row.Cells {
			// an empty cell counts as an absent column so optional
			// columns can vary per row
			if len(row.Cells[i].Value) == 0 {
				continue
			}
			wrapper.values[dt.Rows[0].Cells[i].Value] = row.Cells[i].Value
		}
		out = append(out, wrapper)
	}
	return out
}

type RowWrapper struct {
	values map[string]string
}

func (r RowWrapper) HasColumn(name string) bool {
	_, ok := r.values[name]
	return ok
}

func (r RowWrapper) Str(name string) string {
	return r.values[name]
}

func (r RowWrapper) MustStr(name string) string {
	value, ok := r.values[name]
	if !ok {
		panic(fmt.Sprintf("missing column %q", name))
	}
	return value
}

func (r RowWrapper) U64(name string) (uint64, error) {
	return strconv.ParseUint(r.values[name], 10, 64)
}

func (r RowWrapper) MustU64(name string) uint64 {
	value, err := r.U64(name)
	if err != nil {
		panic(fmt.Sprintf("invalid uint64 in column %q: %v", name, err))
	}
	return value
}

func (r RowWrapper) MustUint(name string) *num.Uint {
	value, overflow := num.UintFromString(r.MustStr(name), 10)
	if overflow {
		panic(fmt.Sprintf("invalid uint in column %q: %s", name, r.values[name]))
	}
	return value
}

func (r RowWrapper) MustBool(name string) bool {
	switch r.values[name] {
	case "true":
		return true
	case "false":
		return false
	}
	panic(fmt.Sprintf("invalid bool in column %q: %s", name, r.values[name]))
}

func (r RowWrapper) MustVote(name string) types.VoteValue {
	var v types.VoteValue
	if err := v.UnmarshalText([]byte(r.MustStr(name))); err != nil {
		panic(fmt.Sprintf("invalid vote in column %q: %v", name, err))
	}
	return v
}
