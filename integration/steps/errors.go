package steps

import (
	"fmt"
	"strconv"
	"strings"
)

// ErroneousRow is a table row that may carry an expected error.
type ErroneousRow interface {
	ExpectError() bool
	Error() string
	Reference() string
}

// checkExpectedError reconciles the outcome of a command with the
// error column of the row that drove it. Both an unexpected error and
// an expected error that never happened fail the step.
func checkExpectedError(row ErroneousRow, returnedErr error) error {
	if returnedErr == nil {
		if row.ExpectError() {
			return fmt.Errorf("%q should have failed", row.Reference())
		}
		return nil
	}

	if !row.ExpectError() {
		return fmt.Errorf("%q has failed: %s", row.Reference(), returnedErr.Error())
	}

	if row.Error() != returnedErr.Error() {
		return formatDiff(
			fmt.Sprintf("%q is failing as expected but not with the expected error message", row.Reference()),
			map[string]string{"error": row.Error()},
			map[string]string{"error": returnedErr.Error()},
		)
	}
	return nil
}

func formatDiff(msg string, expected, got map[string]string) error {
	var wantStr strings.Builder
	var gotStr strings.Builder
	formatStr := "\n\t%s\t(%s)"
	for name, value := range expected {
		_, _ = fmt.Fprintf(&wantStr, formatStr, name, value)
		_, _ = fmt.Fprintf(&gotStr, formatStr, name, got[name])
	}

	return fmt.Errorf("\n%s\nexpected:%s\ngot:%s",
		msg,
		wantStr.String(),
		gotStr.String(),
	)
}

func u64ToS(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func boolToS(b bool) string {
	return strconv.FormatBool(b)
}

func errProposalNotFound(title string, err error) error {
	return fmt.Errorf("proposal not found for title(%s): %v", title, err)
}
