package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/netparams"
)

var ErrInvalidRequest = newError("invalid request")

type HTTPError struct {
	ErrorStr string `json:"error"`
}

func (e HTTPError) Error() string {
	return e.ErrorStr
}

func newError(e string) HTTPError {
	return HTTPError{
		ErrorStr: e,
	}
}

func unmarshalBody(r *http.Request, into interface{}) error {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ErrInvalidRequest
	}
	return json.Unmarshal(body, into)
}

func writeError(w http.ResponseWriter, e error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	buf, _ := json.Marshal(e)
	w.Write(buf)
}

func writeSuccess(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	buf, _ := json.Marshal(data)
	w.Write(buf)
}

// statusFor maps the package sentinel errors onto HTTP status codes.
// Validation failures are the caller's fault, misses are 404s, an
// authority rejection is forbidden, duplicate submissions conflict and
// a sink failure surfaces as a bad gateway. Anything unrecognized is
// an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, governance.ErrProposalNotFound),
		errors.Is(err, governance.ErrVoteNotFound):
		return http.StatusNotFound
	case errors.Is(err, netparams.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, governance.ErrProposalExists),
		errors.Is(err, governance.ErrAlreadyVoted),
		errors.Is(err, governance.ErrAlreadyExecuted):
		return http.StatusConflict
	case errors.Is(err, governance.ErrExecutionFailed):
		return http.StatusBadGateway
	case errors.Is(err, governance.ErrInvalidTitle),
		errors.Is(err, governance.ErrInvalidDescription),
		errors.Is(err, governance.ErrInvalidFundingRef),
		errors.Is(err, governance.ErrInvalidStartHeight),
		errors.Is(err, governance.ErrInvalidEndHeight),
		errors.Is(err, governance.ErrInvalidExecutor),
		errors.Is(err, governance.ErrProposalExpired),
		errors.Is(err, governance.ErrInvalidVoteAmount),
		errors.Is(err, governance.ErrInsufficientBalance),
		errors.Is(err, governance.ErrNotOpen),
		errors.Is(err, governance.ErrInsufficientQuorum),
		errors.Is(err, governance.ErrInsufficientVote),
		errors.Is(err, netparams.ErrInvalidQuorum),
		errors.Is(err, netparams.ErrInvalidDuration),
		errors.Is(err, netparams.ErrInvalidAuthority),
		errors.Is(err, netparams.ErrInvalidSupply),
		errors.Is(err, netparams.ErrUnknownKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
