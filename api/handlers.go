package api

import (
	"net/http"
	"strconv"
	"time"

	"code.witanprotocol.io/witan/netparams"
	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"

	"github.com/julienschmidt/httprouter"
)

type SubmitProposalRequest struct {
	Party       string  `json:"party"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	FundingRef  *uint64 `json:"fundingRef,omitempty"`
	Executor    string  `json:"executor,omitempty"`
}

type CastVoteRequest struct {
	Party      string          `json:"party"`
	ProposalID uint64          `json:"proposalId"`
	Value      types.VoteValue `json:"value"`
	Weight     *num.Uint       `json:"weight"`
}

type ExecuteProposalRequest struct {
	Party      string `json:"party"`
	ProposalID uint64 `json:"proposalId"`
}

type UpdateParamRequest struct {
	Party string `json:"party"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ProposalResponse struct {
	Proposal *types.Proposal `json:"proposal"`
}

type ProposalsResponse struct {
	Proposals []*types.Proposal `json:"proposals"`
}

type VoteResponse struct {
	Vote *types.Vote `json:"vote"`
}

type VotesResponse struct {
	Votes []*types.Vote `json:"votes"`
}

type TotalVotesResponse struct {
	ProposalID uint64    `json:"proposalId"`
	TotalVotes *num.Uint `json:"totalVotes"`
}

type ParamsResponse struct {
	Params map[string]string `json:"params"`
}

type StatisticsResponse struct {
	Height         uint64 `json:"height"`
	ProposalCount  uint64 `json:"proposalCount"`
	TotalProposals uint64 `json:"totalProposals"`
	TotalVotes     uint64 `json:"totalVotes"`
	TotalExecuted  uint64 `json:"totalExecuted"`
	TotalEvents    uint64 `json:"totalEvents"`
	Version        string `json:"version"`
	VersionHash    string `json:"versionHash"`
	Uptime         string `json:"uptime"`
	CurrentTime    string `json:"currentTime"`
}

// SubmitProposal handles the proposal submission command. The ledger
// height is read from the time service, never from the caller.
func (s *Server) SubmitProposal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := SubmitProposalRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(w, newError(err.Error()), http.StatusBadRequest)
		return
	}
	if len(req.Party) <= 0 {
		writeError(w, newError("missing party field"), http.StatusBadRequest)
		return
	}

	sub := types.ProposalSubmission{
		Title:       req.Title,
		Description: req.Description,
		FundingRef:  req.FundingRef,
		Executor:    req.Executor,
	}

	prop, err := s.gov.SubmitProposal(r.Context(), req.Party, s.time.Height(), sub)
	if err != nil {
		writeError(w, newError(err.Error()), statusFor(err))
		return
	}

	writeSuccess(w, ProposalResponse{Proposal: prop}, http.StatusOK)
}

// CastVote handles the vote command.
func (s *Server) CastVote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := CastVoteRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(w, newError(err.Error()), http.StatusBadRequest)
		return
	}
	if len(req.Party) <= 0 {
		writeError(w, newError("missing party field"), http.StatusBadRequest)
		return
	}

	sub := types.VoteSubmission{
		ProposalID: req.ProposalID,
		Value:      req.Value,
		Weight:     req.Weight,
	}

	if err := s.gov.CastVote(r.Context(), req.Party, s.time.Height(), sub); err != nil {
		writeError(w, newError(err.Error()), statusFor(err))
		return
	}

	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

// ExecuteProposal handles the execution command.
func (s *Server) ExecuteProposal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := ExecuteProposalRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(w, newError(err.Error()), http.StatusBadRequest)
		return
	}
	if len(req.Party) <= 0 {
		writeError(w, newError("missing party field"), http.StatusBadRequest)
		return
	}

	if err := s.gov.ExecuteProposal(r.Context(), req.Party, s.time.Height(), req.ProposalID); err != nil {
		writeError(w, newError(err.Error()), statusFor(err))
		return
	}

	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

// UpdateParam routes a guarded network parameter update to the typed
// mutator for the key.
func (s *Server) UpdateParam(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := UpdateParamRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(w, newError(err.Error()), http.StatusBadRequest)
		return
	}
	if len(req.Party) <= 0 {
		writeError(w, newError("missing party field"), http.StatusBadRequest)
		return
	}

	var err error
	switch req.Key {
	case netparams.GovernanceProposalQuorumPercent:
		percent, perr := strconv.ParseUint(req.Value, 10, 64)
		if perr != nil {
			writeError(w, newError("quorum percent must be an unsigned integer"), http.StatusBadRequest)
			return
		}
		err = s.params.SetQuorumPercent(r.Context(), req.Party, percent)
	case netparams.GovernanceProposalDurationHeights:
		heights, perr := strconv.ParseUint(req.Value, 10, 64)
		if perr != nil {
			writeError(w, newError("proposal duration must be an unsigned integer"), http.StatusBadRequest)
			return
		}
		err = s.params.SetProposalDuration(r.Context(), req.Party, heights)
	case netparams.GovernanceTokenTotalSupply:
		supply, overflow := num.UintFromString(req.Value, 10)
		if overflow {
			writeError(w, newError("total supply must be an unsigned 256 bit integer"), http.StatusBadRequest)
			return
		}
		err = s.params.SetTotalSupply(r.Context(), req.Party, supply)
	case netparams.GovernanceAdminAuthority:
		err = s.params.SetAuthority(r.Context(), req.Party, req.Value)
	default:
		err = netparams.ErrUnknownKey
	}
	if err != nil {
		writeError(w, newError(err.Error()), statusFor(err))
		return
	}

	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

// ListProposals pages through the proposal archive in submission
// order. skip, limit and descending are optional query parameters.
func (s *Server) ListProposals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var (
		skip, limit uint64
		descending  bool
		err         error
	)
	q := r.URL.Query()
	if v := q.Get("skip"); v != "" {
		if skip, err = strconv.ParseUint(v, 10, 64); err != nil {
			writeError(w, newError("skip must be an unsigned integer"), http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.ParseUint(v, 10, 64); err != nil {
			writeError(w, newError("limit must be an unsigned integer"), http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("descending"); v != "" {
		if descending, err = strconv.ParseBool(v); err != nil {
			writeError(w, newError("descending must be a boolean"), http.StatusBadRequest)
			return
		}
	}

	props, err := s.archive.GetAll(skip, limit, descending)
	if err != nil {
		writeError(w, newError(err.Error()), statusFor(err))
		return
	}

	writeSuccess(w, ProposalsResponse{Proposals: props}, http.StatusOK)
}

// GetProposal returns a single proposal by id.
func (s *Server) GetProposal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.ParseUint(ps.ByName("id"), 10, 64)
	if err != nil {
		writeError(w, newError("proposal id must be an unsigned integer"), http.StatusBadRequest)
		return
	}

	prop, err := s.gov.GetProposal(id)
	if err != nil {
		writeError(w, newError(err.Error()), statusFor(err))
		return
	}

	writeSuccess(w, ProposalResponse{Proposal: prop}, http.StatusOK)
}

// ListVotes returns every vote cast on a proposal.
func (s *Server) ListVotes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.ParseUint(ps.ByName("id"), 10, 64)
	if err != nil {
		writeError(w, newError("proposal id must be an unsigned integer"), http.StatusBadRequest)
		return
	}

	votes, err := s.gov.Votes(id)
	if err != nil {
		writeError(w, newError(err.Error()), statusFor(err))
		return
	}

	writeSuccess(w, VotesResponse{Votes: votes}, http.StatusOK)
}

// GetTotalVotes returns the summed weight of both tallies on a
// proposal. A proposal unknown to the engine reports a zero total.
func (s *Server) GetTotalVotes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.ParseUint(ps.ByName("id"), 10, 64)
	if err != nil {
		writeError(w, newError("proposal id must be an unsigned integer"), http.StatusBadRequest)
		return
	}

	writeSuccess(w, TotalVotesResponse{
		ProposalID: id,
		TotalVotes: s.gov.TotalVotes(id),
	}, http.StatusOK)
}

// GetVote returns the vote a party cast on a proposal.
func (s *Server) GetVote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.ParseUint(ps.ByName("id"), 10, 64)
	if err != nil {
		writeError(w, newError("proposal id must be an unsigned integer"), http.StatusBadRequest)
		return
	}
	party := ps.ByName("party")

	vote, err := s.gov.GetVote(id, party)
	if err != nil {
		writeError(w, newError(err.Error()), statusFor(err))
		return
	}

	writeSuccess(w, VoteResponse{Vote: vote}, http.StatusOK)
}

// ListParams returns every network parameter and its current value.
func (s *Server) ListParams(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeSuccess(w, ParamsResponse{Params: s.params.GetAll()}, http.StatusOK)
}

// Statistics reports the node counters and build information.
func (s *Server) Statistics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeSuccess(w, StatisticsResponse{
		Height:         s.time.Height(),
		ProposalCount:  s.gov.ProposalCount(),
		TotalProposals: s.stats.Ledger.TotalProposals(),
		TotalVotes:     s.stats.Ledger.TotalVotes(),
		TotalExecuted:  s.stats.Ledger.TotalExecuted(),
		TotalEvents:    s.stats.Ledger.TotalEvents(),
		Version:        s.stats.GetVersion(),
		VersionHash:    s.stats.GetVersionHash(),
		Uptime:         s.stats.GetUptime().Format(time.RFC3339Nano),
		CurrentTime:    time.Now().UTC().Format(time.RFC3339Nano),
	}, http.StatusOK)
}
