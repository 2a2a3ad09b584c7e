package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"code.witanprotocol.io/witan/api"
	"code.witanprotocol.io/witan/api/mocks"
	"code.witanprotocol.io/witan/governance"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/netparams"
	"code.witanprotocol.io/witan/stats"
	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*api.Server
	ctrl    *gomock.Controller
	gov     *mocks.MockGovernanceEngine
	params  *mocks.MockNetParams
	time    *mocks.MockTimeService
	archive *mocks.MockProposalStore
	stats   *stats.Stats
}

func getTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	gov := mocks.NewMockGovernanceEngine(ctrl)
	params := mocks.NewMockNetParams(ctrl)
	tm := mocks.NewMockTimeService(ctrl)
	archive := mocks.NewMockProposalStore(ctrl)

	log := logging.NewTestLogger()
	st := stats.New(log, stats.NewDefaultConfig(), "v0.1.0", "deadbeef")

	return &testServer{
		Server:  api.NewServer(log, api.NewDefaultConfig(), gov, params, tm, archive, st),
		ctrl:    ctrl,
		gov:     gov,
		params:  params,
		time:    tm,
		archive: archive,
		stats:   st,
	}
}

func (s *testServer) serve(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := api.HTTPError{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ErrorStr
}

func TestSubmitProposal(t *testing.T) {
	t.Run("submitting a valid proposal returns it", testSubmitProposalOK)
	t.Run("missing party is a bad request", testSubmitProposalMissingParty)
	t.Run("garbage body is a bad request", testSubmitProposalGarbageBody)
	t.Run("duplicate title maps to conflict", testSubmitProposalDuplicateTitle)
	t.Run("validation failure maps to bad request", testSubmitProposalInvalid)
}

func testSubmitProposalOK(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	// given a ledger height of 42 and an engine accepting the proposal
	srv.time.EXPECT().Height().Times(1).Return(uint64(42))
	srv.gov.EXPECT().SubmitProposal(gomock.Any(), "alice", uint64(42), gomock.Any()).Times(1).DoAndReturn(
		func(_ context.Context, party string, height uint64, sub types.ProposalSubmission) (*types.Proposal, error) {
			assert.Equal(t, "fund the granary", sub.Title)
			assert.Equal(t, "rebuild before winter", sub.Description)
			require.NotNil(t, sub.FundingRef)
			assert.EqualValues(t, 7, *sub.FundingRef)
			return &types.Proposal{
				ID:          1,
				Title:       sub.Title,
				Description: sub.Description,
				FundingRef:  sub.FundingRef,
				Proposer:    party,
				StartHeight: height,
				EndHeight:   height + 144,
				Yes:         num.UintZero(),
				No:          num.UintZero(),
			}, nil
		})

	// when the proposal is submitted
	w := srv.serve(t, http.MethodPost, "/api/v1/proposals",
		`{"party": "alice", "title": "fund the granary", "description": "rebuild before winter", "fundingRef": 7}`)

	// then the created proposal comes back
	require.Equal(t, http.StatusOK, w.Code)
	resp := api.ProposalResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Proposal.ID)
	assert.Equal(t, "alice", resp.Proposal.Proposer)
	assert.EqualValues(t, 186, resp.Proposal.EndHeight)
}

func testSubmitProposalMissingParty(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	w := srv.serve(t, http.MethodPost, "/api/v1/proposals", `{"title": "fund the granary"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing party field", errorBody(t, w))
}

func testSubmitProposalGarbageBody(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	w := srv.serve(t, http.MethodPost, "/api/v1/proposals", `{not json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func testSubmitProposalDuplicateTitle(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(42))
	srv.gov.EXPECT().SubmitProposal(gomock.Any(), "alice", uint64(42), gomock.Any()).Times(1).
		Return(nil, governance.ErrProposalExists)

	w := srv.serve(t, http.MethodPost, "/api/v1/proposals", `{"party": "alice", "title": "fund the granary"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, governance.ErrProposalExists.Error(), errorBody(t, w))
}

func testSubmitProposalInvalid(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(42))
	srv.gov.EXPECT().SubmitProposal(gomock.Any(), "alice", uint64(42), gomock.Any()).Times(1).
		Return(nil, governance.ErrInvalidTitle)

	w := srv.serve(t, http.MethodPost, "/api/v1/proposals", `{"party": "alice"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, governance.ErrInvalidTitle.Error(), errorBody(t, w))
}

func TestCastVote(t *testing.T) {
	t.Run("casting a valid vote succeeds", testCastVoteOK)
	t.Run("weight travels as a decimal string", testCastVoteWeightParsing)
	t.Run("voting twice maps to conflict", testCastVoteTwice)
	t.Run("voting on an unknown proposal maps to not found", testCastVoteUnknownProposal)
	t.Run("voting after the window maps to bad request", testCastVoteExpired)
}

func testCastVoteOK(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(50))
	srv.gov.EXPECT().CastVote(gomock.Any(), "bob", uint64(50), gomock.Any()).Times(1).Return(nil)

	w := srv.serve(t, http.MethodPost, "/api/v1/votes",
		`{"party": "bob", "proposalId": 1, "value": "yes", "weight": "600"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.SuccessResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func testCastVoteWeightParsing(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(50))
	srv.gov.EXPECT().CastVote(gomock.Any(), "bob", uint64(50), gomock.Any()).Times(1).DoAndReturn(
		func(_ context.Context, _ string, _ uint64, sub types.VoteSubmission) error {
			assert.EqualValues(t, 1, sub.ProposalID)
			assert.Equal(t, types.VoteValueNo, sub.Value)
			require.NotNil(t, sub.Weight)
			assert.True(t, sub.Weight.EQ(num.NewUint(400)))
			return nil
		})

	w := srv.serve(t, http.MethodPost, "/api/v1/votes",
		`{"party": "bob", "proposalId": 1, "value": "no", "weight": "400"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func testCastVoteTwice(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(50))
	srv.gov.EXPECT().CastVote(gomock.Any(), "bob", uint64(50), gomock.Any()).Times(1).
		Return(governance.ErrAlreadyVoted)

	w := srv.serve(t, http.MethodPost, "/api/v1/votes",
		`{"party": "bob", "proposalId": 1, "value": "yes", "weight": "600"}`)

	require.Equal(t, http.StatusConflict, w.Code)
}

func testCastVoteUnknownProposal(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(50))
	srv.gov.EXPECT().CastVote(gomock.Any(), "bob", uint64(50), gomock.Any()).Times(1).
		Return(governance.ErrProposalNotFound)

	w := srv.serve(t, http.MethodPost, "/api/v1/votes",
		`{"party": "bob", "proposalId": 66, "value": "yes", "weight": "600"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func testCastVoteExpired(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(200))
	srv.gov.EXPECT().CastVote(gomock.Any(), "bob", uint64(200), gomock.Any()).Times(1).
		Return(governance.ErrProposalExpired)

	w := srv.serve(t, http.MethodPost, "/api/v1/votes",
		`{"party": "bob", "proposalId": 1, "value": "yes", "weight": "600"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteProposal(t *testing.T) {
	t.Run("executing a passed proposal succeeds", testExecuteProposalOK)
	t.Run("executing while the window is open maps to bad request", testExecuteProposalNotOpen)
	t.Run("executing twice maps to conflict", testExecuteProposalTwice)
	t.Run("a sink failure maps to bad gateway", testExecuteProposalSinkFailure)
}

func testExecuteProposalOK(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(145))
	srv.gov.EXPECT().ExecuteProposal(gomock.Any(), "carol", uint64(145), uint64(1)).Times(1).Return(nil)

	w := srv.serve(t, http.MethodPost, "/api/v1/proposals/execute", `{"party": "carol", "proposalId": 1}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.SuccessResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func testExecuteProposalNotOpen(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(100))
	srv.gov.EXPECT().ExecuteProposal(gomock.Any(), "carol", uint64(100), uint64(1)).Times(1).
		Return(governance.ErrNotOpen)

	w := srv.serve(t, http.MethodPost, "/api/v1/proposals/execute", `{"party": "carol", "proposalId": 1}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func testExecuteProposalTwice(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(146))
	srv.gov.EXPECT().ExecuteProposal(gomock.Any(), "carol", uint64(146), uint64(1)).Times(1).
		Return(governance.ErrAlreadyExecuted)

	w := srv.serve(t, http.MethodPost, "/api/v1/proposals/execute", `{"party": "carol", "proposalId": 1}`)

	require.Equal(t, http.StatusConflict, w.Code)
}

func testExecuteProposalSinkFailure(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.time.EXPECT().Height().Times(1).Return(uint64(145))
	srv.gov.EXPECT().ExecuteProposal(gomock.Any(), "carol", uint64(145), uint64(1)).Times(1).
		Return(governance.ErrExecutionFailed)

	w := srv.serve(t, http.MethodPost, "/api/v1/proposals/execute", `{"party": "carol", "proposalId": 1}`)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, governance.ErrExecutionFailed.Error(), errorBody(t, w))
}

func TestUpdateParam(t *testing.T) {
	t.Run("updating the quorum percent routes to the typed mutator", testUpdateParamQuorum)
	t.Run("updating the total supply parses a big integer", testUpdateParamSupply)
	t.Run("updating the authority routes the raw value", testUpdateParamAuthority)
	t.Run("a non-authority caller is forbidden", testUpdateParamUnauthorized)
	t.Run("an unknown key is a bad request", testUpdateParamUnknownKey)
	t.Run("a non-numeric quorum is rejected before the store", testUpdateParamBadValue)
}

func testUpdateParamQuorum(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.params.EXPECT().SetQuorumPercent(gomock.Any(), "network", uint64(60)).Times(1).Return(nil)

	w := srv.serve(t, http.MethodPost, "/api/v1/params",
		`{"party": "network", "key": "governance.proposal.quorumPercent", "value": "60"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func testUpdateParamSupply(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.params.EXPECT().SetTotalSupply(gomock.Any(), "network", gomock.Any()).Times(1).DoAndReturn(
		func(_ context.Context, _ string, supply *num.Uint) error {
			assert.Equal(t, "100000000000000000000", supply.String())
			return nil
		})

	w := srv.serve(t, http.MethodPost, "/api/v1/params",
		`{"party": "network", "key": "governance.token.totalSupply", "value": "100000000000000000000"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func testUpdateParamAuthority(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.params.EXPECT().SetAuthority(gomock.Any(), "network", "council").Times(1).Return(nil)

	w := srv.serve(t, http.MethodPost, "/api/v1/params",
		`{"party": "network", "key": "governance.admin.authority", "value": "council"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func testUpdateParamUnauthorized(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.params.EXPECT().SetQuorumPercent(gomock.Any(), "mallory", uint64(1)).Times(1).
		Return(netparams.ErrUnauthorized)

	w := srv.serve(t, http.MethodPost, "/api/v1/params",
		`{"party": "mallory", "key": "governance.proposal.quorumPercent", "value": "1"}`)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, netparams.ErrUnauthorized.Error(), errorBody(t, w))
}

func testUpdateParamUnknownKey(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	w := srv.serve(t, http.MethodPost, "/api/v1/params",
		`{"party": "network", "key": "governance.unknown", "value": "1"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, netparams.ErrUnknownKey.Error(), errorBody(t, w))
}

func testUpdateParamBadValue(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	// no store expectation, parsing fails first
	w := srv.serve(t, http.MethodPost, "/api/v1/params",
		`{"party": "network", "key": "governance.proposal.quorumPercent", "value": "sixty"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProposal(t *testing.T) {
	t.Run("an existing proposal is returned", testGetProposalOK)
	t.Run("an unknown id maps to not found", testGetProposalNotFound)
	t.Run("a non-numeric id is a bad request", testGetProposalBadID)
}

func testGetProposalOK(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.gov.EXPECT().GetProposal(uint64(1)).Times(1).Return(&types.Proposal{
		ID:          1,
		Title:       "fund the granary",
		Proposer:    "alice",
		StartHeight: 0,
		EndHeight:   144,
		Yes:         num.NewUint(600),
		No:          num.UintZero(),
	}, nil)

	w := srv.serve(t, http.MethodGet, "/api/v1/proposals/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.ProposalResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fund the granary", resp.Proposal.Title)
	assert.True(t, resp.Proposal.Yes.EQ(num.NewUint(600)))
}

func testGetProposalNotFound(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.gov.EXPECT().GetProposal(uint64(66)).Times(1).Return(nil, governance.ErrProposalNotFound)

	w := srv.serve(t, http.MethodGet, "/api/v1/proposals/66", "")

	require.Equal(t, http.StatusNotFound, w.Code)
}

func testGetProposalBadID(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	w := srv.serve(t, http.MethodGet, "/api/v1/proposals/granary", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProposals(t *testing.T) {
	t.Run("pagination parameters reach the archive", testListProposalsPagination)
	t.Run("defaults apply when no parameters are given", testListProposalsDefaults)
	t.Run("a non-numeric skip is a bad request", testListProposalsBadSkip)
}

func testListProposalsPagination(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.archive.EXPECT().GetAll(uint64(10), uint64(5), true).Times(1).Return([]*types.Proposal{}, nil)

	w := srv.serve(t, http.MethodGet, "/api/v1/proposals?skip=10&limit=5&descending=true", "")

	require.Equal(t, http.StatusOK, w.Code)
}

func testListProposalsDefaults(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.archive.EXPECT().GetAll(uint64(0), uint64(0), false).Times(1).Return([]*types.Proposal{
		{ID: 1, Title: "fund the granary", Yes: num.UintZero(), No: num.UintZero()},
		{ID: 2, Title: "fund the mill", Yes: num.UintZero(), No: num.UintZero()},
	}, nil)

	w := srv.serve(t, http.MethodGet, "/api/v1/proposals", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.ProposalsResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Proposals, 2)
	assert.Equal(t, "fund the mill", resp.Proposals[1].Title)
}

func testListProposalsBadSkip(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	w := srv.serve(t, http.MethodGet, "/api/v1/proposals?skip=ten", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVote(t *testing.T) {
	t.Run("an existing vote is returned", testGetVoteOK)
	t.Run("a missing vote maps to not found", testGetVoteNotFound)
}

func testGetVoteOK(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.gov.EXPECT().GetVote(uint64(1), "bob").Times(1).Return(&types.Vote{
		ProposalID: 1,
		Party:      "bob",
		Value:      types.VoteValueYes,
		Weight:     num.NewUint(600),
		Height:     50,
	}, nil)

	w := srv.serve(t, http.MethodGet, "/api/v1/votes/1/bob", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.VoteResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bob", resp.Vote.Party)
	assert.Equal(t, types.VoteValueYes, resp.Vote.Value)
	assert.True(t, resp.Vote.Weight.EQ(num.NewUint(600)))
}

func testGetVoteNotFound(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.gov.EXPECT().GetVote(uint64(1), "mallory").Times(1).Return(nil, governance.ErrVoteNotFound)

	w := srv.serve(t, http.MethodGet, "/api/v1/votes/1/mallory", "")

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListVotes(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.gov.EXPECT().Votes(uint64(1)).Times(1).Return([]*types.Vote{
		{ProposalID: 1, Party: "bob", Value: types.VoteValueYes, Weight: num.NewUint(600)},
		{ProposalID: 1, Party: "carol", Value: types.VoteValueNo, Weight: num.NewUint(400)},
	}, nil)

	w := srv.serve(t, http.MethodGet, "/api/v1/proposals/1/votes", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.VotesResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Votes, 2)
	assert.Equal(t, "carol", resp.Votes[1].Party)
}

func TestGetTotalVotes(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	// an unknown proposal reports a zero total rather than an error
	srv.gov.EXPECT().TotalVotes(uint64(66)).Times(1).Return(num.UintZero())

	w := srv.serve(t, http.MethodGet, "/api/v1/proposals/66/total-votes", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.TotalVotesResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 66, resp.ProposalID)
	assert.True(t, resp.TotalVotes.IsZero())
}

func TestListParams(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.params.EXPECT().GetAll().Times(1).Return(map[string]string{
		netparams.GovernanceProposalQuorumPercent:   "50",
		netparams.GovernanceProposalDurationHeights: "144",
		netparams.GovernanceTokenTotalSupply:        "1000",
		netparams.GovernanceAdminAuthority:          "network",
	})

	w := srv.serve(t, http.MethodGet, "/api/v1/params", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.ParamsResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "50", resp.Params[netparams.GovernanceProposalQuorumPercent])
	assert.Equal(t, "network", resp.Params[netparams.GovernanceAdminAuthority])
}

func TestStatistics(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.stats.Ledger.IncTotalProposals()
	srv.stats.Ledger.IncTotalVotes()
	srv.stats.Ledger.IncTotalVotes()
	srv.time.EXPECT().Height().Times(1).Return(uint64(145))
	srv.gov.EXPECT().ProposalCount().Times(1).Return(uint64(1))

	w := srv.serve(t, http.MethodGet, "/api/v1/statistics", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := api.StatisticsResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 145, resp.Height)
	assert.EqualValues(t, 1, resp.ProposalCount)
	assert.EqualValues(t, 1, resp.TotalProposals)
	assert.EqualValues(t, 2, resp.TotalVotes)
	assert.Equal(t, "v0.1.0", resp.Version)
	assert.Equal(t, "deadbeef", resp.VersionHash)
	assert.NotEmpty(t, resp.Uptime)
}

func TestRequestIDMiddleware(t *testing.T) {
	srv := getTestServer(t)
	defer srv.ctrl.Finish()

	srv.params.EXPECT().GetAll().Times(2).Return(map[string]string{})

	handler := api.RequestIDMiddleware(srv)
	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/params", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/params", nil))

	// every response is tagged, and every tag is unique
	require.NotEmpty(t, first.Header().Get("X-Request-Id"))
	require.NotEmpty(t, second.Header().Get("X-Request-Id"))
	assert.NotEqual(t, first.Header().Get("X-Request-Id"), second.Header().Get("X-Request-Id"))
}
