package governance

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/metrics"
	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"

	"github.com/pkg/errors"
)

var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrVoteNotFound     = errors.New("vote not found")

	// Proposal validation errors

	ErrInvalidTitle       = errors.New("invalid proposal title")
	ErrInvalidDescription = errors.New("invalid proposal description")
	ErrInvalidFundingRef  = errors.New("invalid funding reference")
	ErrInvalidStartHeight = errors.New("invalid proposal start height")
	ErrInvalidEndHeight   = errors.New("invalid proposal end height")
	ErrInvalidExecutor    = errors.New("executor must differ from the proposer")
	ErrProposalExists     = errors.New("proposal with given title already exists")

	// Vote validation errors

	ErrProposalExpired     = errors.New("proposal voting has been closed")
	ErrAlreadyVoted        = errors.New("party already voted on this proposal")
	ErrInvalidVoteAmount   = errors.New("invalid vote amount")
	ErrInsufficientBalance = errors.New("vote requires more balance than party has")

	// Execution errors

	ErrNotOpen            = errors.New("proposal voting window is still open")
	ErrAlreadyExecuted    = errors.New("proposal already executed")
	ErrInsufficientQuorum = errors.New("insufficient participation for quorum")
	ErrInsufficientVote   = errors.New("insufficient votes in favour")
	ErrExecutionFailed    = errors.New("funding issuance failed")
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 10000

	// issuanceTermHeights is the fixed loan term passed to the sink,
	// one year at 144 heights a day.
	issuanceTermHeights uint64 = 52560
)

// issuanceRate is the fixed yearly rate passed to the sink.
var issuanceRate = num.MustDecimalFromString("0.05")

// Parameters surfaces the governance configuration the engine reads.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/parameters_mock.go -package mocks code.witanprotocol.io/witan/governance Parameters
type Parameters interface {
	QuorumPercent() (uint64, error)
	ProposalDuration() (uint64, error)
	TotalSupply() (*num.Uint, error)
}

// BalanceOracle reports the weight a party can vote with, read at the
// time the vote is cast.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/balance_oracle_mock.go -package mocks code.witanprotocol.io/witan/governance BalanceOracle
type BalanceOracle interface {
	GetAvailableBalance(ctx context.Context, party string) (*num.Uint, error)
}

// ExecutionSink fulfils the funding effect of a passed proposal.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/execution_sink_mock.go -package mocks code.witanprotocol.io/witan/governance ExecutionSink
type ExecutionSink interface {
	Issue(ctx context.Context, fundingRef uint64, rate num.Decimal, termHeights uint64) error
}

// Broker - the event bus
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.witanprotocol.io/witan/governance Broker
type Broker interface {
	Send(e events.Event)
	SendBatch(evts []events.Event)
}

type proposalData struct {
	*types.Proposal
	votes map[string]*types.Vote
}

// Engine is the governance core: proposal registry, vote ledger and
// quorum/execution rules. All state mutations go through it, one
// operation at a time.
type Engine struct {
	Config
	log    *logging.Logger
	mu     sync.Mutex
	params Parameters
	oracle BalanceOracle
	sink   ExecutionSink
	broker Broker

	lastID    uint64
	proposals map[uint64]*proposalData
	titles    map[string]uint64
}

func NewEngine(log *logging.Logger, cfg Config, params Parameters, oracle BalanceOracle, sink ExecutionSink, broker Broker) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Engine{
		Config:    cfg,
		log:       log,
		params:    params,
		oracle:    oracle,
		sink:      sink,
		broker:    broker,
		proposals: map[uint64]*proposalData{},
		titles:    map[string]uint64{},
	}
}

// ReloadConf updates the internal configuration of the governance engine
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.mu.Lock()
	e.Config = cfg
	e.mu.Unlock()
}

// SubmitProposal creates a new proposal opening at the given height.
// Every validation runs before anything is written, in a fixed order,
// so a rejected submission leaves no trace.
func (e *Engine) SubmitProposal(ctx context.Context, party string, height uint64, sub types.ProposalSubmission) (p *types.Proposal, err error) {
	start := time.Now()
	defer func() {
		metrics.ProposalCounterInc(strconv.FormatBool(err == nil))
		metrics.EngineTimeCounterAdd(start, "governance", "SubmitProposal")
	}()

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(sub.Title) == 0 || len(sub.Title) > maxTitleLen {
		return nil, ErrInvalidTitle
	}
	if len(sub.Description) == 0 || len(sub.Description) > maxDescriptionLen {
		return nil, ErrInvalidDescription
	}
	if sub.FundingRef != nil && *sub.FundingRef == 0 {
		return nil, ErrInvalidFundingRef
	}
	startHeight := height
	// start is the current height, the guard catches a desynchronized
	// host clock
	if startHeight < height {
		return nil, ErrInvalidStartHeight
	}
	duration, err := e.params.ProposalDuration()
	if err != nil {
		return nil, err
	}
	endHeight := startHeight + duration
	if endHeight <= startHeight {
		return nil, ErrInvalidEndHeight
	}
	if len(sub.Executor) > 0 && sub.Executor == party {
		return nil, ErrInvalidExecutor
	}
	if _, ok := e.titles[sub.Title]; ok {
		return nil, ErrProposalExists
	}

	e.lastID++
	p = &types.Proposal{
		ID:          e.lastID,
		Title:       sub.Title,
		Description: sub.Description,
		Proposer:    party,
		StartHeight: startHeight,
		EndHeight:   endHeight,
		Yes:         num.UintZero(),
		No:          num.UintZero(),
		Executor:    sub.Executor,
	}
	if sub.FundingRef != nil {
		ref := *sub.FundingRef
		p.FundingRef = &ref
	}
	e.proposals[p.ID] = &proposalData{
		Proposal: p,
		votes:    map[string]*types.Vote{},
	}
	e.titles[p.Title] = p.ID

	e.broker.Send(events.NewProposalCreated(ctx, *p))
	if e.log.GetLevel() <= logging.DebugLevel {
		e.log.Debug("proposal submitted",
			logging.ProposalID(p.ID),
			logging.PartyID(party),
			logging.String("title", p.Title),
			logging.Uint64("end-height", p.EndHeight),
		)
	}
	return p.DeepClone(), nil
}

// CastVote records a weighted vote on an open proposal. A party votes
// at most once per proposal and the record never changes afterwards.
func (e *Engine) CastVote(ctx context.Context, party string, height uint64, sub types.VoteSubmission) (err error) {
	start := time.Now()
	defer func() {
		metrics.VoteCounterInc(strconv.FormatBool(err == nil))
		metrics.EngineTimeCounterAdd(start, "governance", "CastVote")
	}()

	e.mu.Lock()
	defer e.mu.Unlock()

	pd, ok := e.proposals[sub.ProposalID]
	if !ok {
		return ErrProposalNotFound
	}
	// voting stays open through and including the end height
	if height > pd.EndHeight {
		return ErrProposalExpired
	}
	if _, ok := pd.votes[party]; ok {
		return ErrAlreadyVoted
	}
	if sub.Weight == nil || sub.Weight.IsZero() || !sub.Value.IsValid() {
		return ErrInvalidVoteAmount
	}
	balance, err := e.oracle.GetAvailableBalance(ctx, party)
	if err != nil {
		e.log.Error("balance oracle read failed",
			logging.PartyID(party),
			logging.Error(err),
		)
		return ErrInsufficientBalance
	}
	if sub.Weight.GT(balance) {
		return ErrInsufficientBalance
	}

	v := &types.Vote{
		ProposalID: sub.ProposalID,
		Party:      party,
		Value:      sub.Value,
		Weight:     sub.Weight.Clone(),
		Height:     height,
	}
	pd.votes[party] = v
	if v.Value == types.VoteValueYes {
		pd.Yes.AddSum(v.Weight)
	} else {
		pd.No.AddSum(v.Weight)
	}

	e.broker.Send(events.NewVoteCast(ctx, *v))
	if e.log.GetLevel() <= logging.DebugLevel {
		e.log.Debug("vote cast",
			logging.ProposalID(v.ProposalID),
			logging.PartyID(party),
			logging.String("value", v.Value.String()),
			logging.String("weight", v.Weight.String()),
		)
	}
	return nil
}

// ExecuteProposal settles a proposal whose voting window has closed.
// The quorum threshold is floor(totalSupply * quorumPercent / 100) of
// participation, and yes must strictly beat no. Any caller may attempt
// execution, and a failed attempt changes nothing so it can be retried.
func (e *Engine) ExecuteProposal(ctx context.Context, party string, height uint64, id uint64) (err error) {
	start := time.Now()
	defer func() {
		metrics.ExecutionCounterInc(strconv.FormatBool(err == nil))
		metrics.EngineTimeCounterAdd(start, "governance", "ExecuteProposal")
	}()

	e.mu.Lock()
	defer e.mu.Unlock()

	pd, ok := e.proposals[id]
	if !ok {
		return ErrProposalNotFound
	}
	if height <= pd.EndHeight {
		return ErrNotOpen
	}
	if pd.Executed {
		return ErrAlreadyExecuted
	}
	supply, err := e.params.TotalSupply()
	if err != nil {
		return err
	}
	quorum, err := e.params.QuorumPercent()
	if err != nil {
		return err
	}
	threshold := num.UintZero().Mul(supply, num.NewUint(quorum))
	threshold.Div(threshold, num.NewUint(100))
	if pd.TotalVotes().LT(threshold) {
		return ErrInsufficientQuorum
	}
	if !pd.Yes.GT(pd.No) {
		return ErrInsufficientVote
	}
	if pd.FundingRef != nil {
		if err := e.sink.Issue(ctx, *pd.FundingRef, issuanceRate, issuanceTermHeights); err != nil {
			e.log.Error("funding issuance failed",
				logging.ProposalID(id),
				logging.Uint64("funding-ref", *pd.FundingRef),
				logging.Error(err),
			)
			return ErrExecutionFailed
		}
	}
	pd.Executed = true

	e.broker.Send(events.NewProposalExecuted(ctx, *pd.Proposal))
	e.log.Info("proposal executed",
		logging.ProposalID(id),
		logging.PartyID(party),
		logging.String("yes", pd.Yes.String()),
		logging.String("no", pd.No.String()),
	)
	return nil
}

// GetProposal returns a copy of the proposal with the given id.
func (e *Engine) GetProposal(id uint64) (*types.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pd, ok := e.proposals[id]
	if !ok {
		return nil, ErrProposalNotFound
	}
	return pd.Proposal.DeepClone(), nil
}

// GetProposalByTitle returns a copy of the proposal carrying the given
// title, going through the title index.
func (e *Engine) GetProposalByTitle(title string) (*types.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id, ok := e.titles[title]
	if !ok {
		return nil, ErrProposalNotFound
	}
	return e.proposals[id].Proposal.DeepClone(), nil
}

// GetProposals returns a copy of every proposal, ordered by id.
func (e *Engine) GetProposals() []*types.Proposal {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*types.Proposal, 0, len(e.proposals))
	for _, pd := range e.proposals {
		out = append(out, pd.Proposal.DeepClone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ProposalCount returns the number of proposals ever created.
func (e *Engine) ProposalCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastID
}

// TotalVotes returns yes + no for the given proposal. An unknown id
// reads as zero participation rather than an error.
func (e *Engine) TotalVotes(id uint64) *num.Uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	pd, ok := e.proposals[id]
	if !ok {
		return num.UintZero()
	}
	return pd.TotalVotes()
}

// GetVote returns a copy of the vote cast by the given party.
func (e *Engine) GetVote(id uint64, party string) (*types.Vote, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pd, ok := e.proposals[id]
	if !ok {
		return nil, ErrProposalNotFound
	}
	v, ok := pd.votes[party]
	if !ok {
		return nil, ErrVoteNotFound
	}
	return v.DeepClone(), nil
}

// HasVoted reports whether the given party voted on the proposal.
func (e *Engine) HasVoted(id uint64, party string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	pd, ok := e.proposals[id]
	if !ok {
		return false
	}
	_, ok = pd.votes[party]
	return ok
}

// Votes returns a copy of every vote on the proposal, ordered by party.
func (e *Engine) Votes(id uint64) ([]*types.Vote, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pd, ok := e.proposals[id]
	if !ok {
		return nil, ErrProposalNotFound
	}
	out := make([]*types.Vote, 0, len(pd.votes))
	for _, v := range pd.votes {
		out = append(out, v.DeepClone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Party < out[j].Party })
	return out, nil
}
