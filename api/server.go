package api

import (
	"context"
	"fmt"
	"net/http"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/stats"
	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// GovernanceEngine is the command target for proposal submissions and
// the authoritative source for proposal point reads.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/governance_engine_mock.go -package mocks code.witanprotocol.io/witan/api GovernanceEngine
type GovernanceEngine interface {
	SubmitProposal(ctx context.Context, party string, height uint64, sub types.ProposalSubmission) (*types.Proposal, error)
	CastVote(ctx context.Context, party string, height uint64, sub types.VoteSubmission) error
	ExecuteProposal(ctx context.Context, party string, height uint64, id uint64) error
	GetProposal(id uint64) (*types.Proposal, error)
	GetVote(id uint64, party string) (*types.Vote, error)
	Votes(id uint64) ([]*types.Vote, error)
	TotalVotes(id uint64) *num.Uint
	ProposalCount() uint64
}

// NetParams exposes the network parameter reads and the guarded
// mutators. The party on a mutator is the caller claiming authority.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/net_params_mock.go -package mocks code.witanprotocol.io/witan/api NetParams
type NetParams interface {
	GetAll() map[string]string
	SetQuorumPercent(ctx context.Context, party string, percent uint64) error
	SetProposalDuration(ctx context.Context, party string, heights uint64) error
	SetTotalSupply(ctx context.Context, party string, supply *num.Uint) error
	SetAuthority(ctx context.Context, party, newAuthority string) error
}

// TimeService surfaces the current ledger height. Commands never carry
// a height of their own, it is always read here at handling time.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/time_service_mock.go -package mocks code.witanprotocol.io/witan/api TimeService
type TimeService interface {
	Height() uint64
}

// ProposalStore is the archive used to page through proposals in
// submission order.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/proposal_store_mock.go -package mocks code.witanprotocol.io/witan/api ProposalStore
type ProposalStore interface {
	GetAll(skip, limit uint64, descending bool) ([]*types.Proposal, error)
}

// Server is the REST API of the node. Commands carry the acting party
// in their body, reads are plain GETs.
type Server struct {
	*httprouter.Router

	log     *logging.Logger
	cfg     Config
	gov     GovernanceEngine
	params  NetParams
	time    TimeService
	archive ProposalStore
	stats   *stats.Stats

	srv *http.Server
}

// NewServer returns a REST server with all routes registered. Start
// must be called for it to accept connections.
func NewServer(log *logging.Logger, cfg Config, gov GovernanceEngine, params NetParams, tm TimeService, archive ProposalStore, st *stats.Stats) *Server {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	s := &Server{
		Router:  httprouter.New(),
		log:     log,
		cfg:     cfg,
		gov:     gov,
		params:  params,
		time:    tm,
		archive: archive,
		stats:   st,
	}

	s.POST("/api/v1/proposals", s.SubmitProposal)
	s.POST("/api/v1/proposals/execute", s.ExecuteProposal)
	s.POST("/api/v1/votes", s.CastVote)
	s.POST("/api/v1/params", s.UpdateParam)

	s.GET("/api/v1/proposals", s.ListProposals)
	s.GET("/api/v1/proposals/:id", s.GetProposal)
	s.GET("/api/v1/proposals/:id/votes", s.ListVotes)
	s.GET("/api/v1/proposals/:id/total-votes", s.GetTotalVotes)
	s.GET("/api/v1/votes/:id/:party", s.GetVote)
	s.GET("/api/v1/params", s.ListParams)
	s.GET("/api/v1/statistics", s.Statistics)

	return s
}

// ReloadConf updates the server configuration. Address changes apply
// from the next Start.
func (s *Server) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}
	s.cfg = cfg
}

// Start listens for and serves requests until Stop is called.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%v:%v", s.cfg.IP, s.cfg.Port),
		Handler:      RequestIDMiddleware(MetricCollectionMiddleware(cors.AllowAll().Handler(s))),
		ReadTimeout:  s.cfg.Timeout.Get(),
		WriteTimeout: s.cfg.Timeout.Get(),
	}

	s.log.Info("starting api server", logging.String("address", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}
	s.log.Info("stopping api server")
	return s.srv.Shutdown(context.Background())
}
