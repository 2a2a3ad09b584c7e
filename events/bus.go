package events

import (
	"context"
	"sync/atomic"

	vgcontext "code.witanprotocol.io/witan/libs/context"
)

// Type is the type of bus event.
type Type int

const (
	// All is used by subscribers to receive every event, it has no
	// corresponding event payload.
	All Type = iota
	// TimeUpdate is emitted on every ledger height tick.
	TimeUpdate
	// ProposalCreatedEvent is emitted once per successfully registered
	// proposal.
	ProposalCreatedEvent
	// VoteCastEvent is emitted once per successfully recorded vote.
	VoteCastEvent
	// ProposalExecutedEvent is emitted once per successfully executed
	// proposal.
	ProposalExecutedEvent
	// NetworkParameterEvent is emitted once per successful parameter
	// update.
	NetworkParameterEvent
)

var eventStrings = map[Type]string{
	All:                   "ALL",
	TimeUpdate:            "TimeUpdate",
	ProposalCreatedEvent:  "ProposalCreated",
	VoteCastEvent:         "VoteCast",
	ProposalExecutedEvent: "ProposalExecuted",
	NetworkParameterEvent: "NetworkParameter",
}

// Event interface for the bus.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
	Sequence() uint64
}

// Base common denominator all bus events share.
type Base struct {
	ctx     context.Context
	traceID string
	seq     uint64
	et      Type
}

var eventSeq uint64

// A base event holds no data, so the constructor is only called by the
// typed event constructors.
func newBase(ctx context.Context, t Type) Base {
	ctx, tID := vgcontext.TraceIDFromContext(ctx)
	return Base{
		ctx:     ctx,
		traceID: tID,
		seq:     atomic.AddUint64(&eventSeq, 1),
		et:      t,
	}
}

// TraceID returns the trace ID of the operation that emitted the event.
func (b Base) TraceID() string {
	return b.traceID
}

// Sequence returns the event sequence number, events are ordered by
// emission.
func (b Base) Sequence() uint64 {
	return b.seq
}

// Context returns the context the event was emitted under.
func (b Base) Context() context.Context {
	return b.ctx
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.et
}

// String gets the string representation of the event type.
func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}
