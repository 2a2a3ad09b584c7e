// Package context provides helpers to carry tracing metadata on the
// contexts threaded through every ledger operation.
package context

import (
	"context"
	"errors"

	vgcrypto "code.witanprotocol.io/witan/libs/crypto"
)

type (
	traceIDKey int
	heightKey  int
)

const (
	traceIDK traceIDKey = iota
	heightK  heightKey  = iota
)

var ErrHeightMissing = errors.New("no ledger height set on context")

// WithTraceID returns a context with the given trace ID set.
func WithTraceID(ctx context.Context, tID string) context.Context {
	return context.WithValue(ctx, traceIDK, tID)
}

// TraceIDFromContext returns the trace ID from the context, assigning
// a fresh one on the returned context when none was set.
func TraceIDFromContext(ctx context.Context) (context.Context, string) {
	tID := ctx.Value(traceIDK)
	if tID == nil {
		stID := vgcrypto.RandomHash()
		ctx = WithTraceID(ctx, stID)
		return ctx, stID
	}
	stID, ok := tID.(string)
	if !ok {
		stID = vgcrypto.RandomHash()
		ctx = WithTraceID(ctx, stID)
	}
	return ctx, stID
}

// WithLedgerHeight returns a context with the given ledger height set.
func WithLedgerHeight(ctx context.Context, h uint64) context.Context {
	return context.WithValue(ctx, heightK, h)
}

// LedgerHeightFromContext returns the ledger height carried by the
// context, or ErrHeightMissing.
func LedgerHeightFromContext(ctx context.Context) (uint64, error) {
	hv := ctx.Value(heightK)
	if hv == nil {
		return 0, ErrHeightMissing
	}
	h, ok := hv.(uint64)
	if !ok {
		return 0, ErrHeightMissing
	}
	return h, nil
}
