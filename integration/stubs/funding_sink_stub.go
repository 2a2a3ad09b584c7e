package stubs

import (
	"context"
	"sync"

	"code.witanprotocol.io/witan/types/num"
)

// Issuance is one recorded call to the funding sink.
type Issuance struct {
	FundingRef  uint64
	Rate        num.Decimal
	TermHeights uint64
}

// FundingSinkStub records issuances and can be told to fail, so
// scenarios can exercise the execution failure path.
type FundingSinkStub struct {
	mu       sync.Mutex
	failWith error
	issued   []Issuance
}

func NewFundingSinkStub() *FundingSinkStub {
	return &FundingSinkStub{}
}

func (f *FundingSinkStub) Issue(_ context.Context, fundingRef uint64, rate num.Decimal, termHeights uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.issued = append(f.issued, Issuance{
		FundingRef:  fundingRef,
		Rate:        rate,
		TermHeights: termHeights,
	})
	return nil
}

// FailWith makes every subsequent Issue call return the given error,
// nil restores normal operation.
func (f *FundingSinkStub) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = err
}

// Issued returns the recorded issuances in call order.
func (f *FundingSinkStub) Issued() []Issuance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issued
}

// IssuanceCount returns how many issuances went through.
func (f *FundingSinkStub) IssuanceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.issued)
}
