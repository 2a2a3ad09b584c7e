package stubs

import (
	"sync"

	"code.witanprotocol.io/witan/events"
)

// BrokerStub collects every event the engines emit so scenarios can
// assert on the event stream without a socket in the loop.
type BrokerStub struct {
	mu   sync.Mutex
	data map[events.Type][]events.Event
}

func NewBrokerStub() *BrokerStub {
	return &BrokerStub{
		data: map[events.Type][]events.Event{},
	}
}

func (b *BrokerStub) Send(e events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[e.Type()] = append(b.data[e.Type()], e)
}

func (b *BrokerStub) SendBatch(evts []events.Event) {
	for _, e := range evts {
		b.Send(e)
	}
}

// GetBatch returns the events of the given type in emission order.
func (b *BrokerStub) GetBatch(t events.Type) []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[t]
}

// CountOf returns how many events carrying the given type name were
// emitted, the name being the wire form, e.g. "ProposalCreated".
func (b *BrokerStub) CountOf(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	count := 0
	for t, evts := range b.data {
		if t.String() == name {
			count += len(evts)
		}
	}
	return count
}

// Reset drops all collected events.
func (b *BrokerStub) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = map[events.Type][]events.Event{}
}
