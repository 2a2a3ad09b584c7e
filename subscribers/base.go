package subscribers

import (
	"context"
	"time"

	"code.witanprotocol.io/witan/events"
)

// Base carries the plumbing every subscriber shares: the delivery
// channel the broker writes to, the skip and closed signals it selects
// on, and the identifier handed out at registration.
type Base struct {
	ctx     context.Context
	cfunc   context.CancelFunc
	skipCh  chan struct{}
	ch      chan []events.Event
	ack     bool
	running bool
	id      int
}

// NewBase returns a Base with an event buffer of the given size. An
// acking subscriber is driven by the broker and torn down here when
// the context ends, a non-acking one is expected to start its own
// receive loop right away.
func NewBase(ctx context.Context, buf int, ack bool) *Base {
	ctx, cfunc := context.WithCancel(ctx)
	b := &Base{
		ctx:     ctx,
		cfunc:   cfunc,
		skipCh:  make(chan struct{}),
		ch:      make(chan []events.Event, buf),
		ack:     ack,
		running: !ack,
	}
	if b.ack {
		go func() {
			<-b.ctx.Done()
			b.Halt()
		}()
	}
	return b
}

// Ack returns whether the subscriber is synchronous.
func (b *Base) Ack() bool {
	return b.ack
}

// C is the channel the broker delivers event batches on.
func (b *Base) C() chan<- []events.Event {
	return b.ch
}

// Closed signals the broker that the subscriber is gone.
func (b *Base) Closed() <-chan struct{} {
	return b.ctx.Done()
}

// Skip signals the broker that the subscriber is paused.
func (b *Base) Skip() <-chan struct{} {
	return b.skipCh
}

// Pause stops event delivery until Resume.
func (b *Base) Pause() {
	if b.running {
		b.running = false
		close(b.skipCh)
	}
}

// Resume restores event delivery after a Pause.
func (b *Base) Resume() {
	if !b.running {
		b.skipCh = make(chan struct{})
		b.running = true
	}
}

func (b Base) isRunning() bool {
	return b.running
}

// Halt cancels the subscriber context, closes the skip channel and
// finally the event channel. Non-acking subscribers get a grace period
// first so an in-flight broker send does not hit a closed channel.
func (b *Base) Halt() {
	b.cfunc()
	b.Pause()
	if !b.ack {
		time.Sleep(20 * time.Millisecond)
	}
	close(b.ch)
}

// SetID is called by the broker at registration.
func (b *Base) SetID(id int) {
	b.id = id
}

// ID returns the broker assigned identifier.
func (b *Base) ID() int {
	return b.id
}
