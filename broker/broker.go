package broker

import (
	"context"
	"sync"
	"time"

	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/logging"

	"github.com/pkg/errors"
)

// Subscriber is the consumer side of the broker. Batches are delivered
// over C, the Skip and Closed channels let a subscriber pause or leave,
// and acked subscribers get a blocking Push instead of channel delivery.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/subscriber_mock.go -package mocks code.witanprotocol.io/witan/broker Subscriber
type Subscriber interface {
	Push(val ...events.Event)
	Skip() <-chan struct{}
	Closed() <-chan struct{}
	C() chan<- []events.Event
	Types() []events.Type
	SetID(id int)
	ID() int
	Ack() bool
}

type subscription struct {
	Subscriber
	required bool
}

// Broker fans events out to typed subscribers, and optionally streams
// them over the event socket for out of process consumers.
type Broker struct {
	ctx context.Context
	mu  sync.Mutex

	// byType holds the subscriptions interested in each event type, the
	// events.All entry doubles as the catch-all set
	byType map[events.Type]map[int]*subscription
	// byKey tracks every subscription under its unique key so shutdown
	// and Unsubscribe can find them regardless of type
	byKey map[int]subscription
	// freed keys, recycled before new ones are minted
	keys   []int
	routes map[events.Type]chan []events.Event

	sender *socketSender
}

// New creates a broker, wiring up the event socket when enabled.
func New(ctx context.Context, log *logging.Logger, config Config) (*Broker, error) {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	b := &Broker{
		ctx:    ctx,
		byType: map[events.Type]map[int]*subscription{},
		byKey:  map[int]subscription{},
		keys:   []int{},
		routes: map[events.Type]chan []events.Event{},
	}

	if config.Socket.Enabled {
		sender, err := newSocketSender(ctx, log, &config.Socket)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialise event socket")
		}
		b.sender = sender
	}

	return b, nil
}

// sendWithTimeout delivers on the subscriber channel, giving up after a
// second so a stalled optional subscriber cannot wedge the broker.
func (b *Broker) sendWithTimeout(sub Subscriber, evts []events.Event) {
	timeout := time.NewTimer(time.Second)
	defer func() {
		if !timeout.Stop() {
			<-timeout.C
		}
	}()
	select {
	case <-b.ctx.Done():
	case <-sub.Closed():
	case sub.C() <- evts:
	case <-timeout.C:
	}
}

// trySend attempts channel delivery without blocking, falling back to a
// timed goroutine when the subscriber buffer is full. The return value
// reports whether the subscriber closed and should be dropped.
func (b *Broker) trySend(sub Subscriber, evts []events.Event) bool {
	select {
	case <-b.ctx.Done():
		return false
	case <-sub.Skip():
		return false
	case <-sub.Closed():
		return true
	case sub.C() <- evts:
		return false
	default:
		go b.sendWithTimeout(sub, evts)
		return false
	}
}

// route hands the batch to the per-type delivery goroutine, spawning it
// on first use. A single goroutine per type keeps delivery ordered for
// that type.
func (b *Broker) route(t events.Type, evts []events.Event) {
	b.mu.Lock()
	ch, ok := b.routes[t]
	if !ok {
		subs := b.subscribersFor(t)
		ln := len(subs) + 1
		// buffered to smooth out bursts, 40 slots at minimum
		ch = make(chan []events.Event, ln*20+20)
		b.routes[t] = ch
	}
	b.mu.Unlock()
	ch <- evts
	if ok {
		return
	}
	go b.deliver(t, ch)
}

func (b *Broker) deliver(t events.Type, ch chan []events.Event) {
	defer func() {
		b.mu.Lock()
		delete(b.routes, t)
		close(ch)
		b.mu.Unlock()
	}()
	for {
		select {
		case <-b.ctx.Done():
			return
		case batch := <-ch:
			b.mu.Lock()
			subs := b.subscribersFor(t)
			b.mu.Unlock()
			unsub := make([]int, 0, len(subs))
			for k, sub := range subs {
				select {
				case <-b.ctx.Done():
					return
				case <-sub.Skip():
					continue
				case <-sub.Closed():
					unsub = append(unsub, k)
				default:
					if sub.required {
						sub.Push(batch...)
					} else if rm := b.trySend(sub, batch); rm {
						unsub = append(unsub, k)
					}
				}
			}
			if len(unsub) != 0 {
				b.mu.Lock()
				b.removeSubs(unsub...)
				b.mu.Unlock()
			}
		}
	}
}

// Send publishes an event to subscribers and the event socket.
func (b *Broker) Send(event events.Event) {
	b.route(event.Type(), []events.Event{event})
	if b.sender != nil {
		b.sender.send(event)
	}
}

// SendBatch publishes a slice of events in one delivery, all events in
// the batch must share the same type.
func (b *Broker) SendBatch(evts []events.Event) {
	if len(evts) == 0 {
		return
	}
	b.route(evts[0].Type(), evts)
	if b.sender != nil {
		for _, e := range evts {
			b.sender.send(e)
		}
	}
}

// subscribersFor returns a copy of the subscriptions for a type, or the
// catch-all set when no typed map exists yet. Callers own the copy, so
// delivery can proceed without holding the lock.
func (b *Broker) subscribersFor(t events.Type) map[int]*subscription {
	subs, ok := b.byType[t]
	if !ok {
		subs = b.byType[events.All]
	}
	cpy := make(map[int]*subscription, len(subs))
	for k, v := range subs {
		cpy[k] = v
	}
	return cpy
}

// Subscribe registers a subscriber, returning its key.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	k := b.subscribe(s)
	b.mu.Unlock()
	return k
}

// SubscribeBatch registers several subscribers, assigning each its key.
func (b *Broker) SubscribeBatch(subs ...Subscriber) {
	b.mu.Lock()
	for _, s := range subs {
		k := b.subscribe(s)
		s.SetID(k)
	}
	b.mu.Unlock()
}

func (b *Broker) subscribe(s Subscriber) int {
	k := b.nextKey()
	sub := subscription{
		Subscriber: s,
		required:   s.Ack(),
	}
	b.byKey[k] = sub
	types := sub.Types()
	// a subscriber listing events.All anywhere, or listing nothing at
	// all, subscribes to everything
	catchAll := false
	if len(types) == 0 {
		catchAll = true
		types = []events.Type{events.All}
	} else {
		for _, t := range types {
			if t == events.All {
				types = []events.Type{events.All}
				catchAll = true
				break
			}
		}
	}
	for _, t := range types {
		if _, ok := b.byType[t]; !ok {
			b.byType[t] = map[int]*subscription{}
			if !catchAll {
				// a fresh typed map inherits the existing catch-all subscribers
				for ak, as := range b.byType[events.All] {
					b.byType[t][ak] = as
				}
			}
		}
		b.byType[t][k] = &sub
	}
	if catchAll {
		for t := range b.byType {
			if t != events.All {
				b.byType[t][k] = &sub
			}
		}
	}
	return k
}

// Unsubscribe drops the subscription. The state of the subscriber
// itself is untouched.
func (b *Broker) Unsubscribe(k int) {
	b.mu.Lock()
	b.removeSubs(k)
	b.mu.Unlock()
}

func (b *Broker) nextKey() int {
	if len(b.keys) > 0 {
		k := b.keys[0]
		b.keys = b.keys[1:]
		return k
	}
	// keys start at 1, the zero value marks an unset subscriber ID
	return len(b.byKey) + 1
}

func (b *Broker) removeSubs(keys ...int) {
	for _, k := range keys {
		// an unknown key means a duplicate removal, recycling it twice
		// would hand the same key to two subscribers
		s, ok := b.byKey[k]
		if !ok {
			return
		}
		types := s.Types()
		for _, t := range types {
			if t == events.All {
				types = nil
				break
			}
		}
		if len(types) == 0 {
			for _, v := range b.byType {
				delete(v, k)
			}
		} else {
			for _, t := range types {
				delete(b.byType[t], k)
			}
		}
		delete(b.byKey, k)
		b.keys = append(b.keys, k)
	}
}
