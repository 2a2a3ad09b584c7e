//go:build !race
// +build !race

package broker_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"code.witanprotocol.io/witan/broker"
	"code.witanprotocol.io/witan/broker/mocks"
	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pull"
	_ "go.nanomsg.org/mangos/v3/transport/inproc"
)

type testBroker struct {
	*broker.Broker
	cfunc context.CancelFunc
	ctx   context.Context
	ctrl  *gomock.Controller
}

type evt struct {
	t     events.Type
	ctx   context.Context
	seq   uint64
	trace string
}

var eventSeq uint64

func newTestBroker(t *testing.T) *testBroker {
	t.Helper()
	ctx, cfunc := context.WithCancel(context.Background())
	ctrl := gomock.NewController(t)

	config := broker.NewDefaultConfig()
	b, _ := broker.New(ctx, logging.NewTestLogger(), config)
	return &testBroker{
		Broker: b,
		cfunc:  cfunc,
		ctx:    ctx,
		ctrl:   ctrl,
	}
}

func (b testBroker) newEvent() *evt {
	return &evt{
		t:     events.All,
		ctx:   b.ctx,
		seq:   atomic.AddUint64(&eventSeq, 1),
		trace: "generic-id",
	}
}

func (b *testBroker) Finish() {
	b.cfunc()
	b.ctrl.Finish()
}

func TestSubscribe(t *testing.T) {
	t.Run("Subscribe and unsubscribe, required and optional", testSubscribeUnsubscribe)
	t.Run("Freed keys are recycled", testKeyRecycled)
	t.Run("Closed subscribers are dropped on send", testClosedSubscriberDropped)
}

func TestSendEvent(t *testing.T) {
	t.Run("Slow optional subscribers still get every event", testOptionalSlowConsumer)
	t.Run("Cancelled context stops delivery", testCancelledContext)
	t.Run("Skip state suppresses delivery", testSkipState)
	t.Run("Events are routed by type", testTypedRouting)
}

func TestStream(t *testing.T) {
	t.Run("Streams wire frames to a socket consumer", testStreamsWireFrames)
}

func testSubscribeUnsubscribe(t *testing.T) {
	brk := newTestBroker(t)
	defer brk.Finish()
	optSub := mocks.NewMockSubscriber(brk.ctrl)
	reqSub := mocks.NewMockSubscriber(brk.ctrl)
	// Types is read on subscribe and again on unsubscribe
	optSub.EXPECT().Types().Times(2).Return(nil)
	optSub.EXPECT().Ack().Times(1).Return(false)
	reqSub.EXPECT().Types().Times(2).Return(nil)
	reqSub.EXPECT().Ack().Times(1).Return(true)
	k1 := brk.Subscribe(optSub)
	k2 := brk.Subscribe(reqSub)
	assert.NotZero(t, k1)
	assert.NotZero(t, k2)
	assert.NotEqual(t, k1, k2)
	brk.Unsubscribe(k1)
	brk.Unsubscribe(k2)
	// both are unsubscribed, neither mock expects a Push or C call
	brk.Send(brk.newEvent())
}

func testKeyRecycled(t *testing.T) {
	brk := newTestBroker(t)
	defer brk.Finish()
	sub := mocks.NewMockSubscriber(brk.ctrl)
	sub.EXPECT().Types().Times(4).Return(nil)
	sub.EXPECT().Ack().Times(1).Return(false)
	k1 := brk.Subscribe(sub)
	sub.EXPECT().Ack().Times(1).Return(true)
	assert.NotZero(t, k1)
	brk.Unsubscribe(k1)
	k2 := brk.Subscribe(sub)
	assert.Equal(t, k1, k2)
	brk.Unsubscribe(k2)
	// a second unsubscribe of the same key is a no-op
	brk.Unsubscribe(k1)
}

func testClosedSubscriberDropped(t *testing.T) {
	brk := newTestBroker(t)
	defer brk.Finish()
	sub := mocks.NewMockSubscriber(brk.ctrl)
	// subscribe, automatic drop, subscribe again
	sub.EXPECT().Types().Times(3).Return(nil)
	sub.EXPECT().Ack().Times(1).Return(true)
	k1 := brk.Subscribe(sub)
	assert.NotZero(t, k1)
	skipCh := make(chan struct{})
	closedCh := make(chan struct{})
	wg := sync.WaitGroup{}
	wg.Add(1)
	defer func() {
		close(skipCh)
	}()
	// the subscriber reports itself closed before the first send
	close(closedCh)
	sub.EXPECT().Skip().AnyTimes().Return(skipCh)
	sub.EXPECT().Closed().AnyTimes().Return(closedCh).Do(func() {
		wg.Done()
	})
	brk.Send(brk.newEvent())
	// the drop happens on the delivery goroutine, wait for the Closed
	// check before asserting the key was freed
	wg.Wait()
	sub.EXPECT().Ack().Times(1).Return(false)
	k2 := brk.Subscribe(sub)
	assert.Equal(t, k1, k2)
}

func testOptionalSlowConsumer(t *testing.T) {
	brk := newTestBroker(t)
	sub := mocks.NewMockSubscriber(brk.ctrl)
	skipCh, closedCh, cCh := make(chan struct{}), make(chan struct{}), make(chan []events.Event, 1)
	defer func() {
		brk.Finish()
		close(closedCh)
		close(skipCh)
	}()
	twg := sync.WaitGroup{}
	twg.Add(2)
	sub.EXPECT().Types().Times(2).Return(nil).Do(func() {
		twg.Done()
	})
	sub.EXPECT().Ack().AnyTimes().Return(false)
	k1 := brk.Subscribe(sub)
	assert.NotZero(t, k1)

	evts := []*evt{
		brk.newEvent(),
		brk.newEvent(),
		brk.newEvent(),
	}
	// the channel buffers a single batch, so the first send lands
	// directly and the other two each retry on a timed goroutine,
	// reading C twice. That makes 2n-1 calls for n events.
	wg := sync.WaitGroup{}
	wg.Add(len(evts)*2 - 1)
	sub.EXPECT().Closed().AnyTimes().Return(closedCh)
	sub.EXPECT().Skip().AnyTimes().Return(skipCh)
	sub.EXPECT().C().Times(len(evts)*2 - 1).Return(cCh).Do(func() {
		wg.Done()
	})

	for _, e := range evts {
		brk.Send(e)
	}
	wg.Wait()
	// unsubscribe before closing the mock channels, the delivery loop
	// would otherwise read channels we are about to close
	brk.Unsubscribe(k1)
	twg.Wait()

	// drain the channel and collect the sequences we received
	seq := map[uint64]struct{}{}
	for i := len(evts); i != 0; i-- {
		ev := <-cCh
		assert.NotEmpty(t, ev)
		for _, e := range ev {
			seq[e.Sequence()] = struct{}{}
		}
	}

	// every event sent must have arrived, late sends included
	for _, ev := range evts {
		_, ok := seq[ev.Sequence()]
		if !ok {
			t.Fatalf("missing event sequence from received events %v", ev.Sequence())
		}
	}

	assert.Equal(t, 0, len(cCh))
}

func testCancelledContext(t *testing.T) {
	brk := newTestBroker(t)
	defer brk.Finish()
	sub := mocks.NewMockSubscriber(brk.ctrl)
	ch := make(chan struct{})
	sub.EXPECT().Closed().AnyTimes().Return(ch)
	sub.EXPECT().Skip().AnyTimes().Return(ch)
	// cancel first, the subscriber must see no Push at all
	brk.cfunc()
	sub.EXPECT().Types().Times(2).Return(nil)
	sub.EXPECT().Ack().AnyTimes().Return(true)
	k1 := brk.Subscribe(sub)
	assert.NotZero(t, k1)
	brk.Send(brk.newEvent())
	// Unsubscribe takes the broker lock, so once it returns the Send
	// above has been fully processed
	brk.Unsubscribe(k1)
	close(ch)
}

func testSkipState(t *testing.T) {
	brk := newTestBroker(t)
	defer brk.Finish()
	sub := mocks.NewMockSubscriber(brk.ctrl)
	skipCh, closeCh := make(chan struct{}), make(chan struct{})
	skip := int64(0)
	evts := []*evt{
		brk.newEvent(),
		brk.newEvent(),
	}
	wg := sync.WaitGroup{}
	wg.Add(len(evts))
	sub.EXPECT().Closed().AnyTimes().Return(closeCh).Do(func() {
		wg.Done()
	})
	sub.EXPECT().Skip().AnyTimes().DoAndReturn(func() <-chan struct{} {
		// report skipping on the first check only
		if s := atomic.AddInt64(&skip, 1); s == 1 {
			ch := make(chan struct{})
			close(ch)
			return ch
		}
		return skipCh
	})
	// only the second event gets through
	sub.EXPECT().Push(evts[1]).Times(1)
	sub.EXPECT().Types().Times(2).Return(nil)
	sub.EXPECT().Ack().AnyTimes().Return(true)
	k1 := brk.Subscribe(sub)
	assert.NotZero(t, k1)
	for _, e := range evts {
		brk.Send(e)
	}
	wg.Wait()
	brk.Unsubscribe(k1)
	close(skipCh)
	close(closeCh)
}

func testTypedRouting(t *testing.T) {
	brk := newTestBroker(t)
	defer brk.Finish()
	timeSub := mocks.NewMockSubscriber(brk.ctrl)
	allSub := mocks.NewMockSubscriber(brk.ctrl)
	otherSub := mocks.NewMockSubscriber(brk.ctrl)
	skipCh, closeCh := make(chan struct{}), make(chan struct{})
	event := brk.newEvent()
	event.t = events.TimeUpdate
	wg := sync.WaitGroup{}
	wg.Add(2)
	// the channels are shared, nothing closes them until the end
	timeSub.EXPECT().Closed().AnyTimes().Return(closeCh)
	otherSub.EXPECT().Closed().AnyTimes().Return(closeCh)
	allSub.EXPECT().Closed().AnyTimes().Return(closeCh)
	timeSub.EXPECT().Skip().AnyTimes().Return(skipCh)
	allSub.EXPECT().Skip().AnyTimes().Return(skipCh)
	otherSub.EXPECT().Skip().AnyTimes().Return(skipCh)
	// the typed and the catch-all subscriber receive the event, the
	// subscriber registered for an unrelated type expects nothing
	timeSub.EXPECT().Push(gomock.Any()).Times(1).Do(func(_ interface{}) {
		wg.Done()
	})
	allSub.EXPECT().Push(gomock.Any()).Times(1).Do(func(_ interface{}) {
		wg.Done()
	})
	timeSub.EXPECT().Types().Times(2).Return([]events.Type{events.TimeUpdate})
	allSub.EXPECT().Types().Times(2).Return(nil)
	// a type value no real event carries
	different := events.Type(10000)
	otherSub.EXPECT().Types().Times(2).Return([]events.Type{different})
	timeSub.EXPECT().Ack().AnyTimes().Return(true)
	otherSub.EXPECT().Ack().AnyTimes().Return(true)
	allSub.EXPECT().Ack().AnyTimes().Return(true)
	k1 := brk.Subscribe(timeSub)
	k2 := brk.Subscribe(otherSub)
	k3 := brk.Subscribe(allSub)
	assert.NotZero(t, k1)
	assert.NotZero(t, k2)
	assert.NotZero(t, k3)
	assert.NotEqual(t, k1, k2)
	brk.Send(event)
	wg.Wait()
	brk.Unsubscribe(k1)
	brk.Unsubscribe(k2)
	brk.Unsubscribe(k3)
	close(skipCh)
	close(closeCh)
}

func testStreamsWireFrames(t *testing.T) {
	ctx, cfunc := context.WithCancel(context.Background())
	defer cfunc()

	config := broker.NewDefaultConfig()
	config.Socket.Enabled = true
	config.Socket.TransportType = "inproc"
	config.Socket.IP = t.Name()
	config.Socket.Port = 8085

	b, err := broker.New(ctx, logging.NewTestLogger(), config)
	require.NoError(t, err)

	sock, err := pull.NewSocket()
	require.NoError(t, err)
	require.NoError(t, sock.SetOption(mangos.OptionRecvDeadline, 2*time.Second))
	defer sock.Close()

	dialAddr := fmt.Sprintf("%s://%s:%d", config.Socket.TransportType, config.Socket.IP, config.Socket.Port)
	var numOfRetries int
	for {
		err := sock.Dial(dialAddr)
		if err == nil {
			break
		}
		if numOfRetries >= 5 {
			t.Fatal(err)
		}
		numOfRetries++
		time.Sleep(50 * time.Millisecond)
	}

	fundingRef := uint64(7)
	b.Send(events.NewProposalCreated(ctx, types.Proposal{
		ID:          1,
		Title:       "reserve top-up",
		Description: "top up the winter lending reserve",
		FundingRef:  &fundingRef,
		Proposer:    "party-1",
		StartHeight: 10,
		EndHeight:   154,
		Yes:         num.UintZero(),
		No:          num.UintZero(),
	}))
	b.Send(events.NewVoteCast(ctx, types.Vote{
		ProposalID: 1,
		Party:      "party-2",
		Value:      types.VoteValueYes,
		Weight:     num.NewUint(600),
		Height:     12,
	}))

	msg, err := sock.Recv()
	require.NoError(t, err)
	we := broker.WireEvent{}
	require.NoError(t, json.Unmarshal(msg, &we))
	assert.Equal(t, "ProposalCreated", we.Type)
	require.NotNil(t, we.Proposal)
	assert.Equal(t, uint64(1), we.Proposal.ID)
	assert.Equal(t, "reserve top-up", we.Proposal.Title)
	require.NotNil(t, we.Proposal.FundingRef)
	assert.Equal(t, uint64(7), *we.Proposal.FundingRef)

	msg, err = sock.Recv()
	require.NoError(t, err)
	we = broker.WireEvent{}
	require.NoError(t, json.Unmarshal(msg, &we))
	assert.Equal(t, "VoteCast", we.Type)
	require.NotNil(t, we.Vote)
	assert.Equal(t, "party-2", we.Vote.Party)
	assert.Equal(t, types.VoteValueYes, we.Vote.Value)
	assert.True(t, we.Vote.Weight.EQUint64(600))
}

func (e evt) Type() events.Type {
	return e.t
}

func (e evt) Context() context.Context {
	return e.ctx
}

func (e evt) Sequence() uint64 {
	return e.seq
}

func (e evt) TraceID() string {
	return e.trace
}
