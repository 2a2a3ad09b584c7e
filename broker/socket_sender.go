package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol"
	"go.nanomsg.org/mangos/v3/protocol/push"
	_ "go.nanomsg.org/mangos/v3/transport/tcp"
)

// WireEvent is the JSON envelope events are framed in on the event
// socket. Exactly one payload field is set, matching the Type string.
type WireEvent struct {
	Type     string          `json:"type"`
	TraceID  string          `json:"traceId"`
	Sequence uint64          `json:"sequence"`
	Height   *uint64         `json:"height,omitempty"`
	Key      string          `json:"key,omitempty"`
	Value    string          `json:"value,omitempty"`
	Proposal *types.Proposal `json:"proposal,omitempty"`
	Vote     *types.Vote     `json:"vote,omitempty"`
}

// socketSender streams events sent to this broker over a socket to remote
// consumers. The sender listens and consumers dial in, an absent consumer
// never blocks the node, frames are dropped once the send deadline trips.
type socketSender struct {
	log      *logging.Logger
	sock     protocol.Socket
	eventsCh chan events.Event
}

func newSocketSender(ctx context.Context, log *logging.Logger, config *SocketConfig) (*socketSender, error) {
	sock, err := push.NewSocket()
	if err != nil {
		return nil, fmt.Errorf("failed to create new socket: %w", err)
	}

	addr := fmt.Sprintf("%s://%s:%d", config.TransportType, config.IP, config.Port)
	if err := sock.Listen(addr); err != nil {
		return nil, fmt.Errorf("failed to listen on %v: %w", addr, err)
	}
	if err := sock.SetOption(mangos.OptionSendDeadline, config.SendTimeout.Get()); err != nil {
		return nil, fmt.Errorf("failed to set send deadline: %w", err)
	}

	s := &socketSender{
		log:      log,
		sock:     sock,
		eventsCh: make(chan events.Event, config.BufferSize),
	}
	go s.stream(ctx)

	return s, nil
}

func (s *socketSender) send(e events.Event) {
	select {
	case s.eventsCh <- e:
	default:
		s.log.Warn("event socket buffer full, dropping event",
			logging.String("type", e.Type().String()))
	}
}

func (s *socketSender) stream(ctx context.Context) {
	defer s.sock.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-s.eventsCh:
			buf, err := marshalEvent(e)
			if err != nil {
				s.log.Error("failed to marshal event",
					logging.String("type", e.Type().String()),
					logging.Error(err),
				)
				continue
			}
			if err := s.sock.Send(buf); err != nil && err != protocol.ErrSendTimeout {
				s.log.Error("failed to send on event socket", logging.Error(err))
			}
		}
	}
}

func marshalEvent(e events.Event) ([]byte, error) {
	we := WireEvent{
		Type:     e.Type().String(),
		TraceID:  e.TraceID(),
		Sequence: e.Sequence(),
	}
	switch et := e.(type) {
	case *events.Time:
		h := et.Height()
		we.Height = &h
	case *events.ProposalCreated:
		p := et.Proposal()
		we.Proposal = &p
	case *events.ProposalExecuted:
		p := et.Proposal()
		we.Proposal = &p
	case *events.VoteCast:
		v := et.Vote()
		we.Vote = &v
	case *events.NetworkParameter:
		we.Key = et.Key()
		we.Value = et.Value()
	default:
		return nil, fmt.Errorf("no wire representation for event type %s", e.Type().String())
	}
	return json.Marshal(we)
}
