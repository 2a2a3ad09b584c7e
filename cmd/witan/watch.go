package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"code.witanprotocol.io/witan/broker"
	"code.witanprotocol.io/witan/events"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol"
	"go.nanomsg.org/mangos/v3/protocol/pull"
	_ "go.nanomsg.org/mangos/v3/transport/tcp"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

type WatchCmd struct {
	Address string   `short:"a" long:"address" description:"Address of the node event socket" default:"tcp://127.0.0.1:3005"`
	Types   []string `short:"t" long:"type" description:"One or more event types to print (default: all)"`
	Raw     bool     `long:"raw" description:"Print raw frames instead of formatted output"`
}

var watchCmd WatchCmd

func (opts *WatchCmd) Execute(_ []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	sock, err := pull.NewSocket()
	if err != nil {
		return fmt.Errorf("failed to create socket: %w", err)
	}
	defer sock.Close()

	// a deadline keeps the receive loop responsive to interrupts
	if err := sock.SetOption(mangos.OptionRecvDeadline, time.Second); err != nil {
		return fmt.Errorf("failed to set receive deadline: %w", err)
	}

	if err := sock.Dial(opts.Address); err != nil {
		return fmt.Errorf("failed to dial %s: %w", opts.Address, err)
	}

	wanted := make(map[string]struct{}, len(opts.Types))
	for _, t := range opts.Types {
		wanted[t] = struct{}{}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	fmt.Printf("watching events on %s\n", opts.Address)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		msg, err := sock.Recv()
		if err != nil {
			if err == protocol.ErrRecvTimeout {
				continue
			}
			return fmt.Errorf("failed to receive from event socket: %w", err)
		}

		var we broker.WireEvent
		if err := json.Unmarshal(msg, &we); err != nil {
			fmt.Printf("%s %v\n", red("malformed frame:"), err)
			continue
		}

		if _, ok := wanted[we.Type]; len(wanted) > 0 && !ok {
			continue
		}

		if opts.Raw {
			fmt.Println(string(msg))
			continue
		}

		printEvent(we)
	}
}

func printEvent(we broker.WireEvent) {
	switch {
	case we.Type == events.TimeUpdate.String() && we.Height != nil:
		fmt.Printf("%-20s height=%d trace=%s\n", cyan(we.Type), *we.Height, we.TraceID)
	case we.Type == events.ProposalCreatedEvent.String() && we.Proposal != nil:
		fmt.Printf("%-20s id=%d proposer=%s title=%q window=[%d,%d] trace=%s\n",
			yellow(we.Type), we.Proposal.ID, we.Proposal.Proposer, we.Proposal.Title,
			we.Proposal.StartHeight, we.Proposal.EndHeight, we.TraceID)
	case we.Type == events.VoteCastEvent.String() && we.Vote != nil:
		fmt.Printf("%-20s proposal=%d party=%s value=%s weight=%s trace=%s\n",
			yellow(we.Type), we.Vote.ProposalID, we.Vote.Party, we.Vote.Value,
			we.Vote.Weight, we.TraceID)
	case we.Type == events.ProposalExecutedEvent.String() && we.Proposal != nil:
		ref := "none"
		if we.Proposal.FundingRef != nil {
			ref = strconv.FormatUint(*we.Proposal.FundingRef, 10)
		}
		fmt.Printf("%-20s id=%d title=%q yes=%s no=%s fundingRef=%s trace=%s\n",
			green(we.Type), we.Proposal.ID, we.Proposal.Title, we.Proposal.Yes,
			we.Proposal.No, ref, we.TraceID)
	case we.Type == events.NetworkParameterEvent.String():
		fmt.Printf("%-20s %s=%s trace=%s\n", yellow(we.Type), we.Key, we.Value, we.TraceID)
	default:
		fmt.Printf("%-20s seq=%d trace=%s\n", we.Type, we.Sequence, we.TraceID)
	}
}

func Watch(ctx context.Context, parser *flags.Parser) error {
	watchCmd = WatchCmd{}

	short := "Watch the node event stream"
	long := "Dial the node event socket and print events as they are published"

	_, err := parser.AddCommand("watch", short, long, &watchCmd)
	return err
}
