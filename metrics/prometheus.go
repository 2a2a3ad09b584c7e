package metrics

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// The instrument kinds witan registers. Counters and gauges cover the
// whole surface so far, anything fancier gets added when a caller
// needs it.
const (
	Gauge instrument = iota
	Counter
)

var (
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

var (
	ledgerHeightGauge prometheus.Gauge
	engineTime        *prometheus.CounterVec
	proposalCounter   *prometheus.CounterVec
	voteCounter       *prometheus.CounterVec
	executionCounter  *prometheus.CounterVec
	// call and cumulative time counters per request type per API
	apiRequestCallCounter *prometheus.CounterVec
	apiRequestTimeCounter *prometheus.CounterVec
)

type instrument int

// instrumentOpts collects the prometheus options shared by every
// instrument kind, plus the label names when a vector is wanted.
type instrumentOpts struct {
	opts    prometheus.Opts
	vectors []string
}

type mi struct {
	gaugeV   *prometheus.GaugeVec
	gauge    prometheus.Gauge
	counterV *prometheus.CounterVec
	counter  prometheus.Counter
}

// MetricInstrument exposes the registered prometheus instrument, only
// the getter matching the registered kind returns one.
type MetricInstrument interface {
	Gauge() (prometheus.Gauge, error)
	GaugeVec() (*prometheus.GaugeVec, error)
	Counter() (prometheus.Counter, error)
	CounterVec() (*prometheus.CounterVec, error)
}

type InstrumentOption func(o *instrumentOpts)

// Vectors turns the instrument into a vector over the given label names.
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.vectors = labels
	}
}

// Help sets the help text.
func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Help = help
	}
}

// Namespace sets the metric namespace.
func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Namespace = ns
	}
}

// Subsystem sets the metric subsystem.
func Subsystem(s string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Subsystem = s
	}
}

// Labels sets constant labels on the instrument.
func Labels(labels map[string]string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.ConstLabels = prometheus.Labels(labels)
	}
}

// AddInstrument configures and registers an instrument with the
// default prometheus registry.
func AddInstrument(t instrument, name string, opts ...InstrumentOption) (*mi, error) {
	var col prometheus.Collector
	ret := mi{}
	opt := instrumentOpts{
		opts: prometheus.Opts{Name: name},
	}
	for _, o := range opts {
		o(&opt)
	}
	switch t {
	case Gauge:
		o := prometheus.GaugeOpts(opt.opts)
		if len(opt.vectors) == 0 {
			ret.gauge = prometheus.NewGauge(o)
			col = ret.gauge
		} else {
			ret.gaugeV = prometheus.NewGaugeVec(o, opt.vectors)
			col = ret.gaugeV
		}
	case Counter:
		o := prometheus.CounterOpts(opt.opts)
		if len(opt.vectors) == 0 {
			ret.counter = prometheus.NewCounter(o)
			col = ret.counter
		} else {
			ret.counterV = prometheus.NewCounterVec(o, opt.vectors)
			col = ret.counterV
		}
	default:
		return nil, ErrInstrumentNotSupported
	}
	if err := prometheus.Register(col); err != nil {
		return nil, err
	}
	return &ret, nil
}

// Start registers the witan instruments and serves them over HTTP when
// metrics are enabled.
func Start(conf Config) {
	if !conf.Enabled {
		return
	}
	if err := setupMetrics(); err != nil {
		panic("could not set up metrics")
	}
	http.Handle(conf.Path, promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", conf.Port), nil))
	}()
}

// Gauge returns the plain gauge instrument.
func (m mi) Gauge() (prometheus.Gauge, error) {
	if m.gauge == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gauge, nil
}

// GaugeVec returns the gauge vector instrument.
func (m mi) GaugeVec() (*prometheus.GaugeVec, error) {
	if m.gaugeV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gaugeV, nil
}

// Counter returns the plain counter instrument.
func (m mi) Counter() (prometheus.Counter, error) {
	if m.counter == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counter, nil
}

// CounterVec returns the counter vector instrument.
func (m mi) CounterVec() (*prometheus.CounterVec, error) {
	if m.counterV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counterV, nil
}

func addCounterVec(name, help string, labels ...string) (*prometheus.CounterVec, error) {
	h, err := AddInstrument(
		Counter,
		name,
		Namespace("witan"),
		Vectors(labels...),
		Help(help),
	)
	if err != nil {
		return nil, err
	}
	return h.CounterVec()
}

func setupMetrics() error {
	var err error
	if engineTime, err = addCounterVec(
		"engine_seconds_total",
		"Total time spent in each engine function",
		"engine", "fn",
	); err != nil {
		return err
	}
	if proposalCounter, err = addCounterVec(
		"proposals_total",
		"Number of proposal submissions processed",
		"valid",
	); err != nil {
		return err
	}
	if voteCounter, err = addCounterVec(
		"votes_total",
		"Number of vote submissions processed",
		"valid",
	); err != nil {
		return err
	}
	if executionCounter, err = addCounterVec(
		"executions_total",
		"Number of proposal executions processed",
		"valid",
	); err != nil {
		return err
	}
	if apiRequestCallCounter, err = addCounterVec(
		"request_count_total",
		"Count of API requests",
		"apiType", "requestType",
	); err != nil {
		return err
	}
	if apiRequestTimeCounter, err = addCounterVec(
		"request_time_total",
		"Total time spent in each API request",
		"apiType", "requestType",
	); err != nil {
		return err
	}

	h, err := AddInstrument(
		Gauge,
		"ledger_height",
		Namespace("witan"),
		Help("Current ledger height"),
	)
	if err != nil {
		return err
	}
	ledgerHeightGauge, err = h.Gauge()
	return err
}

// ProposalCounterInc increments the proposal counter
func ProposalCounterInc(labelValues ...string) {
	if proposalCounter == nil {
		return
	}
	proposalCounter.WithLabelValues(labelValues...).Inc()
}

// VoteCounterInc increments the vote counter
func VoteCounterInc(labelValues ...string) {
	if voteCounter == nil {
		return
	}
	voteCounter.WithLabelValues(labelValues...).Inc()
}

// ExecutionCounterInc increments the execution counter
func ExecutionCounterInc(labelValues ...string) {
	if executionCounter == nil {
		return
	}
	executionCounter.WithLabelValues(labelValues...).Inc()
}

// LedgerHeightSet updates the current ledger height
func LedgerHeightSet(height uint64) {
	if ledgerHeightGauge == nil {
		return
	}
	ledgerHeightGauge.Set(float64(height))
}

// EngineTimeCounterAdd adds the time elapsed since start to the engine
// time counter
func EngineTimeCounterAdd(start time.Time, labelValues ...string) {
	if engineTime == nil {
		return
	}
	engineTime.WithLabelValues(labelValues...).Add(time.Since(start).Seconds())
}

// APIRequestAndTimeREST updates the metrics for REST API calls
func APIRequestAndTimeREST(request string, time float64) {
	if apiRequestCallCounter == nil || apiRequestTimeCounter == nil {
		return
	}
	apiRequestCallCounter.WithLabelValues("REST", request).Inc()
	apiRequestTimeCounter.WithLabelValues("REST", request).Add(time)
}
