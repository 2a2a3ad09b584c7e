package funding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types/num"

	"github.com/cenkalti/backoff/v4"
)

// IssuanceOrder is the document posted to the disbursement service when a
// proposal carrying a funding reference passes.
type IssuanceOrder struct {
	FundingRef  uint64      `json:"fundingRef"`
	Rate        num.Decimal `json:"rate"`
	TermHeights uint64      `json:"termHeights"`
}

// HTTPSink posts issuance orders to a disbursement service, retrying
// transient failures with exponential backoff.
type HTTPSink struct {
	Config
	log *logging.Logger
	clt *http.Client
}

// NewHTTPSink creates a sink posting to the configured endpoint.
func NewHTTPSink(log *logging.Logger, cfg Config) *HTTPSink {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &HTTPSink{
		Config: cfg,
		log:    log,
		clt: &http.Client{
			Timeout: cfg.Timeout.Get(),
		},
	}
}

// ReloadConf update the internal configuration of the sink
func (s *HTTPSink) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}

	s.Config = cfg
	s.clt.Timeout = cfg.Timeout.Get()
}

// Issue submits an issuance order for the given funding reference. A 4xx
// response rejects the order for good, anything else is retried up to the
// configured number of times.
func (s *HTTPSink) Issue(ctx context.Context, fundingRef uint64, rate num.Decimal, termHeights uint64) error {
	body, err := json.Marshal(IssuanceOrder{
		FundingRef:  fundingRef,
		Rate:        rate,
		TermHeights: termHeights,
	})
	if err != nil {
		return err
	}

	op := func() error {
		req, err := http.NewRequestWithContext(
			ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.clt.Do(req)
		if err != nil {
			s.log.Error("unable to reach the disbursement service",
				logging.String("endpoint", s.Endpoint),
				logging.Error(err))
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		err = fmt.Errorf("disbursement service returned status %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// a rejected order will not be accepted on a retry
			return backoff.Permanent(err)
		}
		s.log.Error("issuance order attempt failed",
			logging.Uint64("funding-ref", fundingRef),
			logging.Error(err))
		return err
	}

	err = backoff.Retry(op,
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.Retries), ctx))
	if err != nil {
		return err
	}

	s.log.Info("issuance order accepted",
		logging.Uint64("funding-ref", fundingRef),
		logging.String("rate", rate.String()),
		logging.Uint64("term-heights", termHeights),
	)
	return nil
}
