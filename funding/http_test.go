package funding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/funding"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestSink(t *testing.T, endpoint string, retries uint64) *funding.HTTPSink {
	t.Helper()
	cfg := funding.NewDefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Retries = retries
	cfg.Timeout = encoding.Duration{Duration: time.Second}
	return funding.NewHTTPSink(logging.NewTestLogger(), cfg)
}

func TestHTTPSink(t *testing.T) {
	t.Run("accepted order posts the issuance document", testOrderAccepted)
	t.Run("rejected order is not retried", testOrderRejected)
	t.Run("transient failure is retried until accepted", testOrderRetried)
	t.Run("unreachable service fails the order", testServiceUnreachable)
}

func testOrderAccepted(t *testing.T) {
	var (
		got   funding.IssuanceOrder
		calls int
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	sink := getTestSink(t, ts.URL, 2)
	err := sink.Issue(context.Background(), 7, num.MustDecimalFromString("0.05"), 52560)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(7), got.FundingRef)
	assert.Equal(t, "0.05", got.Rate.String())
	assert.Equal(t, uint64(52560), got.TermHeights)
}

func testOrderRejected(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer ts.Close()

	sink := getTestSink(t, ts.URL, 2)
	err := sink.Issue(context.Background(), 7, num.MustDecimalFromString("0.05"), 52560)
	assert.EqualError(t, err, "disbursement service returned status 422")
	// a 4xx is final, no second attempt
	assert.Equal(t, 1, calls)
}

func testOrderRetried(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	sink := getTestSink(t, ts.URL, 2)
	err := sink.Issue(context.Background(), 7, num.MustDecimalFromString("0.05"), 52560)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func testServiceUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// shut the server down so nothing listens on the endpoint any more
	ts.Close()

	sink := getTestSink(t, ts.URL, 0)
	err := sink.Issue(context.Background(), 7, num.MustDecimalFromString("0.05"), 52560)
	assert.Error(t, err)
}
