package api

import (
	"net/http"
	"strings"
	"time"

	"code.witanprotocol.io/witan/metrics"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every response with a unique X-Request-Id
// header so a call can be correlated with the node logs.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

// MetricCollectionMiddleware records the request and the time taken to service it.
func MetricCollectionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		// Trim the URI down to the resource it addresses
		uri := strings.TrimPrefix(r.URL.Path, "/api/v1/")
		if i := strings.Index(uri, "/"); i >= 0 {
			uri = uri[:i]
		}

		metrics.APIRequestAndTimeREST(uri, time.Since(start).Seconds())
	})
}
