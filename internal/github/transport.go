package github

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// HTTPDoer can execute an http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// limitedHTTPDoer wraps an HTTPDoer with a client-side request rate cap so
// bursts of analyze requests do not burn through the GitHub quota.
type limitedHTTPDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewLimitedHTTPDoer creates an HTTPDoer allowing at most maxRate requests
// per second. If the limit is exceeded, Do blocks until the call rate is
// within the limit.
func NewLimitedHTTPDoer(doer HTTPDoer, maxRate float64) HTTPDoer {
	return &limitedHTTPDoer{
		doer:    doer,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		return nil, fmt.Errorf("waiting for request limiter: %w", err)
	}
	return d.doer.Do(r)
}
