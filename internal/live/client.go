// Package live fetches current pollutant concentrations from the Open-Meteo
// air-quality API so the dashboard can score a real location alongside the
// synthetic dataset.
package live

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
)

// backoffConfig controls exponential backoff behaviour for upstream calls.
type backoffConfig struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// resilientClient wraps an http.Client with retries, exponential backoff and
// a circuit breaker. The breaker trips on repeated rate limiting or 5xx
// responses so a flapping upstream is not hammered.
type resilientClient struct {
	client  *http.Client
	backoff backoffConfig
	circuit *gobreaker.CircuitBreaker
}

func newResilientClient(client *http.Client, name string) *resilientClient {
	return &resilientClient{
		client: client,
		backoff: backoffConfig{
			maxRetries:      3,
			initialInterval: 500 * time.Millisecond,
			maxInterval:     5 * time.Second,
		},
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
}

// do executes the request built by buildRequest, retrying retryable failures
// until the backoff budget is spent. The request is rebuilt per attempt.
func (rc *resilientClient) do(ctx context.Context, buildRequest func() (*http.Request, error)) (*http.Response, error) {
	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := buildRequest()
		if err != nil {
			return nil, err
		}
		req = req.WithContext(ctx)

		result, err := rc.circuit.Execute(func() (interface{}, error) {
			return rc.classify(rc.client.Do(req))
		})
		if err == nil {
			return result.(*http.Response), nil
		}

		// An open circuit propagates immediately; waiting out the backoff
		// would not help.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= rc.backoff.maxRetries {
			return nil, lastErr
		}

		delay := rc.backoff.initialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if rc.backoff.maxInterval > 0 && delay > rc.backoff.maxInterval {
			delay = rc.backoff.maxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

// classify turns non-2xx responses into typed errors so the breaker counts
// them as failures.
func (rc *resilientClient) classify(resp *http.Response, err error) (*http.Response, error) {
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errRateLimited
	case resp.StatusCode >= 500:
		return nil, errServerError
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
	}
	return resp, nil
}
