// Copyright (c) 2026, Netgrid Labs.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package central

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/netgrid-labs/fleetwatch/pkg/defaults"
	"github.com/netgrid-labs/fleetwatch/pkg/errors"
)

// Client talks to a tenant's management API gateway.
type Client struct {
	rest       *resty.Client
	limiter    *rate.Limiter
	retries    uint
	retryDelay time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithTimeout overrides the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(d)
	}
}

// WithRateLimit overrides the request rate limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRetries overrides the retry policy for failed requests.
func WithRetries(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		c.retries = attempts
		c.retryDelay = delay
	}
}

// New creates an API client for the given gateway URL and bearer token.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}

	c := &Client{
		rest: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetAuthToken(token).
			SetHeader("Accept", "application/json").
			SetTimeout(defaults.HTTPClientTimeout),
		limiter:    rate.NewLimiter(rate.Limit(defaults.APIRequestsPerSecond), defaults.APIBurst),
		retries:    defaults.HTTPRetryAttempts,
		retryDelay: defaults.HTTPRetryDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// get performs a rate-limited, retried GET and decodes the JSON body
// into out. A 404 is reported as found=false without error so callers
// can treat missing resources as absence.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) (found bool, err error) {
	start := time.Now()

	err = retry.Do(
		func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}

			resp, err := c.rest.R().
				SetContext(ctx).
				SetQueryParams(params).
				SetResult(out).
				ForceContentType("application/json").
				Get(path)
			if err != nil {
				return fmt.Errorf("GET %s: %w", path, err)
			}

			switch {
			case resp.IsSuccess():
				found = true
				return nil
			case resp.StatusCode() == 404:
				found = false
				return nil
			case resp.StatusCode() >= 500 || resp.StatusCode() == 429:
				return errors.New(errors.ErrCodeUnavailable,
					fmt.Sprintf("GET %s: status %d", path, resp.StatusCode()))
			case resp.StatusCode() == 401 || resp.StatusCode() == 403:
				return retry.Unrecoverable(errors.New(errors.ErrCodeUnauthorized,
					fmt.Sprintf("GET %s: status %d", path, resp.StatusCode())))
			default:
				return retry.Unrecoverable(errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("GET %s: status %d", path, resp.StatusCode())))
			}
		},
		retry.Context(ctx),
		retry.Attempts(c.retries),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("retrying API request",
				"path", path,
				"attempt", n+1,
				"error", err)
		}),
	)

	status := "success"
	if err != nil {
		status = "error"
	}
	apiRequestCounter.WithLabelValues(path, status).Inc()
	apiRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	return found, err
}
