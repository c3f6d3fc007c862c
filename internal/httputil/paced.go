// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// MinInterval is the floor applied to non-positive pacing intervals.
const MinInterval = time.Millisecond

// PacedClient issues requests to one external service, keeping at least
// Interval between the start of successive requests. The first request is
// not delayed. Requests are never retried.
type PacedClient struct {
	client   *http.Client
	limiter  *rate.Limiter
	interval time.Duration
}

// NewPacedClient wraps client with a fixed-interval gate. A nil client uses
// http.DefaultClient.
func NewPacedClient(client *http.Client, interval time.Duration) *PacedClient {
	if client == nil {
		client = http.DefaultClient
	}
	if interval <= 0 {
		interval = MinInterval
	}
	return &PacedClient{
		client:   client,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
	}
}

// Interval returns the effective gap between requests.
func (c *PacedClient) Interval() time.Duration { return c.interval }

// Do waits for the gate using the request context, then sends req. If the
// context ends while waiting, Do returns the context error without sending.
func (c *PacedClient) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("waiting for request slot: %w", err)
	}
	return c.client.Do(req)
}
