package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"syscall"
	"time"
)

const webhookTimeout = 10 * time.Second

// Outcome is the closed set of results an outbound webhook call can end
// in. Callers match on it instead of inspecting transport errors.
type Outcome int

const (
	OutcomeDelivered Outcome = iota
	OutcomeUnreachable
	OutcomeUpstreamError
	OutcomeTransportFailure
)

type Delivery struct {
	Outcome Outcome
	Status  int // remote status when a response was received
	Body    any // decoded response body when a response was received
	Err     error
}

type WebhookClient interface {
	Send(ctx context.Context, payload EmailPayload) Delivery
}

type httpWebhookClient struct {
	url    string
	client *http.Client
}

func NewWebhookClient(url string) WebhookClient {
	return &httpWebhookClient{
		url: url,
		client: &http.Client{
			Timeout: webhookTimeout,
		},
	}
}

// Send performs exactly one attempt. A refused connection means the
// workflow engine is down (unreachable); any response with an error
// status is an upstream failure carried back verbatim.
func (c *httpWebhookClient) Send(ctx context.Context, payload EmailPayload) Delivery {
	body, err := json.Marshal(payload)
	if err != nil {
		return Delivery{Outcome: OutcomeTransportFailure, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Delivery{Outcome: OutcomeTransportFailure, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return Delivery{Outcome: OutcomeUnreachable, Err: err}
		}
		return Delivery{Outcome: OutcomeTransportFailure, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Delivery{Outcome: OutcomeTransportFailure, Err: err}
	}

	var decoded any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			decoded = string(raw)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return Delivery{Outcome: OutcomeUpstreamError, Status: resp.StatusCode, Body: decoded}
	}
	return Delivery{Outcome: OutcomeDelivered, Status: resp.StatusCode, Body: decoded}
}
