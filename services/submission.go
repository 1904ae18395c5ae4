package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

// Submitter hands a finished payload to the external order-intake
// endpoint. The payload is built once, before the call, and is immutable;
// callers leave the draft untouched on failure so the user can retry.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

// EndpointSubmitter posts the payload as JSON to an intake URL
// (POST /api/rfq on the target host).
type EndpointSubmitter struct {
	URL    string
	Client *http.Client
}

// NewEndpointSubmitter returns a submitter for the given intake URL with
// a 30 second client timeout.
func NewEndpointSubmitter(url string) *EndpointSubmitter {
	return &EndpointSubmitter{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *EndpointSubmitter) Submit(ctx context.Context, payload Payload) error {
	body, err := MarshalPayload(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build intake request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post to intake endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("intake endpoint answered %s", resp.Status)
	}
	return nil
}

// StubSubmitter accepts every payload after a fixed delay. It stands in
// for the intake endpoint while no backend is attached.
type StubSubmitter struct {
	Delay time.Duration
}

func (s *StubSubmitter) Submit(ctx context.Context, _ Payload) error {
	if s.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
