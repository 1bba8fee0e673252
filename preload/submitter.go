package preload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"

	"github.com/zonesec/zonesec/log"
)

const (
	defaultEndpoint = "https://hstspreload.org/api/v2/submit"
	defaultTimeout  = 20 * time.Second
	defaultAttempts = uint(1)
	defaultCooldown = 500 * time.Millisecond
)

// Submitter submits domains to the HSTS preload registry.
type Submitter struct {
	endpoint  string
	timeout   time.Duration
	attempts  uint
	cooldown  time.Duration
	transport http.RoundTripper
}

type SubmitterOption func(s *Submitter)

func NewSubmitter(options ...SubmitterOption) *Submitter {
	s := &Submitter{
		endpoint:  defaultEndpoint,
		timeout:   defaultTimeout,
		attempts:  defaultAttempts,
		cooldown:  defaultCooldown,
		transport: &http.Transport{},
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// WithEndpoint sets the registry submission endpoint
func WithEndpoint(endpoint string) SubmitterOption {
	return func(s *Submitter) {
		s.endpoint = endpoint
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(timeout time.Duration) SubmitterOption {
	return func(s *Submitter) {
		s.timeout = timeout
	}
}

// WithAttempts sets the attempt number for retry
func WithAttempts(attempts uint) SubmitterOption {
	return func(s *Submitter) {
		s.attempts = attempts
	}
}

// WithCooldown sets the pause between 2 attempts
func WithCooldown(cooldown time.Duration) SubmitterOption {
	return func(s *Submitter) {
		s.cooldown = cooldown
	}
}

// WithTransport sets the HTTP transport
func WithTransport(transport http.RoundTripper) SubmitterOption {
	return func(s *Submitter) {
		s.transport = transport
	}
}

type submitResponse struct {
	Errors   []Notice `json:"errors"`
	Warnings []Notice `json:"warnings"`
}

// Submit sends the domain to the registry and classifies the response. It
// never returns an error: every failure mode is part of the Result, so the
// caller can distinguish "retry the network call" (transport failure) from
// "fix the domain" (remote policy errors).
func (s *Submitter) Submit(ctx context.Context, domain string) Result {
	logger().WithField("domain", domain).Debug("submitting domain to the preload registry")

	form := url.Values{"domain": []string{domain}}

	var (
		statusCode int
		data       []byte
	)

	err := retry.Do(
		func() error {
			client := http.Client{
				Timeout:   s.timeout,
				Transport: s.transport,
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint,
				strings.NewReader(form.Encode()))
			if err != nil {
				return err
			}

			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, err := client.Do(req)
			if err != nil {
				var netErr net.Error
				if errors.As(err, &netErr) && netErr.Timeout() {
					return &transientError{inner: netErr}
				}

				return err
			}
			defer resp.Body.Close()

			statusCode = resp.StatusCode
			data, err = io.ReadAll(resp.Body)

			return err
		},
		retry.Attempts(s.attempts),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(s.cooldown),
		retry.RetryIf(func(err error) bool {
			var transientErr *transientError

			return errors.As(err, &transientErr)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return Result{Status: StatusTransportFailure, Detail: err.Error()}
	}

	if statusCode != http.StatusOK {
		detail := fmt.Sprintf("status code: %d", statusCode)
		if len(data) > 0 {
			detail = fmt.Sprintf("%s, body: %s", detail, string(data))
		}

		return Result{Status: StatusTransportFailure, Detail: detail}
	}

	var parsed submitResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Result{Status: StatusTransportFailure, Detail: fmt.Sprintf("malformed response: %v", err)}
	}

	if len(parsed.Errors) > 0 {
		return Result{Status: StatusRemoteErrors, Errors: parsed.Errors, Warnings: parsed.Warnings}
	}

	return Result{Status: StatusSuccess, Warnings: parsed.Warnings}
}

type transientError struct {
	inner error
}

func (e *transientError) Error() string {
	return fmt.Sprintf("temporary error occurred: %v", e.inner)
}

func (e *transientError) Unwrap() error {
	return e.inner
}

func logger() *logrus.Entry {
	return log.PrefixedLog("preload")
}
