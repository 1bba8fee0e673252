package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"

	"github.com/zonesec/zonesec/log"
)

const (
	defaultBaseURL  = "https://api.cloudflare.com/client/v4"
	defaultTimeout  = 10 * time.Second
	defaultAttempts = uint(1)
	defaultCooldown = 500 * time.Millisecond
)

// ErrZoneNotFound is returned when no zone matches the requested name.
var ErrZoneNotFound = errors.New("no zone found with the given name")

// TransientError represents a temporary error like timeout, network errors...
type TransientError struct {
	inner error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("temporary error occurred: %v", e.inner)
}

func (e *TransientError) Unwrap() error {
	return e.inner
}

// Client talks to the Cloudflare v4 control plane.
type Client struct {
	baseURL   string
	creds     Credentials
	timeout   time.Duration
	attempts  uint
	cooldown  time.Duration
	transport http.RoundTripper
}

type ClientOption func(c *Client)

func NewClient(creds Credentials, options ...ClientOption) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		creds:     creds,
		timeout:   defaultTimeout,
		attempts:  defaultAttempts,
		cooldown:  defaultCooldown,
		transport: &http.Transport{},
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// WithBaseURL sets the API endpoint
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithAttempts sets the attempt number for retry
func WithAttempts(attempts uint) ClientOption {
	return func(c *Client) {
		c.attempts = attempts
	}
}

// WithCooldown sets the pause between 2 attempts
func WithCooldown(cooldown time.Duration) ClientOption {
	return func(c *Client) {
		c.cooldown = cooldown
	}
}

// WithTransport sets the HTTP transport
func WithTransport(transport http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.transport = transport
	}
}

// ZoneIDByName resolves a zone name to its provider-assigned identity.
// When several zones match, the first one returned by the API wins: the
// provider keeps zone names unique per account.
func (c *Client) ZoneIDByName(ctx context.Context, name string) (Zone, error) {
	var zones []Zone

	query := url.Values{"name": []string{name}}
	if err := c.call(ctx, http.MethodGet, "/zones?"+query.Encode(), nil, &zones); err != nil {
		return Zone{}, err
	}

	if len(zones) == 0 {
		return Zone{}, fmt.Errorf("%w: %s", ErrZoneNotFound, name)
	}

	return zones[0], nil
}

// DNSRecords lists the zone's records matching the filter.
func (c *Client) DNSRecords(ctx context.Context, zoneID string, filter RecordFilter) ([]Record, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}

	if filter.Name != "" {
		query.Set("name", filter.Name)
	}

	path := fmt.Sprintf("/zones/%s/dns_records", zoneID)
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var records []Record

	err := c.call(ctx, http.MethodGet, path, nil, &records)

	return records, err
}

// CreateDNSRecord creates a new record in the zone.
func (c *Client) CreateDNSRecord(ctx context.Context, zoneID string, record Record) error {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("/zones/%s/dns_records", zoneID), record, nil)
}

// SetDNSSEC patches the zone's DNSSEC status. The PATCH is idempotent on
// the provider side: setting an already active zone to active is a no-op.
func (c *Client) SetDNSSEC(ctx context.Context, zoneID, status string) error {
	return c.call(ctx, http.MethodPatch, fmt.Sprintf("/zones/%s/dnssec", zoneID),
		map[string]string{"status": status}, nil)
}

// PatchZoneSetting patches a single named zone setting.
func (c *Client) PatchZoneSetting(ctx context.Context, zoneID, setting string, value any) error {
	return c.call(ctx, http.MethodPatch, fmt.Sprintf("/zones/%s/settings/%s", zoneID, setting),
		map[string]any{"value": value}, nil)
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	client := http.Client{
		Timeout:   c.timeout,
		Transport: c.transport,
	}

	var payload []byte

	if body != nil {
		var err error

		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("can't encode request body: %w", err)
		}
	}

	logger().WithFields(logrus.Fields{"method": method, "path": path}).Debug("calling control plane")

	return retry.Do(
		func() error {
			var reqBody io.Reader
			if payload != nil {
				reqBody = bytes.NewReader(payload)
			}

			req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
			if err != nil {
				return err
			}

			if payload != nil {
				req.Header.Set("Content-Type", "application/json")
			}

			c.creds.apply(req)

			resp, err := client.Do(req)
			if err != nil {
				var netErr net.Error
				if errors.As(err, &netErr) && netErr.Timeout() {
					return &TransientError{inner: netErr}
				}

				return err
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			var env envelope
			if err := json.Unmarshal(data, &env); err != nil {
				return fmt.Errorf("can't decode response (status %d): %w", resp.StatusCode, err)
			}

			if !env.Success || resp.StatusCode >= http.StatusBadRequest {
				return &APIError{StatusCode: resp.StatusCode, Errors: env.Errors}
			}

			if out != nil && len(env.Result) > 0 {
				return json.Unmarshal(env.Result, out)
			}

			return nil
		},
		retry.Attempts(c.attempts),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(c.cooldown),
		retry.RetryIf(func(err error) bool {
			var transientErr *TransientError

			return errors.As(err, &transientErr)
		}),
		retry.LastErrorOnly(true),
	)
}

func logger() *logrus.Entry {
	return log.PrefixedLog("cloudflare")
}
