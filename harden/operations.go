package harden

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/zonesec/zonesec/cloudflare"
)

const (
	// apexName is the root name of a zone.
	apexName = "@"

	// spfVersionTag marks a TXT record as an SPF policy.
	spfVersionTag = "v=spf1"
)

// Provider is the subset of the control plane the hardening pass consumes.
type Provider interface {
	ZoneIDByName(ctx context.Context, name string) (cloudflare.Zone, error)
	DNSRecords(ctx context.Context, zoneID string, filter cloudflare.RecordFilter) ([]cloudflare.Record, error)
	CreateDNSRecord(ctx context.Context, zoneID string, record cloudflare.Record) error
	SetDNSSEC(ctx context.Context, zoneID, status string) error
	PatchZoneSetting(ctx context.Context, zoneID, setting string, value any) error
}

// Options tunes the hardening operation set.
type Options struct {
	// ApexConflictTypes is probed in order before the AAAA placeholder is
	// created. A CNAME match is diagnosed separately from A/AAAA matches.
	ApexConflictTypes  []dns.Type
	RecordTTL          int
	PlaceholderAddress string
	SPFPolicy          string
	ProxyPlaceholder   bool
}

// tlsSettings is the fixed set of zone-level TLS/HSTS settings. Each entry
// is patched and reported independently, so one rejected setting never
// blocks the others.
//
//nolint:gochecknoglobals
var tlsSettings = []struct {
	id    string
	value any
}{
	{"ssl", "strict"},
	{"min_tls_version", "1.2"},
	{"tls_1_3", "on"},
	{"always_use_https", "on"},
	{"automatic_https_rewrites", "on"},
	{"security_header", map[string]any{
		"strict_transport_security": map[string]any{
			"enabled":            true,
			"max_age":            31536000,
			"include_subdomains": true,
			"preload":            true,
			"nosniff":            true,
		},
	}},
}

// Operations assembles the ordered hardening operation set. The operations
// are independent of each other: every one evaluates its own precondition
// against remote state and reports its own outcome.
func Operations(provider Provider, opts Options) []Operation {
	checker := NewConflictChecker(provider)

	ops := []Operation{
		dnssecOperation(provider),
		placeholderOperation(provider, checker, opts),
	}

	for _, setting := range tlsSettings {
		ops = append(ops, settingOperation(provider, setting.id, setting.value))
	}

	return append(ops, spfOperation(provider, opts))
}

// dnssecOperation has no precondition: the PATCH is idempotent on the
// provider side, enabling DNSSEC on an already signed zone is a no-op.
func dnssecOperation(provider Provider) Operation {
	return Operation{
		ID: "dnssec",
		apply: func(ctx context.Context, zone Zone) (string, error) {
			if err := provider.SetDNSSEC(ctx, zone.ID, "active"); err != nil {
				return "", fmt.Errorf("failed to enable DNSSEC: %w", err)
			}

			return "DNSSEC enabled", nil
		},
	}
}

// placeholderOperation creates a placeholder AAAA record at the apex unless
// a conflicting record already sits there.
func placeholderOperation(provider Provider, checker *ConflictChecker, opts Options) Operation {
	return Operation{
		ID: "aaaa placeholder",
		precondition: func(ctx context.Context, zone Zone) (Decision, error) {
			conflict, err := checker.Conflict(ctx, zone.ID, apexName, opts.ApexConflictTypes)
			if err != nil {
				return Decision{}, fmt.Errorf("can't verify apex records: %w", err)
			}

			if !conflict.Found {
				return Decision{}, nil
			}

			if conflict.Type == dns.Type(dns.TypeCNAME) {
				return Decision{
					Skip:   true,
					Reason: "a CNAME record for the root domain already exists and blocks the AAAA placeholder",
				}, nil
			}

			return Decision{
				Skip:   true,
				Reason: fmt.Sprintf("an existing %s record was found at the apex", conflict.Type),
			}, nil
		},
		apply: func(ctx context.Context, zone Zone) (string, error) {
			record := cloudflare.Record{
				Type:    "AAAA",
				Name:    apexName,
				Content: opts.PlaceholderAddress,
				TTL:     opts.RecordTTL,
				Proxied: opts.ProxyPlaceholder,
			}

			if err := provider.CreateDNSRecord(ctx, zone.ID, record); err != nil {
				return "", fmt.Errorf("failed to create AAAA record: %w", err)
			}

			return fmt.Sprintf("AAAA record for %s with value %s created", apexName, opts.PlaceholderAddress), nil
		},
	}
}

// settingOperation patches one named zone setting. Settings PATCHes are
// idempotent, so there is no precondition.
func settingOperation(provider Provider, id string, value any) Operation {
	return Operation{
		ID: id,
		apply: func(ctx context.Context, zone Zone) (string, error) {
			if err := provider.PatchZoneSetting(ctx, zone.ID, id, value); err != nil {
				return "", fmt.Errorf("failed to update %s: %w", id, err)
			}

			return fmt.Sprintf("%s updated", id), nil
		},
	}
}

// spfOperation creates a hard-fail SPF policy, but never touches a zone
// that already carries one: a second SPF record or an unintended mutation
// would break mail authentication for domains that do send mail.
func spfOperation(provider Provider, opts Options) Operation {
	return Operation{
		ID: "spf",
		precondition: func(ctx context.Context, zone Zone) (Decision, error) {
			records, err := provider.DNSRecords(ctx, zone.ID, cloudflare.RecordFilter{Type: "TXT"})
			if err != nil {
				return Decision{}, fmt.Errorf("can't read TXT records: %w", err)
			}

			for _, record := range records {
				if strings.Contains(record.Content, spfVersionTag) {
					return Decision{
						Skip:   true,
						Reason: fmt.Sprintf("an SPF record already exists: %s", record.Content),
					}, nil
				}
			}

			return Decision{}, nil
		},
		apply: func(ctx context.Context, zone Zone) (string, error) {
			record := cloudflare.Record{
				Type:    "TXT",
				Name:    apexName,
				Content: opts.SPFPolicy,
				TTL:     opts.RecordTTL,
			}

			if err := provider.CreateDNSRecord(ctx, zone.ID, record); err != nil {
				return "", fmt.Errorf("failed to add SPF record: %w", err)
			}

			return "SPF record for no email added", nil
		},
	}
}
