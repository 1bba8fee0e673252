package harden

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/miekg/dns"

	"github.com/zonesec/zonesec/cloudflare"
)

// RecordReader is the single control plane call the checker needs.
type RecordReader interface {
	DNSRecords(ctx context.Context, zoneID string, filter cloudflare.RecordFilter) ([]cloudflare.Record, error)
}

// ConflictChecker probes a zone for records that would collide with a
// record the tool wants to create.
type ConflictChecker struct {
	records RecordReader
}

func NewConflictChecker(records RecordReader) *ConflictChecker {
	return &ConflictChecker{records: records}
}

// Conflict is the first record type found at the probed name.
type Conflict struct {
	Found bool
	Type  dns.Type
}

// Conflict probes the candidate types in the given priority order and
// short-circuits on the first type with at least one record: the first
// conflicting type determines the block reason. A failing probe does not
// stop the remaining probes; the collected probe failures only surface when
// no conflict was found, because a "no conflict" answer would then rest on
// incomplete information.
func (c *ConflictChecker) Conflict(ctx context.Context, zoneID, name string, types []dns.Type) (Conflict, error) {
	var probeErrs *multierror.Error

	for _, t := range types {
		records, err := c.records.DNSRecords(ctx, zoneID, cloudflare.RecordFilter{Type: t.String(), Name: name})
		if err != nil {
			probeErrs = multierror.Append(probeErrs, fmt.Errorf("%s: %w", t, err))

			continue
		}

		if len(records) > 0 {
			return Conflict{Found: true, Type: t}, nil
		}
	}

	return Conflict{}, probeErrs.ErrorOrNil()
}
