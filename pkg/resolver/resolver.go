package resolver

import (
	"context"
	"log/slog"
	"time"

	"github.com/netgrid-labs/fleetwatch/pkg/device"
	"github.com/netgrid-labs/fleetwatch/pkg/errors"
	"github.com/netgrid-labs/fleetwatch/pkg/family"
)

// RecommendedLookup fetches the vendor-recommended firmware version for a
// serial. An empty string means the source exposes none for this device.
type RecommendedLookup func(ctx context.Context, serial string) (string, error)

// Resolver maps device records to their maximum available firmware version.
type Resolver struct {
	rules  map[family.Tag]family.Rule
	lookup RecommendedLookup
}

// Option is a functional option for configuring the Resolver
type Option func(*Resolver)

// WithRecommendedLookup injects the per-serial recommended version lookup
// used for the gateway family.
func WithRecommendedLookup(lookup RecommendedLookup) Option {
	return func(r *Resolver) {
		r.lookup = lookup
	}
}

// WithRules overrides the built-in family rule table. Intended for tests.
func WithRules(rules map[family.Tag]family.Rule) Option {
	return func(r *Resolver) {
		r.rules = rules
	}
}

// New creates a new Resolver with the provided options.
func New(opts ...Option) *Resolver {
	r := &Resolver{}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ruleFor returns the resolution rule for a family, honoring any override.
func (r *Resolver) ruleFor(t family.Tag) (family.Rule, bool) {
	if r.rules != nil {
		rule, ok := r.rules[t]
		return rule, ok
	}
	return family.RuleFor(t)
}

// ResolveAll resolves the maximum available firmware version for every
// device in the batch. Input records are never mutated; resolved output
// carries copies with FirmwareMax (and, for gateways, Recommended) set.
//
// A per-device failure is isolated: the device is emitted into the failures
// list with its error code and the rest of the batch continues unaffected.
// Running ResolveAll twice over identical snapshots yields identical output.
func (r *Resolver) ResolveAll(ctx context.Context, devices []device.DeviceRecord, catalog device.CandidateCatalog) ([]device.DeviceRecord, []device.Failure) {
	start := time.Now()
	defer func() {
		resolveDuration.Observe(time.Since(start).Seconds())
	}()

	resolved := make([]device.DeviceRecord, 0, len(devices))
	var failures []device.Failure

	for _, d := range devices {
		out := d

		// Determine family from the explicit tag, falling back to model
		// matching for switch rows that arrive untagged.
		if out.Family == "" {
			if tag, ok := family.FromModel(out.Model); ok {
				out.Family = tag
			}
		}

		rule, ok := r.ruleFor(out.Family)
		if !ok {
			failures = append(failures, failureFor(out, errors.ErrCodeUnknownFamily,
				"no resolution rule configured for family "+out.Family.String()))
			resolveDevicesTotal.WithLabelValues(out.Family.String(), "failed").Inc()
			continue
		}

		max, err := SelectMax(out.FirmwareVersion, catalog[out.Family], rule)
		if err != nil {
			failures = append(failures, failureFor(out, errors.ErrCodeMalformedVersion, err.Error()))
			resolveDevicesTotal.WithLabelValues(out.Family.String(), "failed").Inc()
			continue
		}
		out.FirmwareMax = max

		if rule.Compound && r.lookup != nil {
			out.Recommended = r.recommended(ctx, out.Serial)
		}

		resolved = append(resolved, out)
		resolveDevicesTotal.WithLabelValues(out.Family.String(), "resolved").Inc()
	}

	return resolved, failures
}

// recommended runs the injected lookup, degrading every failure to an
// absent value. Lookup problems must never surface as resolution failures.
func (r *Resolver) recommended(ctx context.Context, serial string) string {
	rec, err := r.lookup(ctx, serial)
	if err != nil {
		slog.Warn("recommended version lookup failed",
			slog.String("serial", serial),
			slog.Any("error", err),
		)
		recommendedLookupTotal.WithLabelValues("error").Inc()
		return ""
	}
	if rec == "" {
		recommendedLookupTotal.WithLabelValues("absent").Inc()
		return ""
	}
	recommendedLookupTotal.WithLabelValues("success").Inc()
	return rec
}

func failureFor(d device.DeviceRecord, code errors.ErrorCode, reason string) device.Failure {
	return device.Failure{
		Serial:   d.Serial,
		Hostname: d.Hostname,
		Model:    d.Model,
		Family:   d.Family,
		Code:     code,
		Reason:   reason,
	}
}
