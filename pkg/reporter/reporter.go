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

// Package reporter orchestrates a full report run: parallel collection of
// every data source, firmware resolution per dataset, and consolidation
// into the report envelope.
package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/netgrid-labs/fleetwatch/pkg/collector"
	"github.com/netgrid-labs/fleetwatch/pkg/device"
	"github.com/netgrid-labs/fleetwatch/pkg/resolver"
)

// Reporter builds consolidated firmware reports.
type Reporter struct {
	factory *collector.Factory
	version string
	tenant  string
}

// Option is a functional option for configuring the Reporter
type Option func(*Reporter)

// WithVersion stamps the tool version into report metadata.
func WithVersion(v string) Option {
	return func(r *Reporter) {
		r.version = v
	}
}

// WithTenant stamps the tenant name into report metadata.
func WithTenant(name string) Option {
	return func(r *Reporter) {
		r.tenant = name
	}
}

// New creates a Reporter over the given collector factory.
func New(factory *collector.Factory, opts ...Option) (*Reporter, error) {
	if factory == nil {
		return nil, fmt.Errorf("collector factory is required")
	}

	r := &Reporter{factory: factory}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Build runs one full collection and resolution pass and returns the
// report. Per-device resolution failures are recorded in the report, not
// returned as errors; only source-level collection failures abort the run.
func (r *Reporter) Build(ctx context.Context) (*device.Report, error) {
	start := time.Now()
	defer func() {
		buildDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		switchFW  []device.DeviceRecord
		swarmFW   []device.DeviceRecord
		gateways  []device.GatewayRecord
		stacks    []device.StackRecord
		inventory []device.InventoryRecord
		catalog   device.CandidateCatalog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		switchFW, err = r.factory.SwitchFirmware(gctx)
		return
	})
	g.Go(func() (err error) {
		swarmFW, err = r.factory.SwarmFirmware(gctx)
		return
	})
	g.Go(func() (err error) {
		gateways, err = r.factory.Gateways(gctx)
		return
	})
	g.Go(func() (err error) {
		stacks, err = r.factory.Stacks(gctx)
		return
	})
	g.Go(func() (err error) {
		inventory, err = r.factory.Inventory(gctx)
		return
	})
	g.Go(func() (err error) {
		catalog, err = r.factory.Catalog(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collecting report data: %w", err)
	}

	res := resolver.New(
		resolver.WithRecommendedLookup(r.factory.RecommendedLookup()),
	)

	report := device.NewReport(r.version, r.tenant)
	report.Inventory = inventory
	report.SwitchStacks = stacks

	var failures []device.Failure

	report.SwitchFirmware, failures = r.resolveInto(ctx, res, switchFW, catalog, failures)
	report.SwarmFirmware, failures = r.resolveInto(ctx, res, swarmFW, catalog, failures)
	report.Gateways, failures = r.resolveGateways(ctx, res, gateways, catalog, failures)
	report.Failures = failures

	report.Consolidated = consolidate(report.SwitchFirmware, report.SwarmFirmware)

	slog.Info("report built",
		slog.Int("consolidated", len(report.Consolidated)),
		slog.Int("switches", len(report.SwitchFirmware)),
		slog.Int("swarmRows", len(report.SwarmFirmware)),
		slog.Int("gateways", len(report.Gateways)),
		slog.Int("failures", len(report.Failures)),
		slog.Duration("elapsed", time.Since(start)),
	)
	for name, size := range map[string]int{
		"consolidated":    len(report.Consolidated),
		"inventory":       len(report.Inventory),
		"switch_stacks":   len(report.SwitchStacks),
		"gateways":        len(report.Gateways),
		"switch_firmware": len(report.SwitchFirmware),
		"swarm_firmware":  len(report.SwarmFirmware),
		"failures":        len(report.Failures),
	} {
		datasetSize.WithLabelValues(name).Set(float64(size))
	}

	return report, nil
}

func (r *Reporter) resolveInto(ctx context.Context, res *resolver.Resolver, records []device.DeviceRecord, catalog device.CandidateCatalog, failures []device.Failure) ([]device.DeviceRecord, []device.Failure) {
	resolved, failed := res.ResolveAll(ctx, records, catalog)
	return resolved, append(failures, failed...)
}

// resolveGateways resolves the embedded device portion of each gateway and
// writes the outcome back into the full gateway record.
func (r *Reporter) resolveGateways(ctx context.Context, res *resolver.Resolver, gateways []device.GatewayRecord, catalog device.CandidateCatalog, failures []device.Failure) ([]device.GatewayRecord, []device.Failure) {
	devices := make([]device.DeviceRecord, 0, len(gateways))
	bySerial := make(map[string]device.GatewayRecord, len(gateways))
	for _, gw := range gateways {
		devices = append(devices, gw.DeviceRecord)
		bySerial[gw.Serial] = gw
	}

	resolved, failed := res.ResolveAll(ctx, devices, catalog)

	out := make([]device.GatewayRecord, 0, len(resolved))
	for _, d := range resolved {
		gw := bySerial[d.Serial]
		gw.DeviceRecord = d
		out = append(out, gw)
	}
	return out, append(failures, failed...)
}

// consolidate builds the headline dataset: switch rows plus the virtual
// controller rows of the swarm listing. Member access points are reported
// on the swarm sheet only.
func consolidate(switches, swarmRows []device.DeviceRecord) []device.DeviceRecord {
	out := make([]device.DeviceRecord, 0, len(switches))
	out = append(out, switches...)
	for _, row := range swarmRows {
		if row.EntryType == device.EntryVC {
			out = append(out, row)
		}
	}
	return out
}
