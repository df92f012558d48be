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

package reporter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netgrid-labs/fleetwatch/pkg/central"
	"github.com/netgrid-labs/fleetwatch/pkg/collector"
	"github.com/netgrid-labs/fleetwatch/pkg/device"
	fwerrors "github.com/netgrid-labs/fleetwatch/pkg/errors"
	"github.com/netgrid-labs/fleetwatch/pkg/family"
)

// fakeSource serves a small but complete tenant snapshot.
type fakeSource struct {
	switchErr error
	details   map[string]string
	detailErr error
}

func (f *fakeSource) FirmwareDevices(_ context.Context, t family.Tag) ([]central.FirmwareDevice, error) {
	switch t {
	case family.SwitchAOS:
		if f.switchErr != nil {
			return nil, f.switchErr
		}
		return []central.FirmwareDevice{
			{Serial: "SW001", Hostname: "core-1", FirmwareVersion: "16.10.0016"},
			{Serial: "SW666", Hostname: "broken", FirmwareVersion: "not.a.version"},
		}, nil
	case family.SwitchCX:
		return []central.FirmwareDevice{
			{Serial: "SW002", Hostname: "agg-1", FirmwareVersion: "10.06.0010"},
		}, nil
	case family.AccessPoint:
		return []central.FirmwareDevice{
			{Serial: "AP001", SwarmID: "vc-1", FirmwareVersion: "8.10.0.4"},
		}, nil
	}
	return nil, nil
}

func (f *fakeSource) FirmwareSwarms(context.Context) ([]central.FirmwareSwarm, error) {
	return []central.FirmwareSwarm{
		{SwarmID: "vc-1", Name: "branch", FirmwareVersion: "8.10.0.4", APCount: 1},
	}, nil
}

func (f *fakeSource) FirmwareVersions(_ context.Context, t family.Tag) ([]device.Candidate, error) {
	switch t {
	case family.SwitchAOS:
		return []device.Candidate{{Version: "16.10.0024"}, {Version: "16.11.0001"}}, nil
	case family.SwitchCX:
		return []device.Candidate{{Version: "10.06.0020"}}, nil
	case family.AccessPoint:
		return []device.Candidate{{Version: "8.10.0.9"}}, nil
	case family.Gateway:
		return []device.Candidate{
			{Version: "8.6.0.9-2.2.0.8", Role: family.RoleController},
			{Version: "8.6.0.9-2.2.0.9", Role: "other"},
		}, nil
	}
	return nil, nil
}

func (f *fakeSource) Switches(context.Context) ([]central.MonitoredSwitch, error) {
	return []central.MonitoredSwitch{
		{Serial: "SW001", StackID: "stk-1"},
		{Serial: "SW002"},
	}, nil
}

func (f *fakeSource) Gateways(context.Context) ([]central.MonitoredGateway, error) {
	return []central.MonitoredGateway{
		{Serial: "GW001", Name: "edge-1", FirmwareVersion: "8.6.0.4-2.2.0.3"},
	}, nil
}

func (f *fakeSource) GatewayDetail(_ context.Context, serial string) (string, error) {
	if f.detailErr != nil {
		return "", f.detailErr
	}
	return f.details[serial], nil
}

func (f *fakeSource) Inventory(context.Context) ([]central.InventoryDevice, error) {
	return []central.InventoryDevice{
		{Serial: "SW001", Model: "2930F", DeviceType: "SWITCH"},
	}, nil
}

func newReporter(t *testing.T, src collector.Source) *Reporter {
	t.Helper()
	factory, err := collector.NewFactory(src)
	require.NoError(t, err)

	r, err := New(factory, WithVersion("test"), WithTenant("acme"))
	require.NoError(t, err)
	return r
}

func TestNewRequiresFactory(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	r := newReporter(t, &fakeSource{
		details: map[string]string{"GW001": "8.10.0.6-2.3.0.6"},
	})

	report, err := r.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, device.KindReport, report.Kind)
	assert.Equal(t, "acme", report.Metadata["tenant"])

	// switch rows resolved to branch maxima; cross-branch 16.11 ignored
	require.Len(t, report.SwitchFirmware, 2)
	assert.Equal(t, "16.10.0024", report.SwitchFirmware[0].FirmwareMax)
	assert.Equal(t, "10.06.0020", report.SwitchFirmware[1].FirmwareMax)

	// one VC row plus one AP row, both resolved
	require.Len(t, report.SwarmFirmware, 2)
	assert.Equal(t, device.EntryVC, report.SwarmFirmware[0].EntryType)
	assert.Equal(t, "8.10.0.9", report.SwarmFirmware[0].FirmwareMax)
	assert.Equal(t, device.EntryAP, report.SwarmFirmware[1].EntryType)

	// gateway resolved against controller-class candidates only, with the
	// per-serial recommended version attached
	require.Len(t, report.Gateways, 1)
	assert.Equal(t, "8.6.0.9-2.2.0.8", report.Gateways[0].FirmwareMax)
	assert.Equal(t, "8.10.0.6-2.3.0.6", report.Gateways[0].Recommended)
	assert.Equal(t, "edge-1", report.Gateways[0].Hostname)

	// consolidated = switches + VC rows, never member APs
	require.Len(t, report.Consolidated, 3)
	for _, row := range report.Consolidated {
		assert.NotEqual(t, device.EntryAP, row.EntryType)
	}

	// the malformed switch is isolated into failures
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "SW666", report.Failures[0].Serial)
	assert.Equal(t, fwerrors.ErrCodeMalformedVersion, report.Failures[0].Code)

	assert.Len(t, report.Inventory, 1)
	require.Len(t, report.SwitchStacks, 2)
	assert.Equal(t, device.StackMember, report.SwitchStacks[0].StackStatus)
}

func TestBuildLookupFailureIsAbsence(t *testing.T) {
	r := newReporter(t, &fakeSource{detailErr: errors.New("gateway detail down")})

	report, err := r.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Gateways, 1)
	assert.Empty(t, report.Gateways[0].Recommended)
	assert.Equal(t, "8.6.0.9-2.2.0.8", report.Gateways[0].FirmwareMax)
}

func TestBuildCollectionErrorAborts(t *testing.T) {
	r := newReporter(t, &fakeSource{switchErr: errors.New("api down")})

	_, err := r.Build(context.Background())
	assert.Error(t, err)
}
