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

package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/netgrid-labs/fleetwatch/pkg/central"
	"github.com/netgrid-labs/fleetwatch/pkg/device"
	"github.com/netgrid-labs/fleetwatch/pkg/family"
)

// Source is the slice of the management API the collectors consume.
// *central.Client satisfies it.
type Source interface {
	FirmwareDevices(ctx context.Context, deviceType family.Tag) ([]central.FirmwareDevice, error)
	FirmwareSwarms(ctx context.Context) ([]central.FirmwareSwarm, error)
	FirmwareVersions(ctx context.Context, deviceType family.Tag) ([]device.Candidate, error)
	Switches(ctx context.Context) ([]central.MonitoredSwitch, error)
	Gateways(ctx context.Context) ([]central.MonitoredGateway, error)
	GatewayDetail(ctx context.Context, serial string) (string, error)
	Inventory(ctx context.Context) ([]central.InventoryDevice, error)
}

// Factory builds the per-source collectors used by a report run.
type Factory struct {
	src Source
}

// NewFactory creates a collector factory over the given source.
func NewFactory(src Source) (*Factory, error) {
	if src == nil {
		return nil, fmt.Errorf("source is required")
	}
	return &Factory{src: src}, nil
}

// switchFamilies are the device types queried for switch firmware status.
var switchFamilies = []family.Tag{family.SwitchAOS, family.SwitchCX}

// SwitchFirmware collects firmware status for both switch families.
func (f *Factory) SwitchFirmware(ctx context.Context) ([]device.DeviceRecord, error) {
	var records []device.DeviceRecord
	for _, tag := range switchFamilies {
		rows, err := f.src.FirmwareDevices(ctx, tag)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			records = append(records, device.DeviceRecord{
				Serial:          row.Serial,
				MACAddress:      row.MACAddress,
				Hostname:        row.Hostname,
				Model:           row.Model,
				Family:          tag,
				FirmwareVersion: row.FirmwareVersion,
				Recommended:     row.RecommendedVersion,
				StatusState:     row.UpgradeStatus,
				StatusReason:    row.Reason,
				RebootEnabled:   row.RebootEnabled,
				UpgradeRequired: row.UpgradeRequired,
				IsStack:         row.IsStack,
			})
		}
	}
	return records, nil
}

// SwarmFirmware collects swarm firmware status: one virtual controller row
// per swarm followed by one row per member access point.
func (f *Factory) SwarmFirmware(ctx context.Context) ([]device.DeviceRecord, error) {
	swarms, err := f.src.FirmwareSwarms(ctx)
	if err != nil {
		return nil, err
	}
	aps, err := f.src.FirmwareDevices(ctx, family.AccessPoint)
	if err != nil {
		return nil, err
	}

	members := make(map[string][]central.FirmwareDevice)
	for _, ap := range aps {
		members[ap.SwarmID] = append(members[ap.SwarmID], ap)
	}

	var records []device.DeviceRecord
	for _, swarm := range swarms {
		// the swarm listing carries no hardware identity; borrow it from
		// the first member access point
		var mac, model string
		if aps := members[swarm.SwarmID]; len(aps) > 0 {
			mac = aps[0].MACAddress
			model = aps[0].Model
		}
		records = append(records, device.DeviceRecord{
			Serial:              swarm.SwarmID,
			MACAddress:          mac,
			Model:               model,
			Hostname:            swarm.Name,
			Family:              family.AccessPoint,
			FirmwareVersion:     swarm.FirmwareVersion,
			StatusState:         swarm.UpgradeStatus,
			EntryType:           device.EntryVC,
			VCName:              swarm.Name,
			VCID:                swarm.SwarmID,
			MemberCount:         swarm.APCount,
			FirmwareScheduledAt: formatScheduledAt(swarm.ScheduledAt),
		})
		for _, ap := range members[swarm.SwarmID] {
			records = append(records, device.DeviceRecord{
				Serial:          ap.Serial,
				MACAddress:      ap.MACAddress,
				Hostname:        ap.Hostname,
				Model:           ap.Model,
				Family:          family.AccessPoint,
				FirmwareVersion: ap.FirmwareVersion,
				Recommended:     ap.RecommendedVersion,
				StatusState:     ap.UpgradeStatus,
				StatusReason:    ap.Reason,
				EntryType:       device.EntryAP,
				VCName:          swarm.Name,
				VCID:            swarm.SwarmID,
			})
		}
	}
	return records, nil
}

func formatScheduledAt(epoch int64) string {
	if epoch <= 0 {
		return ""
	}
	return time.Unix(epoch, 0).UTC().Format(time.RFC3339)
}

// Gateways collects the monitored gateway records.
func (f *Factory) Gateways(ctx context.Context) ([]device.GatewayRecord, error) {
	rows, err := f.src.Gateways(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]device.GatewayRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, device.GatewayRecord{
			DeviceRecord: device.DeviceRecord{
				Serial:          row.Serial,
				MACAddress:      row.MACAddress,
				Hostname:        row.Name,
				Model:           row.Model,
				Family:          family.Gateway,
				FirmwareVersion: row.FirmwareVersion,
			},
			IPAddress:             row.IPAddress,
			Status:                row.Status,
			Mode:                  row.Mode,
			GroupName:             row.GroupName,
			Site:                  row.Site,
			FirmwareBackupVersion: row.FirmwareBackup,
			CPUUtilization:        row.CPUUtilization,
			MemTotal:              row.MemTotal,
			MemFree:               row.MemFree,
			Uptime:                row.Uptime,
			RebootReason:          row.RebootReason,
			Role:                  row.Role,
			Labels:                row.Labels,
		})
	}
	return records, nil
}

// Stacks collects the switch listing with stack membership derived from
// the stack identifier.
func (f *Factory) Stacks(ctx context.Context) ([]device.StackRecord, error) {
	rows, err := f.src.Switches(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]device.StackRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, device.StackRecord{
			Serial:        row.Serial,
			MACAddress:    row.MACAddress,
			Name:          row.Name,
			IPAddress:     row.IPAddress,
			Model:         row.Model,
			Status:        row.Status,
			GroupName:     row.GroupName,
			Site:          row.Site,
			StackStatus:   stackStatus(row.StackID),
			StackID:       row.StackID,
			StackRole:     row.StackRole,
			StackMemberID: row.StackMemberID,
		})
	}
	return records, nil
}

// stackStatus maps a stack identifier to membership. The listing reports
// "0" for some standalone switches instead of omitting the field.
func stackStatus(stackID string) string {
	if stackID == "" || stackID == "0" {
		return device.Standalone
	}
	return device.StackMember
}

// Inventory collects the platform device inventory.
func (f *Factory) Inventory(ctx context.Context) ([]device.InventoryRecord, error) {
	rows, err := f.src.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]device.InventoryRecord, 0, len(rows))
	for _, row := range rows {
		part := row.PartNumber
		if part == "" {
			part = row.Aruba
		}
		records = append(records, device.InventoryRecord{
			Serial:     row.Serial,
			MACAddress: row.MACAddress,
			Model:      row.Model,
			DeviceType: row.DeviceType,
			PartNumber: part,
		})
	}
	return records, nil
}

// Catalog collects the available-firmware candidates for every supported
// family.
func (f *Factory) Catalog(ctx context.Context) (device.CandidateCatalog, error) {
	catalog := make(device.CandidateCatalog)
	for _, tag := range family.Tags() {
		candidates, err := f.src.FirmwareVersions(ctx, tag)
		if err != nil {
			return nil, fmt.Errorf("catalog for %s: %w", tag, err)
		}
		catalog[tag] = candidates
	}
	return catalog, nil
}

// RecommendedLookup returns a per-serial recommended version lookup bound
// to the source, for injection into the resolver.
func (f *Factory) RecommendedLookup() func(ctx context.Context, serial string) (string, error) {
	return func(ctx context.Context, serial string) (string, error) {
		return f.src.GatewayDetail(ctx, serial)
	}
}
