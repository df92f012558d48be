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

package central

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/netgrid-labs/fleetwatch/pkg/defaults"
	"github.com/netgrid-labs/fleetwatch/pkg/device"
	"github.com/netgrid-labs/fleetwatch/pkg/family"
)

// FirmwareDevice is one row of the firmware status listing.
type FirmwareDevice struct {
	Serial             string `json:"serial"`
	MACAddress         string `json:"mac"`
	Hostname           string `json:"hostname"`
	Model              string `json:"model"`
	FirmwareVersion    string `json:"firmware_version"`
	RecommendedVersion string `json:"recommended"`
	UpgradeStatus      string `json:"status"`
	Reason             string `json:"reason"`
	DeviceType         string `json:"device_type"`
	SwarmID            string `json:"swarm_id"`
	RebootEnabled      bool   `json:"reboot"`
	UpgradeRequired    bool   `json:"firmware_upgrade_required"`
	IsStack            bool   `json:"is_stack"`
}

type firmwareDevicesResponse struct {
	Devices []FirmwareDevice `json:"devices"`
	Total   int              `json:"total"`
}

// FirmwareDevices lists firmware status per device for one device type.
func (c *Client) FirmwareDevices(ctx context.Context, deviceType family.Tag) ([]FirmwareDevice, error) {
	var all []FirmwareDevice
	offset := 0
	for {
		var page firmwareDevicesResponse
		_, err := c.get(ctx, "/firmware/v1/devices", map[string]string{
			"device_type": string(deviceType),
			"limit":       strconv.Itoa(defaults.FirmwareDeviceLimit),
			"offset":      strconv.Itoa(offset),
		}, &page)
		if err != nil {
			return nil, fmt.Errorf("listing firmware devices for %s: %w", deviceType, err)
		}
		all = append(all, page.Devices...)
		if len(page.Devices) < defaults.FirmwareDeviceLimit {
			return all, nil
		}
		offset += len(page.Devices)
	}
}

// FirmwareSwarm is one virtual controller row of the swarm firmware listing.
type FirmwareSwarm struct {
	SwarmID         string `json:"swarm_id"`
	Name            string `json:"name"`
	FirmwareVersion string `json:"firmware_version"`
	UpgradeStatus   string `json:"status"`
	APCount         int    `json:"ap_count"`
	ScheduledAt     int64  `json:"firmware_scheduled_at"`
}

type firmwareSwarmsResponse struct {
	Swarms []FirmwareSwarm `json:"swarms"`
	Total  int             `json:"total"`
}

// FirmwareSwarms lists firmware status per access point swarm.
func (c *Client) FirmwareSwarms(ctx context.Context) ([]FirmwareSwarm, error) {
	var all []FirmwareSwarm
	offset := 0
	for {
		var page firmwareSwarmsResponse
		_, err := c.get(ctx, "/firmware/v1/swarms", map[string]string{
			"limit":  strconv.Itoa(defaults.FirmwareDeviceLimit),
			"offset": strconv.Itoa(offset),
		}, &page)
		if err != nil {
			return nil, fmt.Errorf("listing firmware swarms: %w", err)
		}
		all = append(all, page.Swarms...)
		if len(page.Swarms) < defaults.FirmwareDeviceLimit {
			return all, nil
		}
		offset += len(page.Swarms)
	}
}

// versionEntry tolerates both shapes the catalog endpoint returns: a bare
// version string, or an object carrying the version and an optional class.
type versionEntry struct {
	Version string
	Class   string
}

func (v *versionEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Version = s
		return nil
	}

	var obj struct {
		FirmwareVersion string `json:"firmware_version"`
		Version         string `json:"version"`
		Class           string `json:"class"`
		Role            string `json:"role"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	v.Version = obj.FirmwareVersion
	if v.Version == "" {
		v.Version = obj.Version
	}
	v.Class = obj.Class
	if v.Class == "" {
		v.Class = obj.Role
	}
	return nil
}

type firmwareVersionsResponse struct {
	Data     []versionEntry `json:"data"`
	Versions []versionEntry `json:"versions"`
}

func (r *firmwareVersionsResponse) entries() []versionEntry {
	if len(r.Data) > 0 {
		return r.Data
	}
	return r.Versions
}

// FirmwareVersions lists the available firmware candidates for a device
// type. Duplicates are removed preserving first-seen order; entries with
// no class are attributed to the queried device type.
func (c *Client) FirmwareVersions(ctx context.Context, deviceType family.Tag) ([]device.Candidate, error) {
	var resp firmwareVersionsResponse
	_, err := c.get(ctx, "/firmware/v1/versions", map[string]string{
		"device_type": string(deviceType),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("listing firmware versions for %s: %w", deviceType, err)
	}

	seen := make(map[string]bool)
	var candidates []device.Candidate
	for _, entry := range resp.entries() {
		if entry.Version == "" || seen[entry.Version] {
			continue
		}
		seen[entry.Version] = true
		role := strings.ToLower(entry.Class)
		if role == "" {
			role = strings.ToLower(string(deviceType))
		}
		candidates = append(candidates, device.Candidate{
			Version: entry.Version,
			Role:    role,
		})
	}
	return candidates, nil
}
