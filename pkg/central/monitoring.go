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
	"fmt"
	"strconv"

	"github.com/netgrid-labs/fleetwatch/pkg/defaults"
)

// MonitoredSwitch is one row of the switch monitoring listing.
type MonitoredSwitch struct {
	Serial          string `json:"serial"`
	MACAddress      string `json:"macaddr"`
	Name            string `json:"name"`
	IPAddress       string `json:"ip_address"`
	Model           string `json:"model"`
	FirmwareVersion string `json:"firmware_version"`
	Status          string `json:"status"`
	GroupName       string `json:"group_name"`
	Site            string `json:"site"`
	SwitchType      string `json:"switch_type"`
	StackID         string `json:"stack_id"`
	StackRole       string `json:"stack_role"`
	StackMemberID   int    `json:"stack_member_id"`
	Usage           int64  `json:"usage"`
	UplinkPorts     int    `json:"uplink_ports"`
}

type switchesResponse struct {
	Switches []MonitoredSwitch `json:"switches"`
	Total    int               `json:"total"`
	Count    int               `json:"count"`
}

// Switches lists all monitored switches across pages.
func (c *Client) Switches(ctx context.Context) ([]MonitoredSwitch, error) {
	var all []MonitoredSwitch
	offset := 0
	for {
		var page switchesResponse
		_, err := c.get(ctx, "/monitoring/v1/switches", map[string]string{
			"limit":  strconv.Itoa(defaults.PageLimit),
			"offset": strconv.Itoa(offset),
		}, &page)
		if err != nil {
			return nil, fmt.Errorf("listing switches: %w", err)
		}
		all = append(all, page.Switches...)
		if len(page.Switches) < defaults.PageLimit {
			return all, nil
		}
		offset += len(page.Switches)
	}
}

// MonitoredGateway is one row of the gateway monitoring listing.
type MonitoredGateway struct {
	Serial          string   `json:"serial"`
	MACAddress      string   `json:"macaddr"`
	Name            string   `json:"name"`
	IPAddress       string   `json:"ip_address"`
	Model           string   `json:"model"`
	FirmwareVersion string   `json:"firmware_version"`
	FirmwareBackup  string   `json:"firmware_backup_version"`
	Status          string   `json:"status"`
	Mode            string   `json:"mode"`
	GroupName       string   `json:"group_name"`
	Site            string   `json:"site"`
	Role            string   `json:"role"`
	Uptime          int64    `json:"uptime"`
	RebootReason    string   `json:"reboot_reason"`
	CPUUtilization  int      `json:"cpu_utilization"`
	MemTotal        int64    `json:"mem_total"`
	MemFree         int64    `json:"mem_free"`
	Labels          []string `json:"labels"`
}

type gatewaysResponse struct {
	Gateways []MonitoredGateway `json:"gateways"`
	Total    int                `json:"total"`
}

// Gateways lists all monitored gateways across pages.
func (c *Client) Gateways(ctx context.Context) ([]MonitoredGateway, error) {
	var all []MonitoredGateway
	offset := 0
	for {
		var page gatewaysResponse
		_, err := c.get(ctx, "/monitoring/v1/gateways", map[string]string{
			"limit":  strconv.Itoa(defaults.PageLimit),
			"offset": strconv.Itoa(offset),
		}, &page)
		if err != nil {
			return nil, fmt.Errorf("listing gateways: %w", err)
		}
		all = append(all, page.Gateways...)
		if len(page.Gateways) < defaults.PageLimit {
			return all, nil
		}
		offset += len(page.Gateways)
	}
}

type gatewayDetailResponse struct {
	Serial             string `json:"serial"`
	RecommendedVersion string `json:"recommended_version"`
}

// GatewayDetail returns the recommended firmware version for a single
// gateway. An unknown serial returns empty without error.
func (c *Client) GatewayDetail(ctx context.Context, serial string) (string, error) {
	if serial == "" {
		return "", fmt.Errorf("serial is required")
	}

	var detail gatewayDetailResponse
	found, err := c.get(ctx, "/monitoring/v1/gateways/"+serial, nil, &detail)
	if err != nil {
		return "", fmt.Errorf("gateway detail for %s: %w", serial, err)
	}
	if !found {
		return "", nil
	}
	return detail.RecommendedVersion, nil
}
