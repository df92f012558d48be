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

// Package device defines the record types flowing through collection,
// resolution and reporting: device snapshots, firmware candidate catalogs,
// per-device failures and the report envelope.
package device

import (
	"github.com/netgrid-labs/fleetwatch/pkg/errors"
	"github.com/netgrid-labs/fleetwatch/pkg/family"
)

// Entry types for swarm firmware rows.
const (
	EntryVC = "VC"
	EntryAP = "AP"
)

// DeviceRecord is a point-in-time snapshot of one managed device, as
// delivered by the management API. Resolution never mutates the snapshot
// fields; it emits a copy with FirmwareMax (and for gateways Recommended)
// populated.
type DeviceRecord struct {
	Serial     string     `json:"serial" yaml:"serial"`
	MACAddress string     `json:"macAddress,omitempty" yaml:"macAddress,omitempty"`
	Hostname   string     `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Model      string     `json:"model,omitempty" yaml:"model,omitempty"`
	Family     family.Tag `json:"family,omitempty" yaml:"family,omitempty"`

	// FirmwareVersion is the raw current version string as received from
	// the source. Immutable once read.
	FirmwareVersion string `json:"firmwareVersion,omitempty" yaml:"firmwareVersion,omitempty"`

	// FirmwareMax is the highest version available within the device's
	// upgrade branch. Empty means no candidate matched.
	FirmwareMax string `json:"firmwareMax,omitempty" yaml:"firmwareMax,omitempty"`

	// Recommended is the vendor-recommended version, when the API exposes
	// one (always via per-serial lookup for gateways).
	Recommended string `json:"recommended,omitempty" yaml:"recommended,omitempty"`

	DeviceStatus    string `json:"deviceStatus,omitempty" yaml:"deviceStatus,omitempty"`
	RebootEnabled   bool   `json:"rebootEnabled,omitempty" yaml:"rebootEnabled,omitempty"`
	UpgradeRequired bool   `json:"upgradeRequired,omitempty" yaml:"upgradeRequired,omitempty"`
	IsStack         bool   `json:"isStack,omitempty" yaml:"isStack,omitempty"`
	StatusState     string `json:"statusState,omitempty" yaml:"statusState,omitempty"`
	StatusReason    string `json:"statusReason,omitempty" yaml:"statusReason,omitempty"`

	// Swarm context, set on access-point rows only.
	EntryType           string `json:"entryType,omitempty" yaml:"entryType,omitempty"`
	VCName              string `json:"vcName,omitempty" yaml:"vcName,omitempty"`
	VCID                string `json:"vcID,omitempty" yaml:"vcID,omitempty"`
	MemberCount         int    `json:"memberCount,omitempty" yaml:"memberCount,omitempty"`
	FirmwareScheduledAt string `json:"firmwareScheduledAt,omitempty" yaml:"firmwareScheduledAt,omitempty"`
}

// GatewayRecord is a gateway device with its monitoring attributes.
type GatewayRecord struct {
	DeviceRecord `yaml:",inline"`

	IPAddress             string   `json:"ipAddress,omitempty" yaml:"ipAddress,omitempty"`
	DeviceType            string   `json:"deviceType,omitempty" yaml:"deviceType,omitempty"`
	Status                string   `json:"status,omitempty" yaml:"status,omitempty"`
	Mode                  string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	GroupName             string   `json:"groupName,omitempty" yaml:"groupName,omitempty"`
	Site                  string   `json:"site,omitempty" yaml:"site,omitempty"`
	FirmwareBackupVersion string   `json:"firmwareBackupVersion,omitempty" yaml:"firmwareBackupVersion,omitempty"`
	CPUUtilization        int      `json:"cpuUtilization,omitempty" yaml:"cpuUtilization,omitempty"`
	MemTotal              int64    `json:"memTotal,omitempty" yaml:"memTotal,omitempty"`
	MemFree               int64    `json:"memFree,omitempty" yaml:"memFree,omitempty"`
	Uptime                int64    `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	RebootReason          string   `json:"rebootReason,omitempty" yaml:"rebootReason,omitempty"`
	Role                  string   `json:"role,omitempty" yaml:"role,omitempty"`
	Labels                []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Stack membership values for StackRecord.
const (
	StackMember = "Stack"
	Standalone  = "Standalone"
)

// StackRecord is a switch listing row with stack membership detail.
type StackRecord struct {
	Serial        string `json:"serial" yaml:"serial"`
	MACAddress    string `json:"macAddress,omitempty" yaml:"macAddress,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	IPAddress     string `json:"ipAddress,omitempty" yaml:"ipAddress,omitempty"`
	Model         string `json:"model,omitempty" yaml:"model,omitempty"`
	Status        string `json:"status,omitempty" yaml:"status,omitempty"`
	GroupName     string `json:"groupName,omitempty" yaml:"groupName,omitempty"`
	Site          string `json:"site,omitempty" yaml:"site,omitempty"`
	StackStatus   string `json:"stackStatus,omitempty" yaml:"stackStatus,omitempty"`
	StackID       string `json:"stackID,omitempty" yaml:"stackID,omitempty"`
	StackRole     string `json:"stackRole,omitempty" yaml:"stackRole,omitempty"`
	StackMemberID int    `json:"stackMemberID,omitempty" yaml:"stackMemberID,omitempty"`
}

// InventoryRecord is one row of the platform device inventory.
type InventoryRecord struct {
	Serial     string `json:"serial" yaml:"serial"`
	MACAddress string `json:"macAddress,omitempty" yaml:"macAddress,omitempty"`
	Model      string `json:"model,omitempty" yaml:"model,omitempty"`
	DeviceType string `json:"deviceType,omitempty" yaml:"deviceType,omitempty"`
	PartNumber string `json:"partNumber,omitempty" yaml:"partNumber,omitempty"`
}

// Candidate is one entry of the available-firmware catalog: a raw version
// string plus the firmware class role it is tagged with.
type Candidate struct {
	Version string `json:"version" yaml:"version"`
	Role    string `json:"role,omitempty" yaml:"role,omitempty"`
}

// CandidateCatalog holds the available-firmware candidates per family,
// built fresh per resolution run and discarded afterwards.
type CandidateCatalog map[family.Tag][]Candidate

// Failure records a device whose version data could not be resolved. It is
// diagnostic output; a failure never blocks report generation.
type Failure struct {
	Serial   string           `json:"serial" yaml:"serial"`
	Hostname string           `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Model    string           `json:"model,omitempty" yaml:"model,omitempty"`
	Family   family.Tag       `json:"family,omitempty" yaml:"family,omitempty"`
	Code     errors.ErrorCode `json:"code" yaml:"code"`
	Reason   string           `json:"reason,omitempty" yaml:"reason,omitempty"`
}
