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

package device

import (
	"time"

	"github.com/google/uuid"
)

// KindReport is the resource kind of the report envelope.
const KindReport = "FirmwareReport"

// ReportAPIVersion identifies the report schema version.
const ReportAPIVersion = "fleetwatch/v1"

// Report is the consolidated output of one collection and resolution run.
// It follows Kubernetes-style resource conventions with Kind, APIVersion,
// and Metadata fields.
type Report struct {
	// Kind is the type of the report object.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the report object.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the run
	// (timestamp, run id, tenant, tool version).
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Consolidated holds the switch and virtual-controller rows with their
	// resolved branch maxima; the headline dataset of the report.
	Consolidated []DeviceRecord `json:"consolidated" yaml:"consolidated"`

	Inventory      []InventoryRecord `json:"inventory,omitempty" yaml:"inventory,omitempty"`
	SwitchStacks   []StackRecord     `json:"switchStacks,omitempty" yaml:"switchStacks,omitempty"`
	Gateways       []GatewayRecord   `json:"gateways,omitempty" yaml:"gateways,omitempty"`
	SwitchFirmware []DeviceRecord    `json:"switchFirmware,omitempty" yaml:"switchFirmware,omitempty"`
	SwarmFirmware  []DeviceRecord    `json:"swarmFirmware,omitempty" yaml:"swarmFirmware,omitempty"`

	// Failures lists devices whose resolution could not be completed.
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// NewReport creates an empty report envelope with run metadata populated.
func NewReport(toolVersion, tenant string) *Report {
	md := map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"run":       uuid.NewString(),
	}
	if toolVersion != "" {
		md["version"] = toolVersion
	}
	if tenant != "" {
		md["tenant"] = tenant
	}
	return &Report{
		Kind:       KindReport,
		APIVersion: ReportAPIVersion,
		Metadata:   md,
	}
}
