package device

import (
	"encoding/json"
	"testing"

	"github.com/netgrid-labs/fleetwatch/pkg/family"
)

func TestNewReport(t *testing.T) {
	r := NewReport("v1.2.3", "acme")

	if r.Kind != KindReport {
		t.Errorf("Kind = %q, want %q", r.Kind, KindReport)
	}
	if r.APIVersion != ReportAPIVersion {
		t.Errorf("APIVersion = %q, want %q", r.APIVersion, ReportAPIVersion)
	}
	if r.Metadata["version"] != "v1.2.3" {
		t.Errorf("metadata version = %q, want v1.2.3", r.Metadata["version"])
	}
	if r.Metadata["tenant"] != "acme" {
		t.Errorf("metadata tenant = %q, want acme", r.Metadata["tenant"])
	}
	if r.Metadata["timestamp"] == "" {
		t.Error("metadata timestamp not set")
	}
	if r.Metadata["run"] == "" {
		t.Error("metadata run id not set")
	}

	other := NewReport("v1.2.3", "acme")
	if other.Metadata["run"] == r.Metadata["run"] {
		t.Error("run ids of distinct reports are not unique")
	}
}

func TestGatewayRecordJSONInlinesDevice(t *testing.T) {
	g := GatewayRecord{
		DeviceRecord: DeviceRecord{
			Serial:          "GW001",
			Family:          family.Gateway,
			FirmwareVersion: "8.7.0.0-2.3.0.9",
		},
		IPAddress: "10.0.0.1",
	}

	raw, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["serial"] != "GW001" {
		t.Errorf("serial not inlined: %v", m)
	}
	if m["ipAddress"] != "10.0.0.1" {
		t.Errorf("ipAddress missing: %v", m)
	}
}
