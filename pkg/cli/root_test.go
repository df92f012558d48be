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

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsConstruct(t *testing.T) {
	assert.Equal(t, "report", reportCmd().Name)
	assert.Equal(t, "devices", devicesCmd().Name)
	assert.Equal(t, "versions", versionsCmd().Name)
	assert.Equal(t, "tenants", tenantsCmd().Name)
}

func TestRunTenants(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "acme.yaml"),
		[]byte("baseURL: https://gw.example.net\n"), 0o600))

	out := filepath.Join(dir, "tenants.json")
	err := Run([]string{"fleetwatch", "tenants", "--config-dir", dir, "--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "acme")
}

func TestRunDevicesRejectsUnknownType(t *testing.T) {
	err := Run([]string{"fleetwatch", "devices", "--tenant", "acme", "--type", "BOGUS"})
	assert.Error(t, err)
}

func TestRunReportRejectsUnknownFormat(t *testing.T) {
	err := Run([]string{"fleetwatch", "report", "--tenant", "acme", "--format", "xml"})
	assert.Error(t, err)
}

func TestRunReportEmailRequiresWorkbook(t *testing.T) {
	err := Run([]string{"fleetwatch", "report", "--tenant", "acme", "--email"})
	assert.Error(t, err)
}

func TestRunReportRequiresTenant(t *testing.T) {
	err := Run([]string{"fleetwatch", "report"})
	assert.Error(t, err)
}
