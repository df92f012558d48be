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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTenant(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeTenant(t, dir, "acme.yaml", "baseURL: https://gw.example.net\n")
	writeTenant(t, dir, "zenith.yml", "baseURL: https://gw.example.net\n")
	writeTenant(t, dir, "notes.txt", "ignored\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tokens"), 0o755))

	names, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "zenith"}, names)
}

func TestListMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeTenant(t, dir, "acme.yaml", `
baseURL: https://apigw-prod2.example.net
customerID: cust-001
smtp:
  server: mail.example.net
  from: reports@example.net
  to:
    - ops@example.net
  cc:
    - netops@example.net
`)

	tenant, err := Load(dir, "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", tenant.Name)
	assert.Equal(t, "https://apigw-prod2.example.net", tenant.BaseURL)
	assert.Equal(t, "cust-001", tenant.CustomerID)
	assert.Equal(t, filepath.Join(dir, "tokens", "acme"), tenant.TokenDir)
	require.NotNil(t, tenant.SMTP)
	assert.True(t, tenant.SMTP.Enabled())
	assert.Equal(t, 587, tenant.SMTP.Port)
	assert.Equal(t, []string{"ops@example.net"}, tenant.SMTP.To)
}

func TestLoadYmlExtension(t *testing.T) {
	dir := t.TempDir()
	writeTenant(t, dir, "zenith.yml", "baseURL: https://gw.example.net\ntokenDir: /opt/tokens/zenith\n")

	tenant, err := Load(dir, "zenith")
	require.NoError(t, err)
	assert.Equal(t, "/opt/tokens/zenith", tenant.TokenDir)
	assert.Nil(t, tenant.SMTP)
	assert.False(t, tenant.SMTP.Enabled())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	writeTenant(t, dir, "nourl.yaml", "customerID: cust-002\n")
	writeTenant(t, dir, "bad.yaml", "baseURL: [\n")

	tests := []struct {
		name   string
		tenant string
	}{
		{name: "empty name", tenant: ""},
		{name: "not found", tenant: "ghost"},
		{name: "missing baseURL", tenant: "nourl"},
		{name: "invalid yaml", tenant: "bad"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(dir, tc.tenant)
			assert.Error(t, err)
		})
	}
}
