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

// Package config loads multi-tenant configuration. Each managed tenant is
// one YAML file in the tenants directory; the file stem is the tenant name.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SMTP holds optional report delivery settings for a tenant. Delivery is
// enabled when both Server and at least one To address are set.
type SMTP struct {
	Server   string   `yaml:"server"`
	Port     int      `yaml:"port,omitempty"`
	Username string   `yaml:"username,omitempty"`
	Password string   `yaml:"password,omitempty"`
	From     string   `yaml:"from,omitempty"`
	To       []string `yaml:"to,omitempty"`
	Cc       []string `yaml:"cc,omitempty"`
	Subject  string   `yaml:"subject,omitempty"`
}

// Enabled reports whether the SMTP block is complete enough to send.
func (s *SMTP) Enabled() bool {
	return s != nil && s.Server != "" && len(s.To) > 0
}

// Tenant is the connection configuration for one managed tenant.
type Tenant struct {
	// Name is the tenant identifier, derived from the config file name.
	Name string `yaml:"-"`

	// BaseURL is the management API gateway for this tenant
	// (e.g. https://apigw-prod2.example.net).
	BaseURL string `yaml:"baseURL"`

	// CustomerID is the tenant's customer identifier at the provider.
	CustomerID string `yaml:"customerID,omitempty"`

	// TokenDir is the directory holding the tenant's API token files.
	// Defaults to <tenants-dir>/tokens/<name>.
	TokenDir string `yaml:"tokenDir,omitempty"`

	// SMTP enables emailing the generated report when configured.
	SMTP *SMTP `yaml:"smtp,omitempty"`
}

var tenantExtensions = []string{".yaml", ".yml"}

// List returns the tenant names configured in dir, sorted alphabetically.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading tenants directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		for _, want := range tenantExtensions {
			if ext == want {
				names = append(names, strings.TrimSuffix(entry.Name(), ext))
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and validates the configuration of a single tenant.
func Load(dir, name string) (*Tenant, error) {
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}

	path, err := tenantPath(dir, name)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tenant config %s: %w", path, err)
	}

	t := &Tenant{Name: name}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("parsing tenant config %s: %w", path, err)
	}

	if t.BaseURL == "" {
		return nil, fmt.Errorf("tenant %s: baseURL is required", name)
	}
	if t.TokenDir == "" {
		t.TokenDir = filepath.Join(dir, "tokens", name)
	}
	if t.SMTP != nil && t.SMTP.Port == 0 {
		t.SMTP.Port = 587
	}

	return t, nil
}

func tenantPath(dir, name string) (string, error) {
	for _, ext := range tenantExtensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("tenant %q not found in %s", name, dir)
}
