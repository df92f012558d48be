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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/netgrid-labs/fleetwatch/pkg/central"
	"github.com/netgrid-labs/fleetwatch/pkg/config"
	"github.com/netgrid-labs/fleetwatch/pkg/logging"
)

const (
	name           = "fleetwatch"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	tenantFlag = &cli.StringFlag{
		Name:    "tenant",
		Aliases: []string{"n"},
		Usage:   "Tenant name to operate on",
		Sources: cli.EnvVars("FLEETWATCH_TENANT"),
	}

	configDirFlag = &cli.StringFlag{
		Name:    "config-dir",
		Aliases: []string{"c"},
		Usage:   "Directory holding per-tenant configuration files",
		Sources: cli.EnvVars("FLEETWATCH_CONFIG_DIR"),
		Value:   "tenants",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout; .xlsx selects the workbook writer)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format: json, yaml, table, excel",
		Value:   "json",
	}
)

// Run executes the fleetwatch CLI with the given arguments.
func Run(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	cmd := &cli.Command{
		Name:    name,
		Usage:   "Network fleet firmware reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			reportCmd(),
			devicesCmd(),
			versionsCmd(),
			tenantsCmd(),
		},
	}

	return cmd.Run(ctx, args)
}

// tenantClient loads the tenant configuration and builds an authenticated
// API client for it.
func tenantClient(cmd *cli.Command) (*config.Tenant, *central.Client, error) {
	tenantName := cmd.String("tenant")
	if tenantName == "" {
		return nil, nil, fmt.Errorf("--tenant is required")
	}

	tenant, err := config.Load(cmd.String("config-dir"), tenantName)
	if err != nil {
		return nil, nil, err
	}

	token, err := central.LoadToken(tenant.TokenDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading token for tenant %s: %w", tenantName, err)
	}

	client, err := central.New(tenant.BaseURL, token)
	if err != nil {
		return nil, nil, err
	}
	return tenant, client, nil
}
