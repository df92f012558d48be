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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/netgrid-labs/fleetwatch/pkg/collector"
	"github.com/netgrid-labs/fleetwatch/pkg/defaults"
	"github.com/netgrid-labs/fleetwatch/pkg/mailer"
	"github.com/netgrid-labs/fleetwatch/pkg/reporter"
	"github.com/netgrid-labs/fleetwatch/pkg/serializer"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Build the consolidated firmware report for a tenant",
		Description: `Collect firmware, monitoring and inventory data for one tenant, resolve
the maximum in-branch firmware version for every device, and write the
consolidated report.

Datasets in the report:
  - Consolidated Firmware: switches and virtual controllers with branch maxima
  - Inventory: the platform device inventory
  - Switches (Stack): switch listing with stack membership
  - Gateways: gateway listing with branch maxima and recommended versions
  - Firmware Switch / Firmware Swarms: per-source firmware status
  - Failures: devices whose version data could not be resolved

Devices with malformed versions or unknown families never abort the run;
they are reported on the Failures sheet.

# Examples

Write the workbook and email it per tenant SMTP configuration:
  fleetwatch report --tenant acme --output acme-firmware.xlsx --email

Print the report as YAML to stdout:
  fleetwatch report --tenant acme --format yaml`,
		Flags: []cli.Flag{
			tenantFlag,
			configDirFlag,
			outputFlag,
			formatFlag,
			&cli.BoolFlag{
				Name:  "email",
				Usage: "Email the workbook per the tenant SMTP configuration",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for the full collection run",
				Value: defaults.CollectTimeout,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			output := cmd.String("output")
			if cmd.Bool("email") && !strings.HasSuffix(output, ".xlsx") {
				return fmt.Errorf("--email requires an .xlsx --output path")
			}

			tenant, client, err := tenantClient(cmd)
			if err != nil {
				return err
			}

			factory, err := collector.NewFactory(client)
			if err != nil {
				return err
			}

			rep, err := reporter.New(factory,
				reporter.WithVersion(version),
				reporter.WithTenant(tenant.Name),
			)
			if err != nil {
				return err
			}

			runCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			report, err := rep.Build(runCtx)
			if err != nil {
				return err
			}

			out := serializer.NewFileWriterOrStdout(outFormat, output)
			if c, ok := out.(serializer.Closer); ok {
				defer c.Close()
			}
			if err := out.Serialize(ctx, report); err != nil {
				return err
			}

			if cmd.Bool("email") {
				if !tenant.SMTP.Enabled() {
					slog.Warn("email requested but tenant has no SMTP configuration",
						slog.String("tenant", tenant.Name))
					return nil
				}
				m, err := mailer.New(tenant.SMTP, tenant.Name)
				if err != nil {
					return err
				}
				return m.SendReport(output)
			}
			return nil
		},
	}
}
