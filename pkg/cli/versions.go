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

	"github.com/urfave/cli/v3"

	"github.com/netgrid-labs/fleetwatch/pkg/family"
	"github.com/netgrid-labs/fleetwatch/pkg/serializer"
)

func versionsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "versions",
		EnableShellCompletion: true,
		Usage:                 "List available firmware versions per device type",
		Description: `List the available firmware candidates the management API offers for one
device type. These are the candidates the report resolves branch maxima
against.

# Examples

  fleetwatch versions --tenant acme --type CX
  fleetwatch versions --tenant acme --type CONTROLLER --format yaml`,
		Flags: []cli.Flag{
			tenantFlag,
			configDirFlag,
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:     "type",
				Usage:    "Device type to list (IAP, HP, CX, CONTROLLER)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			tag := family.Tag(cmd.String("type"))
			if !tag.IsValid() {
				return fmt.Errorf("unknown device type: %q (supported: %v)", tag, family.Supported())
			}

			_, client, err := tenantClient(cmd)
			if err != nil {
				return err
			}

			candidates, err := client.FirmwareVersions(ctx, tag)
			if err != nil {
				return err
			}

			out := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if c, ok := out.(serializer.Closer); ok {
				defer c.Close()
			}
			return out.Serialize(ctx, candidates)
		},
	}
}
