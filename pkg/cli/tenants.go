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

	"github.com/netgrid-labs/fleetwatch/pkg/config"
	"github.com/netgrid-labs/fleetwatch/pkg/serializer"
)

func tenantsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tenants",
		EnableShellCompletion: true,
		Usage:                 "List configured tenants",
		Description: `List the tenants configured in the configuration directory. Each tenant
is one YAML file; the file stem is the tenant name used with --tenant.`,
		Flags: []cli.Flag{
			configDirFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			names, err := config.List(cmd.String("config-dir"))
			if err != nil {
				return err
			}

			out := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if c, ok := out.(serializer.Closer); ok {
				defer c.Close()
			}
			return out.Serialize(ctx, names)
		},
	}
}
