// Package cli implements the command-line interface for the fleetwatch tool.
//
// # Overview
//
// The fleetwatch CLI builds consolidated firmware reports for managed
// network fleets. It collects firmware, monitoring and inventory data per
// tenant, resolves the maximum in-branch firmware version for every device,
// and writes the result as JSON, YAML, a text table, or a formatted Excel
// workbook.
//
// # Commands
//
// report - Build the consolidated firmware report:
//
//	fleetwatch report --tenant acme --output acme.xlsx [--email]
//
// Collects all data sources in parallel, resolves branch maxima, and writes
// the report. With --email the workbook is sent per the tenant's SMTP
// configuration.
//
// devices - List raw firmware status rows:
//
//	fleetwatch devices --tenant acme --type HP [--format table]
//
// versions - List available firmware candidates:
//
//	fleetwatch versions --tenant acme --type CONTROLLER
//
// tenants - List configured tenants:
//
//	fleetwatch tenants [--config-dir tenants]
//
// # Global Flags
//
//	--tenant, -n      Tenant to operate on (FLEETWATCH_TENANT)
//	--config-dir, -c  Tenant configuration directory (default: tenants)
//	--output, -o      Output file path (default: stdout)
//	--format, -t      Output format: json, yaml, table, excel
//	--log-level       Log verbosity: debug, info, warn, error (LOG_LEVEL)
//
// # Environment Variables
//
//	FLEETWATCH_TENANT      Default tenant name
//	FLEETWATCH_CONFIG_DIR  Default tenant configuration directory
//	CENTRAL_TOKEN_DIR      Override the tenant token directory
//	LOG_LEVEL              Set logging verbosity
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/central - Management API client
//   - pkg/collector - Data source collection
//   - pkg/resolver - Firmware version resolution
//   - pkg/reporter - Report orchestration
//   - pkg/serializer - Output formatting
//   - pkg/mailer - SMTP delivery
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/netgrid-labs/fleetwatch/pkg/cli.version=1.0.0'"
package cli
