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

package serializer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/netgrid-labs/fleetwatch/pkg/defaults"
	"github.com/netgrid-labs/fleetwatch/pkg/device"
)

// Workbook sheet names, in their fixed order.
const (
	SheetConsolidated   = "Consolidated Firmware"
	SheetInventory      = "Inventory"
	SheetStacks         = "Switches (Stack)"
	SheetGateways       = "Gateways"
	SheetSwitchFirmware = "Firmware Switch"
	SheetSwarmFirmware  = "Firmware Swarms"
	SheetFailures       = "Failures"
)

// ExcelWriter serializes a report into a formatted Excel workbook with one
// sheet per dataset. It only accepts *device.Report.
type ExcelWriter struct {
	path string
}

// NewExcelWriter creates a workbook writer targeting the given path.
func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path}
}

// Close implements the Closer interface. The workbook is written and closed
// in Serialize, so there is nothing to release.
func (w *ExcelWriter) Close() error {
	return nil
}

// Serialize writes the report workbook. Empty datasets are skipped; sheet
// order is fixed regardless of dataset sizes.
func (w *ExcelWriter) Serialize(ctx context.Context, data any) error {
	report, ok := data.(*device.Report)
	if !ok {
		return fmt.Errorf("excel output requires a firmware report, got %T", data)
	}

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for _, s := range buildSheets(report) {
		if len(s.rows) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if first {
			// reuse the default sheet for the first dataset
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("renaming sheet %s: %w", s.name, err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(s.name); err != nil {
				return fmt.Errorf("creating sheet %s: %w", s.name, err)
			}
		}
		if err := writeSheet(f, s); err != nil {
			return fmt.Errorf("writing sheet %s: %w", s.name, err)
		}
	}

	if first {
		return fmt.Errorf("report has no data to export")
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", w.path, err)
	}
	return nil
}

// sheet is one dataset rendered as a header row plus data rows.
type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

func buildSheets(r *device.Report) []sheet {
	return []sheet{
		consolidatedSheet(r.Consolidated),
		inventorySheet(r.Inventory),
		stacksSheet(r.SwitchStacks),
		gatewaysSheet(r.Gateways),
		switchFirmwareSheet(r.SwitchFirmware),
		swarmFirmwareSheet(r.SwarmFirmware),
		failuresSheet(r.Failures),
	}
}

func consolidatedSheet(records []device.DeviceRecord) sheet {
	s := sheet{
		name: SheetConsolidated,
		headers: []string{
			"Serial Number", "MAC Address", "Hostname", "Model", "Family",
			"Firmware Version", "Recommended", "Branch Max",
		},
	}
	for _, d := range records {
		s.rows = append(s.rows, []any{
			d.Serial, d.MACAddress, d.Hostname, d.Model, d.Family.String(),
			d.FirmwareVersion, d.Recommended, d.FirmwareMax,
		})
	}
	return sortRows(s)
}

func inventorySheet(records []device.InventoryRecord) sheet {
	s := sheet{
		name: SheetInventory,
		headers: []string{
			"Serial Number", "MAC Address", "Model", "Device Type", "Part Number",
		},
	}
	for _, d := range records {
		s.rows = append(s.rows, []any{
			d.Serial, d.MACAddress, d.Model, d.DeviceType, d.PartNumber,
		})
	}
	return sortRows(s)
}

func stacksSheet(records []device.StackRecord) sheet {
	s := sheet{
		name: SheetStacks,
		headers: []string{
			"Serial Number", "MAC Address", "Name", "IP Address", "Model",
			"Status", "Group", "Site", "Stack", "Stack ID", "Stack Role",
		},
	}
	for _, d := range records {
		s.rows = append(s.rows, []any{
			d.Serial, d.MACAddress, d.Name, d.IPAddress, d.Model,
			d.Status, d.GroupName, d.Site, d.StackStatus, d.StackID, d.StackRole,
		})
	}
	return sortRows(s)
}

func gatewaysSheet(records []device.GatewayRecord) sheet {
	s := sheet{
		name: SheetGateways,
		headers: []string{
			"Serial Number", "MAC Address", "Name", "IP Address", "Model",
			"Status", "Mode", "Group", "Site", "Firmware Version",
			"Backup Version", "Branch Max", "Recommended", "Role", "Labels",
		},
	}
	for _, d := range records {
		s.rows = append(s.rows, []any{
			d.Serial, d.MACAddress, d.Hostname, d.IPAddress, d.Model,
			d.Status, d.Mode, d.GroupName, d.Site, d.FirmwareVersion,
			d.FirmwareBackupVersion, d.FirmwareMax, d.Recommended, d.Role,
			strings.Join(d.Labels, ", "),
		})
	}
	return sortRows(s)
}

func switchFirmwareSheet(records []device.DeviceRecord) sheet {
	s := sheet{
		name: SheetSwitchFirmware,
		headers: []string{
			"Serial Number", "MAC Address", "Hostname", "Model", "Family",
			"Firmware Version", "Branch Max", "Recommended",
			"Upgrade Required", "Reboot", "Stack", "Status", "Reason",
		},
	}
	for _, d := range records {
		s.rows = append(s.rows, []any{
			d.Serial, d.MACAddress, d.Hostname, d.Model, d.Family.String(),
			d.FirmwareVersion, d.FirmwareMax, d.Recommended,
			d.UpgradeRequired, d.RebootEnabled, d.IsStack, d.StatusState, d.StatusReason,
		})
	}
	return sortRows(s)
}

func swarmFirmwareSheet(records []device.DeviceRecord) sheet {
	s := sheet{
		name: SheetSwarmFirmware,
		headers: []string{
			"Entry", "VC Name", "VC ID", "Serial Number", "MAC Address",
			"Hostname", "Firmware Version", "Branch Max", "Members",
			"Scheduled At", "Status",
		},
	}
	for _, d := range records {
		members := any("")
		if d.EntryType == device.EntryVC {
			members = d.MemberCount
		}
		s.rows = append(s.rows, []any{
			d.EntryType, d.VCName, d.VCID, d.Serial, d.MACAddress,
			d.Hostname, d.FirmwareVersion, d.FirmwareMax, members,
			d.FirmwareScheduledAt, d.StatusState,
		})
	}
	// keep collection order: each VC row is followed by its member APs
	return s
}

func failuresSheet(records []device.Failure) sheet {
	s := sheet{
		name: SheetFailures,
		headers: []string{
			"Serial Number", "Hostname", "Model", "Family", "Code", "Reason",
		},
	}
	for _, d := range records {
		s.rows = append(s.rows, []any{
			d.Serial, d.Hostname, d.Model, d.Family.String(), string(d.Code), d.Reason,
		})
	}
	return sortRows(s)
}

// sortRows orders data rows by their first column using locale-aware
// string collation.
func sortRows(s sheet) sheet {
	c := collate.New(language.English, collate.Loose)
	sort.SliceStable(s.rows, func(i, j int) bool {
		return c.CompareString(cellString(s.rows[i][0]), cellString(s.rows[j][0])) < 0
	})
	return s
}

func cellString(v any) string {
	return fmt.Sprint(v)
}

// cellValue maps Go values to their workbook rendering. Booleans are
// written as Yes/No to match the audience of the report.
func cellValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return "Yes"
		}
		return "No"
	}
	return v
}

func writeSheet(f *excelize.File, s sheet) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBorders(),
	})
	if err != nil {
		return err
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return err
	}

	widths := make([]int, len(s.headers))

	for col, h := range s.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, h); err != nil {
			return err
		}
		widths[col] = len(h)
	}

	for row, values := range s.rows {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			rendered := cellValue(v)
			if err := f.SetCellValue(s.name, cell, rendered); err != nil {
				return err
			}
			if l := len(cellString(rendered)); col < len(widths) && l > widths[col] {
				widths[col] = l
			}
		}
	}

	lastCell, err := excelize.CoordinatesToCellName(len(s.headers), len(s.rows)+1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", lastCell, bodyStyle); err != nil {
		return err
	}
	headerEnd, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", headerEnd, headerStyle); err != nil {
		return err
	}
	if err := f.AutoFilter(s.name, "A1:"+headerEnd, nil); err != nil {
		return err
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		w := width + defaults.ExcelColumnPadding
		if w > defaults.ExcelMaxColumnWidth {
			w = defaults.ExcelMaxColumnWidth
		}
		if err := f.SetColWidth(s.name, name, name, float64(w)); err != nil {
			return err
		}
	}

	return nil
}

func thinBorders() []excelize.Border {
	const thin = 1
	return []excelize.Border{
		{Type: "left", Style: thin, Color: "000000"},
		{Type: "right", Style: thin, Color: "000000"},
		{Type: "top", Style: thin, Color: "000000"},
		{Type: "bottom", Style: thin, Color: "000000"},
	}
}
