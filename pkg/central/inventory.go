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

package central

import (
	"context"
	"fmt"
	"strconv"

	"github.com/netgrid-labs/fleetwatch/pkg/defaults"
)

// InventoryDevice is one row of the platform device inventory.
type InventoryDevice struct {
	Serial     string `json:"serial"`
	MACAddress string `json:"macaddr"`
	Model      string `json:"model"`
	DeviceType string `json:"device_type"`
	PartNumber string `json:"part_number"`
	Aruba      string `json:"aruba_part_no"`
}

type inventoryResponse struct {
	Devices []InventoryDevice `json:"devices"`
	Total   int               `json:"total"`
}

// Inventory lists the platform device inventory across pages.
func (c *Client) Inventory(ctx context.Context) ([]InventoryDevice, error) {
	var all []InventoryDevice
	offset := 0
	for {
		var page inventoryResponse
		_, err := c.get(ctx, "/platform/device_inventory/v1/devices", map[string]string{
			"limit":  strconv.Itoa(defaults.InventoryLimit),
			"offset": strconv.Itoa(offset),
		}, &page)
		if err != nil {
			return nil, fmt.Errorf("listing inventory: %w", err)
		}
		all = append(all, page.Devices...)
		if len(page.Devices) < defaults.InventoryLimit {
			return all, nil
		}
		offset += len(page.Devices)
	}
}
