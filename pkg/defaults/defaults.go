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

// Package defaults provides centralized configuration constants for
// fleetwatch. Defining timeout values, retry parameters and pagination
// defaults in one place ensures consistency and makes tuning easier.
package defaults

import "time"

// HTTP client settings for management API calls.
const (
	// HTTPClientTimeout is the total timeout for a single API request.
	HTTPClientTimeout = 30 * time.Second

	// HTTPRetryAttempts is the number of attempts per API call.
	HTTPRetryAttempts = 3

	// HTTPRetryDelay is the base delay between retry attempts.
	HTTPRetryDelay = 2 * time.Second

	// APIRequestsPerSecond caps the client-side request rate against the
	// management API gateway.
	APIRequestsPerSecond = 5

	// APIBurst is the rate limiter burst size.
	APIBurst = 5
)

// Pagination and listing limits.
const (
	// PageLimit is the page size for paginated monitoring listings.
	PageLimit = 100

	// FirmwareDeviceLimit caps the firmware status listing per device type.
	FirmwareDeviceLimit = 500

	// InventoryLimit caps the platform inventory listing.
	InventoryLimit = 310
)

// CLI timeouts.
const (
	// CollectTimeout bounds a full collection and report run.
	CollectTimeout = 5 * time.Minute
)

// Report rendering settings.
const (
	// ExcelColumnPadding is added to the widest cell when sizing columns.
	ExcelColumnPadding = 2

	// ExcelMaxColumnWidth caps auto-sized column widths.
	ExcelMaxColumnWidth = 60
)
