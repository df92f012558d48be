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

// Package serializer provides utilities for serializing report data to
// various formats.
//
// The package supports four output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//   - Excel: A formatted workbook with one sheet per report dataset
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	if err := writer.Serialize(ctx, report); err != nil {
//		log.Fatal(err)
//	}
//
// The Excel writer only accepts *device.Report; the generic formats accept
// any value.
package serializer

import "context"

// Serializer is an interface for serializing report data. Implementations
// serialize to JSON, YAML, tabular text, or an Excel workbook.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface Serializers implement when they hold
// resources such as open file handles.
type Closer interface {
	Close() error
}
