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
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netgrid-labs/fleetwatch/pkg/device"
)

func sampleReport() *device.Report {
	r := device.NewReport("test", "acme")
	r.Consolidated = []device.DeviceRecord{
		{Serial: "SW001", Hostname: "core-1", FirmwareVersion: "16.10.0016", FirmwareMax: "16.10.0024"},
	}
	return r
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))

	var decoded device.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, device.KindReport, decoded.Kind)
	require.Len(t, decoded.Consolidated, 1)
	assert.Equal(t, "16.10.0024", decoded.Consolidated[0].FirmwareMax)
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))
	assert.Contains(t, buf.String(), "kind: FirmwareReport")
	assert.Contains(t, buf.String(), "firmwareMax: 16.10.0024")
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Consolidated.[0].Serial")
	assert.Contains(t, out, "SW001")
}

func TestSerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Contains(t, buf.String(), "<empty>")
}

func TestUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("bogus"), &buf)
	require.NoError(t, w.Serialize(context.Background(), map[string]string{"a": "b"}))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.False(t, FormatExcel.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		w := NewFileWriterOrStdout(FormatJSON, path)
		require.NoError(t, w.Serialize(context.Background(), sampleReport()))
		if c, ok := w.(Closer); ok {
			require.NoError(t, c.Close())
		}
		assert.FileExists(t, path)
	})

	t.Run("xlsx path routes to excel writer", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "out.xlsx"))
		_, ok := w.(*ExcelWriter)
		assert.True(t, ok)
	})

	t.Run("empty path falls back to stdout", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatYAML, "")
		_, ok := w.(*Writer)
		assert.True(t, ok)
	})
}

func TestFlattenValue(t *testing.T) {
	type inner struct {
		Count int
	}
	type outer struct {
		Name   string
		Nested inner
		Tags   []string
		hidden string
	}

	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(outer{Name: "x", Nested: inner{Count: 3}, Tags: []string{"a"}, hidden: "no"}), "")

	assert.Equal(t, "x", flat["Name"])
	assert.Equal(t, 3, flat["Nested.Count"])
	assert.Equal(t, "a", flat["Tags.[0]"])
	assert.NotContains(t, flat, "hidden")
}
