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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeToken(t *testing.T, dir, name, body string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func TestLoadToken(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeToken(t, dir, "tok_old.json", `{"access_token":"stale"}`, now.Add(-time.Hour))
	writeToken(t, dir, "tok_new.json", `{"access_token":"fresh"}`, now)

	token, err := LoadToken(dir)
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

func TestLoadTokenKeyVariants(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "access_token", body: `{"access_token":"a"}`, want: "a"},
		{name: "token", body: `{"token":"b"}`, want: "b"},
		{name: "accessToken", body: `{"accessToken":"c"}`, want: "c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeToken(t, dir, "token_x.json", tc.body, time.Now())

			token, err := LoadToken(dir)
			require.NoError(t, err)
			assert.Equal(t, tc.want, token)
		})
	}
}

func TestLoadTokenRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeToken(t, sub, "tok_nested.json", `{"access_token":"nested"}`, time.Now())

	token, err := LoadToken(dir)
	require.NoError(t, err)
	assert.Equal(t, "nested", token)
}

func TestLoadTokenEnvOverride(t *testing.T) {
	override := t.TempDir()
	writeToken(t, override, "tok_env.json", `{"access_token":"from-env"}`, time.Now())
	t.Setenv(TokenDirEnvVar, override)

	token, err := LoadToken(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestLoadTokenErrors(t *testing.T) {
	t.Run("empty dir path", func(t *testing.T) {
		_, err := LoadToken("")
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("no token files", func(t *testing.T) {
		dir := t.TempDir()
		writeToken(t, dir, "readme.json", `{"access_token":"ignored"}`, time.Now())
		_, err := LoadToken(dir)
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("empty token value", func(t *testing.T) {
		dir := t.TempDir()
		writeToken(t, dir, "tok_a.json", `{"expires_in":7200}`, time.Now())
		_, err := LoadToken(dir)
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		writeToken(t, dir, "tok_a.json", `{`, time.Now())
		_, err := LoadToken(dir)
		assert.Error(t, err)
	})
}
