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
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// TokenDirEnvVar overrides the tenant token directory when set.
	TokenDirEnvVar = "CENTRAL_TOKEN_DIR"
)

var (
	// ErrNoToken indicates that no usable token file was found.
	ErrNoToken = errors.New("no token file found")
)

// tokenFile is the on-disk token shape. The refresh tooling writes
// different key names over time, so all known variants are accepted.
type tokenFile struct {
	AccessToken  string `json:"access_token"`
	Token        string `json:"token"`
	AccessTokenC string `json:"accessToken"`
}

func (t *tokenFile) value() string {
	switch {
	case t.AccessToken != "":
		return t.AccessToken
	case t.Token != "":
		return t.Token
	default:
		return t.AccessTokenC
	}
}

// LoadToken returns the access token for a tenant. It scans dir (or the
// CENTRAL_TOKEN_DIR override) recursively for token JSON files and uses
// the most recently modified one.
func LoadToken(dir string) (string, error) {
	if env := os.Getenv(TokenDirEnvVar); env != "" {
		dir = env
	}
	if dir == "" {
		return "", fmt.Errorf("token directory not set: %w", ErrNoToken)
	}

	path, err := newestTokenFile(dir)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading token file %s: %w", path, err)
	}

	var tf tokenFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return "", fmt.Errorf("parsing token file %s: %w", path, err)
	}

	token := tf.value()
	if token == "" {
		return "", fmt.Errorf("token file %s has no access token: %w", path, ErrNoToken)
	}
	return token, nil
}

func isTokenFile(name string) bool {
	if !strings.HasSuffix(name, ".json") {
		return false
	}
	return strings.HasPrefix(name, "tok_") || strings.HasPrefix(name, "token_") || name == "token.json"
}

func newestTokenFile(dir string) (string, error) {
	var (
		newest     string
		newestTime time.Time
	)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isTokenFile(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = path
			newestTime = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning token directory %s: %w", dir, err)
	}
	if newest == "" {
		return "", fmt.Errorf("no token files in %s: %w", dir, ErrNoToken)
	}
	return newest, nil
}
