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

package version

import (
	"fmt"
	"strings"
)

// CompoundSeparator joins the primary and secondary sub-versions of a
// gateway firmware string (e.g. "8.7.0.0-2.3.0.9").
const CompoundSeparator = "-"

// Compound represents a gateway firmware version: two independently
// comparable sub-versions joined by a single separator. The primary
// sub-version determines branch membership and takes precedence in
// ordering; the secondary only breaks ties between equal primaries.
type Compound struct {
	Primary   Version `json:"primary" yaml:"primary"`
	Secondary Version `json:"secondary" yaml:"secondary"`
}

// ParseCompound parses a compound version string. The string must contain
// exactly one separator, and both sides must parse as simple versions.
func ParseCompound(s string) (Compound, error) {
	if s == "" {
		return Compound{}, ErrEmptyVersion
	}

	parts := strings.Split(s, CompoundSeparator)
	if len(parts) != 2 {
		return Compound{}, fmt.Errorf("%w: %q", ErrMalformedCompound, s)
	}

	primary, err := Parse(parts[0])
	if err != nil {
		return Compound{}, fmt.Errorf("primary sub-version: %w", err)
	}
	secondary, err := Parse(parts[1])
	if err != nil {
		return Compound{}, fmt.Errorf("secondary sub-version: %w", err)
	}

	return Compound{Primary: primary, Secondary: secondary}, nil
}

// MustParseCompound parses a compound version string and panics on failure.
// Only for hardcoded strings and tests.
func MustParseCompound(s string) Compound {
	c, err := ParseCompound(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseCompound: %v", err))
	}
	return c
}

// String returns the string representation of the compound version.
func (c Compound) String() string {
	return c.Primary.String() + CompoundSeparator + c.Secondary.String()
}

// Compare orders compound versions by primary sub-version first; the
// secondary sub-version is consulted only when the primaries are equal.
// A strictly greater primary always wins regardless of secondary.
func (c Compound) Compare(other Compound) int {
	if r := c.Primary.Compare(other.Primary); r != 0 {
		return r
	}
	return c.Secondary.Compare(other.Secondary)
}

// IsNewer returns true if c is strictly newer than other.
func (c Compound) IsNewer(other Compound) bool {
	return c.Compare(other) > 0
}

// SameBranch reports whether two compound versions share an upgrade branch.
// Branch membership is defined on the primary sub-version prefix only; the
// secondary sub-version never affects it.
func (c Compound) SameBranch(other Compound, prefix int) bool {
	return c.Primary.SameBranch(other.Primary, prefix)
}
