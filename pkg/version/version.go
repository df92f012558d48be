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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrNonNumeric        = errors.New("version segment is not numeric")
	ErrTooFewSegments    = errors.New("version needs at least major and minor segments")
	ErrMalformedCompound = errors.New("compound version must contain exactly one separator")
)

// Version represents a firmware version as an ordered sequence of numeric
// segments (most significant first). Build suffixes after '_' or '+'
// (e.g. "8.10.0.6_81134") are preserved in Extras and ignored for ordering.
type Version struct {
	Segments []int  `json:"segments" yaml:"segments"`
	Extras   string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// Parse parses a firmware version string into a Version.
// Supported formats: "8.13", "16.10.0019", "8.10.0.6_81134", "v2.3.0".
// The "v" prefix is optional and stripped if present.
// Returns an error if the string is empty, has fewer than two segments,
// or any segment is empty or non-numeric.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	s = strings.TrimPrefix(s, "v")
	var v Version

	// Split off a build suffix if one exists. Only '_' and '+' introduce a
	// suffix here; '-' is reserved for the compound gateway format.
	mainPart := s
	for i, ch := range s {
		if (ch == '_' || ch == '+') && i > 0 {
			prevCh := s[i-1]
			if prevCh >= '0' && prevCh <= '9' {
				mainPart = s[:i]
				v.Extras = s[i:]
				break
			}
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("%w: %q", ErrTooFewSegments, s)
	}

	v.Segments = make([]int, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty segment", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		v.Segments = append(v.Segments, num)
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For runtime data,
// always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// String returns the dotted string representation of the Version.
// Extras are not included.
func (v Version) String() string {
	parts := make([]string, len(v.Segments))
	for i, seg := range v.Segments {
		parts[i] = strconv.Itoa(seg)
	}
	return strings.Join(parts, ".")
}

// Segment returns the i-th segment, treating missing trailing segments as
// zero. Versions of different lengths compare as if zero-padded.
func (v Version) Segment(i int) int {
	if i < 0 || i >= len(v.Segments) {
		return 0
	}
	return v.Segments[i]
}

// IsZero reports whether the version holds no parsed segments.
func (v Version) IsZero() bool {
	return len(v.Segments) == 0
}

// Compare returns an integer comparing two versions segment by segment,
// most significant first: -1 if v < other, 0 if v == other, 1 if v > other.
// The shorter version is padded with zero segments.
func (v Version) Compare(other Version) int {
	n := len(v.Segments)
	if len(other.Segments) > n {
		n = len(other.Segments)
	}
	for i := 0; i < n; i++ {
		a, b := v.Segment(i), other.Segment(i)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// SameBranch reports whether v and other share the same upgrade branch,
// defined as equality of the first prefix segments. Shorter versions are
// zero-padded before comparison. A prefix < 1 never matches.
func (v Version) SameBranch(other Version, prefix int) bool {
	if prefix < 1 {
		return false
	}
	for i := 0; i < prefix; i++ {
		if v.Segment(i) != other.Segment(i) {
			return false
		}
	}
	return true
}
