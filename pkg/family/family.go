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

// Package family defines the device families known to the resolution engine
// and the declarative per-family rule table that drives version parsing,
// branch matching and candidate filtering. Keeping the rules in one table
// (rather than per-family conditionals spread through the logic) makes them
// independently testable.
package family

import "strings"

// Tag identifies a device family. The values double as the device_type
// parameter of the management API's firmware catalog.
type Tag string

const (
	// AccessPoint covers instant access points and their virtual controllers.
	AccessPoint Tag = "IAP"
	// SwitchAOS covers AOS-S switches (2930F class).
	SwitchAOS Tag = "HP"
	// SwitchCX covers AOS-CX switches (6300 class).
	SwitchCX Tag = "CX"
	// Gateway covers controller-class gateways with compound firmware versions.
	Gateway Tag = "CONTROLLER"
)

// String returns the string representation of the Tag.
func (t Tag) String() string {
	return string(t)
}

// IsValid checks if the Tag is one of the recognized families.
func (t Tag) IsValid() bool {
	_, ok := rules[t]
	return ok
}

// RoleController tags candidate catalog entries carrying controller-class
// firmware. Only these count for the gateway family.
const RoleController = "controller"

// Rule holds the family-specific resolution parameters.
type Rule struct {
	// SegmentCount is the canonical number of version segments; shorter
	// versions are zero-padded to it on comparison.
	SegmentCount int

	// BranchPrefix is the number of leading segments that define an
	// upgrade branch.
	BranchPrefix int

	// Compound marks families whose firmware encodes two sub-versions
	// joined by a separator.
	Compound bool

	// CandidateRole restricts the candidate catalog to entries with a
	// matching role before branch filtering. Empty means no restriction.
	CandidateRole string
}

var rules = map[Tag]Rule{
	AccessPoint: {SegmentCount: 4, BranchPrefix: 2},
	SwitchAOS:   {SegmentCount: 3, BranchPrefix: 2},
	SwitchCX:    {SegmentCount: 3, BranchPrefix: 2},
	Gateway:     {SegmentCount: 4, BranchPrefix: 2, Compound: true, CandidateRole: RoleController},
}

// RuleFor returns the resolution rule for the given family.
func RuleFor(t Tag) (Rule, bool) {
	r, ok := rules[t]
	return r, ok
}

// Tags returns all recognized family tags in a stable order.
func Tags() []Tag {
	return []Tag{AccessPoint, SwitchAOS, SwitchCX, Gateway}
}

// Supported returns all recognized family tags, for CLI help and validation.
func Supported() []string {
	return []string{
		AccessPoint.String(),
		SwitchAOS.String(),
		SwitchCX.String(),
		Gateway.String(),
	}
}

// FromModel maps a device model string to its switch family. Models
// containing "2930F" are AOS-S; models containing "6300" or "CX" are AOS-CX.
// Returns false for models with no configured family.
func FromModel(model string) (Tag, bool) {
	m := strings.ToUpper(model)
	switch {
	case strings.Contains(m, "2930F"):
		return SwitchAOS, true
	case strings.Contains(m, "6300"), strings.Contains(m, "CX"):
		return SwitchCX, true
	default:
		return "", false
	}
}
