package resolver

import (
	"fmt"

	"github.com/netgrid-labs/fleetwatch/pkg/device"
	"github.com/netgrid-labs/fleetwatch/pkg/family"
	"github.com/netgrid-labs/fleetwatch/pkg/version"
)

// SameBranch reports whether two raw version strings belong to the same
// upgrade branch under the given family rule. Returns an error when either
// string fails the family's syntax.
func SameBranch(a, b string, rule family.Rule) (bool, error) {
	if rule.Compound {
		ca, err := version.ParseCompound(a)
		if err != nil {
			return false, err
		}
		cb, err := version.ParseCompound(b)
		if err != nil {
			return false, err
		}
		return ca.SameBranch(cb, rule.BranchPrefix), nil
	}

	va, err := version.Parse(a)
	if err != nil {
		return false, err
	}
	vb, err := version.Parse(b)
	if err != nil {
		return false, err
	}
	return va.SameBranch(vb, rule.BranchPrefix), nil
}

// SelectMax returns the maximum candidate version sharing an upgrade branch
// with current, under the given family rule. Candidates are first filtered
// to the rule's firmware role (when set), then to the current branch.
// Candidates that fail parsing are skipped. The empty string means no
// candidate matched; that is a valid absence, not an error. An error is
// returned only when current itself fails parsing.
//
// Ties for the maximum keep the first candidate encountered, so the result
// is stable for a given candidate order.
func SelectMax(current string, candidates []device.Candidate, rule family.Rule) (string, error) {
	if rule.Compound {
		return selectMaxCompound(current, candidates, rule)
	}
	return selectMaxSimple(current, candidates, rule)
}

func selectMaxSimple(current string, candidates []device.Candidate, rule family.Rule) (string, error) {
	cur, err := version.Parse(current)
	if err != nil {
		return "", fmt.Errorf("parsing current version %q: %w", current, err)
	}

	var (
		best    version.Version
		bestRaw string
	)
	for _, cand := range candidates {
		if rule.CandidateRole != "" && cand.Role != rule.CandidateRole {
			continue
		}
		v, err := version.Parse(cand.Version)
		if err != nil {
			continue
		}
		if !v.SameBranch(cur, rule.BranchPrefix) {
			continue
		}
		if bestRaw == "" || v.IsNewer(best) {
			best = v
			bestRaw = cand.Version
		}
	}
	return bestRaw, nil
}

func selectMaxCompound(current string, candidates []device.Candidate, rule family.Rule) (string, error) {
	cur, err := version.ParseCompound(current)
	if err != nil {
		return "", fmt.Errorf("parsing current version %q: %w", current, err)
	}

	var (
		best    version.Compound
		bestRaw string
	)
	for _, cand := range candidates {
		if rule.CandidateRole != "" && cand.Role != rule.CandidateRole {
			continue
		}
		c, err := version.ParseCompound(cand.Version)
		if err != nil {
			continue
		}
		if !c.SameBranch(cur, rule.BranchPrefix) {
			continue
		}
		if bestRaw == "" || c.IsNewer(best) {
			best = c
			bestRaw = cand.Version
		}
	}
	return bestRaw, nil
}
