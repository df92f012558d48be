package family

import "testing"

func TestRuleFor(t *testing.T) {
	tests := []struct {
		tag          Tag
		wantCompound bool
		wantRole     string
		wantPrefix   int
	}{
		{tag: AccessPoint, wantPrefix: 2},
		{tag: SwitchAOS, wantPrefix: 2},
		{tag: SwitchCX, wantPrefix: 2},
		{tag: Gateway, wantCompound: true, wantRole: RoleController, wantPrefix: 2},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			r, ok := RuleFor(tt.tag)
			if !ok {
				t.Fatalf("RuleFor(%s) not found", tt.tag)
			}
			if r.Compound != tt.wantCompound {
				t.Errorf("Compound = %v, want %v", r.Compound, tt.wantCompound)
			}
			if r.CandidateRole != tt.wantRole {
				t.Errorf("CandidateRole = %q, want %q", r.CandidateRole, tt.wantRole)
			}
			if r.BranchPrefix != tt.wantPrefix {
				t.Errorf("BranchPrefix = %d, want %d", r.BranchPrefix, tt.wantPrefix)
			}
			if r.SegmentCount < 2 {
				t.Errorf("SegmentCount = %d, want >= 2", r.SegmentCount)
			}
		})
	}

	if _, ok := RuleFor(Tag("UNKNOWN")); ok {
		t.Error("RuleFor returned a rule for an unknown family")
	}
}

func TestIsValid(t *testing.T) {
	for _, s := range Supported() {
		if !Tag(s).IsValid() {
			t.Errorf("supported family %q reported invalid", s)
		}
	}
	if Tag("MSP").IsValid() {
		t.Error("unknown family reported valid")
	}
}

func TestFromModel(t *testing.T) {
	tests := []struct {
		model  string
		want   Tag
		wantOK bool
	}{
		{model: "2930F-48G", want: SwitchAOS, wantOK: true},
		{model: "Aruba 2930f 24G PoE+", want: SwitchAOS, wantOK: true},
		{model: "6300M", want: SwitchCX, wantOK: true},
		{model: "CX 6200F", want: SwitchCX, wantOK: true},
		{model: "AP-515", wantOK: false},
		{model: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got, ok := FromModel(tt.model)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FromModel(%q) = (%s, %v), want (%s, %v)", tt.model, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
