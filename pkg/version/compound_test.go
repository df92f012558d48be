package version

import (
	"errors"
	"testing"
)

func TestParseCompound(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		primary   string
		secondary string
		wantErr   error
	}{
		{
			name:      "gateway version",
			input:     "8.7.0.0-2.3.0.9",
			primary:   "8.7.0.0",
			secondary: "2.3.0.9",
		},
		{
			name:    "missing separator",
			input:   "8.7.0.0",
			wantErr: ErrMalformedCompound,
		},
		{
			name:    "duplicated separator",
			input:   "8.7.0.0-2.3.0.9-1.0.0.0",
			wantErr: ErrMalformedCompound,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrEmptyVersion,
		},
		{
			name:    "malformed primary",
			input:   "abc-2.3.0.9",
			wantErr: ErrTooFewSegments,
		},
		{
			name:    "malformed secondary",
			input:   "8.7.0.0-xyz",
			wantErr: ErrTooFewSegments,
		},
		{
			name:    "empty secondary",
			input:   "8.7.0.0-",
			wantErr: ErrEmptyVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompound(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCompound(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCompound(%q) unexpected error: %v", tt.input, err)
			}
			if got.Primary.String() != tt.primary {
				t.Errorf("primary = %s, want %s", got.Primary, tt.primary)
			}
			if got.Secondary.String() != tt.secondary {
				t.Errorf("secondary = %s, want %s", got.Secondary, tt.secondary)
			}
		})
	}
}

func TestCompoundCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{
			name: "equal",
			a:    "8.7.0.0-2.3.0.9",
			b:    "8.7.0.0-2.3.0.9",
			want: 0,
		},
		{
			name: "secondary breaks primary tie",
			a:    "8.7.0.0-2.3.1.0",
			b:    "8.7.0.0-2.3.0.9",
			want: 1,
		},
		{
			name: "greater primary wins regardless of secondary",
			a:    "8.8.0.0-1.0.0.0",
			b:    "8.7.0.0-9.9.9.9",
			want: 1,
		},
		{
			name: "lesser primary loses regardless of secondary",
			a:    "8.6.0.0-9.9.9.9",
			b:    "8.7.0.0-1.0.0.0",
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParseCompound(tt.a).Compare(MustParseCompound(tt.b))
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompoundSameBranch(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		prefix int
		want   bool
	}{
		{
			name:   "same primary branch different secondary",
			a:      "8.7.0.0-2.3.0.9",
			b:      "8.7.0.0-9.9.9.9",
			prefix: 2,
			want:   true,
		},
		{
			name:   "same primary branch different patch",
			a:      "8.7.0.0-2.3.0.9",
			b:      "8.7.1.0-2.3.0.9",
			prefix: 2,
			want:   true,
		},
		{
			name:   "different primary branch",
			a:      "8.7.0.0-2.3.0.9",
			b:      "8.8.0.0-2.3.0.9",
			prefix: 2,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParseCompound(tt.a).SameBranch(MustParseCompound(tt.b), tt.prefix)
			if got != tt.want {
				t.Errorf("SameBranch(%q, %q, %d) = %v, want %v", tt.a, tt.b, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestCompoundString(t *testing.T) {
	const in = "8.7.0.0-2.3.0.9"
	if got := MustParseCompound(in).String(); got != in {
		t.Errorf("String() = %q, want %q", got, in)
	}
}
