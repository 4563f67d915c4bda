package sizer

import "testing"

func TestIsExact(t *testing.T) {
	tests := []struct {
		spec string
		want bool
	}{
		{"4.17.21", true},
		{"1.0.0-beta.1", true},
		{"2.0.0+build.7", true},
		{"^4.17.21", false},
		{"~1.2.3", false},
		{"*", false},
		{">=2.0.0", false},
		{"1.2", false},
		{"latest", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsExact(tt.spec); got != tt.want {
			t.Errorf("IsExact(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestIsLocal(t *testing.T) {
	tests := []struct {
		spec string
		want bool
	}{
		{"file:../left-pad", true},
		{"file:./vendor/pkg", true},
		{"4.17.21", false},
		{"^1.0.0", false},
		{"git+https://github.com/u/r.git", false},
	}

	for _, tt := range tests {
		if got := IsLocal(tt.spec); got != tt.want {
			t.Errorf("IsLocal(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}
