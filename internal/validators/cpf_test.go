package validators

import "testing"

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"valid", "52998224725", true},
		{"valid formatted", "529.982.247-25", true},
		{"another valid", "15350946056", true},
		{"wrong first check digit", "52998224735", false},
		{"wrong second check digit", "52998224724", false},
		{"all identical digits", "11111111111", false},
		{"too short", "5299822472", false},
		{"too long", "529982247251", false},
		{"empty", "", false},
		{"letters", "abcdefghijk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCPF(tt.cpf); got != tt.want {
				t.Fatalf("IsValidCPF(%q) = %v, want %v", tt.cpf, got, tt.want)
			}
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"529.982.247-25", "52998224725"},
		{"52998224725", "52998224725"},
		{" 529 982 247 25 ", "52998224725"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeCPF(tt.in); got != tt.want {
			t.Fatalf("NormalizeCPF(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
