package lib

import (
	"reflect"
	"testing"
)

func TestTokenizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "company and site",
			input: "Medicuc Soacha",
			want:  []string{"MEDICUC", "SOACHA"},
		},
		{
			name:  "stop words dropped",
			input: "Clinica de la Sabana",
			want:  []string{"CLINICA", "SABANA"},
		},
		{
			name:  "diacritics stripped",
			input: "Clínica María del Pilar",
			want:  []string{"CLINICA", "MARIA", "PILAR"},
		},
		{
			name:  "punctuation removed",
			input: "Medicuc - Soacha (Sede 2)",
			want:  []string{"MEDICUC", "SOACHA", "SEDE", "2"},
		},
		{
			name:  "only stop words",
			input: "de la y del",
			want:  []string{},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeName(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGeneratePrefixCandidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two tokens widen company part",
			input: "Medicuc Soacha",
			want:  []string{"MSOA", "MESO", "MEDS", "MEDI"},
		},
		{
			name:  "three tokens use initials then first and last",
			input: "Salud Familia Sabana",
			want:  []string{"SFSA", "SSAB", "SASA", "SALS"},
		},
		{
			name:  "single token",
			input: "Medicuc",
			want:  []string{"MEDI", "MMED", "MEME", "MEDM"},
		},
		{
			name:  "empty name falls back to placeholder",
			input: "",
			want:  []string{"XXXX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneratePrefixCandidates(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GeneratePrefixCandidates(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGeneratePrefixCandidatesDeterministic(t *testing.T) {
	first := GeneratePrefixCandidates("Salud Familia Sabana Norte")
	second := GeneratePrefixCandidates("Salud Familia Sabana Norte")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("candidates not deterministic: %v vs %v", first, second)
	}
}

func TestPickUniquePrefix(t *testing.T) {
	t.Run("primary free", func(t *testing.T) {
		result := PickUniquePrefix("Medicuc Soacha", map[string]struct{}{})
		if !result.Unique {
			t.Fatal("expected unique result")
		}
		if result.Prefix != "MSOA" {
			t.Errorf("Prefix = %q, want MSOA", result.Prefix)
		}
		if result.Note != "" {
			t.Errorf("unexpected note: %q", result.Note)
		}
	})

	t.Run("primary taken falls back with note", func(t *testing.T) {
		used := map[string]struct{}{"MSOA": {}}
		result := PickUniquePrefix("Medicuc Soacha", used)
		if !result.Unique {
			t.Fatal("expected unique result")
		}
		if result.Prefix != "MESO" {
			t.Errorf("Prefix = %q, want MESO", result.Prefix)
		}
		if result.Note == "" {
			t.Error("expected an adjustment note")
		}
	})

	t.Run("all candidates taken blocks the save", func(t *testing.T) {
		used := map[string]struct{}{
			"MSOA": {}, "MESO": {}, "MEDS": {}, "MEDI": {},
		}
		result := PickUniquePrefix("Medicuc Soacha", used)
		if result.Unique {
			t.Fatal("expected non-unique result")
		}
		if result.Prefix != "MSOA" {
			t.Errorf("Prefix = %q, want primary MSOA", result.Prefix)
		}
		if result.Note == "" {
			t.Error("expected an exhaustion note")
		}
	})

	t.Run("unrelated used prefixes do not interfere", func(t *testing.T) {
		used := map[string]struct{}{"TBOG": {}, "SFSA": {}}
		result := PickUniquePrefix("TecnoGlobal Barranquilla", used)
		if !result.Unique || result.Prefix != "TBAR" {
			t.Errorf("got %+v, want unique TBAR", result)
		}
	})
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"msoa", "MSOA"},
		{"ab", "ABXX"},
		{"", "XXXX"},
		{"a-b1c2", "AB1C"},
		{"toolong", "TOOL"},
	}

	for _, tt := range tests {
		if got := NormalizePrefix(tt.input); got != tt.want {
			t.Errorf("NormalizePrefix(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
