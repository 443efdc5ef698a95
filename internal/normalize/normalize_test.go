package normalize

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Tuttle Creek  ", "tuttle creek"},
		{"Paraná", "parana"},
		{"Embalse de Alarcón", "embalse de alarcon"},
		{"RÉUNION", "reunion"},
		{"bío bío", "bio bio"},
		{"", ""},
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		if got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"São Francisco", "  Daǧestan ", "crétaux", "plain ascii"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSplitParts(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"kansas/colorado", []string{"kansas", "colorado"}},
		{`ont\que`, []string{"ont", "que"}},
		{"a / b /", []string{"a", "b"}},
		{"single", []string{"single"}},
		{" padded ", []string{"padded"}},
	}

	for _, tt := range tests {
		got := SplitParts(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitParts(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestStripReservoirSuffix(t *testing.T) {
	tests := []struct {
		name     string
		iso      string
		expected string
	}{
		{"dongfanghongshuiku", "cn", "dongfanghong"},
		{"xyshuiku", "cn", "xyshuiku"}, // too short to strip safely
		{"dongfanghongshuiku", "us", "dongfanghongshuiku"},
	}

	for _, tt := range tests {
		got := StripReservoirSuffix(tt.name, tt.iso)
		if got != tt.expected {
			t.Errorf("StripReservoirSuffix(%q, %q) = %q, expected %q", tt.name, tt.iso, got, tt.expected)
		}
	}
}

func TestStripTownSuffix(t *testing.T) {
	tests := []struct {
		town     string
		iso      string
		expected string
	}{
		{"miyunxian", "cn", "miyun"},
		{"beijingshi", "cn", "beijing"},
		{"haidianqu", "cn", "haidian"},
		{"xian", "cn", "xian"}, // nothing left after stripping
		{"miyunxian", "br", "miyunxian"},
	}

	for _, tt := range tests {
		got := StripTownSuffix(tt.town, tt.iso)
		if got != tt.expected {
			t.Errorf("StripTownSuffix(%q, %q) = %q, expected %q", tt.town, tt.iso, got, tt.expected)
		}
	}
}

func TestStripDivisionSuffix(t *testing.T) {
	tests := []struct {
		division string
		iso      string
		expected string
	}{
		{"hebei sheng", "cn", "hebei"},
		{"miyun xian", "cn", "miyun"},
		{"baoding shi", "cn", "baoding"},
		{"chaoyang qu", "cn", "chaoyang"},
		{"hebei sheng", "us", "hebei sheng"},
	}

	for _, tt := range tests {
		got := StripDivisionSuffix(tt.division, tt.iso)
		if got != tt.expected {
			t.Errorf("StripDivisionSuffix(%q, %q) = %q, expected %q", tt.division, tt.iso, got, tt.expected)
		}
	}
}
