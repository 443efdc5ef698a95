package similarity

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abc", "xyz", 0.0},
		{"abcd", "bcde", 0.75},
		{"tuttle creek", "tuttle creek", 1.0},
	}

	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"tuttle creek", "tuttle crek"},
		{"kansas", "arkansas"},
		{"presa del oro", "presa de oro"},
		{"shuiku", "sheng"},
	}

	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v but Ratio(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"a", ""},
		{"long name with many words", "x"},
		{"identical", "identical"},
	}

	for _, p := range pairs {
		got := Ratio(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Ratio(%q, %q) = %v, out of [0, 1]", p[0], p[1], got)
		}
	}
}

func TestScoreSentinels(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"-999", "kansas"},
		{"kansas", "-999"},
		{"", "kansas"},
		{"/", "kansas"},
		{"unknown", "kansas"},
		{"unnamed dam", "kansas"},
		{"..", "kansas"},
	}

	for _, tt := range tests {
		if got := Score(tt.a, tt.b); got != 0 {
			t.Errorf("Score(%q, %q) = %v, expected 0", tt.a, tt.b, got)
		}
	}
}

func TestScoreDelimited(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"kansas/colorado", "kansas", 1.0},
		{"kansas", "colorado/kansas", 1.0},
		{"kansas\\colorado", "Colorado", 1.0},
		{"Kansas", "KANSAS", 1.0},
	}

	for _, tt := range tests {
		got := Score(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Score(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestContainsAsUnit(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"city of springfield", "springfield", true},
		{"springfield", "city of springfield", true},
		{"springfieldville", "springfield", false},
		{"tuttle creek", "tuttle", true},
		{"tuttle-creek", "creek", true},
		{"kansas", "kansas", false},
		{"", "kansas", false},
		{"-999", "kansas", false},
	}

	for _, tt := range tests {
		if got := ContainsAsUnit(tt.a, tt.b); got != tt.want {
			t.Errorf("ContainsAsUnit(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestContainsAnyPart(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"kansas/tuttle creek", "creek", true},
		{"colorado", "kansas/colorado springs", true},
		{"colorado", "kansas/nebraska", false},
	}

	for _, tt := range tests {
		if got := ContainsAnyPart(tt.a, tt.b); got != tt.want {
			t.Errorf("ContainsAnyPart(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	f, err := r.GetByName("sequencematch")
	if err != nil {
		t.Fatalf("GetByName(sequencematch) returned error: %v", err)
	}
	if got := f.Compare("tuttle creek", "tuttle creek"); got != 1.0 {
		t.Errorf("SequenceMatch.Compare on identical names = %v, expected 1.0", got)
	}

	if _, err := r.GetByName("no-such-function"); err == nil {
		t.Error("GetByName(no-such-function) expected error, got nil")
	}
}
