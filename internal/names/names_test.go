package names

import "testing"

func TestStrictNameExact(t *testing.T) {
	tests := []struct {
		registered, candidate string
		want                  float64
	}{
		{"Tuttle Creek Dam", "Tuttle Creek Lake", 1},
		{"Tuttle Creek", "Tuttle Creek Reservoir", 1},
		{"Presa El Oro", "El Oro", 1},
		{"Hoover Dam", "Grand Coulee Dam", 0},
	}

	for _, tt := range tests {
		got := StrictName(tt.registered, tt.candidate, "us")
		if got != tt.want {
			t.Errorf("StrictName(%q, %q) = %v, expected %v", tt.registered, tt.candidate, got, tt.want)
		}
	}
}

func TestStrictNameSentinels(t *testing.T) {
	tests := []struct {
		registered, candidate string
	}{
		{"-999", "Tuttle Creek"},
		{"unknown", "Tuttle Creek"},
		{"Unnamed Dam 3", "Tuttle Creek"},
		{"Tuttle Creek", "not found"},
		{"", "Tuttle Creek"},
	}

	for _, tt := range tests {
		if got := StrictName(tt.registered, tt.candidate, "us"); got != 0 {
			t.Errorf("StrictName(%q, %q) = %v, expected 0", tt.registered, tt.candidate, got)
		}
	}
}

func TestStrictNameNumeralGate(t *testing.T) {
	tests := []struct {
		registered, candidate string
		want                  float64
	}{
		{"Tuttle Creek I", "Tuttle Creek 1", 1},
		{"Tuttle Creek 1", "Tuttle Creek I", 1},
		{"Tuttle Creek Two", "Tuttle Creek 2", 1},
		{"Tuttle Creek 1", "Tuttle Creek 2", 0},
		{"Tuttle Creek 1", "Tuttle Creek", 0},
		{"Tuttle Creek", "Tuttle Creek 2", 0},
		{"Tuttle Creek II", "Tuttle Creek", 0},
		{"Tuttle Creek", "Tuttle Creek Two", 0},
		{"Tuttle Creek I", "Tuttle Creek II", 0},
	}

	for _, tt := range tests {
		got := StrictName(tt.registered, tt.candidate, "us")
		if got != tt.want {
			t.Errorf("StrictName(%q, %q) = %v, expected %v", tt.registered, tt.candidate, got, tt.want)
		}
	}
}

func TestStrictNameQualifierGate(t *testing.T) {
	tests := []struct {
		registered, candidate string
		want                  float64
	}{
		{"Upper Tuttle Creek", "Tuttle Creek", 0},
		{"Tuttle Creek", "Lower Tuttle Creek", 0},
		{"East Fork Dam", "West Fork Dam", 0},
		{"Upper Tuttle Creek", "Upper Tuttle Creek", 1},
	}

	for _, tt := range tests {
		got := StrictName(tt.registered, tt.candidate, "us")
		if got != tt.want {
			t.Errorf("StrictName(%q, %q) = %v, expected %v", tt.registered, tt.candidate, got, tt.want)
		}
	}
}

func TestStrictNameSharedToken(t *testing.T) {
	// one specific token in common is weak evidence
	got := StrictName("Milford Flood Control", "Milford State Park", "us")
	if got != 0.5 {
		t.Errorf("StrictName on shared specific token = %v, expected 0.5", got)
	}

	// generic tokens never carry a match on their own
	got = StrictName("North Storage Site", "Storage Basin", "us")
	if got != 0 {
		t.Errorf("StrictName on generic tokens = %v, expected 0", got)
	}
}

func TestStrictNameChineseSuffix(t *testing.T) {
	got := StrictName("Xinfengjiang Shuiku", "Xinfengjiang", "cn")
	if got != 1 {
		t.Errorf("StrictName with trailing shuiku in cn = %v, expected 1", got)
	}
}

func TestBestStrict(t *testing.T) {
	registered := []string{"Main Embankment", "Tuttle Creek Dam", "Tuttle Creek Lake"}
	if got := BestStrict(registered, "Tuttle Creek", "us"); got != 1 {
		t.Errorf("BestStrict = %v, expected 1", got)
	}

	registered = []string{"-999", "Milford Flood Control"}
	if got := BestStrict(registered, "Milford State Park", "us"); got != 0.5 {
		t.Errorf("BestStrict over weak match = %v, expected 0.5", got)
	}
}

func TestLenientName(t *testing.T) {
	tests := []struct {
		registered, candidate string
		want                  float64
	}{
		{"Tuttle Creek Dam", "Tuttle Creek Lake", 1},
		{"Tuttle Creek 1", "Tuttle Creek 2", 1}, // no numeral gate
		{"Hoover Dam", "Grand Coulee Dam", 0},
		{"Tuttle Creek", "not found", 0},
	}

	for _, tt := range tests {
		got := LenientName(tt.registered, tt.candidate)
		if got != tt.want {
			t.Errorf("LenientName(%q, %q) = %v, expected %v", tt.registered, tt.candidate, got, tt.want)
		}
	}
}

func TestRiverSimilar(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"Big Blue River", "Big Blue", 1},
		{"Rio Grande", "Grande", 1},
		{"sem denominação", "Big Blue River", 0},
		{"Kansas River", "Missouri River", 0},
	}

	for _, tt := range tests {
		got := RiverSimilar(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("RiverSimilar(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestYearSimilar(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"1962", "1962", 1},
		{"1962", "1963", 1},
		{"1962", "1961", 1},
		{"1962", "1964", 0},
		{"962", "962", 1},
		{"19620", "19621", 1},
		{"1962", "", 0},
		{"-999", "1962", 0},
		{"circa", "1962", 0},
	}

	for _, tt := range tests {
		got := YearSimilar(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("YearSimilar(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.want)
		}
	}
}
