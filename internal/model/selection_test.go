package model

import "testing"

func TestPayloadRangeContainsIsStrict(t *testing.T) {
	r := PayloadRange{Low: 1000, High: 5000}

	cases := []struct {
		kg   float64
		want bool
	}{
		{999, false},
		{1000, false},
		{1000.5, true},
		{4999, true},
		{5000, false},
		{6000, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.kg); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.kg, got, tc.want)
		}
	}
}

func TestPayloadRangeNormalize(t *testing.T) {
	limits := PayloadRange{Low: 0, High: 9600}

	got := PayloadRange{Low: 12000, High: -5}.Normalize(limits)
	if got.Low != 0 || got.High != 9600 {
		t.Fatalf("Normalize swapped+clamped = %+v, want {0 9600}", got)
	}

	got = PayloadRange{Low: 2000, High: 3000}.Normalize(limits)
	if got.Low != 2000 || got.High != 3000 {
		t.Fatalf("Normalize in-range = %+v, want unchanged", got)
	}
}

func TestIsAllSites(t *testing.T) {
	for _, s := range []string{"", "ALL", "  ALL "} {
		if !IsAllSites(s) {
			t.Errorf("IsAllSites(%q) = false, want true", s)
		}
	}
	if IsAllSites("KSC LC-39A") {
		t.Error("IsAllSites(KSC LC-39A) = true, want false")
	}
}

func TestScatterFigureSeriesFollowsCategoryOrder(t *testing.T) {
	fig := ScatterFigure{
		Categories: []string{"v1.1", "FT"},
		Points: []ScatterPoint{
			{PayloadKg: 1, BoosterCategory: "FT"},
			{PayloadKg: 2, BoosterCategory: "v1.1"},
			{PayloadKg: 3, BoosterCategory: "FT"},
		},
	}

	series := fig.Series()
	if len(series) != 2 {
		t.Fatalf("len(series) = %d, want 2", len(series))
	}
	if series[0].Category != "v1.1" || len(series[0].Points) != 1 {
		t.Errorf("series[0] = %+v, want v1.1 with 1 point", series[0])
	}
	if series[1].Category != "FT" || len(series[1].Points) != 2 {
		t.Errorf("series[1] = %+v, want FT with 2 points", series[1])
	}
}
