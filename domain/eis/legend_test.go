package eis

import "testing"

func TestLegendName(t *testing.T) {
	cases := []struct {
		name     string
		cellName string
		want     string
	}{
		{"channel suffix stripped", "17153_trial_C01", "17153_trial"},
		{"single digit channel", "17153_trial_C1", "17153_trial"},
		{"no underscore before channel", "17153_trialC1", "17153_trialC1"},
		{"no underscore at all", "17153", "17153"},
		{"trailing segment not a channel", "17153_trial_D01", "17153_trial_D01"},
		{"channel token needs digits", "17153_trial_C", "17153_trial_C"},
		{"only the last underscore counts", "17_C02_notes", "17_C02_notes"},
		{"empty name", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LegendName(tc.cellName); got != tc.want {
				t.Errorf("LegendName(%q) = %q, want %q", tc.cellName, got, tc.want)
			}
		})
	}
}

func TestLeadingID(t *testing.T) {
	cases := []struct {
		cellName string
		want     string
	}{
		{"17153_trial_C01", "17153"},
		{"17153", "17153"},
		{"_trailing", ""},
		{"abc_1", "abc"},
	}

	for _, tc := range cases {
		if got := LeadingID(tc.cellName); got != tc.want {
			t.Errorf("LeadingID(%q) = %q, want %q", tc.cellName, got, tc.want)
		}
	}
}

func TestIdentifierSetSortedNumeric(t *testing.T) {
	set := IdentifierSet{}
	for _, id := range []string{"10", "2", "17153", "1"} {
		set.Add(id)
	}

	got := set.SortedNumeric()
	want := []string{"1", "2", "10", "17153"}
	if len(got) != len(want) {
		t.Fatalf("SortedNumeric() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedNumeric() = %v, want %v", got, want)
		}
	}
}
