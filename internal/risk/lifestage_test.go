package risk_test

import (
	"testing"

	"nuros/internal/risk"
)

func TestParseLifeStage(t *testing.T) {
	cases := []struct {
		input string
		want  risk.LifeStage
	}{
		{"", risk.LifeStageGeneral},
		{"general", risk.LifeStageGeneral},
		{"General", risk.LifeStageGeneral},
		{"PREGNANCY", risk.LifeStagePregnancy},
		{" menopause ", risk.LifeStageMenopause},
	}
	for _, tc := range cases {
		got, err := risk.ParseLifeStage(tc.input)
		if err != nil {
			t.Fatalf("ParseLifeStage(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseLifeStage(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseLifeStageRejectsUnknown(t *testing.T) {
	if _, err := risk.ParseLifeStage("puberty"); err == nil {
		t.Fatal("expected error for unknown life stage")
	}
}
