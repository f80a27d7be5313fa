package adaptive

import (
	"math/rand"
	"testing"
)

func TestUpdateMastery_CorrectMovesTowardOne(t *testing.T) {
	cfg := DefaultConfig()
	m := map[string]float64{"multiplication": 0.5}

	got := UpdateMastery(cfg, m, "multiplication", true, 0)
	want := 0.5 + cfg.MasteryStep*0.5
	if !almostEqual(got["multiplication"], want) {
		t.Errorf("mastery = %f, want %f", got["multiplication"], want)
	}
}

func TestUpdateMastery_IncorrectMovesTowardZero(t *testing.T) {
	cfg := DefaultConfig()
	m := map[string]float64{"multiplication": 0.5}

	got := UpdateMastery(cfg, m, "multiplication", false, 0)
	want := 0.5 - cfg.MasteryStep*0.5
	if !almostEqual(got["multiplication"], want) {
		t.Errorf("mastery = %f, want %f", got["multiplication"], want)
	}
}

func TestUpdateMastery_StepShrinksNearBounds(t *testing.T) {
	cfg := DefaultConfig()

	low := UpdateMastery(cfg, map[string]float64{"s": 0.1}, "s", true, 0)
	high := UpdateMastery(cfg, map[string]float64{"s": 0.9}, "s", true, 0)

	lowDelta := low["s"] - 0.1
	highDelta := high["s"] - 0.9
	if lowDelta <= highDelta {
		t.Errorf("step near ceiling (%f) should be smaller than near floor (%f)", highDelta, lowDelta)
	}
}

func TestUpdateMastery_HintDiscountOnCorrectOnly(t *testing.T) {
	cfg := DefaultConfig()

	clean := UpdateMastery(cfg, map[string]float64{"s": 0.5}, "s", true, 0)
	hinted := UpdateMastery(cfg, map[string]float64{"s": 0.5}, "s", true, 2)
	if hinted["s"] >= clean["s"] {
		t.Errorf("hinted correct (%f) should earn less than clean correct (%f)", hinted["s"], clean["s"])
	}
	if hinted["s"] <= 0.5 {
		t.Errorf("hinted correct should still be positive, got %f", hinted["s"])
	}

	// Hints never soften an incorrect answer.
	plain := UpdateMastery(cfg, map[string]float64{"s": 0.5}, "s", false, 0)
	hintedWrong := UpdateMastery(cfg, map[string]float64{"s": 0.5}, "s", false, 2)
	if !almostEqual(plain["s"], hintedWrong["s"]) {
		t.Errorf("hints changed an incorrect update: %f vs %f", plain["s"], hintedWrong["s"])
	}
}

func TestUpdateMastery_UnknownSkillStartsAtZero(t *testing.T) {
	cfg := DefaultConfig()

	got := UpdateMastery(cfg, nil, "fractions", true, 0)
	if !almostEqual(got["fractions"], cfg.MasteryStep) {
		t.Errorf("mastery = %f, want %f", got["fractions"], cfg.MasteryStep)
	}
}

func TestUpdateMastery_StaysInBounds(t *testing.T) {
	cfg := DefaultConfig()

	m := map[string]float64{"s": 0.0}
	for range 100 {
		m = UpdateMastery(cfg, m, "s", true, 0)
	}
	if m["s"] > 1.0 {
		t.Errorf("mastery exceeded 1.0: %f", m["s"])
	}

	for range 100 {
		m = UpdateMastery(cfg, m, "s", false, 0)
	}
	if m["s"] < 0.0 {
		t.Errorf("mastery fell below 0.0: %f", m["s"])
	}
}

func TestUpdateMastery_InputMapNotMutated(t *testing.T) {
	cfg := DefaultConfig()
	m := map[string]float64{"s": 0.5}

	UpdateMastery(cfg, m, "s", true, 0)
	if m["s"] != 0.5 {
		t.Errorf("input map mutated: %f", m["s"])
	}
}

func TestUpdateEngagement_PositiveWords(t *testing.T) {
	got := UpdateEngagement(0.5, "Great job! That was excellent work.")
	if !almostEqual(got, 0.7) {
		t.Errorf("engagement = %f, want 0.7", got)
	}
}

func TestUpdateEngagement_Clamped(t *testing.T) {
	got := UpdateEngagement(0.95, "Great! Excellent! Awesome! Fantastic!")
	if got != 1.0 {
		t.Errorf("engagement = %f, want 1.0", got)
	}

	if got := UpdateEngagement(0.4, "Let us move on."); !almostEqual(got, 0.4) {
		t.Errorf("neutral response changed engagement: %f", got)
	}
}

func TestUpdateMastery_RandomizedSequencesStayBounded(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(20260831))

	skills := []string{"addition", "subtraction", "multiplication"}
	mastery := map[string]float64{}
	for i := 0; i < 2000; i++ {
		skill := skills[rng.Intn(len(skills))]
		mastery = UpdateMastery(cfg, mastery, skill, rng.Intn(2) == 0, rng.Intn(5))

		for id, v := range mastery {
			if v < 0 || v > 1 {
				t.Fatalf("step %d: mastery[%s] = %f escaped [0, 1]", i, id, v)
			}
		}
	}
}
