package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/pupilplay/engine/internal/actions"
	"github.com/pupilplay/engine/internal/adaptive"
	"github.com/pupilplay/engine/internal/episode"
)

func trackerContext(t *testing.T) (context.Context, *episode.State) {
	t.Helper()
	st := episode.NewState("ep-1")
	tracker := adaptive.NewTracker(adaptive.DefaultConfig(), st)
	return adaptive.WithTracker(context.Background(), tracker), st
}

func lookupHandler(t *testing.T, name string) actions.HandlerFunc {
	t.Helper()
	reg := actions.NewRegistry()
	if err := Register(reg, Config{}); err != nil {
		t.Fatal(err)
	}
	registration, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("action %q not registered", name)
	}
	return registration.Handler
}

func TestRegister_AllBuiltins(t *testing.T) {
	reg := actions.NewRegistry()
	if err := Register(reg, Config{}); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"adjust_difficulty",
		"create_problem",
		"generate_hint",
		"generate_visual_asset",
		"trigger_celebration",
		"update_progress",
	}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("registered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("registered %v, want %v", got, want)
		}
	}
}

func TestUpdateProgress(t *testing.T) {
	ctx, st := trackerContext(t)
	handler := lookupHandler(t, "update_progress")

	payload, err := handler(ctx, json.RawMessage(
		`{"skill_category":"multiplication","correct":true,"response_time_ms":4000,"hints_used":0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out struct {
		SkillCategory string  `json:"skill_category"`
		Mastery       float64 `json:"mastery"`
		Difficulty    float64 `json:"difficulty"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatal(err)
	}
	if out.Mastery <= 0 {
		t.Errorf("mastery = %f, want > 0 after a correct answer", out.Mastery)
	}
	if st.Mastery["multiplication"] != out.Mastery {
		t.Errorf("payload mastery %f != state %f", out.Mastery, st.Mastery["multiplication"])
	}
	if len(st.Window) != 1 {
		t.Errorf("window samples = %d, want 1", len(st.Window))
	}
}

func TestUpdateProgress_RequiresSkill(t *testing.T) {
	ctx, _ := trackerContext(t)
	handler := lookupHandler(t, "update_progress")

	if _, err := handler(ctx, json.RawMessage(`{"correct":true}`)); err == nil {
		t.Fatal("expected error for missing skill_category")
	}
}

func TestUpdateProgress_NoTracker(t *testing.T) {
	handler := lookupHandler(t, "update_progress")

	_, err := handler(context.Background(), json.RawMessage(`{"skill_category":"s"}`))
	if !errors.Is(err, ErrNoTracker) {
		t.Fatalf("expected ErrNoTracker, got %v", err)
	}
}

func TestAdjustDifficulty_Clamps(t *testing.T) {
	ctx, st := trackerContext(t)
	handler := lookupHandler(t, "adjust_difficulty")

	payload, err := handler(ctx, json.RawMessage(
		`{"new_difficulty_level":99,"adjustment_rationale":"player is cruising"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out struct {
		Difficulty float64 `json:"difficulty"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatal(err)
	}
	cfg := adaptive.DefaultConfig()
	if out.Difficulty != cfg.MaxDifficulty {
		t.Errorf("difficulty = %f, want clamped to %f", out.Difficulty, cfg.MaxDifficulty)
	}
	if st.Difficulty != cfg.MaxDifficulty {
		t.Errorf("state difficulty = %f, want %f", st.Difficulty, cfg.MaxDifficulty)
	}
}

func TestCreateProblem_Deterministic(t *testing.T) {
	ctx, _ := trackerContext(t)
	handler := lookupHandler(t, "create_problem")

	args := json.RawMessage(`{"difficulty_level":0.8,"learning_objectives":["times tables"]}`)
	first, err := handler(ctx, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := handler(ctx, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("same difficulty produced different problems:\n%s\n%s", first, second)
	}

	var p Problem
	if err := json.Unmarshal(first, &p); err != nil {
		t.Fatal(err)
	}
	if p.Answer == 0 || p.Prompt == "" {
		t.Errorf("incomplete problem: %+v", p)
	}
}

func TestCreateProblem_UsesTrackerDifficultyWhenUnset(t *testing.T) {
	ctx, st := trackerContext(t)
	handler := lookupHandler(t, "create_problem")

	payload, err := handler(ctx, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var p Problem
	if err := json.Unmarshal(payload, &p); err != nil {
		t.Fatal(err)
	}
	if p.Difficulty != st.Difficulty {
		t.Errorf("problem difficulty = %f, want episode difficulty %f", p.Difficulty, st.Difficulty)
	}
}

func TestGenerateHint_KnownAndFallbackTypes(t *testing.T) {
	ctx, _ := trackerContext(t)
	handler := lookupHandler(t, "generate_hint")

	payload, err := handler(ctx, json.RawMessage(`{"hint_type":"visual","visual_support":true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out struct {
		HintType string `json:"hint_type"`
		Hint     string `json:"hint"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatal(err)
	}
	if out.Hint == "" {
		t.Error("empty hint")
	}

	// Unknown types fall back to a conceptual hint rather than failing.
	payload, err = handler(ctx, json.RawMessage(`{"hint_type":"interpretive-dance"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatal(err)
	}
	if out.Hint == "" {
		t.Error("empty fallback hint")
	}
}

type stubPipeline struct {
	url string
	err error
}

func (s *stubPipeline) GenerateAsset(_ context.Context, assetType, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url + "/" + assetType, nil
}

func TestGenerateVisualAsset(t *testing.T) {
	ctx, _ := trackerContext(t)

	reg := actions.NewRegistry()
	if err := Register(reg, Config{Assets: &stubPipeline{url: "https://assets.test"}}); err != nil {
		t.Fatal(err)
	}
	registration, _ := reg.Lookup("generate_visual_asset")

	payload, err := registration.Handler(ctx, json.RawMessage(
		`{"asset_type":"diagram","educational_context":"arrays"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatal(err)
	}
	if out.URL != "https://assets.test/diagram" {
		t.Errorf("url = %q", out.URL)
	}
}

func TestGenerateVisualAsset_NoPipeline(t *testing.T) {
	ctx, _ := trackerContext(t)
	handler := lookupHandler(t, "generate_visual_asset")

	if _, err := handler(ctx, json.RawMessage(`{"asset_type":"diagram"}`)); err == nil {
		t.Fatal("expected error without an asset pipeline")
	}
}

func TestTriggerCelebration(t *testing.T) {
	ctx, _ := trackerContext(t)
	handler := lookupHandler(t, "trigger_celebration")

	payload, err := handler(ctx, json.RawMessage(`{"achievement_context":"ten in a row"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatal(err)
	}
	if out["context"] != "ten in a row" {
		t.Errorf("context = %q", out["context"])
	}
}
