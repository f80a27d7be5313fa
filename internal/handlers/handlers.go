// Package handlers registers the built-in game actions the game master
// can request during a turn. Every handler reads its arguments from raw
// JSON, mutates episode state only through the adaptive tracker bound
// to the dispatch context, and returns a JSON payload that is appended
// to the episode history as action feedback.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pupilplay/engine/internal/actions"
	"github.com/pupilplay/engine/internal/adaptive"
)

// ErrNoTracker is returned when a state-mutating handler runs outside
// an orchestrated turn.
var ErrNoTracker = errors.New("no adaptive tracker in context")

// AssetPipeline produces visual assets for the generate_visual_asset
// action. Implementations live outside the engine (image generation
// backends, static asset catalogs); a nil pipeline makes the action
// fail as a handler error.
type AssetPipeline interface {
	GenerateAsset(ctx context.Context, assetType, educationalContext string) (url string, err error)
}

// Config wires optional collaborators into the built-in handlers.
type Config struct {
	Assets AssetPipeline
}

// Register adds the six built-in game actions to the registry.
func Register(reg *actions.Registry, cfg Config) error {
	builtins := []actions.Registration{
		{
			Name:    "adjust_difficulty",
			Tags:    []string{"mutates-progress"},
			Handler: adjustDifficulty,
		},
		{
			Name:    "generate_hint",
			Tags:    []string{"guidance"},
			Handler: generateHint,
		},
		{
			Name:    "create_problem",
			Tags:    []string{"content"},
			Handler: createProblem,
		},
		{
			Name:    "update_progress",
			Tags:    []string{"mutates-progress"},
			Handler: updateProgress,
		},
		{
			Name:    "trigger_celebration",
			Tags:    []string{"engagement"},
			Handler: triggerCelebration,
		},
		{
			Name:    "generate_visual_asset",
			Tags:    []string{"generates-asset"},
			Handler: generateVisualAsset(cfg.Assets),
		},
	}

	for _, b := range builtins {
		if err := reg.Register(b); err != nil {
			return err
		}
	}
	return nil
}

func trackerFrom(ctx context.Context) (*adaptive.Tracker, error) {
	t, ok := adaptive.TrackerFrom(ctx)
	if !ok {
		return nil, ErrNoTracker
	}
	return t, nil
}

func adjustDifficulty(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	var in struct {
		NewDifficultyLevel  float64 `json:"new_difficulty_level"`
		AdjustmentRationale string  `json:"adjustment_rationale"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("adjust_difficulty args: %w", err)
	}

	tracker, err := trackerFrom(ctx)
	if err != nil {
		return nil, err
	}
	applied := tracker.SetDifficulty(in.NewDifficultyLevel)

	return json.Marshal(map[string]any{
		"difficulty": applied,
		"rationale":  in.AdjustmentRationale,
	})
}

func generateHint(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	var in struct {
		HintType      string `json:"hint_type"`
		VisualSupport bool   `json:"visual_support"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("generate_hint args: %w", err)
	}
	if in.HintType == "" {
		in.HintType = "conceptual"
	}

	hint, ok := hintTemplates[in.HintType]
	if !ok {
		hint = hintTemplates["conceptual"]
	}

	return json.Marshal(map[string]any{
		"hint_type":      in.HintType,
		"hint":           hint,
		"visual_support": in.VisualSupport,
	})
}

// hintTemplates are the scaffolding lines the hint action hands back to
// the game master, keyed by hint style.
var hintTemplates = map[string]string{
	"conceptual": "Think about what the numbers mean: what groups are you combining?",
	"procedural": "Break it into steps. Solve the smaller piece first, then build up.",
	"visual":     "Picture the problem as rows and columns, like tiles on a floor.",
	"worked":     "Try a similar, easier problem first and follow the same steps here.",
}

func createProblem(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	var in struct {
		DifficultyLevel    float64  `json:"difficulty_level"`
		LearningObjectives []string `json:"learning_objectives"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("create_problem args: %w", err)
	}

	level := in.DifficultyLevel
	if level <= 0 {
		tracker, err := trackerFrom(ctx)
		if err != nil {
			return nil, err
		}
		level = tracker.Difficulty()
	}

	problem := buildProblem(level, in.LearningObjectives)
	return json.Marshal(problem)
}

// Problem is the deterministic arithmetic problem create_problem emits.
// Operand ranges scale with difficulty so the same level always yields
// the same problem shape.
type Problem struct {
	Prompt     string   `json:"prompt"`
	Answer     int      `json:"answer"`
	Difficulty float64  `json:"difficulty"`
	Objectives []string `json:"objectives,omitempty"`
}

func buildProblem(level float64, objectives []string) Problem {
	// Operands grow with difficulty: level 0.2 yields single digits,
	// level 2.0 reaches into two-digit multiplication.
	a := 2 + int(level*6)
	b := 3 + int(level*4)

	return Problem{
		Prompt:     fmt.Sprintf("What is %d x %d?", a, b),
		Answer:     a * b,
		Difficulty: level,
		Objectives: objectives,
	}
}

func updateProgress(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	var in struct {
		SkillCategory  string `json:"skill_category"`
		Correct        bool   `json:"correct"`
		ResponseTimeMs int    `json:"response_time_ms"`
		HintsUsed      int    `json:"hints_used"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("update_progress args: %w", err)
	}
	if in.SkillCategory == "" {
		return nil, errors.New("update_progress: skill_category is required")
	}

	tracker, err := trackerFrom(ctx)
	if err != nil {
		return nil, err
	}

	difficulty, mastery := tracker.RecordOutcome(adaptive.Event{
		SkillID:   in.SkillCategory,
		Correct:   in.Correct,
		LatencyMs: in.ResponseTimeMs,
		Hints:     in.HintsUsed,
	})

	return json.Marshal(map[string]any{
		"skill_category": in.SkillCategory,
		"mastery":        mastery,
		"difficulty":     difficulty,
	})
}

func triggerCelebration(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	var in struct {
		AchievementContext string `json:"achievement_context"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("trigger_celebration args: %w", err)
	}

	return json.Marshal(map[string]any{
		"celebration": "confetti",
		"context":     in.AchievementContext,
	})
}

func generateVisualAsset(assets AssetPipeline) actions.HandlerFunc {
	return func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		var in struct {
			AssetType          string `json:"asset_type"`
			EducationalContext string `json:"educational_context"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, fmt.Errorf("generate_visual_asset args: %w", err)
		}
		if assets == nil {
			return nil, errors.New("generate_visual_asset: no asset pipeline configured")
		}

		url, err := assets.GenerateAsset(ctx, in.AssetType, in.EducationalContext)
		if err != nil {
			return nil, fmt.Errorf("generate asset: %w", err)
		}

		return json.Marshal(map[string]any{
			"asset_type": in.AssetType,
			"url":        url,
		})
	}
}
