package adaptive

import (
	"context"
	"sync"
	"testing"

	"github.com/pupilplay/engine/internal/episode"
)

func TestTracker_RecordOutcomeUpdatesState(t *testing.T) {
	cfg := DefaultConfig()
	st := episode.NewState("ep-1")

	tracker := NewTracker(cfg, st)
	difficulty, mastery := tracker.RecordOutcome(Event{
		SkillID:   "multiplication",
		Correct:   true,
		LatencyMs: 3000,
	})

	if len(st.Window) != 1 {
		t.Fatalf("expected 1 window sample, got %d", len(st.Window))
	}
	if st.Difficulty != difficulty {
		t.Errorf("returned difficulty %f != state %f", difficulty, st.Difficulty)
	}
	if st.Mastery["multiplication"] != mastery {
		t.Errorf("returned mastery %f != state %f", mastery, st.Mastery["multiplication"])
	}
	if mastery <= 0 {
		t.Errorf("mastery should rise after a correct answer, got %f", mastery)
	}
}

func TestTracker_SetDifficultyClamps(t *testing.T) {
	cfg := DefaultConfig()
	st := episode.NewState("ep-1")
	tracker := NewTracker(cfg, st)

	if got := tracker.SetDifficulty(99); got != cfg.MaxDifficulty {
		t.Errorf("SetDifficulty(99) = %f, want %f", got, cfg.MaxDifficulty)
	}
	if got := tracker.SetDifficulty(-1); got != cfg.MinDifficulty {
		t.Errorf("SetDifficulty(-1) = %f, want %f", got, cfg.MinDifficulty)
	}
	if got := tracker.SetDifficulty(0.8); got != 0.8 {
		t.Errorf("SetDifficulty(0.8) = %f, want 0.8", got)
	}
}

func TestTracker_ConcurrentRecordOutcome(t *testing.T) {
	cfg := DefaultConfig()
	st := episode.NewState("ep-1")
	tracker := NewTracker(cfg, st)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(correct bool) {
			defer wg.Done()
			tracker.RecordOutcome(Event{SkillID: "s", Correct: correct, LatencyMs: 5000})
		}(i%2 == 0)
	}
	wg.Wait()

	if len(st.Window) != 10 {
		t.Fatalf("expected 10 window samples, got %d", len(st.Window))
	}
}

func TestTrackerContext(t *testing.T) {
	tracker := NewTracker(DefaultConfig(), episode.NewState("ep-1"))

	ctx := WithTracker(context.Background(), tracker)
	got, ok := TrackerFrom(ctx)
	if !ok || got != tracker {
		t.Fatal("tracker not recoverable from context")
	}

	if _, ok := TrackerFrom(context.Background()); ok {
		t.Fatal("bare context should carry no tracker")
	}
}
