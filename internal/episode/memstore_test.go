package episode

import (
	"context"
	"errors"
	"testing"
)

func TestMemStore_LoadMissing(t *testing.T) {
	s := NewMemStore()

	_, err := s.Load(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemStore_CreateAndLoad(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	st := NewState("ep-1")
	st.AppendTurn(RoleUser, "hello")

	if err := s.Save(ctx, "ep-1", st, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Load(ctx, "ep-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Version != 1 {
		t.Errorf("version = %d, want 1", got.Version)
	}
	if len(got.Turns) != 1 || got.Turns[0].Content != "hello" {
		t.Errorf("turns not persisted: %+v", got.Turns)
	}
}

func TestMemStore_StaleWrite(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	st := NewState("ep-1")
	if err := s.Save(ctx, "ep-1", st, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Two actors load the same version.
	a, _ := s.Load(ctx, "ep-1")
	b, _ := s.Load(ctx, "ep-1")

	a.AppendTurn(RoleUser, "from a")
	if err := s.Save(ctx, "ep-1", a, a.Version); err != nil {
		t.Fatalf("first save: %v", err)
	}

	b.AppendTurn(RoleUser, "from b")
	if err := s.Save(ctx, "ep-1", b, b.Version); !errors.Is(err, ErrStaleWrite) {
		t.Fatalf("expected ErrStaleWrite, got %v", err)
	}

	// Creating an id that already exists is also stale.
	if err := s.Save(ctx, "ep-1", NewState("ep-1"), 0); !errors.Is(err, ErrStaleWrite) {
		t.Fatalf("expected ErrStaleWrite on duplicate create, got %v", err)
	}
}

func TestMemStore_LoadReturnsIsolatedCopy(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	st := NewState("ep-1")
	st.Mastery["multiplication"] = 0.5
	if err := s.Save(ctx, "ep-1", st, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	a, _ := s.Load(ctx, "ep-1")
	a.Mastery["multiplication"] = 0.9
	a.AppendTurn(RoleUser, "mutation")

	b, _ := s.Load(ctx, "ep-1")
	if b.Mastery["multiplication"] != 0.5 {
		t.Errorf("stored mastery mutated through a loaded copy: %f", b.Mastery["multiplication"])
	}
	if len(b.Turns) != 0 {
		t.Errorf("stored turns mutated through a loaded copy: %d", len(b.Turns))
	}
}

func TestState_CloneIsDeep(t *testing.T) {
	st := NewState("ep-1")
	st.AppendTurn(RoleUser, "one")
	st.Mastery["s"] = 0.3
	st.RecordSample(PerformanceSample{SkillID: "s", Correct: true})
	st.PendingActions["c1"] = "echo"

	clone := st.Clone()
	clone.Turns[0].Content = "changed"
	clone.Mastery["s"] = 0.9
	clone.Window[0].Correct = false
	clone.PendingActions["c2"] = "other"

	if st.Turns[0].Content != "one" {
		t.Error("clone shares turns with original")
	}
	if st.Mastery["s"] != 0.3 {
		t.Error("clone shares mastery with original")
	}
	if !st.Window[0].Correct {
		t.Error("clone shares window with original")
	}
	if _, ok := st.PendingActions["c2"]; ok {
		t.Error("clone shares pending actions with original")
	}
}

func TestState_WindowEviction(t *testing.T) {
	st := NewState("ep-1")
	for i := range WindowSize + 5 {
		st.RecordSample(PerformanceSample{SkillID: "s", LatencyMs: i})
	}

	if len(st.Window) != WindowSize {
		t.Fatalf("window size = %d, want %d", len(st.Window), WindowSize)
	}
	// Oldest samples were evicted; the newest survive.
	if st.Window[len(st.Window)-1].LatencyMs != WindowSize+4 {
		t.Errorf("newest sample missing: %+v", st.Window[len(st.Window)-1])
	}
	if st.Window[0].LatencyMs != 5 {
		t.Errorf("expected oldest surviving sample 5, got %d", st.Window[0].LatencyMs)
	}
}
