package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pupilplay/engine/internal/episode"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"episodes", "llm_request_events", "turn_events", "action_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestEpisodeSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EpisodeRepo()
	ctx := context.Background()

	state := episode.NewState("ep-1")
	state.AppendTurn(episode.RoleUser, "hello")
	state.Mastery["multiplication"] = 0.42
	state.Difficulty = 0.8

	if err := repo.Save(ctx, "ep-1", state, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.Load(ctx, "ep-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Version != 1 {
		t.Errorf("version = %d, want 1", loaded.Version)
	}
	if loaded.Difficulty != 0.8 {
		t.Errorf("difficulty = %f, want 0.8", loaded.Difficulty)
	}
	if loaded.Mastery["multiplication"] != 0.42 {
		t.Errorf("mastery = %f, want 0.42", loaded.Mastery["multiplication"])
	}
	if len(loaded.Turns) != 1 || loaded.Turns[0].Content != "hello" {
		t.Errorf("turns = %+v", loaded.Turns)
	}
}

func TestEpisodeLoadMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.EpisodeRepo().Load(context.Background(), "nope")
	if !errors.Is(err, episode.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEpisodeVersionConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.EpisodeRepo()
	ctx := context.Background()

	state := episode.NewState("ep-1")
	if err := repo.Save(ctx, "ep-1", state, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A second create loses the race.
	if err := repo.Save(ctx, "ep-1", state, 0); !errors.Is(err, episode.ErrStaleWrite) {
		t.Fatalf("duplicate create: expected ErrStaleWrite, got %v", err)
	}

	first, _ := repo.Load(ctx, "ep-1")
	second, _ := repo.Load(ctx, "ep-1")

	if err := repo.Save(ctx, "ep-1", first, first.Version); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := repo.Save(ctx, "ep-1", second, second.Version); !errors.Is(err, episode.ErrStaleWrite) {
		t.Fatalf("second write: expected ErrStaleWrite, got %v", err)
	}

	current, err := repo.Load(ctx, "ep-1")
	if err != nil {
		t.Fatal(err)
	}
	if current.Version != 2 {
		t.Errorf("version = %d, want 2", current.Version)
	}
}

func TestEpisodeDeleteAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EpisodeRepo()
	ctx := context.Background()

	for _, id := range []string{"ep-a", "ep-b"} {
		if err := repo.Save(ctx, id, episode.NewState(id), 0); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	ids, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("listed %v, want 2 episodes", ids)
	}

	if err := repo.Delete(ctx, "ep-a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, "ep-a"); !errors.Is(err, episode.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "flash", Tier: "standard", Purpose: "game-master", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "pro", Tier: "advanced", Purpose: "game-master", InputTokens: 200, OutputTokens: 90, LatencyMs: 2100, Success: true},
		{Provider: "gemini", Model: "flash", Tier: "standard", Purpose: "game-master", Success: false, ErrorMessage: "timeout"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	// Newest first.
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", got[0].Sequence, got[1].Sequence)
	}
	if got[0].ErrorMessage != "timeout" {
		t.Errorf("newest event = %+v", got[0])
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d events", len(limited))
	}

	one, err := repo.GetLLMEvent(ctx, got[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one.Model != "pro" || one.Tier != "advanced" {
		t.Errorf("got %+v", one)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Model: "flash", Purpose: "game-master", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Model: "flash", Purpose: "game-master", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: false},
		{Model: "pro", Purpose: "asset-pipeline", InputTokens: 50, OutputTokens: 30, LatencyMs: 900, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	stats := make(map[string]UsageStat, len(byModel))
	for _, st := range byModel {
		stats[st.Key] = st
	}
	flash := stats["flash"]
	if flash.Requests != 2 || flash.Failures != 1 {
		t.Errorf("flash = %+v", flash)
	}
	if flash.InputTokens != 30 || flash.TotalMs != 400 {
		t.Errorf("flash totals = %+v", flash)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Errorf("purposes = %+v", byPurpose)
	}
}

func TestTurnEventsFilterByEpisode(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []TurnEventData{
		{EpisodeID: "ep-a", Turn: 1, UserMessage: "hi", FinalMessage: "hello!", Tier: "standard"},
		{EpisodeID: "ep-b", Turn: 1, UserMessage: "yo", FinalMessage: "hey!", Tier: "standard"},
		{EpisodeID: "ep-a", Turn: 2, UserMessage: "6x7?", FinalMessage: "42!", Tier: "advanced", Rounds: 1},
	}
	for i, tn := range turns {
		if err := repo.AppendTurn(ctx, tn); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryTurnEvents(ctx, QueryOpts{EpisodeID: "ep-a"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Turn != 2 || got[1].Turn != 1 {
		t.Errorf("expected newest first, got turns %d, %d", got[0].Turn, got[1].Turn)
	}
}

func TestActionEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAction(ctx, ActionEventData{
		EpisodeID:  "ep-a",
		CallID:     "call-1",
		Name:       "create_problem",
		OK:         true,
		DurationMs: 3,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().ActionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("action events = %d, want 1", count)
	}
}
