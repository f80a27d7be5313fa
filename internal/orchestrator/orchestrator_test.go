package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pupilplay/engine/internal/actions"
	"github.com/pupilplay/engine/internal/episode"
	"github.com/pupilplay/engine/internal/gamemaster"
	"github.com/pupilplay/engine/internal/handlers"
	"github.com/pupilplay/engine/internal/llm"
	"github.com/pupilplay/engine/internal/tier"
)

func steadyBreaker() tier.BreakerConfig {
	return tier.BreakerConfig{FailureThreshold: 5, Window: time.Minute, CoolDown: 30 * time.Second}
}

// buildEngine wires a full orchestrator over a mock backend: one
// standard tier, the built-in action handlers, and a degraded fallback.
func buildEngine(t *testing.T, st episode.Store, cfg Config, breakerCfg tier.BreakerConfig, responses ...llm.MockResponse) (*Orchestrator, *llm.MockProvider) {
	t.Helper()

	mock := llm.NewMockProvider(responses...)
	selector, err := tier.NewSelector(
		[]tier.Tier{{Name: "standard", Threshold: 0, Provider: mock}},
		breakerCfg,
		tier.NewDegradedResponder(""),
	)
	if err != nil {
		t.Fatal(err)
	}

	registry := actions.NewRegistry()
	if err := handlers.Register(registry, handlers.Config{}); err != nil {
		t.Fatal(err)
	}

	orch, err := New(Deps{
		Store:      st,
		GameMaster: gamemaster.New(selector, gamemaster.DefaultConfig()),
		Dispatcher: actions.NewDispatcher(registry, actions.DispatchConfig{DefaultTimeout: time.Second}),
		Registry:   registry,
		Renderer:   &gamemaster.PromptRenderer{},
		Selector:   selector,
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return orch, mock
}

func final(message string) llm.MockResponse {
	doc, _ := json.Marshal(map[string]string{"message": message})
	return llm.MockResponse{Content: doc}
}

func TestNew_RequiredDeps(t *testing.T) {
	if _, err := New(Deps{}, DefaultConfig()); err == nil {
		t.Fatal("expected error for missing deps")
	}
}

func TestAdvance_EmptyEpisodeID(t *testing.T) {
	orch, _ := buildEngine(t, episode.NewMemStore(), DefaultConfig(), steadyBreaker())

	if _, err := orch.Advance(context.Background(), "", "hi"); err == nil {
		t.Fatal("expected error for empty episode id")
	}
}

func TestAdvance_FinalMessagePersists(t *testing.T) {
	st := episode.NewMemStore()
	orch, _ := buildEngine(t, st, DefaultConfig(), steadyBreaker(), final("Great job!"))

	outcome, err := orch.Advance(context.Background(), "ep-1", "I got 42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.FinalMessage != "Great job!" {
		t.Errorf("final message = %q", outcome.FinalMessage)
	}
	if outcome.Diagnostics.Tier != "standard" {
		t.Errorf("tier = %q, want standard", outcome.Diagnostics.Tier)
	}
	if outcome.Diagnostics.Degraded {
		t.Error("healthy turn marked degraded")
	}
	if outcome.Diagnostics.Rounds != 0 {
		t.Errorf("rounds = %d, want 0", outcome.Diagnostics.Rounds)
	}

	saved, err := st.Load(context.Background(), "ep-1")
	if err != nil {
		t.Fatalf("load after advance: %v", err)
	}
	if saved.Version != 1 {
		t.Errorf("version = %d, want 1 for first save", saved.Version)
	}
	if saved.TurnCount != 1 {
		t.Errorf("turn count = %d, want 1", saved.TurnCount)
	}
	if len(saved.Turns) != 2 {
		t.Fatalf("history length = %d, want user+assistant", len(saved.Turns))
	}
	if saved.Turns[0].Role != episode.RoleUser || saved.Turns[1].Role != episode.RoleAssistant {
		t.Errorf("history roles = %v, %v", saved.Turns[0].Role, saved.Turns[1].Role)
	}
}

func TestAdvance_ActionRound(t *testing.T) {
	st := episode.NewMemStore()
	actionRound := llm.MockResponse{Content: json.RawMessage(`{"actions":[
		{"name":"update_progress","args":{"skill_category":"multiplication","correct":true,"response_time_ms":4000}},
		{"name":"no_such_action","args":{}}
	]}`)}
	orch, mock := buildEngine(t, st, DefaultConfig(), steadyBreaker(), actionRound, final("All done!"))

	outcome, err := orch.Advance(context.Background(), "ep-1", "check my answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.FinalMessage != "All done!" {
		t.Errorf("final message = %q", outcome.FinalMessage)
	}
	if outcome.Diagnostics.Rounds != 1 {
		t.Errorf("rounds = %d, want 1", outcome.Diagnostics.Rounds)
	}
	if len(outcome.Diagnostics.FailedActions) != 1 || outcome.Diagnostics.FailedActions[0] != "no_such_action" {
		t.Errorf("failed actions = %v", outcome.Diagnostics.FailedActions)
	}
	if outcome.Mastery["multiplication"] <= 0 {
		t.Errorf("mastery = %f, want > 0 after update_progress", outcome.Mastery["multiplication"])
	}

	// The second decision call must carry the action feedback.
	if len(mock.Calls) != 2 {
		t.Fatalf("backend calls = %d, want 2", len(mock.Calls))
	}
	if len(mock.Calls[1].Messages) != len(mock.Calls[0].Messages)+2 {
		t.Errorf("second call has %d messages, want %d",
			len(mock.Calls[1].Messages), len(mock.Calls[0].Messages)+2)
	}

	saved, err := st.Load(context.Background(), "ep-1")
	if err != nil {
		t.Fatalf("load after advance: %v", err)
	}
	// user + 2 action feedback entries + assistant
	if len(saved.Turns) != 4 {
		t.Errorf("history length = %d, want 4", len(saved.Turns))
	}
	if saved.TurnCount != 2 {
		t.Errorf("turn count = %d, want 2 (action round + final)", saved.TurnCount)
	}
	if len(saved.PendingActions) != 0 {
		t.Errorf("pending actions leaked: %v", saved.PendingActions)
	}
	if saved.Mastery["multiplication"] != outcome.Mastery["multiplication"] {
		t.Errorf("persisted mastery %f != outcome %f",
			saved.Mastery["multiplication"], outcome.Mastery["multiplication"])
	}
}

func TestAdvance_TurnBudgetNotPersisted(t *testing.T) {
	st := episode.NewMemStore()
	actionRound := llm.MockResponse{Content: json.RawMessage(
		`{"actions":[{"name":"generate_hint","args":{}}]}`)}

	cfg := DefaultConfig()
	cfg.MaxActionRounds = 1
	orch, _ := buildEngine(t, st, cfg, steadyBreaker(), actionRound, actionRound)

	outcome, err := orch.Advance(context.Background(), "ep-1", "help")
	if !errors.Is(err, ErrTurnBudgetExceeded) {
		t.Fatalf("expected ErrTurnBudgetExceeded, got %v", err)
	}
	if outcome == nil {
		t.Fatal("budget exhaustion must still return an outcome")
	}
	if !outcome.Diagnostics.Degraded || outcome.Diagnostics.Reason != ReasonTurnBudget {
		t.Errorf("diagnostics = %+v", outcome.Diagnostics)
	}
	if outcome.FinalMessage != turnBudgetMessage {
		t.Errorf("final message = %q, want the budget nudge", outcome.FinalMessage)
	}

	if _, err := st.Load(context.Background(), "ep-1"); !errors.Is(err, episode.ErrNotFound) {
		t.Fatalf("budget-exceeded turn must not persist, load err = %v", err)
	}
}

func TestAdvance_TurnBudgetNeverReplaysEarlierAnswer(t *testing.T) {
	st := episode.NewMemStore()
	seeded := episode.NewState("ep-1")
	seeded.AppendTurn(episode.RoleUser, "what is 6x7?")
	seeded.AppendTurn(episode.RoleAssistant, "6x7 is 42, great question!")
	if err := st.Save(context.Background(), "ep-1", seeded, 0); err != nil {
		t.Fatal(err)
	}

	actionRound := llm.MockResponse{Content: json.RawMessage(
		`{"actions":[{"name":"generate_hint","args":{}}]}`)}
	cfg := DefaultConfig()
	cfg.MaxActionRounds = 1
	orch, _ := buildEngine(t, st, cfg, steadyBreaker(), actionRound, actionRound)

	outcome, err := orch.Advance(context.Background(), "ep-1", "next one please")
	if !errors.Is(err, ErrTurnBudgetExceeded) {
		t.Fatalf("expected ErrTurnBudgetExceeded, got %v", err)
	}
	if outcome.FinalMessage != turnBudgetMessage {
		t.Errorf("final message = %q, must not replay a prior turn's answer", outcome.FinalMessage)
	}
}

func TestAdvance_AllTiersDown(t *testing.T) {
	st := episode.NewMemStore()
	trippy := tier.BreakerConfig{FailureThreshold: 1, Window: time.Minute, CoolDown: time.Hour}
	orch, _ := buildEngine(t, st, DefaultConfig(), trippy,
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}},
	)

	outcome, err := orch.Advance(context.Background(), "ep-1", "hello")
	if err != nil {
		t.Fatalf("degraded turn should not error: %v", err)
	}
	if !outcome.Diagnostics.Degraded {
		t.Fatal("expected a degraded outcome")
	}
	if outcome.Diagnostics.Reason != ReasonAllTiersUnavailable {
		t.Errorf("reason = %q", outcome.Diagnostics.Reason)
	}
	if outcome.FinalMessage != tier.DefaultDegradedMessage {
		t.Errorf("final message = %q", outcome.FinalMessage)
	}
	if snap, ok := outcome.Diagnostics.Breakers["standard"]; !ok || snap.State != tier.StateOpen {
		t.Errorf("breakers = %+v, want standard open", outcome.Diagnostics.Breakers)
	}

	if _, err := st.Load(context.Background(), "ep-1"); !errors.Is(err, episode.ErrNotFound) {
		t.Fatalf("degraded turn must not persist, load err = %v", err)
	}
}

func TestAdvance_ParseExhaustionSurfaces(t *testing.T) {
	st := episode.NewMemStore()
	garbage := llm.MockResponse{Content: json.RawMessage(`pure prose, not a decision`)}
	orch, _ := buildEngine(t, st, DefaultConfig(), steadyBreaker(), garbage, garbage)

	outcome, err := orch.Advance(context.Background(), "ep-1", "hello")
	var parseErr *gamemaster.ErrDecisionParse
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ErrDecisionParse, got %v", err)
	}
	if outcome == nil {
		t.Fatal("parse exhaustion must still return a presentable outcome")
	}
	if outcome.Diagnostics.Reason != ReasonDecisionParse {
		t.Errorf("reason = %q", outcome.Diagnostics.Reason)
	}

	if _, err := st.Load(context.Background(), "ep-1"); !errors.Is(err, episode.ErrNotFound) {
		t.Fatalf("failed turn must not persist, load err = %v", err)
	}
}

func TestAdvance_CancelledTurnDiscarded(t *testing.T) {
	st := episode.NewMemStore()
	seeded := episode.NewState("ep-1")
	seeded.AppendTurn(episode.RoleUser, "earlier message")
	if err := st.Save(context.Background(), "ep-1", seeded, 0); err != nil {
		t.Fatal(err)
	}

	orch, _ := buildEngine(t, st, DefaultConfig(), steadyBreaker(), final("never reached"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := orch.Advance(ctx, "ep-1", "another message")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if outcome != nil {
		t.Errorf("cancelled turn returned an outcome: %+v", outcome)
	}

	saved, err := st.Load(context.Background(), "ep-1")
	if err != nil {
		t.Fatal(err)
	}
	if saved.Version != 1 || len(saved.Turns) != 1 {
		t.Errorf("cancelled turn mutated the episode: version=%d turns=%d",
			saved.Version, len(saved.Turns))
	}
}

func TestAdvance_ConcurrentSameEpisode(t *testing.T) {
	st := episode.NewMemStore()
	orch, _ := buildEngine(t, st, DefaultConfig(), steadyBreaker(),
		final("first"), final("second"))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = orch.Advance(context.Background(), "ep-1", "message")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	saved, err := st.Load(context.Background(), "ep-1")
	if err != nil {
		t.Fatal(err)
	}
	// Serialized turns never observe each other's stale version.
	if saved.Version != 2 {
		t.Errorf("version = %d, want 2 after two turns", saved.Version)
	}
	if len(saved.Turns) != 4 {
		t.Errorf("history length = %d, want 4", len(saved.Turns))
	}
}

// staleStore simulates a competing writer by failing every Save.
type staleStore struct {
	*episode.MemStore
}

func (s *staleStore) Save(ctx context.Context, id string, state *episode.State, expectedVersion int64) error {
	return episode.ErrStaleWrite
}

func TestAdvance_StaleWriteSurfaces(t *testing.T) {
	orch, _ := buildEngine(t, &staleStore{episode.NewMemStore()}, DefaultConfig(), steadyBreaker(),
		final("doomed"))

	outcome, err := orch.Advance(context.Background(), "ep-1", "hello")
	if !errors.Is(err, episode.ErrStaleWrite) {
		t.Fatalf("expected ErrStaleWrite, got %v", err)
	}
	if outcome != nil {
		t.Errorf("stale write returned an outcome: %+v", outcome)
	}
}

func TestAdvance_DeterministicReplay(t *testing.T) {
	script := []llm.MockResponse{
		{Content: json.RawMessage(`{"actions":[
			{"name":"update_progress","args":{"skill_category":"addition","correct":true,"response_time_ms":3000}}
		]}`)},
		final("Replay me"),
	}

	run := func() *TurnOutcome {
		orch, _ := buildEngine(t, episode.NewMemStore(), DefaultConfig(), steadyBreaker(), script...)
		outcome, err := orch.Advance(context.Background(), "ep-1", "3+4=7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return outcome
	}

	first := run()
	second := run()

	if first.FinalMessage != second.FinalMessage {
		t.Errorf("final messages diverged: %q vs %q", first.FinalMessage, second.FinalMessage)
	}
	if first.Difficulty != second.Difficulty {
		t.Errorf("difficulty diverged: %f vs %f", first.Difficulty, second.Difficulty)
	}
	if first.Mastery["addition"] != second.Mastery["addition"] {
		t.Errorf("mastery diverged: %f vs %f", first.Mastery["addition"], second.Mastery["addition"])
	}
}
