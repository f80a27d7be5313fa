package gamemaster

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pupilplay/engine/internal/episode"
	"github.com/pupilplay/engine/internal/llm"
	"github.com/pupilplay/engine/internal/tier"
)

func testTiers(provider llm.Provider) []tier.Tier {
	return []tier.Tier{{Name: "standard", Threshold: 0, Provider: provider}}
}

func quickBreaker() tier.BreakerConfig {
	return tier.BreakerConfig{FailureThreshold: 2, Window: time.Minute, CoolDown: 30 * time.Second}
}

func TestDecide_FinalMessage(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"message":"Nice work!"}`)},
	)
	selector, err := tier.NewSelector(testTiers(mock), quickBreaker(), nil)
	if err != nil {
		t.Fatal(err)
	}
	gm := New(selector, DefaultConfig())

	st := episode.NewState("ep-1")
	st.AppendTurn(episode.RoleUser, "I solved it")

	dec, err := gm.Decide(context.Background(), st, "context blob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Final() {
		t.Fatal("expected a final decision")
	}
	if dec.Message != "Nice work!" {
		t.Errorf("message = %q", dec.Message)
	}
	if dec.Tier != "standard" {
		t.Errorf("tier = %q, want standard", dec.Tier)
	}
	if dec.Degraded {
		t.Error("healthy decision marked degraded")
	}
}

func TestDecide_ActionRequestsGetCorrelationIDs(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"actions":[
			{"name":"create_problem","args":{"difficulty_level":0.7}},
			{"name":"generate_hint","args":{}}
		]}`)},
	)
	selector, _ := tier.NewSelector(testTiers(mock), quickBreaker(), nil)
	gm := New(selector, DefaultConfig())

	dec, err := gm.Decide(context.Background(), episode.NewState("ep-1"), "ctx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Final() {
		t.Fatal("expected an action decision")
	}
	if len(dec.Requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(dec.Requests))
	}
	if dec.Requests[0].CallID == "" || dec.Requests[1].CallID == "" {
		t.Fatal("requests missing correlation ids")
	}
	if dec.Requests[0].CallID == dec.Requests[1].CallID {
		t.Fatal("correlation ids must be unique within a turn")
	}
	if dec.Requests[0].Name != "create_problem" {
		t.Errorf("request order not preserved: %q", dec.Requests[0].Name)
	}
}

func TestDecide_ParseFailureRetriesThenSurfaces(t *testing.T) {
	// Both variants populated, twice: every attempt fails to classify.
	bad := json.RawMessage(`{"message":"hi","actions":[{"name":"x"}]}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
	)
	selector, _ := tier.NewSelector(testTiers(mock), quickBreaker(), nil)
	gm := New(selector, DefaultConfig())

	_, err := gm.Decide(context.Background(), episode.NewState("ep-1"), "ctx")
	var parseErr *ErrDecisionParse
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ErrDecisionParse, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 attempts, got %d", mock.CallCount())
	}
}

func TestDecide_ParseFailureRecoversOnRetry(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{}`)},
		llm.MockResponse{Content: json.RawMessage(`{"message":"second try"}`)},
	)
	selector, _ := tier.NewSelector(testTiers(mock), quickBreaker(), nil)
	gm := New(selector, DefaultConfig())

	dec, err := gm.Decide(context.Background(), episode.NewState("ep-1"), "ctx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Message != "second try" {
		t.Errorf("message = %q", dec.Message)
	}
}

func TestDecide_RepeatedParseFailuresTripBreaker(t *testing.T) {
	bad := json.RawMessage(`{}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
	)
	selector, _ := tier.NewSelector(testTiers(mock), quickBreaker(), nil)
	gm := New(selector, DefaultConfig())

	_, err := gm.Decide(context.Background(), episode.NewState("ep-1"), "ctx")
	if err == nil {
		t.Fatal("expected error")
	}

	// Two Nacks at threshold 2: the breaker must be open now.
	if state := selector.Snapshot()["standard"].State; state != tier.StateOpen {
		t.Fatalf("breaker state = %s, want open after repeated parse failures", state)
	}
}

func TestDecide_DegradedWhenAllTiersOpen(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{}`)},
		llm.MockResponse{Content: json.RawMessage(`{}`)},
	)
	selector, _ := tier.NewSelector(testTiers(mock), quickBreaker(), tier.NewDegradedResponder(""))
	gm := New(selector, DefaultConfig())

	st := episode.NewState("ep-1")

	// Trip the only tier.
	if _, err := gm.Decide(context.Background(), st, "ctx"); err == nil {
		t.Fatal("expected parse error while tripping the breaker")
	}

	dec, err := gm.Decide(context.Background(), st, "ctx")
	if err != nil {
		t.Fatalf("expected degraded decision, got error %v", err)
	}
	if !dec.Degraded {
		t.Fatal("decision not marked degraded")
	}
	if dec.Tier != "degraded" {
		t.Errorf("tier = %q, want degraded", dec.Tier)
	}
	if dec.Message != tier.DefaultDegradedMessage {
		t.Errorf("message = %q", dec.Message)
	}
}

func TestDecide_NoDegradedResponderSurfacesCause(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{}`)},
		llm.MockResponse{Content: json.RawMessage(`{}`)},
	)
	selector, _ := tier.NewSelector(testTiers(mock), quickBreaker(), nil)
	gm := New(selector, DefaultConfig())

	st := episode.NewState("ep-1")
	if _, err := gm.Decide(context.Background(), st, "ctx"); err == nil {
		t.Fatal("expected parse error while tripping the breaker")
	}

	_, err := gm.Decide(context.Background(), st, "ctx")
	if !errors.Is(err, tier.ErrAllTiersUnavailable) {
		t.Fatalf("expected ErrAllTiersUnavailable, got %v", err)
	}
}

func TestClassify_Variants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		final   bool
	}{
		{"final message", `{"message":"done"}`, false, true},
		{"actions", `{"actions":[{"name":"a"}]}`, false, false},
		{"both populated", `{"message":"m","actions":[{"name":"a"}]}`, true, false},
		{"neither populated", `{}`, true, false},
		{"empty actions and no message", `{"actions":[]}`, true, false},
		{"action without name", `{"actions":[{"args":{}}]}`, true, false},
		{"not JSON", `pondering...`, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := classify(json.RawMessage(tt.content))
			if tt.wantErr {
				var parseErr *ErrDecisionParse
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected ErrDecisionParse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dec.Final() != tt.final {
				t.Errorf("Final() = %v, want %v", dec.Final(), tt.final)
			}
		})
	}
}

func TestComplexityScore(t *testing.T) {
	st := episode.NewState("ep-1")
	if got := ComplexityScore(st); got != 0 {
		t.Errorf("empty history score = %f, want 0", got)
	}

	st.AppendTurn(episode.RoleUser, "Why does this work? Please explain step by step.")
	got := ComplexityScore(st)
	if got != 0.6 {
		t.Errorf("score = %f, want 0.6 (explanation + multi-step)", got)
	}

	// Old turns age out of the scoring window.
	st.AppendTurn(episode.RoleAssistant, "answer")
	st.AppendTurn(episode.RoleUser, "ok")
	st.AppendTurn(episode.RoleUser, "7")
	st.AppendTurn(episode.RoleUser, "next one please")
	if got := ComplexityScore(st); got != 0 {
		t.Errorf("score = %f, want 0 after window moved on", got)
	}
}

func TestPromptRenderer(t *testing.T) {
	st := episode.NewState("ep-9")
	st.TurnCount = 3
	st.Mastery["multiplication"] = 0.42
	st.RecordSample(episode.PerformanceSample{SkillID: "multiplication", Correct: true})

	r := &PromptRenderer{Personality: "You are a cheerful tutor."}
	out, err := r.Render(st, []string{"create_problem", "generate_hint"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"You are a cheerful tutor.",
		"Episode: ep-9",
		"Turn: 3",
		"multiplication=0.42",
		"create_problem",
		"generate_hint",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered context missing %q", want)
		}
	}

	if _, err := r.Render(nil, nil); err == nil {
		t.Error("expected error for nil state")
	}
}
