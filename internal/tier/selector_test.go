package tier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pupilplay/engine/internal/llm"
)

func testSelector(t *testing.T) *Selector {
	t.Helper()
	s, err := NewSelector(
		[]Tier{
			{Name: "standard", Threshold: 0, Provider: llm.NewMockProvider()},
			{Name: "advanced", Threshold: 0.5, Provider: llm.NewMockProvider()},
		},
		BreakerConfig{FailureThreshold: 2, Window: time.Minute, CoolDown: 30 * time.Second},
		NewDegradedResponder(""),
	)
	require.NoError(t, err)
	return s
}

func TestNewSelector_Validation(t *testing.T) {
	_, err := NewSelector(nil, DefaultBreakerConfig(), nil)
	require.Error(t, err)

	_, err = NewSelector([]Tier{{Name: "", Provider: llm.NewMockProvider()}}, DefaultBreakerConfig(), nil)
	require.Error(t, err)

	_, err = NewSelector([]Tier{{Name: "a", Provider: nil}}, DefaultBreakerConfig(), nil)
	require.Error(t, err)

	_, err = NewSelector([]Tier{
		{Name: "a", Provider: llm.NewMockProvider()},
		{Name: "a", Provider: llm.NewMockProvider()},
	}, DefaultBreakerConfig(), nil)
	require.Error(t, err)
}

func TestSelect_ByComplexityScore(t *testing.T) {
	s := testSelector(t)

	h, err := s.Select(0.2)
	require.NoError(t, err)
	require.Equal(t, "standard", h.Name())

	h, err = s.Select(0.9)
	require.NoError(t, err)
	require.Equal(t, "advanced", h.Name())

	// Exactly at the threshold the capable tier is warranted.
	h, err = s.Select(0.5)
	require.NoError(t, err)
	require.Equal(t, "advanced", h.Name())
}

func TestSelect_FallsThroughToCheaperTier(t *testing.T) {
	s := testSelector(t)

	// Trip the advanced tier's breaker.
	for range 2 {
		h, err := s.Select(0.9)
		require.NoError(t, err)
		h.Nack()
	}
	require.Equal(t, StateOpen, s.Snapshot()["advanced"].State)

	// A complex turn now routes to the cheaper healthy tier.
	h, err := s.Select(0.9)
	require.NoError(t, err)
	require.Equal(t, "standard", h.Name())
}

func TestSelect_AllTiersOpen(t *testing.T) {
	s := testSelector(t)

	for _, score := range []float64{0.9, 0.9, 0.1, 0.1} {
		h, err := s.Select(score)
		require.NoError(t, err)
		h.Nack()
	}

	_, err := s.Select(0.7)
	require.ErrorIs(t, err, ErrAllTiersUnavailable)

	// The degraded responder is still there for the caller.
	require.NotNil(t, s.Degraded())
}

func TestSelect_ResetRestoresAllTiers(t *testing.T) {
	s := testSelector(t)

	for _, score := range []float64{0.9, 0.9, 0.1, 0.1} {
		h, err := s.Select(score)
		require.NoError(t, err)
		h.Nack()
	}
	_, err := s.Select(0.7)
	require.ErrorIs(t, err, ErrAllTiersUnavailable)

	s.Reset()

	h, err := s.Select(0.7)
	require.NoError(t, err)
	require.Equal(t, "advanced", h.Name())
}

func TestHandle_TransportErrorSettlesImmediately(t *testing.T) {
	failing := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s, err := NewSelector(
		[]Tier{{Name: "only", Threshold: 0, Provider: failing}},
		BreakerConfig{FailureThreshold: 2, Window: time.Minute, CoolDown: 30 * time.Second},
		nil,
	)
	require.NoError(t, err)

	for range 2 {
		h, err := s.Select(0.5)
		require.NoError(t, err)
		_, err = h.Generate(context.Background(), llm.Request{})
		require.Error(t, err)
		// A further Nack after the transport error must not double-count.
		h.Nack()
	}

	require.Equal(t, StateOpen, s.Snapshot()["only"].State)
	_, err = s.Select(0.5)
	require.ErrorIs(t, err, ErrAllTiersUnavailable)
}

func TestHandle_AckClosesLoopOnSuccess(t *testing.T) {
	ok := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"message":"hi"}`)},
	)
	s, err := NewSelector(
		[]Tier{{Name: "only", Threshold: 0, Provider: ok}},
		BreakerConfig{FailureThreshold: 1, Window: time.Minute, CoolDown: 30 * time.Second},
		nil,
	)
	require.NoError(t, err)

	h, err := s.Select(0.5)
	require.NoError(t, err)
	resp, err := h.Generate(context.Background(), llm.Request{})
	require.NoError(t, err)
	require.JSONEq(t, `{"message":"hi"}`, string(resp.Content))

	h.Ack()
	require.Equal(t, StateClosed, s.Snapshot()["only"].State)
}

func TestDegradedResponder(t *testing.T) {
	d := NewDegradedResponder("")
	resp, err := d.Generate(context.Background(), llm.Request{})
	require.NoError(t, err)

	var doc struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(resp.Content, &doc))
	require.Equal(t, DefaultDegradedMessage, doc.Message)
	require.Equal(t, "degraded", d.ModelID())
}

// ctxErrProvider fails with the caller's context error, the way a real
// adapter surfaces a cancelled request.
type ctxErrProvider struct{}

func (ctxErrProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, errors.New("backend reached unexpectedly")
}

func (ctxErrProvider) ModelID() string { return "ctx-err" }

func TestGenerate_CancellationDoesNotTripBreaker(t *testing.T) {
	s, err := NewSelector(
		[]Tier{{Name: "standard", Threshold: 0, Provider: ctxErrProvider{}}},
		BreakerConfig{FailureThreshold: 3, Window: time.Minute, CoolDown: 30 * time.Second},
		nil,
	)
	require.NoError(t, err)

	// Disconnecting callers discard their turns; the shared breaker
	// must not count those against the tier.
	for i := 0; i < 5; i++ {
		h, err := s.Select(0)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = h.Generate(ctx, llm.Request{})
		require.ErrorIs(t, err, context.Canceled)
	}

	snap := s.Snapshot()["standard"]
	require.Equal(t, StateClosed, snap.State)
	require.Zero(t, snap.ConsecutiveFailures)

	h, err := s.Select(0)
	require.NoError(t, err)
	require.Equal(t, "standard", h.Name())
}

func TestGenerate_CancelledHandleStaysSettled(t *testing.T) {
	s, err := NewSelector(
		[]Tier{{Name: "standard", Threshold: 0, Provider: ctxErrProvider{}}},
		BreakerConfig{FailureThreshold: 1, Window: time.Minute, CoolDown: 30 * time.Second},
		nil,
	)
	require.NoError(t, err)

	h, err := s.Select(0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.Generate(ctx, llm.Request{})
	require.ErrorIs(t, err, context.Canceled)

	// A late Nack on the abandoned handle must not report either.
	h.Nack()
	require.Equal(t, StateClosed, s.Snapshot()["standard"].State)
}
