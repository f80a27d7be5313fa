package actions

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func echoHandler(_ context.Context, args json.RawMessage) (json.RawMessage, error) {
	return args, nil
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.MustRegister(Registration{Name: "echo", Handler: echoHandler})
	reg.MustRegister(Registration{Name: "fail", Handler: func(context.Context, json.RawMessage) (json.RawMessage, error) {
		return nil, errors.New("boom")
	}})
	reg.MustRegister(Registration{
		Name:    "slow",
		Timeout: 20 * time.Millisecond,
		Handler: func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
			select {
			case <-time.After(5 * time.Second):
				return json.RawMessage(`{}`), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	})
	return reg
}

func TestExecute_OneResultPerRequestInOrder(t *testing.T) {
	d := NewDispatcher(testRegistry(t), DefaultDispatchConfig())

	requests := []Request{
		{CallID: "c1", Name: "echo", Args: json.RawMessage(`{"n":1}`)},
		{CallID: "c2", Name: "echo", Args: json.RawMessage(`{"n":2}`)},
		{CallID: "c3", Name: "echo", Args: json.RawMessage(`{"n":3}`)},
	}

	results := d.Execute(context.Background(), requests)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, res := range results {
		if res.CallID != requests[i].CallID {
			t.Errorf("result %d has call id %s, want %s", i, res.CallID, requests[i].CallID)
		}
		if !res.OK {
			t.Errorf("result %d failed: %s %s", i, res.Failure, res.Detail)
		}
		if string(res.Payload) != string(requests[i].Args) {
			t.Errorf("result %d payload = %s, want %s", i, res.Payload, requests[i].Args)
		}
	}
}

func TestExecute_UnknownActionFailsFast(t *testing.T) {
	d := NewDispatcher(testRegistry(t), DefaultDispatchConfig())

	results := d.Execute(context.Background(), []Request{
		{CallID: "c1", Name: "no_such_action"},
		{CallID: "c2", Name: "echo", Args: json.RawMessage(`{}`)},
	})

	if results[0].OK || results[0].Failure != FailUnknownAction {
		t.Fatalf("expected unknown_action failure, got %+v", results[0])
	}
	if !results[1].OK {
		t.Fatalf("healthy request should still run: %+v", results[1])
	}
}

func TestExecute_HandlerErrorCaptured(t *testing.T) {
	d := NewDispatcher(testRegistry(t), DefaultDispatchConfig())

	results := d.Execute(context.Background(), []Request{{CallID: "c1", Name: "fail"}})
	if results[0].OK || results[0].Failure != FailHandlerError {
		t.Fatalf("expected handler_error, got %+v", results[0])
	}
	if results[0].Detail != "boom" {
		t.Fatalf("detail = %q, want boom", results[0].Detail)
	}
}

func TestExecute_TimeoutDoesNotSinkBatch(t *testing.T) {
	d := NewDispatcher(testRegistry(t), DefaultDispatchConfig())

	start := time.Now()
	results := d.Execute(context.Background(), []Request{
		{CallID: "c1", Name: "echo", Args: json.RawMessage(`{}`)},
		{CallID: "c2", Name: "slow"},
		{CallID: "c3", Name: "echo", Args: json.RawMessage(`{}`)},
	})
	elapsed := time.Since(start)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].OK || !results[2].OK {
		t.Fatal("healthy requests should succeed alongside a timeout")
	}
	if results[1].OK || results[1].Failure != FailTimeout {
		t.Fatalf("expected timeout failure, got %+v", results[1])
	}
	if elapsed > 2*time.Second {
		t.Fatalf("batch waited for the slow handler's full duration: %s", elapsed)
	}
}

func TestExecute_PanicBecomesHandlerError(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Registration{Name: "panic", Handler: func(context.Context, json.RawMessage) (json.RawMessage, error) {
		panic("unreachable state")
	}})
	d := NewDispatcher(reg, DefaultDispatchConfig())

	results := d.Execute(context.Background(), []Request{{CallID: "c1", Name: "panic"}})
	if results[0].OK || results[0].Failure != FailHandlerError {
		t.Fatalf("expected handler_error from panic, got %+v", results[0])
	}
}

func TestExecute_ParentCancellation(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Registration{Name: "wait", Handler: func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}})
	d := NewDispatcher(reg, DefaultDispatchConfig())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	results := d.Execute(ctx, []Request{{CallID: "c1", Name: "wait"}})
	if results[0].OK {
		t.Fatal("cancelled request should not succeed")
	}
	if results[0].Failure != FailCancelled && results[0].Failure != FailHandlerError {
		t.Fatalf("expected cancellation surface, got %+v", results[0])
	}
}

func TestExecute_MaxInFlightBoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32

	reg := NewRegistry()
	reg.MustRegister(Registration{Name: "track", Handler: func(context.Context, json.RawMessage) (json.RawMessage, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return json.RawMessage(`{}`), nil
	}})

	d := NewDispatcher(reg, DispatchConfig{DefaultTimeout: time.Second, MaxInFlight: 2})

	requests := make([]Request, 8)
	for i := range requests {
		requests[i] = Request{CallID: string(rune('a' + i)), Name: "track"}
	}

	results := d.Execute(context.Background(), requests)
	for _, res := range results {
		if !res.OK {
			t.Fatalf("request failed: %+v", res)
		}
	}
	if peak.Load() > 2 {
		t.Fatalf("concurrency peaked at %d, want <= 2", peak.Load())
	}
}

func TestRegistry_DuplicateAndInvalid(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Registration{Name: "a", Handler: echoHandler}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := reg.Register(Registration{Name: "a", Handler: echoHandler}); !errors.Is(err, ErrDuplicateAction) {
		t.Errorf("expected ErrDuplicateAction, got %v", err)
	}
	if err := reg.Register(Registration{Name: "", Handler: echoHandler}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if err := reg.Register(Registration{Name: "b"}); !errors.Is(err, ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.MustRegister(Registration{Name: name, Handler: echoHandler})
	}

	names := reg.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}
