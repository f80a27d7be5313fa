package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// DispatchConfig tunes batch execution.
type DispatchConfig struct {
	// DefaultTimeout bounds each handler invocation unless the
	// registration carries its own timeout.
	DefaultTimeout time.Duration

	// MaxInFlight caps concurrent handler invocations per batch.
	MaxInFlight int
}

// DefaultDispatchConfig returns the stock dispatch tuning.
func DefaultDispatchConfig() DispatchConfig {
	return DispatchConfig{
		DefaultTimeout: 10 * time.Second,
		MaxInFlight:    4,
	}
}

// Dispatcher executes action batches against a Registry. All requests
// in a batch run concurrently (bounded by MaxInFlight) and the batch
// returns only after every request has a result — no request is ever
// silently dropped. Per-action failures are captured in results, not
// returned as errors.
type Dispatcher struct {
	registry *Registry
	config   DispatchConfig
}

// NewDispatcher creates a Dispatcher over the given registry.
func NewDispatcher(registry *Registry, cfg DispatchConfig) *Dispatcher {
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = DefaultDispatchConfig().DefaultTimeout
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = DefaultDispatchConfig().MaxInFlight
	}
	return &Dispatcher{registry: registry, config: cfg}
}

// Execute runs one batch. The returned slice has exactly one Result per
// Request, in request order. Unknown actions fail fast without a
// handler invocation; everything else runs under a per-action timeout.
func (d *Dispatcher) Execute(ctx context.Context, requests []Request) []Result {
	results := make([]Result, len(requests))

	sem := make(chan struct{}, d.config.MaxInFlight)
	var wg sync.WaitGroup

	for i, req := range requests {
		reg, ok := d.registry.Lookup(req.Name)
		if !ok {
			results[i] = Result{
				CallID:  req.CallID,
				Name:    req.Name,
				Failure: FailUnknownAction,
				Detail:  fmt.Sprintf("no handler registered for %q", req.Name),
			}
			continue
		}

		wg.Add(1)
		go func(i int, req Request, reg Registration) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = cancelledResult(req, ctx.Err())
				return
			}

			results[i] = d.runOne(ctx, req, reg)
		}(i, req, reg)
	}

	wg.Wait()
	return results
}

// runOne invokes a single handler under its timeout.
func (d *Dispatcher) runOne(ctx context.Context, req Request, reg Registration) Result {
	timeout := reg.Timeout
	if timeout <= 0 {
		timeout = d.config.DefaultTimeout
	}

	actionCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	type outcome struct {
		payload json.RawMessage
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("handler panic: %v", r)}
			}
		}()
		payload, err := reg.Handler(actionCtx, req.Args)
		done <- outcome{payload: payload, err: err}
	}()

	select {
	case o := <-done:
		result := Result{
			CallID:   req.CallID,
			Name:     req.Name,
			Duration: time.Since(start),
		}
		if o.err != nil {
			result.Failure = FailHandlerError
			result.Detail = o.err.Error()
			return result
		}
		result.OK = true
		result.Payload = o.payload
		return result

	case <-actionCtx.Done():
		result := Result{
			CallID:   req.CallID,
			Name:     req.Name,
			Duration: time.Since(start),
		}
		if ctx.Err() != nil {
			// Parent cancellation, not a handler timeout.
			result.Failure = FailCancelled
			result.Detail = ctx.Err().Error()
			return result
		}
		result.Failure = FailTimeout
		result.Detail = fmt.Sprintf("exceeded %s", timeout)
		return result
	}
}

func cancelledResult(req Request, err error) Result {
	return Result{
		CallID:  req.CallID,
		Name:    req.Name,
		Failure: FailCancelled,
		Detail:  err.Error(),
	}
}
