package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/numtrace/iterative"
	"github.com/katalvlaran/numtrace/linear"
	"github.com/katalvlaran/numtrace/matrix"
	"github.com/katalvlaran/numtrace/ode"
	"github.com/katalvlaran/numtrace/roots"
)

// Run validates req, executes it and returns the Response.
//
// Input problems are returned as errors (ErrInvalidRequest, ErrUnknownMethod,
// or the algorithm package's ErrInvalidInput family). A singular system is
// not an error here: it is reported as StatusSingular with the partial trace.
//
// The algorithms themselves are synchronous and bounded; Run only adds
// cancellation at the boundary. When ctx is done before the computation
// finishes, Run returns ctx.Err() and the result is discarded.
//
// Run logs through zerolog.Ctx(ctx).
func Run(ctx context.Context, req Request) (*Response, error) {
	log := zerolog.Ctx(ctx)
	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Str("method", string(req.Method)).Msg("rejected request")
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("engine: run id: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		resp *Response
		err  error
	}
	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		resp, err := execute(req)
		done <- outcome{resp, err}
	}()

	select {
	case <-ctx.Done():
		log.Warn().Str("run_id", id.String()).Str("method", string(req.Method)).Err(ctx.Err()).Msg("run abandoned")
		return nil, ctx.Err()
	case out := <-done:
		elapsed := time.Since(start)
		if out.err != nil {
			log.Debug().Str("run_id", id.String()).Str("method", string(req.Method)).Err(out.err).Msg("run failed")
			return nil, out.err
		}
		out.resp.RunID = id.String()
		out.resp.Duration = elapsed
		log.Info().
			Str("run_id", out.resp.RunID).
			Str("method", string(req.Method)).
			Int("entries", out.resp.Trace.Len()).
			Dur("duration", elapsed).
			Str("status", out.resp.Status).
			Msg("run finished")

		return out.resp, nil
	}
}

// RunAll runs every request concurrently. Each run owns its inputs and trace.
// responses[i] belongs to reqs[i] and is nil when that run failed; the
// failures are combined into one *multierror.Error.
func RunAll(ctx context.Context, reqs []Request) ([]*Response, error) {
	responses := make([]*Response, len(reqs))
	errs := make([]error, len(reqs))

	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i], errs[i] = Run(ctx, reqs[i])
		}(i)
	}
	wg.Wait()

	var result *multierror.Error
	for i, err := range errs {
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("problem %d (%s): %w", i+1, reqs[i].Method, err))
		}
	}

	return responses, result.ErrorOrNil()
}

func execute(req Request) (*Response, error) {
	resp := &Response{Method: req.Method}

	switch req.Method {
	case MethodBisection, MethodSecant:
		var res *roots.Result
		var err error
		if req.Method == MethodBisection {
			res, err = roots.Bisection(req.Equation, req.rootOptions())
		} else {
			res, err = roots.Secant(req.Equation, req.X0, req.X1, req.rootOptions())
		}
		if err != nil {
			return nil, err
		}
		resp.Status = res.Status.String()
		resp.Equation = req.Equation
		resp.Root = rootView(res)
		resp.Trace = res.Trace

	case MethodLU, MethodGauss:
		aug, err := matrix.NewFromRows(req.Matrix)
		if err != nil {
			return nil, err
		}
		if req.Method == MethodLU {
			res, err := linear.LU(aug, req.linearOptions())
			if res == nil {
				return nil, err
			}
			resp.Direct, resp.Trace = luView(res), res.Trace
			resp.Status, resp.Error = directStatus(err)
		} else {
			res, err := linear.Gauss(aug, req.linearOptions())
			if res == nil {
				return nil, err
			}
			resp.Direct, resp.Trace = gaussView(res), res.Trace
			resp.Status, resp.Error = directStatus(err)
		}

	case MethodJacobi, MethodSeidel:
		aug, err := matrix.NewFromRows(req.Matrix)
		if err != nil {
			return nil, err
		}
		solve := iterative.Jacobi
		if req.Method == MethodSeidel {
			solve = iterative.GaussSeidel
		}
		res, err := solve(aug, req.iterativeOptions())
		if err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				resp.Status, resp.Error = StatusSingular, err.Error()
				return resp, nil
			}
			return nil, err
		}
		resp.Iterative, resp.Trace = iterativeView(res), res.Trace
		switch {
		case res.Converged:
			resp.Status = roots.StatusConverged.String()
		case res.Diverged:
			resp.Status = StatusDiverged
		default:
			resp.Status = StatusNotConverged
		}

	case MethodRK2:
		res, err := ode.RK2(req.problem(), ode.DefaultOptions())
		if err != nil {
			return nil, err
		}
		resp.ODE, resp.Trace = odeView(res), res.Trace
		resp.Equation = req.Equation
		resp.Status = StatusSolved
		if !res.Completed {
			resp.Status = StatusIncomplete
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, req.Method)
	}

	return resp, nil
}

// directStatus maps a direct solver error that came with a partial result.
// Only singular systems return a result alongside an error.
func directStatus(err error) (string, string) {
	if err != nil {
		return StatusSingular, err.Error()
	}

	return StatusSolved, ""
}
