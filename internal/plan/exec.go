package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/nearkit/nearctl/internal/artifact"
	"github.com/nearkit/nearctl/internal/nearcli"
)

// StepResult records the outcome of one executed step.
type StepResult struct {
	Name     string
	Action   string
	Output   string
	Err      error
	Duration time.Duration
}

// OK reports whether the step succeeded.
func (r StepResult) OK() bool { return r.Err == nil }

// RunResult is the outcome of a whole plan run.
type RunResult struct {
	Plan      string
	Steps     []StepResult
	StartedAt time.Time
	EndedAt   time.Time
}

// Failed reports whether any executed step failed.
func (r RunResult) Failed() bool {
	for _, s := range r.Steps {
		if !s.OK() {
			return true
		}
	}
	return false
}

// Executor runs plans against the external tool.
type Executor struct {
	client *nearcli.Client

	// OnStep, when set, is called before each step executes (for progress
	// display).
	OnStep func(i int, total int, s *Step)
}

// NewExecutor creates an Executor on top of a configured client.
func NewExecutor(c *nearcli.Client) *Executor {
	return &Executor{client: c}
}

// Run executes the plan's steps in order, stopping at the first failure.
// The returned result always carries an entry for every attempted step.
func (e *Executor) Run(ctx context.Context, p *Plan) RunResult {
	run := RunResult{Plan: p.Name, StartedAt: time.Now()}

	for i := range p.Steps {
		s := &p.Steps[i]
		if e.OnStep != nil {
			e.OnStep(i, len(p.Steps), s)
		}

		start := time.Now()
		out, err := e.execute(ctx, s)
		run.Steps = append(run.Steps, StepResult{
			Name:     s.Label(),
			Action:   s.Action(),
			Output:   out,
			Err:      err,
			Duration: time.Since(start),
		})
		if err != nil {
			break
		}
	}

	run.EndedAt = time.Now()
	return run
}

func (e *Executor) execute(ctx context.Context, s *Step) (string, error) {
	switch {
	case s.CreateAccount != nil:
		a := s.CreateAccount
		res, err := e.client.CreateAccount(ctx, a.ID, a.Master, a.InitialBalance)
		return res.Stdout, err

	case s.Deploy != nil:
		d := s.Deploy
		if _, err := artifact.Validate(d.Wasm); err != nil {
			return "", err
		}
		res, err := e.client.Deploy(ctx, d.Account, d.Wasm)
		return res.Stdout, err

	case s.Call != nil:
		c := s.Call
		var args any
		if c.Args != nil {
			args = c.Args
		}
		res, err := e.client.Call(ctx, nearcli.CallParams{
			Contract:     c.Contract,
			Method:       c.Method,
			Args:         args,
			SignerID:     c.Signer,
			Gas:          c.Gas,
			Deposit:      c.Deposit,
			DepositYocto: c.DepositYocto,
		})
		return res.Stdout, err

	case s.View != nil:
		v := s.View
		var args any
		if v.Args != nil {
			args = v.Args
		}
		res, err := e.client.View(ctx, v.Contract, v.Method, args)
		return res.Stdout, err

	case s.DeleteAccount != nil:
		d := s.DeleteAccount
		res, err := e.client.DeleteAccount(ctx, d.ID, d.Beneficiary)
		return res.Stdout, err
	}
	return "", fmt.Errorf("step %q has no action", s.Label())
}
