// Package plan loads and executes declarative deploy plans: the checked
// replacement for "a shell script of unchecked near invocations". Each step
// maps to exactly one external-tool operation, and execution halts on the
// first failure.
package plan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyPlan is returned when a plan defines no steps.
var ErrEmptyPlan = errors.New("plan has no steps")

// Plan is a named sequence of deployment steps.
type Plan struct {
	Name  string            `yaml:"name"`
	Vars  map[string]string `yaml:"vars,omitempty"`
	Steps []Step            `yaml:"steps"`
}

// Step holds exactly one action. The populated field decides what runs.
type Step struct {
	Name          string             `yaml:"name,omitempty"`
	CreateAccount *CreateAccountStep `yaml:"create-account,omitempty"`
	Deploy        *DeployStep        `yaml:"deploy,omitempty"`
	Call          *CallStep          `yaml:"call,omitempty"`
	View          *ViewStep          `yaml:"view,omitempty"`
	DeleteAccount *DeleteAccountStep `yaml:"delete-account,omitempty"`
}

// CreateAccountStep provisions a sub-account funded by the master account.
type CreateAccountStep struct {
	ID             string `yaml:"id"`
	Master         string `yaml:"master"`
	InitialBalance string `yaml:"initial-balance,omitempty"`
}

// DeployStep uploads a contract artifact to an existing account.
type DeployStep struct {
	Account string `yaml:"account"`
	Wasm    string `yaml:"wasm"`
}

// CallStep invokes a change method.
type CallStep struct {
	Contract     string         `yaml:"contract"`
	Method       string         `yaml:"method"`
	Args         map[string]any `yaml:"args,omitempty"`
	Signer       string         `yaml:"signer"`
	Gas          string         `yaml:"gas,omitempty"`
	Deposit      string         `yaml:"deposit,omitempty"`
	DepositYocto string         `yaml:"deposit-yocto,omitempty"`
}

// ViewStep invokes a read-only method.
type ViewStep struct {
	Contract string         `yaml:"contract"`
	Method   string         `yaml:"method"`
	Args     map[string]any `yaml:"args,omitempty"`
}

// DeleteAccountStep removes an account, sweeping the balance to beneficiary.
type DeleteAccountStep struct {
	ID          string `yaml:"id"`
	Beneficiary string `yaml:"beneficiary"`
}

// Action returns the step's action keyword, or "" if none is set.
func (s *Step) Action() string {
	switch {
	case s.CreateAccount != nil:
		return "create-account"
	case s.Deploy != nil:
		return "deploy"
	case s.Call != nil:
		return "call"
	case s.View != nil:
		return "view"
	case s.DeleteAccount != nil:
		return "delete-account"
	}
	return ""
}

// Destructive reports whether the step destroys on-chain state.
func (s *Step) Destructive() bool {
	return s.DeleteAccount != nil
}

// Label is the step's display name, falling back to its action.
func (s *Step) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Action()
}

// Target is the account or contract the step acts on, after expansion.
func (s *Step) Target() string {
	switch {
	case s.CreateAccount != nil:
		return s.CreateAccount.ID
	case s.Deploy != nil:
		return s.Deploy.Account
	case s.Call != nil:
		return s.Call.Contract + "." + s.Call.Method
	case s.View != nil:
		return s.View.Contract + "." + s.View.Method
	case s.DeleteAccount != nil:
		return s.DeleteAccount.ID
	}
	return ""
}

// Load reads a plan file, validates it, and expands {{var}} placeholders.
func Load(path string) (*Plan, error) {
	return LoadWithVars(path, nil)
}

// LoadWithVars is Load with variable overrides layered on top of the
// plan's own vars block before expansion.
func LoadWithVars(path string, overrides map[string]string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	return ParseWithVars(data, overrides)
}

// Parse decodes, validates, and expands a plan from YAML bytes.
func Parse(data []byte) (*Plan, error) {
	return ParseWithVars(data, nil)
}

// ParseWithVars is Parse with variable overrides.
func ParseWithVars(data []byte, overrides map[string]string) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	for k, v := range overrides {
		if p.Vars == nil {
			p.Vars = make(map[string]string)
		}
		p.Vars[k] = v
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := p.expand(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) validate() error {
	if len(p.Steps) == 0 {
		return ErrEmptyPlan
	}
	for i := range p.Steps {
		s := &p.Steps[i]
		if n := countActions(s); n != 1 {
			return fmt.Errorf("step %d (%s): want exactly one action, got %d", i+1, s.Label(), n)
		}
		if err := validateStep(s); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Label(), err)
		}
	}
	return nil
}

func countActions(s *Step) int {
	n := 0
	for _, set := range []bool{
		s.CreateAccount != nil,
		s.Deploy != nil,
		s.Call != nil,
		s.View != nil,
		s.DeleteAccount != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func validateStep(s *Step) error {
	switch {
	case s.CreateAccount != nil:
		if s.CreateAccount.ID == "" || s.CreateAccount.Master == "" {
			return errors.New("create-account needs id and master")
		}
	case s.Deploy != nil:
		if s.Deploy.Account == "" || s.Deploy.Wasm == "" {
			return errors.New("deploy needs account and wasm")
		}
	case s.Call != nil:
		if s.Call.Contract == "" || s.Call.Method == "" || s.Call.Signer == "" {
			return errors.New("call needs contract, method and signer")
		}
		if s.Call.Deposit != "" && s.Call.DepositYocto != "" {
			return errors.New("call deposit and deposit-yocto are mutually exclusive")
		}
	case s.View != nil:
		if s.View.Contract == "" || s.View.Method == "" {
			return errors.New("view needs contract and method")
		}
	case s.DeleteAccount != nil:
		if s.DeleteAccount.ID == "" || s.DeleteAccount.Beneficiary == "" {
			return errors.New("delete-account needs id and beneficiary")
		}
	}
	return nil
}

// expand renders {{var}} placeholders in every string field and in string
// values nested inside call/view args.
func (p *Plan) expand() error {
	for i := range p.Steps {
		s := &p.Steps[i]
		var err error
		switch {
		case s.CreateAccount != nil:
			err = expandStrings(p.Vars, &s.CreateAccount.ID, &s.CreateAccount.Master, &s.CreateAccount.InitialBalance)
		case s.Deploy != nil:
			err = expandStrings(p.Vars, &s.Deploy.Account, &s.Deploy.Wasm)
		case s.Call != nil:
			err = expandStrings(p.Vars, &s.Call.Contract, &s.Call.Method, &s.Call.Signer,
				&s.Call.Gas, &s.Call.Deposit, &s.Call.DepositYocto)
			if err == nil {
				s.Call.Args, err = expandValue(p.Vars, s.Call.Args)
			}
		case s.View != nil:
			err = expandStrings(p.Vars, &s.View.Contract, &s.View.Method)
			if err == nil {
				s.View.Args, err = expandValue(p.Vars, s.View.Args)
			}
		case s.DeleteAccount != nil:
			err = expandStrings(p.Vars, &s.DeleteAccount.ID, &s.DeleteAccount.Beneficiary)
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Label(), err)
		}
	}
	return nil
}

func expandStrings(vars map[string]string, fields ...*string) error {
	for _, f := range fields {
		out, err := Render(*f, vars)
		if err != nil {
			return err
		}
		*f = out
	}
	return nil
}

func expandValue(vars map[string]string, m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		ev, err := expandAny(vars, v)
		if err != nil {
			return nil, err
		}
		out[k] = ev
	}
	return out, nil
}

func expandAny(vars map[string]string, v any) (any, error) {
	switch t := v.(type) {
	case string:
		return Render(t, vars)
	case map[string]any:
		return expandValue(vars, t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			ev, err := expandAny(vars, e)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	default:
		return v, nil
	}
}
