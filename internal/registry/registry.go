// Package registry persists a local record of contract deployments so the
// demo and maintenance commands can find accounts the CLI created.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"
)

// ErrDeploymentNotFound is returned when a deployment is not in the registry.
var ErrDeploymentNotFound = errors.New("deployment not found")

// Contract kinds recorded in the registry.
const (
	KindFT     = "ft"
	KindNFT    = "nft"
	KindCustom = "custom"
)

// Deployment is one recorded contract deployment.
type Deployment struct {
	AccountID  string    `json:"account_id"`
	Network    string    `json:"network"`
	Kind       string    `json:"kind"`
	WasmPath   string    `json:"wasm_path,omitempty"`
	InitMethod string    `json:"init_method,omitempty"`
	DevDeploy  bool      `json:"dev_deploy,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Registry stores and retrieves deployments, backed by a JSON file.
type Registry struct {
	path        string
	deployments map[string]*Deployment // key: "account@network"
}

// New creates a Registry backed by a JSON file.
func New(path string) *Registry {
	return &Registry{
		path:        path,
		deployments: make(map[string]*Deployment),
	}
}

// Load reads stored deployments from disk. A missing file is an empty
// registry.
func (r *Registry) Load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var entries []Deployment
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	for i := range entries {
		d := &entries[i]
		r.deployments[key(d.AccountID, d.Network)] = d
	}
	return nil
}

// Save writes all deployments to disk.
func (r *Registry) Save() error {
	entries := make([]Deployment, 0, len(r.deployments))
	for _, d := range r.deployments {
		entries = append(entries, *d)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o600)
}

// Record adds or updates a deployment, stamping CreatedAt if unset.
func (r *Registry) Record(d *Deployment) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	r.deployments[key(d.AccountID, d.Network)] = d
}

// Get returns a deployment by account and network.
func (r *Registry) Get(accountID, network string) (*Deployment, error) {
	d, ok := r.deployments[key(accountID, network)]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrDeploymentNotFound, accountID, network)
	}
	return d, nil
}

// ByKind returns all deployments of a given kind on a network.
func (r *Registry) ByKind(kind, network string) []*Deployment {
	var out []*Deployment
	for _, d := range r.deployments {
		if d.Kind == kind && d.Network == network {
			out = append(out, d)
		}
	}
	sortDeployments(out)
	return out
}

// All returns all recorded deployments, oldest first.
func (r *Registry) All() []*Deployment {
	out := make([]*Deployment, 0, len(r.deployments))
	for _, d := range r.deployments {
		out = append(out, d)
	}
	sortDeployments(out)
	return out
}

// Remove deletes a deployment record.
func (r *Registry) Remove(accountID, network string) error {
	k := key(accountID, network)
	if _, ok := r.deployments[k]; !ok {
		return fmt.Errorf("%w: %s on %s", ErrDeploymentNotFound, accountID, network)
	}
	delete(r.deployments, k)
	return nil
}

func sortDeployments(ds []*Deployment) {
	sort.Slice(ds, func(i, j int) bool {
		if ds[i].CreatedAt.Equal(ds[j].CreatedAt) {
			return ds[i].AccountID < ds[j].AccountID
		}
		return ds[i].CreatedAt.Before(ds[j].CreatedAt)
	})
}

func key(accountID, network string) string {
	return accountID + "@" + network
}
