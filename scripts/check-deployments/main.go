// check-deployments: queries on-chain state for every account in the local
// deployment registry in parallel and prints a summary table.
//
// Run from the module root:
//
//	go run ./scripts/check-deployments
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/nearkit/nearctl/internal/config"
	"github.com/nearkit/nearctl/internal/nearcli"
	"github.com/nearkit/nearctl/internal/registry"
)

// ── config ────────────────────────────────────────────────────────────────────

const stateTimeout = 20 * time.Second

// ── types ─────────────────────────────────────────────────────────────────────

type result struct {
	account string
	network string
	kind    string
	status  string
	err     string
}

// ── main ──────────────────────────────────────────────────────────────────────

func main() {
	cfg, err := config.Load(os.Getenv("NEARCTL_CONFIG_DIR"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	reg := registry.New(cfg.DeploymentsPath())
	if err := reg.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "registry: %v\n", err)
		os.Exit(1)
	}
	deployments := reg.All()
	if len(deployments) == 0 {
		fmt.Println("registry is empty; nothing to check")
		return
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []result
	)

	for _, d := range deployments {
		wg.Add(1)
		go func(d *registry.Deployment) {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), stateTimeout)
			defer cancel()

			client := nearcli.NewClient(nearcli.NewExecRunner(cfg.Binary),
				nearcli.WithNetworkID(d.Network))

			r := result{account: d.AccountID, network: d.Network, kind: d.Kind}
			if _, err := client.AccountState(ctx, d.AccountID); err != nil {
				r.status = "MISSING"
				r.err = firstLine(err.Error())
			} else {
				r.status = "OK"
			}

			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}(d)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].network != results[j].network {
			return results[i].network < results[j].network
		}
		return results[i].account < results[j].account
	})

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tNETWORK\tKIND\tSTATUS\tERROR")
	failed := 0
	for _, r := range results {
		if r.status != "OK" {
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.account, r.network, r.kind, r.status, r.err)
	}
	w.Flush()

	fmt.Printf("\n%d deployment(s), %d unreachable\n", len(results), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
