package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/ribbon/pkg/decl"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host/memhost"
	"github.com/go-drift/ribbon/pkg/resolve"
	"github.com/go-drift/ribbon/pkg/widget"
)

func newCheckCommand(e *env) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check [tab-id...]",
		Short: "Resolve and build declarations and report problems",
		Long: `Resolves every declaration file concurrently, builds the ones that
resolve and prints every problem the resolver and builder reported.

The command fails when a declaration cannot be resolved, or with --strict when
anything at all was reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := e.open()
			ids, err := p.targets(args)
			if err != nil {
				return err
			}
			return p.check(cmd, ids, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on any reported problem")
	return cmd
}

type checkResult struct {
	id    string
	tab   *decl.Tab
	nodes int
}

func (p *project) check(cmd *cobra.Command, ids []string, strict bool) error {
	c := &errors.Collector{}
	defer errors.Swap(c)()

	results := make([]checkResult, len(ids))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tab, _ := p.decls.Resolve(id)
			results[i] = checkResult{id: id, tab: tab}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var resolved []*decl.Tab
	for _, res := range results {
		if res.tab != nil {
			resolved = append(resolved, res.tab)
		}
	}
	h := memhost.New()
	r, err := p.ribbon(h, resolve.NewMap(resolved...))
	if err != nil {
		return err
	}
	defer r.Close()

	failed := 0
	for i := range results {
		res := &results[i]
		if res.tab == nil {
			failed++
			continue
		}
		tab, err := r.GetOrCreate(res.tab.ID)
		if err != nil {
			return err
		}
		widget.Walk(tab, func(widget.Node, int) { res.nodes++ })
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		if res.tab == nil {
			fmt.Fprintf(out, "FAIL %s (%s)\n", res.id, p.declPath(res.id))
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d nodes)\n", res.id, res.nodes)
	}
	reported := printReports(out, c)
	p.logger.Debug("check finished",
		zap.Int("declarations", len(results)),
		zap.Int("failed", failed),
		zap.Int("reports", reported),
	)

	switch {
	case failed > 0:
		return fmt.Errorf("%d of %d declarations failed to resolve", failed, len(results))
	case strict && reported > 0:
		return fmt.Errorf("%d problems reported", reported)
	}
	return nil
}

func printReports(w io.Writer, c *errors.Collector) int {
	errs, panics := c.Errors(), c.Panics()
	for _, e := range errs {
		fmt.Fprintf(w, "  %v\n", e)
	}
	for _, p := range panics {
		fmt.Fprintf(w, "  %v\n", p)
	}
	return len(errs) + len(panics)
}
