package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/go-drift/ribbon/pkg/host/memhost"
	"github.com/go-drift/ribbon/pkg/widget"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newTreeCommand(e *env) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "tree [tab-id...]",
		Short: "Print the live tree built from declarations",
		Long: `Builds each tab into an in-memory host and prints the live tree with
the identity path and cookie of every node. Without arguments the preload list
from ribbon.yaml is used, or every declaration file when there is none.

Tabs listed under ribbon.contextual are created as hidden contextual tabs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := e.open()
			ids, err := p.targets(args)
			if err != nil {
				return err
			}
			if raw {
				return p.dump(cmd.OutOrStdout(), ids)
			}
			return p.tree(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "dump the resolved declarations instead of building them")
	return cmd
}

func (p *project) dump(w io.Writer, ids []string) error {
	for _, id := range ids {
		tab, ok := p.decls.Resolve(id)
		if !ok {
			return fmt.Errorf("no declaration for %q in %s", id, p.declPath(id))
		}
		fmt.Fprintf(w, "# %s\n", id)
		dumper.Fdump(w, tab)
	}
	return nil
}

func (p *project) tree(w io.Writer, ids []string) error {
	h := memhost.New()
	r, err := p.ribbon(h, p.decls)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, id := range ids {
		if p.contextual(id) {
			_, err = r.CreateContextual(id, nil)
		} else {
			_, err = r.GetOrCreate(id)
		}
		if err != nil {
			return err
		}
	}
	for _, tab := range h.Tabs() {
		printTree(w, tab)
	}
	return nil
}

func printTree(w io.Writer, tab *widget.Tab) {
	widget.Walk(tab, func(n widget.Node, depth int) {
		el := n.Base()
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(strings.TrimPrefix(fmt.Sprintf("%T", n), "*widget."))
		if el.ID != "" {
			fmt.Fprintf(&b, " %s", el.ID)
		}
		if el.Path != "" {
			fmt.Fprintf(&b, " path=%s", el.Path)
		}
		if el.Cookie != "" {
			fmt.Fprintf(&b, " cookie=%s", el.Cookie)
		}
		if t, ok := n.(*widget.Tab); ok && t.IsContextualTab {
			b.WriteString(" (contextual)")
		}
		fmt.Fprintln(w, b.String())
	})
}
