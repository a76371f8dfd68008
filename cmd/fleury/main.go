// SPDX-License-Identifier: MIT

// Command fleury builds one of the built-in graphs, checks it for an
// Eulerian trail and prints the walk as "a - b" lines, or
// "Unable to apply!" when no trail exists.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/plan-systems/klog"

	"github.com/ciroDourado/fleury-s-algorithm/builder"
	"github.com/ciroDourado/fleury-s-algorithm/euler"
	"github.com/ciroDourado/fleury-s-algorithm/fleury"
)

const unableMsg = "Unable to apply!"

type config struct {
	graph     string
	n         int
	p         float64
	seed      int64
	policy    string
	selection string
}

func main() {
	fset := flag.CommandLine
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var cfg config
	fset.StringVar(&cfg.graph, "graph", "demo", "built-in graph: "+graphNames())
	fset.IntVar(&cfg.n, "n", 5, "vertex count for sized graphs")
	fset.Float64Var(&cfg.p, "p", 0.5, "edge probability for -graph random")
	fset.Int64Var(&cfg.seed, "seed", 1, "seed for -graph random")
	fset.StringVar(&cfg.policy, "policy", "cyclic", "feasibility policy: cyclic|connected")
	fset.StringVar(&cfg.selection, "select", "first", "edge selection: first|bridges")
	flag.Parse()

	err := run(cfg, os.Stdout)
	if err != nil {
		klog.Errorf("fleury: %v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// run builds the requested graph and writes the trail to out.
// An infeasible graph is reported on out and is not an error.
func run(cfg config, out io.Writer) error {
	policy, err := parsePolicy(cfg.policy)
	if err != nil {
		return err
	}
	sel, err := parseSelection(cfg.selection)
	if err != nil {
		return err
	}
	ctors, ok := catalog[cfg.graph]
	if !ok {
		return fmt.Errorf("unknown graph %q (%s)", cfg.graph, graphNames())
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(cfg.seed)}, ctors(cfg.n, cfg.p)...)
	if err != nil {
		return err
	}

	r := euler.Analyze(g, euler.WithPolicy(policy))
	klog.V(1).Infof("graph=%s vertices=%d edges=%d odd=%d cyclic=%v connected=%v components=%d",
		cfg.graph, g.VertexCount(), r.Edges, len(r.OddVertices), r.Cyclic, r.Connected, r.Components)
	klog.V(1).Infof("policy=%s verdict=%s selection=%s", policy, r.Kind, sel)

	tr, err := fleury.Apply(g, fleury.WithPolicy(policy), fleury.WithSelection(sel))
	if errors.Is(err, fleury.ErrInfeasible) {
		klog.V(1).Infof("%v", err)
		_, err = fmt.Fprintln(out, unableMsg)
		return err
	}
	if err != nil {
		return err
	}

	if !tr.Complete {
		klog.Warningf("walk stranded after %d steps, %d edges left", tr.Len(), tr.Remaining)
	}
	_, err = io.WriteString(out, tr.String())

	return err
}
