// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ciroDourado/fleury-s-algorithm/builder"
	"github.com/ciroDourado/fleury-s-algorithm/euler"
	"github.com/ciroDourado/fleury-s-algorithm/fleury"
)

// catalog maps a -graph name to the constructors producing it for size n.
var catalog = map[string]func(n int, p float64) []builder.Constructor{
	"demo":      func(int, float64) []builder.Constructor { return []builder.Constructor{builder.Demo()} },
	"cycle":     func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Cycle(n)} },
	"path":      func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Path(n)} },
	"star":      func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Star(n)} },
	"wheel":     func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Wheel(n)} },
	"complete":  func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Complete(n)} },
	"random":    func(n int, p float64) []builder.Constructor { return []builder.Constructor{builder.RandomSparse(n, p)} },
	"triangles": func(int, float64) []builder.Constructor { return []builder.Constructor{builder.Cycle(3), builder.Cycle(3)} },
}

func graphNames() string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

func parsePolicy(s string) (euler.Policy, error) {
	switch s {
	case "cyclic":
		return euler.PolicyCyclic, nil
	case "connected":
		return euler.PolicyConnected, nil
	}

	return 0, fmt.Errorf("unknown policy %q (cyclic|connected)", s)
}

func parseSelection(s string) (fleury.Selection, error) {
	switch s {
	case "first":
		return fleury.FirstAvailable, nil
	case "bridges":
		return fleury.AvoidBridges, nil
	}

	return 0, fmt.Errorf("unknown selection %q (first|bridges)", s)
}
