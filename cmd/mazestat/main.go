// Command mazestat generates a layered maze and reports its structure, the
// solution path between its diameter endpoints and its fundamental cycles.
//
// Usage:
//
//	mazestat [--config maze.yaml] [--width 62 --height 37 --seed 1 ...]
//	mazestat path   [flags]   # solution cells, start to end
//	mazestat cycles [flags]   # one line per detected cycle
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")

	err := newRootCmd(fset).Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
