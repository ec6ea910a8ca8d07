package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegraph/gridgraph"
	"github.com/katalvlaran/mazegraph/maze"
)

// settings collects the flags shared by every command.
type settings struct {
	configPath string
	cfg        maze.Config
	logLevel   int
}

func newRootCmd(klogFlags *flag.FlagSet) *cobra.Command {
	s := &settings{cfg: maze.DefaultConfig()}

	root := &cobra.Command{
		Use:           "mazestat",
		Short:         "Generate a layered maze and report its structure",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := s.build(cmd)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), s.cfg, m)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.configPath, "config", "", "YAML file with maze parameters; flags override it")
	pf.IntVar(&s.cfg.Width, "width", s.cfg.Width, "grid width in cells")
	pf.IntVar(&s.cfg.Height, "height", s.cfg.Height, "grid height in cells")
	pf.Int64Var(&s.cfg.Seed, "seed", s.cfg.Seed, "random seed (0 selects the default seed)")
	pf.Float64Var(&s.cfg.BranchProbability, "branch", s.cfg.BranchProbability, "branch probability in [0,1]")
	pf.Float64Var(&s.cfg.LoopProbability, "loop", s.cfg.LoopProbability, "loop probability in [0,1]")
	pf.Float64Var(&s.cfg.BridgeProbability, "bridge", s.cfg.BridgeProbability, "bridge probability in [0,1]")
	pf.IntVar(&s.cfg.EdgeMargin, "margin", s.cfg.EdgeMargin, "start cell distance from the grid edges")
	pf.IntVar(&s.logLevel, "log-level", 0, "verbosity of generator logs")
	if klogFlags != nil {
		pf.AddGoFlagSet(klogFlags)
	}

	root.AddCommand(newPathCmd(s), newCyclesCmd(s))
	return root
}

func newPathCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the solution path from start to end",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := s.build(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range m.Solution {
				fmt.Fprintln(out, coord(m.Graph, c))
			}
			return nil
		},
	}
}

func newCyclesCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles",
		Short: "Print one fundamental cycle per loop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := s.build(cmd)
			if err != nil {
				return err
			}
			cs, err := m.Cycles()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, c := range cs {
				fmt.Fprintf(out, "cycle %d (%d edges):", i, c.Len())
				for _, ref := range c {
					fmt.Fprint(out, " ", coord(m.Graph, ref))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

// build resolves the configuration and generates the maze. Values from the
// YAML file apply first; flags set on the command line win.
func (s *settings) build(cmd *cobra.Command) (*maze.Maze, error) {
	cfg := s.cfg
	if s.configPath != "" {
		fileCfg, err := maze.LoadConfig(s.configPath)
		if err != nil {
			klog.Errorf("config %s: %v", s.configPath, err)
			return nil, err
		}
		cfg = overrideChanged(cmd, fileCfg, s.cfg)
	}
	s.cfg = cfg

	klog.Infof("building %d×%d maze, seed %d", cfg.Width, cfg.Height, cfg.Seed)
	m, err := maze.Build(cfg, maze.WithLogger(newLogger(s.logLevel)))
	if err != nil {
		klog.Errorf("build: %v", err)
		return nil, err
	}
	return m, nil
}

// overrideChanged copies into base every field whose flag was set explicitly.
func overrideChanged(cmd *cobra.Command, base, flags maze.Config) maze.Config {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("width") {
		base.Width = flags.Width
	}
	if changed("height") {
		base.Height = flags.Height
	}
	if changed("seed") {
		base.Seed = flags.Seed
	}
	if changed("branch") {
		base.BranchProbability = flags.BranchProbability
	}
	if changed("loop") {
		base.LoopProbability = flags.LoopProbability
	}
	if changed("bridge") {
		base.BridgeProbability = flags.BridgeProbability
	}
	if changed("margin") {
		base.EdgeMargin = flags.EdgeMargin
	}
	return base
}

// newLogger forwards generator logs to klog.
func newLogger(level int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		klog.Info(prefix, " ", args)
	}, funcr.Options{Verbosity: level})
}

func printSummary(out io.Writer, cfg maze.Config, m *maze.Maze) error {
	cs, err := m.Cycles()
	if err != nil {
		return err
	}
	g := m.Graph
	fmt.Fprintf(out, "grid:      %d×%d×%d (seed %d)\n", g.Width, g.Height, gridgraph.Layers, cfg.Seed)
	fmt.Fprintf(out, "open:      %d cells\n", g.OpenCount())
	fmt.Fprintf(out, "edges:     %d\n", g.EdgeCount())
	fmt.Fprintf(out, "bridges:   %d\n", g.BridgeCount())
	fmt.Fprintf(out, "origin:    %s\n", coord(g, m.Origin))
	fmt.Fprintf(out, "start:     %s\n", coord(g, m.Start()))
	fmt.Fprintf(out, "end:       %s\n", coord(g, m.End()))
	fmt.Fprintf(out, "solution:  %d steps\n", len(m.Solution)-1)
	fmt.Fprintf(out, "cycles:    %d\n", len(cs))
	return nil
}

func coord(g *gridgraph.GridGraph, ref int) string {
	x, y, layer := g.Coordinate(ref)
	return fmt.Sprintf("(%d,%d,%d)", x, y, layer)
}
