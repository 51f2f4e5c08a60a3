package main

import "github.com/spf13/cobra"

// --- Global Command Variables ---
var (
	configPath string
	simMode    bool
	verbose    bool

	printHex bool

	coeffKernel string
	coeffMetric string
	coeffFactor float64
	coeffReach  uint32

	memoryFile string
	stateFile  string

	boardRow  int
	boardCol  int
	boardRows int
	boardCols int

	scramble     bool
	solveMethod  string
	solveMoveCap int

	rootCmd = &cobra.Command{
		Use:          "ained",
		Short:        "Driver CLI for the AiNed neuromorphic lattice",
		Long:         "ained talks to an AiNed FPGA fabric over /dev/mem (or an\nin-process simulator with --sim): raw lattice access, probability\nkernel programming, dipole seeding, snapshots and Lights-Out.",
		SilenceUsage: true,
	}

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Show device windows, register block and dipole count",
		RunE:  runInfo, // Defined in cmd_device.go
	}

	printCmd = &cobra.Command{
		Use:   "print",
		Short: "Print the full 128x64 lattice as a bitmap",
		RunE:  runPrint, // Defined in cmd_device.go
	}

	setCmd = &cobra.Command{
		Use:   "set <row> <col> <0|1>",
		Short: "Commit one bit through the masked write path",
		Args:  cobra.ExactArgs(3),
		RunE:  runSet, // Defined in cmd_device.go
	}

	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Zero the whole lattice (under bypass)",
		RunE:  runClear, // Defined in cmd_device.go
	}

	bypassCmd = &cobra.Command{
		Use:   "bypass [on|off]",
		Short: "Show or switch the stochastic-update bypass",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBypass, // Defined in cmd_device.go
	}

	coeffsCmd = &cobra.Command{
		Use:   "coeffs",
		Short: "Dump both probability kernels",
		RunE:  runCoeffs, // Defined in cmd_device.go
	}

	updateCoeffsCmd = &cobra.Command{
		Use:   "update-coeffs",
		Short: "Regenerate a probability kernel from metric, factor and reach",
		RunE:  runUpdateCoeffs, // Defined in cmd_device.go
	}

	// --- Dipole RNGs ---
	dipoleCmd = &cobra.Command{
		Use:   "dipole",
		Short: "Inspect and seed the hardware random generators",
	}
	dipoleGetCmd = &cobra.Command{
		Use:   "get <index>",
		Short: "Read one dipole's output and Tausworthe seeds",
		Args:  cobra.ExactArgs(1),
		RunE:  runDipoleGet, // Defined in cmd_device.go
	}
	dipoleSetCmd = &cobra.Command{
		Use:   "set <index> <s0> <s1> <s2>",
		Short: "Seed one dipole's Tausworthe generator",
		Args:  cobra.ExactArgs(4),
		RunE:  runDipoleSet, // Defined in cmd_device.go
	}

	// --- Snapshots ---
	storeCmd = &cobra.Command{
		Use:   "store",
		Short: "Write lattice and register snapshots to files",
		RunE:  runStore, // Defined in cmd_device.go
	}
	restoreCmd = &cobra.Command{
		Use:   "restore",
		Short: "Restore lattice and register snapshots from files",
		RunE:  runRestore, // Defined in cmd_device.go
	}

	// --- Lights-Out ---
	boardCmd = &cobra.Command{
		Use:   "board",
		Short: "Print the Lights-Out sub-board",
		RunE:  runBoard, // Defined in cmd_game.go
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play Lights-Out interactively on the fabric",
		RunE:  runPlay, // Defined in tui.go
	}
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Let a strategy clear the Lights-Out board",
		RunE:  runSolve, // Defined in cmd_game.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&simMode, "sim", false, "Run against an in-process simulator instead of /dev/mem")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.AddCommand(infoCmd)

	rootCmd.AddCommand(printCmd)
	printCmd.Flags().BoolVar(&printHex, "hex", false, "Print raw 64-bit words instead of a bitmap")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(bypassCmd)

	rootCmd.AddCommand(coeffsCmd)

	rootCmd.AddCommand(updateCoeffsCmd)
	updateCoeffsCmd.Flags().StringVar(&coeffKernel, "kernel", "high", "Kernel to regenerate: high or low")
	updateCoeffsCmd.Flags().StringVar(&coeffMetric, "metric", "euclidean", "Distance metric: euclidean or manhattan")
	updateCoeffsCmd.Flags().Float64Var(&coeffFactor, "factor", 0.5, "Decay factor in (0,1]")
	updateCoeffsCmd.Flags().Uint32Var(&coeffReach, "reach", 4, "Maximum distance with non-zero weight")

	rootCmd.AddCommand(dipoleCmd)
	dipoleCmd.AddCommand(dipoleGetCmd)
	dipoleCmd.AddCommand(dipoleSetCmd)

	rootCmd.AddCommand(storeCmd)
	storeCmd.Flags().StringVar(&memoryFile, "memory", "ained.mem", "Lattice image file")
	storeCmd.Flags().StringVar(&stateFile, "state", "ained.state", "Register image file")
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().StringVar(&memoryFile, "memory", "ained.mem", "Lattice image file")
	restoreCmd.Flags().StringVar(&stateFile, "state", "ained.state", "Register image file")

	for _, c := range []*cobra.Command{boardCmd, playCmd, solveCmd} {
		rootCmd.AddCommand(c)
		c.Flags().IntVar(&boardRow, "row", 0, "Top row of the sub-board on the lattice")
		c.Flags().IntVar(&boardCol, "col", 0, "Left column of the sub-board on the lattice")
		c.Flags().IntVar(&boardRows, "rows", 5, "Sub-board height")
		c.Flags().IntVar(&boardCols, "cols", 5, "Sub-board width")
	}
	playCmd.Flags().BoolVar(&scramble, "scramble", false, "Start from a random solvable 5x5 board")
	solveCmd.Flags().BoolVar(&scramble, "scramble", false, "Start from a random solvable 5x5 board")
	solveCmd.Flags().StringVar(&solveMethod, "strategy", "deterministic", "Strategy: deterministic, chase or greedy")
	solveCmd.Flags().IntVar(&solveMoveCap, "moves", 0, "Move cap (0 selects the default)")
}
