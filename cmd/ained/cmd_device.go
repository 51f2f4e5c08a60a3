package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuromorph/ained/device"
)

func runInfo(cmd *cobra.Command, args []string) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	fmt.Printf("registers  0x%08X +%d\n", cfg.Registers.Addr, cfg.Registers.Length)
	fmt.Printf("memory     0x%08X +%d\n", cfg.Memory.Addr, cfg.Memory.Length)
	fmt.Printf("lattice    %dx%d bits (%d words)\n", device.Rows, device.Cols, device.Words)
	fmt.Printf("dipoles    %d\n", dev.Dipoles())
	fmt.Printf("bypass     %v\n", dev.Bypass())
	fmt.Println("register block:")
	for i, v := range dev.Registers() {
		fmt.Printf("  [%2d] 0x%08X\n", i, v)
	}
	return nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	if printHex {
		for i, w := range dev.MemoryWords() {
			fmt.Printf("[%3d] 0x%016X\n", i, w)
		}
		return nil
	}
	var b strings.Builder
	for r := 0; r < device.Rows; r++ {
		for c := 0; c < device.Cols; c++ {
			on, _ := dev.Bit(r, c)
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("row %q: %w", args[0], err)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("col %q: %w", args[1], err)
	}
	set := args[2] != "0"

	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	tx := device.NewTxn()
	if err := tx.StageBit(row, col, set); err != nil {
		return err
	}
	return dev.Commit(tx)
}

func runClear(cmd *cobra.Command, args []string) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()
	dev.ClearMemory()
	return nil
}

func runBypass(cmd *cobra.Command, args []string) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	if len(args) == 0 {
		fmt.Println(map[bool]string{true: "on", false: "off"}[dev.Bypass()])
		return nil
	}
	switch args[0] {
	case "on":
		dev.SetBypass(true)
	case "off":
		dev.SetBypass(false)
	default:
		return fmt.Errorf("bypass: want on or off, got %q", args[0])
	}
	return nil
}

func runCoeffs(cmd *cobra.Command, args []string) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	for _, k := range []device.Kernel{device.KernelHigh, device.KernelLow} {
		fmt.Printf("%s kernel quadrant weights:\n", k)
		w := dev.KernelWeights(k)
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				fmt.Printf(" %5.3f", w[r*5+c])
			}
			fmt.Println()
		}
	}
	fmt.Println("raw groups:")
	for g := 0; g < device.NumCoefficientGroups; g++ {
		v, err := dev.Coefficient(g)
		if err != nil {
			return err
		}
		fmt.Printf("  [%2d] 0x%08X\n", g, v)
	}
	return nil
}

func runUpdateCoeffs(cmd *cobra.Command, args []string) error {
	var which device.Kernel
	switch coeffKernel {
	case "high":
		which = device.KernelHigh
	case "low":
		which = device.KernelLow
	default:
		return fmt.Errorf("update-coeffs: want kernel high or low, got %q", coeffKernel)
	}
	var metric device.Distance
	switch coeffMetric {
	case "euclidean":
		metric = device.Euclidean
	case "manhattan":
		metric = device.Manhattan
	default:
		return fmt.Errorf("update-coeffs: want metric euclidean or manhattan, got %q", coeffMetric)
	}

	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()
	return dev.GenerateKernel(metric, coeffFactor, coeffReach, which)
}

func runDipoleGet(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("dipole index %q: %w", args[0], err)
	}
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	out, s0, s1, s2, err := dev.DipoleRNG(idx)
	if err != nil {
		return err
	}
	fmt.Printf("dipole %d: out=0x%08X seeds=0x%08X 0x%08X 0x%08X\n", idx, out, s0, s1, s2)
	return nil
}

func runDipoleSet(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("dipole index %q: %w", args[0], err)
	}
	seeds := make([]uint32, 3)
	for i, a := range args[1:] {
		v, err := strconv.ParseUint(a, 0, 32)
		if err != nil {
			return fmt.Errorf("seed %q: %w", a, err)
		}
		seeds[i] = uint32(v)
	}

	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()
	return dev.SetDipoleRNG(idx, seeds[0], seeds[1], seeds[2])
}

func runStore(cmd *cobra.Command, args []string) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	mf, err := os.Create(memoryFile)
	if err != nil {
		return err
	}
	defer mf.Close()
	if err := dev.WriteMemoryImage(mf); err != nil {
		return err
	}

	sf, err := os.Create(stateFile)
	if err != nil {
		return err
	}
	defer sf.Close()
	return dev.WriteStateImage(sf)
}

func runRestore(cmd *cobra.Command, args []string) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	sf, err := os.Open(stateFile)
	if err != nil {
		return err
	}
	defer sf.Close()
	if err := dev.ReadStateImage(sf); err != nil {
		return err
	}

	mf, err := os.Open(memoryFile)
	if err != nil {
		return err
	}
	defer mf.Close()
	return dev.ReadMemoryImage(mf)
}
