// Package ained drives the AiNed neuromorphic lattice exposed in FPGA
// fabric: a 128×64 bit-addressable memory whose writes may either act
// as plain memory (bypass mode) or be interpreted by the device's
// stochastic update logic, shaped by coefficient kernels and per-dipole
// random generators.
//
// Everything is organized under three subpackages plus a shell:
//
//	mmio/      — word-granular access to mapped device regions
//	             (/dev/mem on hardware, an in-memory Sim elsewhere)
//	device/    — the exclusively-owned handle: bit addressing, masked
//	             write transactions, bypass control, coefficient
//	             kernels, dipole RNGs, snapshot persistence
//	lightsout/ — a deterministic Lights-Out engine and 5×5 solver
//	             layered on the lattice
//	cmd/ained/ — the operator shell
//
// A minimal session:
//
//	dev, err := device.Open(device.WithMapper(mmio.NewSim()))
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
//	dev.ClearMemory()
//	tx := device.NewTxn()
//	_ = tx.StageBit(7, 7, true)
//	_ = dev.Commit(tx)
//
// The handle is a process-wide singleton by hardware constraint: open
// exactly one, and never share it across goroutines without external
// serialization.
package ained
