package device_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuromorph/ained/device"
	"github.com/neuromorph/ained/mmio"
)

// TestDipoles_ScanCount verifies the scan stops at the first zero
// generator-id slot.
func TestDipoles_ScanCount(t *testing.T) {
	sim := mmio.NewSim()
	require.NoError(t, device.PrimeSim(sim, 6))
	dev, err := device.Open(device.WithMapper(sim))
	require.NoError(t, err)
	defer dev.Close()

	require.Equal(t, 6, dev.Dipoles())
}

// TestDipoles_ZeroIsLegal verifies an unprimed register block yields a
// degenerate but legal count of zero.
func TestDipoles_ZeroIsLegal(t *testing.T) {
	dev, err := device.Open(device.WithMapper(mmio.NewSim()))
	require.NoError(t, err)
	defer dev.Close()

	require.Zero(t, dev.Dipoles())
	_, _, _, _, err = dev.DipoleRNG(0)
	require.ErrorIs(t, err, device.ErrOutOfRange)
}

// TestDipoles_RNGRoundTrip verifies seeds written are read back intact
// for every detected dipole.
func TestDipoles_RNGRoundTrip(t *testing.T) {
	sim := mmio.NewSim()
	require.NoError(t, device.PrimeSim(sim, 3))
	dev, err := device.Open(device.WithMapper(sim))
	require.NoError(t, err)
	defer dev.Close()

	for d := 0; d < dev.Dipoles(); d++ {
		want0 := uint32(0x1000 + d)
		want1 := uint32(0x2000 + d)
		want2 := uint32(0x3000 + d)
		require.NoError(t, dev.SetDipoleRNG(d, want0, want1, want2))

		_, s0, s1, s2, err := dev.DipoleRNG(d)
		require.NoError(t, err)
		require.Equal(t, want0, s0)
		require.Equal(t, want1, s1)
		require.Equal(t, want2, s2)
	}
}

// TestDipoles_StrictBound verifies the index bound is strict: the slot
// after the detected set is rejected, not read.
func TestDipoles_StrictBound(t *testing.T) {
	sim := mmio.NewSim()
	require.NoError(t, device.PrimeSim(sim, 3))
	dev, err := device.Open(device.WithMapper(sim))
	require.NoError(t, err)
	defer dev.Close()

	_, _, _, _, err = dev.DipoleRNG(3)
	require.ErrorIs(t, err, device.ErrOutOfRange)
	require.ErrorIs(t, dev.SetDipoleRNG(3, 1, 2, 3), device.ErrOutOfRange)
	require.ErrorIs(t, dev.SetDipoleRNG(-1, 1, 2, 3), device.ErrOutOfRange)
}
