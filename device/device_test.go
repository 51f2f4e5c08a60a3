package device_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuromorph/ained/device"
	"github.com/neuromorph/ained/mmio"
)

// TestOpen_MapFailure verifies Open surfaces ErrMapFailed when a region
// cannot be established (here: a misaligned register window).
func TestOpen_MapFailure(t *testing.T) {
	_, err := device.Open(
		device.WithMapper(mmio.NewSim()),
		device.WithRegisterWindow(device.DefaultRegisterAddr, 12),
	)
	require.ErrorIs(t, err, device.ErrMapFailed)
}

// TestOpen_PartialMappingReleased verifies a memory-window failure still
// yields a clean error after the register window mapped fine.
func TestOpen_PartialMappingReleased(t *testing.T) {
	_, err := device.Open(
		device.WithMapper(mmio.NewSim()),
		device.WithMemoryWindow(device.DefaultMemoryAddr, 4),
	)
	require.ErrorIs(t, err, device.ErrMapFailed)
}

// TestOptions_PanicOnNonsense verifies programmer errors panic.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { device.WithMapper(nil) })
	require.Panics(t, func() { device.WithLogger(nil) })
	require.Panics(t, func() { device.WithRegisterWindow(0, 0) })
	require.Panics(t, func() { device.WithMemoryWindow(0, -8) })
}

// TestClose_NilSafe verifies Close tolerates a nil handle.
func TestClose_NilSafe(t *testing.T) {
	var dev *device.Device
	require.NoError(t, dev.Close())
}
