package device

import (
	"fmt"
	"math"
)

// Distance selects the metric used to derive kernel weights.
type Distance int

const (
	// Euclidean derives weight from sqrt(r²+c²)−1.
	Euclidean Distance = iota
	// Manhattan derives weight from r+c−1.
	Manhattan
)

// String implements fmt.Stringer.
func (m Distance) String() string {
	if m == Manhattan {
		return "manhattan"
	}
	return "euclidean"
}

// Kernel selects the high- or low-probability coefficient set.
type Kernel int

const (
	// KernelHigh is the high-probability coefficient set, groups 0–5.
	KernelHigh Kernel = iota
	// KernelLow is the low-probability coefficient set, groups 6–11.
	KernelLow
)

// String implements fmt.Stringer.
func (k Kernel) String() string {
	if k == KernelLow {
		return "low"
	}
	return "high"
}

// kernelFields is one kernel's 24 non-center quadrant cells as packed
// fixed-point bytes (value/255 ∈ [0,1]).
type kernelFields [groupsPerKernel * 4]uint8

// GenerateKernel rebuilds the selected kernel from a distance metric,
// decay factor and reach.
//
// The kernel is a symmetric 5×5 weight matrix over relative offsets;
// only the bottom-right quadrant is stored, and only its 24 non-center
// cells — the center is part of the flip cross, fixed at 1.0 by the
// consumer and never computed here. Each cell at quadrant offset (r,c)
// gets weight factor^distance when 0 < distance ≤ reach and 0
// otherwise, with the distance shifted down by one so the orthogonal
// cross sits at distance zero. Weights quantize to round(f·256) clamped
// to 255.
//
// The transformation is pure and idempotent: identical arguments yield
// identical register contents. Factor outside (0,1] returns
// ErrOutOfRange without touching the registers.
func (d *Device) GenerateKernel(metric Distance, factor float64, reach uint32, which Kernel) error {
	if factor <= 0 || factor > 1 || math.IsNaN(factor) {
		return fmt.Errorf("%w: kernel factor %v not in (0,1]", ErrOutOfRange, factor)
	}

	var fields kernelFields
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			var dist float64
			switch metric {
			case Manhattan:
				dist = math.Max(0, float64(r+c)-1)
			default:
				dist = math.Max(0, math.Sqrt(float64(r*r+c*c))-1)
			}
			ind := r*5 + c - 1
			if ind < 0 {
				continue // center cell, owned by the consumer
			}
			f := 0.0
			if dist > 0 && dist <= float64(reach) {
				f = math.Pow(factor, dist)
			}
			fields[ind] = uint8(math.Min(math.Round(f*256), 255))
		}
	}
	d.storeKernel(which, fields)
	return nil
}

// storeKernel packs 24 quadrant bytes into the kernel's six groups.
func (d *Device) storeKernel(which Kernel, fields kernelFields) {
	base := kernelBase(which)
	for g := 0; g < groupsPerKernel; g++ {
		v := uint32(fields[g*4]) |
			uint32(fields[g*4+1])<<8 |
			uint32(fields[g*4+2])<<16 |
			uint32(fields[g*4+3])<<24
		d.regs.SetUint32(base+g, v)
	}
}

// loadKernel unpacks the kernel's six groups back into quadrant bytes.
func (d *Device) loadKernel(which Kernel) kernelFields {
	var fields kernelFields
	base := kernelBase(which)
	for g := 0; g < groupsPerKernel; g++ {
		v := d.regs.Uint32(base + g)
		fields[g*4] = uint8(v)
		fields[g*4+1] = uint8(v >> 8)
		fields[g*4+2] = uint8(v >> 16)
		fields[g*4+3] = uint8(v >> 24)
	}
	return fields
}

// kernelBase returns the first register group of a kernel.
func kernelBase(which Kernel) int {
	if which == KernelLow {
		return regCoeffBase + groupsPerKernel
	}
	return regCoeffBase
}

// KernelWeights unpacks the selected kernel's bottom-right quadrant as
// 25 row-major weights in [0,1], center first and fixed at 1.0.
func (d *Device) KernelWeights(which Kernel) [25]float64 {
	fields := d.loadKernel(which)
	var w [25]float64
	w[0] = 1.0
	for i, f := range fields {
		w[i+1] = float64(f) / 255.0
	}
	return w
}

// Coefficient reads one packed 32-bit coefficient group (low-level
// register access). Group indices run 0..NumCoefficientGroups-1.
func (d *Device) Coefficient(group int) (uint32, error) {
	if group < 0 || group >= NumCoefficientGroups {
		return 0, fmt.Errorf("%w: coefficient group %d", ErrOutOfRange, group)
	}
	return d.regs.Uint32(regCoeffBase + group), nil
}

// SetCoefficient writes one packed 32-bit coefficient group (low-level
// register access).
func (d *Device) SetCoefficient(group int, value uint32) error {
	if group < 0 || group >= NumCoefficientGroups {
		return fmt.Errorf("%w: coefficient group %d", ErrOutOfRange, group)
	}
	d.regs.SetUint32(regCoeffBase+group, value)
	return nil
}
