package device

// Lattice geometry. Each 64-bit word holds an 8×8 tile of bits; the
// full lattice is 16 tiles high by 8 tiles wide.
const (
	// Rows is the number of bit rows in the lattice.
	Rows = 128
	// Cols is the number of bit columns in the lattice.
	Cols = 64
	// Words is the number of addressable 64-bit lattice words.
	Words = 128

	// tile is the bit edge length of one word's tile.
	tile = 8
)

// Register map, 32-bit indices into the register region.
const (
	// regMask0/regMask1 are the two halves of the 64-bit write mask.
	regMask0 = 0
	regMask1 = 1
	// regCoeffBase is the first of 12 coefficient groups: 2..7 hold the
	// high kernel, 8..13 the low kernel, 4 packed bytes per group.
	regCoeffBase = 2
	// regBypass enables raw-memory interpretation of lattice writes.
	regBypass = 14
	// numRegs is the size of the fixed register block.
	numRegs = 15

	// groupsPerKernel is the number of 32-bit groups backing one kernel.
	groupsPerKernel = 6
	// NumCoefficientGroups is the total number of coefficient groups.
	NumCoefficientGroups = 2 * groupsPerKernel
)

// regMask64 is the write mask as a single word in the 64-bit register view.
const regMask64 = 0

// Dipole register block, 32-bit indices. Each dipole occupies four
// registers: current output followed by the three Tausworthe seeds.
const (
	dipoleBase   = 0x400
	dipoleStride = 4
)

// Default physical memory map of the fabric.
const (
	// DefaultRegisterAddr is the physical base of the register region.
	DefaultRegisterAddr uint64 = 0x43C00000
	// DefaultRegisterLen is the register region size in bytes.
	DefaultRegisterLen = 1 << 13
	// DefaultMemoryAddr is the physical base of the lattice memory.
	DefaultMemoryAddr uint64 = 0x43C10000
	// DefaultMemoryLen is the lattice memory size in bytes.
	DefaultMemoryLen = 1 << 12
)
