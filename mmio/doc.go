// Package mmio provides word-granular access to memory-mapped device
// regions.
//
// What:
//
//   - Region wraps a mapped byte range and exposes only aligned 32- and
//     64-bit word reads/writes at validated indices — never raw
//     byte-level aliasing.
//   - Mapper turns a physical address window into a Region. DevMem maps
//     through /dev/mem on Linux hardware; Sim backs regions with plain
//     memory for tests and hardware-free operation.
//
// Why:
//
//   - The AiNed fabric tolerates only full-word, aligned accesses;
//     partial writes can lock up the system. Funnelling every access
//     through Region keeps that contract in one place.
//   - Device memory may change asynchronously from the fabric side, so
//     Region never caches: every read decodes from the mapping.
//
// Errors:
//
//   - ErrBadLength: requested window is empty or not 64-bit aligned.
//   - ErrMap: the mapping could not be established.
//
// Word indices passed to Region accessors must be in range; violating
// that is a programmer error and panics. Callers validate user input
// before forming offsets.
package mmio
