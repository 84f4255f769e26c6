// Package refdata provides reference-genome constants: per-chromosome
// maximum coordinates and the set of recognized assembly names.
package refdata

import "strings"

// DefaultMaxPosition is the coordinate bound applied to chromosome names
// that are not in the catalog. Intentionally permissive so non-canonical
// contigs are not rejected on length alone.
const DefaultMaxPosition = 300_000_000

// Catalog maps canonical chromosome names to their maximum valid 1-based
// coordinate. It is built once at startup and never mutated.
type Catalog struct {
	maxPos map[string]int64
}

// chromosomeLengths holds GRCh37 chromosome lengths.
var chromosomeLengths = map[string]int64{
	"1":  249250621,
	"2":  243199373,
	"3":  198022430,
	"4":  191154276,
	"5":  180915260,
	"6":  171115067,
	"7":  159138663,
	"8":  146364022,
	"9":  141213431,
	"10": 135534747,
	"11": 135006516,
	"12": 133851895,
	"13": 115169878,
	"14": 107349540,
	"15": 102531392,
	"16": 90354753,
	"17": 81195210,
	"18": 78077248,
	"19": 59128983,
	"20": 63025520,
	"21": 48129895,
	"22": 51304566,
	"X":  155270560,
	"Y":  59373566,
	"MT": 16569,
}

var defaultCatalog = &Catalog{maxPos: chromosomeLengths}

// Default returns the process-wide catalog. The returned value is shared
// and read-only; it is safe for concurrent use.
func Default() *Catalog {
	return defaultCatalog
}

// MaxPosition returns the maximum valid coordinate for the given chromosome
// key. Unknown keys fall back to DefaultMaxPosition.
func (c *Catalog) MaxPosition(chrom string) int64 {
	if max, ok := c.maxPos[chrom]; ok {
		return max
	}
	return DefaultMaxPosition
}

// Contains reports whether chrom is one of the 25 canonical chromosome keys.
func (c *Catalog) Contains(chrom string) bool {
	_, ok := c.maxPos[chrom]
	return ok
}

// Chromosomes returns the canonical chromosome keys. The slice is a copy.
func (c *Catalog) Chromosomes() []string {
	keys := make([]string, 0, len(c.maxPos))
	for k := range c.maxPos {
		keys = append(keys, k)
	}
	return keys
}

// assemblies holds the recognized reference assembly names.
// Membership checks are case-insensitive.
var assemblies = map[string]struct{}{
	"GRCH37":        {},
	"GRCH38":        {},
	"GRCH39":        {},
	"HG18":          {},
	"HG19":          {},
	"HG38":          {},
	"T2T-CHM13V2.0": {},
}

// KnownAssembly reports whether name matches a recognized assembly
// identifier, ignoring case. The empty string is not an assembly.
func KnownAssembly(name string) bool {
	if name == "" {
		return false
	}
	_, ok := assemblies[strings.ToUpper(name)]
	return ok
}

// Assemblies returns the recognized assembly names in canonical (uppercase)
// form. The slice is a copy.
func Assemblies() []string {
	names := make([]string, 0, len(assemblies))
	for name := range assemblies {
		names = append(names, name)
	}
	return names
}
