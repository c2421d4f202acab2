package world

// Material names a block type.
type Material string

// Air is the empty block.
const Air Material = "air"

// Block is a material at a cell.
type Block struct {
	Cell     Cell     `json:"cell"`
	Material Material `json:"material"`
}

// BlockReader looks up block types. Implementations must be safe for
// concurrent reads; callers keep writers away from a region while it is
// being scanned.
type BlockReader interface {
	MaterialAt(world string, c Cell) Material
}

// Predicate selects blocks during a scan.
type Predicate func(Block) bool

// NotAir keeps every non-empty block. It is the default predicate.
func NotAir(b Block) bool {
	return b.Material != Air
}

// ContainsNonMatching reports whether any block of r differs from expected.
// It stops at the first mismatch.
func ContainsNonMatching(r Region, blocks BlockReader, expected Material) bool {
	world := r.World()
	for c := range r.Cells() {
		if blocks.MaterialAt(world, c) != expected {
			return true
		}
	}
	return false
}

// CollectBlocks returns the blocks of r accepted by keep, in Cells order.
// A nil keep selects NotAir. Large regions belong on a Scanner.
func CollectBlocks(r Region, blocks BlockReader, keep Predicate) []Block {
	if keep == nil {
		keep = NotAir
	}
	world := r.World()
	var out []Block
	for c := range r.Cells() {
		b := Block{Cell: c, Material: blocks.MaterialAt(world, c)}
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
