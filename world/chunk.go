package world

import (
	"fmt"
	"iter"
)

// maxChunkPrealloc bounds the capacity ChunksCovering reserves up front.
const maxChunkPrealloc = 1 << 16

// ChunkCoord identifies a 16x16 column of a world.
type ChunkCoord struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Origin returns the lowest block of the chunk at y=0.
func (c ChunkCoord) Origin() Cell {
	return Cell{X: c.X * ChunkSize, Z: c.Z * ChunkSize}
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Z)
}

// ChunksCovering returns every chunk whose span intersects r, x outermost.
// Check ChunkCount first for regions that may be very large, or range over
// Chunks instead.
func ChunksCovering(r Region) []ChunkCoord {
	n, _ := ChunkCount(r)
	chunks := make([]ChunkCoord, 0, min(n, maxChunkPrealloc))
	for c := range Chunks(r) {
		chunks = append(chunks, c)
	}
	return chunks
}

// Chunks yields the chunks of ChunksCovering lazily, in the same order.
func Chunks(r Region) iter.Seq[ChunkCoord] {
	lo, hi := r.MinCell().Chunk(), r.MaxCell().Chunk()
	return func(yield func(ChunkCoord) bool) {
		for x := lo.X; x <= hi.X; x++ {
			for z := lo.Z; z <= hi.Z; z++ {
				if !yield(ChunkCoord{X: x, Z: z}) {
					return
				}
			}
		}
	}
}

// ChunkCount returns how many chunks cover r. ok is false when the count
// does not fit in an int; the count is then math.MaxInt.
func ChunkCount(r Region) (count int, ok bool) {
	lo, hi := r.MinCell().Chunk(), r.MaxCell().Chunk()
	return mulCounts(span(lo.X, hi.X), span(lo.Z, hi.Z))
}

// floorDiv divides rounding toward negative infinity, so block -1 lands in
// chunk -1 rather than chunk 0.
func floorDiv(value, size int) int {
	q := value / size
	if value%size != 0 && (value < 0) != (size < 0) {
		q--
	}
	return q
}
