package world

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/teranos/parkour/errors"
)

// MemWorld is a sparse in-memory BlockReader. Unset cells are Air.
type MemWorld struct {
	mu     sync.RWMutex
	worlds map[string]map[Cell]Material
}

// NewMemWorld creates an empty MemWorld.
func NewMemWorld() *MemWorld {
	return &MemWorld{worlds: make(map[string]map[Cell]Material)}
}

// Set places m at c. Setting Air clears the cell.
func (w *MemWorld) Set(world string, c Cell, m Material) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setLocked(world, c, m)
}

// Fill sets every cell of r to m.
func (w *MemWorld) Fill(r Region, m Material) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for c := range r.Cells() {
		w.setLocked(r.World(), c, m)
	}
}

func (w *MemWorld) setLocked(world string, c Cell, m Material) {
	cells, ok := w.worlds[world]
	if !ok {
		cells = make(map[Cell]Material)
		w.worlds[world] = cells
	}
	if m == Air || m == "" {
		delete(cells, c)
		return
	}
	cells[c] = m
}

// MaterialAt implements BlockReader.
func (w *MemWorld) MaterialAt(world string, c Cell) Material {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if m, ok := w.worlds[world][c]; ok {
		return m
	}
	return Air
}

// Count returns the number of non-air cells in world.
func (w *MemWorld) Count(world string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.worlds[world])
}

// blockFile is the YAML layout read by LoadMemWorld:
//
//	world: lobby
//	blocks:
//	  - at: [1, 64, 1]
//	    material: stone
//	  - from: [0, 63, 0]
//	    to: [4, 63, 4]
//	    material: glass
type blockFile struct {
	World  string      `yaml:"world"`
	Blocks []blockSpec `yaml:"blocks"`
}

type blockSpec struct {
	At       []int    `yaml:"at"`
	From     []int    `yaml:"from"`
	To       []int    `yaml:"to"`
	Material Material `yaml:"material"`
}

// LoadMemWorld reads a YAML block file.
func LoadMemWorld(path string) (*MemWorld, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read block file %s", path)
	}
	return ParseMemWorld(data)
}

// ParseMemWorld decodes YAML block data and returns the world it describes.
func ParseMemWorld(data []byte) (*MemWorld, string, error) {
	var file blockFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, "", errors.Wrap(err, "parse block file")
	}

	w := NewMemWorld()
	for i, spec := range file.Blocks {
		if spec.Material == "" {
			return nil, "", errors.Newf("block %d: material is required", i)
		}
		switch {
		case len(spec.At) > 0:
			c, err := cellFromInts(spec.At)
			if err != nil {
				return nil, "", errors.Wrapf(err, "block %d", i)
			}
			w.Set(file.World, c, spec.Material)
		case len(spec.From) > 0 || len(spec.To) > 0:
			from, err := cellFromInts(spec.From)
			if err != nil {
				return nil, "", errors.Wrapf(err, "block %d from", i)
			}
			to, err := cellFromInts(spec.To)
			if err != nil {
				return nil, "", errors.Wrapf(err, "block %d to", i)
			}
			r, err := Normalize(from.Position(file.World), to.Position(file.World))
			if err != nil {
				return nil, "", errors.Wrapf(err, "block %d", i)
			}
			w.Fill(r, spec.Material)
		default:
			return nil, "", errors.Newf("block %d: needs either at or from/to", i)
		}
	}
	return w, file.World, nil
}

func cellFromInts(v []int) (Cell, error) {
	if len(v) != 3 {
		return Cell{}, errors.Newf("expected 3 coordinates, got %d", len(v))
	}
	return Cell{X: v[0], Y: v[1], Z: v[2]}, nil
}
