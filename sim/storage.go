package sim

import "iter"

const (
	blockSize = 64
)

// entityStorage stores entities in fixed-size blocks.
// Slots are handed out in increasing order and never reused, so slot order
// is insertion order. Deleted slots stay empty until Compact.
type entityStorage struct {
	blocks    [][blockSize]Entity
	filled    [][blockSize]bool
	nextIndex int
	count     int
}

// Append stores an entity and returns its slot.
func (es *entityStorage) Append(e Entity) int {
	index := es.nextIndex
	es.nextIndex++

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	if blockIdx >= len(es.blocks) {
		es.blocks = append(es.blocks, [blockSize]Entity{})
		es.filled = append(es.filled, [blockSize]bool{})
	}

	es.blocks[blockIdx][slotIdx] = e
	es.filled[blockIdx][slotIdx] = true
	es.count++
	return index
}

// Get returns the entity at the given slot, or nil if the slot is empty.
func (es *entityStorage) Get(index int) *Entity {
	if !es.Has(index) {
		return nil
	}
	return &es.blocks[index/blockSize][index%blockSize]
}

// Has checks if an entity occupies the given slot.
func (es *entityStorage) Has(index int) bool {
	if index < 0 || index >= es.nextIndex {
		return false
	}
	return es.filled[index/blockSize][index%blockSize]
}

// Delete empties a slot and zeroes the entity it held.
func (es *entityStorage) Delete(index int) {
	if !es.Has(index) {
		return
	}

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	es.filled[blockIdx][slotIdx] = false
	es.blocks[blockIdx][slotIdx] = Entity{}
	es.count--
}

// Len returns the number of live entities.
func (es *entityStorage) Len() int {
	return es.count
}

// Holes returns the number of empty slots below the high-water mark.
func (es *entityStorage) Holes() int {
	return es.nextIndex - es.count
}

// Slots returns the number of slots handed out so far.
func (es *entityStorage) Slots() int {
	return es.nextIndex
}

// Compact squeezes out empty slots, keeping relative order, and returns the
// old->new slot mapping for every live entity.
func (es *entityStorage) Compact() map[int]int {
	indexMap := make(map[int]int, es.count)

	if es.count == 0 {
		es.blocks = nil
		es.filled = nil
		es.nextIndex = 0
		return indexMap
	}

	numBlocks := (es.count + blockSize - 1) / blockSize
	newBlocks := make([][blockSize]Entity, numBlocks)
	newFilled := make([][blockSize]bool, numBlocks)

	writePos := 0
	for readIdx := range es.Iter() {
		indexMap[readIdx] = writePos
		newBlocks[writePos/blockSize][writePos%blockSize] = es.blocks[readIdx/blockSize][readIdx%blockSize]
		newFilled[writePos/blockSize][writePos%blockSize] = true
		writePos++
	}

	es.blocks = newBlocks
	es.filled = newFilled
	es.nextIndex = writePos

	return indexMap
}

// Iter yields occupied slots in ascending order.
func (es *entityStorage) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < es.nextIndex; i++ {
			if es.filled[i/blockSize][i%blockSize] {
				if !yield(i) {
					return
				}
			}
		}
	}
}
