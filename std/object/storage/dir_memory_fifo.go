package storage

import (
	"sync"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/ndn"
)

// MemoryFifoDir remembers the order in which names were stored so that the
// oldest objects can be evicted once a capacity is exceeded.
type MemoryFifoDir struct {
	mutex sync.Mutex
	list  []enc.Name
	size  int
}

// NewMemoryFifoDir creates a directory that keeps at most size names.
func NewMemoryFifoDir(size int) *MemoryFifoDir {
	return &MemoryFifoDir{
		list: make([]enc.Name, 0),
		size: size,
	}
}

// Push adds a name to the directory.
func (d *MemoryFifoDir) Push(name enc.Name) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.list = append(d.list, name.Clone())
}

// Pop removes the oldest name if the directory is over capacity.
// It returns nil otherwise.
func (d *MemoryFifoDir) Pop() enc.Name {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.list) <= d.size {
		return nil
	}

	name := d.list[0]
	d.list = d.list[1:]
	return name
}

// Evict removes the oldest objects from a store until the directory is
// back within capacity. It returns the number of removed objects.
func (d *MemoryFifoDir) Evict(store ndn.Store) (int, error) {
	count := 0
	for {
		name := d.Pop()
		if name == nil {
			return count, nil
		}

		if err := store.Remove(name); err != nil {
			return count, err
		}
		count++
	}
}

// Count returns the number of names in the directory.
func (d *MemoryFifoDir) Count() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return len(d.list)
}
