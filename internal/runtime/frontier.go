package runtime

// frontier is the FIFO queue of discovered but not yet expanded states,
// held as record indices.
type frontier struct {
	items []int
	head  int
}

func (f *frontier) push(idx int) {
	f.items = append(f.items, idx)
}

func (f *frontier) pop() int {
	idx := f.items[f.head]
	f.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 64 && f.head*2 > len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}
	return idx
}

// drain removes and returns every queued index, in order.
func (f *frontier) drain() []int {
	layer := make([]int, len(f.items)-f.head)
	copy(layer, f.items[f.head:])
	f.items = f.items[:0]
	f.head = 0
	return layer
}

func (f *frontier) len() int {
	return len(f.items) - f.head
}

func (f *frontier) empty() bool {
	return f.len() == 0
}
