package searcher

import (
	"hinger/game"
)

// entry is a frontier record. Improving a state's cost pushes a new entry;
// the outdated one stays in the heap and is skipped when popped.
type entry struct {
	state    *game.GridState
	key      game.StateKey
	g        int // cost from start
	priority int // g + heuristic
	seq      int // insertion order, breaks priority ties
}

// frontier is a min-heap of entries ordered by priority, then insertion order.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
