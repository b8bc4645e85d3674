package input

// MouseMotion is a single mouse movement delta in screen pixels.
type MouseMotion struct {
	DX float32
	DY float32
}

// MouseQueue buffers mouse motion between ticks. Producers push deltas as
// they arrive; the look system drains the queue once per tick, so motion is
// never applied twice and never lost between ticks.
type MouseQueue struct {
	items []MouseMotion
}

// Push appends a motion delta.
func (q *MouseQueue) Push(m MouseMotion) {
	q.items = append(q.items, m)
}

// Drain empties the queue and returns the summed delta.
func (q *MouseQueue) Drain() (dx, dy float32) {
	for _, m := range q.items {
		dx += m.DX
		dy += m.DY
	}
	q.items = q.items[:0]
	return dx, dy
}

// Len reports the number of buffered deltas.
func (q *MouseQueue) Len() int {
	return len(q.items)
}
