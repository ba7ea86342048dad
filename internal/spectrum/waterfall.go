package spectrum

// WaterfallRow is one rendered spectrum row: per-column magnitude, stored
// exactly as pushed (cmd/radiocore-bench pushes linear DFT magnitudes).
type WaterfallRow struct {
	Columns []float64
}

// WaterfallBuffer is a fixed-capacity ring of N rows, the newest
// overwriting the oldest once full — the bounded buffer, allocated once
// at construction as heap slices (not stack-resident), that a waterfall
// display reads from.
type WaterfallBuffer struct {
	rows     []WaterfallRow
	capacity int
	next     int
	count    int
}

// NewWaterfallBuffer returns a buffer holding up to capacity rows of
// the given column width.
func NewWaterfallBuffer(capacity, columns int) *WaterfallBuffer {
	rows := make([]WaterfallRow, capacity)
	for i := range rows {
		rows[i] = WaterfallRow{Columns: make([]float64, columns)}
	}
	return &WaterfallBuffer{rows: rows, capacity: capacity}
}

// PushRow copies columns into the next ring slot, overwriting the
// oldest row once the buffer is full.
func (w *WaterfallBuffer) PushRow(columns []float64) {
	copy(w.rows[w.next].Columns, columns)
	w.next = (w.next + 1) % w.capacity
	if w.count < w.capacity {
		w.count++
	}
}

// Len reports how many rows are currently populated (<= capacity).
func (w *WaterfallBuffer) Len() int { return w.count }

// Row returns the row that is age rows old (0 = most recently pushed).
func (w *WaterfallBuffer) Row(age int) WaterfallRow {
	idx := (w.next - 1 - age + w.capacity) % w.capacity
	return w.rows[idx]
}
