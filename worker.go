package listbench

import "math/rand/v2"

// worker draws random operations and executes them through its gate until
// every operation class is exhausted.
type worker struct {
	id        int
	gate      Gate
	rng       *rand.Rand
	exhausted [numOps]bool
	remaining int // classes not yet exhausted
	executed  int
}

func newWorker(id int, gate Gate, seed uint64) *worker {
	return &worker{
		id:        id,
		gate:      gate,
		rng:       rand.New(rand.NewPCG(seed, uint64(id))),
		remaining: int(numOps),
	}
}

// run loops until every class is exhausted and returns the number of operations it executed.
//
// Drawing an exhausted class just draws again. There is no yield in the loop:
// workers spin on the quota check for the whole sample.
func (w *worker) run() int {
	for w.remaining > 0 {
		v := w.rng.IntN(ValueRange)
		op := Op(w.rng.IntN(int(numOps)))
		if w.exhausted[op] {
			continue
		}
		if w.gate.Execute(op, v) {
			w.executed++
			continue
		}
		w.exhausted[op] = true
		w.remaining--
	}
	return w.executed
}
