package listbench

import "fmt"

// ValueRange bounds the random values drawn by workers and Populate: every
// value is in [0, ValueRange).
const ValueRange = 65535

// MaxThreads is the largest supported worker count.
const MaxThreads = 1024

// Op is an operation class.
type Op int

const (
	OpMember Op = iota
	OpInsert
	OpDelete

	numOps
)

// Ops lists every operation class in draw order.
var Ops = [numOps]Op{OpMember, OpInsert, OpDelete}

func (o Op) String() string {
	switch o {
	case OpMember:
		return "member"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Targets holds one count per operation class, indexed by Op.
type Targets [numOps]int

// Total returns the sum over all classes.
func (t Targets) Total() int {
	var n int
	for _, c := range t {
		n += c
	}
	return n
}

func (t Targets) String() string {
	return fmt.Sprintf("member=%d insert=%d delete=%d", t[OpMember], t[OpInsert], t[OpDelete])
}
