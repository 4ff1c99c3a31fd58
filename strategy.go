package listbench

import (
	"fmt"
	"strings"
	"sync"
)

// StrategyKind names a synchronization discipline.
type StrategyKind int

const (
	Serial          StrategyKind = iota // No locking, one worker
	GlobalExclusive                     // One mutex for the list and the quota ledger
	ReaderWriter                        // RWMutex for the list, per-worker ledgers
)

// Strategies returns every kind, baseline first. The slice is new on each
// call.
func Strategies() []StrategyKind {
	return []StrategyKind{Serial, GlobalExclusive, ReaderWriter}
}

func (k StrategyKind) valid() bool { return k >= Serial && k <= ReaderWriter }

// String returns the short name accepted by ParseStrategy.
func (k StrategyKind) String() string {
	switch k {
	case Serial:
		return "serial"
	case GlobalExclusive:
		return "mutex"
	case ReaderWriter:
		return "rwlock"
	}
	return fmt.Sprintf("StrategyKind(%d)", int(k))
}

// Label is the human readable title used in result records.
func (k StrategyKind) Label() string {
	switch k {
	case Serial:
		return "Serial"
	case GlobalExclusive:
		return "Mutex for entire list"
	case ReaderWriter:
		return "Read Write Lock"
	}
	return k.String()
}

// Policy returns the quota policy the strategy runs under.
func (k StrategyKind) Policy() QuotaPolicy {
	if k == ReaderWriter {
		return StaticQuota
	}
	return GlobalQuota
}

// ParseStrategy accepts the names produced by StrategyKind.String, plus a
// few aliases.
func ParseStrategy(s string) (StrategyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "serial", "none":
		return Serial, nil
	case "mutex", "exclusive", "global":
		return GlobalExclusive, nil
	case "rwlock", "rw", "readwrite":
		return ReaderWriter, nil
	}
	return 0, configErrorf("strategy", "unknown strategy %q (want serial, mutex or rwlock)", s)
}

// A Strategy guards access to one OrderedSet.
type Strategy interface {
	Kind() StrategyKind

	// Apply runs op on the set under the strategy's data lock, without any
	// quota accounting.
	Apply(op Op, v int) bool

	// Gates returns one quota gate per worker of plan. Gates share state
	// exactly as the strategy's quota policy prescribes.
	Gates(plan Plan) []Gate
}

// A Gate is the entry point a worker executes operations through.
type Gate interface {
	// Execute runs op with value v and counts it, unless the quota for op is
	// already met. It reports whether op ran. The result of the set
	// operation itself is deliberately discarded: a duplicate insert still
	// uses up one insert.
	Execute(op Op, v int) bool
}

// NewStrategy wraps set in the discipline named by kind.
func NewStrategy(kind StrategyKind, set *OrderedSet) (Strategy, error) {
	newStrategy, err := strategyFor(kind)
	if err != nil {
		return nil, err
	}
	return newStrategy(set), nil
}

// strategyFor resolves kind to a constructor.
func strategyFor(kind StrategyKind) (func(*OrderedSet) Strategy, error) {
	switch kind {
	case Serial:
		return func(set *OrderedSet) Strategy { return &serialStrategy{set: set} }, nil
	case GlobalExclusive:
		return func(set *OrderedSet) Strategy { return &exclusiveStrategy{set: set} }, nil
	case ReaderWriter:
		return func(set *OrderedSet) Strategy { return &rwStrategy{set: set} }, nil
	}
	return nil, configErrorf("strategy", "unknown strategy %v", kind)
}

// ledger counts executed operations against their targets.
type ledger struct {
	targets Targets
	counts  Targets
	total   int
}

func (l *ledger) exhausted(op Op) bool { return l.counts[op] >= l.targets[op] }

func (l *ledger) record(op Op) {
	l.counts[op]++
	l.total = l.counts.Total()
}

// ledgerGate executes through apply and keeps its ledger outside any lock.
type ledgerGate struct {
	ledger
	apply func(Op, int) bool
}

func (g *ledgerGate) Execute(op Op, v int) bool {
	if g.exhausted(op) {
		return false
	}
	g.apply(op, v)
	g.record(op)
	return true
}

type serialStrategy struct {
	set *OrderedSet
}

func (s *serialStrategy) Kind() StrategyKind { return Serial }

func (s *serialStrategy) Apply(op Op, v int) bool { return s.set.Apply(op, v) }

// Gates returns a single unguarded gate; serial runs never have more than
// one worker.
func (s *serialStrategy) Gates(plan Plan) []Gate {
	return []Gate{&ledgerGate{ledger: ledger{targets: plan.Targets}, apply: s.Apply}}
}

// exclusiveStrategy holds mu across the quota check, the set operation and
// the ledger update.
type exclusiveStrategy struct {
	mu    sync.Mutex
	set   *OrderedSet
	quota ledger
}

func (s *exclusiveStrategy) Kind() StrategyKind { return GlobalExclusive }

func (s *exclusiveStrategy) Apply(op Op, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Apply(op, v)
}

func (s *exclusiveStrategy) Execute(op Op, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota.exhausted(op) {
		return false
	}
	s.set.Apply(op, v)
	s.quota.record(op)
	return true
}

// Executed returns the number of operations run through the shared ledger.
func (s *exclusiveStrategy) Executed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quota.total
}

// Gates resets the shared ledger to plan's targets. Every worker gets the
// strategy itself.
func (s *exclusiveStrategy) Gates(plan Plan) []Gate {
	s.mu.Lock()
	s.quota = ledger{targets: plan.Targets}
	s.mu.Unlock()

	gates := make([]Gate, plan.Threads)
	for i := range gates {
		gates[i] = s
	}
	return gates
}

// rwStrategy locks the set only; quota ledgers are private to each worker.
// Reader/writer fairness is whatever sync.RWMutex provides: a pending Lock
// keeps new readers out.
type rwStrategy struct {
	mu  sync.RWMutex
	set *OrderedSet
}

func (s *rwStrategy) Kind() StrategyKind { return ReaderWriter }

func (s *rwStrategy) Apply(op Op, v int) bool {
	if op == OpMember {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.set.Member(v)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Apply(op, v)
}

func (s *rwStrategy) Gates(plan Plan) []Gate {
	gates := make([]Gate, plan.Threads)
	for i := range gates {
		gates[i] = &ledgerGate{ledger: ledger{targets: plan.Share(i)}, apply: s.Apply}
	}
	return gates
}
