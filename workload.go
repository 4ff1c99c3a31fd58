package listbench

// QuotaPolicy selects how operation targets are shared between workers.
type QuotaPolicy int

const (
	// GlobalQuota keeps one set of targets that any worker may draw from.
	GlobalQuota QuotaPolicy = iota

	// StaticQuota splits every target across workers before the run starts.
	StaticQuota
)

func (p QuotaPolicy) String() string {
	if p == StaticQuota {
		return "static"
	}
	return "global"
}

// Plan is the workload of one sample.
type Plan struct {
	Targets Targets
	Threads int
	Policy  QuotaPolicy
}

// ComputeTargets truncates fraction × m for each class. The targets sum to m
// only when every product is integral.
func ComputeTargets(m int, f Fractions) Targets {
	var t Targets
	for _, op := range Ops {
		t[op] = int(float32(f.Of(op)) * float32(m))
	}
	return t
}

// NewPlan builds the plan for m operations split across threads workers.
func NewPlan(m int, f Fractions, threads int, policy QuotaPolicy) Plan {
	if threads < 1 {
		threads = 1
	}
	return Plan{
		Targets: ComputeTargets(m, f),
		Threads: threads,
		Policy:  policy,
	}
}

// Share returns the targets owned by worker i. Under GlobalQuota every
// worker sees the full (shared) targets.
func (p Plan) Share(i int) Targets {
	if p.Policy == GlobalQuota {
		return p.Targets
	}
	var t Targets
	for _, op := range Ops {
		t[op] = SplitQuota(p.Targets[op], p.Threads, i)
	}
	return t
}

// SplitQuota returns worker i's part of target when it is divided across
// threads workers: target/threads, plus one for the first target%threads
// workers.
func SplitQuota(target, threads, i int) int {
	share := target / threads
	if target%threads > i {
		share++
	}
	return share
}
