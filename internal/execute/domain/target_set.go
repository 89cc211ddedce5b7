package domain

// HardCap is the absolute upper bound on messages one execution may touch.
// DefaultCap applies when a plan requests no limit of its own.
const (
	HardCap    = 50
	DefaultCap = 50
)

// TargetSet is the exact, capped, ordered list of message identifiers an
// execution will affect. It is built once per execution and threaded
// through counting, mutation and audit logging; nothing downstream
// re-derives the list.
type TargetSet struct {
	ids []string
}

// NewTargetSet copies ids and truncates them to limit, preserving order.
func NewTargetSet(ids []string, limit int) TargetSet {
	if limit < 0 {
		limit = 0
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return TargetSet{ids: out}
}

// IDs returns the identifiers in provider order.
func (t TargetSet) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

func (t TargetSet) Len() int { return len(t.ids) }

func (t TargetSet) IsEmpty() bool { return len(t.ids) == 0 }

// Head returns up to n leading identifiers, in order.
func (t TargetSet) Head(n int) []string {
	if n > len(t.ids) {
		n = len(t.ids)
	}
	out := make([]string, n)
	copy(out, t.ids[:n])
	return out
}
