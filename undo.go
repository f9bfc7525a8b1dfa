package folio

// historyLimit bounds the undo history; the oldest snapshot is evicted
// when a new one would exceed it.
const historyLimit = 50

// history is a bounded stack of encoded ledger snapshots. It lives in
// memory only, scoped to the session; it is never persisted.
type history struct {
	snapshots []string
	limit     int
}

// push records a snapshot, evicting the oldest when the stack is full.
func (h *history) push(snapshot string) {
	h.snapshots = append(h.snapshots, snapshot)
	if h.limit > 0 && len(h.snapshots) > h.limit {
		n := copy(h.snapshots, h.snapshots[1:])
		h.snapshots = h.snapshots[:n]
	}
}

// pop removes and returns the most recent snapshot.
func (h *history) pop() (string, bool) {
	if len(h.snapshots) == 0 {
		return "", false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, true
}

// depth returns the number of recorded snapshots.
func (h *history) depth() int { return len(h.snapshots) }
