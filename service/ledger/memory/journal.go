package memory

// journal records undo entries, see go-ethereum core/state journal.
// Ledgers are driven by the serialized engine and are not safe for
// concurrent use.
type journal struct {
	entries []func()
}

func (j *journal) append(undo func()) {
	j.entries = append(j.entries, undo)
}

func (j *journal) Snapshot() int {
	return len(j.entries)
}

func (j *journal) RevertToSnapshot(id int) {
	if id < 0 || id > len(j.entries) {
		return
	}
	for i := len(j.entries) - 1; i >= id; i-- {
		j.entries[i]()
	}
	j.entries = j.entries[:id]
}

// Commit drops undo entries of finished calls.
func (j *journal) Commit() {
	j.entries = nil
}
