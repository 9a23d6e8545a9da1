package record

import (
	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// Deduper tracks the two within-run duplicate indexes: exact content hashes
// and business keys (numero_radicado). One Deduper belongs to exactly one
// company's consolidation run; this is a same-run optimization only. The
// cross-run guarantee is the relational unique constraint on the business key.
type Deduper struct {
	seenHashes    map[string]struct{}
	seenRadicados map[string]struct{}
}

func NewDeduper() *Deduper {
	d := &Deduper{}
	d.Reset()
	return d
}

// Check reports whether the record duplicates an earlier one in this run.
// On a non-duplicate both indexes are updated, so the first writer wins.
func (d *Deduper) Check(r entity.Record, hash string) (bool, constants.DupKind) {
	if _, ok := d.seenHashes[hash]; ok {
		return true, constants.DupHash
	}
	if _, ok := d.seenRadicados[r.NumeroRadicado]; ok {
		return true, constants.DupRadicado
	}
	d.seenHashes[hash] = struct{}{}
	d.seenRadicados[r.NumeroRadicado] = struct{}{}
	return false, constants.DupNone
}

// Reset clears both indexes. Called at the start of each company's run.
func (d *Deduper) Reset() {
	d.seenHashes = make(map[string]struct{})
	d.seenRadicados = make(map[string]struct{})
}

// Len returns how many unique records have been admitted.
func (d *Deduper) Len() int { return len(d.seenRadicados) }
