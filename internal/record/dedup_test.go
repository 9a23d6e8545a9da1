package record

import (
	"testing"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

func TestDeduperFirstWriterWins(t *testing.T) {
	d := NewDeduper()
	r := entity.Record{NumeroRadicado: "RAD-001"}

	dup, kind := d.Check(r, "hash-a")
	if dup || kind != constants.DupNone {
		t.Fatalf("first sighting flagged as duplicate (%v, %v)", dup, kind)
	}

	dup, kind = d.Check(r, "hash-a")
	if !dup || kind != constants.DupHash {
		t.Errorf("exact repeat = (%v, %v), want (true, %v)", dup, kind, constants.DupHash)
	}

	// Same radicado with different content hashes: business-key duplicate.
	dup, kind = d.Check(r, "hash-b")
	if !dup || kind != constants.DupRadicado {
		t.Errorf("same radicado new hash = (%v, %v), want (true, %v)", dup, kind, constants.DupRadicado)
	}

	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestDeduperHashCheckedBeforeRadicado(t *testing.T) {
	d := NewDeduper()
	d.Check(entity.Record{NumeroRadicado: "RAD-001"}, "hash-a")

	// Both indexes would match; hash takes precedence.
	dup, kind := d.Check(entity.Record{NumeroRadicado: "RAD-001"}, "hash-a")
	if !dup || kind != constants.DupHash {
		t.Errorf("got (%v, %v), want (true, %v)", dup, kind, constants.DupHash)
	}
}

func TestDeduperReset(t *testing.T) {
	d := NewDeduper()
	d.Check(entity.Record{NumeroRadicado: "RAD-001"}, "hash-a")
	d.Reset()

	if d.Len() != 0 {
		t.Fatalf("Len() after Reset = %d", d.Len())
	}
	dup, _ := d.Check(entity.Record{NumeroRadicado: "RAD-001"}, "hash-a")
	if dup {
		t.Error("record seen before Reset should not be a duplicate after")
	}
}
