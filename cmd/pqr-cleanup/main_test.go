package main

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/gen/ent"
)

func row(hash, clave string, age time.Duration) *ent.UploadRegistry {
	return &ent.UploadRegistry{
		ID:          uuid.New(),
		HashArchivo: hash,
		ClaveS3:     clave,
		CreatedAt:   time.Now().Add(-age),
	}
}

func TestFindDuplicatesKeepsOldest(t *testing.T) {
	oldest := row("h1", "k1", 3*time.Hour)
	newer := row("h1", "k1-other", 2*time.Hour) // same hash
	newest := row("h2", "k1", time.Hour)        // same clave as oldest

	dupes := findDuplicates([]*ent.UploadRegistry{newest, oldest, newer})

	if len(dupes) != 2 {
		t.Fatalf("dupes = %d, want 2", len(dupes))
	}
	for _, d := range dupes {
		if d.ID == oldest.ID {
			t.Error("the oldest row must be the keeper")
		}
	}
}

func TestFindDuplicatesNone(t *testing.T) {
	rows := []*ent.UploadRegistry{
		row("h1", "k1", 2*time.Hour),
		row("h2", "k2", time.Hour),
	}
	if dupes := findDuplicates(rows); len(dupes) != 0 {
		t.Errorf("dupes = %v, want none", dupes)
	}
}
