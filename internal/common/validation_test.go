package common

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

func TestRequireNonEmpty(t *testing.T) {
	if err := RequireNonEmpty("campo", "valor"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := RequireNonEmpty("campo", "   "); err == nil {
		t.Error("whitespace-only value should fail")
	} else if err.Field != "campo" {
		t.Errorf("Field = %q", err.Field)
	}
}

func TestRequireUUID(t *testing.T) {
	want := uuid.New()
	got, err := RequireUUID("id", " "+want.String()+" ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	if _, err := RequireUUID("id", "no-es-uuid"); err == nil {
		t.Error("invalid uuid should fail")
	}
}

func TestRequireCompany(t *testing.T) {
	c, err := RequireCompany("company", "Afinia")
	if err != nil || c != constants.CompanyAfinia {
		t.Errorf("got (%v, %v)", c, err)
	}
	if _, err := RequireCompany("company", "enel"); err == nil {
		t.Error("unknown company should fail")
	}
}
