package record

import (
	"strings"
	"testing"

	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

func validRecord() entity.Record {
	return entity.Record{
		NumeroRadicado:     "RAD-001",
		Fecha:              "2024/03/15 10:30",
		NIC:                "1234567",
		DocumentoIdentidad: "9876543",
		NombresApellidos:   "Juan Perez",
		Telefono:           "6051234567",
		CorreoElectronico:  "juan@example.com",
		TipoPQR:            "reclamo",
		EstadoSolicitud:    "cerrado",
	}
}

func TestValidateAccepts(t *testing.T) {
	out := Validate(validRecord())
	if !out.Valid {
		t.Fatalf("expected valid, got errors %v", out.Errors)
	}
	if len(out.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", out.Warnings)
	}
	if out.ContentHash == "" || len(out.ContentHash) != 64 {
		t.Errorf("ContentHash = %q, want 64 hex chars", out.ContentHash)
	}
}

func TestValidateHardErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.Record)
		wantErr string
	}{
		{"missing radicado", func(r *entity.Record) { r.NumeroRadicado = "" }, "numero_radicado es obligatorio"},
		{"missing fecha", func(r *entity.Record) { r.Fecha = "" }, "fecha es obligatoria"},
		{"unparseable fecha", func(r *entity.Record) { r.Fecha = "ayer" }, "fecha con formato invalido"},
		{"missing estado", func(r *entity.Record) { r.EstadoSolicitud = "" }, "estado_solicitud es obligatorio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			out := Validate(r)
			if out.Valid {
				t.Fatal("expected invalid")
			}
			found := false
			for _, e := range out.Errors {
				if strings.Contains(e, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not contain %q", out.Errors, tt.wantErr)
			}
		})
	}
}

func TestValidateSoftWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*entity.Record)
		wantWarn string
	}{
		{"short nic", func(r *entity.Record) { r.NIC = "123" }, "nic sospechoso"},
		{"bad email", func(r *entity.Record) { r.CorreoElectronico = "no-es-correo" }, "correo sospechoso"},
		{"short phone", func(r *entity.Record) { r.Telefono = "123" }, "telefono sospechoso"},
		{"bad celular", func(r *entity.Record) { r.Celular = "abc1234" }, "celular sospechoso"},
		{"short document", func(r *entity.Record) { r.DocumentoIdentidad = "12" }, "documento sospechoso"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			out := Validate(r)
			if !out.Valid {
				t.Fatalf("soft finding must not invalidate, got errors %v", out.Errors)
			}
			found := false
			for _, w := range out.Warnings {
				if strings.Contains(w, tt.wantWarn) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings %v do not contain %q", out.Warnings, tt.wantWarn)
			}
		})
	}
}

func TestValidateEmptyOptionalFieldsSilent(t *testing.T) {
	r := validRecord()
	r.NIC = ""
	r.CorreoElectronico = ""
	r.Telefono = ""
	r.Celular = ""
	r.DocumentoIdentidad = ""
	out := Validate(r)
	if !out.Valid || len(out.Warnings) != 0 {
		t.Errorf("empty optional fields should pass silently, got valid=%v warnings=%v", out.Valid, out.Warnings)
	}
}

func TestContentHash(t *testing.T) {
	a := validRecord()
	b := validRecord()
	if ContentHash(a) != ContentHash(b) {
		t.Error("identical records must hash identically")
	}

	// Fields outside the fingerprint do not change the hash.
	b.Telefono = "3009999999"
	b.CorreoElectronico = "otro@example.com"
	b.NombresApellidos = "Otro Nombre"
	if ContentHash(a) != ContentHash(b) {
		t.Error("noisy fields must not affect the hash")
	}

	// Fields inside the fingerprint do.
	c := validRecord()
	c.NIC = "7654321"
	if ContentHash(a) == ContentHash(c) {
		t.Error("changing nic must change the hash")
	}
}
