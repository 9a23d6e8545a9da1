package record

import (
	"testing"

	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical already", "2024/03/15 10:30", "2024/03/15 10:30"},
		{"dashed", "2024-03-15 10:30", "2024/03/15 10:30"},
		{"with seconds", "2024/03/15 10:30:45", "2024/03/15 10:30"},
		{"dashed with seconds", "2024-03-15 10:30:45", "2024/03/15 10:30"},
		{"day first slashed", "15/03/2024 10:30", "2024/03/15 10:30"},
		{"day first dashed", "15-03-2024 10:30", "2024/03/15 10:30"},
		{"unpadded month and day", "2024/3/5 10:30", "2024/03/05 10:30"},
		{"unpadded everything", "2024-3-5 9:07", "2024/03/05 09:07"},
		{"unpadded day first", "5/3/2024 9:30", "2024/03/05 09:30"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"unparseable passes through", "hace 3 dias", "hace 3 dias"},
		{"date without time passes through", "2024/03/15", "2024/03/15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.input); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	inputs := []string{"15/03/2024 10:30", "2024-03-15 10:30:45", "no es fecha"}
	for _, in := range inputs {
		once := NormalizeDate(in)
		twice := NormalizeDate(once)
		if once != twice {
			t.Errorf("NormalizeDate not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(605) 123-4567", "6051234567"},
		{"+57 300 123 4567", "+573001234567"},
		{"300-123-4567", "3001234567"},
		{"", ""},
		{"sin telefono", ""},
		{"30+0123", "300123"},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.input); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"JUAN PEREZ", "Juan Perez"},
		{"  maria   del  carmen  ", "Maria Del Carmen"},
		{"álvaro pérez", "Álvaro Pérez"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"CC 1.234.567", "1234567"},
		{"1234567", "1234567"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeDigits(tt.input); got != tt.want {
			t.Errorf("NormalizeDigits(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	raw := entity.RawRecord{
		"numero_radicado":    "  RAD-001  ",
		"fecha":              "15/03/2024 10:30",
		"nic":                float64(1234567),
		"documento_identidad": "CC 9.876.543",
		"nombres_apellidos":  "JUAN PEREZ",
		"telefono":           "(605) 123-4567",
		"correo_electronico": " Juan.Perez@EXAMPLE.com ",
		"tipo_pqr":           "reclamo",
		"estado_solicitud":   "cerrado",
	}

	got := Normalize(raw)

	if got.NumeroRadicado != "RAD-001" {
		t.Errorf("NumeroRadicado = %q", got.NumeroRadicado)
	}
	if got.Fecha != "2024/03/15 10:30" {
		t.Errorf("Fecha = %q", got.Fecha)
	}
	if got.NIC != "1234567" {
		t.Errorf("NIC = %q, want no trailing .0 from float64", got.NIC)
	}
	if got.DocumentoIdentidad != "9876543" {
		t.Errorf("DocumentoIdentidad = %q", got.DocumentoIdentidad)
	}
	if got.NombresApellidos != "Juan Perez" {
		t.Errorf("NombresApellidos = %q", got.NombresApellidos)
	}
	if got.Telefono != "6051234567" {
		t.Errorf("Telefono = %q", got.Telefono)
	}
	if got.CorreoElectronico != "juan.perez@example.com" {
		t.Errorf("CorreoElectronico = %q", got.CorreoElectronico)
	}
	// Missing keys come back as empty strings, not panics.
	if got.Celular != "" || got.NumeroReclamoSGC != "" {
		t.Errorf("missing keys should normalize to empty, got celular=%q sgc=%q", got.Celular, got.NumeroReclamoSGC)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := entity.RawRecord{
		"numero_radicado":    "RAD-001",
		"fecha":              "15/03/2024 10:30",
		"nombres_apellidos":  "JUAN PEREZ",
		"correo_electronico": "Juan@Example.com",
		"estado_solicitud":   "abierto",
	}
	once := Normalize(raw)
	twice := Normalize(entity.RawRecord{
		"numero_radicado":    once.NumeroRadicado,
		"fecha":              once.Fecha,
		"nombres_apellidos":  once.NombresApellidos,
		"correo_electronico": once.CorreoElectronico,
		"estado_solicitud":   once.EstadoSolicitud,
	})
	if once != twice {
		t.Errorf("Normalize not idempotent:\n once: %+v\ntwice: %+v", once, twice)
	}
}
