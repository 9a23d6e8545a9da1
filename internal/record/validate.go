package record

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// Soft-check patterns. Violations warn, never reject.
var (
	nicPattern      = regexp.MustCompile(`^\d{6,10}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^[\d\s\-\(\)\+]{7,15}$`)
	documentPattern = regexp.MustCompile(`^\d{6,12}$`)
)

// hashFields is the fixed, ordered field subset the content hash covers.
// Noisy fields (phone, email, free text) are deliberately excluded so the
// hash behaves as a near-duplicate fingerprint.
func hashFields(r entity.Record) []string {
	return []string{r.NumeroRadicado, r.Fecha, r.TipoPQR, r.NIC, r.DocumentoIdentidad}
}

// ContentHash computes the SHA-256 fingerprint over the fixed field subset.
func ContentHash(r entity.Record) string {
	sum := sha256.Sum256([]byte(strings.Join(hashFields(r), "|")))
	return hex.EncodeToString(sum[:])
}

// ParseDate tries the layout ladder in order; first match wins.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Validate enforces the hard/soft split on a normalized record.
// Hard failures (missing radicado, missing/unparseable fecha, missing
// estado_solicitud) make the record invalid. Soft findings only warn.
func Validate(r entity.Record) entity.ValidationOutcome {
	out := entity.ValidationOutcome{Record: r, ContentHash: ContentHash(r)}

	if r.NumeroRadicado == "" {
		out.Errors = append(out.Errors, "numero_radicado es obligatorio")
	}
	switch {
	case r.Fecha == "":
		out.Errors = append(out.Errors, "fecha es obligatoria")
	default:
		if _, ok := ParseDate(r.Fecha); !ok {
			out.Errors = append(out.Errors, fmt.Sprintf("fecha con formato invalido: %q", r.Fecha))
		}
	}
	if r.EstadoSolicitud == "" {
		out.Errors = append(out.Errors, "estado_solicitud es obligatorio")
	}

	if r.NIC != "" && !nicPattern.MatchString(r.NIC) {
		out.Warnings = append(out.Warnings, fmt.Sprintf("nic sospechoso: %q", r.NIC))
	}
	if r.CorreoElectronico != "" && !emailPattern.MatchString(r.CorreoElectronico) {
		out.Warnings = append(out.Warnings, fmt.Sprintf("correo sospechoso: %q", r.CorreoElectronico))
	}
	if r.Telefono != "" && !phonePattern.MatchString(r.Telefono) {
		out.Warnings = append(out.Warnings, fmt.Sprintf("telefono sospechoso: %q", r.Telefono))
	}
	if r.Celular != "" && !phonePattern.MatchString(r.Celular) {
		out.Warnings = append(out.Warnings, fmt.Sprintf("celular sospechoso: %q", r.Celular))
	}
	if r.DocumentoIdentidad != "" && !documentPattern.MatchString(r.DocumentoIdentidad) {
		out.Warnings = append(out.Warnings, fmt.Sprintf("documento sospechoso: %q", r.DocumentoIdentidad))
	}

	out.Valid = len(out.Errors) == 0
	return out
}
