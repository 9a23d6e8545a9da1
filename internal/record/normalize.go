// Package record holds the pure record-level stages of the consolidation
// pipeline: normalization, validation and within-run deduplication.
package record

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// CanonicalDateLayout is the shape every parseable fecha is re-rendered to.
const CanonicalDateLayout = "2006/01/02 15:04"

// dateLayouts is the ordered ladder of portal date shapes we accept.
// First match wins. Non-padded layout elements ("1", "2", "4") accept both
// padded and unpadded components, so "2024/3/5 9:30" parses the same as
// "2024/03/05 09:30".
var dateLayouts = []string{
	"2006/1/2 15:4",
	"2006-1-2 15:4",
	"2006/1/2 15:4:5",
	"2006-1-2 15:4:5",
	"2/1/2006 15:4",
	"2-1-2006 15:4",
}

// Normalize canonicalizes a raw scraped record into the closed Record shape.
// Pure function: missing keys become empty strings, nothing fails.
func Normalize(raw entity.RawRecord) entity.Record {
	get := func(key string) string { return asString(raw[key]) }

	return entity.Record{
		NumeroRadicado:     strings.TrimSpace(get("numero_radicado")),
		Fecha:              NormalizeDate(get("fecha")),
		NIC:                NormalizeDigits(get("nic")),
		DocumentoIdentidad: NormalizeDigits(get("documento_identidad")),
		NombresApellidos:   NormalizeName(get("nombres_apellidos")),
		Telefono:           NormalizePhone(get("telefono")),
		Celular:            NormalizePhone(get("celular")),
		CorreoElectronico:  NormalizeEmail(get("correo_electronico")),
		TipoPQR:            strings.TrimSpace(get("tipo_pqr")),
		CanalRespuesta:     strings.TrimSpace(get("canal_respuesta")),
		EstadoSolicitud:    strings.TrimSpace(get("estado_solicitud")),
		NumeroReclamoSGC:   strings.TrimSpace(get("numero_reclamo_sgc")),
	}
}

// NormalizeDate re-renders a portal date to CanonicalDateLayout. Unparseable
// input passes through unchanged; the consolidator logs those at WARN so bad
// dates stay visible downstream.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, ok := ParseDate(s); ok {
		return t.Format(CanonicalDateLayout)
	}
	return s
}

// NormalizePhone strips everything except digits and a leading '+'.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeEmail lowercases and trims.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeName title-cases and trims, collapsing interior runs of spaces.
func NormalizeName(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, w := range fields {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}

// NormalizeDigits strips everything that is not a digit (documents, NICs).
func NormalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// asString coerces the loosely-typed scraped values. JSON numbers arrive as
// float64; integers must not grow a trailing ".0".
func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}
