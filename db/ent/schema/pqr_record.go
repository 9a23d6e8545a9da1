package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PQRRecord is one ingested PQR record. The composite unique index on
// (empresa, numero_radicado) is the cross-run duplicate guarantee; the
// in-memory dedup during consolidation only saves work within a single run.
type PQRRecord struct {
	ent.Schema
}

func (PQRRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pqr_records"},
	}
}

func (PQRRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("empresa").NotEmpty(),
		field.String("numero_radicado").NotEmpty(),
		field.String("fecha").NotEmpty(),
		field.String("tipo_pqr").Optional(),
		field.String("nic").Optional(),
		field.String("documento_identidad").Optional(),
		field.String("nombres_apellidos").Optional(),
		field.String("telefono").Optional(),
		field.String("celular").Optional(),
		field.String("correo_electronico").Optional(),
		field.String("canal_respuesta").Optional(),
		field.String("estado_solicitud").NotEmpty(),
		field.String("numero_reclamo_sgc").Optional(),
		field.String("hash_registro").NotEmpty(),
		field.String("archivo_origen").Optional(),
		field.Time("fecha_procesamiento").Default(time.Now),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (PQRRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("empresa", "numero_radicado").Unique(),
		index.Fields("empresa", "hash_registro"),
		index.Fields("empresa", "fecha_procesamiento"),
	}
}
