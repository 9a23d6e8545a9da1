package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/db/ent/schema/utils"
)

// UploadRegistry asserts that a specific file (by content hash and storage
// key) has been uploaded or confirmed pre-existing. The unique constraints on
// hash_archivo and clave_s3 are what makes uploads at-most-once regardless of
// retries or duplicate discovery paths.
type UploadRegistry struct {
	ent.Schema
}

func (UploadRegistry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_registry"},
	}
}

func (UploadRegistry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("nombre_archivo").NotEmpty(),
		field.String("clave_s3").NotEmpty().Unique(),
		field.String("hash_archivo").NotEmpty().Unique(), // SHA-256, hex
		field.String("empresa").NotEmpty(),
		field.String("numero_reclamo_sgc").Optional(),
		field.String("estado_carga").
			Default("pendiente").
			Validate(utils.EnumValidator("pendiente", "subido", "pre_existente", "error")),
		field.String("origen_carga").
			Default("bot").
			Validate(utils.EnumValidator("bot", "pre_existente", "manual", "migracion")),
		field.Int("intentos").Default(0).NonNegative(),
		field.JSON("metadatos", map[string]string{}).Optional(),
		field.Bool("sincronizado_bd").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (UploadRegistry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("empresa", "numero_reclamo_sgc"),
		index.Fields("empresa", "estado_carga"),
	}
}
