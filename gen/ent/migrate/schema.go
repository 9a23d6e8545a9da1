// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FlowRunsColumns holds the columns for the "flow_runs" table.
	FlowRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "empresa", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "steps", Type: field.TypeJSON, Nullable: true},
	}
	// FlowRunsTable holds the schema information for the "flow_runs" table.
	FlowRunsTable = &schema.Table{
		Name:       "flow_runs",
		Columns:    FlowRunsColumns,
		PrimaryKey: []*schema.Column{FlowRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flowrun_empresa_started_at",
				Unique:  false,
				Columns: []*schema.Column{FlowRunsColumns[1], FlowRunsColumns[2]},
			},
		},
	}
	// PqrRecordsColumns holds the columns for the "pqr_records" table.
	PqrRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "empresa", Type: field.TypeString},
		{Name: "numero_radicado", Type: field.TypeString},
		{Name: "fecha", Type: field.TypeString},
		{Name: "tipo_pqr", Type: field.TypeString, Nullable: true},
		{Name: "nic", Type: field.TypeString, Nullable: true},
		{Name: "documento_identidad", Type: field.TypeString, Nullable: true},
		{Name: "nombres_apellidos", Type: field.TypeString, Nullable: true},
		{Name: "telefono", Type: field.TypeString, Nullable: true},
		{Name: "celular", Type: field.TypeString, Nullable: true},
		{Name: "correo_electronico", Type: field.TypeString, Nullable: true},
		{Name: "canal_respuesta", Type: field.TypeString, Nullable: true},
		{Name: "estado_solicitud", Type: field.TypeString},
		{Name: "numero_reclamo_sgc", Type: field.TypeString, Nullable: true},
		{Name: "hash_registro", Type: field.TypeString},
		{Name: "archivo_origen", Type: field.TypeString, Nullable: true},
		{Name: "fecha_procesamiento", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PqrRecordsTable holds the schema information for the "pqr_records" table.
	PqrRecordsTable = &schema.Table{
		Name:       "pqr_records",
		Columns:    PqrRecordsColumns,
		PrimaryKey: []*schema.Column{PqrRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pqrrecord_empresa_numero_radicado",
				Unique:  true,
				Columns: []*schema.Column{PqrRecordsColumns[1], PqrRecordsColumns[2]},
			},
			{
				Name:    "pqrrecord_empresa_hash_registro",
				Unique:  false,
				Columns: []*schema.Column{PqrRecordsColumns[1], PqrRecordsColumns[14]},
			},
			{
				Name:    "pqrrecord_empresa_fecha_procesamiento",
				Unique:  false,
				Columns: []*schema.Column{PqrRecordsColumns[1], PqrRecordsColumns[16]},
			},
		},
	}
	// UploadRegistryColumns holds the columns for the "upload_registry" table.
	UploadRegistryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "nombre_archivo", Type: field.TypeString},
		{Name: "clave_s3", Type: field.TypeString, Unique: true},
		{Name: "hash_archivo", Type: field.TypeString, Unique: true},
		{Name: "empresa", Type: field.TypeString},
		{Name: "numero_reclamo_sgc", Type: field.TypeString, Nullable: true},
		{Name: "estado_carga", Type: field.TypeString, Default: "pendiente"},
		{Name: "origen_carga", Type: field.TypeString, Default: "bot"},
		{Name: "intentos", Type: field.TypeInt, Default: 0},
		{Name: "metadatos", Type: field.TypeJSON, Nullable: true},
		{Name: "sincronizado_bd", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UploadRegistryTable holds the schema information for the "upload_registry" table.
	UploadRegistryTable = &schema.Table{
		Name:       "upload_registry",
		Columns:    UploadRegistryColumns,
		PrimaryKey: []*schema.Column{UploadRegistryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "uploadregistry_empresa_numero_reclamo_sgc",
				Unique:  false,
				Columns: []*schema.Column{UploadRegistryColumns[4], UploadRegistryColumns[5]},
			},
			{
				Name:    "uploadregistry_empresa_estado_carga",
				Unique:  false,
				Columns: []*schema.Column{UploadRegistryColumns[4], UploadRegistryColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FlowRunsTable,
		PqrRecordsTable,
		UploadRegistryTable,
	}
)

func init() {
	FlowRunsTable.Annotation = &entsql.Annotation{
		Table: "flow_runs",
	}
	PqrRecordsTable.Annotation = &entsql.Annotation{
		Table: "pqr_records",
	}
	UploadRegistryTable.Annotation = &entsql.Annotation{
		Table: "upload_registry",
	}
}
