// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/uploadregistry"
	"github.com/google/uuid"
)

// UploadRegistry is the model entity for the UploadRegistry schema.
type UploadRegistry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// NombreArchivo holds the value of the "nombre_archivo" field.
	NombreArchivo string `json:"nombre_archivo,omitempty"`
	// ClaveS3 holds the value of the "clave_s3" field.
	ClaveS3 string `json:"clave_s3,omitempty"`
	// HashArchivo holds the value of the "hash_archivo" field.
	HashArchivo string `json:"hash_archivo,omitempty"`
	// Empresa holds the value of the "empresa" field.
	Empresa string `json:"empresa,omitempty"`
	// NumeroReclamoSgc holds the value of the "numero_reclamo_sgc" field.
	NumeroReclamoSgc string `json:"numero_reclamo_sgc,omitempty"`
	// EstadoCarga holds the value of the "estado_carga" field.
	EstadoCarga string `json:"estado_carga,omitempty"`
	// OrigenCarga holds the value of the "origen_carga" field.
	OrigenCarga string `json:"origen_carga,omitempty"`
	// Intentos holds the value of the "intentos" field.
	Intentos int `json:"intentos,omitempty"`
	// Metadatos holds the value of the "metadatos" field.
	Metadatos map[string]string `json:"metadatos,omitempty"`
	// SincronizadoBd holds the value of the "sincronizado_bd" field.
	SincronizadoBd bool `json:"sincronizado_bd,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadRegistry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadregistry.FieldMetadatos:
			values[i] = new([]byte)
		case uploadregistry.FieldSincronizadoBd:
			values[i] = new(sql.NullBool)
		case uploadregistry.FieldIntentos:
			values[i] = new(sql.NullInt64)
		case uploadregistry.FieldNombreArchivo, uploadregistry.FieldClaveS3, uploadregistry.FieldHashArchivo, uploadregistry.FieldEmpresa, uploadregistry.FieldNumeroReclamoSgc, uploadregistry.FieldEstadoCarga, uploadregistry.FieldOrigenCarga:
			values[i] = new(sql.NullString)
		case uploadregistry.FieldCreatedAt, uploadregistry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case uploadregistry.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadRegistry fields.
func (_m *UploadRegistry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadregistry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case uploadregistry.FieldNombreArchivo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_archivo", values[i])
			} else if value.Valid {
				_m.NombreArchivo = value.String
			}
		case uploadregistry.FieldClaveS3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clave_s3", values[i])
			} else if value.Valid {
				_m.ClaveS3 = value.String
			}
		case uploadregistry.FieldHashArchivo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash_archivo", values[i])
			} else if value.Valid {
				_m.HashArchivo = value.String
			}
		case uploadregistry.FieldEmpresa:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field empresa", values[i])
			} else if value.Valid {
				_m.Empresa = value.String
			}
		case uploadregistry.FieldNumeroReclamoSgc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero_reclamo_sgc", values[i])
			} else if value.Valid {
				_m.NumeroReclamoSgc = value.String
			}
		case uploadregistry.FieldEstadoCarga:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estado_carga", values[i])
			} else if value.Valid {
				_m.EstadoCarga = value.String
			}
		case uploadregistry.FieldOrigenCarga:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origen_carga", values[i])
			} else if value.Valid {
				_m.OrigenCarga = value.String
			}
		case uploadregistry.FieldIntentos:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intentos", values[i])
			} else if value.Valid {
				_m.Intentos = int(value.Int64)
			}
		case uploadregistry.FieldMetadatos:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadatos", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadatos); err != nil {
					return fmt.Errorf("unmarshal field metadatos: %w", err)
				}
			}
		case uploadregistry.FieldSincronizadoBd:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sincronizado_bd", values[i])
			} else if value.Valid {
				_m.SincronizadoBd = value.Bool
			}
		case uploadregistry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case uploadregistry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadRegistry.
// This includes values selected through modifiers, order, etc.
func (_m *UploadRegistry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UploadRegistry.
// Note that you need to call UploadRegistry.Unwrap() before calling this method if this UploadRegistry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UploadRegistry) Update() *UploadRegistryUpdateOne {
	return NewUploadRegistryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UploadRegistry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UploadRegistry) Unwrap() *UploadRegistry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UploadRegistry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UploadRegistry) String() string {
	var builder strings.Builder
	builder.WriteString("UploadRegistry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("nombre_archivo=")
	builder.WriteString(_m.NombreArchivo)
	builder.WriteString(", ")
	builder.WriteString("clave_s3=")
	builder.WriteString(_m.ClaveS3)
	builder.WriteString(", ")
	builder.WriteString("hash_archivo=")
	builder.WriteString(_m.HashArchivo)
	builder.WriteString(", ")
	builder.WriteString("empresa=")
	builder.WriteString(_m.Empresa)
	builder.WriteString(", ")
	builder.WriteString("numero_reclamo_sgc=")
	builder.WriteString(_m.NumeroReclamoSgc)
	builder.WriteString(", ")
	builder.WriteString("estado_carga=")
	builder.WriteString(_m.EstadoCarga)
	builder.WriteString(", ")
	builder.WriteString("origen_carga=")
	builder.WriteString(_m.OrigenCarga)
	builder.WriteString(", ")
	builder.WriteString("intentos=")
	builder.WriteString(fmt.Sprintf("%v", _m.Intentos))
	builder.WriteString(", ")
	builder.WriteString("metadatos=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadatos))
	builder.WriteString(", ")
	builder.WriteString("sincronizado_bd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SincronizadoBd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UploadRegistries is a parsable slice of UploadRegistry.
type UploadRegistries []*UploadRegistry
