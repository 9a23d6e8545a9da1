// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/pqrrecord"
	"github.com/google/uuid"
)

// PQRRecord is the model entity for the PQRRecord schema.
type PQRRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Empresa holds the value of the "empresa" field.
	Empresa string `json:"empresa,omitempty"`
	// NumeroRadicado holds the value of the "numero_radicado" field.
	NumeroRadicado string `json:"numero_radicado,omitempty"`
	// Fecha holds the value of the "fecha" field.
	Fecha string `json:"fecha,omitempty"`
	// TipoPqr holds the value of the "tipo_pqr" field.
	TipoPqr string `json:"tipo_pqr,omitempty"`
	// Nic holds the value of the "nic" field.
	Nic string `json:"nic,omitempty"`
	// DocumentoIdentidad holds the value of the "documento_identidad" field.
	DocumentoIdentidad string `json:"documento_identidad,omitempty"`
	// NombresApellidos holds the value of the "nombres_apellidos" field.
	NombresApellidos string `json:"nombres_apellidos,omitempty"`
	// Telefono holds the value of the "telefono" field.
	Telefono string `json:"telefono,omitempty"`
	// Celular holds the value of the "celular" field.
	Celular string `json:"celular,omitempty"`
	// CorreoElectronico holds the value of the "correo_electronico" field.
	CorreoElectronico string `json:"correo_electronico,omitempty"`
	// CanalRespuesta holds the value of the "canal_respuesta" field.
	CanalRespuesta string `json:"canal_respuesta,omitempty"`
	// EstadoSolicitud holds the value of the "estado_solicitud" field.
	EstadoSolicitud string `json:"estado_solicitud,omitempty"`
	// NumeroReclamoSgc holds the value of the "numero_reclamo_sgc" field.
	NumeroReclamoSgc string `json:"numero_reclamo_sgc,omitempty"`
	// HashRegistro holds the value of the "hash_registro" field.
	HashRegistro string `json:"hash_registro,omitempty"`
	// ArchivoOrigen holds the value of the "archivo_origen" field.
	ArchivoOrigen string `json:"archivo_origen,omitempty"`
	// FechaProcesamiento holds the value of the "fecha_procesamiento" field.
	FechaProcesamiento time.Time `json:"fecha_procesamiento,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PQRRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pqrrecord.FieldEmpresa, pqrrecord.FieldNumeroRadicado, pqrrecord.FieldFecha, pqrrecord.FieldTipoPqr, pqrrecord.FieldNic, pqrrecord.FieldDocumentoIdentidad, pqrrecord.FieldNombresApellidos, pqrrecord.FieldTelefono, pqrrecord.FieldCelular, pqrrecord.FieldCorreoElectronico, pqrrecord.FieldCanalRespuesta, pqrrecord.FieldEstadoSolicitud, pqrrecord.FieldNumeroReclamoSgc, pqrrecord.FieldHashRegistro, pqrrecord.FieldArchivoOrigen:
			values[i] = new(sql.NullString)
		case pqrrecord.FieldFechaProcesamiento, pqrrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case pqrrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PQRRecord fields.
func (_m *PQRRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pqrrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pqrrecord.FieldEmpresa:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field empresa", values[i])
			} else if value.Valid {
				_m.Empresa = value.String
			}
		case pqrrecord.FieldNumeroRadicado:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero_radicado", values[i])
			} else if value.Valid {
				_m.NumeroRadicado = value.String
			}
		case pqrrecord.FieldFecha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fecha", values[i])
			} else if value.Valid {
				_m.Fecha = value.String
			}
		case pqrrecord.FieldTipoPqr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo_pqr", values[i])
			} else if value.Valid {
				_m.TipoPqr = value.String
			}
		case pqrrecord.FieldNic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nic", values[i])
			} else if value.Valid {
				_m.Nic = value.String
			}
		case pqrrecord.FieldDocumentoIdentidad:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field documento_identidad", values[i])
			} else if value.Valid {
				_m.DocumentoIdentidad = value.String
			}
		case pqrrecord.FieldNombresApellidos:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombres_apellidos", values[i])
			} else if value.Valid {
				_m.NombresApellidos = value.String
			}
		case pqrrecord.FieldTelefono:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telefono", values[i])
			} else if value.Valid {
				_m.Telefono = value.String
			}
		case pqrrecord.FieldCelular:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field celular", values[i])
			} else if value.Valid {
				_m.Celular = value.String
			}
		case pqrrecord.FieldCorreoElectronico:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correo_electronico", values[i])
			} else if value.Valid {
				_m.CorreoElectronico = value.String
			}
		case pqrrecord.FieldCanalRespuesta:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canal_respuesta", values[i])
			} else if value.Valid {
				_m.CanalRespuesta = value.String
			}
		case pqrrecord.FieldEstadoSolicitud:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estado_solicitud", values[i])
			} else if value.Valid {
				_m.EstadoSolicitud = value.String
			}
		case pqrrecord.FieldNumeroReclamoSgc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero_reclamo_sgc", values[i])
			} else if value.Valid {
				_m.NumeroReclamoSgc = value.String
			}
		case pqrrecord.FieldHashRegistro:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash_registro", values[i])
			} else if value.Valid {
				_m.HashRegistro = value.String
			}
		case pqrrecord.FieldArchivoOrigen:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archivo_origen", values[i])
			} else if value.Valid {
				_m.ArchivoOrigen = value.String
			}
		case pqrrecord.FieldFechaProcesamiento:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_procesamiento", values[i])
			} else if value.Valid {
				_m.FechaProcesamiento = value.Time
			}
		case pqrrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PQRRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PQRRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PQRRecord.
// Note that you need to call PQRRecord.Unwrap() before calling this method if this PQRRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PQRRecord) Update() *PQRRecordUpdateOne {
	return NewPQRRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PQRRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PQRRecord) Unwrap() *PQRRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PQRRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PQRRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PQRRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("empresa=")
	builder.WriteString(_m.Empresa)
	builder.WriteString(", ")
	builder.WriteString("numero_radicado=")
	builder.WriteString(_m.NumeroRadicado)
	builder.WriteString(", ")
	builder.WriteString("fecha=")
	builder.WriteString(_m.Fecha)
	builder.WriteString(", ")
	builder.WriteString("tipo_pqr=")
	builder.WriteString(_m.TipoPqr)
	builder.WriteString(", ")
	builder.WriteString("nic=")
	builder.WriteString(_m.Nic)
	builder.WriteString(", ")
	builder.WriteString("documento_identidad=")
	builder.WriteString(_m.DocumentoIdentidad)
	builder.WriteString(", ")
	builder.WriteString("nombres_apellidos=")
	builder.WriteString(_m.NombresApellidos)
	builder.WriteString(", ")
	builder.WriteString("telefono=")
	builder.WriteString(_m.Telefono)
	builder.WriteString(", ")
	builder.WriteString("celular=")
	builder.WriteString(_m.Celular)
	builder.WriteString(", ")
	builder.WriteString("correo_electronico=")
	builder.WriteString(_m.CorreoElectronico)
	builder.WriteString(", ")
	builder.WriteString("canal_respuesta=")
	builder.WriteString(_m.CanalRespuesta)
	builder.WriteString(", ")
	builder.WriteString("estado_solicitud=")
	builder.WriteString(_m.EstadoSolicitud)
	builder.WriteString(", ")
	builder.WriteString("numero_reclamo_sgc=")
	builder.WriteString(_m.NumeroReclamoSgc)
	builder.WriteString(", ")
	builder.WriteString("hash_registro=")
	builder.WriteString(_m.HashRegistro)
	builder.WriteString(", ")
	builder.WriteString("archivo_origen=")
	builder.WriteString(_m.ArchivoOrigen)
	builder.WriteString(", ")
	builder.WriteString("fecha_procesamiento=")
	builder.WriteString(_m.FechaProcesamiento.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PQRRecords is a parsable slice of PQRRecord.
type PQRRecords []*PQRRecord
