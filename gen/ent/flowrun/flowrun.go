// Code generated by ent, DO NOT EDIT.

package flowrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the flowrun type in the database.
	Label = "flow_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmpresa holds the string denoting the empresa field in the database.
	FieldEmpresa = "empresa"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// Table holds the table name of the flowrun in the database.
	Table = "flow_runs"
)

// Columns holds all SQL columns for flowrun fields.
var Columns = []string{
	FieldID,
	FieldEmpresa,
	FieldStartedAt,
	FieldFinishedAt,
	FieldSuccess,
	FieldSteps,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmpresaValidator is a validator for the "empresa" field. It is called by the builders before save.
	EmpresaValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FlowRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmpresa orders the results by the empresa field.
func ByEmpresa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmpresa, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}
