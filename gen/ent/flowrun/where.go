// Code generated by ent, DO NOT EDIT.

package flowrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldID, id))
}

// Empresa applies equality check predicate on the "empresa" field. It's identical to EmpresaEQ.
func Empresa(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldEmpresa, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldFinishedAt, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldSuccess, v))
}

// EmpresaEQ applies the EQ predicate on the "empresa" field.
func EmpresaEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldEmpresa, v))
}

// EmpresaNEQ applies the NEQ predicate on the "empresa" field.
func EmpresaNEQ(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldEmpresa, v))
}

// EmpresaIn applies the In predicate on the "empresa" field.
func EmpresaIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldEmpresa, vs...))
}

// EmpresaNotIn applies the NotIn predicate on the "empresa" field.
func EmpresaNotIn(vs ...string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldEmpresa, vs...))
}

// EmpresaGT applies the GT predicate on the "empresa" field.
func EmpresaGT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldEmpresa, v))
}

// EmpresaGTE applies the GTE predicate on the "empresa" field.
func EmpresaGTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldEmpresa, v))
}

// EmpresaLT applies the LT predicate on the "empresa" field.
func EmpresaLT(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldEmpresa, v))
}

// EmpresaLTE applies the LTE predicate on the "empresa" field.
func EmpresaLTE(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldEmpresa, v))
}

// EmpresaContains applies the Contains predicate on the "empresa" field.
func EmpresaContains(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContains(FieldEmpresa, v))
}

// EmpresaHasPrefix applies the HasPrefix predicate on the "empresa" field.
func EmpresaHasPrefix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasPrefix(FieldEmpresa, v))
}

// EmpresaHasSuffix applies the HasSuffix predicate on the "empresa" field.
func EmpresaHasSuffix(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldHasSuffix(FieldEmpresa, v))
}

// EmpresaEqualFold applies the EqualFold predicate on the "empresa" field.
func EmpresaEqualFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEqualFold(FieldEmpresa, v))
}

// EmpresaContainsFold applies the ContainsFold predicate on the "empresa" field.
func EmpresaContainsFold(v string) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldContainsFold(FieldEmpresa, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldFinishedAt))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNEQ(FieldSuccess, v))
}

// StepsIsNil applies the IsNil predicate on the "steps" field.
func StepsIsNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldIsNull(FieldSteps))
}

// StepsNotNil applies the NotNil predicate on the "steps" field.
func StepsNotNil() predicate.FlowRun {
	return predicate.FlowRun(sql.FieldNotNull(FieldSteps))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FlowRun) predicate.FlowRun {
	return predicate.FlowRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FlowRun) predicate.FlowRun {
	return predicate.FlowRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FlowRun) predicate.FlowRun {
	return predicate.FlowRun(sql.NotPredicates(p))
}
