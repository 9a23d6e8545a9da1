// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/flowrun"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/pqrrecord"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/predicate"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/uploadregistry"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFlowRun        = "FlowRun"
	TypePQRRecord      = "PQRRecord"
	TypeUploadRegistry = "UploadRegistry"
)

// FlowRunMutation represents an operation that mutates the FlowRun nodes in the graph.
type FlowRunMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	empresa       *string
	started_at    *time.Time
	finished_at   *time.Time
	success       *bool
	steps         *[]entity.FlowStepResult
	appendsteps   []entity.FlowStepResult
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FlowRun, error)
	predicates    []predicate.FlowRun
}

var _ ent.Mutation = (*FlowRunMutation)(nil)

// flowrunOption allows management of the mutation configuration using functional options.
type flowrunOption func(*FlowRunMutation)

// newFlowRunMutation creates new mutation for the FlowRun entity.
func newFlowRunMutation(c config, op Op, opts ...flowrunOption) *FlowRunMutation {
	m := &FlowRunMutation{
		config:        c,
		op:            op,
		typ:           TypeFlowRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlowRunID sets the ID field of the mutation.
func withFlowRunID(id uuid.UUID) flowrunOption {
	return func(m *FlowRunMutation) {
		var (
			err   error
			once  sync.Once
			value *FlowRun
		)
		m.oldValue = func(ctx context.Context) (*FlowRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FlowRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlowRun sets the old FlowRun of the mutation.
func withFlowRun(node *FlowRun) flowrunOption {
	return func(m *FlowRunMutation) {
		m.oldValue = func(context.Context) (*FlowRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlowRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlowRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FlowRun entities.
func (m *FlowRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlowRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlowRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FlowRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmpresa sets the "empresa" field.
func (m *FlowRunMutation) SetEmpresa(s string) {
	m.empresa = &s
}

// Empresa returns the value of the "empresa" field in the mutation.
func (m *FlowRunMutation) Empresa() (r string, exists bool) {
	v := m.empresa
	if v == nil {
		return
	}
	return *v, true
}

// OldEmpresa returns the old "empresa" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldEmpresa(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmpresa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmpresa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmpresa: %w", err)
	}
	return oldValue.Empresa, nil
}

// ResetEmpresa resets all changes to the "empresa" field.
func (m *FlowRunMutation) ResetEmpresa() {
	m.empresa = nil
}

// SetStartedAt sets the "started_at" field.
func (m *FlowRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *FlowRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *FlowRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *FlowRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *FlowRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *FlowRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[flowrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *FlowRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *FlowRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, flowrun.FieldFinishedAt)
}

// SetSuccess sets the "success" field.
func (m *FlowRunMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *FlowRunMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *FlowRunMutation) ResetSuccess() {
	m.success = nil
}

// SetSteps sets the "steps" field.
func (m *FlowRunMutation) SetSteps(esr []entity.FlowStepResult) {
	m.steps = &esr
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *FlowRunMutation) Steps() (r []entity.FlowStepResult, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the FlowRun entity.
// If the FlowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlowRunMutation) OldSteps(ctx context.Context) (v []entity.FlowStepResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds esr to the "steps" field.
func (m *FlowRunMutation) AppendSteps(esr []entity.FlowStepResult) {
	m.appendsteps = append(m.appendsteps, esr...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *FlowRunMutation) AppendedSteps() ([]entity.FlowStepResult, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ClearSteps clears the value of the "steps" field.
func (m *FlowRunMutation) ClearSteps() {
	m.steps = nil
	m.appendsteps = nil
	m.clearedFields[flowrun.FieldSteps] = struct{}{}
}

// StepsCleared returns if the "steps" field was cleared in this mutation.
func (m *FlowRunMutation) StepsCleared() bool {
	_, ok := m.clearedFields[flowrun.FieldSteps]
	return ok
}

// ResetSteps resets all changes to the "steps" field.
func (m *FlowRunMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
	delete(m.clearedFields, flowrun.FieldSteps)
}

// Where appends a list predicates to the FlowRunMutation builder.
func (m *FlowRunMutation) Where(ps ...predicate.FlowRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlowRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlowRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FlowRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlowRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlowRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FlowRun).
func (m *FlowRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlowRunMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.empresa != nil {
		fields = append(fields, flowrun.FieldEmpresa)
	}
	if m.started_at != nil {
		fields = append(fields, flowrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, flowrun.FieldFinishedAt)
	}
	if m.success != nil {
		fields = append(fields, flowrun.FieldSuccess)
	}
	if m.steps != nil {
		fields = append(fields, flowrun.FieldSteps)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlowRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flowrun.FieldEmpresa:
		return m.Empresa()
	case flowrun.FieldStartedAt:
		return m.StartedAt()
	case flowrun.FieldFinishedAt:
		return m.FinishedAt()
	case flowrun.FieldSuccess:
		return m.Success()
	case flowrun.FieldSteps:
		return m.Steps()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlowRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flowrun.FieldEmpresa:
		return m.OldEmpresa(ctx)
	case flowrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case flowrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case flowrun.FieldSuccess:
		return m.OldSuccess(ctx)
	case flowrun.FieldSteps:
		return m.OldSteps(ctx)
	}
	return nil, fmt.Errorf("unknown FlowRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flowrun.FieldEmpresa:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmpresa(v)
		return nil
	case flowrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case flowrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case flowrun.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case flowrun.FieldSteps:
		v, ok := value.([]entity.FlowStepResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	}
	return fmt.Errorf("unknown FlowRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlowRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlowRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlowRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FlowRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlowRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(flowrun.FieldFinishedAt) {
		fields = append(fields, flowrun.FieldFinishedAt)
	}
	if m.FieldCleared(flowrun.FieldSteps) {
		fields = append(fields, flowrun.FieldSteps)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlowRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlowRunMutation) ClearField(name string) error {
	switch name {
	case flowrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case flowrun.FieldSteps:
		m.ClearSteps()
		return nil
	}
	return fmt.Errorf("unknown FlowRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlowRunMutation) ResetField(name string) error {
	switch name {
	case flowrun.FieldEmpresa:
		m.ResetEmpresa()
		return nil
	case flowrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case flowrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case flowrun.FieldSuccess:
		m.ResetSuccess()
		return nil
	case flowrun.FieldSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown FlowRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlowRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlowRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlowRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlowRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlowRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlowRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlowRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FlowRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlowRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FlowRun edge %s", name)
}

// PQRRecordMutation represents an operation that mutates the PQRRecord nodes in the graph.
type PQRRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	empresa             *string
	numero_radicado     *string
	fecha               *string
	tipo_pqr            *string
	nic                 *string
	documento_identidad *string
	nombres_apellidos   *string
	telefono            *string
	celular             *string
	correo_electronico  *string
	canal_respuesta     *string
	estado_solicitud    *string
	numero_reclamo_sgc  *string
	hash_registro       *string
	archivo_origen      *string
	fecha_procesamiento *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*PQRRecord, error)
	predicates          []predicate.PQRRecord
}

var _ ent.Mutation = (*PQRRecordMutation)(nil)

// pqrrecordOption allows management of the mutation configuration using functional options.
type pqrrecordOption func(*PQRRecordMutation)

// newPQRRecordMutation creates new mutation for the PQRRecord entity.
func newPQRRecordMutation(c config, op Op, opts ...pqrrecordOption) *PQRRecordMutation {
	m := &PQRRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePQRRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPQRRecordID sets the ID field of the mutation.
func withPQRRecordID(id uuid.UUID) pqrrecordOption {
	return func(m *PQRRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PQRRecord
		)
		m.oldValue = func(ctx context.Context) (*PQRRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PQRRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPQRRecord sets the old PQRRecord of the mutation.
func withPQRRecord(node *PQRRecord) pqrrecordOption {
	return func(m *PQRRecordMutation) {
		m.oldValue = func(context.Context) (*PQRRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PQRRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PQRRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PQRRecord entities.
func (m *PQRRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PQRRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PQRRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PQRRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmpresa sets the "empresa" field.
func (m *PQRRecordMutation) SetEmpresa(s string) {
	m.empresa = &s
}

// Empresa returns the value of the "empresa" field in the mutation.
func (m *PQRRecordMutation) Empresa() (r string, exists bool) {
	v := m.empresa
	if v == nil {
		return
	}
	return *v, true
}

// OldEmpresa returns the old "empresa" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldEmpresa(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmpresa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmpresa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmpresa: %w", err)
	}
	return oldValue.Empresa, nil
}

// ResetEmpresa resets all changes to the "empresa" field.
func (m *PQRRecordMutation) ResetEmpresa() {
	m.empresa = nil
}

// SetNumeroRadicado sets the "numero_radicado" field.
func (m *PQRRecordMutation) SetNumeroRadicado(s string) {
	m.numero_radicado = &s
}

// NumeroRadicado returns the value of the "numero_radicado" field in the mutation.
func (m *PQRRecordMutation) NumeroRadicado() (r string, exists bool) {
	v := m.numero_radicado
	if v == nil {
		return
	}
	return *v, true
}

// OldNumeroRadicado returns the old "numero_radicado" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldNumeroRadicado(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumeroRadicado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumeroRadicado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumeroRadicado: %w", err)
	}
	return oldValue.NumeroRadicado, nil
}

// ResetNumeroRadicado resets all changes to the "numero_radicado" field.
func (m *PQRRecordMutation) ResetNumeroRadicado() {
	m.numero_radicado = nil
}

// SetFecha sets the "fecha" field.
func (m *PQRRecordMutation) SetFecha(s string) {
	m.fecha = &s
}

// Fecha returns the value of the "fecha" field in the mutation.
func (m *PQRRecordMutation) Fecha() (r string, exists bool) {
	v := m.fecha
	if v == nil {
		return
	}
	return *v, true
}

// OldFecha returns the old "fecha" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldFecha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFecha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFecha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFecha: %w", err)
	}
	return oldValue.Fecha, nil
}

// ResetFecha resets all changes to the "fecha" field.
func (m *PQRRecordMutation) ResetFecha() {
	m.fecha = nil
}

// SetTipoPqr sets the "tipo_pqr" field.
func (m *PQRRecordMutation) SetTipoPqr(s string) {
	m.tipo_pqr = &s
}

// TipoPqr returns the value of the "tipo_pqr" field in the mutation.
func (m *PQRRecordMutation) TipoPqr() (r string, exists bool) {
	v := m.tipo_pqr
	if v == nil {
		return
	}
	return *v, true
}

// OldTipoPqr returns the old "tipo_pqr" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldTipoPqr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipoPqr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipoPqr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipoPqr: %w", err)
	}
	return oldValue.TipoPqr, nil
}

// ClearTipoPqr clears the value of the "tipo_pqr" field.
func (m *PQRRecordMutation) ClearTipoPqr() {
	m.tipo_pqr = nil
	m.clearedFields[pqrrecord.FieldTipoPqr] = struct{}{}
}

// TipoPqrCleared returns if the "tipo_pqr" field was cleared in this mutation.
func (m *PQRRecordMutation) TipoPqrCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldTipoPqr]
	return ok
}

// ResetTipoPqr resets all changes to the "tipo_pqr" field.
func (m *PQRRecordMutation) ResetTipoPqr() {
	m.tipo_pqr = nil
	delete(m.clearedFields, pqrrecord.FieldTipoPqr)
}

// SetNic sets the "nic" field.
func (m *PQRRecordMutation) SetNic(s string) {
	m.nic = &s
}

// Nic returns the value of the "nic" field in the mutation.
func (m *PQRRecordMutation) Nic() (r string, exists bool) {
	v := m.nic
	if v == nil {
		return
	}
	return *v, true
}

// OldNic returns the old "nic" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldNic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNic: %w", err)
	}
	return oldValue.Nic, nil
}

// ClearNic clears the value of the "nic" field.
func (m *PQRRecordMutation) ClearNic() {
	m.nic = nil
	m.clearedFields[pqrrecord.FieldNic] = struct{}{}
}

// NicCleared returns if the "nic" field was cleared in this mutation.
func (m *PQRRecordMutation) NicCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldNic]
	return ok
}

// ResetNic resets all changes to the "nic" field.
func (m *PQRRecordMutation) ResetNic() {
	m.nic = nil
	delete(m.clearedFields, pqrrecord.FieldNic)
}

// SetDocumentoIdentidad sets the "documento_identidad" field.
func (m *PQRRecordMutation) SetDocumentoIdentidad(s string) {
	m.documento_identidad = &s
}

// DocumentoIdentidad returns the value of the "documento_identidad" field in the mutation.
func (m *PQRRecordMutation) DocumentoIdentidad() (r string, exists bool) {
	v := m.documento_identidad
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentoIdentidad returns the old "documento_identidad" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldDocumentoIdentidad(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentoIdentidad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentoIdentidad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentoIdentidad: %w", err)
	}
	return oldValue.DocumentoIdentidad, nil
}

// ClearDocumentoIdentidad clears the value of the "documento_identidad" field.
func (m *PQRRecordMutation) ClearDocumentoIdentidad() {
	m.documento_identidad = nil
	m.clearedFields[pqrrecord.FieldDocumentoIdentidad] = struct{}{}
}

// DocumentoIdentidadCleared returns if the "documento_identidad" field was cleared in this mutation.
func (m *PQRRecordMutation) DocumentoIdentidadCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldDocumentoIdentidad]
	return ok
}

// ResetDocumentoIdentidad resets all changes to the "documento_identidad" field.
func (m *PQRRecordMutation) ResetDocumentoIdentidad() {
	m.documento_identidad = nil
	delete(m.clearedFields, pqrrecord.FieldDocumentoIdentidad)
}

// SetNombresApellidos sets the "nombres_apellidos" field.
func (m *PQRRecordMutation) SetNombresApellidos(s string) {
	m.nombres_apellidos = &s
}

// NombresApellidos returns the value of the "nombres_apellidos" field in the mutation.
func (m *PQRRecordMutation) NombresApellidos() (r string, exists bool) {
	v := m.nombres_apellidos
	if v == nil {
		return
	}
	return *v, true
}

// OldNombresApellidos returns the old "nombres_apellidos" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldNombresApellidos(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombresApellidos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombresApellidos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombresApellidos: %w", err)
	}
	return oldValue.NombresApellidos, nil
}

// ClearNombresApellidos clears the value of the "nombres_apellidos" field.
func (m *PQRRecordMutation) ClearNombresApellidos() {
	m.nombres_apellidos = nil
	m.clearedFields[pqrrecord.FieldNombresApellidos] = struct{}{}
}

// NombresApellidosCleared returns if the "nombres_apellidos" field was cleared in this mutation.
func (m *PQRRecordMutation) NombresApellidosCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldNombresApellidos]
	return ok
}

// ResetNombresApellidos resets all changes to the "nombres_apellidos" field.
func (m *PQRRecordMutation) ResetNombresApellidos() {
	m.nombres_apellidos = nil
	delete(m.clearedFields, pqrrecord.FieldNombresApellidos)
}

// SetTelefono sets the "telefono" field.
func (m *PQRRecordMutation) SetTelefono(s string) {
	m.telefono = &s
}

// Telefono returns the value of the "telefono" field in the mutation.
func (m *PQRRecordMutation) Telefono() (r string, exists bool) {
	v := m.telefono
	if v == nil {
		return
	}
	return *v, true
}

// OldTelefono returns the old "telefono" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldTelefono(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelefono is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelefono requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelefono: %w", err)
	}
	return oldValue.Telefono, nil
}

// ClearTelefono clears the value of the "telefono" field.
func (m *PQRRecordMutation) ClearTelefono() {
	m.telefono = nil
	m.clearedFields[pqrrecord.FieldTelefono] = struct{}{}
}

// TelefonoCleared returns if the "telefono" field was cleared in this mutation.
func (m *PQRRecordMutation) TelefonoCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldTelefono]
	return ok
}

// ResetTelefono resets all changes to the "telefono" field.
func (m *PQRRecordMutation) ResetTelefono() {
	m.telefono = nil
	delete(m.clearedFields, pqrrecord.FieldTelefono)
}

// SetCelular sets the "celular" field.
func (m *PQRRecordMutation) SetCelular(s string) {
	m.celular = &s
}

// Celular returns the value of the "celular" field in the mutation.
func (m *PQRRecordMutation) Celular() (r string, exists bool) {
	v := m.celular
	if v == nil {
		return
	}
	return *v, true
}

// OldCelular returns the old "celular" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldCelular(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCelular is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCelular requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCelular: %w", err)
	}
	return oldValue.Celular, nil
}

// ClearCelular clears the value of the "celular" field.
func (m *PQRRecordMutation) ClearCelular() {
	m.celular = nil
	m.clearedFields[pqrrecord.FieldCelular] = struct{}{}
}

// CelularCleared returns if the "celular" field was cleared in this mutation.
func (m *PQRRecordMutation) CelularCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldCelular]
	return ok
}

// ResetCelular resets all changes to the "celular" field.
func (m *PQRRecordMutation) ResetCelular() {
	m.celular = nil
	delete(m.clearedFields, pqrrecord.FieldCelular)
}

// SetCorreoElectronico sets the "correo_electronico" field.
func (m *PQRRecordMutation) SetCorreoElectronico(s string) {
	m.correo_electronico = &s
}

// CorreoElectronico returns the value of the "correo_electronico" field in the mutation.
func (m *PQRRecordMutation) CorreoElectronico() (r string, exists bool) {
	v := m.correo_electronico
	if v == nil {
		return
	}
	return *v, true
}

// OldCorreoElectronico returns the old "correo_electronico" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldCorreoElectronico(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorreoElectronico is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorreoElectronico requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorreoElectronico: %w", err)
	}
	return oldValue.CorreoElectronico, nil
}

// ClearCorreoElectronico clears the value of the "correo_electronico" field.
func (m *PQRRecordMutation) ClearCorreoElectronico() {
	m.correo_electronico = nil
	m.clearedFields[pqrrecord.FieldCorreoElectronico] = struct{}{}
}

// CorreoElectronicoCleared returns if the "correo_electronico" field was cleared in this mutation.
func (m *PQRRecordMutation) CorreoElectronicoCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldCorreoElectronico]
	return ok
}

// ResetCorreoElectronico resets all changes to the "correo_electronico" field.
func (m *PQRRecordMutation) ResetCorreoElectronico() {
	m.correo_electronico = nil
	delete(m.clearedFields, pqrrecord.FieldCorreoElectronico)
}

// SetCanalRespuesta sets the "canal_respuesta" field.
func (m *PQRRecordMutation) SetCanalRespuesta(s string) {
	m.canal_respuesta = &s
}

// CanalRespuesta returns the value of the "canal_respuesta" field in the mutation.
func (m *PQRRecordMutation) CanalRespuesta() (r string, exists bool) {
	v := m.canal_respuesta
	if v == nil {
		return
	}
	return *v, true
}

// OldCanalRespuesta returns the old "canal_respuesta" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldCanalRespuesta(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanalRespuesta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanalRespuesta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanalRespuesta: %w", err)
	}
	return oldValue.CanalRespuesta, nil
}

// ClearCanalRespuesta clears the value of the "canal_respuesta" field.
func (m *PQRRecordMutation) ClearCanalRespuesta() {
	m.canal_respuesta = nil
	m.clearedFields[pqrrecord.FieldCanalRespuesta] = struct{}{}
}

// CanalRespuestaCleared returns if the "canal_respuesta" field was cleared in this mutation.
func (m *PQRRecordMutation) CanalRespuestaCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldCanalRespuesta]
	return ok
}

// ResetCanalRespuesta resets all changes to the "canal_respuesta" field.
func (m *PQRRecordMutation) ResetCanalRespuesta() {
	m.canal_respuesta = nil
	delete(m.clearedFields, pqrrecord.FieldCanalRespuesta)
}

// SetEstadoSolicitud sets the "estado_solicitud" field.
func (m *PQRRecordMutation) SetEstadoSolicitud(s string) {
	m.estado_solicitud = &s
}

// EstadoSolicitud returns the value of the "estado_solicitud" field in the mutation.
func (m *PQRRecordMutation) EstadoSolicitud() (r string, exists bool) {
	v := m.estado_solicitud
	if v == nil {
		return
	}
	return *v, true
}

// OldEstadoSolicitud returns the old "estado_solicitud" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldEstadoSolicitud(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstadoSolicitud is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstadoSolicitud requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstadoSolicitud: %w", err)
	}
	return oldValue.EstadoSolicitud, nil
}

// ResetEstadoSolicitud resets all changes to the "estado_solicitud" field.
func (m *PQRRecordMutation) ResetEstadoSolicitud() {
	m.estado_solicitud = nil
}

// SetNumeroReclamoSgc sets the "numero_reclamo_sgc" field.
func (m *PQRRecordMutation) SetNumeroReclamoSgc(s string) {
	m.numero_reclamo_sgc = &s
}

// NumeroReclamoSgc returns the value of the "numero_reclamo_sgc" field in the mutation.
func (m *PQRRecordMutation) NumeroReclamoSgc() (r string, exists bool) {
	v := m.numero_reclamo_sgc
	if v == nil {
		return
	}
	return *v, true
}

// OldNumeroReclamoSgc returns the old "numero_reclamo_sgc" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldNumeroReclamoSgc(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumeroReclamoSgc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumeroReclamoSgc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumeroReclamoSgc: %w", err)
	}
	return oldValue.NumeroReclamoSgc, nil
}

// ClearNumeroReclamoSgc clears the value of the "numero_reclamo_sgc" field.
func (m *PQRRecordMutation) ClearNumeroReclamoSgc() {
	m.numero_reclamo_sgc = nil
	m.clearedFields[pqrrecord.FieldNumeroReclamoSgc] = struct{}{}
}

// NumeroReclamoSgcCleared returns if the "numero_reclamo_sgc" field was cleared in this mutation.
func (m *PQRRecordMutation) NumeroReclamoSgcCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldNumeroReclamoSgc]
	return ok
}

// ResetNumeroReclamoSgc resets all changes to the "numero_reclamo_sgc" field.
func (m *PQRRecordMutation) ResetNumeroReclamoSgc() {
	m.numero_reclamo_sgc = nil
	delete(m.clearedFields, pqrrecord.FieldNumeroReclamoSgc)
}

// SetHashRegistro sets the "hash_registro" field.
func (m *PQRRecordMutation) SetHashRegistro(s string) {
	m.hash_registro = &s
}

// HashRegistro returns the value of the "hash_registro" field in the mutation.
func (m *PQRRecordMutation) HashRegistro() (r string, exists bool) {
	v := m.hash_registro
	if v == nil {
		return
	}
	return *v, true
}

// OldHashRegistro returns the old "hash_registro" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldHashRegistro(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashRegistro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashRegistro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashRegistro: %w", err)
	}
	return oldValue.HashRegistro, nil
}

// ResetHashRegistro resets all changes to the "hash_registro" field.
func (m *PQRRecordMutation) ResetHashRegistro() {
	m.hash_registro = nil
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (m *PQRRecordMutation) SetArchivoOrigen(s string) {
	m.archivo_origen = &s
}

// ArchivoOrigen returns the value of the "archivo_origen" field in the mutation.
func (m *PQRRecordMutation) ArchivoOrigen() (r string, exists bool) {
	v := m.archivo_origen
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivoOrigen returns the old "archivo_origen" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldArchivoOrigen(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivoOrigen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivoOrigen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivoOrigen: %w", err)
	}
	return oldValue.ArchivoOrigen, nil
}

// ClearArchivoOrigen clears the value of the "archivo_origen" field.
func (m *PQRRecordMutation) ClearArchivoOrigen() {
	m.archivo_origen = nil
	m.clearedFields[pqrrecord.FieldArchivoOrigen] = struct{}{}
}

// ArchivoOrigenCleared returns if the "archivo_origen" field was cleared in this mutation.
func (m *PQRRecordMutation) ArchivoOrigenCleared() bool {
	_, ok := m.clearedFields[pqrrecord.FieldArchivoOrigen]
	return ok
}

// ResetArchivoOrigen resets all changes to the "archivo_origen" field.
func (m *PQRRecordMutation) ResetArchivoOrigen() {
	m.archivo_origen = nil
	delete(m.clearedFields, pqrrecord.FieldArchivoOrigen)
}

// SetFechaProcesamiento sets the "fecha_procesamiento" field.
func (m *PQRRecordMutation) SetFechaProcesamiento(t time.Time) {
	m.fecha_procesamiento = &t
}

// FechaProcesamiento returns the value of the "fecha_procesamiento" field in the mutation.
func (m *PQRRecordMutation) FechaProcesamiento() (r time.Time, exists bool) {
	v := m.fecha_procesamiento
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaProcesamiento returns the old "fecha_procesamiento" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldFechaProcesamiento(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaProcesamiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaProcesamiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaProcesamiento: %w", err)
	}
	return oldValue.FechaProcesamiento, nil
}

// ResetFechaProcesamiento resets all changes to the "fecha_procesamiento" field.
func (m *PQRRecordMutation) ResetFechaProcesamiento() {
	m.fecha_procesamiento = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PQRRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PQRRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PQRRecord entity.
// If the PQRRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PQRRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PQRRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PQRRecordMutation builder.
func (m *PQRRecordMutation) Where(ps ...predicate.PQRRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PQRRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PQRRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PQRRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PQRRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PQRRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PQRRecord).
func (m *PQRRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PQRRecordMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.empresa != nil {
		fields = append(fields, pqrrecord.FieldEmpresa)
	}
	if m.numero_radicado != nil {
		fields = append(fields, pqrrecord.FieldNumeroRadicado)
	}
	if m.fecha != nil {
		fields = append(fields, pqrrecord.FieldFecha)
	}
	if m.tipo_pqr != nil {
		fields = append(fields, pqrrecord.FieldTipoPqr)
	}
	if m.nic != nil {
		fields = append(fields, pqrrecord.FieldNic)
	}
	if m.documento_identidad != nil {
		fields = append(fields, pqrrecord.FieldDocumentoIdentidad)
	}
	if m.nombres_apellidos != nil {
		fields = append(fields, pqrrecord.FieldNombresApellidos)
	}
	if m.telefono != nil {
		fields = append(fields, pqrrecord.FieldTelefono)
	}
	if m.celular != nil {
		fields = append(fields, pqrrecord.FieldCelular)
	}
	if m.correo_electronico != nil {
		fields = append(fields, pqrrecord.FieldCorreoElectronico)
	}
	if m.canal_respuesta != nil {
		fields = append(fields, pqrrecord.FieldCanalRespuesta)
	}
	if m.estado_solicitud != nil {
		fields = append(fields, pqrrecord.FieldEstadoSolicitud)
	}
	if m.numero_reclamo_sgc != nil {
		fields = append(fields, pqrrecord.FieldNumeroReclamoSgc)
	}
	if m.hash_registro != nil {
		fields = append(fields, pqrrecord.FieldHashRegistro)
	}
	if m.archivo_origen != nil {
		fields = append(fields, pqrrecord.FieldArchivoOrigen)
	}
	if m.fecha_procesamiento != nil {
		fields = append(fields, pqrrecord.FieldFechaProcesamiento)
	}
	if m.created_at != nil {
		fields = append(fields, pqrrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PQRRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pqrrecord.FieldEmpresa:
		return m.Empresa()
	case pqrrecord.FieldNumeroRadicado:
		return m.NumeroRadicado()
	case pqrrecord.FieldFecha:
		return m.Fecha()
	case pqrrecord.FieldTipoPqr:
		return m.TipoPqr()
	case pqrrecord.FieldNic:
		return m.Nic()
	case pqrrecord.FieldDocumentoIdentidad:
		return m.DocumentoIdentidad()
	case pqrrecord.FieldNombresApellidos:
		return m.NombresApellidos()
	case pqrrecord.FieldTelefono:
		return m.Telefono()
	case pqrrecord.FieldCelular:
		return m.Celular()
	case pqrrecord.FieldCorreoElectronico:
		return m.CorreoElectronico()
	case pqrrecord.FieldCanalRespuesta:
		return m.CanalRespuesta()
	case pqrrecord.FieldEstadoSolicitud:
		return m.EstadoSolicitud()
	case pqrrecord.FieldNumeroReclamoSgc:
		return m.NumeroReclamoSgc()
	case pqrrecord.FieldHashRegistro:
		return m.HashRegistro()
	case pqrrecord.FieldArchivoOrigen:
		return m.ArchivoOrigen()
	case pqrrecord.FieldFechaProcesamiento:
		return m.FechaProcesamiento()
	case pqrrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PQRRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pqrrecord.FieldEmpresa:
		return m.OldEmpresa(ctx)
	case pqrrecord.FieldNumeroRadicado:
		return m.OldNumeroRadicado(ctx)
	case pqrrecord.FieldFecha:
		return m.OldFecha(ctx)
	case pqrrecord.FieldTipoPqr:
		return m.OldTipoPqr(ctx)
	case pqrrecord.FieldNic:
		return m.OldNic(ctx)
	case pqrrecord.FieldDocumentoIdentidad:
		return m.OldDocumentoIdentidad(ctx)
	case pqrrecord.FieldNombresApellidos:
		return m.OldNombresApellidos(ctx)
	case pqrrecord.FieldTelefono:
		return m.OldTelefono(ctx)
	case pqrrecord.FieldCelular:
		return m.OldCelular(ctx)
	case pqrrecord.FieldCorreoElectronico:
		return m.OldCorreoElectronico(ctx)
	case pqrrecord.FieldCanalRespuesta:
		return m.OldCanalRespuesta(ctx)
	case pqrrecord.FieldEstadoSolicitud:
		return m.OldEstadoSolicitud(ctx)
	case pqrrecord.FieldNumeroReclamoSgc:
		return m.OldNumeroReclamoSgc(ctx)
	case pqrrecord.FieldHashRegistro:
		return m.OldHashRegistro(ctx)
	case pqrrecord.FieldArchivoOrigen:
		return m.OldArchivoOrigen(ctx)
	case pqrrecord.FieldFechaProcesamiento:
		return m.OldFechaProcesamiento(ctx)
	case pqrrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PQRRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PQRRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pqrrecord.FieldEmpresa:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmpresa(v)
		return nil
	case pqrrecord.FieldNumeroRadicado:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumeroRadicado(v)
		return nil
	case pqrrecord.FieldFecha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFecha(v)
		return nil
	case pqrrecord.FieldTipoPqr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipoPqr(v)
		return nil
	case pqrrecord.FieldNic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNic(v)
		return nil
	case pqrrecord.FieldDocumentoIdentidad:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentoIdentidad(v)
		return nil
	case pqrrecord.FieldNombresApellidos:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombresApellidos(v)
		return nil
	case pqrrecord.FieldTelefono:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelefono(v)
		return nil
	case pqrrecord.FieldCelular:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCelular(v)
		return nil
	case pqrrecord.FieldCorreoElectronico:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorreoElectronico(v)
		return nil
	case pqrrecord.FieldCanalRespuesta:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanalRespuesta(v)
		return nil
	case pqrrecord.FieldEstadoSolicitud:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstadoSolicitud(v)
		return nil
	case pqrrecord.FieldNumeroReclamoSgc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumeroReclamoSgc(v)
		return nil
	case pqrrecord.FieldHashRegistro:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashRegistro(v)
		return nil
	case pqrrecord.FieldArchivoOrigen:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivoOrigen(v)
		return nil
	case pqrrecord.FieldFechaProcesamiento:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaProcesamiento(v)
		return nil
	case pqrrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PQRRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PQRRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PQRRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PQRRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PQRRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PQRRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pqrrecord.FieldTipoPqr) {
		fields = append(fields, pqrrecord.FieldTipoPqr)
	}
	if m.FieldCleared(pqrrecord.FieldNic) {
		fields = append(fields, pqrrecord.FieldNic)
	}
	if m.FieldCleared(pqrrecord.FieldDocumentoIdentidad) {
		fields = append(fields, pqrrecord.FieldDocumentoIdentidad)
	}
	if m.FieldCleared(pqrrecord.FieldNombresApellidos) {
		fields = append(fields, pqrrecord.FieldNombresApellidos)
	}
	if m.FieldCleared(pqrrecord.FieldTelefono) {
		fields = append(fields, pqrrecord.FieldTelefono)
	}
	if m.FieldCleared(pqrrecord.FieldCelular) {
		fields = append(fields, pqrrecord.FieldCelular)
	}
	if m.FieldCleared(pqrrecord.FieldCorreoElectronico) {
		fields = append(fields, pqrrecord.FieldCorreoElectronico)
	}
	if m.FieldCleared(pqrrecord.FieldCanalRespuesta) {
		fields = append(fields, pqrrecord.FieldCanalRespuesta)
	}
	if m.FieldCleared(pqrrecord.FieldNumeroReclamoSgc) {
		fields = append(fields, pqrrecord.FieldNumeroReclamoSgc)
	}
	if m.FieldCleared(pqrrecord.FieldArchivoOrigen) {
		fields = append(fields, pqrrecord.FieldArchivoOrigen)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PQRRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PQRRecordMutation) ClearField(name string) error {
	switch name {
	case pqrrecord.FieldTipoPqr:
		m.ClearTipoPqr()
		return nil
	case pqrrecord.FieldNic:
		m.ClearNic()
		return nil
	case pqrrecord.FieldDocumentoIdentidad:
		m.ClearDocumentoIdentidad()
		return nil
	case pqrrecord.FieldNombresApellidos:
		m.ClearNombresApellidos()
		return nil
	case pqrrecord.FieldTelefono:
		m.ClearTelefono()
		return nil
	case pqrrecord.FieldCelular:
		m.ClearCelular()
		return nil
	case pqrrecord.FieldCorreoElectronico:
		m.ClearCorreoElectronico()
		return nil
	case pqrrecord.FieldCanalRespuesta:
		m.ClearCanalRespuesta()
		return nil
	case pqrrecord.FieldNumeroReclamoSgc:
		m.ClearNumeroReclamoSgc()
		return nil
	case pqrrecord.FieldArchivoOrigen:
		m.ClearArchivoOrigen()
		return nil
	}
	return fmt.Errorf("unknown PQRRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PQRRecordMutation) ResetField(name string) error {
	switch name {
	case pqrrecord.FieldEmpresa:
		m.ResetEmpresa()
		return nil
	case pqrrecord.FieldNumeroRadicado:
		m.ResetNumeroRadicado()
		return nil
	case pqrrecord.FieldFecha:
		m.ResetFecha()
		return nil
	case pqrrecord.FieldTipoPqr:
		m.ResetTipoPqr()
		return nil
	case pqrrecord.FieldNic:
		m.ResetNic()
		return nil
	case pqrrecord.FieldDocumentoIdentidad:
		m.ResetDocumentoIdentidad()
		return nil
	case pqrrecord.FieldNombresApellidos:
		m.ResetNombresApellidos()
		return nil
	case pqrrecord.FieldTelefono:
		m.ResetTelefono()
		return nil
	case pqrrecord.FieldCelular:
		m.ResetCelular()
		return nil
	case pqrrecord.FieldCorreoElectronico:
		m.ResetCorreoElectronico()
		return nil
	case pqrrecord.FieldCanalRespuesta:
		m.ResetCanalRespuesta()
		return nil
	case pqrrecord.FieldEstadoSolicitud:
		m.ResetEstadoSolicitud()
		return nil
	case pqrrecord.FieldNumeroReclamoSgc:
		m.ResetNumeroReclamoSgc()
		return nil
	case pqrrecord.FieldHashRegistro:
		m.ResetHashRegistro()
		return nil
	case pqrrecord.FieldArchivoOrigen:
		m.ResetArchivoOrigen()
		return nil
	case pqrrecord.FieldFechaProcesamiento:
		m.ResetFechaProcesamiento()
		return nil
	case pqrrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PQRRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PQRRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PQRRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PQRRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PQRRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PQRRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PQRRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PQRRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PQRRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PQRRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PQRRecord edge %s", name)
}

// UploadRegistryMutation represents an operation that mutates the UploadRegistry nodes in the graph.
type UploadRegistryMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	nombre_archivo     *string
	clave_s3           *string
	hash_archivo       *string
	empresa            *string
	numero_reclamo_sgc *string
	estado_carga       *string
	origen_carga       *string
	intentos           *int
	addintentos        *int
	metadatos          *map[string]string
	sincronizado_bd    *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*UploadRegistry, error)
	predicates         []predicate.UploadRegistry
}

var _ ent.Mutation = (*UploadRegistryMutation)(nil)

// uploadregistryOption allows management of the mutation configuration using functional options.
type uploadregistryOption func(*UploadRegistryMutation)

// newUploadRegistryMutation creates new mutation for the UploadRegistry entity.
func newUploadRegistryMutation(c config, op Op, opts ...uploadregistryOption) *UploadRegistryMutation {
	m := &UploadRegistryMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadRegistry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadRegistryID sets the ID field of the mutation.
func withUploadRegistryID(id uuid.UUID) uploadregistryOption {
	return func(m *UploadRegistryMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadRegistry
		)
		m.oldValue = func(ctx context.Context) (*UploadRegistry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadRegistry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadRegistry sets the old UploadRegistry of the mutation.
func withUploadRegistry(node *UploadRegistry) uploadregistryOption {
	return func(m *UploadRegistryMutation) {
		m.oldValue = func(context.Context) (*UploadRegistry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadRegistryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadRegistryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadRegistry entities.
func (m *UploadRegistryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadRegistryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadRegistryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadRegistry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (m *UploadRegistryMutation) SetNombreArchivo(s string) {
	m.nombre_archivo = &s
}

// NombreArchivo returns the value of the "nombre_archivo" field in the mutation.
func (m *UploadRegistryMutation) NombreArchivo() (r string, exists bool) {
	v := m.nombre_archivo
	if v == nil {
		return
	}
	return *v, true
}

// OldNombreArchivo returns the old "nombre_archivo" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldNombreArchivo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombreArchivo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombreArchivo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombreArchivo: %w", err)
	}
	return oldValue.NombreArchivo, nil
}

// ResetNombreArchivo resets all changes to the "nombre_archivo" field.
func (m *UploadRegistryMutation) ResetNombreArchivo() {
	m.nombre_archivo = nil
}

// SetClaveS3 sets the "clave_s3" field.
func (m *UploadRegistryMutation) SetClaveS3(s string) {
	m.clave_s3 = &s
}

// ClaveS3 returns the value of the "clave_s3" field in the mutation.
func (m *UploadRegistryMutation) ClaveS3() (r string, exists bool) {
	v := m.clave_s3
	if v == nil {
		return
	}
	return *v, true
}

// OldClaveS3 returns the old "clave_s3" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldClaveS3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaveS3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaveS3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaveS3: %w", err)
	}
	return oldValue.ClaveS3, nil
}

// ResetClaveS3 resets all changes to the "clave_s3" field.
func (m *UploadRegistryMutation) ResetClaveS3() {
	m.clave_s3 = nil
}

// SetHashArchivo sets the "hash_archivo" field.
func (m *UploadRegistryMutation) SetHashArchivo(s string) {
	m.hash_archivo = &s
}

// HashArchivo returns the value of the "hash_archivo" field in the mutation.
func (m *UploadRegistryMutation) HashArchivo() (r string, exists bool) {
	v := m.hash_archivo
	if v == nil {
		return
	}
	return *v, true
}

// OldHashArchivo returns the old "hash_archivo" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldHashArchivo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashArchivo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashArchivo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashArchivo: %w", err)
	}
	return oldValue.HashArchivo, nil
}

// ResetHashArchivo resets all changes to the "hash_archivo" field.
func (m *UploadRegistryMutation) ResetHashArchivo() {
	m.hash_archivo = nil
}

// SetEmpresa sets the "empresa" field.
func (m *UploadRegistryMutation) SetEmpresa(s string) {
	m.empresa = &s
}

// Empresa returns the value of the "empresa" field in the mutation.
func (m *UploadRegistryMutation) Empresa() (r string, exists bool) {
	v := m.empresa
	if v == nil {
		return
	}
	return *v, true
}

// OldEmpresa returns the old "empresa" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldEmpresa(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmpresa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmpresa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmpresa: %w", err)
	}
	return oldValue.Empresa, nil
}

// ResetEmpresa resets all changes to the "empresa" field.
func (m *UploadRegistryMutation) ResetEmpresa() {
	m.empresa = nil
}

// SetNumeroReclamoSgc sets the "numero_reclamo_sgc" field.
func (m *UploadRegistryMutation) SetNumeroReclamoSgc(s string) {
	m.numero_reclamo_sgc = &s
}

// NumeroReclamoSgc returns the value of the "numero_reclamo_sgc" field in the mutation.
func (m *UploadRegistryMutation) NumeroReclamoSgc() (r string, exists bool) {
	v := m.numero_reclamo_sgc
	if v == nil {
		return
	}
	return *v, true
}

// OldNumeroReclamoSgc returns the old "numero_reclamo_sgc" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldNumeroReclamoSgc(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumeroReclamoSgc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumeroReclamoSgc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumeroReclamoSgc: %w", err)
	}
	return oldValue.NumeroReclamoSgc, nil
}

// ClearNumeroReclamoSgc clears the value of the "numero_reclamo_sgc" field.
func (m *UploadRegistryMutation) ClearNumeroReclamoSgc() {
	m.numero_reclamo_sgc = nil
	m.clearedFields[uploadregistry.FieldNumeroReclamoSgc] = struct{}{}
}

// NumeroReclamoSgcCleared returns if the "numero_reclamo_sgc" field was cleared in this mutation.
func (m *UploadRegistryMutation) NumeroReclamoSgcCleared() bool {
	_, ok := m.clearedFields[uploadregistry.FieldNumeroReclamoSgc]
	return ok
}

// ResetNumeroReclamoSgc resets all changes to the "numero_reclamo_sgc" field.
func (m *UploadRegistryMutation) ResetNumeroReclamoSgc() {
	m.numero_reclamo_sgc = nil
	delete(m.clearedFields, uploadregistry.FieldNumeroReclamoSgc)
}

// SetEstadoCarga sets the "estado_carga" field.
func (m *UploadRegistryMutation) SetEstadoCarga(s string) {
	m.estado_carga = &s
}

// EstadoCarga returns the value of the "estado_carga" field in the mutation.
func (m *UploadRegistryMutation) EstadoCarga() (r string, exists bool) {
	v := m.estado_carga
	if v == nil {
		return
	}
	return *v, true
}

// OldEstadoCarga returns the old "estado_carga" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldEstadoCarga(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstadoCarga is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstadoCarga requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstadoCarga: %w", err)
	}
	return oldValue.EstadoCarga, nil
}

// ResetEstadoCarga resets all changes to the "estado_carga" field.
func (m *UploadRegistryMutation) ResetEstadoCarga() {
	m.estado_carga = nil
}

// SetOrigenCarga sets the "origen_carga" field.
func (m *UploadRegistryMutation) SetOrigenCarga(s string) {
	m.origen_carga = &s
}

// OrigenCarga returns the value of the "origen_carga" field in the mutation.
func (m *UploadRegistryMutation) OrigenCarga() (r string, exists bool) {
	v := m.origen_carga
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigenCarga returns the old "origen_carga" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldOrigenCarga(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigenCarga is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigenCarga requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigenCarga: %w", err)
	}
	return oldValue.OrigenCarga, nil
}

// ResetOrigenCarga resets all changes to the "origen_carga" field.
func (m *UploadRegistryMutation) ResetOrigenCarga() {
	m.origen_carga = nil
}

// SetIntentos sets the "intentos" field.
func (m *UploadRegistryMutation) SetIntentos(i int) {
	m.intentos = &i
	m.addintentos = nil
}

// Intentos returns the value of the "intentos" field in the mutation.
func (m *UploadRegistryMutation) Intentos() (r int, exists bool) {
	v := m.intentos
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentos returns the old "intentos" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldIntentos(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentos: %w", err)
	}
	return oldValue.Intentos, nil
}

// AddIntentos adds i to the "intentos" field.
func (m *UploadRegistryMutation) AddIntentos(i int) {
	if m.addintentos != nil {
		*m.addintentos += i
	} else {
		m.addintentos = &i
	}
}

// AddedIntentos returns the value that was added to the "intentos" field in this mutation.
func (m *UploadRegistryMutation) AddedIntentos() (r int, exists bool) {
	v := m.addintentos
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntentos resets all changes to the "intentos" field.
func (m *UploadRegistryMutation) ResetIntentos() {
	m.intentos = nil
	m.addintentos = nil
}

// SetMetadatos sets the "metadatos" field.
func (m *UploadRegistryMutation) SetMetadatos(value map[string]string) {
	m.metadatos = &value
}

// Metadatos returns the value of the "metadatos" field in the mutation.
func (m *UploadRegistryMutation) Metadatos() (r map[string]string, exists bool) {
	v := m.metadatos
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadatos returns the old "metadatos" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldMetadatos(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadatos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadatos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadatos: %w", err)
	}
	return oldValue.Metadatos, nil
}

// ClearMetadatos clears the value of the "metadatos" field.
func (m *UploadRegistryMutation) ClearMetadatos() {
	m.metadatos = nil
	m.clearedFields[uploadregistry.FieldMetadatos] = struct{}{}
}

// MetadatosCleared returns if the "metadatos" field was cleared in this mutation.
func (m *UploadRegistryMutation) MetadatosCleared() bool {
	_, ok := m.clearedFields[uploadregistry.FieldMetadatos]
	return ok
}

// ResetMetadatos resets all changes to the "metadatos" field.
func (m *UploadRegistryMutation) ResetMetadatos() {
	m.metadatos = nil
	delete(m.clearedFields, uploadregistry.FieldMetadatos)
}

// SetSincronizadoBd sets the "sincronizado_bd" field.
func (m *UploadRegistryMutation) SetSincronizadoBd(b bool) {
	m.sincronizado_bd = &b
}

// SincronizadoBd returns the value of the "sincronizado_bd" field in the mutation.
func (m *UploadRegistryMutation) SincronizadoBd() (r bool, exists bool) {
	v := m.sincronizado_bd
	if v == nil {
		return
	}
	return *v, true
}

// OldSincronizadoBd returns the old "sincronizado_bd" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldSincronizadoBd(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSincronizadoBd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSincronizadoBd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSincronizadoBd: %w", err)
	}
	return oldValue.SincronizadoBd, nil
}

// ResetSincronizadoBd resets all changes to the "sincronizado_bd" field.
func (m *UploadRegistryMutation) ResetSincronizadoBd() {
	m.sincronizado_bd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadRegistryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadRegistryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadRegistryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UploadRegistryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UploadRegistryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UploadRegistry entity.
// If the UploadRegistry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadRegistryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UploadRegistryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UploadRegistryMutation builder.
func (m *UploadRegistryMutation) Where(ps ...predicate.UploadRegistry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadRegistryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadRegistryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadRegistry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadRegistryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadRegistryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadRegistry).
func (m *UploadRegistryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadRegistryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.nombre_archivo != nil {
		fields = append(fields, uploadregistry.FieldNombreArchivo)
	}
	if m.clave_s3 != nil {
		fields = append(fields, uploadregistry.FieldClaveS3)
	}
	if m.hash_archivo != nil {
		fields = append(fields, uploadregistry.FieldHashArchivo)
	}
	if m.empresa != nil {
		fields = append(fields, uploadregistry.FieldEmpresa)
	}
	if m.numero_reclamo_sgc != nil {
		fields = append(fields, uploadregistry.FieldNumeroReclamoSgc)
	}
	if m.estado_carga != nil {
		fields = append(fields, uploadregistry.FieldEstadoCarga)
	}
	if m.origen_carga != nil {
		fields = append(fields, uploadregistry.FieldOrigenCarga)
	}
	if m.intentos != nil {
		fields = append(fields, uploadregistry.FieldIntentos)
	}
	if m.metadatos != nil {
		fields = append(fields, uploadregistry.FieldMetadatos)
	}
	if m.sincronizado_bd != nil {
		fields = append(fields, uploadregistry.FieldSincronizadoBd)
	}
	if m.created_at != nil {
		fields = append(fields, uploadregistry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, uploadregistry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadRegistryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadregistry.FieldNombreArchivo:
		return m.NombreArchivo()
	case uploadregistry.FieldClaveS3:
		return m.ClaveS3()
	case uploadregistry.FieldHashArchivo:
		return m.HashArchivo()
	case uploadregistry.FieldEmpresa:
		return m.Empresa()
	case uploadregistry.FieldNumeroReclamoSgc:
		return m.NumeroReclamoSgc()
	case uploadregistry.FieldEstadoCarga:
		return m.EstadoCarga()
	case uploadregistry.FieldOrigenCarga:
		return m.OrigenCarga()
	case uploadregistry.FieldIntentos:
		return m.Intentos()
	case uploadregistry.FieldMetadatos:
		return m.Metadatos()
	case uploadregistry.FieldSincronizadoBd:
		return m.SincronizadoBd()
	case uploadregistry.FieldCreatedAt:
		return m.CreatedAt()
	case uploadregistry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadRegistryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadregistry.FieldNombreArchivo:
		return m.OldNombreArchivo(ctx)
	case uploadregistry.FieldClaveS3:
		return m.OldClaveS3(ctx)
	case uploadregistry.FieldHashArchivo:
		return m.OldHashArchivo(ctx)
	case uploadregistry.FieldEmpresa:
		return m.OldEmpresa(ctx)
	case uploadregistry.FieldNumeroReclamoSgc:
		return m.OldNumeroReclamoSgc(ctx)
	case uploadregistry.FieldEstadoCarga:
		return m.OldEstadoCarga(ctx)
	case uploadregistry.FieldOrigenCarga:
		return m.OldOrigenCarga(ctx)
	case uploadregistry.FieldIntentos:
		return m.OldIntentos(ctx)
	case uploadregistry.FieldMetadatos:
		return m.OldMetadatos(ctx)
	case uploadregistry.FieldSincronizadoBd:
		return m.OldSincronizadoBd(ctx)
	case uploadregistry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case uploadregistry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadRegistry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadRegistryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadregistry.FieldNombreArchivo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombreArchivo(v)
		return nil
	case uploadregistry.FieldClaveS3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaveS3(v)
		return nil
	case uploadregistry.FieldHashArchivo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashArchivo(v)
		return nil
	case uploadregistry.FieldEmpresa:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmpresa(v)
		return nil
	case uploadregistry.FieldNumeroReclamoSgc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumeroReclamoSgc(v)
		return nil
	case uploadregistry.FieldEstadoCarga:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstadoCarga(v)
		return nil
	case uploadregistry.FieldOrigenCarga:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigenCarga(v)
		return nil
	case uploadregistry.FieldIntentos:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentos(v)
		return nil
	case uploadregistry.FieldMetadatos:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadatos(v)
		return nil
	case uploadregistry.FieldSincronizadoBd:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSincronizadoBd(v)
		return nil
	case uploadregistry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case uploadregistry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadRegistry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadRegistryMutation) AddedFields() []string {
	var fields []string
	if m.addintentos != nil {
		fields = append(fields, uploadregistry.FieldIntentos)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadRegistryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadregistry.FieldIntentos:
		return m.AddedIntentos()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadRegistryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadregistry.FieldIntentos:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntentos(v)
		return nil
	}
	return fmt.Errorf("unknown UploadRegistry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadRegistryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uploadregistry.FieldNumeroReclamoSgc) {
		fields = append(fields, uploadregistry.FieldNumeroReclamoSgc)
	}
	if m.FieldCleared(uploadregistry.FieldMetadatos) {
		fields = append(fields, uploadregistry.FieldMetadatos)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadRegistryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadRegistryMutation) ClearField(name string) error {
	switch name {
	case uploadregistry.FieldNumeroReclamoSgc:
		m.ClearNumeroReclamoSgc()
		return nil
	case uploadregistry.FieldMetadatos:
		m.ClearMetadatos()
		return nil
	}
	return fmt.Errorf("unknown UploadRegistry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadRegistryMutation) ResetField(name string) error {
	switch name {
	case uploadregistry.FieldNombreArchivo:
		m.ResetNombreArchivo()
		return nil
	case uploadregistry.FieldClaveS3:
		m.ResetClaveS3()
		return nil
	case uploadregistry.FieldHashArchivo:
		m.ResetHashArchivo()
		return nil
	case uploadregistry.FieldEmpresa:
		m.ResetEmpresa()
		return nil
	case uploadregistry.FieldNumeroReclamoSgc:
		m.ResetNumeroReclamoSgc()
		return nil
	case uploadregistry.FieldEstadoCarga:
		m.ResetEstadoCarga()
		return nil
	case uploadregistry.FieldOrigenCarga:
		m.ResetOrigenCarga()
		return nil
	case uploadregistry.FieldIntentos:
		m.ResetIntentos()
		return nil
	case uploadregistry.FieldMetadatos:
		m.ResetMetadatos()
		return nil
	case uploadregistry.FieldSincronizadoBd:
		m.ResetSincronizadoBd()
		return nil
	case uploadregistry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case uploadregistry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadRegistry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadRegistryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadRegistryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadRegistryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadRegistryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadRegistryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadRegistryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadRegistryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UploadRegistry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadRegistryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UploadRegistry edge %s", name)
}
