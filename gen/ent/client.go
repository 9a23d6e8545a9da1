// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dfgiraldo/pqr-pipeline/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/flowrun"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/pqrrecord"
	"github.com/dfgiraldo/pqr-pipeline/gen/ent/uploadregistry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FlowRun is the client for interacting with the FlowRun builders.
	FlowRun *FlowRunClient
	// PQRRecord is the client for interacting with the PQRRecord builders.
	PQRRecord *PQRRecordClient
	// UploadRegistry is the client for interacting with the UploadRegistry builders.
	UploadRegistry *UploadRegistryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FlowRun = NewFlowRunClient(c.config)
	c.PQRRecord = NewPQRRecordClient(c.config)
	c.UploadRegistry = NewUploadRegistryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		FlowRun:        NewFlowRunClient(cfg),
		PQRRecord:      NewPQRRecordClient(cfg),
		UploadRegistry: NewUploadRegistryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		FlowRun:        NewFlowRunClient(cfg),
		PQRRecord:      NewPQRRecordClient(cfg),
		UploadRegistry: NewUploadRegistryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FlowRun.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.FlowRun.Use(hooks...)
	c.PQRRecord.Use(hooks...)
	c.UploadRegistry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FlowRun.Intercept(interceptors...)
	c.PQRRecord.Intercept(interceptors...)
	c.UploadRegistry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FlowRunMutation:
		return c.FlowRun.mutate(ctx, m)
	case *PQRRecordMutation:
		return c.PQRRecord.mutate(ctx, m)
	case *UploadRegistryMutation:
		return c.UploadRegistry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FlowRunClient is a client for the FlowRun schema.
type FlowRunClient struct {
	config
}

// NewFlowRunClient returns a client for the FlowRun from the given config.
func NewFlowRunClient(c config) *FlowRunClient {
	return &FlowRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flowrun.Hooks(f(g(h())))`.
func (c *FlowRunClient) Use(hooks ...Hook) {
	c.hooks.FlowRun = append(c.hooks.FlowRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flowrun.Intercept(f(g(h())))`.
func (c *FlowRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.FlowRun = append(c.inters.FlowRun, interceptors...)
}

// Create returns a builder for creating a FlowRun entity.
func (c *FlowRunClient) Create() *FlowRunCreate {
	mutation := newFlowRunMutation(c.config, OpCreate)
	return &FlowRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FlowRun entities.
func (c *FlowRunClient) CreateBulk(builders ...*FlowRunCreate) *FlowRunCreateBulk {
	return &FlowRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlowRunClient) MapCreateBulk(slice any, setFunc func(*FlowRunCreate, int)) *FlowRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlowRunCreateBulk{err: fmt.Errorf("calling to FlowRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlowRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlowRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FlowRun.
func (c *FlowRunClient) Update() *FlowRunUpdate {
	mutation := newFlowRunMutation(c.config, OpUpdate)
	return &FlowRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlowRunClient) UpdateOne(_m *FlowRun) *FlowRunUpdateOne {
	mutation := newFlowRunMutation(c.config, OpUpdateOne, withFlowRun(_m))
	return &FlowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlowRunClient) UpdateOneID(id uuid.UUID) *FlowRunUpdateOne {
	mutation := newFlowRunMutation(c.config, OpUpdateOne, withFlowRunID(id))
	return &FlowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FlowRun.
func (c *FlowRunClient) Delete() *FlowRunDelete {
	mutation := newFlowRunMutation(c.config, OpDelete)
	return &FlowRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlowRunClient) DeleteOne(_m *FlowRun) *FlowRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlowRunClient) DeleteOneID(id uuid.UUID) *FlowRunDeleteOne {
	builder := c.Delete().Where(flowrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlowRunDeleteOne{builder}
}

// Query returns a query builder for FlowRun.
func (c *FlowRunClient) Query() *FlowRunQuery {
	return &FlowRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlowRun},
		inters: c.Interceptors(),
	}
}

// Get returns a FlowRun entity by its id.
func (c *FlowRunClient) Get(ctx context.Context, id uuid.UUID) (*FlowRun, error) {
	return c.Query().Where(flowrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlowRunClient) GetX(ctx context.Context, id uuid.UUID) *FlowRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FlowRunClient) Hooks() []Hook {
	return c.hooks.FlowRun
}

// Interceptors returns the client interceptors.
func (c *FlowRunClient) Interceptors() []Interceptor {
	return c.inters.FlowRun
}

func (c *FlowRunClient) mutate(ctx context.Context, m *FlowRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlowRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlowRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlowRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FlowRun mutation op: %q", m.Op())
	}
}

// PQRRecordClient is a client for the PQRRecord schema.
type PQRRecordClient struct {
	config
}

// NewPQRRecordClient returns a client for the PQRRecord from the given config.
func NewPQRRecordClient(c config) *PQRRecordClient {
	return &PQRRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pqrrecord.Hooks(f(g(h())))`.
func (c *PQRRecordClient) Use(hooks ...Hook) {
	c.hooks.PQRRecord = append(c.hooks.PQRRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pqrrecord.Intercept(f(g(h())))`.
func (c *PQRRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PQRRecord = append(c.inters.PQRRecord, interceptors...)
}

// Create returns a builder for creating a PQRRecord entity.
func (c *PQRRecordClient) Create() *PQRRecordCreate {
	mutation := newPQRRecordMutation(c.config, OpCreate)
	return &PQRRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PQRRecord entities.
func (c *PQRRecordClient) CreateBulk(builders ...*PQRRecordCreate) *PQRRecordCreateBulk {
	return &PQRRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PQRRecordClient) MapCreateBulk(slice any, setFunc func(*PQRRecordCreate, int)) *PQRRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PQRRecordCreateBulk{err: fmt.Errorf("calling to PQRRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PQRRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PQRRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PQRRecord.
func (c *PQRRecordClient) Update() *PQRRecordUpdate {
	mutation := newPQRRecordMutation(c.config, OpUpdate)
	return &PQRRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PQRRecordClient) UpdateOne(_m *PQRRecord) *PQRRecordUpdateOne {
	mutation := newPQRRecordMutation(c.config, OpUpdateOne, withPQRRecord(_m))
	return &PQRRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PQRRecordClient) UpdateOneID(id uuid.UUID) *PQRRecordUpdateOne {
	mutation := newPQRRecordMutation(c.config, OpUpdateOne, withPQRRecordID(id))
	return &PQRRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PQRRecord.
func (c *PQRRecordClient) Delete() *PQRRecordDelete {
	mutation := newPQRRecordMutation(c.config, OpDelete)
	return &PQRRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PQRRecordClient) DeleteOne(_m *PQRRecord) *PQRRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PQRRecordClient) DeleteOneID(id uuid.UUID) *PQRRecordDeleteOne {
	builder := c.Delete().Where(pqrrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PQRRecordDeleteOne{builder}
}

// Query returns a query builder for PQRRecord.
func (c *PQRRecordClient) Query() *PQRRecordQuery {
	return &PQRRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePQRRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PQRRecord entity by its id.
func (c *PQRRecordClient) Get(ctx context.Context, id uuid.UUID) (*PQRRecord, error) {
	return c.Query().Where(pqrrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PQRRecordClient) GetX(ctx context.Context, id uuid.UUID) *PQRRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PQRRecordClient) Hooks() []Hook {
	return c.hooks.PQRRecord
}

// Interceptors returns the client interceptors.
func (c *PQRRecordClient) Interceptors() []Interceptor {
	return c.inters.PQRRecord
}

func (c *PQRRecordClient) mutate(ctx context.Context, m *PQRRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PQRRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PQRRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PQRRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PQRRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PQRRecord mutation op: %q", m.Op())
	}
}

// UploadRegistryClient is a client for the UploadRegistry schema.
type UploadRegistryClient struct {
	config
}

// NewUploadRegistryClient returns a client for the UploadRegistry from the given config.
func NewUploadRegistryClient(c config) *UploadRegistryClient {
	return &UploadRegistryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadregistry.Hooks(f(g(h())))`.
func (c *UploadRegistryClient) Use(hooks ...Hook) {
	c.hooks.UploadRegistry = append(c.hooks.UploadRegistry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadregistry.Intercept(f(g(h())))`.
func (c *UploadRegistryClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadRegistry = append(c.inters.UploadRegistry, interceptors...)
}

// Create returns a builder for creating a UploadRegistry entity.
func (c *UploadRegistryClient) Create() *UploadRegistryCreate {
	mutation := newUploadRegistryMutation(c.config, OpCreate)
	return &UploadRegistryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadRegistry entities.
func (c *UploadRegistryClient) CreateBulk(builders ...*UploadRegistryCreate) *UploadRegistryCreateBulk {
	return &UploadRegistryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadRegistryClient) MapCreateBulk(slice any, setFunc func(*UploadRegistryCreate, int)) *UploadRegistryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadRegistryCreateBulk{err: fmt.Errorf("calling to UploadRegistryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadRegistryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadRegistryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadRegistry.
func (c *UploadRegistryClient) Update() *UploadRegistryUpdate {
	mutation := newUploadRegistryMutation(c.config, OpUpdate)
	return &UploadRegistryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadRegistryClient) UpdateOne(_m *UploadRegistry) *UploadRegistryUpdateOne {
	mutation := newUploadRegistryMutation(c.config, OpUpdateOne, withUploadRegistry(_m))
	return &UploadRegistryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadRegistryClient) UpdateOneID(id uuid.UUID) *UploadRegistryUpdateOne {
	mutation := newUploadRegistryMutation(c.config, OpUpdateOne, withUploadRegistryID(id))
	return &UploadRegistryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadRegistry.
func (c *UploadRegistryClient) Delete() *UploadRegistryDelete {
	mutation := newUploadRegistryMutation(c.config, OpDelete)
	return &UploadRegistryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadRegistryClient) DeleteOne(_m *UploadRegistry) *UploadRegistryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadRegistryClient) DeleteOneID(id uuid.UUID) *UploadRegistryDeleteOne {
	builder := c.Delete().Where(uploadregistry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadRegistryDeleteOne{builder}
}

// Query returns a query builder for UploadRegistry.
func (c *UploadRegistryClient) Query() *UploadRegistryQuery {
	return &UploadRegistryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadRegistry},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadRegistry entity by its id.
func (c *UploadRegistryClient) Get(ctx context.Context, id uuid.UUID) (*UploadRegistry, error) {
	return c.Query().Where(uploadregistry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadRegistryClient) GetX(ctx context.Context, id uuid.UUID) *UploadRegistry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UploadRegistryClient) Hooks() []Hook {
	return c.hooks.UploadRegistry
}

// Interceptors returns the client interceptors.
func (c *UploadRegistryClient) Interceptors() []Interceptor {
	return c.inters.UploadRegistry
}

func (c *UploadRegistryClient) mutate(ctx context.Context, m *UploadRegistryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadRegistryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadRegistryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadRegistryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadRegistryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UploadRegistry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FlowRun, PQRRecord, UploadRegistry []ent.Hook
	}
	inters struct {
		FlowRun, PQRRecord, UploadRegistry []ent.Interceptor
	}
)
