// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/greentrust/esg-audit/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/greentrust/esg-audit/gen/ent/auditrecord"
	"github.com/greentrust/esg-audit/gen/ent/invoicedocument"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditRecord is the client for interacting with the AuditRecord builders.
	AuditRecord *AuditRecordClient
	// InvoiceDocument is the client for interacting with the InvoiceDocument builders.
	InvoiceDocument *InvoiceDocumentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditRecord = NewAuditRecordClient(c.config)
	c.InvoiceDocument = NewInvoiceDocumentClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AuditRecord:     NewAuditRecordClient(cfg),
		InvoiceDocument: NewInvoiceDocumentClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AuditRecord:     NewAuditRecordClient(cfg),
		InvoiceDocument: NewInvoiceDocumentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditRecord.
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
	c.AuditRecord.Use(hooks...)
	c.InvoiceDocument.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AuditRecord.Intercept(interceptors...)
	c.InvoiceDocument.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditRecordMutation:
		return c.AuditRecord.mutate(ctx, m)
	case *InvoiceDocumentMutation:
		return c.InvoiceDocument.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditRecordClient is a client for the AuditRecord schema.
type AuditRecordClient struct {
	config
}

// NewAuditRecordClient returns a client for the AuditRecord from the given config.
func NewAuditRecordClient(c config) *AuditRecordClient {
	return &AuditRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditrecord.Hooks(f(g(h())))`.
func (c *AuditRecordClient) Use(hooks ...Hook) {
	c.hooks.AuditRecord = append(c.hooks.AuditRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditrecord.Intercept(f(g(h())))`.
func (c *AuditRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditRecord = append(c.inters.AuditRecord, interceptors...)
}

// Create returns a builder for creating a AuditRecord entity.
func (c *AuditRecordClient) Create() *AuditRecordCreate {
	mutation := newAuditRecordMutation(c.config, OpCreate)
	return &AuditRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditRecord entities.
func (c *AuditRecordClient) CreateBulk(builders ...*AuditRecordCreate) *AuditRecordCreateBulk {
	return &AuditRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditRecordClient) MapCreateBulk(slice any, setFunc func(*AuditRecordCreate, int)) *AuditRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditRecordCreateBulk{err: fmt.Errorf("calling to AuditRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditRecord.
func (c *AuditRecordClient) Update() *AuditRecordUpdate {
	mutation := newAuditRecordMutation(c.config, OpUpdate)
	return &AuditRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditRecordClient) UpdateOne(_m *AuditRecord) *AuditRecordUpdateOne {
	mutation := newAuditRecordMutation(c.config, OpUpdateOne, withAuditRecord(_m))
	return &AuditRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditRecordClient) UpdateOneID(id uuid.UUID) *AuditRecordUpdateOne {
	mutation := newAuditRecordMutation(c.config, OpUpdateOne, withAuditRecordID(id))
	return &AuditRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditRecord.
func (c *AuditRecordClient) Delete() *AuditRecordDelete {
	mutation := newAuditRecordMutation(c.config, OpDelete)
	return &AuditRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditRecordClient) DeleteOne(_m *AuditRecord) *AuditRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditRecordClient) DeleteOneID(id uuid.UUID) *AuditRecordDeleteOne {
	builder := c.Delete().Where(auditrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditRecordDeleteOne{builder}
}

// Query returns a query builder for AuditRecord.
func (c *AuditRecordClient) Query() *AuditRecordQuery {
	return &AuditRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditRecord entity by its id.
func (c *AuditRecordClient) Get(ctx context.Context, id uuid.UUID) (*AuditRecord, error) {
	return c.Query().Where(auditrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditRecordClient) GetX(ctx context.Context, id uuid.UUID) *AuditRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a AuditRecord.
func (c *AuditRecordClient) QueryDocument(_m *AuditRecord) *InvoiceDocumentQuery {
	query := (&InvoiceDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditrecord.Table, auditrecord.FieldID, id),
			sqlgraph.To(invoicedocument.Table, invoicedocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditrecord.DocumentTable, auditrecord.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditRecordClient) Hooks() []Hook {
	return c.hooks.AuditRecord
}

// Interceptors returns the client interceptors.
func (c *AuditRecordClient) Interceptors() []Interceptor {
	return c.inters.AuditRecord
}

func (c *AuditRecordClient) mutate(ctx context.Context, m *AuditRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditRecord mutation op: %q", m.Op())
	}
}

// InvoiceDocumentClient is a client for the InvoiceDocument schema.
type InvoiceDocumentClient struct {
	config
}

// NewInvoiceDocumentClient returns a client for the InvoiceDocument from the given config.
func NewInvoiceDocumentClient(c config) *InvoiceDocumentClient {
	return &InvoiceDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoicedocument.Hooks(f(g(h())))`.
func (c *InvoiceDocumentClient) Use(hooks ...Hook) {
	c.hooks.InvoiceDocument = append(c.hooks.InvoiceDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoicedocument.Intercept(f(g(h())))`.
func (c *InvoiceDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceDocument = append(c.inters.InvoiceDocument, interceptors...)
}

// Create returns a builder for creating a InvoiceDocument entity.
func (c *InvoiceDocumentClient) Create() *InvoiceDocumentCreate {
	mutation := newInvoiceDocumentMutation(c.config, OpCreate)
	return &InvoiceDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceDocument entities.
func (c *InvoiceDocumentClient) CreateBulk(builders ...*InvoiceDocumentCreate) *InvoiceDocumentCreateBulk {
	return &InvoiceDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceDocumentClient) MapCreateBulk(slice any, setFunc func(*InvoiceDocumentCreate, int)) *InvoiceDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceDocumentCreateBulk{err: fmt.Errorf("calling to InvoiceDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceDocument.
func (c *InvoiceDocumentClient) Update() *InvoiceDocumentUpdate {
	mutation := newInvoiceDocumentMutation(c.config, OpUpdate)
	return &InvoiceDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceDocumentClient) UpdateOne(_m *InvoiceDocument) *InvoiceDocumentUpdateOne {
	mutation := newInvoiceDocumentMutation(c.config, OpUpdateOne, withInvoiceDocument(_m))
	return &InvoiceDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceDocumentClient) UpdateOneID(id uuid.UUID) *InvoiceDocumentUpdateOne {
	mutation := newInvoiceDocumentMutation(c.config, OpUpdateOne, withInvoiceDocumentID(id))
	return &InvoiceDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceDocument.
func (c *InvoiceDocumentClient) Delete() *InvoiceDocumentDelete {
	mutation := newInvoiceDocumentMutation(c.config, OpDelete)
	return &InvoiceDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceDocumentClient) DeleteOne(_m *InvoiceDocument) *InvoiceDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceDocumentClient) DeleteOneID(id uuid.UUID) *InvoiceDocumentDeleteOne {
	builder := c.Delete().Where(invoicedocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceDocumentDeleteOne{builder}
}

// Query returns a query builder for InvoiceDocument.
func (c *InvoiceDocumentClient) Query() *InvoiceDocumentQuery {
	return &InvoiceDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceDocument entity by its id.
func (c *InvoiceDocumentClient) Get(ctx context.Context, id uuid.UUID) (*InvoiceDocument, error) {
	return c.Query().Where(invoicedocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceDocumentClient) GetX(ctx context.Context, id uuid.UUID) *InvoiceDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudits queries the audits edge of a InvoiceDocument.
func (c *InvoiceDocumentClient) QueryAudits(_m *InvoiceDocument) *AuditRecordQuery {
	query := (&AuditRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoicedocument.Table, invoicedocument.FieldID, id),
			sqlgraph.To(auditrecord.Table, auditrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoicedocument.AuditsTable, invoicedocument.AuditsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceDocumentClient) Hooks() []Hook {
	return c.hooks.InvoiceDocument
}

// Interceptors returns the client interceptors.
func (c *InvoiceDocumentClient) Interceptors() []Interceptor {
	return c.inters.InvoiceDocument
}

func (c *InvoiceDocumentClient) mutate(ctx context.Context, m *InvoiceDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceDocument mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditRecord, InvoiceDocument []ent.Hook
	}
	inters struct {
		AuditRecord, InvoiceDocument []ent.Interceptor
	}
)
