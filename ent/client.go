// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/templeworks/lingqian/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/templeworks/lingqian/ent/interpretationtask"
	"github.com/templeworks/lingqian/ent/tasktransition"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// InterpretationTask is the client for interacting with the InterpretationTask builders.
	InterpretationTask *InterpretationTaskClient
	// TaskTransition is the client for interacting with the TaskTransition builders.
	TaskTransition *TaskTransitionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.InterpretationTask = NewInterpretationTaskClient(c.config)
	c.TaskTransition = NewTaskTransitionClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		InterpretationTask: NewInterpretationTaskClient(cfg),
		TaskTransition:     NewTaskTransitionClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		InterpretationTask: NewInterpretationTaskClient(cfg),
		TaskTransition:     NewTaskTransitionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		InterpretationTask.
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
	c.InterpretationTask.Use(hooks...)
	c.TaskTransition.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.InterpretationTask.Intercept(interceptors...)
	c.TaskTransition.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InterpretationTaskMutation:
		return c.InterpretationTask.mutate(ctx, m)
	case *TaskTransitionMutation:
		return c.TaskTransition.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InterpretationTaskClient is a client for the InterpretationTask schema.
type InterpretationTaskClient struct {
	config
}

// NewInterpretationTaskClient returns a client for the InterpretationTask from the given config.
func NewInterpretationTaskClient(c config) *InterpretationTaskClient {
	return &InterpretationTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interpretationtask.Hooks(f(g(h())))`.
func (c *InterpretationTaskClient) Use(hooks ...Hook) {
	c.hooks.InterpretationTask = append(c.hooks.InterpretationTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interpretationtask.Intercept(f(g(h())))`.
func (c *InterpretationTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterpretationTask = append(c.inters.InterpretationTask, interceptors...)
}

// Create returns a builder for creating a InterpretationTask entity.
func (c *InterpretationTaskClient) Create() *InterpretationTaskCreate {
	mutation := newInterpretationTaskMutation(c.config, OpCreate)
	return &InterpretationTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterpretationTask entities.
func (c *InterpretationTaskClient) CreateBulk(builders ...*InterpretationTaskCreate) *InterpretationTaskCreateBulk {
	return &InterpretationTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterpretationTaskClient) MapCreateBulk(slice any, setFunc func(*InterpretationTaskCreate, int)) *InterpretationTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterpretationTaskCreateBulk{err: fmt.Errorf("calling to InterpretationTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterpretationTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterpretationTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterpretationTask.
func (c *InterpretationTaskClient) Update() *InterpretationTaskUpdate {
	mutation := newInterpretationTaskMutation(c.config, OpUpdate)
	return &InterpretationTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterpretationTaskClient) UpdateOne(_m *InterpretationTask) *InterpretationTaskUpdateOne {
	mutation := newInterpretationTaskMutation(c.config, OpUpdateOne, withInterpretationTask(_m))
	return &InterpretationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterpretationTaskClient) UpdateOneID(id string) *InterpretationTaskUpdateOne {
	mutation := newInterpretationTaskMutation(c.config, OpUpdateOne, withInterpretationTaskID(id))
	return &InterpretationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterpretationTask.
func (c *InterpretationTaskClient) Delete() *InterpretationTaskDelete {
	mutation := newInterpretationTaskMutation(c.config, OpDelete)
	return &InterpretationTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterpretationTaskClient) DeleteOne(_m *InterpretationTask) *InterpretationTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterpretationTaskClient) DeleteOneID(id string) *InterpretationTaskDeleteOne {
	builder := c.Delete().Where(interpretationtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterpretationTaskDeleteOne{builder}
}

// Query returns a query builder for InterpretationTask.
func (c *InterpretationTaskClient) Query() *InterpretationTaskQuery {
	return &InterpretationTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterpretationTask},
		inters: c.Interceptors(),
	}
}

// Get returns a InterpretationTask entity by its id.
func (c *InterpretationTaskClient) Get(ctx context.Context, id string) (*InterpretationTask, error) {
	return c.Query().Where(interpretationtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterpretationTaskClient) GetX(ctx context.Context, id string) *InterpretationTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTransitions queries the transitions edge of a InterpretationTask.
func (c *InterpretationTaskClient) QueryTransitions(_m *InterpretationTask) *TaskTransitionQuery {
	query := (&TaskTransitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interpretationtask.Table, interpretationtask.FieldID, id),
			sqlgraph.To(tasktransition.Table, tasktransition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interpretationtask.TransitionsTable, interpretationtask.TransitionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InterpretationTaskClient) Hooks() []Hook {
	return c.hooks.InterpretationTask
}

// Interceptors returns the client interceptors.
func (c *InterpretationTaskClient) Interceptors() []Interceptor {
	return c.inters.InterpretationTask
}

func (c *InterpretationTaskClient) mutate(ctx context.Context, m *InterpretationTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterpretationTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterpretationTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterpretationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterpretationTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterpretationTask mutation op: %q", m.Op())
	}
}

// TaskTransitionClient is a client for the TaskTransition schema.
type TaskTransitionClient struct {
	config
}

// NewTaskTransitionClient returns a client for the TaskTransition from the given config.
func NewTaskTransitionClient(c config) *TaskTransitionClient {
	return &TaskTransitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tasktransition.Hooks(f(g(h())))`.
func (c *TaskTransitionClient) Use(hooks ...Hook) {
	c.hooks.TaskTransition = append(c.hooks.TaskTransition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tasktransition.Intercept(f(g(h())))`.
func (c *TaskTransitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskTransition = append(c.inters.TaskTransition, interceptors...)
}

// Create returns a builder for creating a TaskTransition entity.
func (c *TaskTransitionClient) Create() *TaskTransitionCreate {
	mutation := newTaskTransitionMutation(c.config, OpCreate)
	return &TaskTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskTransition entities.
func (c *TaskTransitionClient) CreateBulk(builders ...*TaskTransitionCreate) *TaskTransitionCreateBulk {
	return &TaskTransitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskTransitionClient) MapCreateBulk(slice any, setFunc func(*TaskTransitionCreate, int)) *TaskTransitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskTransitionCreateBulk{err: fmt.Errorf("calling to TaskTransitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskTransitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskTransitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskTransition.
func (c *TaskTransitionClient) Update() *TaskTransitionUpdate {
	mutation := newTaskTransitionMutation(c.config, OpUpdate)
	return &TaskTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskTransitionClient) UpdateOne(_m *TaskTransition) *TaskTransitionUpdateOne {
	mutation := newTaskTransitionMutation(c.config, OpUpdateOne, withTaskTransition(_m))
	return &TaskTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskTransitionClient) UpdateOneID(id int) *TaskTransitionUpdateOne {
	mutation := newTaskTransitionMutation(c.config, OpUpdateOne, withTaskTransitionID(id))
	return &TaskTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskTransition.
func (c *TaskTransitionClient) Delete() *TaskTransitionDelete {
	mutation := newTaskTransitionMutation(c.config, OpDelete)
	return &TaskTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskTransitionClient) DeleteOne(_m *TaskTransition) *TaskTransitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskTransitionClient) DeleteOneID(id int) *TaskTransitionDeleteOne {
	builder := c.Delete().Where(tasktransition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskTransitionDeleteOne{builder}
}

// Query returns a query builder for TaskTransition.
func (c *TaskTransitionClient) Query() *TaskTransitionQuery {
	return &TaskTransitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskTransition},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskTransition entity by its id.
func (c *TaskTransitionClient) Get(ctx context.Context, id int) (*TaskTransition, error) {
	return c.Query().Where(tasktransition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskTransitionClient) GetX(ctx context.Context, id int) *TaskTransition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskTransition.
func (c *TaskTransitionClient) QueryTask(_m *TaskTransition) *InterpretationTaskQuery {
	query := (&InterpretationTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tasktransition.Table, tasktransition.FieldID, id),
			sqlgraph.To(interpretationtask.Table, interpretationtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tasktransition.TaskTable, tasktransition.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskTransitionClient) Hooks() []Hook {
	return c.hooks.TaskTransition
}

// Interceptors returns the client interceptors.
func (c *TaskTransitionClient) Interceptors() []Interceptor {
	return c.inters.TaskTransition
}

func (c *TaskTransitionClient) mutate(ctx context.Context, m *TaskTransitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskTransition mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		InterpretationTask, TaskTransition []ent.Hook
	}
	inters struct {
		InterpretationTask, TaskTransition []ent.Interceptor
	}
)
