// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/adaptiq/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/answerevent"
	"github.com/abhisek/adaptiq/ent/evaluationevent"
	"github.com/abhisek/adaptiq/ent/masterytransitionevent"
	"github.com/abhisek/adaptiq/ent/probeevent"
	"github.com/abhisek/adaptiq/ent/profile"
	"github.com/abhisek/adaptiq/ent/quizsessionevent"
	"github.com/abhisek/adaptiq/ent/snapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// EvaluationEvent is the client for interacting with the EvaluationEvent builders.
	EvaluationEvent *EvaluationEventClient
	// MasteryTransitionEvent is the client for interacting with the MasteryTransitionEvent builders.
	MasteryTransitionEvent *MasteryTransitionEventClient
	// ProbeEvent is the client for interacting with the ProbeEvent builders.
	ProbeEvent *ProbeEventClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// QuizSessionEvent is the client for interacting with the QuizSessionEvent builders.
	QuizSessionEvent *QuizSessionEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.EvaluationEvent = NewEvaluationEventClient(c.config)
	c.MasteryTransitionEvent = NewMasteryTransitionEventClient(c.config)
	c.ProbeEvent = NewProbeEventClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.QuizSessionEvent = NewQuizSessionEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
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
		ctx:                    ctx,
		config:                 cfg,
		AnswerEvent:            NewAnswerEventClient(cfg),
		EvaluationEvent:        NewEvaluationEventClient(cfg),
		MasteryTransitionEvent: NewMasteryTransitionEventClient(cfg),
		ProbeEvent:             NewProbeEventClient(cfg),
		Profile:                NewProfileClient(cfg),
		QuizSessionEvent:       NewQuizSessionEventClient(cfg),
		Snapshot:               NewSnapshotClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		AnswerEvent:            NewAnswerEventClient(cfg),
		EvaluationEvent:        NewEvaluationEventClient(cfg),
		MasteryTransitionEvent: NewMasteryTransitionEventClient(cfg),
		ProbeEvent:             NewProbeEventClient(cfg),
		Profile:                NewProfileClient(cfg),
		QuizSessionEvent:       NewQuizSessionEventClient(cfg),
		Snapshot:               NewSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AnswerEvent, c.EvaluationEvent, c.MasteryTransitionEvent, c.ProbeEvent,
		c.Profile, c.QuizSessionEvent, c.Snapshot,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerEvent, c.EvaluationEvent, c.MasteryTransitionEvent, c.ProbeEvent,
		c.Profile, c.QuizSessionEvent, c.Snapshot,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *EvaluationEventMutation:
		return c.EvaluationEvent.mutate(ctx, m)
	case *MasteryTransitionEventMutation:
		return c.MasteryTransitionEvent.mutate(ctx, m)
	case *ProbeEventMutation:
		return c.ProbeEvent.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *QuizSessionEventMutation:
		return c.QuizSessionEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// EvaluationEventClient is a client for the EvaluationEvent schema.
type EvaluationEventClient struct {
	config
}

// NewEvaluationEventClient returns a client for the EvaluationEvent from the given config.
func NewEvaluationEventClient(c config) *EvaluationEventClient {
	return &EvaluationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationevent.Hooks(f(g(h())))`.
func (c *EvaluationEventClient) Use(hooks ...Hook) {
	c.hooks.EvaluationEvent = append(c.hooks.EvaluationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationevent.Intercept(f(g(h())))`.
func (c *EvaluationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationEvent = append(c.inters.EvaluationEvent, interceptors...)
}

// Create returns a builder for creating a EvaluationEvent entity.
func (c *EvaluationEventClient) Create() *EvaluationEventCreate {
	mutation := newEvaluationEventMutation(c.config, OpCreate)
	return &EvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationEvent entities.
func (c *EvaluationEventClient) CreateBulk(builders ...*EvaluationEventCreate) *EvaluationEventCreateBulk {
	return &EvaluationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationEventClient) MapCreateBulk(slice any, setFunc func(*EvaluationEventCreate, int)) *EvaluationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationEventCreateBulk{err: fmt.Errorf("calling to EvaluationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationEvent.
func (c *EvaluationEventClient) Update() *EvaluationEventUpdate {
	mutation := newEvaluationEventMutation(c.config, OpUpdate)
	return &EvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationEventClient) UpdateOne(_m *EvaluationEvent) *EvaluationEventUpdateOne {
	mutation := newEvaluationEventMutation(c.config, OpUpdateOne, withEvaluationEvent(_m))
	return &EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationEventClient) UpdateOneID(id int) *EvaluationEventUpdateOne {
	mutation := newEvaluationEventMutation(c.config, OpUpdateOne, withEvaluationEventID(id))
	return &EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationEvent.
func (c *EvaluationEventClient) Delete() *EvaluationEventDelete {
	mutation := newEvaluationEventMutation(c.config, OpDelete)
	return &EvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationEventClient) DeleteOne(_m *EvaluationEvent) *EvaluationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationEventClient) DeleteOneID(id int) *EvaluationEventDeleteOne {
	builder := c.Delete().Where(evaluationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationEventDeleteOne{builder}
}

// Query returns a query builder for EvaluationEvent.
func (c *EvaluationEventClient) Query() *EvaluationEventQuery {
	return &EvaluationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationEvent entity by its id.
func (c *EvaluationEventClient) Get(ctx context.Context, id int) (*EvaluationEvent, error) {
	return c.Query().Where(evaluationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationEventClient) GetX(ctx context.Context, id int) *EvaluationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvaluationEventClient) Hooks() []Hook {
	return c.hooks.EvaluationEvent
}

// Interceptors returns the client interceptors.
func (c *EvaluationEventClient) Interceptors() []Interceptor {
	return c.inters.EvaluationEvent
}

func (c *EvaluationEventClient) mutate(ctx context.Context, m *EvaluationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationEvent mutation op: %q", m.Op())
	}
}

// MasteryTransitionEventClient is a client for the MasteryTransitionEvent schema.
type MasteryTransitionEventClient struct {
	config
}

// NewMasteryTransitionEventClient returns a client for the MasteryTransitionEvent from the given config.
func NewMasteryTransitionEventClient(c config) *MasteryTransitionEventClient {
	return &MasteryTransitionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masterytransitionevent.Hooks(f(g(h())))`.
func (c *MasteryTransitionEventClient) Use(hooks ...Hook) {
	c.hooks.MasteryTransitionEvent = append(c.hooks.MasteryTransitionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masterytransitionevent.Intercept(f(g(h())))`.
func (c *MasteryTransitionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryTransitionEvent = append(c.inters.MasteryTransitionEvent, interceptors...)
}

// Create returns a builder for creating a MasteryTransitionEvent entity.
func (c *MasteryTransitionEventClient) Create() *MasteryTransitionEventCreate {
	mutation := newMasteryTransitionEventMutation(c.config, OpCreate)
	return &MasteryTransitionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryTransitionEvent entities.
func (c *MasteryTransitionEventClient) CreateBulk(builders ...*MasteryTransitionEventCreate) *MasteryTransitionEventCreateBulk {
	return &MasteryTransitionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryTransitionEventClient) MapCreateBulk(slice any, setFunc func(*MasteryTransitionEventCreate, int)) *MasteryTransitionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryTransitionEventCreateBulk{err: fmt.Errorf("calling to MasteryTransitionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryTransitionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryTransitionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryTransitionEvent.
func (c *MasteryTransitionEventClient) Update() *MasteryTransitionEventUpdate {
	mutation := newMasteryTransitionEventMutation(c.config, OpUpdate)
	return &MasteryTransitionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryTransitionEventClient) UpdateOne(_m *MasteryTransitionEvent) *MasteryTransitionEventUpdateOne {
	mutation := newMasteryTransitionEventMutation(c.config, OpUpdateOne, withMasteryTransitionEvent(_m))
	return &MasteryTransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryTransitionEventClient) UpdateOneID(id int) *MasteryTransitionEventUpdateOne {
	mutation := newMasteryTransitionEventMutation(c.config, OpUpdateOne, withMasteryTransitionEventID(id))
	return &MasteryTransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryTransitionEvent.
func (c *MasteryTransitionEventClient) Delete() *MasteryTransitionEventDelete {
	mutation := newMasteryTransitionEventMutation(c.config, OpDelete)
	return &MasteryTransitionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryTransitionEventClient) DeleteOne(_m *MasteryTransitionEvent) *MasteryTransitionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryTransitionEventClient) DeleteOneID(id int) *MasteryTransitionEventDeleteOne {
	builder := c.Delete().Where(masterytransitionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryTransitionEventDeleteOne{builder}
}

// Query returns a query builder for MasteryTransitionEvent.
func (c *MasteryTransitionEventClient) Query() *MasteryTransitionEventQuery {
	return &MasteryTransitionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryTransitionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryTransitionEvent entity by its id.
func (c *MasteryTransitionEventClient) Get(ctx context.Context, id int) (*MasteryTransitionEvent, error) {
	return c.Query().Where(masterytransitionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryTransitionEventClient) GetX(ctx context.Context, id int) *MasteryTransitionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryTransitionEventClient) Hooks() []Hook {
	return c.hooks.MasteryTransitionEvent
}

// Interceptors returns the client interceptors.
func (c *MasteryTransitionEventClient) Interceptors() []Interceptor {
	return c.inters.MasteryTransitionEvent
}

func (c *MasteryTransitionEventClient) mutate(ctx context.Context, m *MasteryTransitionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryTransitionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryTransitionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryTransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryTransitionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryTransitionEvent mutation op: %q", m.Op())
	}
}

// ProbeEventClient is a client for the ProbeEvent schema.
type ProbeEventClient struct {
	config
}

// NewProbeEventClient returns a client for the ProbeEvent from the given config.
func NewProbeEventClient(c config) *ProbeEventClient {
	return &ProbeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `probeevent.Hooks(f(g(h())))`.
func (c *ProbeEventClient) Use(hooks ...Hook) {
	c.hooks.ProbeEvent = append(c.hooks.ProbeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `probeevent.Intercept(f(g(h())))`.
func (c *ProbeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProbeEvent = append(c.inters.ProbeEvent, interceptors...)
}

// Create returns a builder for creating a ProbeEvent entity.
func (c *ProbeEventClient) Create() *ProbeEventCreate {
	mutation := newProbeEventMutation(c.config, OpCreate)
	return &ProbeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProbeEvent entities.
func (c *ProbeEventClient) CreateBulk(builders ...*ProbeEventCreate) *ProbeEventCreateBulk {
	return &ProbeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProbeEventClient) MapCreateBulk(slice any, setFunc func(*ProbeEventCreate, int)) *ProbeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProbeEventCreateBulk{err: fmt.Errorf("calling to ProbeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProbeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProbeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProbeEvent.
func (c *ProbeEventClient) Update() *ProbeEventUpdate {
	mutation := newProbeEventMutation(c.config, OpUpdate)
	return &ProbeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProbeEventClient) UpdateOne(_m *ProbeEvent) *ProbeEventUpdateOne {
	mutation := newProbeEventMutation(c.config, OpUpdateOne, withProbeEvent(_m))
	return &ProbeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProbeEventClient) UpdateOneID(id int) *ProbeEventUpdateOne {
	mutation := newProbeEventMutation(c.config, OpUpdateOne, withProbeEventID(id))
	return &ProbeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProbeEvent.
func (c *ProbeEventClient) Delete() *ProbeEventDelete {
	mutation := newProbeEventMutation(c.config, OpDelete)
	return &ProbeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProbeEventClient) DeleteOne(_m *ProbeEvent) *ProbeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProbeEventClient) DeleteOneID(id int) *ProbeEventDeleteOne {
	builder := c.Delete().Where(probeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProbeEventDeleteOne{builder}
}

// Query returns a query builder for ProbeEvent.
func (c *ProbeEventClient) Query() *ProbeEventQuery {
	return &ProbeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProbeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProbeEvent entity by its id.
func (c *ProbeEventClient) Get(ctx context.Context, id int) (*ProbeEvent, error) {
	return c.Query().Where(probeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProbeEventClient) GetX(ctx context.Context, id int) *ProbeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProbeEventClient) Hooks() []Hook {
	return c.hooks.ProbeEvent
}

// Interceptors returns the client interceptors.
func (c *ProbeEventClient) Interceptors() []Interceptor {
	return c.inters.ProbeEvent
}

func (c *ProbeEventClient) mutate(ctx context.Context, m *ProbeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProbeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProbeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProbeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProbeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProbeEvent mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// QuizSessionEventClient is a client for the QuizSessionEvent schema.
type QuizSessionEventClient struct {
	config
}

// NewQuizSessionEventClient returns a client for the QuizSessionEvent from the given config.
func NewQuizSessionEventClient(c config) *QuizSessionEventClient {
	return &QuizSessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizsessionevent.Hooks(f(g(h())))`.
func (c *QuizSessionEventClient) Use(hooks ...Hook) {
	c.hooks.QuizSessionEvent = append(c.hooks.QuizSessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizsessionevent.Intercept(f(g(h())))`.
func (c *QuizSessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizSessionEvent = append(c.inters.QuizSessionEvent, interceptors...)
}

// Create returns a builder for creating a QuizSessionEvent entity.
func (c *QuizSessionEventClient) Create() *QuizSessionEventCreate {
	mutation := newQuizSessionEventMutation(c.config, OpCreate)
	return &QuizSessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizSessionEvent entities.
func (c *QuizSessionEventClient) CreateBulk(builders ...*QuizSessionEventCreate) *QuizSessionEventCreateBulk {
	return &QuizSessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizSessionEventClient) MapCreateBulk(slice any, setFunc func(*QuizSessionEventCreate, int)) *QuizSessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizSessionEventCreateBulk{err: fmt.Errorf("calling to QuizSessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizSessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizSessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizSessionEvent.
func (c *QuizSessionEventClient) Update() *QuizSessionEventUpdate {
	mutation := newQuizSessionEventMutation(c.config, OpUpdate)
	return &QuizSessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizSessionEventClient) UpdateOne(_m *QuizSessionEvent) *QuizSessionEventUpdateOne {
	mutation := newQuizSessionEventMutation(c.config, OpUpdateOne, withQuizSessionEvent(_m))
	return &QuizSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizSessionEventClient) UpdateOneID(id int) *QuizSessionEventUpdateOne {
	mutation := newQuizSessionEventMutation(c.config, OpUpdateOne, withQuizSessionEventID(id))
	return &QuizSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizSessionEvent.
func (c *QuizSessionEventClient) Delete() *QuizSessionEventDelete {
	mutation := newQuizSessionEventMutation(c.config, OpDelete)
	return &QuizSessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizSessionEventClient) DeleteOne(_m *QuizSessionEvent) *QuizSessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizSessionEventClient) DeleteOneID(id int) *QuizSessionEventDeleteOne {
	builder := c.Delete().Where(quizsessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizSessionEventDeleteOne{builder}
}

// Query returns a query builder for QuizSessionEvent.
func (c *QuizSessionEventClient) Query() *QuizSessionEventQuery {
	return &QuizSessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizSessionEvent entity by its id.
func (c *QuizSessionEventClient) Get(ctx context.Context, id int) (*QuizSessionEvent, error) {
	return c.Query().Where(quizsessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizSessionEventClient) GetX(ctx context.Context, id int) *QuizSessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizSessionEventClient) Hooks() []Hook {
	return c.hooks.QuizSessionEvent
}

// Interceptors returns the client interceptors.
func (c *QuizSessionEventClient) Interceptors() []Interceptor {
	return c.inters.QuizSessionEvent
}

func (c *QuizSessionEventClient) mutate(ctx context.Context, m *QuizSessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizSessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizSessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizSessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizSessionEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, EvaluationEvent, MasteryTransitionEvent, ProbeEvent, Profile,
		QuizSessionEvent, Snapshot []ent.Hook
	}
	inters struct {
		AnswerEvent, EvaluationEvent, MasteryTransitionEvent, ProbeEvent, Profile,
		QuizSessionEvent, Snapshot []ent.Interceptor
	}
)
