// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/credvia/credvia_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credvia/credvia_backend/internal/repo/activitylog"
	"github.com/credvia/credvia_backend/internal/repo/company"
	"github.com/credvia/credvia_backend/internal/repo/facialrecord"
	"github.com/credvia/credvia_backend/internal/repo/guide"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/credvia/credvia_backend/internal/repo/psychologistreference"
	"github.com/credvia/credvia_backend/internal/repo/session"
	"github.com/credvia/credvia_backend/internal/repo/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityLog is the client for interacting with the ActivityLog builders.
	ActivityLog *ActivityLogClient
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// FacialRecord is the client for interacting with the FacialRecord builders.
	FacialRecord *FacialRecordClient
	// Guide is the client for interacting with the Guide builders.
	Guide *GuideClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PatientPsychologistLink is the client for interacting with the PatientPsychologistLink builders.
	PatientPsychologistLink *PatientPsychologistLinkClient
	// Psychologist is the client for interacting with the Psychologist builders.
	Psychologist *PsychologistClient
	// PsychologistReference is the client for interacting with the PsychologistReference builders.
	PsychologistReference *PsychologistReferenceClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityLog = NewActivityLogClient(c.config)
	c.Company = NewCompanyClient(c.config)
	c.FacialRecord = NewFacialRecordClient(c.config)
	c.Guide = NewGuideClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.PatientPsychologistLink = NewPatientPsychologistLinkClient(c.config)
	c.Psychologist = NewPsychologistClient(c.config)
	c.PsychologistReference = NewPsychologistReferenceClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.User = NewUserClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                     ctx,
		config:                  cfg,
		ActivityLog:             NewActivityLogClient(cfg),
		Company:                 NewCompanyClient(cfg),
		FacialRecord:            NewFacialRecordClient(cfg),
		Guide:                   NewGuideClient(cfg),
		Patient:                 NewPatientClient(cfg),
		PatientPsychologistLink: NewPatientPsychologistLinkClient(cfg),
		Psychologist:            NewPsychologistClient(cfg),
		PsychologistReference:   NewPsychologistReferenceClient(cfg),
		Session:                 NewSessionClient(cfg),
		User:                    NewUserClient(cfg),
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
		ctx:                     ctx,
		config:                  cfg,
		ActivityLog:             NewActivityLogClient(cfg),
		Company:                 NewCompanyClient(cfg),
		FacialRecord:            NewFacialRecordClient(cfg),
		Guide:                   NewGuideClient(cfg),
		Patient:                 NewPatientClient(cfg),
		PatientPsychologistLink: NewPatientPsychologistLinkClient(cfg),
		Psychologist:            NewPsychologistClient(cfg),
		PsychologistReference:   NewPsychologistReferenceClient(cfg),
		Session:                 NewSessionClient(cfg),
		User:                    NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityLog.
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
		c.ActivityLog, c.Company, c.FacialRecord, c.Guide, c.Patient,
		c.PatientPsychologistLink, c.Psychologist, c.PsychologistReference, c.Session,
		c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityLog, c.Company, c.FacialRecord, c.Guide, c.Patient,
		c.PatientPsychologistLink, c.Psychologist, c.PsychologistReference, c.Session,
		c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityLogMutation:
		return c.ActivityLog.mutate(ctx, m)
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *FacialRecordMutation:
		return c.FacialRecord.mutate(ctx, m)
	case *GuideMutation:
		return c.Guide.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PatientPsychologistLinkMutation:
		return c.PatientPsychologistLink.mutate(ctx, m)
	case *PsychologistMutation:
		return c.Psychologist.mutate(ctx, m)
	case *PsychologistReferenceMutation:
		return c.PsychologistReference.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// ActivityLogClient is a client for the ActivityLog schema.
type ActivityLogClient struct {
	config
}

// NewActivityLogClient returns a client for the ActivityLog from the given config.
func NewActivityLogClient(c config) *ActivityLogClient {
	return &ActivityLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activitylog.Hooks(f(g(h())))`.
func (c *ActivityLogClient) Use(hooks ...Hook) {
	c.hooks.ActivityLog = append(c.hooks.ActivityLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activitylog.Intercept(f(g(h())))`.
func (c *ActivityLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityLog = append(c.inters.ActivityLog, interceptors...)
}

// Create returns a builder for creating a ActivityLog entity.
func (c *ActivityLogClient) Create() *ActivityLogCreate {
	mutation := newActivityLogMutation(c.config, OpCreate)
	return &ActivityLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityLog entities.
func (c *ActivityLogClient) CreateBulk(builders ...*ActivityLogCreate) *ActivityLogCreateBulk {
	return &ActivityLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityLogClient) MapCreateBulk(slice any, setFunc func(*ActivityLogCreate, int)) *ActivityLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityLogCreateBulk{err: fmt.Errorf("calling to ActivityLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityLog.
func (c *ActivityLogClient) Update() *ActivityLogUpdate {
	mutation := newActivityLogMutation(c.config, OpUpdate)
	return &ActivityLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityLogClient) UpdateOne(_m *ActivityLog) *ActivityLogUpdateOne {
	mutation := newActivityLogMutation(c.config, OpUpdateOne, withActivityLog(_m))
	return &ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityLogClient) UpdateOneID(id uuid.UUID) *ActivityLogUpdateOne {
	mutation := newActivityLogMutation(c.config, OpUpdateOne, withActivityLogID(id))
	return &ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityLog.
func (c *ActivityLogClient) Delete() *ActivityLogDelete {
	mutation := newActivityLogMutation(c.config, OpDelete)
	return &ActivityLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityLogClient) DeleteOne(_m *ActivityLog) *ActivityLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityLogClient) DeleteOneID(id uuid.UUID) *ActivityLogDeleteOne {
	builder := c.Delete().Where(activitylog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityLogDeleteOne{builder}
}

// Query returns a query builder for ActivityLog.
func (c *ActivityLogClient) Query() *ActivityLogQuery {
	return &ActivityLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityLog entity by its id.
func (c *ActivityLogClient) Get(ctx context.Context, id uuid.UUID) (*ActivityLog, error) {
	return c.Query().Where(activitylog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityLogClient) GetX(ctx context.Context, id uuid.UUID) *ActivityLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a ActivityLog.
func (c *ActivityLogClient) QueryPatient(_m *ActivityLog) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(activitylog.Table, activitylog.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, activitylog.PatientTable, activitylog.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActivityLogClient) Hooks() []Hook {
	return c.hooks.ActivityLog
}

// Interceptors returns the client interceptors.
func (c *ActivityLogClient) Interceptors() []Interceptor {
	return c.inters.ActivityLog
}

func (c *ActivityLogClient) mutate(ctx context.Context, m *ActivityLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ActivityLog mutation op: %q", m.Op())
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id uuid.UUID) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id uuid.UUID) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id uuid.UUID) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGuides queries the guides edge of a Company.
func (c *CompanyClient) QueryGuides(_m *Company) *GuideQuery {
	query := (&GuideClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(guide.Table, guide.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.GuidesTable, company.GuidesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Company mutation op: %q", m.Op())
	}
}

// FacialRecordClient is a client for the FacialRecord schema.
type FacialRecordClient struct {
	config
}

// NewFacialRecordClient returns a client for the FacialRecord from the given config.
func NewFacialRecordClient(c config) *FacialRecordClient {
	return &FacialRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `facialrecord.Hooks(f(g(h())))`.
func (c *FacialRecordClient) Use(hooks ...Hook) {
	c.hooks.FacialRecord = append(c.hooks.FacialRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `facialrecord.Intercept(f(g(h())))`.
func (c *FacialRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.FacialRecord = append(c.inters.FacialRecord, interceptors...)
}

// Create returns a builder for creating a FacialRecord entity.
func (c *FacialRecordClient) Create() *FacialRecordCreate {
	mutation := newFacialRecordMutation(c.config, OpCreate)
	return &FacialRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FacialRecord entities.
func (c *FacialRecordClient) CreateBulk(builders ...*FacialRecordCreate) *FacialRecordCreateBulk {
	return &FacialRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FacialRecordClient) MapCreateBulk(slice any, setFunc func(*FacialRecordCreate, int)) *FacialRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FacialRecordCreateBulk{err: fmt.Errorf("calling to FacialRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FacialRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FacialRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FacialRecord.
func (c *FacialRecordClient) Update() *FacialRecordUpdate {
	mutation := newFacialRecordMutation(c.config, OpUpdate)
	return &FacialRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FacialRecordClient) UpdateOne(_m *FacialRecord) *FacialRecordUpdateOne {
	mutation := newFacialRecordMutation(c.config, OpUpdateOne, withFacialRecord(_m))
	return &FacialRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FacialRecordClient) UpdateOneID(id uuid.UUID) *FacialRecordUpdateOne {
	mutation := newFacialRecordMutation(c.config, OpUpdateOne, withFacialRecordID(id))
	return &FacialRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FacialRecord.
func (c *FacialRecordClient) Delete() *FacialRecordDelete {
	mutation := newFacialRecordMutation(c.config, OpDelete)
	return &FacialRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FacialRecordClient) DeleteOne(_m *FacialRecord) *FacialRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FacialRecordClient) DeleteOneID(id uuid.UUID) *FacialRecordDeleteOne {
	builder := c.Delete().Where(facialrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FacialRecordDeleteOne{builder}
}

// Query returns a query builder for FacialRecord.
func (c *FacialRecordClient) Query() *FacialRecordQuery {
	return &FacialRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFacialRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a FacialRecord entity by its id.
func (c *FacialRecordClient) Get(ctx context.Context, id uuid.UUID) (*FacialRecord, error) {
	return c.Query().Where(facialrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FacialRecordClient) GetX(ctx context.Context, id uuid.UUID) *FacialRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a FacialRecord.
func (c *FacialRecordClient) QueryPatient(_m *FacialRecord) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facialrecord.Table, facialrecord.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, facialrecord.PatientTable, facialrecord.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGuide queries the guide edge of a FacialRecord.
func (c *FacialRecordClient) QueryGuide(_m *FacialRecord) *GuideQuery {
	query := (&GuideClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facialrecord.Table, facialrecord.FieldID, id),
			sqlgraph.To(guide.Table, guide.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, facialrecord.GuideTable, facialrecord.GuideColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FacialRecordClient) Hooks() []Hook {
	return c.hooks.FacialRecord
}

// Interceptors returns the client interceptors.
func (c *FacialRecordClient) Interceptors() []Interceptor {
	return c.inters.FacialRecord
}

func (c *FacialRecordClient) mutate(ctx context.Context, m *FacialRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FacialRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FacialRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FacialRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FacialRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown FacialRecord mutation op: %q", m.Op())
	}
}

// GuideClient is a client for the Guide schema.
type GuideClient struct {
	config
}

// NewGuideClient returns a client for the Guide from the given config.
func NewGuideClient(c config) *GuideClient {
	return &GuideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `guide.Hooks(f(g(h())))`.
func (c *GuideClient) Use(hooks ...Hook) {
	c.hooks.Guide = append(c.hooks.Guide, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `guide.Intercept(f(g(h())))`.
func (c *GuideClient) Intercept(interceptors ...Interceptor) {
	c.inters.Guide = append(c.inters.Guide, interceptors...)
}

// Create returns a builder for creating a Guide entity.
func (c *GuideClient) Create() *GuideCreate {
	mutation := newGuideMutation(c.config, OpCreate)
	return &GuideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Guide entities.
func (c *GuideClient) CreateBulk(builders ...*GuideCreate) *GuideCreateBulk {
	return &GuideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GuideClient) MapCreateBulk(slice any, setFunc func(*GuideCreate, int)) *GuideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GuideCreateBulk{err: fmt.Errorf("calling to GuideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GuideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GuideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Guide.
func (c *GuideClient) Update() *GuideUpdate {
	mutation := newGuideMutation(c.config, OpUpdate)
	return &GuideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GuideClient) UpdateOne(_m *Guide) *GuideUpdateOne {
	mutation := newGuideMutation(c.config, OpUpdateOne, withGuide(_m))
	return &GuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GuideClient) UpdateOneID(id uuid.UUID) *GuideUpdateOne {
	mutation := newGuideMutation(c.config, OpUpdateOne, withGuideID(id))
	return &GuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Guide.
func (c *GuideClient) Delete() *GuideDelete {
	mutation := newGuideMutation(c.config, OpDelete)
	return &GuideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GuideClient) DeleteOne(_m *Guide) *GuideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GuideClient) DeleteOneID(id uuid.UUID) *GuideDeleteOne {
	builder := c.Delete().Where(guide.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GuideDeleteOne{builder}
}

// Query returns a query builder for Guide.
func (c *GuideClient) Query() *GuideQuery {
	return &GuideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGuide},
		inters: c.Interceptors(),
	}
}

// Get returns a Guide entity by its id.
func (c *GuideClient) Get(ctx context.Context, id uuid.UUID) (*Guide, error) {
	return c.Query().Where(guide.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GuideClient) GetX(ctx context.Context, id uuid.UUID) *Guide {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Guide.
func (c *GuideClient) QueryPatient(_m *Guide) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(guide.Table, guide.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, guide.PatientTable, guide.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCompany queries the company edge of a Guide.
func (c *GuideClient) QueryCompany(_m *Guide) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(guide.Table, guide.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, guide.CompanyTable, guide.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFacials queries the facials edge of a Guide.
func (c *GuideClient) QueryFacials(_m *Guide) *FacialRecordQuery {
	query := (&FacialRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(guide.Table, guide.FieldID, id),
			sqlgraph.To(facialrecord.Table, facialrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, guide.FacialsTable, guide.FacialsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GuideClient) Hooks() []Hook {
	return c.hooks.Guide
}

// Interceptors returns the client interceptors.
func (c *GuideClient) Interceptors() []Interceptor {
	return c.inters.Guide
}

func (c *GuideClient) mutate(ctx context.Context, m *GuideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GuideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GuideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GuideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Guide mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Patient.
func (c *PatientClient) QueryUser(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, patient.UserTable, patient.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGuides queries the guides edge of a Patient.
func (c *PatientClient) QueryGuides(_m *Patient) *GuideQuery {
	query := (&GuideClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(guide.Table, guide.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.GuidesTable, patient.GuidesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFacials queries the facials edge of a Patient.
func (c *PatientClient) QueryFacials(_m *Patient) *FacialRecordQuery {
	query := (&FacialRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(facialrecord.Table, facialrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.FacialsTable, patient.FacialsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Patient.
func (c *PatientClient) QuerySessions(_m *Patient) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.SessionsTable, patient.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferences queries the references edge of a Patient.
func (c *PatientClient) QueryReferences(_m *Patient) *PsychologistReferenceQuery {
	query := (&PsychologistReferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(psychologistreference.Table, psychologistreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ReferencesTable, patient.ReferencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLinks queries the links edge of a Patient.
func (c *PatientClient) QueryLinks(_m *Patient) *PatientPsychologistLinkQuery {
	query := (&PatientPsychologistLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(patientpsychologistlink.Table, patientpsychologistlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.LinksTable, patient.LinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActivityLogs queries the activity_logs edge of a Patient.
func (c *PatientClient) QueryActivityLogs(_m *Patient) *ActivityLogQuery {
	query := (&ActivityLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(activitylog.Table, activitylog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ActivityLogsTable, patient.ActivityLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// PatientPsychologistLinkClient is a client for the PatientPsychologistLink schema.
type PatientPsychologistLinkClient struct {
	config
}

// NewPatientPsychologistLinkClient returns a client for the PatientPsychologistLink from the given config.
func NewPatientPsychologistLinkClient(c config) *PatientPsychologistLinkClient {
	return &PatientPsychologistLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientpsychologistlink.Hooks(f(g(h())))`.
func (c *PatientPsychologistLinkClient) Use(hooks ...Hook) {
	c.hooks.PatientPsychologistLink = append(c.hooks.PatientPsychologistLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientpsychologistlink.Intercept(f(g(h())))`.
func (c *PatientPsychologistLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientPsychologistLink = append(c.inters.PatientPsychologistLink, interceptors...)
}

// Create returns a builder for creating a PatientPsychologistLink entity.
func (c *PatientPsychologistLinkClient) Create() *PatientPsychologistLinkCreate {
	mutation := newPatientPsychologistLinkMutation(c.config, OpCreate)
	return &PatientPsychologistLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientPsychologistLink entities.
func (c *PatientPsychologistLinkClient) CreateBulk(builders ...*PatientPsychologistLinkCreate) *PatientPsychologistLinkCreateBulk {
	return &PatientPsychologistLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientPsychologistLinkClient) MapCreateBulk(slice any, setFunc func(*PatientPsychologistLinkCreate, int)) *PatientPsychologistLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientPsychologistLinkCreateBulk{err: fmt.Errorf("calling to PatientPsychologistLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientPsychologistLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientPsychologistLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientPsychologistLink.
func (c *PatientPsychologistLinkClient) Update() *PatientPsychologistLinkUpdate {
	mutation := newPatientPsychologistLinkMutation(c.config, OpUpdate)
	return &PatientPsychologistLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientPsychologistLinkClient) UpdateOne(_m *PatientPsychologistLink) *PatientPsychologistLinkUpdateOne {
	mutation := newPatientPsychologistLinkMutation(c.config, OpUpdateOne, withPatientPsychologistLink(_m))
	return &PatientPsychologistLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientPsychologistLinkClient) UpdateOneID(id uuid.UUID) *PatientPsychologistLinkUpdateOne {
	mutation := newPatientPsychologistLinkMutation(c.config, OpUpdateOne, withPatientPsychologistLinkID(id))
	return &PatientPsychologistLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientPsychologistLink.
func (c *PatientPsychologistLinkClient) Delete() *PatientPsychologistLinkDelete {
	mutation := newPatientPsychologistLinkMutation(c.config, OpDelete)
	return &PatientPsychologistLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientPsychologistLinkClient) DeleteOne(_m *PatientPsychologistLink) *PatientPsychologistLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientPsychologistLinkClient) DeleteOneID(id uuid.UUID) *PatientPsychologistLinkDeleteOne {
	builder := c.Delete().Where(patientpsychologistlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientPsychologistLinkDeleteOne{builder}
}

// Query returns a query builder for PatientPsychologistLink.
func (c *PatientPsychologistLinkClient) Query() *PatientPsychologistLinkQuery {
	return &PatientPsychologistLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientPsychologistLink},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientPsychologistLink entity by its id.
func (c *PatientPsychologistLinkClient) Get(ctx context.Context, id uuid.UUID) (*PatientPsychologistLink, error) {
	return c.Query().Where(patientpsychologistlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientPsychologistLinkClient) GetX(ctx context.Context, id uuid.UUID) *PatientPsychologistLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a PatientPsychologistLink.
func (c *PatientPsychologistLinkClient) QueryPatient(_m *PatientPsychologistLink) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientpsychologistlink.Table, patientpsychologistlink.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientpsychologistlink.PatientTable, patientpsychologistlink.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPsychologist queries the psychologist edge of a PatientPsychologistLink.
func (c *PatientPsychologistLinkClient) QueryPsychologist(_m *PatientPsychologistLink) *PsychologistQuery {
	query := (&PsychologistClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientpsychologistlink.Table, patientpsychologistlink.FieldID, id),
			sqlgraph.To(psychologist.Table, psychologist.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientpsychologistlink.PsychologistTable, patientpsychologistlink.PsychologistColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientPsychologistLinkClient) Hooks() []Hook {
	return c.hooks.PatientPsychologistLink
}

// Interceptors returns the client interceptors.
func (c *PatientPsychologistLinkClient) Interceptors() []Interceptor {
	return c.inters.PatientPsychologistLink
}

func (c *PatientPsychologistLinkClient) mutate(ctx context.Context, m *PatientPsychologistLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientPsychologistLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientPsychologistLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientPsychologistLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientPsychologistLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PatientPsychologistLink mutation op: %q", m.Op())
	}
}

// PsychologistClient is a client for the Psychologist schema.
type PsychologistClient struct {
	config
}

// NewPsychologistClient returns a client for the Psychologist from the given config.
func NewPsychologistClient(c config) *PsychologistClient {
	return &PsychologistClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `psychologist.Hooks(f(g(h())))`.
func (c *PsychologistClient) Use(hooks ...Hook) {
	c.hooks.Psychologist = append(c.hooks.Psychologist, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `psychologist.Intercept(f(g(h())))`.
func (c *PsychologistClient) Intercept(interceptors ...Interceptor) {
	c.inters.Psychologist = append(c.inters.Psychologist, interceptors...)
}

// Create returns a builder for creating a Psychologist entity.
func (c *PsychologistClient) Create() *PsychologistCreate {
	mutation := newPsychologistMutation(c.config, OpCreate)
	return &PsychologistCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Psychologist entities.
func (c *PsychologistClient) CreateBulk(builders ...*PsychologistCreate) *PsychologistCreateBulk {
	return &PsychologistCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PsychologistClient) MapCreateBulk(slice any, setFunc func(*PsychologistCreate, int)) *PsychologistCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PsychologistCreateBulk{err: fmt.Errorf("calling to PsychologistClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PsychologistCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PsychologistCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Psychologist.
func (c *PsychologistClient) Update() *PsychologistUpdate {
	mutation := newPsychologistMutation(c.config, OpUpdate)
	return &PsychologistUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PsychologistClient) UpdateOne(_m *Psychologist) *PsychologistUpdateOne {
	mutation := newPsychologistMutation(c.config, OpUpdateOne, withPsychologist(_m))
	return &PsychologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PsychologistClient) UpdateOneID(id uuid.UUID) *PsychologistUpdateOne {
	mutation := newPsychologistMutation(c.config, OpUpdateOne, withPsychologistID(id))
	return &PsychologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Psychologist.
func (c *PsychologistClient) Delete() *PsychologistDelete {
	mutation := newPsychologistMutation(c.config, OpDelete)
	return &PsychologistDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PsychologistClient) DeleteOne(_m *Psychologist) *PsychologistDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PsychologistClient) DeleteOneID(id uuid.UUID) *PsychologistDeleteOne {
	builder := c.Delete().Where(psychologist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PsychologistDeleteOne{builder}
}

// Query returns a query builder for Psychologist.
func (c *PsychologistClient) Query() *PsychologistQuery {
	return &PsychologistQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePsychologist},
		inters: c.Interceptors(),
	}
}

// Get returns a Psychologist entity by its id.
func (c *PsychologistClient) Get(ctx context.Context, id uuid.UUID) (*Psychologist, error) {
	return c.Query().Where(psychologist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PsychologistClient) GetX(ctx context.Context, id uuid.UUID) *Psychologist {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Psychologist.
func (c *PsychologistClient) QueryUser(_m *Psychologist) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(psychologist.Table, psychologist.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, psychologist.UserTable, psychologist.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Psychologist.
func (c *PsychologistClient) QuerySessions(_m *Psychologist) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(psychologist.Table, psychologist.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, psychologist.SessionsTable, psychologist.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLinks queries the links edge of a Psychologist.
func (c *PsychologistClient) QueryLinks(_m *Psychologist) *PatientPsychologistLinkQuery {
	query := (&PatientPsychologistLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(psychologist.Table, psychologist.FieldID, id),
			sqlgraph.To(patientpsychologistlink.Table, patientpsychologistlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, psychologist.LinksTable, psychologist.LinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLinkedReferences queries the linked_references edge of a Psychologist.
func (c *PsychologistClient) QueryLinkedReferences(_m *Psychologist) *PsychologistReferenceQuery {
	query := (&PsychologistReferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(psychologist.Table, psychologist.FieldID, id),
			sqlgraph.To(psychologistreference.Table, psychologistreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, psychologist.LinkedReferencesTable, psychologist.LinkedReferencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PsychologistClient) Hooks() []Hook {
	return c.hooks.Psychologist
}

// Interceptors returns the client interceptors.
func (c *PsychologistClient) Interceptors() []Interceptor {
	return c.inters.Psychologist
}

func (c *PsychologistClient) mutate(ctx context.Context, m *PsychologistMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PsychologistCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PsychologistUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PsychologistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PsychologistDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Psychologist mutation op: %q", m.Op())
	}
}

// PsychologistReferenceClient is a client for the PsychologistReference schema.
type PsychologistReferenceClient struct {
	config
}

// NewPsychologistReferenceClient returns a client for the PsychologistReference from the given config.
func NewPsychologistReferenceClient(c config) *PsychologistReferenceClient {
	return &PsychologistReferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `psychologistreference.Hooks(f(g(h())))`.
func (c *PsychologistReferenceClient) Use(hooks ...Hook) {
	c.hooks.PsychologistReference = append(c.hooks.PsychologistReference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `psychologistreference.Intercept(f(g(h())))`.
func (c *PsychologistReferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.PsychologistReference = append(c.inters.PsychologistReference, interceptors...)
}

// Create returns a builder for creating a PsychologistReference entity.
func (c *PsychologistReferenceClient) Create() *PsychologistReferenceCreate {
	mutation := newPsychologistReferenceMutation(c.config, OpCreate)
	return &PsychologistReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PsychologistReference entities.
func (c *PsychologistReferenceClient) CreateBulk(builders ...*PsychologistReferenceCreate) *PsychologistReferenceCreateBulk {
	return &PsychologistReferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PsychologistReferenceClient) MapCreateBulk(slice any, setFunc func(*PsychologistReferenceCreate, int)) *PsychologistReferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PsychologistReferenceCreateBulk{err: fmt.Errorf("calling to PsychologistReferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PsychologistReferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PsychologistReferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PsychologistReference.
func (c *PsychologistReferenceClient) Update() *PsychologistReferenceUpdate {
	mutation := newPsychologistReferenceMutation(c.config, OpUpdate)
	return &PsychologistReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PsychologistReferenceClient) UpdateOne(_m *PsychologistReference) *PsychologistReferenceUpdateOne {
	mutation := newPsychologistReferenceMutation(c.config, OpUpdateOne, withPsychologistReference(_m))
	return &PsychologistReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PsychologistReferenceClient) UpdateOneID(id uuid.UUID) *PsychologistReferenceUpdateOne {
	mutation := newPsychologistReferenceMutation(c.config, OpUpdateOne, withPsychologistReferenceID(id))
	return &PsychologistReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PsychologistReference.
func (c *PsychologistReferenceClient) Delete() *PsychologistReferenceDelete {
	mutation := newPsychologistReferenceMutation(c.config, OpDelete)
	return &PsychologistReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PsychologistReferenceClient) DeleteOne(_m *PsychologistReference) *PsychologistReferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PsychologistReferenceClient) DeleteOneID(id uuid.UUID) *PsychologistReferenceDeleteOne {
	builder := c.Delete().Where(psychologistreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PsychologistReferenceDeleteOne{builder}
}

// Query returns a query builder for PsychologistReference.
func (c *PsychologistReferenceClient) Query() *PsychologistReferenceQuery {
	return &PsychologistReferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePsychologistReference},
		inters: c.Interceptors(),
	}
}

// Get returns a PsychologistReference entity by its id.
func (c *PsychologistReferenceClient) Get(ctx context.Context, id uuid.UUID) (*PsychologistReference, error) {
	return c.Query().Where(psychologistreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PsychologistReferenceClient) GetX(ctx context.Context, id uuid.UUID) *PsychologistReference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a PsychologistReference.
func (c *PsychologistReferenceClient) QueryPatient(_m *PsychologistReference) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(psychologistreference.Table, psychologistreference.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, psychologistreference.PatientTable, psychologistreference.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLinkedPsychologist queries the linked_psychologist edge of a PsychologistReference.
func (c *PsychologistReferenceClient) QueryLinkedPsychologist(_m *PsychologistReference) *PsychologistQuery {
	query := (&PsychologistClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(psychologistreference.Table, psychologistreference.FieldID, id),
			sqlgraph.To(psychologist.Table, psychologist.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, psychologistreference.LinkedPsychologistTable, psychologistreference.LinkedPsychologistColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a PsychologistReference.
func (c *PsychologistReferenceClient) QuerySessions(_m *PsychologistReference) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(psychologistreference.Table, psychologistreference.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, psychologistreference.SessionsTable, psychologistreference.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PsychologistReferenceClient) Hooks() []Hook {
	return c.hooks.PsychologistReference
}

// Interceptors returns the client interceptors.
func (c *PsychologistReferenceClient) Interceptors() []Interceptor {
	return c.inters.PsychologistReference
}

func (c *PsychologistReferenceClient) mutate(ctx context.Context, m *PsychologistReferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PsychologistReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PsychologistReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PsychologistReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PsychologistReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PsychologistReference mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id uuid.UUID) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id uuid.UUID) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id uuid.UUID) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Session.
func (c *SessionClient) QueryPatient(_m *Session) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, session.PatientTable, session.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPsychologist queries the psychologist edge of a Session.
func (c *SessionClient) QueryPsychologist(_m *Session) *PsychologistQuery {
	query := (&PsychologistClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(psychologist.Table, psychologist.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, session.PsychologistTable, session.PsychologistColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReference queries the reference edge of a Session.
func (c *SessionClient) QueryReference(_m *Session) *PsychologistReferenceQuery {
	query := (&PsychologistReferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(psychologistreference.Table, psychologistreference.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, session.ReferenceTable, session.ReferenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Session mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatientProfile queries the patient_profile edge of a User.
func (c *UserClient) QueryPatientProfile(_m *User) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.PatientProfileTable, user.PatientProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPsychologistProfile queries the psychologist_profile edge of a User.
func (c *UserClient) QueryPsychologistProfile(_m *User) *PsychologistQuery {
	query := (&PsychologistClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(psychologist.Table, psychologist.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.PsychologistProfileTable, user.PsychologistProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityLog, Company, FacialRecord, Guide, Patient, PatientPsychologistLink,
		Psychologist, PsychologistReference, Session, User []ent.Hook
	}
	inters struct {
		ActivityLog, Company, FacialRecord, Guide, Patient, PatientPsychologistLink,
		Psychologist, PsychologistReference, Session, User []ent.Interceptor
	}
)
