// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credvia/credvia_backend/internal/repo/activitylog"
	"github.com/credvia/credvia_backend/internal/repo/company"
	"github.com/credvia/credvia_backend/internal/repo/facialrecord"
	"github.com/credvia/credvia_backend/internal/repo/guide"
	"github.com/credvia/credvia_backend/internal/repo/patient"
	"github.com/credvia/credvia_backend/internal/repo/patientpsychologistlink"
	"github.com/credvia/credvia_backend/internal/repo/predicate"
	"github.com/credvia/credvia_backend/internal/repo/psychologist"
	"github.com/credvia/credvia_backend/internal/repo/psychologistreference"
	"github.com/credvia/credvia_backend/internal/repo/session"
	"github.com/credvia/credvia_backend/internal/repo/user"
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
	TypeActivityLog             = "ActivityLog"
	TypeCompany                 = "Company"
	TypeFacialRecord            = "FacialRecord"
	TypeGuide                   = "Guide"
	TypePatient                 = "Patient"
	TypePatientPsychologistLink = "PatientPsychologistLink"
	TypePsychologist            = "Psychologist"
	TypePsychologistReference   = "PsychologistReference"
	TypeSession                 = "Session"
	TypeUser                    = "User"
)

// ActivityLogMutation represents an operation that mutates the ActivityLog nodes in the graph.
type ActivityLogMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	_type          *activitylog.Type
	description    *string
	metadata       *map[string]interface{}
	occurred_at    *time.Time
	clearedFields  map[string]struct{}
	patient        *uuid.UUID
	clearedpatient bool
	done           bool
	oldValue       func(context.Context) (*ActivityLog, error)
	predicates     []predicate.ActivityLog
}

var _ ent.Mutation = (*ActivityLogMutation)(nil)

// activitylogOption allows management of the mutation configuration using functional options.
type activitylogOption func(*ActivityLogMutation)

// newActivityLogMutation creates new mutation for the ActivityLog entity.
func newActivityLogMutation(c config, op Op, opts ...activitylogOption) *ActivityLogMutation {
	m := &ActivityLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityLogID sets the ID field of the mutation.
func withActivityLogID(id uuid.UUID) activitylogOption {
	return func(m *ActivityLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityLog
		)
		m.oldValue = func(ctx context.Context) (*ActivityLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityLog sets the old ActivityLog of the mutation.
func withActivityLog(node *ActivityLog) activitylogOption {
	return func(m *ActivityLogMutation) {
		m.oldValue = func(context.Context) (*ActivityLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActivityLog entities.
func (m *ActivityLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ActivityLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *ActivityLogMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ActivityLogMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ActivityLogMutation) ResetPatientID() {
	m.patient = nil
}

// SetType sets the "type" field.
func (m *ActivityLogMutation) SetType(a activitylog.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *ActivityLogMutation) GetType() (r activitylog.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldType(ctx context.Context) (v activitylog.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ActivityLogMutation) ResetType() {
	m._type = nil
}

// SetDescription sets the "description" field.
func (m *ActivityLogMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActivityLogMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ActivityLogMutation) ResetDescription() {
	m.description = nil
}

// SetMetadata sets the "metadata" field.
func (m *ActivityLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ActivityLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ActivityLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[activitylog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ActivityLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ActivityLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, activitylog.FieldMetadata)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *ActivityLogMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *ActivityLogMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *ActivityLogMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *ActivityLogMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[activitylog.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *ActivityLogMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *ActivityLogMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *ActivityLogMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the ActivityLogMutation builder.
func (m *ActivityLogMutation) Where(ps ...predicate.ActivityLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityLog).
func (m *ActivityLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, activitylog.FieldCreatedAt)
	}
	if m.patient != nil {
		fields = append(fields, activitylog.FieldPatientID)
	}
	if m._type != nil {
		fields = append(fields, activitylog.FieldType)
	}
	if m.description != nil {
		fields = append(fields, activitylog.FieldDescription)
	}
	if m.metadata != nil {
		fields = append(fields, activitylog.FieldMetadata)
	}
	if m.occurred_at != nil {
		fields = append(fields, activitylog.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activitylog.FieldCreatedAt:
		return m.CreatedAt()
	case activitylog.FieldPatientID:
		return m.PatientID()
	case activitylog.FieldType:
		return m.GetType()
	case activitylog.FieldDescription:
		return m.Description()
	case activitylog.FieldMetadata:
		return m.Metadata()
	case activitylog.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activitylog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case activitylog.FieldPatientID:
		return m.OldPatientID(ctx)
	case activitylog.FieldType:
		return m.OldType(ctx)
	case activitylog.FieldDescription:
		return m.OldDescription(ctx)
	case activitylog.FieldMetadata:
		return m.OldMetadata(ctx)
	case activitylog.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activitylog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case activitylog.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case activitylog.FieldType:
		v, ok := value.(activitylog.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case activitylog.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case activitylog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case activitylog.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActivityLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activitylog.FieldMetadata) {
		fields = append(fields, activitylog.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityLogMutation) ClearField(name string) error {
	switch name {
	case activitylog.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityLogMutation) ResetField(name string) error {
	switch name {
	case activitylog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case activitylog.FieldPatientID:
		m.ResetPatientID()
		return nil
	case activitylog.FieldType:
		m.ResetType()
		return nil
	case activitylog.FieldDescription:
		m.ResetDescription()
		return nil
	case activitylog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case activitylog.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, activitylog.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activitylog.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, activitylog.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityLogMutation) EdgeCleared(name string) bool {
	switch name {
	case activitylog.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityLogMutation) ClearEdge(name string) error {
	switch name {
	case activitylog.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityLogMutation) ResetEdge(name string) error {
	switch name {
	case activitylog.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	clearedFields map[string]struct{}
	guides        map[uuid.UUID]struct{}
	removedguides map[uuid.UUID]struct{}
	clearedguides bool
	done          bool
	oldValue      func(context.Context) (*Company, error)
	predicates    []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// AddGuideIDs adds the "guides" edge to the Guide entity by ids.
func (m *CompanyMutation) AddGuideIDs(ids ...uuid.UUID) {
	if m.guides == nil {
		m.guides = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.guides[ids[i]] = struct{}{}
	}
}

// ClearGuides clears the "guides" edge to the Guide entity.
func (m *CompanyMutation) ClearGuides() {
	m.clearedguides = true
}

// GuidesCleared reports if the "guides" edge to the Guide entity was cleared.
func (m *CompanyMutation) GuidesCleared() bool {
	return m.clearedguides
}

// RemoveGuideIDs removes the "guides" edge to the Guide entity by IDs.
func (m *CompanyMutation) RemoveGuideIDs(ids ...uuid.UUID) {
	if m.removedguides == nil {
		m.removedguides = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.guides, ids[i])
		m.removedguides[ids[i]] = struct{}{}
	}
}

// RemovedGuides returns the removed IDs of the "guides" edge to the Guide entity.
func (m *CompanyMutation) RemovedGuidesIDs() (ids []uuid.UUID) {
	for id := range m.removedguides {
		ids = append(ids, id)
	}
	return
}

// GuidesIDs returns the "guides" edge IDs in the mutation.
func (m *CompanyMutation) GuidesIDs() (ids []uuid.UUID) {
	for id := range m.guides {
		ids = append(ids, id)
	}
	return
}

// ResetGuides resets all changes to the "guides" edge.
func (m *CompanyMutation) ResetGuides() {
	m.guides = nil
	m.clearedguides = false
	m.removedguides = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	case company.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case company.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case company.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.guides != nil {
		edges = append(edges, company.EdgeGuides)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeGuides:
		ids := make([]ent.Value, 0, len(m.guides))
		for id := range m.guides {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedguides != nil {
		edges = append(edges, company.EdgeGuides)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeGuides:
		ids := make([]ent.Value, 0, len(m.removedguides))
		for id := range m.removedguides {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedguides {
		edges = append(edges, company.EdgeGuides)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeGuides:
		return m.clearedguides
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeGuides:
		m.ResetGuides()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// FacialRecordMutation represents an operation that mutates the FacialRecord nodes in the graph.
type FacialRecordMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	performed_at   *time.Time
	clearedFields  map[string]struct{}
	patient        *uuid.UUID
	clearedpatient bool
	guide          *uuid.UUID
	clearedguide   bool
	done           bool
	oldValue       func(context.Context) (*FacialRecord, error)
	predicates     []predicate.FacialRecord
}

var _ ent.Mutation = (*FacialRecordMutation)(nil)

// facialrecordOption allows management of the mutation configuration using functional options.
type facialrecordOption func(*FacialRecordMutation)

// newFacialRecordMutation creates new mutation for the FacialRecord entity.
func newFacialRecordMutation(c config, op Op, opts ...facialrecordOption) *FacialRecordMutation {
	m := &FacialRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFacialRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFacialRecordID sets the ID field of the mutation.
func withFacialRecordID(id uuid.UUID) facialrecordOption {
	return func(m *FacialRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FacialRecord
		)
		m.oldValue = func(ctx context.Context) (*FacialRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FacialRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFacialRecord sets the old FacialRecord of the mutation.
func withFacialRecord(node *FacialRecord) facialrecordOption {
	return func(m *FacialRecordMutation) {
		m.oldValue = func(context.Context) (*FacialRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FacialRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FacialRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FacialRecord entities.
func (m *FacialRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FacialRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FacialRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FacialRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FacialRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FacialRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FacialRecord entity.
// If the FacialRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacialRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FacialRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *FacialRecordMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *FacialRecordMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the FacialRecord entity.
// If the FacialRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacialRecordMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *FacialRecordMutation) ResetPatientID() {
	m.patient = nil
}

// SetGuideID sets the "guide_id" field.
func (m *FacialRecordMutation) SetGuideID(u uuid.UUID) {
	m.guide = &u
}

// GuideID returns the value of the "guide_id" field in the mutation.
func (m *FacialRecordMutation) GuideID() (r uuid.UUID, exists bool) {
	v := m.guide
	if v == nil {
		return
	}
	return *v, true
}

// OldGuideID returns the old "guide_id" field's value of the FacialRecord entity.
// If the FacialRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacialRecordMutation) OldGuideID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuideID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuideID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuideID: %w", err)
	}
	return oldValue.GuideID, nil
}

// ResetGuideID resets all changes to the "guide_id" field.
func (m *FacialRecordMutation) ResetGuideID() {
	m.guide = nil
}

// SetPerformedAt sets the "performed_at" field.
func (m *FacialRecordMutation) SetPerformedAt(t time.Time) {
	m.performed_at = &t
}

// PerformedAt returns the value of the "performed_at" field in the mutation.
func (m *FacialRecordMutation) PerformedAt() (r time.Time, exists bool) {
	v := m.performed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformedAt returns the old "performed_at" field's value of the FacialRecord entity.
// If the FacialRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacialRecordMutation) OldPerformedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformedAt: %w", err)
	}
	return oldValue.PerformedAt, nil
}

// ResetPerformedAt resets all changes to the "performed_at" field.
func (m *FacialRecordMutation) ResetPerformedAt() {
	m.performed_at = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *FacialRecordMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[facialrecord.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *FacialRecordMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *FacialRecordMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *FacialRecordMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearGuide clears the "guide" edge to the Guide entity.
func (m *FacialRecordMutation) ClearGuide() {
	m.clearedguide = true
	m.clearedFields[facialrecord.FieldGuideID] = struct{}{}
}

// GuideCleared reports if the "guide" edge to the Guide entity was cleared.
func (m *FacialRecordMutation) GuideCleared() bool {
	return m.clearedguide
}

// GuideIDs returns the "guide" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GuideID instead. It exists only for internal usage by the builders.
func (m *FacialRecordMutation) GuideIDs() (ids []uuid.UUID) {
	if id := m.guide; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGuide resets all changes to the "guide" edge.
func (m *FacialRecordMutation) ResetGuide() {
	m.guide = nil
	m.clearedguide = false
}

// Where appends a list predicates to the FacialRecordMutation builder.
func (m *FacialRecordMutation) Where(ps ...predicate.FacialRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FacialRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FacialRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FacialRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FacialRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FacialRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FacialRecord).
func (m *FacialRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FacialRecordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, facialrecord.FieldCreatedAt)
	}
	if m.patient != nil {
		fields = append(fields, facialrecord.FieldPatientID)
	}
	if m.guide != nil {
		fields = append(fields, facialrecord.FieldGuideID)
	}
	if m.performed_at != nil {
		fields = append(fields, facialrecord.FieldPerformedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FacialRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case facialrecord.FieldCreatedAt:
		return m.CreatedAt()
	case facialrecord.FieldPatientID:
		return m.PatientID()
	case facialrecord.FieldGuideID:
		return m.GuideID()
	case facialrecord.FieldPerformedAt:
		return m.PerformedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FacialRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case facialrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case facialrecord.FieldPatientID:
		return m.OldPatientID(ctx)
	case facialrecord.FieldGuideID:
		return m.OldGuideID(ctx)
	case facialrecord.FieldPerformedAt:
		return m.OldPerformedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FacialRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacialRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case facialrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case facialrecord.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case facialrecord.FieldGuideID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuideID(v)
		return nil
	case facialrecord.FieldPerformedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FacialRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FacialRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FacialRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacialRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FacialRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FacialRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FacialRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FacialRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FacialRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FacialRecordMutation) ResetField(name string) error {
	switch name {
	case facialrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case facialrecord.FieldPatientID:
		m.ResetPatientID()
		return nil
	case facialrecord.FieldGuideID:
		m.ResetGuideID()
		return nil
	case facialrecord.FieldPerformedAt:
		m.ResetPerformedAt()
		return nil
	}
	return fmt.Errorf("unknown FacialRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FacialRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, facialrecord.EdgePatient)
	}
	if m.guide != nil {
		edges = append(edges, facialrecord.EdgeGuide)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FacialRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case facialrecord.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case facialrecord.EdgeGuide:
		if id := m.guide; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FacialRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FacialRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FacialRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, facialrecord.EdgePatient)
	}
	if m.clearedguide {
		edges = append(edges, facialrecord.EdgeGuide)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FacialRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case facialrecord.EdgePatient:
		return m.clearedpatient
	case facialrecord.EdgeGuide:
		return m.clearedguide
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FacialRecordMutation) ClearEdge(name string) error {
	switch name {
	case facialrecord.EdgePatient:
		m.ClearPatient()
		return nil
	case facialrecord.EdgeGuide:
		m.ClearGuide()
		return nil
	}
	return fmt.Errorf("unknown FacialRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FacialRecordMutation) ResetEdge(name string) error {
	switch name {
	case facialrecord.EdgePatient:
		m.ResetPatient()
		return nil
	case facialrecord.EdgeGuide:
		m.ResetGuide()
		return nil
	}
	return fmt.Errorf("unknown FacialRecord edge %s", name)
}

// GuideMutation represents an operation that mutates the Guide nodes in the graph.
type GuideMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	number           *string
	total_credits    *int
	addtotal_credits *int
	used_credits     *int
	addused_credits  *int
	expiration_date  *time.Time
	status           *guide.Status
	clearedFields    map[string]struct{}
	patient          *uuid.UUID
	clearedpatient   bool
	company          *uuid.UUID
	clearedcompany   bool
	facials          map[uuid.UUID]struct{}
	removedfacials   map[uuid.UUID]struct{}
	clearedfacials   bool
	done             bool
	oldValue         func(context.Context) (*Guide, error)
	predicates       []predicate.Guide
}

var _ ent.Mutation = (*GuideMutation)(nil)

// guideOption allows management of the mutation configuration using functional options.
type guideOption func(*GuideMutation)

// newGuideMutation creates new mutation for the Guide entity.
func newGuideMutation(c config, op Op, opts ...guideOption) *GuideMutation {
	m := &GuideMutation{
		config:        c,
		op:            op,
		typ:           TypeGuide,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGuideID sets the ID field of the mutation.
func withGuideID(id uuid.UUID) guideOption {
	return func(m *GuideMutation) {
		var (
			err   error
			once  sync.Once
			value *Guide
		)
		m.oldValue = func(ctx context.Context) (*Guide, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Guide.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGuide sets the old Guide of the mutation.
func withGuide(node *Guide) guideOption {
	return func(m *GuideMutation) {
		m.oldValue = func(context.Context) (*Guide, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GuideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GuideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Guide entities.
func (m *GuideMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GuideMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GuideMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Guide.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GuideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GuideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *GuideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GuideMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GuideMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *GuideMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *GuideMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *GuideMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *GuideMutation) ResetPatientID() {
	m.patient = nil
}

// SetCompanyID sets the "company_id" field.
func (m *GuideMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *GuideMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *GuideMutation) ResetCompanyID() {
	m.company = nil
}

// SetNumber sets the "number" field.
func (m *GuideMutation) SetNumber(s string) {
	m.number = &s
}

// Number returns the value of the "number" field in the mutation.
func (m *GuideMutation) Number() (r string, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// ResetNumber resets all changes to the "number" field.
func (m *GuideMutation) ResetNumber() {
	m.number = nil
}

// SetTotalCredits sets the "total_credits" field.
func (m *GuideMutation) SetTotalCredits(i int) {
	m.total_credits = &i
	m.addtotal_credits = nil
}

// TotalCredits returns the value of the "total_credits" field in the mutation.
func (m *GuideMutation) TotalCredits() (r int, exists bool) {
	v := m.total_credits
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCredits returns the old "total_credits" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldTotalCredits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCredits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCredits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCredits: %w", err)
	}
	return oldValue.TotalCredits, nil
}

// AddTotalCredits adds i to the "total_credits" field.
func (m *GuideMutation) AddTotalCredits(i int) {
	if m.addtotal_credits != nil {
		*m.addtotal_credits += i
	} else {
		m.addtotal_credits = &i
	}
}

// AddedTotalCredits returns the value that was added to the "total_credits" field in this mutation.
func (m *GuideMutation) AddedTotalCredits() (r int, exists bool) {
	v := m.addtotal_credits
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCredits resets all changes to the "total_credits" field.
func (m *GuideMutation) ResetTotalCredits() {
	m.total_credits = nil
	m.addtotal_credits = nil
}

// SetUsedCredits sets the "used_credits" field.
func (m *GuideMutation) SetUsedCredits(i int) {
	m.used_credits = &i
	m.addused_credits = nil
}

// UsedCredits returns the value of the "used_credits" field in the mutation.
func (m *GuideMutation) UsedCredits() (r int, exists bool) {
	v := m.used_credits
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedCredits returns the old "used_credits" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldUsedCredits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedCredits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedCredits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedCredits: %w", err)
	}
	return oldValue.UsedCredits, nil
}

// AddUsedCredits adds i to the "used_credits" field.
func (m *GuideMutation) AddUsedCredits(i int) {
	if m.addused_credits != nil {
		*m.addused_credits += i
	} else {
		m.addused_credits = &i
	}
}

// AddedUsedCredits returns the value that was added to the "used_credits" field in this mutation.
func (m *GuideMutation) AddedUsedCredits() (r int, exists bool) {
	v := m.addused_credits
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsedCredits resets all changes to the "used_credits" field.
func (m *GuideMutation) ResetUsedCredits() {
	m.used_credits = nil
	m.addused_credits = nil
}

// SetExpirationDate sets the "expiration_date" field.
func (m *GuideMutation) SetExpirationDate(t time.Time) {
	m.expiration_date = &t
}

// ExpirationDate returns the value of the "expiration_date" field in the mutation.
func (m *GuideMutation) ExpirationDate() (r time.Time, exists bool) {
	v := m.expiration_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpirationDate returns the old "expiration_date" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldExpirationDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpirationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpirationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpirationDate: %w", err)
	}
	return oldValue.ExpirationDate, nil
}

// ResetExpirationDate resets all changes to the "expiration_date" field.
func (m *GuideMutation) ResetExpirationDate() {
	m.expiration_date = nil
}

// SetStatus sets the "status" field.
func (m *GuideMutation) SetStatus(gu guide.Status) {
	m.status = &gu
}

// Status returns the value of the "status" field in the mutation.
func (m *GuideMutation) Status() (r guide.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Guide entity.
// If the Guide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuideMutation) OldStatus(ctx context.Context) (v guide.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GuideMutation) ResetStatus() {
	m.status = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *GuideMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[guide.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *GuideMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *GuideMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *GuideMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *GuideMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[guide.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *GuideMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *GuideMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *GuideMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddFacialIDs adds the "facials" edge to the FacialRecord entity by ids.
func (m *GuideMutation) AddFacialIDs(ids ...uuid.UUID) {
	if m.facials == nil {
		m.facials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.facials[ids[i]] = struct{}{}
	}
}

// ClearFacials clears the "facials" edge to the FacialRecord entity.
func (m *GuideMutation) ClearFacials() {
	m.clearedfacials = true
}

// FacialsCleared reports if the "facials" edge to the FacialRecord entity was cleared.
func (m *GuideMutation) FacialsCleared() bool {
	return m.clearedfacials
}

// RemoveFacialIDs removes the "facials" edge to the FacialRecord entity by IDs.
func (m *GuideMutation) RemoveFacialIDs(ids ...uuid.UUID) {
	if m.removedfacials == nil {
		m.removedfacials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.facials, ids[i])
		m.removedfacials[ids[i]] = struct{}{}
	}
}

// RemovedFacials returns the removed IDs of the "facials" edge to the FacialRecord entity.
func (m *GuideMutation) RemovedFacialsIDs() (ids []uuid.UUID) {
	for id := range m.removedfacials {
		ids = append(ids, id)
	}
	return
}

// FacialsIDs returns the "facials" edge IDs in the mutation.
func (m *GuideMutation) FacialsIDs() (ids []uuid.UUID) {
	for id := range m.facials {
		ids = append(ids, id)
	}
	return
}

// ResetFacials resets all changes to the "facials" edge.
func (m *GuideMutation) ResetFacials() {
	m.facials = nil
	m.clearedfacials = false
	m.removedfacials = nil
}

// Where appends a list predicates to the GuideMutation builder.
func (m *GuideMutation) Where(ps ...predicate.Guide) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GuideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GuideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Guide, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GuideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GuideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Guide).
func (m *GuideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GuideMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, guide.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, guide.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, guide.FieldPatientID)
	}
	if m.company != nil {
		fields = append(fields, guide.FieldCompanyID)
	}
	if m.number != nil {
		fields = append(fields, guide.FieldNumber)
	}
	if m.total_credits != nil {
		fields = append(fields, guide.FieldTotalCredits)
	}
	if m.used_credits != nil {
		fields = append(fields, guide.FieldUsedCredits)
	}
	if m.expiration_date != nil {
		fields = append(fields, guide.FieldExpirationDate)
	}
	if m.status != nil {
		fields = append(fields, guide.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GuideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case guide.FieldCreatedAt:
		return m.CreatedAt()
	case guide.FieldUpdatedAt:
		return m.UpdatedAt()
	case guide.FieldPatientID:
		return m.PatientID()
	case guide.FieldCompanyID:
		return m.CompanyID()
	case guide.FieldNumber:
		return m.Number()
	case guide.FieldTotalCredits:
		return m.TotalCredits()
	case guide.FieldUsedCredits:
		return m.UsedCredits()
	case guide.FieldExpirationDate:
		return m.ExpirationDate()
	case guide.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GuideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case guide.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case guide.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case guide.FieldPatientID:
		return m.OldPatientID(ctx)
	case guide.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case guide.FieldNumber:
		return m.OldNumber(ctx)
	case guide.FieldTotalCredits:
		return m.OldTotalCredits(ctx)
	case guide.FieldUsedCredits:
		return m.OldUsedCredits(ctx)
	case guide.FieldExpirationDate:
		return m.OldExpirationDate(ctx)
	case guide.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Guide field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case guide.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case guide.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case guide.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case guide.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case guide.FieldNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case guide.FieldTotalCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCredits(v)
		return nil
	case guide.FieldUsedCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedCredits(v)
		return nil
	case guide.FieldExpirationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpirationDate(v)
		return nil
	case guide.FieldStatus:
		v, ok := value.(guide.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Guide field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GuideMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_credits != nil {
		fields = append(fields, guide.FieldTotalCredits)
	}
	if m.addused_credits != nil {
		fields = append(fields, guide.FieldUsedCredits)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GuideMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case guide.FieldTotalCredits:
		return m.AddedTotalCredits()
	case guide.FieldUsedCredits:
		return m.AddedUsedCredits()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuideMutation) AddField(name string, value ent.Value) error {
	switch name {
	case guide.FieldTotalCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCredits(v)
		return nil
	case guide.FieldUsedCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsedCredits(v)
		return nil
	}
	return fmt.Errorf("unknown Guide numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GuideMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GuideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GuideMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Guide nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GuideMutation) ResetField(name string) error {
	switch name {
	case guide.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case guide.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case guide.FieldPatientID:
		m.ResetPatientID()
		return nil
	case guide.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case guide.FieldNumber:
		m.ResetNumber()
		return nil
	case guide.FieldTotalCredits:
		m.ResetTotalCredits()
		return nil
	case guide.FieldUsedCredits:
		m.ResetUsedCredits()
		return nil
	case guide.FieldExpirationDate:
		m.ResetExpirationDate()
		return nil
	case guide.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Guide field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GuideMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient != nil {
		edges = append(edges, guide.EdgePatient)
	}
	if m.company != nil {
		edges = append(edges, guide.EdgeCompany)
	}
	if m.facials != nil {
		edges = append(edges, guide.EdgeFacials)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GuideMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case guide.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case guide.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case guide.EdgeFacials:
		ids := make([]ent.Value, 0, len(m.facials))
		for id := range m.facials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GuideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfacials != nil {
		edges = append(edges, guide.EdgeFacials)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GuideMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case guide.EdgeFacials:
		ids := make([]ent.Value, 0, len(m.removedfacials))
		for id := range m.removedfacials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GuideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient {
		edges = append(edges, guide.EdgePatient)
	}
	if m.clearedcompany {
		edges = append(edges, guide.EdgeCompany)
	}
	if m.clearedfacials {
		edges = append(edges, guide.EdgeFacials)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GuideMutation) EdgeCleared(name string) bool {
	switch name {
	case guide.EdgePatient:
		return m.clearedpatient
	case guide.EdgeCompany:
		return m.clearedcompany
	case guide.EdgeFacials:
		return m.clearedfacials
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GuideMutation) ClearEdge(name string) error {
	switch name {
	case guide.EdgePatient:
		m.ClearPatient()
		return nil
	case guide.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Guide unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GuideMutation) ResetEdge(name string) error {
	switch name {
	case guide.EdgePatient:
		m.ResetPatient()
		return nil
	case guide.EdgeCompany:
		m.ResetCompany()
		return nil
	case guide.EdgeFacials:
		m.ResetFacials()
		return nil
	}
	return fmt.Errorf("unknown Guide edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	balance              *int
	addbalance           *int
	clearedFields        map[string]struct{}
	user                 *uuid.UUID
	cleareduser          bool
	guides               map[uuid.UUID]struct{}
	removedguides        map[uuid.UUID]struct{}
	clearedguides        bool
	facials              map[uuid.UUID]struct{}
	removedfacials       map[uuid.UUID]struct{}
	clearedfacials       bool
	sessions             map[uuid.UUID]struct{}
	removedsessions      map[uuid.UUID]struct{}
	clearedsessions      bool
	references           map[uuid.UUID]struct{}
	removedreferences    map[uuid.UUID]struct{}
	clearedreferences    bool
	links                map[uuid.UUID]struct{}
	removedlinks         map[uuid.UUID]struct{}
	clearedlinks         bool
	activity_logs        map[uuid.UUID]struct{}
	removedactivity_logs map[uuid.UUID]struct{}
	clearedactivity_logs bool
	done                 bool
	oldValue             func(context.Context) (*Patient, error)
	predicates           []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *PatientMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientMutation) ResetUserID() {
	m.user = nil
}

// SetBalance sets the "balance" field.
func (m *PatientMutation) SetBalance(i int) {
	m.balance = &i
	m.addbalance = nil
}

// Balance returns the value of the "balance" field in the mutation.
func (m *PatientMutation) Balance() (r int, exists bool) {
	v := m.balance
	if v == nil {
		return
	}
	return *v, true
}

// OldBalance returns the old "balance" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldBalance(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalance: %w", err)
	}
	return oldValue.Balance, nil
}

// AddBalance adds i to the "balance" field.
func (m *PatientMutation) AddBalance(i int) {
	if m.addbalance != nil {
		*m.addbalance += i
	} else {
		m.addbalance = &i
	}
}

// AddedBalance returns the value that was added to the "balance" field in this mutation.
func (m *PatientMutation) AddedBalance() (r int, exists bool) {
	v := m.addbalance
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalance resets all changes to the "balance" field.
func (m *PatientMutation) ResetBalance() {
	m.balance = nil
	m.addbalance = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *PatientMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PatientMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PatientMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddGuideIDs adds the "guides" edge to the Guide entity by ids.
func (m *PatientMutation) AddGuideIDs(ids ...uuid.UUID) {
	if m.guides == nil {
		m.guides = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.guides[ids[i]] = struct{}{}
	}
}

// ClearGuides clears the "guides" edge to the Guide entity.
func (m *PatientMutation) ClearGuides() {
	m.clearedguides = true
}

// GuidesCleared reports if the "guides" edge to the Guide entity was cleared.
func (m *PatientMutation) GuidesCleared() bool {
	return m.clearedguides
}

// RemoveGuideIDs removes the "guides" edge to the Guide entity by IDs.
func (m *PatientMutation) RemoveGuideIDs(ids ...uuid.UUID) {
	if m.removedguides == nil {
		m.removedguides = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.guides, ids[i])
		m.removedguides[ids[i]] = struct{}{}
	}
}

// RemovedGuides returns the removed IDs of the "guides" edge to the Guide entity.
func (m *PatientMutation) RemovedGuidesIDs() (ids []uuid.UUID) {
	for id := range m.removedguides {
		ids = append(ids, id)
	}
	return
}

// GuidesIDs returns the "guides" edge IDs in the mutation.
func (m *PatientMutation) GuidesIDs() (ids []uuid.UUID) {
	for id := range m.guides {
		ids = append(ids, id)
	}
	return
}

// ResetGuides resets all changes to the "guides" edge.
func (m *PatientMutation) ResetGuides() {
	m.guides = nil
	m.clearedguides = false
	m.removedguides = nil
}

// AddFacialIDs adds the "facials" edge to the FacialRecord entity by ids.
func (m *PatientMutation) AddFacialIDs(ids ...uuid.UUID) {
	if m.facials == nil {
		m.facials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.facials[ids[i]] = struct{}{}
	}
}

// ClearFacials clears the "facials" edge to the FacialRecord entity.
func (m *PatientMutation) ClearFacials() {
	m.clearedfacials = true
}

// FacialsCleared reports if the "facials" edge to the FacialRecord entity was cleared.
func (m *PatientMutation) FacialsCleared() bool {
	return m.clearedfacials
}

// RemoveFacialIDs removes the "facials" edge to the FacialRecord entity by IDs.
func (m *PatientMutation) RemoveFacialIDs(ids ...uuid.UUID) {
	if m.removedfacials == nil {
		m.removedfacials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.facials, ids[i])
		m.removedfacials[ids[i]] = struct{}{}
	}
}

// RemovedFacials returns the removed IDs of the "facials" edge to the FacialRecord entity.
func (m *PatientMutation) RemovedFacialsIDs() (ids []uuid.UUID) {
	for id := range m.removedfacials {
		ids = append(ids, id)
	}
	return
}

// FacialsIDs returns the "facials" edge IDs in the mutation.
func (m *PatientMutation) FacialsIDs() (ids []uuid.UUID) {
	for id := range m.facials {
		ids = append(ids, id)
	}
	return
}

// ResetFacials resets all changes to the "facials" edge.
func (m *PatientMutation) ResetFacials() {
	m.facials = nil
	m.clearedfacials = false
	m.removedfacials = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *PatientMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *PatientMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *PatientMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *PatientMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *PatientMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *PatientMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *PatientMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddReferenceIDs adds the "references" edge to the PsychologistReference entity by ids.
func (m *PatientMutation) AddReferenceIDs(ids ...uuid.UUID) {
	if m.references == nil {
		m.references = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.references[ids[i]] = struct{}{}
	}
}

// ClearReferences clears the "references" edge to the PsychologistReference entity.
func (m *PatientMutation) ClearReferences() {
	m.clearedreferences = true
}

// ReferencesCleared reports if the "references" edge to the PsychologistReference entity was cleared.
func (m *PatientMutation) ReferencesCleared() bool {
	return m.clearedreferences
}

// RemoveReferenceIDs removes the "references" edge to the PsychologistReference entity by IDs.
func (m *PatientMutation) RemoveReferenceIDs(ids ...uuid.UUID) {
	if m.removedreferences == nil {
		m.removedreferences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.references, ids[i])
		m.removedreferences[ids[i]] = struct{}{}
	}
}

// RemovedReferences returns the removed IDs of the "references" edge to the PsychologistReference entity.
func (m *PatientMutation) RemovedReferencesIDs() (ids []uuid.UUID) {
	for id := range m.removedreferences {
		ids = append(ids, id)
	}
	return
}

// ReferencesIDs returns the "references" edge IDs in the mutation.
func (m *PatientMutation) ReferencesIDs() (ids []uuid.UUID) {
	for id := range m.references {
		ids = append(ids, id)
	}
	return
}

// ResetReferences resets all changes to the "references" edge.
func (m *PatientMutation) ResetReferences() {
	m.references = nil
	m.clearedreferences = false
	m.removedreferences = nil
}

// AddLinkIDs adds the "links" edge to the PatientPsychologistLink entity by ids.
func (m *PatientMutation) AddLinkIDs(ids ...uuid.UUID) {
	if m.links == nil {
		m.links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.links[ids[i]] = struct{}{}
	}
}

// ClearLinks clears the "links" edge to the PatientPsychologistLink entity.
func (m *PatientMutation) ClearLinks() {
	m.clearedlinks = true
}

// LinksCleared reports if the "links" edge to the PatientPsychologistLink entity was cleared.
func (m *PatientMutation) LinksCleared() bool {
	return m.clearedlinks
}

// RemoveLinkIDs removes the "links" edge to the PatientPsychologistLink entity by IDs.
func (m *PatientMutation) RemoveLinkIDs(ids ...uuid.UUID) {
	if m.removedlinks == nil {
		m.removedlinks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.links, ids[i])
		m.removedlinks[ids[i]] = struct{}{}
	}
}

// RemovedLinks returns the removed IDs of the "links" edge to the PatientPsychologistLink entity.
func (m *PatientMutation) RemovedLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedlinks {
		ids = append(ids, id)
	}
	return
}

// LinksIDs returns the "links" edge IDs in the mutation.
func (m *PatientMutation) LinksIDs() (ids []uuid.UUID) {
	for id := range m.links {
		ids = append(ids, id)
	}
	return
}

// ResetLinks resets all changes to the "links" edge.
func (m *PatientMutation) ResetLinks() {
	m.links = nil
	m.clearedlinks = false
	m.removedlinks = nil
}

// AddActivityLogIDs adds the "activity_logs" edge to the ActivityLog entity by ids.
func (m *PatientMutation) AddActivityLogIDs(ids ...uuid.UUID) {
	if m.activity_logs == nil {
		m.activity_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.activity_logs[ids[i]] = struct{}{}
	}
}

// ClearActivityLogs clears the "activity_logs" edge to the ActivityLog entity.
func (m *PatientMutation) ClearActivityLogs() {
	m.clearedactivity_logs = true
}

// ActivityLogsCleared reports if the "activity_logs" edge to the ActivityLog entity was cleared.
func (m *PatientMutation) ActivityLogsCleared() bool {
	return m.clearedactivity_logs
}

// RemoveActivityLogIDs removes the "activity_logs" edge to the ActivityLog entity by IDs.
func (m *PatientMutation) RemoveActivityLogIDs(ids ...uuid.UUID) {
	if m.removedactivity_logs == nil {
		m.removedactivity_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.activity_logs, ids[i])
		m.removedactivity_logs[ids[i]] = struct{}{}
	}
}

// RemovedActivityLogs returns the removed IDs of the "activity_logs" edge to the ActivityLog entity.
func (m *PatientMutation) RemovedActivityLogsIDs() (ids []uuid.UUID) {
	for id := range m.removedactivity_logs {
		ids = append(ids, id)
	}
	return
}

// ActivityLogsIDs returns the "activity_logs" edge IDs in the mutation.
func (m *PatientMutation) ActivityLogsIDs() (ids []uuid.UUID) {
	for id := range m.activity_logs {
		ids = append(ids, id)
	}
	return
}

// ResetActivityLogs resets all changes to the "activity_logs" edge.
func (m *PatientMutation) ResetActivityLogs() {
	m.activity_logs = nil
	m.clearedactivity_logs = false
	m.removedactivity_logs = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, patient.FieldUserID)
	}
	if m.balance != nil {
		fields = append(fields, patient.FieldBalance)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldUserID:
		return m.UserID()
	case patient.FieldBalance:
		return m.Balance()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldUserID:
		return m.OldUserID(ctx)
	case patient.FieldBalance:
		return m.OldBalance(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patient.FieldBalance:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalance(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	var fields []string
	if m.addbalance != nil {
		fields = append(fields, patient.FieldBalance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldBalance:
		return m.AddedBalance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patient.FieldBalance:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalance(v)
		return nil
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldUserID:
		m.ResetUserID()
		return nil
	case patient.FieldBalance:
		m.ResetBalance()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.user != nil {
		edges = append(edges, patient.EdgeUser)
	}
	if m.guides != nil {
		edges = append(edges, patient.EdgeGuides)
	}
	if m.facials != nil {
		edges = append(edges, patient.EdgeFacials)
	}
	if m.sessions != nil {
		edges = append(edges, patient.EdgeSessions)
	}
	if m.references != nil {
		edges = append(edges, patient.EdgeReferences)
	}
	if m.links != nil {
		edges = append(edges, patient.EdgeLinks)
	}
	if m.activity_logs != nil {
		edges = append(edges, patient.EdgeActivityLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeGuides:
		ids := make([]ent.Value, 0, len(m.guides))
		for id := range m.guides {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeFacials:
		ids := make([]ent.Value, 0, len(m.facials))
		for id := range m.facials {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeReferences:
		ids := make([]ent.Value, 0, len(m.references))
		for id := range m.references {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeLinks:
		ids := make([]ent.Value, 0, len(m.links))
		for id := range m.links {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeActivityLogs:
		ids := make([]ent.Value, 0, len(m.activity_logs))
		for id := range m.activity_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedguides != nil {
		edges = append(edges, patient.EdgeGuides)
	}
	if m.removedfacials != nil {
		edges = append(edges, patient.EdgeFacials)
	}
	if m.removedsessions != nil {
		edges = append(edges, patient.EdgeSessions)
	}
	if m.removedreferences != nil {
		edges = append(edges, patient.EdgeReferences)
	}
	if m.removedlinks != nil {
		edges = append(edges, patient.EdgeLinks)
	}
	if m.removedactivity_logs != nil {
		edges = append(edges, patient.EdgeActivityLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeGuides:
		ids := make([]ent.Value, 0, len(m.removedguides))
		for id := range m.removedguides {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeFacials:
		ids := make([]ent.Value, 0, len(m.removedfacials))
		for id := range m.removedfacials {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeReferences:
		ids := make([]ent.Value, 0, len(m.removedreferences))
		for id := range m.removedreferences {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeLinks:
		ids := make([]ent.Value, 0, len(m.removedlinks))
		for id := range m.removedlinks {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeActivityLogs:
		ids := make([]ent.Value, 0, len(m.removedactivity_logs))
		for id := range m.removedactivity_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.cleareduser {
		edges = append(edges, patient.EdgeUser)
	}
	if m.clearedguides {
		edges = append(edges, patient.EdgeGuides)
	}
	if m.clearedfacials {
		edges = append(edges, patient.EdgeFacials)
	}
	if m.clearedsessions {
		edges = append(edges, patient.EdgeSessions)
	}
	if m.clearedreferences {
		edges = append(edges, patient.EdgeReferences)
	}
	if m.clearedlinks {
		edges = append(edges, patient.EdgeLinks)
	}
	if m.clearedactivity_logs {
		edges = append(edges, patient.EdgeActivityLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeUser:
		return m.cleareduser
	case patient.EdgeGuides:
		return m.clearedguides
	case patient.EdgeFacials:
		return m.clearedfacials
	case patient.EdgeSessions:
		return m.clearedsessions
	case patient.EdgeReferences:
		return m.clearedreferences
	case patient.EdgeLinks:
		return m.clearedlinks
	case patient.EdgeActivityLogs:
		return m.clearedactivity_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ResetUser()
		return nil
	case patient.EdgeGuides:
		m.ResetGuides()
		return nil
	case patient.EdgeFacials:
		m.ResetFacials()
		return nil
	case patient.EdgeSessions:
		m.ResetSessions()
		return nil
	case patient.EdgeReferences:
		m.ResetReferences()
		return nil
	case patient.EdgeLinks:
		m.ResetLinks()
		return nil
	case patient.EdgeActivityLogs:
		m.ResetActivityLogs()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PatientPsychologistLinkMutation represents an operation that mutates the PatientPsychologistLink nodes in the graph.
type PatientPsychologistLinkMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	status              *patientpsychologistlink.Status
	requested_by        *patientpsychologistlink.RequestedBy
	responded_at        *time.Time
	clearedFields       map[string]struct{}
	patient             *uuid.UUID
	clearedpatient      bool
	psychologist        *uuid.UUID
	clearedpsychologist bool
	done                bool
	oldValue            func(context.Context) (*PatientPsychologistLink, error)
	predicates          []predicate.PatientPsychologistLink
}

var _ ent.Mutation = (*PatientPsychologistLinkMutation)(nil)

// patientpsychologistlinkOption allows management of the mutation configuration using functional options.
type patientpsychologistlinkOption func(*PatientPsychologistLinkMutation)

// newPatientPsychologistLinkMutation creates new mutation for the PatientPsychologistLink entity.
func newPatientPsychologistLinkMutation(c config, op Op, opts ...patientpsychologistlinkOption) *PatientPsychologistLinkMutation {
	m := &PatientPsychologistLinkMutation{
		config:        c,
		op:            op,
		typ:           TypePatientPsychologistLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientPsychologistLinkID sets the ID field of the mutation.
func withPatientPsychologistLinkID(id uuid.UUID) patientpsychologistlinkOption {
	return func(m *PatientPsychologistLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientPsychologistLink
		)
		m.oldValue = func(ctx context.Context) (*PatientPsychologistLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientPsychologistLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientPsychologistLink sets the old PatientPsychologistLink of the mutation.
func withPatientPsychologistLink(node *PatientPsychologistLink) patientpsychologistlinkOption {
	return func(m *PatientPsychologistLinkMutation) {
		m.oldValue = func(context.Context) (*PatientPsychologistLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientPsychologistLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientPsychologistLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientPsychologistLink entities.
func (m *PatientPsychologistLinkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientPsychologistLinkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientPsychologistLinkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientPsychologistLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientPsychologistLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientPsychologistLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatientPsychologistLink entity.
// If the PatientPsychologistLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientPsychologistLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PatientPsychologistLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientPsychologistLinkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientPsychologistLinkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PatientPsychologistLink entity.
// If the PatientPsychologistLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientPsychologistLinkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PatientPsychologistLinkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PatientPsychologistLinkMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PatientPsychologistLinkMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PatientPsychologistLink entity.
// If the PatientPsychologistLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientPsychologistLinkMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PatientPsychologistLinkMutation) ResetPatientID() {
	m.patient = nil
}

// SetPsychologistID sets the "psychologist_id" field.
func (m *PatientPsychologistLinkMutation) SetPsychologistID(u uuid.UUID) {
	m.psychologist = &u
}

// PsychologistID returns the value of the "psychologist_id" field in the mutation.
func (m *PatientPsychologistLinkMutation) PsychologistID() (r uuid.UUID, exists bool) {
	v := m.psychologist
	if v == nil {
		return
	}
	return *v, true
}

// OldPsychologistID returns the old "psychologist_id" field's value of the PatientPsychologistLink entity.
// If the PatientPsychologistLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientPsychologistLinkMutation) OldPsychologistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPsychologistID: %w", err)
	}
	return oldValue.PsychologistID, nil
}

// ResetPsychologistID resets all changes to the "psychologist_id" field.
func (m *PatientPsychologistLinkMutation) ResetPsychologistID() {
	m.psychologist = nil
}

// SetStatus sets the "status" field.
func (m *PatientPsychologistLinkMutation) SetStatus(pa patientpsychologistlink.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PatientPsychologistLinkMutation) Status() (r patientpsychologistlink.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PatientPsychologistLink entity.
// If the PatientPsychologistLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientPsychologistLinkMutation) OldStatus(ctx context.Context) (v patientpsychologistlink.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PatientPsychologistLinkMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *PatientPsychologistLinkMutation) SetRequestedBy(pb patientpsychologistlink.RequestedBy) {
	m.requested_by = &pb
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *PatientPsychologistLinkMutation) RequestedBy() (r patientpsychologistlink.RequestedBy, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the PatientPsychologistLink entity.
// If the PatientPsychologistLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientPsychologistLinkMutation) OldRequestedBy(ctx context.Context) (v patientpsychologistlink.RequestedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *PatientPsychologistLinkMutation) ResetRequestedBy() {
	m.requested_by = nil
}

// SetRespondedAt sets the "responded_at" field.
func (m *PatientPsychologistLinkMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *PatientPsychologistLinkMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the PatientPsychologistLink entity.
// If the PatientPsychologistLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientPsychologistLinkMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *PatientPsychologistLinkMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[patientpsychologistlink.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *PatientPsychologistLinkMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[patientpsychologistlink.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *PatientPsychologistLinkMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, patientpsychologistlink.FieldRespondedAt)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *PatientPsychologistLinkMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[patientpsychologistlink.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *PatientPsychologistLinkMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *PatientPsychologistLinkMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *PatientPsychologistLinkMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearPsychologist clears the "psychologist" edge to the Psychologist entity.
func (m *PatientPsychologistLinkMutation) ClearPsychologist() {
	m.clearedpsychologist = true
	m.clearedFields[patientpsychologistlink.FieldPsychologistID] = struct{}{}
}

// PsychologistCleared reports if the "psychologist" edge to the Psychologist entity was cleared.
func (m *PatientPsychologistLinkMutation) PsychologistCleared() bool {
	return m.clearedpsychologist
}

// PsychologistIDs returns the "psychologist" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PsychologistID instead. It exists only for internal usage by the builders.
func (m *PatientPsychologistLinkMutation) PsychologistIDs() (ids []uuid.UUID) {
	if id := m.psychologist; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPsychologist resets all changes to the "psychologist" edge.
func (m *PatientPsychologistLinkMutation) ResetPsychologist() {
	m.psychologist = nil
	m.clearedpsychologist = false
}

// Where appends a list predicates to the PatientPsychologistLinkMutation builder.
func (m *PatientPsychologistLinkMutation) Where(ps ...predicate.PatientPsychologistLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientPsychologistLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientPsychologistLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientPsychologistLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientPsychologistLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientPsychologistLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientPsychologistLink).
func (m *PatientPsychologistLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientPsychologistLinkMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, patientpsychologistlink.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patientpsychologistlink.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, patientpsychologistlink.FieldPatientID)
	}
	if m.psychologist != nil {
		fields = append(fields, patientpsychologistlink.FieldPsychologistID)
	}
	if m.status != nil {
		fields = append(fields, patientpsychologistlink.FieldStatus)
	}
	if m.requested_by != nil {
		fields = append(fields, patientpsychologistlink.FieldRequestedBy)
	}
	if m.responded_at != nil {
		fields = append(fields, patientpsychologistlink.FieldRespondedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientPsychologistLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientpsychologistlink.FieldCreatedAt:
		return m.CreatedAt()
	case patientpsychologistlink.FieldUpdatedAt:
		return m.UpdatedAt()
	case patientpsychologistlink.FieldPatientID:
		return m.PatientID()
	case patientpsychologistlink.FieldPsychologistID:
		return m.PsychologistID()
	case patientpsychologistlink.FieldStatus:
		return m.Status()
	case patientpsychologistlink.FieldRequestedBy:
		return m.RequestedBy()
	case patientpsychologistlink.FieldRespondedAt:
		return m.RespondedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientPsychologistLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientpsychologistlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patientpsychologistlink.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patientpsychologistlink.FieldPatientID:
		return m.OldPatientID(ctx)
	case patientpsychologistlink.FieldPsychologistID:
		return m.OldPsychologistID(ctx)
	case patientpsychologistlink.FieldStatus:
		return m.OldStatus(ctx)
	case patientpsychologistlink.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case patientpsychologistlink.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatientPsychologistLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientPsychologistLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientpsychologistlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patientpsychologistlink.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patientpsychologistlink.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case patientpsychologistlink.FieldPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPsychologistID(v)
		return nil
	case patientpsychologistlink.FieldStatus:
		v, ok := value.(patientpsychologistlink.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case patientpsychologistlink.FieldRequestedBy:
		v, ok := value.(patientpsychologistlink.RequestedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case patientpsychologistlink.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatientPsychologistLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientPsychologistLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientPsychologistLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientPsychologistLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PatientPsychologistLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientPsychologistLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientpsychologistlink.FieldRespondedAt) {
		fields = append(fields, patientpsychologistlink.FieldRespondedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientPsychologistLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientPsychologistLinkMutation) ClearField(name string) error {
	switch name {
	case patientpsychologistlink.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	}
	return fmt.Errorf("unknown PatientPsychologistLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientPsychologistLinkMutation) ResetField(name string) error {
	switch name {
	case patientpsychologistlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patientpsychologistlink.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patientpsychologistlink.FieldPatientID:
		m.ResetPatientID()
		return nil
	case patientpsychologistlink.FieldPsychologistID:
		m.ResetPsychologistID()
		return nil
	case patientpsychologistlink.FieldStatus:
		m.ResetStatus()
		return nil
	case patientpsychologistlink.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case patientpsychologistlink.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	}
	return fmt.Errorf("unknown PatientPsychologistLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientPsychologistLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, patientpsychologistlink.EdgePatient)
	}
	if m.psychologist != nil {
		edges = append(edges, patientpsychologistlink.EdgePsychologist)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientPsychologistLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patientpsychologistlink.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case patientpsychologistlink.EdgePsychologist:
		if id := m.psychologist; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientPsychologistLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientPsychologistLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientPsychologistLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, patientpsychologistlink.EdgePatient)
	}
	if m.clearedpsychologist {
		edges = append(edges, patientpsychologistlink.EdgePsychologist)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientPsychologistLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case patientpsychologistlink.EdgePatient:
		return m.clearedpatient
	case patientpsychologistlink.EdgePsychologist:
		return m.clearedpsychologist
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientPsychologistLinkMutation) ClearEdge(name string) error {
	switch name {
	case patientpsychologistlink.EdgePatient:
		m.ClearPatient()
		return nil
	case patientpsychologistlink.EdgePsychologist:
		m.ClearPsychologist()
		return nil
	}
	return fmt.Errorf("unknown PatientPsychologistLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientPsychologistLinkMutation) ResetEdge(name string) error {
	switch name {
	case patientpsychologistlink.EdgePatient:
		m.ResetPatient()
		return nil
	case patientpsychologistlink.EdgePsychologist:
		m.ResetPsychologist()
		return nil
	}
	return fmt.Errorf("unknown PatientPsychologistLink edge %s", name)
}

// PsychologistMutation represents an operation that mutates the Psychologist nodes in the graph.
type PsychologistMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	crp                      *string
	clearedFields            map[string]struct{}
	user                     *uuid.UUID
	cleareduser              bool
	sessions                 map[uuid.UUID]struct{}
	removedsessions          map[uuid.UUID]struct{}
	clearedsessions          bool
	links                    map[uuid.UUID]struct{}
	removedlinks             map[uuid.UUID]struct{}
	clearedlinks             bool
	linked_references        map[uuid.UUID]struct{}
	removedlinked_references map[uuid.UUID]struct{}
	clearedlinked_references bool
	done                     bool
	oldValue                 func(context.Context) (*Psychologist, error)
	predicates               []predicate.Psychologist
}

var _ ent.Mutation = (*PsychologistMutation)(nil)

// psychologistOption allows management of the mutation configuration using functional options.
type psychologistOption func(*PsychologistMutation)

// newPsychologistMutation creates new mutation for the Psychologist entity.
func newPsychologistMutation(c config, op Op, opts ...psychologistOption) *PsychologistMutation {
	m := &PsychologistMutation{
		config:        c,
		op:            op,
		typ:           TypePsychologist,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPsychologistID sets the ID field of the mutation.
func withPsychologistID(id uuid.UUID) psychologistOption {
	return func(m *PsychologistMutation) {
		var (
			err   error
			once  sync.Once
			value *Psychologist
		)
		m.oldValue = func(ctx context.Context) (*Psychologist, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Psychologist.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPsychologist sets the old Psychologist of the mutation.
func withPsychologist(node *Psychologist) psychologistOption {
	return func(m *PsychologistMutation) {
		m.oldValue = func(context.Context) (*Psychologist, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PsychologistMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PsychologistMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Psychologist entities.
func (m *PsychologistMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PsychologistMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PsychologistMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Psychologist.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PsychologistMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PsychologistMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PsychologistMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PsychologistMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PsychologistMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PsychologistMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *PsychologistMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PsychologistMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PsychologistMutation) ResetUserID() {
	m.user = nil
}

// SetCrp sets the "crp" field.
func (m *PsychologistMutation) SetCrp(s string) {
	m.crp = &s
}

// Crp returns the value of the "crp" field in the mutation.
func (m *PsychologistMutation) Crp() (r string, exists bool) {
	v := m.crp
	if v == nil {
		return
	}
	return *v, true
}

// OldCrp returns the old "crp" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldCrp(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrp: %w", err)
	}
	return oldValue.Crp, nil
}

// ClearCrp clears the value of the "crp" field.
func (m *PsychologistMutation) ClearCrp() {
	m.crp = nil
	m.clearedFields[psychologist.FieldCrp] = struct{}{}
}

// CrpCleared returns if the "crp" field was cleared in this mutation.
func (m *PsychologistMutation) CrpCleared() bool {
	_, ok := m.clearedFields[psychologist.FieldCrp]
	return ok
}

// ResetCrp resets all changes to the "crp" field.
func (m *PsychologistMutation) ResetCrp() {
	m.crp = nil
	delete(m.clearedFields, psychologist.FieldCrp)
}

// ClearUser clears the "user" edge to the User entity.
func (m *PsychologistMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[psychologist.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PsychologistMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PsychologistMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PsychologistMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *PsychologistMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *PsychologistMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *PsychologistMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *PsychologistMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *PsychologistMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *PsychologistMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *PsychologistMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddLinkIDs adds the "links" edge to the PatientPsychologistLink entity by ids.
func (m *PsychologistMutation) AddLinkIDs(ids ...uuid.UUID) {
	if m.links == nil {
		m.links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.links[ids[i]] = struct{}{}
	}
}

// ClearLinks clears the "links" edge to the PatientPsychologistLink entity.
func (m *PsychologistMutation) ClearLinks() {
	m.clearedlinks = true
}

// LinksCleared reports if the "links" edge to the PatientPsychologistLink entity was cleared.
func (m *PsychologistMutation) LinksCleared() bool {
	return m.clearedlinks
}

// RemoveLinkIDs removes the "links" edge to the PatientPsychologistLink entity by IDs.
func (m *PsychologistMutation) RemoveLinkIDs(ids ...uuid.UUID) {
	if m.removedlinks == nil {
		m.removedlinks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.links, ids[i])
		m.removedlinks[ids[i]] = struct{}{}
	}
}

// RemovedLinks returns the removed IDs of the "links" edge to the PatientPsychologistLink entity.
func (m *PsychologistMutation) RemovedLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedlinks {
		ids = append(ids, id)
	}
	return
}

// LinksIDs returns the "links" edge IDs in the mutation.
func (m *PsychologistMutation) LinksIDs() (ids []uuid.UUID) {
	for id := range m.links {
		ids = append(ids, id)
	}
	return
}

// ResetLinks resets all changes to the "links" edge.
func (m *PsychologistMutation) ResetLinks() {
	m.links = nil
	m.clearedlinks = false
	m.removedlinks = nil
}

// AddLinkedReferenceIDs adds the "linked_references" edge to the PsychologistReference entity by ids.
func (m *PsychologistMutation) AddLinkedReferenceIDs(ids ...uuid.UUID) {
	if m.linked_references == nil {
		m.linked_references = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.linked_references[ids[i]] = struct{}{}
	}
}

// ClearLinkedReferences clears the "linked_references" edge to the PsychologistReference entity.
func (m *PsychologistMutation) ClearLinkedReferences() {
	m.clearedlinked_references = true
}

// LinkedReferencesCleared reports if the "linked_references" edge to the PsychologistReference entity was cleared.
func (m *PsychologistMutation) LinkedReferencesCleared() bool {
	return m.clearedlinked_references
}

// RemoveLinkedReferenceIDs removes the "linked_references" edge to the PsychologistReference entity by IDs.
func (m *PsychologistMutation) RemoveLinkedReferenceIDs(ids ...uuid.UUID) {
	if m.removedlinked_references == nil {
		m.removedlinked_references = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.linked_references, ids[i])
		m.removedlinked_references[ids[i]] = struct{}{}
	}
}

// RemovedLinkedReferences returns the removed IDs of the "linked_references" edge to the PsychologistReference entity.
func (m *PsychologistMutation) RemovedLinkedReferencesIDs() (ids []uuid.UUID) {
	for id := range m.removedlinked_references {
		ids = append(ids, id)
	}
	return
}

// LinkedReferencesIDs returns the "linked_references" edge IDs in the mutation.
func (m *PsychologistMutation) LinkedReferencesIDs() (ids []uuid.UUID) {
	for id := range m.linked_references {
		ids = append(ids, id)
	}
	return
}

// ResetLinkedReferences resets all changes to the "linked_references" edge.
func (m *PsychologistMutation) ResetLinkedReferences() {
	m.linked_references = nil
	m.clearedlinked_references = false
	m.removedlinked_references = nil
}

// Where appends a list predicates to the PsychologistMutation builder.
func (m *PsychologistMutation) Where(ps ...predicate.Psychologist) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PsychologistMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PsychologistMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Psychologist, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PsychologistMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PsychologistMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Psychologist).
func (m *PsychologistMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PsychologistMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, psychologist.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, psychologist.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, psychologist.FieldUserID)
	}
	if m.crp != nil {
		fields = append(fields, psychologist.FieldCrp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PsychologistMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case psychologist.FieldCreatedAt:
		return m.CreatedAt()
	case psychologist.FieldUpdatedAt:
		return m.UpdatedAt()
	case psychologist.FieldUserID:
		return m.UserID()
	case psychologist.FieldCrp:
		return m.Crp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PsychologistMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case psychologist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case psychologist.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case psychologist.FieldUserID:
		return m.OldUserID(ctx)
	case psychologist.FieldCrp:
		return m.OldCrp(ctx)
	}
	return nil, fmt.Errorf("unknown Psychologist field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PsychologistMutation) SetField(name string, value ent.Value) error {
	switch name {
	case psychologist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case psychologist.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case psychologist.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case psychologist.FieldCrp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrp(v)
		return nil
	}
	return fmt.Errorf("unknown Psychologist field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PsychologistMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PsychologistMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PsychologistMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Psychologist numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PsychologistMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(psychologist.FieldCrp) {
		fields = append(fields, psychologist.FieldCrp)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PsychologistMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PsychologistMutation) ClearField(name string) error {
	switch name {
	case psychologist.FieldCrp:
		m.ClearCrp()
		return nil
	}
	return fmt.Errorf("unknown Psychologist nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PsychologistMutation) ResetField(name string) error {
	switch name {
	case psychologist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case psychologist.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case psychologist.FieldUserID:
		m.ResetUserID()
		return nil
	case psychologist.FieldCrp:
		m.ResetCrp()
		return nil
	}
	return fmt.Errorf("unknown Psychologist field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PsychologistMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.user != nil {
		edges = append(edges, psychologist.EdgeUser)
	}
	if m.sessions != nil {
		edges = append(edges, psychologist.EdgeSessions)
	}
	if m.links != nil {
		edges = append(edges, psychologist.EdgeLinks)
	}
	if m.linked_references != nil {
		edges = append(edges, psychologist.EdgeLinkedReferences)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PsychologistMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case psychologist.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case psychologist.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case psychologist.EdgeLinks:
		ids := make([]ent.Value, 0, len(m.links))
		for id := range m.links {
			ids = append(ids, id)
		}
		return ids
	case psychologist.EdgeLinkedReferences:
		ids := make([]ent.Value, 0, len(m.linked_references))
		for id := range m.linked_references {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PsychologistMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsessions != nil {
		edges = append(edges, psychologist.EdgeSessions)
	}
	if m.removedlinks != nil {
		edges = append(edges, psychologist.EdgeLinks)
	}
	if m.removedlinked_references != nil {
		edges = append(edges, psychologist.EdgeLinkedReferences)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PsychologistMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case psychologist.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case psychologist.EdgeLinks:
		ids := make([]ent.Value, 0, len(m.removedlinks))
		for id := range m.removedlinks {
			ids = append(ids, id)
		}
		return ids
	case psychologist.EdgeLinkedReferences:
		ids := make([]ent.Value, 0, len(m.removedlinked_references))
		for id := range m.removedlinked_references {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PsychologistMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareduser {
		edges = append(edges, psychologist.EdgeUser)
	}
	if m.clearedsessions {
		edges = append(edges, psychologist.EdgeSessions)
	}
	if m.clearedlinks {
		edges = append(edges, psychologist.EdgeLinks)
	}
	if m.clearedlinked_references {
		edges = append(edges, psychologist.EdgeLinkedReferences)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PsychologistMutation) EdgeCleared(name string) bool {
	switch name {
	case psychologist.EdgeUser:
		return m.cleareduser
	case psychologist.EdgeSessions:
		return m.clearedsessions
	case psychologist.EdgeLinks:
		return m.clearedlinks
	case psychologist.EdgeLinkedReferences:
		return m.clearedlinked_references
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PsychologistMutation) ClearEdge(name string) error {
	switch name {
	case psychologist.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Psychologist unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PsychologistMutation) ResetEdge(name string) error {
	switch name {
	case psychologist.EdgeUser:
		m.ResetUser()
		return nil
	case psychologist.EdgeSessions:
		m.ResetSessions()
		return nil
	case psychologist.EdgeLinks:
		m.ResetLinks()
		return nil
	case psychologist.EdgeLinkedReferences:
		m.ResetLinkedReferences()
		return nil
	}
	return fmt.Errorf("unknown Psychologist edge %s", name)
}

// PsychologistReferenceMutation represents an operation that mutates the PsychologistReference nodes in the graph.
type PsychologistReferenceMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	created_at                 *time.Time
	updated_at                 *time.Time
	name                       *string
	clearedFields              map[string]struct{}
	patient                    *uuid.UUID
	clearedpatient             bool
	linked_psychologist        *uuid.UUID
	clearedlinked_psychologist bool
	sessions                   map[uuid.UUID]struct{}
	removedsessions            map[uuid.UUID]struct{}
	clearedsessions            bool
	done                       bool
	oldValue                   func(context.Context) (*PsychologistReference, error)
	predicates                 []predicate.PsychologistReference
}

var _ ent.Mutation = (*PsychologistReferenceMutation)(nil)

// psychologistreferenceOption allows management of the mutation configuration using functional options.
type psychologistreferenceOption func(*PsychologistReferenceMutation)

// newPsychologistReferenceMutation creates new mutation for the PsychologistReference entity.
func newPsychologistReferenceMutation(c config, op Op, opts ...psychologistreferenceOption) *PsychologistReferenceMutation {
	m := &PsychologistReferenceMutation{
		config:        c,
		op:            op,
		typ:           TypePsychologistReference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPsychologistReferenceID sets the ID field of the mutation.
func withPsychologistReferenceID(id uuid.UUID) psychologistreferenceOption {
	return func(m *PsychologistReferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *PsychologistReference
		)
		m.oldValue = func(ctx context.Context) (*PsychologistReference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PsychologistReference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPsychologistReference sets the old PsychologistReference of the mutation.
func withPsychologistReference(node *PsychologistReference) psychologistreferenceOption {
	return func(m *PsychologistReferenceMutation) {
		m.oldValue = func(context.Context) (*PsychologistReference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PsychologistReferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PsychologistReferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PsychologistReference entities.
func (m *PsychologistReferenceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PsychologistReferenceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PsychologistReferenceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PsychologistReference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PsychologistReferenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PsychologistReferenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PsychologistReference entity.
// If the PsychologistReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistReferenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PsychologistReferenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PsychologistReferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PsychologistReferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PsychologistReference entity.
// If the PsychologistReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistReferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PsychologistReferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PsychologistReferenceMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PsychologistReferenceMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PsychologistReference entity.
// If the PsychologistReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistReferenceMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PsychologistReferenceMutation) ResetPatientID() {
	m.patient = nil
}

// SetName sets the "name" field.
func (m *PsychologistReferenceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PsychologistReferenceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PsychologistReference entity.
// If the PsychologistReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistReferenceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PsychologistReferenceMutation) ResetName() {
	m.name = nil
}

// SetLinkedPsychologistID sets the "linked_psychologist_id" field.
func (m *PsychologistReferenceMutation) SetLinkedPsychologistID(u uuid.UUID) {
	m.linked_psychologist = &u
}

// LinkedPsychologistID returns the value of the "linked_psychologist_id" field in the mutation.
func (m *PsychologistReferenceMutation) LinkedPsychologistID() (r uuid.UUID, exists bool) {
	v := m.linked_psychologist
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedPsychologistID returns the old "linked_psychologist_id" field's value of the PsychologistReference entity.
// If the PsychologistReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistReferenceMutation) OldLinkedPsychologistID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedPsychologistID: %w", err)
	}
	return oldValue.LinkedPsychologistID, nil
}

// ClearLinkedPsychologistID clears the value of the "linked_psychologist_id" field.
func (m *PsychologistReferenceMutation) ClearLinkedPsychologistID() {
	m.linked_psychologist = nil
	m.clearedFields[psychologistreference.FieldLinkedPsychologistID] = struct{}{}
}

// LinkedPsychologistIDCleared returns if the "linked_psychologist_id" field was cleared in this mutation.
func (m *PsychologistReferenceMutation) LinkedPsychologistIDCleared() bool {
	_, ok := m.clearedFields[psychologistreference.FieldLinkedPsychologistID]
	return ok
}

// ResetLinkedPsychologistID resets all changes to the "linked_psychologist_id" field.
func (m *PsychologistReferenceMutation) ResetLinkedPsychologistID() {
	m.linked_psychologist = nil
	delete(m.clearedFields, psychologistreference.FieldLinkedPsychologistID)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *PsychologistReferenceMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[psychologistreference.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *PsychologistReferenceMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *PsychologistReferenceMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *PsychologistReferenceMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearLinkedPsychologist clears the "linked_psychologist" edge to the Psychologist entity.
func (m *PsychologistReferenceMutation) ClearLinkedPsychologist() {
	m.clearedlinked_psychologist = true
	m.clearedFields[psychologistreference.FieldLinkedPsychologistID] = struct{}{}
}

// LinkedPsychologistCleared reports if the "linked_psychologist" edge to the Psychologist entity was cleared.
func (m *PsychologistReferenceMutation) LinkedPsychologistCleared() bool {
	return m.LinkedPsychologistIDCleared() || m.clearedlinked_psychologist
}

// LinkedPsychologistIDs returns the "linked_psychologist" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LinkedPsychologistID instead. It exists only for internal usage by the builders.
func (m *PsychologistReferenceMutation) LinkedPsychologistIDs() (ids []uuid.UUID) {
	if id := m.linked_psychologist; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLinkedPsychologist resets all changes to the "linked_psychologist" edge.
func (m *PsychologistReferenceMutation) ResetLinkedPsychologist() {
	m.linked_psychologist = nil
	m.clearedlinked_psychologist = false
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *PsychologistReferenceMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *PsychologistReferenceMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *PsychologistReferenceMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *PsychologistReferenceMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *PsychologistReferenceMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *PsychologistReferenceMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *PsychologistReferenceMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the PsychologistReferenceMutation builder.
func (m *PsychologistReferenceMutation) Where(ps ...predicate.PsychologistReference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PsychologistReferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PsychologistReferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PsychologistReference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PsychologistReferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PsychologistReferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PsychologistReference).
func (m *PsychologistReferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PsychologistReferenceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, psychologistreference.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, psychologistreference.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, psychologistreference.FieldPatientID)
	}
	if m.name != nil {
		fields = append(fields, psychologistreference.FieldName)
	}
	if m.linked_psychologist != nil {
		fields = append(fields, psychologistreference.FieldLinkedPsychologistID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PsychologistReferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case psychologistreference.FieldCreatedAt:
		return m.CreatedAt()
	case psychologistreference.FieldUpdatedAt:
		return m.UpdatedAt()
	case psychologistreference.FieldPatientID:
		return m.PatientID()
	case psychologistreference.FieldName:
		return m.Name()
	case psychologistreference.FieldLinkedPsychologistID:
		return m.LinkedPsychologistID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PsychologistReferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case psychologistreference.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case psychologistreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case psychologistreference.FieldPatientID:
		return m.OldPatientID(ctx)
	case psychologistreference.FieldName:
		return m.OldName(ctx)
	case psychologistreference.FieldLinkedPsychologistID:
		return m.OldLinkedPsychologistID(ctx)
	}
	return nil, fmt.Errorf("unknown PsychologistReference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PsychologistReferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case psychologistreference.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case psychologistreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case psychologistreference.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case psychologistreference.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case psychologistreference.FieldLinkedPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedPsychologistID(v)
		return nil
	}
	return fmt.Errorf("unknown PsychologistReference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PsychologistReferenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PsychologistReferenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PsychologistReferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PsychologistReference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PsychologistReferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(psychologistreference.FieldLinkedPsychologistID) {
		fields = append(fields, psychologistreference.FieldLinkedPsychologistID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PsychologistReferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PsychologistReferenceMutation) ClearField(name string) error {
	switch name {
	case psychologistreference.FieldLinkedPsychologistID:
		m.ClearLinkedPsychologistID()
		return nil
	}
	return fmt.Errorf("unknown PsychologistReference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PsychologistReferenceMutation) ResetField(name string) error {
	switch name {
	case psychologistreference.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case psychologistreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case psychologistreference.FieldPatientID:
		m.ResetPatientID()
		return nil
	case psychologistreference.FieldName:
		m.ResetName()
		return nil
	case psychologistreference.FieldLinkedPsychologistID:
		m.ResetLinkedPsychologistID()
		return nil
	}
	return fmt.Errorf("unknown PsychologistReference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PsychologistReferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient != nil {
		edges = append(edges, psychologistreference.EdgePatient)
	}
	if m.linked_psychologist != nil {
		edges = append(edges, psychologistreference.EdgeLinkedPsychologist)
	}
	if m.sessions != nil {
		edges = append(edges, psychologistreference.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PsychologistReferenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case psychologistreference.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case psychologistreference.EdgeLinkedPsychologist:
		if id := m.linked_psychologist; id != nil {
			return []ent.Value{*id}
		}
	case psychologistreference.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PsychologistReferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsessions != nil {
		edges = append(edges, psychologistreference.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PsychologistReferenceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case psychologistreference.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PsychologistReferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient {
		edges = append(edges, psychologistreference.EdgePatient)
	}
	if m.clearedlinked_psychologist {
		edges = append(edges, psychologistreference.EdgeLinkedPsychologist)
	}
	if m.clearedsessions {
		edges = append(edges, psychologistreference.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PsychologistReferenceMutation) EdgeCleared(name string) bool {
	switch name {
	case psychologistreference.EdgePatient:
		return m.clearedpatient
	case psychologistreference.EdgeLinkedPsychologist:
		return m.clearedlinked_psychologist
	case psychologistreference.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PsychologistReferenceMutation) ClearEdge(name string) error {
	switch name {
	case psychologistreference.EdgePatient:
		m.ClearPatient()
		return nil
	case psychologistreference.EdgeLinkedPsychologist:
		m.ClearLinkedPsychologist()
		return nil
	}
	return fmt.Errorf("unknown PsychologistReference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PsychologistReferenceMutation) ResetEdge(name string) error {
	switch name {
	case psychologistreference.EdgePatient:
		m.ResetPatient()
		return nil
	case psychologistreference.EdgeLinkedPsychologist:
		m.ResetLinkedPsychologist()
		return nil
	case psychologistreference.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown PsychologistReference edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	scheduled_at        *time.Time
	duration_minutes    *int
	addduration_minutes *int
	credits_used        *int
	addcredits_used     *int
	registered_by       *session.RegisteredBy
	clearedFields       map[string]struct{}
	patient             *uuid.UUID
	clearedpatient      bool
	psychologist        *uuid.UUID
	clearedpsychologist bool
	reference           *uuid.UUID
	clearedreference    bool
	done                bool
	oldValue            func(context.Context) (*Session, error)
	predicates          []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id uuid.UUID) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *SessionMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *SessionMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *SessionMutation) ResetPatientID() {
	m.patient = nil
}

// SetPsychologistID sets the "psychologist_id" field.
func (m *SessionMutation) SetPsychologistID(u uuid.UUID) {
	m.psychologist = &u
}

// PsychologistID returns the value of the "psychologist_id" field in the mutation.
func (m *SessionMutation) PsychologistID() (r uuid.UUID, exists bool) {
	v := m.psychologist
	if v == nil {
		return
	}
	return *v, true
}

// OldPsychologistID returns the old "psychologist_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPsychologistID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPsychologistID: %w", err)
	}
	return oldValue.PsychologistID, nil
}

// ClearPsychologistID clears the value of the "psychologist_id" field.
func (m *SessionMutation) ClearPsychologistID() {
	m.psychologist = nil
	m.clearedFields[session.FieldPsychologistID] = struct{}{}
}

// PsychologistIDCleared returns if the "psychologist_id" field was cleared in this mutation.
func (m *SessionMutation) PsychologistIDCleared() bool {
	_, ok := m.clearedFields[session.FieldPsychologistID]
	return ok
}

// ResetPsychologistID resets all changes to the "psychologist_id" field.
func (m *SessionMutation) ResetPsychologistID() {
	m.psychologist = nil
	delete(m.clearedFields, session.FieldPsychologistID)
}

// SetReferenceID sets the "reference_id" field.
func (m *SessionMutation) SetReferenceID(u uuid.UUID) {
	m.reference = &u
}

// ReferenceID returns the value of the "reference_id" field in the mutation.
func (m *SessionMutation) ReferenceID() (r uuid.UUID, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceID returns the old "reference_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldReferenceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceID: %w", err)
	}
	return oldValue.ReferenceID, nil
}

// ClearReferenceID clears the value of the "reference_id" field.
func (m *SessionMutation) ClearReferenceID() {
	m.reference = nil
	m.clearedFields[session.FieldReferenceID] = struct{}{}
}

// ReferenceIDCleared returns if the "reference_id" field was cleared in this mutation.
func (m *SessionMutation) ReferenceIDCleared() bool {
	_, ok := m.clearedFields[session.FieldReferenceID]
	return ok
}

// ResetReferenceID resets all changes to the "reference_id" field.
func (m *SessionMutation) ResetReferenceID() {
	m.reference = nil
	delete(m.clearedFields, session.FieldReferenceID)
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *SessionMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *SessionMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *SessionMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *SessionMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *SessionMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *SessionMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *SessionMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *SessionMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetCreditsUsed sets the "credits_used" field.
func (m *SessionMutation) SetCreditsUsed(i int) {
	m.credits_used = &i
	m.addcredits_used = nil
}

// CreditsUsed returns the value of the "credits_used" field in the mutation.
func (m *SessionMutation) CreditsUsed() (r int, exists bool) {
	v := m.credits_used
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsUsed returns the old "credits_used" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreditsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsUsed: %w", err)
	}
	return oldValue.CreditsUsed, nil
}

// AddCreditsUsed adds i to the "credits_used" field.
func (m *SessionMutation) AddCreditsUsed(i int) {
	if m.addcredits_used != nil {
		*m.addcredits_used += i
	} else {
		m.addcredits_used = &i
	}
}

// AddedCreditsUsed returns the value that was added to the "credits_used" field in this mutation.
func (m *SessionMutation) AddedCreditsUsed() (r int, exists bool) {
	v := m.addcredits_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsUsed resets all changes to the "credits_used" field.
func (m *SessionMutation) ResetCreditsUsed() {
	m.credits_used = nil
	m.addcredits_used = nil
}

// SetRegisteredBy sets the "registered_by" field.
func (m *SessionMutation) SetRegisteredBy(sb session.RegisteredBy) {
	m.registered_by = &sb
}

// RegisteredBy returns the value of the "registered_by" field in the mutation.
func (m *SessionMutation) RegisteredBy() (r session.RegisteredBy, exists bool) {
	v := m.registered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredBy returns the old "registered_by" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRegisteredBy(ctx context.Context) (v session.RegisteredBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredBy: %w", err)
	}
	return oldValue.RegisteredBy, nil
}

// ResetRegisteredBy resets all changes to the "registered_by" field.
func (m *SessionMutation) ResetRegisteredBy() {
	m.registered_by = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *SessionMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[session.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *SessionMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *SessionMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearPsychologist clears the "psychologist" edge to the Psychologist entity.
func (m *SessionMutation) ClearPsychologist() {
	m.clearedpsychologist = true
	m.clearedFields[session.FieldPsychologistID] = struct{}{}
}

// PsychologistCleared reports if the "psychologist" edge to the Psychologist entity was cleared.
func (m *SessionMutation) PsychologistCleared() bool {
	return m.PsychologistIDCleared() || m.clearedpsychologist
}

// PsychologistIDs returns the "psychologist" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PsychologistID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) PsychologistIDs() (ids []uuid.UUID) {
	if id := m.psychologist; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPsychologist resets all changes to the "psychologist" edge.
func (m *SessionMutation) ResetPsychologist() {
	m.psychologist = nil
	m.clearedpsychologist = false
}

// ClearReference clears the "reference" edge to the PsychologistReference entity.
func (m *SessionMutation) ClearReference() {
	m.clearedreference = true
	m.clearedFields[session.FieldReferenceID] = struct{}{}
}

// ReferenceCleared reports if the "reference" edge to the PsychologistReference entity was cleared.
func (m *SessionMutation) ReferenceCleared() bool {
	return m.ReferenceIDCleared() || m.clearedreference
}

// ReferenceIDs returns the "reference" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReferenceID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) ReferenceIDs() (ids []uuid.UUID) {
	if id := m.reference; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReference resets all changes to the "reference" edge.
func (m *SessionMutation) ResetReference() {
	m.reference = nil
	m.clearedreference = false
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, session.FieldPatientID)
	}
	if m.psychologist != nil {
		fields = append(fields, session.FieldPsychologistID)
	}
	if m.reference != nil {
		fields = append(fields, session.FieldReferenceID)
	}
	if m.scheduled_at != nil {
		fields = append(fields, session.FieldScheduledAt)
	}
	if m.duration_minutes != nil {
		fields = append(fields, session.FieldDurationMinutes)
	}
	if m.credits_used != nil {
		fields = append(fields, session.FieldCreditsUsed)
	}
	if m.registered_by != nil {
		fields = append(fields, session.FieldRegisteredBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	case session.FieldPatientID:
		return m.PatientID()
	case session.FieldPsychologistID:
		return m.PsychologistID()
	case session.FieldReferenceID:
		return m.ReferenceID()
	case session.FieldScheduledAt:
		return m.ScheduledAt()
	case session.FieldDurationMinutes:
		return m.DurationMinutes()
	case session.FieldCreditsUsed:
		return m.CreditsUsed()
	case session.FieldRegisteredBy:
		return m.RegisteredBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case session.FieldPatientID:
		return m.OldPatientID(ctx)
	case session.FieldPsychologistID:
		return m.OldPsychologistID(ctx)
	case session.FieldReferenceID:
		return m.OldReferenceID(ctx)
	case session.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case session.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case session.FieldCreditsUsed:
		return m.OldCreditsUsed(ctx)
	case session.FieldRegisteredBy:
		return m.OldRegisteredBy(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case session.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case session.FieldPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPsychologistID(v)
		return nil
	case session.FieldReferenceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceID(v)
		return nil
	case session.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case session.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case session.FieldCreditsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsUsed(v)
		return nil
	case session.FieldRegisteredBy:
		v, ok := value.(session.RegisteredBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredBy(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, session.FieldDurationMinutes)
	}
	if m.addcredits_used != nil {
		fields = append(fields, session.FieldCreditsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case session.FieldCreditsUsed:
		return m.AddedCreditsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case session.FieldCreditsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldPsychologistID) {
		fields = append(fields, session.FieldPsychologistID)
	}
	if m.FieldCleared(session.FieldReferenceID) {
		fields = append(fields, session.FieldReferenceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldPsychologistID:
		m.ClearPsychologistID()
		return nil
	case session.FieldReferenceID:
		m.ClearReferenceID()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case session.FieldPatientID:
		m.ResetPatientID()
		return nil
	case session.FieldPsychologistID:
		m.ResetPsychologistID()
		return nil
	case session.FieldReferenceID:
		m.ResetReferenceID()
		return nil
	case session.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case session.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case session.FieldCreditsUsed:
		m.ResetCreditsUsed()
		return nil
	case session.FieldRegisteredBy:
		m.ResetRegisteredBy()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient != nil {
		edges = append(edges, session.EdgePatient)
	}
	if m.psychologist != nil {
		edges = append(edges, session.EdgePsychologist)
	}
	if m.reference != nil {
		edges = append(edges, session.EdgeReference)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgePsychologist:
		if id := m.psychologist; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeReference:
		if id := m.reference; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient {
		edges = append(edges, session.EdgePatient)
	}
	if m.clearedpsychologist {
		edges = append(edges, session.EdgePsychologist)
	}
	if m.clearedreference {
		edges = append(edges, session.EdgeReference)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgePatient:
		return m.clearedpatient
	case session.EdgePsychologist:
		return m.clearedpsychologist
	case session.EdgeReference:
		return m.clearedreference
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgePatient:
		m.ClearPatient()
		return nil
	case session.EdgePsychologist:
		m.ClearPsychologist()
		return nil
	case session.EdgeReference:
		m.ClearReference()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgePatient:
		m.ResetPatient()
		return nil
	case session.EdgePsychologist:
		m.ResetPsychologist()
		return nil
	case session.EdgeReference:
		m.ResetReference()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	deleted_at                  *time.Time
	name                        *string
	email                       *string
	whatsapp                    *string
	password_hash               *string
	role                        *user.Role
	whatsapp_verified           *bool
	clearedFields               map[string]struct{}
	patient_profile             *uuid.UUID
	clearedpatient_profile      bool
	psychologist_profile        *uuid.UUID
	clearedpsychologist_profile bool
	done                        bool
	oldValue                    func(context.Context) (*User, error)
	predicates                  []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetWhatsapp sets the "whatsapp" field.
func (m *UserMutation) SetWhatsapp(s string) {
	m.whatsapp = &s
}

// Whatsapp returns the value of the "whatsapp" field in the mutation.
func (m *UserMutation) Whatsapp() (r string, exists bool) {
	v := m.whatsapp
	if v == nil {
		return
	}
	return *v, true
}

// OldWhatsapp returns the old "whatsapp" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldWhatsapp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhatsapp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhatsapp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhatsapp: %w", err)
	}
	return oldValue.Whatsapp, nil
}

// ResetWhatsapp resets all changes to the "whatsapp" field.
func (m *UserMutation) ResetWhatsapp() {
	m.whatsapp = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetWhatsappVerified sets the "whatsapp_verified" field.
func (m *UserMutation) SetWhatsappVerified(b bool) {
	m.whatsapp_verified = &b
}

// WhatsappVerified returns the value of the "whatsapp_verified" field in the mutation.
func (m *UserMutation) WhatsappVerified() (r bool, exists bool) {
	v := m.whatsapp_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldWhatsappVerified returns the old "whatsapp_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldWhatsappVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhatsappVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhatsappVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhatsappVerified: %w", err)
	}
	return oldValue.WhatsappVerified, nil
}

// ResetWhatsappVerified resets all changes to the "whatsapp_verified" field.
func (m *UserMutation) ResetWhatsappVerified() {
	m.whatsapp_verified = nil
}

// SetPatientProfileID sets the "patient_profile" edge to the Patient entity by id.
func (m *UserMutation) SetPatientProfileID(id uuid.UUID) {
	m.patient_profile = &id
}

// ClearPatientProfile clears the "patient_profile" edge to the Patient entity.
func (m *UserMutation) ClearPatientProfile() {
	m.clearedpatient_profile = true
}

// PatientProfileCleared reports if the "patient_profile" edge to the Patient entity was cleared.
func (m *UserMutation) PatientProfileCleared() bool {
	return m.clearedpatient_profile
}

// PatientProfileID returns the "patient_profile" edge ID in the mutation.
func (m *UserMutation) PatientProfileID() (id uuid.UUID, exists bool) {
	if m.patient_profile != nil {
		return *m.patient_profile, true
	}
	return
}

// PatientProfileIDs returns the "patient_profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientProfileID instead. It exists only for internal usage by the builders.
func (m *UserMutation) PatientProfileIDs() (ids []uuid.UUID) {
	if id := m.patient_profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatientProfile resets all changes to the "patient_profile" edge.
func (m *UserMutation) ResetPatientProfile() {
	m.patient_profile = nil
	m.clearedpatient_profile = false
}

// SetPsychologistProfileID sets the "psychologist_profile" edge to the Psychologist entity by id.
func (m *UserMutation) SetPsychologistProfileID(id uuid.UUID) {
	m.psychologist_profile = &id
}

// ClearPsychologistProfile clears the "psychologist_profile" edge to the Psychologist entity.
func (m *UserMutation) ClearPsychologistProfile() {
	m.clearedpsychologist_profile = true
}

// PsychologistProfileCleared reports if the "psychologist_profile" edge to the Psychologist entity was cleared.
func (m *UserMutation) PsychologistProfileCleared() bool {
	return m.clearedpsychologist_profile
}

// PsychologistProfileID returns the "psychologist_profile" edge ID in the mutation.
func (m *UserMutation) PsychologistProfileID() (id uuid.UUID, exists bool) {
	if m.psychologist_profile != nil {
		return *m.psychologist_profile, true
	}
	return
}

// PsychologistProfileIDs returns the "psychologist_profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PsychologistProfileID instead. It exists only for internal usage by the builders.
func (m *UserMutation) PsychologistProfileIDs() (ids []uuid.UUID) {
	if id := m.psychologist_profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPsychologistProfile resets all changes to the "psychologist_profile" edge.
func (m *UserMutation) ResetPsychologistProfile() {
	m.psychologist_profile = nil
	m.clearedpsychologist_profile = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.whatsapp != nil {
		fields = append(fields, user.FieldWhatsapp)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.whatsapp_verified != nil {
		fields = append(fields, user.FieldWhatsappVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldWhatsapp:
		return m.Whatsapp()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldWhatsappVerified:
		return m.WhatsappVerified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldWhatsapp:
		return m.OldWhatsapp(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldWhatsappVerified:
		return m.OldWhatsappVerified(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldWhatsapp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhatsapp(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldWhatsappVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhatsappVerified(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldWhatsapp:
		m.ResetWhatsapp()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldWhatsappVerified:
		m.ResetWhatsappVerified()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient_profile != nil {
		edges = append(edges, user.EdgePatientProfile)
	}
	if m.psychologist_profile != nil {
		edges = append(edges, user.EdgePsychologistProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePatientProfile:
		if id := m.patient_profile; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgePsychologistProfile:
		if id := m.psychologist_profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient_profile {
		edges = append(edges, user.EdgePatientProfile)
	}
	if m.clearedpsychologist_profile {
		edges = append(edges, user.EdgePsychologistProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePatientProfile:
		return m.clearedpatient_profile
	case user.EdgePsychologistProfile:
		return m.clearedpsychologist_profile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgePatientProfile:
		m.ClearPatientProfile()
		return nil
	case user.EdgePsychologistProfile:
		m.ClearPsychologistProfile()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePatientProfile:
		m.ResetPatientProfile()
		return nil
	case user.EdgePsychologistProfile:
		m.ResetPsychologistProfile()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
