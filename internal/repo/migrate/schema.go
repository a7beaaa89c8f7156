// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"guide_created", "guide_expired", "guide_closed"}},
		{Name: "description", Type: field.TypeString, Size: 500},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activity_logs_patients_activity_logs",
				Columns:    []*schema.Column{ActivityLogsColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_patient_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[6], ActivityLogsColumns[5]},
			},
			{
				Name:    "activitylog_patient_id_type",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[6], ActivityLogsColumns[2]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// FacialRecordsColumns holds the columns for the "facial_records" table.
	FacialRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "performed_at", Type: field.TypeTime},
		{Name: "guide_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// FacialRecordsTable holds the schema information for the "facial_records" table.
	FacialRecordsTable = &schema.Table{
		Name:       "facial_records",
		Columns:    FacialRecordsColumns,
		PrimaryKey: []*schema.Column{FacialRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "facial_records_guides_facials",
				Columns:    []*schema.Column{FacialRecordsColumns[3]},
				RefColumns: []*schema.Column{GuidesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "facial_records_patients_facials",
				Columns:    []*schema.Column{FacialRecordsColumns[4]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "facialrecord_patient_id_performed_at",
				Unique:  false,
				Columns: []*schema.Column{FacialRecordsColumns[4], FacialRecordsColumns[2]},
			},
			{
				Name:    "facialrecord_guide_id",
				Unique:  false,
				Columns: []*schema.Column{FacialRecordsColumns[3]},
			},
		},
	}
	// GuidesColumns holds the columns for the "guides" table.
	GuidesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "number", Type: field.TypeString, Size: 100},
		{Name: "total_credits", Type: field.TypeInt},
		{Name: "used_credits", Type: field.TypeInt, Default: 0},
		{Name: "expiration_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "expired"}, Default: "active"},
		{Name: "company_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// GuidesTable holds the schema information for the "guides" table.
	GuidesTable = &schema.Table{
		Name:       "guides",
		Columns:    GuidesColumns,
		PrimaryKey: []*schema.Column{GuidesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "guides_companies_guides",
				Columns:    []*schema.Column{GuidesColumns[8]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "guides_patients_guides",
				Columns:    []*schema.Column{GuidesColumns[9]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "guide_patient_id_number",
				Unique:  true,
				Columns: []*schema.Column{GuidesColumns[9], GuidesColumns[3]},
			},
			{
				Name:    "guide_patient_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{GuidesColumns[9], GuidesColumns[7], GuidesColumns[1]},
			},
			{
				Name:    "guide_status_expiration_date",
				Unique:  false,
				Columns: []*schema.Column{GuidesColumns[7], GuidesColumns[6]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "balance", Type: field.TypeInt, Default: 0},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patient_profile",
				Columns:    []*schema.Column{PatientsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
		},
	}
	// PatientPsychologistLinksColumns holds the columns for the "patient_psychologist_links" table.
	PatientPsychologistLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "rejected"}, Default: "pending"},
		{Name: "requested_by", Type: field.TypeEnum, Enums: []string{"patient", "psychologist"}},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "psychologist_id", Type: field.TypeUUID},
	}
	// PatientPsychologistLinksTable holds the schema information for the "patient_psychologist_links" table.
	PatientPsychologistLinksTable = &schema.Table{
		Name:       "patient_psychologist_links",
		Columns:    PatientPsychologistLinksColumns,
		PrimaryKey: []*schema.Column{PatientPsychologistLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_psychologist_links_patients_links",
				Columns:    []*schema.Column{PatientPsychologistLinksColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patient_psychologist_links_psychologists_links",
				Columns:    []*schema.Column{PatientPsychologistLinksColumns[7]},
				RefColumns: []*schema.Column{PsychologistsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientpsychologistlink_patient_id_psychologist_id",
				Unique:  true,
				Columns: []*schema.Column{PatientPsychologistLinksColumns[6], PatientPsychologistLinksColumns[7]},
			},
			{
				Name:    "patientpsychologistlink_psychologist_id_status",
				Unique:  false,
				Columns: []*schema.Column{PatientPsychologistLinksColumns[7], PatientPsychologistLinksColumns[3]},
			},
		},
	}
	// PsychologistsColumns holds the columns for the "psychologists" table.
	PsychologistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "crp", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// PsychologistsTable holds the schema information for the "psychologists" table.
	PsychologistsTable = &schema.Table{
		Name:       "psychologists",
		Columns:    PsychologistsColumns,
		PrimaryKey: []*schema.Column{PsychologistsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "psychologists_users_psychologist_profile",
				Columns:    []*schema.Column{PsychologistsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "psychologist_user_id",
				Unique:  true,
				Columns: []*schema.Column{PsychologistsColumns[4]},
			},
		},
	}
	// PsychologistReferencesColumns holds the columns for the "psychologist_references" table.
	PsychologistReferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "linked_psychologist_id", Type: field.TypeUUID, Nullable: true},
	}
	// PsychologistReferencesTable holds the schema information for the "psychologist_references" table.
	PsychologistReferencesTable = &schema.Table{
		Name:       "psychologist_references",
		Columns:    PsychologistReferencesColumns,
		PrimaryKey: []*schema.Column{PsychologistReferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "psychologist_references_patients_references",
				Columns:    []*schema.Column{PsychologistReferencesColumns[4]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "psychologist_references_psychologists_linked_references",
				Columns:    []*schema.Column{PsychologistReferencesColumns[5]},
				RefColumns: []*schema.Column{PsychologistsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "psychologistreference_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PsychologistReferencesColumns[4]},
			},
			{
				Name:    "psychologistreference_linked_psychologist_id",
				Unique:  false,
				Columns: []*schema.Column{PsychologistReferencesColumns[5]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "credits_used", Type: field.TypeInt},
		{Name: "registered_by", Type: field.TypeEnum, Enums: []string{"patient", "psychologist"}},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "psychologist_id", Type: field.TypeUUID, Nullable: true},
		{Name: "reference_id", Type: field.TypeUUID, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_patients_sessions",
				Columns:    []*schema.Column{SessionsColumns[7]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "sessions_psychologists_sessions",
				Columns:    []*schema.Column{SessionsColumns[8]},
				RefColumns: []*schema.Column{PsychologistsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "sessions_psychologist_references_sessions",
				Columns:    []*schema.Column{SessionsColumns[9]},
				RefColumns: []*schema.Column{PsychologistReferencesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_patient_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7], SessionsColumns[3]},
			},
			{
				Name:    "session_psychologist_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8]},
			},
			{
				Name:    "session_reference_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "whatsapp", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString, Size: 500},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "psychologist"}},
		{Name: "whatsapp_verified", Type: field.TypeBool, Default: false},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
			{
				Name:    "user_whatsapp",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogsTable,
		CompaniesTable,
		FacialRecordsTable,
		GuidesTable,
		PatientsTable,
		PatientPsychologistLinksTable,
		PsychologistsTable,
		PsychologistReferencesTable,
		SessionsTable,
		UsersTable,
	}
)

func init() {
	ActivityLogsTable.ForeignKeys[0].RefTable = PatientsTable
	FacialRecordsTable.ForeignKeys[0].RefTable = GuidesTable
	FacialRecordsTable.ForeignKeys[1].RefTable = PatientsTable
	GuidesTable.ForeignKeys[0].RefTable = CompaniesTable
	GuidesTable.ForeignKeys[1].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PatientPsychologistLinksTable.ForeignKeys[0].RefTable = PatientsTable
	PatientPsychologistLinksTable.ForeignKeys[1].RefTable = PsychologistsTable
	PsychologistsTable.ForeignKeys[0].RefTable = UsersTable
	PsychologistReferencesTable.ForeignKeys[0].RefTable = PatientsTable
	PsychologistReferencesTable.ForeignKeys[1].RefTable = PsychologistsTable
	SessionsTable.ForeignKeys[0].RefTable = PatientsTable
	SessionsTable.ForeignKeys[1].RefTable = PsychologistsTable
	SessionsTable.ForeignKeys[2].RefTable = PsychologistReferencesTable
}
