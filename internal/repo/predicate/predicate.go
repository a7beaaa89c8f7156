// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// FacialRecord is the predicate function for facialrecord builders.
type FacialRecord func(*sql.Selector)

// Guide is the predicate function for guide builders.
type Guide func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PatientPsychologistLink is the predicate function for patientpsychologistlink builders.
type PatientPsychologistLink func(*sql.Selector)

// Psychologist is the predicate function for psychologist builders.
type Psychologist func(*sql.Selector)

// PsychologistReference is the predicate function for psychologistreference builders.
type PsychologistReference func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
