// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

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
	"github.com/credvia/credvia_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitylogMixin := schema.ActivityLog{}.Mixin()
	activitylogMixinFields0 := activitylogMixin[0].Fields()
	_ = activitylogMixinFields0
	activitylogMixinFields1 := activitylogMixin[1].Fields()
	_ = activitylogMixinFields1
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescCreatedAt is the schema descriptor for created_at field.
	activitylogDescCreatedAt := activitylogMixinFields1[0].Descriptor()
	// activitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitylog.DefaultCreatedAt = activitylogDescCreatedAt.Default.(func() time.Time)
	// activitylogDescDescription is the schema descriptor for description field.
	activitylogDescDescription := activitylogFields[2].Descriptor()
	// activitylog.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	activitylog.DescriptionValidator = activitylogDescDescription.Validators[0].(func(string) error)
	// activitylogDescID is the schema descriptor for id field.
	activitylogDescID := activitylogMixinFields0[0].Descriptor()
	// activitylog.DefaultID holds the default value on creation for the id field.
	activitylog.DefaultID = activitylogDescID.Default.(func() uuid.UUID)
	companyMixin := schema.Company{}.Mixin()
	companyMixinFields0 := companyMixin[0].Fields()
	_ = companyMixinFields0
	companyMixinFields1 := companyMixin[1].Fields()
	_ = companyMixinFields1
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyMixinFields1[0].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyMixinFields1[1].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[0].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = func() func(string) error {
		validators := companyDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyMixinFields0[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	facialrecordMixin := schema.FacialRecord{}.Mixin()
	facialrecordMixinFields0 := facialrecordMixin[0].Fields()
	_ = facialrecordMixinFields0
	facialrecordMixinFields1 := facialrecordMixin[1].Fields()
	_ = facialrecordMixinFields1
	facialrecordFields := schema.FacialRecord{}.Fields()
	_ = facialrecordFields
	// facialrecordDescCreatedAt is the schema descriptor for created_at field.
	facialrecordDescCreatedAt := facialrecordMixinFields1[0].Descriptor()
	// facialrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	facialrecord.DefaultCreatedAt = facialrecordDescCreatedAt.Default.(func() time.Time)
	// facialrecordDescID is the schema descriptor for id field.
	facialrecordDescID := facialrecordMixinFields0[0].Descriptor()
	// facialrecord.DefaultID holds the default value on creation for the id field.
	facialrecord.DefaultID = facialrecordDescID.Default.(func() uuid.UUID)
	guideMixin := schema.Guide{}.Mixin()
	guideMixinFields0 := guideMixin[0].Fields()
	_ = guideMixinFields0
	guideMixinFields1 := guideMixin[1].Fields()
	_ = guideMixinFields1
	guideFields := schema.Guide{}.Fields()
	_ = guideFields
	// guideDescCreatedAt is the schema descriptor for created_at field.
	guideDescCreatedAt := guideMixinFields1[0].Descriptor()
	// guide.DefaultCreatedAt holds the default value on creation for the created_at field.
	guide.DefaultCreatedAt = guideDescCreatedAt.Default.(func() time.Time)
	// guideDescUpdatedAt is the schema descriptor for updated_at field.
	guideDescUpdatedAt := guideMixinFields1[1].Descriptor()
	// guide.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	guide.DefaultUpdatedAt = guideDescUpdatedAt.Default.(func() time.Time)
	// guide.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	guide.UpdateDefaultUpdatedAt = guideDescUpdatedAt.UpdateDefault.(func() time.Time)
	// guideDescNumber is the schema descriptor for number field.
	guideDescNumber := guideFields[2].Descriptor()
	// guide.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	guide.NumberValidator = func() func(string) error {
		validators := guideDescNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(number string) error {
			for _, fn := range fns {
				if err := fn(number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// guideDescTotalCredits is the schema descriptor for total_credits field.
	guideDescTotalCredits := guideFields[3].Descriptor()
	// guide.TotalCreditsValidator is a validator for the "total_credits" field. It is called by the builders before save.
	guide.TotalCreditsValidator = guideDescTotalCredits.Validators[0].(func(int) error)
	// guideDescUsedCredits is the schema descriptor for used_credits field.
	guideDescUsedCredits := guideFields[4].Descriptor()
	// guide.DefaultUsedCredits holds the default value on creation for the used_credits field.
	guide.DefaultUsedCredits = guideDescUsedCredits.Default.(int)
	// guide.UsedCreditsValidator is a validator for the "used_credits" field. It is called by the builders before save.
	guide.UsedCreditsValidator = guideDescUsedCredits.Validators[0].(func(int) error)
	// guideDescID is the schema descriptor for id field.
	guideDescID := guideMixinFields0[0].Descriptor()
	// guide.DefaultID holds the default value on creation for the id field.
	guide.DefaultID = guideDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescBalance is the schema descriptor for balance field.
	patientDescBalance := patientFields[1].Descriptor()
	// patient.DefaultBalance holds the default value on creation for the balance field.
	patient.DefaultBalance = patientDescBalance.Default.(int)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	patientpsychologistlinkMixin := schema.PatientPsychologistLink{}.Mixin()
	patientpsychologistlinkMixinFields0 := patientpsychologistlinkMixin[0].Fields()
	_ = patientpsychologistlinkMixinFields0
	patientpsychologistlinkMixinFields1 := patientpsychologistlinkMixin[1].Fields()
	_ = patientpsychologistlinkMixinFields1
	patientpsychologistlinkFields := schema.PatientPsychologistLink{}.Fields()
	_ = patientpsychologistlinkFields
	// patientpsychologistlinkDescCreatedAt is the schema descriptor for created_at field.
	patientpsychologistlinkDescCreatedAt := patientpsychologistlinkMixinFields1[0].Descriptor()
	// patientpsychologistlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientpsychologistlink.DefaultCreatedAt = patientpsychologistlinkDescCreatedAt.Default.(func() time.Time)
	// patientpsychologistlinkDescUpdatedAt is the schema descriptor for updated_at field.
	patientpsychologistlinkDescUpdatedAt := patientpsychologistlinkMixinFields1[1].Descriptor()
	// patientpsychologistlink.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientpsychologistlink.DefaultUpdatedAt = patientpsychologistlinkDescUpdatedAt.Default.(func() time.Time)
	// patientpsychologistlink.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientpsychologistlink.UpdateDefaultUpdatedAt = patientpsychologistlinkDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientpsychologistlinkDescID is the schema descriptor for id field.
	patientpsychologistlinkDescID := patientpsychologistlinkMixinFields0[0].Descriptor()
	// patientpsychologistlink.DefaultID holds the default value on creation for the id field.
	patientpsychologistlink.DefaultID = patientpsychologistlinkDescID.Default.(func() uuid.UUID)
	psychologistMixin := schema.Psychologist{}.Mixin()
	psychologistMixinFields0 := psychologistMixin[0].Fields()
	_ = psychologistMixinFields0
	psychologistMixinFields1 := psychologistMixin[1].Fields()
	_ = psychologistMixinFields1
	psychologistFields := schema.Psychologist{}.Fields()
	_ = psychologistFields
	// psychologistDescCreatedAt is the schema descriptor for created_at field.
	psychologistDescCreatedAt := psychologistMixinFields1[0].Descriptor()
	// psychologist.DefaultCreatedAt holds the default value on creation for the created_at field.
	psychologist.DefaultCreatedAt = psychologistDescCreatedAt.Default.(func() time.Time)
	// psychologistDescUpdatedAt is the schema descriptor for updated_at field.
	psychologistDescUpdatedAt := psychologistMixinFields1[1].Descriptor()
	// psychologist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	psychologist.DefaultUpdatedAt = psychologistDescUpdatedAt.Default.(func() time.Time)
	// psychologist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	psychologist.UpdateDefaultUpdatedAt = psychologistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// psychologistDescCrp is the schema descriptor for crp field.
	psychologistDescCrp := psychologistFields[1].Descriptor()
	// psychologist.CrpValidator is a validator for the "crp" field. It is called by the builders before save.
	psychologist.CrpValidator = psychologistDescCrp.Validators[0].(func(string) error)
	// psychologistDescID is the schema descriptor for id field.
	psychologistDescID := psychologistMixinFields0[0].Descriptor()
	// psychologist.DefaultID holds the default value on creation for the id field.
	psychologist.DefaultID = psychologistDescID.Default.(func() uuid.UUID)
	psychologistreferenceMixin := schema.PsychologistReference{}.Mixin()
	psychologistreferenceMixinFields0 := psychologistreferenceMixin[0].Fields()
	_ = psychologistreferenceMixinFields0
	psychologistreferenceMixinFields1 := psychologistreferenceMixin[1].Fields()
	_ = psychologistreferenceMixinFields1
	psychologistreferenceFields := schema.PsychologistReference{}.Fields()
	_ = psychologistreferenceFields
	// psychologistreferenceDescCreatedAt is the schema descriptor for created_at field.
	psychologistreferenceDescCreatedAt := psychologistreferenceMixinFields1[0].Descriptor()
	// psychologistreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	psychologistreference.DefaultCreatedAt = psychologistreferenceDescCreatedAt.Default.(func() time.Time)
	// psychologistreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	psychologistreferenceDescUpdatedAt := psychologistreferenceMixinFields1[1].Descriptor()
	// psychologistreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	psychologistreference.DefaultUpdatedAt = psychologistreferenceDescUpdatedAt.Default.(func() time.Time)
	// psychologistreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	psychologistreference.UpdateDefaultUpdatedAt = psychologistreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// psychologistreferenceDescName is the schema descriptor for name field.
	psychologistreferenceDescName := psychologistreferenceFields[1].Descriptor()
	// psychologistreference.NameValidator is a validator for the "name" field. It is called by the builders before save.
	psychologistreference.NameValidator = func() func(string) error {
		validators := psychologistreferenceDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// psychologistreferenceDescID is the schema descriptor for id field.
	psychologistreferenceDescID := psychologistreferenceMixinFields0[0].Descriptor()
	// psychologistreference.DefaultID holds the default value on creation for the id field.
	psychologistreference.DefaultID = psychologistreferenceDescID.Default.(func() uuid.UUID)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionMixinFields1 := sessionMixin[1].Fields()
	_ = sessionMixinFields1
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields1[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionMixinFields1[1].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescCreditsUsed is the schema descriptor for credits_used field.
	sessionDescCreditsUsed := sessionFields[5].Descriptor()
	// session.CreditsUsedValidator is a validator for the "credits_used" field. It is called by the builders before save.
	session.CreditsUsedValidator = sessionDescCreditsUsed.Validators[0].(func(int) error)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionMixinFields0[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescWhatsapp is the schema descriptor for whatsapp field.
	userDescWhatsapp := userFields[2].Descriptor()
	// user.WhatsappValidator is a validator for the "whatsapp" field. It is called by the builders before save.
	user.WhatsappValidator = userDescWhatsapp.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescWhatsappVerified is the schema descriptor for whatsapp_verified field.
	userDescWhatsappVerified := userFields[5].Descriptor()
	// user.DefaultWhatsappVerified holds the default value on creation for the whatsapp_verified field.
	user.DefaultWhatsappVerified = userDescWhatsappVerified.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
