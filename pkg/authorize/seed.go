package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Patient-domain policies (domain: patient:*)
	patientPolicies := []PermissionPolicy{
		// A patient owns the full credit ledger in their own domain.
		{RolePatient, WildcardDomain, ResourceGuide, ActionManage, EffectAllow},
		{RolePatient, WildcardDomain, ResourceGuide, ActionClose, EffectAllow},
		{RolePatient, WildcardDomain, ResourceFacial, ActionManage, EffectAllow},
		{RolePatient, WildcardDomain, ResourceSession, ActionManage, EffectAllow},
		{RolePatient, WildcardDomain, ResourceActivity, ActionList, EffectAllow},
		{RolePatient, WildcardDomain, ResourceBalance, ActionRead, EffectAllow},
		{RolePatient, WildcardDomain, ResourceLink, ActionManage, EffectAllow},
		{RolePatient, WildcardDomain, ResourceReference, ActionManage, EffectAllow},
		{RolePatient, WildcardDomain, ResourceReference, ActionBind, EffectAllow},

		// A psychologist reads linked patients' ledgers and registers
		// sessions for them. Link consent is enforced at the service layer.
		{RolePsychologist, WildcardDomain, ResourceGuide, ActionRead, EffectAllow},
		{RolePsychologist, WildcardDomain, ResourceGuide, ActionList, EffectAllow},
		{RolePsychologist, WildcardDomain, ResourceFacial, ActionList, EffectAllow},
		{RolePsychologist, WildcardDomain, ResourceSession, ActionCreate, EffectAllow},
		{RolePsychologist, WildcardDomain, ResourceSession, ActionList, EffectAllow},
		{RolePsychologist, WildcardDomain, ResourceActivity, ActionList, EffectAllow},
		{RolePsychologist, WildcardDomain, ResourceBalance, ActionRead, EffectAllow},
		{RolePsychologist, WildcardDomain, ResourceLink, ActionManage, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own account resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, patientPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignPatientRole assigns the patient role in the patient's own domain.
// Call this when creating a patient profile.
func AssignPatientRole(ctx context.Context, auth IAuthorization, userID, patientID string) error {
	domain := PatientDomain(patientID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePatient, domain)
	return err
}

// AssignPsychologistRoleForPatient grants a psychologist the read role in a
// patient's domain. Call this when a link between them is accepted.
func AssignPsychologistRoleForPatient(ctx context.Context, auth IAuthorization, userID, patientID string) error {
	domain := PatientDomain(patientID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePsychologist, domain)
	return err
}

// RevokePsychologistRoleForPatient removes the psychologist's role in a
// patient's domain. Call this when a link is rejected or dissolved.
func RevokePsychologistRoleForPatient(ctx context.Context, auth IAuthorization, userID, patientID string) error {
	domain := PatientDomain(patientID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, RolePsychologist, domain)
	return err
}

// GetPatientDomainRoles returns all roles a user has in a patient's domain.
func GetPatientDomainRoles(ctx context.Context, auth IAuthorization, userID, patientID string) ([]Role, error) {
	domain := PatientDomain(patientID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}
