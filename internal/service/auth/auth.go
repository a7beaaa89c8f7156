package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/credvia/credvia_backend/config"
	"github.com/credvia/credvia_backend/internal/repo"
	entuser "github.com/credvia/credvia_backend/internal/repo/user"
	"github.com/credvia/credvia_backend/pkg/authorize"
	pasetotoken "github.com/credvia/credvia_backend/pkg/paseto"
	"github.com/credvia/credvia_backend/pkg/sms"
	"github.com/credvia/credvia_backend/pkg/util/otp"
	"github.com/credvia/credvia_backend/pkg/util/password"
	"github.com/credvia/credvia_backend/pkg/util/phone"
)

const maxOTPAttempts = 5

// redisKeyOTP returns the Redis key for the OTP hash of a whatsapp number.
func redisKeyOTP(whatsapp string) string { return "otp:" + whatsapp }

// redisKeyOTPAttempts returns the Redis key for the OTP attempt counter.
func redisKeyOTPAttempts(whatsapp string) string { return "otp:attempts:" + whatsapp }

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Name     string
	Email    string
	Whatsapp string
	Password string
	Role     string // patient | psychologist
}

type VerifyOTPRequest struct {
	Whatsapp string
	Code     string
}

type LoginRequest struct {
	Email    string // one of Email or Whatsapp must be set
	Whatsapp string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	sms    *sms.Client
	auth   authorize.IAuthorization
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	auth authorize.IAuthorization,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		sms:    smsCli,
		auth:   auth,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (err error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))

	if !reEmail.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	whatsapp, perr := phone.Normalize(req.Whatsapp)
	if perr != nil {
		return ErrInvalidWhatsapp
	}
	if req.Role != string(entuser.RolePatient) && req.Role != string(entuser.RolePsychologist) {
		return ErrInvalidRole
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	emailTaken, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(req.Email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if emailTaken {
		return ErrEmailAlreadyExists
	}

	waTaken, err := s.db.User.Query().
		Where(entuser.Whatsapp(whatsapp), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check whatsapp: %w", err)
	}
	if waTaken {
		return ErrWhatsappExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// User + role profile are created atomically.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := tx.User.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetWhatsapp(whatsapp).
		SetPasswordHash(passHash).
		SetRole(entuser.Role(req.Role)).
		SetWhatsappVerified(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	var patientID *uuid.UUID
	if u.Role == entuser.RolePatient {
		p, perr := tx.Patient.Create().SetUserID(u.ID).Save(ctx)
		if perr != nil {
			err = fmt.Errorf("create patient profile: %w", perr)
			return err
		}
		patientID = &p.ID
	} else {
		if _, perr := tx.Psychologist.Create().SetUserID(u.ID).Save(ctx); perr != nil {
			err = fmt.Errorf("create psychologist profile: %w", perr)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	// RBAC rows are repairable; log, don't fail.
	if aerr := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); aerr != nil {
		slog.Warn("assign user self role", "user_id", u.ID, "err", aerr)
	}
	if patientID != nil {
		if aerr := authorize.AssignPatientRole(ctx, s.auth, u.ID.String(), patientID.String()); aerr != nil {
			slog.Warn("assign patient role", "user_id", u.ID, "err", aerr)
		}
	}

	return s.sendOTP(ctx, whatsapp)
}

// ---------------------------------------------------------------------------
// VerifyOTP
// ---------------------------------------------------------------------------

func (s *authService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthTokens, error) {
	whatsapp, perr := phone.Normalize(req.Whatsapp)
	if perr != nil {
		return nil, ErrInvalidWhatsapp
	}
	req.Code = strings.TrimSpace(req.Code)

	otpHash, err := s.rdb.Get(ctx, redisKeyOTP(whatsapp)).Result()
	if err == redis.Nil {
		return nil, ErrOTPExpired
	}
	if err != nil {
		return nil, fmt.Errorf("redis get otp: %w", err)
	}

	attempts, _ := s.rdb.Get(ctx, redisKeyOTPAttempts(whatsapp)).Int()
	if attempts >= maxOTPAttempts {
		return nil, ErrOTPMaxAttempts
	}

	if err := otp.Verify(otpHash, req.Code); err != nil {
		s.rdb.Incr(ctx, redisKeyOTPAttempts(whatsapp))
		return nil, ErrOTPInvalid
	}

	s.rdb.Del(ctx, redisKeyOTP(whatsapp), redisKeyOTPAttempts(whatsapp))

	u, err := s.db.User.Query().
		Where(entuser.Whatsapp(whatsapp), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	_, err = s.db.User.UpdateOne(u).SetWhatsappVerified(true).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update whatsapp_verified: %w", err)
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var u *repo.User
	var err error

	switch {
	case req.Email != "":
		u, err = s.db.User.Query().
			Where(entuser.EmailEqualFold(req.Email), entuser.DeletedAtIsNil()).
			Only(ctx)
	case strings.TrimSpace(req.Whatsapp) != "":
		whatsapp, perr := phone.Normalize(req.Whatsapp)
		if perr != nil {
			return nil, ErrInvalidCredentials
		}
		u, err = s.db.User.Query().
			Where(entuser.Whatsapp(whatsapp), entuser.DeletedAtIsNil()).
			Only(ctx)
	default:
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.WhatsappVerified {
		return nil, ErrNotVerified
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendOTP(ctx context.Context, whatsapp string) error {
	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate OTP: %w", err)
	}

	otpTTL := time.Duration(s.cfg.Authentication.OTPTTLMinutes) * time.Minute
	if otpTTL <= 0 {
		otpTTL = 5 * time.Minute
	}

	if err := s.rdb.Set(ctx, redisKeyOTP(whatsapp), otp.Hash(code), otpTTL).Err(); err != nil {
		return fmt.Errorf("store OTP: %w", err)
	}
	s.rdb.Set(ctx, redisKeyOTPAttempts(whatsapp), "0", otpTTL+5*time.Minute)

	templateID := s.cfg.SMS.SMSIR.TemplateID
	if err := s.sms.SendOTP(ctx, whatsapp, templateID, code); err != nil {
		// SMS failure must not block registration
		slog.Warn("failed to send OTP", "whatsapp", whatsapp, "error", err)
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
