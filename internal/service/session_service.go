package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-portal/internal/models"
	"github.com/noah-isme/lms-portal/internal/repository"
	appErrors "github.com/noah-isme/lms-portal/pkg/errors"
)

type accountStore interface {
	Load() ([]models.Account, error)
	Save(accounts []models.Account) error
}

// Mode distinguishes the two credential forms shown while logged out.
type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

// AuthState names the coarse authentication states of the portal.
type AuthState string

const (
	// StateAwaitingCredentials covers the logged-out portal; Mode tells
	// which of the two forms is active.
	StateAwaitingCredentials AuthState = "awaiting_credentials"
	StateLoggedIn            AuthState = "logged_in"
)

// SessionService drives the authentication state machine and, once a session
// exists, the view selector. All operations run to completion on the caller's
// goroutine; the portal is single-user and event-driven, so no two
// transitions ever interleave.
type SessionService struct {
	store     accountStore
	validator *validator.Validate
	logger    *zap.Logger

	mode    Mode
	session *models.Session
	view    models.View
}

// NewSessionService constructs a SessionService starting at the login form.
func NewSessionService(store accountStore, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		store:     store,
		validator: validate,
		logger:    logger,
		mode:      ModeLogin,
	}
}

// State returns the current authentication state.
func (s *SessionService) State() AuthState {
	if s.session != nil {
		return StateLoggedIn
	}
	return StateAwaitingCredentials
}

// Mode returns the active credential form while logged out.
func (s *SessionService) Mode() Mode {
	return s.mode
}

// Session returns the active session, if any.
func (s *SessionService) Session() (*models.Session, bool) {
	if s.session == nil {
		return nil, false
	}
	return s.session, true
}

// ToggleMode flips between the login and signup forms. It validates nothing
// and clears nothing; entered field values are owned by the caller and
// persist across the toggle.
func (s *SessionService) ToggleMode() error {
	if s.session != nil {
		return appErrors.Clone(appErrors.ErrInvalidTransition, "cannot switch forms while logged in")
	}
	if s.mode == ModeLogin {
		s.mode = ModeSignup
	} else {
		s.mode = ModeLogin
	}
	return nil
}

// SwitchMode sets the active credential form. Used by the caller after an
// ACCOUNT_NOT_FOUND login outcome when the user accepts the signup offer;
// the controller itself never makes that decision.
func (s *SessionService) SwitchMode(mode Mode) error {
	if s.session != nil {
		return appErrors.Clone(appErrors.ErrInvalidTransition, "cannot switch forms while logged in")
	}
	if mode != ModeLogin && mode != ModeSignup {
		return appErrors.Clone(appErrors.ErrValidation, "unknown form mode")
	}
	s.mode = mode
	return nil
}

// SubmitLogin validates a login attempt against the account store. On success
// the portal transitions to LoggedIn with a fresh session and the view
// selector reset to the dashboard. An ACCOUNT_NOT_FOUND outcome invites the
// caller to offer the signup form; the mode switch stays a caller decision.
func (s *SessionService) SubmitLogin(input models.LoginInput) (*models.Session, error) {
	if s.session != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidTransition, "already logged in")
	}
	if s.mode != ModeLogin {
		return nil, appErrors.Clone(appErrors.ErrInvalidTransition, "login is only available from the login form")
	}

	accounts, err := s.store.Load()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read account store")
	}

	account := repository.FindAccount(accounts, input.ID, input.Role)
	if account == nil {
		return nil, appErrors.Clone(appErrors.ErrAccountNotFound, "no account found for this user ID and role, would you like to sign up?")
	}

	// Credentials compare by exact string equality: no hashing, no trimming,
	// case-sensitive.
	if account.Credential != input.Credential {
		return nil, appErrors.Clone(appErrors.ErrCredentialMismatch, "incorrect password, if you don't have an account please sign up")
	}

	s.login(account)
	s.logger.Info("login succeeded",
		zap.String("user_id", account.ID),
		zap.String("role", string(account.Role)),
		zap.String("session_key", s.session.Key))
	return s.session, nil
}

// SubmitSignup validates the signup form, enforces the (id, role) uniqueness
// invariant, persists the new account and auto-authenticates it. A duplicate
// account unconditionally switches the form back to login.
func (s *SessionService) SubmitSignup(input models.SignupInput) (*models.Session, error) {
	if s.session != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidTransition, "already logged in")
	}
	if s.mode != ModeSignup {
		return nil, appErrors.Clone(appErrors.ErrInvalidTransition, "signup is only available from the signup form")
	}

	if err := s.validator.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, signupFieldMessage(err))
	}
	if input.Credential != input.ConfirmCredential {
		return nil, appErrors.Clone(appErrors.ErrValidation, "passwords do not match")
	}

	accounts, err := s.store.Load()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read account store")
	}

	if existing := repository.FindAccount(accounts, input.ID, input.Role); existing != nil {
		// Unlike the login-miss case this switch is unconditional.
		s.mode = ModeLogin
		return nil, appErrors.ErrDuplicateAccount
	}

	account := models.Account{
		ID:         input.ID,
		Name:       input.Name,
		Role:       input.Role,
		Credential: input.Credential,
	}
	accounts = append(accounts, account)
	if err := s.store.Save(accounts); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create account")
	}

	s.login(&account)
	s.logger.Info("signup succeeded",
		zap.String("user_id", account.ID),
		zap.String("role", string(account.Role)),
		zap.String("session_key", s.session.Key))
	return s.session, nil
}

// Logout clears the session and returns the portal to the login form.
func (s *SessionService) Logout() error {
	if s.session == nil {
		return appErrors.ErrNotAuthenticated
	}
	s.logger.Info("logout",
		zap.String("user_id", s.session.ID),
		zap.String("session_key", s.session.Key))
	s.session = nil
	s.mode = ModeLogin
	s.view = models.ViewDashboard
	return nil
}

// SetView selects the current view. Any identifier is accepted; unknown ones
// resolve to the dashboard at render time. Every role may select every view,
// role only shapes what a view renders.
func (s *SessionService) SetView(name string) error {
	if s.session == nil {
		return appErrors.ErrNotAuthenticated
	}
	s.view = models.View(name)
	return nil
}

// CurrentView returns the selected view identifier as set, without the
// unknown-view fallback applied.
func (s *SessionService) CurrentView() models.View {
	return s.view
}

func (s *SessionService) login(account *models.Account) {
	s.session = &models.Session{
		Key:  uuid.NewString(),
		ID:   account.ID,
		Name: account.Name,
		Role: account.Role,
	}
	s.view = models.ViewDashboard
}

// signupFieldMessage maps the first failing signup field to a user-facing
// message.
func signupFieldMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid signup details"
	}
	switch fieldErrs[0].Field() {
	case "Name":
		return "please enter your full name"
	case "ID":
		return "please choose a user ID"
	case "Role":
		return "role must be student, faculty or admin"
	case "Credential":
		return "please choose a password"
	default:
		return "invalid signup details"
	}
}
