package user

import (
	"context"
	"fmt"
	"strings"

	"phonekart/internal/api"
	"phonekart/internal/logger"
	"phonekart/internal/notify"
	"phonekart/internal/session"
	"phonekart/internal/utils"

	"go.uber.org/zap"
)

// Backend is the account part of the REST client.
type Backend interface {
	Register(ctx context.Context, in api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, in api.LoginRequest) (*api.AuthResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*api.Profile, error)
	UpdateProfile(ctx context.Context, in api.Profile) (*api.Profile, error)
	UpdatePassword(ctx context.Context, in api.PasswordChange) error
	ForgotPassword(ctx context.Context, in api.PasswordReset) error
}

// Gate is the session holder the account flows sign in and out of.
type Gate interface {
	LoggedIn() bool
	SignIn(ctx context.Context, s session.Session) error
	SignOut(ctx context.Context) error
	Update(ctx context.Context, fn func(*session.Session)) error
}

type Service interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, in LoginInput) (session.Session, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (Profile, error)
	UpdateProfile(ctx context.Context, p Profile) (Profile, error)
	ChangePassword(ctx context.Context, in PasswordChangeInput) error
	ForgotPassword(ctx context.Context, in ResetPasswordInput) error
}

type service struct {
	backend  Backend
	gate     Gate
	notifier notify.Notifier
}

func NewService(backend Backend, gate Gate, n notify.Notifier) Service {
	return &service{
		backend:  backend,
		gate:     gate,
		notifier: notify.OrDiscard(n),
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, utils.FirstValidationMessage(err))
}

func (s *service) Register(ctx context.Context, in RegisterInput) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "Register"))

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := utils.ValidateStruct(in); err != nil {
		return invalid(err)
	}

	if _, err := s.backend.Register(ctx, api.RegisterRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}); err != nil {
		log.Error("failed to register", zap.String("email", in.Email), zap.Error(err))
		return err
	}

	log.Info("account created", zap.String("email", in.Email))
	s.notifier.Notify(notify.KindSuccess, "Account Created Successfully! Please Login.")
	return nil
}

func (s *service) Login(ctx context.Context, in LoginInput) (session.Session, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "Login"))

	in.Email = strings.TrimSpace(in.Email)
	if err := utils.ValidateStruct(in); err != nil {
		return session.Session{}, invalid(err)
	}

	resp, err := s.backend.Login(ctx, api.LoginRequest{Email: in.Email, Password: in.Password})
	if err != nil {
		log.Warn("login failed", zap.String("email", in.Email), zap.Error(err))
		return session.Session{}, err
	}

	sess := mapSession(*resp)
	if err := s.gate.SignIn(ctx, sess); err != nil {
		log.Error("failed to persist session", zap.Error(err))
		return session.Session{}, err
	}

	s.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Welcome back, %s!", sess.Name))
	return sess, nil
}

// Logout tells the backend, then always forgets the local session.
func (s *service) Logout(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "Logout"))

	if s.gate.LoggedIn() {
		if err := s.backend.Logout(ctx); err != nil {
			log.Warn("backend logout failed", zap.Error(err))
		}
	}
	if err := s.gate.SignOut(ctx); err != nil {
		log.Error("failed to clear session", zap.Error(err))
		return err
	}
	s.notifier.Notify(notify.KindInfo, "Logged out")
	return nil
}

func (s *service) Profile(ctx context.Context) (Profile, error) {
	if !s.gate.LoggedIn() {
		return Profile{}, ErrNotLoggedIn
	}
	p, err := s.backend.Profile(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load profile", zap.String("layer", "service"), zap.Error(err))
		return Profile{}, err
	}
	return mapProfile(*p), nil
}

func (s *service) UpdateProfile(ctx context.Context, p Profile) (Profile, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "UpdateProfile"))

	if !s.gate.LoggedIn() {
		return Profile{}, ErrNotLoggedIn
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if err := utils.ValidateStruct(p); err != nil {
		return Profile{}, invalid(err)
	}
	if n := avatarSize(p.Avatar); n > MaxAvatarBytes {
		return Profile{}, fmt.Errorf("%w: %d bytes", ErrAvatarTooLarge, n)
	}

	updated, err := s.backend.UpdateProfile(ctx, mapProfileToAPI(p))
	if err != nil {
		log.Error("failed to update profile", zap.Error(err))
		return Profile{}, err
	}

	out := mapProfile(*updated)
	if err := s.gate.Update(ctx, func(sess *session.Session) {
		sess.Name = out.Name
		sess.Avatar = out.Avatar
	}); err != nil {
		log.Error("failed to merge profile into session", zap.Error(err))
		return Profile{}, err
	}

	s.notifier.Notify(notify.KindSuccess, "Profile Updated Successfully!")
	return out, nil
}

// ChangePassword updates the password and signs out so the user logs in again.
func (s *service) ChangePassword(ctx context.Context, in PasswordChangeInput) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "service"), zap.String("method", "ChangePassword"))

	if !s.gate.LoggedIn() {
		return ErrNotLoggedIn
	}
	if in.NewPassword != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := utils.ValidateStruct(in); err != nil {
		return invalid(err)
	}

	if err := s.backend.UpdatePassword(ctx, api.PasswordChange{
		OldPassword: in.OldPassword,
		NewPassword: in.NewPassword,
	}); err != nil {
		log.Warn("password update failed", zap.Error(err))
		return err
	}

	s.notifier.Notify(notify.KindSuccess, "Password Changed! Please Login Again.")
	if err := s.gate.SignOut(ctx); err != nil {
		log.Error("failed to clear session", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ForgotPassword(ctx context.Context, in ResetPasswordInput) error {
	in.Email = strings.TrimSpace(in.Email)
	if err := utils.ValidateStruct(in); err != nil {
		return invalid(err)
	}

	if err := s.backend.ForgotPassword(ctx, api.PasswordReset{
		Email:       in.Email,
		NewPassword: in.NewPassword,
	}); err != nil {
		logger.FromCtx(ctx).Warn("password reset failed",
			zap.String("layer", "service"),
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return err
	}

	s.notifier.Notify(notify.KindSuccess, "Password Reset Successful!")
	return nil
}
