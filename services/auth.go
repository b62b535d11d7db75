package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"outlet-service/dto"
	"outlet-service/identity"
	"outlet-service/mailer"
	"outlet-service/models"
	"outlet-service/store"
	"outlet-service/token"
)

// AuthService drives the tenant-user session lifecycle:
// unregistered -> registered(unconfirmed) -> confirmed -> login/refresh cycles -> logged out.
type AuthService struct {
	users         store.UserStore
	outlets       store.OutletStore
	roles         store.RoleStore
	refreshTokens store.RefreshTokenStore
	resolver      *identity.Resolver
	issuer        *token.Issuer
	mail          mailer.Sender
	logger        *zap.SugaredLogger
	publicURL     string
}

func NewAuthService(
	users store.UserStore,
	outlets store.OutletStore,
	roles store.RoleStore,
	refreshTokens store.RefreshTokenStore,
	resolver *identity.Resolver,
	issuer *token.Issuer,
	mail mailer.Sender,
	logger *zap.SugaredLogger,
	publicURL string,
) *AuthService {
	return &AuthService{
		users:         users,
		outlets:       outlets,
		roles:         roles,
		refreshTokens: refreshTokens,
		resolver:      resolver,
		issuer:        issuer,
		mail:          mail,
		logger:        logger,
		publicURL:     publicURL,
	}
}

// LoginResult carries the issued tokens and the redacted user profile.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// Register creates the outlet, its default admin role and the user in one
// go, then fires off the verification email. A failed send is logged but
// never rolls the registration back; the user can request a resend.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDto) error {
	if _, err := s.users.ByEmail(ctx, payload.Email); err == nil {
		return fmt.Errorf("%w: user with this email already exists", store.ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("check existing user: %w", err)
	}

	digest, err := hashPassword(payload.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	outlet := &models.Outlet{Name: payload.OutletName}
	if err := s.outlets.Create(ctx, outlet); err != nil {
		return fmt.Errorf("create outlet: %w", err)
	}

	role := &models.Role{
		Name:     "Admin",
		IsAdmin:  true,
		Modules:  models.AllModules(),
		OutletID: outlet.ID,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return fmt.Errorf("create default role: %w", err)
	}

	user := &models.User{
		Name:     payload.Username,
		Email:    payload.Email,
		Password: digest,
		OutletID: outlet.ID,
		RoleID:   &role.ID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if err := s.SendVerificationEmail(ctx, user); err != nil {
		s.logger.Errorw("failed to send verification email", "email", user.Email, "error", err)
	}
	return nil
}

// SendVerificationEmail issues a fresh verify-context token and hands it to
// the mail collaborator.
func (s *AuthService) SendVerificationEmail(ctx context.Context, user *models.User) error {
	verifyToken, err := s.issuer.Issue(token.EmailVerify, token.Claims{
		Subject: user.ID,
		Email:   user.Email,
	})
	if err != nil {
		return fmt.Errorf("issue verification token: %w", err)
	}
	link := mailer.VerificationLink(s.publicURL, verifyToken)
	return s.mail.SendVerificationEmail(ctx, user.Email, link)
}

// VerifyEmail flips the confirmation flag. Verifying an already confirmed
// account succeeds without effect.
func (s *AuthService) VerifyEmail(ctx context.Context, rawToken string) error {
	claims, err := s.issuer.Verify(token.EmailVerify, rawToken)
	if err != nil {
		return err
	}

	user, err := s.users.ByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return token.ErrInvalidToken
		}
		return err
	}
	if user.IsConfirmed {
		return nil
	}

	user.IsConfirmed = true
	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("confirm user: %w", err)
	}
	return nil
}

// Login authenticates the credentials and issues the access/refresh pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password == "" || !verifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsConfirmed {
		return nil, ErrEmailNotConfirmed
	}

	roleID := ""
	if user.RoleID != nil {
		roleID = *user.RoleID
	}
	accessToken, err := s.issuer.Issue(token.TenantAccess, token.Claims{
		Subject: user.ID,
		Email:   user.Email,
		RoleID:  roleID,
	})
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	rec := &models.RefreshToken{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.issuer.ExpiresIn(token.TenantRefresh)),
		IsActive:  true,
	}
	if err := s.refreshTokens.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}
	refreshToken, err := s.issuer.Issue(token.TenantRefresh, token.Claims{
		Subject: user.ID,
		Email:   user.Email,
		TokenID: rec.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshTokens exchanges a live refresh token for a new access token. The
// identity is re-resolved so role and module changes since login apply. The
// refresh token itself is not rotated; it stays valid until expiry or logout,
// and revoking its server-side record kills it immediately.
func (s *AuthService) RefreshTokens(ctx context.Context, rawRefresh string) (string, error) {
	claims, err := s.issuer.Verify(token.TenantRefresh, rawRefresh)
	if err != nil {
		return "", err
	}
	if claims.TokenID == "" {
		return "", token.ErrInvalidToken
	}

	rec, err := s.refreshTokens.ByID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", token.ErrInvalidToken
		}
		return "", err
	}
	if !rec.IsActive || time.Now().After(rec.ExpiresAt) {
		s.refreshTokens.Delete(ctx, rec.ID)
		return "", token.ErrInvalidToken
	}

	ident, err := s.resolver.ResolveTenantUser(ctx, claims)
	if err != nil {
		if errors.Is(err, identity.ErrEmailNotConfirmed) {
			return "", ErrEmailNotConfirmed
		}
		// The record outlived its principal: the claim email no longer
		// resolves, so the token is dead too.
		if errors.Is(err, identity.ErrUnauthenticated) {
			return "", token.ErrInvalidToken
		}
		return "", err
	}

	roleID := ""
	if ident.Role != nil {
		roleID = ident.Role.ID
	}
	accessToken, err := s.issuer.Issue(token.TenantAccess, token.Claims{
		Subject: ident.ID,
		Email:   ident.Email,
		RoleID:  roleID,
	})
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes the refresh token's server-side record. It never fails on
// bad input: clearing the cookie is the contract, and an invalid token has
// nothing left to revoke.
func (s *AuthService) Logout(ctx context.Context, rawRefresh string) {
	if rawRefresh == "" {
		return
	}
	claims, err := s.issuer.Verify(token.TenantRefresh, rawRefresh)
	if err != nil || claims.TokenID == "" {
		return
	}
	if err := s.refreshTokens.Delete(ctx, claims.TokenID); err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.Errorw("failed to revoke refresh token", "error", err)
	}
}

// Profile returns the current user's redacted profile.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.ByID(ctx, userID)
}
