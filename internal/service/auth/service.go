package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
)

// Self-registered accounts start with a year of standard annual leave.
const defaultLeaveBalance = 12

type AuthServiceImpl struct {
	employee.EmployeeRepository
	auth.RefreshTokenRepository
	jwt.Service
}

func NewAuthService(employeeRepository employee.EmployeeRepository, refreshTokenRepository auth.RefreshTokenRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository:     employeeRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
	}
}

// Register creates a staff account in the pending queue. The account cannot
// log in until an admin approves it.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	if _, err := a.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return fmt.Errorf("failed to get employee by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	_, err = a.EmployeeRepository.Create(ctx, employee.Employee{
		Email:         req.Email,
		PasswordHash:  &passwordHash,
		FullName:      req.FullName,
		Role:          employee.RoleStaff,
		AccountStatus: employee.AccountStatusPending,
		HireDate:      time.Now().UTC(),
		LeaveBalance:  defaultLeaveBalance,
		Active:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if emp.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.CanLogin() {
		return auth.LoginResponse{}, employee.ErrAccountNotApproved
	}

	return a.issueTokens(ctx, emp, session)
}

// LoginWithGoogle signs in an existing approved account whose email matches
// the verified Google email. It never creates accounts.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, emailVerified bool, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if !emailVerified {
		return auth.LoginResponse{}, auth.ErrEmailNotVerified
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if !emp.CanLogin() {
		return auth.LoginResponse{}, employee.ErrAccountNotApproved
	}

	return a.issueTokens(ctx, emp, session)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, emp employee.Employee, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	var tokens auth.TokenResponse
	var err error

	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.RefreshTokenRepository.Create(ctx, auth.RefreshToken{
		EmployeeID: emp.ID,
		Token:      tokens.RefreshToken,
		IPAddress:  session.IPAddress,
		UserAgent:  session.UserAgent,
		ExpiresAt:  time.Unix(tokens.RefreshTokenExpiresIn, 0),
	})
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return auth.LoginResponse{
		TokenResponse: tokens,
		Employee: auth.LoggedInEmployee{
			ID:       emp.ID,
			FullName: emp.FullName,
			Email:    emp.Email,
			Role:     emp.Role,
		},
	}, nil
}

// RefreshToken rotates the refresh token: the presented token is revoked and
// a fresh pair is issued.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return auth.TokenResponse{}, auth.ErrTokenExpired
		}
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := a.RefreshTokenRepository.Get(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, stored.EmployeeID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !emp.CanLogin() {
		return auth.TokenResponse{}, employee.ErrAccountNotApproved
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	var tokens auth.TokenResponse
	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = a.RefreshTokenRepository.Create(ctx, auth.RefreshToken{
		EmployeeID: emp.ID,
		Token:      tokens.RefreshToken,
		IPAddress:  session.IPAddress,
		UserAgent:  session.UserAgent,
		ExpiresAt:  time.Unix(tokens.RefreshTokenExpiresIn, 0),
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return tokens, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	_, err := a.RefreshTokenRepository.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshTokenRevoked) {
			return nil
		}
		return err
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
