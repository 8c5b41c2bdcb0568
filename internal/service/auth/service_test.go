package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	service      auth.AuthService
	employeeRepo employee.EmployeeRepository
	tokenRepo    auth.RefreshTokenRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	tokenRepo := memory.NewRefreshTokenRepository(store)
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")

	return &authFixture{
		service:      NewAuthService(employeeRepo, tokenRepo, jwtService),
		employeeRepo: employeeRepo,
		tokenRepo:    tokenRepo,
	}
}

func (f *authFixture) createApprovedStaff(t *testing.T, email, password string) employee.Employee {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	passwordHash := string(hash)

	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		Email:         email,
		PasswordHash:  &passwordHash,
		FullName:      "Test Staff",
		Role:          employee.RoleStaff,
		AccountStatus: employee.AccountStatusApproved,
		HireDate:      time.Now(),
		LeaveBalance:  12,
		Active:        true,
	})
	require.NoError(t, err)
	return emp
}

func TestRegister_CreatesPendingStaffAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	err := f.service.Register(ctx, auth.RegisterRequest{
		Email:    "new.hire@dayflow.io",
		Password: "password123",
		FullName: "New Hire",
	})
	require.NoError(t, err)

	emp, err := f.employeeRepo.GetByEmail(ctx, "new.hire@dayflow.io")
	require.NoError(t, err)
	assert.Equal(t, employee.RoleStaff, emp.Role)
	assert.Equal(t, employee.AccountStatusPending, emp.AccountStatus)
	require.NotNil(t, emp.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte("password123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.createApprovedStaff(t, "taken@dayflow.io", "password123")

	err := f.service.Register(ctx, auth.RegisterRequest{
		Email:    "taken@dayflow.io",
		Password: "password123",
		FullName: "Someone Else",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	emp := f.createApprovedStaff(t, "staff@dayflow.io", "password123")

	resp, err := f.service.Login(ctx, auth.LoginRequest{
		Email:    "staff@dayflow.io",
		Password: "password123",
	}, auth.SessionTrackingRequest{IPAddress: "10.0.0.1", UserAgent: "tests"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, emp.ID, resp.Employee.ID)
	assert.Equal(t, employee.RoleStaff, resp.Employee.Role)

	stored, err := f.tokenRepo.Get(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, stored.EmployeeID)
	assert.Equal(t, "10.0.0.1", stored.IPAddress)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	f.createApprovedStaff(t, "staff@dayflow.io", "password123")

	_, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    "staff@dayflow.io",
		Password: "nope-nope-nope",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@dayflow.io",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_PendingAccountBlocked(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.Register(ctx, auth.RegisterRequest{
		Email:    "pending@dayflow.io",
		Password: "password123",
		FullName: "Pending Person",
	}))

	_, err := f.service.Login(ctx, auth.LoginRequest{
		Email:    "pending@dayflow.io",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, employee.ErrAccountNotApproved)
}

func TestLoginWithGoogle(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	emp := f.createApprovedStaff(t, "staff@dayflow.io", "password123")

	resp, err := f.service.LoginWithGoogle(ctx, "staff@dayflow.io", true, auth.SessionTrackingRequest{})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, resp.Employee.ID)

	_, err = f.service.LoginWithGoogle(ctx, "staff@dayflow.io", false, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrEmailNotVerified)

	_, err = f.service.LoginWithGoogle(ctx, "stranger@gmail.com", true, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshToken_RotatesPair(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.createApprovedStaff(t, "staff@dayflow.io", "password123")
	login, err := f.service.Login(ctx, auth.LoginRequest{
		Email:    "staff@dayflow.io",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	rotated, err := f.service.RefreshToken(ctx, login.RefreshToken, auth.SessionTrackingRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)

	// The presented token is single-use.
	_, err = f.service.RefreshToken(ctx, login.RefreshToken, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// The rotated token still works.
	_, err = f.service.RefreshToken(ctx, rotated.RefreshToken, auth.SessionTrackingRequest{})
	assert.NoError(t, err)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.createApprovedStaff(t, "staff@dayflow.io", "password123")
	login, err := f.service.Login(ctx, auth.LoginRequest{
		Email:    "staff@dayflow.io",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	_, err = f.service.RefreshToken(ctx, login.AccessToken, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_Garbage(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.RefreshToken(context.Background(), "not-a-jwt", auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.createApprovedStaff(t, "staff@dayflow.io", "password123")
	login, err := f.service.Login(ctx, auth.LoginRequest{
		Email:    "staff@dayflow.io",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, login.RefreshToken))

	_, err = f.tokenRepo.Get(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// Logout is idempotent.
	assert.NoError(t, f.service.Logout(ctx, login.RefreshToken))
}
