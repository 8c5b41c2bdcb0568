package memory

import (
	"sync"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Store is the in-memory backend. All slices preserve insertion order;
// a single mutex guards every collection so status transitions behave
// like the guarded UPDATEs of the postgres backend.
type Store struct {
	mu            sync.RWMutex
	employees     []*employee.Employee
	leaveRequests []*leave.LeaveRequest
	attendances   []*attendance.Attendance
	payrolls      []*payroll.PayrollRecord
	refreshTokens map[string]*auth.RefreshToken
}

func NewStore() *Store {
	return &Store{
		refreshTokens: make(map[string]*auth.RefreshToken),
	}
}

func newID() string {
	return uuid.NewString()
}

// Seed loads the demo dataset: one approved admin, two approved staff,
// one pending registration. Password for every account is "password123".
func (s *Store) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)

	now := time.Now()
	salaryAdmin := decimal.NewFromInt(9000)
	salaryStaff := decimal.NewFromInt(5500)

	seedEmployees := []*employee.Employee{
		{
			ID:            newID(),
			Email:         "sarah.admin@dayflow.io",
			PasswordHash:  &hashed,
			FullName:      "Sarah Mitchell",
			Role:          employee.RoleAdmin,
			AccountStatus: employee.AccountStatusApproved,
			Position:      ptr("HR Manager"),
			Department:    ptr("Human Resources"),
			HireDate:      time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
			BaseSalary:    &salaryAdmin,
			LeaveBalance:  18,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            newID(),
			Email:         "raj.patel@dayflow.io",
			PasswordHash:  &hashed,
			FullName:      "Raj Patel",
			Role:          employee.RoleStaff,
			AccountStatus: employee.AccountStatusApproved,
			Position:      ptr("Software Engineer"),
			Department:    ptr("Engineering"),
			HireDate:      time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC),
			BaseSalary:    &salaryStaff,
			LeaveBalance:  12,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            newID(),
			Email:         "lena.ortiz@dayflow.io",
			PasswordHash:  &hashed,
			FullName:      "Lena Ortiz",
			Role:          employee.RoleStaff,
			AccountStatus: employee.AccountStatusApproved,
			Position:      ptr("Product Designer"),
			Department:    ptr("Design"),
			HireDate:      time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
			BaseSalary:    &salaryStaff,
			LeaveBalance:  14,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            newID(),
			Email:         "tom.weber@dayflow.io",
			PasswordHash:  &hashed,
			FullName:      "Tom Weber",
			Role:          employee.RoleStaff,
			AccountStatus: employee.AccountStatusPending,
			HireDate:      now,
			LeaveBalance:  12,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, seedEmployees...)
	return nil
}

func ptr(s string) *string {
	return &s
}
