package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/config"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	appHTTP "github.com/dayflow-hq/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/oauth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hq/dayflow-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hq/dayflow-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hq/dayflow-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hq/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hq/dayflow-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hq/dayflow-backend-go/internal/service/payroll"
)

type repositories struct {
	employee     employee.EmployeeRepository
	leaveRequest leave.LeaveRequestRepository
	attendance   attendance.AttendanceRepository
	payroll      payroll.PayrollRepository
	refreshToken auth.RefreshTokenRepository
	transactor   database.Transactor
}

func buildRepositories(cfg *config.Config) (repositories, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return repositories{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		return repositories{
			employee:     postgresql.NewEmployeeRepository(db),
			leaveRequest: postgresql.NewLeaveRequestRepository(db),
			attendance:   postgresql.NewAttendanceRepository(db),
			payroll:      postgresql.NewPayrollRepository(db),
			refreshToken: postgresql.NewRefreshTokenRepository(db),
			transactor:   postgresql.NewTransactor(db),
		}, nil
	case "memory":
		store := memory.NewStore()
		if err := store.Seed(); err != nil {
			return repositories{}, fmt.Errorf("failed to seed demo data: %w", err)
		}
		return repositories{
			employee:     memory.NewEmployeeRepository(store),
			leaveRequest: memory.NewLeaveRequestRepository(store),
			attendance:   memory.NewAttendanceRepository(store),
			payroll:      memory.NewPayrollRepository(store),
			refreshToken: memory.NewRefreshTokenRepository(store),
			transactor:   memory.NewTransactor(),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	repos, err := buildRepositories(cfg)
	if err != nil {
		log.Fatal("Error building storage: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(repos.employee, repos.refreshToken, jwtService)
	employeeSvc := employeeService.NewEmployeeService(repos.employee)
	leaveSvc := leaveService.NewLeaveService(repos.leaveRequest, repos.employee, repos.transactor)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, cfg.Attendance.WorkdayStart)
	payrollSvc := payrollService.NewPayrollService(repos.payroll, repos.employee)
	dashboardSvc := dashboardService.NewDashboardService(repos.employee, repos.leaveRequest, repos.attendance)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
