package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	ListPeriod(w http.ResponseWriter, r *http.Request)
	GetMyPayroll(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Upsert implements PayrollHandler.
func (h *PayrollHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.payrollService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("Upsert payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll record saved", "payroll_id", rec.ID)
	response.SuccessWithMessage(w, "Payroll record saved", rec)
}

// ListPeriod implements PayrollHandler. Month and year query params default
// to the current period.
func (h *PayrollHandlerImpl) ListPeriod(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	month := int(now.Month())
	year := now.Year()

	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		month = parsed
	}
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	records, err := h.payrollService.ListPeriod(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetMyPayroll implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMyPayroll(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.payrollService.GetMine(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Pay implements PayrollHandler.
func (h *PayrollHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payrollID := chi.URLParam(r, "id")
	if payrollID == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.MarkPaid(r.Context(), payrollID, actorID); err != nil {
		slog.Error("Pay service error", "error", err, "payroll_id", payrollID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll record paid", "payroll_id", payrollID, "paid_by", actorID)
	response.SuccessWithMessage(w, "Payroll record marked as paid", nil)
}
