package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrplus/payroll-backend-go/internal/domain/payroll"
	"github.com/hrplus/payroll-backend-go/internal/domain/salary"
	"github.com/hrplus/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CalculateMonth(w http.ResponseWriter, r *http.Request)
	SaveMonth(w http.ResponseWriter, r *http.Request)
	SavedExists(w http.ResponseWriter, r *http.Request)
	GetSaved(w http.ResponseWriter, r *http.Request)
	UpdatePaid(w http.ResponseWriter, r *http.Request)
	DeleteMonth(w http.ResponseWriter, r *http.Request)
	RecalculateOne(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) CalculateMonth(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CalculateMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) SaveMonth(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.SaveMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll saved", result)
}

func (h *payrollHandlerImpl) SavedExists(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.SavedExists(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetSaved(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	var filter payroll.Filter
	if v := r.URL.Query().Get("shift_name"); v != "" {
		filter.ShiftName = &v
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	result, err := h.payrollService.GetSaved(r.Context(), month, year, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdatePaid(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.UpdatePaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Paid status updated", result)
}

func (h *payrollHandlerImpl) DeleteMonth(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.DeleteMonth(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll month deleted", result)
}

func (h *payrollHandlerImpl) RecalculateOne(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.RecalculateOne(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll recalculated", result)
}

func monthYearParams(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid or missing month parameter", nil)
		return 0, 0, false
	}
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 {
		response.BadRequest(w, "Invalid or missing year parameter", nil)
		return 0, 0, false
	}
	return month, year, true
}
