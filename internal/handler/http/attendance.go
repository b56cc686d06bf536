package http

import (
	"encoding/json"
	"net/http"

	"github.com/hrplus/payroll-backend-go/internal/domain/attendance"
	"github.com/hrplus/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordDay(w http.ResponseWriter, r *http.Request)
	RecalculateRange(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) RecordDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.RecordDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

func (h *attendanceHandlerImpl) RecalculateRange(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecalculateRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.RecalculateRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
