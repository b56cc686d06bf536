package main

import (
	"fmt"
	"net/http"

	"github.com/hrplus/payroll-backend-go/internal/config"
	appHTTP "github.com/hrplus/payroll-backend-go/internal/handler/http"
	"github.com/hrplus/payroll-backend-go/internal/pkg/database"
	"github.com/hrplus/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/hrplus/payroll-backend-go/internal/service/payroll"
	"github.com/hrplus/payroll-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	attendanceSvc := timesheet.NewTimesheetService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, adjustmentRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg.App.Env, attendanceHandler, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
