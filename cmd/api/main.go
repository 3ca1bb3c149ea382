package main

import (
	"fmt"
	"net/http"

	"github.com/hadirin/attendance-backend-go/internal/config"
	appHTTP "github.com/hadirin/attendance-backend-go/internal/handler/http"
	"github.com/hadirin/attendance-backend-go/internal/pkg/database"
	"github.com/hadirin/attendance-backend-go/internal/pkg/jwt"
	"github.com/hadirin/attendance-backend-go/internal/repository/postgresql"
	adminService "github.com/hadirin/attendance-backend-go/internal/service/admin"
	attendanceService "github.com/hadirin/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/hadirin/attendance-backend-go/internal/service/employee"
	payrollService "github.com/hadirin/attendance-backend-go/internal/service/payroll"
	storeService "github.com/hadirin/attendance-backend-go/internal/service/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	adminSvc := adminService.NewAdminService(adminRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, sessionRepo, payrollRepo)
	storeSvc := storeService.NewStoreService(storeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, sessionRepo, employeeRepo, storeRepo, cfg.Clock.RadiusDegrees)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, sessionRepo, employeeRepo)

	adminHandler := appHTTP.NewAdminHandler(adminSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	storeHandler := appHTTP.NewStoreHandler(storeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		adminHandler,
		employeeHandler,
		storeHandler,
		attendanceHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
