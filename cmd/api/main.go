package main

import (
	"fmt"
	"net/http"

	"github.com/akademika/hris-backend-go/internal/config"
	appHTTP "github.com/akademika/hris-backend-go/internal/handler/http"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/pkg/cron"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/akademika/hris-backend-go/internal/pkg/jwt"
	"github.com/akademika/hris-backend-go/internal/repository/postgresql"
	approvalService "github.com/akademika/hris-backend-go/internal/service/approval"
	attendanceService "github.com/akademika/hris-backend-go/internal/service/attendance"
	authService "github.com/akademika/hris-backend-go/internal/service/auth"
	employeeService "github.com/akademika/hris-backend-go/internal/service/employee"
	holidayService "github.com/akademika/hris-backend-go/internal/service/holiday"
	leaveService "github.com/akademika/hris-backend-go/internal/service/leave"
	shiftService "github.com/akademika/hris-backend-go/internal/service/shift"
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
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	historyRepo := postgresql.NewHistoryRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	workingHoursRepo := postgresql.NewWorkingHoursRepository(db)
	shiftPackageRepo := postgresql.NewShiftPackageRepository(db)
	shiftPatternRepo := postgresql.NewShiftPatternRepository(db)
	shiftSettingRepo := postgresql.NewShiftSettingRepository(db)
	shiftScheduleRepo := postgresql.NewShiftScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	wfhRequestRepo := postgresql.NewWFHRequestRepository(db)
	overtimeRequestRepo := postgresql.NewOvertimeRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)

	txManager := postgresql.NewTxManager(db)
	clk := clock.System{}

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	holidaySvc := holidayService.NewHolidayService(holidayRepo, clk)
	chainResolver := approvalService.NewChainResolver(employeeRepo, departmentRepo)
	wfhSvc := approvalService.NewWFHService(wfhRequestRepo, employeeRepo, clk)
	overtimeSvc := approvalService.NewOvertimeService(overtimeRequestRepo, employeeRepo, clk)
	shiftSvc := shiftService.NewShiftService(
		workingHoursRepo,
		shiftPackageRepo,
		shiftPatternRepo,
		shiftSettingRepo,
		shiftScheduleRepo,
		employeeRepo,
		holidaySvc,
		txManager,
		clk,
	)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, shiftSvc, wfhSvc, clk)
	balanceEngine := leaveService.NewBalanceEngine(leaveBalanceRepo, cfg.Leave.DefaultAnnualQuota, cfg.Leave.CarryForwardMonths, clk)
	leaveRequestSvc := leaveService.NewRequestService(
		leaveRequestRepo,
		balanceEngine,
		chainResolver,
		employeeRepo,
		holidaySvc,
		txManager,
		clk,
	)
	authSvc := authService.NewAuthService(accountRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, positionRepo, historyRepo, txManager, clk)

	scheduler := cron.NewScheduler()
	leaveJobs := cron.NewLeaveJobs(balanceEngine, leaveBalanceRepo, clk)
	leaveJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	wfhHandler := appHTTP.NewWFHHandler(wfhSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveRequestSvc, balanceEngine)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		attendanceHandler,
		shiftHandler,
		holidayHandler,
		wfhHandler,
		overtimeHandler,
		leaveHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
