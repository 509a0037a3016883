package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workflowhq/workforce-backend-go/internal/config"
	appHTTP "github.com/workflowhq/workforce-backend-go/internal/handler/http"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/cron"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/jwt"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/sse"
	"github.com/workflowhq/workforce-backend-go/internal/repository/postgresql"
	authService "github.com/workflowhq/workforce-backend-go/internal/service/auth"
	candidateService "github.com/workflowhq/workforce-backend-go/internal/service/candidate"
	employeeService "github.com/workflowhq/workforce-backend-go/internal/service/employee"
	goalService "github.com/workflowhq/workforce-backend-go/internal/service/goal"
	leaveService "github.com/workflowhq/workforce-backend-go/internal/service/leave"
	notificationService "github.com/workflowhq/workforce-backend-go/internal/service/notification"
	payslipService "github.com/workflowhq/workforce-backend-go/internal/service/payslip"
	shiftService "github.com/workflowhq/workforce-backend-go/internal/service/shift"
	timesheetService "github.com/workflowhq/workforce-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	txManager := postgresql.NewTxManager(db)

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, notificationSvc)
	timesheetSvc := timesheetService.NewTimesheetService(timeEntryRepo, shiftRepo)
	payslipSvc := payslipService.NewPayslipService(payslipRepo, employeeRepo, shiftRepo, timeEntryRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRepo, employeeRepo, notificationSvc)
	goalSvc := goalService.NewGoalService(goalRepo, employeeRepo)
	candidateSvc := candidateService.NewCandidateService(candidateRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	goalHandler := appHTTP.NewGoalHandler(goalSvc)
	candidateHandler := appHTTP.NewCandidateHandler(candidateSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, hub)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		shiftHandler,
		timesheetHandler,
		payslipHandler,
		leaveHandler,
		goalHandler,
		candidateHandler,
		notificationHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewTimesheetJobs(timeEntryRepo, notificationSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
