package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shiftwatch/attendance-backend-go/internal/config"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/shiftwatch/attendance-backend-go/internal/handler/http"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/cron"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/roles"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/shiftwatch/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwatch/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/shiftwatch/attendance-backend-go/internal/service/dashboard"
	presenceService "github.com/shiftwatch/attendance-backend-go/internal/service/presence"
	reportService "github.com/shiftwatch/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	shiftcal.SetOffset(cfg.Engine.TZOffsetMinutes)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db, logger)
	punchRepo := postgresql.NewPunchRepository(db)

	roleTable := roles.NewTable(roles.Config{
		ExemptRoles: cfg.Engine.ExemptRoles,
		PooledRoles: cfg.Engine.PooledRoles,
		ExemptIDs:   cfg.Engine.ExemptIDs,
		MaskedIDs:   cfg.Engine.MaskedIDs,
		MaskDisplay: cfg.Engine.MaskDisplay,
	})

	pools := []attendance.Pool{
		{Name: "regular", Lookback: cfg.Engine.RegularLookback},
		{Name: "team-lead", Roles: normalized(cfg.Engine.PooledRoles), Lookback: cfg.Engine.TeamLeadLookback},
		{Name: "admin", Roles: normalized(cfg.Engine.AdminRoles), Lookback: cfg.Engine.AdminLookback},
	}
	if len(cfg.Engine.SpecialIDs) > 0 {
		pools = append(pools, attendance.Pool{
			Name:        "special",
			EmployeeIDs: cfg.Engine.SpecialIDs,
			Lookback:    cfg.Engine.SpecialLookback,
		})
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	presenceSvc := presenceService.NewPresenceService(employeeRepo, punchRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, assignmentRepo, punchRepo, presenceSvc, roleTable, pools, logger)
	attendanceSvc := attendanceService.NewAttendanceService(employeeRepo, assignmentRepo, punchRepo, roleTable)
	reportSvc := reportService.NewReportService(employeeRepo, assignmentRepo, punchRepo, roleTable)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	presenceHandler := appHTTP.NewPresenceHandler(presenceSvc, pools, "regular")
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler(logger)
	cron.NewDashboardJobs(dashboardSvc, logger, cfg.Engine.RefreshInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App.Env, JWTService, dashboardHandler, presenceHandler, attendanceHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Server starting", slog.String("port", port))
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("Server stopped", slog.Any("error", err))
	}
}

func normalized(roleNames []string) []string {
	out := make([]string, 0, len(roleNames))
	for _, r := range roleNames {
		out = append(out, roles.Normalize(r))
	}
	return out
}
