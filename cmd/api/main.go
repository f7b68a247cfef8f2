package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/attendhub/attendance-backend-go/internal/config"
	appHTTP "github.com/attendhub/attendance-backend-go/internal/handler/http"
	"github.com/attendhub/attendance-backend-go/internal/pkg/clock"
	"github.com/attendhub/attendance-backend-go/internal/pkg/cron"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/attendhub/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendhub/attendance-backend-go/internal/pkg/push"
	"github.com/attendhub/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendhub/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendhub/attendance-backend-go/internal/service/auth"
	notificationService "github.com/attendhub/attendance-backend-go/internal/service/notification"
	overtimeService "github.com/attendhub/attendance-backend-go/internal/service/overtime"
	permissionService "github.com/attendhub/attendance-backend-go/internal/service/permission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "attendance-backend"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	appClock, err := clock.NewZoned(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var pushClient *push.Client
	if cfg.PushEnabled() {
		credentials, err := os.ReadFile(cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatal("Failed to read Firebase credentials:", err)
		}
		pushClient, err = push.NewClient(context.Background(), credentials, cfg.Firebase.ProjectID)
		if err != nil {
			log.Fatal("Failed to initialize push client:", err)
		}
	}

	notificationSvc := notificationService.NewNotificationService(db, sessionRepo, pushClient, logger)
	authSvc := authService.NewAuthService(db, userRepo, jwtService, logger)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		overtimeRepo,
		permissionRepo,
		userRepo,
		notificationSvc,
		appClock,
		logger,
	)
	overtimeSvc := overtimeService.NewOvertimeService(db, overtimeRepo, notificationSvc, appClock, logger)
	permissionSvc := permissionService.NewPermissionService(db, permissionRepo, notificationSvc, appClock, logger)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	permissionHandler := appHTTP.NewPermissionHandler(permissionSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	reminders := cron.NewReminderJobs(userRepo, attendanceRepo, notificationSvc, appClock, logger)
	scheduler := cron.NewScheduler()
	for _, job := range reminders.Jobs() {
		scheduler.AddJob(job.Name, job.Interval, job.Fn)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		overtimeHandler,
		permissionHandler,
		notificationHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
