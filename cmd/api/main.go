package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bizsupportc/teamtrack-backend-go/internal/config"
	appHTTP "github.com/bizsupportc/teamtrack-backend-go/internal/handler/http"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/database"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/bizsupportc/teamtrack-backend-go/internal/pkg/ratelimit"
	"github.com/bizsupportc/teamtrack-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/bizsupportc/teamtrack-backend-go/internal/service/auth"
	dashboardService "github.com/bizsupportc/teamtrack-backend-go/internal/service/dashboard"
	employeeService "github.com/bizsupportc/teamtrack-backend-go/internal/service/employee"
	leaveService "github.com/bizsupportc/teamtrack-backend-go/internal/service/leave"
	podService "github.com/bizsupportc/teamtrack-backend-go/internal/service/pod"
	taskService "github.com/bizsupportc/teamtrack-backend-go/internal/service/task"
	timecardService "github.com/bizsupportc/teamtrack-backend-go/internal/service/timecard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeCardRepo := postgresql.NewTimeCardRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	podRepo := postgresql.NewPodRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(employeeRepo, jwtService, cfg.App.AllowedDomains)
	timeCardSvc := timecardService.NewTimeCardService(timeCardRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo)
	taskSvc := taskService.NewTaskService(taskRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, timeCardRepo, leaveRepo, taskRepo)
	podSvc := podService.NewPodService(podRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, timeCardRepo, taskRepo)

	// Redis backs the auth limiter when reachable; otherwise fall back to
	// the in-process token bucket.
	var authLimiter ratelimit.Limiter = ratelimit.NewTokenBucket(cfg.App.AuthRatePerMin, cfg.App.AuthRatePerMin)
	if cfg.Redis.Addr != "" {
		redisLimiter := ratelimit.NewRedisLimiter(cfg.Redis.Addr, cfg.App.AuthRatePerMin)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if redisLimiter.Healthy(ctx) {
			authLimiter = redisLimiter
		} else {
			slog.Warn("Redis unreachable, using in-process rate limiter", "addr", cfg.Redis.Addr)
		}
		cancel()
	}

	handlers := appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc, jwtService),
		TimeCard:  appHTTP.NewTimeCardHandler(timeCardSvc),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc),
		Task:      appHTTP.NewTaskHandler(taskSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
		Pod:       appHTTP.NewPodHandler(podSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, authLimiter, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
