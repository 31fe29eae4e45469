package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/hms-api/internal/config"
	"github.com/medicore/hms-api/internal/handler/appointment"
	authHandler "github.com/medicore/hms-api/internal/handler/auth"
	"github.com/medicore/hms-api/internal/handler/billing"
	"github.com/medicore/hms-api/internal/handler/doctor"
	"github.com/medicore/hms-api/internal/handler/patient"
	"github.com/medicore/hms-api/internal/invoice"
	"github.com/medicore/hms-api/internal/middleware"
	"github.com/medicore/hms-api/internal/repository/sqlite"
	"github.com/medicore/hms-api/internal/router"
	appointmentService "github.com/medicore/hms-api/internal/service/appointment"
	authService "github.com/medicore/hms-api/internal/service/auth"
	billingService "github.com/medicore/hms-api/internal/service/billing"
	doctorService "github.com/medicore/hms-api/internal/service/doctor"
	patientService "github.com/medicore/hms-api/internal/service/patient"
	"github.com/medicore/hms-api/pkg/auth"
	"github.com/medicore/hms-api/pkg/logger"
	"github.com/medicore/hms-api/pkg/security"
	"github.com/medicore/hms-api/pkg/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	db, err := sqlite.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	// Repositories
	userRepo := sqlite.NewUserRepository(db)
	patientRepo := sqlite.NewPatientRepository(db)
	doctorRepo := sqlite.NewDoctorRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)
	billRepo := sqlite.NewBillRepository(db)

	// Shared plumbing
	v := validator.New()
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	renderer := invoice.NewPDFRenderer(cfg.Invoice.OutputDir, cfg.Invoice.LogoPath)

	// Services
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)
	patientSvc := patientService.NewService(patientRepo, v)
	doctorSvc := doctorService.NewService(doctorRepo, v)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, doctorRepo, v)
	billingSvc := billingService.NewService(billRepo, patientRepo, renderer, v, cfg.Invoice.Currency, appLogger)

	// Handlers
	authH := authHandler.NewHandler(authSvc)
	patientH := patient.NewHandler(patientSvc)
	doctorH := doctor.NewHandler(doctorSvc)
	appointmentH := appointment.NewHandler(appointmentSvc)
	billingH := billing.NewHandler(billingSvc)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	r := router.NewRouter(authMiddleware, authH, db,
		patientH, doctorH, appointmentH, billingH)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
