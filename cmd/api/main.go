package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rafaelbdn/autolog/internal/auth"
	authStore "github.com/rafaelbdn/autolog/internal/auth/store"
	"github.com/rafaelbdn/autolog/internal/config"
	"github.com/rafaelbdn/autolog/internal/dashboard"
	"github.com/rafaelbdn/autolog/internal/database"
	"github.com/rafaelbdn/autolog/internal/fueling"
	"github.com/rafaelbdn/autolog/internal/fueling/importcsv"
	fuelingStore "github.com/rafaelbdn/autolog/internal/fueling/store"
	autologHttp "github.com/rafaelbdn/autolog/internal/http"
	authHandler "github.com/rafaelbdn/autolog/internal/http/auth"
	dashboardHandler "github.com/rafaelbdn/autolog/internal/http/dashboard"
	fuelingHandler "github.com/rafaelbdn/autolog/internal/http/fueling"
	importHandler "github.com/rafaelbdn/autolog/internal/http/importcsv"
	maintenanceHandler "github.com/rafaelbdn/autolog/internal/http/maintenance"
	mileageHandler "github.com/rafaelbdn/autolog/internal/http/mileage"
	stationHandler "github.com/rafaelbdn/autolog/internal/http/station"
	tripHandler "github.com/rafaelbdn/autolog/internal/http/trip"
	vehicleHandler "github.com/rafaelbdn/autolog/internal/http/vehicle"
	"github.com/rafaelbdn/autolog/internal/maintenance"
	maintenanceStore "github.com/rafaelbdn/autolog/internal/maintenance/store"
	"github.com/rafaelbdn/autolog/internal/mileage"
	mileageStore "github.com/rafaelbdn/autolog/internal/mileage/store"
	"github.com/rafaelbdn/autolog/internal/station"
	stationStore "github.com/rafaelbdn/autolog/internal/station/store"
	"github.com/rafaelbdn/autolog/internal/vehicle"
	vehicleStore "github.com/rafaelbdn/autolog/internal/vehicle/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		authService        = auth.NewService(authStore.New(db), cfg.Auth.Secret, cfg.Auth.TokenExpiry)
		vehicleService     = vehicle.NewService(vehicleStore.New(db))
		fuelingService     = fueling.NewService(fuelingStore.New(db))
		maintenanceService = maintenance.NewService(maintenanceStore.New(db))
		mileageService     = mileage.NewService(mileageStore.New(db), fuelingService)
		stationService     = station.NewService(stationStore.New(db))
		importService      = importcsv.NewService()
		dashboardService   = dashboard.NewService(fuelingService, maintenanceService, mileageService)
	)

	var (
		authH        = authHandler.NewHandler(authService)
		vehicleH     = vehicleHandler.NewHandler(vehicleService)
		fuelingH     = fuelingHandler.NewHandler(fuelingService, vehicleService)
		maintenanceH = maintenanceHandler.NewHandler(maintenanceService, vehicleService)
		mileageH     = mileageHandler.NewHandler(mileageService, vehicleService)
		tripH        = tripHandler.NewHandler(fuelingService, vehicleService)
		dashboardH   = dashboardHandler.NewHandler(dashboardService, vehicleService)
		stationH     = stationHandler.NewHandler(stationService)
		importH      = importHandler.NewHandler(importService, fuelingService, vehicleService)
	)

	router := autologHttp.New(
		authService, cfg.CORS.AllowedOrigins,
		authH, vehicleH, fuelingH, maintenanceH, mileageH, tripH, dashboardH, stationH, importH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
