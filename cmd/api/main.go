package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/application/service"
	"github.com/appdotbuilder/pos-system-9aa7/internal/config"
	"github.com/appdotbuilder/pos-system-9aa7/internal/infrastructure/database"
	"github.com/appdotbuilder/pos-system-9aa7/internal/infrastructure/repository"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/routes"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	saleService := service.NewSaleService(saleRepo, productRepo)
	reportService := service.NewReportService(reportRepo, saleRepo, productRepo)

	router := routes.Setup(&routes.Dependencies{
		Config:          cfg,
		JWTManager:      jwtManager,
		AuthService:     authService,
		ProductService:  productService,
		SaleService:     saleService,
		ReportService:   reportService,
		IdempotencyRepo: idempotencyRepo,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("%s listening on port %s", cfg.App.Name, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}
