package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"medbook/config"
	"medbook/database"
	"medbook/database/store"
	"medbook/database/store/mongodb"
	"medbook/database/store/sheets"
	"medbook/handlers"
	"medbook/middleware"
	"medbook/routes"
	"medbook/services/booking"
	"medbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Reservation row store. Sheets is the production backend; mongo offers
	// the same contract for deployments that outgrow the spreadsheet.
	var rowStore store.RowStore
	switch config.AppConfig.StoreBackend {
	case "mongo":
		database.InitDB()
		rowStore = mongodb.New(database.MongoClient, config.AppConfig.DatabaseName)
	case "sheets":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		sheetStore, err := sheets.New(ctx, config.AppConfig.GoogleCredentials, config.AppConfig.SpreadsheetID)
		cancel()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize sheets store: %v", err)
		}
		rowStore = sheetStore
	default:
		logger.Sugar().Fatalf("main: unknown store backend %q", config.AppConfig.StoreBackend)
	}

	utils.InitReceiptCache()
	receiptClient := utils.GetReceiptCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Core services.
	catalog := booking.DefaultCatalog(config.AppConfig.SlotCapacity)
	oracle := &booking.AvailabilityOracle{Store: rowStore, Catalog: catalog}
	admitter := &booking.ReservationAdmitter{Store: rowStore, Oracle: oracle}

	var receipts booking.ReceiptStore
	if receiptClient != nil {
		receipts = booking.NewRedisReceiptStore(receiptClient, booking.ReceiptTTL)
	}

	bookingService := &booking.DefaultBookingService{
		Oracle:   oracle,
		Admitter: admitter,
		Receipts: receipts,
	}
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	routes.RegisterRoutes(router, bookingHandler)
	utils.StartHealthMonitor(rowStore, receiptClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
