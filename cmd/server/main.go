package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"hotel-backend/internal/auth"
	"hotel-backend/internal/cache"
	"hotel-backend/internal/config"
	"hotel-backend/internal/database"
	"hotel-backend/internal/db"
	"hotel-backend/internal/handlers"
	"hotel-backend/internal/health"
	h "hotel-backend/internal/http"
	"hotel-backend/internal/middleware"
	"hotel-backend/internal/services"
	"hotel-backend/internal/storage"
	"hotel-backend/internal/store"
	"hotel-backend/internal/store/sheets"

	pgstore "hotel-backend/internal/store/postgres"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	cfg := config.Load()

	// Pick the persistence backend. Both sides satisfy the same store
	// contracts; everything above this point is backend-agnostic.
	var stores store.Stores
	switch cfg.Store.Backend {
	case config.BackendSheets:
		if cfg.Sheets.SpreadsheetID == "" {
			log.Fatal("store.backend is sheets but sheets.spreadsheet_id is not set")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		s, err := sheets.New(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
		cancel()
		if err != nil {
			log.Fatalf("sheets store init failed: %v", err)
		}
		stores = s
		log.Printf("[Store] Using Google Sheets backend (%s)", cfg.Sheets.SpreadsheetID)

	case config.BackendPostgres:
		pool := db.Connect(cfg)
		defer pool.Close()

		migrator := database.NewMigrator(pool)
		if err := migrator.RunMigrations(context.Background()); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		if *migrateOnly {
			log.Println("Migrations complete")
			return
		}
		stores = pgstore.NewStores(pool)
		log.Printf("[Store] Using PostgreSQL backend (%s:%d/%s)", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	default:
		log.Fatalf("unknown store backend %q", cfg.Store.Backend)
	}

	// Optional login cache; the app runs fine without it.
	if err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("[Redis] Unavailable, continuing without login cache: %v", err)
	}

	uploader := storage.NewUploader(context.Background(), cfg)

	jwtManager := auth.NewJWTManager(cfg)

	userService := services.NewUserService(stores.Users, jwtManager)
	clientService := services.NewClientService(stores.Clients)
	hotelService := services.NewHotelService(stores.Hotels)
	reservationService := services.NewReservationService(stores.Reservations, stores.Clients, stores.Hotels, cfg.Pricing.VATRate)
	paymentService := services.NewPaymentService(stores.Payments, stores.Reservations)
	supplyService := services.NewSupplyService(stores.Supplies)
	nusukService := services.NewNusukService(stores.Nusuk, stores.Reservations)

	authHandler := handlers.NewAuthHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	hotelHandler := handlers.NewHotelHandler(hotelService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, clientService, uploader)
	supplyHandler := handlers.NewSupplyHandler(supplyService, uploader)
	nusukHandler := handlers.NewNusukHandler(nusukService)
	healthHandler := handlers.NewHealthHandler(health.NewChecker(cfg.Store.Backend, stores.Pinger))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, stores.Users)

	router := h.NewRouter(
		authHandler,
		clientHandler,
		hotelHandler,
		reservationHandler,
		paymentHandler,
		supplyHandler,
		nusukHandler,
		healthHandler,
		authMiddleware,
	)

	corsHandler := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			corsHandler(router),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
