package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/casaluna/hotel/api/internal/config"
	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/handler"
	"github.com/casaluna/hotel/api/internal/middleware"
	"github.com/casaluna/hotel/api/internal/repository"
	"github.com/casaluna/hotel/api/internal/service"
	"github.com/casaluna/hotel/api/internal/storage"
	"github.com/casaluna/hotel/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Primary pool. A failed connect is survivable: the REST fallback keeps
	// the API serving reads and inserts, so log and continue with a nil pool.
	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Warn("primary database unavailable, starting in fallback-only mode",
			slog.String("error", err.Error()),
		)
		pool = nil
	}

	rest := database.NewRestClient(cfg.Supabase)

	db, err := database.New(database.Config{
		Pool: pool,
		Rest: rest,
	})
	if err != nil {
		slog.Error("failed to initialize database facade", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("database facade ready",
		slog.Bool("primary", pool != nil),
		slog.String("rest", cfg.Supabase.URL),
	)

	// Initialize JWT service
	jwtService := jwt.NewService(jwt.Config{
		Secret:     []byte(cfg.JWT.Secret),
		Issuer:     cfg.JWT.Issuer,
		Expiration: time.Duration(cfg.JWT.ExpirationMins) * time.Minute,
	})

	// Initialize asset storage client
	assets := storage.NewClient(cfg.Supabase, cfg.Storage)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	externalUserRepo := repository.NewExternalUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	contactRepo := repository.NewContactRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	guestRepo := repository.NewGuestRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, externalUserRepo, jwtService)
	roomService := service.NewRoomService(roomRepo)
	bookingService := service.NewBookingService(bookingRepo, roomRepo)
	menuService := service.NewMenuService(menuRepo, assets)
	galleryService := service.NewGalleryService(galleryRepo, assets)
	contactService := service.NewContactService(contactRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	externalUserService := service.NewExternalUserService(externalUserRepo)
	guestService := service.NewGuestService(guestRepo, roomRepo)

	// Initialize rate limiter for the public endpoints
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	menuHandler := handler.NewMenuHandler(menuService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	contactHandler := handler.NewContactHandler(contactService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	externalUserHandler := handler.NewExternalUserHandler(externalUserService)
	guestHandler := handler.NewGuestHandler(guestService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public, rate-limited)
	rateLimited := middleware.RateLimit(rateLimiter)
	mux.Handle("POST /v1/auth/login", rateLimited(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /v1/auth/external-login", rateLimited(http.HandlerFunc(authHandler.ExternalLogin)))

	// Auth endpoints (protected)
	authMW := middleware.Auth(jwtService)
	admin := func(next http.Handler) http.Handler {
		return authMW(middleware.RequireAdmin(next))
	}
	worker := func(next http.Handler) http.Handler {
		return authMW(middleware.RequireWorker(next))
	}
	mux.Handle("GET /v1/auth/me", authMW(http.HandlerFunc(authHandler.Me)))

	// Room endpoints (public reads, admin mutations)
	mux.HandleFunc("GET /v1/rooms", roomHandler.List)
	mux.HandleFunc("GET /v1/rooms/{id}", roomHandler.Get)
	mux.Handle("POST /v1/rooms", admin(http.HandlerFunc(roomHandler.Create)))
	mux.Handle("PUT /v1/rooms/{id}", admin(http.HandlerFunc(roomHandler.Update)))
	mux.Handle("DELETE /v1/rooms/{id}", admin(http.HandlerFunc(roomHandler.Delete)))

	// Booking endpoints (admin)
	mux.Handle("GET /v1/bookings", admin(http.HandlerFunc(bookingHandler.List)))
	mux.Handle("POST /v1/bookings", admin(http.HandlerFunc(bookingHandler.Create)))
	mux.Handle("GET /v1/bookings/{id}", admin(http.HandlerFunc(bookingHandler.Get)))
	mux.Handle("PUT /v1/bookings/{id}", admin(http.HandlerFunc(bookingHandler.Update)))
	mux.Handle("PATCH /v1/bookings/{id}/status", admin(http.HandlerFunc(bookingHandler.UpdateStatus)))
	mux.Handle("DELETE /v1/bookings/{id}", admin(http.HandlerFunc(bookingHandler.Delete)))
	mux.Handle("GET /v1/bookings/{id}/qr", admin(http.HandlerFunc(bookingHandler.QR)))

	// Menu endpoints (public reads, admin mutations)
	mux.HandleFunc("GET /v1/menu/items", menuHandler.ListItems)
	mux.HandleFunc("GET /v1/menu/items/{id}", menuHandler.GetItem)
	mux.Handle("POST /v1/menu/items", admin(http.HandlerFunc(menuHandler.CreateItem)))
	mux.Handle("PUT /v1/menu/items/{id}", admin(http.HandlerFunc(menuHandler.UpdateItem)))
	mux.Handle("DELETE /v1/menu/items/{id}", admin(http.HandlerFunc(menuHandler.DeleteItem)))
	mux.HandleFunc("GET /v1/menu/images", menuHandler.ListImages)
	mux.Handle("POST /v1/menu/images", admin(http.HandlerFunc(menuHandler.CreateImage)))
	mux.Handle("DELETE /v1/menu/images/{id}", admin(http.HandlerFunc(menuHandler.DeleteImage)))

	// Gallery endpoints (public reads, admin mutations)
	mux.HandleFunc("GET /v1/gallery", galleryHandler.List)
	mux.HandleFunc("GET /v1/gallery/{id}", galleryHandler.Get)
	mux.Handle("POST /v1/gallery", admin(http.HandlerFunc(galleryHandler.Create)))
	mux.Handle("DELETE /v1/gallery/{id}", admin(http.HandlerFunc(galleryHandler.Delete)))

	// Contact endpoints (public create, admin reads)
	mux.Handle("POST /v1/contact", rateLimited(http.HandlerFunc(contactHandler.Create)))
	mux.Handle("GET /v1/contact", admin(http.HandlerFunc(contactHandler.List)))
	mux.Handle("GET /v1/contact/{id}", admin(http.HandlerFunc(contactHandler.Get)))
	mux.Handle("DELETE /v1/contact/{id}", admin(http.HandlerFunc(contactHandler.Delete)))

	// Notification bar endpoints (public active list, admin CRUD)
	mux.HandleFunc("GET /v1/notification-bars/active", notificationHandler.ListActive)
	mux.Handle("GET /v1/notification-bars", admin(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("POST /v1/notification-bars", admin(http.HandlerFunc(notificationHandler.Create)))
	mux.Handle("PUT /v1/notification-bars/{id}", admin(http.HandlerFunc(notificationHandler.Update)))
	mux.Handle("DELETE /v1/notification-bars/{id}", admin(http.HandlerFunc(notificationHandler.Delete)))

	// External user management endpoints (admin)
	mux.Handle("GET /v1/external-users", admin(http.HandlerFunc(externalUserHandler.List)))
	mux.Handle("POST /v1/external-users", admin(http.HandlerFunc(externalUserHandler.Create)))
	mux.Handle("GET /v1/external-users/{id}", admin(http.HandlerFunc(externalUserHandler.Get)))
	mux.Handle("PATCH /v1/external-users/{id}/active", admin(http.HandlerFunc(externalUserHandler.SetActive)))
	mux.Handle("DELETE /v1/external-users/{id}", admin(http.HandlerFunc(externalUserHandler.Delete)))

	// Guest registration endpoints (worker portal and admin)
	mux.Handle("GET /v1/guests", worker(http.HandlerFunc(guestHandler.List)))
	mux.Handle("POST /v1/guests", worker(http.HandlerFunc(guestHandler.Create)))
	mux.Handle("GET /v1/guests/{id}", worker(http.HandlerFunc(guestHandler.Get)))
	mux.Handle("PUT /v1/guests/{id}", worker(http.HandlerFunc(guestHandler.Update)))
	mux.Handle("DELETE /v1/guests/{id}", worker(http.HandlerFunc(guestHandler.Delete)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
