package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kacip-storefront/app"
	"kacip-storefront/catalog"
	"kacip-storefront/config"
	"kacip-storefront/customers"
	"kacip-storefront/handlers"
	"kacip-storefront/identity"
	"kacip-storefront/locations"
	"kacip-storefront/middleware"
	"kacip-storefront/models"
	"kacip-storefront/orders"
	"kacip-storefront/routes"
	"kacip-storefront/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"
)

const (
	sweepEvery   = time.Minute
	purgeEvery   = time.Hour
	shutdownWait = 10 * time.Second
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	kv, err := buildStorage(ctx, cfg.Storage, db)
	if err != nil {
		log.Fatal("Failed to set up client storage:", err)
	}
	backend, err := buildIdentity(ctx, cfg.Identity, db)
	if err != nil {
		log.Fatal("Failed to set up identity backend:", err)
	}

	menu := catalog.NewStore(catalog.DefaultMenu())
	registry := app.NewRegistry(app.Deps{
		Catalog:     menu,
		Identity:    backend,
		Storage:     kv,
		NoticeTTL:   cfg.NoticeTTL,
		SearchDelay: cfg.SearchDelay,
	})
	defer registry.Close()
	go sweepClients(ctx, registry, cfg.ClientIdleTimeout)

	h := &handlers.Handler{
		Catalog:   menu,
		Stores:    locations.NewDirectory(locations.DefaultStores()),
		Orders:    orders.NewBook(orders.DemoOrders(time.Now())),
		Customers: customers.NewDirectory(customers.DemoCustomers()),
		Identity:  backend,
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"service":  "Kacip Coffee Storefront API",
			"version":  "1.0.0",
			"storage":  cfg.Storage.Backend,
			"identity": cfg.Identity.Backend,
			"clients":  registry.Len(),
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "☕ Welcome to the Kacip Coffee Storefront API",
			"menu":    "/api/menu",
			"docs":    "/api/state-machine",
			"health":  "/health",
		})
	})

	routes.SetupRoutes(r, h, registry)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(r, "kacip-storefront"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}

func buildStorage(ctx context.Context, cfg config.StorageConfig, db *gorm.DB) (storage.KV, error) {
	switch cfg.Backend {
	case config.StorageMemory:
		log.Println("⚠️  Client storage is in memory; carts and sessions are lost on restart")
		return storage.NewMemoryKV(), nil
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis at %s: %w", cfg.RedisAddr, err)
		}
		log.Printf("✅ Redis connected: %s", cfg.RedisAddr)
		return storage.NewRedisKV(client, cfg.RedisPrefix, cfg.RedisTTL), nil
	default:
		return storage.NewSQLiteKV(db)
	}
}

func buildIdentity(ctx context.Context, cfg config.IdentityConfig, db *gorm.DB) (identity.Backend, error) {
	if cfg.Backend == config.IdentityDemo {
		log.Printf("⚠️  Using demo identity backend (%s / %s)", identity.DemoEmail, identity.DemoPassword)
		return identity.NewDemoBackend(cfg.DemoDelay), nil
	}

	local, err := identity.NewLocalBackend(db, identity.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL))
	if err != nil {
		return nil, err
	}
	if cfg.AdminEmail != "" {
		if err := local.EnsureUser(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword, models.RoleAdmin); err != nil {
			return nil, fmt.Errorf("seed admin user: %w", err)
		}
	}
	go purgeRevoked(ctx, local)
	return local, nil
}

func sweepClients(ctx context.Context, registry *app.Registry, maxIdle time.Duration) {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := registry.Sweep(maxIdle); n > 0 {
				log.Printf("Evicted %d idle client(s)", n)
			}
		}
	}
}

func purgeRevoked(ctx context.Context, local *identity.LocalBackend) {
	ticker := time.NewTicker(purgeEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := local.PurgeRevoked(ctx, now); err != nil {
				log.Printf("identity: purge revoked tokens: %v", err)
			}
		}
	}
}
