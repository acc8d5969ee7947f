package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Brkic92/simple-auth-api/internal/auth"
	appdb "github.com/Brkic92/simple-auth-api/internal/db"
	"github.com/Brkic92/simple-auth-api/internal/domain"
	apihttp "github.com/Brkic92/simple-auth-api/internal/http"
)

// insecureDefaultSecret keeps demos runnable without configuration.
// Any deployment keeping it has no security at all.
const insecureDefaultSecret = "default-secret-change-in-production"

type Config struct {
	Port         string
	JWTSecret    string
	TokenTTL     time.Duration
	DSN          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func LoadConfig() Config {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DSN:          os.Getenv("DB_CONN"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "4040"
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		hours, err := strconv.Atoi(ttl)
		if err != nil || hours <= 0 {
			log.Fatalf("invalid JWT_TTL %q: must be a positive number of hours", ttl)
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	return cfg
}

func Run(ctx context.Context, cfg Config) error {
	logger := slog.Default()

	secret := cfg.JWTSecret
	if secret == "" {
		logger.Warn("JWT_SECRET is not set; using the insecure default secret, do not run this in production")
		secret = insecureDefaultSecret
	}

	codec := auth.NewCodec(secret)
	middleware := auth.NewMiddleware(logger, codec)

	var store auth.CredentialStore = auth.AllowAllStore{}
	var health apihttp.HealthChecker
	if cfg.DSN != "" {
		pool, err := appdb.NewPool(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()

		store = appdb.NewUserStore(pool)
		health = pool
	} else {
		logger.Warn("DB_CONN is not set; accepting any credentials that pass validation")
	}

	issuer := auth.NewIssuer(logger, codec, store, cfg.TokenTTL)

	users := domain.NewLoggingUserService(logger, domain.NewMockUserService())
	orders := domain.NewLoggingOrderService(logger, domain.NewMockOrderService())

	api := apihttp.NewAPI(logger, health, middleware, issuer, users, orders)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		fmt.Printf("Serving server on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("ListenAndServe error: %s\n", err)
		}
	}()

	<-ctx.Done()

	fmt.Println("\nShutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
