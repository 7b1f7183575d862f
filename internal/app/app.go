package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/eventura/booking-api/internal/mailer"
	"github.com/eventura/booking-api/internal/movieglu"
	"github.com/eventura/booking-api/internal/payment"
	"github.com/eventura/booking-api/internal/repository"
	appvalidator "github.com/eventura/booking-api/internal/validator"
	"github.com/eventura/booking-api/internal/vcs"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

var (
	version = vcs.Version()
)

// CatalogClient is the read-only movie/cinema collaborator contract the
// handlers depend on.
type CatalogClient interface {
	FilmsNowShowing(ctx context.Context, limit int) ([]domain.Movie, error)
	CinemasNearby(ctx context.Context, lat, lon float64) ([]domain.Theatre, error)
}

type Application struct {
	config         config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager
	catalog        CatalogClient

	userRepo    domain.UserRepository
	paymentRepo domain.PaymentRepository
	bookingRepo domain.BookingRepository

	paymentProvider domain.PaymentProvider

	catalogItems domain.ConcessionsCatalog
	fees         domain.FeeConfig

	// randSource yields a fresh generator per seat-layout draw; tests swap
	// in a seeded one.
	randSource func() *rand.Rand
}

type config struct {
	port int
	env  string
	db   struct {
		dsn          string
		maxOpenConns int
		maxIdleTime  time.Duration
	}
	redis struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	movieglu struct {
		baseURL    string
		apiKey     string
		client     string
		territory  string
		apiVersion string
		auth       string
	}
	payment struct {
		redirectUrl string
	}
	pricing struct {
		ticketPrice int64
		currency    string
	}
	otelCollectorUrl string
}

func Run() error {
	// a missing .env is fine; flags and real env vars still apply
	_ = godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 4000), "server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.db.dsn, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.db.maxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.redis.url, "redis-url", envString("REDIS_URL", ""), "Redis URL")
	flag.IntVar(&cfg.redis.maxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.redis.maxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.redis.maxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.smtp.host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", envString("SMTP_USERNAME", ""), "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", envString("SMTP_PASSWORD", ""), "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "Eventura <no-reply@eventura.example>", "SMTP sender")

	flag.StringVar(&cfg.movieglu.baseURL, "movieglu-base-url", envString("MOVIEGLU_BASE_URL", "https://api-gate2.movieglu.com"), "MovieGlu base URL")
	flag.StringVar(&cfg.movieglu.apiKey, "movieglu-api-key", envString("MOVIEGLU_API_KEY", ""), "MovieGlu API key")
	flag.StringVar(&cfg.movieglu.client, "movieglu-client", envString("MOVIEGLU_CLIENT", "EVEN_4"), "MovieGlu client id")
	flag.StringVar(&cfg.movieglu.territory, "movieglu-territory", envString("MOVIEGLU_TERRITORY", "IN"), "MovieGlu territory")
	flag.StringVar(&cfg.movieglu.apiVersion, "movieglu-api-version", envString("MOVIEGLU_API_VERSION", "v201"), "MovieGlu API version")
	flag.StringVar(&cfg.movieglu.auth, "movieglu-auth", envString("MOVIEGLU_AUTH", ""), "MovieGlu authorization header")

	flag.StringVar(&cfg.payment.redirectUrl, "payment-redirect-url", "https://example.com/mock-bank", "Netbanking redirect page")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	// Ticket pricing is static per territory, not derived from the catalog.
	if cfg.movieglu.territory == "IN" {
		cfg.pricing.ticketPrice, cfg.pricing.currency = 250, "INR"
	} else {
		cfg.pricing.ticketPrice, cfg.pricing.currency = 10, "USD"
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	db, err := newDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	err = repository.Migrate(cfg.db.dsn)
	if err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	catalogClient := movieglu.NewClient(movieglu.Config{
		BaseURL:    cfg.movieglu.baseURL,
		APIKey:     cfg.movieglu.apiKey,
		Client:     cfg.movieglu.client,
		Territory:  cfg.movieglu.territory,
		APIVersion: cfg.movieglu.apiVersion,
		Auth:       cfg.movieglu.auth,
	})

	app := &Application{
		config:          cfg,
		logger:          logger,
		db:              db,
		redis:           redisClient,
		validator:       validator,
		mailer:          mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender),
		sessionManager:  newSessionManager(redisClient),
		catalog:         catalogClient,
		userRepo:        repository.NewPostgresUserRepository(db),
		paymentRepo:     repository.NewPostgresPaymentRepository(db),
		bookingRepo:     repository.NewPostgresBookingRepository(db),
		paymentProvider: payment.NewSimulatedGateway(cfg.payment.redirectUrl),
		catalogItems:    domain.DefaultConcessionsCatalog(),
		fees:            domain.DefaultFeeConfig(),
		randSource:      newRand,
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

func newSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 30 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func newRedisClient(cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.redis.url,
		MaxIdleConns:    cfg.redis.maxIdleConns,
		MaxActiveConns:  cfg.redis.maxOpenConns,
		ConnMaxIdleTime: cfg.redis.maxIdleTime,
	})

	err := redisotel.InstrumentMetrics(rdb)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func newDatabasePool(cfg config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.db.maxIdleTime
	config.MaxConns = int32(cfg.db.maxOpenConns)

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
