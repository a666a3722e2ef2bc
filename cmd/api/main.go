package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/fkhayef/haulledger/docs"
	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/company"
	"github.com/fkhayef/haulledger/internal/config"
	"github.com/fkhayef/haulledger/internal/database"
	"github.com/fkhayef/haulledger/internal/driver"
	"github.com/fkhayef/haulledger/internal/expense"
	"github.com/fkhayef/haulledger/internal/ifta"
	"github.com/fkhayef/haulledger/internal/load"
	"github.com/fkhayef/haulledger/internal/logger"
	"github.com/fkhayef/haulledger/internal/settlement"
	"github.com/fkhayef/haulledger/internal/user"
	mw "github.com/fkhayef/haulledger/pkg/middleware"
)

//go:generate swag init -g main.go -d ./,../../internal,../../pkg -o ../../docs

// @title        Haulledger API
// @version      1.0
// @description  Driver settlements, IFTA fuel tax apportionment and the records behind them.
// @host         localhost:8080
// @BasePath     /api/v1
func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg := config.Load()

	if err := logger.Init(cfg.Stage, cfg.LogLevel); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Log.Info("No .env file found, using environment variables")
	}

	db, err := database.NewPostgresConnection(cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Log.Info("Connected to database successfully")

	milesRate, err := decimal.NewFromString(cfg.CompanyDriverMileRate)
	if err != nil || !milesRate.IsPositive() {
		logger.Log.Warn("Invalid company driver mile rate, using default",
			zap.String("value", cfg.CompanyDriverMileRate))
		milesRate = decimal.Zero
	}

	// Audit trail, shared by every feature that writes
	auditRepo := audit.NewRepository(db)
	auditService := audit.NewService(auditRepo, logger.Log)
	auditHandler := audit.NewHandler(auditService)

	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo, auditService)
	userHandler := user.NewHandler(userService)

	companyRepo := company.NewRepository(db)
	companyService := company.NewService(companyRepo, auditService)
	companyHandler := company.NewHandler(companyService)

	driverRepo := driver.NewRepository(db)
	driverService := driver.NewService(driverRepo, auditService)
	driverHandler := driver.NewHandler(driverService)

	loadRepo := load.NewRepository(db)
	loadService := load.NewService(db, loadRepo, driverRepo, auditService)
	loadHandler := load.NewHandler(loadService)

	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, driverRepo, auditService)
	expenseHandler := expense.NewHandler(expenseService)

	// The IFTA store doubles as the rate table
	iftaStore := ifta.NewSQLStore(db)
	iftaService := ifta.NewService(iftaStore, iftaStore, driverRepo, auditService)
	iftaHandler := ifta.NewHandler(iftaService)

	settlementService := settlement.NewService(settlement.NewSQLStore(db), settlement.Options{
		MilesRate:          milesRate,
		RequireInvoicePaid: cfg.SettlementRequireInvoicePaid,
	}, logger.Log)
	settlementHandler := settlement.NewHandler(settlementService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(logger.Log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", mw.ActorHeader},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(mw.Actor)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
		r.Mount("/company", companyHandler.Routes())
		r.Mount("/drivers", driverHandler.Routes())
		r.Mount("/loads", loadHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/ifta", iftaHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/audit", auditHandler.Routes())
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logger.Log.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
