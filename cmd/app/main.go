package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"frameshop/cmd"
	httpin "frameshop/internal/adapters/in/http"
	"frameshop/internal/adapters/out/postgres/customerrepo"
	"frameshop/internal/adapters/out/postgres/materialauditrepo"
	"frameshop/internal/adapters/out/postgres/orderrepo"
	"frameshop/internal/jobs"

	"github.com/labstack/echo/v4"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	root.Notifier().Start()
	defer root.Notifier().Stop()

	jobManager := jobs.NewJobManager(root.CreateSweepUnclaimedOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		OverrideCode:         goDotEnvVariable("OVERRIDE_CODE"),
		DuplicateWindow:      time.Duration(envInt("DUPLICATE_WINDOW_HOURS", 24)) * time.Hour,
		MaxDailyVendorOrders: envInt("MAX_DAILY_VENDOR_ORDERS", 5),
		UnclaimedAfter:       time.Duration(envInt("UNCLAIMED_AFTER_DAYS", 30)) * 24 * time.Hour,
		NotifyQueueCapacity:  envInt("NOTIFY_QUEUE_CAPACITY", 0),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envInt(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("invalid integer value for %s: %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
		&customerrepo.CustomerDTO{},
		&materialauditrepo.MaterialOrderAuditDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.CreateCreateCustomerCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateOrderMaterialsCommandHandler(),
		root.CreateGetOrderHistoryQueryHandler(),
		root.CreateGetOrdersByStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
