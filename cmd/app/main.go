package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"gridstore/cmd"
	httpin "gridstore/internal/adapters/in/http"
	"gridstore/internal/adapters/out/postgres/cellrepo"
	"gridstore/internal/adapters/out/postgres/gridrepo"
	"gridstore/internal/adapters/out/postgres/historyrepo"
	"gridstore/internal/adapters/out/postgres/productrepo"
	"gridstore/internal/adapters/out/postgres/trackingrepo"
	"gridstore/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateGetSummaryQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustConnectDB opens the database through the lib/pq driver so
// unique-violation errors surface as pq errors in the repositories.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&gridrepo.GridDTO{},
		&cellrepo.CellDTO{},
		&productrepo.ProductDTO{},
		&trackingrepo.TrackerDTO{},
		&historyrepo.HistoryRecordDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateGridCommandHandler(),
		app.CreateResizeGridCommandHandler(),
		app.CreateAssignProductCommandHandler(),
		app.CreateSetCellStatusCommandHandler(),
		app.CreateUpdateCellNoteCommandHandler(),
		app.CreateClearCellCommandHandler(),
		app.CreateGetGridsQueryHandler(),
		app.CreateGetGridCellsQueryHandler(),
		app.CreateGetCellQueryHandler(),
		app.CreateGetCellsByStatusQueryHandler(),
		app.CreateGetReadyCellsQueryHandler(),
		app.CreateGetCellHistoryQueryHandler(),
		app.CreateGetOrderByKeyQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetSummaryQueryHandler(),
		app.CreateCheckProductCodeQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
