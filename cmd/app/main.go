package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"globaledge/cmd"
	httpserver "globaledge/internal/adapters/in/http"
	"globaledge/internal/adapters/out/postgres/shipmentrepo"
	"globaledge/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.JobsEnabled {
		jobManager := app.CreateJobManager()
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start background jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		EmailAutoNotify:  boolEnvVariable("EMAIL_AUTO_NOTIFY"),
		EmailPreviewMode: boolEnvVariable("EMAIL_PREVIEW_MODE"),
		EmailFrom:        goDotEnvVariable("EMAIL_FROM"),
		SMTPHost:         goDotEnvVariable("SMTP_HOST"),
		SMTPPort:         goDotEnvVariable("SMTP_PORT"),
		SMTPUsername:     goDotEnvVariable("SMTP_USERNAME"),
		SMTPPassword:     goDotEnvVariable("SMTP_PASSWORD"),
		JobsEnabled:      boolEnvVariable("JOBS_ENABLED"),
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

func boolEnvVariable(key string) bool {
	value := goDotEnvVariable(key)
	return value == "1" || value == "true"
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &userrepo.UserDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateNotifyRecipientCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetOwnerShipmentsQueryHandler(),
		app.CreateGetPublicTrackingQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
