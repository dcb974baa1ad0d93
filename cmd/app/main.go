package main

import (
	"fmt"
	"os"

	"mercurydash/cmd"
	inhttp "mercurydash/internal/adapters/in/http"
	"mercurydash/internal/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

	db, err := gorm.Open(gorm_postgres.Open(makeDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Error composing application: %v", err)
	}

	jobManager := app.CreateJobManager(logger.L())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:      goDotEnvVariable("JWT_SECRET"),
		TokenTTL:       goDotEnvVariable("TOKEN_TTL"),
		ReportSchedule: goDotEnvVariable("REPORT_SCHEDULE"),
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

func makeDSN(config cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(logger.RequestIDMiddleware())
	e.Use(logger.LoggingMiddleware())

	server := inhttp.NewServer(inhttp.Handlers{
		PlaceOrder:        app.CreatePlaceOrderCommandHandler(),
		RequestTransition: app.CreateRequestTransitionCommandHandler(),
		RegisterUser:      app.CreateRegisterUserCommandHandler(),
		CreateRestaurant:  app.CreateCreateRestaurantCommandHandler(),
		AddMenuItem:       app.CreateAddMenuItemCommandHandler(),
		UpdateMenuItem:    app.CreateUpdateMenuItemCommandHandler(),
		RemoveMenuItem:    app.CreateRemoveMenuItemCommandHandler(),
		GetVisibleOrders:  app.CreateGetVisibleOrdersQueryHandler(),
		GetRestaurants:    app.CreateGetRestaurantsQueryHandler(),
		GetMenuItems:      app.CreateGetMenuItemsQueryHandler(),
	})

	auth := inhttp.AuthMiddleware(app.TokenService())
	transitionLimit := inhttp.RateLimitMiddleware(rate.Limit(5), 10)
	server.RegisterRoutes(e, auth, transitionLimit)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
