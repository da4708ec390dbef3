package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"dinein/cmd"
	httpin "dinein/internal/adapters/in/http"
	"dinein/internal/adapters/out/postgres/menurepo"
	"dinein/internal/adapters/out/postgres/orderrepo"
	"dinein/internal/adapters/out/postgres/tablerepo"
	"dinein/internal/adapters/out/rabbitmq"
	"dinein/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/rabbitmq/amqp091-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	notifier, closeBroker := mustConnectBroker(configs)
	defer closeBroker()

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := jobs.NewJobManager(app.CreateReleaseTablesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL:          goDotEnvVariable("RABBITMQ_URL"),
		TableClearedExchange: goDotEnvVariable("TABLE_CLEARED_EXCHANGE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&tablerepo.TableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&menurepo.MenuDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func mustConnectBroker(configs cmd.Config) (*rabbitmq.CompletionNotifier, func()) {
	conn, err := amqp091.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error opening RabbitMQ channel: %v", err)
	}

	notifier, err := rabbitmq.NewCompletionNotifier(channel, configs.TableClearedExchange)
	if err != nil {
		log.Fatalf("Error declaring RabbitMQ exchange: %v", err)
	}

	closeBroker := func() {
		_ = channel.Close()
		_ = conn.Close()
	}
	return notifier, closeBroker
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateTableCommandHandler(),
		app.CreateOccupyTableCommandHandler(),
		app.CreateChangeNumberOfGuestsCommandHandler(),
		app.CreateClearTableCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateServeOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllTablesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
