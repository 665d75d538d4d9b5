package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/creativecamper/creativecamper-server/internal/config"
	"github.com/creativecamper/creativecamper-server/internal/database"
	"github.com/creativecamper/creativecamper-server/internal/handler"
	"github.com/creativecamper/creativecamper-server/internal/payment"
	"github.com/creativecamper/creativecamper-server/internal/queue"
	"github.com/creativecamper/creativecamper-server/internal/repository"
	"github.com/creativecamper/creativecamper-server/internal/router"
)

func main() {
	// Load .env for local development; in production the variables come from
	// the process environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	users := repository.NewUserRepo(db)
	classes := repository.NewClassRepo(db)
	selections := repository.NewSelectedClassRepo(db)

	// The review consumer writes instructor notifications. It reconnects on
	// broker failures and never brings the server down.
	go func() {
		if err := queue.StartClassReviewedConsumer(); err != nil {
			log.Printf("review-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echomw.CORS())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg))
	router.RegisterUsers(e, handler.NewUserHandler(users), users, cfg.JWTSecret)
	router.RegisterClasses(e, handler.NewClassHandler(classes), users, cfg.JWTSecret)
	router.RegisterSelections(e, handler.NewSelectedClassHandler(selections), cfg.JWTSecret)
	router.RegisterPayment(e, handler.NewPaymentHandler(payment.NewStripeGateway(cfg.StripeSecretKey)))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
