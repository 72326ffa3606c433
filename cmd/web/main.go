package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"luxestay/internal/config"
	"luxestay/internal/hotelapi"
	"luxestay/internal/middleware"
	"luxestay/internal/modules/booking"
	"luxestay/internal/modules/confirmation"
	"luxestay/internal/modules/pages"
	"luxestay/internal/modules/payment"
	"luxestay/internal/modules/search"
	"luxestay/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	api := hotelapi.New(cfg.HotelAPIURL, logger)
	flows := session.NewStore()

	searchHandler := search.NewHandler(search.NewService(api), flows)
	bookingHandler := booking.NewHandler(booking.NewService(api), flows)
	paymentHandler := payment.NewHandler(payment.NewService(api, cfg.CheckoutMode), flows)
	confirmationHandler := confirmation.NewHandler(
		confirmation.NewService(api, cfg.ConfirmAttempts, cfg.ConfirmDelay, logger),
		flows,
	)
	pagesHandler := pages.NewHandler()

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.CORS(), middleware.Session())

	v1 := r.Group("/api/v1")
	{
		pagesHandler.RegisterRoutes(v1)
		searchHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		paymentHandler.RegisterRoutes(v1)
		confirmationHandler.RegisterRoutes(v1)
	}

	logger.Info("web gateway listening", "addr", cfg.Addr, "checkout_mode", string(cfg.CheckoutMode))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
