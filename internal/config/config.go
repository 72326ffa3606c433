package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// CheckoutMode selects how the payment step hands a booking off. A
// deployment runs exactly one mode.
type CheckoutMode string

const (
	// CheckoutDirect posts the booking straight to the hotel API.
	CheckoutDirect CheckoutMode = "direct"
	// CheckoutStripe creates an external checkout session instead; the
	// booking is created upstream once payment completes.
	CheckoutStripe CheckoutMode = "stripe"
)

type Config struct {
	Addr         string
	GinMode      string
	HotelAPIURL  string
	CheckoutMode CheckoutMode

	// Confirm-by-session retry knobs. Fixed delay, no jitter.
	ConfirmAttempts int
	ConfirmDelay    time.Duration
}

func Load() Config {
	cfg := Config{
		Addr:            envOrDefault("APP_ADDR", ":8080"),
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		HotelAPIURL:     envOrDefault("HOTEL_API_URL", "http://localhost:9090"),
		CheckoutMode:    CheckoutDirect,
		ConfirmAttempts: 5,
		ConfirmDelay:    time.Second,
	}

	if mode := strings.ToLower(strings.TrimSpace(os.Getenv("CHECKOUT_MODE"))); mode == string(CheckoutStripe) {
		cfg.CheckoutMode = CheckoutStripe
	}
	if n, err := strconv.Atoi(os.Getenv("CONFIRM_ATTEMPTS")); err == nil && n > 0 {
		cfg.ConfirmAttempts = n
	}
	if d, err := time.ParseDuration(os.Getenv("CONFIRM_DELAY")); err == nil && d > 0 {
		cfg.ConfirmDelay = d
	}
	return cfg
}

func envOrDefault(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}
