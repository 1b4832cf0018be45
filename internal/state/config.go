package state

import (
	"log"
	"os"
	"time"
)

const (
	DeviceScale            = 2.0
	CanvasHeight           = 739.0
	WidthMargin            = 18.0
	MinimumRadiusThreshold = 50.0

	DismissEnv = "CIRCLEBOARD_DISMISS"
)

type Config struct {
	CanvasHeight float64
	WidthMargin  float64
	MinRadius    float64 // in backing units; a drag must exceed it

	// NotifyDismiss hides the Hit/Miss notification after the given delay.
	// Zero never schedules the timer.
	NotifyDismiss time.Duration

	ResetClearsShapes bool
	RedrawOnResize    bool
}

func DefaultConfig() Config {
	return Config{
		CanvasHeight: CanvasHeight,
		WidthMargin:  WidthMargin,
		MinRadius:    MinimumRadiusThreshold,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies environment overrides.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv(DismissEnv); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("[CONFIG] Ignoring %s=%q: %v", DismissEnv, v, err)
		} else {
			cfg.NotifyDismiss = d
		}
	}
	return cfg
}
