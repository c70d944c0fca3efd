// Command server runs the TeamPulse HTTP API.
package main

import (
	"context"
	"log"

	"github.com/teampulse/teampulse-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
