package main

import (
	"context"
	"log"
	"os"

	"contacthub-api/internal"
)

func main() {
	ctx := context.Background()

	app, err := internal.NewApp(ctx)
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	app.InitControllers()

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("contacthub stopped with error: %v", err)
		os.Exit(1)
	}
}
