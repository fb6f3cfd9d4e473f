package main

import (
	"context"
	"log"

	"github.com/dmarques2003/gradekeeper/internal/app"
	"github.com/dmarques2003/gradekeeper/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	a.Run(ctx)
}
