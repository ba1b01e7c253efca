package main

import (
	"vietsong-backend/internal/app"
	"vietsong-backend/internal/config"
)

func main() {
	cfg := config.Load()
	app := app.New(cfg)
	app.Run()
}
