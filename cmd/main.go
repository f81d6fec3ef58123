package main

import (
	"os"

	"github.com/health-pal-uit/health-pal-server-sub001/config"
	"github.com/health-pal-uit/health-pal-server-sub001/controllers"
	"github.com/health-pal-uit/health-pal-server-sub001/logger"
	"github.com/health-pal-uit/health-pal-server-sub001/routes"
	"github.com/health-pal-uit/health-pal-server-sub001/services"
)

func main() {
	logger.Init()
	config.InitDB()

	hub := services.NewRealtimeHub()
	services.InitLedgerEvents(hub)
	controllers.Init(config.DB, hub)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	r := routes.SetupRouter()
	if err := r.Run(addr); err != nil {
		logger.Error("server exited: " + err.Error())
		os.Exit(1)
	}
}
