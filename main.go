package main

import (
	"log"

	"rdrive/config"
	"rdrive/db"
	"rdrive/platform/shutdown"
	"rdrive/web"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

func main() {
	config.Initialize()
	cfg := config.Get()

	if err := web.InitDrive(cfg.RootDir); err != nil {
		logger.LogErr(err, "failed to initialize drive root", "root", cfg.RootDir)
		log.Fatal(err)
	}

	shutdown.RegisterCloser("activity journal", db.Close)
	shutdown.Listen()

	// Create a new rweb server with options
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: true,
	})

	// Add middleware for request logging
	s.Use(rweb.RequestInfo)

	// Setup routes
	web.SetupRoutes(s)

	logger.Info("Starting RDrive server", "address", cfg.Address, "root", cfg.RootDir)
	log.Fatal(s.Run())
}
