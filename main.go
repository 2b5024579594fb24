package main

import (
	"flag"
	"log"
	"strings"

	"chauffeur/config"
	"chauffeur/database"
	"chauffeur/middleware"
	"chauffeur/router"
)

// @title Chauffeur Dashboard API
// @version 1.0
// @description Earnings dashboard for chauffeurs: ride registration, Belgian wage calculation, statistics and a cross-driver leaderboard.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("chauffeur dashboard v1.0.0")
		return
	}

	// Embedded defaults plus optional external config overrides.
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Command line port overrides the config.
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port from command line: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("database init: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  chauffeur dashboard started")
	log.Printf("==========================================")
	log.Printf("  Swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:     http://localhost%s/api/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server start: %v", err)
	}
}
