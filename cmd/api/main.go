package main

import (
	"log"

	"invoice-renamer/internal/shared/config"
	"invoice-renamer/internal/shared/server"
)

func main() {
	cfg := config.Load()
	if cfg.GatePassword == "" {
		log.Fatal("GATE_PASSWORD must be set")
	}

	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting invoice renamer on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
