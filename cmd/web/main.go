package main

import (
	"log"
	"net/http"

	"github.com/minaorangina/klondike/server"
	"github.com/minaorangina/klondike/store"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg)
	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, s))
}
