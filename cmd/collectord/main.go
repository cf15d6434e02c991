// Command collectord serves the grid planner over HTTP.
//
// Usage:
//
//	collectord [-addr :8080]
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/MarioAouad/Robot-Collector/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger := log.New(os.Stderr, "collectord ", log.LstdFlags)
	s := server.New(logger)

	logger.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, s); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
