package main

import (
	"flag"
	"log"
	"net"
	"os"

	"github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/logging"
	"github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/planner"
	latentv1 "github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/rpc/latentv1"

	"google.golang.org/grpc"
)

func main() {
	addr := flag.String("addr", envOrDefault("PLANNER_ADDR", ":9092"), "gRPC listen address")
	flag.Parse()
	logDir := envOrDefault("LOG_DIR", ".log")

	if _, err := logging.Setup("planner", logDir); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", *addr, err)
	}

	server := grpc.NewServer()
	latentv1.RegisterPlannerServer(server, planner.NewServer())

	log.Printf("planner gRPC listening on %s", *addr)
	if err := server.Serve(listener); err != nil {
		log.Fatalf("planner gRPC stopped: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
