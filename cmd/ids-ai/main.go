package main

import (
	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/ai"
	"NetSentry/internal/config"
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
)

// server routes each RPC to the matching analyzer.
type server struct {
	v1.UnimplementedAIServiceServer
	threatAnalyzer *ai.ThreatAnalyzer
	promptAnalyzer *ai.PromptAnalyzer
}

// AnalyzeThreats routes an alert digest to the ThreatAnalyzer.
func (s *server) AnalyzeThreats(ctx context.Context, req *v1.AnalyzeThreatsRequest) (*v1.AnalyzeThreatsResponse, error) {
	log.Printf("Received AnalyzeThreats request, routing to ThreatAnalyzer...")
	output, err := s.threatAnalyzer.AnalyzeThreats(ctx, req.GetTextInput())
	if err != nil {
		return nil, fmt.Errorf("failed to analyze threats: %w", err)
	}
	return &v1.AnalyzeThreatsResponse{TextOutput: output}, nil
}

// AnalyzePromptStream implements the streaming RPC.
func (s *server) AnalyzePromptStream(req *v1.AnalyzePromptRequest, stream v1.AIService_AnalyzePromptStreamServer) error {
	log.Printf("Received streaming request for prompt: %s", req.GetPrompt())

	// Define a callback function to send AI-generated chunks to the gRPC stream
	sendChunk := func(chunk string) error {
		return stream.Send(&v1.AnalyzePromptResponse{Chunk: chunk})
	}

	return s.promptAnalyzer.AnalyzeStream(stream.Context(), req.GetPrompt(), sendChunk)
}

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create instances for both analyzers
	threatAnalyzer, err := ai.NewThreatAnalyzer(&cfg.AI)
	if err != nil {
		log.Fatalf("Failed to create ThreatAnalyzer: %v", err)
	}
	promptAnalyzer, err := ai.NewPromptAnalyzer(&cfg.AI)
	if err != nil {
		log.Fatalf("Failed to create PromptAnalyzer: %v", err)
	}

	lis, err := net.Listen("tcp", cfg.AI.GRPCListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	s := grpc.NewServer()
	// Register the service with both analyzers
	v1.RegisterAIServiceServer(s, &server{
		threatAnalyzer: threatAnalyzer,
		promptAnalyzer: promptAnalyzer,
	})

	go func() {
		log.Printf("AI-gRPC API server starting on %s", cfg.AI.GRPCListenAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Servers shutting down...")

	s.GracefulStop()
}
