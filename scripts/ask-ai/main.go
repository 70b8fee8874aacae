// Sends a prompt to the AI service and streams the reply. With -triage, the
// newest entries of the local alert log are attached to the prompt, so an
// analyst can ask for an assessment of what the engine just flagged.
package main

import (
	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/model"
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	address := flag.String("addr", "localhost:50052", "The AI service address")
	prompt := flag.String("prompt", "", "The prompt to send to the AI model")
	triage := flag.Bool("triage", false, "Attach the newest alerts from the alert log to the prompt")
	logFile := flag.String("log", "security_alerts.json", "Alert log to read in triage mode")
	last := flag.Int("last", 20, "How many of the newest alerts to attach in triage mode")
	flag.Parse()

	// A free-form prompt may also be given as non-flag arguments.
	if *prompt == "" && flag.NArg() > 0 {
		*prompt = strings.Join(flag.Args(), " ")
	}

	if *triage {
		alerts, err := tailAlerts(*logFile, *last)
		if err != nil {
			log.Fatalf("Failed to read alert log: %v", err)
		}
		if len(alerts) == 0 {
			log.Fatalf("No alerts in %s, nothing to triage.", *logFile)
		}
		*prompt = triagePrompt(*prompt, alerts)
	}
	if *prompt == "" {
		log.Fatalf("Error: a prompt is required. Use -prompt, positional arguments, or -triage.")
	}

	// Connect to the gRPC server
	conn, err := grpc.NewClient(*address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Did not connect: %v", err)
	}
	defer conn.Close()
	client := v1.NewAIServiceClient(conn)

	log.Println("Sending prompt to AI... (waiting for stream)")
	stream, err := client.AnalyzePromptStream(context.Background(), &v1.AnalyzePromptRequest{Prompt: *prompt})
	if err != nil {
		log.Fatalf("Error calling AnalyzePromptStream: %v", err)
	}

	// Print chunks as they arrive until the stream ends.
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			fmt.Println()
			break
		}
		if err != nil {
			log.Fatalf("Error receiving stream: %v", err)
		}
		fmt.Print(resp.GetChunk())
	}
}

// tailAlerts returns the last n records of the JSON-lines alert log.
func tailAlerts(path string, n int) ([]*model.ThreatRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var alerts []*model.ThreatRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record model.ThreatRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			log.Printf("Skipping malformed alert line: %v", err)
			continue
		}
		alerts = append(alerts, &record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(alerts) > n {
		alerts = alerts[len(alerts)-n:]
	}
	return alerts, nil
}

// triagePrompt renders the alerts into the text block sent to the model.
func triagePrompt(question string, alerts []*model.ThreatRecord) string {
	if question == "" {
		question = "Assess these intrusion alerts. Which sources look like real attacks, and what should be handled first?"
	}

	var b strings.Builder
	b.WriteString(question)
	b.WriteString("\n\nAlerts, oldest first:\n")
	for _, a := range alerts {
		fmt.Fprintf(&b, "%s %s -> %s %s (%s/%s, confidence %.2f)\n",
			a.Timestamp.Format("2006-01-02 15:04:05"), a.SrcAddr, a.DstAddr,
			a.Label, a.Protocol, a.Service, a.Confidence)
	}
	return b.String()
}
