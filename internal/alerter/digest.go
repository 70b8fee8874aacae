package alerter

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/config"
	"NetSentry/internal/model"

	"github.com/gomarkdown/markdown"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Digester consolidates alerts into periodic digests, optionally enriched by
// the AI service, and fans them out to the notifiers. It consumes alerts as
// a pipeline sink, so it sees exactly the records the pipeline accepted.
type Digester struct {
	mu      sync.Mutex
	pending []*model.ThreatRecord

	notifiers []model.Notifier
	interval  time.Duration

	aiEnabled bool
	aiClient  v1.AIServiceClient
	aiConn    *grpc.ClientConn

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewDigester creates a Digester sending to the given notifiers. When AI
// analysis is enabled in the config, it connects to the AI service once and
// reuses the link for every digest.
func NewDigester(cfg config.AlerterConfig, notifiers []model.Notifier) (*Digester, error) {
	interval, err := time.ParseDuration(cfg.CheckInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to parse check_interval: %w", err)
	}

	d := &Digester{
		notifiers: notifiers,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}

	if cfg.AIAnalysis.Enabled {
		log.Printf("AI analysis is enabled, connecting to AI service at %s", cfg.AIAnalysis.ServiceAddr)
		conn, err := grpc.NewClient(cfg.AIAnalysis.ServiceAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to AI service: %w", err)
		}
		d.aiConn = conn
		d.aiClient = v1.NewAIServiceClient(conn)
		d.aiEnabled = true
	}

	return d, nil
}

// Name identifies this sink in logs.
func (d *Digester) Name() string {
	return "digest"
}

// Write buffers alerts for the next digest cycle.
func (d *Digester) Write(ctx context.Context, alerts []*model.ThreatRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, alerts...)
	return nil
}

// Start begins the periodic digest loop.
func (d *Digester) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				d.digest()
			case <-d.stopChan:
				return
			}
		}
	}()
	log.Printf("Alert digester started with a check interval of %s", d.interval)
}

// Stop halts the loop, runs one final digest, and closes the AI link.
func (d *Digester) Stop() {
	close(d.stopChan)
	d.wg.Wait()
	d.digest()
	if d.aiConn != nil {
		d.aiConn.Close()
	}
	log.Println("Alert digester stopped.")
}

func (d *Digester) take() []*model.ThreatRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	pending := d.pending
	d.pending = nil
	return pending
}

func (d *Digester) digest() {
	alerts := d.take()
	if len(alerts) == 0 {
		return // No alerts this cycle, do nothing.
	}

	summary := summarize(alerts)
	log.Printf("Alert digest: %d threat(s) consolidated.", len(alerts))

	body := "<h1>NetSentry Alert Summary</h1>" +
		"<p>The following threats were detected during the last check:</p>" +
		"<hr><pre>" + summary + "</pre>"

	// Get AI analysis for the summary if enabled
	aiAnalysis, err := d.getAIAnalysis(summary)
	if err != nil {
		log.Printf("Failed to get AI analysis: %v", err)
	} else if aiAnalysis != "" {
		// Convert AI's markdown response to HTML
		md := []byte(aiAnalysis)
		html := markdown.ToHTML(md, nil, nil)
		body += "<hr><h2>AI-Powered Analysis</h2>" + string(html)
	}

	subject := fmt.Sprintf("NetSentry Alert Summary (%d Detected)", len(alerts))
	for _, notifier := range d.notifiers {
		if err := notifier.Send(subject, body); err != nil {
			log.Printf("ERROR: Failed to send consolidated alert notification: %v", err)
		} else {
			log.Printf("INFO: Consolidated alert notification sent successfully.")
		}
	}
}

// getAIAnalysis calls the AI service to get an analysis of the alert summary.
func (d *Digester) getAIAnalysis(alertContent string) (string, error) {
	if !d.aiEnabled || d.aiClient == nil {
		return "", nil // AI analysis is not enabled, do nothing.
	}

	log.Println("Requesting AI analysis for alert summary...")
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resp, err := d.aiClient.AnalyzeThreats(ctx, &v1.AnalyzeThreatsRequest{TextInput: alertContent})
	if err != nil {
		return "", fmt.Errorf("AI service call failed: %w", err)
	}

	return resp.GetTextOutput(), nil
}

func summarize(alerts []*model.ThreatRecord) string {
	byLabel := make(map[string]int)
	bySource := make(map[string]int)
	for _, a := range alerts {
		byLabel[a.Label]++
		bySource[a.SrcAddr]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d threat(s) detected in the last interval.\n\nBy attack type:\n", len(alerts))
	for _, label := range sortedKeys(byLabel) {
		fmt.Fprintf(&b, "- %s: %d\n", label, byLabel[label])
	}
	b.WriteString("\nBy source:\n")
	for _, src := range sortedKeys(bySource) {
		fmt.Fprintf(&b, "- %s: %d alert(s)\n", src, bySource[src])
	}
	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
