// Queries stored alerts either through the HTTP API or directly against
// ClickHouse. Handy for checking what the engine has persisted.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"NetSentry/internal/config"
	"NetSentry/internal/model"
	"NetSentry/internal/query"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file (direct mode).")
	mode := flag.String("mode", "api", "Query mode: 'api' to query via HTTP API, 'direct' to query ClickHouse directly.")
	what := flag.String("what", "recent", "What to query: 'recent', 'summary', or 'source'.")
	source := flag.String("source", "", "Source address to filter on (required for 'source').")
	limit := flag.Int("limit", 20, "Maximum number of alerts to return.")
	since := flag.String("since", "", "Only count alerts at or after this RFC3339 time (summary only).")
	apiBase := flag.String("api", "http://localhost:8080", "Base URL of the API server (api mode).")
	flag.Parse()

	if *what == "source" && *source == "" {
		log.Fatalf("The 'source' query needs a -source address.")
	}

	log.Printf("Running in '%s' mode.", *mode)

	switch *mode {
	case "api":
		queryViaAPI(*apiBase, *what, *source, *limit, *since)
	case "direct":
		queryClickHouseDirect(*configFile, *what, *source, *limit, *since)
	default:
		log.Fatalf("Invalid mode: %s. Use 'api' or 'direct'.", *mode)
	}
}

// --- API Query Logic ---
func queryViaAPI(base, what, source string, limit int, since string) {
	var endpoint string
	params := url.Values{}
	switch what {
	case "recent":
		endpoint = base + "/api/v1/alerts/recent"
		params.Set("limit", fmt.Sprint(limit))
	case "summary":
		endpoint = base + "/api/v1/alerts/summary"
		if since != "" {
			params.Set("since", since)
		}
	case "source":
		endpoint = base + "/api/v1/alerts/source/" + url.PathEscape(source)
		params.Set("limit", fmt.Sprint(limit))
	default:
		log.Fatalf("Invalid query: %s. Use 'recent', 'summary', or 'source'.", what)
	}
	apiURL := endpoint + "?" + params.Encode()

	log.Printf("Sending request to %s", apiURL)

	resp, err := http.Get(apiURL)
	if err != nil {
		log.Fatalf("Error sending request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("API returned non-200 status code: %d\nResponse: %s", resp.StatusCode, string(respBody))
	}

	var prettyJSON bytes.Buffer
	err = json.Indent(&prettyJSON, respBody, "", "  ")
	if err != nil {
		log.Printf("Could not prettify JSON, printing raw response:")
		fmt.Println(string(respBody))
		return
	}

	log.Println("---")
	fmt.Println(prettyJSON.String())
}

// --- Direct ClickHouse Query Logic ---
func queryClickHouseDirect(configFile, what, source string, limit int, since string) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	querier, err := query.NewClickHouseQuerier(cfg.ClickHouse)
	if err != nil {
		log.Fatalf("Error connecting to ClickHouse: %v", err)
	}
	defer querier.Close()

	log.Println("Successfully connected to ClickHouse.")

	ctx := context.Background()
	switch what {
	case "recent":
		alerts, err := querier.RecentAlerts(ctx, limit)
		if err != nil {
			log.Fatalf("Error executing query: %v", err)
		}
		printAlerts(alerts)
	case "summary":
		var sinceTime time.Time
		if since != "" {
			sinceTime, err = time.Parse(time.RFC3339, since)
			if err != nil {
				log.Fatalf("Invalid 'since' time format: %v", err)
			}
		}
		counts, err := querier.CountsByType(ctx, sinceTime)
		if err != nil {
			log.Fatalf("Error executing query: %v", err)
		}
		if len(counts) == 0 {
			log.Println("No data found for the specified criteria.")
			return
		}
		log.Println("--- Alert Summary (Direct) ---")
		for _, c := range counts {
			fmt.Printf("%-12s %6d alert(s), max confidence %.3f\n", c.AttackType, c.Count, c.MaxConfidence)
		}
	case "source":
		alerts, err := querier.AlertsBySource(ctx, source, limit)
		if err != nil {
			log.Fatalf("Error executing query: %v", err)
		}
		printAlerts(alerts)
	default:
		log.Fatalf("Invalid query: %s. Use 'recent', 'summary', or 'source'.", what)
	}
}

func printAlerts(alerts []*model.ThreatRecord) {
	if len(alerts) == 0 {
		log.Println("No data found for the specified criteria.")
		return
	}
	log.Println("--- Alerts (Direct) ---")
	for _, a := range alerts {
		fmt.Printf("%s  %-10s  %s -> %s  confidence %.3f  %s/%s  %d bytes\n",
			a.Timestamp.Format(time.RFC3339), a.Label, a.SrcAddr, a.DstAddr,
			a.Confidence, a.Protocol, a.Service, a.PacketSize)
	}
}
