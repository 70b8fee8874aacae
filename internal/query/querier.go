// Package query reads persisted alerts back out of ClickHouse for the HTTP
// API and the query CLI.
package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"NetSentry/internal/config"
	"NetSentry/internal/model"
)

// TypeCount summarizes the alert volume for one attack type.
type TypeCount struct {
	AttackType    string  `json:"attack_type"`
	Count         uint64  `json:"count"`
	MaxConfidence float64 `json:"max_confidence"`
}

// Querier defines the interface for querying the alert store.
type Querier interface {
	// RecentAlerts returns the newest alerts, newest first.
	RecentAlerts(ctx context.Context, limit int) ([]*model.ThreatRecord, error)

	// CountsByType aggregates alert volume per attack type since the given
	// time. A zero time aggregates the whole table.
	CountsByType(ctx context.Context, since time.Time) ([]TypeCount, error)

	// AlertsBySource returns the newest alerts raised against one source
	// address, newest first.
	AlertsBySource(ctx context.Context, srcAddr string, limit int) ([]*model.ThreatRecord, error)

	// Close releases the underlying connection.
	Close() error
}

// clickhouseQuerier implements the Querier interface for ClickHouse.
type clickhouseQuerier struct {
	conn clickhouse.Conn
}

// NewClickHouseQuerier creates a new querier for ClickHouse.
func NewClickHouseQuerier(cfg config.ClickHouseConfig) (Querier, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}
	return &clickhouseQuerier{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (clickhouse.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
	})

	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

const alertColumns = "Timestamp, SrcAddr, DstAddr, AttackType, Confidence, Protocol, Service, PacketSize"

// RecentAlerts returns the newest alerts across all sources.
func (q *clickhouseQuerier) RecentAlerts(ctx context.Context, limit int) ([]*model.ThreatRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	query := fmt.Sprintf("SELECT %s FROM security_alerts ORDER BY Timestamp DESC LIMIT ?", alertColumns)

	rows, err := q.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// CountsByType aggregates alert volume per attack type.
func (q *clickhouseQuerier) CountsByType(ctx context.Context, since time.Time) ([]TypeCount, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			AttackType,
			COUNT(*) AS Total,
			MAX(Confidence) AS MaxConfidence
		FROM security_alerts
	`)

	args := []interface{}{}
	if !since.IsZero() {
		queryBuilder.WriteString(" WHERE Timestamp >= ?")
		args = append(args, since)
	}
	queryBuilder.WriteString(" GROUP BY AttackType ORDER BY Total DESC")

	rows, err := q.conn.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var counts []TypeCount
	for rows.Next() {
		var c TypeCount
		if err := rows.Scan(&c.AttackType, &c.Count, &c.MaxConfidence); err != nil {
			return nil, fmt.Errorf("failed to scan aggregation result: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, nil
}

// AlertsBySource returns the newest alerts raised against one source address.
func (q *clickhouseQuerier) AlertsBySource(ctx context.Context, srcAddr string, limit int) ([]*model.ThreatRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	query := fmt.Sprintf("SELECT %s FROM security_alerts WHERE SrcAddr = ? ORDER BY Timestamp DESC LIMIT ?", alertColumns)

	rows, err := q.conn.Query(ctx, query, srcAddr, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// Close releases the underlying connection.
func (q *clickhouseQuerier) Close() error {
	return q.conn.Close()
}

func scanAlerts(rows driver.Rows) ([]*model.ThreatRecord, error) {
	var alerts []*model.ThreatRecord
	for rows.Next() {
		var (
			record model.ThreatRecord
			size   uint32
		)
		err := rows.Scan(&record.Timestamp, &record.SrcAddr, &record.DstAddr,
			&record.Label, &record.Confidence, &record.Protocol, &record.Service, &size)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		record.PacketSize = int(size)
		alerts = append(alerts, &record)
	}
	return alerts, nil
}
