package alerter

import (
	"context"
	"fmt"
	"log"

	"NetSentry/internal/config"
	"NetSentry/internal/model"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS security_alerts (
    Timestamp   DateTime,
    SrcAddr     String,
    DstAddr     String,
    AttackType  String,
    Confidence  Float64,
    Protocol    String,
    Service     String,
    PacketSize  UInt32
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (AttackType, Timestamp);
`

// ClickHouseWriter persists threat records to the security_alerts table.
type ClickHouseWriter struct {
	conn driver.Conn
}

// NewClickHouseWriter connects to ClickHouse and ensures the alert table
// exists.
func NewClickHouseWriter(cfg config.ClickHouseConfig) (*ClickHouseWriter, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured alert table exists.")

	return &ClickHouseWriter{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Debug: false,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
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

// Name identifies this sink in logs.
func (w *ClickHouseWriter) Name() string {
	return "clickhouse"
}

// Write inserts the batch into the security_alerts table.
func (w *ClickHouseWriter) Write(ctx context.Context, alerts []*model.ThreatRecord) error {
	if len(alerts) == 0 {
		return nil
	}

	batch, err := w.conn.PrepareBatch(ctx, "INSERT INTO security_alerts")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, alert := range alerts {
		err = batch.Append(
			alert.Timestamp,
			alert.SrcAddr,
			alert.DstAddr,
			alert.Label,
			alert.Confidence,
			alert.Protocol,
			alert.Service,
			uint32(alert.PacketSize),
		)
		if err != nil {
			return fmt.Errorf("failed to append alert to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Wrote %d alert(s) to ClickHouse", len(alerts))
	return nil
}

// Close releases the ClickHouse connection.
func (w *ClickHouseWriter) Close() error {
	return w.conn.Close()
}
