package query

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// fakeRows plays back canned result rows through the driver.Rows interface,
// so row scanning is testable without a ClickHouse server.
type fakeRows struct {
	rows [][]any
	pos  int
}

var _ driver.Rows = (*fakeRows)(nil)

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan got %d destinations, row has %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		v := reflect.ValueOf(d)
		if v.Kind() != reflect.Pointer {
			return fmt.Errorf("destination %d is not a pointer", i)
		}
		v.Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *fakeRows) ScanStruct(dest any) error        { return nil }
func (r *fakeRows) ColumnTypes() []driver.ColumnType { return nil }
func (r *fakeRows) Totals(dest ...any) error         { return nil }
func (r *fakeRows) Columns() []string                { return nil }
func (r *fakeRows) Close() error                     { return nil }
func (r *fakeRows) Err() error                       { return nil }

func TestScanAlerts(t *testing.T) {
	at := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	rows := &fakeRows{rows: [][]any{
		{at, "203.0.113.5", "10.0.0.1", "neptune", 0.93, "tcp", "http", uint32(60)},
		{at.Add(time.Second), "198.51.100.9", "10.0.0.2", "smurf", 0.88, "icmp", "other", uint32(1066)},
	}}

	alerts, err := scanAlerts(rows)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("scanned %d alerts, want 2", len(alerts))
	}

	got := alerts[0]
	if !got.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, at)
	}
	if got.SrcAddr != "203.0.113.5" || got.DstAddr != "10.0.0.1" {
		t.Errorf("addresses = %s -> %s", got.SrcAddr, got.DstAddr)
	}
	if got.Label != "neptune" || got.Confidence != 0.93 {
		t.Errorf("alert = %s/%v, want neptune/0.93", got.Label, got.Confidence)
	}
	if got.Protocol != "tcp" || got.Service != "http" {
		t.Errorf("context = %s/%s, want tcp/http", got.Protocol, got.Service)
	}
	if got.PacketSize != 60 {
		t.Errorf("PacketSize = %d, want 60", got.PacketSize)
	}
	if alerts[1].PacketSize != 1066 {
		t.Errorf("second PacketSize = %d, want 1066", alerts[1].PacketSize)
	}
}

func TestScanAlertsEmpty(t *testing.T) {
	alerts, err := scanAlerts(&fakeRows{})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("scanned %d alerts from an empty result, want 0", len(alerts))
	}
}
