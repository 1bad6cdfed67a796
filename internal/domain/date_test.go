package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1999, time.March, 31)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"1999-03-31"` {
		t.Fatalf("marshal = %s, want %q", b, "1999-03-31")
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip = %s, want %s", back, d)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"31/03/1999"`), &d); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2003, time.May, 15, 13, 45, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time: %v", err)
	}
	if d.String() != "2003-05-15" {
		t.Fatalf("scan time.Time = %s, want 2003-05-15", d)
	}

	var fromStr Date
	if err := fromStr.Scan("2003-05-15"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if !fromStr.Equal(d.Time) {
		t.Fatalf("scan string = %s, want %s", fromStr, d)
	}

	if err := d.Scan(42); err == nil {
		t.Fatal("expected error when scanning an int")
	}
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2026, time.January, 24).Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2026-01-24" {
		t.Fatalf("value = %v, want 2026-01-24", v)
	}
}
