package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestamp_UnmarshalLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{`"2025-09-30T08:15:00Z"`, time.Date(2025, 9, 30, 8, 15, 0, 0, time.UTC)},
		{`"2025-09-30T08:15:00.123456"`, time.Date(2025, 9, 30, 8, 15, 0, 123456000, time.UTC)},
		{`"2025-09-30T08:15:00"`, time.Date(2025, 9, 30, 8, 15, 0, 0, time.UTC)},
		{`"2025-09-30"`, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tc.raw), &ts); err != nil {
			t.Fatalf("%s: %v", tc.raw, err)
		}
		if !ts.Equal(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.raw, tc.want, ts.Time)
		}
	}
}

func TestTimestamp_EmptyAndInvalid(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`""`), &ts); err != nil {
		t.Fatalf("empty string: %v", err)
	}
	if !ts.IsZero() {
		t.Fatalf("empty string must yield zero time")
	}

	if err := json.Unmarshal([]byte(`"last tuesday"`), &ts); err == nil {
		t.Fatalf("expected error for unparseable timestamp")
	}
}

func TestTimestamp_MarshalRoundTrip(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 9, 30, 8, 15, 0, 0, time.UTC))
	raw, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-09-30T08:15:00Z"` {
		t.Fatalf("marshal: %s", raw)
	}

	var zero Timestamp
	raw, err = json.Marshal(zero)
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(raw) != `""` {
		t.Fatalf("zero timestamp must marshal to empty string, got %s", raw)
	}
}
