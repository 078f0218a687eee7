package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		clock    string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{name: "morning", clock: "9:30 AM", wantHour: 9, wantMin: 30},
		{name: "afternoon adds twelve", clock: "2:15 PM", wantHour: 14, wantMin: 15},
		{name: "noon stays twelve", clock: "12:00 PM", wantHour: 12, wantMin: 0},
		{name: "half past midnight maps to hour zero", clock: "12:30 AM", wantHour: 0, wantMin: 30},
		{name: "last minute of day", clock: "11:59 PM", wantHour: 23, wantMin: 59},
		{name: "lowercase marker accepted", clock: "3:05 pm", wantHour: 15, wantMin: 5},
		{name: "missing marker", clock: "9:30", wantErr: true},
		{name: "extra tokens", clock: "9:30 AM extra", wantErr: true},
		{name: "bad marker", clock: "9:30 XM", wantErr: true},
		{name: "hour out of range", clock: "13:00 PM", wantErr: true},
		{name: "hour zero not valid on a 12-hour clock", clock: "0:30 AM", wantErr: true},
		{name: "minute out of range", clock: "9:60 AM", wantErr: true},
		{name: "non-numeric hour", clock: "nine:30 AM", wantErr: true},
		{name: "empty string", clock: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, err := ParseClock(tt.clock)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidClock) {
					t.Fatalf("err = %v, want ErrInvalidClock", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h != tt.wantHour || m != tt.wantMin {
				t.Errorf("got %d:%02d, want %d:%02d", h, m, tt.wantHour, tt.wantMin)
			}
		})
	}
}

func TestAt(t *testing.T) {
	got, err := At("2026-04-10", "12:00 PM", time.UTC)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	want := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := At("10/04/2026", "12:00 PM", time.UTC); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := At("2026-04-10", "12-00", time.UTC); !errors.Is(err, ErrInvalidClock) {
		t.Errorf("err = %v, want ErrInvalidClock", err)
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		clock   string
		want    Status
		wantErr bool
	}{
		{name: "noon today is not strictly before noon", date: "2026-04-10", clock: "12:00 PM", want: StatusUpcoming},
		{name: "one minute before now is past", date: "2026-04-10", clock: "11:59 AM", want: StatusPast},
		{name: "just after midnight today is past by noon", date: "2026-04-10", clock: "12:30 AM", want: StatusPast},
		{name: "late evening today is upcoming", date: "2026-04-10", clock: "11:59 PM", want: StatusUpcoming},
		{name: "yesterday is past", date: "2026-04-09", clock: "11:59 PM", want: StatusPast},
		{name: "tomorrow is upcoming", date: "2026-04-11", clock: "12:30 AM", want: StatusUpcoming},
		{name: "missing date yields no classification", date: "", clock: "9:00 AM", want: StatusNone},
		{name: "missing clock yields no classification", date: "2026-04-10", clock: "", want: StatusNone},
		{name: "malformed clock is an explicit error", date: "2026-04-10", clock: "25:00", wantErr: true},
		{name: "malformed date is an explicit error", date: "April 10", clock: "9:00 AM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.date, tt.clock, now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
