package scheduling

import (
	"reflect"
	"testing"
)

func TestSubtractBookedEmpty(t *testing.T) {
	got := SubtractBooked(nil)
	want := []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SubtractBooked(nil) = %v, want full schedule %v", got, want)
	}
}

func TestSubtractBookedRemovesSlot(t *testing.T) {
	got := SubtractBooked([]string{"10:00"})
	want := []string{"08:00", "09:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SubtractBooked([10:00]) = %v, want %v", got, want)
	}
}

func TestSubtractBookedNormalizesSeconds(t *testing.T) {
	// The store may return HH:MM:SS; both forms must filter the same slot.
	withSeconds := SubtractBooked([]string{"10:00:00"})
	bare := SubtractBooked([]string{"10:00"})
	if !reflect.DeepEqual(withSeconds, bare) {
		t.Fatalf("seconds form filtered %v, bare form filtered %v", withSeconds, bare)
	}
	for _, slot := range withSeconds {
		if slot == "10:00" {
			t.Fatal("10:00 still available after booking 10:00:00")
		}
	}
}

func TestSubtractBookedFullDay(t *testing.T) {
	booked := append([]string(nil), DailySchedule...)
	got := SubtractBooked(booked)
	if len(got) != 0 {
		t.Fatalf("fully booked day returned %v, want empty", got)
	}
}

func TestSubtractBookedIgnoresUnknownSlots(t *testing.T) {
	got := SubtractBooked([]string{"12:00", "18:30"})
	if len(got) != len(DailySchedule) {
		t.Fatalf("unknown booked slots changed availability: %v", got)
	}
}

func TestNormalizeSlot(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10:00:00", "10:00"},
		{"10:00", "10:00"},
		{"08:15:59", "08:15"},
		{"", ""},
		{"9:00", "9:00"},
	}
	for _, tt := range tests {
		if got := NormalizeSlot(tt.in); got != tt.want {
			t.Fatalf("NormalizeSlot(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
