package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("15-01-2024")
	if !ok {
		t.Fatalf("IsValidDate(15-01-2024) = false, want true")
	}
	if date.Day() != 15 || date.Month() != time.January || date.Year() != 2024 {
		t.Errorf("IsValidDate(15-01-2024) parsed to %v", date)
	}

	invalid := []string{"2024-01-15", "32-01-2024", "15-13-2024", "15/01/2024", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	tm, ok := IsValidTime("18:30:00")
	if !ok {
		t.Fatalf("IsValidTime(18:30:00) = false, want true")
	}
	if tm.Hour() != 18 || tm.Minute() != 30 {
		t.Errorf("IsValidTime(18:30:00) parsed to %v", tm)
	}

	invalid := []string{"25:00:00", "18:61:00", "18:30", "6 pm", ""}
	for _, s := range invalid {
		if _, ok := IsValidTime(s); ok {
			t.Errorf("IsValidTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"PENDING", "APPROVED", "REJECTED"}
	if !IsInSlice("APPROVED", slice) {
		t.Error("IsInSlice(APPROVED) = false, want true")
	}
	if IsInSlice("approved", slice) {
		t.Error("IsInSlice(approved) = true, want false")
	}
}
