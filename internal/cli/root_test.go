package cli

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2017-03-05")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	want := time.Date(2017, 3, 5, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("parseDate = %v, want %v", got, want)
	}
}

func TestParseDateSlashes(t *testing.T) {
	got, err := parseDate("03/05/2017")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.Year() != 2017 || got.Month() != time.March {
		t.Errorf("parseDate = %v, want March 2017", got)
	}
}

func TestParseDateGarbage(t *testing.T) {
	if _, err := parseDate("not a date"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestStrOr(t *testing.T) {
	s := "value"
	if got := strOr(&s, "-"); got != "value" {
		t.Errorf("strOr = %q, want %q", got, "value")
	}
	if got := strOr(nil, "-"); got != "-" {
		t.Errorf("strOr(nil) = %q, want %q", got, "-")
	}
	empty := ""
	if got := strOr(&empty, "-"); got != "-" {
		t.Errorf("strOr(empty) = %q, want %q", got, "-")
	}
}
