package cli

import (
	"testing"
	"time"

	"github.com/moretide/harvest/internal/timecalc"
)

func TestResolveRangeExplicit(t *testing.T) {
	from, to, label, err := resolveRange("2017-03-01", "2017-03-05")
	if err != nil {
		t.Fatalf("resolveRange: %v", err)
	}
	if from.String() != "2017-03-01" {
		t.Errorf("from = %q, want %q", from.String(), "2017-03-01")
	}
	if to.String() != "2017-03-05" {
		t.Errorf("to = %q, want %q", to.String(), "2017-03-05")
	}
	if label != "2017-03-01 to 2017-03-05" {
		t.Errorf("label = %q, want %q", label, "2017-03-01 to 2017-03-05")
	}
}

func TestResolveRangeDefaultWeek(t *testing.T) {
	from, to, label, err := resolveRange("", "")
	if err != nil {
		t.Fatalf("resolveRange: %v", err)
	}
	if wd := from.Weekday(); wd != time.Monday {
		t.Errorf("from weekday = %v, want Monday", wd)
	}
	if wd := to.Weekday(); wd != time.Sunday {
		t.Errorf("to weekday = %v, want Sunday", wd)
	}
	if want := timecalc.ISOWeekLabel(time.Now()); label != want {
		t.Errorf("label = %q, want %q", label, want)
	}
}

func TestResolveRangeToWithoutFrom(t *testing.T) {
	if _, _, _, err := resolveRange("", "2017-03-05"); err == nil {
		t.Error("expected error when --to is passed without --from")
	}
}
