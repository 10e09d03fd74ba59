package timeframe

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.Local)
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cases := map[string]Timeframe{
			"":      All,
			"all":   All,
			"day":   Day,
			"week":  Week,
			"month": Month,
		}
		for input, want := range cases {
			got, err := Parse(input)
			if err != nil {
				t.Errorf("Parse(%q) returned error: %v", input, err)
				continue
			}
			if got != want {
				t.Errorf("Parse(%q) = %q, want %q", input, got, want)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"year", "DAY", "weekly", " all"} {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", input)
			}
		}
	})
}

func TestValidDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-02-29", "1999-12-31"}
	for _, s := range valid {
		if !ValidDate(s) {
			t.Errorf("ValidDate(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "2024-1-1", "2024-13-01", "2024-02-30", "2023-02-29", "20240101", "2024-01-01T00:00:00Z"}
	for _, s := range invalid {
		if ValidDate(s) {
			t.Errorf("ValidDate(%q) = true, want false", s)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Run("all_returns_nil", func(t *testing.T) {
		if rng := Resolve(All, date(2024, time.March, 15)); rng != nil {
			t.Errorf("expected nil range for all, got %+v", rng)
		}
	})

	t.Run("day", func(t *testing.T) {
		rng := Resolve(Day, date(2024, time.March, 15))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2024-03-15" || rng.To != "2024-03-15" {
			t.Errorf("expected [2024-03-15, 2024-03-15], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("week_monday_through_sunday", func(t *testing.T) {
		// 2024-03-15 is a Friday; its week is Mon 2024-03-11 .. Sun 2024-03-17.
		rng := Resolve(Week, date(2024, time.March, 15))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2024-03-11" || rng.To != "2024-03-17" {
			t.Errorf("expected [2024-03-11, 2024-03-17], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("week_sunday_belongs_to_preceding_monday", func(t *testing.T) {
		// 2024-03-17 is a Sunday and must close the week started 2024-03-11.
		rng := Resolve(Week, date(2024, time.March, 17))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2024-03-11" || rng.To != "2024-03-17" {
			t.Errorf("expected [2024-03-11, 2024-03-17], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("week_monday_is_its_own_start", func(t *testing.T) {
		rng := Resolve(Week, date(2024, time.March, 11))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2024-03-11" || rng.To != "2024-03-17" {
			t.Errorf("expected [2024-03-11, 2024-03-17], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("week_crosses_month_boundary", func(t *testing.T) {
		// 2024-01-31 is a Wednesday; its week runs Mon 2024-01-29 .. Sun 2024-02-04.
		rng := Resolve(Week, date(2024, time.January, 31))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2024-01-29" || rng.To != "2024-02-04" {
			t.Errorf("expected [2024-01-29, 2024-02-04], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("month", func(t *testing.T) {
		rng := Resolve(Month, date(2024, time.March, 15))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2024-03-01" || rng.To != "2024-03-31" {
			t.Errorf("expected [2024-03-01, 2024-03-31], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("month_leap_february", func(t *testing.T) {
		rng := Resolve(Month, date(2024, time.February, 10))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2024-02-01" || rng.To != "2024-02-29" {
			t.Errorf("expected [2024-02-01, 2024-02-29], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("month_non_leap_february", func(t *testing.T) {
		rng := Resolve(Month, date(2023, time.February, 10))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2023-02-01" || rng.To != "2023-02-28" {
			t.Errorf("expected [2023-02-01, 2023-02-28], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("month_december", func(t *testing.T) {
		rng := Resolve(Month, date(2024, time.December, 25))
		if rng == nil {
			t.Fatal("expected non-nil range")
		}
		if rng.From != "2024-12-01" || rng.To != "2024-12-31" {
			t.Errorf("expected [2024-12-01, 2024-12-31], got [%s, %s]", rng.From, rng.To)
		}
	})

	t.Run("from_never_after_to", func(t *testing.T) {
		ref := date(2020, time.January, 1)
		for i := 0; i < 800; i++ {
			day := ref.AddDate(0, 0, i)
			for _, tf := range []Timeframe{Day, Week, Month} {
				rng := Resolve(tf, day)
				if rng == nil {
					t.Fatalf("expected non-nil range for %s at %s", tf, FormatDate(day))
				}
				if rng.From > rng.To {
					t.Fatalf("%s at %s: from %s after to %s", tf, FormatDate(day), rng.From, rng.To)
				}
				if !ValidDate(rng.From) || !ValidDate(rng.To) {
					t.Fatalf("%s at %s: malformed range [%s, %s]", tf, FormatDate(day), rng.From, rng.To)
				}
			}
		}
	})
}
