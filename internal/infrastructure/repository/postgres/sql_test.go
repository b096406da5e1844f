package postgres

import (
	"database/sql"
	"testing"
)

func TestStringToNullString(t *testing.T) {
	t.Run("empty string maps to null", func(t *testing.T) {
		got := stringToNullString("")
		if got.Valid {
			t.Fatalf("expected invalid NullString for empty input")
		}
	})

	t.Run("non-empty string is preserved", func(t *testing.T) {
		got := stringToNullString("WAS")
		if !got.Valid || got.String != "WAS" {
			t.Fatalf("unexpected NullString: %+v", got)
		}
	})
}

func TestNullFloat64RoundTrip(t *testing.T) {
	t.Run("null maps to nil", func(t *testing.T) {
		if got := nullFloat64ToPtr(sql.NullFloat64{}); got != nil {
			t.Fatalf("expected nil, got %v", *got)
		}
		if got := ptrToNullFloat64(nil); got.Valid {
			t.Fatalf("expected invalid NullFloat64 for nil input")
		}
	})

	t.Run("value survives round trip", func(t *testing.T) {
		v := 7.5
		got := nullFloat64ToPtr(ptrToNullFloat64(&v))
		if got == nil || *got != 7.5 {
			t.Fatalf("unexpected round trip result: %v", got)
		}
	})
}

func TestIntPtrToNullInt64(t *testing.T) {
	t.Run("nil maps to null", func(t *testing.T) {
		if got := intPtrToNullInt64(nil); got.Valid {
			t.Fatalf("expected invalid NullInt64 for nil input")
		}
	})

	t.Run("value is preserved", func(t *testing.T) {
		v := 3
		got := intPtrToNullInt64(&v)
		if !got.Valid || got.Int64 != 3 {
			t.Fatalf("unexpected NullInt64: %+v", got)
		}
	})
}
