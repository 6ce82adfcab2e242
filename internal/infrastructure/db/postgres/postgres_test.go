package postgres

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestNullJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     json.RawMessage
		wantNil bool
	}{
		{name: "absent", raw: nil, wantNil: true},
		{name: "empty", raw: json.RawMessage(""), wantNil: true},
		{name: "literal null", raw: json.RawMessage("null"), wantNil: true},
		{name: "padded null", raw: json.RawMessage(" null\n"), wantNil: true},
		{name: "object", raw: json.RawMessage(`{"mon":["09:00-11:00"]}`)},
		{name: "empty array", raw: json.RawMessage(`[]`)},
		{name: "null string", raw: json.RawMessage(`"null"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nullJSON(tt.raw)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected SQL NULL, got %v", got)
				}
				return
			}
			b, ok := got.([]byte)
			if !ok || string(b) != string(tt.raw) {
				t.Fatalf("expected document passed through, got %#v", got)
			}
		})
	}
}

func TestUniqueConstraint(t *testing.T) {
	phone := fmt.Errorf("upsert: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: phoneConstraint})
	if name, ok := uniqueConstraint(phone); !ok || name != phoneConstraint {
		t.Fatalf("expected %s, got %q %v", phoneConstraint, name, ok)
	}

	if _, ok := uniqueConstraint(&pgconn.PgError{Code: "23503"}); ok {
		t.Fatalf("foreign key violation reported as unique")
	}
	if _, ok := uniqueConstraint(errors.New("boom")); ok {
		t.Fatalf("plain error reported as unique")
	}
}
