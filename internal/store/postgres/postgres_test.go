package postgres

import (
	"testing"

	"github.com/bloom-cafe/api/internal/store"
)

func TestTablesCoverAllCollections(t *testing.T) {
	for _, c := range store.Collections {
		if _, err := tableFor(c); err != nil {
			t.Errorf("no table mapped for collection %q", c)
		}
	}
}

func TestTableForRejectsUnknownCollection(t *testing.T) {
	if _, err := tableFor(store.Collection("users; DROP TABLE orders")); err == nil {
		t.Fatal("unknown collection must not reach SQL")
	}
}

func TestOrderExprComparesTimestampsAsTimestamps(t *testing.T) {
	if got := orderExpr("created_at"); got != "(payload->>$1)::timestamptz" {
		t.Errorf("created_at must order as timestamptz, got %q", got)
	}
	if got := orderExpr("date"); got != "payload->>$1" {
		t.Errorf("plain fields order as text, got %q", got)
	}
}
