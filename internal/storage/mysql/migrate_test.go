package mysql

import (
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	src := `-- header
CREATE TABLE a (id INT);

-- second
CREATE TABLE b (
  id INT
);
`
	got := splitStatements(src)
	if len(got) != 2 {
		t.Fatalf("statements: %d %q", len(got), got)
	}
	if got[0] != "CREATE TABLE a (id INT)" {
		t.Fatalf("first: %q", got[0])
	}
	if !strings.HasPrefix(got[1], "CREATE TABLE b (") {
		t.Fatalf("second: %q", got[1])
	}
}

func TestEmbeddedMigrationsCoverSchema(t *testing.T) {
	b, err := migrations.ReadFile("migrations/0001_init.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	stmts := splitStatements(string(b))
	for _, table := range []string{"users", "sessions", "enrollments", "ticket_types", "tickets", "hotels", "rooms"} {
		found := false
		for _, s := range stmts {
			if strings.Contains(s, "CREATE TABLE IF NOT EXISTS "+table+" (") {
				found = true
			}
		}
		if !found {
			t.Fatalf("no CREATE TABLE for %s", table)
		}
	}
}
