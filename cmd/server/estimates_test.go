package main

import (
	"database/sql"
	"testing"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func TestListEstimatesOrdersByDateDescAndReadsTotal(t *testing.T) {
	db := newEstimatesTestDB(t)
	srv := &server{db: db, logger: zap.NewNop()}

	seedEstimate(t, db, "2024-01-01 10:00:00", "Primera", "nota uno", 10050)
	seedEstimate(t, db, "2024-01-03 12:00:00", "Tercera", "nota tres", 30000)
	seedEstimate(t, db, "2024-01-02 11:00:00", "Segunda", "nota dos", 20025)

	estimates, err := srv.listEstimates("")
	if err != nil {
		t.Fatalf("listEstimates returned error: %v", err)
	}

	if len(estimates) != 3 {
		t.Fatalf("expected 3 estimates, got %d", len(estimates))
	}

	if estimates[0].Title != "Tercera" || estimates[1].Title != "Segunda" || estimates[2].Title != "Primera" {
		t.Fatalf("estimates are not sorted desc by created_at: %+v", estimates)
	}

	if estimates[0].Total != 300.00 || estimates[1].Total != 200.25 || estimates[2].Total != 100.50 {
		t.Fatalf("unexpected totals: %+v", estimates)
	}
}

func TestListEstimatesFilterByTitleAndNotes(t *testing.T) {
	db := newEstimatesTestDB(t)
	srv := &server{db: db, logger: zap.NewNop()}

	seedEstimate(t, db, "2024-01-01 10:00:00", "Casa entera", "repintar sala", 8000)
	seedEstimate(t, db, "2024-01-02 10:00:00", "Oficina", "cliente vip", 12000)
	seedEstimate(t, db, "2024-01-03 10:00:00", "Recamara", "urgente para casa", 16000)

	byTitle, err := srv.listEstimates("Ofic")
	if err != nil {
		t.Fatalf("listEstimates title filter returned error: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].Title != "Oficina" {
		t.Fatalf("expected 1 estimate filtered by title, got %+v", byTitle)
	}

	byNotes, err := srv.listEstimates("casa")
	if err != nil {
		t.Fatalf("listEstimates notes filter returned error: %v", err)
	}
	if len(byNotes) != 2 {
		t.Fatalf("expected 2 estimates filtered by notes/title, got %+v", byNotes)
	}
}

func newEstimatesTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE estimates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reference TEXT NOT NULL,
			project_id INTEGER,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			title TEXT,
			notes TEXT,
			include_materials BOOLEAN NOT NULL DEFAULT TRUE,
			total_cents INTEGER NOT NULL DEFAULT 0,
			features_json TEXT NOT NULL DEFAULT '[]',
			totals_json TEXT NOT NULL DEFAULT '{}',
			breakdown_json TEXT NOT NULL DEFAULT '[]'
		);
	`)
	if err != nil {
		t.Fatalf("failed creating estimates table: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func seedEstimate(t *testing.T, db *sql.DB, createdAt, title, notes string, totalCents int64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO estimates (reference, created_at, title, notes, total_cents)
		VALUES (?, ?, ?, ?, ?)
	`, "ref-"+createdAt, createdAt, title, notes, totalCents)
	if err != nil {
		t.Fatalf("failed to seed estimate: %v", err)
	}
}
