package bestgram

import (
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
)

func newTestDBClient(t *testing.T) *sqlx.DB {
	t.Helper()
	config := NewDBConfig("root", "password", "127.0.0.1", "3306", "bestgram")
	db, err := NewDBClient(config)
	if err != nil {
		t.Skipf("mysql is not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("mysql is not available: %v", err)
	}
	return db
}

func truncateReports(db *sqlx.DB) {
	db.Exec("truncate table reports")
}

func TestStorageRdbImplAddReport(t *testing.T) {
	db := newTestDBClient(t)
	truncateReports(db)

	storage := NewStorageRdbImpl(db)
	report1 := Report{
		ID:            "a3bb1896-0000-0000-0000-000000000001",
		Gram:          3,
		DistinctChars: 42,
		TotalSymbols:  100000,
		DistinctGrams: 777,
		ParseTime:     1500 * time.Millisecond,
		CountTime:     2 * time.Second,
		RecordedAt:    time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	report2 := Report{
		ID:            "a3bb1896-0000-0000-0000-000000000002",
		Gram:          2,
		DistinctChars: 40,
		TotalSymbols:  99000,
		DistinctGrams: 321,
		ParseTime:     time.Second,
		CountTime:     750 * time.Millisecond,
		RecordedAt:    time.Date(2021, 6, 2, 9, 30, 0, 0, time.UTC),
	}

	if err := storage.AddReport(report1); err != nil {
		t.Fatal(err)
	}
	if err := storage.AddReport(report2); err != nil {
		t.Fatal(err)
	}
	// Re-inserting the same run ID is not an error.
	if err := storage.AddReport(report1); err != nil {
		t.Fatal(err)
	}

	got, err := storage.GetAllReports()
	if err != nil {
		t.Fatal(err)
	}
	opt := cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })
	if diff := cmp.Diff([]Report{report1, report2}, got, opt); diff != "" {
		t.Errorf("Diff: (-want +got)\n%s", diff)
	}
}
