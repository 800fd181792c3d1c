package services

import (
	"path/filepath"
	"testing"

	"github.com/mazyaa/API-ML-RFC/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *PredictionStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return NewPredictionStore(db)
}

func sampleRow(product string) models.Prediction {
	return models.Prediction{
		Date:         "2021-08-02",
		DayOfWeek:    "Senin",
		ProductName:  product,
		UnitPrice:    10000,
		QuantitySold: 12,
		StockOnHand:  30,
		StockStatus:  "normal",
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 3; i++ {
		if err := store.EnsureSchema(); err != nil {
			t.Fatalf("EnsureSchema() call %d failed: %v", i+1, err)
		}
	}
}

func TestInsertAndListAll(t *testing.T) {
	store := newTestStore(t)

	first := sampleRow("Bolen Banana")
	second := sampleRow("Bolen Coklat")

	if err := store.Insert(&first); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := store.Insert(&second); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Error("Insert should assign ids")
	}
	if second.ID <= first.ID {
		t.Errorf("ids should be monotonic: %d then %d", first.ID, second.ID)
	}

	rows, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].ProductName != "Bolen Banana" || rows[1].ProductName != "Bolen Coklat" {
		t.Errorf("rows not in insertion order: %v, %v", rows[0].ProductName, rows[1].ProductName)
	}
}

func TestListAllOnFreshDatabase(t *testing.T) {
	store := newTestStore(t)
	rows, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll on fresh db failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestDeleteAll(t *testing.T) {
	store := newTestStore(t)

	row := sampleRow("Bolen Banana")
	if err := store.Insert(&row); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := store.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}

	rows, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d after DeleteAll, want 0", len(rows))
	}

	// schema survives and ids are not reused
	next := sampleRow("Bolen Proltape")
	if err := store.Insert(&next); err != nil {
		t.Fatalf("Insert after DeleteAll failed: %v", err)
	}
	if next.ID <= row.ID {
		t.Errorf("id %d reused after DeleteAll (previous max %d)", next.ID, row.ID)
	}
}

func TestBulkLoadReplace(t *testing.T) {
	store := newTestStore(t)

	existing := sampleRow("Bolen Banana")
	if err := store.Insert(&existing); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	batch := []models.Prediction{sampleRow("Bolen Coklat"), sampleRow("Bolen Keju Mini")}
	if err := store.BulkLoad(batch, BulkLoadReplace); err != nil {
		t.Fatalf("BulkLoad(replace) failed: %v", err)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d after replace, want 2", n)
	}
}

func TestBulkLoadAppend(t *testing.T) {
	store := newTestStore(t)

	existing := sampleRow("Bolen Banana")
	if err := store.Insert(&existing); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	batch := []models.Prediction{sampleRow("Bolen Coklat"), sampleRow("Bolen Keju Mini")}
	if err := store.BulkLoad(batch, BulkLoadAppend); err != nil {
		t.Fatalf("BulkLoad(append) failed: %v", err)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d after append, want 3", n)
	}
}

func TestBulkLoadOnEmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	batch := []models.Prediction{sampleRow("Bolen Banana")}
	if err := store.BulkLoad(batch, BulkLoadReplace); err != nil {
		t.Fatalf("BulkLoad(replace) on fresh db failed: %v", err)
	}
	if err := store.BulkLoad(nil, BulkLoadAppend); err != nil {
		t.Fatalf("BulkLoad(append) with no rows failed: %v", err)
	}

	n, _ := store.Count()
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestBulkLoadUnknownMode(t *testing.T) {
	store := newTestStore(t)
	if err := store.BulkLoad(nil, BulkLoadMode("truncate")); err == nil {
		t.Error("expected error for unknown mode")
	}
}
