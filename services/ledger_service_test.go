package services

import (
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}),
		&gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		},
	)
	require.NoError(t, err)
	return db, mock
}

// TestDateOnly verifies the time-of-day component is discarded and the
// result normalized to UTC midnight, so a 23:59 log and a 00:01 log for the
// same UTC day hit the same ledger row.
func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 8, 29, 23, 59, 58, 123, time.UTC)
	got := DateOnly(in)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), got)

	est := time.FixedZone("EST", -5*3600)
	in = time.Date(2026, 8, 29, 22, 30, 0, 0, est) // 03:30 UTC next day
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), DateOnly(in))

	// Idempotent: normalizing twice changes nothing.
	assert.Equal(t, DateOnly(in), DateOnly(DateOnly(in)))
}

// TestSumLedgerEntries verifies full-replacement totals: food entries sum
// into eaten/macros, activity records into burned, and net is eaten-burned.
func TestSumLedgerEntries(t *testing.T) {
	ingredients := []models.LoggedIngredient{
		{Totals: models.NutritionFact{Kcal: 330, ProteinG: 62, FatG: 7.2}},
		{Totals: models.NutritionFact{Kcal: 52, CarbsG: 13.8, FiberG: 2.4}},
	}
	meals := []models.LoggedMeal{
		{Totals: models.NutritionFact{Kcal: 450, FatG: 50}},
	}
	records := []models.ActivityRecord{
		{KcalBurned: 294},
		{KcalBurned: 42},
	}

	totals := sumLedgerEntries(ingredients, meals, records)
	assert.InDelta(t, 832, totals.Eaten, 1e-9)
	assert.InDelta(t, 336, totals.Burned, 1e-9)
	assert.InDelta(t, 496, totals.Net(), 1e-9)
	assert.InDelta(t, 62, totals.ProteinG, 1e-9)
	assert.InDelta(t, 57.2, totals.FatG, 1e-9)
	assert.InDelta(t, 13.8, totals.CarbsG, 1e-9)
	assert.InDelta(t, 2.4, totals.FiberG, 1e-9)
}

// TestSumLedgerEntries_Deterministic: the same entry set sums to
// bit-identical totals, which is what makes Recompute idempotent.
func TestSumLedgerEntries_Deterministic(t *testing.T) {
	ingredients := []models.LoggedIngredient{
		{Totals: models.NutritionFact{Kcal: 123.456, ProteinG: 0.1, FatG: 0.2, CarbsG: 0.3, FiberG: 0.4}},
		{Totals: models.NutritionFact{Kcal: 78.9, ProteinG: 11.1}},
	}
	records := []models.ActivityRecord{{KcalBurned: 55.5}}

	first := sumLedgerEntries(ingredients, nil, records)
	second := sumLedgerEntries(ingredients, nil, records)
	assert.Equal(t, first, second)
}

// TestSumLedgerEntries_NonFiniteGuard: a NaN/Inf stored total counts as 0
// instead of poisoning every field of the ledger.
func TestSumLedgerEntries_NonFiniteGuard(t *testing.T) {
	ingredients := []models.LoggedIngredient{
		{Model: gorm.Model{ID: 1}, Totals: models.NutritionFact{Kcal: math.NaN(), ProteinG: 10}},
		{Model: gorm.Model{ID: 2}, Totals: models.NutritionFact{Kcal: 200}},
	}
	records := []models.ActivityRecord{
		{Model: gorm.Model{ID: 3}, KcalBurned: math.Inf(1)},
	}

	totals := sumLedgerEntries(ingredients, nil, records)
	assert.InDelta(t, 200, totals.Eaten, 1e-9)
	assert.InDelta(t, 10, totals.ProteinG, 1e-9)
	assert.Zero(t, totals.Burned)
}

var ledgerColumns = []string{
	"id", "user_id", "date",
	"total_kcal_eaten", "total_kcal_burned", "total_kcal",
	"total_protein_g", "total_fat_g", "total_carbs_g", "total_fiber_g", "water_l",
}

// TestGetOrCreate_InsertThenReadBack: the upsert inserts with ON CONFLICT DO
// NOTHING and always reads the surviving row back.
func TestGetOrCreate_InsertThenReadBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "daily_ledgers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "daily_ledgers" WHERE user_id`).
		WillReturnRows(sqlmock.NewRows(ledgerColumns).
			AddRow(1, 42, day, 0, 0, 0, 0, 0, 0, 0, 0))

	ledger, err := svc.GetOrCreate(42, day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, uint(1), ledger.ID)
	assert.Equal(t, uint(42), ledger.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestGetOrCreate_ExistingRowWins: on conflict the insert affects no rows
// and the pre-existing ledger is returned unchanged.
func TestGetOrCreate_ExistingRowWins(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "daily_ledgers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "daily_ledgers" WHERE user_id`).
		WillReturnRows(sqlmock.NewRows(ledgerColumns).
			AddRow(7, 42, day, 832, 294, 538, 62, 57.2, 13.8, 2.4, 1.5))

	ledger, err := svc.GetOrCreate(42, day)
	require.NoError(t, err)
	assert.Equal(t, uint(7), ledger.ID)
	assert.InDelta(t, 832, ledger.TotalKcalEaten, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestRecompute_LedgerNotFound: a dangling id surfaces ErrLedgerNotFound.
func TestRecompute_LedgerNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "daily_ledgers"`).
		WillReturnRows(sqlmock.NewRows(ledgerColumns))
	mock.ExpectRollback()

	err := svc.Recompute(999)
	assert.ErrorIs(t, err, ErrLedgerNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestRecompute_ReadsAndWritesInOneTransaction: the entry reads and the
// totals write share a transaction, and the write is a full replacement of
// the derived fields.
func TestRecompute_ReadsAndWritesInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "daily_ledgers"`).
		WillReturnRows(sqlmock.NewRows(ledgerColumns).
			AddRow(5, 42, day, 0, 0, 0, 0, 0, 0, 0, 0))
	mock.ExpectQuery(`SELECT \* FROM "logged_ingredients" WHERE ledger_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ledger_id", "total_kcal", "total_protein_g"}).
			AddRow(1, 5, 330, 62).
			AddRow(2, 5, 52, 0))
	mock.ExpectQuery(`SELECT \* FROM "logged_meals" WHERE ledger_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ledger_id", "total_kcal"}).
			AddRow(3, 5, 450))
	mock.ExpectQuery(`SELECT \* FROM "activity_records" WHERE ledger_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ledger_id", "kcal_burned"}).
			AddRow(4, 5, 294))
	mock.ExpectExec(`UPDATE "daily_ledgers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Recompute(5))
	require.NoError(t, mock.ExpectationsWereMet())
}
