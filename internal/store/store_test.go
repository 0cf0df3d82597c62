package store_test

import (
	"path/filepath"
	"testing"

	"github.com/GBronzi/Reporte-de-ventas/internal/config"
	"github.com/GBronzi/Reporte-de-ventas/internal/database"
	"github.com/GBronzi/Reporte-de-ventas/internal/models"
	"github.com/GBronzi/Reporte-de-ventas/internal/report"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return store.New(db)
}

func TestSaveSalesGoalUpsert(t *testing.T) {
	st := newTestStore(t)

	first, err := st.SaveSalesGoal(&models.SalesGoal{
		Month: 3, Year: 2026, TargetCents: 55_000_000, CreatedBy: 1,
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// Saving the same month again must update in place.
	second, err := st.SaveSalesGoal(&models.SalesGoal{
		Month: 3, Year: 2026, TargetCents: 60_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, int64(60_000_000), second.TargetCents)

	got, err := st.GetSalesGoal(3, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(60_000_000), got.TargetCents)

	// A different month is a separate goal.
	other, err := st.SaveSalesGoal(&models.SalesGoal{
		Month: 4, Year: 2026, TargetCents: 10_000,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestGetSalesGoalMissing(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetSalesGoal(1, 2026)
	assert.True(t, store.IsNotFound(err))

	// Out-of-range coordinates behave like a missing goal.
	_, err = st.GetSalesGoal(13, 2026)
	assert.True(t, store.IsNotFound(err))
	_, err = st.GetSalesGoal(1, 1999)
	assert.True(t, store.IsNotFound(err))
}

func TestSaveSalesEntryScopedToGoal(t *testing.T) {
	st := newTestStore(t)

	g1, err := st.SaveSalesGoal(&models.SalesGoal{Month: 5, Year: 2026, TargetCents: 100})
	require.NoError(t, err)
	g2, err := st.SaveSalesGoal(&models.SalesGoal{Month: 6, Year: 2026, TargetCents: 100})
	require.NoError(t, err)

	e1, err := st.SaveSalesEntry(&models.SalesEntry{
		GoalID: g1.ID, Date: "2026-05-04", AmountCents: 35_000, Tickets: 3,
	})
	require.NoError(t, err)

	// Same date under a different goal is a distinct entry.
	e2, err := st.SaveSalesEntry(&models.SalesEntry{
		GoalID: g2.ID, Date: "2026-05-04", AmountCents: 1_000,
	})
	require.NoError(t, err)
	assert.NotEqual(t, e1.ID, e2.ID)

	// Same (goal, date) replaces the existing row.
	e3, err := st.SaveSalesEntry(&models.SalesEntry{
		GoalID: g1.ID, Date: "2026-05-04", AmountCents: 65_000, Tickets: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, e1.ID, e3.ID)
	assert.Equal(t, e1.CreatedAt, e3.CreatedAt)
	assert.Equal(t, int64(65_000), e3.AmountCents)
	assert.Equal(t, 5, e3.Tickets)

	entries, err := st.ListSalesEntries(g1.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveSalesEntryTicketsDefault(t *testing.T) {
	st := newTestStore(t)

	g, err := st.SaveSalesGoal(&models.SalesGoal{Month: 7, Year: 2026, TargetCents: 100})
	require.NoError(t, err)

	e, err := st.SaveSalesEntry(&models.SalesEntry{
		GoalID: g.ID, Date: "2026-07-01", AmountCents: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, e.Tickets)
}

func TestDeleteSalesEntryIdempotent(t *testing.T) {
	st := newTestStore(t)

	g, err := st.SaveSalesGoal(&models.SalesGoal{Month: 8, Year: 2026, TargetCents: 100})
	require.NoError(t, err)
	_, err = st.SaveSalesEntry(&models.SalesEntry{
		GoalID: g.ID, Date: "2026-08-10", AmountCents: 500,
	})
	require.NoError(t, err)

	deleted, err := st.DeleteSalesEntryByDate(g.ID, "2026-08-10")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = st.DeleteSalesEntryByDate(g.ID, "2026-08-10")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteSalesEntriesByGoal(t *testing.T) {
	st := newTestStore(t)

	g, err := st.SaveSalesGoal(&models.SalesGoal{Month: 9, Year: 2026, TargetCents: 100})
	require.NoError(t, err)
	for _, d := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
		_, err := st.SaveSalesEntry(&models.SalesEntry{GoalID: g.ID, Date: d, AmountCents: 100})
		require.NoError(t, err)
	}

	count, err := st.DeleteSalesEntriesByGoal(g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	entries, err := st.ListSalesEntries(g.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnitEntryUpsert(t *testing.T) {
	st := newTestStore(t)

	g, err := st.SaveUnitGoal(&models.UnitGoal{Month: 2, Year: 2026, TargetUnits: 350})
	require.NoError(t, err)

	e1, err := st.SaveUnitEntry(&models.UnitEntry{GoalID: g.ID, Date: "2026-02-02", Units: 12})
	require.NoError(t, err)

	e2, err := st.SaveUnitEntry(&models.UnitEntry{GoalID: g.ID, Date: "2026-02-02", Units: 20})
	require.NoError(t, err)
	assert.Equal(t, e1.ID, e2.ID)
	assert.Equal(t, int64(20), e2.Units)
}

func TestCreditsByMonthLeapYear(t *testing.T) {
	st := newTestStore(t)

	for _, c := range []models.Credit{
		{Date: "2024-02-01", Type: models.CreditTypeNew, AmountCents: 100, Quantity: 1},
		{Date: "2024-02-29", Type: models.CreditTypeRenewal, AmountCents: 200, Quantity: 1},
		{Date: "2024-03-01", Type: models.CreditTypeNew, AmountCents: 300, Quantity: 1},
		{Date: "2024-01-31", Type: models.CreditTypeCollected, AmountCents: 400, Quantity: 1},
	} {
		cr := c
		require.NoError(t, st.CreateCredit(&cr))
	}

	credits, err := st.CreditsByMonth(2, 2024)
	require.NoError(t, err)
	require.Len(t, credits, 2)
	assert.Equal(t, "2024-02-01", credits[0].Date)
	assert.Equal(t, "2024-02-29", credits[1].Date)
}

func TestUpdateCredit(t *testing.T) {
	st := newTestStore(t)

	cr := models.Credit{Date: "2026-01-10", Type: models.CreditTypeNew, AmountCents: 100, Quantity: 1}
	require.NoError(t, st.CreateCredit(&cr))

	updated, err := st.UpdateCredit(cr.ID, map[string]any{
		"amount_cents": int64(250),
		"type":         models.CreditTypeRenewal,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(250), updated.AmountCents)
	assert.Equal(t, models.CreditTypeRenewal, updated.Type)
	assert.Equal(t, "2026-01-10", updated.Date)

	_, err = st.UpdateCredit(9999, map[string]any{"amount_cents": int64(1)})
	assert.True(t, store.IsNotFound(err))
}

func TestDeleteCreditsByDateAndMonth(t *testing.T) {
	st := newTestStore(t)

	for _, d := range []string{"2026-04-10", "2026-04-10", "2026-04-11", "2026-05-01"} {
		cr := models.Credit{Date: d, Type: models.CreditTypeNew, AmountCents: 100, Quantity: 1}
		require.NoError(t, st.CreateCredit(&cr))
	}

	count, err := st.DeleteCreditsByDate("2026-04-10")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = st.DeleteCreditsByMonth(4, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	remaining, err := st.CreditsByMonth(5, 2026)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDuplicateEmailRejected(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.CreateUser(&models.User{
		Email: "ana@example.com", Name: "Ana", PasswordHash: "x", Role: models.RoleUser,
	}))

	err := st.CreateUser(&models.User{
		Email: "ana@example.com", Name: "Other", PasswordHash: "y", Role: models.RoleUser,
	})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestGetUserByEmailCaseInsensitive(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.CreateUser(&models.User{
		Email: "ana@example.com", Name: "Ana", PasswordHash: "x", Role: models.RoleUser,
	}))

	u, err := st.GetUserByEmail("ANA@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
}

func TestResetAllExceptUsers(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.CreateUser(&models.User{
		Email: "admin@example.com", Name: "Admin", PasswordHash: "x", Role: models.RoleAdmin,
	}))

	g, err := st.SaveSalesGoal(&models.SalesGoal{Month: 1, Year: 2026, TargetCents: 100})
	require.NoError(t, err)
	_, err = st.SaveSalesEntry(&models.SalesEntry{GoalID: g.ID, Date: "2026-01-05", AmountCents: 50})
	require.NoError(t, err)
	ug, err := st.SaveUnitGoal(&models.UnitGoal{Month: 1, Year: 2026, TargetUnits: 10})
	require.NoError(t, err)
	_, err = st.SaveUnitEntry(&models.UnitEntry{GoalID: ug.ID, Date: "2026-01-05", Units: 2})
	require.NoError(t, err)
	cr := models.Credit{Date: "2026-01-05", Type: models.CreditTypeNew, AmountCents: 100, Quantity: 1}
	require.NoError(t, st.CreateCredit(&cr))

	cleared, err := st.ResetAllExceptUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared["sales_goals"])
	assert.Equal(t, int64(1), cleared["sales_entries"])
	assert.Equal(t, int64(1), cleared["unit_goals"])
	assert.Equal(t, int64(1), cleared["unit_entries"])
	assert.Equal(t, int64(1), cleared["credits"])

	// Users survive the reset.
	users, err := st.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = st.GetSalesGoal(1, 2026)
	assert.True(t, store.IsNotFound(err))
}

func TestSnapshotRestore(t *testing.T) {
	st := newTestStore(t)

	g, err := st.SaveSalesGoal(&models.SalesGoal{Month: 1, Year: 2026, TargetCents: 100})
	require.NoError(t, err)
	_, err = st.SaveSalesEntry(&models.SalesEntry{GoalID: g.ID, Date: "2026-01-05", AmountCents: 50})
	require.NoError(t, err)
	cr := models.Credit{Date: "2026-01-05", Type: models.CreditTypeNew, AmountCents: 100, Quantity: 1}
	require.NoError(t, st.CreateCredit(&cr))

	snap, err := st.TakeSnapshot()
	require.NoError(t, err)
	require.Len(t, snap.SalesGoals, 1)
	require.Len(t, snap.SalesEntries, 1)
	require.Len(t, snap.Credits, 1)

	_, err = st.ResetAllExceptUsers()
	require.NoError(t, err)

	require.NoError(t, st.RestoreSnapshot(snap))

	restored, err := st.GetSalesGoal(1, 2026)
	require.NoError(t, err)
	assert.Equal(t, g.ID, restored.ID)

	entries, err := st.ListSalesEntries(g.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBackupRecords(t *testing.T) {
	st := newTestStore(t)

	b := &models.Backup{UserID: 1, FileName: "backup-a.bin", FilePath: "/tmp/backup-a.bin", Size: 42}
	require.NoError(t, st.CreateBackup(b))
	require.NotZero(t, b.ID)

	got, err := st.GetBackup(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "backup-a.bin", got.FileName)

	// a missing id maps onto the store's own not-found sentinel
	_, err = st.GetBackup(9999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	list, err := st.ListBackups()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// success paths report success
	require.NoError(t, st.DeleteBackup(b.ID))

	list, err = st.ListBackups()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGoalAccumulationScenario(t *testing.T) {
	st := newTestStore(t)

	g, err := st.SaveSalesGoal(&models.SalesGoal{Month: 1, Year: 2024, TargetCents: 100_000_000})
	require.NoError(t, err)

	_, err = st.SaveSalesEntry(&models.SalesEntry{GoalID: g.ID, Date: "2024-01-05", AmountCents: 25_000_000})
	require.NoError(t, err)
	_, err = st.SaveSalesEntry(&models.SalesEntry{GoalID: g.ID, Date: "2024-01-10", AmountCents: 30_000_000})
	require.NoError(t, err)

	entries, err := st.ListSalesEntries(g.ID)
	require.NoError(t, err)

	acc := report.AccumulatedCents(entries)
	assert.Equal(t, int64(55_000_000), acc)
	assert.InDelta(t, 55.0, report.CompletionPercent(g.TargetCents, acc), 1e-9)
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		month, year int
		first, last string
	}{
		{2, 2024, "2024-02-01", "2024-02-29"},
		{2, 2025, "2025-02-01", "2025-02-28"},
		{12, 2026, "2026-12-01", "2026-12-31"},
		{4, 2026, "2026-04-01", "2026-04-30"},
	}
	for _, c := range cases {
		first, last := store.MonthRange(c.month, c.year)
		assert.Equal(t, c.first, first)
		assert.Equal(t, c.last, last)
	}
}
