package store

import (
	"errors"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"gorm.io/gorm"
)

// ListSalesEntries returns every entry of a goal. Empty slice when the
// goal has none (or does not exist — entries carry the reference).
func (s *Store) ListSalesEntries(goalID uint) ([]models.SalesEntry, error) {
	entries := []models.SalesEntry{}
	err := s.db.Where("goal_id = ?", goalID).Order("date ASC").Find(&entries).Error
	if err != nil {
		return nil, wrap("list sales entries", err)
	}
	return entries, nil
}

// SaveSalesEntry upserts the entry for (goal, date): an existing row
// for that day is replaced in place, keeping id and created_at; a
// missing one is inserted. Tickets defaults to 1 when unset.
//
// Uniqueness is deliberately scoped to the goal — two goals may both
// have an entry on the same date.
func (s *Store) SaveSalesEntry(entry *models.SalesEntry) (*models.SalesEntry, error) {
	if entry.Tickets <= 0 {
		entry.Tickets = 1
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SalesEntry
		err := tx.Where("goal_id = ? AND date = ?", entry.GoalID, entry.Date).
			First(&existing).Error
		switch {
		case err == nil:
			existing.AmountCents = entry.AmountCents
			existing.Tickets = entry.Tickets
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*entry = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(entry).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, wrap("save sales entry", translate(err))
	}
	return entry, nil
}

// DeleteSalesEntryByDate removes the single entry a goal has for a
// date. False (no error) when there is nothing to remove.
func (s *Store) DeleteSalesEntryByDate(goalID uint, date string) (bool, error) {
	res := s.db.Where("goal_id = ? AND date = ?", goalID, date).
		Delete(&models.SalesEntry{})
	if res.Error != nil {
		return false, wrap("delete sales entry by date", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteSalesEntriesByGoal removes every entry of a goal and reports
// how many were deleted.
func (s *Store) DeleteSalesEntriesByGoal(goalID uint) (int64, error) {
	res := s.db.Where("goal_id = ?", goalID).Delete(&models.SalesEntry{})
	if res.Error != nil {
		return 0, wrap("delete sales entries by goal", res.Error)
	}
	return res.RowsAffected, nil
}

// ListUnitEntries mirrors ListSalesEntries for unit goals.
func (s *Store) ListUnitEntries(goalID uint) ([]models.UnitEntry, error) {
	entries := []models.UnitEntry{}
	err := s.db.Where("goal_id = ?", goalID).Order("date ASC").Find(&entries).Error
	if err != nil {
		return nil, wrap("list unit entries", err)
	}
	return entries, nil
}

// SaveUnitEntry mirrors SaveSalesEntry for unit goals.
func (s *Store) SaveUnitEntry(entry *models.UnitEntry) (*models.UnitEntry, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.UnitEntry
		err := tx.Where("goal_id = ? AND date = ?", entry.GoalID, entry.Date).
			First(&existing).Error
		switch {
		case err == nil:
			existing.Units = entry.Units
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*entry = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(entry).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, wrap("save unit entry", translate(err))
	}
	return entry, nil
}

// DeleteUnitEntryByDate mirrors DeleteSalesEntryByDate.
func (s *Store) DeleteUnitEntryByDate(goalID uint, date string) (bool, error) {
	res := s.db.Where("goal_id = ? AND date = ?", goalID, date).
		Delete(&models.UnitEntry{})
	if res.Error != nil {
		return false, wrap("delete unit entry by date", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteUnitEntriesByGoal mirrors DeleteSalesEntriesByGoal.
func (s *Store) DeleteUnitEntriesByGoal(goalID uint) (int64, error) {
	res := s.db.Where("goal_id = ?", goalID).Delete(&models.UnitEntry{})
	if res.Error != nil {
		return 0, wrap("delete unit entries by goal", res.Error)
	}
	return res.RowsAffected, nil
}
