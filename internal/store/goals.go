package store

import (
	"errors"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"gorm.io/gorm"
)

// GetSalesGoal is a point lookup on the (month, year) composite index.
// Out-of-range months or years resolve to ErrNotFound without touching
// the database, matching what callers can meaningfully ask about.
func (s *Store) GetSalesGoal(month, year int) (*models.SalesGoal, error) {
	if !validMonthYear(month, year) {
		return nil, wrap("get sales goal", ErrNotFound)
	}
	var goal models.SalesGoal
	err := s.db.Where("month = ? AND year = ?", month, year).First(&goal).Error
	if err != nil {
		return nil, wrap("get sales goal", translate(err))
	}
	return &goal, nil
}

// SaveSalesGoal upserts a goal on its (month, year) key inside one
// transaction: when a goal for that month exists its target is replaced
// in place, keeping the original id and created_at; otherwise a new row
// is inserted. The unique index backstops concurrent saves.
func (s *Store) SaveSalesGoal(goal *models.SalesGoal) (*models.SalesGoal, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SalesGoal
		err := tx.Where("month = ? AND year = ?", goal.Month, goal.Year).
			First(&existing).Error
		switch {
		case err == nil:
			existing.TargetCents = goal.TargetCents
			if goal.CreatedBy != 0 {
				existing.CreatedBy = goal.CreatedBy
			}
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*goal = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(goal).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, wrap("save sales goal", translate(err))
	}
	return goal, nil
}

// GetUnitGoal mirrors GetSalesGoal for unit targets.
func (s *Store) GetUnitGoal(month, year int) (*models.UnitGoal, error) {
	if !validMonthYear(month, year) {
		return nil, wrap("get unit goal", ErrNotFound)
	}
	var goal models.UnitGoal
	err := s.db.Where("month = ? AND year = ?", month, year).First(&goal).Error
	if err != nil {
		return nil, wrap("get unit goal", translate(err))
	}
	return &goal, nil
}

// SaveUnitGoal mirrors SaveSalesGoal for unit targets.
func (s *Store) SaveUnitGoal(goal *models.UnitGoal) (*models.UnitGoal, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.UnitGoal
		err := tx.Where("month = ? AND year = ?", goal.Month, goal.Year).
			First(&existing).Error
		switch {
		case err == nil:
			existing.TargetUnits = goal.TargetUnits
			if goal.CreatedBy != 0 {
				existing.CreatedBy = goal.CreatedBy
			}
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*goal = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(goal).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, wrap("save unit goal", translate(err))
	}
	return goal, nil
}
