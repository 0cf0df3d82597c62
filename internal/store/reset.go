package store

import (
	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"gorm.io/gorm"
)

// ResetAllExceptUsers clears every collection except users inside one
// transaction, so a failure leaves the data untouched instead of
// half-cleared. The returned map reports how many rows each collection
// held.
func (s *Store) ResetAllExceptUsers() (map[string]int64, error) {
	cleared := map[string]int64{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		targets := []struct {
			name  string
			model any
		}{
			{"sales_goals", &models.SalesGoal{}},
			{"sales_entries", &models.SalesEntry{}},
			{"unit_goals", &models.UnitGoal{}},
			{"unit_entries", &models.UnitEntry{}},
			{"credits", &models.Credit{}},
		}
		for _, t := range targets {
			res := tx.Where("1 = 1").Delete(t.model)
			if res.Error != nil {
				return res.Error
			}
			cleared[t.name] = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return nil, wrap("reset database", err)
	}
	return cleared, nil
}
