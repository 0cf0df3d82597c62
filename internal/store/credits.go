package store

import (
	"github.com/GBronzi/Reporte-de-ventas/internal/models"
)

// CreditsByMonth returns every credit dated within (month, year), both
// calendar boundaries inclusive.
func (s *Store) CreditsByMonth(month, year int) ([]models.Credit, error) {
	if !validMonthYear(month, year) {
		return []models.Credit{}, nil
	}
	first, last := MonthRange(month, year)
	credits := []models.Credit{}
	err := s.db.Where("date >= ? AND date <= ?", first, last).
		Order("date ASC, id ASC").
		Find(&credits).Error
	if err != nil {
		return nil, wrap("credits by month", err)
	}
	return credits, nil
}

// CreateCredit inserts a new credit transaction unconditionally;
// credits have no uniqueness key.
func (s *Store) CreateCredit(credit *models.Credit) error {
	if credit.Quantity <= 0 {
		credit.Quantity = 1
	}
	if err := s.db.Create(credit).Error; err != nil {
		return wrap("create credit", translate(err))
	}
	return nil
}

// UpdateCredit shallow-merges fields over the stored credit.
// ErrNotFound when the id does not exist.
func (s *Store) UpdateCredit(id uint, fields map[string]any) (*models.Credit, error) {
	var credit models.Credit
	if err := s.db.First(&credit, id).Error; err != nil {
		return nil, wrap("update credit", translate(err))
	}
	if err := s.db.Model(&credit).Updates(fields).Error; err != nil {
		return nil, wrap("update credit", translate(err))
	}
	return &credit, nil
}

// DeleteCredit removes one credit. False when the id never existed.
func (s *Store) DeleteCredit(id uint) (bool, error) {
	res := s.db.Delete(&models.Credit{}, id)
	if res.Error != nil {
		return false, wrap("delete credit", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteCreditsByDate removes every credit on one calendar day and
// reports the count; zero means "successfully did nothing".
func (s *Store) DeleteCreditsByDate(date string) (int64, error) {
	res := s.db.Where("date = ?", date).Delete(&models.Credit{})
	if res.Error != nil {
		return 0, wrap("delete credits by date", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteCreditsByMonth removes every credit within (month, year).
func (s *Store) DeleteCreditsByMonth(month, year int) (int64, error) {
	if !validMonthYear(month, year) {
		return 0, nil
	}
	first, last := MonthRange(month, year)
	res := s.db.Where("date >= ? AND date <= ?", first, last).
		Delete(&models.Credit{})
	if res.Error != nil {
		return 0, wrap("delete credits by month", res.Error)
	}
	return res.RowsAffected, nil
}
