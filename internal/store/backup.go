package store

import (
	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"gorm.io/gorm"
)

// Snapshot holds a full copy of every collection except users. It is
// what backup files serialize.
type Snapshot struct {
	SalesGoals   []models.SalesGoal  `json:"sales_goals"`
	SalesEntries []models.SalesEntry `json:"sales_entries"`
	UnitGoals    []models.UnitGoal   `json:"unit_goals"`
	UnitEntries  []models.UnitEntry  `json:"unit_entries"`
	Credits      []models.Credit     `json:"credits"`
}

// TakeSnapshot reads every non-user collection in one transaction.
func (s *Store) TakeSnapshot() (*Snapshot, error) {
	snap := &Snapshot{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").Find(&snap.SalesGoals).Error; err != nil {
			return err
		}
		if err := tx.Order("id ASC").Find(&snap.SalesEntries).Error; err != nil {
			return err
		}
		if err := tx.Order("id ASC").Find(&snap.UnitGoals).Error; err != nil {
			return err
		}
		if err := tx.Order("id ASC").Find(&snap.UnitEntries).Error; err != nil {
			return err
		}
		return tx.Order("id ASC").Find(&snap.Credits).Error
	})
	if err != nil {
		return nil, wrap("take snapshot", err)
	}
	return snap, nil
}

// RestoreSnapshot replaces every non-user collection with the
// snapshot's contents. Record IDs are kept, so entry goal references
// stay valid.
func (s *Store) RestoreSnapshot(snap *Snapshot) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.SalesEntry{}, &models.SalesGoal{},
			&models.UnitEntry{}, &models.UnitGoal{},
			&models.Credit{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		if len(snap.SalesGoals) > 0 {
			if err := tx.Create(&snap.SalesGoals).Error; err != nil {
				return err
			}
		}
		if len(snap.SalesEntries) > 0 {
			if err := tx.Create(&snap.SalesEntries).Error; err != nil {
				return err
			}
		}
		if len(snap.UnitGoals) > 0 {
			if err := tx.Create(&snap.UnitGoals).Error; err != nil {
				return err
			}
		}
		if len(snap.UnitEntries) > 0 {
			if err := tx.Create(&snap.UnitEntries).Error; err != nil {
				return err
			}
		}
		if len(snap.Credits) > 0 {
			return tx.Create(&snap.Credits).Error
		}
		return nil
	})
	return wrap("restore snapshot", err)
}

func (s *Store) CreateBackup(b *models.Backup) error {
	return wrap("create backup", s.db.Create(b).Error)
}

func (s *Store) ListBackups() ([]models.Backup, error) {
	var list []models.Backup
	err := s.db.Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, wrap("list backups", err)
	}
	return list, nil
}

func (s *Store) GetBackup(id uint) (*models.Backup, error) {
	var b models.Backup
	if err := s.db.First(&b, id).Error; err != nil {
		return nil, wrap("get backup", translate(err))
	}
	return &b, nil
}

func (s *Store) DeleteBackup(id uint) error {
	return wrap("delete backup", s.db.Delete(&models.Backup{}, id).Error)
}
