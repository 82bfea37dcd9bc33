package identity

import "gorm.io/gorm"

// OwnedBy returns a GORM scope that filters by owner_id.
func OwnedBy(subject string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", subject)
	}
}

// AssignedTo returns a GORM scope that filters tasks by assignee.
func AssignedTo(subject string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("assigned_to = ?", subject)
	}
}
