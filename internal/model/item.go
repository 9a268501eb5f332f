package model

// Item is the single resource managed by the service.
// Description is nullable and encodes as JSON null when absent.
type Item struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"type:text;not null"`
	Description *string `json:"description" gorm:"type:text"`
}

// TableName pins the GORM table name.
func (Item) TableName() string {
	return "items"
}
