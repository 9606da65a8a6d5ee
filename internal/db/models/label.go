package models

// Label is a named tag that can be attached to records.
type Label struct {
	// ID is the unique identifier for the label.
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the unique label name.
	Name string `gorm:"unique;size:100;not null" json:"name"`
	// Description explains what the label is used for.
	Description string `gorm:"size:255;not null" json:"description"`
}

// TableName specifies the database table name for the Label model.
func (Label) TableName() string {
	return "labels"
}
