package models

// HinfoPreset is a reusable hardware and operating system description for hosts.
type HinfoPreset struct {
	// ID is the unique identifier for the preset.
	ID uint `gorm:"primaryKey" json:"hinfoid"`
	// CPU is the hardware part of the HINFO record.
	CPU string `gorm:"column:cpu;size:64;not null" json:"cpu"`
	// OS is the operating system part of the HINFO record.
	OS string `gorm:"column:os;size:64;not null" json:"os"`
}

// TableName specifies the database table name for the HinfoPreset model.
func (HinfoPreset) TableName() string {
	return "hinfo_presets"
}
