package models

import (
	"gorm.io/gorm"
)

// Host is a named machine that owns address, alias, text and override records.
type Host struct {
	// ID is the unique identifier for the host.
	ID uint `gorm:"primaryKey" json:"hostid"`
	// Name is the fully qualified host name.
	Name string `gorm:"unique;size:255;not null" json:"name"`
	// Contact is the email address responsible for the host.
	Contact string `gorm:"size:255;not null" json:"contact"`
	// TTL overrides the zone default when set.
	TTL *int64 `json:"ttl"`
	// HinfoID references the HINFO preset describing the host, if any.
	HinfoID *uint `gorm:"column:hinfo_id" json:"-"`
	// Hinfo is the resolved HINFO preset (loaded via foreign key).
	Hinfo *HinfoPreset `gorm:"foreignKey:HinfoID;constraint:OnDelete:SET NULL" json:"hinfo"`
	// Loc is an optional RFC 1876 location string.
	Loc *string `gorm:"size:255" json:"loc"`
	// Comment is free text.
	Comment *string `gorm:"type:text" json:"comment"`
}

// TableName specifies the database table name for the Host model.
func (Host) TableName() string {
	return "hosts"
}

// BeforeSave keeps HinfoID in line with the Hinfo association, which is the
// field the write path sets.
func (h *Host) BeforeSave(_ *gorm.DB) error {
	if h.Hinfo != nil {
		id := h.Hinfo.ID
		h.HinfoID = &id
	} else {
		h.HinfoID = nil
	}

	return nil
}
