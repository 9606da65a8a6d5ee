package models

import "gorm.io/gorm"

// DefaultReserved is the reserved address count of subnets created without one.
const DefaultReserved int64 = 3

// Subnet is a managed network range.
type Subnet struct {
	// ID is the unique identifier for the subnet.
	ID uint `gorm:"primaryKey" json:"subnetid"`
	// Range is the network in CIDR notation.
	Range string `gorm:"column:range;size:64;not null;unique" json:"range"`
	// Description is a human readable purpose of the subnet.
	Description string `gorm:"size:255;not null" json:"description"`
	// Vlan is the optional VLAN tag.
	Vlan *int64 `json:"vlan"`
	// DNSDelegated marks subnets whose reverse zone is delegated elsewhere.
	DNSDelegated bool `gorm:"column:dns_delegated;default:false" json:"dns_delegated"`
	// Category is a free form classification.
	Category string `gorm:"size:32" json:"category"`
	// Location is where the network lives.
	Location string `gorm:"size:255" json:"location"`
	// Frozen subnets accept no new addresses.
	Frozen bool `gorm:"default:false" json:"frozen"`
	// Reserved is the number of addresses kept free at the start of the range.
	// A nil value is stored as DefaultReserved, an explicit zero is kept.
	Reserved *int64 `gorm:"not null" json:"reserved"`
}

// BeforeSave fills in the reserved count when the write did not set one.
func (s *Subnet) BeforeSave(_ *gorm.DB) error {
	if s.Reserved == nil {
		reserved := DefaultReserved
		s.Reserved = &reserved
	}

	return nil
}

// TableName specifies the database table name for the Subnet model.
func (Subnet) TableName() string {
	return "subnets"
}
