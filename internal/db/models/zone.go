package models

// Zone is a DNS zone with its SOA parameters.
type Zone struct {
	// ID is the unique identifier for the zone.
	ID uint `gorm:"primaryKey" json:"zoneid"`
	// Name is the zone apex.
	Name string `gorm:"size:255;not null;unique" json:"name"`
	// PrimaryNs is the SOA MNAME.
	PrimaryNs string `gorm:"column:primary_ns;size:255;not null" json:"primary_ns"`
	// Email is the SOA RNAME in mail form.
	Email string `gorm:"size:255;not null" json:"email"`
	// Serialno is the SOA serial.
	Serialno *int64 `json:"serialno"`
	// Refresh is the SOA refresh interval.
	Refresh *int64 `json:"refresh"`
	// Retry is the SOA retry interval.
	Retry *int64 `json:"retry"`
	// Expire is the SOA expire interval.
	Expire *int64 `json:"expire"`
	// TTL is the zone default time-to-live.
	TTL *int64 `json:"ttl"`
	// Nameservers are the delegated nameservers (read only on the API).
	Nameservers []Ns `gorm:"many2many:zone_nameservers" json:"nameservers"`
}

// TableName specifies the database table name for the Zone model.
func (Zone) TableName() string {
	return "zones"
}
