package models

// Ipaddress is an address assigned to a host.
type Ipaddress struct {
	ID         uint    `gorm:"primaryKey" json:"ipaddressid"`
	HostID     uint    `gorm:"column:host_id;not null;index" json:"hostid"`
	Ipaddress  string  `gorm:"column:ipaddress;size:45;not null;unique" json:"ipaddress"`
	Macaddress *string `gorm:"column:macaddress;size:17" json:"macaddress"`
}

// TableName specifies the database table name for the Ipaddress model.
func (Ipaddress) TableName() string {
	return "ipaddresses"
}

// Cname is an alias pointing at a host.
type Cname struct {
	ID     uint   `gorm:"primaryKey" json:"cnameid"`
	HostID uint   `gorm:"column:host_id;not null;index" json:"hostid"`
	Cname  string `gorm:"column:cname;size:255;not null;unique" json:"cname"`
	TTL    *int64 `json:"ttl"`
}

// TableName specifies the database table name for the Cname model.
func (Cname) TableName() string {
	return "cnames"
}

// Txt is a text record owned by a host.
type Txt struct {
	ID     uint   `gorm:"primaryKey" json:"txtid"`
	HostID uint   `gorm:"column:host_id;not null;index" json:"hostid"`
	Txt    string `gorm:"column:txt;type:text;not null" json:"txt"`
	TTL    *int64 `json:"ttl"`
}

// TableName specifies the database table name for the Txt model.
func (Txt) TableName() string {
	return "txts"
}

// PtrOverride replaces the automatically derived reverse mapping of an address.
type PtrOverride struct {
	ID        uint   `gorm:"primaryKey" json:"ptr_overrideid"`
	HostID    uint   `gorm:"column:host_id;not null;index" json:"hostid"`
	Ipaddress string `gorm:"column:ipaddress;size:45;not null;unique" json:"ipaddress"`
}

// TableName specifies the database table name for the PtrOverride model.
func (PtrOverride) TableName() string {
	return "ptr_overrides"
}

// Naptr is a naming authority pointer owned by a host.
type Naptr struct {
	ID          uint   `gorm:"primaryKey" json:"naptrid"`
	HostID      uint   `gorm:"column:host_id;not null;index" json:"hostid"`
	Orderv      int64  `gorm:"column:orderv;not null" json:"orderv"`
	Preference  int64  `gorm:"not null" json:"preference"`
	Flag        string `gorm:"size:1" json:"flag"`
	Service     string `gorm:"size:128" json:"service"`
	Regex       string `gorm:"size:128" json:"regex"`
	Replacement string `gorm:"size:255;not null" json:"replacement"`
}

// TableName specifies the database table name for the Naptr model.
func (Naptr) TableName() string {
	return "naptrs"
}

// Ns is a nameserver that zones delegate to.
type Ns struct {
	ID   uint   `gorm:"primaryKey" json:"nsid"`
	Name string `gorm:"size:255;not null;unique" json:"name"`
	TTL  *int64 `json:"ttl"`
}

// TableName specifies the database table name for the Ns model.
func (Ns) TableName() string {
	return "nameservers"
}

// Srv is a service locator record.
type Srv struct {
	ID       uint   `gorm:"primaryKey" json:"srvid"`
	Service  string `gorm:"size:255;not null" json:"service"`
	Priority int64  `gorm:"not null" json:"priority"`
	Weight   int64  `gorm:"not null" json:"weight"`
	Port     int64  `gorm:"not null" json:"port"`
	Target   string `gorm:"size:255;not null" json:"target"`
	TTL      *int64 `json:"ttl"`
}

// TableName specifies the database table name for the Srv model.
func (Srv) TableName() string {
	return "srvs"
}
