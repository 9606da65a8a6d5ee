package models

// All returns a pointer to every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&HinfoPreset{},
		&Host{},
		&Ipaddress{},
		&Cname{},
		&Txt{},
		&PtrOverride{},
		&Naptr{},
		&Ns{},
		&Srv{},
		&Subnet{},
		&Zone{},
		&ModelChangeLog{},
		&Label{},
	}
}
