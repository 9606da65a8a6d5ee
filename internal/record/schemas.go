package record

import (
	v "github.com/mreg-project/mreg/internal/validation"
)

// Field names shared by several schemas.
const (
	FieldHostID = "hostid"
	FieldTTL    = "ttl"
	FieldName   = "name"
	FieldHinfo  = "hinfo"

	// FieldHinfoID is the id key of a hinfo preset.
	FieldHinfoID = "hinfoid"
)

// Entity names, also used as metric labels.
const (
	EntityCname          = "cname"
	EntityHinfoPreset    = "hinfopreset"
	EntityIpaddress      = "ipaddress"
	EntityTxt            = "txt"
	EntityPtrOverride    = "ptr_override"
	EntityNaptr          = "naptr"
	EntityNs             = "ns"
	EntitySrv            = "srv"
	EntitySubnet         = "subnet"
	EntityZone           = "zone"
	EntityHost           = "host"
	EntityModelChangeLog = "modelchangelog"
	EntityLabel          = "label"
)

const (
	ruleDNSName = v.TagDNSName
	ruleRef     = "min=1"
	rule16Bit   = "min=0,max=65535"
)

func hostRef() v.Field {
	return v.Field{Name: FieldHostID, Type: v.TypeRef, Required: true, Rules: ruleRef}
}

func ttl() v.Field {
	return v.Field{Name: FieldTTL, Type: v.TypeInt, TTL: true}
}

// CnameSchema declares the cname fields.
var CnameSchema = v.NewSchema(EntityCname,
	v.Field{Name: "cnameid", Type: v.TypeInt, ReadOnly: true},
	hostRef(),
	v.Field{Name: "cname", Type: v.TypeString, Required: true, Rules: ruleDNSName},
	ttl(),
)

// HinfoPresetSchema declares the hinfo preset fields.
var HinfoPresetSchema = v.NewSchema(EntityHinfoPreset,
	v.Field{Name: FieldHinfoID, Type: v.TypeInt, ReadOnly: true},
	v.Field{Name: "cpu", Type: v.TypeString, Required: true, Rules: "min=1,max=64"},
	v.Field{Name: "os", Type: v.TypeString, Required: true, Rules: "min=1,max=64"},
)

// IpaddressSchema declares exactly the writable ipaddress fields, nothing else is accepted.
var IpaddressSchema = v.NewSchema(EntityIpaddress,
	hostRef(),
	v.Field{Name: "ipaddress", Type: v.TypeString, Required: true, Rules: "ip"},
	v.Field{Name: "macaddress", Type: v.TypeString, Rules: "mac"},
)

// TxtSchema declares the txt fields.
var TxtSchema = v.NewSchema(EntityTxt,
	v.Field{Name: "txtid", Type: v.TypeInt, ReadOnly: true},
	hostRef(),
	v.Field{Name: "txt", Type: v.TypeString, Required: true, Rules: "min=1"},
	ttl(),
)

// PtrOverrideSchema declares the ptr override fields.
var PtrOverrideSchema = v.NewSchema(EntityPtrOverride,
	v.Field{Name: "ptr_overrideid", Type: v.TypeInt, ReadOnly: true},
	hostRef(),
	v.Field{Name: "ipaddress", Type: v.TypeString, Required: true, Rules: "ip"},
)

// NaptrSchema declares the naptr fields.
var NaptrSchema = v.NewSchema(EntityNaptr,
	v.Field{Name: "naptrid", Type: v.TypeInt, ReadOnly: true},
	hostRef(),
	v.Field{Name: "orderv", Type: v.TypeInt, Required: true, Rules: rule16Bit},
	v.Field{Name: "preference", Type: v.TypeInt, Required: true, Rules: rule16Bit},
	v.Field{Name: "flag", Type: v.TypeString, Rules: "max=1"},
	v.Field{Name: "service", Type: v.TypeString, Rules: "max=128"},
	v.Field{Name: "regex", Type: v.TypeString, Rules: "max=128"},
	v.Field{Name: "replacement", Type: v.TypeString, Required: true, Rules: ruleDNSName},
)

// NsSchema declares the nameserver fields.
var NsSchema = v.NewSchema(EntityNs,
	v.Field{Name: "nsid", Type: v.TypeInt, ReadOnly: true},
	v.Field{Name: FieldName, Type: v.TypeString, Required: true, Rules: ruleDNSName},
	ttl(),
)

// SrvSchema declares the srv fields.
var SrvSchema = v.NewSchema(EntitySrv,
	v.Field{Name: "srvid", Type: v.TypeInt, ReadOnly: true},
	v.Field{Name: "service", Type: v.TypeString, Required: true, Rules: ruleDNSName},
	v.Field{Name: "priority", Type: v.TypeInt, Required: true, Rules: rule16Bit},
	v.Field{Name: "weight", Type: v.TypeInt, Required: true, Rules: rule16Bit},
	v.Field{Name: "port", Type: v.TypeInt, Required: true, Rules: "min=1,max=65535"},
	v.Field{Name: "target", Type: v.TypeString, Required: true, Rules: ruleDNSName},
	ttl(),
)

// SubnetSchema declares the subnet fields.
var SubnetSchema = v.NewSchema(EntitySubnet,
	v.Field{Name: "subnetid", Type: v.TypeInt, ReadOnly: true},
	v.Field{Name: "range", Type: v.TypeString, Required: true, Rules: "cidr"},
	v.Field{Name: "description", Type: v.TypeString, Required: true, Rules: "max=255"},
	v.Field{Name: "vlan", Type: v.TypeInt, Rules: "min=0,max=4095"},
	v.Field{Name: "dns_delegated", Type: v.TypeBool},
	v.Field{Name: "category", Type: v.TypeString, Rules: "max=32"},
	v.Field{Name: "location", Type: v.TypeString, Rules: "max=255"},
	v.Field{Name: "frozen", Type: v.TypeBool},
	v.Field{Name: "reserved", Type: v.TypeInt, Rules: "min=0"},
)

// ZoneSchema declares the zone fields. nameservers is an output only projection.
var ZoneSchema = v.NewSchema(EntityZone,
	v.Field{Name: "zoneid", Type: v.TypeInt, ReadOnly: true},
	v.Field{Name: FieldName, Type: v.TypeString, Required: true, Rules: ruleDNSName},
	v.Field{Name: "primary_ns", Type: v.TypeString, Required: true, Rules: ruleDNSName},
	v.Field{Name: "email", Type: v.TypeString, Required: true, Rules: "email"},
	v.Field{Name: "serialno", Type: v.TypeInt, Rules: "min=0"},
	v.Field{Name: "refresh", Type: v.TypeInt, Rules: "min=0"},
	v.Field{Name: "retry", Type: v.TypeInt, Rules: "min=0"},
	v.Field{Name: "expire", Type: v.TypeInt, Rules: "min=0"},
	ttl(),
	v.Field{Name: "nameservers", Type: v.TypeJSON, ReadOnly: true},
)

// HostSchema declares the host fields. The nested listings are output only. hinfo is
// written as a preset id; HostValidator also takes the preset object a read returns.
var HostSchema = v.NewSchema(EntityHost,
	v.Field{Name: "hostid", Type: v.TypeInt, ReadOnly: true},
	v.Field{Name: FieldName, Type: v.TypeString, Required: true, Rules: ruleDNSName},
	v.Field{Name: "contact", Type: v.TypeString, Required: true, Rules: "email"},
	ttl(),
	v.Field{Name: FieldHinfo, Type: v.TypeRef},
	v.Field{Name: "loc", Type: v.TypeString, Rules: "max=255"},
	v.Field{Name: "comment", Type: v.TypeString},
	v.Field{Name: "cname", Type: v.TypeJSON, ReadOnly: true},
	v.Field{Name: "ipaddress", Type: v.TypeJSON, ReadOnly: true},
	v.Field{Name: "txt", Type: v.TypeJSON, ReadOnly: true},
	v.Field{Name: "ptr_override", Type: v.TypeJSON, ReadOnly: true},
)

// HostNameSchema declares the single field accepted by a host rename.
var HostNameSchema = v.NewSchema(EntityHost,
	v.Field{Name: FieldName, Type: v.TypeString, Required: true, Rules: ruleDNSName},
)

// ModelChangeLogSchema declares the change log fields.
var ModelChangeLogSchema = v.NewSchema(EntityModelChangeLog,
	v.Field{Name: "id", Type: v.TypeInt, ReadOnly: true},
	v.Field{Name: "table_name", Type: v.TypeString, Required: true, Rules: "min=1,max=132"},
	v.Field{Name: "table_row", Type: v.TypeInt, Required: true, Rules: ruleRef},
	v.Field{Name: "data", Type: v.TypeJSON, Required: true},
	v.Field{Name: "action", Type: v.TypeString, Required: true, Rules: "min=1,max=16"},
	v.Field{Name: "timestamp", Type: v.TypeTime, Required: true},
)

// LabelSchema declares the label fields.
var LabelSchema = v.NewSchema(EntityLabel,
	v.Field{Name: "id", Type: v.TypeInt, ReadOnly: true},
	v.Field{Name: FieldName, Type: v.TypeString, Required: true, Rules: "min=1,max=100"},
	v.Field{Name: "description", Type: v.TypeString, Required: true, Rules: "max=255"},
)
