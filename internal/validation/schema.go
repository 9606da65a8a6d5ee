package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FieldType is the wire type a field value is coerced to.
type FieldType int

const (
	// TypeString accepts JSON strings.
	TypeString FieldType = iota
	// TypeInt accepts integral JSON numbers and numeric strings, coerced to int64.
	TypeInt
	// TypeBool accepts JSON booleans and "true"/"false".
	TypeBool
	// TypeTime accepts RFC 3339 strings, coerced to time.Time.
	TypeTime
	// TypeRef is an integer identifier of another record, coerced to int64.
	TypeRef
	// TypeJSON accepts any JSON value, kept as json.RawMessage.
	TypeJSON
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeTime:
		return "time"
	case TypeRef:
		return "ref"
	case TypeJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Field describes one declared key of a record schema.
type Field struct {
	Name     string
	Type     FieldType
	Required bool   // must be present on create and may never be null
	ReadOnly bool   // declared for output, dropped from input
	TTL      bool   // range checked with ValidateTTL
	Rules    string // go-playground/validator tag applied to non-nil values
}

// Payload is a validated and normalized write payload keyed by field name.
type Payload map[string]any

// Has reports whether key is present, including present-but-nil values.
func (p Payload) Has(key string) bool {
	_, ok := p[key]

	return ok
}

// Int returns the int64 stored at key, or nil when absent or null.
func (p Payload) Int(key string) *int64 {
	if v, ok := p[key].(int64); ok {
		return &v
	}

	return nil
}

// String returns the string stored at key and whether it was set.
func (p Payload) String(key string) (string, bool) {
	v, ok := p[key].(string)

	return v, ok
}

// Schema is the static field descriptor of one record kind.
type Schema struct {
	entity string
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema. It panics on duplicate field names, schemas are built at startup.
func NewSchema(entity string, fields ...Field) *Schema {
	s := &Schema{
		entity: entity,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("validation: duplicate field %q in schema %s", f.Name, entity))
		}

		s.index[f.Name] = i
	}

	return s
}

// Entity returns the record kind name.
func (s *Schema) Entity() string {
	return s.entity
}

// Field returns the declared field called name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Declares reports whether name is a declared field.
func (s *Schema) Declares(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Declared returns every declared field name in declaration order.
func (s *Schema) Declared() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}

	return names
}

// Writable returns the names of fields accepted as input, in declaration order.
func (s *Schema) Writable() []string {
	names := make([]string, 0, len(s.fields))

	for _, f := range s.fields {
		if !f.ReadOnly {
			names = append(names, f.Name)
		}
	}

	return names
}

// Validate runs the pipeline on raw. On partial (update) validation required
// fields may be omitted, but still may not be set to null.
func (s *Schema) Validate(raw map[string]any, partial bool) (Payload, error) {
	if err := CheckKeys(raw, s); err != nil {
		return nil, err
	}

	normalized := Normalize(raw)
	out := make(Payload, len(normalized))

	for _, f := range s.fields {
		if f.ReadOnly {
			continue
		}

		v, present := normalized[f.Name]
		if !present {
			if f.Required && !partial {
				return nil, &FieldError{Field: f.Name, Tag: TagRequired}
			}

			continue
		}

		if v == nil {
			if f.Required {
				return nil, &FieldError{Field: f.Name, Tag: TagNotNull}
			}

			out[f.Name] = nil

			continue
		}

		cv, err := coerce(f, v)
		if err != nil {
			return nil, err
		}

		if cv != nil {
			if err = checkRules(f, cv); err != nil {
				return nil, err
			}
		}

		if f.TTL {
			var ttl *int64
			if i, ok := cv.(int64); ok {
				ttl = &i
			}

			if err = ValidateTTL(f.Name, ttl); err != nil {
				return nil, err
			}
		}

		out[f.Name] = cv
	}

	return out, nil
}

// coerce converts v to the field's type. Integer fields that decode to the
// Unset sentinel (for example the string "-1") become nil.
func coerce(f Field, v any) (any, error) {
	typeErr := &FieldError{Field: f.Name, Tag: TagType, Value: v}

	switch f.Type {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, typeErr
		}

		return s, nil

	case TypeInt, TypeRef:
		i, ok := toInt(v)
		if !ok {
			return nil, typeErr
		}

		if i == Unset {
			return nil, nil
		}

		return i, nil

	case TypeBool:
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			pb, err := strconv.ParseBool(b)
			if err != nil {
				return nil, typeErr
			}

			return pb, nil
		default:
			return nil, typeErr
		}

	case TypeTime:
		switch t := v.(type) {
		case time.Time:
			return t, nil
		case string:
			pt, err := time.Parse(time.RFC3339, t)
			if err != nil {
				return nil, typeErr
			}

			return pt, nil
		default:
			return nil, typeErr
		}

	case TypeJSON:
		if raw, ok := v.(json.RawMessage); ok {
			return raw, nil
		}

		b, err := json.Marshal(v)
		if err != nil {
			return nil, typeErr
		}

		return json.RawMessage(b), nil

	default:
		return nil, typeErr
	}
}

func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true //nolint:gosec // ids and ttls fit
	case uint32:
		return int64(t), true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}

		return int64(t), true
	case float64:
		if t != math.Trunc(t) || t > math.MaxInt64 || t < math.MinInt64 {
			return 0, false
		}

		return int64(t), true
	case json.Number:
		i, err := t.Int64()

		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)

		return i, err == nil
	default:
		return 0, false
	}
}
