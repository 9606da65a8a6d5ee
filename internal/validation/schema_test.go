package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func srvSchema() *Schema {
	return NewSchema("srv",
		Field{Name: "srvid", Type: TypeInt, ReadOnly: true},
		Field{Name: "service", Type: TypeString, Required: true, Rules: "max=255"},
		Field{Name: "priority", Type: TypeInt, Required: true, Rules: "min=0,max=65535"},
		Field{Name: "port", Type: TypeInt, Required: true, Rules: "min=1,max=65535"},
		Field{Name: "target", Type: TypeString, Required: true, Rules: TagDNSName},
		Field{Name: "ttl", Type: TypeInt, TTL: true},
		Field{Name: "enabled", Type: TypeBool},
		Field{Name: "seen", Type: TypeTime},
		Field{Name: "extra", Type: TypeJSON},
	)
}

func TestSchema_Validate(t *testing.T) {
	schema := srvSchema()

	base := func() map[string]any {
		return map[string]any{
			"service":  "_sip._udp.example.org",
			"priority": float64(10),
			"port":     json.Number("5060"),
			"target":   "sip.example.org",
		}
	}

	testCases := []struct {
		name    string
		mutate  func(map[string]any)
		partial bool
		wantErr error
		wantTag string
		check   func(t *testing.T, p Payload)
	}{
		{
			name: "valid create",
			check: func(t *testing.T, p Payload) {
				t.Helper()
				assert.Equal(t, int64(10), p["priority"])
				assert.Equal(t, int64(5060), p["port"])
				assert.False(t, p.Has("ttl"))
			},
		},
		{
			name:   "ttl sentinel becomes nil",
			mutate: func(m map[string]any) { m["ttl"] = float64(-1) },
			check: func(t *testing.T, p Payload) {
				t.Helper()
				assert.True(t, p.Has("ttl"))
				assert.Nil(t, p["ttl"])
				assert.Nil(t, p.Int("ttl"))
			},
		},
		{
			name:   "ttl sentinel as string becomes nil",
			mutate: func(m map[string]any) { m["ttl"] = "-1" },
			check: func(t *testing.T, p Payload) {
				t.Helper()
				assert.Nil(t, p["ttl"])
			},
		},
		{
			name:    "ttl below range",
			mutate:  func(m map[string]any) { m["ttl"] = 299 },
			wantErr: ErrRange,
		},
		{
			name:    "ttl above range",
			mutate:  func(m map[string]any) { m["ttl"] = 68401 },
			wantErr: ErrRange,
		},
		{
			name:   "ttl numeric string accepted",
			mutate: func(m map[string]any) { m["ttl"] = "3600" },
			check: func(t *testing.T, p Payload) {
				t.Helper()
				assert.Equal(t, int64(3600), *p.Int("ttl"))
			},
		},
		{
			name:    "unknown key before anything else",
			mutate:  func(m map[string]any) { m["bogus"] = 1; m["ttl"] = 1 },
			wantErr: ErrUnknownField,
		},
		{
			name:   "read only key dropped",
			mutate: func(m map[string]any) { m["srvid"] = 42 },
			check: func(t *testing.T, p Payload) {
				t.Helper()
				assert.False(t, p.Has("srvid"))
			},
		},
		{
			name:    "missing required on create",
			mutate:  func(m map[string]any) { delete(m, "target") },
			wantErr: ErrInvalidField,
			wantTag: TagRequired,
		},
		{
			name:    "missing required on update allowed",
			mutate:  func(m map[string]any) { delete(m, "target") },
			partial: true,
		},
		{
			name:    "required set to null",
			mutate:  func(m map[string]any) { m["target"] = nil },
			partial: true,
			wantErr: ErrInvalidField,
			wantTag: TagNotNull,
		},
		{
			name:    "wrong type",
			mutate:  func(m map[string]any) { m["priority"] = "high" },
			wantErr: ErrInvalidField,
			wantTag: TagType,
		},
		{
			name:    "fractional integer rejected",
			mutate:  func(m map[string]any) { m["priority"] = 1.5 },
			wantErr: ErrInvalidField,
			wantTag: TagType,
		},
		{
			name:    "port out of rule range",
			mutate:  func(m map[string]any) { m["port"] = 0 },
			wantErr: ErrInvalidField,
			wantTag: "min",
		},
		{
			name:    "invalid dns name",
			mutate:  func(m map[string]any) { m["target"] = "sip..example.org" },
			wantErr: ErrInvalidField,
			wantTag: TagDNSName,
		},
		{
			name:   "bool and time coerced",
			mutate: func(m map[string]any) { m["enabled"] = "true"; m["seen"] = "2024-01-02T03:04:05Z" },
			check: func(t *testing.T, p Payload) {
				t.Helper()
				assert.Equal(t, true, p["enabled"])
				assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), p["seen"])
			},
		},
		{
			name:   "json kept raw",
			mutate: func(m map[string]any) { m["extra"] = map[string]any{"a": 1} },
			check: func(t *testing.T, p Payload) {
				t.Helper()
				assert.JSONEq(t, `{"a":1}`, string(p["extra"].(json.RawMessage)))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := base()
			if tc.mutate != nil {
				tc.mutate(raw)
			}

			p, err := schema.Validate(raw, tc.partial)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, p)

				if tc.wantTag != "" {
					var fe *FieldError
					require.ErrorAs(t, err, &fe)
					assert.Equal(t, tc.wantTag, fe.Tag)
				}

				return
			}

			require.NoError(t, err)

			if tc.check != nil {
				tc.check(t, p)
			}
		})
	}
}

func TestSchema_Validate_Idempotent(t *testing.T) {
	schema := srvSchema()

	raw := map[string]any{
		"service":  "_sip._udp.example.org",
		"priority": float64(10),
		"port":     float64(5060),
		"target":   "sip.example.org",
		"ttl":      float64(-1),
		"extra":    []any{"x"},
	}

	first, err := schema.Validate(raw, false)
	require.NoError(t, err)

	second, err := schema.Validate(first, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSchema_Descriptors(t *testing.T) {
	schema := srvSchema()

	assert.Equal(t, "srv", schema.Entity())
	assert.Equal(t, "srvid", schema.Declared()[0])
	assert.NotContains(t, schema.Writable(), "srvid")
	assert.Contains(t, schema.Writable(), "ttl")

	f, ok := schema.Field("ttl")
	require.True(t, ok)
	assert.True(t, f.TTL)

	_, ok = schema.Field("nope")
	assert.False(t, ok)
}

func TestNewSchema_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema("x", Field{Name: "a"}, Field{Name: "a"})
	})
}

func TestDetails(t *testing.T) {
	err := &RangeError{Field: "ttl", Value: 1, Min: MinTTL, Max: MaxTTL}
	assert.Equal(t, map[string][]string{"ttl": {"Ensure this value is greater than or equal to 300."}}, Details(err))

	assert.Equal(t, map[string][]string{NonFieldErrors: {"boom"}}, Details(plainErr("boom")))
}

type plainErr string

func (e plainErr) Error() string { return string(e) }
