package record

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/db/repository"
	"github.com/mreg-project/mreg/internal/validation"
)

type fakeNameservers map[string]models.Ns

func (f fakeNameservers) FindByName(_ context.Context, name string) (*models.Ns, error) {
	ns, ok := f[name]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	return &ns, nil
}

func TestZoneNameservers_Resolve(t *testing.T) {
	z := NewZoneNameservers(fakeNameservers{
		"ns1.example.org": {ID: 1, Name: "ns1.example.org"},
		"ns2.example.org": {ID: 2, Name: "ns2.example.org"},
	})
	ctx := context.Background()

	testCases := []struct {
		name    string
		raw     map[string]any
		wantIDs []uint
		wantErr error
	}{
		{
			name:    "in request order",
			raw:     map[string]any{"nameservers": []any{"ns2.example.org", "ns1.example.org"}},
			wantIDs: []uint{2, 1},
		},
		{
			name:    "duplicates collapse",
			raw:     map[string]any{"nameservers": []any{"ns1.example.org", "ns1.example.org"}},
			wantIDs: []uint{1},
		},
		{
			name:    "empty clears",
			raw:     map[string]any{"nameservers": []any{}},
			wantIDs: []uint{},
		},
		{
			name:    "unknown nameserver",
			raw:     map[string]any{"nameservers": []any{"ns9.example.org"}},
			wantErr: validation.ErrNotFound,
		},
		{
			name:    "not a list",
			raw:     map[string]any{"nameservers": "ns1.example.org"},
			wantErr: validation.ErrInvalidField,
		},
		{
			name:    "not a name",
			raw:     map[string]any{"nameservers": []any{" "}},
			wantErr: validation.ErrInvalidField,
		},
		{
			name:    "missing key",
			raw:     map[string]any{},
			wantErr: validation.ErrInvalidField,
		},
		{
			name:    "extra key",
			raw:     map[string]any{"nameservers": []any{}, "ttl": 300},
			wantErr: validation.ErrUnknownField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := z.Resolve(ctx, tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			ids := make([]uint, 0, len(got))
			for _, ns := range got {
				ids = append(ids, ns.ID)
			}

			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}
