package repository

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreg-project/mreg/internal/db/dbtest"
	"github.com/mreg-project/mreg/internal/db/models"
)

func TestRepository_NilDB(t *testing.T) {
	ctx := context.Background()
	repo := New[models.Label](nil)

	_, err := repo.FindByID(ctx, 1)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = repo.FindByName(ctx, "x")
	require.ErrorIs(t, err, ErrDBNil)

	_, err = repo.ExistsByName(ctx, "x")
	require.ErrorIs(t, err, ErrDBNil)

	_, _, err = repo.List(ctx, 1, 10)
	require.ErrorIs(t, err, ErrDBNil)

	require.ErrorIs(t, repo.Create(ctx, &models.Label{}), ErrDBNil)
	require.ErrorIs(t, repo.Save(ctx, &models.Label{}), ErrDBNil)
	require.ErrorIs(t, repo.Delete(ctx, 1), ErrDBNil)
	require.ErrorIs(t, repo.DeleteByName(ctx, "x"), ErrDBNil)
}

func TestRepository_LabelLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := New[models.Label](dbtest.Open(t))

	label := &models.Label{Name: "core-network", Description: "core"}
	require.NoError(t, repo.Create(ctx, label))
	assert.NotZero(t, label.ID)

	exists, err := repo.ExistsByName(ctx, "core-network")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "edge")
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := repo.FindByName(ctx, "core-network")
	require.NoError(t, err)
	assert.Equal(t, label.ID, got.ID)

	_, err = repo.FindByName(ctx, "")
	require.ErrorIs(t, err, ErrNameEmpty)

	got.Description = "backbone"
	require.NoError(t, repo.Save(ctx, got))

	got, err = repo.FindByID(ctx, label.ID)
	require.NoError(t, err)
	assert.Equal(t, "backbone", got.Description)

	require.NoError(t, repo.DeleteByName(ctx, "core-network"))
	require.ErrorIs(t, repo.DeleteByName(ctx, "core-network"), ErrRecordNotFound)

	_, err = repo.FindByID(ctx, label.ID)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_ListPaging(t *testing.T) {
	ctx := context.Background()
	repo := New[models.Ns](dbtest.Open(t))

	for _, name := range []string{"ns1.example.org", "ns2.example.org", "ns3.example.org"} {
		require.NoError(t, repo.Create(ctx, &models.Ns{Name: name}))
	}

	testCases := []struct {
		name      string
		page      int
		pageSize  int
		wantNames []string
	}{
		{"first page", 1, 2, []string{"ns1.example.org", "ns2.example.org"}},
		{"second page", 2, 2, []string{"ns3.example.org"}},
		{"page below one is first page", 0, 1, []string{"ns1.example.org"}},
		{"past the end", 5, 2, []string{}},
		{"offset beyond int", math.MaxInt/2 + 2, 2, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, total, err := repo.List(ctx, tc.page, tc.pageSize)
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)

			names := make([]string, 0, len(items))
			for _, it := range items {
				names = append(names, it.Name)
			}

			assert.Equal(t, tc.wantNames, names)
		})
	}
}

func TestRepository_ListReferencing(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)

	hosts := New[models.Host](db)
	cnames := New[models.Cname](db)

	a := &models.Host{Name: "a.example.org", Contact: "a@example.org"}
	b := &models.Host{Name: "b.example.org", Contact: "b@example.org"}
	require.NoError(t, hosts.Create(ctx, a))
	require.NoError(t, hosts.Create(ctx, b))

	require.NoError(t, cnames.Create(ctx, &models.Cname{HostID: a.ID, Cname: "www.example.org"}))
	require.NoError(t, cnames.Create(ctx, &models.Cname{HostID: a.ID, Cname: "ftp.example.org"}))
	require.NoError(t, cnames.Create(ctx, &models.Cname{HostID: b.ID, Cname: "mail.example.org"}))

	got, err := cnames.ListReferencing(ctx, "host_id", a.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "www.example.org", got[0].Cname)

	got, err = cnames.ListReferencing(ctx, "host_id", 999)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_PreloadHinfo(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)

	presets := New[models.HinfoPreset](db)
	hosts := New[models.Host](db, WithPreload("Hinfo"))

	preset := &models.HinfoPreset{CPU: "x86_64", OS: "Linux"}
	require.NoError(t, presets.Create(ctx, preset))

	host := &models.Host{Name: "a.example.org", Contact: "a@example.org", Hinfo: preset}
	require.NoError(t, hosts.Create(ctx, host))
	require.NotNil(t, host.HinfoID)

	got, err := hosts.FindByID(ctx, host.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Hinfo)
	assert.Equal(t, "Linux", got.Hinfo.OS)

	got.Hinfo = nil
	require.NoError(t, hosts.Save(ctx, got))

	got, err = hosts.FindByID(ctx, host.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Hinfo)
	assert.Nil(t, got.HinfoID)

	// the preset itself is untouched
	_, err = presets.FindByID(ctx, preset.ID)
	require.NoError(t, err)
}

func TestRepository_ZoneNameservers(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)

	nsRepo := New[models.Ns](db)
	zones := New[models.Zone](db, WithPreload("Nameservers"))

	ns1 := &models.Ns{Name: "ns1.example.org"}
	ns2 := &models.Ns{Name: "ns2.example.org"}
	require.NoError(t, nsRepo.Create(ctx, ns1))
	require.NoError(t, nsRepo.Create(ctx, ns2))

	zone := &models.Zone{Name: "example.org", PrimaryNs: "ns1.example.org", Email: "hostmaster@example.org"}
	require.NoError(t, zones.Create(ctx, zone))

	require.NoError(t, zones.ReplaceAssociation(ctx, zone, "Nameservers", []models.Ns{*ns1, *ns2}))

	got, err := zones.FindByID(ctx, zone.ID)
	require.NoError(t, err)
	require.Len(t, got.Nameservers, 2)
	assert.Equal(t, "ns1.example.org", got.Nameservers[0].Name)

	require.NoError(t, zones.ReplaceAssociation(ctx, got, "Nameservers", []models.Ns{*ns2}))

	got, err = zones.FindByID(ctx, zone.ID)
	require.NoError(t, err)
	require.Len(t, got.Nameservers, 1)
	assert.Equal(t, "ns2.example.org", got.Nameservers[0].Name)

	require.NoError(t, zones.ClearAssociation(ctx, got, "Nameservers"))

	got, err = zones.FindByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Nameservers)

	// nameservers themselves survive
	_, err = nsRepo.FindByName(ctx, "ns2.example.org")
	require.NoError(t, err)
}
