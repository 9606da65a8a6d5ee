package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nameserverNames(t *testing.T, body map[string]any) []string {
	t.Helper()

	list, ok := body["nameservers"].([]any)
	require.True(t, ok, body)

	names := make([]string, 0, len(list))
	for _, ns := range list {
		names = append(names, ns.(map[string]any)["name"].(string))
	}

	return names
}

func TestZones_Nameservers(t *testing.T) {
	app, _ := setupApp(t)

	create(t, app, PathNameservers, map[string]any{"name": "ns1.example.org"})
	create(t, app, PathNameservers, map[string]any{"name": "ns2.example.org"})

	zone := create(t, app, PathZones, map[string]any{
		"name":       "example.org",
		"primary_ns": "ns1.example.org",
		"email":      "hostmaster@example.org",
		"refresh":    10800,
		"ttl":        3600,
	})
	assert.Empty(t, nameserverNames(t, zone))

	resp := call(t, app, fiber.MethodPatch, PathZones+"/1/nameservers",
		map[string]any{"nameservers": []string{"ns1.example.org", "ns2.example.org"}})
	require.Equal(t, fiber.StatusOK, resp.Status, string(resp.Body))
	assert.Equal(t, []string{"ns1.example.org", "ns2.example.org"}, nameserverNames(t, resp.object(t)))

	got := call(t, app, fiber.MethodGet, PathZones+"/1", nil)
	assert.Len(t, nameserverNames(t, got.object(t)), 2)

	// nameservers can not be written through the zone itself
	patched := call(t, app, fiber.MethodPatch, PathZones+"/1", map[string]any{"nameservers": []string{}, "ttl": -1})
	require.Equal(t, fiber.StatusOK, patched.Status, string(patched.Body))
	assert.Len(t, nameserverNames(t, patched.object(t)), 2)
	assert.Nil(t, patched.object(t)["ttl"])

	unknown := call(t, app, fiber.MethodPatch, PathZones+"/1/nameservers",
		map[string]any{"nameservers": []string{"ns9.example.org"}})
	require.Equal(t, fiber.StatusBadRequest, unknown.Status)
	assert.Contains(t, unknown.object(t), "nameservers")

	cleared := call(t, app, fiber.MethodPatch, PathZones+"/1/nameservers", map[string]any{"nameservers": []string{}})
	require.Equal(t, fiber.StatusOK, cleared.Status)
	assert.Empty(t, nameserverNames(t, cleared.object(t)))

	got = call(t, app, fiber.MethodGet, PathZones+"/1", nil)
	assert.Empty(t, nameserverNames(t, got.object(t)))
}

func TestZones_Validation(t *testing.T) {
	app, _ := setupApp(t)

	resp := call(t, app, fiber.MethodPost, PathZones, map[string]any{
		"name":       "example.org",
		"primary_ns": "ns1.example.org",
		"email":      "not-an-email",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.Status)
	assert.Contains(t, resp.object(t), "email")
}
