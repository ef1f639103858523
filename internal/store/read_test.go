package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAssets(t *testing.T, s *Store) {
	t.Helper()
	for _, a := range []Asset{
		{Name: "Desk", Quantity: 5, InventoryTag: "INV-001", Location: "101", Custodian: "Ivanov I.I."},
		{Name: "Chair", Quantity: 30, InventoryTag: "INV-002", Location: "101", Custodian: "Ivanov I.I."},
		{Name: "Projector", Quantity: 1, InventoryTag: "INV-003", Location: "Desk storage", Custodian: "Petrov P.P."},
		{Name: "100% cotton curtain", Quantity: 4, InventoryTag: "INV-004", Location: "Hall_2", Custodian: "Staff"},
	} {
		_, err := s.InsertAsset(t.Context(), a)
		require.NoError(t, err)
	}
}

func tags(assets []Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.InventoryTag)
	}
	return out
}

func TestSearchAssets(t *testing.T) {
	s, _ := createInitializedStore(t)
	seedAssets(t, s)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"by name", "Chair", []string{"INV-002"}},
		{"by location", "101", []string{"INV-001", "INV-002"}},
		{"name or location", "Desk", []string{"INV-001", "INV-003"}},
		{"substring", "ject", []string{"INV-003"}},
		{"case sensitive", "desk", []string{}},
		{"percent is literal", "%", []string{"INV-004"}},
		{"underscore is literal", "l_", []string{"INV-004"}},
		{"quote is literal", "'", []string{}},
		{"empty term matches all", "", []string{"INV-001", "INV-002", "INV-003", "INV-004"}},
		{"no match", "Piano", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assets, err := s.SearchAssets(t.Context(), tt.term)
			require.NoError(t, err)
			require.NotNil(t, assets)
			assert.Equal(t, tt.want, tags(assets))
		})
	}
}

func TestSearchAssets_BeforeSchema(t *testing.T) {
	s, _ := createTestStore(t)

	assets, err := s.SearchAssets(t.Context(), "Desk")
	require.Error(t, err)
	assert.Nil(t, assets)
	assert.True(t, errors.Is(err, ErrStatement))
}

func TestGetAsset_NotFound(t *testing.T) {
	s, _ := createInitializedStore(t)

	_, err := s.GetAsset(t.Context(), "INV-404")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListRoomIdentifiers(t *testing.T) {
	s, _ := createInitializedStore(t)

	ids, err := s.ListRoomIdentifiers(t.Context())
	require.NoError(t, err)
	require.Len(t, ids, 25)
	assert.Equal(t, "1", ids[0])
	assert.Equal(t, "27", ids[24])
	assert.NotContains(t, ids, "5")
	assert.NotContains(t, ids, "23")
}

func TestListRooms(t *testing.T) {
	s, _ := createInitializedStore(t)

	rooms, err := s.ListRooms(t.Context())
	require.NoError(t, err)
	require.Len(t, rooms, 25)

	first := rooms[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "1", first.Number)
	assert.Equal(t, "A", first.Building)
	assert.Equal(t, 1, first.Floor)
	assert.Equal(t, "History", first.Purpose)
	assert.Empty(t, first.Responsible)
}

func TestListRooms_AssetOperationsDoNotTouchRooms(t *testing.T) {
	s, _ := createInitializedStore(t)
	ctx := t.Context()

	before, err := s.ListRooms(ctx)
	require.NoError(t, err)

	seedAssets(t, s)
	require.NoError(t, s.UpdateAsset(ctx, "INV-001", 1, "27", "Staff"))
	require.NoError(t, s.RemoveAsset(ctx, "INV-002"))

	after, err := s.ListRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAsset_Fields(t *testing.T) {
	a := Asset{ID: 9, Name: "Desk", Quantity: 12, InventoryTag: "INV-9", Location: "3", Custodian: "X"}
	assert.Equal(t, []string{"Desk", "12", "INV-9", "3", "X"}, a.Fields())
}
