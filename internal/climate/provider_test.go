package climate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderChain(t *testing.T) {
	provider := NewStaticProvider()

	tests := []struct {
		name      string
		location  string
		wantZone  string
		wantFound bool
	}{
		{name: "zone label direct", location: "5B", wantZone: "5B", wantFound: true},
		{name: "lowercase zone label", location: "4a", wantZone: "4A", wantFound: true},
		{name: "denver zip prefix", location: "80301", wantZone: "5B", wantFound: true},
		{name: "miami zip prefix", location: "33101", wantZone: "1A", wantFound: true},
		{name: "zip plus four stripped", location: "60601-1234", wantZone: "5A", wantFound: true},
		{name: "regional fallback", location: "59999", wantZone: "6A", wantFound: true},
		{name: "unresolvable defaults", location: "X9X9X9", wantZone: DefaultZone, wantFound: false},
		{name: "empty defaults", location: "", wantZone: DefaultZone, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := provider.Lookup(context.Background(), tt.location)
			require.NoError(t, err)
			assert.Equal(t, tt.wantZone, rec.Zone)
			assert.Equal(t, tt.wantFound, rec.Found)
			assert.Equal(t, tt.location, rec.Location)
			require.NoError(t, rec.Validate(), "every returned record must be usable")
		})
	}
}

func TestStaticProviderSyntheticTables(t *testing.T) {
	provider := NewStaticProviderWithTables(
		map[string]Record{
			"4A": {Zone: "4A", HeatingDesignTempF: 17, CoolingDesignTempF: 91},
			"2A": {Zone: "2A", HeatingDesignTempF: 29, CoolingDesignTempF: 94},
		},
		map[string]string{"123": "2A"},
		map[byte]string{'9': "2A"},
	)

	t.Run("PrefixBeatsRegion", func(t *testing.T) {
		rec, err := provider.Lookup(context.Background(), "12345")
		require.NoError(t, err)
		assert.Equal(t, "2A", rec.Zone)
		assert.True(t, rec.Found)
	})

	t.Run("RegionCatches", func(t *testing.T) {
		rec, err := provider.Lookup(context.Background(), "98765")
		require.NoError(t, err)
		assert.Equal(t, "2A", rec.Zone)
	})

	t.Run("MissDefaultsWithFoundFalse", func(t *testing.T) {
		rec, err := provider.Lookup(context.Background(), "55555")
		require.NoError(t, err)
		assert.Equal(t, "4A", rec.Zone)
		assert.False(t, rec.Found)
	})
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		wantErr bool
	}{
		{name: "valid", rec: Record{Zone: "4A", HeatingDesignTempF: 17, CoolingDesignTempF: 91}},
		{name: "empty zone", rec: Record{HeatingDesignTempF: 17, CoolingDesignTempF: 91}, wantErr: true},
		{name: "no temps", rec: Record{Zone: "4A"}, wantErr: true},
		{name: "inverted temps", rec: Record{Zone: "4A", HeatingDesignTempF: 95, CoolingDesignTempF: 91}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingDesignTemps)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestZoneNumber(t *testing.T) {
	assert.Equal(t, 5, ZoneNumber("5B"))
	assert.Equal(t, 7, ZoneNumber("7"))
	assert.Equal(t, 4, ZoneNumber(""))
	assert.Equal(t, 4, ZoneNumber("X2"))
}

// failStore errors on every operation, exercising the cache-transparency
// contract.
type failStore struct{}

func (failStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("down") }
func (failStore) Set(context.Context, string, []byte) error   { return errors.New("down") }
func (failStore) Delete(context.Context, string) error        { return nil }

func TestCachedProvider(t *testing.T) {
	t.Run("ReadThrough", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), 0)
		require.NoError(t, err)

		cached := NewCachedProvider(NewStaticProvider(), store)

		first, err := cached.Lookup(context.Background(), "80301")
		require.NoError(t, err)
		assert.Equal(t, "5B", first.Zone)

		// Second lookup is served from the store.
		second, err := cached.Lookup(context.Background(), "80301")
		require.NoError(t, err)
		assert.Equal(t, first.Zone, second.Zone)

		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("UnresolvedNotCached", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), 0)
		require.NoError(t, err)

		cached := NewCachedProvider(NewStaticProvider(), store)
		rec, err := cached.Lookup(context.Background(), "X9X9X9")
		require.NoError(t, err)
		assert.False(t, rec.Found)

		count, err := store.Count()
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("StoreFailureFallsBack", func(t *testing.T) {
		cached := NewCachedProvider(NewStaticProvider(), failStore{})
		rec, err := cached.Lookup(context.Background(), "80301")
		require.NoError(t, err)
		assert.Equal(t, "5B", rec.Zone)
	})

	t.Run("CorruptEntryDropped", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir, 0)
		require.NoError(t, err)
		require.NoError(t, store.Set(context.Background(), "80301", []byte(`"not a record"`)))

		cached := NewCachedProvider(NewStaticProvider(), store)
		rec, err := cached.Lookup(context.Background(), "80301")
		require.NoError(t, err)
		assert.Equal(t, "5B", rec.Zone)
	})
}
