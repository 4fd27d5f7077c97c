// Package climate resolves a location key to an IECC climate zone and the
// design conditions the load calculation needs, with optional read-through
// caching in front of the static lookup tables.
package climate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/hvackit/loadcalc/internal/logging"
)

// Provider resolves a location key to a climate record.
type Provider interface {
	// Lookup never fails on an unknown location: the documented default zone
	// is returned with Found=false. Errors are reserved for internal faults.
	Lookup(ctx context.Context, location string) (Record, error)
}

// StaticProvider resolves locations through the embedded zone tables using a
// prefix-narrowing chain: full key, 3-digit ZIP prefix, leading-digit region,
// then the documented default zone.
type StaticProvider struct {
	zones    map[string]Record
	prefixes map[string]string
	regions  map[byte]string
}

// NewStaticProvider returns a provider over the embedded climate tables.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		zones:    zoneData,
		prefixes: zipPrefixZones,
		regions:  zipRegionZones,
	}
}

// NewStaticProviderWithTables returns a provider over caller-supplied tables,
// used by tests to exercise the resolution chain with synthetic data.
func NewStaticProviderWithTables(
	zones map[string]Record,
	prefixes map[string]string,
	regions map[byte]string,
) *StaticProvider {
	return &StaticProvider{zones: zones, prefixes: prefixes, regions: regions}
}

// Lookup resolves location through the chain described on StaticProvider.
func (p *StaticProvider) Lookup(ctx context.Context, location string) (Record, error) {
	log := logging.FromContext(ctx)
	key := normalizeLocation(location)

	if zone, ok := p.zoneForKey(key); ok {
		rec := p.record(zone)
		rec.Location = location
		rec.Found = true
		log.Debug().
			Str("component", "climate").
			Str("location", location).
			Str("zone", rec.Zone).
			Msg("resolved climate zone")
		return rec, nil
	}

	// Nothing resolved: documented default, flagged as not found.
	rec := p.record(DefaultZone)
	rec.Location = location
	rec.Found = false
	log.Warn().
		Str("component", "climate").
		Str("location", location).
		Str("zone", DefaultZone).
		Msg("location unresolved, using default climate zone")
	return rec, nil
}

// zoneForKey walks the narrowing chain for a normalized key.
func (p *StaticProvider) zoneForKey(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	// A climate zone passed directly ("4A", "7") short-circuits the chain.
	if _, ok := p.zones[strings.ToUpper(key)]; ok {
		return strings.ToUpper(key), true
	}

	// ZIP prefix narrowing: 5 digits down to 3.
	for l := min(len(key), 5); l >= 3; l-- {
		if zone, ok := p.prefixes[key[:l]]; ok {
			return zone, true
		}
	}

	// Regional default by leading digit.
	if zone, ok := p.regions[key[0]]; ok {
		return zone, true
	}

	return "", false
}

// record returns a copy of the zone record, falling back to the default zone
// for table gaps so callers always receive usable design temperatures.
func (p *StaticProvider) record(zone string) Record {
	if rec, ok := p.zones[zone]; ok {
		return rec
	}
	return p.zones[DefaultZone]
}

// normalizeLocation strips whitespace and ZIP+4 suffixes.
func normalizeLocation(location string) string {
	key := strings.TrimSpace(location)
	if i := strings.IndexByte(key, '-'); i > 0 {
		key = key[:i]
	}
	return key
}

// CachedProvider wraps a Provider with a read-through Store. Cache failures
// are transparent: any store error falls back to the inner lookup.
type CachedProvider struct {
	inner Provider
	store Store
}

// NewCachedProvider wraps inner with the given store.
func NewCachedProvider(inner Provider, store Store) *CachedProvider {
	return &CachedProvider{inner: inner, store: store}
}

// Lookup consults the store first, then the inner provider, writing back on
// success. Only resolved records (Found=true) are cached so a table update
// can later satisfy a previously-unknown location.
func (c *CachedProvider) Lookup(ctx context.Context, location string) (Record, error) {
	log := logging.FromContext(ctx)
	key := normalizeLocation(location)

	if data, err := c.store.Get(ctx, key); err == nil {
		var rec Record
		if jsonErr := json.Unmarshal(data, &rec); jsonErr == nil {
			log.Debug().
				Str("component", "climate").
				Str("location", location).
				Str("zone", rec.Zone).
				Msg("climate cache hit")
			return rec, nil
		}
		// Corrupt entry: drop it and fall through to the inner lookup.
		_ = c.store.Delete(ctx, key)
	} else if !errors.Is(err, ErrCacheNotFound) && !errors.Is(err, ErrCacheExpired) {
		log.Warn().
			Str("component", "climate").
			Str("location", location).
			Err(err).
			Msg("climate cache read failed, falling back to direct lookup")
	}

	rec, err := c.inner.Lookup(ctx, location)
	if err != nil {
		return Record{}, err
	}

	if rec.Found {
		if data, jsonErr := json.Marshal(rec); jsonErr == nil {
			if setErr := c.store.Set(ctx, key, data); setErr != nil {
				log.Debug().
					Str("component", "climate").
					Str("location", location).
					Err(setErr).
					Msg("climate cache write failed")
			}
		}
	}

	return rec, nil
}
