package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing of the listing reference code.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, so re-ingesting
// the same listing file is idempotent.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// TriState is an explicit three-valued boolean. The zero value is Unknown,
// so a field that was never populated is distinguishable from an explicit
// true or false.
type TriState int

const (
	// TriStateUnknown means the value was not stated either way.
	TriStateUnknown TriState = iota
	// TriStateTrue is an explicit yes.
	TriStateTrue
	// TriStateFalse is an explicit no.
	TriStateFalse
)

// TriStateFromPtr converts an optional bool (as produced by JSON decoding of
// a bool|null field) into a TriState.
func TriStateFromPtr(b *bool) TriState {
	switch {
	case b == nil:
		return TriStateUnknown
	case *b:
		return TriStateTrue
	default:
		return TriStateFalse
	}
}

// Bool returns the underlying value and whether it is known.
func (t TriState) Bool() (value, known bool) {
	switch t {
	case TriStateTrue:
		return true, true
	case TriStateFalse:
		return false, true
	default:
		return false, false
	}
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// Asset represents a single real-estate listing as stored and scored.
// POI distances are kept in a map so that an absent key is distinguishable
// from a present distance; legacy sentinel values that slip through the
// ingestion layer are classified by the scoring package, never here.
type Asset struct {
	Id             ID
	Ref            string // Source reference code, unique per listing
	Name           string
	AssetTypeID    int
	AssetTypeName  string
	Price          float64 // Selling price; 0 means unset
	PetFriendly    TriState
	Latitude       *float64
	Longitude      *float64
	Village        string
	Road           string
	Description    string
	Bedrooms       int
	Bathrooms      int
	PoiDistances   map[string]float64 // Meters to nearest POI, keyed by catalog key
	PoiNames       map[string]string  // Specific place names, keyed by catalog key
	LifestyleScore float64            // 0-10 amenity density score (populated at ingestion)
	Vector         []float32          // Embedding vector for semantic retrieval
	InsertedAt     time.Time
	UpdatedAt      time.Time
}

// Coordinates returns the asset's position if both components are present.
func (a *Asset) Coordinates() (LatLng, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return LatLng{}, false
	}
	return LatLng{Lat: *a.Latitude, Lng: *a.Longitude}, true
}

// PriceRange is an inclusive price band. A nil bound is unconstrained.
type PriceRange struct {
	Min *float64
	Max *float64
}

// Bounded reports whether at least one bound is set.
func (p PriceRange) Bounded() bool {
	return p.Min != nil || p.Max != nil
}

// Contains reports whether price falls inside the range. Bounds are inclusive.
func (p PriceRange) Contains(price float64) bool {
	if p.Min != nil && price < *p.Min {
		return false
	}
	if p.Max != nil && price > *p.Max {
		return false
	}
	return true
}

// Intent is the structured preference object extracted from a free-form
// query by an external parser. POI keys that do not exist in the catalog
// are tolerated and silently ignored by the scorer.
type Intent struct {
	AssetTypes     []string // Requested type labels; empty = unconstrained
	MustHave       []string // POI keys that are hard requirements
	NiceToHave     []string // POI keys that are bonus only
	AvoidPoi       []string // POI keys that are hard-avoid
	PetFriendly    TriState // Wants / rejects / doesn't care
	PriceRange     PriceRange
	TargetLocation string // Free-text place the user wants to be near
	AvoidLocation  string // Free-text place the user wants to stay away from
}

// EmptyIntent returns an intent with no constraints. Used as the fallback
// when intent parsing fails, degrading search to semantic-only ranking.
func EmptyIntent() *Intent {
	return &Intent{}
}

// RetrievalMatch is an asset returned from vector similarity search.
type RetrievalMatch struct {
	Asset      *Asset
	Similarity float32
}
