package badger

import (
	"fmt"

	"github.com/mercil/assetrank/core"
)

// Key prefixes for different data types
const (
	assetRecordPrefix = "astrec"
	assetRefPrefix    = "astrecref"
)

// makeAssetKey generates a key for an asset by ID.
func makeAssetKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", assetRecordPrefix, id))
}

// makeAssetRefKey generates a key for the reference code index.
// Format: prefix:ref
func makeAssetRefKey(ref string) []byte {
	return []byte(fmt.Sprintf("%s:%s", assetRefPrefix, ref))
}
