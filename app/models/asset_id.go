package models

import "strings"

// Asset ids in the purchase ledger are either a raw product id or a
// "bundle-<id>" composite marking a bundle purchase.
const bundleAssetPrefix = "bundle-"

func BundleAssetID(bundleID string) string {
	return bundleAssetPrefix + bundleID
}

// ParseAssetID splits a ledger asset id into its underlying catalog id and
// whether it refers to a bundle.
func ParseAssetID(assetID string) (id string, isBundle bool) {
	if strings.HasPrefix(assetID, bundleAssetPrefix) {
		return strings.TrimPrefix(assetID, bundleAssetPrefix), true
	}
	return assetID, false
}
