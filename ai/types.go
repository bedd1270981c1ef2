package ai

// PoiKeys defines the standard catalog keys an intent parser may emit in
// must_have, nice_to_have and avoid_poi lists. Keys outside this list are
// tolerated downstream but never scored.
var PoiKeys = []string{
	"beach",
	"bts_station",
	"bus_station",
	"cafe",
	"community_mall",
	"convenience_store",
	"golf_course",
	"gym",
	"hospital",
	"hotel",
	"market",
	"mrt",
	"museum",
	"park",
	"restaurant",
	"river",
	"school",
	"shopping_mall",
	"spa",
	"supermarket",
	"temple",
	"tourist_attraction",
	"train_station",
	"university",
	"veterinary",
	"viewpoint",
}

// AssetTypeLabels defines the normalized asset type labels an intent parser
// may emit in asset_types. Each label maps to one or more database type IDs
// in the scoring configuration.
var AssetTypeLabels = []string{
	"apartment",
	"commercial_building",
	"condo",
	"condo_unit",
	"detached_house",
	"dormitory",
	"factory",
	"gas_station",
	"golf_course",
	"home_office",
	"hospital",
	"hotel",
	"house",
	"land",
	"mall",
	"market",
	"office",
	"office_building",
	"resort",
	"restaurant",
	"school",
	"shophouse",
	"showroom",
	"townhome",
	"townhouse",
	"twin_house",
	"vacant_land",
	"warehouse",
}
