package diplomacy

// BuildOrderType represents a build-phase order.
type BuildOrderType int

const (
	BuildUnit   BuildOrderType = iota // Build a new unit
	DisbandUnit                       // Disband an existing unit
	WaiveBuild                        // Voluntarily skip a build
)

// BuildOrder represents an order given during the winter build/disband
// phase, per spec.md §3: (Power, UnitType, Region, {Build | Disband}).
// WaiveBuild is a third, non-spec-named but standard-rules command that
// lets a power decline an available build: it uses up one build without
// placing a unit and is adjudicated like a build order (BuildSucceeds,
// BuildRedeploymentProhibited or BuildAllBuildsUsed).
type BuildOrder struct {
	Power    Power
	Type     BuildOrderType
	UnitType UnitType // Type of unit to build or disband
	Location string   // Province to build in or disband from
	Coast    Coast    // Coast for fleet builds on split-coast provinces
}

// BuildVerdict enumerates the named build-phase outcomes from spec.md §4.4.
type BuildVerdict int

const (
	// BuildSucceeds: the order is legal and applied.
	BuildSucceeds BuildVerdict = iota
	// BuildRedeploymentProhibited: the nation has no delta, or the order's
	// direction (build vs. disband) disagrees with the delta's sign.
	BuildRedeploymentProhibited
	// BuildInvalidProvince: a build order targets a province that is not
	// one of the nation's home supply centers.
	BuildInvalidProvince
	// BuildForeignControlled: a build order targets a home SC currently
	// owned by another nation.
	BuildForeignControlled
	// BuildOccupiedProvince: a friendly unit already stands there, whether
	// it was there when the phase began or was built there earlier this
	// phase.
	BuildOccupiedProvince
	// BuildInvalidTerrain: the unit type cannot occupy the region (e.g. a
	// fleet ordered built in an inland province).
	BuildInvalidTerrain
	// BuildAllBuildsUsed: the nation's build quota (delta) is exhausted.
	BuildAllBuildsUsed
	// DisbandNonexistentUnit: no unit stands in the disband order's province.
	DisbandNonexistentUnit
	// DisbandForeignUnit: the unit in the disband order's province belongs
	// to another nation.
	DisbandForeignUnit
	// DisbandAllDisbandsUsed: the nation's forced-disband quota is exhausted.
	DisbandAllDisbandsUsed
)

func (v BuildVerdict) String() string {
	switch v {
	case BuildSucceeds:
		return "succeeds"
	case BuildRedeploymentProhibited:
		return "redeployment prohibited"
	case BuildInvalidProvince:
		return "invalid province"
	case BuildForeignControlled:
		return "foreign controlled"
	case BuildOccupiedProvince:
		return "occupied province"
	case BuildInvalidTerrain:
		return "invalid terrain"
	case BuildAllBuildsUsed:
		return "all builds used"
	case DisbandNonexistentUnit:
		return "disbanding nonexistent unit"
	case DisbandForeignUnit:
		return "disbanding foreign unit"
	case DisbandAllDisbandsUsed:
		return "all disbands used"
	default:
		return "unknown"
	}
}

// Succeeds converts a BuildVerdict to the simplified {Succeeds, Fails}
// form spec.md §8 requires.
func (v BuildVerdict) Succeeds() bool {
	return v == BuildSucceeds
}

// ResolvedBuildOrder pairs a build order with its verdict.
type ResolvedBuildOrder struct {
	Order   BuildOrder
	Verdict BuildVerdict
}
