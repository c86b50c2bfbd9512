package diplomacy

import "testing"

func buildVerdictFor(results []ResolvedBuildOrder, location string, t BuildOrderType) BuildVerdict {
	for _, r := range results {
		if r.Order.Location == location && r.Order.Type == t {
			return r.Verdict
		}
	}
	return BuildVerdict(-1)
}

// TestResolveBuildOrders_VerdictBranches drives one order at a time through
// adjudicateBuild/adjudicateDisband and checks the verdict branches in its
// table, which TestBuildScenario_HomeCenterSucceedsNonHomeCenterInvalid in
// scenarios_test.go doesn't already exercise. BuildAllBuildsUsed and
// DisbandAllDisbandsUsed are not covered by either test.
func TestResolveBuildOrders_VerdictBranches(t *testing.T) {
	m := StandardMap()

	cases := []struct {
		name     string
		units    []Unit
		scs      map[string]Power
		lastTime map[string]Power
		order    BuildOrder
		want     BuildVerdict
	}{
		{
			name: "waived_build_consumes_a_build_without_placing_a_unit",
			scs:  map[string]Power{"par": France, "mar": France, "bre": France, "spa": France},
			order: BuildOrder{Power: France, Type: WaiveBuild},
			want:  BuildSucceeds,
		},
		{
			name: "home_center_still_held_by_another_power_is_foreign_controlled",
			scs:  map[string]Power{"par": France, "mar": France, "bre": Germany},
			order: BuildOrder{Power: France, Type: BuildUnit, UnitType: Army, Location: "bre"},
			want:  BuildForeignControlled,
		},
		{
			name:  "home_center_already_occupied_this_phase_is_occupied_province",
			units: []Unit{{Army, France, "par", NoCoast}},
			scs:   map[string]Power{"par": France, "mar": France, "bre": France, "spa": France},
			order: BuildOrder{Power: France, Type: BuildUnit, UnitType: Army, Location: "par"},
			want:  BuildOccupiedProvince,
		},
		{
			name:  "fleet_cannot_be_built_in_an_inland_home_center",
			scs:   map[string]Power{"par": France, "mar": France, "bre": France},
			order: BuildOrder{Power: France, Type: BuildUnit, UnitType: Fleet, Location: "par"},
			want:  BuildInvalidTerrain,
		},
		{
			name: "a_power_with_no_delta_cannot_build",
			scs:  map[string]Power{"par": France},
			units: []Unit{
				{Army, France, "par", NoCoast},
			},
			order: BuildOrder{Power: France, Type: BuildUnit, UnitType: Army, Location: "mar"},
			want:  BuildRedeploymentProhibited,
		},
		{
			// bur and gas are not supply centers, so France owns none and
			// owes two forced disbands; lastTime only needs a throwaway
			// entry to satisfy ResolveBuildOrders' non-empty precondition.
			name:     "disbanding_a_province_with_no_unit_is_nonexistent_unit",
			scs:      map[string]Power{},
			lastTime: map[string]Power{"mos": Russia},
			units:    []Unit{{Army, France, "bur", NoCoast}, {Army, France, "gas", NoCoast}},
			order:    BuildOrder{Power: France, Type: DisbandUnit, Location: "spa"},
			want:     DisbandNonexistentUnit,
		},
		{
			name:     "disbanding_another_powers_unit_is_foreign_unit",
			scs:      map[string]Power{},
			lastTime: map[string]Power{"mos": Russia},
			units:    []Unit{{Army, France, "bur", NoCoast}, {Army, France, "gas", NoCoast}, {Army, Germany, "bre", NoCoast}},
			order:    BuildOrder{Power: France, Type: DisbandUnit, Location: "bre"},
			want:     DisbandForeignUnit,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gs := &GameState{Year: 1901, Season: Fall, Phase: PhaseBuild, Units: tc.units, SupplyCenters: tc.scs}
			lastTime := tc.lastTime
			if lastTime == nil {
				lastTime = tc.scs
			}
			results, _ := ResolveBuildOrders([]BuildOrder{tc.order}, gs, lastTime, m)
			if got := buildVerdictFor(results, tc.order.Location, tc.order.Type); got != tc.want {
				t.Errorf("%s = %s, want %s", tc.name, got, tc.want)
			}
		})
	}
}

// TestResolveBuildOrders_CivilDisorder checks that a power short on disband
// orders loses its excess units automatically rather than the phase
// stalling on missing input, farthest from home first.
func TestResolveBuildOrders_CivilDisorder(t *testing.T) {
	m := StandardMap()
	gs := &GameState{
		Year:   1901,
		Season: Fall,
		Phase:  PhaseBuild,
		Units: []Unit{
			{Army, France, "pic", NoCoast},
			{Army, France, "ruh", NoCoast},
			{Army, France, "bur", NoCoast},
			{Army, France, "gas", NoCoast},
		},
		SupplyCenters: map[string]Power{"par": France, "mar": France}, // down to 2 SCs, 4 units
	}
	lastTime := map[string]Power{"par": France, "mar": France}

	results, _ := ResolveBuildOrders(nil, gs, lastTime, m)

	autoDisbanded := 0
	for _, r := range results {
		if r.Order.Type == DisbandUnit && r.Verdict == BuildSucceeds {
			autoDisbanded++
		}
	}
	if want := 2; autoDisbanded != want {
		t.Errorf("civil disorder auto-disbanded %d units, want %d", autoDisbanded, want)
	}
}
