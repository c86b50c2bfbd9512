package diplomacy

import "testing"

// Concrete adjudication scenarios drawn from the Diplomacy Mathematics
// figures and the standard support/convoy test cases. Complements the DATC
// suite in datc_test.go with named multi-unit situations.

// DipMath Fig. 9: a three-way rotation where one leg is supported. All four
// orders succeed; nobody is dislodged since every unit vacates on its own
// successful move.
func TestDipMathFig9_CircularMovementWithSupport(t *testing.T) {
	m := StandardMap()
	gs := stateWith(
		Unit{Fleet, England, "nrg", NoCoast},
		Unit{Fleet, Germany, "nth", NoCoast},
		Unit{Fleet, Russia, "nwy", NoCoast},
		Unit{Fleet, Germany, "ska", NoCoast},
	)
	orders := []Order{
		{UnitType: Fleet, Power: England, Location: "nrg", Type: OrderMove, Target: "nth"},
		{UnitType: Fleet, Power: Germany, Location: "nth", Type: OrderMove, Target: "nwy"},
		{UnitType: Fleet, Power: Russia, Location: "nwy", Type: OrderMove, Target: "nrg"},
		{UnitType: Fleet, Power: Germany, Location: "ska", Type: OrderSupport, AuxUnitType: Fleet, AuxLoc: "nth", AuxTarget: "nwy"},
	}

	results, dislodged := ResolveOrders(orders, gs, m)

	for _, loc := range []string{"nrg", "nth", "nwy", "ska"} {
		if r := resultFor(results, loc); r != ResultSucceeded {
			t.Errorf("%s: want Succeeded, got %v", loc, r)
		}
	}
	if len(dislodged) != 0 {
		t.Errorf("circular rotation should dislodge nobody, got %d", len(dislodged))
	}
}

// DipMath Fig. 6: a supported attack beats two unsupported standoff
// attempts of equal raw strength.
func TestDipMathFig6_SupportedAttackBeatsStandoff(t *testing.T) {
	m := StandardMap()
	gs := stateWith(
		Unit{Army, Germany, "ber", NoCoast},
		Unit{Army, Germany, "mun", NoCoast},
		Unit{Army, Russia, "war", NoCoast},
		Unit{Army, Austria, "boh", NoCoast},
	)
	orders := []Order{
		{UnitType: Army, Power: Germany, Location: "ber", Type: OrderMove, Target: "sil"},
		{UnitType: Army, Power: Germany, Location: "mun", Type: OrderSupport, AuxUnitType: Army, AuxLoc: "ber", AuxTarget: "sil"},
		{UnitType: Army, Power: Russia, Location: "war", Type: OrderMove, Target: "sil"},
		{UnitType: Army, Power: Austria, Location: "boh", Type: OrderMove, Target: "sil"},
	}

	results, _ := ResolveOrders(orders, gs, m)

	if r := resultFor(results, "ber"); r != ResultSucceeded {
		t.Errorf("ber->sil: want Succeeded, got %v", r)
	}
	if r := resultFor(results, "mun"); r != ResultSucceeded {
		t.Errorf("mun support: want Succeeded, got %v", r)
	}
	if r := resultFor(results, "war"); r != ResultBounced {
		t.Errorf("war->sil: want Bounced, got %v", r)
	}
	if r := resultFor(results, "boh"); r != ResultBounced {
		t.Errorf("boh->sil: want Bounced, got %v", r)
	}
}

// DipMath Fig. 16: a supported attack on the convoying fleet's own province
// dislodges it, disrupting the convoy it was carrying.
func TestDipMathFig16_ConvoyDisruptedByDislodgedFleet(t *testing.T) {
	m := StandardMap()
	gs := stateWith(
		Unit{Fleet, Turkey, "aeg", NoCoast},
		Unit{Fleet, Turkey, "gre", NoCoast},
		Unit{Fleet, Austria, "alb", NoCoast},
		Unit{Fleet, Italy, "ion", NoCoast},
		Unit{Army, Italy, "tun", NoCoast},
	)
	orders := []Order{
		{UnitType: Fleet, Power: Turkey, Location: "aeg", Type: OrderMove, Target: "ion"},
		{UnitType: Fleet, Power: Turkey, Location: "gre", Type: OrderSupport, AuxUnitType: Fleet, AuxLoc: "aeg", AuxTarget: "ion"},
		{UnitType: Fleet, Power: Austria, Location: "alb", Type: OrderSupport, AuxUnitType: Fleet, AuxLoc: "aeg", AuxTarget: "ion"},
		{UnitType: Fleet, Power: Italy, Location: "ion", Type: OrderConvoy, AuxUnitType: Army, AuxLoc: "tun", AuxTarget: "gre"},
		{UnitType: Army, Power: Italy, Location: "tun", Type: OrderMove, Target: "gre"},
	}

	results, dislodged := ResolveOrders(orders, gs, m)

	for _, loc := range []string{"aeg", "gre", "alb"} {
		if r := resultFor(results, loc); r != ResultSucceeded {
			t.Errorf("%s: want Succeeded, got %v", loc, r)
		}
	}
	if r := resultFor(results, "ion"); r != ResultDislodged {
		t.Errorf("ion convoy: want Dislodged, got %v", r)
	}
	if r := resultFor(results, "tun"); r == ResultSucceeded {
		t.Error("tun->gre: convoy was disrupted, move must not succeed")
	}

	found := false
	for _, d := range dislodged {
		if d.Unit.Province == "ion" && d.Unit.Power == Italy {
			found = true
		}
	}
	if !found {
		t.Error("Italian fleet at ion should be in the dislodged list")
	}
}

// A support cut by an attack on the supporter leaves the supported move
// with no strength beyond its own, so it bounces off the holding unit.
func TestSupportCut_DependentMoveFailsWithoutIndependentStrength(t *testing.T) {
	m := StandardMap()
	gs := stateWith(
		Unit{Fleet, England, "nth", NoCoast},
		Unit{Fleet, England, "ska", NoCoast},
		Unit{Fleet, Germany, "hel", NoCoast},
		Unit{Fleet, Russia, "nwy", NoCoast},
	)
	orders := []Order{
		{UnitType: Fleet, Power: England, Location: "nth", Type: OrderSupport, AuxUnitType: Fleet, AuxLoc: "ska", AuxTarget: "nwy"},
		{UnitType: Fleet, Power: England, Location: "ska", Type: OrderMove, Target: "nwy"},
		{UnitType: Fleet, Power: Germany, Location: "hel", Type: OrderMove, Target: "nth"},
		{UnitType: Fleet, Power: Russia, Location: "nwy", Type: OrderHold},
	}

	results, dislodged := ResolveOrders(orders, gs, m)

	if r := resultFor(results, "nth"); r != ResultCut {
		t.Errorf("nth support: want Cut, got %v", r)
	}
	if r := resultFor(results, "ska"); r != ResultBounced {
		t.Errorf("ska->nwy: support was cut, move should bounce, got %v", r)
	}
	if r := resultFor(results, "hel"); r != ResultBounced {
		t.Errorf("hel->nth: unsupported attack on an occupied province should bounce, got %v", r)
	}
	if len(dislodged) != 0 {
		t.Errorf("nothing should be dislodged, got %d", len(dislodged))
	}
}

// A convoy whose survival depends on whether it cuts the very support that
// would otherwise dislodge its own fleet: a genuine cyclic dependency
// (the resolver must terminate rather than recurse forever). Both outcomes
// are self-consistent: if nth -> eng succeeds the convoy fails, bre -> lon
// has no route and the support stands; if it fails the convoy survives and
// its army cuts the support. adjudicate's first guess for nth -> eng
// (succeeds) evaluates consistently, so it is kept without a second guess
// and without the convoy-demotion fallback, and the outcome is the one in
// which the convoy fails.
func TestConvoyCutSupportCycle_Terminates(t *testing.T) {
	m := StandardMap()
	gs := stateWith(
		Unit{Fleet, England, "nth", NoCoast},
		Unit{Fleet, England, "lon", NoCoast},
		Unit{Fleet, France, "eng", NoCoast},
		Unit{Army, France, "bre", NoCoast},
	)
	orders := []Order{
		{UnitType: Fleet, Power: England, Location: "nth", Type: OrderMove, Target: "eng"},
		{UnitType: Fleet, Power: England, Location: "lon", Type: OrderSupport, AuxUnitType: Fleet, AuxLoc: "nth", AuxTarget: "eng"},
		{UnitType: Fleet, Power: France, Location: "eng", Type: OrderConvoy, AuxUnitType: Army, AuxLoc: "bre", AuxTarget: "lon"},
		{UnitType: Army, Power: France, Location: "bre", Type: OrderMove, Target: "lon"},
	}

	results, dislodged := ResolveOrders(orders, gs, m)

	if r := resultFor(results, "nth"); r != ResultSucceeded {
		t.Errorf("nth->eng: want Succeeded, got %v", r)
	}
	if r := resultFor(results, "lon"); r != ResultSucceeded {
		t.Errorf("lon support: want Succeeded (not cut), got %v", r)
	}
	if r := resultFor(results, "eng"); r != ResultDislodged {
		t.Errorf("eng convoy: want Dislodged, got %v", r)
	}
	if r := resultFor(results, "bre"); r == ResultSucceeded {
		t.Error("bre->lon: convoy was disrupted, move must not succeed")
	}

	if len(dislodged) != 1 || dislodged[0].Unit.Province != "eng" {
		t.Errorf("expected only the eng fleet dislodged, got %+v", dislodged)
	}
}

// Determinism: resolving the same orders against the same state twice
// yields identical outcomes, including through a cyclic dependency.
func TestResolveOrders_Deterministic(t *testing.T) {
	m := StandardMap()
	gs := stateWith(
		Unit{Fleet, England, "nrg", NoCoast},
		Unit{Fleet, Germany, "nth", NoCoast},
		Unit{Fleet, Russia, "nwy", NoCoast},
		Unit{Fleet, Germany, "ska", NoCoast},
	)
	orders := []Order{
		{UnitType: Fleet, Power: England, Location: "nrg", Type: OrderMove, Target: "nth"},
		{UnitType: Fleet, Power: Germany, Location: "nth", Type: OrderMove, Target: "nwy"},
		{UnitType: Fleet, Power: Russia, Location: "nwy", Type: OrderMove, Target: "nrg"},
		{UnitType: Fleet, Power: Germany, Location: "ska", Type: OrderSupport, AuxUnitType: Fleet, AuxLoc: "nth", AuxTarget: "nwy"},
	}

	first, _ := ResolveOrders(orders, gs, m)
	second, _ := ResolveOrders(orders, gs, m)

	if len(first) != len(second) {
		t.Fatalf("result length differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Result != second[i].Result {
			t.Errorf("order %d: first run %v, second run %v", i, first[i].Result, second[i].Result)
		}
	}
}

// Build phase ownership seeding: the resolver refuses to run without at
// least one seeded prior-ownership entry.
func TestResolveBuildOrders_PanicsOnEmptyLastTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty lastTime map")
		}
	}()
	m := StandardMap()
	gs := &GameState{Year: 1901, Season: Fall, Phase: PhaseBuild, Units: []Unit{}, SupplyCenters: map[string]Power{}}
	ResolveBuildOrders(nil, gs, map[string]Power{}, m)
}

// The literal build scenario: a home-center build succeeds, and a build
// order targeting a non-home-center province is rejected as InvalidProvince.
func TestBuildScenario_HomeCenterSucceedsNonHomeCenterInvalid(t *testing.T) {
	m := StandardMap()
	gs := &GameState{
		Year:   1901,
		Season: Fall,
		Phase:  PhaseBuild,
		Units:  []Unit{},
		SupplyCenters: map[string]Power{
			"vie": Austria, "tri": Austria, "bud": Austria,
		},
	}
	lastTime := map[string]Power{"vie": Austria, "tri": Austria, "bud": Austria}

	orders := []BuildOrder{
		{Power: Austria, Type: BuildUnit, UnitType: Army, Location: "bel"},
		{Power: Austria, Type: BuildUnit, UnitType: Army, Location: "bud"},
	}
	results, _ := ResolveBuildOrders(orders, gs, lastTime, m)

	var budVerdict, belVerdict BuildVerdict
	for _, r := range results {
		switch r.Order.Location {
		case "bud":
			budVerdict = r.Verdict
		case "bel":
			belVerdict = r.Verdict
		}
	}
	if budVerdict != BuildSucceeds {
		t.Errorf("build A bud: want Succeeds, got %v", budVerdict)
	}
	if belVerdict != BuildInvalidProvince {
		t.Errorf("build A bel: want InvalidProvince, got %v", belVerdict)
	}
}
