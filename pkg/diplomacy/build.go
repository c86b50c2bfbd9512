package diplomacy

import "sort"

// currentOwner is the current_owner(province) rule the build resolver is
// specified against: the power occupying the province this winter if any,
// otherwise whichever power owned it as of lastTime.
func currentOwner(province string, gs *GameState, lastTime map[string]Power) Power {
	if u := gs.UnitAt(province); u != nil {
		return u.Power
	}
	return lastTime[province]
}

// buildDelta is owned supply centers minus unit count for one nation:
// positive means builds are owed, negative means forced disbands are owed.
func buildDelta(power Power, gs *GameState, lastTime map[string]Power, m *Map) int {
	owned := 0
	for _, p := range m.Provinces {
		if p.IsSupplyCenter && currentOwner(p.ID, gs, lastTime) == power {
			owned++
		}
	}
	return owned - gs.UnitCount(power)
}

// buildState is the accumulating live_units map the build resolver
// mutates as it adjudicates orders in submission order, so that later
// orders in the same batch observe the effect of earlier ones.
type buildState struct {
	gs        *GameState
	lastTime  map[string]Power
	m         *Map
	original  map[Power]int // delta at batch start; direction never changes
	remaining map[Power]int // quota left to consume; mutated on each success
	units     map[string]Unit
}

func newBuildState(gs *GameState, lastTime map[string]Power, m *Map) *buildState {
	if len(lastTime) == 0 {
		panic("diplomacy: ResolveBuildOrders called with an empty lastTime ownership map")
	}
	b := &buildState{
		gs:        gs,
		lastTime:  lastTime,
		m:         m,
		original:  make(map[Power]int, len(AllPowers())),
		remaining: make(map[Power]int, len(AllPowers())),
		units:     make(map[string]Unit, len(gs.Units)),
	}
	for _, u := range gs.Units {
		b.units[u.Province] = u
	}
	for _, power := range AllPowers() {
		delta := buildDelta(power, gs, lastTime, m)
		b.original[power] = delta
		b.remaining[power] = delta
	}
	return b
}

func (b *buildState) adjudicate(o BuildOrder) BuildVerdict {
	switch o.Type {
	case BuildUnit, WaiveBuild:
		return b.adjudicateBuild(o)
	case DisbandUnit:
		return b.adjudicateDisband(o)
	default:
		return BuildRedeploymentProhibited
	}
}

func (b *buildState) adjudicateBuild(o BuildOrder) BuildVerdict {
	if b.original[o.Power] <= 0 {
		return BuildRedeploymentProhibited
	}
	if b.remaining[o.Power] <= 0 {
		return BuildAllBuildsUsed
	}
	if o.Type == WaiveBuild {
		b.remaining[o.Power]--
		return BuildSucceeds
	}

	prov, ok := b.m.Provinces[o.Location]
	if !ok || !prov.IsSupplyCenter || prov.HomePower != o.Power {
		return BuildInvalidProvince
	}
	if currentOwner(o.Location, b.gs, b.lastTime) != o.Power {
		return BuildForeignControlled
	}
	if _, occupied := b.units[o.Location]; occupied {
		return BuildOccupiedProvince
	}
	if o.UnitType == Fleet && prov.Type == Land {
		return BuildInvalidTerrain
	}
	if o.UnitType == Army && prov.Type == Sea {
		return BuildInvalidTerrain
	}

	b.units[o.Location] = Unit{Type: o.UnitType, Power: o.Power, Province: o.Location, Coast: o.Coast}
	b.remaining[o.Power]--
	return BuildSucceeds
}

func (b *buildState) adjudicateDisband(o BuildOrder) BuildVerdict {
	if b.original[o.Power] >= 0 {
		return BuildRedeploymentProhibited
	}
	if b.remaining[o.Power] >= 0 {
		return DisbandAllDisbandsUsed
	}

	u, ok := b.units[o.Location]
	if !ok {
		return DisbandNonexistentUnit
	}
	if u.Power != o.Power {
		return DisbandForeignUnit
	}

	delete(b.units, o.Location)
	b.remaining[o.Power]++
	return BuildSucceeds
}

// ResolveBuildOrders adjudicates the winter build/disband orders per the
// build-phase protocol: orders are applied in submission order against an
// accumulating unit map, and any nation left with unconsumed forced
// disbands is finished off with civil-disorder disbandment. Returns the
// verdict for every submitted order (including civil-disorder's synthetic
// disbands) and the final unit positions.
func ResolveBuildOrders(orders []BuildOrder, gs *GameState, lastTime map[string]Power, m *Map) ([]ResolvedBuildOrder, []Unit) {
	b := newBuildState(gs, lastTime, m)

	results := make([]ResolvedBuildOrder, 0, len(orders))
	for _, o := range orders {
		verdict := b.adjudicate(o)
		results = append(results, ResolvedBuildOrder{Order: o, Verdict: verdict})
	}

	for _, power := range AllPowers() {
		if b.remaining[power] < 0 {
			forced := civilDisorder(power, -b.remaining[power], b)
			results = append(results, forced...)
		}
	}

	final := make([]Unit, 0, len(b.units))
	for _, u := range b.units {
		final = append(final, u)
	}
	return results, final
}

// civilDisorder auto-disbands units a nation failed to order disbanded:
// greatest distance from any home SC first, fleets before armies on a
// distance tie, then alphabetical by province on a unit-type tie.
func civilDisorder(power Power, count int, b *buildState) []ResolvedBuildOrder {
	var units []Unit
	for _, u := range b.units {
		if u.Power == power {
			units = append(units, u)
		}
	}
	if len(units) == 0 || count == 0 {
		return nil
	}

	homes := HomeCenters(power)
	type candidate struct {
		unit Unit
		dist int
	}
	candidates := make([]candidate, len(units))
	for i, u := range units {
		candidates[i] = candidate{unit: u, dist: minDistanceToHome(u.Province, homes, b.m)}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist > candidates[j].dist
		}
		if candidates[i].unit.Type != candidates[j].unit.Type {
			return candidates[i].unit.Type == Fleet
		}
		return candidates[i].unit.Province < candidates[j].unit.Province
	})

	var results []ResolvedBuildOrder
	for i := 0; i < count && i < len(candidates); i++ {
		u := candidates[i].unit
		log.Info().Str("power", string(power)).Str("province", u.Province).Msg("civil disorder disband")
		delete(b.units, u.Province)
		results = append(results, ResolvedBuildOrder{
			Order: BuildOrder{
				Power:    power,
				Type:     DisbandUnit,
				UnitType: u.Type,
				Location: u.Province,
			},
			Verdict: BuildSucceeds,
		})
	}
	return results
}

// minDistanceToHome computes the minimum BFS distance from a province to any home SC.
func minDistanceToHome(from string, homes []string, m *Map) int {
	if len(homes) == 0 {
		return 999
	}

	homeSet := make(map[string]bool, len(homes))
	for _, h := range homes {
		homeSet[h] = true
	}
	if homeSet[from] {
		return 0
	}

	visited := map[string]bool{from: true}
	queue := []string{from}
	dist := 0

	for len(queue) > 0 {
		dist++
		var nextQueue []string
		for _, prov := range queue {
			for _, adj := range m.Adjacencies[prov] {
				if visited[adj.To] {
					continue
				}
				if homeSet[adj.To] {
					return dist
				}
				visited[adj.To] = true
				nextQueue = append(nextQueue, adj.To)
			}
		}
		queue = nextQueue
	}

	return 999
}

// finalSupplyCenterOwnership computes current_owner for every SC province
// after a build phase completes, per the build resolver's "finish" step.
func finalSupplyCenterOwnership(gs *GameState, lastTime map[string]Power, m *Map) map[string]Power {
	out := make(map[string]Power, len(gs.SupplyCenters))
	for _, p := range m.Provinces {
		if p.IsSupplyCenter {
			out[p.ID] = currentOwner(p.ID, gs, lastTime)
		}
	}
	return out
}

// BuildOutcome is the frozen result of a winter build phase: the verdict
// for every submitted (and civil-disorder-synthesized) order, the final
// unit positions, and updated SC ownership.
type BuildOutcome struct {
	results       []ResolvedBuildOrder
	units         []Unit
	supplyCenters map[string]Power
}

// Verdict returns the verdict recorded for the given order, if any.
func (o *BuildOutcome) Verdict(order BuildOrder) (BuildVerdict, bool) {
	for _, r := range o.results {
		if r.Order.Power == order.Power && r.Order.Location == order.Location && r.Order.Type == order.Type {
			return r.Verdict, true
		}
	}
	return 0, false
}

// Orders returns every resolved build order, including civil-disorder's
// synthetic disbands.
func (o *BuildOutcome) Orders() []ResolvedBuildOrder {
	return o.results
}

// Units returns the unit positions after the build phase completed.
func (o *BuildOutcome) Units() []Unit {
	return o.units
}

// SupplyCenterOwner returns the power owning the given supply center.
func (o *BuildOutcome) SupplyCenterOwner(province string) (Power, bool) {
	p, ok := o.supplyCenters[province]
	return p, ok
}

// ResolveBuildPhase is the library's public build-phase entry point. lastTime
// is the SC ownership map from the close of the preceding fall turn (or, for
// a game's first winter, InitialOwnership(m)).
func ResolveBuildPhase(orders []BuildOrder, gs *GameState, lastTime map[string]Power, m *Map) (*BuildOutcome, *GameState, error) {
	results, units := ResolveBuildOrders(orders, gs, lastTime, m)

	next := gs.Clone()
	next.Units = units
	next.SupplyCenters = finalSupplyCenterOwnership(next, lastTime, m)

	if err := checkNoDuplicateProvince(units); err != nil {
		return nil, nil, err
	}

	return &BuildOutcome{results: results, units: units, supplyCenters: next.SupplyCenters}, next, nil
}

func checkNoDuplicateProvince(units []Unit) error {
	seen := make(map[string]bool, len(units))
	for _, u := range units {
		if seen[u.Province] {
			return &MultipleUnitsInSameProvinceError{Province: u.Province}
		}
		seen[u.Province] = true
	}
	return nil
}
