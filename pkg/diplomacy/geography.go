package diplomacy

// ProvinceCount is the number of provinces on the standard Diplomacy map.
const ProvinceCount = 75

// ProvinceType classifies a province as land, sea, or coastal.
type ProvinceType int

const (
	Land    ProvinceType = iota // Inland province (armies only)
	Sea                         // Sea province (fleets only)
	Coastal                     // Coastal province (armies or fleets)
)

// Coast represents a specific coast of a province with split coasts.
type Coast string

const (
	NoCoast    Coast = ""
	NorthCoast Coast = "nc"
	SouthCoast Coast = "sc"
	EastCoast  Coast = "ec"
	WestCoast  Coast = "wc"
)

// Province represents a single province on the Diplomacy map. It is the
// stable identity spec.md §3 describes: terrain class, supply-center
// status, and (for split-coast provinces) the coasts a fleet may stand on.
type Province struct {
	ID             string
	Name           string
	Type           ProvinceType
	IsSupplyCenter bool
	HomePower      Power   // Power whose home SC this is ("" if not a home SC)
	Coasts         []Coast // Non-empty only for split-coast provinces (e.g. Spain)
}

// Region is a province together with an optional coast qualifier, per
// spec.md §3 ("Spain/NC vs Spain/SC"). Every region belongs to exactly one
// province; a province without split coasts has exactly one region, whose
// Coast is NoCoast.
type Region struct {
	Province string
	Coast    Coast
}

// Adjacency describes a connection between two provinces.
// For provinces with split coasts, coastal adjacencies specify which coast.
type Adjacency struct {
	From      string
	FromCoast Coast
	To        string
	ToCoast   Coast
	ArmyOK    bool // Armies can traverse this adjacency
	FleetOK   bool // Fleets can traverse this adjacency
}

// Map holds the full province and adjacency graph. A Map is immutable once
// built and may be shared across any number of concurrent resolutions
// (spec.md §5): it is constructed once, typically from StandardMap, and
// never mutated afterward.
type Map struct {
	Provinces   map[string]*Province
	Adjacencies map[string][]Adjacency // keyed by from province ID
	provIndex   map[string]int
	provNames   [ProvinceCount]string

	// armyAdj and fleetAdj are precomputed per-traverser views of
	// Adjacencies, built once by precomputeAdjacencyCache. Every hot-path
	// query (Adjacent, ProvincesAdjacentTo, Bordering) runs once per
	// candidate order during resolution, so splitting the traversal
	// filter out of the scan loop matters more here than it would for a
	// one-shot lookup.
	armyAdj  map[string][]Adjacency
	fleetAdj map[string][]Adjacency
}

// precomputeAdjacencyCache partitions each province's adjacency list into
// an army-passable view and a fleet-passable view. It must run once after
// Adjacencies is fully populated and before the map is handed to callers.
func (m *Map) precomputeAdjacencyCache() {
	m.armyAdj = make(map[string][]Adjacency, len(m.Adjacencies))
	m.fleetAdj = make(map[string][]Adjacency, len(m.Adjacencies))
	for from, adjs := range m.Adjacencies {
		for _, adj := range adjs {
			if adj.ArmyOK {
				m.armyAdj[from] = append(m.armyAdj[from], adj)
			}
			if adj.FleetOK {
				m.fleetAdj[from] = append(m.fleetAdj[from], adj)
			}
		}
	}
}

// adjacencyView returns the traverser-filtered adjacency list for a
// province, falling back to an on-the-fly filter of Adjacencies if the
// cache was never built (e.g. a hand-constructed Map in a test).
func (m *Map) adjacencyView(provID string, isFleet bool) []Adjacency {
	cache := m.armyAdj
	if isFleet {
		cache = m.fleetAdj
	}
	if cache != nil {
		return cache[provID]
	}
	var out []Adjacency
	for _, adj := range m.Adjacencies[provID] {
		if isFleet && adj.FleetOK || !isFleet && adj.ArmyOK {
			out = append(out, adj)
		}
	}
	return out
}

// ProvinceIndex returns the dense index (0..ProvinceCount-1) for a province ID.
// Returns -1 if the province is not found.
func (m *Map) ProvinceIndex(id string) int {
	idx, ok := m.provIndex[id]
	if !ok {
		return -1
	}
	return idx
}

// ProvinceName returns the province ID for a given dense index.
func (m *Map) ProvinceName(idx int) string {
	return m.provNames[idx]
}

// Adjacent returns true if there is a valid adjacency from src to dst
// for the given unit type and coast constraints.
func (m *Map) Adjacent(src string, srcCoast Coast, dst string, dstCoast Coast, isFleet bool) bool {
	for _, adj := range m.adjacencyView(src, isFleet) {
		if adj.To != dst {
			continue
		}
		if srcCoast != NoCoast && adj.FromCoast != NoCoast && adj.FromCoast != srcCoast {
			continue
		}
		if dstCoast != NoCoast && adj.ToCoast != NoCoast && adj.ToCoast != dstCoast {
			continue
		}
		return true
	}
	return false
}

// FleetCoastsTo returns all coasts at the destination province reachable by fleet
// from the given source province and coast.
func (m *Map) FleetCoastsTo(src string, srcCoast Coast, dst string) []Coast {
	var coasts []Coast
	for _, adj := range m.adjacencyView(src, true) {
		if adj.To != dst {
			continue
		}
		if srcCoast != NoCoast && adj.FromCoast != NoCoast && adj.FromCoast != srcCoast {
			continue
		}
		coasts = append(coasts, adj.ToCoast)
	}
	return coasts
}

// ProvincesAdjacentTo returns all province IDs adjacent to the given province
// accessible by the given unit type.
func (m *Map) ProvincesAdjacentTo(provID string, coast Coast, isFleet bool) []string {
	seen := make(map[string]bool)
	var result []string
	for _, adj := range m.adjacencyView(provID, isFleet) {
		if coast != NoCoast && adj.FromCoast != NoCoast && adj.FromCoast != coast {
			continue
		}
		if !seen[adj.To] {
			seen[adj.To] = true
			result = append(result, adj.To)
		}
	}
	return result
}

// HasCoasts returns true if the province has split coasts (e.g. Spain, St Petersburg, Bulgaria).
func (m *Map) HasCoasts(provID string) bool {
	p, ok := m.Provinces[provID]
	return ok && len(p.Coasts) > 0
}

// AllProvinces returns every province on the map, per spec.md §6's
// provinces() capability. The returned slice is a fresh copy; callers may
// not rely on any particular order.
func (m *Map) AllProvinces() []*Province {
	out := make([]*Province, 0, len(m.Provinces))
	for _, p := range m.Provinces {
		out = append(out, p)
	}
	return out
}

// AllRegions returns every region on the map, per spec.md §6's regions()
// capability: one region per province, or one region per coast for
// split-coast provinces.
func (m *Map) AllRegions() []Region {
	out := make([]Region, 0, ProvinceCount+6)
	for _, p := range m.Provinces {
		if len(p.Coasts) == 0 {
			out = append(out, Region{Province: p.ID, Coast: NoCoast})
			continue
		}
		for _, c := range p.Coasts {
			out = append(out, Region{Province: p.ID, Coast: c})
		}
	}
	return out
}

// GetRegion resolves a province ID and an optional coast to a Region, per spec.md §6's get_region(short_name) capability. ok is false
// if the province doesn't exist or the coast isn't one of its coasts.
func (m *Map) GetRegion(provinceID string, coast Coast) (Region, bool) {
	p, ok := m.Provinces[provinceID]
	if !ok {
		return Region{}, false
	}
	if coast == NoCoast {
		return Region{Province: provinceID, Coast: NoCoast}, true
	}
	for _, c := range p.Coasts {
		if c == coast {
			return Region{Province: provinceID, Coast: coast}, true
		}
	}
	return Region{}, false
}

// BordersBetween returns every Adjacency connecting region r's province
// directly to province dst, per spec.md §6's find_borders_between(Region,
// Province) capability.
func (m *Map) BordersBetween(r Region, dst *Province) []Adjacency {
	var out []Adjacency
	for _, adj := range m.Adjacencies[r.Province] {
		if adj.To != dst.ID {
			continue
		}
		if r.Coast != NoCoast && adj.FromCoast != NoCoast && adj.FromCoast != r.Coast {
			continue
		}
		out = append(out, adj)
	}
	return out
}

// Bordering returns the regions bordering province, filtered to those
// reachable by the given unit type, per spec.md §6's find_bordering
// (Province, terrain filter) capability.
func (m *Map) Bordering(province string, isFleet bool) []Region {
	var out []Region
	for _, adj := range m.adjacencyView(province, isFleet) {
		out = append(out, Region{Province: adj.To, Coast: adj.ToCoast})
	}
	return out
}
