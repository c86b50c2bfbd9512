package diplomacy

import "fmt"

// ValidationError describes why an order is illegal.
type ValidationError struct {
	Order   Order
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order %s: %s", e.Order.Describe(), e.Message)
}

// legality binds one order's legality check to the board state it must be
// checked against. Each order type gets its own check method rather than a
// single sprawling switch, so the reasoning for moves, supports, and
// convoys stays separately readable.
type legality struct {
	gs *GameState
	m  *Map
}

// ValidateOrder checks whether an order is legal given the current game
// state and map. It returns nil if valid, or a *ValidationError describing
// the problem.
func ValidateOrder(order Order, gs *GameState, m *Map) error {
	l := legality{gs: gs, m: m}

	unit := gs.UnitAt(order.Location)
	if unit == nil {
		return &ValidationError{order, "no unit at " + order.Location}
	}
	if unit.Power != order.Power {
		return &ValidationError{order, fmt.Sprintf("unit belongs to %s, not %s", unit.Power, order.Power)}
	}
	if unit.Type != order.UnitType {
		return &ValidationError{order, fmt.Sprintf("unit is %s, not %s", unit.Type, order.UnitType)}
	}

	switch order.Type {
	case OrderHold:
		return nil
	case OrderMove:
		return l.move(order)
	case OrderSupport:
		return l.support(order)
	case OrderConvoy:
		return l.convoy(order)
	default:
		return &ValidationError{order, "unknown order type"}
	}
}

func (l legality) move(order Order) error {
	isFleet := order.UnitType == Fleet
	dst, ok := l.m.GetRegion(order.Target, order.TargetCoast)
	if !ok {
		if l.m.Provinces[order.Target] == nil {
			return &ValidationError{order, "target province does not exist: " + order.Target}
		}
		dst = Region{Province: order.Target, Coast: order.TargetCoast}
	}

	target := l.m.Provinces[dst.Province]
	if isFleet && target.Type == Land {
		return &ValidationError{order, "fleet cannot move to inland province"}
	}
	if !isFleet && target.Type == Sea {
		return &ValidationError{order, "army cannot move to sea province"}
	}

	src := order.Region()
	if l.m.Adjacent(src.Province, src.Coast, dst.Province, dst.Coast, isFleet) {
		if isFleet && l.m.HasCoasts(dst.Province) {
			return l.fleetCoast(order)
		}
		return nil
	}

	if !isFleet && l.hasConvoyRoute(src, dst) {
		return nil
	}

	return &ValidationError{order, fmt.Sprintf("cannot move from %s to %s", order.Location, order.Target)}
}

func (l legality) fleetCoast(order Order) error {
	src := order.Region()
	reachable := l.m.FleetCoastsTo(src.Province, src.Coast, order.Target)

	if order.TargetCoast == NoCoast {
		switch len(reachable) {
		case 0:
			return &ValidationError{order, "fleet cannot reach any coast of " + order.Target}
		case 1:
			return nil
		default:
			return &ValidationError{order, "must specify coast for " + order.Target}
		}
	}

	for _, c := range reachable {
		if c == order.TargetCoast {
			return nil
		}
	}
	return &ValidationError{order, fmt.Sprintf("fleet cannot reach %s/%s from %s", order.Target, order.TargetCoast, order.Location)}
}

func (l legality) support(order Order) error {
	supported := l.gs.UnitAt(order.AuxLoc)
	if supported == nil {
		return &ValidationError{order, "no unit at " + order.AuxLoc + " to support"}
	}

	src := order.Region()
	isFleet := order.UnitType == Fleet

	if !order.IsSupportMove() {
		if !l.m.Adjacent(src.Province, src.Coast, order.AuxLoc, NoCoast, isFleet) {
			return &ValidationError{order, fmt.Sprintf("cannot support hold at %s from %s", order.AuxLoc, order.Location)}
		}
		return nil
	}

	if !l.m.Adjacent(src.Province, src.Coast, order.AuxTarget, NoCoast, isFleet) {
		return &ValidationError{order, fmt.Sprintf("cannot support move to %s from %s", order.AuxTarget, order.Location)}
	}

	auxSrc := supported.Region()
	if !l.m.Adjacent(auxSrc.Province, auxSrc.Coast, order.AuxTarget, NoCoast, supported.Type == Fleet) {
		if supported.Type == Army && l.hasConvoyRoute(auxSrc, Region{Province: order.AuxTarget}) {
			return nil
		}
		return &ValidationError{order, fmt.Sprintf("supported unit at %s cannot reach %s", order.AuxLoc, order.AuxTarget)}
	}

	return nil
}

func (l legality) convoy(order Order) error {
	if order.UnitType != Fleet {
		return &ValidationError{order, "only fleets can convoy"}
	}

	prov := l.m.Provinces[order.Location]
	if prov == nil || prov.Type != Sea {
		return &ValidationError{order, "fleet must be in a sea province to convoy"}
	}

	convoyed := l.gs.UnitAt(order.AuxLoc)
	if convoyed == nil {
		return &ValidationError{order, "no unit at " + order.AuxLoc + " to convoy"}
	}
	if convoyed.Type != Army {
		return &ValidationError{order, "only armies can be convoyed"}
	}

	return nil
}

// hasConvoyRoute reports whether an army at src could in principle reach
// dst by some unbroken chain of fleets presently on the board, regardless
// of what those fleets are actually ordered to do this phase. It walks the
// sea-province frontier region-by-region via the map's Bordering
// capability rather than inspecting raw adjacency records directly, so the
// search stays in terms of the same Region vocabulary the rest of the
// legality pass uses.
func (l legality) hasConvoyRoute(src, dst Region) bool {
	srcProv := l.m.Provinces[src.Province]
	dstProv := l.m.Provinces[dst.Province]
	if srcProv == nil || dstProv == nil || srcProv.Type == Sea || dstProv.Type == Sea {
		return false
	}

	frontier := l.fleetFrontier(src)
	visited := make(map[string]bool, len(frontier))
	queue := make([]Region, 0, len(frontier))
	for _, r := range frontier {
		if !visited[r.Province] {
			visited[r.Province] = true
			queue = append(queue, r)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, r := range l.m.Bordering(current.Province, true) {
			if r.Province == dst.Province {
				return true
			}
		}

		for _, r := range l.fleetFrontier(current) {
			if !visited[r.Province] {
				visited[r.Province] = true
				queue = append(queue, r)
			}
		}
	}

	return false
}

// fleetFrontier returns the sea regions adjacent to r that currently carry
// a fleet, the set a convoy search may step into from r.
func (l legality) fleetFrontier(r Region) []Region {
	var out []Region
	for _, adj := range l.m.Bordering(r.Province, true) {
		seaProv := l.m.Provinces[adj.Province]
		if seaProv == nil || seaProv.Type != Sea {
			continue
		}
		occupant := l.gs.UnitAt(adj.Province)
		if occupant != nil && occupant.Type == Fleet {
			out = append(out, adj)
		}
	}
	return out
}

// ValidateAndDefaultOrders takes submitted orders and returns a complete
// set of orders covering every unit on the board: units without an order
// default to Hold, and orders that fail ValidateOrder are downgraded to
// Hold and reported void rather than dropped.
func ValidateAndDefaultOrders(orders []Order, gs *GameState, m *Map) ([]Order, []ResolvedOrder) {
	covered := make(map[string]bool, len(gs.Units))
	valid := make([]Order, 0, len(gs.Units))
	var voided []ResolvedOrder

	holdFor := func(o Order) Order {
		return Order{UnitType: o.UnitType, Power: o.Power, Location: o.Location, Coast: o.Coast, Type: OrderHold}
	}

	for _, o := range orders {
		covered[o.Location] = true
		if err := ValidateOrder(o, gs, m); err != nil {
			valid = append(valid, holdFor(o))
			voided = append(voided, ResolvedOrder{Order: o, Result: ResultVoid})
			continue
		}
		valid = append(valid, o)
	}

	for _, unit := range gs.Units {
		if covered[unit.Province] {
			continue
		}
		valid = append(valid, holdFor(Order{UnitType: unit.Type, Power: unit.Power, Location: unit.Province, Coast: unit.Coast}))
	}

	return valid, voided
}
