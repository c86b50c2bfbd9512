package diplomacy

import "fmt"

// MultipleUnitsInSameProvinceError is the one documented fatal outcome
// construction error. The rulebook must never produce a position with two
// units sharing a province; returning one to NewOutcome is a caller bug,
// not a recoverable adjudication failure.
type MultipleUnitsInSameProvinceError struct {
	Province string
}

func (e *MultipleUnitsInSameProvinceError) Error() string {
	return fmt.Sprintf("multiple units in same province: %s", e.Province)
}

// Outcome is a frozen result of adjudicating one phase's orders: the
// verdict for every submitted order, the unit positions that result from
// applying those verdicts, and (when relevant) supply-center ownership.
// An Outcome is built once by its phase's Resolve* entry point and never
// mutated afterward.
type Outcome struct {
	orders        []ResolvedOrder
	verdictByKey  map[string]OrderResult
	units         []Unit
	occupantByLoc map[string]*Unit
	supplyCenters map[string]Power
}

func orderKey(power Power, unitType UnitType, location string) string {
	return string(power) + "|" + unitType.String() + "|" + location
}

// NewOutcome builds a frozen Outcome from a set of resolved orders and the
// resulting unit positions. It rejects any position slice containing two
// units in the same province, the constructor's one documented fatal
// condition.
func NewOutcome(results []ResolvedOrder, units []Unit, supplyCenters map[string]Power) (*Outcome, error) {
	occ := make(map[string]*Unit, len(units))
	for i := range units {
		u := &units[i]
		if _, dup := occ[u.Province]; dup {
			return nil, &MultipleUnitsInSameProvinceError{Province: u.Province}
		}
		occ[u.Province] = u
	}

	verdicts := make(map[string]OrderResult, len(results))
	for _, ro := range results {
		verdicts[orderKey(ro.Order.Power, ro.Order.UnitType, ro.Order.Location)] = ro.Result
	}

	return &Outcome{
		orders:        results,
		verdictByKey:  verdicts,
		units:         units,
		occupantByLoc: occ,
		supplyCenters: supplyCenters,
	}, nil
}

// Verdict returns the verdict recorded for the given order, and whether
// one was found at all.
func (o *Outcome) Verdict(order Order) (OrderResult, bool) {
	v, ok := o.verdictByKey[orderKey(order.Power, order.UnitType, order.Location)]
	return v, ok
}

// Succeeds reports whether the given order's verdict was a success, per
// the simplified {Succeeds, Fails} projection: Succeeds ↔ true, every
// other variant (including "order not found in this outcome") ↔ false.
func (o *Outcome) Succeeds(order Order) bool {
	v, ok := o.Verdict(order)
	return ok && v.Succeeds()
}

// Orders returns every resolved order and its verdict. A movement outcome
// also holds the Hold each unordered unit defaulted to, and a voided order
// appears twice: once as submitted (ResultVoid) and once as the Hold that
// replaced it. A retreat outcome also holds the disband synthesized for
// each dislodged unit that received no order.
func (o *Outcome) Orders() []ResolvedOrder {
	return o.orders
}

// Units returns the unit positions after this phase's orders were applied.
func (o *Outcome) Units() []Unit {
	return o.units
}

// OccupantAt returns the unit occupying the given province, if any.
func (o *Outcome) OccupantAt(province string) (Unit, bool) {
	u, ok := o.occupantByLoc[province]
	if !ok {
		return Unit{}, false
	}
	return *u, true
}

// OccupantAtRegion returns the unit occupying the given region, if any. A
// fleet standing on the wrong coast of a split-coast province does not
// match a query for the other coast.
func (o *Outcome) OccupantAtRegion(r Region) (Unit, bool) {
	u, ok := o.OccupantAt(r.Province)
	if !ok {
		return Unit{}, false
	}
	if r.Coast != NoCoast && u.Coast != NoCoast && u.Coast != r.Coast {
		return Unit{}, false
	}
	return u, true
}

// SupplyCenterOwner returns the power owning the given supply center in
// the state this phase produced, if the outcome records that province.
// Movement and retreat outcomes carry that state's SupplyCenters map;
// build-phase ownership is reported by BuildOutcome instead.
func (o *Outcome) SupplyCenterOwner(province string) (Power, bool) {
	p, ok := o.supplyCenters[province]
	return p, ok
}

// ResolveMovementPhase is the library's public main-phase entry point: it
// defaults unordered units to Hold, voids invalid orders, adjudicates the
// rest, applies the result to a copy of gs, and freezes everything into an
// Outcome. The caller's gs is left untouched; dislodged units requiring a
// retreat order are carried on the returned state's Dislodged field.
func ResolveMovementPhase(orders []Order, gs *GameState, m *Map) (*Outcome, *GameState, error) {
	valid, voided := ValidateAndDefaultOrders(orders, gs, m)
	resolved, dislodged := ResolveOrders(valid, gs, m)

	next := gs.Clone()
	ApplyResolution(next, m, resolved, dislodged)

	all := make([]ResolvedOrder, 0, len(resolved)+len(voided))
	all = append(all, resolved...)
	all = append(all, voided...)

	outcome, err := NewOutcome(all, next.Units, next.SupplyCenters)
	if err != nil {
		return nil, nil, err
	}
	return outcome, next, nil
}
