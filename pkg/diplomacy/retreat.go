package diplomacy

// ValidateRetreatOrder checks if a retreat order is legal.
func ValidateRetreatOrder(order RetreatOrder, gs *GameState, m *Map) error {
	if order.Type == RetreatDisband {
		return nil
	}

	// Find the dislodged unit
	var dislodged *DislodgedUnit
	for i := range gs.Dislodged {
		if gs.Dislodged[i].DislodgedFrom == order.Location && gs.Dislodged[i].Unit.Power == order.Power {
			dislodged = &gs.Dislodged[i]
			break
		}
	}
	if dislodged == nil {
		return &ValidationError{
			Order:   Order{Location: order.Location, Power: order.Power},
			Message: "no dislodged unit at " + order.Location,
		}
	}

	// Cannot retreat to the province the attacker came from
	if order.Target == dislodged.AttackerFrom {
		return &ValidationError{
			Order:   Order{Location: order.Location, Power: order.Power},
			Message: "cannot retreat to province attacker came from",
		}
	}

	// Must be adjacent
	isFleet := order.UnitType == Fleet
	if !m.Adjacent(order.Location, order.Coast, order.Target, order.TargetCoast, isFleet) {
		return &ValidationError{
			Order:   Order{Location: order.Location, Power: order.Power},
			Message: "target not adjacent for retreat",
		}
	}

	// Cannot retreat to an occupied province
	if gs.UnitAt(order.Target) != nil {
		return &ValidationError{
			Order:   Order{Location: order.Location, Power: order.Power},
			Message: "cannot retreat to occupied province",
		}
	}

	return nil
}

// ResolveRetreats processes retreat orders. If two units try to retreat to
// the same province, both are disbanded. Unordered dislodged units are
// disbanded by default.
func ResolveRetreats(orders []RetreatOrder, gs *GameState, m *Map) []RetreatResult {
	var results []RetreatResult

	orderedUnits := make(map[string]bool)
	for _, o := range orders {
		orderedUnits[o.Location] = true
	}

	for _, d := range gs.Dislodged {
		if !orderedUnits[d.DislodgedFrom] {
			results = append(results, RetreatResult{
				Order: RetreatOrder{
					UnitType: d.Unit.Type,
					Power:    d.Unit.Power,
					Location: d.DislodgedFrom,
					Coast:    d.Unit.Coast,
					Type:     RetreatDisband,
				},
				Result: ResultSucceeded,
			})
		}
	}

	// Find retreat move conflicts (two units trying to go to the same place)
	targetCounts := make(map[string]int)
	for _, o := range orders {
		if o.Type == RetreatMove {
			targetCounts[o.Target]++
		}
	}

	for _, o := range orders {
		if o.Type == RetreatDisband {
			results = append(results, RetreatResult{Order: o, Result: ResultSucceeded})
			continue
		}

		if err := ValidateRetreatOrder(o, gs, m); err != nil {
			results = append(results, RetreatResult{Order: o, Result: ResultVoid})
			continue
		}

		if targetCounts[o.Target] > 1 {
			results = append(results, RetreatResult{Order: o, Result: ResultBounced})
		} else {
			results = append(results, RetreatResult{Order: o, Result: ResultSucceeded})
		}
	}

	return results
}

// ApplyRetreats updates the game state based on resolved retreat orders.
func ApplyRetreats(gs *GameState, results []RetreatResult, m *Map) {
	for _, r := range results {
		if r.Order.Type == RetreatMove && r.Result == ResultSucceeded {
			coast := r.Order.TargetCoast
			if coast == NoCoast && m.HasCoasts(r.Order.Target) {
				coasts := m.FleetCoastsTo(r.Order.Location, r.Order.Coast, r.Order.Target)
				if len(coasts) == 1 {
					coast = coasts[0]
				}
			}
			gs.Units = append(gs.Units, Unit{
				Type:     r.Order.UnitType,
				Power:    r.Order.Power,
				Province: r.Order.Target,
				Coast:    coast,
			})
		}
		// Disbanded/bounced/void units are simply not added back
	}

	gs.Dislodged = nil
}

// retreatAsOrder converts a RetreatOrder to the same order-identity shape
// Outcome uses for movement orders, so retreat outcomes can be queried
// with the same Verdict/Succeeds calls.
func retreatAsOrder(o RetreatOrder) Order {
	return Order{UnitType: o.UnitType, Power: o.Power, Location: o.Location, Coast: o.Coast}
}

// ResolveRetreatPhase is the library's public retreat-phase entry point:
// it resolves retreat orders against gs.Dislodged, applies the result to
// a copy of gs, and freezes everything into an Outcome.
func ResolveRetreatPhase(orders []RetreatOrder, gs *GameState, m *Map) (*Outcome, *GameState, error) {
	results := ResolveRetreats(orders, gs, m)

	next := gs.Clone()
	ApplyRetreats(next, results, m)

	asResolved := make([]ResolvedOrder, len(results))
	for i, r := range results {
		asResolved[i] = ResolvedOrder{Order: retreatAsOrder(r.Order), Result: r.Result}
	}

	outcome, err := NewOutcome(asResolved, next.Units, next.SupplyCenters)
	if err != nil {
		return nil, nil, err
	}
	return outcome, next, nil
}
