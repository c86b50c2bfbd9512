package diplomacy

import "fmt"

// OrderType represents the type of order a unit can be given in the main
// (movement) phase, per spec.md §3's Command enum.
type OrderType int

const (
	OrderHold    OrderType = iota // Unit holds position
	OrderMove                     // Unit moves to adjacent province (possibly via convoy)
	OrderSupport                  // Unit supports another unit's hold or move
	OrderConvoy                   // Fleet convoys army across sea
)

func (o OrderType) String() string {
	switch o {
	case OrderHold:
		return "hold"
	case OrderMove:
		return "move"
	case OrderSupport:
		return "support"
	case OrderConvoy:
		return "convoy"
	default:
		return "unknown"
	}
}

// Order represents a single main-phase order issued to a unit. It is the
// typed (Power, UnitType, Region, Command) tuple spec.md §3 describes; the
// Command variant is selected by Type and the fields below it.
type Order struct {
	// Unit being ordered
	UnitType UnitType
	Power    Power
	Location string
	Coast    Coast // Coast of the unit being ordered (for fleets on split coasts)

	// Order details
	Type OrderType

	// Target province (move orders only; support and convoy orders name
	// their destination in AuxTarget)
	Target      string
	TargetCoast Coast // Coast of target (for fleet moves to split-coast provinces)

	// Aux fields for support and convoy:
	// For support: the province the supported unit is in.
	// For convoy: the province the convoyed army is in.
	AuxLoc string
	// For support: the destination the supported unit is moving to (empty if support-hold).
	// For convoy: the destination the convoyed army is moving to.
	AuxTarget string
	// For support: the type of the supported unit.
	AuxUnitType UnitType
}

// Region returns the region occupied by the unit this order is given to.
func (o *Order) Region() Region {
	return Region{Province: o.Location, Coast: o.Coast}
}

// IsSupportMove reports whether a support order supports a move (as
// opposed to a hold).
func (o *Order) IsSupportMove() bool {
	return o.Type == OrderSupport && o.AuxTarget != ""
}

// OrderResult describes the outcome of adjudicating an order: the verdict
// plus the reason, matching spec.md §4.1's "verdict in {Succeeds, Fails}
// and a structured outcome explaining why."
type OrderResult int

const (
	ResultSucceeded OrderResult = iota // Order carried out
	ResultFailed                       // Hold/move/convoy failed on its own terms
	ResultDislodged                    // Unit was dislodged from its province
	ResultBounced                      // Move lost a strength comparison (standoff or outmatched)
	ResultCut                          // Support was cut
	ResultVoid                         // Order was invalid pre-adjudication; treated as hold
)

func (r OrderResult) String() string {
	switch r {
	case ResultSucceeded:
		return "succeeded"
	case ResultFailed:
		return "failed"
	case ResultDislodged:
		return "dislodged"
	case ResultBounced:
		return "bounced"
	case ResultCut:
		return "cut"
	case ResultVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Succeeds converts a verdict to the simplified {Succeeds, Fails} form
// spec.md §4.5/§8 requires: Succeeds ↔ true, every other variant ↔ false.
func (r OrderResult) Succeeds() bool {
	return r == ResultSucceeded
}

// ResolvedOrder pairs an order with its adjudication result.
type ResolvedOrder struct {
	Order  Order
	Result OrderResult
}

// Describe returns a human-readable description of the order, independent
// of the notation package's canonical text grammar — useful for log lines
// and panic/error messages.
func (o *Order) Describe() string {
	unitStr := "A"
	if o.UnitType == Fleet {
		unitStr = "F"
	}
	loc := o.Location
	if o.Coast != NoCoast {
		loc += "/" + string(o.Coast)
	}

	switch o.Type {
	case OrderHold:
		return fmt.Sprintf("%s %s Hold", unitStr, loc)
	case OrderMove:
		target := o.Target
		if o.TargetCoast != NoCoast {
			target += "/" + string(o.TargetCoast)
		}
		return fmt.Sprintf("%s %s -> %s", unitStr, loc, target)
	case OrderSupport:
		auxUnit := "A"
		if o.AuxUnitType == Fleet {
			auxUnit = "F"
		}
		if o.AuxTarget == "" {
			return fmt.Sprintf("%s %s S %s %s Hold", unitStr, loc, auxUnit, o.AuxLoc)
		}
		return fmt.Sprintf("%s %s S %s %s -> %s", unitStr, loc, auxUnit, o.AuxLoc, o.AuxTarget)
	case OrderConvoy:
		return fmt.Sprintf("%s %s C A %s -> %s", unitStr, loc, o.AuxLoc, o.AuxTarget)
	default:
		return fmt.Sprintf("%s %s ???", unitStr, loc)
	}
}
