package notation

import (
	"strings"

	"github.com/freeeve/diplomacy/pkg/diplomacy"
)

var nationNames = map[diplomacy.Power]string{
	diplomacy.Austria: "austria",
	diplomacy.England: "england",
	diplomacy.France:  "france",
	diplomacy.Germany: "germany",
	diplomacy.Italy:   "italy",
	diplomacy.Russia:  "russia",
	diplomacy.Turkey:  "turkey",
}

var nationsByName = func() map[string]diplomacy.Power {
	out := make(map[string]diplomacy.Power, len(nationNames))
	for p, name := range nationNames {
		out[name] = p
	}
	return out
}()

func parseNation(s string) (diplomacy.Power, bool) {
	p, ok := nationsByName[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

func parseUnitType(s string) (diplomacy.UnitType, bool) {
	switch strings.ToUpper(s) {
	case "A":
		return diplomacy.Army, true
	case "F":
		return diplomacy.Fleet, true
	default:
		return 0, false
	}
}

func unitTypeLetter(u diplomacy.UnitType) string {
	if u == diplomacy.Army {
		return "A"
	}
	return "F"
}

// parseRegion parses "stp" or "stp/sc" into a province ID and coast.
func parseRegion(s string) (string, diplomacy.Coast, bool) {
	province, coastStr, hasCoast := strings.Cut(s, "/")
	if len(province) != 3 {
		return "", diplomacy.NoCoast, false
	}
	province = strings.ToLower(province)
	if !hasCoast {
		return province, diplomacy.NoCoast, true
	}
	coast := diplomacy.Coast(strings.ToLower(coastStr))
	switch coast {
	case diplomacy.NorthCoast, diplomacy.SouthCoast, diplomacy.EastCoast, diplomacy.WestCoast:
		return province, coast, true
	default:
		return "", diplomacy.NoCoast, false
	}
}

func formatRegion(province string, coast diplomacy.Coast) string {
	if coast == diplomacy.NoCoast {
		return province
	}
	return province + "/" + string(coast)
}

// splitHeader pulls "NATION" and the remaining whitespace-separated tokens
// out of "NATION: UNITTYPE REGION COMMAND [args]".
func splitHeader(text string) (string, []string, bool) {
	nationPart, rest, ok := strings.Cut(text, ":")
	if !ok {
		return "", nil, false
	}
	return strings.TrimSpace(nationPart), strings.Fields(rest), true
}

// ParseOrder parses one main-phase order in the canonical text grammar
// (spec.md §6): "NATION: UNITTYPE REGION hold", "NATION: UNITTYPE REGION
// -> REGION", "NATION: UNITTYPE REGION supports UNITTYPE REGION [->
// REGION]", or "NATION: UNITTYPE REGION convoys UNITTYPE REGION -> REGION".
//
// The supported/convoyed unit's type is carried explicitly in the text
// (established Diplomacy order-notation practice) rather than resolved
// from board state, so this parser needs no world-state capability.
func ParseOrder(text string) (diplomacy.Order, error) {
	nationPart, tokens, ok := splitHeader(text)
	if !ok || len(tokens) < 3 {
		return diplomacy.Order{}, &ParseError{Kind: UnknownCommand, Text: text}
	}

	power, ok := parseNation(nationPart)
	if !ok {
		return diplomacy.Order{}, &ParseError{Kind: UnknownNation, Text: nationPart}
	}

	unitType, ok := parseUnitType(tokens[0])
	if !ok {
		return diplomacy.Order{}, &ParseError{Kind: MalformedUnit, Text: tokens[0]}
	}

	province, coast, ok := parseRegion(tokens[1])
	if !ok {
		return diplomacy.Order{}, &ParseError{Kind: MalformedRegion, Text: tokens[1]}
	}

	o := diplomacy.Order{UnitType: unitType, Power: power, Location: province, Coast: coast}

	command := strings.ToLower(tokens[2])
	args := tokens[3:]

	switch command {
	case "hold", "holds":
		o.Type = diplomacy.OrderHold
		return o, nil

	case "->":
		if len(args) < 1 {
			return diplomacy.Order{}, &ParseError{Kind: UnknownCommand, Text: text}
		}
		target, targetCoast, ok := parseRegion(args[0])
		if !ok {
			return diplomacy.Order{}, &ParseError{Kind: MalformedRegion, Text: args[0]}
		}
		o.Type = diplomacy.OrderMove
		o.Target, o.TargetCoast = target, targetCoast
		return o, nil

	case "supports":
		return parseSupport(o, args)

	case "convoys":
		return parseConvoy(o, args)

	default:
		return diplomacy.Order{}, &ParseError{Kind: UnknownCommand, Text: tokens[2]}
	}
}

func parseSupport(o diplomacy.Order, args []string) (diplomacy.Order, error) {
	if len(args) < 2 {
		return diplomacy.Order{}, &ParseError{Kind: MalformedSupport, Text: strings.Join(args, " ")}
	}
	auxType, ok := parseUnitType(args[0])
	if !ok {
		return diplomacy.Order{}, &ParseError{Kind: MalformedSupport, Text: args[0]}
	}
	auxLoc, _, ok := parseRegion(args[1])
	if !ok {
		return diplomacy.Order{}, &ParseError{Kind: MalformedSupport, Text: args[1]}
	}

	o.Type = diplomacy.OrderSupport
	o.AuxUnitType = auxType
	o.AuxLoc = auxLoc

	switch len(args) {
	case 2:
		return o, nil
	case 4:
		if args[2] != "->" {
			return diplomacy.Order{}, &ParseError{Kind: MalformedSupport, Text: args[2]}
		}
		target, _, ok := parseRegion(args[3])
		if !ok {
			return diplomacy.Order{}, &ParseError{Kind: MalformedSupport, Text: args[3]}
		}
		o.AuxTarget = target
		return o, nil
	default:
		return diplomacy.Order{}, &ParseError{Kind: MalformedSupport, Text: strings.Join(args, " ")}
	}
}

func parseConvoy(o diplomacy.Order, args []string) (diplomacy.Order, error) {
	if len(args) != 4 {
		return diplomacy.Order{}, &ParseError{Kind: MalformedConvoy, Text: strings.Join(args, " ")}
	}
	auxType, ok := parseUnitType(args[0])
	if !ok || auxType != diplomacy.Army {
		return diplomacy.Order{}, &ParseError{Kind: MalformedConvoy, Text: args[0]}
	}
	auxLoc, _, ok := parseRegion(args[1])
	if !ok {
		return diplomacy.Order{}, &ParseError{Kind: MalformedConvoy, Text: args[1]}
	}
	if args[2] != "->" {
		return diplomacy.Order{}, &ParseError{Kind: MalformedConvoy, Text: args[2]}
	}
	target, _, ok := parseRegion(args[3])
	if !ok {
		return diplomacy.Order{}, &ParseError{Kind: MalformedConvoy, Text: args[3]}
	}

	o.Type = diplomacy.OrderConvoy
	o.AuxUnitType = diplomacy.Army
	o.AuxLoc = auxLoc
	o.AuxTarget = target
	return o, nil
}

// FormatOrder renders a main-phase order in the canonical text grammar.
// ParseOrder(FormatOrder(o)) returns an order equal to o for every order
// whose fields are only those its order type uses (spec.md §8's
// round-trip law).
func FormatOrder(o diplomacy.Order) string {
	var b strings.Builder
	b.WriteString(nationNames[o.Power])
	b.WriteString(": ")
	b.WriteString(unitTypeLetter(o.UnitType))
	b.WriteByte(' ')
	b.WriteString(formatRegion(o.Location, o.Coast))

	switch o.Type {
	case diplomacy.OrderHold:
		b.WriteString(" hold")
	case diplomacy.OrderMove:
		b.WriteString(" -> ")
		b.WriteString(formatRegion(o.Target, o.TargetCoast))
	case diplomacy.OrderSupport:
		b.WriteString(" supports ")
		b.WriteString(unitTypeLetter(o.AuxUnitType))
		b.WriteByte(' ')
		b.WriteString(o.AuxLoc)
		if o.AuxTarget != "" {
			b.WriteString(" -> ")
			b.WriteString(o.AuxTarget)
		}
	case diplomacy.OrderConvoy:
		b.WriteString(" convoys A ")
		b.WriteString(o.AuxLoc)
		b.WriteString(" -> ")
		b.WriteString(o.AuxTarget)
	}
	return b.String()
}

// ParseRetreatOrder parses one retreat-phase order: "NATION: UNITTYPE
// REGION -> REGION" or "NATION: UNITTYPE REGION disband".
func ParseRetreatOrder(text string) (diplomacy.RetreatOrder, error) {
	nationPart, tokens, ok := splitHeader(text)
	if !ok || len(tokens) < 3 {
		return diplomacy.RetreatOrder{}, &ParseError{Kind: UnknownCommand, Text: text}
	}
	power, ok := parseNation(nationPart)
	if !ok {
		return diplomacy.RetreatOrder{}, &ParseError{Kind: UnknownNation, Text: nationPart}
	}
	unitType, ok := parseUnitType(tokens[0])
	if !ok {
		return diplomacy.RetreatOrder{}, &ParseError{Kind: MalformedUnit, Text: tokens[0]}
	}
	province, coast, ok := parseRegion(tokens[1])
	if !ok {
		return diplomacy.RetreatOrder{}, &ParseError{Kind: MalformedRegion, Text: tokens[1]}
	}

	o := diplomacy.RetreatOrder{UnitType: unitType, Power: power, Location: province, Coast: coast}

	switch strings.ToLower(tokens[2]) {
	case "disband":
		o.Type = diplomacy.RetreatDisband
		return o, nil
	case "->":
		if len(tokens) < 4 {
			return diplomacy.RetreatOrder{}, &ParseError{Kind: UnknownCommand, Text: text}
		}
		target, targetCoast, ok := parseRegion(tokens[3])
		if !ok {
			return diplomacy.RetreatOrder{}, &ParseError{Kind: MalformedRegion, Text: tokens[3]}
		}
		o.Type = diplomacy.RetreatMove
		o.Target, o.TargetCoast = target, targetCoast
		return o, nil
	default:
		return diplomacy.RetreatOrder{}, &ParseError{Kind: UnknownCommand, Text: tokens[2]}
	}
}

// FormatRetreatOrder renders a retreat-phase order in the canonical grammar.
func FormatRetreatOrder(o diplomacy.RetreatOrder) string {
	var b strings.Builder
	b.WriteString(nationNames[o.Power])
	b.WriteString(": ")
	b.WriteString(unitTypeLetter(o.UnitType))
	b.WriteByte(' ')
	b.WriteString(formatRegion(o.Location, o.Coast))

	switch o.Type {
	case diplomacy.RetreatMove:
		b.WriteString(" -> ")
		b.WriteString(formatRegion(o.Target, o.TargetCoast))
	case diplomacy.RetreatDisband:
		b.WriteString(" disband")
	}
	return b.String()
}

// ParseBuildOrder parses one winter order: "NATION: UNITTYPE REGION
// build", "NATION: UNITTYPE REGION disband", or "NATION: waive".
func ParseBuildOrder(text string) (diplomacy.BuildOrder, error) {
	nationPart, tokens, ok := splitHeader(text)
	if !ok || len(tokens) < 1 {
		return diplomacy.BuildOrder{}, &ParseError{Kind: UnknownCommand, Text: text}
	}
	power, ok := parseNation(nationPart)
	if !ok {
		return diplomacy.BuildOrder{}, &ParseError{Kind: UnknownNation, Text: nationPart}
	}

	if len(tokens) == 1 && strings.ToLower(tokens[0]) == "waive" {
		return diplomacy.BuildOrder{Power: power, Type: diplomacy.WaiveBuild}, nil
	}
	if len(tokens) < 3 {
		return diplomacy.BuildOrder{}, &ParseError{Kind: UnknownCommand, Text: text}
	}

	unitType, ok := parseUnitType(tokens[0])
	if !ok {
		return diplomacy.BuildOrder{}, &ParseError{Kind: MalformedUnit, Text: tokens[0]}
	}
	province, coast, ok := parseRegion(tokens[1])
	if !ok {
		return diplomacy.BuildOrder{}, &ParseError{Kind: MalformedRegion, Text: tokens[1]}
	}

	o := diplomacy.BuildOrder{Power: power, UnitType: unitType, Location: province, Coast: coast}

	switch strings.ToLower(tokens[2]) {
	case "build":
		o.Type = diplomacy.BuildUnit
		return o, nil
	case "disband":
		o.Type = diplomacy.DisbandUnit
		return o, nil
	default:
		return diplomacy.BuildOrder{}, &ParseError{Kind: UnknownCommand, Text: tokens[2]}
	}
}

// FormatBuildOrder renders a winter order in the canonical grammar.
func FormatBuildOrder(o diplomacy.BuildOrder) string {
	if o.Type == diplomacy.WaiveBuild {
		return nationNames[o.Power] + ": waive"
	}

	var b strings.Builder
	b.WriteString(nationNames[o.Power])
	b.WriteString(": ")
	b.WriteString(unitTypeLetter(o.UnitType))
	b.WriteByte(' ')
	b.WriteString(formatRegion(o.Location, o.Coast))

	switch o.Type {
	case diplomacy.BuildUnit:
		b.WriteString(" build")
	case diplomacy.DisbandUnit:
		b.WriteString(" disband")
	}
	return b.String()
}
