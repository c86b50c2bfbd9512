package notation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/freeeve/diplomacy/pkg/diplomacy"
)

// powerToChar maps a Power constant to the DFEN single-character abbreviation.
var powerToChar = map[diplomacy.Power]byte{
	diplomacy.Austria: 'A',
	diplomacy.England: 'E',
	diplomacy.France:  'F',
	diplomacy.Germany: 'G',
	diplomacy.Italy:   'I',
	diplomacy.Russia:  'R',
	diplomacy.Turkey:  'T',
	diplomacy.Neutral: 'N',
}

// charToPower maps a DFEN single character back to a Power constant.
var charToPower = map[byte]diplomacy.Power{
	'A': diplomacy.Austria,
	'E': diplomacy.England,
	'F': diplomacy.France,
	'G': diplomacy.Germany,
	'I': diplomacy.Italy,
	'R': diplomacy.Russia,
	'T': diplomacy.Turkey,
	'N': diplomacy.Neutral,
}

// powerOrder defines the canonical ordering for DFEN output.
var powerOrder = []diplomacy.Power{
	diplomacy.Austria, diplomacy.England, diplomacy.France, diplomacy.Germany,
	diplomacy.Italy, diplomacy.Russia, diplomacy.Turkey,
}

var seasonToChar = map[diplomacy.Season]byte{
	diplomacy.Spring: 's',
	diplomacy.Fall:   'f',
}

var charToSeason = map[byte]diplomacy.Season{
	's': diplomacy.Spring,
	'f': diplomacy.Fall,
}

var phaseToChar = map[diplomacy.PhaseType]byte{
	diplomacy.PhaseMovement: 'm',
	diplomacy.PhaseRetreat:  'r',
	diplomacy.PhaseBuild:    'b',
}

var charToPhase = map[byte]diplomacy.PhaseType{
	'm': diplomacy.PhaseMovement,
	'r': diplomacy.PhaseRetreat,
	'b': diplomacy.PhaseBuild,
}

// EncodeDFEN serializes a GameState to a DFEN string: a compact,
// deterministic position notation (four '/'-separated sections: phase
// info, units, supply centers, dislodged units) used for log lines, test
// fixtures, and debugging a paradoxical position after the fact. Units
// and supply centers are sorted by power order (A,E,F,G,I,R,T) then
// alphabetically within each power, so two equal positions always encode
// to the same string.
func EncodeDFEN(gs *diplomacy.GameState) string {
	var b strings.Builder
	b.Grow(512)

	encodePhaseInfo(&b, gs)
	b.WriteByte('/')
	encodeUnits(&b, gs)
	b.WriteByte('/')
	encodeSupplyCenters(&b, gs)
	b.WriteByte('/')
	encodeDislodged(&b, gs)

	return b.String()
}

func encodePhaseInfo(b *strings.Builder, gs *diplomacy.GameState) {
	b.WriteString(strconv.Itoa(gs.Year))
	b.WriteByte(seasonToChar[gs.Season])
	b.WriteByte(phaseToChar[gs.Phase])
}

func encodeUnitLocation(b *strings.Builder, province string, coast diplomacy.Coast) {
	b.WriteString(province)
	if coast != diplomacy.NoCoast {
		b.WriteByte('.')
		b.WriteString(string(coast))
	}
}

func encodeUnits(b *strings.Builder, gs *diplomacy.GameState) {
	if len(gs.Units) == 0 {
		b.WriteByte('-')
		return
	}

	grouped := groupUnitsByPower(gs.Units)
	first := true
	for _, power := range powerOrder {
		units := grouped[power]
		sort.Slice(units, func(i, j int) bool {
			return units[i].Province < units[j].Province
		})
		for _, u := range units {
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteByte(powerToChar[u.Power])
			if u.Type == diplomacy.Army {
				b.WriteByte('a')
			} else {
				b.WriteByte('f')
			}
			encodeUnitLocation(b, u.Province, u.Coast)
		}
	}

	if first {
		b.WriteByte('-')
	}
}

func encodeSupplyCenters(b *strings.Builder, gs *diplomacy.GameState) {
	grouped := make(map[diplomacy.Power][]string)
	for prov, power := range gs.SupplyCenters {
		grouped[power] = append(grouped[power], prov)
	}
	for _, provs := range grouped {
		sort.Strings(provs)
	}

	allPowers := append([]diplomacy.Power{}, powerOrder...)
	allPowers = append(allPowers, diplomacy.Neutral)

	first := true
	for _, power := range allPowers {
		for _, prov := range grouped[power] {
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteByte(powerToChar[power])
			b.WriteString(prov)
		}
	}
}

func encodeDislodged(b *strings.Builder, gs *diplomacy.GameState) {
	if len(gs.Dislodged) == 0 {
		b.WriteByte('-')
		return
	}

	sorted := make([]diplomacy.DislodgedUnit, len(gs.Dislodged))
	copy(sorted, gs.Dislodged)
	sort.Slice(sorted, func(i, j int) bool {
		pi := powerToChar[sorted[i].Unit.Power]
		pj := powerToChar[sorted[j].Unit.Power]
		if pi != pj {
			return pi < pj
		}
		return sorted[i].Unit.Province < sorted[j].Unit.Province
	})

	for i, d := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(powerToChar[d.Unit.Power])
		if d.Unit.Type == diplomacy.Army {
			b.WriteByte('a')
		} else {
			b.WriteByte('f')
		}
		encodeUnitLocation(b, d.Unit.Province, d.Unit.Coast)
		b.WriteByte('<')
		b.WriteString(d.AttackerFrom)
	}
}

func groupUnitsByPower(units []diplomacy.Unit) map[diplomacy.Power][]diplomacy.Unit {
	grouped := make(map[diplomacy.Power][]diplomacy.Unit)
	for _, u := range units {
		grouped[u.Power] = append(grouped[u.Power], u)
	}
	return grouped
}

// DecodeDFEN parses a DFEN string into a GameState.
func DecodeDFEN(s string) (*diplomacy.GameState, error) {
	parts := strings.SplitN(s, "/", 4)
	if len(parts) != 4 {
		return nil, fmt.Errorf("dfen: expected 4 sections separated by '/', got %d", len(parts))
	}

	gs := &diplomacy.GameState{}

	if err := decodePhaseInfo(parts[0], gs); err != nil {
		return nil, err
	}
	if err := decodeUnits(parts[1], gs); err != nil {
		return nil, err
	}
	if err := decodeSupplyCenters(parts[2], gs); err != nil {
		return nil, err
	}
	if err := decodeDislodged(parts[3], gs); err != nil {
		return nil, err
	}

	return gs, nil
}

func decodePhaseInfo(s string, gs *diplomacy.GameState) error {
	if len(s) < 3 {
		return fmt.Errorf("dfen: phase info too short: %q", s)
	}

	phaseChar := s[len(s)-1]
	seasonChar := s[len(s)-2]
	yearStr := s[:len(s)-2]

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return fmt.Errorf("dfen: invalid year %q: %w", yearStr, err)
	}

	season, ok := charToSeason[seasonChar]
	if !ok {
		return fmt.Errorf("dfen: invalid season %q", string(seasonChar))
	}

	phase, ok := charToPhase[phaseChar]
	if !ok {
		return fmt.Errorf("dfen: invalid phase %q", string(phaseChar))
	}

	gs.Year = year
	gs.Season = season
	gs.Phase = phase
	return nil
}

func decodeUnits(s string, gs *diplomacy.GameState) error {
	if s == "-" {
		return nil
	}

	for _, entry := range strings.Split(s, ",") {
		u, err := parseUnitEntry(entry)
		if err != nil {
			return fmt.Errorf("dfen: unit %q: %w", entry, err)
		}
		gs.Units = append(gs.Units, u)
	}
	return nil
}

func parseUnitEntry(s string) (diplomacy.Unit, error) {
	if len(s) < 5 {
		return diplomacy.Unit{}, fmt.Errorf("too short")
	}

	power, ok := charToPower[s[0]]
	if !ok || power == diplomacy.Neutral {
		return diplomacy.Unit{}, fmt.Errorf("invalid power char %q", string(s[0]))
	}

	var unitType diplomacy.UnitType
	switch s[1] {
	case 'a':
		unitType = diplomacy.Army
	case 'f':
		unitType = diplomacy.Fleet
	default:
		return diplomacy.Unit{}, fmt.Errorf("invalid unit type %q", string(s[1]))
	}

	province, coast, err := parseDFENLocation(s[2:])
	if err != nil {
		return diplomacy.Unit{}, err
	}

	return diplomacy.Unit{
		Type:     unitType,
		Power:    power,
		Province: province,
		Coast:    coast,
	}, nil
}

func parseDFENLocation(s string) (string, diplomacy.Coast, error) {
	parts := strings.SplitN(s, ".", 2)
	province := parts[0]
	if len(province) != 3 {
		return "", diplomacy.NoCoast, fmt.Errorf("invalid province id %q (must be 3 lowercase letters)", province)
	}

	coast := diplomacy.NoCoast
	if len(parts) == 2 {
		c := diplomacy.Coast(parts[1])
		switch c {
		case diplomacy.NorthCoast, diplomacy.SouthCoast, diplomacy.EastCoast:
			coast = c
		default:
			return "", diplomacy.NoCoast, fmt.Errorf("invalid coast %q", parts[1])
		}
	}

	return province, coast, nil
}

func decodeSupplyCenters(s string, gs *diplomacy.GameState) error {
	gs.SupplyCenters = make(map[string]diplomacy.Power)
	if s == "-" || s == "" {
		return nil
	}
	for _, entry := range strings.Split(s, ",") {
		if len(entry) < 4 {
			return fmt.Errorf("dfen: sc entry too short: %q", entry)
		}
		power, ok := charToPower[entry[0]]
		if !ok {
			return fmt.Errorf("dfen: invalid power in sc %q", entry)
		}
		prov := entry[1:]
		if len(prov) != 3 {
			return fmt.Errorf("dfen: invalid province in sc %q", entry)
		}
		gs.SupplyCenters[prov] = power
	}
	return nil
}

func decodeDislodged(s string, gs *diplomacy.GameState) error {
	if s == "-" {
		return nil
	}

	for _, entry := range strings.Split(s, ",") {
		d, err := parseDislodgedEntry(entry)
		if err != nil {
			return fmt.Errorf("dfen: dislodged %q: %w", entry, err)
		}
		gs.Dislodged = append(gs.Dislodged, d)
	}
	return nil
}

func parseDislodgedEntry(s string) (diplomacy.DislodgedUnit, error) {
	unitPart, attackerFrom, ok := strings.Cut(s, "<")
	if !ok {
		return diplomacy.DislodgedUnit{}, fmt.Errorf("missing '<' separator")
	}

	if len(attackerFrom) != 3 {
		return diplomacy.DislodgedUnit{}, fmt.Errorf("invalid attacker province %q", attackerFrom)
	}

	u, err := parseUnitEntry(unitPart)
	if err != nil {
		return diplomacy.DislodgedUnit{}, err
	}

	return diplomacy.DislodgedUnit{
		Unit:          u,
		DislodgedFrom: u.Province,
		AttackerFrom:  attackerFrom,
	}, nil
}
