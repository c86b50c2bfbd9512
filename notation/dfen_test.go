package notation

import (
	"testing"

	"github.com/freeeve/diplomacy/pkg/diplomacy"
)

func TestDFENRoundTrip(t *testing.T) {
	gs := diplomacy.NewInitialState()
	encoded := EncodeDFEN(gs)

	decoded, err := DecodeDFEN(encoded)
	if err != nil {
		t.Fatalf("DecodeDFEN(%q) returned error: %v", encoded, err)
	}

	if decoded.Year != gs.Year || decoded.Season != gs.Season || decoded.Phase != gs.Phase {
		t.Errorf("phase info mismatch: got %d%s%s, want %d%s%s",
			decoded.Year, decoded.Season, decoded.Phase, gs.Year, gs.Season, gs.Phase)
	}
	if len(decoded.Units) != len(gs.Units) {
		t.Errorf("unit count mismatch: got %d, want %d", len(decoded.Units), len(gs.Units))
	}
	if len(decoded.SupplyCenters) != len(gs.SupplyCenters) {
		t.Errorf("supply center count mismatch: got %d, want %d", len(decoded.SupplyCenters), len(gs.SupplyCenters))
	}

	reencoded := EncodeDFEN(decoded)
	if reencoded != encoded {
		t.Errorf("re-encoding diverged:\n  first:  %s\n  second: %s", encoded, reencoded)
	}
}

func TestDFENEncodeDeterministic(t *testing.T) {
	gs := diplomacy.NewInitialState()
	first := EncodeDFEN(gs)
	second := EncodeDFEN(gs)
	if first != second {
		t.Errorf("EncodeDFEN is not deterministic: %q != %q", first, second)
	}
}

func TestDFENDislodged(t *testing.T) {
	gs := &diplomacy.GameState{
		Year:   1901,
		Season: diplomacy.Fall,
		Phase:  diplomacy.PhaseRetreat,
		Units: []diplomacy.Unit{
			{Type: diplomacy.Army, Power: diplomacy.Austria, Province: "vie"},
		},
		SupplyCenters: map[string]diplomacy.Power{"vie": diplomacy.Austria},
		Dislodged: []diplomacy.DislodgedUnit{
			{
				Unit:          diplomacy.Unit{Type: diplomacy.Army, Power: diplomacy.Russia, Province: "war"},
				DislodgedFrom: "war",
				AttackerFrom:  "gal",
			},
		},
	}

	encoded := EncodeDFEN(gs)
	decoded, err := DecodeDFEN(encoded)
	if err != nil {
		t.Fatalf("DecodeDFEN(%q) returned error: %v", encoded, err)
	}

	if len(decoded.Dislodged) != 1 {
		t.Fatalf("expected 1 dislodged unit, got %d", len(decoded.Dislodged))
	}
	d := decoded.Dislodged[0]
	if d.Unit.Province != "war" || d.AttackerFrom != "gal" || d.Unit.Power != diplomacy.Russia {
		t.Errorf("dislodged unit mismatch: %+v", d)
	}
}

func TestDFENSplitCoast(t *testing.T) {
	gs := &diplomacy.GameState{
		Year:   1901,
		Season: diplomacy.Spring,
		Phase:  diplomacy.PhaseMovement,
		Units: []diplomacy.Unit{
			{Type: diplomacy.Fleet, Power: diplomacy.Russia, Province: "stp", Coast: diplomacy.SouthCoast},
		},
		SupplyCenters: map[string]diplomacy.Power{},
	}

	encoded := EncodeDFEN(gs)
	decoded, err := DecodeDFEN(encoded)
	if err != nil {
		t.Fatalf("DecodeDFEN(%q) returned error: %v", encoded, err)
	}
	if len(decoded.Units) != 1 || decoded.Units[0].Coast != diplomacy.SouthCoast {
		t.Errorf("split coast unit not preserved: %+v", decoded.Units)
	}
}

func TestDecodeDFENInvalid(t *testing.T) {
	tests := []string{
		"",
		"1901sm/-/-",          // missing a section
		"garbagesm/-/-/-",     // bad year
		"1901xm/-/-/-",        // bad season
		"1901sx/-/-/-",        // bad phase
		"1901sm/Zavie/-/-",    // bad power char
		"1901sm/Aaxx/-/-",     // bad province length
	}
	for _, s := range tests {
		if _, err := DecodeDFEN(s); err == nil {
			t.Errorf("DecodeDFEN(%q): expected error, got nil", s)
		}
	}
}
