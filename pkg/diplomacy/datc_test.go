package diplomacy

import "testing"

// DATC covers the movement-phase cases from the Diplomacy Adjudicator Test
// Cases (Kruijswijk). Retreats, builds, and phase sequencing each get their
// own case tables in their respective _test.go files.
type datcCase struct {
	id          string
	desc        string
	units       []Unit
	orders      []Order
	wantVoid    []string // locations whose order must be voided by validation
	wantLegal   []string // locations whose order must NOT be voided
	wantVerdict map[string]OrderResult
}

func (tc datcCase) run(t *testing.T) {
	t.Run(tc.id+"_"+tc.desc, func(t *testing.T) {
		m := StandardMap()
		gs := stateWith(tc.units...)
		valid, voided := ValidateAndDefaultOrders(tc.orders, gs, m)

		void := make(map[string]bool, len(voided))
		for _, v := range voided {
			void[v.Order.Location] = true
		}
		for _, loc := range tc.wantVoid {
			if !void[loc] {
				t.Errorf("%s: expected order at %s to be void", tc.id, loc)
			}
		}
		for _, loc := range tc.wantLegal {
			if void[loc] {
				t.Errorf("%s: order at %s should not be void", tc.id, loc)
			}
		}

		results, _ := ResolveOrders(valid, gs, m)
		for loc, want := range tc.wantVerdict {
			if got := resultFor(results, loc); got != want {
				t.Errorf("%s: %s verdict = %s, want %s", tc.id, loc, got, want)
			}
		}
	})
}

func TestDATC(t *testing.T) {
	cases := []datcCase{
		{
			id:   "6.A.1",
			desc: "move_to_non_adjacent_area",
			units: []Unit{
				{Fleet, England, "nth", NoCoast},
			},
			orders: []Order{
				{Fleet, England, "nth", NoCoast, OrderMove, "pic", NoCoast, "", "", Army},
			},
			wantVoid:    []string{"nth"},
			wantVerdict: map[string]OrderResult{"nth": ResultSucceeded}, // voided move defaults to a successful hold
		},
		{
			id:   "6.A.2",
			desc: "move_army_to_sea",
			units: []Unit{
				{Army, England, "lvp", NoCoast},
			},
			orders: []Order{
				{Army, England, "lvp", NoCoast, OrderMove, "iri", NoCoast, "", "", Army},
			},
			wantVoid: []string{"lvp"},
		},
		{
			id:   "6.A.3",
			desc: "move_fleet_to_land",
			units: []Unit{
				{Fleet, Germany, "kie", NoCoast},
			},
			orders: []Order{
				{Fleet, Germany, "kie", NoCoast, OrderMove, "mun", NoCoast, "", "", Army},
			},
			wantVoid: []string{"kie"},
		},
		{
			id:   "6.A.5",
			desc: "supported_attack_dislodges_holding_unit",
			units: []Unit{
				{Army, Italy, "ven", NoCoast},
				{Army, Austria, "tyr", NoCoast},
				{Army, Austria, "tri", NoCoast},
			},
			orders: []Order{
				{Army, Italy, "ven", NoCoast, OrderHold, "", NoCoast, "", "", Army},
				{Army, Austria, "tyr", NoCoast, OrderSupport, "", NoCoast, "tri", "ven", Army},
				{Army, Austria, "tri", NoCoast, OrderMove, "ven", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"tri": ResultSucceeded, "ven": ResultDislodged},
		},
		{
			id:   "6.A.6",
			desc: "unit_may_move_despite_a_support_order",
			units: []Unit{
				{Army, Germany, "ber", NoCoast},
				{Fleet, Germany, "kie", NoCoast},
				{Army, Germany, "mun", NoCoast},
			},
			orders: []Order{
				{Army, Germany, "ber", NoCoast, OrderSupport, "", NoCoast, "kie", "mun", Fleet},
				{Fleet, Germany, "kie", NoCoast, OrderMove, "ber", NoCoast, "", "", Army},
				{Army, Germany, "mun", NoCoast, OrderMove, "sil", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"mun": ResultSucceeded},
		},
		{
			id:   "6.B.1",
			desc: "unspecified_coast_accepted_when_destination_has_one_option",
			units: []Unit{
				{Fleet, France, "gol", NoCoast},
			},
			orders: []Order{
				{Fleet, France, "gol", NoCoast, OrderMove, "spa", NoCoast, "", "", Army},
			},
			wantLegal: []string{"gol"},
		},
		{
			id:   "6.B.3",
			desc: "fleet_ordered_to_unreachable_coast_is_void",
			units: []Unit{
				{Fleet, France, "gol", NoCoast},
			},
			orders: []Order{
				{Fleet, France, "gol", NoCoast, OrderMove, "spa", NorthCoast, "", "", Army},
			},
			wantVoid: []string{"gol"},
		},
		{
			id:   "6.C.1",
			desc: "three_army_circular_movement",
			units: []Unit{
				{Army, Germany, "boh", NoCoast},
				{Army, Germany, "mun", NoCoast},
				{Army, Germany, "sil", NoCoast},
			},
			orders: []Order{
				{Army, Germany, "boh", NoCoast, OrderMove, "mun", NoCoast, "", "", Army},
				{Army, Germany, "mun", NoCoast, OrderMove, "sil", NoCoast, "", "", Army},
				{Army, Germany, "sil", NoCoast, OrderMove, "boh", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"boh": ResultSucceeded, "mun": ResultSucceeded, "sil": ResultSucceeded},
		},
		{
			id:   "6.C.2",
			desc: "circular_movement_with_supporting_unit",
			units: []Unit{
				{Army, Germany, "boh", NoCoast},
				{Army, Germany, "mun", NoCoast},
				{Army, Germany, "sil", NoCoast},
				{Army, Germany, "tyr", NoCoast},
			},
			orders: []Order{
				{Army, Germany, "boh", NoCoast, OrderMove, "mun", NoCoast, "", "", Army},
				{Army, Germany, "mun", NoCoast, OrderMove, "sil", NoCoast, "", "", Army},
				{Army, Germany, "sil", NoCoast, OrderMove, "boh", NoCoast, "", "", Army},
				{Army, Germany, "tyr", NoCoast, OrderSupport, "", NoCoast, "boh", "mun", Army},
			},
			wantVerdict: map[string]OrderResult{"boh": ResultSucceeded, "mun": ResultSucceeded, "sil": ResultSucceeded},
		},
		{
			id:   "6.D.1",
			desc: "supported_hold_prevents_dislodgement",
			units: []Unit{
				{Army, Austria, "bud", NoCoast},
				{Army, Austria, "ser", NoCoast},
				{Army, Russia, "rum", NoCoast},
			},
			orders: []Order{
				{Army, Austria, "bud", NoCoast, OrderHold, "", NoCoast, "", "", Army},
				{Army, Austria, "ser", NoCoast, OrderSupport, "", NoCoast, "bud", "", Army},
				{Army, Russia, "rum", NoCoast, OrderMove, "bud", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"rum": ResultBounced, "bud": ResultSucceeded},
		},
		{
			id:   "6.D.2",
			desc: "move_cuts_support_on_hold",
			units: []Unit{
				{Army, Austria, "bud", NoCoast},
				{Army, Austria, "ser", NoCoast},
				{Army, Russia, "rum", NoCoast},
				{Army, Russia, "bul", NoCoast},
			},
			orders: []Order{
				{Army, Austria, "bud", NoCoast, OrderHold, "", NoCoast, "", "", Army},
				{Army, Austria, "ser", NoCoast, OrderSupport, "", NoCoast, "bud", "", Army},
				{Army, Russia, "rum", NoCoast, OrderMove, "bud", NoCoast, "", "", Army},
				{Army, Russia, "bul", NoCoast, OrderMove, "ser", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"ser": ResultCut, "rum": ResultBounced},
		},
		{
			id:   "6.D.3",
			desc: "move_cuts_support_on_move",
			units: []Unit{
				{Army, Austria, "ser", NoCoast},
				{Army, Austria, "bud", NoCoast},
				{Army, Russia, "rum", NoCoast},
				{Army, Turkey, "bul", NoCoast},
			},
			orders: []Order{
				{Army, Austria, "ser", NoCoast, OrderSupport, "", NoCoast, "bud", "rum", Army},
				{Army, Austria, "bud", NoCoast, OrderMove, "rum", NoCoast, "", "", Army},
				{Army, Russia, "rum", NoCoast, OrderHold, "", NoCoast, "", "", Army},
				{Army, Turkey, "bul", NoCoast, OrderMove, "ser", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"ser": ResultCut, "bud": ResultBounced},
		},
		{
			id:   "6.D.4",
			desc: "support_to_hold_on_unit_supporting_a_hold",
			units: []Unit{
				{Army, Germany, "ber", NoCoast},
				{Fleet, Germany, "kie", NoCoast},
				{Army, Russia, "pru", NoCoast},
			},
			orders: []Order{
				{Army, Germany, "ber", NoCoast, OrderSupport, "", NoCoast, "kie", "", Fleet},
				{Fleet, Germany, "kie", NoCoast, OrderSupport, "", NoCoast, "ber", "", Army},
				{Army, Russia, "pru", NoCoast, OrderMove, "ber", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"pru": ResultBounced},
		},
		{
			id:   "6.D.7",
			desc: "support_cannot_be_cut_by_the_unit_it_opposes",
			units: []Unit{
				{Army, Germany, "mun", NoCoast},
				{Army, Germany, "sil", NoCoast},
				{Army, Russia, "war", NoCoast},
				{Army, Austria, "boh", NoCoast},
			},
			orders: []Order{
				{Army, Germany, "mun", NoCoast, OrderSupport, "", NoCoast, "sil", "boh", Army},
				{Army, Germany, "sil", NoCoast, OrderMove, "boh", NoCoast, "", "", Army},
				{Army, Russia, "war", NoCoast, OrderMove, "sil", NoCoast, "", "", Army},
				{Army, Austria, "boh", NoCoast, OrderMove, "mun", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"sil": ResultSucceeded},
		},
		{
			id:   "6.E.1",
			desc: "no_swap_places_without_a_convoy",
			units: []Unit{
				{Army, Italy, "rom", NoCoast},
				{Army, Italy, "ven", NoCoast},
			},
			orders: []Order{
				{Army, Italy, "rom", NoCoast, OrderMove, "ven", NoCoast, "", "", Army},
				{Army, Italy, "ven", NoCoast, OrderMove, "rom", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"rom": ResultBounced, "ven": ResultBounced},
		},
		{
			id:   "6.E.2",
			desc: "supported_head_to_head_beats_unsupported",
			units: []Unit{
				{Army, Austria, "tri", NoCoast},
				{Army, Austria, "tyr", NoCoast},
				{Army, Italy, "ven", NoCoast},
			},
			orders: []Order{
				{Army, Austria, "tri", NoCoast, OrderSupport, "", NoCoast, "tyr", "ven", Army},
				{Army, Austria, "tyr", NoCoast, OrderMove, "ven", NoCoast, "", "", Army},
				{Army, Italy, "ven", NoCoast, OrderMove, "tyr", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"tyr": ResultSucceeded, "ven": ResultDislodged},
		},
		{
			id:   "6.E.6",
			desc: "beleaguered_garrison",
			units: []Unit{
				{Army, Germany, "mun", NoCoast},
				{Army, France, "bur", NoCoast},
				{Army, Italy, "tyr", NoCoast},
			},
			orders: []Order{
				{Army, Germany, "mun", NoCoast, OrderHold, "", NoCoast, "", "", Army},
				{Army, France, "bur", NoCoast, OrderMove, "mun", NoCoast, "", "", Army},
				{Army, Italy, "tyr", NoCoast, OrderMove, "mun", NoCoast, "", "", Army},
			},
			wantVerdict: map[string]OrderResult{"mun": ResultSucceeded, "bur": ResultBounced, "tyr": ResultBounced},
		},
		{
			id:   "6.F.1",
			desc: "simple_convoy",
			units: []Unit{
				{Army, England, "lon", NoCoast},
				{Fleet, England, "nth", NoCoast},
			},
			orders: []Order{
				{Army, England, "lon", NoCoast, OrderMove, "nwy", NoCoast, "", "", Army},
				{Fleet, England, "nth", NoCoast, OrderConvoy, "", NoCoast, "lon", "nwy", Army},
			},
			wantVerdict: map[string]OrderResult{"lon": ResultSucceeded},
		},
		{
			id:   "6.F.2",
			desc: "disrupted_convoy_fails_the_move",
			units: []Unit{
				{Army, England, "lon", NoCoast},
				{Fleet, England, "nth", NoCoast},
				{Fleet, France, "eng", NoCoast},
				{Fleet, France, "bel", NoCoast},
			},
			orders: []Order{
				{Army, England, "lon", NoCoast, OrderMove, "nwy", NoCoast, "", "", Army},
				{Fleet, England, "nth", NoCoast, OrderConvoy, "", NoCoast, "lon", "nwy", Army},
				{Fleet, France, "eng", NoCoast, OrderMove, "nth", NoCoast, "", "", Army},
				{Fleet, France, "bel", NoCoast, OrderSupport, "", NoCoast, "eng", "nth", Fleet},
			},
			wantVerdict: map[string]OrderResult{"nth": ResultDislodged, "lon": ResultBounced},
		},
	}

	for _, tc := range cases {
		tc.run(t)
	}
}
