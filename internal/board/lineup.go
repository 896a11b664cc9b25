package board

// StandardLineup is the opening placement: each side fields a leader on its
// back rank, three ranged units in front of it and a line of five basics.
func StandardLineup() []Unit {
	var out []Unit
	for _, side := range []Side{SideWhite, SideBlack} {
		back, mid, front := 1, 2, 3
		if side == SideBlack {
			back, mid, front = 9, 8, 7
		}
		out = append(out, Unit{Side: side, Kind: UnitLeader, Row: back, Col: 5})
		for _, c := range []int{3, 5, 7} {
			out = append(out, Unit{Side: side, Kind: UnitRanged, Row: mid, Col: c})
		}
		for c := 3; c <= 7; c++ {
			out = append(out, Unit{Side: side, Kind: UnitBasic, Row: front, Col: c})
		}
	}
	return out
}

// WithLineup places every unit in us.
func WithLineup(us []Unit) []Option {
	opts := make([]Option, 0, len(us))
	for _, u := range us {
		opts = append(opts, WithUnit(u.Side, u.Kind, u.Row, u.Col))
	}
	return opts
}
