package pairing

// saengerKey identifies a full canonical Watson-Crick match by the two
// canonical base letters (order-sensitive: a is residue i, b is residue
// j) and orientation.
type saengerKey struct {
	a, b        byte
	orientation string
}

// saengerTable gives the roman-numeral Saenger classification for full
// canonical WC matches (§4.5 step 3). Saenger XIX/XX are the standard
// cis Watson-Crick G-C/A-U(T) geometries; their trans counterparts are
// vanishingly rare in the classified pair set and are left as "n/a"
// (see the Open Question decision in DESIGN.md).
var saengerTable = map[saengerKey]string{
	{'G', 'C', "cis"}: "XIX",
	{'C', 'G', "cis"}: "XIX",
	{'A', 'T', "cis"}: "XX",
	{'T', 'A', "cis"}: "XX",
	{'A', 'U', "cis"}: "XX",
	{'U', 'A', "cis"}: "XX",
}

func lookupSaenger(li, lj byte, orientation string) string {
	if v, ok := saengerTable[saengerKey{li, lj, orientation}]; ok {
		return v
	}
	return "n/a"
}
