package pairing

// Profile accumulates the counters the legacy RNAVIEW instrumentation
// tracked as a single process-wide struct (rnaview_profile.h). Per §9's
// design note, it is reimplemented as a value explicitly threaded
// through Analyze rather than as global state: a nil *Profile is valid
// and every method on it is then a no-op, so callers who don't want
// profiling pay nothing for it.
type Profile struct {
	NumResidue int64

	CandPairs               int64
	AllPairsCheckPairsCalls int64
	AllPairsBaseStackCalls  int64
	AllPairsHbondPairCalls  int64
	AllPairsLWPairTypeCalls int64
	BestPairCheckPairsCalls int64
}

func (p *Profile) setNumResidue(n int) {
	if p == nil {
		return
	}
	p.NumResidue = int64(n)
}

func (p *Profile) addCandPair() {
	if p == nil {
		return
	}
	p.CandPairs++
}

func (p *Profile) addCheckPairsCall() {
	if p == nil {
		return
	}
	p.AllPairsCheckPairsCalls++
}

func (p *Profile) addBaseStackCall() {
	if p == nil {
		return
	}
	p.AllPairsBaseStackCalls++
}

func (p *Profile) addHbondPairCall() {
	if p == nil {
		return
	}
	p.AllPairsHbondPairCalls++
}

func (p *Profile) addLWPairTypeCall() {
	if p == nil {
		return
	}
	p.AllPairsLWPairTypeCalls++
}

func (p *Profile) addBestPairCheckPairsCall() {
	if p == nil {
		return
	}
	p.BestPairCheckPairsCalls++
}
