// Package kem implements K-PKE (spec.md §4.7) and the ML-KEM
// Fujisaki-Okamoto transform built on top of it (spec.md §4.8), generic
// over the three FIPS 203 parameter sets.
package kem

// Params fixes one FIPS 203 parameter set. The three instances below are
// the only values spec.md's Non-goals permit; Params itself does not
// validate its fields, so constructing one outside this file is the
// caller's responsibility.
type Params struct {
	Name string
	K    int
	Eta1 int
	Eta2 int
	Du   int
	Dv   int
}

// Sizes of the byte encodings this parameter set produces, derived from
// K, Du and Dv rather than hardcoded, so a future parameter set needs no
// new constants here.
func (p Params) Sizes() (pkBytes, skBytes, ctBytes int) {
	pkBytes = p.K*encodedPolyBytes + seedBytes
	skPKEBytes := p.K * encodedPolyBytes
	skBytes = skPKEBytes + pkBytes + seedBytes + seedBytes // dk_PKE, ek_PKE, H(ek), z
	ctBytes = p.K*32*p.Du + 32*p.Dv
	return
}

// Params512, Params768 and Params1024 are the FIPS 203 ML-KEM-512,
// ML-KEM-768 and ML-KEM-1024 parameter sets respectively.
var (
	Params512  = Params{Name: "ML-KEM-512", K: 2, Eta1: 3, Eta2: 2, Du: 10, Dv: 4}
	Params768  = Params{Name: "ML-KEM-768", K: 3, Eta1: 2, Eta2: 2, Du: 10, Dv: 4}
	Params1024 = Params{Name: "ML-KEM-1024", K: 4, Eta1: 2, Eta2: 2, Du: 11, Dv: 5}
)
