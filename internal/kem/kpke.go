package kem

import (
	"github.com/itzmeanjan/ml-kem-sub000/internal/ring"
	"github.com/itzmeanjan/ml-kem-sub000/internal/sample"
	"github.com/itzmeanjan/ml-kem-sub000/internal/xof"
)

const encodedPolyBytes = 32 * 12

// KeyGenPKE implements K-PKE.KeyGen (spec.md §4.7, FIPS 203 algorithm 13):
// it expands a 32-byte seed d into a matching encryption/decryption key
// pair for the IND-CPA-secure public-key encryption scheme underlying
// ML-KEM.
func (p Params) KeyGenPKE(d []byte) (ekPKE, dkPKE []byte) {
	rho, sigma := xof.G(d, []byte{byte(p.K)})

	a := sample.Matrix(p.K, rho[:], false)

	s, nonce := sample.NoiseVector(p.K, p.Eta1, sigma[:], 0)
	e, _ := sample.NoiseVector(p.K, p.Eta1, sigma[:], nonce)

	sHat, eHat := s, e
	sHat.NTT()
	eHat.NTT()

	tHat := ring.NewVector(p.K)
	a.MulVector(tHat, sHat)
	tHat.Add(tHat, eHat)

	ekPKE = append(tHat.EncodeL(12), rho[:]...)
	dkPKE = sHat.EncodeL(12)
	return
}

// EncryptPKE implements K-PKE.Encrypt (spec.md §4.7, FIPS 203 algorithm
// 14), sealing a 32-byte message m under ekPKE with randomness coins.
func (p Params) EncryptPKE(ekPKE, m, coins []byte) []byte {
	tHat := ring.DecodeVectorL(p.K, 12, ekPKE[:p.K*encodedPolyBytes])
	rho := ekPKE[p.K*encodedPolyBytes:]

	aT := sample.Matrix(p.K, rho, true)

	r, nonce := sample.NoiseVector(p.K, p.Eta1, coins, 0)
	e1, nonce := sample.NoiseVector(p.K, p.Eta2, coins, nonce)
	e2Poly, _ := sample.Noise(p.Eta2, coins, nonce)

	r.NTT() // r now holds r̂ in place
	rHat := r

	u := ring.NewVector(p.K)
	aT.MulVector(u, rHat)
	u.InvNTT()
	u.Add(u, e1)

	var tr ring.Poly
	ring.DotNTT(&tr, tHat, rHat)
	tr.InvNTT()

	muPoly := decodeMessage(m)

	var v ring.Poly
	v.Add(&tr, e2Poly)
	v.Add(&v, muPoly)

	u.Compress(p.Du)
	v.Compress(p.Dv)

	c1 := u.EncodeL(p.Du)
	c2 := ring.EncodeL(p.Dv, &v)
	return append(c1, c2...)
}

// DecryptPKE implements K-PKE.Decrypt (spec.md §4.7, FIPS 203 algorithm
// 15), recovering the 32-byte message encrypted in ct under dkPKE. It
// never fails: an invalid ciphertext simply decrypts to noise.
func (p Params) DecryptPKE(dkPKE, ct []byte) []byte {
	c1Len := p.K * 32 * p.Du
	u := ring.DecodeVectorL(p.K, p.Du, ct[:c1Len])
	v := ring.DecodeL(p.Dv, ct[c1Len:])

	u.Decompress(p.Du)
	v.Decompress(p.Dv)

	sHat := ring.DecodeVectorL(p.K, 12, dkPKE)

	u.NTT() // u now holds û in place
	uHat := u

	var su ring.Poly
	ring.DotNTT(&su, sHat, uHat)
	su.InvNTT()

	var w ring.Poly
	w.Sub(v, &su)

	return encodeMessage(&w)
}

// decodeMessage turns a 32-byte message into the polynomial
// Decompress_1(ByteDecode_1(m)): each bit becomes a coefficient that is
// either 0 or round(q/2).
func decodeMessage(m []byte) *ring.Poly {
	p := ring.DecodeL(1, m)
	p.Decompress(1)
	return p
}

// encodeMessage is the inverse of decodeMessage: ByteEncode_1(Compress_1(p)).
func encodeMessage(p *ring.Poly) []byte {
	c := *p
	c.Compress(1)
	return ring.EncodeL(1, &c)
}
