package mlkem

// pkeKeyGen implements K-PKE.KeyGen (FIPS 203 Algorithm 13): derive (rho,
// sigma) from the seed d, sample the public matrix A and the secret/error
// vectors s/e from sigma, and compute t = A*s + e in NTT domain.
func pkeKeyGen(d []byte, p params) (rho []byte, a [][]nttElement, t, s []nttElement) {
	rhoArr, sigma := hashG(d, []byte{byte(p.k)})
	rho = rhoArr[:]

	a = sampleMatrix(rho, p.k)

	s = make([]nttElement, p.k)
	nonce := byte(0)
	for i := range s {
		s[i] = ntt(samplePolyCBD(sigma[:], p.eta1, nonce))
		nonce++
	}

	e := make([]nttElement, p.k)
	for i := range e {
		e[i] = ntt(samplePolyCBD(sigma[:], p.eta1, nonce))
		nonce++
	}

	t = make([]nttElement, p.k)
	for i := 0; i < p.k; i++ {
		var acc nttElement
		for j := 0; j < p.k; j++ {
			acc = nttAddMul(acc, a[i][j], s[j])
		}
		t[i] = nttElement(polyAdd(ringElement(acc), ringElement(e[i])))
	}
	return rho, a, t, s
}

// pkeEncrypt implements K-PKE.Encrypt (FIPS 203 Algorithm 14).
func pkeEncrypt(a [][]nttElement, t []nttElement, m, r []byte, p params) []byte {
	y := make([]nttElement, p.k)
	nonce := byte(0)
	for i := range y {
		y[i] = ntt(samplePolyCBD(r, p.eta1, nonce))
		nonce++
	}

	e1 := make([]ringElement, p.k)
	for i := range e1 {
		e1[i] = samplePolyCBD(r, p.eta2, nonce)
		nonce++
	}

	e2 := samplePolyCBD(r, p.eta2, nonce)

	// u[j] = NTT^-1(sum_i A[i][j] * y[i]) + e1[j]
	u := make([]ringElement, p.k)
	for j := 0; j < p.k; j++ {
		var acc nttElement
		for i := 0; i < p.k; i++ {
			acc = nttAddMul(acc, a[i][j], y[i])
		}
		u[j] = polyAdd(invNTT(acc), e1[j])
	}

	mu, _ := byteDecode(m, 1)
	mu = decompress(mu, 1)

	var vAcc nttElement
	for i := 0; i < p.k; i++ {
		vAcc = nttAddMul(vAcc, t[i], y[i])
	}
	v := polyAdd(polyAdd(invNTT(vAcc), mu), e2)

	c1 := make([]ringElement, p.k)
	for i := range c1 {
		c1[i] = compress(u[i], p.du)
	}
	c2 := compress(v, p.dv)

	out := make([]byte, 0, p.ciphertextSize())
	out = append(out, encodeVector(c1, p.du)...)
	out = append(out, byteEncode(c2, p.dv)...)
	return out
}

// pkeDecrypt implements K-PKE.Decrypt (FIPS 203 Algorithm 15).
func pkeDecrypt(s []nttElement, c []byte, p params) []byte {
	c1 := c[:32*p.du*p.k]
	c2 := c[32*p.du*p.k:]

	uCompressed, _ := decodeVector(c1, p.k, p.du)
	u := make([]nttElement, p.k)
	for i := range u {
		u[i] = ntt(decompress(uCompressed[i], p.du))
	}

	vCompressed, _ := byteDecode(c2, p.dv)
	v := decompress(vCompressed, p.dv)

	var wAcc nttElement
	for i := 0; i < p.k; i++ {
		wAcc = nttAddMul(wAcc, s[i], u[i])
	}
	w := invNTT(wAcc)

	mu := polySub(v, w)
	muCompressed := compress(mu, 1)
	return byteEncode(muCompressed, 1)
}
