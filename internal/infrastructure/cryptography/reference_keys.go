package cryptography

import (
	"crypto/rsa"
	"math/big"
)

func mustParseBase10(base10 string) *big.Int {
	i, ok := new(big.Int).SetString(base10, 10)
	if !ok {
		panic("bad number: " + base10)
	}
	return i
}

// ReferenceKeyPair returns a fixed RSA key pair with a 96-byte modulus, used
// by the demo command and the end-to-end tests. Small enough to keep the
// attack in the low seconds, large enough to exercise the full search.
func ReferenceKeyPair() (*rsa.PublicKey, *rsa.PrivateKey) {
	n := mustParseBase10("808869223985516960368876661325421342956188747444816787075452418831756698052319507647734290271914602491649041286040478024422708306710833911490677450264937182027085317649671212985695037997277298077927635573086873269508490390058295009")
	d := mustParseBase10("140059019390384766868578243629108463919111798007290246726768604740875764980052821654736846758406501809286865747806379397671201970191042812009276850902545401782571583052833853265766251205525586634281761444346304515174630341474737089")

	privateKey := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: n, E: 65537},
		D:         d,
	}
	return &privateKey.PublicKey, privateKey
}
