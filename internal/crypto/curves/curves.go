package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tjfoc/gmsm/sm2"

	"github.com/smallyu/go-tpm-bnbridge/pkg/bignum"
)

// ID is the TPM_ECC_CURVE identifier of a curve.
type ID uint16

const (
	NistP224 ID = 0x0002
	NistP256 ID = 0x0003
	NistP384 ID = 0x0004
	NistP521 ID = 0x0005
	BnP256   ID = 0x0010
	Sm2P256  ID = 0x0020

	// Vendor range, not assigned by the TCG algorithm registry.
	Secp256k1 ID = 0x8001
	Bn254     ID = 0x8002
)

// Engine names understood by the ecp package.
const (
	EngineGeneric   = "generic"
	EngineNIST      = "nist"
	EngineSecp256k1 = "secp256k1"
	EngineBN254     = "bn254"
	EngineSM2       = "sm2"
)

// Data holds the constants of a short Weierstrass curve y^2 = x^3 + ax + b
// over GF(Prime). All values are stored as caller bignums.
type Data struct {
	ID          ID
	Name        string
	KeySizeBits int
	Prime       *bignum.Num
	A           *bignum.Num
	B           *bignum.Num
	Base        *bignum.Point
	Order       *bignum.Num
	Cofactor    *bignum.Num
	// Engine is the preferred foreign engine for this curve.
	Engine string
}

func (d *Data) String() string {
	return fmt.Sprintf("%s(0x%04x)", d.Name, uint16(d.ID))
}

var table = map[ID]*Data{}

func register(d *Data) {
	if _, dup := table[d.ID]; dup {
		panic(fmt.Sprintf("curves: duplicate curve id 0x%04x", uint16(d.ID)))
	}
	table[d.ID] = d
}

func fromBig(v *big.Int) *bignum.Num {
	return bignum.FromBytes(v.Bytes())
}

// aMinus3 returns p - 3, the a coefficient of the NIST and SM2 curves.
func aMinus3(p *big.Int) *bignum.Num {
	return fromBig(new(big.Int).Sub(p, big.NewInt(3)))
}

func fromParams(id ID, engine string, params *elliptic.CurveParams, a *bignum.Num) *Data {
	return &Data{
		ID:          id,
		Name:        params.Name,
		KeySizeBits: params.BitSize,
		Prime:       fromBig(params.P),
		A:           a,
		B:           fromBig(params.B),
		Base:        bignum.NewAffine(fromBig(params.Gx), fromBig(params.Gy)),
		Order:       fromBig(params.N),
		Cofactor:    bignum.FromWord(1),
		Engine:      engine,
	}
}

func init() {
	for _, c := range []struct {
		id    ID
		curve elliptic.Curve
	}{
		{NistP224, elliptic.P224()},
		{NistP256, elliptic.P256()},
		{NistP384, elliptic.P384()},
		{NistP521, elliptic.P521()},
	} {
		params := c.curve.Params()
		register(fromParams(c.id, EngineNIST, params, aMinus3(params.P)))
	}

	k1 := fromParams(Secp256k1, EngineSecp256k1, secp256k1.S256().Params(), bignum.FromWord(0))
	k1.Name = "secp256k1"
	register(k1)

	sm2Params := sm2.P256Sm2().Params()
	sm := fromParams(Sm2P256, EngineSM2, sm2Params, aMinus3(sm2Params.P))
	sm.Name = "SM2-P256"
	register(sm)

	register(&Data{
		ID:          Bn254,
		Name:        "BN254",
		KeySizeBits: 254,
		Prime:       fromBig(fp.Modulus()),
		A:           bignum.FromWord(0),
		B:           bignum.FromWord(3),
		Base:        bignum.NewAffine(bignum.FromWord(1), bignum.FromWord(2)),
		Order:       fromBig(fr.Modulus()),
		Cofactor:    bignum.FromWord(1),
		Engine:      EngineBN254,
	})

	register(&Data{
		ID:          BnP256,
		Name:        "BN-P256",
		KeySizeBits: 256,
		Prime:       bignum.MustHex("FFFFFFFFFFFCF0CD46E5F25EEE71A49F0CDC65FB12980A82D3292DDBAED33013"),
		A:           bignum.FromWord(0),
		B:           bignum.FromWord(3),
		Base:        bignum.NewAffine(bignum.FromWord(1), bignum.FromWord(2)),
		Order:       bignum.MustHex("FFFFFFFFFFFCF0CD46E5F25EEE71A49E0CDC65FB1299921AF62D536CD10B500D"),
		Cofactor:    bignum.FromWord(1),
		Engine:      EngineGeneric,
	})
}

// Lookup returns the constants for id, or nil when the curve is not known.
func Lookup(id ID) *Data {
	return table[id]
}

// ByName finds a curve by case-insensitive name or by its hex id ("0x0003").
func ByName(name string) *Data {
	for _, d := range table {
		if strings.EqualFold(d.Name, name) || strings.EqualFold(fmt.Sprintf("0x%04x", uint16(d.ID)), name) {
			return d
		}
	}
	return nil
}

// All returns every known curve ordered by id.
func All() []*Data {
	out := make([]*Data, 0, len(table))
	for _, d := range table {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
