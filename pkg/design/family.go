package design

import (
	"fmt"
	"strings"
)

// Family selects a construction algorithm.
type Family int

const (
	Bose Family = iota + 1
	Bush
	BushT
	BoseBush
	BoseBushLambda
	AddelKemp
	AddelKemp3
	AddelKempN
)

// Info describes a family for listings and help output.
type Info struct {
	Family    Family
	Name      string
	Aliases   []string
	Array     string // OA notation of the result
	Parameter string // name of the extra parameter, empty if none
	Summary   string
}

var catalogue = []Info{
	{
		Family:  Bose,
		Name:    "bose",
		Array:   "OA(q^2, k, q, 2), k <= q+1",
		Summary: "Bose (1938) construction from the lines of the affine plane",
	},
	{
		Family:  Bush,
		Name:    "bush",
		Array:   "OA(q^3, k, q, 3), k <= q+1",
		Summary: "Bush (1952) construction of strength 3 from polynomials of degree 2",
	},
	{
		Family:    BushT,
		Name:      "busht",
		Aliases:   []string{"bush-t"},
		Array:     "OA(q^t, k, q, t), t <= k <= q+1",
		Parameter: "strength",
		Summary:   "Bush (1952) construction of strength t from polynomials of degree t-1",
	},
	{
		Family:  BoseBush,
		Name:    "bosebush",
		Aliases: []string{"bose-bush"},
		Array:   "OA(2q^2, k, q, 2), k <= 2q+1, q = 2^r",
		Summary: "Bose and Bush (1952) construction over GF(2q)",
	},
	{
		Family:    BoseBushLambda,
		Name:      "bosebushl",
		Aliases:   []string{"bose-bush-lambda"},
		Array:     "OA(lambda q^2, k, q, 2), k <= lambda q+1",
		Parameter: "lambda",
		Summary:   "Bose and Bush (1952) construction over GF(lambda q), lambda and q powers of one prime",
	},
	{
		Family:  AddelKemp,
		Name:    "addelkemp",
		Aliases: []string{"ak", "ak2"},
		Array:   "OA(2q^2, k, q, 2), k <= 2q+1",
		Summary: "Addelman and Kempthorne (1961) construction with n=2, odd q or q <= 4",
	},
	{
		Family:  AddelKemp3,
		Name:    "addelkemp3",
		Aliases: []string{"ak3"},
		Array:   "OA(2q^3, k, q, 2), k <= 2q^2+2q+1",
		Summary: "Addelman and Kempthorne (1961) construction with n=3, odd q or q <= 4",
	},
	{
		Family:    AddelKempN,
		Name:      "addelkempn",
		Aliases:   []string{"akn"},
		Array:     "OA(2q^n, k, q, 2), k <= 2(q^n-1)/(q-1)-1",
		Parameter: "exponent",
		Summary:   "Addelman and Kempthorne (1961) construction for general n >= 2, odd q or q <= 4",
	},
}

// Families lists every family in catalogue order.
func Families() []Info {
	out := make([]Info, len(catalogue))
	copy(out, catalogue)
	return out
}

// Describe returns the catalogue entry of f.
func (f Family) Describe() (Info, bool) {
	for _, info := range catalogue {
		if info.Family == f {
			return info, true
		}
	}
	return Info{}, false
}

func (f Family) String() string {
	if info, ok := f.Describe(); ok {
		return info.Name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Valid reports whether f names a known family.
func (f Family) Valid() bool {
	_, ok := f.Describe()
	return ok
}

// ParseFamily resolves a family by name or alias, case-insensitively.
func ParseFamily(name string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, info := range catalogue {
		if info.Name == key {
			return info.Family, nil
		}
		for _, alias := range info.Aliases {
			if alias == key {
				return info.Family, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}
