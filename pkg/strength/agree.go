package strength

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/Davincible/oagen/pkg/matrix"
)

// Agreement is the largest number of columns in which two distinct rows
// hold the same symbol, with the first pair of rows attaining it.
type Agreement struct {
	Max  int
	Row1 int
	Row2 int
}

// Pairwise scans every pair of distinct rows. A strength 2 array of index 1
// has Max <= 1.
func Pairwise(a *matrix.Dense) Agreement {
	var best Agreement
	for i := 0; i < a.Rows(); i++ {
		ri := a.Row(i)
		for j := i + 1; j < a.Rows(); j++ {
			rj := a.Row(j)
			n := 0
			for k, v := range ri {
				if rj[k] == v {
					n++
				}
			}
			if n > best.Max {
				best = Agreement{Max: n, Row1: i, Row2: j}
			}
		}
	}
	return best
}

// Triples counts the column triples in which at least two distinct rows
// agree in all three columns. A positive count is the coincidence defect.
func Triples(a *matrix.Dense) int {
	ncol := a.Cols()
	if ncol < 3 {
		return 0
	}
	seen := make(map[[3]int]struct{}, a.Rows())
	count := 0
	gen := combin.NewCombinationGenerator(ncol, 3)
	cols := make([]int, 3)
	for gen.Next() {
		gen.Combination(cols)
		clear(seen)
		for r := 0; r < a.Rows(); r++ {
			row := a.Row(r)
			key := [3]int{row[cols[0]], row[cols[1]], row[cols[2]]}
			if _, dup := seen[key]; dup {
				count++
				break
			}
			seen[key] = struct{}{}
		}
	}
	return count
}
