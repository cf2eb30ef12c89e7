package galois

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Summary is a short description such as "GF(9) = GF(3^2), x^2 = (1,2)".
func (gf *Field) Summary() string {
	parts := make([]string, len(gf.Xton))
	for i, v := range gf.Xton {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("GF(%d) = GF(%d^%d), x^%d = (%s)", gf.Q, gf.P, gf.N, gf.N, strings.Join(parts, ","))
}

// Fprint writes every table of the field in a human readable layout:
// polynomial digits, addition and multiplication tables, reciprocals,
// negatives and square roots.
func (gf *Field) Fprint(w io.Writer) error {
	pw := &printer{w: w}
	width := len(strconv.Itoa(gf.Q - 1))

	pw.printf("For GF(%d) p=%d n=%d\n", gf.Q, gf.P, gf.N)
	pw.printf("%s\n\n", gf.Summary())

	pw.printf("GF(%d) polynomial coefficients:\n", gf.Q)
	for i, row := range gf.Poly {
		pw.printf("  %*d ", width, i)
		for _, d := range row {
			pw.printf(" %d", d)
		}
		pw.printf("\n")
	}

	pw.printf("\nGF(%d) addition table:\n", gf.Q)
	pw.table(gf.Plus, width)
	pw.printf("\nGF(%d) multiplication table:\n", gf.Q)
	pw.table(gf.Mul, width)

	pw.printf("\nGF(%d) reciprocals:\n", gf.Q)
	for i := 1; i < gf.Q; i++ {
		pw.printf("  %*d %*d\n", width, i, width, gf.Inv[i])
	}
	pw.printf("\nGF(%d) negatives:\n", gf.Q)
	for i := 0; i < gf.Q; i++ {
		pw.printf("  %*d %*d\n", width, i, width, gf.Neg[i])
	}
	pw.printf("\nGF(%d) square roots:\n", gf.Q)
	for i := 0; i < gf.Q; i++ {
		if gf.Root[i] == NoRoot {
			pw.printf("  %*d %*s\n", width, i, width, "-")
			continue
		}
		pw.printf("  %*d %*d\n", width, i, width, gf.Root[i])
	}
	return pw.err
}

// printer keeps the first write error so Fprint can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) table(t [][]int, width int) {
	for _, row := range t {
		p.printf(" ")
		for _, v := range row {
			p.printf(" %*d", width, v)
		}
		p.printf("\n")
	}
}
