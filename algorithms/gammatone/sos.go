package gammatone

import "fmt"

// sosRows and sosCols fix the shape of the per-channel coefficient matrix:
// three rows of five values. Columns 0..3 hold the numerators of the four
// cascaded biquad stages, column 4 the shared denominator [1, B1, B2].
const (
	sosRows = 3
	sosCols = 5
)

// sosMatrix is the repackaged cascade form consumed by the filterbank
// executor, one sosRows x sosCols matrix per channel.
type sosMatrix [][sosRows][sosCols]float64

// secondOrderSections reassembles designer output into cascade form.
//
// Per channel the matrix is
//
//	[ A0/Gain   A0   A0   A0   B0 ]
//	[ A11/Gain  A12  A13  A14  B1 ]
//	[ A2/Gain   A2   A2   A2   B2 ]
//
// so the first stage absorbs the 1/Gain normalization and the cascade has
// unit passband gain. Mismatched channel counts across the coefficient
// arrays indicate a designer bug and panic rather than return an error.
func secondOrderSections(c *Coefficients) sosMatrix {
	n := len(c.A0)
	for name, arr := range map[string][]float64{
		"a11": c.A11, "a12": c.A12, "a13": c.A13, "a14": c.A14,
		"a2": c.A2, "b0": c.B0, "b1": c.B1, "b2": c.B2, "gain": c.Gain,
	} {
		if len(arr) != n {
			panic(fmt.Sprintf("gammatone: coefficient array %s has %d channels, want %d", name, len(arr), n))
		}
	}

	sos := make(sosMatrix, n)
	for i := 0; i < n; i++ {
		g := c.Gain[i]
		sos[i] = [sosRows][sosCols]float64{
			{c.A0[i] / g, c.A0[i], c.A0[i], c.A0[i], c.B0[i]},
			{c.A11[i] / g, c.A12[i], c.A13[i], c.A14[i], c.B1[i]},
			{c.A2[i] / g, c.A2[i], c.A2[i], c.A2[i], c.B2[i]},
		}
	}

	return sos
}

// numStages is the number of cascaded biquad passes per channel
const numStages = sosCols - 1

// stage returns the numerator and denominator taps of one cascade stage for
// one channel.
func (s sosMatrix) stage(channel, stage int) (b, a [sosRows]float64) {
	m := s[channel]
	b = [sosRows]float64{m[0][stage], m[1][stage], m[2][stage]}
	a = [sosRows]float64{m[0][sosCols-1], m[1][sosCols-1], m[2][sosCols-1]}
	return b, a
}
