package render

// Transform is a 2x3 affine matrix applied to arc geometry:
//
//	x' = A*x + B*y + TX
//	y' = C*x + D*y + TY
type Transform struct {
	A, B, TX float64
	C, D, TY float64
}

func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// IsZero reports whether t is the zero value, which callers treat as identity.
func (t Transform) IsZero() bool {
	return t == Transform{}
}

func (t Transform) Apply(x, y float64) (float64, float64) {
	if t.IsZero() {
		return x, y
	}
	return t.A*x + t.B*y + t.TX, t.C*x + t.D*y + t.TY
}
