package holga

import "testing"

func TestPointTranslate(t *testing.T) {
	p := Pt(1, 2)
	q := p.Translate(3, -4)
	if q != Pt(4, -2) {
		t.Errorf("Translate = %v, want (4,-2)", q)
	}
	if p != Pt(1, 2) {
		t.Errorf("receiver changed to %v", p)
	}
	if got := p.Add(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Add = %v, want (2,3)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(0, 1) {
		t.Errorf("Sub = %v, want (0,1)", got)
	}
	if got := Pt(-0.5, 1.5).Floor(); got != Pt(-1, 1) {
		t.Errorf("Floor = %v, want (-1,1)", got)
	}
}

func TestRectDimensions(t *testing.T) {
	r := R(2, 3, 6, 11)
	if r.Width() != 4 {
		t.Errorf("Width = %v, want 4", r.Width())
	}
	if r.Height() != 8 {
		t.Errorf("Height = %v, want 8", r.Height())
	}
	if r.Area() != 32 {
		t.Errorf("Area = %v, want 32", r.Area())
	}
	if r.Size() != Pt(4, 8) {
		t.Errorf("Size = %v, want (4,8)", r.Size())
	}
	if r.Min() != Pt(2, 3) || r.Max() != Pt(6, 11) {
		t.Errorf("Min/Max = %v/%v, want (2,3)/(6,11)", r.Min(), r.Max())
	}
	if !r.Valid() {
		t.Error("Valid = false, want true")
	}
	if R(5, 0, 4, 1).Valid() {
		t.Error("inverted rect reported valid")
	}
}

func TestRectTranslatePreservesSize(t *testing.T) {
	r := R(0, 0, 4, 3)
	got := r.Translate(10, -2)
	if got != R(10, -2, 14, 1) {
		t.Errorf("Translate = %v, want [10,-2 14,1]", got)
	}
	if got.Size() != r.Size() {
		t.Errorf("size changed from %v to %v", r.Size(), got.Size())
	}
	if got := r.TranslateBy(Pt(1, 1)); got != R(1, 1, 5, 4) {
		t.Errorf("TranslateBy = %v, want [1,1 5,4]", got)
	}
}

func TestRectScaleOnlyMovesSecondCorner(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		s    float64
		want Rect
	}{
		{"origin", R(0, 0, 4, 4), 2, R(0, 0, 8, 8)},
		{"offset", R(2, 2, 4, 4), 2, R(2, 2, 8, 8)},
		{"down", R(0, 0, 4, 4), 0.5, R(0, 0, 2, 2)},
		{"identity", R(3, 1, 7, 9), 1, R(3, 1, 7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Scale(tt.s); got != tt.want {
				t.Errorf("Scale(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestRectConstrict(t *testing.T) {
	if got := R(0, 0, 4, 4).Constrict(1, 1); got != R(1, 1, 3, 3) {
		t.Errorf("Constrict(1,1) = %v, want [1,1 3,3]", got)
	}
	if got := R(1, 1, 3, 3).Constrict(-1, -1); got != R(0, 0, 4, 4) {
		t.Errorf("Constrict(-1,-1) = %v, want [0,0 4,4]", got)
	}
}

func TestRectSnap(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"integral", R(1, 2, 5, 6), R(1, 2, 5, 6)},
		{"half offset", R(1.5, 1.5, 2.5, 2.5), R(1, 1, 2, 2)},
		{"fractional size", R(0, 0, 3.2, 2.1), R(0, 0, 4, 3)},
		{"negative", R(-0.5, -0.5, 3.5, 3.5), R(-1, -1, 3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Snap(); got != tt.want {
				t.Errorf("Snap(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := R(0, 0, 10, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(9, 9), true},
		{Pt(9.5, 0), true},
		{Pt(10, 5), false},
		{Pt(5, 10), false},
		{Pt(-1, 0), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGeomString(t *testing.T) {
	if got := Pt(1, 2.5).String(); got != "(1,2.5)" {
		t.Errorf("Point.String = %q", got)
	}
	if got := R(0, 1, 2, 3).String(); got != "[0,1 2,3]" {
		t.Errorf("Rect.String = %q", got)
	}
}
