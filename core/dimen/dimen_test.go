package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.core")
	defer teardown()
	//
	d, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12 {
		t.Errorf("(1) expected d to be 12px, is %g", d)
	}
	//
	d, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %g", d)
	}
	//
	d, err = ParseDimen("18pt")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if d < 23.999 || d > 24.001 {
		t.Errorf("(3) expected 18pt to be 24px at 96 DPI, is %g", d)
	}
	//
	if _, err = ParseDimen("12furlong"); err == nil {
		t.Errorf("(4) expected unknown unit to be rejected")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(2, 3).Scale(2).Add(Pt(1, 1))
	if p != Pt(5, 7) {
		t.Errorf("expected (5,7), got %s", p)
	}
	if q := p.AddX(1).AddY(-1); q != Pt(6, 6) {
		t.Errorf("expected (6,6), got %s", q)
	}
	r := Rect{Min: Pt(0, 0), Max: Pt(4, 2)}
	if r.Dx() != 4 || r.Dy() != 2 || r.Empty() {
		t.Errorf("unexpected rect metrics for %v", r)
	}
	if !r.Contains(Pt(4, 2)) || r.Contains(Pt(5, 0)) {
		t.Errorf("containment broken for %v", r)
	}
}
