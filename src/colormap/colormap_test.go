package colormap

import (
	"math"
	"testing"
)

func rgb(c interface{ RGBA() (r, g, b, a uint32) }) (uint32, uint32, uint32) {
	r, g, b, _ := c.RGBA()
	return r, g, b
}

func TestDiverging_Midpoint(t *testing.T) {
	m := Diverging()
	r, g, b := rgb(m(0.5))
	for _, v := range []uint32{r, g, b} {
		if v < 0xf000 {
			t.Fatalf("midpoint should be near white, got r=%x g=%x b=%x", r, g, b)
		}
	}
}

func TestDiverging_EndpointsAndHues(t *testing.T) {
	m := Diverging()
	r0, _, b0 := rgb(m(0))
	if b0 <= r0 {
		t.Fatalf("low end should be blue dominant: r=%x b=%x", r0, b0)
	}
	r1, _, b1 := rgb(m(1))
	if r1 <= b1 {
		t.Fatalf("high end should be red dominant: r=%x b=%x", r1, b1)
	}
	rq, _, bq := rgb(m(0.25))
	if bq <= rq {
		t.Fatalf("lower quarter should stay blue dominant: r=%x b=%x", rq, bq)
	}
}

func TestDiverging_ClampsOutsideDomain(t *testing.T) {
	m := Diverging()
	if m(-0.5) != m(0) {
		t.Fatalf("values below 0 must clamp to the low endpoint")
	}
	if m(1.5) != m(1) {
		t.Fatalf("values above 1 must clamp to the high endpoint")
	}
}

func TestDiverging_NaNMapsToNeutral(t *testing.T) {
	m := Diverging()
	if m(math.NaN()) != m(0.5) {
		t.Fatalf("NaN must map to the neutral midpoint")
	}
}
