package geometry

import "testing"

func TestBandLayout(t *testing.T) {
	band := DefaultBand()

	origin, size := band.Layout(Size{Width: 1000, Height: 800})

	if size.Width != 300 || size.Height != 80 {
		t.Errorf("Layout size = %dx%d; want 300x80", size.Width, size.Height)
	}
	if origin.X != 350 || origin.Y != 100 {
		t.Errorf("Layout origin = (%d, %d); want (350, 100)", origin.X, origin.Y)
	}
}

func TestBandLayout_Proportions(t *testing.T) {
	band := DefaultBand()

	hosts := []Size{
		{Width: 1, Height: 1},
		{Width: 640, Height: 480},
		{Width: 1920, Height: 1080},
		{Width: 3840, Height: 2160},
		{Width: 333, Height: 777},
	}

	for _, host := range hosts {
		origin, size := band.Layout(host)

		wantW := uint32(float64(host.Width) * 0.3)
		wantH := uint32(float64(host.Height) * 0.1)
		if size.Width != wantW || size.Height != wantH {
			t.Errorf("host %v: size = %dx%d; want %dx%d", host, size.Width, size.Height, wantW, wantH)
		}

		wantX := int32((float64(host.Width) - float64(host.Width)*0.3) / 2)
		if origin.X != wantX {
			t.Errorf("host %v: origin.X = %d; want %d", host, origin.X, wantX)
		}
		if origin.Y != 100 {
			t.Errorf("host %v: origin.Y = %d; want 100", host, origin.Y)
		}
	}
}

func TestBandLayout_Deterministic(t *testing.T) {
	band := DefaultBand()
	host := Size{Width: 1234, Height: 567}

	origin1, size1 := band.Layout(host)
	origin2, size2 := band.Layout(host)

	if origin1 != origin2 || size1 != size2 {
		t.Errorf("Layout is not deterministic: (%v, %v) vs (%v, %v)", origin1, size1, origin2, size2)
	}
}

func TestSizeIsZero(t *testing.T) {
	cases := []struct {
		size Size
		want bool
	}{
		{Size{Width: 300, Height: 80}, false},
		{Size{Width: 0, Height: 600}, true},
		{Size{Width: 600, Height: 0}, true},
		{Size{}, true},
	}

	for _, c := range cases {
		if got := c.size.IsZero(); got != c.want {
			t.Errorf("IsZero(%v) = %v; want %v", c.size, got, c.want)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 350, Y: 100}.Add(Point{X: 150, Y: 120})
	if p != (Point{X: 500, Y: 220}) {
		t.Errorf("Add = %v; want (500, 220)", p)
	}
}
