package field

import "testing"

func TestSampleWithinRange(t *testing.T) {
	f := New(8, 8, 0, 0, 100, 100, 0.5)
	v := f.Sample(50, 50)
	if v != 0.5 {
		t.Errorf("expected uniform field to sample 0.5 everywhere, got %f", v)
	}
}

func TestSampleClampsOutOfBounds(t *testing.T) {
	f := New(4, 4, 0, 0, 10, 10, 0)
	f.PaintBrush(10, 10, 5, 1, 1)
	inside := f.Sample(10, 10)
	outside := f.Sample(1000, 1000)
	if outside != inside {
		t.Errorf("expected out-of-bounds sample to clamp to edge value %f, got %f", inside, outside)
	}
}

func TestGradientZeroOnUniformField(t *testing.T) {
	f := New(8, 8, 0, 0, 100, 100, 1.0)
	gx, gy := f.Gradient(50, 50)
	if gx != 0 || gy != 0 {
		t.Errorf("expected zero gradient on uniform field, got (%f, %f)", gx, gy)
	}
}

func TestGradientPointsTowardIncrease(t *testing.T) {
	f := New(16, 16, 0, 0, 100, 100, 0)
	f.FillProcedural(func(x, y float64) float64 { return x })
	gx, _ := f.Gradient(50, 50)
	if gx <= 0 {
		t.Errorf("expected positive x-gradient on increasing-in-x field, got %f", gx)
	}
}

func TestPaintBrushBlendsTowardValue(t *testing.T) {
	f := New(16, 16, 0, 0, 100, 100, 0)
	f.PaintBrush(50, 50, 20, 1.0, 1.0)
	v := f.Sample(50, 50)
	if v < 0.5 {
		t.Errorf("expected brush to raise value near center, got %f", v)
	}
	far := f.Sample(0, 0)
	if far != 0 {
		t.Errorf("expected brush to leave distant cells untouched, got %f", far)
	}
}

func TestFillProceduralEvaluatesAtNodes(t *testing.T) {
	f := New(4, 4, 0, 0, 30, 30, 0)
	f.FillProcedural(func(x, y float64) float64 { return x + y })
	if f.at(0, 0) != 0 {
		t.Errorf("expected node (0,0) to be 0, got %f", f.at(0, 0))
	}
}

func TestProceduralNoiseIsDeterministic(t *testing.T) {
	gen1 := NewProceduralNoise(DefaultNoiseOptions(42))
	gen2 := NewProceduralNoise(DefaultNoiseOptions(42))
	for _, p := range [][2]float64{{0, 0}, {10, 20}, {-5, 5}} {
		v1 := gen1(p[0], p[1])
		v2 := gen2(p[0], p[1])
		if v1 != v2 {
			t.Errorf("expected deterministic noise for seed 42 at %v, got %f vs %f", p, v1, v2)
		}
		if v1 < 0 || v1 > 1 {
			t.Errorf("expected noise in [0,1], got %f", v1)
		}
	}
}
