package units

import "testing"

func TestResolveAutoPicksMillisecond(t *testing.T) {
	u := Resolve(Auto, []float64{0.01, 0.02, 0.03})
	if u != MilliSecond {
		t.Fatalf("expected MilliSecond, got %v", u)
	}
}

func TestResolveAutoPicksSecond(t *testing.T) {
	u := Resolve(Auto, []float64{1.5, 2.0, 3.0})
	if u != Second {
		t.Fatalf("expected Second, got %v", u)
	}
}

func TestResolveExplicitOverridesAuto(t *testing.T) {
	u := Resolve(Second, []float64{0.001})
	if u != Second {
		t.Fatalf("expected explicit Second to win, got %v", u)
	}
}

func TestFromSeconds(t *testing.T) {
	if got := FromSeconds(1.5, MilliSecond); got != 1500 {
		t.Fatalf("expected 1500, got %v", got)
	}
	if got := FromSeconds(1.5, Second); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
}
