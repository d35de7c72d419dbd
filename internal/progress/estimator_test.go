package progress

import "testing"

func TestEstimatorStartsAtZero(t *testing.T) {
	if v := NewEstimator().Value(); v != 0 {
		t.Errorf("Value() = %d, want 0", v)
	}
}

func TestTickAdvancesByStep(t *testing.T) {
	e := NewEstimator()
	e.Tick()
	e.Tick()
	if v := e.Value(); v != 10 {
		t.Errorf("Value() after two ticks = %d, want 10", v)
	}
}

func TestTickCapsBelowCompletion(t *testing.T) {
	e := NewEstimator()
	for i := 0; i < 100; i++ {
		e.Tick()
	}
	if v := e.Value(); v != 95 {
		t.Errorf("Value() = %d, want cap 95", v)
	}
}

func TestValueIsMonotonic(t *testing.T) {
	e := NewEstimator()
	prev := e.Value()
	for i := 0; i < 40; i++ {
		e.Tick()
		if v := e.Value(); v < prev {
			t.Fatalf("value decreased from %d to %d", prev, v)
		} else {
			prev = v
		}
	}
	e.Finish()
	if v := e.Value(); v < prev {
		t.Fatalf("Finish decreased value from %d to %d", prev, v)
	}
}

func TestFinishPinsAtHundred(t *testing.T) {
	e := NewEstimator()
	e.Tick()
	e.Finish()
	if v := e.Value(); v != 100 {
		t.Errorf("Value() after Finish = %d, want 100", v)
	}
	e.Tick()
	if v := e.Value(); v != 100 {
		t.Errorf("Tick after Finish changed value to %d", v)
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	e := NewEstimator()
	e.Finish()
	e.Finish() // must not panic on the closed stop channel
	if v := e.Value(); v != 100 {
		t.Errorf("Value() = %d, want 100", v)
	}
}
