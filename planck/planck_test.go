package planck

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-radiometry/internal/testutil"
)

// referenceWavenumber evaluates the wavenumber-form radiance in full
// float64 precision, independently of the evaluator internals.
func referenceWavenumber(wn, temp float64) float64 {
	nom := 2 * PlanckConstant * SpeedOfLight * SpeedOfLight * wn * wn * wn
	arg := PlanckConstant * SpeedOfLight * wn / (BoltzmannConstant * temp)

	return nom / (math.Exp(arg) - 1)
}

// referenceWavelength evaluates the wavelength-form radiance in full
// float64 precision.
func referenceWavelength(wl, temp float64) float64 {
	nom := 2 * PlanckConstant * SpeedOfLight * SpeedOfLight / math.Pow(wl, 5)
	arg := PlanckConstant * SpeedOfLight / (BoltzmannConstant * wl * temp)

	return nom / (math.Exp(arg) - 1)
}

func TestRadianceWavenumberReference(t *testing.T) {
	// 900 cm^-1 in SI units, a typical thermal-infrared channel.
	got, err := RadianceWavenumberAt(90000, 280)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireNearlyEqual(t, got, referenceWavenumber(90000, 280), 1e-5)
}

func TestRadianceWavelengthReference(t *testing.T) {
	// 10.8 micron window channel.
	got, err := RadianceWavelengthAt(10.8e-6, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireNearlyEqual(t, got, referenceWavelength(10.8e-6, 300), 1e-5)
}

func TestRadianceWavenumberPositive(t *testing.T) {
	wn := Vector(testutil.WavenumberBand(600, 2500, 64))
	temps := Vector(testutil.Linspace(180, 330, 16))

	out, err := RadianceWavenumber(wn, temps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range out.Values() {
		if !(v > 0) {
			t.Fatalf("radiance[%d] = %v, want > 0", i, v)
		}
	}
}

func TestRadianceWavelengthPositive(t *testing.T) {
	wl := Vector(testutil.Linspace(3e-6, 15e-6, 64))
	temps := Vector(testutil.Linspace(180, 330, 16))

	out, err := RadianceWavelength(wl, temps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireFinite(t, out.Values())

	for i, v := range out.Values() {
		if v <= 0 {
			t.Fatalf("radiance[%d] = %v, want > 0", i, v)
		}
	}
}

func TestMonotonicInTemperature(t *testing.T) {
	temps := testutil.Linspace(10, 400, 40)

	prev := 0.0
	for i, temp := range temps {
		v, err := RadianceWavenumberAt(90000, temp)
		if err != nil {
			t.Fatalf("unexpected error at T=%v: %v", temp, err)
		}

		if v <= prev {
			t.Fatalf("radiance not increasing at step %d: %v <= %v", i, v, prev)
		}

		prev = v
	}
}

func TestNearZeroTemperatureMasked(t *testing.T) {
	for _, temp := range []float64{0, 1e-7, -1e-7, 1e-6} {
		v, err := RadianceWavenumberAt(90000, temp)
		if err != nil {
			t.Fatalf("T=%v: unexpected error: %v", temp, err)
		}

		if !math.IsNaN(v) {
			t.Fatalf("T=%v: got %v, want NaN", temp, v)
		}
	}
}

func TestMixedMaskedAndValid(t *testing.T) {
	out, err := RadianceWavenumber(Scalar(90000), Vector([]float64{0, 280}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vals := out.Values()
	if !math.IsNaN(vals[0]) {
		t.Fatalf("vals[0] = %v, want NaN", vals[0])
	}

	if math.IsNaN(vals[1]) || vals[1] <= 0 {
		t.Fatalf("vals[1] = %v, want positive", vals[1])
	}
}

func TestCrossCheckWavelengthJacobian(t *testing.T) {
	// For lambda = 1/v and identical T, the two spectral forms relate
	// through the Jacobian: B_wl(1/v, T) = v^2 * B_wn(v, T).
	temps := []float64{200, 280, 320}
	wavenumbers := testutil.WavenumberBand(700, 1300, 7)

	for _, temp := range temps {
		for _, wn := range wavenumbers {
			a, err := RadianceWavenumberAt(wn, temp, WithFullPrecision())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			b, err := RadianceWavelengthAt(1/wn, temp, WithFullPrecision())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.RequireNearlyEqual(t, a, b/(wn*wn), 1e-9)
		}
	}
}

func TestReducedVersusFullPrecision(t *testing.T) {
	wn := Vector(testutil.WavenumberBand(600, 2500, 32))
	temps := Vector(testutil.Linspace(200, 320, 8))

	reduced, err := RadianceWavenumber(wn, temps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	full, err := RadianceWavenumber(wn, temps, WithFullPrecision())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rv := reduced.Values()
	fv := full.Values()

	for i := range rv {
		testutil.RequireNearlyEqual(t, rv[i], fv[i], 1e-4)
	}
}

func TestInvalidSpectralPosition(t *testing.T) {
	for _, wn := range []float64{0, -90000, math.NaN()} {
		_, err := RadianceWavenumberAt(wn, 280)
		if !errors.Is(err, ErrInvalidSpectralPosition) {
			t.Fatalf("wn=%v: err = %v, want ErrInvalidSpectralPosition", wn, err)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := RadianceWavenumber(Vector(nil), Scalar(280))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}

	_, err = RadianceWavenumber(Scalar(90000), Vector(nil))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestPositionRankRejected(t *testing.T) {
	pos, err := Grid([]float64{1, 2, 3, 4}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = RadianceWavenumber(pos, Scalar(280))
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v, want ErrInvalidShape", err)
	}
}

func TestGridTooLarge(t *testing.T) {
	wn := Vector(testutil.WavenumberBand(600, 2500, 4))
	temps := Vector(testutil.Linspace(200, 320, 3))

	_, err := RadianceWavenumber(wn, temps, WithMaxGridElements(10))
	if !errors.Is(err, ErrGridTooLarge) {
		t.Fatalf("err = %v, want ErrGridTooLarge", err)
	}

	// The limit applies before allocation, so an absurd request fails
	// fast instead of exhausting memory.
	big := Vector(testutil.Linspace(60000, 250000, 20000))
	bigTemps := Vector(testutil.Linspace(150, 350, 20000))

	_, err = RadianceWavenumber(big, bigTemps)
	if !errors.Is(err, ErrGridTooLarge) {
		t.Fatalf("err = %v, want ErrGridTooLarge", err)
	}
}

func TestObserverDubiousExponents(t *testing.T) {
	var events []Event

	obs := func(e Event) { events = append(events, e) }

	wl := Vector([]float64{9e-6, 10e-6, 11e-6})

	// A physically impossible negative temperature drives the exponent
	// argument negative; the result must still be returned.
	out, err := RadianceWavelength(wl, Scalar(-50), WithObserver(obs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Len() != 3 {
		t.Fatalf("out.Len() = %d, want 3", out.Len())
	}

	found := false
	for _, e := range events {
		if e.Kind == EventDubiousExponents {
			found = true
			if e.Count != 3 {
				t.Fatalf("dubious count = %d, want 3", e.Count)
			}
		}
	}

	if !found {
		t.Fatal("no EventDubiousExponents emitted")
	}
}

func TestObserverNoDubiousForWavenumber(t *testing.T) {
	var events []Event

	_, err := RadianceWavenumber(Scalar(90000), Scalar(-50), WithObserver(func(e Event) {
		events = append(events, e)
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, e := range events {
		if e.Kind == EventDubiousExponents {
			t.Fatal("wavenumber form reported dubious exponents")
		}
	}
}

func TestObserverExponentRange(t *testing.T) {
	var rangeEvent *Event

	_, err := RadianceWavenumberAt(90000, 280, WithObserver(func(e Event) {
		if e.Kind == EventExponentRange {
			copied := e
			rangeEvent = &copied
		}
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rangeEvent == nil {
		t.Fatal("no EventExponentRange emitted")
	}

	want := PlanckConstant * SpeedOfLight * 90000 / (BoltzmannConstant * 280)
	testutil.RequireNearlyEqual(t, rangeEvent.Min, want, 1e-5)
	testutil.RequireNearlyEqual(t, rangeEvent.Max, want, 1e-5)
}

func TestObserverMaskedCount(t *testing.T) {
	var maskedCount int

	_, err := RadianceWavenumber(Scalar(90000), Vector([]float64{0, 280, 0}), WithObserver(func(e Event) {
		if e.Kind == EventMaskedTemperatures {
			maskedCount = e.Count
		}
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if maskedCount != 2 {
		t.Fatalf("masked count = %d, want 2", maskedCount)
	}
}

func TestScalarConvenienceMatchesArrayForm(t *testing.T) {
	a, err := RadianceWavenumberAt(90000, 280)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := RadianceWavenumber(Scalar(90000), Scalar(280))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.IsScalar() {
		t.Fatalf("scalar inputs produced rank-%d output", out.Rank())
	}

	if a != out.Float() {
		t.Fatalf("convenience wrapper disagrees: %v vs %v", a, out.Float())
	}
}
