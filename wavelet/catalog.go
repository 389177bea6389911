package wavelet

import (
	"fmt"
	"math"
	"sync"
)

// Haar returns the Haar wavelet (L0 = 2, 0 vanishing moments beyond the
// constant).
func Haar() *Wavelet {
	sqrt2 := math.Sqrt2
	w, err := newOrthogonal("haar", "haar", 1, []float64{1 / sqrt2, 1 / sqrt2})
	if err != nil {
		panic(err) // unreachable: constant coefficients
	}
	return w
}

// Daubechies4 returns the 8-tap Daubechies wavelet with 4 vanishing moments
// ("db4"). At L0 = 8 it falls on the symmetric alignment table's calibrated
// minus-orientation branch (L0 >= 8) alongside the longer Symlet/Coiflet
// entries below; Haar (L0 = 2) is the table's other calibrated filter.
func Daubechies4() *Wavelet {
	w, err := newOrthogonal("db4", "daubechies", 4, []float64{
		-0.010597401785069032,
		0.0328830116668852,
		0.030841381835560764,
		-0.18703481171909309,
		-0.02798376941686025,
		0.6308807679298589,
		0.7148465705529157,
		0.23037781330885523,
	})
	if err != nil {
		panic(err)
	}
	return w
}

// Symlet4 returns the 8-tap Symlet wavelet with 4 vanishing moments
// ("sym4"), a near-symmetric variant of db4.
func Symlet4() *Wavelet {
	w, err := newOrthogonal("sym4", "symlet", 4, []float64{
		-0.07576571478927333,
		-0.02963552764599851,
		0.49761866763201545,
		0.8037387518051163,
		0.29785779560527736,
		-0.09921954357684722,
		-0.012603967262037833,
		0.0322231006040427,
	})
	if err != nil {
		panic(err)
	}
	return w
}

// Symlet8 returns the 16-tap Symlet wavelet with 8 vanishing moments
// ("sym8").
func Symlet8() *Wavelet {
	w, err := newOrthogonal("sym8", "symlet", 8, []float64{
		-0.0033824159510061256,
		-0.0005421323317911481,
		0.03169508781149298,
		0.0076074873249176,
		-0.14329423835080971,
		-0.061273359067658524,
		0.4813596512583722,
		0.7771857517005235,
		0.3644418948353314,
		-0.05194583810770904,
		-0.027219029917056003,
		0.049137179673607506,
		0.003808752013890615,
		-0.01495225833704823,
		-0.0003029205147213668,
		0.0018899503327594609,
	})
	if err != nil {
		panic(err)
	}
	return w
}

// Coiflet2 returns the 12-tap Coiflet wavelet with 2 vanishing moments per
// filter half ("coif2").
func Coiflet2() *Wavelet {
	w, err := newOrthogonal("coif2", "coiflet", 4, []float64{
		-0.0007205494453645122,
		-0.0018232088707029932,
		0.0056114348193944995,
		0.023680171946334084,
		-0.0594344186464569,
		-0.0764885990783064,
		0.41700518442169254,
		0.8127236354455423,
		0.3861100668211622,
		-0.06737255472196302,
		-0.04146493678175915,
		0.016387336463522112,
	})
	if err != nil {
		panic(err)
	}
	return w
}

// Biorthogonal13 returns the bior1.3 biorthogonal spline wavelet: a 6-tap
// filter quadruple where the reconstruction low-pass is the 2-tap Haar
// scaling function stretched to 6 taps with zero padding, and the
// decomposition filter carries the extra vanishing moments.
func Biorthogonal13() *Wavelet {
	sqrt2 := math.Sqrt2
	a := 0.0883883476483184 // 1/(8*sqrt2)... tabulated spline lifting coefficient

	h0 := []float64{-a, a, 1 / sqrt2, 1 / sqrt2, a, -a}
	g0 := []float64{0, 0, -1 / sqrt2, 1 / sqrt2, 0, 0}
	h0Recon := []float64{0, 0, 1 / sqrt2, 1 / sqrt2, 0, 0}
	g0Recon := []float64{a, a, -1 / sqrt2, 1 / sqrt2, -a, -a}

	w, err := newBiorthogonal("bior1.3", "biorthogonal", 3, h0, g0, h0Recon, g0Recon)
	if err != nil {
		panic(err)
	}
	return w
}

var (
	registryOnce sync.Once
	registry     map[string]func() *Wavelet
)

func buildRegistry() map[string]func() *Wavelet {
	return map[string]func() *Wavelet{
		"haar":    Haar,
		"db4":     Daubechies4,
		"sym4":    Symlet4,
		"sym8":    Symlet8,
		"coif2":   Coiflet2,
		"bior1.3": Biorthogonal13,
	}
}

// ByName looks up a wavelet by its catalog name (e.g. "haar", "db4",
// "sym4", "sym8", "coif2", "bior1.3"). The discrete Meyer wavelet and
// families beyond the ones above are not part of this minimal catalog —
// see the wavelet package doc.
func ByName(name string) (*Wavelet, error) {
	registryOnce.Do(func() { registry = buildRegistry() })
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("wavelet: unknown name %q", name)
	}
	return ctor(), nil
}
