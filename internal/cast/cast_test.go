package cast

import (
	"errors"
	"math"
	"testing"

	"github.com/shabbyrobe/go-num"
	"go.dw1.io/safemath"
)

func TestIsIntVal(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		integers := map[string]any{
			"int":     int(1),
			"int8":    int8(1),
			"int16":   int16(1),
			"int32":   int32(1),
			"int64":   int64(1),
			"uint":    uint(1),
			"uint8":   uint8(1),
			"uint16":  uint16(1),
			"uint32":  uint32(1),
			"uint64":  uint64(1),
			"uintptr": uintptr(1),
		}

		for name, v := range integers {
			if !isIntVal(v) {
				t.Fatalf("expected %s to be an integer value", name)
			}
		}
	})

	t.Run("nonIntegers", func(t *testing.T) {
		cases := map[string]any{
			"float64": float64(1),
			"string":  "1",
			"bool":    true,
			"i128":    num.I128From64(1),
			"u128":    num.U128From64(1),
		}

		for name, v := range cases {
			if isIntVal(v) {
				t.Fatalf("expected %s to not be an integer value", name)
			}
		}
	})
}

func TestToUsesSafemathForIntegerInputs(t *testing.T) {
	t.Run("withinRange", func(t *testing.T) {
		got, err := To[int8](int64(math.MaxInt8))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != int8(math.MaxInt8) {
			t.Fatalf("expected %d, got %d", int8(math.MaxInt8), got)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := To[int8](int64(math.MaxInt8) + 1)
		if err == nil {
			t.Fatalf("expected error for overflow conversion")
		}

		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected safemath.ErrTruncation, got %v", err)
		}
	})

	t.Run("negativeToUnsigned", func(t *testing.T) {
		if _, err := To[uint16](int32(-1)); err == nil {
			t.Fatalf("expected error for negative to unsigned conversion")
		}
	})
}

func TestToWide(t *testing.T) {
	t.Run("fromUint64", func(t *testing.T) {
		got, err := To[num.I128](uint64(math.MaxUint64))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := num.I128FromRaw(0, math.MaxUint64); !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("negativeToU128", func(t *testing.T) {
		_, err := To[num.U128](int64(-1))
		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected safemath.ErrTruncation, got %v", err)
		}
	})

	t.Run("u128AboveI128", func(t *testing.T) {
		_, err := To[num.I128](num.U128FromRaw(math.MaxUint64, 0))
		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected safemath.ErrTruncation, got %v", err)
		}
	})

	t.Run("wideToNarrow", func(t *testing.T) {
		got, err := To[uint8](num.U128From64(200))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != 200 {
			t.Fatalf("expected 200, got %d", got)
		}

		_, err = To[int64](num.I128FromRaw(1, 0))
		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected safemath.ErrTruncation, got %v", err)
		}
	})
}

func TestToFromFloat(t *testing.T) {
	t.Run("integral", func(t *testing.T) {
		got, err := To[int8](float64(-3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != -3 {
			t.Fatalf("expected -3, got %d", got)
		}
	})

	t.Run("fractional", func(t *testing.T) {
		_, err := To[int32](float32(3.5))
		if !errors.Is(err, ErrInexact) {
			t.Fatalf("expected ErrInexact, got %v", err)
		}
	})

	t.Run("nonFinite", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			if _, err := To[num.I128](f); !errors.Is(err, ErrInexact) {
				t.Fatalf("expected ErrInexact for %g, got %v", f, err)
			}
		}
	})

	t.Run("outOfRange", func(t *testing.T) {
		_, err := To[uint8](float64(300))
		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected safemath.ErrTruncation, got %v", err)
		}
	})

	t.Run("beyondUint64", func(t *testing.T) {
		got, err := To[num.U128](math.Ldexp(1, 100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := num.U128FromRaw(1<<36, 0); !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})
}

func TestToFloat(t *testing.T) {
	t.Run("fromInteger", func(t *testing.T) {
		got, err := To[float64](int16(-42))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != -42 {
			t.Fatalf("expected -42, got %g", got)
		}
	})

	t.Run("fromWide", func(t *testing.T) {
		got, err := To[float32](num.I128From64(-7))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != -7 {
			t.Fatalf("expected -7, got %g", got)
		}
	})

	t.Run("narrowOverflow", func(t *testing.T) {
		_, err := To[float32](float64(1e300))
		if !errors.Is(err, safemath.ErrTruncation) {
			t.Fatalf("expected safemath.ErrTruncation, got %v", err)
		}
	})

	t.Run("narrowInfinity", func(t *testing.T) {
		got, err := To[float32](math.Inf(-1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !math.IsInf(float64(got), -1) {
			t.Fatalf("expected -Inf, got %g", got)
		}
	})
}

func TestToRejectsNonNumeric(t *testing.T) {
	cases := map[string]any{
		"string": "42",
		"bool":   true,
		"nil":    nil,
		"slice":  []int{1},
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := To[int64](v); !errors.Is(err, ErrUnsupported) {
				t.Fatalf("expected ErrUnsupported, got %v", err)
			}

			if _, err := To[float64](v); !errors.Is(err, ErrUnsupported) {
				t.Fatalf("expected ErrUnsupported, got %v", err)
			}

			if _, err := To[num.U128](v); !errors.Is(err, ErrUnsupported) {
				t.Fatalf("expected ErrUnsupported, got %v", err)
			}
		})
	}
}

func TestToMust(t *testing.T) {
	t.Run("returnsValue", func(t *testing.T) {
		got := ToMust[int64](float64(99))
		if got != 99 {
			t.Fatalf("expected 99, got %d", got)
		}
	})

	t.Run("panicsOnError", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic from ToMust on overflow")
			}
		}()

		_ = ToMust[int8](int64(math.MaxInt8) + 1)
	})
}
