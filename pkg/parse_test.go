package pkg_test

import (
	"brcstats/pkg"
	"errors"
	"strings"
	"testing"
)

func Test_SplitParse(t *testing.T) {
	cases := []struct {
		line string
		key  string
		val  int32
	}{
		{"Oslo;5.0", "Oslo", 50},
		{"Hamburg;12.0", "Hamburg", 120},
		{"Lima;-3.4", "Lima", -34},
		{"Nuuk;-0.5", "Nuuk", -5},
		{"Dallol;99.9", "Dallol", 999},
		{"Vostok;-99.9", "Vostok", -999},
		{"São Paulo;0.0", "São Paulo", 0},
	}

	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			key, val := pkg.SplitParse([]byte(c.line))
			if string(key) != c.key || val != c.val {
				t.Fatalf("got (%q, %d), want (%q, %d)", key, val, c.key, c.val)
			}

			key, val, err := pkg.SplitParseSafe([]byte(c.line))
			if err != nil {
				t.Fatalf("safe: %v", err)
			}
			if string(key) != c.key || val != c.val {
				t.Fatalf("safe got (%q, %d), want (%q, %d)", key, val, c.key, c.val)
			}
		})
	}
}

func Test_SplitParseSafe(t *testing.T) {
	t.Run("Errors", func(t *testing.T) {
		cases := []struct {
			line string
			err  error
		}{
			{"Oslo", pkg.ErrMissingValue},
			{"Oslo;", pkg.ErrMissingValue},
			{";5.0", pkg.ErrMissingKey},
			{"Oslo;abc", pkg.ErrInvalidDecimal},
			{"Oslo;5.0;6.0", pkg.ErrInvalidDecimal},
			{"Oslo;NaN", pkg.ErrInvalidDecimal},
			{"Oslo;1e300", pkg.ErrInvalidDecimal},
			{"Oslo;12.34", pkg.ErrInvalidDecimal},
			{"Oslo;7", pkg.ErrInvalidDecimal},
			{"Oslo;1e1", pkg.ErrInvalidDecimal},
			{"Oslo;0x1p3", pkg.ErrInvalidDecimal},
			{"Oslo;5.", pkg.ErrInvalidDecimal},
			{"Oslo;.5", pkg.ErrInvalidDecimal},
			{"Oslo;-.5", pkg.ErrInvalidDecimal},
			{"Oslo;-", pkg.ErrInvalidDecimal},
			{"Oslo;+5.0", pkg.ErrInvalidDecimal},
			{"Oslo;5,0", pkg.ErrInvalidDecimal},
			{"Oslo;123456789.0", pkg.ErrInvalidDecimal},
		}

		for _, c := range cases {
			t.Run(c.line, func(t *testing.T) {
				_, _, err := pkg.SplitParseSafe([]byte(c.line))
				if !errors.Is(err, c.err) {
					t.Fatalf("err = %v, want %v", err, c.err)
				}

				var perr *pkg.ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("err %T is not a *ParseError", err)
				}
				if string(perr.Line) != c.line {
					t.Fatalf("error line = %q", perr.Line)
				}
				if !strings.Contains(err.Error(), c.err.Error()) {
					t.Fatalf("message %q lacks %q", err.Error(), c.err.Error())
				}
			})
		}
	})
}

func Test_ValidateText(t *testing.T) {
	if err := pkg.ValidateText([]byte("Zürich;9.3\n")); err != nil {
		t.Fatalf("valid text rejected: %v", err)
	}
	if err := pkg.ValidateText([]byte{'a', ';', 0xff, '\n'}); !errors.Is(err, pkg.ErrInvalidEncoding) {
		t.Fatalf("err = %v, want %v", err, pkg.ErrInvalidEncoding)
	}
}

func Test_Indec(t *testing.T) {
	for _, c := range []struct {
		val  int64
		text string
	}{
		{0, "0.0"},
		{5, "0.5"},
		{-5, "-0.5"},
		{123, "12.3"},
		{-999, "-99.9"},
	} {
		if got := pkg.PrintIndec(c.val); got != c.text {
			t.Errorf("PrintIndec(%d) = %q, want %q", c.val, got, c.text)
		}
		if got := pkg.ParseIndec([]byte(c.text)); int64(got) != c.val {
			t.Errorf("ParseIndec(%q) = %d, want %d", c.text, got, c.val)
		}
	}
}

func Benchmark_SplitParse(b *testing.B) {
	line := []byte("São Paulo;-12.3")
	for i := 0; i < b.N; i++ {
		pkg.SplitParse(line)
	}
}
