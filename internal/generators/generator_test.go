package generators

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

func testContext(seed int64) Context {
	return Context{
		Faker: gofakeit.New(seed),
		Now:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNumberBetween_StaysInRange(t *testing.T) {
	ctx := testContext(1)
	for i := 0; i < 200; i++ {
		v, err := NumberBetween(ctx, []interface{}{-2, 2})
		if err != nil {
			t.Fatal(err)
		}
		n := v.(int64)
		if n < -2 || n > 2 {
			t.Fatalf("out of range: %d", n)
		}
	}
	if _, err := NumberBetween(ctx, []interface{}{"a", 2}); err == nil {
		t.Fatal("expected error for non-integer option")
	}
}

func TestNumberBetween_FullInt64Range(t *testing.T) {
	ctx := testContext(11)
	bounds := [][2]int64{
		{0, math.MaxInt64},
		{-1, math.MaxInt64},
		{math.MinInt64, math.MaxInt64},
		{math.MinInt64, 0},
		{math.MaxInt64 - 1, math.MaxInt64},
	}
	for _, b := range bounds {
		for i := 0; i < 50; i++ {
			v, err := NumberBetween(ctx, []interface{}{b[0], b[1]})
			if err != nil {
				t.Fatalf("bounds %v: %v", b, err)
			}
			if n := v.(int64); n < b[0] || n > b[1] {
				t.Fatalf("bounds %v: out of range: %d", b, n)
			}
		}
	}
}

func TestRandomNumber_DigitCap(t *testing.T) {
	ctx := testContext(2)
	for i := 0; i < 100; i++ {
		v, err := RandomNumber(ctx, []interface{}{3})
		if err != nil {
			t.Fatal(err)
		}
		if n := v.(int64); n < 0 || n > 999 {
			t.Fatalf("expected at most 3 digits, got %d", n)
		}
	}
}

func TestRandomFloat_Decimals(t *testing.T) {
	ctx := testContext(3)
	v, err := RandomFloat(ctx, []interface{}{1, 0.0, 10.0})
	if err != nil {
		t.Fatal(err)
	}
	f := v.(float64)
	if f < 0 || f > 10 {
		t.Fatalf("out of range: %v", f)
	}
	if math.Abs(f*10-math.Round(f*10)) > 1e-9 {
		t.Fatalf("expected one decimal, got %v", f)
	}
}

func TestSentence(t *testing.T) {
	v, err := Sentence(testContext(4), []interface{}{4})
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(v.(string)) == "" {
		t.Fatal("expected a sentence")
	}
	if _, err := Sentence(testContext(4), []interface{}{0}); err == nil {
		t.Fatal("expected error for zero words")
	}
}

func TestWeightedElement(t *testing.T) {
	ctx := testContext(5)
	v, err := WeightedElement(ctx, []interface{}{[]interface{}{"x", "y"}, []interface{}{0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if v != "y" {
		t.Fatalf("expected only weighted value, got %v", v)
	}
	if _, err := WeightedElement(ctx, []interface{}{[]interface{}{"x"}, []interface{}{1, 2}}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestDateTimeBetween_Bounds(t *testing.T) {
	ctx := testContext(6)
	v, err := DateTimeBetween(ctx, []interface{}{"-1d", "now"})
	if err != nil {
		t.Fatal(err)
	}
	ts, err := time.Parse(ISO8601Layout, v.(string))
	if err != nil {
		t.Fatal(err)
	}
	if ts.Before(ctx.Now.Add(-25*time.Hour)) || ts.After(ctx.Now) {
		t.Fatalf("out of bounds: %v", ts)
	}
	if _, err := DateTimeBetween(ctx, []interface{}{"now", "-1d"}); err == nil {
		t.Fatal("expected inverted range error")
	}
}

func TestUUID4_Version(t *testing.T) {
	v, err := UUID4(testContext(7), nil)
	if err != nil {
		t.Fatal(err)
	}
	s := v.(string)
	if len(s) != 36 || s[14] != '4' {
		t.Fatalf("unexpected uuid: %s", s)
	}
}
