package universe

import (
	"testing"
)

// Construction

func Test_Z_01(t *testing.T) {
	assertPanics(t, func() { NewZInc(minInt64) })
	assertPanics(t, func() { NewZInc(maxInt64) })
	assertPanics(t, func() { NewZDec(minInt64) })
	assertPanics(t, func() { NewZDec(maxInt64) })
}

func Test_Z_02(t *testing.T) {
	assertPanics(t, func() { NewZPInc(-1) })
	assertPanics(t, func() { NewZPInc(maxInt64) })
	assertPanics(t, func() { NewZPDec(-1) })
	assertPanics(t, func() { NewZPDec(maxInt64) })
}

func Test_Z_03(t *testing.T) {
	assertPanics(t, func() { NewZNInc(1) })
	assertPanics(t, func() { NewZNInc(minInt64) })
	assertPanics(t, func() { NewZNDec(1) })
	assertPanics(t, func() { NewZNDec(minInt64) })
}

func Test_Z_04(t *testing.T) {
	// Closed range ends are representable values, not sentinels.
	if NewZPInc(0).Value() != 0 || NewZPDec(0).Value() != 0 {
		t.Errorf("zero is a member of the natural universes")
	}
	//
	if NewZNInc(0).Value() != 0 || NewZNDec(0).Value() != 0 {
		t.Errorf("zero is a member of the non-positive universes")
	}
}

// Covers

func Test_Z_10(t *testing.T) {
	var u ZIncUniverse[Signed]
	//
	if u.Next(5) != 6 || u.Prev(5) != 4 {
		t.Errorf("interior covers of ZInc are the numeric neighbours")
	}
}

func Test_Z_11(t *testing.T) {
	var u ZIncUniverse[Signed]
	// Both range ends are infinity sentinels, hence covers saturate
	// in every direction.
	if u.Next(u.Top()) != u.Top() || u.Prev(u.Top()) != u.Top() {
		t.Errorf("covers do not saturate at the top sentinel of ZInc")
	}
	//
	if u.Next(u.Bot()) != u.Bot() || u.Prev(u.Bot()) != u.Bot() {
		t.Errorf("covers do not saturate at the bottom sentinel of ZInc")
	}
}

func Test_Z_12(t *testing.T) {
	var u ZDecUniverse[Signed]
	//
	if u.Next(5) != 4 || u.Prev(5) != 6 {
		t.Errorf("interior covers of ZDec are the reversed numeric neighbours")
	}
	//
	if u.Next(u.Top()) != u.Top() || u.Prev(u.Top()) != u.Top() {
		t.Errorf("covers do not saturate at the top sentinel of ZDec")
	}
	//
	if u.Next(u.Bot()) != u.Bot() || u.Prev(u.Bot()) != u.Bot() {
		t.Errorf("covers do not saturate at the bottom sentinel of ZDec")
	}
}

func Test_Z_13(t *testing.T) {
	var (
		ui ZIncUniverse[Positive]
		ud ZDecUniverse[Positive]
	)
	// Zero is a closed end of the naturals, hence covered normally.
	if ui.Next(0) != 1 || ui.Prev(1) != 0 || ui.Prev(0) != 0 {
		t.Errorf("unexpected covers around the closed bottom of ZPInc")
	}
	//
	if ud.Next(1) != 0 || ud.Next(0) != 0 || ud.Prev(0) != 1 {
		t.Errorf("unexpected covers around the closed top of ZPDec")
	}
	// The high end remains an infinity sentinel.
	if ui.Next(ui.Top()) != ui.Top() || ud.Prev(ud.Bot()) != ud.Bot() {
		t.Errorf("covers do not saturate at the open end of the naturals")
	}
}

func Test_Z_14(t *testing.T) {
	var (
		ui ZIncUniverse[Negative]
		ud ZDecUniverse[Negative]
	)
	//
	if ui.Next(-1) != 0 || ui.Next(0) != 0 || ui.Prev(0) != -1 {
		t.Errorf("unexpected covers around the closed top of ZNInc")
	}
	//
	if ud.Next(0) != -1 || ud.Prev(-1) != 0 || ud.Prev(0) != 0 {
		t.Errorf("unexpected covers around the closed bottom of ZNDec")
	}
	//
	if ui.Prev(ui.Bot()) != ui.Bot() || ud.Next(ud.Top()) != ud.Top() {
		t.Errorf("covers do not saturate at the open end of the non-positives")
	}
}

// Join and meet

func Test_Z_20(t *testing.T) {
	testOrderedPair(t, Bot[ZIncUniverse[Signed], int64](), Top[ZIncUniverse[Signed], int64]())
	testOrderedPair(t, NewZInc(0), NewZInc(1))
	testOrderedPair(t, NewZInc(-10), NewZInc(10))
	testOrderedPair(t, Bot[ZIncUniverse[Signed], int64](), NewZInc(0))
	testOrderedPair(t, NewZInc(0), Top[ZIncUniverse[Signed], int64]())
}

func Test_Z_21(t *testing.T) {
	testOrderedPair(t, Bot[ZDecUniverse[Signed], int64](), Top[ZDecUniverse[Signed], int64]())
	testOrderedPair(t, NewZDec(1), NewZDec(0))
	testOrderedPair(t, NewZDec(10), NewZDec(-10))
	testOrderedPair(t, Bot[ZDecUniverse[Signed], int64](), NewZDec(0))
	testOrderedPair(t, NewZDec(0), Top[ZDecUniverse[Signed], int64]())
}

func Test_Z_22(t *testing.T) {
	testOrderedPair(t, NewZPInc(0), NewZPInc(7))
	testOrderedPair(t, NewZPDec(7), NewZPDec(0))
	testOrderedPair(t, NewZNInc(-7), NewZNInc(0))
	testOrderedPair(t, NewZNDec(0), NewZNDec(-7))
}

func Test_Z_23(t *testing.T) {
	x, y := NewZInc(3), NewZInc(3)
	//
	if x.Join(y) != x || x.Meet(y) != x {
		t.Errorf("join and meet are not idempotent")
	}
	//
	if !x.Order(y) || x.StrictOrder(y) {
		t.Errorf("an element is below itself, but not strictly")
	}
}

// Entailment

func Test_Z_30(t *testing.T) {
	if !NewZInc(0).Entails(NewZInc(0)) {
		t.Errorf("x ≥ 0 entails itself")
	}
	//
	if !NewZInc(1).Entails(NewZInc(0)) || NewZInc(0).Entails(NewZInc(1)) {
		t.Errorf("x ≥ 1 entails x ≥ 0, not the converse")
	}
	//
	if !NewZInc(0).Entails(NewZInc(-1)) || NewZInc(-1).Entails(NewZInc(0)) {
		t.Errorf("x ≥ 0 entails x ≥ -1, not the converse")
	}
}

func Test_Z_31(t *testing.T) {
	if !NewZDec(0).Entails(NewZDec(0)) {
		t.Errorf("x ≤ 0 entails itself")
	}
	//
	if !NewZDec(0).Entails(NewZDec(1)) || NewZDec(1).Entails(NewZDec(0)) {
		t.Errorf("x ≤ 0 entails x ≤ 1, not the converse")
	}
	//
	if !NewZDec(-1).Entails(NewZDec(0)) || NewZDec(0).Entails(NewZDec(-1)) {
		t.Errorf("x ≤ -1 entails x ≤ 0, not the converse")
	}
}

func Test_Z_32(t *testing.T) {
	testEntailsExtremes(t, NewZInc(0))
	testEntailsExtremes(t, NewZDec(0))
	testEntailsExtremes(t, NewZPInc(1))
	testEntailsExtremes(t, NewZNDec(-1))
}

// Tell and dtell

func Test_Z_40(t *testing.T) {
	e := NewZInc(0)
	//
	if !e.Tell(NewZInc(5)) || e.Value() != 5 {
		t.Errorf("telling a better lower bound refines the element")
	}
	//
	if e.Tell(NewZInc(3)) || e.Value() != 5 {
		t.Errorf("telling a weaker lower bound changes nothing")
	}
}

func Test_Z_41(t *testing.T) {
	e := NewZInc(5)
	//
	if e.DTell(NewZInc(7)) || e.Value() != 5 {
		t.Errorf("dtelling a larger element changes nothing")
	}
	//
	if !e.DTell(NewZInc(3)) || e.Value() != 3 {
		t.Errorf("dtelling a smaller element relaxes the element")
	}
}

func Test_Z_42(t *testing.T) {
	e := NewZDec(10)
	//
	if !e.Tell(NewZDec(4)) || e.Value() != 4 {
		t.Errorf("telling a better upper bound refines the element")
	}
	//
	if e.Tell(NewZDec(8)) || e.Value() != 4 {
		t.Errorf("telling a weaker upper bound changes nothing")
	}
}

// Splitting

func Test_Z_50(t *testing.T) {
	e := NewZInc(3)
	//
	if split := e.Split(); len(split) != 1 || split[0] != e {
		t.Errorf("an interior element splits into itself")
	}
}

func Test_Z_51(t *testing.T) {
	if split := Top[ZIncUniverse[Signed], int64]().Split(); len(split) != 0 {
		t.Errorf("top splits into nothing")
	}
	//
	if split := Top[ZDecUniverse[Signed], int64]().Split(); len(split) != 0 {
		t.Errorf("top splits into nothing")
	}
}

func Test_Z_52(t *testing.T) {
	e := Bot[ZIncUniverse[Signed], int64]()
	//
	if split := e.Split(); len(split) != 1 || split[0] != e {
		t.Errorf("bot splits into itself")
	}
}

// Names and symbols

func Test_Z_60(t *testing.T) {
	names := []string{
		ZIncUniverse[Signed]{}.Name(), ZDecUniverse[Signed]{}.Name(),
		ZIncUniverse[Positive]{}.Name(), ZDecUniverse[Positive]{}.Name(),
		ZIncUniverse[Negative]{}.Name(), ZDecUniverse[Negative]{}.Name(),
	}
	expected := []string{"ZInc", "ZDec", "ZPInc", "ZPDec", "ZNInc", "ZNDec"}
	//
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("unexpected universe name %s (expected %s)", name, expected[i])
		}
	}
}

func Test_Z_61(t *testing.T) {
	var (
		ui ZIncUniverse[Signed]
		ud ZDecUniverse[Signed]
	)
	//
	if ui.OrderSig().String() != "≥" || ui.StrictOrderSig().String() != ">" {
		t.Errorf("an increasing element realizes a lower bound")
	}
	//
	if ud.OrderSig().String() != "≤" || ud.StrictOrderSig().String() != "<" {
		t.Errorf("a decreasing element realizes an upper bound")
	}
}

// ============================================================================
// Framework
// ============================================================================

// Check the lattice operations on a pair of elements with x strictly below y,
// or x equal to y.
func testOrderedPair[U Universe[V], V comparable](t *testing.T, x, y TotalOrder[U, V]) {
	if !x.Order(y) {
		t.Errorf("%s is not below %s", x, y)
	}
	//
	if x.Join(y) != y || y.Join(x) != y {
		t.Errorf("join of %s and %s is not %s", x, y, y)
	}
	//
	if x.Meet(y) != x || y.Meet(x) != x {
		t.Errorf("meet of %s and %s is not %s", x, y, x)
	}
	//
	if x != y && (y.Order(x) || !x.StrictOrder(y)) {
		t.Errorf("%s is not strictly below %s", x, y)
	}
}

// Check entailment against the extremes of the universe of an interior
// element: top entails everything, bot entails nothing but itself.
func testEntailsExtremes[U Universe[V], V comparable](t *testing.T, e TotalOrder[U, V]) {
	if e.Entails(e.Top()) || !e.Top().Entails(e) {
		t.Errorf("top carries strictly more information than %s", e)
	}
	//
	if !e.Entails(e.Bot()) || e.Bot().Entails(e) {
		t.Errorf("%s carries strictly more information than bot", e)
	}
}

func assertPanics(t *testing.T, fn func()) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	//
	fn()
}
