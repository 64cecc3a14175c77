package universe

import (
	"testing"

	"github.com/consensys/go-lattice/pkg/logic"
)

// Constants

func Test_BInc_01(t *testing.T) {
	var u PreBInc
	// Both truth constants are exactly representable, unlike the knowledge
	// order.
	if r := u.InterpretConstant(logic.False()); !r.IsOk() || r.Value() != false {
		t.Errorf("the constant false interprets to bot")
	}
	//
	if r := u.InterpretConstant(logic.True()); !r.IsOk() || r.Value() != true {
		t.Errorf("the constant true interprets to top")
	}
}

func Test_BInc_02(t *testing.T) {
	var u PreBInc
	// Integer constants follow the zero-is-false convention.
	if r := u.InterpretConstant(logic.NewInt(0)); !r.IsOk() || r.Value() != false {
		t.Errorf("zero interprets to false")
	}
	//
	if r := u.InterpretConstant(logic.NewInt(7)); !r.IsOk() || r.Value() != true {
		t.Errorf("a non-zero integer interprets to true")
	}
	//
	if r := u.InterpretConstant(logic.NewInt(-1)); !r.IsOk() || r.Value() != true {
		t.Errorf("a negative integer interprets to true")
	}
}

func Test_BInc_03(t *testing.T) {
	if r := (PreBInc{}).InterpretConstant(logic.NewVar("x")); r.IsOk() || !r.Err().IsFatal() {
		t.Errorf("a variable occurrence is not a constant")
	}
	//
	if r := (PreBDec{}).InterpretConstant(logic.NewVar("x")); r.IsOk() || !r.Err().IsFatal() {
		t.Errorf("a variable occurrence is not a constant")
	}
}

func Test_BInc_04(t *testing.T) {
	var d PreBDec
	// The decreasing order shares the constant convention.
	if r := d.InterpretConstant(logic.NewInt(0)); !r.IsOk() || r.Value() != false {
		t.Errorf("zero interprets to false")
	}
	//
	if r := d.InterpretConstant(logic.True()); !r.IsOk() || r.Value() != true {
		t.Errorf("the constant true interprets to bot of the decreasing order")
	}
}

// Declarations

func Test_BInc_10(t *testing.T) {
	r := InterpretBool[PreBInc](logic.NewExists("x", logic.Int))
	//
	if !r.IsOk() || !r.Value().IsBot() {
		t.Errorf("declaring an integer variable interprets to bot")
	}
	//
	if InterpretBool[PreBInc](logic.NewExists("x", logic.Bool)).IsOk() {
		t.Errorf("the truth order models integer variables, not Boolean ones")
	}
	//
	if InterpretBool[PreBDec](logic.NewExists("x", logic.Real)).IsOk() {
		t.Errorf("a real variable has no place in the truth orders")
	}
}

// Connectives

func Test_BInc_20(t *testing.T) {
	var (
		u PreBInc
		d PreBDec
	)
	// Negation is exact in the truth orders.
	if u.Fun1(logic.Not, false) != true || u.Fun1(logic.Not, true) != false {
		t.Errorf("negation flips the truth value")
	}
	//
	if d.Fun1(logic.Not, false) != true || d.Fun1(logic.Not, true) != false {
		t.Errorf("negation flips the truth value in the decreasing order")
	}
	//
	if !u.IsSupportedFun(logic.Not) || !d.IsSupportedFun(logic.Not) {
		t.Errorf("negation is supported in the truth orders")
	}
}

func Test_BInc_21(t *testing.T) {
	assertPanics(t, func() { PreBInc{}.Fun1(logic.And, false) })
	assertPanics(t, func() { PreBDec{}.Fun2(logic.Geq, false, true) })
}

func Test_BInc_22(t *testing.T) {
	var u PreBInc
	//
	for _, x := range []bool{false, true} {
		for _, y := range []bool{false, true} {
			checkFun2(t, u.Name(), u.Fun2(logic.And, x, y), x && y, logic.And, x, y)
			checkFun2(t, u.Name(), u.Fun2(logic.Or, x, y), x || y, logic.Or, x, y)
			checkFun2(t, u.Name(), u.Fun2(logic.Imply, x, y), !x || y, logic.Imply, x, y)
			checkFun2(t, u.Name(), u.Fun2(logic.Eq, x, y), x == y, logic.Eq, x, y)
			checkFun2(t, u.Name(), u.Fun2(logic.Neq, x, y), x != y, logic.Neq, x, y)
		}
	}
}

func Test_BInc_23(t *testing.T) {
	var d PreBDec
	//
	for _, x := range []bool{false, true} {
		for _, y := range []bool{false, true} {
			checkFun2(t, d.Name(), d.Fun2(logic.And, x, y), x || y, logic.And, x, y)
			checkFun2(t, d.Name(), d.Fun2(logic.Or, x, y), x && y, logic.Or, x, y)
			checkFun2(t, d.Name(), d.Fun2(logic.Imply, x, y), !y || x, logic.Imply, x, y)
		}
	}
}

func Test_BInc_24(t *testing.T) {
	// Only conjunction and disjunction are monotone in the truth orders;
	// implication and negation lose monotonicity in at least one argument.
	for _, sig := range []logic.Sig{logic.And, logic.Or} {
		if !(PreBInc{}).IsOrderPreserving(sig) || !(PreBDec{}).IsOrderPreserving(sig) {
			t.Errorf("connective %s preserves the truth order", sig)
		}
	}
	//
	for _, sig := range []logic.Sig{logic.Imply, logic.Equiv, logic.Xor, logic.Not} {
		if (PreBInc{}).IsOrderPreserving(sig) || (PreBDec{}).IsOrderPreserving(sig) {
			t.Errorf("connective %s does not preserve the truth order", sig)
		}
	}
}

// Order

func Test_BInc_30(t *testing.T) {
	var (
		u PreBInc
		d PreBDec
	)
	//
	if u.OrderSig() != logic.Leq || d.OrderSig() != logic.Geq {
		t.Errorf("the truth orders are realized by the numeric comparisons")
	}
	//
	if !u.Order(false, true) || u.Order(true, false) {
		t.Errorf("false is below true in the increasing truth order")
	}
	//
	if !d.Order(true, false) || d.Order(false, true) {
		t.Errorf("true is below false in the decreasing truth order")
	}
}
