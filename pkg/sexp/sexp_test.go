package sexp

import (
	"testing"
)

func TestSexp_0(t *testing.T) {
	checkString(t, NewSymbol("x"), "x")
}

func TestSexp_1(t *testing.T) {
	checkString(t, EmptyList(), "()")
}

func TestSexp_2(t *testing.T) {
	checkString(t, NewList([]SExp{EmptyList()}), "(())")
}

func TestSexp_3(t *testing.T) {
	e := NewList([]SExp{NewSymbol("≥"), NewSymbol("x"), NewSymbol("10")})
	checkString(t, e, "(≥ x 10)")
}

func TestSexp_4(t *testing.T) {
	inner := NewList([]SExp{NewSymbol("∃"), NewSymbol("x"), NewSymbol("Int")})
	outer := NewList([]SExp{NewSymbol("∧"), inner, NewSymbol("true")})
	checkString(t, outer, "(∧ (∃ x Int) true)")
}

func TestSexp_5(t *testing.T) {
	e := EmptyList()
	e.Append(NewSymbol("a"))
	e.Append(NewSymbol("b"))
	//
	if e.Len() != 2 || e.Get(0).String() != "a" || e.Get(1).String() != "b" {
		t.Errorf("appending does not extend the list in order")
	}
}

func TestSexp_6(t *testing.T) {
	list := NewList(nil)
	symbol := NewSymbol("x")
	//
	if list.AsList() != list || list.AsSymbol() != nil {
		t.Errorf("a list is a list and not a symbol")
	}
	//
	if symbol.AsSymbol() != symbol || symbol.AsList() != nil {
		t.Errorf("a symbol is a symbol and not a list")
	}
}

// ============================================================================
// Framework
// ============================================================================

func checkString(t *testing.T, e SExp, expected string) {
	if s := e.String(); s != expected {
		t.Errorf("rendered %s (expected %s)", s, expected)
	}
}
