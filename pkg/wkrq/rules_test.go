package wkrq

import (
	"strings"
	"testing"

	"github.com/consensys/go-wkrq/pkg/util"
)

// Negation

func Test_Rule_01(t *testing.T) {
	testRule(t, T, Not(p), "f:p")
}

func Test_Rule_02(t *testing.T) {
	testRule(t, F, Not(p), "t:p")
}

func Test_Rule_03(t *testing.T) {
	testRule(t, E, Not(p), "e:p")
}

func Test_Rule_04(t *testing.T) {
	testRule(t, M, Not(p), "f:p", "t:p")
}

func Test_Rule_05(t *testing.T) {
	testRule(t, N, Not(p), "t:p", "e:p")
}

// Conjunction

func Test_Rule_10(t *testing.T) {
	testRule(t, T, And(p, q), "t:p, t:q")
}

func Test_Rule_11(t *testing.T) {
	testRule(t, F, And(p, q), "f:p", "f:q", "e:p, e:q")
}

func Test_Rule_12(t *testing.T) {
	testRule(t, E, And(p, q), "e:p", "e:q")
}

func Test_Rule_13(t *testing.T) {
	testRule(t, M, And(p, q), "t:p, t:q", "f:p", "f:q")
}

func Test_Rule_14(t *testing.T) {
	// Identical to the f case, (e,e) branch included.
	testRule(t, N, And(p, q), "f:p", "f:q", "e:p, e:q")
}

// Disjunction

func Test_Rule_20(t *testing.T) {
	testRule(t, T, Or(p, q), "t:p", "t:q", "e:p, e:q")
}

func Test_Rule_21(t *testing.T) {
	testRule(t, F, Or(p, q), "f:p, f:q")
}

func Test_Rule_22(t *testing.T) {
	testRule(t, E, Or(p, q), "e:p", "e:q")
}

func Test_Rule_23(t *testing.T) {
	testRule(t, M, Or(p, q), "t:p", "t:q", "f:p, f:q")
}

func Test_Rule_24(t *testing.T) {
	testRule(t, N, Or(p, q), "f:p, f:q", "e:p", "e:q")
}

// Implication

func Test_Rule_30(t *testing.T) {
	testRule(t, T, Implies(p, q), "f:p", "t:q", "e:p, e:q")
}

func Test_Rule_31(t *testing.T) {
	testRule(t, F, Implies(p, q), "t:p, f:q")
}

func Test_Rule_32(t *testing.T) {
	testRule(t, E, Implies(p, q), "e:p", "e:q")
}

func Test_Rule_33(t *testing.T) {
	testRule(t, M, Implies(p, q), "f:p", "t:q", "t:p, f:q")
}

func Test_Rule_34(t *testing.T) {
	testRule(t, N, Implies(p, q), "t:p, f:q", "e:p", "e:q")
}

// Meta-sign fallbacks

func Test_Rule_40(t *testing.T) {
	testRule(t, M, p, "t:p", "f:p")
}

func Test_Rule_41(t *testing.T) {
	testRule(t, N, p, "f:p", "e:p")
}

func Test_Rule_42(t *testing.T) {
	testRule(t, M, NewPredicate("R", a), "t:R(a)", "f:R(a)")
}

func Test_Rule_43(t *testing.T) {
	testRule(t, N, NewBilateral("R", true, a), "f:R*(a)", "e:R*(a)")
}

// Existential

func Test_Rule_50(t *testing.T) {
	testRule(t, T, exRM, "t:R(c1), t:M(c1)")
}

func Test_Rule_51(t *testing.T) {
	testRule(t, F, exRM,
		"m:R(c1), m:M(c1), n:R(c2)",
		"m:R(c1), m:M(c1), n:M(c2)")
}

func Test_Rule_52(t *testing.T) {
	// Universe constant taken first, fresh constant for the witness.
	testRuleIn(t, F, exRM, constants("a"), nil,
		"m:R(a), m:M(a), n:R(c1)",
		"m:R(a), m:M(a), n:M(c1)")
}

func Test_Rule_53(t *testing.T) {
	testRule(t, E, exRM, "e:R(c1)", "e:M(c1)")
}

func Test_Rule_54(t *testing.T) {
	testRule(t, M, exRM,
		"t:R(c1), t:M(c1)",
		"m:R(c2), m:M(c2), n:R(c3)",
		"m:R(c2), m:M(c2), n:M(c3)")
}

func Test_Rule_55(t *testing.T) {
	testRule(t, N, exRM,
		"m:R(c1), m:M(c1), n:R(c2)",
		"m:R(c1), m:M(c1), n:M(c2)",
		"e:R(c3)",
		"e:M(c3)")
}

func Test_Rule_56(t *testing.T) {
	// Exhausted universe silences the recurring case.
	testNoRule(t, F, exRM, constants("a"), constants("a"))
}

// Universal

func Test_Rule_60(t *testing.T) {
	testRule(t, T, allRM, "f:R(c1)", "t:M(c1)")
}

func Test_Rule_61(t *testing.T) {
	testRuleIn(t, T, allRM, constants("a", "b"), constants("a"), "f:R(b)", "t:M(b)")
}

func Test_Rule_62(t *testing.T) {
	testNoRule(t, T, allRM, constants("a"), constants("a"))
}

func Test_Rule_63(t *testing.T) {
	// Counterexample witness is always fresh, even with a universe present.
	testRuleIn(t, F, allRM, constants("a"), nil, "t:R(c1), f:M(c1)")
}

func Test_Rule_64(t *testing.T) {
	testRule(t, E, allRM, "e:R(c1)", "e:M(c1)")
}

func Test_Rule_65(t *testing.T) {
	testRule(t, M, allRM,
		"f:R(c1)",
		"t:M(c1)",
		"t:R(c2), f:M(c2)")
}

func Test_Rule_66(t *testing.T) {
	testRule(t, N, allRM,
		"t:R(c1), f:M(c1)",
		"e:R(c2)",
		"e:M(c2)")
}

// Literals

func Test_Rule_70(t *testing.T) {
	testNoRule(t, T, p, nil, nil)
}

func Test_Rule_71(t *testing.T) {
	testNoRule(t, F, NewPredicate("R", a), nil, nil)
}

func Test_Rule_72(t *testing.T) {
	testNoRule(t, E, NewBilateral("R", false, a), nil, nil)
}

// Recurrence

func Test_Rule_80(t *testing.T) {
	testRecurring(t, T, allRM, true)
}

func Test_Rule_81(t *testing.T) {
	testRecurring(t, F, allRM, false)
}

func Test_Rule_82(t *testing.T) {
	testRecurring(t, F, exRM, true)
}

func Test_Rule_83(t *testing.T) {
	testRecurring(t, T, exRM, false)
}

func Test_Rule_84(t *testing.T) {
	testRecurring(t, N, allRM, false)
}

// ============================================================================
// Framework
// ============================================================================

var (
	p = NewAtom("p")
	q = NewAtom("q")
	a = Constant{"a"}
	x = Variable{"X"}
	// [∃X R(X)]M(X)
	exRM = NewExists(x, NewPredicate("R", x), NewPredicate("M", x))
	// [∀X R(X)]M(X)
	allRM = NewForall(x, NewPredicate("R", x), NewPredicate("M", x))
)

func testRule(t *testing.T, sign Sign, f Formula, expected ...string) {
	testRuleIn(t, sign, f, nil, nil, expected...)
}

func testRuleIn(t *testing.T, sign Sign, f Formula, existing []Constant, used []Constant, expected ...string) {
	rule := applyTo(sign, f, existing, used)
	//
	if rule.IsEmpty() {
		t.Fatalf("no rule for %s", Signed(sign, f))
	}
	//
	branches := rule.Unwrap().Branches
	//
	if len(branches) != len(expected) {
		t.Fatalf("%s: expected %d branches, got %d", Signed(sign, f), len(expected), len(branches))
	}
	//
	for i, b := range branches {
		if actual := renderBranch(b); actual != expected[i] {
			t.Errorf("%s branch %d: expected %q, got %q", Signed(sign, f), i, expected[i], actual)
		}
	}
}

func testNoRule(t *testing.T, sign Sign, f Formula, existing []Constant, used []Constant) {
	if rule := applyTo(sign, f, existing, used); rule.HasValue() {
		t.Errorf("unexpected rule %s for %s", rule.Unwrap().ID, Signed(sign, f))
	}
}

func testRecurring(t *testing.T, sign Sign, f Formula, expected bool) {
	rule := applyTo(sign, f, nil, nil)
	//
	if rule.IsEmpty() {
		t.Fatalf("no rule for %s", Signed(sign, f))
	} else if actual := rule.Unwrap().Recurring; actual != expected {
		t.Errorf("%s: expected recurring=%v, got %v", Signed(sign, f), expected, actual)
	}
}

func applyTo(sign Sign, f Formula, existing []Constant, used []Constant) util.Option[Rule] {
	gen := NewConstantGen()
	//
	for _, c := range existing {
		gen.Reserve(c.Name)
	}
	//
	set := NewConstantSet()
	//
	for _, c := range used {
		set.Insert(c)
	}
	//
	return Apply(Signed(sign, f), gen, existing, set)
}

func renderBranch(b []SignedFormula) string {
	var builder strings.Builder
	//
	for i, sf := range b {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(sf.String())
	}
	//
	return builder.String()
}

func constants(names ...string) []Constant {
	cs := make([]Constant, len(names))
	//
	for i, n := range names {
		cs[i] = Constant{n}
	}
	//
	return cs
}
