package wkrq

import (
	"testing"
)

func Test_Infer_01(t *testing.T) {
	// Modus ponens
	testValid(t, infer(q, p, Implies(p, q)))
}

func Test_Infer_02(t *testing.T) {
	testValid(t, infer(And(p, q), p, q))
}

func Test_Infer_03(t *testing.T) {
	testValid(t, infer(p, And(p, q)))
}

func Test_Infer_04(t *testing.T) {
	// Unrelated atoms, with the premise forced true in every countermodel.
	result := testInvalid(t, infer(q, p))
	//
	for _, model := range result.Countermodels {
		if model.Value(p).UnwrapOr(E) != T {
			t.Errorf("countermodel %s does not make premise true", model)
		}
		//
		if model.Value(q).UnwrapOr(T) == T {
			t.Errorf("countermodel %s makes conclusion true", model)
		}
	}
}

func Test_Infer_05(t *testing.T) {
	// Excluded middle fails under weak Kleene.
	testInvalid(t, infer(Or(p, Not(p))))
}

func Test_Infer_06(t *testing.T) {
	// Even p -> p fails, since an undefined p leaves it undefined.
	result := testInvalid(t, infer(Implies(p, p)))
	//
	if len(result.Countermodels) == 0 {
		t.Fatalf("expected countermodels")
	} else if result.Countermodels[0].Value(p).UnwrapOr(T) != E {
		t.Errorf("expected undefined p, got %s", result.Countermodels[0])
	}
}

func Test_Infer_07(t *testing.T) {
	// Contradictory premises prove anything in the base logic.
	testValid(t, infer(q, p, Not(p)))
}

func Test_Infer_08(t *testing.T) {
	human := NewForall(x, NewPredicate("Human", x), NewPredicate("Mortal", x))
	socrates := Constant{"socrates"}
	//
	testValid(t, infer(
		NewPredicate("Mortal", socrates),
		human,
		NewPredicate("Human", socrates)))
}

func Test_Infer_09(t *testing.T) {
	// Without the restriction premise, nothing follows.
	human := NewForall(x, NewPredicate("Human", x), NewPredicate("Mortal", x))
	socrates := Constant{"socrates"}
	//
	testInvalid(t, infer(NewPredicate("Mortal", socrates), human))
}

func Test_Infer_10(t *testing.T) {
	result := Valid(Options{MaxNodes: 2}, infer(q, p, Implies(p, q)))
	//
	if !result.Aborted {
		t.Errorf("expected aborted result")
	} else if result.Valid {
		t.Errorf("aborted search must not claim validity")
	}
}

func Test_Infer_11(t *testing.T) {
	i := infer(q, p, Implies(p, q))
	//
	if actual := i.String(); actual != "p, p -> q |- q" {
		t.Errorf("expected %q, got %q", "p, p -> q |- q", actual)
	}
}

func Test_Infer_12(t *testing.T) {
	i := infer(Or(p, Not(p)))
	//
	if actual := i.String(); actual != "|- p | ~p" {
		t.Errorf("expected %q, got %q", "|- p | ~p", actual)
	}
}

// ============================================================================
// Framework
// ============================================================================

func infer(conclusion Formula, premises ...Formula) Inference {
	return Inference{premises, conclusion}
}

func testValid(t *testing.T, inference Inference) {
	result := Valid(Options{}, inference)
	//
	if !result.Valid {
		t.Errorf("expected %s to be valid", inference)
	} else if len(result.Countermodels) != 0 {
		t.Errorf("valid inference %s has countermodels", inference)
	}
}

func testInvalid(t *testing.T, inference Inference) InferenceResult {
	result := Valid(Options{AllModels: true}, inference)
	//
	if result.Valid {
		t.Errorf("expected %s to be invalid", inference)
	} else if len(result.Countermodels) == 0 {
		t.Errorf("invalid inference %s has no countermodel", inference)
	}
	//
	return result
}
