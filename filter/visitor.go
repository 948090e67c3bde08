package filter

// Visitor walks a wire filter in document order. Only the callbacks that
// are set are invoked.
type Visitor struct {
	// And and Or run for the matching group kind.
	And func(*Group)
	Or  func(*Group)
	// Logic runs for every group, after the And or Or callback.
	Logic func(*Group)
	// Not runs for negations, before their item is walked.
	Not func(*Not)
	// Field runs for every leaf comparison.
	Field func(*Comparison)
}

// Walk visits every expression of the filter.
func (v Visitor) Walk(f Filter) {
	for _, e := range f {
		v.WalkExpr(e)
	}
}

// WalkExpr visits one expression and its descendants. Group callbacks fire
// before the group's items are walked.
func (v Visitor) WalkExpr(e Expr) {
	switch node := e.(type) {
	case *Comparison:
		if v.Field != nil {
			v.Field(node)
		}

	case *Group:
		switch node.Op {
		case OpAnd:
			if v.And != nil {
				v.And(node)
			}
		case OpOr:
			if v.Or != nil {
				v.Or(node)
			}
		}
		if v.Logic != nil {
			v.Logic(node)
		}
		for _, item := range node.Items {
			v.WalkExpr(item)
		}

	case *Not:
		if v.Not != nil {
			v.Not(node)
		}
		v.WalkExpr(node.Item)
	}
}

// Comparisons returns every leaf comparison of the filter in document
// order, however deeply nested.
func Comparisons(f Filter) []*Comparison {
	var result []*Comparison
	Visitor{Field: func(c *Comparison) {
		result = append(result, c)
	}}.Walk(f)
	return result
}
