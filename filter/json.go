package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// ErrInvalidFilterJSON indicates wire data that does not follow the filter
// grammar.
var ErrInvalidFilterJSON = errors.New("invalid filter JSON")

// MarshalJSON renders the comparison as its wire object.
func (c *Comparison) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Field    string `json:"field"`
		Operator string `json:"operator"`
		Value    any    `json:"value"`
	}{c.Field, c.Operator, c.Value})
}

// MarshalJSON renders the group as its ["AND"|"OR", [items]] tuple.
func (g *Group) MarshalJSON() ([]byte, error) {
	items := g.Items
	if items == nil {
		items = []Expr{}
	}
	return json.Marshal([]any{g.Op, items})
}

// MarshalJSON renders the negation as its ["NOT", item] tuple.
func (n *Not) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{"NOT", n.Item})
}

// MarshalJSON writes a nil filter as the empty list, never as null.
func (f Filter) MarshalJSON() ([]byte, error) {
	if f == nil {
		f = Filter{}
	}
	return json.Marshal([]Expr(f))
}

// EncodeJSON renders a filter in the JSON wire format.
func EncodeJSON(f Filter) ([]byte, error) {
	return json.Marshal(f)
}

// DecodeJSON parses JSON wire data into a filter. Accepted top level forms
// are a plain list of expressions, a single logic tuple and a single
// comparison object. Logic operators are normalized to upper case and
// numbers without a fraction decode as int64.
func DecodeJSON(data []byte) (Filter, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilterJSON, err)
	}

	switch v.Type() {
	case fastjson.TypeObject:
		cmp, err := decodeComparison(v)
		if err != nil {
			return nil, err
		}
		return Filter{cmp}, nil

	case fastjson.TypeArray:
		arr := v.GetArray()
		if len(arr) == 0 {
			return Filter{}, nil
		}
		if len(arr) == 2 && arr[0].Type() == fastjson.TypeString {
			e, err := decodeExpr(v)
			if err != nil {
				return nil, err
			}
			return Filter{e}, nil
		}
		items, err := decodeItems(arr)
		if err != nil {
			return nil, err
		}
		return Filter(items), nil

	default:
		return nil, fmt.Errorf("%w: unexpected top level %s", ErrInvalidFilterJSON, v.Type())
	}
}

func decodeExpr(v *fastjson.Value) (Expr, error) {
	switch v.Type() {
	case fastjson.TypeObject:
		return decodeComparison(v)

	case fastjson.TypeArray:
		arr := v.GetArray()
		if len(arr) != 2 || arr[0].Type() != fastjson.TypeString {
			return nil, fmt.Errorf("%w: logic form must be [operator, argument]", ErrInvalidFilterJSON)
		}

		op := strings.ToUpper(string(arr[0].GetStringBytes()))
		switch op {
		case "AND", "OR":
			if arr[1].Type() != fastjson.TypeArray {
				return nil, fmt.Errorf("%w: %s argument must be a list", ErrInvalidFilterJSON, op)
			}
			items, err := decodeItems(arr[1].GetArray())
			if err != nil {
				return nil, err
			}
			return &Group{Op: LogicOp(op), Items: items}, nil

		case "NOT":
			item, err := decodeExpr(arr[1])
			if err != nil {
				return nil, err
			}
			return &Not{Item: item}, nil

		default:
			return nil, fmt.Errorf("%w: unknown logic operator %q", ErrInvalidFilterJSON, op)
		}

	default:
		return nil, fmt.Errorf("%w: unexpected %s expression", ErrInvalidFilterJSON, v.Type())
	}
}

// decodeItems decodes group members. Empty nested lists carry no meaning
// and are skipped.
func decodeItems(arr []*fastjson.Value) ([]Expr, error) {
	items := make([]Expr, 0, len(arr))
	for i, v := range arr {
		if v.Type() == fastjson.TypeArray && len(v.GetArray()) == 0 {
			continue
		}
		e, err := decodeExpr(v)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, e)
	}
	return items, nil
}

func decodeComparison(v *fastjson.Value) (*Comparison, error) {
	field := v.Get("field")
	operator := v.Get("operator")
	value := v.Get("value")
	if field == nil || operator == nil || value == nil {
		return nil, fmt.Errorf("%w: comparison needs field, operator and value", ErrInvalidFilterJSON)
	}

	fieldText, err := field.StringBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: comparison field must be a string", ErrInvalidFilterJSON)
	}
	operatorText, err := operator.StringBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: comparison operator must be a string", ErrInvalidFilterJSON)
	}
	decoded, err := decodeValue(value)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Field:    string(fieldText),
		Operator: string(operatorText),
		Value:    decoded,
	}, nil
}

func decodeValue(v *fastjson.Value) (any, error) {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes()), nil

	case fastjson.TypeNumber:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		return v.Float64()

	case fastjson.TypeArray:
		arr := v.GetArray()
		items := make([]string, 0, len(arr))
		for _, item := range arr {
			s, err := item.StringBytes()
			if err != nil {
				return nil, fmt.Errorf("%w: list values must be strings", ErrInvalidFilterJSON)
			}
			items = append(items, string(s))
		}
		return items, nil

	default:
		return nil, fmt.Errorf("%w: unsupported value type %s", ErrInvalidFilterJSON, v.Type())
	}
}

// ValidateJSON checks that data follows the wire filter grammar without
// building expressions. It returns nil for a valid filter. Otherwise the
// first element is a problem code and the remaining elements form the path
// to the offending item, outermost group first, as "op[index]" steps.
//
// The codes are "none", "invalid_field_filter", "logic_arg_not_a_list",
// "logic_arg_not_2_items", "unknown_logic_operator", "unknown_arg_type" and
// "unknown_filter_type". Data that is not valid JSON at all reports
// "unknown_filter_type".
func ValidateJSON(data []byte) []string {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return []string{"unknown_filter_type"}
	}

	switch v.Type() {
	case fastjson.TypeNull:
		return []string{"none"}

	case fastjson.TypeObject:
		return validateComparisonShape(v)

	case fastjson.TypeArray:
		arr := v.GetArray()
		if len(arr) == 0 {
			return nil
		}
		if len(arr) == 2 && arr[0].Type() == fastjson.TypeString {
			return validateLogicArg(v)
		}
		return validateGroupItems("and", arr)

	default:
		return []string{"unknown_filter_type"}
	}
}

// validateLogicArg checks one expression: a comparison object, a logic
// tuple or an empty list.
func validateLogicArg(v *fastjson.Value) []string {
	switch v.Type() {
	case fastjson.TypeObject:
		return validateComparisonShape(v)

	case fastjson.TypeArray:
		arr := v.GetArray()
		if len(arr) == 0 {
			return nil
		}
		if len(arr) != 2 {
			return []string{"logic_arg_not_2_items"}
		}
		if arr[0].Type() != fastjson.TypeString {
			return []string{"unknown_logic_operator"}
		}

		rawOp := string(arr[0].GetStringBytes())
		switch strings.ToLower(rawOp) {
		case "not":
			return validateLogicArg(arr[1])
		case "and", "or":
			if arr[1].Type() != fastjson.TypeArray {
				return []string{"logic_arg_not_a_list", rawOp}
			}
			return validateGroupItems(rawOp, arr[1].GetArray())
		default:
			return []string{"unknown_logic_operator"}
		}

	default:
		return []string{"unknown_arg_type"}
	}
}

// validateGroupItems checks every member of a group, inserting this group's
// path step right after the code so the path reads outermost first.
func validateGroupItems(op string, arr []*fastjson.Value) []string {
	for i, item := range arr {
		if issues := validateLogicArg(item); issues != nil {
			step := fmt.Sprintf("%s[%d]", op, i)
			return append([]string{issues[0], step}, issues[1:]...)
		}
	}
	return nil
}

// validateComparisonShape checks that an object carries exactly the field,
// operator and value keys with string field and operator.
func validateComparisonShape(v *fastjson.Value) []string {
	obj, err := v.Object()
	if err != nil {
		return []string{"invalid_field_filter"}
	}

	var bad bool
	seen := make(map[string]bool, 3)
	obj.Visit(func(key []byte, item *fastjson.Value) {
		switch string(key) {
		case "field", "operator":
			if item.Type() != fastjson.TypeString {
				bad = true
			}
			seen[string(key)] = true
		case "value":
			seen["value"] = true
		default:
			bad = true
		}
	})

	if bad || !seen["field"] || !seen["operator"] || !seen["value"] {
		return []string{"invalid_field_filter"}
	}
	return nil
}
