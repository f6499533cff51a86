package workflow

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hasnainotho/formbrick-backend/src/models"
)

// evaluateCondition checks one condition against one answer value. It is
// total: malformed conditions and missing answers evaluate to false rather
// than aborting the pass for the whole form.
func evaluateCondition(cond models.Condition, answer interface{}) bool {
	switch cond.Operator {
	case models.OpEquals:
		return looseEqual(answer, cond.Value)
	case models.OpNotEquals:
		return !looseEqual(answer, cond.Value)
	case models.OpContains:
		if cond.Value == nil {
			return false
		}
		return strings.Contains(toText(answer), toText(cond.Value))
	case models.OpGreaterThan:
		a, okA := toFloat(answer)
		v, okV := toFloat(cond.Value)
		return okA && okV && a > v
	case models.OpLessThan:
		a, okA := toFloat(answer)
		v, okV := toFloat(cond.Value)
		return okA && okV && a < v
	}
	// unknown or absent operator
	return false
}

// Matches evaluates a question's full condition set against the answer map
// and applies the show/hide polarity. It is the sole gate for whether the
// question's workflow actions run.
func Matches(logic *models.ConditionalLogic, answers map[string]interface{}) bool {
	if logic == nil || !logic.Enabled || len(logic.Conditions) == 0 {
		return false
	}

	allMet := true
	for _, cond := range logic.Conditions {
		if !evaluateCondition(cond, answers[cond.QuestionID]) {
			allMet = false
			break
		}
	}

	if logic.Action == models.LogicActionHide {
		return !allMet
	}
	return allMet
}

// looseEqual compares two decoded values. Numbers are compared numerically
// so that an int answer matches a float64 comparand from JSON; everything
// else falls back to structural equality, which never panics on slices or
// maps the way == on interface{} would.
func looseEqual(a, b interface{}) bool {
	if fa, okA := toNumber(a); okA {
		if fb, okB := toNumber(b); okB {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

func toText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// toNumber converts only values that are natively numeric.
func toNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

// toFloat additionally parses numeric text, mirroring the permissive
// coercion of greater_than/less_than.
func toFloat(v interface{}) (float64, bool) {
	if f, ok := toNumber(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
