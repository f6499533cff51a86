package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasnainotho/formbrick-backend/src/models"
)

func TestEvaluateConditionEquals(t *testing.T) {
	cond := models.Condition{Operator: models.OpEquals, Value: "yes"}

	assert.True(t, evaluateCondition(cond, "yes"))
	assert.False(t, evaluateCondition(cond, "no"))
	assert.False(t, evaluateCondition(cond, nil))

	// numeric answers match numeric comparands regardless of concrete type
	numCond := models.Condition{Operator: models.OpEquals, Value: float64(5)}
	assert.True(t, evaluateCondition(numCond, 5))
	assert.True(t, evaluateCondition(numCond, float64(5)))
	assert.False(t, evaluateCondition(numCond, 6))
}

func TestEvaluateConditionNotEqualsIsComplement(t *testing.T) {
	values := []interface{}{"yes", "no", nil, float64(5), 5, []interface{}{"a"}}
	for _, answer := range values {
		eq := evaluateCondition(models.Condition{Operator: models.OpEquals, Value: "yes"}, answer)
		ne := evaluateCondition(models.Condition{Operator: models.OpNotEquals, Value: "yes"}, answer)
		assert.Equal(t, !eq, ne, "answer=%v", answer)
	}
}

func TestEvaluateConditionContains(t *testing.T) {
	cond := models.Condition{Operator: models.OpContains, Value: "bc"}
	assert.True(t, evaluateCondition(cond, "abcd"))
	assert.False(t, evaluateCondition(cond, "abd"))

	// numbers are compared through their text rendering
	assert.True(t, evaluateCondition(models.Condition{Operator: models.OpContains, Value: "5"}, float64(125)))

	// nil comparand never matches, nil answer renders as ""
	assert.False(t, evaluateCondition(models.Condition{Operator: models.OpContains, Value: nil}, "anything"))
	assert.False(t, evaluateCondition(models.Condition{Operator: models.OpContains, Value: "x"}, nil))

	// empty needle matches any present answer
	assert.True(t, evaluateCondition(models.Condition{Operator: models.OpContains, Value: ""}, "anything"))
}

func TestEvaluateConditionOrdering(t *testing.T) {
	gt := models.Condition{Operator: models.OpGreaterThan, Value: float64(7)}
	assert.True(t, evaluateCondition(gt, float64(8)))
	assert.False(t, evaluateCondition(gt, float64(7)))
	assert.False(t, evaluateCondition(gt, float64(3)))

	// numeric text coerces, junk does not
	assert.True(t, evaluateCondition(gt, "9"))
	assert.False(t, evaluateCondition(gt, "abc"))
	assert.False(t, evaluateCondition(gt, nil))

	lt := models.Condition{Operator: models.OpLessThan, Value: "10"}
	assert.True(t, evaluateCondition(lt, float64(3)))
	assert.False(t, evaluateCondition(lt, float64(10)))
	assert.False(t, evaluateCondition(lt, "not a number"))
}

func TestEvaluateConditionUnknownOperator(t *testing.T) {
	assert.False(t, evaluateCondition(models.Condition{Operator: "regex", Value: ".*"}, "anything"))
	assert.False(t, evaluateCondition(models.Condition{Value: "x"}, "x"))
}

func TestMatchesGate(t *testing.T) {
	answers := map[string]interface{}{"q1": "yes"}
	cond := []models.Condition{{QuestionID: "q1", Operator: models.OpEquals, Value: "yes"}}

	assert.False(t, Matches(nil, answers))
	assert.False(t, Matches(&models.ConditionalLogic{Enabled: false, Conditions: cond}, answers))
	assert.False(t, Matches(&models.ConditionalLogic{Enabled: true}, answers))
	assert.True(t, Matches(&models.ConditionalLogic{Enabled: true, Conditions: cond}, answers))
}

func TestMatchesAndSemantics(t *testing.T) {
	logic := &models.ConditionalLogic{
		Enabled: true,
		Conditions: []models.Condition{
			{QuestionID: "q1", Operator: models.OpEquals, Value: "yes"},
			{QuestionID: "q2", Operator: models.OpGreaterThan, Value: float64(5)},
		},
	}

	assert.True(t, Matches(logic, map[string]interface{}{"q1": "yes", "q2": float64(6)}))
	assert.False(t, Matches(logic, map[string]interface{}{"q1": "yes", "q2": float64(4)}))
	assert.False(t, Matches(logic, map[string]interface{}{"q1": "no", "q2": float64(6)}))
	assert.False(t, Matches(logic, map[string]interface{}{"q1": "yes"}))
}

func TestMatchesHidePolarity(t *testing.T) {
	logic := &models.ConditionalLogic{
		Enabled:    true,
		Action:     models.LogicActionHide,
		Conditions: []models.Condition{{QuestionID: "q1", Operator: models.OpEquals, Value: "yes"}},
	}

	assert.False(t, Matches(logic, map[string]interface{}{"q1": "yes"}))
	assert.True(t, Matches(logic, map[string]interface{}{"q1": "no"}))
	assert.True(t, Matches(logic, map[string]interface{}{}))
}
