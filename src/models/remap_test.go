package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapRewritesMappedReferences(t *testing.T) {
	cl := &ConditionalLogic{
		Enabled: true,
		Conditions: []Condition{
			{QuestionID: "temp-1", Operator: OpEquals, Value: "yes"},
			{QuestionID: "real-id", Operator: OpEquals, Value: "no"},
		},
	}

	out, changes := cl.Remap("owner", map[string]string{"temp-1": "abc123"})

	require.Len(t, changes, 1)
	assert.Equal(t, ConditionChange{QuestionID: "owner", Old: "temp-1", New: "abc123"}, changes[0])
	assert.Equal(t, "abc123", out.Conditions[0].QuestionID)
	assert.Equal(t, "real-id", out.Conditions[1].QuestionID)
}

func TestRemapNeverMutatesReceiver(t *testing.T) {
	cl := &ConditionalLogic{
		Enabled:    true,
		Conditions: []Condition{{QuestionID: "temp-1", Operator: OpEquals, Value: "yes"}},
	}

	out, changes := cl.Remap("owner", map[string]string{"temp-1": "abc123"})

	require.NotNil(t, out)
	assert.NotSame(t, cl, out)
	assert.Equal(t, "temp-1", cl.Conditions[0].QuestionID)
	assert.Len(t, changes, 1)
}

func TestRemapNoOpReturnsReceiver(t *testing.T) {
	cl := &ConditionalLogic{
		Enabled:    true,
		Conditions: []Condition{{QuestionID: "real-id", Operator: OpEquals, Value: "yes"}},
	}

	out, changes := cl.Remap("owner", map[string]string{"temp-1": "abc123"})
	assert.Same(t, cl, out)
	assert.Empty(t, changes)

	out, changes = cl.Remap("owner", nil)
	assert.Same(t, cl, out)
	assert.Empty(t, changes)

	var nilLogic *ConditionalLogic
	out, changes = nilLogic.Remap("owner", map[string]string{"a": "b"})
	assert.Nil(t, out)
	assert.Empty(t, changes)
}

func TestRemapIgnoresEmptyReplacement(t *testing.T) {
	cl := &ConditionalLogic{
		Enabled:    true,
		Conditions: []Condition{{QuestionID: "temp-1", Operator: OpEquals, Value: "yes"}},
	}

	out, changes := cl.Remap("owner", map[string]string{"temp-1": ""})
	assert.Same(t, cl, out)
	assert.Empty(t, changes)
}

func TestIsValidResponseStatus(t *testing.T) {
	for _, s := range []string{StatusDraft, StatusSubmitted, StatusPendingApproval, StatusApproved, StatusRejected} {
		assert.True(t, IsValidResponseStatus(s), s)
	}
	assert.False(t, IsValidResponseStatus(""))
	assert.False(t, IsValidResponseStatus("escalated"))
	assert.False(t, IsValidResponseStatus("Submitted"))
}
