package models

// ConditionChange records one questionId rewrite produced by Remap.
type ConditionChange struct {
	QuestionID string `json:"questionId"`
	Old        string `json:"old"`
	New        string `json:"new"`
}

// RemapResult is the outcome of an admin remap pass over a form.
type RemapResult struct {
	FormID  string            `json:"formId"`
	DryRun  bool              `json:"dryRun"`
	Changes []ConditionChange `json:"changes"`
}

// Remap returns a copy of the conditional logic with condition questionId
// references rewritten through mappings. The receiver is never mutated, so
// the stored document stays untouched until the caller persists the copy.
// The second return lists the rewrites keyed by the owning question's id.
func (cl *ConditionalLogic) Remap(ownerID string, mappings map[string]string) (*ConditionalLogic, []ConditionChange) {
	if cl == nil || len(cl.Conditions) == 0 || len(mappings) == 0 {
		return cl, nil
	}

	var changes []ConditionChange
	out := *cl
	out.Conditions = make([]Condition, len(cl.Conditions))
	copy(out.Conditions, cl.Conditions)

	for i := range out.Conditions {
		old := out.Conditions[i].QuestionID
		if repl, ok := mappings[old]; ok && repl != "" {
			out.Conditions[i].QuestionID = repl
			changes = append(changes, ConditionChange{QuestionID: ownerID, Old: old, New: repl})
		}
	}

	if len(changes) == 0 {
		return cl, nil
	}
	return &out, changes
}
