// Package prompt builds the system prompts and task payloads sent to the
// agent sidecar. Stateless — all state comes from parameters.
package prompt

import (
	"encoding/json"
	"fmt"
)

const jsonReplyInstruction = "Reply with a single JSON document. " +
	"Wrap it in a ```json fenced block. Do not add prose outside the block."

// systemPrompts maps agent roles to their system messages. The task object
// carries the per-call data; the system prompt only fixes the role and the
// reply contract.
var systemPrompts = map[string]string{
	"designer": "You are a mechanism designer. Given a problem spec (constraints, goals, " +
		"resolution) and a world model, propose candidate mechanisms. For each candidate " +
		"include mechanism_description, predicted_effects (actors_affected, resources_impacted, " +
		"mechanisms_modified), constraint_compliance (constraint name to number or bool) and " +
		"reasoning. When parent candidates are provided, design variations of them and set " +
		"parent_ids. " + jsonReplyInstruction,

	"scenario_generator": "You are a scenario designer. Given a problem spec and a world model, " +
		"produce test scenarios. Each scenario has name, description, type (stress_test, " +
		"edge_case, normal_operation, failure_mode), focus, initial_state, events, " +
		"expected_outcomes and weight in [0,1]. Cover normal operation as well as failure " +
		"modes. " + jsonReplyInstruction,

	"evaluator": "You are a mechanism evaluator. Given one candidate mechanism and one scenario, " +
		"simulate the scenario against the world model and report P (progress toward the goals) " +
		"and R (resource cost), each as {overall in [0,1], components}. Report per-constraint " +
		"constraint_satisfaction as {satisfied, score, explanation} and an overall explanation. " +
		jsonReplyInstruction,

	"problem_spec": "You are a requirements analyst. Given the conversation so far and the " +
		"current problem spec, propose an updated_spec (constraints with name/description/weight, " +
		"goals, resolution, mode), follow_up_questions for the user, reasoning, and ready_to_run. " +
		jsonReplyInstruction,

	"world_modeller": "You are a world modeller. Given the conversation so far and the current " +
		"world model, propose an updated_model (actors, mechanisms, resources, constraints, " +
		"assumptions, simplifications) plus a changes list of {type: added|modified|removed, " +
		"entity_type, entity_id, description}, reasoning, and ready_to_run. " + jsonReplyInstruction,

	"feedback": "You are a remediation advisor. Given an issue report and the project state, " +
		"suggest a suggested_action (patch_and_rescore, partial_rerun, full_rerun, " +
		"invalidate_candidates), an optional patch object, and reasoning. " + jsonReplyInstruction,

	"guidance": "You are a project guide. Given the project state and recent run outcomes, " +
		"suggest next_steps for the user with reasoning. " + jsonReplyInstruction,
}

// SystemPrompt returns the system message for a role.
func SystemPrompt(role string) (string, error) {
	p, ok := systemPrompts[role]
	if !ok {
		return "", fmt.Errorf("unknown agent role %q", role)
	}
	return p, nil
}

// RenderTask serializes the task object as a fenced JSON block, the format
// every role's system prompt promises.
func RenderTask(task map[string]any) (string, error) {
	data, err := json.MarshalIndent(task, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal task: %w", err)
	}
	return "```json\n" + string(data) + "\n```", nil
}
