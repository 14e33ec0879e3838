// Package brief assembles the instruction prompts handed to external
// analysis agents.
//
// Every brief opens with the agent's reference document from the skill
// library and closes with a concrete assignment: which framework, which
// paths, what to write where. The coordinator never runs an agent itself;
// briefs print to stdout for whatever dispatches them.
package brief
