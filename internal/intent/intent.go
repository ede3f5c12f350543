// Package intent decides whether a chat utterance asks something or asks
// for content to be produced.
package intent

import "strings"

// Intent is the outcome of classifying a user utterance.
type Intent int

const (
	Question Intent = iota
	Instruction
)

func (i Intent) String() string {
	switch i {
	case Instruction:
		return "instruction"
	default:
		return "question"
	}
}

// RuleName identifies which rule produced a decision.
type RuleName string

const (
	RuleQuestionMark   RuleName = "question_mark"
	RuleQuestionPrefix RuleName = "question_prefix"
	RuleGenerationVerb RuleName = "generation_verb"
	RuleModification   RuleName = "modification_verb"
	RuleDefault        RuleName = "default"
)

var (
	generationVerbs = []string{
		"create", "generate", "write", "compose", "draft",
		"make a", "make an", "create a", "create an",
		"write a", "write an", "generate a", "generate an",
	}
	modificationVerbs = []string{
		"change", "update", "modify", "add", "remove", "replace", "rewrite",
		"shorten", "lengthen", "improve", "enhance", "focus on", "emphasize",
		"make it", "make this", "more", "less", "include", "exclude",
	}
	questionPrefixes = []string{
		"what", "which", "who", "where", "when", "why", "how",
		"can you explain", "tell me", "is this", "does this", "would this",
		"should i", "could you", "do you think", "help",
		"hi", "hello", "hey", "thanks", "thank you",
	}
)

// Rule is one entry of the ordered classification table. Decide returns
// false when the rule does not apply.
type Rule struct {
	Name   RuleName
	Decide func(normalized string, isFirst bool) (Intent, bool)
}

// Rules is evaluated top to bottom; the first rule that applies wins.
var Rules = []Rule{
	{
		Name: RuleQuestionMark,
		Decide: func(s string, _ bool) (Intent, bool) {
			return Question, strings.Contains(s, "?")
		},
	},
	{
		Name: RuleQuestionPrefix,
		Decide: func(s string, _ bool) (Intent, bool) {
			return Question, hasAnyPrefix(s, questionPrefixes)
		},
	},
	{
		Name: RuleGenerationVerb,
		Decide: func(s string, _ bool) (Intent, bool) {
			return Instruction, containsAny(s, generationVerbs)
		},
	},
	{
		// Modification verbs are ambiguous on an empty conversation.
		Name: RuleModification,
		Decide: func(s string, isFirst bool) (Intent, bool) {
			if !containsAny(s, modificationVerbs) {
				return Question, false
			}
			if isFirst {
				return Question, true
			}
			return Instruction, true
		},
	},
}

// Decision carries the classification together with the rule that fired.
type Decision struct {
	Intent Intent
	Rule   RuleName
}

// Explain classifies utterance and reports which rule decided it.
func Explain(utterance string, isFirst bool) Decision {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	for _, rule := range Rules {
		if outcome, ok := rule.Decide(normalized, isFirst); ok {
			return Decision{Intent: outcome, Rule: rule.Name}
		}
	}
	return Decision{Intent: Question, Rule: RuleDefault}
}

// Classify returns Question or Instruction for a user utterance. isFirst
// reports whether no user message precedes it in the conversation.
func Classify(utterance string, isFirst bool) Intent {
	return Explain(utterance, isFirst).Intent
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
