package classifier

import (
	"sort"

	"github.com/alexanderramin/cadence/internal/domain"
)

// KeywordRule maps title keywords to a category. Priority is explicit so
// reordering the table cannot silently change classification: lower values
// are evaluated first, and the first rule with a matching keyword wins.
type KeywordRule struct {
	Category domain.EventCategory
	Priority int
	Keywords []string
}

// Ruleset is an immutable, ordered collection of keyword rules. Build one
// with NewRuleset; the zero value classifies everything as "other".
type Ruleset struct {
	rules []KeywordRule
}

// NewRuleset copies the given rules and orders them by priority. Callers may
// keep tuning their own rule slice afterwards without affecting the returned
// Ruleset.
func NewRuleset(rules []KeywordRule) Ruleset {
	rs := Ruleset{rules: make([]KeywordRule, len(rules))}
	copy(rs.rules, rules)
	sort.SliceStable(rs.rules, func(i, j int) bool {
		return rs.rules[i].Priority < rs.rules[j].Priority
	})
	return rs
}

// DefaultRuleset returns the canonical keyword table. Presentation outranks
// meeting so a title matching both classifies as presentation.
func DefaultRuleset() Ruleset {
	return NewRuleset([]KeywordRule{
		{
			Category: domain.CategoryPresentation,
			Priority: 10,
			Keywords: []string{"presentation", "demo", "pitch", "keynote", "all hands", "all-hands", "town hall", "townhall"},
		},
		{
			Category: domain.CategoryOneOnOne,
			Priority: 20,
			Keywords: []string{"1:1", "1on1", "1-1", "one on one", "one-on-one", "catch up", "catchup", "check-in", "check in"},
		},
		{
			Category: domain.CategoryHealth,
			Priority: 30,
			Keywords: []string{"gym", "workout", "yoga", "pilates", "exercise", "doctor", "dentist", "therapy", "clinic"},
		},
		{
			Category: domain.CategoryMeal,
			Priority: 40,
			Keywords: []string{"lunch", "dinner", "breakfast", "brunch", "coffee", "meal"},
		},
		{
			Category: domain.CategoryPersonal,
			Priority: 50,
			Keywords: []string{"birthday", "family", "errand", "personal", "vacation", "holiday", "anniversary"},
		},
		{
			Category: domain.CategoryBreak,
			Priority: 60,
			Keywords: []string{"break", "rest", "walk", "pause"},
		},
		{
			Category: domain.CategoryFocus,
			Priority: 70,
			Keywords: []string{"focus", "deep work", "heads down", "heads-down", "writing", "coding", "study", "do not disturb"},
		},
		{
			Category: domain.CategoryMeeting,
			Priority: 80,
			Keywords: []string{"meeting", "sync", "standup", "stand-up", "call", "huddle", "planning", "retro", "kickoff", "review", "interview", "discussion", "weekly"},
		},
	})
}
