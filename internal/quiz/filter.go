package quiz

import (
	"math/rand"

	"github.com/abhisek/kakomon/internal/bank"
)

// Filter derives the ordered quiz list for a selection. Rows are kept when
// their sitting and category are both selected (after wildcard expansion),
// ordered category-major then sitting-minor by the caller's selection order,
// with bank order breaking ties. Each kept row's options are copied and
// uniformly shuffled using rng.
//
// Filtering is all-or-nothing: a malformed kept row or a duplicate question
// text aborts with no partial output.
func Filter(b *bank.Bank, sel Selection, rng *rand.Rand) ([]Quiz, error) {
	sittings := expand(sel.Sittings, b.Sittings())
	categories := expand(sel.Categories, b.Categories())

	sittingRank := rankOf(sittings)
	categoryRank := rankOf(categories)

	// Bucket kept rows by (category rank, sitting rank); bank order is
	// preserved within each bucket by the append.
	type key struct{ cat, sit int }
	buckets := make(map[key][]bank.QuestionRow)
	kept := 0
	for i, row := range b.Rows() {
		cat, okCat := categoryRank[row.Category]
		sit, okSit := sittingRank[row.Sitting]
		if !okCat || !okSit {
			continue
		}
		if err := row.Validate(); err != nil {
			return nil, &bank.MalformedRowError{Row: i + 1, Question: row.Question, Err: err}
		}
		buckets[key{cat, sit}] = append(buckets[key{cat, sit}], row)
		kept++
	}

	quizzes := make([]Quiz, 0, kept)
	seen := make(map[string]bool, kept)
	for cat := range categories {
		for sit := range sittings {
			for _, row := range buckets[key{cat, sit}] {
				if seen[row.Question] {
					return nil, &DuplicateQuestionError{Question: row.Question}
				}
				seen[row.Question] = true
				quizzes = append(quizzes, Quiz{
					Question:      row.Question,
					Options:       shuffled(row.Options, rng),
					CorrectOption: row.Answer,
				})
			}
		}
	}
	return quizzes, nil
}

// expand replaces the wildcard sentinel with every distinct bank value, in
// bank first-seen order. Without the sentinel the selection passes through
// unchanged.
func expand(selected, all []string) []string {
	for _, v := range selected {
		if v == SelectAll {
			return all
		}
	}
	return selected
}

func rankOf(values []string) map[string]int {
	rank := make(map[string]int, len(values))
	for i, v := range values {
		if _, ok := rank[v]; !ok {
			rank[v] = i
		}
	}
	return rank
}

// shuffled returns a Fisher-Yates shuffled copy of the options. Every
// permutation of the five options is equally likely under a uniform rng.
func shuffled(options [bank.OptionCount]string, rng *rand.Rand) [bank.OptionCount]string {
	out := options
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
