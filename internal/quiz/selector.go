package quiz

import "github.com/gokatarajesh/trivia-api/internal/question"

// IntN returns a uniformly distributed int in [0, n). It must be safe for
// concurrent use when shared between requests.
type IntN func(n int) int

// CandidatePool drops every question whose id was already served. Order is
// preserved and the input is not modified.
func CandidatePool(questions []question.Question, previous []int) []question.Question {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	pool := make([]question.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		pool = append(pool, q)
	}
	return pool
}

// Pick draws one question uniformly from pool. It returns nil for an empty
// pool, which means the quiz is complete.
func Pick(pool []question.Question, intn IntN) *question.Question {
	if len(pool) == 0 {
		return nil
	}
	q := pool[intn(len(pool))]
	return &q
}
