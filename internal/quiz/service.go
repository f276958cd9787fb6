package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

type questionScope interface {
	ListInScope(ctx context.Context, categoryID int) ([]question.Question, error)
}

type drawRecorder interface {
	ObserveQuizDraw(outcome string)
}

type ServiceOptions struct {
	// Rand defaults to math/rand/v2.IntN.
	Rand     IntN
	Recorder drawRecorder
}

// Service draws quiz questions. It keeps no session state; the caller sends
// the ids it has already seen with every request.
type Service struct {
	questions questionScope
	intn      IntN
	recorder  drawRecorder
	validate  *validator.Validate
	logger    zerolog.Logger
}

func NewService(questions questionScope, opts ServiceOptions, logger zerolog.Logger) *Service {
	intn := opts.Rand
	if intn == nil {
		intn = rand.IntN
	}
	return &Service{
		questions: questions,
		intn:      intn,
		recorder:  opts.Recorder,
		validate:  validator.New(),
		logger:    logger.With().Str("component", "quiz").Logger(),
	}
}

// NextQuestion returns a random question from the requested category that is
// not among the previous ones, or nil once the pool is exhausted.
func (s *Service) NextQuestion(ctx context.Context, req Request) (*question.Question, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}

	scope, err := s.questions.ListInScope(ctx, req.QuizCategory.ID)
	if err != nil {
		return nil, err
	}

	previous := make([]int, len(req.PreviousQuestions))
	for i, id := range req.PreviousQuestions {
		previous[i] = int(id)
	}

	next := Pick(CandidatePool(scope, previous), s.intn)
	if next == nil {
		s.observe(metrics.OutcomeExhausted)
		s.logger.Debug().Int("category", req.QuizCategory.ID).Int("previous", len(previous)).Msg("quiz pool exhausted")
		return nil, nil
	}
	s.observe(metrics.OutcomeDrawn)
	return next, nil
}

func (s *Service) observe(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveQuizDraw(outcome)
	}
}
