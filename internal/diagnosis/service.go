package diagnosis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/shindan/internal/quiz"
	"github.com/abhisek/shindan/internal/store"
)

// Service resolves completed questionnaires and records the outcome.
// Either repo may be nil, in which case that side effect is skipped.
type Service struct {
	resolver *Resolver
	kv       store.KVRepo
	history  store.HistoryRepo
	now      func() time.Time
}

// NewService creates a Service using the default decision table.
func NewService(kv store.KVRepo, history store.HistoryRepo) *Service {
	return &Service{
		resolver: NewResolver(nil),
		kv:       kv,
		history:  history,
		now:      time.Now,
	}
}

// Complete resolves a full AnswerSet, stores the result as the latest one and
// appends it to the history. Storage failures are reported as warnings; only
// an incomplete AnswerSet is an error.
func (s *Service) Complete(ctx context.Context, set quiz.AnswerSet) (Result, error) {
	answers, err := AnswersFrom(set)
	if err != nil {
		return Result{}, err
	}

	rule, ok := s.resolver.Match(answers)
	if !ok {
		return Result{}, fmt.Errorf("no rule matched")
	}
	result := rule.Result.Clone()

	if s.kv != nil {
		if err := SaveResult(ctx, s.kv, result); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save diagnosis result: %v\n", err)
		}
	}

	if s.history != nil {
		err := s.history.AppendRun(ctx, store.RunData{
			ID:          uuid.New().String(),
			CompletedAt: s.now(),
			Rule:        rule.Name,
			Title:       result.Title,
			MaxAmount:   result.MaxAmount,
			Answers:     answers.AnswerSet(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record diagnosis run: %v\n", err)
		}
	}

	return result, nil
}

// Latest returns the stored result, or nil if there is none.
func (s *Service) Latest(ctx context.Context) (*Result, error) {
	if s.kv == nil {
		return nil, nil
	}
	return LoadResult(ctx, s.kv)
}

// Clear removes the stored result.
func (s *Service) Clear(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}
	return ClearResult(ctx, s.kv)
}

// History returns up to limit recent runs, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]store.RunRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.RecentRuns(ctx, store.QueryOpts{Limit: limit})
}

// RuleCounts returns how many recorded runs each rule produced, and the total.
func (s *Service) RuleCounts(ctx context.Context) (map[string]int, int, error) {
	if s.history == nil {
		return map[string]int{}, 0, nil
	}
	return s.history.RuleCounts(ctx)
}

// Reset removes the stored result and the whole history. It returns the
// number of runs deleted.
func (s *Service) Reset(ctx context.Context) (int64, error) {
	if err := s.Clear(ctx); err != nil {
		return 0, fmt.Errorf("clear result: %w", err)
	}
	if s.history == nil {
		return 0, nil
	}
	return s.history.ClearRuns(ctx)
}
