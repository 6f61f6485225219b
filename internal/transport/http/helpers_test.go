package http

import (
	"context"
	"fmt"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/Mrvatsan/APTITUDE-AI/internal/infra/memory"
)

// fixedQuestions always returns the same questions; option 1 is correct.
type fixedQuestions struct{}

func (fixedQuestions) Generate(_ context.Context, req domain.GenerateRequest) ([]domain.Question, error) {
	out := make([]domain.Question, req.Count)
	for i := range out {
		out[i] = domain.Question{
			Text:               fmt.Sprintf("What is %d + 1?", i),
			Options:            []string{fmt.Sprint(i), fmt.Sprint(i + 1), fmt.Sprint(i + 2)},
			CorrectOptionIndex: 1,
			Solution:           "add one",
		}
	}
	return out, nil
}

func newTestService() (*app.PracticeService, *memory.RecordStore) {
	store := memory.NewRecordStore()
	return app.NewPracticeService(memory.NewSessionStore(), fixedQuestions{}, store), store
}
