package generator

import (
	"context"
	"errors"
	"log"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
)

type fallbackSource struct {
	primary  app.QuestionSource
	fallback app.QuestionSource
}

// WithFallback serves from fallback whenever primary fails or returns nothing.
func WithFallback(primary, fallback app.QuestionSource) app.QuestionSource {
	return &fallbackSource{primary: primary, fallback: fallback}
}

func (s *fallbackSource) Generate(ctx context.Context, req domain.GenerateRequest) ([]domain.Question, error) {
	qs, err := s.primary.Generate(ctx, req)
	if err == nil && len(qs) > 0 {
		return qs, nil
	}
	if err == nil {
		err = errors.New("no questions returned")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	log.Printf("[session] question generation failed for %q, serving fallback bank: %v", req.Topic, err)

	fqs, ferr := s.fallback.Generate(ctx, req)
	if ferr != nil {
		return nil, errors.Join(err, ferr)
	}
	log.Printf("[session] serving %d fallback questions for %q", len(fqs), req.Topic)
	return fqs, nil
}
