package analytics

import (
	"context"

	"feedback-main/internal/kafka"

	"go.uber.org/zap"
)

type Service struct {
	repo   AnalyticsRepo
	logger *zap.SugaredLogger
}

func NewService(repo AnalyticsRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.Type != kafka.ResponseSubmitted || event.FormID == "" || event.ResponseID == "" {
		return nil // Игнорируем неполные события
	}

	recorded, err := s.repo.RecordResponse(ctx, event)
	if err != nil {
		return err
	}
	if !recorded {
		s.logger.Infof("Response %s already counted", event.ResponseID)
		return nil
	}

	s.logger.Infof("Response %s counted for form %s", event.ResponseID, event.FormID)

	return nil
}

func (s *Service) GetStats(ctx context.Context, formID string) (*FormStats, error) {
	return s.repo.GetStats(ctx, formID)
}
