package etl

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Pipeline struct {
	extractor   *PostgresExtractor
	transformer *Transformer
	loader      *ElasticLoader
	logger      *zap.SugaredLogger
	interval    time.Duration
}

func NewPipeline(
	extractor *PostgresExtractor,
	transformer *Transformer,
	loader *ElasticLoader,
	logger *zap.SugaredLogger,
	interval time.Duration,
) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		transformer: transformer,
		loader:      loader,
		logger:      logger,
		interval:    interval,
	}
}

// Run - запускает RunOnce раз в interval до отмены ctx
func (p *Pipeline) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Infow("ETL pipeline started", "interval", p.interval)

	for {
		select {
		case <-ctx.Done():
			p.logger.Infow("ETL pipeline stopped")
			return
		case <-ticker.C:
			if _, err := p.RunOnce(ctx); err != nil {
				p.logger.Errorw("ETL pipeline iteration failed", zap.Error(err))
			}
		}
	}
}

// RunOnce - одна итерация extract -> transform -> load
// Возвращает количество загруженных документов
func (p *Pipeline) RunOnce(ctx context.Context) (int, error) {
	p.logger.Infow("Running ETL pipeline iteration")

	// EXTRACT
	forms, err := p.extractor.ExtractNew(ctx)
	if err != nil {
		return 0, err
	}
	if len(forms) == 0 {
		p.logger.Infow("No new forms to process")
		return 0, nil
	}

	// TRANSFORM
	docs := p.transformer.Transform(forms)

	// LOAD
	if err := p.loader.Load(ctx, docs); err != nil {
		return 0, err
	}

	p.logger.Infof("ETL pipeline completed, successfully loaded %d docs", len(docs))

	return len(docs), nil
}
