package etl

import (
	"context"
	"database/sql"

	"feedback-main/internal/types/elastic"
	myErr "feedback-main/internal/types/errors"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// BulkIndexer - то, что умеет записать пачку документов в поиск
type BulkIndexer interface {
	BulkIndex(ctx context.Context, docs []elastic.FormDoc) error
}

type ElasticLoader struct {
	Indexer BulkIndexer
	Logger  *zap.SugaredLogger
	DB      *sql.DB
}

func NewElasticLoader(indexer BulkIndexer, logger *zap.SugaredLogger, db *sql.DB) *ElasticLoader {
	return &ElasticLoader{
		Indexer: indexer,
		Logger:  logger,
		DB:      db,
	}
}

// Load - загружает документы в ES и помечает формы как проиндексированные
func (l *ElasticLoader) Load(ctx context.Context, docs []elastic.FormDoc) error {
	if len(docs) == 0 {
		l.Logger.Infow("No documents to load")
		return nil
	}

	l.Logger.Infow("Loading documents to Elasticsearch", "count", len(docs))
	if err := l.Indexer.BulkIndex(ctx, docs); err != nil {
		l.Logger.Errorw("Failed to bulk index documents", zap.Error(err))
		return err
	}

	l.Logger.Infow("Successfully indexed documents", "count", len(docs))

	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}

	_, err := l.DB.ExecContext(ctx, `UPDATE forms SET searching = TRUE WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		l.Logger.Errorw("Failed to update documents in PostgreSQL", zap.Error(err))
		return myErr.ErrDBInternal
	}

	return nil
}
