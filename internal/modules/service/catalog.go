package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"go.uber.org/zap"
)

type CatalogService interface {
	List(ctx context.Context, filters repo.CatalogFilters) ([]repo.CatalogProjectOutput, error)
	Search(ctx context.Context, searchText string) ([]repo.CatalogProjectOutput, error)
	Page(ctx context.Context, page, pageSize int) (*CatalogPageOutput, error)
}

// CatalogPageOutput is one page of the catalog plus the total count.
type CatalogPageOutput struct {
	Projects []repo.CatalogProjectOutput `json:"projects"`
	Total    int64                       `json:"total"`
	Page     int                         `json:"page"`
}

type catalogService struct {
	r   repo.CatalogRepo
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewCatalogService(r repo.CatalogRepo, rdb *redis.Client, catalogTTL time.Duration, log *zap.Logger) CatalogService {
	return &catalogService{r: r, rdb: rdb, ttl: catalogTTL, log: log}
}

const catalogListKey = "catalog:list"

// List serves the unfiltered listing from Redis when possible.
// Filtered listings always hit the database; the filter space is not
// worth keying.
func (s *catalogService) List(ctx context.Context, filters repo.CatalogFilters) ([]repo.CatalogProjectOutput, error) {
	unfiltered := len(filters.StageSysNames) == 0 && !filters.AnyVacancies

	if unfiltered {
		if cached, err := s.rdb.Get(ctx, catalogListKey).Bytes(); err == nil {
			var out []repo.CatalogProjectOutput
			if err := sonic.Unmarshal(cached, &out); err == nil {
				return out, nil
			}
		}
	}

	out, err := s.r.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	if unfiltered {
		if body, err := sonic.Marshal(out); err == nil {
			if err := s.rdb.Set(ctx, catalogListKey, body, s.ttl).Err(); err != nil {
				s.log.Sugar().Warnw("catalog cache write failed", "err", err)
			}
		}
	}
	return out, nil
}

func (s *catalogService) Search(ctx context.Context, searchText string) ([]repo.CatalogProjectOutput, error) {
	if searchText == "" {
		return s.r.List(ctx, repo.CatalogFilters{})
	}
	return s.r.Search(ctx, searchText)
}

func (s *catalogService) Page(ctx context.Context, page, pageSize int) (*CatalogPageOutput, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	key := fmt.Sprintf("catalog:page:%d:%d", page, pageSize)
	if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var out CatalogPageOutput
		if err := sonic.Unmarshal(cached, &out); err == nil {
			return &out, nil
		}
	}

	projects, total, err := s.r.Page(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := &CatalogPageOutput{Projects: projects, Total: total, Page: page}

	if body, err := sonic.Marshal(out); err == nil {
		if err := s.rdb.Set(ctx, key, body, s.ttl).Err(); err != nil {
			s.log.Sugar().Warnw("catalog cache write failed", "err", err)
		}
	}
	return out, nil
}

// InvalidateCatalog drops the cached listing. Called after moderation
// outcomes change catalog membership.
func InvalidateCatalog(ctx context.Context, rdb *redis.Client, log *zap.Logger) {
	iter := rdb.Scan(ctx, 0, "catalog:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Sugar().Warnw("catalog cache invalidation failed", "key", iter.Val(), "err", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Sugar().Warnw("catalog cache scan failed", "err", err)
	}
}
