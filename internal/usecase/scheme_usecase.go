package usecase

import (
	"context"

	"scheme-directory/internal/converter"
	"scheme-directory/internal/delivery/dto"
	"scheme-directory/internal/domain/repository"
	"scheme-directory/internal/infrastructure/cache"
	"scheme-directory/internal/schemequery"

	"github.com/sirupsen/logrus"
)

var ErrInvalidPagination = schemequery.ErrInvalidPagination

// SchemeCache is an optional read-through store for scheme responses.
type SchemeCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

type SchemeUsecase interface {
	SearchSchemes(ctx context.Context, req *dto.SchemeSearchRequest) (*dto.PaginatedSchemesResponse, error)
	GetAllSchemes(ctx context.Context) ([]dto.SchemeResponse, error)
}

type schemeUsecase struct {
	log        *logrus.Logger
	schemeRepo repository.SchemeRepository
	cache      SchemeCache
}

// NewSchemeUsecase wires the scheme usecase. schemeCache may be nil, in which
// case every request goes to the database.
func NewSchemeUsecase(log *logrus.Logger, schemeRepo repository.SchemeRepository, schemeCache SchemeCache) SchemeUsecase {
	return &schemeUsecase{
		log:        log,
		schemeRepo: schemeRepo,
		cache:      schemeCache,
	}
}

// SearchSchemes validates pagination, builds the count and data statements
// once, and runs them in that order. The two statements are not wrapped in a
// transaction.
func (u *schemeUsecase) SearchSchemes(ctx context.Context, req *dto.SchemeSearchRequest) (*dto.PaginatedSchemesResponse, error) {
	page, err := schemequery.ParsePagination(req.Page, req.Limit)
	if err != nil {
		return nil, ErrInvalidPagination
	}

	pair := schemequery.Assemble(req.Filter, page)
	for _, skipped := range pair.Skipped {
		u.log.WithFields(logrus.Fields{
			"field": skipped.Field,
			"value": skipped.Value,
		}).Warnf("Ignoring malformed filter: %s", skipped.Reason)
	}

	key := cache.SearchKey(req.Filter, page.Page, page.Limit)
	var cached dto.PaginatedSchemesResponse
	if u.readCache(ctx, key, &cached) {
		return &cached, nil
	}

	totalItems, err := u.schemeRepo.Count(ctx, pair.CountSQL, pair.CountArgs)
	if err != nil {
		u.log.Errorf("Failed to count schemes: %+v", err)
		return nil, err
	}

	schemes, err := u.schemeRepo.Find(ctx, pair.DataSQL, pair.DataArgs)
	if err != nil {
		u.log.Errorf("Failed to find schemes: %+v", err)
		return nil, err
	}

	response := &dto.PaginatedSchemesResponse{
		CurrentPage:  page.Page,
		TotalPages:   schemequery.TotalPages(totalItems, page.Limit),
		TotalItems:   totalItems,
		ItemsPerPage: page.Limit,
		Schemes:      converter.SchemesToResponses(schemes),
	}

	u.writeCache(ctx, key, response)
	return response, nil
}

func (u *schemeUsecase) GetAllSchemes(ctx context.Context) ([]dto.SchemeResponse, error) {
	key := cache.AllSchemesKey()
	var cached []dto.SchemeResponse
	if u.readCache(ctx, key, &cached) {
		return cached, nil
	}

	schemes, err := u.schemeRepo.FindAll(ctx)
	if err != nil {
		u.log.Errorf("Failed to find all schemes: %+v", err)
		return nil, err
	}

	responses := converter.SchemesToResponses(schemes)
	u.writeCache(ctx, key, responses)
	return responses, nil
}

// readCache reports a hit only when the cache is configured and healthy.
// Cache failures are logged and treated as misses.
func (u *schemeUsecase) readCache(ctx context.Context, key string, dest interface{}) bool {
	if u.cache == nil {
		return false
	}

	hit, err := u.cache.Get(ctx, key, dest)
	if err != nil {
		u.log.Warnf("Failed to read scheme cache: %+v", err)
		return false
	}
	return hit
}

func (u *schemeUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	if u.cache == nil {
		return
	}

	if err := u.cache.Set(ctx, key, value); err != nil {
		u.log.Warnf("Failed to write scheme cache: %+v", err)
	}
}
