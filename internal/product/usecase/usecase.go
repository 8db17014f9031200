package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/category"
	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/product"
	"github.com/fathurrm/tokopos/internal/product/dto"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/cache"
	"github.com/fathurrm/tokopos/pkg/logger"
	"github.com/fathurrm/tokopos/pkg/search"
)

const productIndex = "products"

const productMapping = `{
	"mappings": {
		"properties": {
			"name": { "type": "text" },
			"code": { "type": "keyword" },
			"category_id": { "type": "keyword" },
			"price": { "type": "double" },
			"created_at": { "type": "date" }
		}
	}
}`

type productUseCase struct {
	repo    product.Repository
	catRepo category.Repository
	cache   *cache.RedisClient
	es      *search.Client
	logger  logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, catRepo category.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:    repo,
		catRepo: catRepo,
		cache:   cache,
		es:      es,
		logger:  log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if strings.TrimSpace(input.Code) == "" {
		return nil, apperr.Validation("code", "barcode is required")
	}
	if input.Price.IsNegative() {
		return nil, apperr.Validation("price", "price must not be negative")
	}
	if input.Stock < 0 {
		return nil, apperr.Validation("stock", "stock must not be negative")
	}

	categoryID := input.CategoryID
	if categoryID == "" && input.CategoryName != "" {
		cat, err := uc.catRepo.FindByName(ctx, input.CategoryName)
		if err != nil {
			return nil, apperr.Store("category.find", err)
		}
		if cat == nil {
			return nil, apperr.Validation("category", "category not found")
		}
		categoryID = cat.ID
	}
	if categoryID == "" {
		return nil, apperr.Validation("category", "category is required")
	}

	cat, err := uc.catRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, apperr.Store("category.find", err)
	}
	if cat == nil {
		return nil, apperr.Validation("category", "category not found")
	}

	unique, err := uc.repo.IsCodeUnique(ctx, input.Code, "")
	if err != nil {
		return nil, apperr.Store("product.code_check", err)
	}
	if !unique {
		return nil, apperr.Validation("code", "barcode already in use")
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID: categoryID,
		Name:       input.Name,
		Code:       input.Code,
		Price:      input.Price,
		Stock:      input.Stock,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, apperr.Store("product.create", err)
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("product.find", err)
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	p, err := uc.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, apperr.Store("product.find", err)
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, keyErr := listCacheKey(filters)
	if keyErr == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Products, cached.Count, nil
			}
		}
	}

	// Search goes through Elasticsearch when available; DB ILIKE is the fallback.
	if filters.SearchQuery != "" && uc.es != nil {
		products, count, err := uc.searchElastic(ctx, filters)
		if err == nil {
			return products, count, nil
		}
		uc.logger.Error("es search failed, falling back to db", zap.Error(err))
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Store("product.list", err)
	}

	if keyErr == nil && uc.cache != nil {
		cached := struct {
			Products []model.Product
			Count    int
		}{Products: products, Count: count}
		if data, err := json.Marshal(cached); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) searchElastic(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	must := []map[string]interface{}{
		{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
				"fields": []string{"name^3", "code"},
			},
		},
	}
	if filters.CategoryID != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"category_id": filters.CategoryID},
		})
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
	}
	if filters.PageSize > 0 {
		q["from"] = (filters.Page - 1) * filters.PageSize
		q["size"] = filters.PageSize
	}

	res, err := uc.es.Search(ctx, productIndex, q)
	if err != nil {
		return nil, 0, err
	}

	products := []model.Product{}
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			products = append(products, p)
		}
	}
	return products, res.Hits.Total.Value, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperr.Store("product.find", err)
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}

	if input.Price.IsNegative() {
		return nil, apperr.Validation("price", "price must not be negative")
	}
	if input.Stock < 0 {
		return nil, apperr.Validation("stock", "stock must not be negative")
	}

	if input.Code != p.Code {
		unique, err := uc.repo.IsCodeUnique(ctx, input.Code, p.ID)
		if err != nil {
			return nil, apperr.Store("product.code_check", err)
		}
		if !unique {
			return nil, apperr.Validation("code", "barcode already in use")
		}
	}

	if input.CategoryID != "" && input.CategoryID != p.CategoryID {
		cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
		if err != nil {
			return nil, apperr.Store("category.find", err)
		}
		if cat == nil {
			return nil, apperr.Validation("category", "category not found")
		}
		p.CategoryID = input.CategoryID
	}

	p.Name = input.Name
	p.Code = input.Code
	p.Price = input.Price
	p.Stock = input.Stock
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, apperr.Store("product.update", err)
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Store("product.find", err)
	}
	if p == nil {
		return nil // already gone
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Store("product.delete", err)
	}

	go uc.invalidateListCache(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from es", zap.Error(err))
			}
		}()
	}
	return nil
}

// DeductStock runs outside any checkout transaction. A per-product lock
// keeps concurrent deductions from interleaving, nothing more.
func (uc *productUseCase) DeductStock(ctx context.Context, id string, quantity int) error {
	if uc.cache != nil {
		lockKey := "lock:stock:" + id
		lockValue := uuid.New().String()

		acquired := false
		for i := 0; i < 3; i++ {
			ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
			if err != nil {
				uc.logger.Error("failed to acquire stock lock", zap.Error(err))
			}
			if ok {
				acquired = true
				break
			}
			time.Sleep(100 * time.Millisecond)
		}
		if acquired {
			defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)
		}
	}

	if err := uc.repo.DecrementStock(ctx, id, quantity); err != nil {
		return apperr.Store("product.decrement_stock", err)
	}
	go uc.invalidateListCache(context.Background())
	return nil
}

func listCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	_ = uc.es.CreateIndex(ctx, productIndex, productMapping)
	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}
