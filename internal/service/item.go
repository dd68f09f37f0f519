package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/util"
)

// DefaultCatalog is inserted into an empty items table on startup.
var DefaultCatalog = []models.Item{
	{Name: "Round Widget", Price: decimal.RequireFromString("2.99"), Description: "A widget that is round"},
	{Name: "Square Widget", Price: decimal.RequireFromString("1.99"), Description: "A widget that is square"},
}

type SearchResult struct {
	Total int64         `json:"total"`
	Items []models.Item `json:"items"`
}

type ItemService struct {
	items    ItemStore
	seeder   CatalogSeeder
	searcher ItemSearcher
	fallback ItemSearcher
	indexer  ItemIndexer
}

// NewItemService wires the catalog. searcher may be nil, in which case
// fallback answers every query; indexer may be nil.
func NewItemService(items ItemStore, seeder CatalogSeeder, searcher, fallback ItemSearcher, indexer ItemIndexer) *ItemService {
	return &ItemService{
		items:    items,
		seeder:   seeder,
		searcher: searcher,
		fallback: fallback,
		indexer:  indexer,
	}
}

func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.items.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

// ItemsByName returns every item with exactly this name, or ErrItemNotFound
// when there is none.
func (s *ItemService) ItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	items, err := s.items.FindItemsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrItemNotFound
	}
	return items, nil
}

func (s *ItemService) Search(ctx context.Context, q string, page, size int) (*SearchResult, error) {
	l := logging.FromContext(ctx).With("svc", "item.search")

	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	offset, limit := util.Calculate(page, size)

	var (
		total int64
		items []models.Item
		err   error
	)
	if s.searcher != nil {
		total, items, err = s.searcher.SearchItems(ctx, q, offset, limit)
		if err != nil && s.fallback != nil {
			l.Warn("search_fallback", "q", q, "error", err)
			total, items, err = s.fallback.SearchItems(ctx, q, offset, limit)
		}
	} else if s.fallback != nil {
		total, items, err = s.fallback.SearchItems(ctx, q, offset, limit)
	} else {
		return nil, errors.New("search is not configured")
	}
	if err != nil {
		l.Error("search_error", "q", q, "error", err)
		return nil, fmt.Errorf("search items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return &SearchResult{Total: total, Items: items}, nil
}

// SeedCatalog fills an empty catalog with DefaultCatalog and pushes the
// whole catalog to the search index when one is configured.
func (s *ItemService) SeedCatalog(ctx context.Context) error {
	l := logging.FromContext(ctx).With("svc", "item.seed")

	seed := make([]models.Item, len(DefaultCatalog))
	copy(seed, DefaultCatalog)
	inserted, err := s.seeder.SeedItems(ctx, seed)
	if err != nil {
		return fmt.Errorf("seed items: %w", err)
	}
	if inserted {
		l.Info("catalog_seeded", "items", len(seed))
	}

	if s.indexer == nil {
		return nil
	}
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	if err := s.indexer.IndexItems(ctx, items); err != nil {
		l.Error("index_items_error", "error", err)
		return fmt.Errorf("index items: %w", err)
	}
	l.Info("catalog_indexed", "items", len(items))
	return nil
}
