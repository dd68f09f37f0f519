package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/shop_api/internal/models"
)

// ItemIndex keeps catalog items in one Elasticsearch index.
type ItemIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewItemIndex(client *elasticsearch.Client, index string) *ItemIndex {
	return &ItemIndex{client: client, index: index}
}

// IndexItems upserts each item under its database id.
func (x *ItemIndex) IndexItems(ctx context.Context, items []models.Item) error {
	for _, item := range items {
		body, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("es: marshal item %d: %w", item.ID, err)
		}

		res, err := x.client.Index(
			x.index,
			bytes.NewReader(body),
			x.client.Index.WithContext(ctx),
			x.client.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
			x.client.Index.WithRefresh("true"),
		)
		if err != nil {
			return fmt.Errorf("es: index item %d: %w", item.ID, err)
		}
		if res.IsError() {
			msg, _ := io.ReadAll(res.Body)
			res.Body.Close()
			return fmt.Errorf("es: index item %d: %s: %s", item.ID, res.Status(), msg)
		}
		res.Body.Close()
	}
	return nil
}

func (x *ItemIndex) SearchItems(ctx context.Context, q string, offset, limit int) (int64, []models.Item, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": offset,
		"size": limit,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("es: encode query: %w", err)
	}

	res, err := x.client.Search(
		x.client.Search.WithContext(ctx),
		x.client.Search.WithIndex(x.index),
		x.client.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("es: search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return 0, nil, fmt.Errorf("es: search: %s: %s", res.Status(), msg)
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Item `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("es: decode response: %w", err)
	}

	items := make([]models.Item, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}
	return r.Hits.Total.Value, items, nil
}
