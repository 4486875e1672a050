package catalog

import (
	"fmt"

	"github.com/example/thaivocab/pkg/models"
)

// Catalog is a read-only, ordered collection of vocabulary items
type Catalog struct {
	items []models.VocabularyItem
	index map[string]int
}

// New builds a catalog, rejecting empty or duplicate ids and unknown difficulties
func New(items []models.VocabularyItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]models.VocabularyItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if err := c.add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(item models.VocabularyItem) error {
	if item.ID == "" {
		return fmt.Errorf("item %q has no id", item.Text)
	}
	if !item.Difficulty.Valid() {
		return fmt.Errorf("item %q: %w: %q", item.ID, models.ErrInvalidDifficulty, item.Difficulty)
	}
	if _, exists := c.index[item.ID]; exists {
		return fmt.Errorf("duplicate item id %q", item.ID)
	}
	c.index[item.ID] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

// Items returns the items in catalog order. The slice is a copy.
func (c *Catalog) Items() []models.VocabularyItem {
	return append([]models.VocabularyItem(nil), c.items...)
}

// Lookup finds an item by id
func (c *Catalog) Lookup(id string) (models.VocabularyItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.VocabularyItem{}, false
	}
	return c.items[i], true
}

// Contains reports whether id is in the catalog
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}
