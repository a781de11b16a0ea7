package ledger

import (
	"slices"
	"sort"

	"fjacquet/expense-ledger/internal/models"
)

// CategoryIndex maps a category name to the transactions filed under it, in
// the order they were inserted into that bucket. A bucket is dropped as soon
// as it becomes empty, so every key in the index has at least one transaction.
type CategoryIndex struct {
	buckets map[string][]models.Transaction
}

// NewCategoryIndex creates an empty index
func NewCategoryIndex() *CategoryIndex {
	return &CategoryIndex{buckets: make(map[string][]models.Transaction)}
}

// OnInsert appends tx to the bucket for tx.Category
func (c *CategoryIndex) OnInsert(tx models.Transaction) {
	c.buckets[tx.Category] = append(c.buckets[tx.Category], tx)
}

// OnRemove removes the entry with tx.ID from the bucket for tx.Category,
// keeping the relative order of the remaining entries.
func (c *CategoryIndex) OnRemove(tx models.Transaction) {
	bucket, ok := c.buckets[tx.Category]
	if !ok {
		return
	}
	bucket = slices.DeleteFunc(bucket, func(t models.Transaction) bool {
		return t.ID == tx.ID
	})
	if len(bucket) == 0 {
		delete(c.buckets, tx.Category)
		return
	}
	c.buckets[tx.Category] = bucket
}

// Bucket returns a copy of the transactions in category, or an empty slice
// if the category is unknown.
func (c *CategoryIndex) Bucket(category string) []models.Transaction {
	return slices.Clone(c.buckets[category])
}

// CategoryCount returns the number of non-empty categories
func (c *CategoryIndex) CategoryCount() int {
	return len(c.buckets)
}

// Categories returns the category names in lexical order
func (c *CategoryIndex) Categories() []string {
	names := make([]string, 0, len(c.buckets))
	for name := range c.buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of indexed transactions across all buckets
func (c *CategoryIndex) Len() int {
	n := 0
	for _, bucket := range c.buckets {
		n += len(bucket)
	}
	return n
}

// bucket returns the live slice for read-only iteration
func (c *CategoryIndex) bucket(category string) []models.Transaction {
	return c.buckets[category]
}
