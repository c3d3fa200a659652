// Package catalog holds the read-only quiz question bank, keyed by
// genre and difficulty.
package catalog

import (
	"sort"

	"github.com/xxreen/MAID-BOT-24H/internal/models"
	"github.com/xxreen/MAID-BOT-24H/internal/random"
)

// CatalogError is a custom error type for catalog lookups
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

const (
	// ErrUnknownSelection is returned when the genre/difficulty pair has no questions
	ErrUnknownSelection CatalogError = "no questions for that genre and difficulty"

	// ErrNilPicker is returned when no picker is supplied
	ErrNilPicker CatalogError = "picker cannot be nil"
)

// Difficulty levels in the bank
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Catalog is an immutable question bank
type Catalog struct {
	buckets map[string]map[string][]models.QuizQuestion
}

// New returns the built-in question bank.
func New() *Catalog {
	return &Catalog{buckets: questions}
}

// Validate reports whether the genre/difficulty pair has at least one question.
func (c *Catalog) Validate(genre, difficulty string) error {
	if len(c.buckets[genre][difficulty]) == 0 {
		return ErrUnknownSelection
	}
	return nil
}

// Pick selects one question uniformly at random from the matching bucket.
func (c *Catalog) Pick(genre, difficulty string, picker random.Picker) (models.QuizQuestion, error) {
	if picker == nil {
		return models.QuizQuestion{}, ErrNilPicker
	}

	bucket := c.buckets[genre][difficulty]
	if len(bucket) == 0 {
		return models.QuizQuestion{}, ErrUnknownSelection
	}

	return bucket[picker.Intn(len(bucket))], nil
}

// Genres lists the known genres in stable order, for choice rendering.
func (c *Catalog) Genres() []string {
	genres := make([]string, 0, len(c.buckets))
	for g := range c.buckets {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}
