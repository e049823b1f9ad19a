package service

import (
	"testing"

	"github.com/brainbridge/catalog-gateway/internal/models"
)

func course(mutate func(*models.Course)) models.Course {
	c := models.Course{
		ID:          "c1",
		Title:       "Go for Backend Engineers",
		Description: "Build production APIs",
		Instructor:  "Asha Verma",
		Category:    "programming",
		Level:       models.LevelIntermediate,
		Duration:    12,
		Rating:      4.2,
		Price:       499,
		Language:    "english",
	}
	if mutate != nil {
		mutate(&c)
	}
	return c
}

func withFlags(flags map[models.FilterGroup][]string) models.FilterState {
	state := models.NewFilterState()
	for group, keys := range flags {
		for _, key := range keys {
			if err := state.Toggle(group, key); err != nil {
				panic(err)
			}
		}
	}
	return state
}

func TestMatchesAllDefaultStateMatchesEverything(t *testing.T) {
	if !MatchesAll(course(nil), models.NewFilterState(), "", models.CategoryAll) {
		t.Fatalf("all-false filter state must match every course")
	}
}

func TestMatchesAllSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"whitespace query matches", "   ", true},
		{"title case-insensitive", "gO FoR", true},
		{"description", "production", true},
		{"instructor", "verma", true},
		{"level", "intermediate", true},
		{"category", "programming", true},
		{"no match", "quantum", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesAll(course(nil), models.NewFilterState(), tt.query, models.CategoryAll)
			if got != tt.want {
				t.Fatalf("query %q: got %t, want %t", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchesAllCategoryTab(t *testing.T) {
	c := course(nil)
	if !MatchesAll(c, models.NewFilterState(), "", "programming") {
		t.Fatalf("matching tab must pass")
	}
	if MatchesAll(c, models.NewFilterState(), "", "design") {
		t.Fatalf("non-matching tab must fail")
	}
	if !MatchesAll(c, models.NewFilterState(), "", models.CategoryAll) {
		t.Fatalf("the all tab must pass")
	}
}

func TestMatchesAllPrice(t *testing.T) {
	free := course(func(c *models.Course) { c.Price = 0 })
	discountedToZero := course(func(c *models.Course) { c.Price = 499; c.DiscountPrice = 499 })
	paid := course(nil)

	onlyFree := withFlags(map[models.FilterGroup][]string{models.FilterPrice: {"free"}})
	onlyPaid := withFlags(map[models.FilterGroup][]string{models.FilterPrice: {"paid"}})
	both := withFlags(map[models.FilterGroup][]string{models.FilterPrice: {"free", "paid"}})

	if !MatchesAll(free, onlyFree, "", models.CategoryAll) {
		t.Fatalf("zero-price course must match free")
	}
	if !MatchesAll(discountedToZero, onlyFree, "", models.CategoryAll) {
		t.Fatalf("fully discounted course counts as free")
	}
	if MatchesAll(paid, onlyFree, "", models.CategoryAll) {
		t.Fatalf("paid course must not match free")
	}
	if !MatchesAll(paid, onlyPaid, "", models.CategoryAll) {
		t.Fatalf("paid course must match paid")
	}
	if !MatchesAll(free, both, "", models.CategoryAll) || !MatchesAll(paid, both, "", models.CategoryAll) {
		t.Fatalf("flags within a group combine with OR")
	}
}

func TestMatchesAllDurationBuckets(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		key      string
		want     bool
	}{
		{"exactly 10 is short", 10, "short", true},
		{"exactly 10 is not medium", 10, "medium", false},
		{"just over 10 is medium", 10.01, "medium", true},
		{"just over 10 is not short", 10.01, "short", false},
		{"exactly 20 is medium", 20, "medium", true},
		{"exactly 20 is not long", 20, "long", false},
		{"over 20 is long", 20.5, "long", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := course(func(c *models.Course) { c.Duration = tt.duration })
			filters := withFlags(map[models.FilterGroup][]string{models.FilterDuration: {tt.key}})
			got := MatchesAll(c, filters, "", models.CategoryAll)
			if got != tt.want {
				t.Fatalf("duration %.2f with %q: got %t, want %t", tt.duration, tt.key, got, tt.want)
			}
		})
	}
}

func TestMatchesAllRatingThresholdsAreInclusiveFloors(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		key    string
		want   bool
	}{
		{"4.5 matches high", 4.5, "high", true},
		{"4.49 misses high", 4.49, "high", false},
		{"4.0 matches good", 4.0, "good", true},
		{"a 4.6 course also matches good", 4.6, "good", true},
		{"3.5 matches average", 3.5, "average", true},
		{"a 4.8 course also matches average", 4.8, "average", true},
		{"3.4 misses average", 3.4, "average", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := course(func(c *models.Course) { c.Rating = tt.rating })
			filters := withFlags(map[models.FilterGroup][]string{models.FilterRating: {tt.key}})
			got := MatchesAll(c, filters, "", models.CategoryAll)
			if got != tt.want {
				t.Fatalf("rating %.2f with %q: got %t, want %t", tt.rating, tt.key, got, tt.want)
			}
		})
	}
}

func TestMatchesAllLanguageOther(t *testing.T) {
	other := withFlags(map[models.FilterGroup][]string{models.FilterLanguage: {"other"}})
	spanish := course(func(c *models.Course) { c.Language = "spanish" })
	english := course(nil)
	hindi := course(func(c *models.Course) { c.Language = "hindi" })

	if !MatchesAll(spanish, other, "", models.CategoryAll) {
		t.Fatalf("non-english non-hindi course must match other")
	}
	if MatchesAll(english, other, "", models.CategoryAll) || MatchesAll(hindi, other, "", models.CategoryAll) {
		t.Fatalf("english and hindi courses must not match other")
	}
}

func TestMatchesAllGroupsCombineWithAnd(t *testing.T) {
	filters := withFlags(map[models.FilterGroup][]string{
		models.FilterLevel:  {"intermediate"},
		models.FilterRating: {"high"},
	})
	c := course(nil) // intermediate, rating 4.2
	if MatchesAll(c, filters, "", models.CategoryAll) {
		t.Fatalf("course passing one group but failing another must be excluded")
	}
	highRated := course(func(c *models.Course) { c.Rating = 4.7 })
	if !MatchesAll(highRated, filters, "", models.CategoryAll) {
		t.Fatalf("course passing every active group must be included")
	}
}
