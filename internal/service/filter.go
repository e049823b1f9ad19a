package service

import (
	"strings"

	"github.com/brainbridge/catalog-gateway/internal/models"
)

// Duration buckets in hours. Fixed thresholds, not configurable.
const (
	durationShortMax  = 10
	durationMediumMax = 20
)

// Rating thresholds. These are inclusive lower bounds, not exclusive
// bands: a 4.6-rated course matches "good" when only "good" is checked.
const (
	ratingHighMin    = 4.5
	ratingGoodMin    = 4.0
	ratingAverageMin = 3.5
)

// MatchesAll reports whether the course passes the active category tab,
// the search query and every filter group. Groups combine with AND;
// flags within a group combine with OR; an all-false group matches
// every course.
func MatchesAll(course models.Course, filters models.FilterState, query, category string) bool {
	if category != "" && category != models.CategoryAll && course.Category != category {
		return false
	}
	return matchesSearch(course, query) &&
		matchesPrice(course, filters) &&
		matchesLevel(course, filters) &&
		matchesDuration(course, filters) &&
		matchesRating(course, filters) &&
		matchesLanguage(course, filters)
}

func matchesSearch(course models.Course, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	fields := []string{
		course.Title,
		course.Description,
		course.Instructor,
		course.Level,
		course.Category,
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchesPrice(course models.Course, filters models.FilterState) bool {
	if !filters.GroupActive(models.FilterPrice) {
		return true
	}
	free := course.Free()
	return (filters.Enabled(models.FilterPrice, "free") && free) ||
		(filters.Enabled(models.FilterPrice, "paid") && !free)
}

func matchesLevel(course models.Course, filters models.FilterState) bool {
	if !filters.GroupActive(models.FilterLevel) {
		return true
	}
	level := strings.ToLower(course.Level)
	return (filters.Enabled(models.FilterLevel, "beginner") && strings.Contains(level, "beginner")) ||
		(filters.Enabled(models.FilterLevel, "intermediate") && strings.Contains(level, "intermediate")) ||
		(filters.Enabled(models.FilterLevel, "advanced") && strings.Contains(level, "advanced"))
}

func matchesDuration(course models.Course, filters models.FilterState) bool {
	if !filters.GroupActive(models.FilterDuration) {
		return true
	}
	d := course.Duration
	return (filters.Enabled(models.FilterDuration, "short") && d <= durationShortMax) ||
		(filters.Enabled(models.FilterDuration, "medium") && d > durationShortMax && d <= durationMediumMax) ||
		(filters.Enabled(models.FilterDuration, "long") && d > durationMediumMax)
}

func matchesRating(course models.Course, filters models.FilterState) bool {
	if !filters.GroupActive(models.FilterRating) {
		return true
	}
	r := course.Rating
	return (filters.Enabled(models.FilterRating, "high") && r >= ratingHighMin) ||
		(filters.Enabled(models.FilterRating, "good") && r >= ratingGoodMin) ||
		(filters.Enabled(models.FilterRating, "average") && r >= ratingAverageMin)
}

func matchesLanguage(course models.Course, filters models.FilterState) bool {
	if !filters.GroupActive(models.FilterLanguage) {
		return true
	}
	language := strings.ToLower(course.Language)
	return (filters.Enabled(models.FilterLanguage, "english") && strings.Contains(language, "english")) ||
		(filters.Enabled(models.FilterLanguage, "hindi") && strings.Contains(language, "hindi")) ||
		(filters.Enabled(models.FilterLanguage, "other") && language != "english" && language != "hindi")
}
