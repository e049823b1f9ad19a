package service

import "github.com/brainbridge/catalog-gateway/internal/models"

// Pager converts a filtered list and a 1-indexed page number into the
// visible slice. A filtered list of zero courses still reports one page
// so the frontend renders "no results" instead of zero pages.
type Pager struct {
	PageSize int
}

// TotalPages returns ceil(total/pageSize) with a minimum of 1.
func (p Pager) TotalPages(total int) int {
	if p.PageSize <= 0 || total <= 0 {
		return 1
	}
	pages := (total + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Slice returns the courses visible on the page.
func (p Pager) Slice(courses []models.Course, page int) []models.Course {
	if p.PageSize <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * p.PageSize
	if start >= len(courses) {
		return []models.Course{}
	}
	end := start + p.PageSize
	if end > len(courses) {
		end = len(courses)
	}
	return courses[start:end]
}

// Info assembles the cursor description for a snapshot.
func (p Pager) Info(page, total int) models.PageInfo {
	return models.PageInfo{
		Page:       page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(total),
		TotalCount: total,
	}
}
