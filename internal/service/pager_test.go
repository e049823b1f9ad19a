package service

import (
	"fmt"
	"testing"

	"github.com/brainbridge/catalog-gateway/internal/models"
)

func TestPagerTotalPages(t *testing.T) {
	p := Pager{PageSize: 9}
	tests := []struct {
		total int
		want  int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{18, 2},
		{19, 3},
	}
	for _, tt := range tests {
		if got := p.TotalPages(tt.total); got != tt.want {
			t.Fatalf("TotalPages(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestPagerSlice(t *testing.T) {
	courses := make([]models.Course, 11)
	for i := range courses {
		courses[i] = models.Course{ID: fmt.Sprintf("c%d", i)}
	}
	p := Pager{PageSize: 9}

	first := p.Slice(courses, 1)
	if len(first) != 9 || first[0].ID != "c0" {
		t.Fatalf("unexpected first page: len=%d", len(first))
	}
	second := p.Slice(courses, 2)
	if len(second) != 2 || second[0].ID != "c9" {
		t.Fatalf("unexpected second page: len=%d", len(second))
	}
	if got := p.Slice(courses, 3); len(got) != 0 {
		t.Fatalf("page past the end must be empty, got %d courses", len(got))
	}
}

func TestPagerInfo(t *testing.T) {
	p := Pager{PageSize: 9}
	info := p.Info(2, 11)
	want := models.PageInfo{Page: 2, PageSize: 9, TotalPages: 2, TotalCount: 11}
	if info != want {
		t.Fatalf("Info = %+v, want %+v", info, want)
	}
}
