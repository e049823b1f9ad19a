package dto

import (
	"encoding/json"
	"strings"

	"github.com/brainbridge/catalog-gateway/internal/models"
)

// DefaultThumbnail is served when upstream provides no course image.
const DefaultThumbnail = "/assets/default-course.webp"

// CoursePayload is the upstream wire shape for one catalog item. The
// platform's endpoints are inconsistent about field names (`_id` vs
// `id`, `thumbnail` vs `image`, instructor as object vs plain string),
// so the payload accepts every variant and Normalize picks canonically.
type CoursePayload struct {
	LegacyID      string            `json:"_id"`
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Instructor    InstructorPayload `json:"instructor"`
	Category      string            `json:"category"`
	Level         string            `json:"level"`
	Duration      float64           `json:"duration"`
	Rating        float64           `json:"rating"`
	TotalRatings  int               `json:"totalRatings"`
	TotalStudents int               `json:"totalStudents"`
	Price         int               `json:"price"`
	DiscountPrice int               `json:"discountPrice"`
	Language      string            `json:"language"`
	Thumbnail     string            `json:"thumbnail"`
	Image         string            `json:"image"`
}

// InstructorPayload accepts either a nested instructor object or a
// pre-joined display name.
type InstructorPayload struct {
	Name   string
	Avatar string
}

func (p *InstructorPayload) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		p.Name = name
		return nil
	}

	var obj struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Name      string `json:"name"`
		Avatar    string `json:"avatar"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(strings.TrimSpace(obj.FirstName) + " " + strings.TrimSpace(obj.LastName))
	if p.Name == "" {
		p.Name = obj.Name
	}
	p.Avatar = obj.Avatar
	return nil
}

// Normalize converts the upstream payload into the canonical Course.
func (p CoursePayload) Normalize() models.Course {
	id := p.LegacyID
	if id == "" {
		id = p.ID
	}

	thumbnail := p.Thumbnail
	if thumbnail == "" {
		thumbnail = p.Image
	}
	if thumbnail == "" {
		thumbnail = DefaultThumbnail
	}

	language := strings.ToLower(strings.TrimSpace(p.Language))
	if language == "" {
		language = "english"
	}

	return models.Course{
		ID:               id,
		Title:            p.Title,
		Description:      p.Description,
		Instructor:       p.Instructor.Name,
		InstructorAvatar: p.Instructor.Avatar,
		Category:         strings.ToLower(strings.TrimSpace(p.Category)),
		Level:            normalizeLevel(p.Level),
		Duration:         p.Duration,
		Rating:           p.Rating,
		RatingCount:      p.TotalRatings,
		StudentCount:     p.TotalStudents,
		Price:            p.Price,
		DiscountPrice:    p.DiscountPrice,
		Language:         language,
		Thumbnail:        thumbnail,
	}
}

// NormalizeAll maps a full upstream listing into canonical courses.
func NormalizeAll(payloads []CoursePayload) []models.Course {
	courses := make([]models.Course, 0, len(payloads))
	for _, payload := range payloads {
		courses = append(courses, payload.Normalize())
	}
	return courses
}

func normalizeLevel(raw string) string {
	level := strings.ToLower(strings.TrimSpace(raw))
	switch level {
	case "":
		return models.LevelUnspecified
	case "beginner":
		return models.LevelBeginner
	case "intermediate":
		return models.LevelIntermediate
	case "advanced":
		return models.LevelAdvanced
	}
	return strings.ToUpper(level[:1]) + level[1:]
}
