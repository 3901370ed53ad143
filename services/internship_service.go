package services

import (
	"student-platform/models"
	"student-platform/store"
)

// InternshipService manages the internship board.
type InternshipService struct {
	store store.Store
}

func NewInternshipService(s store.Store) *InternshipService {
	return &InternshipService{store: s}
}

// InternshipInput is the admin payload for a new posting.
type InternshipInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Duration     string `json:"duration"`
	Location     string `json:"location"`
}

func (s *InternshipService) CreateInternship(in InternshipInput) (*models.Internship, error) {
	if in.Title == "" {
		return nil, validationErr("title", "must not be empty")
	}
	internship := &models.Internship{
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Duration:     in.Duration,
		Location:     in.Location,
		IsActive:     true,
	}
	if err := s.store.CreateInternship(internship); err != nil {
		return nil, err
	}
	return internship, nil
}

func (s *InternshipService) ListInternships(activeOnly bool) ([]models.Internship, error) {
	return s.store.ListInternships(activeOnly)
}
