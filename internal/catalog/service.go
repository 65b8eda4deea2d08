package catalog

import (
	"context"
	"fmt"
)

type Service interface {
	ListCabinTypes(ctx context.Context) ([]*CabinType, error)
	GetCabinType(ctx context.Context, id int64) (*CabinType, error)
	ListDayPasses(ctx context.Context) ([]*DayPass, error)
	SetCabinImageURL(ctx context.Context, id int64, imageURL string) error
	// Seed inserts the default catalog when the tables are empty.
	Seed(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCabinTypes(ctx context.Context) ([]*CabinType, error) {
	return s.repo.ListCabinTypes(ctx)
}

func (s *service) GetCabinType(ctx context.Context, id int64) (*CabinType, error) {
	return s.repo.GetCabinType(ctx, id)
}

func (s *service) ListDayPasses(ctx context.Context) ([]*DayPass, error) {
	return s.repo.ListDayPasses(ctx)
}

func (s *service) SetCabinImageURL(ctx context.Context, id int64, imageURL string) error {
	return s.repo.UpdateCabinImageURL(ctx, id, imageURL)
}

func (s *service) Seed(ctx context.Context) error {
	cabins, err := s.repo.CountCabinTypes(ctx)
	if err != nil {
		return err
	}
	if cabins == 0 {
		for _, ct := range defaultCabinTypes() {
			if err := s.repo.CreateCabinType(ctx, ct); err != nil {
				return fmt.Errorf("seed cabin type %q failed: %w", ct.Name, err)
			}
		}
	}

	passes, err := s.repo.CountDayPasses(ctx)
	if err != nil {
		return err
	}
	if passes == 0 {
		for _, dp := range defaultDayPasses() {
			if err := s.repo.CreateDayPass(ctx, dp); err != nil {
				return fmt.Errorf("seed day pass %q failed: %w", dp.Name, err)
			}
		}
	}
	return nil
}

func defaultCabinTypes() []*CabinType {
	return []*CabinType{
		{
			Name:          "A-Frame Cabin",
			Description:   "Cozy A-frame cabin with lake view, perfect for couples or small families",
			Capacity:      4,
			PricePerNight: 100,
			Amenities:     []string{"WiFi", "Air Conditioning", "Private Bathroom", "Lake View", "BBQ Area"},
			IsActive:      true,
		},
	}
}

func defaultDayPasses() []*DayPass {
	return []*DayPass{
		{
			Name:        "Adult Day Pass",
			Description: "Full day access to pool, beach and resort facilities",
			Price:       15,
			IsActive:    true,
		},
		{
			Name:        "Child Day Pass",
			Description: "Full day access for children under 12",
			Price:       10,
			IsActive:    true,
		},
	}
}
