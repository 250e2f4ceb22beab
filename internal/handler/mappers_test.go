package handler

import (
	"testing"

	"github.com/fitfolio/fitfolio-backend/internal/models"
)

func TestApplyBrandServiceCopiesRequest(t *testing.T) {
	row := models.BrandService{ID: 7, Category: "reel", Duration: "post"}
	ApplyBrandService(&models.BrandServiceRequest{
		Name:        "Story Blast",
		Category:    "story",
		Description: "3 stories over a week",
		Price:       4999,
		Duration:    "week",
		Features:    []string{"swipe-up link", "brand tag"},
		Popular:     true,
		Active:      true,
		SortOrder:   2,
	}, &row)

	if row.Name != "Story Blast" || row.Category != "story" || row.Duration != "week" {
		t.Fatalf("row = %+v", row)
	}
	if row.Price != 4999 || !row.Popular || !row.Active || row.SortOrder != 2 {
		t.Fatalf("row = %+v", row)
	}
	if len(row.Features) != 2 {
		t.Fatalf("features = %v", row.Features)
	}
}

func TestApplyBrandServiceKeepsDefaultsWhenOmitted(t *testing.T) {
	row := models.BrandService{Category: "reel", Duration: "post"}
	ApplyBrandService(&models.BrandServiceRequest{Name: "New Service", Active: true}, &row)

	if row.Category != "reel" {
		t.Fatalf("category = %q, want reel", row.Category)
	}
	if row.Duration != "post" {
		t.Fatalf("duration = %q, want post", row.Duration)
	}
}
