package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// CatalogService is the thin CRUD layer over ingredients, meals and activity
// definitions. It validates engine invariants at the boundary so the
// calculators can assume well-formed catalog entries.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CreateIngredient(ing *models.Ingredient) error {
	if ing.Name == "" {
		return fmt.Errorf("%w: ingredient name required", ErrInvalidInput)
	}
	if err := checkNutritionFact(ing.Per100g); err != nil {
		return err
	}
	return s.db.Create(ing).Error
}

func (s *CatalogService) ListIngredients() ([]models.Ingredient, error) {
	var out []models.Ingredient
	err := s.db.Order("name").Find(&out).Error
	return out, err
}

func (s *CatalogService) GetIngredient(id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := s.db.First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ingredient %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &ing, nil
}

func (s *CatalogService) CreateMeal(meal *models.Meal) error {
	if meal.Name == "" {
		return fmt.Errorf("%w: meal name required", ErrInvalidInput)
	}
	if !isFinite(meal.ServingWeightG) || meal.ServingWeightG <= 0 {
		return fmt.Errorf("%w: serving_weight_g must be positive", ErrInvalidInput)
	}
	if err := checkNutritionFact(meal.Per100g); err != nil {
		return err
	}
	return s.db.Create(meal).Error
}

func (s *CatalogService) ListMeals() ([]models.Meal, error) {
	var out []models.Meal
	err := s.db.Order("name").Find(&out).Error
	return out, err
}

func (s *CatalogService) GetMeal(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: meal %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &meal, nil
}

// CreateActivity enforces the mutual-exclusion invariant the energy
// calculator assumes: exactly one of rep/hour support.
func (s *CatalogService) CreateActivity(act *models.Activity) error {
	if act.Name == "" {
		return fmt.Errorf("%w: activity name required", ErrInvalidInput)
	}
	if !isFinite(act.METValue) || act.METValue <= 0 {
		return fmt.Errorf("%w: met_value must be positive", ErrInvalidInput)
	}
	if act.SupportsRep == act.SupportsHour {
		return fmt.Errorf("%w: %q", ErrInconsistentActivity, act.Name)
	}
	return s.db.Create(act).Error
}

func (s *CatalogService) ListActivities() ([]models.Activity, error) {
	var out []models.Activity
	err := s.db.Order("name").Find(&out).Error
	return out, err
}

func (s *CatalogService) GetActivity(id uint) (*models.Activity, error) {
	var act models.Activity
	if err := s.db.First(&act, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: activity %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &act, nil
}
