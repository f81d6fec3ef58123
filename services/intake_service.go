package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// IntakeService logs food against the daily ledger. Every log or delete
// triggers a full recompute of the day's totals; totals are never patched
// incrementally.
type IntakeService struct {
	db     *gorm.DB
	ledger *LedgerService
}

func NewIntakeService(db *gorm.DB, ledger *LedgerService) *IntakeService {
	return &IntakeService{db: db, ledger: ledger}
}

// LogIngredient weighs a catalog ingredient portion into the user's ledger
// for the given day. The entry's totals are computed once here; Recompute
// only sums them.
func (s *IntakeService) LogIngredient(userID, ingredientID uint, date time.Time, quantityKg float64) (*models.LoggedIngredient, error) {
	var ing models.Ingredient
	if err := s.db.First(&ing, ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ingredient %d", ErrNotFound, ingredientID)
		}
		return nil, err
	}

	sum, err := AggregateMacros([]Portion{{QuantityKg: quantityKg, Per100g: ing.Per100g}})
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledger.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	entry := &models.LoggedIngredient{
		LedgerID:     ledger.ID,
		IngredientID: ing.ID,
		QuantityKg:   quantityKg,
		Totals:       sum.Total,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	if err := s.afterChange(userID, ledger.ID); err != nil {
		return nil, err
	}
	return entry, nil
}

// LogMeal logs servings of a catalog meal. Servings are converted into a
// weighed quantity via the meal's serving weight, then aggregated like any
// other portion.
func (s *IntakeService) LogMeal(userID, mealID uint, date time.Time, servings float64) (*models.LoggedMeal, error) {
	if !isFinite(servings) || servings <= 0 {
		return nil, fmt.Errorf("%w: servings must be positive and finite", ErrInvalidInput)
	}

	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: meal %d", ErrNotFound, mealID)
		}
		return nil, err
	}
	if meal.ServingWeightG <= 0 {
		return nil, fmt.Errorf("%w: meal %q has no serving weight", ErrInvalidInput, meal.Name)
	}

	quantityKg := servings * meal.ServingWeightG / 1000
	sum, err := AggregateMacros([]Portion{{QuantityKg: quantityKg, Per100g: meal.Per100g}})
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledger.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	entry := &models.LoggedMeal{
		LedgerID:   ledger.ID,
		MealID:     meal.ID,
		Servings:   servings,
		QuantityKg: quantityKg,
		Totals:     sum.Total,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	if err := s.afterChange(userID, ledger.ID); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteLoggedIngredient removes an entry owned by the user and recomputes
// the affected ledger.
func (s *IntakeService) DeleteLoggedIngredient(userID, entryID uint) error {
	var entry models.LoggedIngredient
	if err := s.db.First(&entry, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: logged ingredient %d", ErrNotFound, entryID)
		}
		return err
	}
	ledgerID, err := s.ownedLedger(userID, entry.LedgerID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return err
	}
	return s.afterChange(userID, ledgerID)
}

// DeleteLoggedMeal removes a logged meal owned by the user and recomputes
// the affected ledger.
func (s *IntakeService) DeleteLoggedMeal(userID, entryID uint) error {
	var entry models.LoggedMeal
	if err := s.db.First(&entry, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: logged meal %d", ErrNotFound, entryID)
		}
		return err
	}
	ledgerID, err := s.ownedLedger(userID, entry.LedgerID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return err
	}
	return s.afterChange(userID, ledgerID)
}

// ownedLedger verifies the ledger belongs to the user. A foreign entry reads
// as not-found rather than forbidden, to avoid leaking other users' IDs.
func (s *IntakeService) ownedLedger(userID, ledgerID uint) (uint, error) {
	var ledger models.DailyLedger
	if err := s.db.First(&ledger, ledgerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: ledger %d", ErrLedgerNotFound, ledgerID)
		}
		return 0, err
	}
	if ledger.UserID != userID {
		return 0, fmt.Errorf("%w: ledger %d", ErrNotFound, ledgerID)
	}
	return ledger.ID, nil
}

func (s *IntakeService) afterChange(userID, ledgerID uint) error {
	if err := s.ledger.Recompute(ledgerID); err != nil {
		return err
	}
	var updated models.DailyLedger
	if err := s.db.First(&updated, ledgerID).Error; err == nil {
		EmitLedgerUpdated(userID, &updated)
	}
	return nil
}
