package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TravelService edits travel checklists and expenses
type TravelService struct {
	mu    sync.Mutex
	store *state.Store
	now   func() time.Time
}

// NewTravelService creates a new travel service
func NewTravelService(store *state.Store) *TravelService {
	return &TravelService{store: store, now: time.Now}
}

// TravelSummary compares spending against the estimated budget
type TravelSummary struct {
	TravelID        string                                     `json:"travelId"`
	EstimatedBudget decimal.Decimal                            `json:"estimatedBudget"`
	TotalExpenses   decimal.Decimal                            `json:"totalExpenses"`
	Remaining       decimal.Decimal                            `json:"remaining"`
	OverBudget      bool                                       `json:"overBudget"`
	ByCategory      map[models.ExpenseCategory]decimal.Decimal `json:"byCategory"`
	ChecklistDone   int                                        `json:"checklistDone"`
	ChecklistTotal  int                                        `json:"checklistTotal"`
}

// AddChecklistItem appends an item to a travel checklist
func (s *TravelService) AddChecklistItem(ctx context.Context, travelID, item string, category models.ChecklistCategory) (*models.ChecklistItem, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, ErrItemRequired
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	entry := models.ChecklistItem{
		ID:        uuid.New().String(),
		Item:      item,
		Category:  category,
		CreatedAt: s.now(),
	}

	err := s.update(ctx, travelID, func(t *models.Travel) error {
		t.Checklist = append(cloneChecklist(t.Checklist), entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ToggleChecklistItem flips the completed flag of a checklist item
func (s *TravelService) ToggleChecklistItem(ctx context.Context, travelID, itemID string) (*models.ChecklistItem, error) {
	var toggled models.ChecklistItem
	err := s.update(ctx, travelID, func(t *models.Travel) error {
		checklist := cloneChecklist(t.Checklist)
		for i := range checklist {
			if checklist[i].ID == itemID {
				checklist[i].Completed = !checklist[i].Completed
				toggled = checklist[i]
				t.Checklist = checklist
				return nil
			}
		}
		return ErrChecklistMissing
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

// ExpenseInput describes a new expense
type ExpenseInput struct {
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    models.ExpenseCategory `json:"category"`
	Date        string                 `json:"date"`
}

// AddExpense records money spent on a travel
func (s *TravelService) AddExpense(ctx context.Context, travelID string, in ExpenseInput) (*models.Expense, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
	}

	now := s.now()
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = now.Format(dateLayout)
	} else if _, err := ParseLocalDate(date, now.Location()); err != nil {
		return nil, err
	}

	expense := models.Expense{
		ID:          uuid.New().String(),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        date,
		CreatedAt:   now,
	}

	err := s.update(ctx, travelID, func(t *models.Travel) error {
		expenses := make([]models.Expense, len(t.Expenses), len(t.Expenses)+1)
		copy(expenses, t.Expenses)
		t.Expenses = append(expenses, expense)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Summary reports spending for a travel
func (s *TravelService) Summary(travelID string) (*TravelSummary, error) {
	travel, ok := state.FindTravel(s.store.State().Travels, travelID)
	if !ok {
		return nil, ErrTravelNotFound
	}

	total := travel.TotalExpenses()
	byCategory := make(map[models.ExpenseCategory]decimal.Decimal)
	for _, e := range travel.Expenses {
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	done := 0
	for _, item := range travel.Checklist {
		if item.Completed {
			done++
		}
	}

	remaining := travel.EstimatedBudget.Sub(total)
	return &TravelSummary{
		TravelID:        travel.ID,
		EstimatedBudget: travel.EstimatedBudget,
		TotalExpenses:   total,
		Remaining:       remaining,
		OverBudget:      remaining.IsNegative(),
		ByCategory:      byCategory,
		ChecklistDone:   done,
		ChecklistTotal:  len(travel.Checklist),
	}, nil
}

// update applies fn to a copy of the travel and dispatches the result
func (s *TravelService) update(ctx context.Context, travelID string, fn func(*models.Travel) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	travel, ok := state.FindTravel(s.store.State().Travels, travelID)
	if !ok {
		return ErrTravelNotFound
	}

	if err := fn(&travel); err != nil {
		return err
	}
	travel.UpdatedAt = s.now()

	s.store.Dispatch(ctx, state.UpdateTravel{Travel: travel})
	return nil
}

func cloneChecklist(items []models.ChecklistItem) []models.ChecklistItem {
	out := make([]models.ChecklistItem, len(items), len(items)+1)
	copy(out, items)
	return out
}
