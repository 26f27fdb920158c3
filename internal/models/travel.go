package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChecklistCategory groups packing checklist items
type ChecklistCategory string

const (
	ChecklistBagagem      ChecklistCategory = "bagagem"
	ChecklistDocumentos   ChecklistCategory = "documentos"
	ChecklistMedicamentos ChecklistCategory = "medicamentos"
	ChecklistEletronicos  ChecklistCategory = "eletronicos"
	ChecklistOutros       ChecklistCategory = "outros"
)

// Valid reports whether c is a known checklist category
func (c ChecklistCategory) Valid() bool {
	switch c {
	case ChecklistBagagem, ChecklistDocumentos, ChecklistMedicamentos, ChecklistEletronicos, ChecklistOutros:
		return true
	}
	return false
}

// ExpenseCategory groups travel expenses
type ExpenseCategory string

const (
	ExpenseTransporte  ExpenseCategory = "transporte"
	ExpenseHospedagem  ExpenseCategory = "hospedagem"
	ExpenseAlimentacao ExpenseCategory = "alimentacao"
	ExpenseAtividades  ExpenseCategory = "atividades"
	ExpenseCompras     ExpenseCategory = "compras"
	ExpenseOutros      ExpenseCategory = "outros"
)

// Valid reports whether c is a known expense category
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseTransporte, ExpenseHospedagem, ExpenseAlimentacao, ExpenseAtividades, ExpenseCompras, ExpenseOutros:
		return true
	}
	return false
}

// ChecklistItem is one entry of a travel packing checklist
type ChecklistItem struct {
	ID        string            `json:"id"`
	Item      string            `json:"item"`
	Category  ChecklistCategory `json:"category"`
	Completed bool              `json:"completed"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Expense is money spent during a travel
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TravelPhoto is a photo attached to a travel
type TravelPhoto struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Travel represents a planned or past trip of the couple
type Travel struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Destination     string          `json:"destination"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	Description     string          `json:"description"`
	EstimatedBudget decimal.Decimal `json:"estimatedBudget"`
	Participants    []string        `json:"participants"`
	Checklist       []ChecklistItem `json:"checklist"`
	Expenses        []Expense       `json:"expenses"`
	Photos          []TravelPhoto   `json:"photos"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// TotalExpenses sums the amounts of all expenses
func (t Travel) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}
