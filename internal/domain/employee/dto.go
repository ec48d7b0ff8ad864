package employee

import (
	"github.com/akademika/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ChangeAssignmentRequest struct {
	DepartmentID  string  `json:"department_id"`
	PositionID    string  `json:"position_id"`
	EffectiveFrom string  `json:"effective_from"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *ChangeAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department is required"})
	}
	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "position is required"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "effective_from must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangeSalaryRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	EffectiveFrom string          `json:"effective_from"`
	Reason        *string         `json:"reason,omitempty"`
}

func (r *ChangeSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "effective_from must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Histories bundles the three append-only ledgers for one employee.
type Histories struct {
	Contracts []*ContractHistory `json:"contracts"`
	Salaries  []*SalaryHistory   `json:"salaries"`
	Jobs      []*JobHistory      `json:"jobs"`
}
