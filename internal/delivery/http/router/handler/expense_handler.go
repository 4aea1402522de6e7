package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "expensetracker/internal/delivery/context"
	"expensetracker/internal/delivery/http/response"
	"expensetracker/internal/domain/entity"
	domainerrors "expensetracker/internal/domain/errors"
	"expensetracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// expenseRequest is the payload for creating or replacing an expense.
type expenseRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Category    string `json:"category" validate:"max=100"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description"`
}

// expenseResponse is the expense view returned to clients.
type expenseResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// expenseListResponse is one page of expenses plus paging metadata.
type expenseListResponse struct {
	Items      []expenseResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"totalPages"`
}

// ExpenseHandler holds dependencies for expense handlers.
type ExpenseHandler struct {
	uc     usecase.ExpenseUsecase
	logger *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler, injected by Fx.
func NewExpenseHandler(uc usecase.ExpenseUsecase, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, logger: logger}
}

// Create handles POST /expenses.
func (h *ExpenseHandler) Create(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	input, err := h.bindExpenseInput(c)
	if err != nil {
		return err
	}

	expense, err := h.uc.CreateExpense(c.Request().Context(), principal, *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExpenseResponse(expense), "Expense created successfully")
}

// Get handles GET /expenses/:id.
func (h *ExpenseHandler) Get(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	expense, err := h.uc.GetExpense(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toExpenseResponse(expense), "Expense retrieved successfully")
}

// List handles GET /expenses with optional category, from, to, page and size
// query parameters.
func (h *ExpenseHandler) List(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	input := usecase.ListExpensesInput{
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("from must be formatted as YYYY-MM-DD")
		}
		input.From = from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("to must be formatted as YYYY-MM-DD")
		}
		input.To = to
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("page must be a non-negative integer")
		}
		input.Page = page
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("size must be a positive integer")
		}
		input.Size = size
	}

	output, err := h.uc.ListExpenses(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toExpenseListResponse(output), "Expenses retrieved successfully")
}

// Update handles PUT /expenses/:id.
func (h *ExpenseHandler) Update(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	input, err := h.bindExpenseInput(c)
	if err != nil {
		return err
	}

	expense, err := h.uc.UpdateExpense(c.Request().Context(), principal, id, *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toExpenseResponse(expense), "Expense updated successfully")
}

// Delete handles DELETE /expenses/:id.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteExpense(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Expense deleted"}, "Expense deleted successfully")
}

func (h *ExpenseHandler) bindExpenseInput(c echo.Context) (*usecase.ExpenseInput, error) {
	var req expenseRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date must be formatted as YYYY-MM-DD")
	}

	return &usecase.ExpenseInput{
		Title:       req.Title,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}, nil
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}

func toExpenseResponse(e *entity.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
	}
}

func toExpenseListResponse(output *usecase.ExpenseListOutput) expenseListResponse {
	items := make([]expenseResponse, 0, len(output.Items))
	for _, e := range output.Items {
		items = append(items, toExpenseResponse(e))
	}

	return expenseListResponse{
		Items:      items,
		Total:      output.Total,
		Page:       output.Page,
		Size:       output.Size,
		TotalPages: output.TotalPages,
	}
}
