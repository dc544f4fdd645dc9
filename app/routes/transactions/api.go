package transactions

import (
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/models"
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// transactionRequest is the create/update payload for a ledger entry.
type transactionRequest struct {
	Kind       models.TransactionKind     `json:"kind"`
	Category   models.TransactionCategory `json:"category"`
	Amount     int64                      `json:"amount"`
	OccurredOn string                     `json:"occurred_on"` // YYYY-MM-DD
	Reference  *string                    `json:"reference"`
	Detail     string                     `json:"detail"`
	Notes      string                     `json:"notes"`
	RecordedBy string                     `json:"recorded_by"`
}

func (r *transactionRequest) toModel() (*models.Transaction, error) {
	occurredOn, err := time.Parse("2006-01-02", r.OccurredOn)
	if err != nil {
		return nil, &models.ValidationError{Field: "occurred_on", Message: "date must be YYYY-MM-DD"}
	}
	return &models.Transaction{
		Kind:       r.Kind,
		Category:   r.Category,
		Amount:     r.Amount,
		OccurredOn: occurredOn,
		Reference:  r.Reference,
		Detail:     r.Detail,
		Notes:      r.Notes,
		RecordedBy: r.RecordedBy,
	}, nil
}

// ListTransactionsAPI returns one page of ledger entries. Filters: kind,
// category, month, year, search; page and page_size control pagination.
func ListTransactionsAPI(c *fiber.Ctx, store *database.Store) error {
	filter := database.TransactionFilter{
		Kind:     models.TransactionKind(c.Query("kind")),
		Category: models.TransactionCategory(c.Query("category")),
		Month:    c.QueryInt("month", 0),
		Year:     c.QueryInt("year", 0),
		Search:   c.Query("search"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	entries, pagination, err := store.ListTransactions(filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       entries,
		"pagination": pagination,
	})
}

// CreateTransactionAPI records a new ledger entry.
func CreateTransactionAPI(c *fiber.Ctx, store *database.Store, balance *services.BalanceService) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := req.toModel()
	if err != nil {
		return err
	}
	if err := store.CreateTransaction(entry); err != nil {
		return err
	}
	balance.Invalidate()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    entry,
		"message": "Transaction recorded successfully",
	})
}

// GetTransactionAPI returns one ledger entry by id.
func GetTransactionAPI(c *fiber.Ctx, store *database.Store) error {
	entry, err := store.GetTransactionByID(c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    entry,
	})
}

// UpdateTransactionAPI overwrites an existing ledger entry in place.
func UpdateTransactionAPI(c *fiber.Ctx, store *database.Store, balance *services.BalanceService) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := req.toModel()
	if err != nil {
		return err
	}
	entry.ID = c.Params("id")
	if err := store.UpdateTransaction(entry); err != nil {
		return err
	}
	balance.Invalidate()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Transaction updated successfully",
	})
}

// DeleteTransactionAPI permanently removes a ledger entry.
func DeleteTransactionAPI(c *fiber.Ctx, store *database.Store, balance *services.BalanceService) error {
	if err := store.DeleteTransaction(c.Params("id")); err != nil {
		return err
	}
	balance.Invalidate()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Transaction deleted successfully",
	})
}

// GetBalanceAPI returns the current running balance.
func GetBalanceAPI(c *fiber.Ctx, balance *services.BalanceService) error {
	current, err := balance.Current()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"balance": current},
	})
}
