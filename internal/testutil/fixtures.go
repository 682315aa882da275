package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"pondo/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudgetInput creates a budget input on the given line.
func CreateTestBudgetInput(t *testing.T, db *gorm.DB, object, province, code string, amount float64) *models.BudgetInput {
	t.Helper()

	input := &models.BudgetInput{
		ObjectOfExpenditure: object,
		Province:            province,
		BudgetCode:          code,
		ProposedAmount:      amount,
	}
	if err := db.Create(input).Error; err != nil {
		t.Fatalf("failed to create test budget input: %v", err)
	}
	return input
}

// CreateTestExpense creates an expense on the given line.
func CreateTestExpense(t *testing.T, db *gorm.DB, object, province, code string, amount float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		ObjectOfExpenditure: object,
		Province:            province,
		BudgetCode:          code,
		ExpenseAmount:       amount,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestTransfer creates a transfer between two lines.
func CreateTestTransfer(t *testing.T, db *gorm.DB, fromObject, fromProvince, fromBudget, toObject, toProvince, toBudget string, amount float64) *models.Transfer {
	t.Helper()

	transfer := &models.Transfer{
		FromObject:   fromObject,
		FromProvince: fromProvince,
		FromBudget:   fromBudget,
		ToObject:     toObject,
		ToProvince:   toProvince,
		ToBudget:     toBudget,
		Amount:       amount,
	}
	if err := db.Create(transfer).Error; err != nil {
		t.Fatalf("failed to create test transfer: %v", err)
	}
	return transfer
}

// CreateTestBudgetMaster creates a reference allocation row.
func CreateTestBudgetMaster(t *testing.T, db *gorm.DB, object, province, code string, amount float64) *models.BudgetMaster {
	t.Helper()

	row := &models.BudgetMaster{
		ObjectOfExpenditure: object,
		Province:            province,
		BudgetCode:          code,
		AllocatedAmount:     amount,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test budget master row: %v", err)
	}
	return row
}
