package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income       TransactionType = "INCOME"
	Expense      TransactionType = "EXPENSE"
	LoanGiven    TransactionType = "LOAN_GIVEN"
	LoanTaken    TransactionType = "LOAN_TAKEN"
	BocaPurchase TransactionType = "BOCA_PURCHASE"
)

const (
	Debit  PaymentMethod = "DEBIT"
	Credit PaymentMethod = "CREDIT"
	Cash   PaymentMethod = "CASH"
	Pix    PaymentMethod = "PIX"
)

const (
	CardCredit CardType = "CREDIT"
	CardDebit  CardType = "DEBIT"
)

// DefaultMonthlyGoal applies when the user never set one (R$ 3.000,00).
const DefaultMonthlyGoal int64 = 300000

type (
	TransactionType string
	PaymentMethod   string
	CardType        string

	// Transaction is immutable once created. Amount is the TOTAL purchase
	// value even for multi-installment credit purchases; the per-installment
	// value is always derived, never stored.
	Transaction struct {
		ID                 string          `json:"id"`
		Title              string          `json:"title"`
		Amount             Money           `json:"amount"`
		Type               TransactionType `json:"type"`
		Category           string          `json:"category"`
		Date               string          `json:"date"`      // YYYY-MM-DD
		Time               string          `json:"time"`      // HH:MM
		Timestamp          int64           `json:"timestamp"` // epoch ms, authoritative ordering key
		InstallmentsCount  int             `json:"installmentsCount,omitempty"`
		CurrentInstallment int             `json:"currentInstallment,omitempty"`
		CardID             string          `json:"cardId,omitempty"`
		PaymentMethod      PaymentMethod   `json:"paymentMethod"`
		PaymentDate        string          `json:"paymentDate,omitempty"` // YYYY-MM-DD, special operations only
		PersonName         string          `json:"personName,omitempty"`
		IsSpecialOperation bool            `json:"isSpecialOperation,omitempty"`
	}

	// CreditCard doubles as a debit account; Limit holds the credit limit or
	// the account balance depending on Type.
	CreditCard struct {
		ID         string   `json:"id"`
		Bank       string   `json:"bank"`
		Limit      Money    `json:"limit"`
		DueDay     int      `json:"dueDay"`
		ClosingDay int      `json:"closingDay"`
		Color      string   `json:"color"`
		IsActive   bool     `json:"isActive"`
		Type       CardType `json:"type"`
	}

	User struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Photo       string `json:"photo,omitempty"`
		Password    string `json:"password,omitempty"` // never echoed back by the API
		MonthlyGoal Money  `json:"monthlyGoal,omitempty"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyTitle      = errors.New("empty title")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrMissingCard     = errors.New("card required for card-based payment")
	ErrEmptyBank       = errors.New("empty bank name")
	ErrInvalidDueDay   = errors.New("due day must be between 1 and 31")
	ErrEmptyEmail      = errors.New("empty email")
	ErrInvalidDueDate  = errors.New("invalid payment due date")
	ErrEmptyPersonName = errors.New("empty person name")
)

// Goal returns the user's monthly spending goal, defaulting when unset.
func (u User) Goal() Money {
	if u.MonthlyGoal.Cents <= 0 {
		return Money{Cents: DefaultMonthlyGoal}
	}
	return u.MonthlyGoal
}

func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, LoanGiven, LoanTaken, BocaPurchase:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case Debit, Credit, Cash, Pix:
		return true
	}
	return false
}

// UsesCard reports whether the payment method requires a card reference.
func (m PaymentMethod) UsesCard() bool {
	return m == Debit || m == Credit
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > 200 {
		return errors.New("title too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if !t.PaymentMethod.Valid() {
		return ErrInvalidMethod
	}
	if t.PaymentMethod.UsesCard() && t.CardID == "" {
		return ErrMissingCard
	}
	if t.InstallmentsCount < 0 {
		return errors.New("negative installments count")
	}
	if t.PaymentDate != "" {
		if _, err := time.Parse("2006-01-02", t.PaymentDate); err != nil {
			return ErrInvalidDueDate
		}
	}
	if t.IsSpecialOperation && strings.TrimSpace(t.PersonName) == "" {
		return ErrEmptyPersonName
	}
	return nil
}

// Installments normalizes the installment count for expansion purposes.
func (t Transaction) Installments() int {
	if t.InstallmentsCount < 1 {
		return 1
	}
	return t.InstallmentsCount
}

func (c CreditCard) Validate() error {
	if strings.TrimSpace(c.Bank) == "" {
		return ErrEmptyBank
	}
	if err := c.Limit.Validate(); err != nil {
		return err
	}
	if c.Type != CardCredit && c.Type != CardDebit {
		return errors.New("invalid card type")
	}
	if c.Type == CardCredit && (c.DueDay < 1 || c.DueDay > 31) {
		return ErrInvalidDueDay
	}
	return nil
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("empty name")
	}
	return nil
}
