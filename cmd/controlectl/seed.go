package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a small demo dataset into the configured backend",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	ctx := cmd.Context()

	user := core.User{
		ID:          uuid.NewString(),
		Name:        "Usuário Demo",
		Email:       "demo@example.com",
		MonthlyGoal: core.Money{Cents: core.DefaultMonthlyGoal},
	}
	user.Photo = "https://api.dicebear.com/7.x/avataaars/svg?seed=" + user.ID
	if err := st.SaveUser(ctx, user); err != nil {
		return err
	}

	card := core.CreditCard{
		ID:       uuid.NewString(),
		Bank:     "Nubank",
		Limit:    core.Money{Cents: 500000},
		DueDay:   10,
		Color:    "#8a05be",
		IsActive: true,
		Type:     core.CardCredit,
	}
	if err := st.SaveCards(ctx, []core.CreditCard{card}); err != nil {
		return err
	}

	now := time.Now()
	mk := func(daysAgo int, title string, cents int64, typ core.TransactionType, category string, method core.PaymentMethod) core.Transaction {
		ts := now.AddDate(0, 0, -daysAgo)
		tx := core.Transaction{
			ID:            uuid.NewString(),
			Title:         title,
			Amount:        core.Money{Cents: cents},
			Type:          typ,
			Category:      category,
			Date:          ts.Format("2006-01-02"),
			Time:          ts.Format("15:04"),
			Timestamp:     ts.UnixMilli(),
			PaymentMethod: method,
		}
		if method.UsesCard() {
			tx.CardID = card.ID
		}
		return tx
	}

	txs := []core.Transaction{
		mk(1, "Mercado da semana", 32550, core.Expense, "mercado", core.Pix),
		mk(2, "Salário", 500000, core.Income, "salario", core.Pix),
		mk(3, "Conta de luz", 18900, core.Expense, "luz", core.Pix),
		mk(5, "Jantar iFood", 8790, core.Expense, "ifood", core.Credit),
		mk(8, "Academia", 9990, core.Expense, "academia", core.Debit),
	}
	notebook := mk(4, "Notebook", 360000, core.Expense, "compras_pessoais", core.Credit)
	notebook.InstallmentsCount = 12
	txs = append(txs, notebook)

	if err := st.SaveTransactions(ctx, txs); err != nil {
		return err
	}

	project := core.BudgetProject{
		ID:        uuid.NewString(),
		Name:      "Reforma da cozinha",
		CreatedAt: now.UnixMilli(),
		Suppliers: []core.Supplier{
			{
				ID:   uuid.NewString(),
				Name: "Fornecedor A",
				Items: []core.QuoteItem{
					{ID: uuid.NewString(), Name: "Pia", Price: core.Money{Cents: 45000}},
					{ID: uuid.NewString(), Name: "Armário", Price: core.Money{Cents: 120000}},
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "Fornecedor B",
				Items: []core.QuoteItem{
					{ID: uuid.NewString(), Name: "Pia", Price: core.Money{Cents: 42000}},
					{ID: uuid.NewString(), Name: "Armário", Price: core.Money{Cents: 135000}},
				},
			},
		},
	}
	if err := st.SaveProjects(ctx, []core.BudgetProject{project}); err != nil {
		return err
	}

	fmt.Printf("seeded %d transactions, 1 card, 1 project into %s backend\n", len(txs), cfg.DataBackend)
	return nil
}
