package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

var transferFile string

// dump mirrors the blob keys so exports stay readable and hand-editable.
type dump struct {
	User         *core.User           `json:"cp_user,omitempty"`
	Transactions []core.Transaction   `json:"cp_transactions"`
	Cards        []core.CreditCard    `json:"cp_cards"`
	Budgets      []core.BudgetProject `json:"cp_budgets"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all blobs to a JSON file",
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load blobs from a JSON file, replacing the stored data",
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&transferFile, "file", "f", "controle-export.json", "Path of the export file")
	importCmd.Flags().StringVarP(&transferFile, "file", "f", "controle-export.json", "Path of the file to import")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	ctx := cmd.Context()

	var d dump
	if d.User, err = st.LoadUser(ctx); err != nil {
		return err
	}
	if d.Transactions, err = st.LoadTransactions(ctx); err != nil {
		return err
	}
	if d.Cards, err = st.LoadCards(ctx); err != nil {
		return err
	}
	if d.Budgets, err = st.LoadProjects(ctx); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(transferFile, raw, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Printf("exported %d transactions, %d cards, %d projects to %s\n",
		len(d.Transactions), len(d.Cards), len(d.Budgets), transferFile)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(transferFile)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	var d dump
	if err := json.Unmarshal(raw, &d); err != nil {
		return fmt.Errorf("decode import file: %w", err)
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	ctx := cmd.Context()

	if d.User != nil {
		if err := st.SaveUser(ctx, *d.User); err != nil {
			return err
		}
	}
	if err := st.SaveTransactions(ctx, d.Transactions); err != nil {
		return err
	}
	if err := st.SaveCards(ctx, d.Cards); err != nil {
		return err
	}
	if err := st.SaveProjects(ctx, d.Budgets); err != nil {
		return err
	}

	fmt.Printf("imported %d transactions, %d cards, %d projects into %s backend\n",
		len(d.Transactions), len(d.Cards), len(d.Budgets), cfg.DataBackend)
	return nil
}
