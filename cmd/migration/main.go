package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hugohenrick/constru-ia/internal/infrastructure/database"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var databaseURL string

var rootCmd = &cobra.Command{
	Use:   "migration",
	Short: "Gerencia as migrações do histórico de conversas",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if databaseURL == "" {
			databaseURL = os.Getenv("DATABASE_URL")
		}
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL não configurada")
		}
		return nil
	},
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica as migrações pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := database.RunMigrations(databaseURL)
		if err != nil {
			return err
		}
		cmd.Printf("Migrações executadas com sucesso! Versão atual: %d\n", version)
		return nil
	},
}

var downSteps int

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Desfaz migrações",
	RunE: func(cmd *cobra.Command, args []string) error {
		if downSteps <= 0 {
			return fmt.Errorf("--steps deve ser maior que zero")
		}
		if err := database.RollbackMigrations(databaseURL, downSteps); err != nil {
			return err
		}
		cmd.Printf("%d migração(ões) desfeita(s)\n", downSteps)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Mostra a versão aplicada",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, dirty, err := database.MigrationVersion(databaseURL)
		if err != nil {
			return err
		}
		cmd.Printf("Versão: %d (suja: %t)\n", version, dirty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "URL do PostgreSQL (padrão: DATABASE_URL)")
	downCmd.Flags().IntVar(&downSteps, "steps", 1, "quantidade de migrações a desfazer")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
