// Command shipctl - утилита оператора: офлайн-расчет стоимости,
// публикация тестовых посылок в Kafka и выпуск токенов.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shipctl",
		Short:         "Operator tooling for the parcelrate service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}
	root.AddCommand(newQuoteCmd(), newPublishCmd(), newTokenCmd())
	return root
}
