package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"lune/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lune [script.lua]",
	Short: "Lune language front end",
	Long:  `Lune is a Lua front end with a lexer, parser and diagnostic tools`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runRoot,
	// Ошибка парсинга исходника — не повод печатать usage
	SilenceUsage: true,
}

// main initializes the CLI by setting the command version, registering subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runRoot обрабатывает вызов без подкоманды: `lune script.lua` парсит файл
// и печатает AST, как `lune parse script.lua`. Любое другое число аргументов
// печатает usage и завершается без ошибки.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return cmd.Help()
	}
	return parseAndPrint(cmd, os.Stdout, args[0], "pretty")
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColorFor определяет, нужно ли раскрашивать вывод в данный поток.
func useColorFor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
