package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"bank-transactions/internal/app"
	"bank-transactions/internal/dto"
	"bank-transactions/internal/models"
	"bank-transactions/internal/services"
)

var errUsage = errors.New("usage")

func main() {
	app.LoadEnvFile()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	command := args[0]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage(stdout)
		return 0
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := app.SetupLogger(cfg, stderr)

	container, err := app.New(cfg, logger, nil)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cli := &cli{container: container, stdout: stdout, stderr: stderr}

	switch command {
	case "import":
		err = cli.runImport(ctx, args[1:])
	case "list":
		err = cli.runList(ctx, args[1:])
	case "totals":
		err = cli.runTotals(ctx, args[1:])
	case "average":
		err = cli.runAverage(ctx, args[1:])
	case "highest":
		err = cli.runExtremal(ctx, "highest", args[1:], container.QueryService.HighestSpend)
	case "lowest":
		err = cli.runExtremal(ctx, "lowest", args[1:], container.QueryService.LowestSpend)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Bank transactions CLI")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  txn <command> [options]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  import    Import a statement file, replacing the stored transactions")
	fmt.Fprintln(w, "  list      List transactions, optionally for one category")
	fmt.Fprintln(w, "  totals    Show the total spend per category")
	fmt.Fprintln(w, "  average   Show the average monthly spend of a category")
	fmt.Fprintln(w, "  highest   Show the highest spend of a category in a year")
	fmt.Fprintln(w, "  lowest    Show the lowest spend of a category in a year")
	fmt.Fprintln(w, "  help      Show this help message")
	fmt.Fprintln(w, "\nWhen IMPORT_ON_STARTUP is true, query commands import IMPORT_DATA_FILE into an\nin-memory store, or into a database store that holds no transactions yet.")
}

type cli struct {
	container *app.Container
	stdout    io.Writer
	stderr    io.Writer
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// categoryFlag records whether -category was given, so an empty value still filters
type categoryFlag struct {
	value string
	set   bool
}

func (f *categoryFlag) String() string { return f.value }

func (f *categoryFlag) Set(value string) error {
	f.value = value
	f.set = true
	return nil
}

func (c *cli) runImport(ctx context.Context, args []string) error {
	fs := c.flagSet("import")
	file := fs.String("file", c.container.Config.Import.DataFile, "statement JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	batch, err := c.container.ImportService.ImportFile(ctx, *file)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "Imported %d transactions from %s (batch %s)\n", batch.Count, batch.Source, batch.ID)
	return nil
}

func (c *cli) runList(ctx context.Context, args []string) error {
	fs := c.flagSet("list")
	var category categoryFlag
	fs.Var(&category, "category", "only list this category, latest first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.container.EnsureImported(ctx); err != nil {
		return err
	}

	var filter *string
	if category.set {
		filter = &category.value
	}

	transactions, err := c.container.QueryService.ListTransactions(filter)
	if err != nil {
		return err
	}

	for _, txn := range transactions {
		fmt.Fprintln(c.stdout, formatTransaction(dto.NewTransactionResponse(txn)))
	}
	return nil
}

func (c *cli) runTotals(ctx context.Context, args []string) error {
	fs := c.flagSet("totals")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.container.EnsureImported(ctx); err != nil {
		return err
	}

	totals, err := c.container.QueryService.TotalPerCategory()
	if err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(totals)) {
		fmt.Fprintf(c.stdout, "%-20s %12s\n", displayCategory(category), totals[category].StringFixed(models.AmountScale))
	}
	return nil
}

func (c *cli) runAverage(ctx context.Context, args []string) error {
	fs := c.flagSet("average")
	var category categoryFlag
	fs.Var(&category, "category", "category to average (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !category.set {
		fmt.Fprintln(c.stderr, "Usage: txn average -category NAME")
		return errUsage
	}
	if err := c.container.EnsureImported(ctx); err != nil {
		return err
	}

	average, err := c.container.QueryService.MonthlyAverageForCategory(category.value)
	if err != nil {
		return err
	}

	response := dto.NewMonthlyAverageResponse(average)
	fmt.Fprintf(c.stdout, "%s: %s over %d months\n", displayCategory(category.value), response.Average, response.MonthCount)
	return nil
}

func (c *cli) runExtremal(
	ctx context.Context,
	name string,
	args []string,
	lookup func(category string, year int) (*models.Transaction, error),
) error {
	fs := c.flagSet(name)
	var category categoryFlag
	fs.Var(&category, "category", "category to search (required)")
	year := fs.Int("year", 0, "calendar year (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !category.set || *year < 1 {
		fmt.Fprintf(c.stderr, "Usage: txn %s -category NAME -year YYYY\n", name)
		return errUsage
	}
	if err := c.container.EnsureImported(ctx); err != nil {
		return err
	}

	txn, err := lookup(category.value, *year)
	if errors.Is(err, services.ErrNoMatchingTransaction) {
		fmt.Fprintf(c.stdout, "No %s transactions in %d\n", displayCategory(category.value), *year)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, formatTransaction(dto.NewTransactionResponse(*txn)))
	return nil
}

func formatTransaction(txn dto.TransactionResponse) string {
	return fmt.Sprintf("%s  %-24s %-12s %10s  %s", txn.Date, txn.Vendor, txn.Type, txn.Amount, displayCategory(txn.Category))
}

func displayCategory(category string) string {
	if category == "" {
		return "(uncategorized)"
	}
	return category
}
