package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mmrzaf/tablefaker/internal/client"
	"github.com/mmrzaf/tablefaker/internal/config"
	"github.com/mmrzaf/tablefaker/internal/definitions"
	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/engine"
	"github.com/mmrzaf/tablefaker/internal/logging"
	"github.com/mmrzaf/tablefaker/internal/registry"
	"github.com/mmrzaf/tablefaker/internal/session"
	"github.com/mmrzaf/tablefaker/internal/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dsn             string
	driver          string
	defaultSchema   string
	seed            int64
	engineKind      string
	definitionsFile string
	logLevel        string
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:           "tablefaker",
		Short:         "Generate and insert fake rows into database tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", cfg.DSN, "Database DSN")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", cfg.Driver, "Database driver (postgres|pgx|sqlite3)")
	rootCmd.PersistentFlags().StringVar(&defaultSchema, "schema", cfg.DefaultSchema, "Schema used for bare table names (default public, main for sqlite3)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", cfg.Seed, "Random seed (0 picks one)")
	rootCmd.PersistentFlags().StringVar(&engineKind, "engine", cfg.Engine, "Generation engine (fakeit|gofaker)")
	rootCmd.PersistentFlags().StringVar(&definitionsFile, "definitions", cfg.DefinitionsFile, "Column overrides file (yaml|json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(saveCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(categoriesCmd())

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runtime struct {
	sess   session.Session
	pooler *client.Pooler
	defs   *domain.DefinitionFile
	logger *logging.Logger
}

func setup() (*runtime, error) {
	logger := logging.NewLogger(logLevel).WithComponent("cli")

	if dsn == "" {
		return nil, errors.New("no DSN configured; set --dsn or TABLEFAKER_DSN")
	}
	if defaultSchema == "" {
		defaultSchema = session.DefaultSchema(driver)
	}

	e, err := engine.New(engineKind, seed)
	if err != nil {
		return nil, err
	}

	var defs *domain.DefinitionFile
	if definitionsFile != "" {
		defs, err = definitions.Load(definitionsFile, defaultSchema)
		if err != nil {
			return nil, fmt.Errorf("failed to load definitions: %w", err)
		}
		var formatters *registry.FormatterRegistry
		if _, ok := e.(*engine.Fakeit); ok {
			formatters = registry.DefaultFormatterRegistry()
		}
		if err := validation.NewValidator(formatters).ValidateDefinitionFile(defs); err != nil {
			return nil, fmt.Errorf("invalid definitions: %w", err)
		}
	}

	sess, err := session.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	logger.Infow("session.opened", map[string]any{"driver": driver, "engine": engineKind})

	pooler := client.NewPooler(e, sess,
		client.WithDefaultSchema(defaultSchema),
		client.WithPoolerLogger(logger.WithComponent("pooler")),
	)
	return &runtime{sess: sess, pooler: pooler, defs: defs, logger: logger}, nil
}

func (r *runtime) close() {
	_ = r.sess.Close()
	r.logger.Sync()
}

func (r *runtime) client(ctx context.Context, identifier string) (*client.Client, error) {
	c, err := r.pooler.GetClient(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := definitions.Apply(r.defs, c.Identifier(), c.RowDefinition()); err != nil {
		return nil, err
	}
	return c, nil
}

func generateCmd() *cobra.Command {
	var count int
	var format string

	cmd := &cobra.Command{
		Use:   "generate <table>",
		Short: "Print fake rows without inserting them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			c, err := rt.client(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rows, err := c.Generate(count)
			if err != nil {
				return err
			}
			return printRows(rows, c.RowDefinition().Names(), format)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of rows")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json|yaml)")
	return cmd
}

func saveCmd() *cobra.Command {
	var count int
	var quiet bool

	cmd := &cobra.Command{
		Use:   "save <table>",
		Short: "Generate fake rows and insert them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			c, err := rt.client(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			saved, err := c.Save(cmd.Context(), count)
			if err != nil {
				if len(saved) > 0 {
					color.Yellow("%d row(s) inserted into %s before the failure", len(saved), c.Identifier())
				}
				return err
			}

			if !quiet && len(saved) > 0 {
				if err := printRows(saved, saved[0].Names(), "table"); err != nil {
					return err
				}
			}
			color.Green("Inserted %d row(s) into %s", len(saved), c.Identifier())
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of rows")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print inserted rows")
	return cmd
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <table>",
		Short: "Show column types and the rules used to fill them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			c, err := rt.client(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			def := c.RowDefinition()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "COLUMN\tTYPE\tRULE")
			for _, col := range def.Types() {
				rule := "-"
				if r, ok := def.Rule(col.Name); ok {
					rule = r.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", col.Name, col.Type, rule)
			}
			return w.Flush()
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories the engine understands",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.New(engineKind, seed)
			if err != nil {
				return err
			}
			lister, ok := e.(interface{ Categories() []string })
			if !ok {
				return fmt.Errorf("engine %s cannot list categories", engineKind)
			}
			fmt.Println(strings.Join(lister.Categories(), "\n"))
			return nil
		},
	}
}

func printRows(rows []domain.Row, columns []string, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, strings.ToUpper(strings.Join(columns, "\t")))
		for _, row := range rows {
			cells := make([]string, len(row))
			for i, f := range row {
				cells[i] = fmt.Sprint(f.Value)
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
