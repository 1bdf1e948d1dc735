// Command provision creates the hotel schema on the primary database. When
// the primary is unreachable it degrades to probing each table through the
// managed REST endpoint and printing the SQL to run by hand, since the REST
// surface cannot execute DDL.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/casaluna/hotel/api/internal/config"
	"github.com/casaluna/hotel/api/internal/database"
)

//go:embed schema.yaml
var embeddedSchema []byte

var schemaPath string

var rootCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create missing hotel tables and indexes",
	Long: `provision checks every table the API expects and creates the missing ones.

It connects to the primary database (DATABASE_URL) and inspects
information_schema. If the primary is unreachable it probes each table
through the Supabase REST endpoint instead and prints the CREATE TABLE
statements to run manually, because DDL cannot go through REST.

Examples:
  provision
  provision --schema custom-schema.yaml
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Schema file overriding the embedded one")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "provision failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sf, err := loadSchema(schemaPath, embeddedSchema)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database)
	if err == nil && pool != nil {
		defer pool.Close()
		pingErr := pool.Ping(ctx)
		if pingErr == nil {
			return provisionPrimary(ctx, pool, sf)
		}
		err = fmt.Errorf("ping failed: %w", pingErr)
	}

	if err != nil {
		color.New(color.FgYellow, color.Bold).Printf("primary unreachable: %v\n", err)
	} else {
		color.New(color.FgYellow, color.Bold).Println("DATABASE_URL is not set")
	}
	color.Yellow("falling back to REST probes; tables cannot be created this way")
	return probeRest(ctx, database.NewRestClient(cfg.Supabase), sf)
}

func provisionPrimary(ctx context.Context, pool *pgxpool.Pool, sf *schemaFile) error {
	green := color.New(color.FgGreen, color.Bold)
	blue := color.New(color.FgBlue)

	created := 0
	for _, t := range sf.Tables {
		exists, err := tableExists(ctx, pool, t.Name)
		if err != nil {
			return fmt.Errorf("checking table %s: %w", t.Name, err)
		}

		if exists {
			blue.Printf("  %-20s exists\n", t.Name)
		} else {
			if _, err := pool.Exec(ctx, createTableSQL(t)); err != nil {
				return fmt.Errorf("creating table %s: %w", t.Name, err)
			}
			green.Printf("  %-20s created\n", t.Name)
			created++
		}

		for _, idx := range t.Indexes {
			if _, err := pool.Exec(ctx, createIndexSQL(t, idx)); err != nil {
				return fmt.Errorf("creating index %s: %w", idx.Name, err)
			}
		}
	}

	if created == 0 {
		green.Println("schema up to date, nothing to create")
	} else {
		green.Printf("schema provisioned, %d table(s) created\n", created)
	}
	return nil
}

func tableExists(ctx context.Context, pool *pgxpool.Pool, name string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`, name).Scan(&exists)
	return exists, err
}

// probeRest checks each table with a zero-row select through the managed
// client. It cannot create anything, so missing tables produce manual
// instructions and a non-zero exit.
func probeRest(ctx context.Context, rest *database.RestClient, sf *schemaFile) error {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	var missing []table
	for _, t := range sf.Tables {
		if err := rest.Probe(ctx, t.Name); err != nil {
			red.Printf("  %-20s missing or unreachable (%v)\n", t.Name, err)
			missing = append(missing, t)
		} else {
			green.Printf("  %-20s reachable\n", t.Name)
		}
	}

	if len(missing) == 0 {
		green.Println("all tables reachable through REST")
		return nil
	}

	fmt.Println()
	color.New(color.FgYellow, color.Bold).Println("Run the following in the SQL editor of your Supabase project:")
	fmt.Println()
	for _, t := range missing {
		fmt.Println(createTableSQL(t) + ";")
		for _, idx := range t.Indexes {
			fmt.Println(createIndexSQL(t, idx) + ";")
		}
		fmt.Println()
	}
	return fmt.Errorf("%d table(s) need manual creation", len(missing))
}
