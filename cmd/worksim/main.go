package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"worksim/internal/config"
	"worksim/internal/db"
	"worksim/internal/domain"
	"worksim/internal/llm"
	"worksim/internal/migrate"
	"worksim/internal/sim"
	"worksim/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "worksim",
	Short: "Worksim dataset generator",
	Long: `Worksim generates a realistic project-management workspace dataset:
one organization with teams, users, projects, sections, tasks, subtasks,
comments, tags, custom fields and attachments, written as a relational
snapshot into a SQLite database.

Runs are deterministic for a fixed seed and configuration. Parameters live
in worksim.yml inside the workspace; "worksim config init" writes the
defaults there to edit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	initConfig()
	addPersistentFlags()
	registerCommands()
	defer closeLogFile()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		closeLogFile()
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("WORKSIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "warnings and errors only")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func registerCommands() {
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(configCmd())
}

func configPath(workspace string) string {
	return filepath.Join(workspace, "worksim.yml")
}

func generateCmd() *cobra.Command {
	var (
		configFile string
		dbPath     string
		seed       int64
		employees  int
		endDate    string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a workspace dataset",
		Long: `Generate builds the full dataset and writes it into a fresh database,
replacing any previous one in the workspace. Flags override the
corresponding worksim.yml values for this run only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := viper.GetString("workspace")
			log := initLogger(workspace, viper.GetBool("verbose"), viper.GetBool("quiet"))

			if configFile == "" {
				configFile = configPath(workspace)
			}
			cfg, err := config.LoadOptional(configFile)
			if err != nil {
				return err
			}
			if seed != 0 {
				cfg.Simulation.Seed = seed
			}
			if employees != 0 {
				cfg.Simulation.Employees = employees
			}
			if endDate != "" {
				cfg.Simulation.EndDate = endDate
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if _, err := db.EnsureWorkspace(workspace); err != nil {
				return err
			}
			conn, err := db.Recreate(db.Config{Workspace: workspace, Path: dbPath})
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := migrate.Migrate(conn); err != nil {
				return err
			}

			llmClient := llm.New(llm.Config{
				APIKey:      os.Getenv("ANTHROPIC_API_KEY"),
				Model:       cfg.LLM.Model,
				Temperature: cfg.LLM.Temperature,
				MaxTokens:   cfg.LLM.MaxTokens,
				BatchDelay:  time.Duration(cfg.LLM.BatchDelay) * time.Millisecond,
			}, log)

			gen, err := sim.New(cfg, store.Store{DB: conn}, llmClient, log)
			if err != nil {
				return err
			}
			summary, err := gen.Run(cmd.Context())
			if err != nil {
				return err
			}
			return printSummary(summary, db.Path(db.Config{Workspace: workspace, Path: dbPath}))
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default <workspace>/worksim.yml)")
	cmd.Flags().StringVar(&dbPath, "db", "", "database path (default <workspace>/.worksim/worksim.db)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed override")
	cmd.Flags().IntVar(&employees, "employees", 0, "employee count override")
	cmd.Flags().StringVar(&endDate, "end-date", "", "horizon end date override (YYYY-MM-DD)")
	return cmd
}

var collections = []string{
	domain.CollectionOrganizations,
	domain.CollectionTeams,
	domain.CollectionUsers,
	domain.CollectionTeamMemberships,
	domain.CollectionProjects,
	domain.CollectionSections,
	domain.CollectionTasks,
	domain.CollectionComments,
	domain.CollectionCustomFieldDefinitions,
	domain.CollectionCustomFieldEnumOptions,
	domain.CollectionCustomFieldValues,
	domain.CollectionTags,
	domain.CollectionTaskTags,
	domain.CollectionAttachments,
}

func statsCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show row counts for a generated dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := viper.GetString("workspace")
			cfg := db.Config{Workspace: workspace, Path: dbPath}
			if _, err := os.Stat(db.Path(cfg)); err != nil {
				return fmt.Errorf("no dataset at %s, run generate first", db.Path(cfg))
			}
			conn, err := db.Open(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			st := store.Store{DB: conn}
			counts := make(map[string]int, len(collections))
			for _, c := range collections {
				n, err := st.Count(cmd.Context(), c)
				if err != nil {
					return err
				}
				counts[c] = n
			}
			if viper.GetBool("json") {
				return printJSON(counts)
			}
			renderCounts(counts)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "database path (default <workspace>/.worksim/worksim.db)")
	return cmd
}

func configCmd() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage simulation configuration",
	}
	cfg.AddCommand(configInitCmd())
	return cfg
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default worksim.yml into the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := viper.GetString("workspace")
			path := configPath(workspace)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := os.MkdirAll(workspace, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(config.DefaultTemplate), 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return cmd
}

// --- helpers ---

func printSummary(s *sim.Summary, dbPath string) error {
	if viper.GetBool("json") {
		return printJSON(map[string]any{
			"counts":     s.Counts,
			"elapsed_ms": s.Elapsed.Milliseconds(),
			"seed":       s.Seed,
			"llm_calls":  s.LLM.Calls,
			"llm_tokens": s.LLM.Tokens,
			"database":   dbPath,
		})
	}
	renderCounts(s.Counts)
	fmt.Printf("Seed: %d\n", s.Seed)
	if s.LLM.Calls > 0 {
		fmt.Printf("LLM: %d calls, %d tokens\n", s.LLM.Calls, s.LLM.Tokens)
	}
	fmt.Printf("Generated in %s into %s\n", s.Elapsed.Round(time.Millisecond), dbPath)
	return nil
}

func renderCounts(counts map[string]int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Collection", "Rows"})
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	total := 0
	for _, name := range names {
		t.AppendRow(table.Row{name, counts[name]})
		total += counts[name]
	}
	t.AppendFooter(table.Row{"Total", total})
	t.Render()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
