package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/netscen/internal/bands"
	"github.com/muurk/netscen/internal/config"
	"github.com/muurk/netscen/internal/logging"
	"github.com/muurk/netscen/internal/scenario"
	"github.com/muurk/netscen/internal/storage"
	"github.com/muurk/netscen/internal/ui"
	"github.com/muurk/netscen/internal/wizard"
	"github.com/muurk/netscen/internal/wizard/tui"
)

// Global flags
var (
	configPath     string
	storageBackend string
	storagePath    string
	storageKey     string
	logLevel       string

	cfg *config.Config
)

// Command flags
var (
	outputFormat string
	assumeYes    bool
	bandDuplex   string
	bandTech     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <config dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "Storage backend (file, sqlite, memory)")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage-path", "", "Storage directory (file) or database file (sqlite)")
	rootCmd.PersistentFlags().StringVar(&storageKey, "key", "", "Key the scenario is stored under")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(bandsCmd)
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if storageBackend != "" {
		backend, err := storage.ParseBackend(storageBackend)
		if err != nil {
			return err
		}
		if string(backend) != c.Storage.Backend && storagePath == "" {
			// The default path belongs to the configured backend.
			c.Storage.Path = ""
		}
		c.Storage.Backend = string(backend)
	}
	if storagePath != "" {
		c.Storage.Path = storagePath
	}
	if storageKey != "" {
		c.Storage.Key = storageKey
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}

	path := configPath
	if path == "" {
		if path, err = config.GetConfigPath(); err != nil {
			return err
		}
	}
	c.SetDefaults(filepath.Dir(path))
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	return logging.InitializeWithOutput(cfg.Logging.Level, "stderr")
}

// openStore opens the configured store. The caller closes it.
func openStore() (storage.KV, error) {
	kv, err := cfg.OpenStore()
	if err != nil {
		return nil, scenario.NewStorageError("failed to open scenario store", err)
	}
	logging.Debug("Opened scenario store",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path),
		zap.String("key", cfg.Storage.Key))
	return kv, nil
}

// storeLocation describes the store for headers and prompts.
func storeLocation() string {
	if cfg.Storage.Path == "" {
		return cfg.Storage.Backend
	}
	return fmt.Sprintf("%s (%s)", cfg.Storage.Backend, cfg.Storage.Path)
}

// loadDocument reads the stored scenario. found is false when nothing is
// stored, in which case the default document is returned.
func loadDocument(kv storage.KV) (doc scenario.Document, found bool, err error) {
	raw, ok, err := kv.Get(cfg.Storage.Key)
	if err != nil {
		return scenario.Document{}, false, scenario.NewStorageError("failed to read scenario", err)
	}
	if !ok {
		return scenario.Default(), false, nil
	}

	doc, repaired, err := scenario.Decode([]byte(raw))
	if err != nil {
		return scenario.Document{}, true, err
	}
	for _, sec := range repaired {
		logging.Warn("Stored scenario section missing, using defaults", zap.String("section", sec.String()))
	}
	return doc, true, nil
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch interactive scenario wizard",
	Long: `Launch the interactive TUI wizard for building a scenario.

The wizard walks through six steps:
- Cell: RAT type, duplex mode, band and channel numbers per cell
- Subscriber: total UEs and SUPI ranges
- User Plane: data profiles per subscriber range
- Traffic: attach profile
- Mobility: trip profile (when mobility is enabled)
- Settings: test case name, logging and success criteria

Each step is saved when you move on, and the wizard resumes at the saved
step next time it starts.`,
	Example: `  # Launch the wizard (also the default)
  netscen-cfg wizard
  netscen-cfg

  # Keep the scenario in a SQLite database
  netscen-cfg --storage sqlite --storage-path ./scenarios.db`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	// The wizard owns the terminal, so logs go to the log file.
	if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := logging.InitializeWithOutput(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}

	kv, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	logging.Info("Starting wizard", zap.String("store", storeLocation()))

	if err := tui.Run(kv, cfg.Storage.Key); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// showCmd displays the stored scenario
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored scenario",
	Long: `Display the scenario saved by the wizard.

Formats:
  detailed  every section with all fields (default)
  compact   one line per section
  yaml      the stored record
  json      the stored record as JSON`,
	Example: `  # Show the scenario
  netscen-cfg show

  # JSON output for scripting
  netscen-cfg show --format json`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, yaml, json)")
}

func runShow(cmd *cobra.Command, args []string) error {
	kv, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	doc, found, err := loadDocument(kv)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return writeDocument(out, doc, found, outputFormat, lastSaved(kv))
}

// writeDocument prints doc in the requested format.
func writeDocument(out io.Writer, doc scenario.Document, found bool, format, saved string) error {
	switch format {
	case "yaml":
		data, err := scenario.Encode(doc)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "json":
		data, err := scenario.EncodeJSON(doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "compact", "detailed":
	default:
		return fmt.Errorf("unknown format %q (use detailed, compact, yaml or json)", format)
	}

	if !found {
		fmt.Fprintln(out, ui.RenderWarning("No scenario stored",
			ui.Param{Key: "Key", Value: cfg.Storage.Key},
			ui.Param{Key: "Store", Value: storeLocation()},
		))
		fmt.Fprintln(out, "\nRun 'netscen-cfg wizard' to create one.")
		return nil
	}

	if format == "compact" {
		fmt.Fprintln(out, doc.FormatCompact())
		return nil
	}

	params := []ui.Param{{Key: "Store", Value: storeLocation()}, {Key: "Key", Value: cfg.Storage.Key}}
	if saved != "" {
		params = append(params, ui.Param{Key: "Last saved", Value: saved})
	}
	fmt.Fprintln(out, ui.NewHeader("Network scenario", appName+" show", params...).Render())
	fmt.Fprintln(out)
	fmt.Fprintln(out, doc.FormatDetailed())
	return nil
}

// lastSaved reports when the record was written, for stores that track it.
func lastSaved(kv storage.KV) string {
	sq, ok := kv.(*storage.SQLiteKV)
	if !ok {
		return ""
	}
	at, found, err := sq.UpdatedAt(cfg.Storage.Key)
	if err != nil || !found {
		return ""
	}
	return at.Local().Format("2006-01-02 15:04:05")
}

// validateCmd checks the stored scenario
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the stored scenario",
	Long: `Run the checks of every wizard step against the stored scenario and list
the problems found. Exits non-zero when any section is invalid.`,
	Example: `  netscen-cfg validate
  netscen-cfg validate --key regressionRun`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	kv, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	doc, found, err := loadDocument(kv)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.NewHeader("Validate scenario", appName+" validate",
		ui.Param{Key: "Store", Value: storeLocation()},
		ui.Param{Key: "Key", Value: cfg.Storage.Key},
	).Render())
	fmt.Fprintln(out)

	if !found {
		fmt.Fprintln(out, ui.RenderWarning("No scenario stored; checking the defaults"))
		fmt.Fprintln(out)
	}

	return reportProblems(out, doc)
}

// reportProblems prints the validation result of doc and returns an error
// when any section is invalid.
func reportProblems(out io.Writer, doc scenario.Document) error {
	bySection := scenario.CheckDocument(doc)

	var problems []string
	for _, sec := range scenario.Sections {
		logging.LogValidation(sec.String(), bySection[sec])
		for _, p := range bySection[sec] {
			problems = append(problems, scenario.GetShortErrorMessage(p))
		}
	}

	if len(problems) == 0 {
		fmt.Fprintln(out, ui.RenderSuccess("Scenario is valid",
			ui.Param{Key: "Test case", Value: doc.Settings.TestCaseName},
			ui.Param{Key: "Sections", Value: fmt.Sprintf("%d checked", len(scenario.Sections))},
		))
		return nil
	}

	fmt.Fprintln(out, ui.RenderFailure("Scenario is invalid", nil, problems))
	return fmt.Errorf("scenario has %d problem(s)", len(problems))
}

// exportCmd writes the stored scenario to a file
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the stored scenario as YAML",
	Long: `Write the stored scenario to a YAML file. Use "-" to write to stdout.`,
	Example: `  netscen-cfg export scenario.yaml
  netscen-cfg export - > scenario.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	kv, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	doc, found, err := loadDocument(kv)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no scenario stored under %q in %s", cfg.Storage.Key, storeLocation())
	}

	data, err := scenario.Encode(doc)
	if err != nil {
		return err
	}

	target := args[0]
	if target == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	logging.Info("Exported scenario", zap.String("file", target), zap.Int("bytes", len(data)))
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccess("Scenario exported",
		ui.Param{Key: "File", Value: target},
		ui.Param{Key: "Test case", Value: doc.Settings.TestCaseName},
	))
	return nil
}

// resetCmd removes the stored scenario
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the stored scenario",
	Long: `Remove the stored scenario so the next wizard run starts from the defaults.

Asks for confirmation unless --yes is given.`,
	Example: `  netscen-cfg reset
  netscen-cfg reset --yes`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Reset without asking for confirmation")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !assumeYes {
		if !ui.IsInteractive() {
			return fmt.Errorf("refusing to reset without confirmation; pass --yes")
		}
		if !ui.ResetConfirmation(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Storage.Key, storeLocation()) {
			return nil
		}
	}

	kv, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	wizard.NewSession(kv, cfg.Storage.Key, nil).Reset()

	if _, ok, err := kv.Get(cfg.Storage.Key); err == nil && ok {
		return scenario.NewStorageError("scenario is still stored after reset", nil)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccess("Scenario reset",
		ui.Param{Key: "Key", Value: cfg.Storage.Key},
		ui.Param{Key: "Store", Value: storeLocation()},
	))
	return nil
}

// bandsCmd prints the channel lookup tables
var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "List bands and their channel numbers",
	Long: `Print the band tables the wizard uses to fill in channel numbers.

4G rows come from the EARFCN tables of the duplex mode; 5G rows come from
the NR-ARFCN table, which only covers some bands.`,
	Example: `  netscen-cfg bands
  netscen-cfg bands --duplex TDD --tech 5G`,
	RunE: runBands,
}

func init() {
	bandsCmd.Flags().StringVar(&bandDuplex, "duplex", "", "Only this duplex mode (FDD, TDD)")
	bandsCmd.Flags().StringVar(&bandTech, "tech", "", "Only this technology (4G, 5G)")
}

func runBands(cmd *cobra.Command, args []string) error {
	rows, err := bandRows(bandDuplex, bandTech)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No bands match.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable([]string{"Band", "Duplex", "Tech", "DL", "UL", "SSB"}, rows))
	return nil
}

// bandRows builds the table rows for the band listing, filtered by duplex
// mode and technology when those are non-empty.
func bandRows(duplex, tech string) ([][]string, error) {
	modes := bands.DuplexModes
	if duplex != "" {
		mode := bands.DuplexMode(strings.ToUpper(duplex))
		if bands.BandsFor(mode) == nil {
			return nil, fmt.Errorf("unknown duplex mode %q (use FDD or TDD)", duplex)
		}
		modes = []bands.DuplexMode{mode}
	}

	techs := []bands.Technology{bands.Tech4G, bands.Tech5G}
	if tech != "" {
		t := bands.Technology(strings.ToUpper(tech))
		if t != bands.Tech4G && t != bands.Tech5G {
			return nil, fmt.Errorf("unknown technology %q (use 4G or 5G)", tech)
		}
		techs = []bands.Technology{t}
	}

	var rows [][]string
	for _, mode := range modes {
		for _, band := range bands.BandsFor(mode) {
			for _, t := range techs {
				ch, ok := bands.Lookup(band, mode, t)
				if !ok {
					continue
				}
				ssb := ch.SSB
				if ssb == "" {
					ssb = "-"
				}
				rows = append(rows, []string{band.String(), string(mode), string(t), ch.DL, ch.UL, ssb})
			}
		}
	}
	return rows, nil
}
