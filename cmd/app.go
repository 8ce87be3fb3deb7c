// Package cmd implements the bms command line application to keep the books of a shop.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/biashara"
	"github.com/etnz/biashara/config"
	"github.com/etnz/biashara/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Version is the application version recorded in the data directory.
const Version = "1.2.1"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&itemCmd{}, "inventory")
	c.Register(&sellCmd{}, "inventory")
	c.Register(&receiptCmd{}, "inventory")

	c.Register(&expenseCmd{}, "finance")
	c.Register(&debtCmd{}, "finance")
	c.Register(&loanCmd{}, "finance")
	c.Register(&equityCmd{}, "finance")
	c.Register(&deleteCmd{}, "finance")

	c.Register(&ledgerCmd{}, "reports")
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&snapshotCmd{}, "data")
	c.Register(&autosnapCmd{}, "data")
	c.Register(&backupCmd{}, "data")
	c.Register(&publishCmd{}, "data")

	c.Register(&adviseCmd{}, "assistant")
	c.Register(&assistCmd{}, "assistant")

	c.Register(&topicCmd{}, "help")
	c.Register(&versionCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Directory of the shop data. Defaults to $BMS_DATA_DIR or ~/.biashara")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error. Defaults to $BMS_LOG_LEVEL or warn")
var envFile = flag.String("env-file", "", "Read the configuration from this file instead of ./.env")
var plain = flag.Bool("plain", os.Getenv("BMS_PLAIN") == "true", "Print raw markdown instead of rendering it for the terminal")

// loadConfig reads the configuration, the global flags take precedence.
func loadConfig() (*config.Config, error) {
	name := *envFile
	if name == "" {
		name = os.Getenv(EnvEnvFile)
	}
	cfg, err := config.Load(name)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if _, _, err := testingNow(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// app holds what a command needs to work on the books.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	session *biashara.Session
}

// openApp loads the configuration and opens the books in the data directory.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.Production())
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}
	session := biashara.Open(biashara.NewDirStorage(cfg.DataDir),
		biashara.WithLogger(logger.Named(log, "session")),
		biashara.WithVersion(Version))
	if prev, up := session.Upgraded(); up {
		fmt.Fprintf(os.Stderr, "bms has been updated from %s to %s.\n", prev, Version)
	}
	return &app{cfg: cfg, log: log, session: session}, nil
}

func (a *app) Close() {
	if err := a.session.Close(); err != nil {
		a.log.Warn("closing session", zap.Error(err))
	}
}

// update applies f to the books and reports the outcome to the user.
func (a *app) update(f biashara.Update) subcommands.ExitStatus {
	if err := a.session.Update(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, biashara.ErrInvalid) || errors.Is(err, biashara.ErrNotFound) || errors.Is(err, biashara.ErrInsufficientStock) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run opens the books, calls f, and closes them.
func run(f func(a *app) subcommands.ExitStatus) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()
	return f(a)
}

// findItem returns the item referenced by id, SKU or name.
func findItem(s biashara.State, ref string) (biashara.InventoryItem, error) {
	ref = strings.TrimSpace(ref)
	if it, ok := s.Item(ref); ok {
		return it, nil
	}
	var found []biashara.InventoryItem
	for _, it := range s.Inventory {
		if strings.EqualFold(it.SKU, ref) || strings.EqualFold(it.Name, ref) {
			found = append(found, it)
		}
	}
	switch len(found) {
	case 0:
		return biashara.InventoryItem{}, fmt.Errorf("item %q: %w", ref, biashara.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return biashara.InventoryItem{}, fmt.Errorf("%q matches %d items, use the SKU or the id", ref, len(found))
	}
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// EnvTestingNow freezes the clock, in "2006-01-02 15:04:05" form.
const EnvTestingNow = "BMS_TESTING_NOW"

// Now is the current time used to stamp records.
// BMS_TESTING_NOW freezes it so that documentation examples are stable.
// A malformed value is rejected by loadConfig and ignored here.
func Now() time.Time {
	if t, ok, err := testingNow(); ok && err == nil {
		return t
	}
	return time.Now()
}

// testingNow parses BMS_TESTING_NOW, reporting whether it is set.
func testingNow() (time.Time, bool, error) {
	v := os.Getenv(EnvTestingNow)
	if v == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", v)
	if err != nil {
		return time.Time{}, true, fmt.Errorf("%s: %w", EnvTestingNow, err)
	}
	return t.UTC(), true, nil
}

// moneyFlag is a flag.Value holding an amount in shillings.
type moneyFlag struct {
	value biashara.Money
	set   bool
}

func (m *moneyFlag) String() string {
	if m == nil || !m.set {
		return ""
	}
	return m.value.Decimal().String()
}

func (m *moneyFlag) Set(s string) error {
	v, err := biashara.ParseMoney(s)
	if err != nil {
		return err
	}
	m.value, m.set = v, true
	return nil
}

// isSet reports whether the flag name was given on the command line.
func isSet(f *flag.FlagSet, name string) (set bool) {
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return
}

// findByID returns the record whose id starts with ref, ignoring case.
func findByID[T any](list []T, idOf func(T) string, what, ref string) (T, error) {
	var zero T
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return zero, fmt.Errorf("missing %s id", what)
	}
	var found []T
	for _, r := range list {
		if strings.HasPrefix(strings.ToLower(idOf(r)), ref) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return zero, fmt.Errorf("%s %q: %w", what, ref, biashara.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return zero, fmt.Errorf("%q matches %d %ss, give more of the id", ref, len(found), what)
	}
}
