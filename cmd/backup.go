package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/config"
	"github.com/etnz/biashara/logger"
	"github.com/etnz/biashara/vault"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type backupCmd struct {
	mail    bool
	timeout time.Duration
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "push a backup of the books to the vault" }
func (*backupCmd) Usage() string {
	return `bms backup [-mail] [-timeout <duration>]

  Pushes the exported books to the configured vault (BMS_VAULT: simulated,
  http or mongo) and prints the vault key of the backup. With -mail, prints a
  mailto link sharing the beginning of the backup instead.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.mail, "mail", false, "Print an e-mail share link instead of pushing to the vault")
	f.DurationVar(&c.timeout, "timeout", time.Minute, "Maximum duration of the upload")
}

func (c *backupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		var doc bytes.Buffer
		if err := biashara.Export(&doc, a.session.State()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.mail {
			fmt.Println(vault.MailtoLink(doc.Bytes()))
			return subcommands.ExitSuccess
		}

		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		v, closeVault, err := openVault(ctx, a.cfg.Vault, logger.Named(a.log, "vault"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer closeVault()

		fmt.Println("Syncing to vault...")
		name := "Biashara_Backup_" + Now().Format("2006-01-02")
		key, err := v.Push(ctx, name, doc.Bytes())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: backup failed: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Backup saved. Vault key: %s\n", key)
		return subcommands.ExitSuccess
	})
}

// openVault returns the configured vault and the function releasing it.
func openVault(ctx context.Context, cfg config.VaultConfig, log *zap.Logger) (vault.Vault, func(), error) {
	switch cfg.Kind {
	case config.VaultHTTP:
		return vault.NewHTTP(cfg.URL, log), func() {}, nil
	case config.VaultMongo:
		m, err := vault.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB, log)
		if err != nil {
			return nil, nil, err
		}
		return m, func() {
			if err := m.Close(context.Background()); err != nil {
				log.Warn("closing mongo vault", zap.Error(err))
			}
		}, nil
	default:
		return vault.NewSimulated(log), func() {}, nil
	}
}
