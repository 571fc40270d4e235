package system

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/keyring"
	"github.com/julianstephens/eatforce/internal/storage"
)

// KeyringSetCmd stores the database connection string in the OS keyring
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	w := ctx.Stdout()
	if !storage.IsPostgresSpec(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := storage.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, storage.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		fmt.Fprintln(w, "⚠️  Warning: Connection string contains embedded credentials.")
		fmt.Fprintln(w, "   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return err
	}

	fmt.Fprintln(w, "✓ Connection string stored successfully in OS keyring")
	fmt.Fprintln(w, "  Use it with: eatforce --store keyring")
	return nil
}

// KeyringGetCmd prints the stored connection string with any password masked
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'eatforce keyring set' to store one")
		}
		return err
	}
	fmt.Fprintln(ctx.Stdout(), maskPassword(connStr))
	return nil
}

// KeyringDeleteCmd removes the connection string from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	fmt.Fprintln(ctx.Stdout(), "✓ Connection string deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	w := ctx.Stdout()
	if !keyring.IsAvailable() {
		fmt.Fprintln(w, "❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}

	fmt.Fprintln(w, "✓ OS keyring is available")
	if _, err := keyring.GetConnectionString(); err == nil {
		fmt.Fprintln(w, "✓ Connection string is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Fprintln(w, "ℹ No connection string stored in keyring")
	}
	return nil
}

func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return connStr
		}
		q := u.Query()
		if q.Get("password") != "" {
			q.Set("password", "xxxxx")
			u.RawQuery = q.Encode()
		}
		return u.Redacted()
	}

	parts := strings.Fields(connStr)
	for i, part := range parts {
		if strings.HasPrefix(strings.ToLower(part), "password=") {
			parts[i] = "password=xxxxx"
		}
	}
	return strings.Join(parts, " ")
}
