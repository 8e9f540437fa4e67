package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/maybe-hello-world/passgen-embedded/internal/application"
	"github.com/maybe-hello-world/passgen-embedded/internal/services/credential"
	"github.com/maybe-hello-world/passgen-embedded/pkg/encode"
)

var ErrRunUnknownFormat = errors.New("unknown output format")

type credentialJSON struct {
	Password string          `json:"password"`
	Seed     uint64          `json:"seed"`
	Entropy  decimal.Decimal `json:"entropy"`
	Hash     string          `json:"hash,omitempty"`
}

// Print issues the configured batch of credentials and writes them to w,
// one credential per line
func Print(ctx context.Context, app *application.App, w io.Writer) error {
	cfg := app.Cfg
	creds, err := app.CredentialService.IssueBatch(ctx, cfg.Length, cfg.Seed, cfg.Count, cfg.Hash)
	if err != nil {
		log.Error().Err(err).Int("length", cfg.Length).Int("count", cfg.Count).Msg("Failed to issue credentials")
		return err
	}
	log.Debug().Bool("pinned", cfg.SeedPinned).Int("count", len(creds)).Msg("Writing credentials")
	for _, cred := range creds {
		if err := write(w, cfg.Format, cred); err != nil {
			return err
		}
	}
	return nil
}

func write(w io.Writer, format string, cred credential.Credential) error {
	switch format {
	case "text":
		if cred.Hash != "" {
			_, err := fmt.Fprintf(w, "%s\t%s\n", cred.Password, cred.Hash)
			return err
		}
		_, err := fmt.Fprintln(w, cred.Password)
		return err
	case "json":
		return encode.WriteJSONLine(w, credentialJSON{
			Password: cred.Password,
			Seed:     cred.Seed,
			Entropy:  cred.Entropy,
			Hash:     cred.Hash,
		})
	default:
		return ErrRunUnknownFormat
	}
}
