package credential

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/maybe-hello-world/passgen-embedded/pkg/encode"
	"github.com/maybe-hello-world/passgen-embedded/pkg/passgen"
	"github.com/maybe-hello-world/passgen-embedded/pkg/security/hasher"
)

var ErrIssueInvalidCount = errors.New("number of credentials to issue must be positive")
var ErrIssueNoHasher = errors.New("hashing requested but no hasher is configured")

// EntropyPlaces is the precision entropy estimates are rounded to
const EntropyPlaces = 2

type Credential struct {
	Password string
	Seed     uint64
	Entropy  decimal.Decimal
	Hash     string
}

var Blank Credential // nolint: gochecknoglobals

type Service struct {
	generator passgen.Generator
	hasher    hasher.PasswordHasher
}

// New configures the service. hasher may be nil when credentials are never hashed
func New(generator passgen.Generator, hasher hasher.PasswordHasher) Service {
	return Service{
		generator: generator,
		hasher:    hasher,
	}
}

// Issue generates a password of given length from the seed.
// When withHash is set, the password is also hashed with the configured hasher,
// so that the hash can be stored in place of the plaintext
func (s Service) Issue(ctx context.Context, length int, seed uint64, withHash bool) (Credential, error) {
	if withHash && s.hasher == nil {
		return Blank, ErrIssueNoHasher
	}
	password, err := s.generator.String(length, seed)
	if err != nil {
		log.Debug().Err(err).Int("length", length).Msg("Unable to generate password")
		return Blank, err
	}
	cred := Credential{
		Password: password,
		Seed:     seed,
		Entropy:  encode.FloatToDecimal(s.generator.Charset().Entropy(length), EntropyPlaces),
	}
	if withHash {
		hashed, err := s.hasher.Hash(password)
		if err != nil {
			log.Error().Err(err).Int("length", length).Msg("Unable to hash password")
			return Blank, err
		}
		cred.Hash = hashed
	}
	return cred, nil
}

// IssueBatch issues count credentials with consecutive seeds starting at seed.
// Seeds wrap around at the end of the uint64 range.
// The batch is aborted between items once the context is done
func (s Service) IssueBatch(
	ctx context.Context,
	length int,
	seed uint64,
	count int,
	withHash bool,
) ([]Credential, error) {
	if count <= 0 {
		return nil, ErrIssueInvalidCount
	}
	creds := make([]Credential, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("issued", len(creds)).Int("count", count).Msg("Batch interrupted")
			return nil, err
		}
		cred, err := s.Issue(ctx, length, seed+uint64(i), withHash)
		if err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}
	log.Debug().Int("count", count).Int("length", length).Msg("Issued credentials")
	return creds, nil
}
