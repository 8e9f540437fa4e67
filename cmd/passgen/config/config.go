package config

type Config struct {
	Length     int    `env:"PASSGEN_LENGTH" envDefault:"16" validate:"min=0,max=4096"`
	SeedRaw    string `env:"PASSGEN_SEED"`
	Seed       uint64
	SeedPinned bool
	Count      int    `env:"PASSGEN_COUNT" envDefault:"1" validate:"min=1,max=1000"`
	Format     string `env:"PASSGEN_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Hash       bool   `env:"PASSGEN_HASH"`
	HashCost   int    `env:"PASSGEN_HASH_COST" envDefault:"10" validate:"min=4,max=31"`
	LogLevel   string `validate:"notblank"`
	LogOutput  string `validate:"oneof=console stdout json"`
}
