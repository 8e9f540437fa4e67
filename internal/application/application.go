package application

import (
	"github.com/maybe-hello-world/passgen-embedded/cmd/passgen/config"
	"github.com/maybe-hello-world/passgen-embedded/internal/services/credential"
)

type App struct {
	CredentialService credential.Service
	Cfg               config.Config
}

func NewApp(cfg config.Config, credentialService credential.Service) *App {
	return &App{
		Cfg:               cfg,
		CredentialService: credentialService,
	}
}
