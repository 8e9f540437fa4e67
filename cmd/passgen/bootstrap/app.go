package bootstrap

import (
	"github.com/rs/zerolog/log"

	"github.com/maybe-hello-world/passgen-embedded/cmd/passgen/config"
	"github.com/maybe-hello-world/passgen-embedded/internal/application"
	"github.com/maybe-hello-world/passgen-embedded/internal/services/credential"
	"github.com/maybe-hello-world/passgen-embedded/pkg/passgen"
	"github.com/maybe-hello-world/passgen-embedded/pkg/security/hasher"
	"github.com/maybe-hello-world/passgen-embedded/pkg/security/hasher/bcrypt"
)

func App(cfg config.Config) (*application.App, error) {
	var passwordHasher hasher.PasswordHasher
	if cfg.Hash {
		bcryptHasher, err := bcrypt.New(cfg.HashCost)
		if err != nil {
			log.Error().Err(err).Int("cost", cfg.HashCost).Msg("Unable to configure password hasher")
			return nil, err
		}
		passwordHasher = bcryptHasher
	}

	app := application.NewApp(
		cfg,
		credential.New(passgen.New(passgen.Default), passwordHasher),
	)
	return app, nil
}
