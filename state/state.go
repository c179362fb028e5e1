package state

import (
	"context"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/infinitybotlist/eureka/genconfig"
	"github.com/infinitybotlist/eureka/snippets"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"swallowtail/config"
	"swallowtail/registrar"
	"swallowtail/rest"
)

var (
	Logger    *zap.Logger
	Client    *rest.Client
	Registrar *registrar.Registrar
	Context   = context.Background()
	Validator = validator.New()

	Config *config.Config
)

func Setup() {
	genconfig.GenConfig(config.Config{})

	cfg, err := os.ReadFile("config.yaml")

	if err != nil {
		panic(err)
	}

	err = yaml.Unmarshal(cfg, &Config)

	if err != nil {
		panic(err)
	}

	err = Validator.Struct(Config)

	if err != nil {
		panic("configError: " + err.Error())
	}

	Logger = snippets.CreateZap()

	Client = rest.New(Config.DiscordAuth.Token, Config.DiscordAuth.ApplicationID, Logger)

	if Config.Meta.APIUrl != "" {
		Client.SetBaseURL(Config.Meta.APIUrl)
	}

	Registrar = &registrar.Registrar{
		Client:   Client,
		Logger:   Logger,
		CacheDir: Config.Meta.CacheDir,
	}
}
