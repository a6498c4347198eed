package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/reminder-return-api/internal/config"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/vfg2006/reminder-return-api/internal/usecases/authenticating"
	"github.com/vfg2006/reminder-return-api/pkg/log"
)

// Emite um token de acesso assinado com a SECRET_KEY, para integrações e testes manuais
func main() {
	flags := pflag.NewFlagSet("token", pflag.ExitOnError)
	flags.Int("user-id", 0, "ID do usuário no sistema de login")
	flags.Int("role", 3, "perfil: 1 administrador, 2 supervisor, 3 cliente")
	flags.String("name", "", "nome do usuário")
	flags.String("email", "", "e-mail do usuário")
	flags.Duration("ttl", 24*time.Hour, "validade do token")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		logrus.WithError(err).Fatal("Erro ao ler parâmetros")
	}

	claims := domain.Claims{
		UserID:     v.GetInt("user-id"),
		UserRoleID: v.GetInt("role"),
		UserName:   v.GetString("name"),
		UserEmail:  v.GetString("email"),
	}

	token, err := authenticating.NewService(cfg).GenerateToken(claims, v.GetDuration("ttl"))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	fmt.Println(token)
}
