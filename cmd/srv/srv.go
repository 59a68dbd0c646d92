package main

import (
	"net/http"

	"github.com/collabflow/backend/config"
	"github.com/collabflow/backend/internal/domain"
	"github.com/collabflow/backend/internal/repository"
	"github.com/collabflow/backend/pkg/logger"
	"github.com/collabflow/backend/pkg/router"
	"github.com/urfave/cli/v2"

	gormlogger "gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	teamRepo         repository.TeamRepository
	initiativeRepo   repository.InitiativeRepository
	projectRepo      repository.ProjectRepository

	authDomain       domain.AuthDomain
	userDomain       domain.UserDomain
	teamDomain       domain.TeamDomain
	initiativeDomain domain.InitiativeDomain
	projectDomain    domain.ProjectDomain
	statisticDomain  domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger()
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(databaseLogLevel(s.configs.Database.LogLevel)),
	})
	if err != nil {
		panic(err)
	}
}

func databaseLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
	s.teamRepo = repository.NewTeamRepository()
	s.initiativeRepo = repository.NewInitiativeRepository()
	s.projectRepo = repository.NewProjectRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.teamDomain = domain.NewTeamDomain(s.teamRepo, s.userRepo)
	s.initiativeDomain = domain.NewInitiativeDomain(s.initiativeRepo, s.userRepo)
	s.projectDomain = domain.NewProjectDomain(s.projectRepo, s.teamRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.initiativeRepo, s.projectRepo, s.teamRepo)
}
