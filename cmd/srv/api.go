package main

import (
	"log"
	"net/http"

	"github.com/collabflow/backend/internal/middleware"
	"github.com/collabflow/backend/pkg/router"
	"github.com/rs/cors"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	if err := server.loadConfig(cctx); err != nil {
		return err
	}

	server.loadLogger()
	server.loadDatabase()
	server.loadRepos()
	server.loadDomains()
	server.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: c.Handler(s.router.Handler()),
	}

	log.Printf("Starting server on address: %s\n", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/signup", s.authDomain.SignUp)
		router.POST(authRouter, "/login", s.authDomain.Login)
		router.POST(authRouter, "/refresh", s.authDomain.Refresh)
	}

	// These following APIs need authentication with Access Token.
	authVerifiedRouter := s.router.Branch()
	authVerifiedRouter.Before(middleware.Authenticate())
	{
		// User API
		router.GET(authVerifiedRouter, "/getMe", s.userDomain.GetMe)
		router.GET(authVerifiedRouter, "/getUser", s.userDomain.GetUser)
		router.GET(authVerifiedRouter, "/getUsers", s.userDomain.GetUsers)
		router.POST(authVerifiedRouter, "/updateUser", s.userDomain.Update)
		router.POST(authVerifiedRouter, "/deleteUser", s.userDomain.Delete)

		// Team API
		router.POST(authVerifiedRouter, "/createTeam", s.teamDomain.Create)
		router.GET(authVerifiedRouter, "/getTeam", s.teamDomain.Get)
		router.GET(authVerifiedRouter, "/getTeams", s.teamDomain.GetList)
		router.POST(authVerifiedRouter, "/updateTeamByID", s.teamDomain.UpdateByID)
		router.POST(authVerifiedRouter, "/deleteTeamByID", s.teamDomain.DeleteByID)
		router.POST(authVerifiedRouter, "/addTeamMember", s.teamDomain.AddMember)
		router.POST(authVerifiedRouter, "/removeTeamMember", s.teamDomain.RemoveMember)
		router.GET(authVerifiedRouter, "/getTeamMembers", s.teamDomain.GetMembers)

		// Initiative API
		router.POST(authVerifiedRouter, "/createInitiative", s.initiativeDomain.Create)
		router.GET(authVerifiedRouter, "/getInitiative", s.initiativeDomain.Get)
		router.GET(authVerifiedRouter, "/getInitiatives", s.initiativeDomain.GetList)
		router.POST(authVerifiedRouter, "/updateInitiativeByID", s.initiativeDomain.UpdateByID)
		router.POST(authVerifiedRouter, "/deleteInitiativeByID", s.initiativeDomain.DeleteByID)

		// Project API
		router.POST(authVerifiedRouter, "/createProject", s.projectDomain.Create)
		router.GET(authVerifiedRouter, "/getProject", s.projectDomain.Get)
		router.GET(authVerifiedRouter, "/getProjects", s.projectDomain.GetList)
		router.POST(authVerifiedRouter, "/updateProjectByID", s.projectDomain.UpdateByID)
		router.POST(authVerifiedRouter, "/deleteProjectByID", s.projectDomain.DeleteByID)

		// Statistic API
		router.GET(authVerifiedRouter, "/getUserProductivity", s.statisticDomain.GetUserProductivity)
	}
}
