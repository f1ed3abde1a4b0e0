package main

import (
	"sixwings/internal/config"
	"sixwings/internal/logger"
	"sixwings/internal/mongo"
	"sixwings/internal/mysql"
	"sixwings/internal/routing"
	"sixwings/pkg/middleware"
	"sixwings/pkg/token"

	"github.com/gorilla/mux"
)

func main() {
	config.Load() // load env var from .env

	db := mysql.LoadDB()
	defer db.Close()

	mongoDB := mongo.LoadDB()

	logger := logger.Load()

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic)
	api.Use(middleware.CheckJWT(token.NewService(token.NewMySQLRepo(db))))

	routing.InitRoutes(api, db, mongoDB, logger)
	routing.StartServer(r)
}
