package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"sixwings/internal/config"
	"sixwings/pkg/cart"
	"sixwings/pkg/catalog"
	"sixwings/pkg/handlers"
	"sixwings/pkg/order"
	"sixwings/pkg/token"
	"sixwings/pkg/user"
)

func InitRoutes(api *mux.Router, db *sql.DB, mongoDB *mongo.Database, logger *slog.Logger) {

	userService := user.NewService(user.NewMySQLRepo(db))
	tokenService := token.NewService(token.NewMySQLRepo(db))
	authHandler := handlers.NewAuthHandler(userService, tokenService, logger)

	catalogService := catalog.NewService(catalog.NewMongoRepo(mongoDB))
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)

	cartService := cart.NewService(cart.NewMongoRepo(mongoDB), catalogService)
	cartHandler := handlers.NewCartHandler(cartService, logger)

	orderService := order.NewService(order.NewMongoRepo(mongoDB), cartService, userService)
	orderHandler := handlers.NewOrderHandler(orderService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := api.PathPrefix("").Subrouter()
	catalogRouter := api.PathPrefix("").Subrouter()
	cartRouter := api.PathPrefix("/carrinho").Subrouter()
	orderRouter := api.PathPrefix("").Subrouter()

	/* auth routers */
	authRouter.HandleFunc("/register", authHandler.Register).Methods("POST").Name("register")
	authRouter.HandleFunc("/login", authHandler.Login).Methods("POST").Name("login")
	authRouter.HandleFunc("/refresh-token", authHandler.RefreshToken).Methods("POST").Name("refresh")
	authRouter.HandleFunc("/validate", authHandler.Validate).Methods("GET")
	authRouter.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	/* catalog routers */
	catalogRouter.HandleFunc("/categorias", catalogHandler.GetCategories).Methods("GET")
	catalogRouter.HandleFunc("/produtos/{category:[a-z-]+}", catalogHandler.GetProductsByCategory).Methods("GET")
	catalogRouter.HandleFunc("/produtos/{category:[a-z-]+}/{subcategory:[a-z-]+}", catalogHandler.GetProductsBySubcategory).Methods("GET")
	catalogRouter.HandleFunc("/produto/{product_id:[a-zA-Z0-9]+}", catalogHandler.GetProductByID).Methods("GET")

	/* cart routers */
	cartRouter.HandleFunc("", cartHandler.GetCart).Methods("GET")
	cartRouter.HandleFunc("", cartHandler.AddItem).Methods("POST")
	cartRouter.HandleFunc("", cartHandler.UpdateItem).Methods("PUT")
	cartRouter.HandleFunc("", cartHandler.RemoveItem).Methods("DELETE")

	/* order routers */
	orderRouter.HandleFunc("/checkout", orderHandler.Checkout).Methods("POST")
	orderRouter.HandleFunc("/pedidos", orderHandler.GetOrders).Methods("GET")
}

func StartServer(r *mux.Router) {
	addr := config.HTTPAddr()
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
