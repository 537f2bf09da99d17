package routes

import (
	"net/http"

	"food-delivery-backend/controllers"
	"food-delivery-backend/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every handler group the router needs.
type Controllers struct {
	Foods        *controllers.FoodController
	Carts        *controllers.CartController
	Orders       *controllers.OrderController
	Reviews      *controllers.ReviewController
	Transactions *controllers.TransactionController
	Addresses    *controllers.AddressController
	Favorites    *controllers.FavoriteController
	Users        *controllers.UserController
}

// Register wires every endpoint under /api. Catalog reads are public;
// everything else requires a valid token, with admin endpoints additionally
// gated on the admin role.
func Register(r *gin.Engine, c Controllers, jwtSecret string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	auth := middleware.AuthMiddleware(jwtSecret)
	admin := middleware.AdminMiddleware()

	foods := api.Group("/foods")
	{
		foods.GET("", c.Foods.List)
		foods.GET("/top", c.Foods.Top)
		foods.GET("/categories", c.Foods.Categories)
		foods.GET("/:id", c.Foods.Get)
		foods.GET("/:id/reviews", c.Reviews.ListByFood)
		foods.POST("/:id/reviews", auth, c.Reviews.Create)
		foods.POST("", auth, admin, c.Foods.Create)
		foods.PUT("/:id", auth, admin, c.Foods.Update)
		foods.DELETE("/:id", auth, admin, c.Foods.Delete)
	}

	reviews := api.Group("/reviews", auth)
	{
		reviews.PUT("/:reviewId", c.Reviews.Update)
		reviews.DELETE("/:reviewId", c.Reviews.Delete)
	}

	cart := api.Group("/cart", auth)
	{
		cart.GET("", c.Carts.Get)
		cart.POST("", c.Carts.AddItem)
		cart.DELETE("/:foodId", c.Carts.RemoveItem)
		cart.DELETE("", c.Carts.Clear)
	}

	favorites := api.Group("/favorites", auth)
	{
		favorites.GET("", c.Favorites.List)
		favorites.POST("/:foodId", c.Favorites.Add)
		favorites.DELETE("/:foodId", c.Favorites.Remove)
	}

	orders := api.Group("/orders", auth)
	{
		orders.POST("", c.Orders.Place)
		orders.GET("/myorders", c.Orders.ListMine)
		orders.DELETE("/:id", c.Orders.Delete)

		orders.GET("", admin, c.Orders.ListAll)
		orders.GET("/status/:status", admin, c.Orders.FilterByStatus)
		orders.PUT("/:id/status", admin, c.Orders.UpdateStatus)
		orders.GET("/analytics/data", admin, c.Orders.Analytics)
	}

	users := api.Group("/users", auth)
	{
		users.GET("/profile", c.Users.Profile)
		users.PUT("/profile", c.Users.UpdateProfile)
		users.GET("/addresses", c.Addresses.List)
		users.POST("/addresses", c.Addresses.Add)
		users.PUT("/addresses/:id", c.Addresses.Update)
		users.DELETE("/addresses/:id", c.Addresses.Delete)
		users.PATCH("/addresses/:id/default", c.Addresses.SetDefault)
	}

	transactions := api.Group("/transactions", auth)
	{
		transactions.POST("", middleware.RateLimitMiddleware(), c.Transactions.Charge)
		transactions.GET("", c.Transactions.History)
	}
}
