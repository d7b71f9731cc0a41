package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Auth Server")
	})

	api := e.Group("/api")

	// users
	api.POST("/createUser", h.User.CreateUser)
	api.POST("/authUser", h.User.AuthUser)
	api.POST("/getAllUsers", h.User.GetAllUsers)
	api.POST("/getUserById", h.User.GetUserByID)
	api.POST("/getUserByToken", h.User.GetUserByToken)

	// products
	api.POST("/createProduct", h.Product.CreateProduct)
	api.POST("/getAllProducts", h.Product.GetAllProducts)
	api.POST("/getProductByName", h.Product.GetProductByName)
	api.POST("/getProductByCategory", h.Product.GetProductByCategory)
	api.POST("/getProductByBrand", h.Product.GetProductByBrand)
	api.POST("/getProductByPriceRange", h.Product.GetProductByPriceRange)
	api.GET("/getAllBrands", h.Product.GetAllBrands)
	api.GET("/getAllCategories", h.Product.GetAllCategories)
	api.POST("/changeProductPrice", h.Product.ChangeProductPrice)
	api.POST("/changeProductBrand", h.Product.ChangeProductBrand)
	api.POST("/removeProduct", h.Product.RemoveProduct)

	// cart
	api.POST("/addToCart", h.Cart.AddToCart)
	api.POST("/removeFromCart", h.Cart.RemoveFromCart)
	api.POST("/getAllCart", h.Cart.GetAllCart)
	api.POST("/getCartItemOfUser", h.Cart.GetCartItemOfUser)

	// admin / upload
	api.POST("/authAdmin", h.Admin.AuthAdmin)
	api.POST("/uploadImage", h.Upload.UploadImage)
}
