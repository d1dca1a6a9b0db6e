package app

import (
	"os"

	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-giftstore-api/internal/address"
	"go-giftstore-api/internal/area"
	"go-giftstore-api/internal/auth"
	"go-giftstore-api/internal/cart"
	"go-giftstore-api/internal/catalog"
	"go-giftstore-api/internal/category"
	"go-giftstore-api/internal/cloudinary"
	"go-giftstore-api/internal/email"
	"go-giftstore-api/internal/middleware"
	"go-giftstore-api/internal/offer"
	"go-giftstore-api/internal/order"
	"go-giftstore-api/internal/outbox"
	"go-giftstore-api/internal/product"
	"go-giftstore-api/internal/review"
	"go-giftstore-api/internal/whatsapp"
)

type registryDeps struct {
	Firestore  *firestore.Client
	Redis      *redis.Client
	Auth       *fbauth.Client
	Cloudinary cloudinary.Service
	Logger     *zap.Logger
}

func registerModules(router *gin.Engine, deps registryDeps) {
	// --- Repositories ---
	authRepo := auth.NewRepository(deps.Firestore)
	categoryRepo := category.NewRepository(deps.Firestore)
	productRepo := product.NewRepository(deps.Firestore)
	reviewRepo := review.NewRepository(deps.Firestore)
	areaRepo := area.NewRepository(deps.Firestore)
	addressRepo := address.NewRepository(deps.Firestore)
	offerRepo := offer.NewRepository(deps.Firestore)
	orderRepo := order.NewRepository(deps.Firestore)
	outboxRepo := outbox.NewRepository(deps.Firestore)

	// --- Services ---
	authService := auth.NewService(authRepo)
	categoryService := category.NewService(categoryRepo)
	areaService := area.NewService(areaRepo)
	offerService := offer.NewService(offerRepo)

	productService := product.NewService(product.Deps{
		Repo:       productRepo,
		Cloudinary: deps.Cloudinary,
		Filter:     catalog.FilterQuery,
		Logger:     deps.Logger,
	})

	reviewService := review.NewService(review.Deps{
		Repo:     reviewRepo,
		Products: productRepo,
		Logger:   deps.Logger,
	})

	cartService := cart.NewService(cart.Deps{
		Local:    cart.NewLocalStore(deps.Redis),
		Remote:   cart.NewRemoteStore(deps.Firestore),
		Products: productRepo,
		Logger:   deps.Logger,
	})

	addressService := address.NewService(address.Deps{
		Repo:  addressRepo,
		Areas: areaService,
	})

	whatsappService := whatsapp.NewService(os.Getenv("WHATSAPP_PHONE"), os.Getenv("STORE_NAME"))

	orderService := order.NewService(order.Deps{
		Repo:      orderRepo,
		Cart:      cartService,
		Addresses: addressService,
		WhatsApp:  whatsappService,
		Outbox:    outboxRepo,
		Email:     email.NewResendServiceFromEnv(),
		Logger:    deps.Logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	categoryHandler := category.NewHandler(categoryService)
	productHandler := product.NewHandler(productService)
	reviewHandler := review.NewHandler(reviewService)
	cartHandler := cart.NewHandler(cartService)
	areaHandler := area.NewHandler(areaService)
	addressHandler := address.NewHandler(addressService)
	offerHandler := offer.NewHandler(offerService)
	orderHandler := order.NewHandler(orderService)

	// --- Routes ---
	authOptional := middleware.OptionalFirebaseAuth(deps.Auth)
	authRequired := middleware.RequireFirebaseAuth(deps.Auth)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		category.RegisterRoutes(api, categoryHandler)
		product.RegisterRoutes(api, productHandler)
		review.RegisterRoutes(api, reviewHandler, authOptional)
		cart.RegisterRoutes(api, cartHandler, authOptional)
		area.RegisterRoutes(api, areaHandler)
		address.RegisterRoutes(api, addressHandler, authRequired)
		offer.RegisterRoutes(api, offerHandler)
		order.RegisterRoutes(api, orderHandler, deps.Redis, authOptional, authRequired)
	}
}
