package routes

import (
	"log"
	"os"
	"strconv"

	_ "nexupay/docs" // This will be auto-generated
	"nexupay/internal/adapter/http/handlers"
	repository2 "nexupay/internal/adapter/persistence/repository"
	"nexupay/internal/domain/entities"
	"nexupay/internal/infrastructure/cache"
	"nexupay/internal/infrastructure/crm"
	"nexupay/internal/infrastructure/database"
	"nexupay/internal/infrastructure/metrics"
	"nexupay/internal/infrastructure/payments"
	"nexupay/internal/usecase"
	"nexupay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	m := metrics.Registry("nexupay")

	debtorRepo := repository2.NewDebtorDynamoRepository(ddb)
	debtRepo := repository2.NewDebtDynamoRepository(ddb)

	facade := usecase.NewCRMFacade(buildCRMAdapters(m)).Instrument(m)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var idempotency interfaces.IIdempotencyStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		idempotency = cache.New(cache.Config{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		})
	} else {
		log.Printf("REDIS_ADDR not set; webhook idempotency disabled")
	}

	debtorUseCase := usecase.NewDebtorUseCase(debtorRepo, debtRepo, facade)
	notificationUseCase := usecase.NewPaymentNotificationUseCase(debtorRepo, debtRepo, paymentGateway, idempotency, facade, m)

	debtorHandler := handlers.NewDebtorHandler(debtorUseCase)
	crmHandler := handlers.NewCRMHandler(facade)
	webhookHandler := handlers.NewWebhookHandler(notificationUseCase)

	// Rotas publicas
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlatformRoutes(v1, debtorHandler, webhookHandler)
	addCRMRoutes(v1, crmHandler)
}

// buildCRMAdapters registers every vendor adapter. Adapters without
// credentials still register; they just report unconfigured and the facade
// skips them during detection.
func buildCRMAdapters(m *metrics.Metrics) map[entities.CRMType]interfaces.ICRMAdapter {
	return map[entities.CRMType]interfaces.ICRMAdapter{
		entities.CRMSalesforce: crm.NewSalesforceAdapter(crm.SalesforceConfig{
			AccessToken: os.Getenv("SALESFORCE_ACCESS_TOKEN"),
			InstanceURL: os.Getenv("SALESFORCE_INSTANCE_URL"),
		}, m),
		entities.CRMHubSpot: crm.NewHubSpotAdapter(crm.HubSpotConfig{
			AccessToken: os.Getenv("HUBSPOT_ACCESS_TOKEN"),
			BaseURL:     os.Getenv("HUBSPOT_BASE_URL"),
		}, m),
		entities.CRMZoho: crm.NewZohoAdapter(crm.ZohoConfig{
			AccessToken: os.Getenv("ZOHO_ACCESS_TOKEN"),
			APIDomain:   os.Getenv("ZOHO_API_DOMAIN"),
		}, m),
		entities.CRMPipedrive: crm.NewPipedriveAdapter(crm.PipedriveConfig{
			APIToken: os.Getenv("PIPEDRIVE_API_TOKEN"),
			BaseURL:  os.Getenv("PIPEDRIVE_BASE_URL"),
		}, m),
		entities.CRMUpnify: crm.NewUpnifyAdapter(crm.UpnifyConfig{
			AccessToken: os.Getenv("UPNIFY_ACCESS_TOKEN"),
			BaseURL:     os.Getenv("UPNIFY_BASE_URL"),
		}, m),
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
