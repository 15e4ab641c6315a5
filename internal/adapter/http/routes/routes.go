package routes

import (
	_ "clinica_fisio/docs" // This will be auto-generated
	"clinica_fisio/internal/adapter/http/handlers"
	repository2 "clinica_fisio/internal/adapter/persistence/repository"
	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/infrastructure/config"
	"clinica_fisio/internal/infrastructure/database"
	"clinica_fisio/internal/infrastructure/payments"
	"clinica_fisio/internal/usecase"
	"clinica_fisio/internal/usecase/interfaces"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)

	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb, cfg.Tables.Appointments)
	planRepo := repository2.NewPlanDynamoRepository(ddb, cfg.Tables.Plans)
	sessionRepo := repository2.NewSessionDynamoRepository(ddb, cfg.Tables.Sessions)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	techniqueRepo := repository2.NewTechniqueDynamoRepository(ddb, cfg.Tables.Techniques)
	txRepo := repository2.NewTransactionDynamoRepository(ddb, repository2.TableNames{
		Appointments: cfg.Tables.Appointments,
		Plans:        cfg.Tables.Plans,
		Sessions:     cfg.Tables.Sessions,
		Payments:     cfg.Tables.Payments,
	})

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	clock := clinic.SystemClock
	h := handlerSet{
		appointments: handlers.NewAppointmentHandler(usecase.NewAppointmentUseCase(appointmentRepo, planRepo, txRepo, clock)),
		plans:        handlers.NewPlanHandler(usecase.NewPlanUseCase(planRepo, techniqueRepo, clock, cfg.Billing.FullPaymentDiscount())),
		sessions:     handlers.NewSessionHandler(usecase.NewSessionUseCase(sessionRepo, planRepo, appointmentRepo, txRepo, clock)),
		payments: handlers.NewPaymentHandler(usecase.NewPaymentUseCase(paymentRepo, planRepo, appointmentRepo, txRepo, paymentGateway, clock, usecase.PaymentSettings{
			GatewayMock:    cfg.Payments.GatewayMock,
			Sandbox:        cfg.Payments.Sandbox(),
			TestPayerEmail: cfg.Payments.TestPayerEmail,
		})),
		techniques: handlers.NewTechniqueHandler(usecase.NewTechniqueUseCase(techniqueRepo)),
	}
	log.Printf("[bootstrap] routes ready full_payment_discount=%s gateway_mock=%t sandbox=%t", cfg.Billing.FullPaymentDiscount(), cfg.Payments.GatewayMock, cfg.Payments.Sandbox())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClinicRoutes(v1, h)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
