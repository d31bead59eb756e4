package routes

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"academy_payments/internal/adapter/http/handlers"
	"academy_payments/internal/adapter/persistence/repository"
	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/cache"
	"academy_payments/internal/infrastructure/database"
	"academy_payments/internal/infrastructure/events"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/infrastructure/messaging"
	"academy_payments/internal/infrastructure/payments"
	"academy_payments/internal/infrastructure/queue"
	"academy_payments/internal/usecase"
	"academy_payments/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// app holds the wired handlers plus the resources that need closing.
type app struct {
	paymentHandler  *handlers.PaymentHandler
	callbackHandler *handlers.CallbackHandler
	emailHandler    *handlers.EmailHandler
	activityHandler *handlers.ActivityHandler
	sessionHandler  *handlers.SessionHandler
	sessions        usecase.ISessionUseCase

	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApp(ctx context.Context) (*app, error) {
	a := &app{}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	activityRepo := repository.NewActivityDynamoRepository(ddb)
	enrollmentRepo := repository.NewEnrollmentDynamoRepository(ddb)

	rdb := cache.ConnectRedis(ctx)
	if rdb != nil {
		a.closers = append(a.closers, func() { _ = rdb.Close() })
	}

	var bus interfaces.IEventBus = events.NewMemoryBus()
	var sessionStore interfaces.ISessionStore = cache.NewMemorySessionStore()
	if rdb != nil {
		bus = events.NewRedisBus(rdb)
		sessionStore = cache.NewRedisSessionStore(rdb)
	}

	var sender interfaces.IEmailSender = messaging.LogSender{}
	if resendSender, err := messaging.NewResendSender(os.Getenv("RESEND_API_KEY"), os.Getenv("EMAIL_FROM")); err != nil {
		logger.Warn("[email][setup] Resend not configured, emails are only logged", zap.Error(err))
	} else {
		sender = resendSender
	}

	// The email usecase needs the notifier and the notifier delivers through
	// the email usecase; deliver closes over the variable assigned below.
	var emailUseCase *usecase.EmailUseCase
	deliver := func(ctx context.Context, t entities.EmailType, data map[string]any) error {
		_, err := emailUseCase.Send(ctx, t, data)
		return err
	}
	notifier := buildNotifier(a, rdb, deliver)
	opsEmail := os.Getenv("OPS_EMAIL")
	emailUseCase = usecase.NewEmailUseCase(sender, notifier, opsEmail)

	var mobile interfaces.IMobileMoneyGateway
	daraja, err := payments.NewDarajaGateway(payments.DarajaConfig{
		Environment:    os.Getenv("MPESA_ENVIRONMENT"),
		BaseURL:        os.Getenv("MPESA_BASE_URL"),
		ConsumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
		ShortCode:      os.Getenv("MPESA_SHORTCODE"),
		PassKey:        os.Getenv("MPESA_PASSKEY"),
		CallbackURL:    os.Getenv("MPESA_CALLBACK_URL"),
		Timeout:        durationEnv("MPESA_TIMEOUT", 30*time.Second),
	})
	if err != nil {
		logger.Warn("[mpesa][setup] gateway not configured", zap.Error(err))
	} else {
		mobile = daraja
	}

	var redirect interfaces.IRedirectGateway
	mp, err := payments.NewMercadoPagoGateway(payments.MercadoPagoConfig{
		AccessToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		NotificationURL: os.Getenv("MERCADOPAGO_NOTIFICATION_URL"),
		SuccessURL:      os.Getenv("CHECKOUT_SUCCESS_URL"),
		FailureURL:      os.Getenv("CHECKOUT_FAILURE_URL"),
		PendingURL:      os.Getenv("CHECKOUT_PENDING_URL"),
		Sandbox:         boolEnv("MERCADOPAGO_SANDBOX"),
	})
	if err != nil {
		logger.Warn("[checkout][setup] gateway not configured", zap.Error(err))
	} else {
		redirect = mp
	}

	recorder := usecase.NewStatusRecorder(paymentRepo, enrollmentRepo, notifier, bus)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, mobile, redirect, notifier, recorder, usecase.PaymentConfig{
		PaybillNumber:      os.Getenv("PAYBILL_NUMBER"),
		PaybillAccountName: os.Getenv("PAYBILL_ACCOUNT_NAME"),
		OpsEmail:           opsEmail,
	})
	statusUseCase := usecase.NewPaymentStatusUseCase(paymentRepo, mobile, bus, recorder)
	poller := usecase.NewStatusPoller(statusUseCase,
		durationEnv("POLL_INTERVAL", usecase.DefaultPollInterval),
		intEnv("POLL_MAX_ATTEMPTS", usecase.DefaultPollMaxAttempts))
	callbackUseCase := usecase.NewCallbackUseCase(paymentRepo, redirect, activityRepo, recorder, usecase.CallbackSecrets{
		MpesaCallbackSecret:   os.Getenv("MPESA_CALLBACK_SECRET"),
		CheckoutWebhookSecret: os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),
	})
	activityUseCase := usecase.NewActivityUseCase(activityRepo, notifier)
	sessionUseCase := usecase.NewSessionUseCase(sessionStore, durationEnv("SESSION_TTL", usecase.DefaultSessionTTL))

	a.paymentHandler = handlers.NewPaymentHandler(paymentUseCase, statusUseCase, poller)
	a.callbackHandler = handlers.NewCallbackHandler(callbackUseCase)
	a.emailHandler = handlers.NewEmailHandler(emailUseCase)
	a.activityHandler = handlers.NewActivityHandler(activityUseCase)
	a.sessionHandler = handlers.NewSessionHandler(sessionUseCase)
	a.sessions = sessionUseCase
	return a, nil
}

// buildNotifier queues emails on asynq when Redis is available and starts
// the worker in-process; otherwise emails are delivered inline.
func buildNotifier(a *app, rdb *redis.Client, deliver queue.DeliverFunc) interfaces.INotifier {
	if rdb == nil {
		return queue.NewInlineNotifier(deliver)
	}
	opts, _ := cache.RedisOptionsFromEnv()
	redisOpt := asynq.RedisClientOpt{Addr: opts.Addr, Password: opts.Password, DB: opts.DB}

	client := asynq.NewClient(redisOpt)
	a.closers = append(a.closers, func() { _ = client.Close() })

	if boolEnvDefault("EMAIL_WORKER_ENABLED", true) {
		srv, mux := queue.NewEmailWorker(redisOpt, intEnv("EMAIL_WORKER_CONCURRENCY", 10), deliver)
		if err := srv.Start(mux); err != nil {
			logger.Error("[email][worker] failed to start", zap.Error(err))
		} else {
			logger.Info("[email][worker] started")
			a.closers = append(a.closers, srv.Shutdown)
		}
	}
	return queue.NewAsynqNotifier(client)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// durationEnv accepts Go durations ("3s") or whole seconds ("3").
func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	logger.Warn("[config] invalid duration, using default", zap.String("key", key), zap.String("value", raw))
	return def
}

func boolEnv(key string) bool {
	return boolEnvDefault(key, false)
}

func boolEnvDefault(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func rateLimitPerMinute() int {
	return intEnv("RATE_LIMIT_PER_MINUTE", defaultRateLimitPerMinute)
}
