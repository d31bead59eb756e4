package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	darajaSandboxURL    = "https://sandbox.safaricom.co.ke"
	darajaProductionURL = "https://api.safaricom.co.ke"

	darajaTimestampLayout = "20060102150405"
	// Returned by the STK query while the payer has not answered yet.
	darajaStillProcessingCode = "500.001.1001"
)

var ErrMissingDarajaCredentials = errors.New("missing MPESA_CONSUMER_KEY/MPESA_CONSUMER_SECRET")

type DarajaConfig struct {
	Environment    string
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	PassKey        string
	CallbackURL    string
	Timeout        time.Duration
}

// DarajaGateway talks to Safaricom's Daraja API: OAuth, STK push and STK
// query. Tokens are cached until shortly before they expire.
type DarajaGateway struct {
	cfg      DarajaConfig
	http     *http.Client
	now      func() time.Time
	mockMode bool

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

var _ interfaces.IMobileMoneyGateway = (*DarajaGateway)(nil)

func NewDarajaGateway(cfg DarajaConfig) (*DarajaGateway, error) {
	if IsMockEnabled("MPESA_MOCK") {
		logger.Info("[mpesa][gateway] mock mode enabled")
		return &DarajaGateway{cfg: cfg, now: time.Now, mockMode: true}, nil
	}
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		logger.Warn("[mpesa][gateway] missing consumer credentials")
		return nil, ErrMissingDarajaCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = darajaSandboxURL
		if strings.EqualFold(cfg.Environment, "production") {
			cfg.BaseURL = darajaProductionURL
		}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	logger.Info("[mpesa][gateway] Daraja client initialized", zap.String("base_url", cfg.BaseURL), zap.String("short_code", cfg.ShortCode))
	return &DarajaGateway{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}, now: time.Now}, nil
}

type darajaError struct {
	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

type stkPushBody struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushReply struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type stkQueryBody struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryReply struct {
	ResponseCode        string      `json:"ResponseCode"`
	ResponseDescription string      `json:"ResponseDescription"`
	CheckoutRequestID   string      `json:"CheckoutRequestID"`
	ResultCode          json.Number `json:"ResultCode"`
	ResultDesc          string      `json:"ResultDesc"`
}

func (g *DarajaGateway) InitiateSTKPush(ctx context.Context, req interfaces.STKPushRequest) (interfaces.STKPushResponse, error) {
	if g.mockMode {
		id := "ws_CO_MOCK_" + req.TrackingID
		logger.Info("[mpesa][gateway] mock stk push", zap.String("tracking_id", req.TrackingID), zap.String("checkout_request_id", id))
		return interfaces.STKPushResponse{
			MerchantRequestID: "mock-" + req.TrackingID,
			CheckoutRequestID: id,
			ResponseCode:      "0",
			CustomerMessage:   "Success. Request accepted for processing",
		}, nil
	}

	// Daraja only accepts whole shillings.
	amount := req.Amount.Ceil().IntPart()
	ts, password := g.password()
	body := stkPushBody{
		BusinessShortCode: g.cfg.ShortCode,
		Password:          password,
		Timestamp:         ts,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            req.Phone,
		PartyB:            g.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       g.callbackURL(req.TrackingID),
		AccountReference:  req.AccountReference,
		TransactionDesc:   truncate(req.Description, 13),
	}

	logger.Info("[mpesa][gateway] stk push start", zap.String("tracking_id", req.TrackingID), zap.Int64("amount", amount))
	var reply stkPushReply
	if err := g.post(ctx, "/mpesa/stkpush/v1/processrequest", body, &reply); err != nil {
		logger.Error("[mpesa][gateway] stk push failed", zap.String("tracking_id", req.TrackingID), zap.Error(err))
		return interfaces.STKPushResponse{}, err
	}
	if reply.ResponseCode != "0" {
		return interfaces.STKPushResponse{}, &interfaces.GatewayFailure{Code: reply.ResponseCode, Message: reply.ResponseDescription}
	}
	logger.Info("[mpesa][gateway] stk push accepted",
		zap.String("tracking_id", req.TrackingID), zap.String("checkout_request_id", reply.CheckoutRequestID))
	return interfaces.STKPushResponse{
		MerchantRequestID: reply.MerchantRequestID,
		CheckoutRequestID: reply.CheckoutRequestID,
		ResponseCode:      reply.ResponseCode,
		CustomerMessage:   reply.CustomerMessage,
	}, nil
}

// QuerySTKStatus reports pending while Daraja is still waiting on the payer.
func (g *DarajaGateway) QuerySTKStatus(ctx context.Context, checkoutRequestID string) (interfaces.STKQueryResult, error) {
	if g.mockMode {
		return interfaces.STKQueryResult{Status: entities.PaymentStatusCompleted, ResultCode: "0", ResultDesc: "The service request is processed successfully."}, nil
	}

	ts, password := g.password()
	var reply stkQueryReply
	err := g.post(ctx, "/mpesa/stkpushquery/v1/query", stkQueryBody{
		BusinessShortCode: g.cfg.ShortCode,
		Password:          password,
		Timestamp:         ts,
		CheckoutRequestID: checkoutRequestID,
	}, &reply)

	var gf *interfaces.GatewayFailure
	if errors.As(err, &gf) && (gf.Code == darajaStillProcessingCode || strings.Contains(strings.ToLower(gf.Message), "being processed")) {
		return interfaces.STKQueryResult{Status: entities.PaymentStatusPending, ResultCode: gf.Code, ResultDesc: gf.Message}, nil
	}
	if err != nil {
		return interfaces.STKQueryResult{}, err
	}

	code := reply.ResultCode.String()
	return interfaces.STKQueryResult{Status: stkResultStatus(code), ResultCode: code, ResultDesc: reply.ResultDesc}, nil
}

func stkResultStatus(code string) entities.PaymentStatus {
	switch code {
	case "":
		return entities.PaymentStatusPending
	case "0":
		return entities.PaymentStatusCompleted
	case "1032":
		return entities.PaymentStatusCancelled
	}
	return entities.PaymentStatusFailed
}

func (g *DarajaGateway) password() (string, string) {
	ts := g.now().In(nairobi).Format(darajaTimestampLayout)
	return ts, base64.StdEncoding.EncodeToString([]byte(g.cfg.ShortCode + g.cfg.PassKey + ts))
}

func (g *DarajaGateway) callbackURL(trackingID string) string {
	u, err := url.Parse(g.cfg.CallbackURL)
	if err != nil || g.cfg.CallbackURL == "" {
		return g.cfg.CallbackURL
	}
	q := u.Query()
	q.Set("tracking_id", trackingID)
	u.RawQuery = q.Encode()
	return u.String()
}

func (g *DarajaGateway) accessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.token != "" && g.now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.cfg.ConsumerKey, g.cfg.ConsumerSecret)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", &interfaces.GatewayFailure{Code: "NETWORK_ERROR", Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return "", &interfaces.GatewayFailure{Code: "SERVICE_UNAVAILABLE", Message: fmt.Sprintf("oauth status %d", resp.StatusCode)}
	}
	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || out.AccessToken == "" {
		return "", &interfaces.GatewayFailure{Code: "SERVICE_UNAVAILABLE", Message: "invalid oauth response", Err: err}
	}
	ttl, _ := strconv.Atoi(out.ExpiresIn)
	if ttl <= 0 {
		ttl = 3599
	}
	g.token = out.AccessToken
	g.tokenExpiry = g.now().Add(time.Duration(ttl)*time.Second - time.Minute)
	return g.token, nil
}

func (g *DarajaGateway) invalidateToken() {
	g.mu.Lock()
	g.token = ""
	g.mu.Unlock()
}

// post sends an authenticated JSON request. Daraja error bodies become
// *GatewayFailure so the classifier sees the provider code.
func (g *DarajaGateway) post(ctx context.Context, path string, in, out any) error {
	token, err := g.accessToken(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &interfaces.GatewayFailure{Code: "NETWORK_ERROR", Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode == http.StatusUnauthorized {
		g.invalidateToken()
	}
	if resp.StatusCode >= 300 {
		var de darajaError
		if json.Unmarshal(raw, &de) == nil && de.ErrorCode != "" {
			return &interfaces.GatewayFailure{Code: de.ErrorCode, Message: de.ErrorMessage}
		}
		return &interfaces.GatewayFailure{Code: "SERVICE_UNAVAILABLE", Message: fmt.Sprintf("daraja status %d", resp.StatusCode)}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var nairobi = func() *time.Location {
	loc, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		return time.FixedZone("EAT", 3*60*60)
	}
	return loc
}()
