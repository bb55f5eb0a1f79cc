package hotmartdomain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TokenResponse representa a resposta do endpoint OAuth da Hotmart
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	UCode string `json:"ucode"`
}

type Price struct {
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currency_code"`
}

type Payment struct {
	Type               string `json:"type"`
	Method             string `json:"method"`
	InstallmentsNumber int    `json:"installments_number"`
}

// Purchase traz as datas em milissegundos desde a época, como a API devolve
type Purchase struct {
	Transaction      string  `json:"transaction"`
	OrderDate        int64   `json:"order_date"`
	ApprovedDate     int64   `json:"approved_date"`
	Status           string  `json:"status"`
	RecurrencyNumber int     `json:"recurrency_number"`
	IsSubscription   bool    `json:"is_subscription"`
	Price            Price   `json:"price"`
	Payment          Payment `json:"payment"`
}

func (p Purchase) OrderedAt() time.Time {
	return fromMillis(p.OrderDate)
}

func (p Purchase) ApprovedAt() *time.Time {
	if p.ApprovedDate == 0 {
		return nil
	}
	t := fromMillis(p.ApprovedDate)
	return &t
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

type Subscriber struct {
	Code string `json:"code"`
}

type Subscription struct {
	Status     string     `json:"status"`
	Subscriber Subscriber `json:"subscriber"`
}

// SaleItem é um item do histórico de vendas
type SaleItem struct {
	Product      Product       `json:"product"`
	Buyer        Buyer         `json:"buyer"`
	Purchase     Purchase      `json:"purchase"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// GroupKey agrupa as cobranças de uma assinatura pelo comprador e produto, já que o
// histórico de vendas não traz o código do assinante; compras avulsas usam a transação
func (s SaleItem) GroupKey() string {
	if !s.Purchase.IsSubscription && s.Subscription == nil {
		return s.Purchase.Transaction
	}
	return "sub:" + strings.ToLower(s.Buyer.Email) + ":" + strconv.FormatInt(s.Product.ID, 10)
}

type PageInfo struct {
	TotalResults   int    `json:"total_results"`
	NextPageToken  string `json:"next_page_token"`
	PrevPageToken  string `json:"prev_page_token"`
	ResultsPerPage int    `json:"results_per_page"`
}

// SalesHistory é a página de GET /payments/api/v1/sales/history
type SalesHistory struct {
	Items    []SaleItem `json:"items"`
	PageInfo PageInfo   `json:"page_info"`
}

type SalesHistoryParams struct {
	StartDate   time.Time
	EndDate     time.Time
	ProductID   int64
	BuyerEmail  string
	Transaction string
	PageToken   string
	MaxResults  int
}

// WebhookEvent é o corpo da notificação (postback v2) de compras
type WebhookEvent struct {
	ID           string   `json:"id"`
	CreationDate int64    `json:"creation_date"`
	Event        string   `json:"event"`
	Version      string   `json:"version"`
	Data         SaleItem `json:"data"`
}

// ErrorResponse representa a estrutura de erro da API da Hotmart
type ErrorResponse struct {
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	if e.ErrorDescription != "" {
		return e.ErrorCode + ": " + e.ErrorDescription
	}
	if e.Message != "" {
		return e.Message
	}
	return e.ErrorCode
}
