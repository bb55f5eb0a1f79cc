package hotmartclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	hotmartdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/domain"
	"github.com/sirupsen/logrus"
)

var errUnauthorized = errors.New("token da Hotmart recusado")

// GetSalesHistory consulta uma página do histórico; um 401 descarta o token e tenta uma vez mais
func (c *HotmartClient) GetSalesHistory(ctx context.Context, secretName string, params hotmartdomain.SalesHistoryParams) (*hotmartdomain.SalesHistory, error) {
	response, err := c.salesHistory(ctx, secretName, params)
	if errors.Is(err, errUnauthorized) {
		logrus.Warnf("Token da Hotmart expirado para %s, renovando", secretName)
		c.TokenManager.Invalidate(secretName)
		response, err = c.salesHistory(ctx, secretName, params)
	}
	return response, err
}

func (c *HotmartClient) salesHistory(ctx context.Context, secretName string, params hotmartdomain.SalesHistoryParams) (*hotmartdomain.SalesHistory, error) {
	token, err := c.TokenManager.Token(ctx, secretName)
	if err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/payments/api/v1/sales/history")

	query := endpoint.Query()
	if params.MaxResults > 0 {
		query.Set("max_results", strconv.Itoa(params.MaxResults))
	}
	if !params.StartDate.IsZero() {
		query.Set("start_date", strconv.FormatInt(params.StartDate.UnixMilli(), 10))
	}
	if !params.EndDate.IsZero() {
		query.Set("end_date", strconv.FormatInt(params.EndDate.UnixMilli(), 10))
	}
	if params.ProductID != 0 {
		query.Set("product_id", strconv.FormatInt(params.ProductID, 10))
	}
	if params.BuyerEmail != "" {
		query.Set("buyer_email", params.BuyerEmail)
	}
	if params.Transaction != "" {
		query.Set("transaction", params.Transaction)
	}
	if params.PageToken != "" {
		query.Set("page_token", params.PageToken)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, errUnauthorized
	case resp.StatusCode != http.StatusOK:
		var apiErr hotmartdomain.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error() != "" {
			return nil, fmt.Errorf("requisição falhou com status %d: %w", resp.StatusCode, &apiErr)
		}
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response hotmartdomain.SalesHistory
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
