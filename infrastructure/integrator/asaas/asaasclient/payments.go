package asaasclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	asaasdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/asaas/domain"
)

const dateLayout = "2006-01-02"

func (c *AsaasClient) ListPayments(ctx context.Context, apiKey string, params asaasdomain.ListPaymentsParams) (*asaasdomain.PaymentList, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(params.Offset))
	query.Set("limit", strconv.Itoa(params.Limit))
	if params.Installment != "" {
		query.Set("installment", params.Installment)
	}
	if !params.CreatedFrom.IsZero() {
		query.Set("dateCreated[ge]", params.CreatedFrom.Format(dateLayout))
	}
	if !params.CreatedTo.IsZero() {
		query.Set("dateCreated[le]", params.CreatedTo.Format(dateLayout))
	}

	var response asaasdomain.PaymentList
	if err := c.get(ctx, apiKey, "/payments", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *AsaasClient) GetCustomer(ctx context.Context, apiKey, customerID string) (*asaasdomain.Customer, error) {
	var response asaasdomain.Customer
	if err := c.get(ctx, apiKey, "/customers/"+url.PathEscape(customerID), nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *AsaasClient) get(ctx context.Context, apiKey, resource string, query url.Values, out any) error {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("access_token", apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "bora-hub-api")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr asaasdomain.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && len(apiErr.Errors) > 0 {
			return fmt.Errorf("requisição falhou com status %d: %w", resp.StatusCode, &apiErr)
		}
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
