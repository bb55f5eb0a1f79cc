package hotmartclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"sync"
	"time"

	hotmartdomain "github.com/boraedu/bora-hub-api/infrastructure/integrator/hotmart/domain"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/sirupsen/logrus"
)

// Margem para renovar o token antes de expirar
const expirationMargin = 5 * time.Minute

type cachedToken struct {
	accessToken string
	expiresAt   time.Time
}

// TokenManager mantém um token OAuth por conta Hotmart, renovando quando expira
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client
	mutex      sync.Mutex
	tokens     map[string]cachedToken
	now        func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: make(map[string]cachedToken),
		now:    time.Now,
	}
}

// Token devolve o token em cache ou obtém um novo com client credentials
func (tm *TokenManager) Token(ctx context.Context, secretName string) (string, error) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	if cached, ok := tm.tokens[secretName]; ok && tm.now().Before(cached.expiresAt) {
		return cached.accessToken, nil
	}

	credential, ok := tm.cfg.Hotmart.Credentials[secretName]
	if !ok {
		return "", fmt.Errorf("credenciais da Hotmart não configuradas para %q", secretName)
	}

	tokenResp, err := tm.requestToken(ctx, credential)
	if err != nil {
		return "", err
	}

	expiresAt := tm.now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - expirationMargin)
	tm.tokens[secretName] = cachedToken{accessToken: tokenResp.AccessToken, expiresAt: expiresAt}

	logrus.Infof("Token da Hotmart obtido para %s. Expira em: %s", secretName, expiresAt.Format(time.RFC3339))

	return tokenResp.AccessToken, nil
}

// Invalidate descarta o token, usado quando a API responde 401
func (tm *TokenManager) Invalidate(secretName string) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	delete(tm.tokens, secretName)
}

func (tm *TokenManager) requestToken(ctx context.Context, credential config.HotmartCredential) (*hotmartdomain.TokenResponse, error) {
	endpoint, err := url.Parse(tm.cfg.Hotmart.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL de autenticação: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/security/oauth/token")

	params := url.Values{}
	params.Add("grant_type", "client_credentials")
	params.Add("client_id", credential.ClientID)
	params.Add("client_secret", credential.ClientSecret)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+credential.Basic)
	req.Header.Set("Content-Type", "application/json")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token da Hotmart: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo token da Hotmart. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro ao obter token da Hotmart. Status: %d", resp.StatusCode)
	}

	var tokenResp hotmartdomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}
