package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"reward-platform/internal/apierrors"
	"reward-platform/internal/observability"

	"github.com/gin-gonic/gin"
)

// Proxy forwards requests verbatim to one backend service
type Proxy struct {
	name   string
	proxy  *httputil.ReverseProxy
	logger *observability.Logger
}

// NewProxy creates a reverse proxy for the service at baseURL
func NewProxy(name, baseURL string, logger *observability.Logger) (*Proxy, error) {
	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s url: %w", name, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid %s url %q", name, baseURL)
	}

	p := &Proxy{name: name, logger: logger}
	p.proxy = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		ErrorHandler: p.handleError,
	}
	return p, nil
}

// Handle forwards the request to the backend
func (p *Proxy) Handle(c *gin.Context) {
	start := time.Now()
	p.proxy.ServeHTTP(c.Writer, c.Request)

	var err error
	if c.Writer.Status() == http.StatusBadGateway {
		err = fmt.Errorf("%s unavailable", p.name)
	}
	observability.ObserveUpstreamCall("proxy_"+p.name, err, time.Since(start))
}

func (p *Proxy) handleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := observability.WithFields(r.Context(), observability.Field{Key: "upstream", Value: p.name})
	p.logger.Error(ctx, "failed to reach upstream service", err)

	apiErr := apierrors.BadGateway(fmt.Sprintf("The %s is unavailable", p.name), err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.StatusCode)
	_ = json.NewEncoder(w).Encode(apierrors.ErrorResponse{Error: apiErr.Message, Code: apiErr.Code})
}
