package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	pkghttp "github.com/Jeevaranjani21/vdart-backend/pkg/http"
)

// PDFProxyHandler forwards PDF processing requests to the external
// tools backend. Processing itself (merge, split, compress, convert)
// happens entirely on that service; this side only relays.
type PDFProxyHandler struct {
	proxy  *httputil.ReverseProxy
	logger *slog.Logger
}

// NewPDFProxyHandler creates a reverse proxy for the given backend URL.
func NewPDFProxyHandler(backendURL string, logger *slog.Logger) (*PDFProxyHandler, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("pdf backend unreachable",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		pkghttp.WriteError(w, http.StatusBadGateway, "PDF service is unavailable. Please try again later.")
	}

	return &PDFProxyHandler{proxy: proxy, logger: logger}, nil
}

// ServeHTTP strips the /api mount prefix and relays the request.
func (h *PDFProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.StripPrefix("/api", h.proxy).ServeHTTP(w, r)
}
