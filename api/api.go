// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/stakeward/stakeward/api/vaultapi"
	"github.com/stakeward/stakeward/metrics"
	"github.com/stakeward/stakeward/vault"
)

type Options struct {
	AllowedOrigins string
	EnableMetrics  bool
}

// New return api router
func New(v *vault.Vault, opts Options) (http.HandlerFunc, func()) {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	vaultapi.New(v).
		Mount(router, "/vault")

	if opts.EnableMetrics {
		if handler := metrics.HTTPHandler(); handler != nil {
			router.Path("/metrics").Handler(handler)
		}
	}

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
	)(handler)

	return handler.ServeHTTP, func() {
		v.Close()
	}
}
