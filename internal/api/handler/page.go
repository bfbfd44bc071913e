package handler

import (
	"net/http"

	"github.com/mkerins/ai-friend/internal/web"
)

// Page serves the embedded single-page UI
func Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(web.Index)
}
