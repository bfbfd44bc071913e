package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mkerins/ai-friend/internal/api/middleware"
	"github.com/mkerins/ai-friend/internal/api/response"
	"github.com/mkerins/ai-friend/internal/domain"
	"github.com/mkerins/ai-friend/internal/service"
)

var validate = validator.New()

// ChatHandler handles the conversation endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SetName stores the visitor's display name
func (h *ChatHandler) SetName(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.BadRequest(w, "missing session")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.chatService.SetName(sessionID, req.Name); err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.OK(w, map[string]string{"name": req.Name})
}

// AskRequest is the question submission payload
type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

// Ask submits a question to the completion provider
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.BadRequest(w, "missing session")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	exchange, err := h.chatService.Ask(r.Context(), sessionID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAPIKeyMissing), errors.Is(err, domain.ErrProviderUnavailable):
			response.UnprocessableEntity(w, err.Error())
		case errors.Is(err, domain.ErrEmptyQuestion):
			response.BadRequest(w, err.Error())
		case errors.Is(err, domain.ErrSessionNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, err.Error())
		}
		return
	}

	response.OK(w, exchange)
}

// History returns the session's exchanges in order
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.BadRequest(w, "missing session")
		return
	}

	exchanges, err := h.chatService.History(sessionID)
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}
	if exchanges == nil {
		exchanges = []domain.Exchange{}
	}

	response.OK(w, exchanges)
}

// Export streams the session transcript as a PDF download
func (h *ChatHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.BadRequest(w, "missing session")
		return
	}

	filename, data, err := h.chatService.ExportPDF(sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
