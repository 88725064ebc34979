package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type BlogHandler struct {
	uc *usecase.BlogUseCase
}

func NewBlogHandler(uc *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

type BlogPostResponse struct {
	entity.BlogPost
	HTML string `json:"html"`
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	posts := h.uc.List(r.Context(), usecase.BlogQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	})
	writeJSON(w, http.StatusOK, listResponse[entity.BlogPost]{
		Items:      posts,
		Total:      len(posts),
		Categories: h.uc.Categories(r.Context()),
	})
}

// Get devolve o post com o conteúdo já renderizado em HTML.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.uc.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	html, err := usecase.RenderContent(post)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "RENDER_ERROR", "failed to render post")
		return
	}
	writeJSON(w, http.StatusOK, BlogPostResponse{BlogPost: post, HTML: html})
}

func (h *BlogHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaveBlogPostInput
	if !decodeJSON(w, r, &input) {
		return
	}
	status := http.StatusOK
	if input.Slug == "" {
		status = http.StatusCreated
	}
	post, err := h.uc.Save(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, status, post)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
