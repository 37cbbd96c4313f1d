package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	baseURL     string
}

// NewPostController creates a new PostController. baseURL is used for
// absolute links in the feed output.
func NewPostController(postService *services.PostService, baseURL string) *PostController {
	return &PostController{
		postService: postService,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		pc.sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	responses := make([]*models.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, post.Response())
	}
	pc.sendJSON(w, http.StatusOK, responses)
}

// Show handles fetching a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendStoreError(w, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, post.Response())
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(&input)
	if err != nil {
		pc.sendStoreError(w, err)
		return
	}
	pc.sendJSON(w, http.StatusCreated, post.Response())
}

// Edit handles updating an existing post. Only supplied fields change.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := pc.postService.UpdatePost(id, &input); err != nil {
		pc.sendStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles deleting a post. Always succeeds, whether or not the id
// existed beforehand.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := pc.postService.DeletePost(id); err != nil {
		pc.sendError(w, "Failed to delete post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Feed serves the collection as an RSS feed
func (pc *PostController) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		pc.sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       "Posts",
		Link:        &feeds.Link{Href: pc.baseURL + "/posts"},
		Description: "All blog posts",
		Created:     time.Now(),
	}
	for _, post := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:   post.Title,
			Link:    &feeds.Link{Href: pc.baseURL + "/posts/" + post.ID},
			Author:  &feeds.Author{Name: post.AuthorName},
			Content: renderMarkdown(post.Content),
			Created: post.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	if err := feed.WriteRss(w); err != nil {
		pc.sendError(w, "Failed to generate RSS", http.StatusInternalServerError)
	}
}

// ShowHTML serves a post's content rendered from markdown
func (pc *PostController) ShowHTML(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(renderMarkdown(post.Content)))
}

func renderMarkdown(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	var b strings.Builder
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	if err := md.Convert([]byte(input), &b); err != nil {
		return input
	}
	return b.String()
}

// Helper methods for consistent response handling

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// sendStoreError maps service and store errors onto response statuses.
func (pc *PostController) sendStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrIDMismatch),
		errors.Is(err, repositories.ErrInvalidRecord):
		pc.sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		pc.sendError(w, "Post not found", http.StatusNotFound)
	default:
		pc.sendError(w, err.Error(), http.StatusInternalServerError)
	}
}
