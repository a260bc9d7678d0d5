package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-renamer/internal/auth"
	"invoice-renamer/internal/shared/server/middleware"
)

// Handler renders the password gate and the upload page.
type Handler struct {
	sessions *auth.Service
}

// NewHandler constructs a Handler.
func NewHandler(sessions *auth.Service) *Handler {
	return &Handler{sessions: sessions}
}

// RegisterRoutes attaches the page routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/upload", h.uploadPage)
	r.POST("/logout", h.logout)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// login checks the submitted password. A mismatch re-renders the gate with a
// rejection message rather than an error status.
func (h *Handler) login(c *gin.Context) {
	token, ok := h.sessions.Login(c.PostForm("password"))
	if !ok {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Incorrect password."})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	c.HTML(http.StatusOK, "upload.html", gin.H{})
}

func (h *Handler) uploadPage(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || !h.sessions.Validate(token) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "upload.html", gin.H{})
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		h.sessions.Logout(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
