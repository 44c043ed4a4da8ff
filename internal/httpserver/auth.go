package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customersvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/customer"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/session"
)

type openSessionRequest struct {
	Locale string `json:"locale"`
}

// openSessionHandler starts an anonymous session; the returned token
// addresses every later call.
func openSessionHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req openSessionRequest
		// The body is optional; an empty one means default locale.
		_ = c.ShouldBindJSON(&req)

		state, token, err := sessions.Open(req.Locale)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"token":   token,
			"session": toSessionDTO(state),
		})
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(customers *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			return
		}

		cust, err := customers.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}

		state := currentSession(c)
		state.Login(cust.ID)
		c.JSON(http.StatusOK, gin.H{"session": toSessionDTO(state)})
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := currentSession(c)
		state.Logout()
		c.JSON(http.StatusOK, gin.H{"session": toSessionDTO(state)})
	}
}

func signupHandler(customers *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customersvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signup payload"})
			return
		}

		created, err := customers.Signup(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"customer": created,
			"message":  "B2B access request received; the account awaits approval",
		})
	}
}
