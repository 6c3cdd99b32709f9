package router

import (
	"fieldforce/internal/handler"
	"fieldforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

// PublicRouter 對外端點；寫入表單都掛 FormLimit
type PublicRouter struct {
	publicHandler *handler.PublicHandler
	authHandler   *handler.AuthHandler
	formLimit     *middleware.FormLimit
}

func NewPublicRouter(
	publicHandler *handler.PublicHandler,
	authHandler *handler.AuthHandler,
	formLimit *middleware.FormLimit,
) *PublicRouter {
	return &PublicRouter{
		publicHandler: publicHandler,
		authHandler:   authHandler,
		formLimit:     formLimit,
	}
}

func (pr *PublicRouter) RegisterRoutes(r *gin.Engine) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", pr.publicHandler.ListJobs)
		jobs.GET("/:jobID", pr.publicHandler.GetJob)
	}

	r.POST("/applications", pr.formLimit.Handler("application"), pr.publicHandler.SubmitApplication)
	r.POST("/memberships", pr.formLimit.Handler("membership"), pr.publicHandler.ApplyMembership)
	r.POST("/newsletter", pr.formLimit.Handler("newsletter"), pr.publicHandler.SubscribeNewsletter)

	auth := r.Group("/auth")
	{
		auth.POST("/register", pr.formLimit.Handler("registration"), pr.authHandler.Register)
		auth.POST("/login", pr.authHandler.Login)
	}
}
