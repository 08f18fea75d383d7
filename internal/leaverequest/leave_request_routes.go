package leaverequest

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	requests := r.Group("/leave/requests")
	requests.Use(middleware.AuthMiddleware())
	requests.Use(middleware.ExtractUserID())
	{
		requests.GET("", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetAll)
		requests.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetById)
		requests.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "leave_request", "create"),
			handler.Create,
		)
		requests.POST("/:id/review",
			middleware.RateLimitByUser(1, 3),
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "leave_request", "review"),
			handler.Review,
		)
	}
}
