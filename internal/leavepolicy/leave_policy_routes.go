package leavepolicy

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	policies := r.Group("/leave/policies")
	policies.Use(middleware.AuthMiddleware())
	policies.Use(middleware.ExtractUserID())
	{
		policies.GET("", middleware.RBACAuthorize(rbacService, "leave_policy", "read"), handler.GetAllPolicies)
		policies.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_policy", "read"), handler.GetPolicyById)
		policies.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave_policy", "create"),
			handler.CreatePolicy,
		)
		policies.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave_policy", "update"),
			handler.UpdatePolicy,
		)
	}

	settings := r.Group("/leave/settings")
	settings.Use(middleware.AuthMiddleware())
	settings.Use(middleware.ExtractUserID())
	{
		settings.GET("/:employeeId", middleware.RBACAuthorize(rbacService, "leave_setting", "read"), handler.GetSettingsByEmployee)
		settings.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave_setting", "create"),
			handler.CreateSetting,
		)
	}
}
