package leavebalance

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
	balances := r.Group("/leave/balances")
	balances.Use(middleware.AuthMiddleware())
	balances.Use(middleware.ExtractUserID())
	{
		balances.GET("/:employeeId", middleware.RBACAuthorize(rbacService, "leave_balance", "read"), handler.GetByEmployee)
		balances.GET("/:employeeId/:leaveTypeId", middleware.RBACAuthorize(rbacService, "leave_balance", "read"), handler.GetBalance)
		balances.POST("/adjust",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "leave_balance", "adjust"),
			handler.Adjust,
		)
	}
}
