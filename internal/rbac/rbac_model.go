package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles are static in this deployment. The JWT role claim is the casbin
// subject, so no grouping rows are needed beyond the identity match.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies is the full permission matrix, seeded at startup.
var policies = [][]string{
	{RoleAdmin, "employee", "create"},
	{RoleAdmin, "employee", "read"},
	{RoleAdmin, "employee", "update"},
	{RoleAdmin, "employee", "delete"},
	{RoleAdmin, "leave_type", "create"},
	{RoleAdmin, "leave_type", "read"},
	{RoleAdmin, "leave_policy", "create"},
	{RoleAdmin, "leave_policy", "read"},
	{RoleAdmin, "leave_policy", "update"},
	{RoleAdmin, "leave_setting", "create"},
	{RoleAdmin, "leave_setting", "read"},
	{RoleAdmin, "leave_request", "create"},
	{RoleAdmin, "leave_request", "read"},
	{RoleAdmin, "leave_request", "review"},
	{RoleAdmin, "leave_balance", "read"},
	{RoleAdmin, "leave_balance", "adjust"},
	{RoleAdmin, "user", "create"},

	{RoleEmployee, "employee", "read"},
	{RoleEmployee, "leave_type", "read"},
	{RoleEmployee, "leave_request", "create"},
	{RoleEmployee, "leave_request", "read"},
	{RoleEmployee, "leave_balance", "read"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return enforcer, nil
}
