package http

import (
	"net/http"

	"github.com/akademika/hris-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// employeeIDFromRequest pulls the employee_id claim out of the verified
// token. Accounts without a linked employee (pure admin accounts) carry
// no employee_id claim.
func employeeIDFromRequest(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", false
	}
	return employeeID, true
}

func accountIDFromRequest(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	accountID, ok := claims["account_id"].(string)
	if !ok || accountID == "" {
		return "", false
	}
	return accountID, true
}

func roleFromRequest(r *http.Request) (auth.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", false
	}
	return auth.Role(role), true
}
