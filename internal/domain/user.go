package domain

// Role — роль пользователя, выданная identity-коллаборатором.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
	RoleSupport  Role = "support"
)

// Valid сообщает, известна ли роль.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleManager, RoleAdmin, RoleSupport:
		return true
	default:
		return false
	}
}

// CanManageOrders — единственная проверка прав на обработку заказов и
// менеджерские отчёты. Никаких сравнений строк по обработчикам.
func (r Role) CanManageOrders() bool {
	return r == RoleManager || r == RoleAdmin
}

// User — актор запроса: клиент или менеджер/админ.
type User struct {
	ID   string
	Role Role
}
