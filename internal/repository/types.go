package repository

// UserListFilter filters the admin user list.
type UserListFilter struct {
	Page    int
	Limit   int
	Role    string
	Keyword string
}

// ProductListFilter filters product lists.
type ProductListFilter struct {
	Page       int
	Limit      int
	CategoryID uint
	SellerID   uint
	Search     string
	OnlyActive bool
}

// OrderListFilter filters order lists.
type OrderListFilter struct {
	Page          int
	Limit         int
	CustomerID    uint
	PaymentStatus string
	OrderNumber   string
}

// OrderItemListFilter filters per-seller order item lists.
type OrderItemListFilter struct {
	Page     int
	Limit    int
	SellerID uint
	Status   string
}

// AuditLogListFilter filters the audit trail list.
type AuditLogListFilter struct {
	Page    int
	Limit   int
	ActorID uint
	Method  string
	Path    string
}
