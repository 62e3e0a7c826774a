package constants

// User roles
const (
	RoleAdmin    = "admin"
	RoleSeller   = "seller"
	RoleCustomer = "customer"
)

// Order item statuses. Sellers walk the fulfillment chain; customers may
// cancel while pending and start a return after delivery; admins may set
// any status directly, including faildelivery.
const (
	OrderItemStatusPending           = "pending"
	OrderItemStatusToPack            = "to_pack"
	OrderItemStatusToArrangeShipment = "to_arrange_shipment"
	OrderItemStatusToHandover        = "to_handover"
	OrderItemStatusShipping          = "shipping"
	OrderItemStatusDelivered         = "delivered"
	OrderItemStatusCanceled          = "canceled"
	OrderItemStatusFailDelivery      = "faildelivery"
	OrderItemStatusReturnInitialized = "return-initialized"
	OrderItemStatusReturnAccepted    = "return-accepted"
	OrderItemStatusReturnRejected    = "return-rejected"
)

// Payment method constants
const (
	PaymentMethodCOD  = "cod"
	PaymentMethodCard = "card"
)

// Payment status constants
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Async task type constants
const (
	TaskOrderConfirmationEmail = "email:order_confirmation"
	TaskAuditLogWrite          = "audit:log_write"
)

// Queue name constants
const (
	QueueDefault = "default"
)

// Auth cookie carrying the signed user token.
const (
	UserTokenCookie = "USER_TOKEN"
)
