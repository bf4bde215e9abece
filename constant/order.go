package constant

type OrderStatus string

const (
	OrderStatusNew               OrderStatus = "new"
	OrderStatusAwaitingPackaging OrderStatus = "awaiting_packaging"
	OrderStatusAwaitingDeliver   OrderStatus = "awaiting_deliver"
	OrderStatusAwaitingShipment  OrderStatus = "awaiting_shipment"
	OrderStatusDelivering        OrderStatus = "delivering"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// IsPreShipment reports whether the order still holds a reservation,
// i.e. it has not been handed over to delivery yet.
func (s OrderStatus) IsPreShipment() bool {
	switch s {
	case OrderStatusNew, OrderStatusAwaitingPackaging, OrderStatusAwaitingDeliver, OrderStatusAwaitingShipment:
		return true
	}
	return false
}

type ReserveStatus string

const (
	ReserveStatusNone     ReserveStatus = "none"
	ReserveStatusReserved ReserveStatus = "reserved"
	ReserveStatusDeducted ReserveStatus = "deducted"
	ReserveStatusReturned ReserveStatus = "returned"
)

type OrderChannel string

const (
	OrderChannelFBS    OrderChannel = "fbs"
	OrderChannelFBO    OrderChannel = "fbo"
	OrderChannelRetail OrderChannel = "retail"
)
