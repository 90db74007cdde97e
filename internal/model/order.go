package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

type OrderItem struct {
	MedicineID string `json:"medicineId"`
	Quantity   int    `json:"quantity"`
}

// Order captures a pharmacy order. Total is supplied by the caller at
// creation time and is not recomputed by the store; CreatedAt is
// stamped once and immutable thereafter.
type Order struct {
	ID             string         `json:"id"`
	PatientID      string         `json:"patientId"`
	Items          []OrderItem    `json:"items"`
	Status         OrderStatus    `json:"status"`
	Total          float64        `json:"total"`
	CreatedAt      time.Time      `json:"createdAt"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod,omitempty"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod,omitempty"`
}

type CreateOrderRequest struct {
	PatientID      string         `json:"patientId"`
	Items          []OrderItem    `json:"items" binding:"required,min=1,dive"`
	Status         OrderStatus    `json:"status" binding:"omitempty,oneof=pending processing completed cancelled"`
	Total          float64        `json:"total" binding:"gte=0"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod" binding:"omitempty,oneof=pickup delivery"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod" binding:"omitempty,oneof=cash card"`
}
