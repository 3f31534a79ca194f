package models

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
)

// Toast is a transient user notification. At most one is live at a time; a
// new toast replaces whatever is currently visible.
type Toast struct {
	Message   string    `json:"message"`
	Kind      ToastKind `json:"type"`
	IsVisible bool      `json:"isVisible"`
}
