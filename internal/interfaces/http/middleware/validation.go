package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/retail/backend/internal/domain/trade"
	"github.com/retail/backend/internal/interfaces/http/dto"
)

// SetupValidator configures the validator used by gin's binding layer.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report field names as they appear on the wire
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("orderstatus", validateOrderStatus)
}

// validateOrderStatus accepts any status name used by the order state
// machines. Whether the transition is legal is decided by the domain.
func validateOrderStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case string(trade.PurchaseOrderStatusPending),
		string(trade.PurchaseOrderStatusApproved),
		string(trade.PurchaseOrderStatusDelivered),
		string(trade.PurchaseOrderStatusCompleted),
		string(trade.PurchaseOrderStatusCancelled),
		string(trade.SaleOrderStatusPaid):
		return true
	}
	return false
}

// FormatValidationErrors converts binding failures into the standard
// error envelope with per-field detail.
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: validationMessage(e),
			})
		}
	}

	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "orderstatus":
		return "Unknown order status"
	default:
		return "Invalid value"
	}
}
