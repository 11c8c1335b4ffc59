package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DeliveryStatus represents the shipping state of an order's delivery:
//
//	Ready ──> Completed
//
// Completed is terminal. A completed delivery blocks cancellation of its
// order: shipped goods cannot be unwound.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryReady is the initial status of a freshly created delivery.
	DeliveryReady

	// DeliveryCompleted indicates the delivery has been shipped out.
	DeliveryCompleted
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:   "Unknown",
		DeliveryReady:     "Ready",
		DeliveryCompleted: "Completed",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryUnknown is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		DeliveryReady:     "Ready",
		DeliveryCompleted: "Completed",
	}
}

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the human-readable name of the delivery status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DeliveryStatusFromString parses a delivery status from its string
// representation, as stored in the deliveries table.
func DeliveryStatusFromString(str string) (DeliveryStatus, error) {
	for status, s := range getValidDeliveryStatusStrings() {
		if s == str {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
		fmt.Errorf("%q is not a valid delivery status", str))
}

// Complete transitions the delivery status to Completed. The only valid
// transition is Ready -> Completed.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != DeliveryReady {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid delivery status to complete", s.String()),
		)
	}

	return DeliveryCompleted, nil
}
