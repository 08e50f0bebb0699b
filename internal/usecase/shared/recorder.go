package shared

import "hotel-fastbill/internal/domain/pricing"

// BillingRecorder observes billing outcomes. Implementations must not block.
type BillingRecorder interface {
	BookingCreated(p pricing.PriceBreakdown)
	BookingRejected(reason string)
	PricingFailed()
	InvoiceIssued(format string)
}

type NopRecorder struct{}

func (NopRecorder) BookingCreated(pricing.PriceBreakdown) {}
func (NopRecorder) BookingRejected(string)                {}
func (NopRecorder) PricingFailed()                        {}
func (NopRecorder) InvoiceIssued(string)                  {}
