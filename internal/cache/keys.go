package cache

import "fmt"

const (
	KeyCustomers   = "customers"
	JobListPrefix  = "jobs:"
	DocumentPrefix = "documents:"
	PaymentPrefix  = "payments:"
)

func JobListKey(statusFilter string) string {
	if statusFilter == "" {
		statusFilter = "all"
	}
	return JobListPrefix + statusFilter
}

func JobKey(id string) string {
	return fmt.Sprintf("job:%s", id)
}

func DocumentListKey(jobID, docType string) string {
	if docType == "" {
		docType = "all"
	}
	return fmt.Sprintf("%s%s:%s", DocumentPrefix, jobID, docType)
}

func PaymentListKey(jobID string) string {
	return PaymentPrefix + jobID
}
