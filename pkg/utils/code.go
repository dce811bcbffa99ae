package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateProductCode generates a product code for forms submitted without one
func GenerateProductCode() string {
	return "PRD-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateSupplierCode generates a supplier code for forms submitted without one
func GenerateSupplierCode() string {
	return "SUP-" + strings.ToUpper(uuid.New().String()[:8])
}
