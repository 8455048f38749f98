// utils/numbers.go
package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Human-readable record numbers: PREFIX-YYYYMMDD-RRRRRR with a random hex
// suffix, so concurrent creation cannot collide the way a bare timestamp can.

func GenerateBillNumber() string {
	return "MS-" + time.Now().Format("20060102") + "-" + randomSuffix(6)
}

func GenerateAppointmentNumber() string {
	return "APT-" + time.Now().Format("20060102") + "-" + randomSuffix(6)
}

func randomSuffix(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(s[:n])
}
