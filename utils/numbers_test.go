package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberFormats(t *testing.T) {
	today := time.Now().Format("20060102")

	billPattern := regexp.MustCompile(`^MS-` + today + `-[0-9A-F]{6}$`)
	assert.Regexp(t, billPattern, GenerateBillNumber())

	apptPattern := regexp.MustCompile(`^APT-` + today + `-[0-9A-F]{6}$`)
	assert.Regexp(t, apptPattern, GenerateAppointmentNumber())
}

func TestNumbersDoNotCollide(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		n := GenerateBillNumber()
		assert.False(t, seen[n], "duplicate bill number %s", n)
		seen[n] = true
	}
}
