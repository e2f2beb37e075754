package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseStatusValid(t *testing.T) {
	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusInField.Valid())
	assert.True(t, StatusFinalized.Valid())

	assert.False(t, CaseStatus("").Valid())
	assert.False(t, CaseStatus("Archived").Valid())
	assert.False(t, CaseStatus("infield").Valid(), "los estados distinguen mayúsculas")
}
