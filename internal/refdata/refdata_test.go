package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTables(t *testing.T) {
	warehouses, err := Warehouses()
	require.NoError(t, err)
	assert.Equal(t, []string{"SG01", "SG02", "MY01", "MY02", "VN01", "ID01", "TH01", "PH01"}, warehouses)

	vatGroups, err := VatGroups()
	require.NoError(t, err)
	assert.Equal(t, []string{"SR", "ZR", "ES", "OS", "TX", "IM", "DS"}, vatGroups)

	employees, err := SalesEmployees()
	require.NoError(t, err)
	require.NotEmpty(t, employees)
	for _, emp := range employees {
		assert.NotZero(t, emp.Code)
		assert.NotEmpty(t, emp.Name)
	}
}
