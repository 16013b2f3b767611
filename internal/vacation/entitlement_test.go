package vacation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitlementString(t *testing.T) {
	cases := []struct {
		Name string
		Want string
		In   Entitlement
	}{
		{
			Name: "all fields",
			In:   Entitlement{EmployeeID: 7, Year: 2024, NumberOfDays: 20, TransferredDays: 2},
			Want: "2024: EmployeeId 7 - 20 days",
		},
		{
			Name: "nothing transferred",
			In:   Entitlement{EmployeeID: 7, Year: 2024, NumberOfDays: 28},
			Want: "2024: EmployeeId 7 - 28 days",
		},
		{
			Name: "missing employee",
			In:   Entitlement{Year: 2024, NumberOfDays: 20},
			Want: "Entitlement",
		},
		{
			Name: "missing year",
			In:   Entitlement{EmployeeID: 7, NumberOfDays: 20},
			Want: "Entitlement",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, tc.In.String())
		})
	}
}

func TestEntitlementTotal(t *testing.T) {
	e := Entitlement{NumberOfDays: 20, TransferredDays: 2}

	assert.Equal(t, 22, e.Total())
}

func TestEntitlementDecode(t *testing.T) {
	var e Entitlement

	err := json.Unmarshal(
		[]byte(`{"employeeId":7,"year":2024,"numberOfDays":20,"transferedDays":2}`),
		&e,
	)
	require.NoError(t, err)

	assert.Equal(t, Entitlement{EmployeeID: 7, Year: 2024, NumberOfDays: 20, TransferredDays: 2}, e)
}
