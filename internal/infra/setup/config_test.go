package setup

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBConfig_DSN(t *testing.T) {
	dsn, err := DBConfig{User: "carbon", Password: "pw", Name: "carbon_db"}.DSN()
	require.NoError(t, err)
	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "carbon", parsed.User)
	assert.Equal(t, "127.0.0.1:3306", parsed.Addr)
	assert.Equal(t, "carbon_db", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, time.UTC, parsed.Loc)
	assert.True(t, parsed.AllowNativePasswords)

	dsn, err = DBConfig{User: "u", Host: "db", Port: "3307", Name: "n"}.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "@tcp(db:3307)/n?")
}

func TestDBConfig_DSN_EscapesPassword(t *testing.T) {
	dsn, err := DBConfig{User: "carbon", Password: "p@ss/w?rd:1", Host: "db", Name: "carbon_db"}.DSN()
	require.NoError(t, err)

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "p@ss/w?rd:1", parsed.Passwd)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "carbon_db", parsed.DBName)
}

func TestDBConfig_DSN_RequiresUserAndName(t *testing.T) {
	_, err := DBConfig{Name: "carbon_db"}.DSN()
	assert.Error(t, err)

	_, err = DBConfig{User: "carbon"}.DSN()
	assert.Error(t, err)
}

func TestSeedData_Consistent(t *testing.T) {
	applianceTypes := map[uint]bool{}
	for _, at := range seedApplianceTypes {
		applianceTypes[at.ID] = true
	}
	for _, a := range seedAppliances {
		assert.True(t, applianceTypes[a.ApplianceTypeID], "appliance %s has unknown type", a.Name)
		assert.Positive(t, a.AverageKWH)
	}

	transportTypes := map[uint]bool{}
	for _, tt := range seedTransportTypes {
		transportTypes[tt.ID] = true
	}
	for _, tr := range seedTransports {
		assert.True(t, transportTypes[tr.TransportTypeID], "transport %s has unknown type", tr.Name)
		assert.Positive(t, tr.CO2ePerMile)
	}

	foodTypes := map[uint]bool{}
	for _, ft := range seedFoodTypes {
		foodTypes[ft.ID] = true
	}
	for _, f := range seedFoods {
		assert.True(t, foodTypes[f.FoodTypeID], "food %s has unknown type", f.Product)
		assert.Positive(t, f.CO2ePerKg)
	}
}
