package drivers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querybridge/querybridge/internal/testutil"
	"github.com/querybridge/querybridge/pkg/driver"
	"github.com/querybridge/querybridge/pkg/drivers"
	"github.com/querybridge/querybridge/pkg/drivers/db2"
)

func TestNewDefaultRegistry(t *testing.T) {
	r := drivers.NewDefaultRegistry(testutil.NewTestLogger(t))

	d, err := r.Get(db2.DialectKey)
	require.NoError(t, err)
	assert.Equal(t, "IBM Db2", d.Name())

	assert.Equal(t, []driver.Key{"db2"}, r.Keys())
}

func TestNewDefaultRegistryIsIndependentPerCall(t *testing.T) {
	a := drivers.NewDefaultRegistry(nil)
	b := drivers.NewDefaultRegistry(nil)
	assert.NotSame(t, a, b)
}
