package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForCheckout(t *testing.T) {
	c := New()
	c, _ = c.Add(widget())
	c, _ = c.Add(widget())
	c, _ = c.Add(gadget())

	lines, lineErrors := c.ValidateForCheckout()

	require.Empty(t, lineErrors)
	require.Len(t, lines, 2)
	assert.Equal(t, CheckoutLine{ItemID: "a", Quantity: 2, UnitCost: 10}, lines[0])
	assert.Equal(t, CheckoutLine{ItemID: "b", Quantity: 1, UnitCost: 5}, lines[1])
}

func TestValidateForCheckoutMissingPrice(t *testing.T) {
	c := Cart{Lines: []Line{
		{ItemID: "a", Name: "Widget", Price: ptr(10), Quantity: 1},
		{ItemID: "x", Name: "Mystery", Quantity: 1},
	}}

	lines, lineErrors := c.ValidateForCheckout()

	assert.Nil(t, lines)
	require.Len(t, lineErrors, 1)
	assert.Equal(t, "Mystery", lineErrors[0].ItemName)
	assert.Equal(t, "missing unit price", lineErrors[0].Reason)
}

func TestValidateForCheckoutNaNPrice(t *testing.T) {
	nan := math.NaN()
	c := Cart{Lines: []Line{
		{ItemID: "x", Name: "Broken", Price: &nan, Quantity: 1},
	}}

	lines, lineErrors := c.ValidateForCheckout()

	assert.Nil(t, lines)
	require.Len(t, lineErrors, 1)
	assert.Equal(t, "Broken", lineErrors[0].ItemName)
}

func TestValidateForCheckoutMissingItemID(t *testing.T) {
	c := Cart{Lines: []Line{
		{Name: "Orphan", Price: ptr(1), Quantity: 1},
	}}

	lines, lineErrors := c.ValidateForCheckout()

	assert.Nil(t, lines)
	require.Len(t, lineErrors, 1)
	assert.Equal(t, "Orphan", lineErrors[0].ItemName)
	assert.Equal(t, "missing item reference", lineErrors[0].Reason)
}

func TestValidateForCheckoutCollectsAllFailures(t *testing.T) {
	c := Cart{Lines: []Line{
		{ItemID: "a", Name: "Widget", Quantity: 1},
		{Name: "Orphan", Price: ptr(1), Quantity: 1},
	}}

	_, lineErrors := c.ValidateForCheckout()

	require.Len(t, lineErrors, 2)
	assert.Equal(t, "Widget", lineErrors[0].ItemName)
	assert.Equal(t, "Orphan", lineErrors[1].ItemName)
}
