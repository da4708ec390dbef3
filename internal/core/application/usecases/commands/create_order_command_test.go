package commands_test

import (
	"testing"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, s string) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromString(s)
	require.NoError(t, err)
	return price
}

func validLines(t *testing.T) []commands.OrderLine {
	t.Helper()
	return []commands.OrderLine{
		{MenuID: kernel.NewUUID(), Quantity: 2, Price: mustPrice(t, "16000")},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	lines := validLines(t)

	cmd, err := commands.NewCreateOrderCommand(orderID, tableID, lines)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, tableID, cmd.TableID())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), validLines(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidTableID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, validLines(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
}

func TestNewCreateOrderCommand_LineWithInvalidMenuID(t *testing.T) {
	lines := []commands.OrderLine{
		{MenuID: kernel.UUID{}, Quantity: 1, Price: mustPrice(t, "16000")},
	}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_LineWithUnconstructedPrice(t *testing.T) {
	lines := []commands.OrderLine{
		{MenuID: kernel.NewUUID(), Quantity: 1, Price: kernel.Price{}},
	}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
}

// Negative quantities are accepted by the command; quantity sign is not part
// of the creation contract.
func TestNewCreateOrderCommand_NegativeQuantity(t *testing.T) {
	lines := []commands.OrderLine{
		{MenuID: kernel.NewUUID(), Quantity: -1, Price: mustPrice(t, "16000")},
	}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), cmd.Lines()[0].Quantity)
}

func TestCreateOrderCommand_LinesReturnsCopy(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), validLines(t))
	require.NoError(t, err)

	leaked := cmd.Lines()
	other, err := kernel.NewPrice(decimal.NewFromInt(1))
	require.NoError(t, err)
	leaked[0].Price = other

	assert.True(t, cmd.Lines()[0].Price.IsEqual(mustPrice(t, "16000")))
}
