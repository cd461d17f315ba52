package validation_test

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-marketplace/internal/validation"
)

func TestField(t *testing.T) {
	v := validation.New()

	tests := []struct {
		field string
		value string
		ok    bool
	}{
		{validation.FieldEventID, "12", true},
		{validation.FieldEventID, "0", false},
		{validation.FieldEventID, "-1", false},
		{validation.FieldEventID, "abc", false},
		{validation.FieldTicketID, " 7 ", true},
		{validation.FieldEventName, "Monaco Grand Prix", true},
		{validation.FieldEventName, "   ", false},
		{validation.FieldEventDate, "2025-05-25", true},
		{validation.FieldEventDate, "25-05-2025", false},
		{validation.FieldEventDate, "2025-13-01", false},
		{validation.FieldEventLocation, "Monte Carlo", true},
		{validation.FieldPriceEth, "0.5", true},
		{validation.FieldPriceEth, "0", false},
		{validation.FieldPriceEth, "-2", false},
		{validation.FieldPriceEth, "ten", false},
		{validation.FieldAvailableTickets, "100", true},
		{validation.FieldAvailableTickets, "0", false},
		{validation.FieldAvailableTickets, "1.5", false},
		{validation.FieldWallet, "0x39022f2935339Ff128e2917AFF08867098Fffc4e", true},
		{validation.FieldWallet, "0x1234", false},
		{validation.FieldWallet, "39022f2935339Ff128e2917AFF08867098Fffc4e", false},
	}
	for _, tt := range tests {
		err := v.Field(tt.field, tt.value)
		if tt.ok {
			assert.NoError(t, err, "%s=%q", tt.field, tt.value)
			continue
		}
		var fe *validation.FieldError
		if assert.ErrorAs(t, err, &fe, "%s=%q", tt.field, tt.value) {
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, validation.Rules[tt.field].Message, fe.Message)
		}
	}
}

func TestUnknownField(t *testing.T) {
	err := validation.New().Field("seat", "A1")
	assert.ErrorIs(t, err, validation.ErrUnknownField)
}

func TestValidate(t *testing.T) {
	v := validation.New()

	t.Run("all valid", func(t *testing.T) {
		err := v.Validate(validation.Fields{
			validation.FieldEventName:        "Monaco Grand Prix",
			validation.FieldEventDate:        "2025-05-25",
			validation.FieldEventLocation:    "Monte Carlo",
			validation.FieldPriceEth:         "1.5",
			validation.FieldAvailableTickets: "500",
		})
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := v.Validate(validation.Fields{
			validation.FieldEventName: "",
			validation.FieldEventDate: "tomorrow",
			validation.FieldPriceEth:  "0",
		})
		require.Error(t, err)

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		assert.Len(t, merr.Errors, 3)

		msgs := validation.Messages(err)
		assert.Equal(t, validation.Rules[validation.FieldEventDate].Message, msgs[validation.FieldEventDate])
		assert.Contains(t, msgs, validation.FieldEventName)
		assert.Contains(t, msgs, validation.FieldPriceEth)
	})

	t.Run("messages of nil", func(t *testing.T) {
		assert.Empty(t, validation.Messages(nil))
	})
}
