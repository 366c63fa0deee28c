package movement_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
)

func TestDeleteMovement_NoRevierteStock(t *testing.T) {
	s := seedLedger(t)

	id, err := s.remove.DeleteMovement(context.Background(), dto.DeleteMovementRequest{
		ID: strings.ToUpper(s.movementID),
	})
	require.NoError(t, err)
	assert.Equal(t, s.movementID, id)
	assert.Empty(t, s.store.Movements())
	assert.Equal(t, 4, s.store.Stock(entity.Toner(s.tonerID)))
}

func TestDeleteMovement_NoExiste(t *testing.T) {
	s := seedLedger(t)

	_, err := s.remove.DeleteMovement(context.Background(), dto.DeleteMovementRequest{ID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, s.store.Movements(), 1)
}

func TestDeleteMovement_IDInvalido(t *testing.T) {
	s := seedLedger(t)

	_, err := s.remove.DeleteMovement(context.Background(), dto.DeleteMovementRequest{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
